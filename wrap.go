package ansiwrap

import "strings"

// Wrap wraps a single paragraph into lines of at most width visible
// columns and returns them styling-complete (see TerminateLines).
// Escape sequences take no room. A width <= 0 means DefaultWidth.
func Wrap(text string, width int, opts ...Option) []string {
	return TerminateLines(newWrapper(width, opts).Wrap(text))
}

// Fill wraps text like Wrap and joins the lines with newlines.
func Fill(text string, width int, opts ...Option) string {
	return strings.Join(Wrap(text, width, opts...), "\n")
}

// Shorten collapses whitespace runs in text to single spaces and truncates
// the result to one line of width columns, ending it with the placeholder
// when something was cut. Empty input yields "".
func Shorten(text string, width int, opts ...Option) string {
	opts = append(opts[:len(opts):len(opts)], WithMaxLines(1))

	lines := newWrapper(width, opts).Wrap(strings.Join(strings.Fields(text), " "))
	if len(lines) == 0 {
		return ""
	}
	return TerminateLines(lines[:1])[0]
}
