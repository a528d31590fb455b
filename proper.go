package ansiwrap

import (
	"strings"
	"unicode/utf8"
)

// WrapProper wraps multi-line text without disturbing its escape
// sequences. Each physical line is stripped, wrapped by visible width, and
// gets its escapes spliced back at the positions they held in the stripped
// text; the lines of each physical line are then terminated. Indents are
// not supported. A width <= 0 means DefaultWidth.
func WrapProper(text string, width int) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		lines = append(lines, wrapProperLine(line, width)...)
	}
	return lines
}

func wrapProperLine(line string, width int) []string {
	matches := Scan(line)
	stripped := StripColor(line)
	wrapped := newWrapper(width, nil).Wrap(stripped)

	// A blank line still takes a line, carrying whatever escapes it had.
	if len(wrapped) == 0 {
		var b strings.Builder
		for _, m := range matches {
			b.WriteString(m.Text)
		}
		return TerminateLines([]string{b.String()})
	}

	return TerminateLines(reinsert(wrapped, matches, alignStripped(stripped, wrapped)))
}

// anchor is a byte position inside one wrapped line.
type anchor struct {
	line int
	col  int
}

// alignStripped walks the stripped text and the wrapped lines with one
// cursor each and maps every byte offset of stripped (plus its end) to an
// anchor. Non-space text is never altered by wrapping, so both cursors
// advance together over it. Whitespace runs match each other whatever
// their length, and whitespace dropped at a break belongs to the start of
// the line that follows it.
func alignStripped(stripped string, lines []string) []anchor {
	anchors := make([]anchor, len(stripped)+1)

	si := 0
	for li, line := range lines {
		lj := 0
		for lj < len(line) {
			if isWrapSpace(line[lj]) {
				runStart := lj
				for lj < len(line) && isWrapSpace(line[lj]) {
					lj++
				}
				sStart := si
				for si < len(stripped) && isWrapSpace(stripped[si]) {
					anchors[si] = anchor{li, min(runStart+si-sStart, lj)}
					si++
				}
				continue
			}

			for si < len(stripped) && isWrapSpace(stripped[si]) {
				anchors[si] = anchor{li, lj}
				si++
			}

			_, size := utf8.DecodeRuneInString(line[lj:])
			for k := 0; k < size && si < len(stripped); k++ {
				anchors[si] = anchor{li, lj + k}
				si++
			}
			lj += size
		}
	}

	last := len(lines) - 1
	for ; si <= len(stripped); si++ {
		anchors[si] = anchor{last, len(lines[last])}
	}
	return anchors
}

// reinsert splices each escape back into the wrapped lines. An escape's
// position in the stripped text is its original offset minus the bytes of
// the escapes before it. Escapes that only close styles and land at the
// start of a continuation line go to the end of the line they close,
// unless an opening escape already sits at that start.
func reinsert(lines []string, matches []EscapeMatch, anchors []anchor) []string {
	type insertion struct {
		col  int
		text string
	}

	pending := make([][]insertion, len(lines))
	opened := make([]bool, len(lines))
	removed := 0
	for _, m := range matches {
		a := anchors[m.Start-removed]
		removed += m.Len()

		if a.col == 0 && a.line > 0 {
			if !opened[a.line] && isClosingCode(m.Code()) {
				prev := a.line - 1
				a = anchor{prev, len(lines[prev])}
			} else {
				opened[a.line] = true
			}
		}
		pending[a.line] = append(pending[a.line], insertion{a.col, m.Text})
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		if len(pending[i]) == 0 {
			out[i] = line
			continue
		}

		var b strings.Builder
		pos := 0
		for _, in := range pending[i] {
			b.WriteString(line[pos:in.col])
			b.WriteString(in.text)
			pos = in.col
		}
		b.WriteString(line[pos:])
		out[i] = b.String()
	}
	return out
}

// isWrapSpace matches the whitespace the wrap engine splits on.
func isWrapSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
