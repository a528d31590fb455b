package ansiwrap

import (
	"strings"

	"github.com/danielgatis/go-ansiwrap/internal/textwrap"
)

const (
	// DefaultWidth is the line width used when a width <= 0 is given.
	DefaultWidth = 70

	// DefaultPlaceholder ends output truncated by WithMaxLines.
	DefaultPlaceholder = textwrap.DefaultPlaceholder
)

// IndentValue is literal indent text or a number of spaces.
type IndentValue interface {
	string | int
}

// Option configures a Wrap, Fill or Shorten call.
type Option func(*config)

type config struct {
	wrapper *textwrap.Wrapper

	// indent, when set, overrides both separate indents.
	indent *[2]string
}

// WithIndent sets the same indent on the first and following lines.
// It takes precedence over WithInitialIndent and WithSubsequentIndent.
func WithIndent[T IndentValue](v T) Option {
	s := indentString(v)
	return func(c *config) {
		c.indent = &[2]string{s, s}
	}
}

// WithIndents sets different indents on the first and following lines.
// It takes precedence over WithInitialIndent and WithSubsequentIndent.
func WithIndents[I, S IndentValue](initial I, subsequent S) Option {
	first, rest := indentString(initial), indentString(subsequent)
	return func(c *config) {
		c.indent = &[2]string{first, rest}
	}
}

// WithInitialIndent sets the text prepended to the first line.
func WithInitialIndent(s string) Option {
	return func(c *config) {
		c.wrapper.InitialIndent = s
	}
}

// WithSubsequentIndent sets the text prepended to every line but the first.
func WithSubsequentIndent(s string) Option {
	return func(c *config) {
		c.wrapper.SubsequentIndent = s
	}
}

// WithMaxLines truncates the output to n lines, ending it with the placeholder.
// Values <= 0 disable truncation.
func WithMaxLines(n int) Option {
	return func(c *config) {
		c.wrapper.MaxLines = n
	}
}

// WithPlaceholder sets the text that ends truncated output.
// Defaults to DefaultPlaceholder.
func WithPlaceholder(s string) Option {
	return func(c *config) {
		c.wrapper.Placeholder = s
	}
}

// WithExpandTabs controls tab expansion. Enabled by default.
func WithExpandTabs(enabled bool) Option {
	return func(c *config) {
		c.wrapper.ExpandTabs = enabled
	}
}

// WithTabSize sets the tab stop distance. Defaults to 8.
func WithTabSize(n int) Option {
	return func(c *config) {
		c.wrapper.TabSize = n
	}
}

// WithReplaceWhitespace controls turning each whitespace character into a space. Enabled by default.
func WithReplaceWhitespace(enabled bool) Option {
	return func(c *config) {
		c.wrapper.ReplaceWhitespace = enabled
	}
}

// WithFixSentenceEndings puts two spaces after sentence endings. Disabled by default.
func WithFixSentenceEndings(enabled bool) Option {
	return func(c *config) {
		c.wrapper.FixSentenceEndings = enabled
	}
}

// WithBreakLongWords controls breaking words wider than a line. Enabled by default.
func WithBreakLongWords(enabled bool) Option {
	return func(c *config) {
		c.wrapper.BreakLongWords = enabled
	}
}

// WithDropWhitespace controls dropping whitespace around line breaks. Enabled by default.
func WithDropWhitespace(enabled bool) Option {
	return func(c *config) {
		c.wrapper.DropWhitespace = enabled
	}
}

// WithBreakOnHyphens controls breaking compound words after hyphens. Enabled by default.
func WithBreakOnHyphens(enabled bool) Option {
	return func(c *config) {
		c.wrapper.BreakOnHyphens = enabled
	}
}

// WithMeasurer replaces VisibleWidth as the width measure.
// If nil, VisibleWidth is kept.
func WithMeasurer(m Measurer) Option {
	return func(c *config) {
		if m != nil {
			c.wrapper.Measurer = m
		}
	}
}

// newWrapper builds the wrap policy for one call.
func newWrapper(width int, opts []Option) *textwrap.Wrapper {
	if width <= 0 {
		width = DefaultWidth
	}

	c := &config{wrapper: textwrap.New(width)}
	c.wrapper.Measurer = VisibleWidth
	for _, opt := range opts {
		opt(c)
	}

	if c.indent != nil {
		c.wrapper.InitialIndent = c.indent[0]
		c.wrapper.SubsequentIndent = c.indent[1]
	}
	if _, ok := c.wrapper.Measurer.(textwrap.Segmenter); !ok {
		c.wrapper.Measurer = segmentingMeasurer{c.wrapper.Measurer}
	}
	return c.wrapper
}

func indentString[T IndentValue](v T) string {
	switch x := any(v).(type) {
	case int:
		if x <= 0 {
			return ""
		}
		return strings.Repeat(" ", x)
	case string:
		return x
	}
	return ""
}
