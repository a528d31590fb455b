package textwrap

import (
	"reflect"
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		width int
		input string
		want  []string
	}{
		{"fits", 20, "Hello world!", []string{"Hello world!"}},
		{"greedy", 10, "The quick brown fox jumps", []string{"The quick", "brown fox", "jumps"}},
		{"exact width", 9, "The quick brown", []string{"The quick", "brown"}},
		{"collapses nothing inside lines", 20, "a  b", []string{"a  b"}},
		{"drops whitespace at breaks", 5, "aaa   bbb", []string{"aaa", "bbb"}},
		{"keeps leading whitespace of first line", 10, "  indented", []string{"  indented"}},
		{"long word", 4, "abcdefghij", []string{"abcd", "efgh", "ij"}},
		{"newlines become spaces", 20, "one\ntwo", []string{"one two"}},
		{"empty", 10, "", nil},
		{"only whitespace", 10, "   ", nil},
		{"width below one", 0, "ab", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.width).Wrap(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Wrap(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWrapIndent(t *testing.T) {
	w := New(12)
	w.InitialIndent = "* "
	w.SubsequentIndent = "  "

	got := w.Wrap("alpha beta gamma delta")
	want := []string{"* alpha beta", "  gamma", "  delta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap() = %q, want %q", got, want)
	}
}

func TestWrapMaxLines(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		maxLines int
		input    string
		want     []string
	}{
		{"fits in one line", 12, 1, "Hello world!", []string{"Hello world!"}},
		{"placeholder", 11, 1, "Hello world!", []string{"Hello [...]"}},
		{"two lines", 12, 2, "one two three four five", []string{"one two", "three [...]"}},
		{"placeholder alone", 10, 2, "one two three four five", []string{"one two", "[...]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(tt.width)
			w.MaxLines = tt.maxLines
			got := w.Wrap(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Wrap(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWrapPlaceholderTooLarge(t *testing.T) {
	w := New(3)
	w.MaxLines = 1

	got := w.Wrap("Hello world")
	want := []string{"Hel"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap() = %q, want %q", got, want)
	}
}

func TestWrapNoBreakLongWords(t *testing.T) {
	w := New(4)
	w.BreakLongWords = false

	got := w.Wrap("ab abcdefgh cd")
	want := []string{"ab", "abcdefgh", "cd"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap() = %q, want %q", got, want)
	}
}

func TestExpandTabs(t *testing.T) {
	w := New(80)
	w.ReplaceWhitespace = false

	tests := []struct {
		input string
		want  string
	}{
		{"a\tb", "a" + strings.Repeat(" ", 7) + "b"},
		{"abcdefgh\tb", "abcdefgh" + strings.Repeat(" ", 8) + "b"},
		{"\tx", strings.Repeat(" ", 8) + "x"},
	}

	for _, tt := range tests {
		got := w.mungeWhitespace(tt.input)
		if got != tt.want {
			t.Errorf("mungeWhitespace(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	w.TabSize = 0
	if got := w.mungeWhitespace("a\tb"); got != "ab" {
		t.Errorf("mungeWhitespace with TabSize 0 = %q, want %q", got, "ab")
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Hello  world", []string{"Hello", "  ", "world"}},
		{"well-known", []string{"well-", "known"}},
		{"this--that", []string{"this", "--", "that"}},
		{"x-ray", []string{"x-ray"}},
		{"-flag", []string{"-flag"}},
		{"1-2", []string{"1-2"}},
	}

	w := New(80)
	for _, tt := range tests {
		got := w.split(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("split(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	w.BreakOnHyphens = false
	if got := w.split("well-known"); !reflect.DeepEqual(got, []string{"well-known"}) {
		t.Errorf("split without hyphen breaks = %q", got)
	}
}

func TestBreakOnHyphen(t *testing.T) {
	got := New(8).Wrap("a well-known fact")
	want := []string{"a well-", "known", "fact"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap() = %q, want %q", got, want)
	}
}

func TestFixSentenceEndings(t *testing.T) {
	w := New(80)
	w.FixSentenceEndings = true

	got := w.Fill("It ends. Then more. A 1. b")
	want := "It ends.  Then more.  A 1. b"
	if got != want {
		t.Errorf("Fill() = %q, want %q", got, want)
	}
}

// doubleWidth counts every rune as two columns.
type doubleWidth struct{}

func (doubleWidth) Width(s string) int {
	return 2 * len([]rune(s))
}

func TestMeasurerIsUsed(t *testing.T) {
	w := New(10)
	w.Measurer = doubleWidth{}

	got := w.Wrap("ab cd ef")
	want := []string{"ab cd", "ef"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap() = %q, want %q", got, want)
	}
}

// bracketSegmenter keeps "[...]" groups whole and gives them no width.
type bracketSegmenter struct{}

func (bracketSegmenter) Width(s string) int {
	n := 0
	depth := 0
	for _, r := range s {
		switch {
		case r == '[':
			depth++
		case r == ']':
			depth--
		case depth == 0:
			n++
		}
	}
	return n
}

func (bracketSegmenter) Segments(s string) []string {
	var out []string
	for len(s) > 0 {
		if s[0] == '[' {
			end := strings.IndexByte(s, ']')
			out = append(out, s[:end+1])
			s = s[end+1:]
			continue
		}
		out = append(out, s[:1])
		s = s[1:]
	}
	return out
}

func TestLongWordKeepsSegments(t *testing.T) {
	w := New(3)
	w.Measurer = bracketSegmenter{}

	got := w.Wrap("ab[x]cd[y]ef")
	want := []string{"ab[x]c", "d[y]ef"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap() = %q, want %q", got, want)
	}
}

func TestLongWordLeadingSegmentWaits(t *testing.T) {
	w := New(6)
	w.Measurer = bracketSegmenter{}

	got := w.Wrap("keeps [x]running")
	want := []string{"keeps", "[x]runnin", "g"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap() = %q, want %q", got, want)
	}
}

func TestFill(t *testing.T) {
	got := New(10).Fill("The quick brown fox")
	want := "The quick\nbrown fox"
	if got != want {
		t.Errorf("Fill() = %q, want %q", got, want)
	}
}
