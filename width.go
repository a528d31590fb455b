package ansiwrap

import (
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"github.com/unilibs/uniwidth"
	"golang.org/x/text/unicode/norm"

	"github.com/danielgatis/go-ansiwrap/internal/textwrap"
)

// newlinePlaceholder stands in for "\n" so a measurement never spans lines.
const newlinePlaceholder = "_"

// Measurer reports the column width of a string. Wrap measures chunks,
// indents and placeholders with it.
type Measurer = textwrap.Measurer

// MeasureFunc adapts an ordinary function to the Measurer interface.
type MeasureFunc = textwrap.MeasureFunc

var (
	// VisibleWidth measures terminal columns, ignoring escape sequences. It is the default Measurer.
	VisibleWidth Measurer = MeasureFunc(AnsiLenUnicode)

	// CodePoints measures the number of code points, ignoring escape sequences.
	CodePoints Measurer = MeasureFunc(AnsiLen)
)

// runeWidth returns the display width: 2 for wide characters (CJK, emoji), 1 for normal, 0 for zero-width (combining marks, control chars).
// Lookups that fail are clamped to 0.
func runeWidth(r rune) int {
	if w := uniwidth.RuneWidth(r); w > 0 {
		return w
	}
	return 0
}

// isPlainASCII reports whether s holds only printable ASCII, for which
// width equals length.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b < 0x20 || b > 0x7e {
			return false
		}
	}
	return true
}

// AnsiLen returns the number of code points in s once escape sequences are removed.
func AnsiLen(s string) int {
	return utf8.RuneCountInString(StripColor(s))
}

// AnsiLenUnicode returns the terminal column width of s. Escape sequences
// count as zero, the text is NFC-normalized, and each newline counts as
// one column.
func AnsiLenUnicode(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}

	visible := norm.NFC.String(StripColor(s))
	visible = strings.ReplaceAll(visible, "\n", newlinePlaceholder)

	w := 0
	for _, r := range visible {
		w += runeWidth(r)
	}
	return w
}

// Len measures v. Strings report their visible width (AnsiLenUnicode),
// values with a length (slices, arrays, maps, channels) report their
// element count, and anything else reports 0.
func Len(v any) int {
	switch x := v.(type) {
	case nil:
		return 0
	case string:
		return AnsiLenUnicode(x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return AnsiLenUnicode(rv.String())
	case reflect.Array, reflect.Slice, reflect.Map, reflect.Chan:
		return rv.Len()
	case reflect.Pointer:
		if rv.Elem().Kind() == reflect.Array {
			return rv.Elem().Len()
		}
	}
	return 0
}

// segmentingMeasurer keeps escape sequences and grapheme clusters whole
// when the wrap engine has to break a long word.
type segmentingMeasurer struct {
	Measurer
}

// Segments splits s into escape sequences and grapheme clusters.
func (segmentingMeasurer) Segments(s string) []string {
	return segments(s)
}

func segments(s string) []string {
	out := make([]string, 0, len(s))
	appendClusters := func(text string) {
		g := uniseg.NewGraphemes(text)
		for g.Next() {
			out = append(out, g.Str())
		}
	}

	pos := 0
	for _, m := range Scan(s) {
		if m.Start > pos {
			appendClusters(s[pos:m.Start])
		}
		out = append(out, m.Text)
		pos = m.End
	}
	if pos < len(s) {
		appendClusters(s[pos:])
	}
	return out
}
