// Package textwrap implements greedy paragraph wrapping.
//
// Widths are taken from an injected Measurer instead of the byte or rune
// length of a string, so callers can wrap text whose visible width differs
// from its length (escape sequences, wide characters). A Measurer that also
// implements Segmenter controls which units may never be split when a long
// word has to be broken.
package textwrap

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultTabSize is the tab stop distance used when expanding tabs.
	DefaultTabSize = 8

	// DefaultPlaceholder marks truncated output when MaxLines is set.
	DefaultPlaceholder = " [...]"
)

// whitespace is the set of characters chunks are split on.
const whitespace = "\t\n\v\f\r "

var whitespaceReplacer = strings.NewReplacer(
	"\t", " ",
	"\n", " ",
	"\v", " ",
	"\f", " ",
	"\r", " ",
)

// Measurer reports the column width of a string.
type Measurer interface {
	Width(s string) int
}

// MeasureFunc adapts an ordinary function to the Measurer interface.
type MeasureFunc func(s string) int

// Width calls f(s).
func (f MeasureFunc) Width(s string) int {
	return f(s)
}

// Segmenter splits a string into units that must stay together when a
// word is broken, such as escape sequences or grapheme clusters.
// Concatenating the segments must reproduce the input.
type Segmenter interface {
	Segments(s string) []string
}

// RuneCount measures strings by their number of code points.
var RuneCount Measurer = MeasureFunc(utf8.RuneCountInString)

// Wrapper holds the wrapping policy. The zero value is not useful; use New.
type Wrapper struct {
	// Width is the maximum line width, indent included. Values < 1 act as 1.
	Width int

	// InitialIndent is prepended to the first line.
	InitialIndent string

	// SubsequentIndent is prepended to every line but the first.
	SubsequentIndent string

	// ExpandTabs replaces tabs with spaces up to the next tab stop.
	ExpandTabs bool

	// TabSize is the tab stop distance. Tabs are removed when <= 0.
	TabSize int

	// ReplaceWhitespace turns every whitespace character into a single space.
	ReplaceWhitespace bool

	// FixSentenceEndings puts two spaces after sentence-ending punctuation.
	FixSentenceEndings bool

	// BreakLongWords breaks words wider than the line; otherwise they overflow.
	BreakLongWords bool

	// DropWhitespace removes whitespace at line starts (except the first) and ends.
	DropWhitespace bool

	// BreakOnHyphens allows breaks after hyphens in compound words.
	BreakOnHyphens bool

	// MaxLines truncates the output to this many lines when > 0.
	MaxLines int

	// Placeholder ends truncated output.
	Placeholder string

	// Measurer measures chunks, indents and placeholders. Nil counts runes.
	Measurer Measurer
}

// New returns a Wrapper with the standard policy for the given width.
func New(width int) *Wrapper {
	return &Wrapper{
		Width:             width,
		ExpandTabs:        true,
		TabSize:           DefaultTabSize,
		ReplaceWhitespace: true,
		BreakLongWords:    true,
		DropWhitespace:    true,
		BreakOnHyphens:    true,
		Placeholder:       DefaultPlaceholder,
		Measurer:          RuneCount,
	}
}

// Wrap wraps a single paragraph into lines no wider than w.Width.
// Empty or whitespace-only input (after dropping) yields no lines.
func (w *Wrapper) Wrap(text string) []string {
	chunks := w.split(w.mungeWhitespace(text))
	if w.FixSentenceEndings {
		fixSentenceEndings(chunks)
	}
	return w.wrapChunks(chunks)
}

// Fill wraps text and joins the lines with newlines.
func (w *Wrapper) Fill(text string) string {
	return strings.Join(w.Wrap(text), "\n")
}

func (w *Wrapper) measure(s string) int {
	if w.Measurer == nil {
		return utf8.RuneCountInString(s)
	}
	return w.Measurer.Width(s)
}

func (w *Wrapper) segments(s string) []string {
	if seg, ok := w.Measurer.(Segmenter); ok {
		return seg.Segments(s)
	}

	out := make([]string, 0, len(s))
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		out = append(out, s[i:i+size])
		i += size
	}
	return out
}

func (w *Wrapper) mungeWhitespace(text string) string {
	if w.ExpandTabs && strings.ContainsRune(text, '\t') {
		text = w.expandTabs(text)
	}
	if w.ReplaceWhitespace {
		text = whitespaceReplacer.Replace(text)
	}
	return text
}

// expandTabs advances columns by measured width so zero-width units do not
// shift tab stops.
func (w *Wrapper) expandTabs(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	col := 0
	for _, seg := range w.segments(text) {
		switch {
		case seg == "\t":
			if w.TabSize > 0 {
				n := w.TabSize - col%w.TabSize
				b.WriteString(strings.Repeat(" ", n))
				col += n
			}
		case strings.ContainsAny(seg, "\r\n"):
			b.WriteString(seg)
			col = 0
		default:
			b.WriteString(seg)
			col += w.measure(seg)
		}
	}
	return b.String()
}

// split cuts text into alternating whitespace and word chunks.
func (w *Wrapper) split(text string) []string {
	var chunks []string
	for i := 0; i < len(text); {
		space := isSpaceByte(text[i])
		j := i + 1
		for j < len(text) && isSpaceByte(text[j]) == space {
			j++
		}
		if space || !w.BreakOnHyphens {
			chunks = append(chunks, text[i:j])
		} else {
			chunks = append(chunks, w.splitWord(text[i:j])...)
		}
		i = j
	}
	return chunks
}

// splitWord breaks a word after hyphens joining letters ("well-known") and
// around em-dashes written as two or more hyphens ("this--that").
// Zero-width segments are skipped when looking at neighbours.
func (w *Wrapper) splitWord(word string) []string {
	if !strings.Contains(word, "-") {
		return []string{word}
	}

	segs := w.segments(word)
	vis := make([]int, 0, len(segs))
	for i, s := range segs {
		if w.measure(s) > 0 {
			vis = append(vis, i)
		}
	}
	at := func(k int) string {
		if k < 0 || k >= len(vis) {
			return ""
		}
		return segs[vis[k]]
	}

	breaks := make(map[int]bool)
	for k := 0; k < len(vis); k++ {
		if at(k) != "-" {
			continue
		}

		end := k
		for at(end+1) == "-" {
			end++
		}
		if end > k {
			if isWordPunct(at(k-1)) && isWordChar(at(end+1)) {
				breaks[vis[k]] = true
				breaks[vis[end]+1] = true
			}
			k = end
			continue
		}

		after := isLetter(at(k-1)) && (isLetter(at(k-2)) || (at(k-2) == "-" && isLetter(at(k-3))))
		before := isLetter(at(k+1)) && (isLetter(at(k+2)) || (at(k+2) == "-" && isLetter(at(k+3))))
		if after && before {
			breaks[vis[k]+1] = true
		}
	}
	if len(breaks) == 0 {
		return []string{word}
	}

	var parts []string
	var cur strings.Builder
	for i, s := range segs {
		if breaks[i] && cur.Len() > 0 {
			parts = append(parts, cur.String())
			cur.Reset()
		}
		cur.WriteString(s)
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

func fixSentenceEndings(chunks []string) {
	for i := 0; i < len(chunks)-1; {
		if chunks[i+1] == " " && endsSentence(chunks[i]) {
			chunks[i+1] = "  "
			i += 2
			continue
		}
		i++
	}
}

// endsSentence matches a lowercase letter, then one of ".!?", then an
// optional closing quote, at the end of s.
func endsSentence(s string) bool {
	n := len(s)
	if n > 0 && (s[n-1] == '"' || s[n-1] == '\'') {
		n--
	}
	if n < 2 {
		return false
	}
	return strings.IndexByte(".!?", s[n-1]) >= 0 && s[n-2] >= 'a' && s[n-2] <= 'z'
}

func (w *Wrapper) wrapChunks(chunks []string) []string {
	width := w.Width
	if width < 1 {
		width = 1
	}

	placeholder := w.Placeholder
	if w.MaxLines > 0 {
		indent := w.InitialIndent
		if w.MaxLines > 1 {
			indent = w.SubsequentIndent
		}
		if w.measure(indent)+w.measure(strings.TrimLeftFunc(placeholder, unicode.IsSpace)) > width {
			placeholder = ""
		}
	}

	// Chunks are consumed from the end of the reversed slice.
	rev := make([]string, len(chunks))
	for i, c := range chunks {
		rev[len(chunks)-1-i] = c
	}

	var lines []string
	for len(rev) > 0 {
		var cur []string
		curLen := 0

		indent := w.InitialIndent
		if len(lines) > 0 {
			indent = w.SubsequentIndent
		}
		avail := width - w.measure(indent)

		if w.DropWhitespace && len(lines) > 0 && isBlank(rev[len(rev)-1]) {
			rev = rev[:len(rev)-1]
		}

		for len(rev) > 0 {
			l := w.measure(rev[len(rev)-1])
			if curLen+l > avail {
				break
			}
			cur = append(cur, rev[len(rev)-1])
			rev = rev[:len(rev)-1]
			curLen += l
		}

		if len(rev) > 0 && w.measure(rev[len(rev)-1]) > avail {
			cur, rev = w.handleLongWord(rev, cur, curLen, avail)
			curLen = 0
			for _, c := range cur {
				curLen += w.measure(c)
			}
		}

		if w.DropWhitespace && len(cur) > 0 && isBlank(cur[len(cur)-1]) {
			curLen -= w.measure(cur[len(cur)-1])
			cur = cur[:len(cur)-1]
		}

		if len(cur) == 0 {
			continue
		}

		rest := len(rev) == 0 || (w.DropWhitespace && len(rev) == 1 && isBlank(rev[0]))
		if w.MaxLines <= 0 || len(lines)+1 < w.MaxLines || (rest && curLen <= avail) {
			lines = append(lines, indent+strings.Join(cur, ""))
			continue
		}

		lines = w.truncate(lines, cur, curLen, indent, avail, width, placeholder)
		break
	}
	return lines
}

// handleLongWord moves as much of the next chunk as fits into cur.
// When cur is empty at least one visible unit is taken so wrapping always
// makes progress.
func (w *Wrapper) handleLongWord(rev, cur []string, curLen, avail int) ([]string, []string) {
	spaceLeft := 1
	if avail >= 1 {
		spaceLeft = avail - curLen
	}

	last := rev[len(rev)-1]
	switch {
	case w.BreakLongWords:
		end := w.cut(last, spaceLeft, len(cur) == 0)
		if w.BreakOnHyphens && w.measure(last) > spaceLeft {
			if h := w.hyphenCut(last, spaceLeft); h > 0 {
				end = h
			}
		}
		if end > 0 {
			cur = append(cur, last[:end])
		}
		if end == len(last) {
			rev = rev[:len(rev)-1]
		} else {
			rev[len(rev)-1] = last[end:]
		}
	case len(cur) == 0:
		cur = append(cur, last)
		rev = rev[:len(rev)-1]
	}
	return cur, rev
}

// cut returns the byte offset of the longest segment prefix of s whose
// width fits in spaceLeft. Zero-width segments following the last fitting
// unit stay with it; leading ones are only taken along with a visible unit.
func (w *Wrapper) cut(s string, spaceLeft int, force bool) int {
	end, pos, col := 0, 0, 0
	took := false
	for _, seg := range w.segments(s) {
		if sw := w.measure(seg); sw > 0 {
			if col+sw > spaceLeft && (took || !force) {
				break
			}
			col += sw
			took = true
		}
		pos += len(seg)
		if took {
			end = pos
		}
	}
	return end
}

// hyphenCut returns the offset just past the last hyphen that fits in
// spaceLeft and follows at least one non-hyphen, or 0.
func (w *Wrapper) hyphenCut(s string, spaceLeft int) int {
	cut, col, pos := 0, 0, 0
	sawOther := false
	for _, seg := range w.segments(s) {
		sw := w.measure(seg)
		if col+sw > spaceLeft {
			break
		}
		col += sw
		pos += len(seg)
		switch {
		case seg == "-":
			if sawOther {
				cut = pos
			}
		case sw > 0:
			sawOther = true
		}
	}
	return cut
}

func (w *Wrapper) truncate(lines, cur []string, curLen int, indent string, avail, width int, placeholder string) []string {
	pw := w.measure(placeholder)
	for len(cur) > 0 {
		last := cur[len(cur)-1]
		if !isBlank(last) && curLen+pw <= avail {
			return append(lines, indent+strings.Join(cur, "")+placeholder)
		}
		curLen -= w.measure(last)
		cur = cur[:len(cur)-1]
	}

	if len(lines) > 0 {
		prev := strings.TrimRightFunc(lines[len(lines)-1], unicode.IsSpace)
		if w.measure(prev)+pw <= width {
			lines[len(lines)-1] = prev + placeholder
			return lines
		}
	}
	return append(lines, indent+strings.TrimLeftFunc(placeholder, unicode.IsSpace))
}

func isSpaceByte(b byte) bool {
	return strings.IndexByte(whitespace, b) >= 0
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func firstRune(s string) rune {
	if s == "" {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// isLetter matches a word character that is not a digit.
func isLetter(s string) bool {
	r := firstRune(s)
	return r == '_' || unicode.IsLetter(r)
}

func isWordChar(s string) bool {
	r := firstRune(s)
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isWordPunct(s string) bool {
	if isWordChar(s) {
		return true
	}
	return s != "" && strings.ContainsRune(`!"'&.,?`, firstRune(s))
}
