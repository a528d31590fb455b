package ansiwrap

// Span is a run of visible text drawn with one style.
type Span struct {
	Text  string
	Style Style
}

// Spans splits a single line into runs of visible text, starting from a
// clean terminal. Adjacent runs with the same style are merged and escape
// sequences never appear in the returned text.
func Spans(line string) []Span {
	state := NewStyleState()

	var spans []Span
	emit := func(text string) {
		if text == "" {
			return
		}
		style := state.Style()
		if n := len(spans); n > 0 && spans[n-1].Style.Equal(style) {
			spans[n-1].Text += text
			return
		}
		spans = append(spans, Span{Text: text, Style: style})
	}

	pos := 0
	for _, m := range Scan(line) {
		emit(line[pos:m.Start])
		state.Consume(m.Code())
		pos = m.End
	}
	emit(line[pos:])
	return spans
}
