package ansiwrap

import "testing"

func TestSpans(t *testing.T) {
	got := Spans("a\x1b[1mb\x1b[31mc\x1b[0m d\x1b[K")
	want := []Span{
		{Text: "a"},
		{Text: "b", Style: Style{Flags: StyleBold}},
		{Text: "c", Style: Style{Flags: StyleBold, Fg: NamedColor{Name: 1}}},
		{Text: " d"},
	}

	if len(got) != len(want) {
		t.Fatalf("Spans() returned %d spans, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i].Text != want[i].Text {
			t.Errorf("span %d text = %q, want %q", i, got[i].Text, want[i].Text)
		}
		if !got[i].Style.Equal(want[i].Style) {
			t.Errorf("span %d style = %q, want %q", i, got[i].Style.Code(), want[i].Style.Code())
		}
	}
}

func TestSpansMergesEqualStyles(t *testing.T) {
	got := Spans("\x1b[1ma\x1b[1mb\x1b[22;1mc")
	if len(got) != 1 || got[0].Text != "abc" {
		t.Errorf("Spans() = %+v, want one bold span \"abc\"", got)
	}
}

func TestSpansEmpty(t *testing.T) {
	for _, s := range []string{"", "\x1b[31m\x1b[0m"} {
		if got := Spans(s); got != nil {
			t.Errorf("Spans(%q) = %+v, want nil", s, got)
		}
	}
}
