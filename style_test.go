package ansiwrap

import (
	"image/color"
	"testing"
)

func TestStyleFlags(t *testing.T) {
	var s Style

	s.SetFlag(StyleBold)
	if !s.HasFlag(StyleBold) {
		t.Error("expected bold flag")
	}

	s.SetFlag(StyleItalic)
	if !s.HasFlag(StyleBold) || !s.HasFlag(StyleItalic) {
		t.Error("expected both flags")
	}

	s.ClearFlag(StyleBold)
	if s.HasFlag(StyleBold) {
		t.Error("expected bold flag to be cleared")
	}
	if !s.HasFlag(StyleItalic) {
		t.Error("expected italic flag to remain")
	}
}

func TestStyleIsZero(t *testing.T) {
	if !(Style{}).IsZero() {
		t.Error("expected zero style")
	}
	if (Style{Fg: NamedColor{Name: 1}}).IsZero() {
		t.Error("style with a foreground is not zero")
	}
	if (Style{Flags: StyleDim}).IsZero() {
		t.Error("style with a flag is not zero")
	}
}

func TestStyleCode(t *testing.T) {
	tests := []struct {
		name     string
		style    Style
		expected string
	}{
		{"zero", Style{}, ""},
		{"bold", Style{Flags: StyleBold}, "\x1b[1m"},
		{"flag order", Style{Flags: StyleStrike | StyleBold | StyleReverse}, "\x1b[1;7;9m"},
		{"curly underline", Style{Flags: StyleCurlyUnderline}, "\x1b[4:3m"},
		{"named fg", Style{Fg: NamedColor{Name: 1}}, "\x1b[31m"},
		{"bright fg", Style{Fg: NamedColor{Name: 9}}, "\x1b[91m"},
		{"named bg", Style{Bg: NamedColor{Name: 4}}, "\x1b[44m"},
		{"bright bg", Style{Bg: NamedColor{Name: 15}}, "\x1b[107m"},
		{"indexed", Style{Fg: IndexedColor{Index: 208}}, "\x1b[38;5;208m"},
		{"rgb", Style{Bg: color.RGBA{R: 1, G: 2, B: 3, A: 255}}, "\x1b[48;2;1;2;3m"},
		{"underline color", Style{Flags: StyleUnderline, UnderlineColor: NamedColor{Name: 2}}, "\x1b[4;58;5;2m"},
		{
			"everything in order",
			Style{
				Flags: StyleBold | StyleItalic,
				Fg:    NamedColor{Name: 2},
				Bg:    IndexedColor{Index: 17},
			},
			"\x1b[1;3;32;48;5;17m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.style.Code(); got != tt.expected {
				t.Errorf("Code() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestStyleEqual(t *testing.T) {
	a := Style{Flags: StyleBold, Fg: NamedColor{Name: 1}}
	b := Style{Flags: StyleBold, Fg: NamedColor{Name: 1}}
	if !a.Equal(b) {
		t.Error("expected equal styles")
	}

	b.Fg = NamedColor{Name: 2}
	if a.Equal(b) {
		t.Error("expected different styles")
	}
}

func TestColorRGBA(t *testing.T) {
	if got := toRGBA(NamedColor{Name: 1}); got != DefaultPalette[1] {
		t.Errorf("NamedColor(1) = %v, want %v", got, DefaultPalette[1])
	}
	if got := toRGBA(IndexedColor{Index: 196}); got != DefaultPalette[196] {
		t.Errorf("IndexedColor(196) = %v, want %v", got, DefaultPalette[196])
	}
	if got := toRGBA(IndexedColor{Index: 300}); got != DefaultForeground {
		t.Errorf("IndexedColor(300) = %v, want default foreground", got)
	}
}

func TestDefaultPalette(t *testing.T) {
	if got := DefaultPalette[16]; got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("palette[16] = %v", got)
	}
	if got := DefaultPalette[231]; got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("palette[231] = %v", got)
	}
	if got := DefaultPalette[232]; got != (color.RGBA{8, 8, 8, 255}) {
		t.Errorf("palette[232] = %v", got)
	}
	if got := DefaultPalette[255]; got != (color.RGBA{238, 238, 238, 255}) {
		t.Errorf("palette[255] = %v", got)
	}
}

func TestResolveColorWithPalette(t *testing.T) {
	fg, bg := DefaultForeground, DefaultBackground
	rgb := color.RGBA{10, 20, 30, 255}

	tests := []struct {
		name     string
		c        color.Color
		fg       bool
		expected color.RGBA
	}{
		{"nil fg", nil, true, fg},
		{"nil bg", nil, false, bg},
		{"named", NamedColor{Name: 3}, true, DefaultPalette[3]},
		{"indexed", IndexedColor{Index: 100}, false, DefaultPalette[100]},
		{"rgb", rgb, true, rgb},
		{"out of range bg", IndexedColor{Index: -1}, false, bg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveColorWithPalette(tt.c, tt.fg, &DefaultPalette, &fg, &bg)
			if got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}
