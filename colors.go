package ansiwrap

import (
	"image/color"
	"strconv"
)

// DefaultPalette is the standard 256-color palette: 16 named colors (0-15), 216 color cube (16-231), 24 grayscale (232-255).
var DefaultPalette = [256]color.RGBA{
	// Standard colors (0-7)
	{0, 0, 0, 255},       // Black
	{205, 49, 49, 255},   // Red
	{13, 188, 121, 255},  // Green
	{229, 229, 16, 255},  // Yellow
	{36, 114, 200, 255},  // Blue
	{188, 63, 188, 255},  // Magenta
	{17, 168, 205, 255},  // Cyan
	{229, 229, 229, 255}, // White

	// Bright colors (8-15)
	{102, 102, 102, 255}, // Bright Black
	{241, 76, 76, 255},   // Bright Red
	{35, 209, 139, 255},  // Bright Green
	{245, 245, 67, 255},  // Bright Yellow
	{59, 142, 234, 255},  // Bright Blue
	{214, 112, 214, 255}, // Bright Magenta
	{41, 184, 219, 255},  // Bright Cyan
	{255, 255, 255, 255}, // Bright White
}

func init() {
	// 216 color cube (16-231)
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[i] = color.RGBA{
					R: uint8(r * 51),
					G: uint8(g * 51),
					B: uint8(b * 51),
					A: 255,
				}
				i++
			}
		}
	}

	// Grayscale (232-255)
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		DefaultPalette[232+j] = color.RGBA{gray, gray, gray, 255}
	}
}

// DefaultForeground is the default text color (light gray).
var DefaultForeground = color.RGBA{229, 229, 229, 255}

// DefaultBackground is the default background color (black).
var DefaultBackground = color.RGBA{0, 0, 0, 255}

// NamedColor is one of the 16 ANSI colors set by SGR 30-37, 40-47, 90-97 and 100-107.
// Names 0-7 are the standard colors, 8-15 their bright variants.
type NamedColor struct {
	Name int
}

// RGBA implements color.Color using DefaultPalette.
func (c NamedColor) RGBA() (r, g, b, a uint32) {
	if c.Name < 0 || c.Name > 15 {
		return DefaultForeground.RGBA()
	}
	return DefaultPalette[c.Name].RGBA()
}

// IndexedColor references a color by palette index (0-255), as set by SGR 38;5;n.
type IndexedColor struct {
	Index int
}

// RGBA implements color.Color using DefaultPalette.
func (c IndexedColor) RGBA() (r, g, b, a uint32) {
	if c.Index < 0 || c.Index > 255 {
		return DefaultForeground.RGBA()
	}
	return DefaultPalette[c.Index].RGBA()
}

// colorParams renders c as SGR parameters. base and brightBase are the
// first codes of the standard and bright ranges (30/90 for foreground,
// 40/100 for background, 0 when the attribute has no short form) and
// extended is the introducer for indexed and true colors (38, 48, 58).
func colorParams(c color.Color, base, brightBase int, extended string) []string {
	switch v := c.(type) {
	case nil:
		return nil
	case NamedColor:
		switch {
		case base > 0 && v.Name >= 0 && v.Name < 8:
			return []string{strconv.Itoa(base + v.Name)}
		case brightBase > 0 && v.Name >= 8 && v.Name < 16:
			return []string{strconv.Itoa(brightBase + v.Name - 8)}
		case v.Name >= 0 && v.Name < 16:
			return []string{extended, "5", strconv.Itoa(v.Name)}
		}
		return nil
	case IndexedColor:
		return []string{extended, "5", strconv.Itoa(v.Index)}
	default:
		rgba := toRGBA(c)
		return []string{
			extended, "2",
			strconv.Itoa(int(rgba.R)),
			strconv.Itoa(int(rgba.G)),
			strconv.Itoa(int(rgba.B)),
		}
	}
}

// resolveColorWithPalette resolves a color using a custom palette.
// nil means the default foreground or background.
func resolveColorWithPalette(c color.Color, fg bool, palette *[256]color.RGBA, defaultFG, defaultBG *color.RGBA) color.RGBA {
	if c == nil {
		if fg {
			return *defaultFG
		}
		return *defaultBG
	}

	switch v := c.(type) {
	case NamedColor:
		if v.Name >= 0 && v.Name < 16 {
			return palette[v.Name]
		}
	case IndexedColor:
		if v.Index >= 0 && v.Index < 256 {
			return palette[v.Index]
		}
	default:
		return toRGBA(c)
	}

	if fg {
		return *defaultFG
	}
	return *defaultBG
}

func toRGBA(c color.Color) color.RGBA {
	if v, ok := c.(color.RGBA); ok {
		return v
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
}
