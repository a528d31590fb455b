package ansiwrap

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/rivo/uniseg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// dimFactor scales the foreground of dim text.
const dimFactor = 0.66

// FontFinder locates font files by name (useful for avoiding font library dependencies).
type FontFinder interface {
	// Find returns the filesystem path to a font file matching the given name.
	Find(name string) (string, error)
}

// PreviewConfig controls how styled lines are rendered to an image.
type PreviewConfig struct {
	// Font face to use for rendering. If nil and FontName is empty, uses basicfont.Face7x13.
	Font font.Face

	// FontFinder is used to find fonts by name. Optional.
	FontFinder FontFinder

	// FontName is the font name to find using FontFinder.
	FontName string

	// FontSize is the font size when using FontFinder. Default 14.
	FontSize float64

	// CellWidth and CellHeight override the cell dimensions.
	// If zero, derived from font metrics.
	CellWidth  int
	CellHeight int

	// Columns is the minimum grid width. The grid always grows to fit the
	// widest line, so wrapping at width w and passing Columns w shows the
	// right margin.
	Columns int

	// Palette is the 256-color palette. If nil, uses DefaultPalette.
	Palette *[256]color.RGBA

	// DefaultFG is the default foreground color. If nil, uses DefaultForeground.
	DefaultFG *color.RGBA

	// DefaultBG is the default background color. If nil, uses DefaultBackground.
	DefaultBG *color.RGBA
}

// LoadFont loads a TrueType or OpenType font from a file path.
func LoadFont(path string, size float64) (font.Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open font: %w", err)
	}
	defer f.Close()

	return LoadFontFromReader(f, size)
}

// LoadFontFromReader loads a TrueType or OpenType font from an io.Reader.
func LoadFontFromReader(r io.Reader, size float64) (font.Face, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}

	return LoadFontFromBytes(data, size)
}

// LoadFontFromBytes loads a TrueType or OpenType font from raw bytes.
func LoadFontFromBytes(data []byte, size float64) (font.Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}

	return face, nil
}

// Preview renders lines to an RGBA image using default settings (basicfont, default palette).
func Preview(lines []string) *image.RGBA {
	return PreviewWithConfig(lines, &PreviewConfig{})
}

// PreviewWithConfig renders lines to an RGBA image, one row per line and
// one cell per column of visible width. Each line starts from a clean
// terminal, as TerminateLines output does.
func PreviewWithConfig(lines []string, cfg *PreviewConfig) *image.RGBA {
	if cfg == nil {
		cfg = &PreviewConfig{}
	}

	face := previewFace(cfg)
	cellWidth, cellHeight := cellSize(face, cfg)

	palette := cfg.Palette
	if palette == nil {
		palette = &DefaultPalette
	}

	defaultFG := cfg.DefaultFG
	if defaultFG == nil {
		defaultFG = &DefaultForeground
	}

	defaultBG := cfg.DefaultBG
	if defaultBG == nil {
		defaultBG = &DefaultBackground
	}

	cols := cfg.Columns
	for _, line := range lines {
		cols = max(cols, AnsiLenUnicode(line))
	}

	img := image.NewRGBA(image.Rect(0, 0, cols*cellWidth, len(lines)*cellHeight))
	fillRect(img, img.Bounds(), *defaultBG)

	ascent := face.Metrics().Ascent.Ceil()
	for row, line := range lines {
		y := row * cellHeight
		col := 0

		for _, span := range Spans(line) {
			fg := resolveColorWithPalette(span.Style.Fg, true, palette, defaultFG, defaultBG)
			bg := resolveColorWithPalette(span.Style.Bg, false, palette, defaultFG, defaultBG)

			if span.Style.HasFlag(StyleReverse) {
				fg, bg = bg, fg
			}

			if span.Style.HasFlag(StyleDim) {
				fg = color.RGBA{
					R: uint8(float64(fg.R) * dimFactor),
					G: uint8(float64(fg.G) * dimFactor),
					B: uint8(float64(fg.B) * dimFactor),
					A: fg.A,
				}
			}

			underlineColor := fg
			if span.Style.UnderlineColor != nil {
				underlineColor = resolveColorWithPalette(span.Style.UnderlineColor, true, palette, defaultFG, defaultBG)
			}

			g := uniseg.NewGraphemes(span.Text)
			for g.Next() {
				cluster := g.Str()
				w := clusterWidth(cluster)
				x := col * cellWidth
				cell := image.Rect(x, y, x+w*cellWidth, y+cellHeight)

				fillRect(img, cell, bg)

				if cluster != " " && !span.Style.HasFlag(StyleHidden) {
					d := &font.Drawer{
						Dst:  img,
						Src:  image.NewUniform(fg),
						Face: face,
						Dot:  fixed.P(x, y+ascent),
					}
					d.DrawString(cluster)
				}

				if span.Style.HasFlag(StyleAnyUnderline) {
					underlineY := y + min(ascent+2, cellHeight-1)
					fillRect(img, image.Rect(cell.Min.X, underlineY, cell.Max.X, underlineY+1), underlineColor)
				}

				if span.Style.HasFlag(StyleStrike) {
					strikeY := y + cellHeight/2
					fillRect(img, image.Rect(cell.Min.X, strikeY, cell.Max.X, strikeY+1), fg)
				}

				col += w
			}
		}
	}

	return img
}

// previewFace picks the configured face, then one found by name, then basicfont.
func previewFace(cfg *PreviewConfig) font.Face {
	if cfg.Font != nil {
		return cfg.Font
	}

	if cfg.FontFinder != nil && cfg.FontName != "" {
		size := cfg.FontSize
		if size == 0 {
			size = 14
		}
		if path, err := cfg.FontFinder.Find(cfg.FontName); err == nil {
			if face, err := LoadFont(path, size); err == nil {
				return face
			}
		}
	}

	return basicfont.Face7x13
}

func cellSize(face font.Face, cfg *PreviewConfig) (int, int) {
	cellWidth, cellHeight := cfg.CellWidth, cfg.CellHeight
	if cellWidth == 0 {
		adv, _ := face.GlyphAdvance('M')
		cellWidth = adv.Ceil()
		if cellWidth == 0 {
			cellWidth = 7 // fallback for basicfont
		}
	}
	if cellHeight == 0 {
		cellHeight = face.Metrics().Height.Ceil()
	}
	return cellWidth, cellHeight
}

// clusterWidth is the number of cells a grapheme cluster occupies. It sums
// rune widths so the grid agrees with AnsiLenUnicode.
func clusterWidth(cluster string) int {
	w := 0
	for _, r := range cluster {
		w += runeWidth(r)
	}
	return w
}

// fillRect paints r (clipped to the image) with c.
func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}
