package weft

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorMode selects which of Color's fields are meaningful.
type ColorMode uint8

const (
	// ColorDefault is the terminal's own default color.
	ColorDefault ColorMode = iota
	// ColorBasic is one of the eight base colors, optionally bright.
	ColorBasic
	// ColorPalette is a 256-color palette index.
	ColorPalette
	// ColorRGB is a 24-bit true color.
	ColorRGB
)

// BasicColor names the eight base terminal colors.
type BasicColor uint8

const (
	Black BasicColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Color is either the terminal default, a basic 8-color value (optionally
// bright), a 256-color palette index, or a 24-bit RGB triple. Equality is
// structural.
type Color struct {
	Mode   ColorMode
	Basic  BasicColor
	Bright bool
	Index  uint8
	R, G, B uint8
}

// DefaultColor is the terminal's own default foreground/background.
func DefaultColor() Color { return Color{Mode: ColorDefault} }

// Basic builds a basic (non-bright) color.
func Basic(c BasicColor) Color { return Color{Mode: ColorBasic, Basic: c} }

// BrightBasic builds a bright variant of a basic color.
func BrightBasic(c BasicColor) Color { return Color{Mode: ColorBasic, Basic: c, Bright: true} }

// Palette256 builds a 256-color palette color.
func Palette256(index uint8) Color { return Color{Mode: ColorPalette, Index: index} }

// RGB builds a 24-bit true color.
func RGB(r, g, b uint8) Color { return Color{Mode: ColorRGB, R: r, G: g, B: b} }

// Equal reports structural equality.
func (c Color) Equal(other Color) bool { return c == other }

// ParseColor parses a lipgloss-style color literal: an ANSI index ("9"),
// a hex triple ("#ff00ff"), or the empty string for the terminal default.
func ParseColor(s string) (Color, error) {
	if s == "" {
		return DefaultColor(), nil
	}
	lc := lipgloss.Color(s)
	r, g, b, a := lc.RGBA()
	if r == 0 && g == 0 && b == 0 && a == 0 {
		return Color{}, fmt.Errorf("weft: invalid color literal %q", s)
	}
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8)), nil
}

// Nearest256 downsamples an RGB color to the nearest 256-color palette
// index using perceptual (CIE76) distance via go-colorful.
func (c Color) Nearest256() Color {
	if c.Mode != ColorRGB {
		return c
	}
	target, _ := colorful.MakeColor(toNRGBA(c))
	best := uint8(16)
	bestDist := -1.0
	for i := 16; i < 256; i++ {
		pr, pg, pb := ansi256Palette(i)
		cand := colorful.Color{R: float64(pr) / 255, G: float64(pg) / 255, B: float64(pb) / 255}
		d := target.DistanceCIE76(cand)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = uint8(i)
		}
	}
	return Palette256(best)
}

// LerpColor linearly interpolates between two RGB colors in perceptual
// (Lab) space, t clamped to [0, 1].
func LerpColor(a, b Color, t float64) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	ca, _ := colorful.MakeColor(toNRGBA(a))
	cb, _ := colorful.MakeColor(toNRGBA(b))
	mixed := ca.BlendLab(cb, t)
	r, g, bl := mixed.RGB255()
	return RGB(r, g, bl)
}

type rgbaLike struct{ r, g, b, a uint8 }

func (c rgbaLike) RGBA() (r, g, b, a uint32) {
	r = uint32(c.r) * 0x101
	g = uint32(c.g) * 0x101
	b = uint32(c.b) * 0x101
	a = uint32(c.a) * 0x101
	return
}

func toNRGBA(c Color) rgbaLike {
	return rgbaLike{r: c.R, g: c.G, b: c.B, a: 255}
}

// ansi256Palette returns the approximate RGB value of a 256-color palette
// index, following the standard 6x6x6 cube plus grayscale ramp layout.
func ansi256Palette(i int) (r, g, b uint8) {
	if i < 16 {
		return 0, 0, 0
	}
	if i >= 232 {
		v := uint8(8 + (i-232)*10)
		return v, v, v
	}
	i -= 16
	levels := [6]uint8{0, 95, 135, 175, 215, 255}
	r = levels[(i/36)%6]
	g = levels[(i/6)%6]
	b = levels[i%6]
	return
}

// Intensity is the text weight: normal, bold, or dim. Mutually exclusive,
// unlike the teacher's independent bold/dim bitflags.
type Intensity uint8

const (
	IntensityNormal Intensity = iota
	IntensityBold
	IntensityDim
)

// Attributes holds text decoration flags: intensity plus four independent
// booleans.
type Attributes struct {
	Intensity   Intensity
	Italic      bool
	Underlined  bool
	Blinking    bool
	CrossedOut  bool
}

// Equal reports structural equality.
func (a Attributes) Equal(other Attributes) bool { return a == other }

// Style is a foreground color, a background color, and text attributes.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attributes
}

// DefaultStyle is (Default, Default, normal/all-false).
func DefaultStyle() Style { return Style{} }

// Equal reports structural equality.
func (s Style) Equal(other Style) bool { return s == other }

// Fg returns a copy with the foreground color set.
func (s Style) Fg(c Color) Style { s.Foreground = c; return s }

// Bg returns a copy with the background color set.
func (s Style) Bg(c Color) Style { s.Background = c; return s }

// Bold returns a copy with bold intensity.
func (s Style) Bold() Style { s.Attributes.Intensity = IntensityBold; return s }

// Dim returns a copy with dim intensity.
func (s Style) Dim() Style { s.Attributes.Intensity = IntensityDim; return s }

// NormalIntensity returns a copy with normal intensity.
func (s Style) NormalIntensity() Style { s.Attributes.Intensity = IntensityNormal; return s }

// Italic returns a copy with the italic attribute set.
func (s Style) Italic() Style { s.Attributes.Italic = true; return s }

// Underlined returns a copy with the underlined attribute set.
func (s Style) Underlined() Style { s.Attributes.Underlined = true; return s }

// Blink returns a copy with the blinking attribute set.
func (s Style) Blink() Style { s.Attributes.Blinking = true; return s }

// Strikethrough returns a copy with the crossed-out attribute set.
func (s Style) Strikethrough() Style { s.Attributes.CrossedOut = true; return s }

// CursorShape is the visual shape of the terminal cursor.
type CursorShape uint8

const (
	CursorBlock CursorShape = iota
	CursorUnderline
	CursorBar
)

// Cursor is a position plus shape plus blink state.
type Cursor struct {
	Pos      Vec2[uint16]
	Shape    CursorShape
	Blinking bool
}

// DefaultCursor matches the teacher's DefaultCursor(): a steady block
// cursor at the origin, visible by convention of being non-nil in Buffer.
func DefaultCursor() Cursor {
	return Cursor{Shape: CursorBlock, Blinking: false}
}
