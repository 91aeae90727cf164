package weft

import "github.com/muesli/termenv"

// Profile downgrades colors to whatever the detected (or configured)
// terminal actually supports, applied to a Style before the differ ever
// sees it. New relative to the teacher and the original Rust source — an
// enrichment motivated by wiring github.com/muesli/termenv into the
// engine rather than a feature recovered from original_source.
type Profile struct {
	profile termenv.Profile
}

// DetectProfile probes the environment the way termenv normally would.
func DetectProfile() *Profile {
	return &Profile{profile: termenv.ColorProfile()}
}

// NewProfile builds a Profile from an explicit override name, falling back
// to auto-detection for an unrecognized or empty name.
func NewProfile(override string) *Profile {
	switch override {
	case "TrueColor":
		return &Profile{profile: termenv.TrueColor}
	case "ANSI256":
		return &Profile{profile: termenv.ANSI256}
	case "ANSI":
		return &Profile{profile: termenv.ANSI}
	case "Ascii":
		return &Profile{profile: termenv.Ascii}
	default:
		return DetectProfile()
	}
}

// Downgrade returns a copy of style with its colors downsampled to fit the
// profile's capability, using perceptual 256-color matching (color.go's
// Nearest256) for anything above what the profile supports.
func (p *Profile) Downgrade(style Style) Style {
	style.Foreground = p.downgradeColor(style.Foreground)
	style.Background = p.downgradeColor(style.Background)
	return style
}

func (p *Profile) downgradeColor(c Color) Color {
	switch p.profile {
	case termenv.TrueColor:
		return c
	case termenv.ANSI256:
		if c.Mode == ColorRGB {
			return c.Nearest256()
		}
		return c
	case termenv.ANSI:
		if c.Mode == ColorRGB || c.Mode == ColorPalette {
			return c.Nearest256().toBasic()
		}
		return c
	default: // termenv.Ascii or unknown
		return DefaultColor()
	}
}

// toBasic collapses a 256-palette index down to one of the eight basic
// colors for ANSI-only terminals, picking the basic color whose RGB value is
// nearest by squared distance. The result never has Bright set.
func (c Color) toBasic() Color {
	if c.Mode != ColorPalette {
		return c
	}
	r, g, b := ansi256Palette(int(c.Index))
	bright := false
	idx := BasicColor(0)
	best := -1
	for i := 0; i < 8; i++ {
		br, bg, bb := basicColorRGB(BasicColor(i))
		d := colorDistSq(r, g, b, br, bg, bb)
		if best < 0 || d < best {
			best = d
			idx = BasicColor(i)
		}
	}
	return Color{Mode: ColorBasic, Basic: idx, Bright: bright}
}

func basicColorRGB(c BasicColor) (r, g, b uint8) {
	table := [8][3]uint8{
		{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
		{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	}
	v := table[c]
	return v[0], v[1], v[2]
}

func colorDistSq(r1, g1, b1, r2, g2, b2 uint8) int {
	dr := int(r1) - int(r2)
	dg := int(g1) - int(g2)
	db := int(b1) - int(b2)
	return dr*dr + dg*dg + db*db
}
