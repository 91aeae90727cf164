package weft

import (
	"os"

	"github.com/BurntSushi/toml"
)

// WidthOracle measures the display width of a grapheme cluster in cells.
// Answers spec §9's open question on wide-glyph width: the default uses
// Unicode display width via go-runewidth, but a caller can plug in a
// terminal-specific oracle.
type WidthOracle func(cluster string) int

// Config holds the Terminal controller's configurable defaults.
type Config struct {
	// TitleFallback is used when an element's title is empty. Answers spec
	// §9's open question on the hard-coded title fallback; default "App".
	TitleFallback string `toml:"title_fallback"`
	// DefaultCursorShape is pushed to the backend once at construction, so
	// the backend's cursor shape has a known baseline before any frame has
	// set one.
	DefaultCursorShape CursorShape `toml:"-"`
	// ColorProfileOverride, if non-empty, forces a termenv profile name
	// ("TrueColor", "ANSI256", "ANSI", "Ascii") instead of auto-detecting.
	ColorProfileOverride string `toml:"color_profile"`
	// WidthOracle measures glyph display width; defaults to
	// runewidth.StringWidth-backed measurement if nil.
	WidthOracle WidthOracle `toml:"-"`
}

// DefaultConfig returns the engine's built-in defaults.
func DefaultConfig() Config {
	return Config{
		TitleFallback:      "App",
		DefaultCursorShape: CursorBlock,
	}
}

// tomlConfig is the on-disk shape LoadConfig parses into before merging
// onto DefaultConfig; toml-tagged fields only, since WidthOracle and
// DefaultCursorShape aren't representable in TOML.
type tomlConfig struct {
	TitleFallback        string `toml:"title_fallback"`
	ColorProfileOverride string `toml:"color_profile"`
}

// LoadConfig reads a weft.toml-style configuration file, applying values
// on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	var parsed tomlConfig
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return cfg, err
	}
	if parsed.TitleFallback != "" {
		cfg.TitleFallback = parsed.TitleFallback
	}
	if parsed.ColorProfileOverride != "" {
		cfg.ColorProfileOverride = parsed.ColorProfileOverride
	}
	return cfg, nil
}
