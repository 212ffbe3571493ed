package cli

import (
	"github.com/BurntSushi/toml"

	"github.com/k0ral/rainbox/pkg/chunk"
)

// Theme configures the default colorization of the box commands. Loaded from
// a TOML file via --theme; every field is optional.
//
// Example:
//
//	foreground = "#d0d0d0"
//	background = "#1c1c2e"
//	padding = 1
//
//	[colors]
//	accent = "#5f87d7"
//	warn = "220"
type Theme struct {
	// Foreground is the default text color, any form accepted by Radiant.
	Foreground string `toml:"foreground"`

	// Background is the default blank-fill color.
	Background string `toml:"background"`

	// Padding is the default banner padding in cells.
	Padding int `toml:"padding"`

	// Colors maps names to color values, so command flags can say
	// --fg accent instead of repeating hex values.
	Colors map[string]string `toml:"colors"`
}

// defaultTheme returns the built-in theme: terminal default colors, one cell
// of banner padding.
func defaultTheme() Theme {
	return Theme{Padding: 1}
}

// loadTheme reads a TOML theme file.
func loadTheme(path string) (Theme, error) {
	t := defaultTheme()
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// Radiant resolves a color reference against the theme: a name from the
// [colors] table, or a literal value handled by chunk.Parse. Empty input
// yields the zero Radiant.
func (t Theme) Radiant(ref string) chunk.Radiant {
	if v, ok := t.Colors[ref]; ok {
		return chunk.Parse(v)
	}
	return chunk.Parse(ref)
}

// foreground resolves ref, falling back to the theme default.
func (t Theme) foreground(ref string) chunk.Radiant {
	if ref == "" {
		ref = t.Foreground
	}
	return t.Radiant(ref)
}

// background resolves ref, falling back to the theme default.
func (t Theme) background(ref string) chunk.Radiant {
	if ref == "" {
		ref = t.Background
	}
	return t.Radiant(ref)
}
