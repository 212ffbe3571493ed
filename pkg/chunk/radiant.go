package chunk

import "github.com/muesli/termenv"

// Radiant is a paired color selection: an explicit ANSI-space color and an
// extended (256-color/truecolor) color. The encoder picks the selection that
// matches the output profile, falling back to downsampling the extended
// selection when no ANSI selection was given.
//
// The zero Radiant selects nothing: blank fill tinted with it renders as
// plain spaces and text keeps the terminal's default colors.
type Radiant struct {
	// ANSI is the color used on 16-color terminals. Optional.
	ANSI termenv.Color

	// Extended is the color used on 256-color and truecolor terminals.
	Extended termenv.Color
}

// RGB returns a Radiant selecting a truecolor hex value (e.g. "#5f87d7").
// On lesser terminals the value is downsampled by the output profile.
func RGB(hex string) Radiant {
	return Radiant{Extended: termenv.RGBColor(hex)}
}

// ANSI256 returns a Radiant selecting one of the 256 indexed colors.
func ANSI256(n int) Radiant {
	return Radiant{Extended: termenv.ANSI256Color(n)}
}

// ANSI16 returns a Radiant selecting one of the 16 basic ANSI colors.
// The selection is used verbatim on every profile that supports color.
func ANSI16(n int) Radiant {
	c := termenv.ANSIColor(n)
	return Radiant{ANSI: c, Extended: c}
}

// Parse interprets s as a color: "#rrggbb" hex values and decimal ANSI
// indices are accepted. An empty or unparseable string yields the zero
// Radiant.
func Parse(s string) Radiant {
	if s == "" {
		return Radiant{}
	}
	c := termenv.TrueColor.Color(s)
	if c == nil {
		return Radiant{}
	}
	if a, ok := c.(termenv.ANSIColor); ok {
		return Radiant{ANSI: a, Extended: a}
	}
	return Radiant{Extended: c}
}

// IsZero reports whether r selects no color at all.
func (r Radiant) IsZero() bool {
	return r.ANSI == nil && r.Extended == nil
}

// color resolves the selection for the given profile. Returns nil when
// nothing should be painted.
func (r Radiant) color(p termenv.Profile) termenv.Color {
	switch p {
	case termenv.Ascii:
		return nil
	case termenv.ANSI:
		if r.ANSI != nil {
			return r.ANSI
		}
		if r.Extended != nil {
			return p.Convert(r.Extended)
		}
	default:
		if r.Extended != nil {
			return p.Convert(r.Extended)
		}
		if r.ANSI != nil {
			return r.ANSI
		}
	}
	return nil
}
