package cli

import (
	"fmt"

	"github.com/muesli/termenv"

	"github.com/k0ral/rainbox/pkg/rainbox"
)

// parseHorizAlign maps a flag value to a horizontal alignment.
func parseHorizAlign(s string) (rainbox.HorizAlign, error) {
	switch s {
	case "left":
		return rainbox.Left, nil
	case "center":
		return rainbox.CenterH, nil
	case "right":
		return rainbox.Right, nil
	}
	return rainbox.Left, fmt.Errorf("invalid alignment: %s (must be 'left', 'center', or 'right')", s)
}

// parseVertAlign maps a flag value to a vertical alignment.
func parseVertAlign(s string) (rainbox.VertAlign, error) {
	switch s {
	case "top":
		return rainbox.Top, nil
	case "center":
		return rainbox.CenterV, nil
	case "bottom":
		return rainbox.Bottom, nil
	}
	return rainbox.Top, fmt.Errorf("invalid alignment: %s (must be 'top', 'center', or 'bottom')", s)
}

// parseColorMode maps the --color flag to an output profile. "auto" detects
// from the environment at write time and is signalled by returning detect =
// true.
func parseColorMode(s string) (profile termenv.Profile, detect bool, err error) {
	switch s {
	case "auto", "":
		return termenv.Ascii, true, nil
	case "never":
		return termenv.Ascii, false, nil
	case "16":
		return termenv.ANSI, false, nil
	case "256":
		return termenv.ANSI256, false, nil
	case "always", "true":
		return termenv.TrueColor, false, nil
	}
	return termenv.Ascii, false, fmt.Errorf("invalid color mode: %s (must be 'auto', 'never', '16', '256', or 'always')", s)
}
