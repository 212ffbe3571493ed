package cli

import (
	"github.com/spf13/cobra"

	"github.com/k0ral/rainbox/pkg/rainbox"
)

// viewOpts holds the command-line flags for the view command.
type viewOpts struct {
	width  int    // viewport width in cells (0 = full width)
	height int    // viewport height in rows (0 = full height)
	align  string // which columns survive a horizontal trim
	valign string // which rows survive a vertical trim
	fg     string // text color
	bg     string // fill color
	output string // output file (default stdout)
	color  string // color mode
}

// newViewCmd creates the view command: clip text to a fixed viewport.
func newViewCmd() *cobra.Command {
	opts := viewOpts{align: "left", valign: "top"}

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Clip text to a fixed viewport",
		Long: `Clip text to a fixed viewport.

Reads the file (or stdin when omitted) into a box and trims it to at most
--width columns and --height rows. Alignment selects which part survives:
--align right keeps line endings, --valign bottom keeps the last rows.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			ha, err := parseHorizAlign(opts.align)
			if err != nil {
				return err
			}
			va, err := parseVertAlign(opts.valign)
			if err != nil {
				return err
			}

			lines, err := readLines(cmd, path)
			if err != nil {
				return err
			}

			theme := themeFromContext(cmd.Context())
			b := boxFromLines(lines, theme.foreground(opts.fg), theme.background(opts.bg))
			loggerFromContext(cmd.Context()).Debugf("Loaded %d×%d box", b.Height(), b.Width())

			rows, cols := b.Height(), b.Width()
			if opts.height > 0 {
				rows = rainbox.Rows(opts.height)
			}
			if opts.width > 0 {
				cols = rainbox.Cols(opts.width)
			}
			return emitBox(cmd, rainbox.View(rows, cols, va, ha, b), opts.output, opts.color)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "viewport width in cells (default: full)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "viewport height in rows (default: full)")
	cmd.Flags().StringVar(&opts.align, "align", opts.align, "horizontal alignment: left, center, right")
	cmd.Flags().StringVar(&opts.valign, "valign", opts.valign, "vertical alignment: top, center, bottom")
	cmd.Flags().StringVar(&opts.fg, "fg", "", "text color")
	cmd.Flags().StringVar(&opts.bg, "bg", "", "fill color")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "color mode: auto, never, 16, 256, always")

	return cmd
}
