package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/k0ral/rainbox/pkg/chunk"
	"github.com/k0ral/rainbox/pkg/rainbox"
)

// bannerOpts holds the command-line flags for the banner command.
type bannerOpts struct {
	width   int    // target width in cells (0 = fit content)
	height  int    // target height in rows (0 = fit content)
	pad     int    // blank padding around the text (-1 = theme default)
	align   string // horizontal alignment: left, center, right
	valign  string // vertical alignment: top, center, bottom
	fg      string // text color (name or literal)
	bg      string // fill color (name or literal)
	output  string // output file (default stdout)
	color   string // color mode: auto, never, 16, 256, always
}

// newBannerCmd creates the banner command: wrap text in a padded, aligned,
// colored box.
func newBannerCmd() *cobra.Command {
	opts := bannerOpts{pad: -1, align: "center", valign: "center"}

	cmd := &cobra.Command{
		Use:   "banner [text...]",
		Short: "Wrap text in a padded, colored box",
		Long: `Wrap text in a padded, colored box.

Arguments are joined with spaces; embedded newlines start new rows. The box
grows around the text by --pad cells, then is resized to --width/--height if
given, trimming or padding according to --align/--valign.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			theme := themeFromContext(cmd.Context())
			b, err := buildBanner(theme, opts, strings.Join(args, " "))
			if err != nil {
				return err
			}
			return emitBox(cmd, b, opts.output, opts.color)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "target width in cells (default: fit)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "target height in rows (default: fit)")
	cmd.Flags().IntVarP(&opts.pad, "pad", "p", -1, "padding around the text (default: theme)")
	cmd.Flags().StringVar(&opts.align, "align", opts.align, "horizontal alignment: left, center, right")
	cmd.Flags().StringVar(&opts.valign, "valign", opts.valign, "vertical alignment: top, center, bottom")
	cmd.Flags().StringVar(&opts.fg, "fg", "", "text color")
	cmd.Flags().StringVar(&opts.bg, "bg", "", "fill color")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "color mode: auto, never, 16, 256, always")

	return cmd
}

// buildBanner composes the banner box: text lines stacked per --align,
// surrounded by padding, then resized to any fixed dimensions.
func buildBanner(theme Theme, opts bannerOpts, text string) (rainbox.Box, error) {
	ha, err := parseHorizAlign(opts.align)
	if err != nil {
		return rainbox.Box{}, err
	}
	va, err := parseVertAlign(opts.valign)
	if err != nil {
		return rainbox.Box{}, err
	}

	fg := theme.foreground(opts.fg)
	bg := theme.background(opts.bg)

	lines := strings.Split(text, "\n")
	rows := make([]rainbox.Box, len(lines))
	for i, l := range lines {
		rows[i] = rainbox.FromChunks([]chunk.Chunk{{Text: l, Fore: fg, Back: bg}})
	}
	b := rainbox.CatV(bg, ha, rows)

	pad := opts.pad
	if pad < 0 {
		pad = theme.Padding
	}
	if pad > 0 {
		b = rainbox.Grow(bg,
			b.Height()+2*rainbox.Rows(pad),
			b.Width()+2*rainbox.Cols(pad),
			rainbox.CenterV, rainbox.CenterH, b)
	}

	if opts.width > 0 {
		b = rainbox.ResizeH(bg, rainbox.Cols(opts.width), ha, b)
	}
	if opts.height > 0 {
		b = rainbox.ResizeV(bg, rainbox.Rows(opts.height), va, b)
	}
	return b, nil
}
