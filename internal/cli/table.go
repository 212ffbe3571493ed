package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/k0ral/rainbox/pkg/chunk"
	"github.com/k0ral/rainbox/pkg/rainbox"
)

// tableOpts holds the command-line flags for the table command.
type tableOpts struct {
	delimiter string // field delimiter (single rune)
	align     string // horizontal alignment applied to every cell
	gap       int    // blank cells between columns
	header    bool   // style the first row as a header
	fg        string // text color
	bg        string // fill color
	output    string // output file (default stdout)
	color     string // color mode
}

// newTableCmd creates the table command: lay out delimiter-separated rows as
// an aligned table.
func newTableCmd() *cobra.Command {
	opts := tableOpts{delimiter: ",", align: "left", gap: 2}

	cmd := &cobra.Command{
		Use:   "table [file]",
		Short: "Render delimiter-separated rows as an aligned table",
		Long: `Render delimiter-separated rows as an aligned table.

Reads CSV-style records from the file (or stdin when omitted), grows every
column to its widest cell, and separates columns by --gap blank cells.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			records, err := readRecords(cmd, path, opts.delimiter)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				printError("No records found")
				return fmt.Errorf("no records found")
			}
			loggerFromContext(cmd.Context()).Debugf("Read %d records", len(records))

			theme := themeFromContext(cmd.Context())
			b, err := buildTable(theme, opts, records)
			if err != nil {
				return err
			}
			return emitBox(cmd, b, opts.output, opts.color)
		},
	}

	cmd.Flags().StringVarP(&opts.delimiter, "delimiter", "d", opts.delimiter, "field delimiter")
	cmd.Flags().StringVar(&opts.align, "align", opts.align, "cell alignment: left, center, right")
	cmd.Flags().IntVar(&opts.gap, "gap", opts.gap, "blank cells between columns")
	cmd.Flags().BoolVar(&opts.header, "header", false, "style the first row as a header")
	cmd.Flags().StringVar(&opts.fg, "fg", "", "text color")
	cmd.Flags().StringVar(&opts.bg, "bg", "", "fill color")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "color mode: auto, never, 16, 256, always")

	return cmd
}

// readRecords parses CSV-style records from the input using the given
// delimiter. Records may have varying field counts; the table builder
// squares them up.
func readRecords(cmd *cobra.Command, path, delimiter string) ([][]string, error) {
	runes := []rune(delimiter)
	if len(runes) != 1 {
		return nil, fmt.Errorf("invalid delimiter: %q (must be a single character)", delimiter)
	}

	var r io.Reader
	if path == "" || path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	cr := csv.NewReader(r)
	cr.Comma = runes[0]
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}

// buildTable converts records into table cells and lays them out, inserting
// gap columns between fields.
func buildTable(theme Theme, opts tableOpts, records [][]string) (rainbox.Box, error) {
	ha, err := parseHorizAlign(opts.align)
	if err != nil {
		return rainbox.Box{}, err
	}

	fg := theme.foreground(opts.fg)
	bg := theme.background(opts.bg)
	gap := rainbox.TextCell(strings.Repeat(" ", max(opts.gap, 0)))
	gap.Background = bg

	rows := make([][]rainbox.Cell, len(records))
	for i, rec := range records {
		var row []rainbox.Cell
		for j, field := range rec {
			if j > 0 && opts.gap > 0 {
				row = append(row, gap)
			}
			c := rainbox.Cell{
				Rows:       [][]chunk.Chunk{{{Text: field, Fore: fg, Back: bg, Bold: opts.header && i == 0}}},
				Horiz:      ha,
				Background: bg,
			}
			row = append(row, c)
		}
		rows[i] = row
	}
	return rainbox.TableByRows(rows), nil
}
