package cli

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/k0ral/rainbox/pkg/chunk"
	"github.com/k0ral/rainbox/pkg/rainbox"
)

// readLines reads the named input file line by line; "" and "-" mean stdin.
func readLines(cmd *cobra.Command, path string) ([]string, error) {
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

	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	return lines, sc.Err()
}

// boxFromLines stacks text lines into a left-aligned box, one row per line,
// colored with the given foreground over the given background.
func boxFromLines(lines []string, fg, bg chunk.Radiant) rainbox.Box {
	boxes := make([]rainbox.Box, len(lines))
	for i, l := range lines {
		boxes[i] = rainbox.FromChunks([]chunk.Chunk{{Text: l, Fore: fg, Back: bg}})
	}
	return rainbox.CatV(bg, rainbox.Left, boxes)
}

// emitBox renders b and writes it to --output (or stdout when empty) at the
// profile selected by --color. For file output the profile defaults to plain
// text unless --color forces one, and a success line is printed.
func emitBox(cmd *cobra.Command, b rainbox.Box, output, colorMode string) error {
	logger := loggerFromContext(cmd.Context())

	profile, detect, err := parseColorMode(colorMode)
	if err != nil {
		return err
	}

	chunks := rainbox.Render(b)
	logger.Debugf("Rendered box: %d×%d cells, %d chunks", b.Height(), b.Width(), len(chunks))

	if output == "" {
		w := cmd.OutOrStdout()
		if detect {
			profile = chunk.DetectProfile(w)
		}
		return chunk.Write(w, profile, chunks)
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := chunk.Write(f, profile, chunks); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	printSuccess("Rendered %d×%d box", b.Height(), b.Width())
	printFile(output)
	return nil
}
