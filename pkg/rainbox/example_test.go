package rainbox_test

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"

	"github.com/k0ral/rainbox/pkg/chunk"
	"github.com/k0ral/rainbox/pkg/rainbox"
)

// text is a shorthand for a one-row box of unstyled text.
func text(s string) rainbox.Box {
	return rainbox.FromChunks([]chunk.Chunk{chunk.New(s)})
}

// dump writes b to stdout as plain text.
func dump(b rainbox.Box) {
	os.Stdout.Write(chunk.Encode(termenv.Ascii, rainbox.Render(b)))
}

func ExampleFromChunks() {
	b := rainbox.FromChunks([]chunk.Chunk{
		chunk.New("hello, "),
		chunk.New("box").Foreground(chunk.RGB("#5f87d7")),
	})
	fmt.Println(b.Height(), b.Width())
	// Output:
	// 1 10
}

func ExampleCatV() {
	// Right-align a stack of labels.
	dump(rainbox.CatV(chunk.Radiant{}, rainbox.Right, []rainbox.Box{
		text("a"),
		text("bbb"),
	}))
	// Output:
	//   a
	// bbb
}

func ExampleViewH() {
	// Keep the middle of a wide box; the odd trimmed column comes off the
	// right.
	dump(rainbox.ViewH(5, rainbox.CenterH, text("abcdefgh")))
	// Output:
	// bcdef
}

func ExampleSepH() {
	dump(rainbox.SepH(chunk.Radiant{}, 1, rainbox.Top, []rainbox.Box{
		text("one"),
		text("two"),
		text("three"),
	}))
	// Output:
	// one two three
}

func ExampleTableByRows() {
	right := func(s string) rainbox.Cell {
		c := rainbox.TextCell(s)
		c.Horiz = rainbox.Right
		return c
	}
	dump(rainbox.TableByRows([][]rainbox.Cell{
		{rainbox.TextCell("qty"), right("9")},
		{rainbox.TextCell("total"), right("120")},
	}))
	// Output:
	// qty    9
	// total120
}
