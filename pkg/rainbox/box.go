package rainbox

import (
	"github.com/k0ral/rainbox/pkg/chunk"
)

// Rows counts box height. Negative values are legal inputs everywhere and
// are treated as zero.
type Rows int

// Cols counts box width in terminal cells. Negative values are legal inputs
// everywhere and are treated as zero.
type Cols int

// nibble is one run within a rod: either a styled chunk or a blank run of
// cells tinted with a background. blank runs keep their width explicitly;
// chunk runs cache the chunk's display width so it is measured once.
type nibble struct {
	chunk chunk.Chunk
	bg    chunk.Radiant
	width Cols
	blank bool
}

func chunkNibble(c chunk.Chunk) nibble {
	return nibble{chunk: c, width: Cols(c.Width())}
}

func blankNibble(bg chunk.Radiant, w Cols) nibble {
	return nibble{bg: bg, width: w, blank: true}
}

// rod is one row of a box. width caches the summed nibble widths.
type rod struct {
	nibbles []nibble
	width   Cols
}

func blankRod(bg chunk.Radiant, w Cols) rod {
	if w <= 0 {
		return rod{}
	}
	return rod{nibbles: []nibble{blankNibble(bg, w)}, width: w}
}

// Box is an immutable rectangle of styled text. The zero value is the empty
// box: no rows, zero width. Every row of a non-empty box spans the same
// number of cells.
type Box struct {
	rods []rod
}

// Height returns the number of rows.
func (b Box) Height() Rows {
	return Rows(len(b.rods))
}

// Width returns the common row width in cells, 0 for the empty box.
func (b Box) Width() Cols {
	if len(b.rods) == 0 {
		return 0
	}
	return b.rods[0].width
}

// Empty reports whether the box has no rows.
func (b Box) Empty() bool {
	return len(b.rods) == 0
}

// valid reports whether every rod spans the same number of cells and every
// cached width matches its nibbles. All operations preserve this; it exists
// for tests.
func (b Box) valid() bool {
	for _, r := range b.rods {
		sum := Cols(0)
		for _, n := range r.nibbles {
			sum += n.width
		}
		if sum != r.width || r.width != b.rods[0].width {
			return false
		}
	}
	return true
}

// Blank returns a box of the given dimensions filled with bg-tinted cells.
// Dimensions clamp at zero; a non-positive height yields the empty box.
func Blank(bg chunk.Radiant, rows Rows, cols Cols) Box {
	if rows <= 0 {
		return Box{}
	}
	r := blankRod(bg, cols)
	rs := make([]rod, rows)
	for i := range rs {
		rs[i] = r
	}
	return Box{rods: rs}
}

// FromChunks returns a box of height exactly 1 whose single row holds the
// given chunks in order. An empty slice yields a one-row box of width zero,
// not the empty box.
func FromChunks(chunks []chunk.Chunk) Box {
	ns := make([]nibble, 0, len(chunks))
	w := Cols(0)
	for _, c := range chunks {
		n := chunkNibble(c)
		ns = append(ns, n)
		w += n.width
	}
	return Box{rods: []rod{{nibbles: ns, width: w}}}
}

// split divides n cells or rows into two shares. The odd leftover unit
// always lands in the second share; this single rule drives every Center
// padding and trimming decision in the package.
func split(n int) (first, second int) {
	first = n / 2
	return first, n - first
}
