package rainbox

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/k0ral/rainbox/pkg/chunk"
)

// ViewH trims b to at most cols columns; it never widens. Left keeps the
// leftmost columns, Right the rightmost, CenterH drops from both sides with
// the odd leftover column removed from the right. Styled runs are split at
// cell boundaries, keeping the styling and background of the retained slice.
// A non-positive cols yields a box of the same height and zero width.
func ViewH(cols Cols, align HorizAlign, b Box) Box {
	target := cols
	if target < 0 {
		target = 0
	}
	if target >= b.Width() || len(b.rods) == 0 {
		return b
	}

	drop := int(b.Width() - target)
	var fromLeft int
	switch align {
	case Left:
		fromLeft = 0
	case Right:
		fromLeft = drop
	case CenterH:
		fromLeft, _ = split(drop)
	}

	rods := make([]rod, len(b.rods))
	for i, r := range b.rods {
		rods[i] = sliceRod(r, Cols(fromLeft), target)
	}
	return Box{rods: rods}
}

// ViewV trims b to at most rows rows; it never heightens. Top keeps the
// first rows, Bottom the last, CenterV drops from both ends with the odd
// leftover row removed from the bottom. A non-positive rows yields the empty
// box.
func ViewV(rows Rows, align VertAlign, b Box) Box {
	target := rows
	if target < 0 {
		target = 0
	}
	if target >= b.Height() {
		return b
	}
	if target == 0 {
		return Box{}
	}

	drop := int(b.Height() - target)
	var fromTop int
	switch align {
	case Top:
		fromTop = 0
	case Bottom:
		fromTop = drop
	case CenterV:
		fromTop, _ = split(drop)
	}
	return Box{rods: b.rods[fromTop : fromTop+int(target)]}
}

// View trims b to the given viewport in both axes. The two trims act on
// independent axes, so their order does not affect the result.
func View(rows Rows, cols Cols, vert VertAlign, horiz HorizAlign, b Box) Box {
	return ViewV(rows, vert, ViewH(cols, horiz, b))
}

// sliceRod keeps width cells of r starting at cell offset start. Nibbles
// fully inside the window pass through untouched; nibbles crossing an edge
// are cut.
func sliceRod(r rod, start, width Cols) rod {
	if width <= 0 {
		return rod{}
	}
	end := start + width

	var ns []nibble
	pos := Cols(0)
	for _, n := range r.nibbles {
		nStart, nEnd := pos, pos+n.width
		pos = nEnd
		if n.width == 0 || nEnd <= start || nStart >= end {
			continue
		}
		lo, hi := nStart, nEnd
		if lo < start {
			lo = start
		}
		if hi > end {
			hi = end
		}
		if lo == nStart && hi == nEnd {
			ns = append(ns, n)
			continue
		}
		ns = append(ns, cutNibble(n, lo-nStart, hi-lo)...)
	}
	return rod{nibbles: ns, width: width}
}

// cutNibble keeps width cells of n starting at cell offset. Blank runs
// shrink in place; chunk runs are cut at rune boundaries.
func cutNibble(n nibble, offset, width Cols) []nibble {
	if n.blank {
		return []nibble{blankNibble(n.bg, width)}
	}
	return cutChunk(n.chunk, offset, width)
}

// cutChunk keeps width cells of c starting at cell offset. When a cut edge
// falls inside a double-width rune, the rune is dropped and the covered
// cells are filled with blanks tinted with the chunk's background, so the
// result always spans exactly width cells. Combining marks travel with
// their base rune.
func cutChunk(c chunk.Chunk, offset, width Cols) []nibble {
	end := offset + width

	var kept strings.Builder
	var leftGap, rightGap Cols
	pos := Cols(0)
	lastKept := false
	for _, r := range c.Text {
		w := Cols(runewidth.RuneWidth(r))
		if w == 0 {
			if lastKept {
				kept.WriteRune(r)
			}
			continue
		}
		rStart := pos
		pos += w
		switch {
		case pos <= offset || rStart >= end:
			lastKept = false
		case rStart < offset:
			leftGap += pos - offset
			lastKept = false
		case pos > end:
			rightGap += end - rStart
			lastKept = false
		default:
			kept.WriteRune(r)
			lastKept = true
		}
	}

	out := make([]nibble, 0, 3)
	if leftGap > 0 {
		out = append(out, blankNibble(c.Back, leftGap))
	}
	if kept.Len() > 0 {
		cut := c
		cut.Text = kept.String()
		out = append(out, chunkNibble(cut))
	}
	if rightGap > 0 {
		out = append(out, blankNibble(c.Back, rightGap))
	}
	return out
}
