package rainbox

import (
	"github.com/k0ral/rainbox/pkg/chunk"
)

// GrowH pads b with bg-tinted cells until it is cols wide. Grow never
// shrinks: if b is already at least cols wide it is returned unchanged.
// Left puts all padding on the right, Right on the left, CenterH splits with
// the extra cell on the right. Growing the empty box yields the empty box.
func GrowH(bg chunk.Radiant, cols Cols, align HorizAlign, b Box) Box {
	if cols <= b.Width() {
		return b
	}
	return padH(bg, cols, align, b)
}

// GrowV pads b with bg-tinted rows until it is rows tall. Grow never
// shrinks. Top puts all padding below, Bottom above, CenterV splits with the
// extra row below. Growing the empty box yields a zero-width box of the
// requested height, mirroring vertical concatenation with blank rows.
func GrowV(bg chunk.Radiant, rows Rows, align VertAlign, b Box) Box {
	if rows <= b.Height() {
		return b
	}
	return padV(bg, rows, align, b)
}

// Grow pads b in both axes. The two grows act on independent axes, so their
// order does not affect the result.
func Grow(bg chunk.Radiant, rows Rows, cols Cols, vert VertAlign, horiz HorizAlign, b Box) Box {
	return GrowH(bg, cols, horiz, GrowV(bg, rows, vert, b))
}

// Column grows every box to the width of the widest one, aligning each per
// align. Useful to line up a vertical stack of labels before CatV. A nil or
// empty slice returns an empty (non-nil) slice.
func Column(bg chunk.Radiant, align HorizAlign, boxes []Box) []Box {
	w := Cols(0)
	for _, b := range boxes {
		if b.Width() > w {
			w = b.Width()
		}
	}
	out := make([]Box, len(boxes))
	for i, b := range boxes {
		out[i] = GrowH(bg, w, align, b)
	}
	return out
}

// ResizeH brings b to exactly cols columns, growing or trimming as needed.
// A non-positive cols empties the horizontal axis.
func ResizeH(bg chunk.Radiant, cols Cols, align HorizAlign, b Box) Box {
	switch {
	case cols < b.Width():
		return ViewH(cols, align, b)
	case cols > b.Width():
		return GrowH(bg, cols, align, b)
	}
	return b
}

// ResizeV brings b to exactly rows rows, growing or trimming as needed. A
// non-positive rows yields the empty box.
func ResizeV(bg chunk.Radiant, rows Rows, align VertAlign, b Box) Box {
	switch {
	case rows < b.Height():
		return ViewV(rows, align, b)
	case rows > b.Height():
		return GrowV(bg, rows, align, b)
	}
	return b
}

// Resize brings b to exactly the given dimensions in both axes.
func Resize(bg chunk.Radiant, rows Rows, cols Cols, vert VertAlign, horiz HorizAlign, b Box) Box {
	return ResizeH(bg, cols, horiz, ResizeV(bg, rows, vert, b))
}
