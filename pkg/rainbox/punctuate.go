package rainbox

import (
	"github.com/k0ral/rainbox/pkg/chunk"
)

// PunctuateH concatenates boxes left to right with a copy of sep between
// every adjacent pair. No separator appears before the first or after the
// last box.
func PunctuateH(bg chunk.Radiant, align VertAlign, sep Box, boxes []Box) Box {
	return CatH(bg, align, intersperse(sep, boxes))
}

// PunctuateV concatenates boxes top to bottom with a copy of sep between
// every adjacent pair.
func PunctuateV(bg chunk.Radiant, align HorizAlign, sep Box, boxes []Box) Box {
	return CatV(bg, align, intersperse(sep, boxes))
}

// SepH concatenates boxes left to right with cols columns of bg-tinted blank
// space between adjacent pairs. The separator spans the full height of the
// tallest box, so a list of empty boxes stays empty.
func SepH(bg chunk.Radiant, cols Cols, align VertAlign, boxes []Box) Box {
	h := Rows(0)
	for _, b := range boxes {
		if b.Height() > h {
			h = b.Height()
		}
	}
	return PunctuateH(bg, align, Blank(bg, h, cols), boxes)
}

// SepV concatenates boxes top to bottom with rows rows of bg-tinted blank
// space between adjacent pairs. The separator spans the full width of the
// widest box, so a list of empty boxes stays empty.
func SepV(bg chunk.Radiant, rows Rows, align HorizAlign, boxes []Box) Box {
	w := Cols(0)
	for _, b := range boxes {
		if b.Width() > w {
			w = b.Width()
		}
	}
	return PunctuateV(bg, align, Blank(bg, rows, w), boxes)
}

// intersperse inserts sep between adjacent elements of boxes.
func intersperse(sep Box, boxes []Box) []Box {
	if len(boxes) < 2 {
		return boxes
	}
	out := make([]Box, 0, 2*len(boxes)-1)
	for i, b := range boxes {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, b)
	}
	return out
}
