package rainbox

import (
	"github.com/k0ral/rainbox/pkg/chunk"
)

// CatH concatenates boxes left to right. The result is as tall as the
// tallest input; shorter inputs are padded with bg-tinted blank rows placed
// per align before their rows are joined. The result width is the sum of the
// input widths. An empty list, or a list of empty boxes, yields the empty
// box.
func CatH(bg chunk.Radiant, align VertAlign, boxes []Box) Box {
	h := Rows(0)
	w := Cols(0)
	for _, b := range boxes {
		if b.Height() > h {
			h = b.Height()
		}
		w += b.Width()
	}
	if h == 0 {
		return Box{}
	}

	grown := make([]Box, len(boxes))
	for i, b := range boxes {
		grown[i] = padV(bg, h, align, b)
	}

	rods := make([]rod, h)
	for i := range rods {
		var ns []nibble
		for _, g := range grown {
			ns = append(ns, g.rods[i].nibbles...)
		}
		rods[i] = rod{nibbles: ns, width: w}
	}
	return Box{rods: rods}
}

// CatV concatenates boxes top to bottom. The result is as wide as the widest
// input; narrower inputs are padded with bg-tinted blank cells placed per
// align. The result height is the sum of the input heights.
func CatV(bg chunk.Radiant, align HorizAlign, boxes []Box) Box {
	w := Cols(0)
	h := Rows(0)
	for _, b := range boxes {
		if b.Width() > w {
			w = b.Width()
		}
		h += b.Height()
	}

	rods := make([]rod, 0, h)
	for _, b := range boxes {
		rods = append(rods, padH(bg, w, align, b).rods...)
	}
	if len(rods) == 0 {
		return Box{}
	}
	return Box{rods: rods}
}

// padV pads b with blank rows to the target height. Top keeps content at
// the top (pad below), Bottom pads above, CenterV splits with the extra row
// below. target must be at least b.Height().
func padV(bg chunk.Radiant, target Rows, align VertAlign, b Box) Box {
	diff := int(target - b.Height())
	if diff <= 0 {
		return b
	}
	var above, below int
	switch align {
	case Top:
		below = diff
	case Bottom:
		above = diff
	case CenterV:
		above, below = split(diff)
	}

	pad := blankRod(bg, b.Width())
	rods := make([]rod, 0, target)
	for i := 0; i < above; i++ {
		rods = append(rods, pad)
	}
	rods = append(rods, b.rods...)
	for i := 0; i < below; i++ {
		rods = append(rods, pad)
	}
	return Box{rods: rods}
}

// padH pads every row of b with blank cells to the target width. Left keeps
// content at the left (pad on the right), Right pads on the left, CenterH
// splits with the extra cell on the right. target must be at least
// b.Width(). The empty box stays empty.
func padH(bg chunk.Radiant, target Cols, align HorizAlign, b Box) Box {
	diff := int(target - b.Width())
	if diff <= 0 || len(b.rods) == 0 {
		return b
	}
	var before, after int
	switch align {
	case Left:
		after = diff
	case Right:
		before = diff
	case CenterH:
		before, after = split(diff)
	}

	rods := make([]rod, len(b.rods))
	for i, r := range b.rods {
		ns := make([]nibble, 0, len(r.nibbles)+2)
		if before > 0 {
			ns = append(ns, blankNibble(bg, Cols(before)))
		}
		ns = append(ns, r.nibbles...)
		if after > 0 {
			ns = append(ns, blankNibble(bg, Cols(after)))
		}
		rods[i] = rod{nibbles: ns, width: target}
	}
	return Box{rods: rods}
}
