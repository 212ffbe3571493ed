package rainbox

// VertAlign places content along the vertical axis when a box is padded or
// trimmed to a different height.
type VertAlign int

// Vertical alignments.
const (
	Top VertAlign = iota
	CenterV
	Bottom
)

// String returns the alignment name.
func (a VertAlign) String() string {
	switch a {
	case Top:
		return "top"
	case CenterV:
		return "center"
	case Bottom:
		return "bottom"
	}
	return "unknown"
}

// HorizAlign places content along the horizontal axis when a box is padded
// or trimmed to a different width. It is a distinct type from [VertAlign] so
// the two axes cannot be swapped by accident.
type HorizAlign int

// Horizontal alignments.
const (
	Left HorizAlign = iota
	CenterH
	Right
)

// String returns the alignment name.
func (a HorizAlign) String() string {
	switch a {
	case Left:
		return "left"
	case CenterH:
		return "center"
	case Right:
		return "right"
	}
	return "unknown"
}
