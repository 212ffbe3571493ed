package rainbox

import (
	"strings"

	"github.com/k0ral/rainbox/pkg/chunk"
)

// Cell is one entry of a table: multi-line styled content plus the alignment
// and background used when the cell is squared up against its row and
// column. The zero value is an empty top-left-aligned cell with no tint.
type Cell struct {
	// Rows holds the cell content, one chunk slice per line.
	Rows [][]chunk.Chunk

	// Horiz places the content when the column is wider than the cell.
	Horiz HorizAlign

	// Vert places the content when the row is taller than the cell.
	Vert VertAlign

	// Background tints the padding added around the content.
	Background chunk.Radiant
}

// TextCell returns an unstyled cell with the given text, split into lines on
// newlines.
func TextCell(text string) Cell {
	lines := strings.Split(text, "\n")
	rows := make([][]chunk.Chunk, len(lines))
	for i, l := range lines {
		rows[i] = []chunk.Chunk{chunk.New(l)}
	}
	return Cell{Rows: rows}
}

// box builds the cell's own content box, before any squaring up.
func (c Cell) box() Box {
	lines := make([]Box, len(c.Rows))
	for i, cs := range c.Rows {
		lines[i] = FromChunks(cs)
	}
	return CatV(c.Background, c.Horiz, lines)
}

// TableByRows lays out cells given row by row: every column is grown to the
// width of its widest cell and every row to the height of its tallest cell,
// each cell padded with its own background per its own alignments. Ragged
// rows are squared up with empty cells. Built entirely from the box
// primitives, so the uniform-width invariant holds by construction.
func TableByRows(rows [][]Cell) Box {
	ncols := 0
	for _, r := range rows {
		if len(r) > ncols {
			ncols = len(r)
		}
	}
	if ncols == 0 {
		return Box{}
	}

	// Measure content boxes once.
	boxes := make([][]Box, len(rows))
	colWidth := make([]Cols, ncols)
	rowHeight := make([]Rows, len(rows))
	for i, r := range rows {
		boxes[i] = make([]Box, ncols)
		for j := 0; j < ncols; j++ {
			var c Cell
			if j < len(r) {
				c = r[j]
			}
			b := c.box()
			boxes[i][j] = b
			if b.Width() > colWidth[j] {
				colWidth[j] = b.Width()
			}
			if b.Height() > rowHeight[i] {
				rowHeight[i] = b.Height()
			}
		}
	}

	rowBoxes := make([]Box, len(rows))
	for i, r := range rows {
		cells := make([]Box, ncols)
		for j := 0; j < ncols; j++ {
			var c Cell
			if j < len(r) {
				c = r[j]
			}
			// Vertical first: growing an empty cell vertically gives it
			// rows to pad, so the horizontal grow can still reach the
			// column width.
			b := GrowV(c.Background, rowHeight[i], c.Vert, boxes[i][j])
			b = GrowH(c.Background, colWidth[j], c.Horiz, b)
			cells[j] = b
		}
		rowBoxes[i] = CatH(chunk.Radiant{}, Top, cells)
	}
	return CatV(chunk.Radiant{}, Left, rowBoxes)
}

// TableByColumns lays out cells given column by column. It transposes the
// input and delegates to [TableByRows].
func TableByColumns(cols [][]Cell) Box {
	nrows := 0
	for _, c := range cols {
		if len(c) > nrows {
			nrows = len(c)
		}
	}
	rows := make([][]Cell, nrows)
	for i := range rows {
		rows[i] = make([]Cell, len(cols))
		for j, col := range cols {
			if i < len(col) {
				rows[i][j] = col[i]
			}
		}
	}
	return TableByRows(rows)
}
