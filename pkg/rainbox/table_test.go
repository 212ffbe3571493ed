package rainbox

import (
	"reflect"
	"testing"

	"github.com/k0ral/rainbox/pkg/chunk"
)

func TestTableByRows(t *testing.T) {
	tests := []struct {
		name      string
		rows      [][]Cell
		wantPlain string
	}{
		{
			name:      "Empty",
			rows:      nil,
			wantPlain: "",
		},
		{
			name: "ColumnsGrowToWidest",
			rows: [][]Cell{
				{TextCell("a"), TextCell("bb")},
				{TextCell("ccc"), TextCell("d")},
			},
			wantPlain: "a  bb\ncccd \n",
		},
		{
			name: "RaggedRowsSquaredUp",
			rows: [][]Cell{
				{TextCell("a")},
				{TextCell("b"), TextCell("c")},
			},
			wantPlain: "a \nbc\n",
		},
		{
			name: "MultiLineCellStretchesRow",
			rows: [][]Cell{
				{TextCell("x\ny"), TextCell("z")},
			},
			wantPlain: "xz\ny \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := TableByRows(tt.rows)
			checkValid(t, b)
			if got := plain(b); got != tt.wantPlain {
				t.Errorf("plain render = %q, want %q", got, tt.wantPlain)
			}
		})
	}
}

func TestTableCellAlignment(t *testing.T) {
	right := TextCell("a")
	right.Horiz = Right
	bottom := TextCell("b")
	bottom.Vert = Bottom

	b := TableByRows([][]Cell{
		{right, TextCell("x\ny")},
		{TextCell("wide"), bottom},
	})
	checkValid(t, b)

	got := plain(b)
	wantPlain := "   ax\n    y\nwideb\n"
	if got != wantPlain {
		t.Errorf("plain render = %q, want %q", got, wantPlain)
	}
}

func TestTableCellBackground(t *testing.T) {
	bg := chunk.RGB("#303030")
	c := TextCell("a")
	c.Background = bg

	b := TableByRows([][]Cell{
		{c, TextCell("xx")},
		{TextCell("yyy"), TextCell("z")},
	})
	checkValid(t, b)

	// The first cell is padded from 1 to 3 cells; its padding must carry
	// the cell background.
	pad := b.rods[0].nibbles[1]
	if !pad.blank || pad.bg != bg {
		t.Errorf("cell padding = %+v, want blank with cell background", pad)
	}
}

func TestTableByColumnsTransposes(t *testing.T) {
	a, b, c, d := TextCell("a"), TextCell("bb"), TextCell("ccc"), TextCell("d")

	byRows := TableByRows([][]Cell{{a, b}, {c, d}})
	byCols := TableByColumns([][]Cell{{a, c}, {b, d}})

	if !reflect.DeepEqual(byRows, byCols) {
		t.Errorf("TableByColumns != transposed TableByRows:\n%q\n%q", plain(byCols), plain(byRows))
	}
}
