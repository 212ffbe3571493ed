package rainbox

import (
	"testing"

	"github.com/muesli/termenv"

	"github.com/k0ral/rainbox/pkg/chunk"
)

// plain renders b as uncolored text, the easiest form to assert against.
func plain(b Box) string {
	return string(chunk.Encode(termenv.Ascii, Render(b)))
}

// line is a shorthand for a one-row box of unstyled text.
func line(s string) Box {
	return FromChunks([]chunk.Chunk{chunk.New(s)})
}

// checkValid fails the test when b violates the uniform-width invariant.
func checkValid(t *testing.T, b Box) {
	t.Helper()
	if !b.valid() {
		t.Fatalf("box invariant violated: rods have unequal widths")
	}
}

func TestBlank(t *testing.T) {
	bg := chunk.RGB("#336699")

	tests := []struct {
		name       string
		rows       Rows
		cols       Cols
		wantHeight Rows
		wantWidth  Cols
	}{
		{name: "Simple", rows: 2, cols: 3, wantHeight: 2, wantWidth: 3},
		{name: "ZeroHeight", rows: 0, cols: 3, wantHeight: 0, wantWidth: 0},
		{name: "NegativeHeight", rows: -1, cols: 3, wantHeight: 0, wantWidth: 0},
		{name: "ZeroWidth", rows: 2, cols: 0, wantHeight: 2, wantWidth: 0},
		{name: "NegativeWidth", rows: 2, cols: -5, wantHeight: 2, wantWidth: 0},
		{name: "BothNegative", rows: -2, cols: -2, wantHeight: 0, wantWidth: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Blank(bg, tt.rows, tt.cols)
			checkValid(t, b)
			if got := b.Height(); got != tt.wantHeight {
				t.Errorf("Height() = %d, want %d", got, tt.wantHeight)
			}
			if got := b.Width(); got != tt.wantWidth {
				t.Errorf("Width() = %d, want %d", got, tt.wantWidth)
			}
		})
	}
}

func TestFromChunks(t *testing.T) {
	tests := []struct {
		name      string
		chunks    []chunk.Chunk
		wantWidth Cols
	}{
		{name: "Empty", chunks: nil, wantWidth: 0},
		{name: "Single", chunks: []chunk.Chunk{chunk.New("abc")}, wantWidth: 3},
		{name: "Multiple", chunks: []chunk.Chunk{chunk.New("ab"), chunk.New("c")}, wantWidth: 3},
		{name: "WideRunes", chunks: []chunk.Chunk{chunk.New("日本")}, wantWidth: 4},
		{name: "Mixed", chunks: []chunk.Chunk{chunk.New("a日"), chunk.New("b")}, wantWidth: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromChunks(tt.chunks)
			checkValid(t, b)
			if got := b.Height(); got != 1 {
				t.Errorf("Height() = %d, want 1", got)
			}
			if got := b.Width(); got != tt.wantWidth {
				t.Errorf("Width() = %d, want %d", got, tt.wantWidth)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		n, first, second int
	}{
		{0, 0, 0},
		{1, 0, 1}, // the odd unit goes to the second share
		{2, 1, 1},
		{3, 1, 2},
		{4, 2, 2},
		{5, 2, 3},
	}

	for _, tt := range tests {
		first, second := split(tt.n)
		if first != tt.first || second != tt.second {
			t.Errorf("split(%d) = (%d, %d), want (%d, %d)", tt.n, first, second, tt.first, tt.second)
		}
	}
}

func TestBoxEmpty(t *testing.T) {
	if !(Box{}).Empty() {
		t.Error("zero Box should be empty")
	}
	if Blank(chunk.Radiant{}, 1, 1).Empty() {
		t.Error("1×1 blank should not be empty")
	}
	if FromChunks(nil).Empty() {
		t.Error("FromChunks(nil) has height 1, must not be empty")
	}
}
