package rainbox

import (
	"testing"

	"github.com/k0ral/rainbox/pkg/chunk"
)

func TestCatH(t *testing.T) {
	bg := chunk.Radiant{}

	tests := []struct {
		name       string
		align      VertAlign
		boxes      []Box
		wantHeight Rows
		wantWidth  Cols
		wantPlain  string
	}{
		{
			name:       "EmptyList",
			align:      Top,
			boxes:      nil,
			wantHeight: 0,
			wantWidth:  0,
			wantPlain:  "",
		},
		{
			name:       "AllEmpty",
			align:      Top,
			boxes:      []Box{{}, {}},
			wantHeight: 0,
			wantWidth:  0,
			wantPlain:  "",
		},
		{
			name:       "BlankPair",
			align:      Top,
			boxes:      []Box{Blank(bg, 2, 3), Blank(bg, 1, 1)},
			wantHeight: 2,
			wantWidth:  4,
			wantPlain:  "    \n    \n",
		},
		{
			name:       "TopPadsBelow",
			align:      Top,
			boxes:      []Box{line("ab"), Blank(bg, 2, 1)},
			wantHeight: 2,
			wantWidth:  3,
			wantPlain:  "ab \n   \n",
		},
		{
			name:       "BottomPadsAbove",
			align:      Bottom,
			boxes:      []Box{line("ab"), Blank(bg, 2, 1)},
			wantHeight: 2,
			wantWidth:  3,
			wantPlain:  "   \nab \n",
		},
		{
			name:       "CenterSplitsExtraBelow",
			align:      CenterV,
			boxes:      []Box{line("x"), Blank(bg, 4, 1)},
			wantHeight: 4,
			wantWidth:  2,
			wantPlain:  "  \nx \n  \n  \n",
		},
		{
			name:       "ZeroWidthStillCountsForHeight",
			align:      Top,
			boxes:      []Box{Blank(bg, 3, 0), line("a")},
			wantHeight: 3,
			wantWidth:  1,
			wantPlain:  "a\n \n \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := CatH(bg, tt.align, tt.boxes)
			checkValid(t, b)
			if got := b.Height(); got != tt.wantHeight {
				t.Errorf("Height() = %d, want %d", got, tt.wantHeight)
			}
			if got := b.Width(); got != tt.wantWidth {
				t.Errorf("Width() = %d, want %d", got, tt.wantWidth)
			}
			if got := plain(b); got != tt.wantPlain {
				t.Errorf("plain render = %q, want %q", got, tt.wantPlain)
			}
		})
	}
}

func TestCatV(t *testing.T) {
	bg := chunk.Radiant{}

	tests := []struct {
		name       string
		align      HorizAlign
		boxes      []Box
		wantHeight Rows
		wantWidth  Cols
		wantPlain  string
	}{
		{
			name:  "EmptyList",
			align: Left,
			boxes: nil,
		},
		{
			name:       "LeftPadsRight",
			align:      Left,
			boxes:      []Box{line("ab"), line("wxyz")},
			wantHeight: 2,
			wantWidth:  4,
			wantPlain:  "ab  \nwxyz\n",
		},
		{
			name:       "RightPadsLeft",
			align:      Right,
			boxes:      []Box{line("ab"), line("wxyz")},
			wantHeight: 2,
			wantWidth:  4,
			wantPlain:  "  ab\nwxyz\n",
		},
		{
			name:       "CenterSplitsExtraRight",
			align:      CenterH,
			boxes:      []Box{line("a"), line("wxyz")},
			wantHeight: 2,
			wantWidth:  4,
			wantPlain:  " a  \nwxyz\n",
		},
		{
			name:       "EmptyBoxContributesNothing",
			align:      Left,
			boxes:      []Box{{}, line("ab")},
			wantHeight: 1,
			wantWidth:  2,
			wantPlain:  "ab\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := CatV(bg, tt.align, tt.boxes)
			checkValid(t, b)
			if got := b.Height(); got != tt.wantHeight {
				t.Errorf("Height() = %d, want %d", got, tt.wantHeight)
			}
			if got := b.Width(); got != tt.wantWidth {
				t.Errorf("Width() = %d, want %d", got, tt.wantWidth)
			}
			if got := plain(b); got != tt.wantPlain {
				t.Errorf("plain render = %q, want %q", got, tt.wantPlain)
			}
		})
	}
}
