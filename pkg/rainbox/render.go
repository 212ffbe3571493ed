package rainbox

import (
	"strings"

	"github.com/k0ral/rainbox/pkg/chunk"
)

// Render flattens b into the chunk sequence the pkg/chunk encoder consumes.
// Rows are emitted top to bottom, runs within a row left to right, each row
// terminated by a newline chunk. Blank runs become space runs carrying their
// background tint. The empty box renders to nil.
func Render(b Box) []chunk.Chunk {
	if len(b.rods) == 0 {
		return nil
	}
	out := make([]chunk.Chunk, 0, len(b.rods)*2)
	for _, r := range b.rods {
		for _, n := range r.nibbles {
			if n.blank {
				if n.width == 0 {
					continue
				}
				out = append(out, chunk.Chunk{
					Text: strings.Repeat(" ", int(n.width)),
					Back: n.bg,
				})
				continue
			}
			out = append(out, n.chunk)
		}
		out = append(out, chunk.Newline())
	}
	return out
}
