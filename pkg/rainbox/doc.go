// Package rainbox composes rectangular blocks of colored text.
//
// # Overview
//
// A [Box] is an immutable grid of styled text: an ordered sequence of rows
// ("rods"), each holding styled runs and background-tinted blank runs, with
// every row occupying the same number of terminal cells. Boxes are built
// from a small set of primitives and combined into larger layouts:
//
//   - [Blank] and [FromChunks] create boxes,
//   - [CatH] and [CatV] concatenate lists of boxes along an axis,
//   - [ViewH] and [ViewV] trim a box to a viewport,
//
// with derived operations ([GrowH], [Resize], [Column], [SepH], ...) layered
// on top. [Render] flattens a finished box into the chunk sequence that
// pkg/chunk serializes to the terminal.
//
// # Basic Usage
//
// Build rows of text, stack them, and pad the result:
//
//	title := rainbox.FromChunks([]chunk.Chunk{chunk.New("rainbox")})
//	body := rainbox.FromChunks([]chunk.Chunk{chunk.New("colored boxes")})
//	bg := chunk.RGB("#1c1c2e")
//	card := rainbox.Grow(bg, 4, 20, rainbox.CenterV, rainbox.CenterH,
//		rainbox.CatV(bg, rainbox.CenterH, []rainbox.Box{title, body}))
//	chunk.Write(os.Stdout, chunk.DetectProfile(os.Stdout), rainbox.Render(card))
//
// # Clamping
//
// No operation returns an error. Negative dimensions clamp to zero, views
// never widen a box, and grows never shrink one. Asymmetric padding and
// trimming under Center alignment always places the odd leftover unit on the
// second side (right or bottom); every operation shares the same tie-break.
//
// # Immutability
//
// Every operation returns a new Box and leaves its inputs untouched. Boxes
// may share underlying rows, which is safe because nothing mutates a row
// after construction.
package rainbox
