// Package chunk provides styled text runs and their terminal encoding.
//
// A [Chunk] is the atomic unit of styled text: a string together with
// foreground and background color selections and a small set of text
// attributes. Chunks are consumed by the box algebra in pkg/rainbox and
// produced back by its renderer; this package owns the conversion of a
// rendered chunk sequence into raw bytes for a terminal.
//
// # Colors
//
// Colors are expressed as a [Radiant]: a paired selection holding an explicit
// ANSI-space color and an extended (256-color or truecolor) color. Encoding
// picks whichever selection fits the output profile, so a Radiant can name
// the exact ANSI color to use on a 16-color terminal instead of relying on
// automatic downsampling. The zero Radiant paints nothing and leaves the
// terminal default in place.
//
// # Encoding
//
// [Encode] and [Write] serialize a chunk sequence for a given
// [termenv.Profile]. [DetectProfile] inspects the environment (NO_COLOR,
// CLICOLOR, TERM, tty-ness of the writer) to choose the profile:
//
//	p := chunk.DetectProfile(os.Stdout)
//	err := chunk.Write(os.Stdout, p, rainbox.Render(box))
//
// With the Ascii profile the encoder emits plain text, which keeps output
// pipeable and diff-friendly.
package chunk
