package chunk

import (
	"github.com/mattn/go-runewidth"
)

// Chunk is a run of text with uniform styling. The zero value is an empty,
// unstyled run.
//
// Text must not contain control characters or line breaks; the box algebra
// relies on every chunk occupying a single row. Line structure is expressed
// with explicit newline chunks, see [Newline].
type Chunk struct {
	Text string

	Fore Radiant
	Back Radiant

	Bold      bool
	Faint     bool
	Italic    bool
	Underline bool
}

// New returns an unstyled chunk with the given text.
func New(text string) Chunk {
	return Chunk{Text: text}
}

// Foreground returns a copy of c with the foreground set to r.
func (c Chunk) Foreground(r Radiant) Chunk {
	c.Fore = r
	return c
}

// Background returns a copy of c with the background set to r.
func (c Chunk) Background(r Radiant) Chunk {
	c.Back = r
	return c
}

// Width returns the number of terminal cells the chunk occupies. East Asian
// wide runes count as two cells, combining marks as zero.
func (c Chunk) Width() int {
	if c.IsNewline() {
		return 0
	}
	return runewidth.StringWidth(c.Text)
}

// Newline returns the chunk that terminates a rendered row.
func Newline() Chunk {
	return Chunk{Text: "\n"}
}

// IsNewline reports whether c is a row terminator produced by [Newline].
func (c Chunk) IsNewline() bool {
	return c.Text == "\n"
}
