package chunk

import (
	"bytes"
	"io"

	"github.com/muesli/termenv"
)

// Encode serializes chunks into terminal escape sequences for the given
// profile. Newline chunks become literal line breaks. With the Ascii profile
// the output is the bare text.
func Encode(p termenv.Profile, chunks []Chunk) []byte {
	var buf bytes.Buffer
	for _, c := range chunks {
		if c.IsNewline() {
			buf.WriteByte('\n')
			continue
		}
		if c.Text == "" {
			continue
		}
		buf.WriteString(styled(p, c))
	}
	return buf.Bytes()
}

// Write encodes chunks for the given profile and writes them to w. The only
// failure mode is the writer's own error, which is returned unchanged.
func Write(w io.Writer, p termenv.Profile, chunks []Chunk) error {
	_, err := w.Write(Encode(p, chunks))
	return err
}

// DetectProfile inspects the environment and the writer to choose a color
// profile. NO_COLOR and CLICOLOR are honored; non-terminal writers degrade
// to Ascii.
func DetectProfile(w io.Writer) termenv.Profile {
	return termenv.NewOutput(w).EnvColorProfile()
}

// styled renders a single chunk through termenv. Attribute and color
// sequences are only emitted when the profile supports them.
func styled(p termenv.Profile, c Chunk) string {
	s := p.String(c.Text)
	if fg := c.Fore.color(p); fg != nil {
		s = s.Foreground(fg)
	}
	if bg := c.Back.color(p); bg != nil {
		s = s.Background(bg)
	}
	if c.Bold {
		s = s.Bold()
	}
	if c.Faint {
		s = s.Faint()
	}
	if c.Italic {
		s = s.Italic()
	}
	if c.Underline {
		s = s.Underline()
	}
	return s.String()
}
