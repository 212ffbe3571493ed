package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/k0ral/rainbox/pkg/chunk"
	"github.com/k0ral/rainbox/pkg/rainbox"
)

// newPanCmd creates the pan command: interactively pan a viewport over a
// file.
func newPanCmd() *cobra.Command {
	var fg, bg string

	cmd := &cobra.Command{
		Use:   "pan [file]",
		Short: "Interactively pan a viewport over a file",
		Long: `Interactively pan a viewport over a file.

The file is loaded into an immutable box once; arrow keys (or hjkl) move a
terminal-sized viewport across it. Every frame is a pure trim of the same
box. Press q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readLines(cmd, args[0])
			if err != nil {
				return err
			}

			theme := themeFromContext(cmd.Context())
			b := boxFromLines(lines, theme.foreground(fg), theme.background(bg))
			loggerFromContext(cmd.Context()).Debugf("Loaded %d×%d box from %s", b.Height(), b.Width(), args[0])

			m := newPanModel(b, chunk.DetectProfile(cmd.OutOrStdout()))
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&fg, "fg", "", "text color")
	cmd.Flags().StringVar(&bg, "bg", "", "fill color")

	return cmd
}

// panModel is the bubbletea model for the pan command. It holds the loaded
// box, the current viewport origin, and the terminal size.
type panModel struct {
	box     rainbox.Box
	profile termenv.Profile

	top, left     int // viewport origin within the box
	width, height int // terminal size, status bar excluded from height
}

func newPanModel(b rainbox.Box, p termenv.Profile) panModel {
	return panModel{box: b, profile: p}
}

func (m panModel) Init() tea.Cmd {
	return nil
}

func (m panModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height - 1 // last line is the status bar
		m.clamp()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.top--
		case "down", "j":
			m.top++
		case "left", "h":
			m.left--
		case "right", "l":
			m.left++
		case "pgup":
			m.top -= m.height
		case "pgdown", " ":
			m.top += m.height
		case "home", "g":
			m.top, m.left = 0, 0
		case "end", "G":
			m.top = int(m.box.Height())
		}
		m.clamp()
	}
	return m, nil
}

// clamp keeps the viewport origin inside the box.
func (m *panModel) clamp() {
	maxTop := int(m.box.Height()) - m.height
	maxLeft := int(m.box.Width()) - m.width
	if m.top > maxTop {
		m.top = maxTop
	}
	if m.left > maxLeft {
		m.left = maxLeft
	}
	if m.top < 0 {
		m.top = 0
	}
	if m.left < 0 {
		m.left = 0
	}
}

func (m panModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	frame := viewport(m.box, m.top, m.left, m.height, m.width)
	body := strings.TrimSuffix(string(chunk.Encode(m.profile, rainbox.Render(frame))), "\n")

	status := fmt.Sprintf(" %d,%d / %d×%d ", m.top, m.left, m.box.Height(), m.box.Width())
	bar := styleStatusKey.Render(" pan ") + styleStatusBar.Width(max(m.width-6, 0)).Render(status)

	// Fill unused terminal rows so the status bar stays at the bottom.
	filler := max(m.height-int(frame.Height()), 0)
	return body + strings.Repeat("\n", filler+1) + bar
}

// viewport trims b to an h×w window whose top-left corner sits at (top,
// left). Panning is expressed purely with views: a Bottom/Right trim drops
// the rows and columns before the origin, then a Top/Left trim caps the
// size.
func viewport(b rainbox.Box, top, left, h, w int) rainbox.Box {
	b = rainbox.ViewV(b.Height()-rainbox.Rows(top), rainbox.Bottom, b)
	b = rainbox.ViewH(b.Width()-rainbox.Cols(left), rainbox.Right, b)
	return rainbox.View(rainbox.Rows(h), rainbox.Cols(w), rainbox.Top, rainbox.Left, b)
}
