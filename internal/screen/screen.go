package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/levelup/internal/ui/layout"
)

// Screen is one page of the TUI. The app frame draws the header and footer;
// a screen only renders its content area.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string

	// Title is shown in the middle of the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider lets a screen put text on the right of the header,
// such as the signed-in student's name.
type StatusProvider interface {
	Status() string
}
