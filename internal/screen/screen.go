package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/vololibero/quizvl/internal/ui/layout"
)

// Screen is implemented by every page of the TUI.
type Screen interface {
	// Init returns the command run when the screen is opened.
	Init() tea.Cmd

	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area, without header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Refresher is implemented by screens that reload their data when they
// become active again after the screen above them is closed.
type Refresher interface {
	Refresh() tea.Cmd
}
