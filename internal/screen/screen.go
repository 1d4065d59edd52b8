// Package screen defines the interface the router and app frame expect
// from every screen.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/sauravjha/bcabuddy/internal/ui/layout"
)

// Screen is one full-terminal view. View renders only the content
// area; the app frame adds the header and footer around it.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string

	// Title is shown centered in the header.
	Title() string
}

// KeyHintProvider lets a screen supply its own footer key hints
// instead of the defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
