// Package screen holds the interface every application screen
// implements. It lives in its own package so screens and the router can
// both depend on it without a cycle.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/aeroSapphire/greprep/internal/ui/layout"
)

// Screen is one full-window view managed by the router. View receives
// the content region size; the router draws the header and footer
// around it.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string

	// Title labels the screen in the header bar.
	Title() string
}

// KeyHintProvider lets a screen publish its own footer key hints.
// Screens that skip it get the router's defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
