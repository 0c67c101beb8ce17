// Package app wires the screen stack into the root Bubble Tea model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aeroSapphire/greprep/internal/llm"
	"github.com/aeroSapphire/greprep/internal/question"
	"github.com/aeroSapphire/greprep/internal/router"
	"github.com/aeroSapphire/greprep/internal/screen"
	"github.com/aeroSapphire/greprep/internal/screens/home"
	"github.com/aeroSapphire/greprep/internal/store"
	"github.com/aeroSapphire/greprep/internal/ui/layout"
)

// Deps carries everything the screens need.
type Deps struct {
	Source    question.Source
	EventRepo store.EventRepo
	SnapRepo  store.SnapshotRepo
	Provider  llm.Provider

	// DueCards and Streak feed the persistent header.
	DueCards int
	Streak   int
}

// AppModel owns the terminal size and delegates everything else to the
// router.
type AppModel struct {
	router *router.Router
	deps   Deps
	width  int
	height int
}

func newAppModel(deps Deps, first screen.Screen) AppModel {
	if first == nil {
		first = home.New(deps.Source, deps.EventRepo, deps.SnapRepo, deps.Provider)
	}
	return AppModel{
		router: router.New(first),
		deps:   deps,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Only ctrl+c quits unconditionally. Esc belongs to the
		// screens, which confirm before discarding a session.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m, m.router.Update(msg)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.deps.DueCards, m.deps.Streak, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}
	content := m.router.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		return hp.KeyHints()
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the TUI at the home screen.
func Run(deps Deps) error {
	return runScreen(deps, nil)
}

// RunScreen starts the TUI directly on the given screen, for the
// subcommands that jump straight into a session.
func RunScreen(deps Deps, s screen.Screen) error {
	return runScreen(deps, s)
}

func runScreen(deps Deps, s screen.Screen) error {
	p := tea.NewProgram(newAppModel(deps, s))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
