// Package summary is the end-of-session recap screen. Practice, study,
// and drill sessions flatten their results into lines and hand them
// here.
package summary

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aeroSapphire/greprep/internal/router"
	"github.com/aeroSapphire/greprep/internal/screen"
	"github.com/aeroSapphire/greprep/internal/ui/layout"
	"github.com/aeroSapphire/greprep/internal/ui/theme"
)

type SummaryScreen struct {
	title string
	lines []string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

func New(title string, lines []string) *SummaryScreen {
	return &SummaryScreen{title: title, lines: lines}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return s.title
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	centered := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder
	b.WriteString(centered(
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		"Session complete!"))
	b.WriteString("\n\n")

	lineWidth := min(width-8, 70)
	for _, line := range s.lines {
		styled := lipgloss.NewStyle().
			Width(lineWidth).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(line)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, styled))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centered(
		lipgloss.NewStyle().Foreground(theme.TextDim),
		"Press Enter to return home."))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
