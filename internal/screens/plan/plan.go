// Package plan renders the generated study plan: ranked next actions
// with time estimates, derived from mastery, review, and lesson state.
package plan

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aeroSapphire/greprep/internal/llm"
	"github.com/aeroSapphire/greprep/internal/profile"
	"github.com/aeroSapphire/greprep/internal/router"
	"github.com/aeroSapphire/greprep/internal/screen"
	"github.com/aeroSapphire/greprep/internal/skills"
	"github.com/aeroSapphire/greprep/internal/store"
	"github.com/aeroSapphire/greprep/internal/studyplan"
	"github.com/aeroSapphire/greprep/internal/ui/layout"
	"github.com/aeroSapphire/greprep/internal/ui/theme"
)

// Screen shows today's and this week's recommendations.
type Screen struct {
	plan   studyplan.Plan
	errMsg string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New generates the plan from the latest snapshot.
func New(snapRepo store.SnapshotRepo, provider llm.Provider) *Screen {
	s := &Screen{}

	prof, err := profile.Load(context.Background(), snapRepo, provider)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}

	s.plan = studyplan.Generate(prof.Mastery, prof.Reviews, prof.LessonsCompleted(), time.Now())
	return s
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Study Plan"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Render(theme.Incorrect.Render("\n\n\n  Error: " + s.errMsg))
	}

	var b strings.Builder
	b.WriteString("\n")

	msg := lipgloss.NewStyle().
		Width(min(width-8, 76)).
		Foreground(theme.Text).
		Render(s.plan.OverallMessage)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, msg))
	b.WriteString("\n\n")

	b.WriteString(s.renderSection(width, "Today", s.plan.Today))
	if len(s.plan.ThisWeek) > 0 {
		b.WriteString("\n")
		b.WriteString(s.renderSection(width, "This Week", s.plan.ThisWeek))
	}

	var footer []string
	if s.plan.DueCards > 0 {
		footer = append(footer, fmt.Sprintf("%d flashcards due", s.plan.DueCards))
	}
	if len(s.plan.FocusAreas) > 0 {
		var names []string
		for _, c := range s.plan.FocusAreas {
			names = append(names, skills.CategoryDisplayName(c))
		}
		footer = append(footer, "Focus: "+strings.Join(names, ", "))
	}
	if len(footer) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(strings.Join(footer, "   ·   "))))
	}

	return b.String()
}

func (s *Screen) renderSection(width int, heading string, recs []studyplan.Recommendation) string {
	var b strings.Builder

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).Render(heading)))
	b.WriteString("\n")

	if len(recs) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Nothing queued. Nice work.")))
		b.WriteString("\n")
		return b.String()
	}

	for _, r := range recs {
		line := fmt.Sprintf("%s  %s  (%d min)", recGlyph(r.Type), r.Description, r.EstimatedMinutes)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(min(width-8, 76)).Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

func recGlyph(t studyplan.RecommendationType) string {
	switch t {
	case studyplan.RecLesson:
		return "◆"
	case studyplan.RecPractice:
		return "▸"
	case studyplan.RecReview:
		return "↻"
	case studyplan.RecFlashcards:
		return "▣"
	}
	return "·"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
