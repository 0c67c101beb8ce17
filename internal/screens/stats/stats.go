// Package stats shows the learner's progress: per-skill mastery,
// cluster mastery, review load, and the words they confuse most.
package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aeroSapphire/greprep/internal/cluster"
	"github.com/aeroSapphire/greprep/internal/llm"
	"github.com/aeroSapphire/greprep/internal/mastery"
	"github.com/aeroSapphire/greprep/internal/profile"
	"github.com/aeroSapphire/greprep/internal/router"
	"github.com/aeroSapphire/greprep/internal/screen"
	"github.com/aeroSapphire/greprep/internal/skills"
	"github.com/aeroSapphire/greprep/internal/store"
	"github.com/aeroSapphire/greprep/internal/ui/layout"
	"github.com/aeroSapphire/greprep/internal/ui/theme"
)

// Screen is a read-only progress report.
type Screen struct {
	prof   *profile.Profile
	errMsg string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New loads the latest snapshot for display.
func New(snapRepo store.SnapshotRepo, provider llm.Provider) *Screen {
	s := &Screen{}
	prof, err := profile.Load(context.Background(), snapRepo, provider)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.prof = prof
	return s
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Progress"
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
		return centered(width, theme.Incorrect.Render("\n\n\n  Error: "+s.errMsg))
	}

	now := time.Now()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.renderSkills(width, now))
	b.WriteString("\n")
	b.WriteString(s.renderClusters(width, now))
	b.WriteString("\n")
	b.WriteString(s.renderReviews(width, now))
	return b.String()
}

func (s *Screen) renderSkills(width int, now time.Time) string {
	var b strings.Builder
	b.WriteString(heading(width, "Skills"))

	practiced := 0
	for _, sk := range skills.All() {
		m := s.prof.Mastery.GetMastery(sk.ID)
		if m.QuestionsSeen == 0 {
			continue
		}
		practiced++
		eff := s.prof.Mastery.EffectiveMastery(sk.ID, now)
		line := fmt.Sprintf("%-34s %-11s %3.0f%%  %s %s",
			sk.Name, m.Level, eff*100, trendGlyph(m.Trend),
			fmt.Sprintf("(%d/%d)", m.CorrectCount, m.QuestionsSeen))
		b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}
	if practiced == 0 {
		b.WriteString(centered(width, theme.Hint.Render("No practice yet. Start a session to see progress.")))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *Screen) renderClusters(width int, now time.Time) string {
	var b strings.Builder
	b.WriteString(heading(width, "Word Clusters"))

	for _, m := range s.prof.Clusters.AllMasteries(now) {
		c, err := cluster.Get(m.ClusterID)
		if err != nil {
			continue
		}
		line := fmt.Sprintf("%-34s %-10s %3.0f%%", c.Name, cluster.MasteryLabel(m.Overall), m.Overall*100)
		b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	pairs := s.prof.Clusters.Matrix().MostConfusedPairs(3)
	if len(pairs) > 0 {
		b.WriteString("\n")
		var parts []string
		for _, p := range pairs {
			parts = append(parts, fmt.Sprintf("%s/%s ×%d", p.WordA, p.WordB, p.Count))
		}
		b.WriteString(centered(width, theme.Hint.Render("Most confused: "+strings.Join(parts, "   "))))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *Screen) renderReviews(width int, now time.Time) string {
	var b strings.Builder
	b.WriteString(heading(width, "Flashcards"))

	line := fmt.Sprintf("%d tracked   ·   %d due now", s.prof.Reviews.TrackedCount(), len(s.prof.Reviews.Due(now)))
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
	b.WriteString("\n")
	return b.String()
}

func heading(width int, text string) string {
	return centered(width, lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).Render(text)) + "\n"
}

func trendGlyph(t mastery.Trend) string {
	switch t {
	case mastery.TrendImproving:
		return "↑"
	case mastery.TrendDeclining:
		return "↓"
	}
	return "→"
}

func centered(width int, s string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
}
