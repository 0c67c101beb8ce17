// Package home is the top-level menu: it shows the learner's headline
// numbers and routes into practice, study, drills, the plan, and stats.
package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aeroSapphire/greprep/internal/llm"
	"github.com/aeroSapphire/greprep/internal/profile"
	"github.com/aeroSapphire/greprep/internal/question"
	"github.com/aeroSapphire/greprep/internal/router"
	"github.com/aeroSapphire/greprep/internal/screen"
	"github.com/aeroSapphire/greprep/internal/screens/drill"
	"github.com/aeroSapphire/greprep/internal/screens/plan"
	practicescreen "github.com/aeroSapphire/greprep/internal/screens/practice"
	"github.com/aeroSapphire/greprep/internal/screens/stats"
	"github.com/aeroSapphire/greprep/internal/screens/study"
	"github.com/aeroSapphire/greprep/internal/store"
	"github.com/aeroSapphire/greprep/internal/ui/components"
	"github.com/aeroSapphire/greprep/internal/ui/layout"
	"github.com/aeroSapphire/greprep/internal/ui/theme"
	"github.com/aeroSapphire/greprep/internal/vocab"
)

// HomeScreen is the application's entry screen.
type HomeScreen struct {
	menu components.Menu

	dueCards     int
	learnedWords int
	streak       int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New reads the latest snapshot for the headline numbers and wires the
// menu actions.
func New(source question.Source, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, provider llm.Provider) *HomeScreen {
	h := &HomeScreen{}

	now := time.Now()
	if prof, err := profile.Load(context.Background(), snapRepo, provider); err == nil {
		h.dueCards = len(prof.Reviews.Due(now))
		h.streak = prof.Streak(now)
		for _, c := range vocab.All() {
			if prof.Clusters.IsLearned(c.Word) {
				h.learnedWords++
			}
		}
	}

	studyBadge := ""
	if h.dueCards > 0 {
		studyBadge = fmt.Sprintf("%d due", h.dueCards)
	}

	items := []components.MenuItem{
		{Label: "PRACTICE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: practicescreen.NewPicker(source, eventRepo, snapRepo, provider),
				}
			}
		}},
		{Label: "STUDY FLASHCARDS", Badge: studyBadge, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: study.New(eventRepo, snapRepo, provider),
				}
			}
		}},
		{Label: "CLUSTER DRILLS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: drill.NewPicker(eventRepo, snapRepo, provider),
				}
			}
		}},
		{Label: "STUDY PLAN", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: plan.New(snapRepo, provider)}
			}
		}},
		{Label: "PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(snapRepo, provider)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("GREprep"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Adaptive verbal prep for the terminal"))
	b.WriteString("\n\n")

	statLine := fmt.Sprintf("▣ %d cards due    ◆ %d words learned    ★ %d day streak",
		h.dueCards, h.learnedWords, h.streak)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Card.Render(statLine)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}
