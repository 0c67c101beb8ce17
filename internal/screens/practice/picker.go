package practice

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
	"github.com/aeroSapphire/greprep/internal/skills"
	"github.com/aeroSapphire/greprep/internal/store"
	"github.com/aeroSapphire/greprep/internal/ui/components"
	"github.com/aeroSapphire/greprep/internal/ui/layout"
	"github.com/aeroSapphire/greprep/internal/ui/theme"
)

// PickerScreen lets the learner choose which skill to practice, with
// current effective mastery shown against each one.
type PickerScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// NewPicker builds the skill list from the latest snapshot.
func NewPicker(source question.Source, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, provider llm.Provider) *PickerScreen {
	prof, err := profile.Load(context.Background(), snapRepo, provider)
	if err != nil {
		prof = profile.FromSnapshot(nil, provider)
	}
	now := time.Now()

	var items []components.MenuItem
	for _, cat := range skills.AllCategories() {
		for _, sk := range skills.ByCategory(cat) {
			if sk.IsTrap() {
				// Trap recognition is trained inside the question-type
				// sessions, not picked directly.
				continue
			}
			sk := sk
			badge := "new"
			if m := prof.Mastery.GetMastery(sk.ID); m.QuestionsSeen > 0 {
				badge = fmt.Sprintf("mastery %.0f%%", prof.Mastery.EffectiveMastery(sk.ID, now)*100)
			}
			items = append(items, components.MenuItem{
				Label: sk.Name,
				Badge: badge,
				Action: func() tea.Cmd {
					return func() tea.Msg {
						return router.PushScreenMsg{
							Screen: New(sk.ID, source, eventRepo, snapRepo, provider),
						}
					}
				},
			})
		}
	}
	items = append(items, components.MenuItem{
		Label: "Back",
		Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		},
	})

	return &PickerScreen{menu: components.NewMenu(items)}
}

func (p *PickerScreen) Init() tea.Cmd {
	return nil
}

func (p *PickerScreen) Title() string {
	return "Choose a Skill"
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}
	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *PickerScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("What do you want to work on?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, p.menu.View()))
	return b.String()
}
