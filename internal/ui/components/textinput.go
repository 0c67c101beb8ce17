package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aeroSapphire/greprep/internal/ui/theme"
)

// TextInput wraps bubbles/textinput for free-form answers, mainly the
// write-a-sentence prompt. After Submit it renders a pass or fail mark
// next to the field.
type TextInput struct {
	Model     textinput.Model
	submitted bool
	valid     bool
}

func NewTextInput(placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{Model: ti}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) View() string {
	view := t.Model.View()
	if !t.submitted {
		return view
	}
	if t.valid {
		return view + " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	}
	return view + " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
}

// Value returns the text typed so far.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Submit freezes the input with its validation verdict.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}
