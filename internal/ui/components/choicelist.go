package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aeroSapphire/greprep/internal/ui/theme"
)

// ChoiceList is an answer-option selector. Single-select questions submit
// on enter; multi-select (sentence equivalence) toggles with space and
// submits with enter once the required count is marked.
type ChoiceList struct {
	Options     []string
	CorrectSet  map[int]bool
	MultiSelect bool
	// PickCount is how many options a multi-select answer requires.
	PickCount int
	// Ordered makes the mark sequence part of the answer; marks render
	// as position numbers instead of checkboxes.
	Ordered bool

	Cursor    int
	Marked    map[int]bool
	Order     []int
	Submitted bool
}

// NewChoiceList creates a choice list over the option texts.
func NewChoiceList(options []string, correct map[int]bool, multiSelect bool, pickCount int) ChoiceList {
	return ChoiceList{
		Options:     options,
		CorrectSet:  correct,
		MultiSelect: multiSelect,
		PickCount:   pickCount,
		Marked:      make(map[int]bool),
	}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles navigation, marking, and submission. The second return
// reports whether this message completed a submission.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, bool) {
	if c.Submitted {
		return c, false
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, false
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "space", " ":
		if c.MultiSelect {
			c.toggle(c.Cursor)
		}
	case "enter":
		if !c.MultiSelect {
			c.Marked = map[int]bool{c.Cursor: true}
			c.Submitted = true
			return c, true
		}
		if len(c.Marked) == c.PickCount {
			c.Submitted = true
			return c, true
		}
	}

	return c, false
}

func (c *ChoiceList) toggle(i int) {
	if c.Marked[i] {
		delete(c.Marked, i)
		for j, idx := range c.Order {
			if idx == i {
				c.Order = append(c.Order[:j], c.Order[j+1:]...)
				break
			}
		}
		return
	}
	if len(c.Marked) >= c.PickCount {
		return
	}
	c.Marked[i] = true
	c.Order = append(c.Order, i)
}

// SelectedIndices returns the marked option indices, in mark order when
// the list is Ordered.
func (c ChoiceList) SelectedIndices() []int {
	if c.Ordered {
		return append([]int(nil), c.Order...)
	}
	var out []int
	for i := range c.Options {
		if c.Marked[i] {
			out = append(out, i)
		}
	}
	return out
}

// View renders the option list, with correct/incorrect coloring after
// submission.
func (c ChoiceList) View() string {
	labels := []string{"A", "B", "C", "D", "E", "F"}

	var s string
	for i, opt := range c.Options {
		label := "?"
		if i < len(labels) {
			label = labels[i]
		}

		prefix := "  "
		if i == c.Cursor && !c.Submitted {
			prefix = "▸ "
		}

		mark := " "
		if c.MultiSelect {
			mark = "[ ]"
			if c.Marked[i] {
				mark = "[x]"
			}
			if c.Ordered {
				mark = "[ ]"
				for j, idx := range c.Order {
					if idx == i {
						mark = fmt.Sprintf("[%d]", j+1)
						break
					}
				}
			}
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, mark, label, opt)

		switch {
		case c.Submitted && c.CorrectSet[i]:
			s += theme.Correct.Render(line) + "\n"
		case c.Submitted && c.Marked[i]:
			s += theme.Incorrect.Render(line) + "\n"
		case c.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == c.Cursor:
			s += theme.Selected.Render(line) + "\n"
		case c.Marked[i]:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	if c.MultiSelect && !c.Submitted {
		hint := fmt.Sprintf("mark %d with space, then enter", c.PickCount)
		if c.Ordered {
			hint = fmt.Sprintf("mark all %d in order with space, then enter", c.PickCount)
		}
		s += theme.Hint.Render("\n" + hint)
	}

	return s
}

// IsCorrect reports whether the marked set matches the correct set.
func (c ChoiceList) IsCorrect() bool {
	if !c.Submitted || len(c.Marked) != len(c.CorrectSet) {
		return false
	}
	for i := range c.Marked {
		if !c.CorrectSet[i] {
			return false
		}
	}
	return true
}
