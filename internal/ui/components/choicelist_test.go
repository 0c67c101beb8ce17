package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(s string) tea.KeyPressMsg {
	if s == "space" {
		return tea.KeyPressMsg{Code: ' ', Text: " "}
	}
	if s == "enter" {
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestChoiceList_SingleSelect(t *testing.T) {
	c := NewChoiceList([]string{"a", "b", "c"}, map[int]bool{1: true}, false, 1)

	c, done := c.Update(key("j"))
	if done {
		t.Fatal("navigation must not submit")
	}
	if c.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", c.Cursor)
	}

	c, done = c.Update(key("enter"))
	if !done {
		t.Fatal("enter must submit a single-select list")
	}
	got := c.SelectedIndices()
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("selected = %v, want [1]", got)
	}
}

func TestChoiceList_MultiSelectRequiresPickCount(t *testing.T) {
	c := NewChoiceList([]string{"a", "b", "c", "d"}, map[int]bool{0: true, 2: true}, true, 2)

	c, _ = c.Update(key("space"))
	c, done := c.Update(key("enter"))
	if done {
		t.Fatal("enter must not submit with only one of two marks")
	}

	c, _ = c.Update(key("j"))
	c, _ = c.Update(key("j"))
	c, _ = c.Update(key("space"))
	c, done = c.Update(key("enter"))
	if !done {
		t.Fatal("enter must submit once the pick count is reached")
	}
	got := c.SelectedIndices()
	if len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Errorf("selected = %v, want [0 2]", got)
	}
}

func TestChoiceList_MarkCap(t *testing.T) {
	c := NewChoiceList([]string{"a", "b", "c"}, nil, true, 2)

	c, _ = c.Update(key("space"))
	c, _ = c.Update(key("j"))
	c, _ = c.Update(key("space"))
	c, _ = c.Update(key("j"))
	c, _ = c.Update(key("space"))
	if len(c.Marked) != 2 {
		t.Errorf("marked = %d, want cap of 2", len(c.Marked))
	}
}

func TestChoiceList_OrderedTracksMarkSequence(t *testing.T) {
	c := NewChoiceList([]string{"warm", "hot", "scalding"}, nil, true, 3)
	c.Ordered = true

	// Mark bottom-up: scalding, hot, warm.
	c, _ = c.Update(key("j"))
	c, _ = c.Update(key("j"))
	c, _ = c.Update(key("space"))
	c, _ = c.Update(key("k"))
	c, _ = c.Update(key("space"))
	c, _ = c.Update(key("k"))
	c, _ = c.Update(key("space"))

	got := c.SelectedIndices()
	want := []int{2, 1, 0}
	if len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Errorf("ordered selection = %v, want %v", got, want)
	}
}

func TestChoiceList_OrderedUnmarkRemovesFromSequence(t *testing.T) {
	c := NewChoiceList([]string{"a", "b", "c"}, nil, true, 3)
	c.Ordered = true

	c, _ = c.Update(key("space"))
	c, _ = c.Update(key("j"))
	c, _ = c.Update(key("space"))
	// Unmark the first pick; the second should move up to position one.
	c, _ = c.Update(key("k"))
	c, _ = c.Update(key("space"))

	got := c.SelectedIndices()
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("selection after unmark = %v, want [1]", got)
	}
}

func TestChoiceList_SubmittedIgnoresInput(t *testing.T) {
	c := NewChoiceList([]string{"a", "b"}, map[int]bool{0: true}, false, 1)
	c, _ = c.Update(key("enter"))

	c, done := c.Update(key("j"))
	if done || c.Cursor != 0 {
		t.Error("a submitted list must ignore further input")
	}
}
