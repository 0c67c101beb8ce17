package question

import (
	"context"
	"testing"
)

func testBank() *Bank {
	return NewBank([]*Question{
		{ID: "q1", Difficulty: 1, SkillIDs: []string{"TC-CON"}},
		{ID: "q2", Difficulty: 2, SkillIDs: []string{"TC-CON"}},
		{ID: "q3", Difficulty: 3, SkillIDs: []string{"TC-CON", "TC-CE"}},
		{ID: "q4", Difficulty: 4, SkillIDs: []string{"SE-SYN"}},
		{ID: "q5", Difficulty: 5, SkillIDs: []string{"SE-SYN"}},
	}, 42)
}

func TestGetQuestions_ExactDifficulty(t *testing.T) {
	b := testBank()
	qs, err := b.GetQuestions(context.Background(), Filter{SkillIDs: []string{"TC-CON"}, Difficulty: 2}, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(qs) != 1 || qs[0].ID != "q2" {
		t.Errorf("got %d questions, want exactly q2", len(qs))
	}
}

func TestGetQuestions_Range(t *testing.T) {
	b := testBank()
	f := Filter{SkillIDs: []string{"TC-CON"}}
	f.DifficultyRange.Min = 1
	f.DifficultyRange.Max = 2
	qs, err := b.GetQuestions(context.Background(), f, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(qs) != 2 {
		t.Errorf("got %d questions, want 2", len(qs))
	}
}

func TestGetQuestions_Exclude(t *testing.T) {
	b := testBank()
	qs, err := b.GetQuestions(context.Background(), Filter{SkillIDs: []string{"SE-SYN"}, ExcludeIDs: []string{"q4"}}, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(qs) != 1 || qs[0].ID != "q5" {
		t.Errorf("exclusion failed: got %v", qs)
	}
}

func TestGetQuestions_WithoutReplacement(t *testing.T) {
	b := testBank()
	qs, err := b.GetQuestions(context.Background(), Filter{}, 5)
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[string]bool)
	for _, q := range qs {
		if seen[q.ID] {
			t.Fatalf("question %s returned twice in one call", q.ID)
		}
		seen[q.ID] = true
	}
	if len(qs) != 5 {
		t.Errorf("got %d questions, want 5", len(qs))
	}
}

func TestGetQuestions_CountZero(t *testing.T) {
	b := testBank()
	qs, err := b.GetQuestions(context.Background(), Filter{}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if qs != nil {
		t.Errorf("got %v, want nil", qs)
	}
}

func TestSeedQuestions_WellFormed(t *testing.T) {
	for _, q := range seedQuestions() {
		if q.Difficulty < 1 || q.Difficulty > 5 {
			t.Errorf("%s: difficulty %d out of range", q.ID, q.Difficulty)
		}
		correct := len(q.CorrectOptionIDs())
		if q.MultiSelect && correct != 2 {
			t.Errorf("%s: multi-select question has %d correct options, want 2", q.ID, correct)
		}
		if !q.MultiSelect && correct != 1 {
			t.Errorf("%s: single-select question has %d correct options, want 1", q.ID, correct)
		}
		if len(q.SkillIDs) == 0 {
			t.Errorf("%s: no skill tags", q.ID)
		}
	}
}
