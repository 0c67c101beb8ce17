package practice

import (
	"context"
	"testing"

	"github.com/aeroSapphire/greprep/internal/mastery"
	"github.com/aeroSapphire/greprep/internal/question"
)

func testQuestion(id string, difficulty int, skillIDs []string, correctIDs ...string) *question.Question {
	q := &question.Question{
		ID:         id,
		Type:       question.TypeTextCompletion,
		Prompt:     "placeholder",
		Difficulty: difficulty,
		SkillIDs:   skillIDs,
	}
	correct := make(map[string]bool, len(correctIDs))
	for _, c := range correctIDs {
		correct[c] = true
	}
	for _, optID := range []string{"a", "b", "c", "d"} {
		q.Options = append(q.Options, question.Option{
			ID:      optID,
			Text:    optID,
			Correct: correct[optID],
		})
	}
	if len(correctIDs) > 1 {
		q.MultiSelect = true
	}
	return q
}

func testBank(qs ...*question.Question) *question.Bank {
	return question.NewBank(qs, 42)
}

func TestStartSeedsDefaultDifficulty(t *testing.T) {
	tracker := mastery.NewService(nil)
	c := Start("tc-contrast", testBank(), tracker)
	if got := c.CurrentDifficulty(); got != mastery.DefaultDifficulty {
		t.Errorf("seed difficulty = %v, want %v", got, mastery.DefaultDifficulty)
	}
	if c.State() != StateActive {
		t.Errorf("State = %v, want active", c.State())
	}
}

func TestStartSeedsStoredDifficulty(t *testing.T) {
	tracker := mastery.NewService(nil)
	sm := tracker.GetMastery("tc-contrast")
	sm.QuestionsSeen = 5
	sm.CurrentDifficulty = 3.2

	c := Start("tc-contrast", testBank(), tracker)
	if got := c.CurrentDifficulty(); got != 3.2 {
		t.Errorf("seed difficulty = %v, want stored 3.2", got)
	}
}

func TestThreeCorrectAnswersRaiseDifficulty(t *testing.T) {
	tracker := mastery.NewService(nil)
	bank := testBank(
		testQuestion("q1", 2, []string{"tc-contrast"}, "a"),
		testQuestion("q2", 2, []string{"tc-contrast"}, "a"),
		testQuestion("q3", 2, []string{"tc-contrast"}, "a"),
	)
	c := Start("tc-contrast", bank, tracker)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		q, err := c.SelectNext(ctx)
		if err != nil || q == nil {
			t.Fatalf("SelectNext #%d: q=%v err=%v", i+1, q, err)
		}
		correct, err := c.SubmitAnswer(q, []string{"a"})
		if err != nil {
			t.Fatal(err)
		}
		if !correct {
			t.Fatalf("answer #%d scored wrong", i+1)
		}
	}

	if got := c.CurrentDifficulty(); got != 3.5 {
		t.Errorf("difficulty after three correct = %v, want 3.5", got)
	}
}

func TestDifficultyClamps(t *testing.T) {
	tracker := mastery.NewService(nil)
	var qs []*question.Question
	for i := 0; i < 12; i++ {
		qs = append(qs, testQuestion(string(rune('a'+i))+"-q", 2, []string{"tc-contrast"}, "a"))
	}
	c := Start("tc-contrast", testBank(qs...), tracker)

	ctx := context.Background()
	for i := 0; i < 12; i++ {
		q, err := c.SelectNext(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if q == nil {
			break
		}
		if _, err := c.SubmitAnswer(q, []string{"a"}); err != nil {
			t.Fatal(err)
		}
	}
	if got := c.CurrentDifficulty(); got > 5.0 {
		t.Errorf("difficulty exceeded cap: %v", got)
	}

	c2 := Start("tc-contrast", testBank(
		testQuestion("w1", 2, []string{"tc-contrast"}, "a"),
		testQuestion("w2", 2, []string{"tc-contrast"}, "a"),
		testQuestion("w3", 2, []string{"tc-contrast"}, "a"),
		testQuestion("w4", 2, []string{"tc-contrast"}, "a"),
	), mastery.NewService(nil))
	for i := 0; i < 4; i++ {
		q, err := c2.SelectNext(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if q == nil {
			break
		}
		if _, err := c2.SubmitAnswer(q, []string{"b"}); err != nil {
			t.Fatal(err)
		}
	}
	if got := c2.CurrentDifficulty(); got < 1.0 {
		t.Errorf("difficulty fell below floor: %v", got)
	}
}

func TestMultiSelectExactSetEquality(t *testing.T) {
	q := testQuestion("se1", 3, []string{"se-synonym"}, "a", "c")

	cases := []struct {
		selected []string
		want     bool
	}{
		{[]string{"a", "c"}, true},
		{[]string{"c", "a"}, true},
		{[]string{"a"}, false},
		{[]string{"a", "b"}, false},
		{[]string{"a", "b", "c"}, false},
		{nil, false},
	}
	for _, tc := range cases {
		fresh := Start("se-synonym", testBank(q), mastery.NewService(nil))
		got, err := fresh.SubmitAnswer(q, tc.selected)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("selection %v scored %v, want %v", tc.selected, got, tc.want)
		}
	}
}

func TestSelectNextWidensFilter(t *testing.T) {
	tracker := mastery.NewService(nil)
	// Target rounds to 2 but the only question sits at difficulty 5, so
	// both the exact and the +-1 passes miss.
	bank := testBank(testQuestion("hard", 5, []string{"rc-inference"}, "a"))
	c := Start("rc-inference", bank, tracker)

	q, err := c.SelectNext(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if q == nil || q.ID != "hard" {
		t.Fatalf("widened selection = %v, want the difficulty-5 question", q)
	}
}

func TestSelectNextExhaustionCompletesSession(t *testing.T) {
	tracker := mastery.NewService(nil)
	bank := testBank(testQuestion("only", 2, []string{"tc-contrast"}, "a"))
	c := Start("tc-contrast", bank, tracker)

	ctx := context.Background()
	q, err := c.SelectNext(ctx)
	if err != nil || q == nil {
		t.Fatalf("first select: q=%v err=%v", q, err)
	}
	if _, err := c.SubmitAnswer(q, []string{"a"}); err != nil {
		t.Fatal(err)
	}

	q, err = c.SelectNext(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if q != nil {
		t.Fatalf("exhausted source returned %v", q)
	}
	if c.State() != StateComplete {
		t.Errorf("State = %v after exhaustion, want complete", c.State())
	}
}

func TestAnswerFoldsIntoEverySkillTag(t *testing.T) {
	tracker := mastery.NewService(nil)
	q := testQuestion("multi", 3, []string{"tc-contrast", "tc-elaboration"}, "a")
	c := Start("tc-contrast", testBank(q), tracker)

	if _, err := c.SubmitAnswer(q, []string{"a"}); err != nil {
		t.Fatal(err)
	}
	for _, skillID := range []string{"tc-contrast", "tc-elaboration"} {
		if tracker.GetMastery(skillID).QuestionsSeen != 1 {
			t.Errorf("skill %s not updated", skillID)
		}
	}
}

func TestSummaryMaxStreakAndReviewFlag(t *testing.T) {
	tracker := mastery.NewService(nil)
	var qs []*question.Question
	for i := 0; i < 8; i++ {
		qs = append(qs, testQuestion(string(rune('a'+i)), 2, []string{"tc-contrast"}, "a"))
	}
	c := Start("tc-contrast", testBank(qs...), tracker)

	// Pattern: correct, correct, wrong, wrong, wrong, correct.
	pattern := []bool{true, true, false, false, false, true}
	ctx := context.Background()
	for _, right := range pattern {
		q, err := c.SelectNext(ctx)
		if err != nil || q == nil {
			t.Fatalf("select: q=%v err=%v", q, err)
		}
		pick := "a"
		if !right {
			pick = "b"
		}
		if _, err := c.SubmitAnswer(q, []string{pick}); err != nil {
			t.Fatal(err)
		}
	}

	sum := c.Summarize()
	if sum.Total != 6 || sum.Correct != 3 {
		t.Errorf("totals = %d/%d, want 3/6", sum.Correct, sum.Total)
	}
	if sum.MaxStreak != 2 {
		t.Errorf("MaxStreak = %d, want 2", sum.MaxStreak)
	}
	if !sum.ShouldReviewLesson {
		t.Error("three consecutive misses did not set the review flag")
	}
	if len(sum.Progression) != 7 {
		t.Errorf("progression has %d points, want seed + 6", len(sum.Progression))
	}
	before, after := sum.MasteryBefore["tc-contrast"], sum.MasteryAfter["tc-contrast"]
	if before != 0 {
		t.Errorf("MasteryBefore = %v, want 0 for a fresh skill", before)
	}
	if after == before {
		t.Error("MasteryAfter did not move")
	}
}

func TestTwoMissRunsDoNotSetReviewFlag(t *testing.T) {
	tracker := mastery.NewService(nil)
	var qs []*question.Question
	for i := 0; i < 6; i++ {
		qs = append(qs, testQuestion(string(rune('a'+i)), 2, []string{"tc-contrast"}, "a"))
	}
	c := Start("tc-contrast", testBank(qs...), tracker)

	pattern := []bool{false, false, true, false, false, true}
	ctx := context.Background()
	for _, right := range pattern {
		q, err := c.SelectNext(ctx)
		if err != nil || q == nil {
			t.Fatalf("select: q=%v err=%v", q, err)
		}
		pick := "a"
		if !right {
			pick = "b"
		}
		if _, err := c.SubmitAnswer(q, []string{pick}); err != nil {
			t.Fatal(err)
		}
	}

	if sum := c.Summarize(); sum.ShouldReviewLesson {
		t.Error("review flag set without a three-miss run")
	}
}

func TestZeroQuestionSummary(t *testing.T) {
	tracker := mastery.NewService(nil)
	c := Start("tc-contrast", testBank(), tracker)

	q, err := c.SelectNext(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if q != nil {
		t.Fatalf("empty bank returned %v", q)
	}

	sum := c.Summarize()
	if sum.Total != 0 || sum.Correct != 0 || sum.Accuracy != 0 {
		t.Errorf("zero-question summary = %+v", sum)
	}
	if sum.ShouldReviewLesson {
		t.Error("review flag set for an empty session")
	}
}
