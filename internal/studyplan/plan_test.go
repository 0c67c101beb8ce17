package studyplan

import (
	"testing"
	"time"

	"github.com/aeroSapphire/greprep/internal/mastery"
	"github.com/aeroSapphire/greprep/internal/skills"
	"github.com/aeroSapphire/greprep/internal/srs"
)

func TestFreshLearnerGetsLessonsFirst(t *testing.T) {
	tracker := mastery.NewService(nil)
	sched := srs.NewScheduler(nil)

	plan := Generate(tracker, sched, nil, time.Now())
	if len(plan.Today) == 0 {
		t.Fatal("fresh learner got an empty plan")
	}
	for _, rec := range plan.Today {
		if rec.Type != RecLesson {
			t.Errorf("fresh learner recommendation %v, want lessons only", rec.Type)
		}
	}
	if plan.OverallMessage != "Welcome! Start with the pattern lessons to build your foundation." {
		t.Errorf("message = %q", plan.OverallMessage)
	}
}

func TestNoTrapLessonsRecommended(t *testing.T) {
	tracker := mastery.NewService(nil)
	plan := Generate(tracker, nil, nil, time.Now())
	all := append(append([]Recommendation{}, plan.Today...), plan.ThisWeek...)
	for _, rec := range all {
		if rec.SkillID == "" {
			continue
		}
		s, err := skills.Get(rec.SkillID)
		if err != nil {
			t.Errorf("recommendation names unknown skill %q", rec.SkillID)
			continue
		}
		if rec.Type == RecLesson && s.IsTrap() {
			t.Errorf("trap skill %s recommended as a lesson", rec.SkillID)
		}
	}
}

func TestWeakSkillPracticeRecommended(t *testing.T) {
	now := time.Now()
	tracker := mastery.NewService(nil)

	// Mark every lesson complete so weak-skill practice leads the plan.
	completed := make(map[string]bool)
	for _, s := range skills.All() {
		completed[s.ID] = true
	}

	sm := tracker.GetMastery("TC-CON")
	sm.Mastery = 0.2
	sm.QuestionsSeen = 10
	sm.CorrectCount = 3
	sm.LastPracticedAt = now

	plan := Generate(tracker, nil, completed, now)
	found := false
	for _, rec := range append(plan.Today, plan.ThisWeek...) {
		if rec.Type == RecPractice && rec.SkillID == "TC-CON" {
			found = true
		}
	}
	if !found {
		t.Error("weak practiced skill not recommended for practice")
	}
	if len(plan.FocusAreas) == 0 {
		t.Error("weak skills produced no focus areas")
	}
}

func TestDecayingSkillGetsReview(t *testing.T) {
	now := time.Now()
	tracker := mastery.NewService(nil)
	completed := make(map[string]bool)
	for _, s := range skills.All() {
		completed[s.ID] = true
	}

	sm := tracker.GetMastery("RC-STR")
	sm.Mastery = 0.7
	sm.QuestionsSeen = 12
	sm.CorrectCount = 10
	sm.LastPracticedAt = now.AddDate(0, 0, -20)

	plan := Generate(tracker, nil, completed, now)
	found := false
	for _, rec := range append(plan.Today, plan.ThisWeek...) {
		if rec.Type == RecReview && rec.SkillID == "RC-STR" {
			found = true
		}
	}
	if !found {
		t.Error("decaying skill not recommended for review")
	}
}

func TestDueCardsCounted(t *testing.T) {
	now := time.Now()
	tracker := mastery.NewService(nil)
	sched := srs.NewScheduler(nil)
	if _, err := sched.Grade("card-1", srs.GradeEasy, now.AddDate(0, 0, -30)); err != nil {
		t.Fatal(err)
	}
	if _, err := sched.Grade("card-2", srs.GradeFail, now.AddDate(0, 0, -30)); err != nil {
		t.Fatal(err)
	}

	plan := Generate(tracker, sched, nil, now)
	if plan.DueCards != 2 {
		t.Errorf("DueCards = %d, want 2", plan.DueCards)
	}
	found := false
	for _, rec := range append(plan.Today, plan.ThisWeek...) {
		if rec.Type == RecFlashcards {
			found = true
		}
	}
	if !found {
		t.Error("due cards produced no flashcard recommendation")
	}
}

func TestPlanOrderingAndCaps(t *testing.T) {
	now := time.Now()
	tracker := mastery.NewService(nil)

	plan := Generate(tracker, nil, nil, now)
	if len(plan.Today) > 3 {
		t.Errorf("Today has %d entries, want at most 3", len(plan.Today))
	}
	if len(plan.ThisWeek) > 5 {
		t.Errorf("ThisWeek has %d entries, want at most 5", len(plan.ThisWeek))
	}

	last := 0
	for _, rec := range append(plan.Today, plan.ThisWeek...) {
		if rec.Priority < last {
			t.Errorf("recommendations out of priority order")
		}
		last = rec.Priority
	}
}
