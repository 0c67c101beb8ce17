package profile

import (
	"context"
	"testing"
	"time"

	"github.com/aeroSapphire/greprep/internal/srs"
	"github.com/aeroSapphire/greprep/internal/store"
)

func TestFromSnapshotNil(t *testing.T) {
	p := FromSnapshot(nil, nil)
	if p.Mastery == nil || p.Reviews == nil || p.Clusters == nil || p.Mistakes == nil {
		t.Fatal("all services must be constructed from a nil snapshot")
	}
	if len(p.LessonsCompleted()) != 0 {
		t.Error("fresh profile should have no completed lessons")
	}
}

func TestSnapshotDataRoundTrip(t *testing.T) {
	now := time.Now()

	p := FromSnapshot(nil, nil)
	p.Mastery.RecordAnswer("TC-CON", true, 3, now)
	if _, err := p.Reviews.Grade("w-enervate", srs.GradeEasy, now); err != nil {
		t.Fatalf("grade: %v", err)
	}
	p.Clusters.MarkLearned("enervate")
	p.MarkLessonCompleted("TC-CON")

	data := p.SnapshotData()
	if data.Version != store.SnapshotVersion {
		t.Errorf("version = %d, want %d", data.Version, store.SnapshotVersion)
	}

	restored := FromSnapshot(&data, nil)
	sm := restored.Mastery.GetMastery("TC-CON")
	if sm.QuestionsSeen != 1 || sm.CorrectCount != 1 {
		t.Errorf("restored mastery seen=%d correct=%d", sm.QuestionsSeen, sm.CorrectCount)
	}
	if restored.Reviews.TrackedCount() != 1 {
		t.Errorf("restored tracked cards = %d, want 1", restored.Reviews.TrackedCount())
	}
	if !restored.Clusters.IsLearned("enervate") {
		t.Error("learned word lost in round trip")
	}
	if !restored.LessonsCompleted()["TC-CON"] {
		t.Error("completed lesson lost in round trip")
	}
}

func TestStreak(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	p := FromSnapshot(nil, nil)
	if p.Streak(now) != 0 {
		t.Errorf("fresh profile streak = %d, want 0", p.Streak(now))
	}

	p.touchStreak(now)
	if p.Streak(now) != 1 {
		t.Errorf("after first study streak = %d, want 1", p.Streak(now))
	}

	// Same day again must not double-count.
	p.touchStreak(now.Add(5 * time.Hour))
	if p.Streak(now) != 1 {
		t.Errorf("same-day streak = %d, want 1", p.Streak(now))
	}

	// Next day extends the chain.
	day2 := now.AddDate(0, 0, 1)
	p.touchStreak(day2)
	if p.Streak(day2) != 2 {
		t.Errorf("day-2 streak = %d, want 2", p.Streak(day2))
	}

	// A streak stays visible the day after the last session.
	if p.Streak(day2.AddDate(0, 0, 1)) != 2 {
		t.Error("streak should survive until end of the following day")
	}

	// Two idle days break the chain.
	if p.Streak(day2.AddDate(0, 0, 2)) != 0 {
		t.Error("stale streak should read as 0")
	}

	// Studying after a gap restarts at 1.
	day5 := now.AddDate(0, 0, 4)
	p.touchStreak(day5)
	if p.Streak(day5) != 1 {
		t.Errorf("post-gap streak = %d, want 1", p.Streak(day5))
	}
}

func TestStreakSurvivesRoundTrip(t *testing.T) {
	now := time.Now()
	p := FromSnapshot(nil, nil)
	p.touchStreak(now.AddDate(0, 0, -1))
	p.touchStreak(now)

	data := p.SnapshotData()
	restored := FromSnapshot(&data, nil)
	if restored.Streak(now) != 2 {
		t.Errorf("restored streak = %d, want 2", restored.Streak(now))
	}
}

func TestLoadAndSave(t *testing.T) {
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	p, err := Load(ctx, s.SnapshotRepo(), nil)
	if err != nil {
		t.Fatalf("load from empty store: %v", err)
	}

	p.Mastery.RecordAnswer("SE-SYN", false, 2, time.Now())
	if err := p.Save(ctx, s.SnapshotRepo()); err != nil {
		t.Fatalf("save: %v", err)
	}

	p2, err := Load(ctx, s.SnapshotRepo(), nil)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	sm := p2.Mastery.GetMastery("SE-SYN")
	if sm.QuestionsSeen != 1 || sm.CorrectCount != 0 {
		t.Errorf("reloaded mastery seen=%d correct=%d", sm.QuestionsSeen, sm.CorrectCount)
	}
}
