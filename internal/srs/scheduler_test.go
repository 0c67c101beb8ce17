package srs

import (
	"testing"
	"time"

	"github.com/aeroSapphire/greprep/internal/store"
)

func TestScheduler_GradeCreatesState(t *testing.T) {
	s := NewScheduler(nil)
	res, err := s.Grade("card-1", GradeEasy, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if res.State.IntervalMinutes != EasyFirstIntervalMin {
		t.Errorf("interval = %d, want %d", res.State.IntervalMinutes, EasyFirstIntervalMin)
	}
	cr := s.Get("card-1")
	if cr == nil {
		t.Fatal("card not tracked after grading")
	}
	if !cr.LastReviewedAt.Equal(testNow) {
		t.Errorf("lastReviewedAt = %v, want %v", cr.LastReviewedAt, testNow)
	}
}

func TestScheduler_UnknownGradeLeavesStateUntouched(t *testing.T) {
	s := NewScheduler(nil)
	if _, err := s.Grade("card-1", GradeEasy, testNow); err != nil {
		t.Fatal(err)
	}
	before := *s.Get("card-1")

	if _, err := s.Grade("card-1", Grade("meh"), testNow.Add(time.Hour)); err == nil {
		t.Fatal("expected error for unknown grade")
	}
	after := *s.Get("card-1")
	if before != after {
		t.Error("rejected grade mutated stored state")
	}
}

func TestScheduler_DueOrdering(t *testing.T) {
	s := NewScheduler(nil)
	if _, err := s.Grade("a", GradeFail, testNow); err != nil { // due in 10m
		t.Fatal(err)
	}
	if _, err := s.Grade("b", GradeHard, testNow); err != nil { // due in 1d
		t.Fatal(err)
	}
	if _, err := s.Grade("c", GradeEasy, testNow); err != nil { // due in 4d
		t.Fatal(err)
	}

	later := testNow.Add(5 * 24 * time.Hour)
	due := s.Due(later)
	if len(due) != 3 {
		t.Fatalf("got %d due, want 3", len(due))
	}
	// Most overdue first: a (10m), b (1d), c (4d).
	if due[0] != "a" || due[1] != "b" || due[2] != "c" {
		t.Errorf("due order = %v, want [a b c]", due)
	}

	soon := testNow.Add(30 * time.Minute)
	if got := s.Due(soon); len(got) != 1 || got[0] != "a" {
		t.Errorf("Due(+30m) = %v, want [a]", got)
	}
}

func TestScheduler_Previews(t *testing.T) {
	s := NewScheduler(nil)
	p := s.Previews("new-card", testNow)
	if p[GradeFail] != "10m" || p[GradeHard] != "1d" || p[GradeEasy] != "4d" {
		t.Errorf("previews = %v", p)
	}
	// Previews must not create state.
	if s.Get("new-card") != nil {
		t.Error("preview created review state")
	}
}

func TestScheduler_SnapshotRoundTrip(t *testing.T) {
	s := NewScheduler(nil)
	if _, err := s.Grade("card-1", GradeEasy, testNow); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Grade("card-1", GradeHard, testNow.Add(time.Hour)); err != nil {
		t.Fatal(err)
	}

	snap := &store.SnapshotData{Reviews: s.SnapshotData()}
	restored := NewScheduler(snap)

	orig := s.Get("card-1")
	got := restored.Get("card-1")
	if got == nil {
		t.Fatal("card missing after restore")
	}
	if orig.State != got.State {
		t.Errorf("state mismatch: %+v vs %+v", orig.State, got.State)
	}

	// Identical scheduling behavior on the next grade.
	a, err := s.Grade("card-1", GradeEasy, testNow.Add(2*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	b, err := restored.Grade("card-1", GradeEasy, testNow.Add(2*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if a.State != b.State {
		t.Errorf("restored scheduler diverged: %+v vs %+v", a.State, b.State)
	}
}
