package srs

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func mustReview(t *testing.T, g Grade, s ReviewState) Result {
	t.Helper()
	res, err := NextReview(g, s, testNow)
	if err != nil {
		t.Fatalf("NextReview(%s) error: %v", g, err)
	}
	return res
}

func TestNextReview_DefaultState(t *testing.T) {
	res := mustReview(t, GradeEasy, ReviewState{})
	if res.State.IntervalMinutes != EasyFirstIntervalMin {
		t.Errorf("interval = %d, want %d", res.State.IntervalMinutes, EasyFirstIntervalMin)
	}
	if res.State.EaseFactor != EaseDefault+easeEasyBonus {
		t.Errorf("ease = %f, want %f", res.State.EaseFactor, EaseDefault+easeEasyBonus)
	}
	if res.State.Repetitions != 1 {
		t.Errorf("repetitions = %d, want 1", res.State.Repetitions)
	}
}

func TestNextReview_FailShortInterval(t *testing.T) {
	res := mustReview(t, GradeFail, NewReviewState())
	if res.State.IntervalMinutes != FailShortIntervalMin {
		t.Errorf("interval = %d, want 10", res.State.IntervalMinutes)
	}
	if res.State.Repetitions != 0 {
		t.Errorf("repetitions = %d, want 0", res.State.Repetitions)
	}
	if res.State.ConsecutiveFailures != 1 {
		t.Errorf("consecutiveFailures = %d, want 1", res.State.ConsecutiveFailures)
	}
	if got, want := res.State.EaseFactor, EaseDefault-easeFailPenalty; got != want {
		t.Errorf("ease = %f, want %f", got, want)
	}
	if res.IntervalLabel != "10m" {
		t.Errorf("label = %q, want 10m", res.IntervalLabel)
	}
}

func TestNextReview_FailLongInterval(t *testing.T) {
	s := ReviewState{IntervalMinutes: 10 * MinuteDay, EaseFactor: 2.5, Repetitions: 4, LastGrade: GradeEasy}
	res := mustReview(t, GradeFail, s)
	if res.State.IntervalMinutes != MinuteDay {
		t.Errorf("interval = %d, want 1 day", res.State.IntervalMinutes)
	}
	if res.IntervalLabel != "1d" {
		t.Errorf("label = %q, want 1d", res.IntervalLabel)
	}
}

func TestNextReview_RepeatFailExtraPenalty(t *testing.T) {
	first := mustReview(t, GradeFail, NewReviewState())
	second := mustReview(t, GradeFail, first.State)
	// Second consecutive failure takes 0.2 + 0.05.
	want := first.State.EaseFactor - easeFailPenalty - easeRepeatFailPenalty
	if second.State.EaseFactor != want {
		t.Errorf("ease = %f, want %f", second.State.EaseFactor, want)
	}
	if second.State.ConsecutiveFailures != 2 {
		t.Errorf("consecutiveFailures = %d, want 2", second.State.ConsecutiveFailures)
	}
}

func TestNextReview_EaseFloor(t *testing.T) {
	s := NewReviewState()
	for i := 0; i < 10; i++ {
		res := mustReview(t, GradeFail, s)
		s = res.State
		if s.EaseFactor < EaseFloor {
			t.Fatalf("ease %f below floor after %d fails", s.EaseFactor, i+1)
		}
	}
	if s.EaseFactor != EaseFloor {
		t.Errorf("ease = %f, want floor %f", s.EaseFactor, EaseFloor)
	}
}

func TestNextReview_EaseCeiling(t *testing.T) {
	s := NewReviewState()
	for i := 0; i < 20; i++ {
		res := mustReview(t, GradeEasy, s)
		s = res.State
		if s.EaseFactor > EaseCeiling {
			t.Fatalf("ease %f above ceiling after %d easies", s.EaseFactor, i+1)
		}
	}
	if s.EaseFactor != EaseCeiling {
		t.Errorf("ease = %f, want ceiling %f", s.EaseFactor, EaseCeiling)
	}
}

func TestNextReview_HardFirstReview(t *testing.T) {
	res := mustReview(t, GradeHard, NewReviewState())
	if res.State.IntervalMinutes != MinuteDay {
		t.Errorf("interval = %d, want 1 day", res.State.IntervalMinutes)
	}
	if res.State.EaseFactor != EaseDefault {
		t.Errorf("ease changed on hard: %f", res.State.EaseFactor)
	}
	if res.State.ConsecutiveSuccesses != 0 || res.State.ConsecutiveFailures != 0 {
		t.Error("hard should reset both consecutive counters")
	}
}

func TestNextReview_HardAfterFailUsesSlowGrowth(t *testing.T) {
	s := ReviewState{IntervalMinutes: MinuteDay, EaseFactor: 2.5, Repetitions: 1, LastGrade: GradeFail, ConsecutiveFailures: 1}
	res := mustReview(t, GradeHard, s)
	want := int(float64(MinuteDay) * hardAfterFailFactor)
	if res.State.IntervalMinutes != want {
		t.Errorf("interval = %d, want %d (x1.2 after fail)", res.State.IntervalMinutes, want)
	}
}

func TestNextReview_HardUsesEase(t *testing.T) {
	s := ReviewState{IntervalMinutes: 2 * MinuteDay, EaseFactor: 2.0, Repetitions: 2, LastGrade: GradeEasy}
	res := mustReview(t, GradeHard, s)
	if want := 4 * MinuteDay; res.State.IntervalMinutes != want {
		t.Errorf("interval = %d, want %d", res.State.IntervalMinutes, want)
	}
}

func TestNextReview_EasyStreakBonus(t *testing.T) {
	base := ReviewState{IntervalMinutes: 2 * MinuteDay, EaseFactor: 2.0, Repetitions: 3, LastGrade: GradeEasy}

	noStreak := base
	noStreak.ConsecutiveSuccesses = 2
	plain := mustReview(t, GradeEasy, noStreak)

	streak := base
	streak.ConsecutiveSuccesses = 3
	bonus := mustReview(t, GradeEasy, streak)

	if bonus.State.IntervalMinutes <= plain.State.IntervalMinutes {
		t.Errorf("streak bonus missing: %d <= %d", bonus.State.IntervalMinutes, plain.State.IntervalMinutes)
	}
	plainInterval := float64(2*MinuteDay) * 2.0 * easyGrowthFactor
	wantPlain := int(plainInterval + 0.5)
	if plain.State.IntervalMinutes != wantPlain {
		t.Errorf("plain interval = %d, want %d", plain.State.IntervalMinutes, wantPlain)
	}
}

func TestNextReview_AllEasyStrictlyIncreases(t *testing.T) {
	s := NewReviewState()
	prev := 0
	for i := 0; i < 15; i++ {
		res := mustReview(t, GradeEasy, s)
		s = res.State
		if s.IntervalMinutes <= prev {
			t.Fatalf("interval did not grow at step %d: %d -> %d", i, prev, s.IntervalMinutes)
		}
		prev = s.IntervalMinutes
	}
}

func TestNextReview_FailResetsCounters(t *testing.T) {
	s := ReviewState{IntervalMinutes: 6 * MinuteDay, EaseFactor: 2.7, Repetitions: 5, ConsecutiveSuccesses: 4, LastGrade: GradeEasy}
	res := mustReview(t, GradeFail, s)
	if res.State.Repetitions != 0 {
		t.Errorf("repetitions = %d, want 0", res.State.Repetitions)
	}
	if res.State.ConsecutiveSuccesses != 0 {
		t.Errorf("consecutiveSuccesses = %d, want 0", res.State.ConsecutiveSuccesses)
	}
}

func TestNextReview_UnknownGrade(t *testing.T) {
	_, err := NextReview(Grade("good"), NewReviewState(), testNow)
	var unknownErr *ErrUnknownGrade
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected ErrUnknownGrade, got %v", err)
	}
}

func TestNextReview_NextReviewAt(t *testing.T) {
	res := mustReview(t, GradeFail, NewReviewState())
	want := testNow.Add(10 * time.Minute)
	if !res.NextReviewAt.Equal(want) {
		t.Errorf("nextReviewAt = %v, want %v", res.NextReviewAt, want)
	}
}

func TestIntervalLabel(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{10, "10m"},
		{59, "59m"},
		{60, "1h"},
		{90, "2h"},
		{600, "10h"},
		{MinuteDay, "1d"},
		{4 * MinuteDay, "4d"},
		{int(1.4 * MinuteDay), "1d"},
	}
	for _, tt := range tests {
		if got := IntervalLabel(tt.minutes); got != tt.want {
			t.Errorf("IntervalLabel(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestReviewState_JSONRoundTrip(t *testing.T) {
	s := ReviewState{IntervalMinutes: 3 * MinuteDay, EaseFactor: 2.45, Repetitions: 3, ConsecutiveSuccesses: 2, LastGrade: GradeEasy}
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	var restored ReviewState
	if err := json.Unmarshal(b, &restored); err != nil {
		t.Fatal(err)
	}

	orig := mustReview(t, GradeEasy, s)
	round := mustReview(t, GradeEasy, restored)
	if orig.State != round.State {
		t.Errorf("round-tripped state schedules differently: %+v vs %+v", orig.State, round.State)
	}
}
