package srs

import (
	"fmt"
	"math"
	"time"
)

// Grade is a learner's recall quality for one flashcard review.
type Grade string

const (
	GradeNone Grade = "none"
	GradeFail Grade = "fail"
	GradeHard Grade = "hard"
	GradeEasy Grade = "easy"
)

// ErrUnknownGrade is returned when a grade outside {fail, hard, easy} is
// submitted. Rejecting bad grades explicitly keeps stored state from being
// silently corrupted.
type ErrUnknownGrade struct {
	Grade Grade
}

func (e *ErrUnknownGrade) Error() string {
	return fmt.Sprintf("unknown grade %q", e.Grade)
}

// Scheduling constants. Intervals are minutes throughout.
const (
	MinuteDay = 24 * 60

	FailShortIntervalMin = 10
	EasyFirstIntervalMin = 4 * MinuteDay

	EaseFloor   = 1.3
	EaseCeiling = 3.0
	EaseDefault = 2.1

	easeFailPenalty       = 0.2
	easeRepeatFailPenalty = 0.05
	easeEasyBonus         = 0.15

	hardAfterFailFactor = 1.2
	easyGrowthFactor    = 1.3
	easyStreakBonus     = 1.1
	easyStreakMin       = 3
)

// ReviewState is the spaced repetition state for one flashcard.
type ReviewState struct {
	IntervalMinutes      int     `json:"interval_minutes"`
	EaseFactor           float64 `json:"ease_factor"`
	Repetitions          int     `json:"repetitions"`
	ConsecutiveFailures  int     `json:"consecutive_failures"`
	ConsecutiveSuccesses int     `json:"consecutive_successes"`
	LastGrade            Grade   `json:"last_grade"`
}

// NewReviewState returns the state for a never-reviewed card.
func NewReviewState() ReviewState {
	return ReviewState{
		EaseFactor: EaseDefault,
		LastGrade:  GradeNone,
	}
}

// Result is the outcome of grading one card.
type Result struct {
	State        ReviewState
	NextReviewAt time.Time
	// IntervalLabel is a human-readable interval: "10m", "3h", "4d".
	IntervalLabel string
}

// NextReview applies a grade to a review state and returns the new state,
// the next review time, and a display label. The input state is not
// mutated; the caller persists the returned state.
func NextReview(grade Grade, state ReviewState, now time.Time) (Result, error) {
	s := normalize(state)

	switch grade {
	case GradeFail:
		s.Repetitions = 0
		if s.IntervalMinutes < MinuteDay {
			s.IntervalMinutes = FailShortIntervalMin
		} else {
			s.IntervalMinutes = MinuteDay
		}
		penalty := easeFailPenalty
		if s.ConsecutiveFailures >= 1 {
			penalty += easeRepeatFailPenalty
		}
		s.EaseFactor = math.Max(EaseFloor, s.EaseFactor-penalty)
		s.ConsecutiveFailures++
		s.ConsecutiveSuccesses = 0

	case GradeHard:
		s.Repetitions++
		if s.IntervalMinutes < MinuteDay {
			s.IntervalMinutes = MinuteDay
		} else if s.LastGrade == GradeFail {
			s.IntervalMinutes = scaleInterval(s.IntervalMinutes, hardAfterFailFactor)
		} else {
			s.IntervalMinutes = scaleInterval(s.IntervalMinutes, s.EaseFactor)
		}
		s.ConsecutiveFailures = 0
		s.ConsecutiveSuccesses = 0

	case GradeEasy:
		s.Repetitions++
		if s.IntervalMinutes < MinuteDay {
			s.IntervalMinutes = EasyFirstIntervalMin
		} else {
			factor := s.EaseFactor * easyGrowthFactor
			if s.ConsecutiveSuccesses >= easyStreakMin {
				factor *= easyStreakBonus
			}
			s.IntervalMinutes = scaleInterval(s.IntervalMinutes, factor)
		}
		s.EaseFactor = math.Min(EaseCeiling, s.EaseFactor+easeEasyBonus)
		s.ConsecutiveFailures = 0
		s.ConsecutiveSuccesses++

	default:
		return Result{}, &ErrUnknownGrade{Grade: grade}
	}

	s.LastGrade = grade

	return Result{
		State:         s,
		NextReviewAt:  now.Add(time.Duration(s.IntervalMinutes) * time.Minute),
		IntervalLabel: IntervalLabel(s.IntervalMinutes),
	}, nil
}

// normalize fills in defaults so a zero-value state behaves like a
// never-reviewed card.
func normalize(s ReviewState) ReviewState {
	if s.EaseFactor == 0 {
		s.EaseFactor = EaseDefault
	}
	if s.LastGrade == "" {
		s.LastGrade = GradeNone
	}
	if s.IntervalMinutes < 0 {
		s.IntervalMinutes = 0
	}
	return s
}

func scaleInterval(minutes int, factor float64) int {
	scaled := int(math.Round(float64(minutes) * factor))
	if scaled < 1 {
		scaled = 1
	}
	return scaled
}

// IntervalLabel formats an interval in minutes as "Nm", "Nh" or "Nd",
// rounding to the nearest unit.
func IntervalLabel(minutes int) string {
	switch {
	case minutes < 60:
		return fmt.Sprintf("%dm", minutes)
	case minutes < MinuteDay:
		return fmt.Sprintf("%dh", int(math.Round(float64(minutes)/60)))
	default:
		return fmt.Sprintf("%dd", int(math.Round(float64(minutes)/MinuteDay)))
	}
}
