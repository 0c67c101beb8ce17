package mastery

import (
	"math"
	"time"
)

// DefaultDifficulty is the starting target for a skill with no history.
const DefaultDifficulty = 2.0

const (
	// learningRate scales how far a single answer moves the estimate.
	learningRate = 0.08

	// nudgeRate is the fraction the difficulty target moves per answer.
	nudgeRate = 0.3

	// recentWindow caps the RecentAnswers FIFO.
	recentWindow = 20

	// trendMinAnswers is how many answers a skill needs before the trend
	// can leave stable.
	trendMinAnswers = 10

	// trendThreshold is the accuracy delta between the last five answers
	// and the five before them required to call a trend.
	trendThreshold = 0.15
)

// Answer is a single graded outcome folded into a skill's state.
type Answer struct {
	Correct    bool
	Difficulty int
	At         time.Time
}

// UpdateAfterAnswer folds one answer into the state and returns the new
// state. The receiver's state is never mutated.
func UpdateAfterAnswer(sm SkillMastery, ans Answer) SkillMastery {
	next := sm.clone()

	d := clampDifficulty(ans.Difficulty)

	// Surprise-weighted update: an unexpected outcome moves the estimate
	// further than a predictable one.
	expected := expectedCorrect(float64(d), next.CurrentDifficulty)
	outcome := 0.0
	if ans.Correct {
		outcome = 1
	}
	next.Mastery = clamp01(next.Mastery + learningRate*(outcome-expected))
	next.Level = LevelFor(next.Mastery)

	next.QuestionsSeen++
	if ans.Correct {
		next.CorrectCount++
	}

	bucket := next.AccuracyByDifficulty[d]
	if bucket == nil {
		bucket = &DifficultyStats{}
		next.AccuracyByDifficulty[d] = bucket
	}
	bucket.Seen++
	if ans.Correct {
		bucket.Correct++
	}

	// Move the difficulty target toward the answered level on success,
	// and back off one level on failure.
	target := float64(d)
	if !ans.Correct {
		target = float64(d) - 1
	}
	next.CurrentDifficulty = clampDifficultyF(
		next.CurrentDifficulty + nudgeRate*(target-next.CurrentDifficulty))

	if ans.Correct {
		if next.Streak > 0 {
			next.Streak++
		} else {
			next.Streak = 1
		}
	} else {
		if next.Streak < 0 {
			next.Streak--
		} else {
			next.Streak = -1
		}
	}

	next.RecentAnswers = append(next.RecentAnswers, ans.Correct)
	if len(next.RecentAnswers) > recentWindow {
		next.RecentAnswers = next.RecentAnswers[len(next.RecentAnswers)-recentWindow:]
	}

	next.Trend = computeTrend(next.RecentAnswers, next.QuestionsSeen)
	next.LastPracticedAt = ans.At

	return next
}

// expectedCorrect is the probability model for answering a question of
// difficulty qd at a current target of cd.
func expectedCorrect(qd, cd float64) float64 {
	return 1 / (1 + math.Exp(qd-cd))
}

// computeTrend compares the last five answers against the five before
// them. Skills with fewer than trendMinAnswers total are always stable.
func computeTrend(recent []bool, totalSeen int) Trend {
	if totalSeen < trendMinAnswers || len(recent) < 10 {
		return TrendStable
	}
	last5 := accuracyOf(recent[len(recent)-5:])
	prev5 := accuracyOf(recent[len(recent)-10 : len(recent)-5])
	switch {
	case last5-prev5 > trendThreshold:
		return TrendImproving
	case prev5-last5 > trendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func accuracyOf(window []bool) float64 {
	if len(window) == 0 {
		return 0
	}
	correct := 0
	for _, ok := range window {
		if ok {
			correct++
		}
	}
	return float64(correct) / float64(len(window))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampDifficulty(d int) int {
	if d < MinDifficulty {
		return MinDifficulty
	}
	if d > MaxDifficulty {
		return MaxDifficulty
	}
	return d
}

func clampDifficultyF(d float64) float64 {
	if d < MinDifficulty {
		return MinDifficulty
	}
	if d > MaxDifficulty {
		return MaxDifficulty
	}
	return d
}
