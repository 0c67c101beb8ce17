package mastery

import "time"

// Level is the display band derived from the mastery scalar.
type Level string

const (
	LevelFoundation Level = "foundation"
	LevelDeveloping Level = "developing"
	LevelCompetent  Level = "competent"
	LevelAdvanced   Level = "advanced"
	LevelExpert     Level = "expert"
)

// Band edges are policy constants; LevelFor must match them exactly.
const (
	bandDeveloping = 0.2
	bandCompetent  = 0.4
	bandAdvanced   = 0.6
	bandExpert     = 0.8
)

// LevelFor maps a mastery value to its band.
func LevelFor(mastery float64) Level {
	switch {
	case mastery < bandDeveloping:
		return LevelFoundation
	case mastery < bandCompetent:
		return LevelDeveloping
	case mastery < bandAdvanced:
		return LevelCompetent
	case mastery < bandExpert:
		return LevelAdvanced
	default:
		return LevelExpert
	}
}

// Trend describes the direction of recent performance.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// DifficultyStats is the per-bucket accuracy record.
type DifficultyStats struct {
	Seen    int `json:"seen"`
	Correct int `json:"correct"`
}

// MinDifficulty and MaxDifficulty bound the question difficulty scale.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// SkillMastery holds all mastery state for a single skill.
type SkillMastery struct {
	SkillID string

	// Mastery is the [0,1] competence estimate.
	Mastery float64

	// Level is the display band, always LevelFor(Mastery).
	Level Level

	QuestionsSeen int
	CorrectCount  int

	// AccuracyByDifficulty buckets outcomes by question difficulty 1..5.
	AccuracyByDifficulty map[int]*DifficultyStats

	// CurrentDifficulty is the moving target for question selection.
	CurrentDifficulty float64

	Trend Trend

	LastPracticedAt time.Time

	// Streak is a signed run length: positive counts consecutive correct
	// answers, negative counts consecutive wrong ones.
	Streak int

	// RecentAnswers is a capped FIFO of outcomes, most recent last.
	RecentAnswers []bool
}

// NewSkillMastery returns the zero state for a skill never practiced.
func NewSkillMastery(skillID string) SkillMastery {
	return SkillMastery{
		SkillID:              skillID,
		Level:                LevelFoundation,
		AccuracyByDifficulty: make(map[int]*DifficultyStats),
		CurrentDifficulty:    DefaultDifficulty,
		Trend:                TrendStable,
	}
}

// Accuracy returns the overall correct ratio, 0 for an unseen skill.
func (sm *SkillMastery) Accuracy() float64 {
	if sm.QuestionsSeen == 0 {
		return 0
	}
	return float64(sm.CorrectCount) / float64(sm.QuestionsSeen)
}

// clone deep-copies the state so updates never alias the caller's maps.
func (sm SkillMastery) clone() SkillMastery {
	out := sm
	out.AccuracyByDifficulty = make(map[int]*DifficultyStats, len(sm.AccuracyByDifficulty))
	for k, v := range sm.AccuracyByDifficulty {
		c := *v
		out.AccuracyByDifficulty[k] = &c
	}
	out.RecentAnswers = append([]bool(nil), sm.RecentAnswers...)
	return out
}
