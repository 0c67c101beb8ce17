package store

import (
	"context"
	"time"
)

// SnapshotVersion is the current snapshot data layout version.
const SnapshotVersion = 1

// DifficultyStatsData is a per-difficulty accuracy bucket.
type DifficultyStatsData struct {
	Seen    int `json:"seen"`
	Correct int `json:"correct"`
}

// SkillMasteryData is the persisted form of one skill's mastery state.
type SkillMasteryData struct {
	SkillID              string                       `json:"skillId"`
	Mastery              float64                      `json:"mastery"`
	Level                string                       `json:"level"`
	QuestionsSeen        int                          `json:"questionsSeen"`
	CorrectCount         int                          `json:"correctCount"`
	AccuracyByDifficulty map[int]*DifficultyStatsData `json:"accuracyByDifficulty,omitempty"`
	CurrentDifficulty    float64                      `json:"currentDifficulty"`
	Trend                string                       `json:"trend"`
	Streak               int                          `json:"streak"`
	RecentAnswers        []bool                       `json:"recentAnswers,omitempty"`
	LastPracticedAt      string                       `json:"lastPracticedAt,omitempty"`
}

// MasterySnapshotData holds every tracked skill's mastery state.
type MasterySnapshotData struct {
	Skills map[string]*SkillMasteryData `json:"skills"`
}

// CardReviewData is the persisted form of one flashcard's review state.
type CardReviewData struct {
	CardID               string  `json:"cardId"`
	IntervalMinutes      int     `json:"intervalMinutes"`
	EaseFactor           float64 `json:"easeFactor"`
	Repetitions          int     `json:"repetitions"`
	ConsecutiveFailures  int     `json:"consecutiveFailures"`
	ConsecutiveSuccesses int     `json:"consecutiveSuccesses"`
	LastGrade            string  `json:"lastGrade"`
	NextReviewAt         string  `json:"nextReviewAt,omitempty"`
	LastReviewedAt       string  `json:"lastReviewedAt,omitempty"`
}

// ReviewSnapshotData holds every tracked card's review state.
type ReviewSnapshotData struct {
	Cards map[string]*CardReviewData `json:"cards"`
}

// DrillResultData is one persisted cluster drill outcome.
type DrillResultData struct {
	ClusterID string   `json:"clusterId"`
	DrillID   string   `json:"drillId"`
	Correct   bool     `json:"correct"`
	Timestamp string   `json:"timestamp"`
	Words     []string `json:"words,omitempty"`
}

// DrillSnapshotData holds the bounded drill history log.
type DrillSnapshotData struct {
	Results []*DrillResultData `json:"results"`
}

// ConfusionSnapshotData holds the directed word-confusion counts.
type ConfusionSnapshotData struct {
	Counts map[string]map[string]int `json:"counts"`
}

// MistakeEventData is one classified mistake in the persisted history.
type MistakeEventData struct {
	Label string `json:"label"`
	At    string `json:"at"`
}

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version          int                    `json:"version"`
	Mastery          *MasterySnapshotData   `json:"mastery,omitempty"`
	Reviews          *ReviewSnapshotData    `json:"reviews,omitempty"`
	Drills           *DrillSnapshotData     `json:"drills,omitempty"`
	Confusion        *ConfusionSnapshotData `json:"confusion,omitempty"`
	LearnedWords     []string               `json:"learnedWords,omitempty"`
	LessonsCompleted []string               `json:"lessonsCompleted,omitempty"`
	Mistakes         []*MistakeEventData    `json:"mistakes,omitempty"`

	// StreakDays counts consecutive study days; LastStudyDay is the
	// local date (2006-01-02) of the most recent session.
	StreakDays   int    `json:"streakDays,omitempty"`
	LastStudyDay string `json:"lastStudyDay,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AnswerEventData captures one answered practice question.
type AnswerEventData struct {
	SessionID  string
	QuestionID string
	SkillID    string
	Difficulty int
	Selected   []string
	Correct    bool
}

// ReviewEventData captures one flashcard grading.
type ReviewEventData struct {
	CardID          string
	Grade           string
	IntervalMinutes int
	EaseFactor      float64
}

// DrillEventData captures one cluster drill answer.
type DrillEventData struct {
	ClusterID string
	DrillID   string
	DrillType string
	Correct   bool
	Words     []string
}

// SessionEventData captures a practice session boundary.
type SessionEventData struct {
	SessionID       string
	SkillID         string
	Action          string // "start" | "complete"
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM call with its row identity.
type LLMRequestEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// QueryOpts configures event queries with pagination.
type QueryOpts struct {
	Limit  int
	Offset int
}

// PurposeUsage aggregates LLM calls by consumer purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM calls by model, for cost estimation.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append access to the domain event log plus the
// aggregate queries the planners need.
type EventRepo interface {
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	AppendReviewEvent(ctx context.Context, data ReviewEventData) error
	AppendDrillEvent(ctx context.Context, data DrillEventData) error
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// SkillAccuracy returns the all-time correct fraction for a skill,
	// 0 when the skill has no recorded answers.
	SkillAccuracy(ctx context.Context, skillID string) (float64, error)

	// LatestAnswerTime returns the timestamp of a skill's most recent
	// answer, zero when none exist.
	LatestAnswerTime(ctx context.Context, skillID string) (time.Time, error)

	// QueryLLMEvents returns recent LLM calls, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one LLM call by row ID, nil when absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model ID.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
