package practice

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/aeroSapphire/greprep/internal/mastery"
	"github.com/aeroSapphire/greprep/internal/question"
)

// State is the session lifecycle phase.
type State string

const (
	StateActive   State = "active"
	StateComplete State = "complete"
)

// difficultyStep is how far the target moves after each answer.
const difficultyStep = 0.5

// reviewLessonRunLength is how many consecutive misses trigger the
// review-lesson flag.
const reviewLessonRunLength = 3

// AnswerRecord is one entry in the session history.
type AnswerRecord struct {
	QuestionID string
	Correct    bool
	Difficulty int
	Selected   []string
}

// Controller runs one adaptive practice session for a single skill.
type Controller struct {
	SessionID string
	SkillID   string

	state             State
	currentDifficulty float64
	answeredIDs       []string
	correctCount      int
	currentStreak     int
	history           []AnswerRecord

	progression   []float64
	masteryBefore map[string]float64

	source  question.Source
	tracker *mastery.Service
}

// Start opens a session, seeding the difficulty target from the
// skill's stored state (or the default for an unseen skill).
func Start(skillID string, source question.Source, tracker *mastery.Service) *Controller {
	seed := mastery.DefaultDifficulty
	if sm := tracker.GetMastery(skillID); sm.QuestionsSeen > 0 {
		seed = sm.CurrentDifficulty
	}

	c := &Controller{
		SessionID:         uuid.NewString(),
		SkillID:           skillID,
		state:             StateActive,
		currentDifficulty: seed,
		progression:       []float64{seed},
		masteryBefore:     map[string]float64{skillID: tracker.GetMastery(skillID).Mastery},
		source:            source,
		tracker:           tracker,
	}
	return c
}

// State returns the session phase.
func (c *Controller) State() State {
	return c.state
}

// CurrentDifficulty returns the live difficulty target.
func (c *Controller) CurrentDifficulty() float64 {
	return c.currentDifficulty
}

// SelectNext fetches one unseen question near the current difficulty
// target. The filter widens when the exact level is exhausted: first to
// one level either side, then to any difficulty. A nil question with a
// nil error means the skill has no content left; the session is marked
// complete.
func (c *Controller) SelectNext(ctx context.Context) (*question.Question, error) {
	if c.state != StateActive {
		return nil, fmt.Errorf("practice: session is %s", c.state)
	}

	target := int(math.Round(c.currentDifficulty))
	if target < mastery.MinDifficulty {
		target = mastery.MinDifficulty
	}
	if target > mastery.MaxDifficulty {
		target = mastery.MaxDifficulty
	}

	filters := []question.Filter{
		{SkillIDs: []string{c.SkillID}, Difficulty: target, ExcludeIDs: c.answeredIDs},
		{SkillIDs: []string{c.SkillID}, ExcludeIDs: c.answeredIDs},
		{SkillIDs: []string{c.SkillID}, ExcludeIDs: c.answeredIDs},
	}
	lo, hi := target-1, target+1
	if lo < mastery.MinDifficulty {
		lo = mastery.MinDifficulty
	}
	if hi > mastery.MaxDifficulty {
		hi = mastery.MaxDifficulty
	}
	filters[1].DifficultyRange.Min = lo
	filters[1].DifficultyRange.Max = hi

	for _, f := range filters {
		qs, err := c.source.GetQuestions(ctx, f, 1)
		if err != nil {
			return nil, fmt.Errorf("practice: fetching question: %w", err)
		}
		if len(qs) > 0 {
			return qs[0], nil
		}
	}

	c.state = StateComplete
	return nil, nil
}

// SubmitAnswer scores the selection, adjusts the difficulty target and
// folds the outcome into mastery for every skill the question carries.
func (c *Controller) SubmitAnswer(q *question.Question, selected []string) (bool, error) {
	if c.state != StateActive {
		return false, fmt.Errorf("practice: session is %s", c.state)
	}
	if q == nil {
		return false, fmt.Errorf("practice: nil question")
	}

	correct := isCorrect(q, selected)

	c.answeredIDs = append(c.answeredIDs, q.ID)
	c.history = append(c.history, AnswerRecord{
		QuestionID: q.ID,
		Correct:    correct,
		Difficulty: q.Difficulty,
		Selected:   append([]string(nil), selected...),
	})

	if correct {
		c.correctCount++
		c.currentStreak++
		c.currentDifficulty += difficultyStep
	} else {
		c.currentStreak = 0
		c.currentDifficulty -= difficultyStep
	}
	if c.currentDifficulty < mastery.MinDifficulty {
		c.currentDifficulty = mastery.MinDifficulty
	}
	if c.currentDifficulty > mastery.MaxDifficulty {
		c.currentDifficulty = mastery.MaxDifficulty
	}
	c.progression = append(c.progression, c.currentDifficulty)

	now := time.Now()
	for _, skillID := range q.SkillIDs {
		if _, ok := c.masteryBefore[skillID]; !ok {
			c.masteryBefore[skillID] = c.tracker.GetMastery(skillID).Mastery
		}
		c.tracker.RecordAnswer(skillID, correct, q.Difficulty, now)
	}

	return correct, nil
}

// Complete ends the session explicitly (learner quit early).
func (c *Controller) Complete() {
	c.state = StateComplete
}

// isCorrect applies the selection rule: the chosen set must equal the
// correct-option set exactly, order irrelevant.
func isCorrect(q *question.Question, selected []string) bool {
	want := q.CorrectOptionIDs()
	if len(selected) != len(want) {
		return false
	}
	set := make(map[string]bool, len(want))
	for _, id := range want {
		set[id] = true
	}
	for _, id := range selected {
		if !set[id] {
			return false
		}
		delete(set, id)
	}
	return len(set) == 0
}

// Summary is the end-of-session report.
type Summary struct {
	SessionID          string
	SkillID            string
	Total              int
	Correct            int
	Accuracy           float64
	MaxStreak          int
	Progression        []float64
	MasteryBefore      map[string]float64
	MasteryAfter       map[string]float64
	ShouldReviewLesson bool
}

// Summarize reports the session outcome. It is valid to call on a
// session that never served a question.
func (c *Controller) Summarize() Summary {
	sum := Summary{
		SessionID:     c.SessionID,
		SkillID:       c.SkillID,
		Total:         len(c.history),
		Correct:       c.correctCount,
		Progression:   append([]float64(nil), c.progression...),
		MasteryBefore: make(map[string]float64, len(c.masteryBefore)),
		MasteryAfter:  make(map[string]float64, len(c.masteryBefore)),
	}
	if sum.Total > 0 {
		sum.Accuracy = float64(sum.Correct) / float64(sum.Total)
	}

	// Max streak and the review flag both come from scanning history,
	// not the live counters.
	streak, wrongRun := 0, 0
	for _, rec := range c.history {
		if rec.Correct {
			streak++
			wrongRun = 0
			if streak > sum.MaxStreak {
				sum.MaxStreak = streak
			}
		} else {
			streak = 0
			wrongRun++
			if wrongRun >= reviewLessonRunLength {
				sum.ShouldReviewLesson = true
			}
		}
	}

	for skillID, before := range c.masteryBefore {
		sum.MasteryBefore[skillID] = before
		sum.MasteryAfter[skillID] = c.tracker.GetMastery(skillID).Mastery
	}
	return sum
}

// History returns a copy of the answered records in order.
func (c *Controller) History() []AnswerRecord {
	return append([]AnswerRecord(nil), c.history...)
}
