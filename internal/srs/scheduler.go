package srs

import (
	"sort"
	"time"

	"github.com/aeroSapphire/greprep/internal/store"
)

// CardReview pairs a card's review state with its schedule.
type CardReview struct {
	CardID         string
	State          ReviewState
	NextReviewAt   time.Time
	LastReviewedAt time.Time
}

// IsDue reports whether the card is at or past its review time. Cards that
// have never been graded are always due.
func (c *CardReview) IsDue(now time.Time) bool {
	if c.State.Repetitions == 0 && c.State.IntervalMinutes == 0 {
		return true
	}
	return !now.Before(c.NextReviewAt)
}

// OverdueMinutes returns how far past due the card is, 0 if not yet due.
func (c *CardReview) OverdueMinutes(now time.Time) float64 {
	if now.Before(c.NextReviewAt) {
		return 0
	}
	return now.Sub(c.NextReviewAt).Minutes()
}

// Scheduler owns the per-card review states for one learner.
type Scheduler struct {
	cards map[string]*CardReview
}

// NewScheduler creates a scheduler, loading card states from the snapshot.
func NewScheduler(snap *store.SnapshotData) *Scheduler {
	s := &Scheduler{cards: make(map[string]*CardReview)}
	if snap == nil || snap.Reviews == nil {
		return s
	}
	for id, cd := range snap.Reviews.Cards {
		cr := &CardReview{
			CardID: id,
			State: ReviewState{
				IntervalMinutes:      cd.IntervalMinutes,
				EaseFactor:           cd.EaseFactor,
				Repetitions:          cd.Repetitions,
				ConsecutiveFailures:  cd.ConsecutiveFailures,
				ConsecutiveSuccesses: cd.ConsecutiveSuccesses,
				LastGrade:            Grade(cd.LastGrade),
			},
		}
		if t, err := time.Parse(time.RFC3339, cd.NextReviewAt); err == nil {
			cr.NextReviewAt = t
		}
		if t, err := time.Parse(time.RFC3339, cd.LastReviewedAt); err == nil {
			cr.LastReviewedAt = t
		}
		s.cards[id] = cr
	}
	return s
}

// Get returns the review record for a card, or nil if never graded.
func (s *Scheduler) Get(cardID string) *CardReview {
	return s.cards[cardID]
}

// Grade applies a grade to a card, creating review state on first grading.
func (s *Scheduler) Grade(cardID string, grade Grade, now time.Time) (Result, error) {
	cr := s.cards[cardID]
	if cr == nil {
		cr = &CardReview{CardID: cardID, State: NewReviewState()}
		s.cards[cardID] = cr
	}

	res, err := NextReview(grade, cr.State, now)
	if err != nil {
		return Result{}, err
	}

	cr.State = res.State
	cr.NextReviewAt = res.NextReviewAt
	cr.LastReviewedAt = now
	return res, nil
}

// Previews returns the interval label each grade would produce for a card,
// without mutating state. Used by the study UI to annotate grade buttons.
func (s *Scheduler) Previews(cardID string, now time.Time) map[Grade]string {
	state := NewReviewState()
	if cr := s.cards[cardID]; cr != nil {
		state = cr.State
	}
	previews := make(map[Grade]string, 3)
	for _, g := range []Grade{GradeFail, GradeHard, GradeEasy} {
		if res, err := NextReview(g, state, now); err == nil {
			previews[g] = res.IntervalLabel
		}
	}
	return previews
}

// Due returns card IDs at or past their review time, most overdue first.
func (s *Scheduler) Due(now time.Time) []string {
	type dueCard struct {
		id      string
		overdue float64
	}
	var due []dueCard
	for id, cr := range s.cards {
		if cr.IsDue(now) {
			due = append(due, dueCard{id: id, overdue: cr.OverdueMinutes(now)})
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].overdue != due[j].overdue {
			return due[i].overdue > due[j].overdue
		}
		return due[i].id < due[j].id
	})
	ids := make([]string, len(due))
	for i, d := range due {
		ids[i] = d.id
	}
	return ids
}

// TrackedCount returns the number of cards with review state.
func (s *Scheduler) TrackedCount() int {
	return len(s.cards)
}

// SnapshotData exports the current review state for persistence.
func (s *Scheduler) SnapshotData() *store.ReviewSnapshotData {
	data := &store.ReviewSnapshotData{
		Cards: make(map[string]*store.CardReviewData),
	}
	for id, cr := range s.cards {
		data.Cards[id] = &store.CardReviewData{
			CardID:               cr.CardID,
			IntervalMinutes:      cr.State.IntervalMinutes,
			EaseFactor:           cr.State.EaseFactor,
			Repetitions:          cr.State.Repetitions,
			ConsecutiveFailures:  cr.State.ConsecutiveFailures,
			ConsecutiveSuccesses: cr.State.ConsecutiveSuccesses,
			LastGrade:            string(cr.State.LastGrade),
			NextReviewAt:         cr.NextReviewAt.Format(time.RFC3339),
			LastReviewedAt:       cr.LastReviewedAt.Format(time.RFC3339),
		}
	}
	return data
}
