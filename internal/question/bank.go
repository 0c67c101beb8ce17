package question

import (
	"context"
	"math/rand"
	"sync"
)

// Filter narrows a question query. Zero-value fields are ignored.
type Filter struct {
	// SkillIDs restricts results to questions tagged with at least one of
	// these skills.
	SkillIDs []string

	// Difficulty, when non-zero, requires an exact difficulty match.
	Difficulty int

	// DifficultyRange, when both bounds are non-zero, requires
	// Min <= difficulty <= Max. Ignored when Difficulty is set.
	DifficultyRange struct {
		Min, Max int
	}

	// ExcludeIDs removes specific questions (session dedup).
	ExcludeIDs []string
}

// Source supplies questions for practice sessions. Implementations must
// sample randomly without replacement within a single call.
type Source interface {
	GetQuestions(ctx context.Context, f Filter, count int) ([]*Question, error)
}

// Bank is an in-memory Source over a fixed question set.
type Bank struct {
	mu        sync.RWMutex
	questions []*Question
	rng       *rand.Rand
}

// NewBank creates a bank over the given questions. Seed controls sampling
// order; pass a fixed seed in tests for determinism.
func NewBank(questions []*Question, seed int64) *Bank {
	return &Bank{
		questions: questions,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// DefaultBank returns a bank over the seeded question set.
func DefaultBank(seed int64) *Bank {
	return NewBank(seedQuestions(), seed)
}

// Add appends questions to the bank.
func (b *Bank) Add(qs ...*Question) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.questions = append(b.questions, qs...)
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.questions)
}

// GetQuestions returns up to count questions matching the filter, sampled
// randomly without replacement.
func (b *Bank) GetQuestions(_ context.Context, f Filter, count int) ([]*Question, error) {
	if count <= 0 {
		return nil, nil
	}

	b.mu.RLock()
	var matched []*Question
	for _, q := range b.questions {
		if matches(q, f) {
			matched = append(matched, q)
		}
	}
	b.mu.RUnlock()

	b.mu.Lock()
	b.rng.Shuffle(len(matched), func(i, j int) {
		matched[i], matched[j] = matched[j], matched[i]
	})
	b.mu.Unlock()

	if len(matched) > count {
		matched = matched[:count]
	}
	return matched, nil
}

func matches(q *Question, f Filter) bool {
	for _, ex := range f.ExcludeIDs {
		if q.ID == ex {
			return false
		}
	}

	if len(f.SkillIDs) > 0 {
		tagged := false
		for _, id := range f.SkillIDs {
			if q.HasSkill(id) {
				tagged = true
				break
			}
		}
		if !tagged {
			return false
		}
	}

	switch {
	case f.Difficulty != 0:
		if q.Difficulty != f.Difficulty {
			return false
		}
	case f.DifficultyRange.Min != 0 || f.DifficultyRange.Max != 0:
		if q.Difficulty < f.DifficultyRange.Min || q.Difficulty > f.DifficultyRange.Max {
			return false
		}
	}

	return true
}
