package mastery

import (
	"sort"
	"time"

	"github.com/aeroSapphire/greprep/internal/store"
)

// Service provides mastery state management for all skills.
type Service struct {
	skills map[string]*SkillMastery
}

// NewService creates a mastery service, loading state from the snapshot.
func NewService(snap *store.SnapshotData) *Service {
	s := &Service{
		skills: make(map[string]*SkillMastery),
	}

	if snap == nil || snap.Mastery == nil {
		return s
	}
	s.loadFromMasterySnapshot(snap.Mastery)
	return s
}

func (s *Service) loadFromMasterySnapshot(data *store.MasterySnapshotData) {
	if data == nil || data.Skills == nil {
		return
	}
	for id, sd := range data.Skills {
		sm := &SkillMastery{
			SkillID:              id,
			Mastery:              clamp01(sd.Mastery),
			QuestionsSeen:        sd.QuestionsSeen,
			CorrectCount:         sd.CorrectCount,
			AccuracyByDifficulty: make(map[int]*DifficultyStats),
			CurrentDifficulty:    sd.CurrentDifficulty,
			Trend:                Trend(sd.Trend),
			Streak:               sd.Streak,
			RecentAnswers:        append([]bool(nil), sd.RecentAnswers...),
		}
		sm.Level = LevelFor(sm.Mastery)
		for d, bucket := range sd.AccuracyByDifficulty {
			if bucket == nil {
				continue
			}
			sm.AccuracyByDifficulty[d] = &DifficultyStats{
				Seen:    bucket.Seen,
				Correct: bucket.Correct,
			}
		}
		if sd.LastPracticedAt != "" {
			if t, err := time.Parse(time.RFC3339, sd.LastPracticedAt); err == nil {
				sm.LastPracticedAt = t
			}
		}
		// Ensure defaults.
		if sm.CurrentDifficulty == 0 {
			sm.CurrentDifficulty = DefaultDifficulty
		}
		if sm.Trend == "" {
			sm.Trend = TrendStable
		}
		s.skills[id] = sm
	}
}

// GetMastery returns the mastery record for a skill.
// Returns a fresh foundation record if the skill hasn't been encountered.
func (s *Service) GetMastery(skillID string) *SkillMastery {
	if sm, ok := s.skills[skillID]; ok {
		return sm
	}
	sm := NewSkillMastery(skillID)
	s.skills[skillID] = &sm
	return &sm
}

// RecordAnswer folds one graded answer into a skill's mastery state and
// returns the updated record.
func (s *Service) RecordAnswer(skillID string, correct bool, difficulty int, at time.Time) *SkillMastery {
	sm := s.GetMastery(skillID)
	next := UpdateAfterAnswer(*sm, Answer{
		Correct:    correct,
		Difficulty: difficulty,
		At:         at,
	})
	*sm = next
	return sm
}

// EffectiveMastery returns the decay-adjusted mastery for a skill.
func (s *Service) EffectiveMastery(skillID string, now time.Time) float64 {
	return EffectiveMastery(*s.GetMastery(skillID), now)
}

// WeakSkills returns skill IDs whose effective mastery is below the
// threshold, weakest first.
func (s *Service) WeakSkills(threshold float64, now time.Time) []string {
	type entry struct {
		id string
		m  float64
	}
	var weak []entry
	for id, sm := range s.skills {
		m := EffectiveMastery(*sm, now)
		if m < threshold {
			weak = append(weak, entry{id, m})
		}
	}
	// Weakest first; ties break on skill ID so output is deterministic.
	sort.Slice(weak, func(i, j int) bool {
		if weak[i].m != weak[j].m {
			return weak[i].m < weak[j].m
		}
		return weak[i].id < weak[j].id
	})
	out := make([]string, len(weak))
	for i, e := range weak {
		out[i] = e.id
	}
	return out
}

// DecayingSkills returns skill IDs past their decay grace window.
func (s *Service) DecayingSkills(now time.Time) []string {
	var out []string
	for id, sm := range s.skills {
		if IsDecaying(*sm, now) {
			out = append(out, id)
		}
	}
	return out
}

// AllSkillMasteries returns all tracked mastery records (for stats/UI).
func (s *Service) AllSkillMasteries() map[string]*SkillMastery {
	result := make(map[string]*SkillMastery, len(s.skills))
	for id, sm := range s.skills {
		result[id] = sm
	}
	return result
}

// SnapshotData exports the current mastery state for persistence.
func (s *Service) SnapshotData() *store.MasterySnapshotData {
	data := &store.MasterySnapshotData{
		Skills: make(map[string]*store.SkillMasteryData),
	}

	for id, sm := range s.skills {
		sd := &store.SkillMasteryData{
			SkillID:              id,
			Mastery:              sm.Mastery,
			Level:                string(sm.Level),
			QuestionsSeen:        sm.QuestionsSeen,
			CorrectCount:         sm.CorrectCount,
			AccuracyByDifficulty: make(map[int]*store.DifficultyStatsData),
			CurrentDifficulty:    sm.CurrentDifficulty,
			Trend:                string(sm.Trend),
			Streak:               sm.Streak,
			RecentAnswers:        append([]bool(nil), sm.RecentAnswers...),
		}
		for d, bucket := range sm.AccuracyByDifficulty {
			sd.AccuracyByDifficulty[d] = &store.DifficultyStatsData{
				Seen:    bucket.Seen,
				Correct: bucket.Correct,
			}
		}
		if !sm.LastPracticedAt.IsZero() {
			sd.LastPracticedAt = sm.LastPracticedAt.Format(time.RFC3339)
		}
		data.Skills[id] = sd
	}

	return data
}
