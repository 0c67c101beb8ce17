package mastery

import "time"

const (
	// decayGraceDays is how long a skill holds its stored mastery
	// without practice before decay starts.
	decayGraceDays = 14

	// decayPerDay is the fractional loss per day past the grace window.
	decayPerDay = 0.02

	// decayFloor is the fraction of stored mastery decay never goes
	// below.
	decayFloor = 0.5
)

// EffectiveMastery returns the decay-adjusted mastery for display and
// planning. Stored state is never mutated; decay is a read-time view.
func EffectiveMastery(sm SkillMastery, now time.Time) float64 {
	if sm.LastPracticedAt.IsZero() {
		return sm.Mastery
	}
	days := now.Sub(sm.LastPracticedAt).Hours() / 24
	if days <= decayGraceDays {
		return sm.Mastery
	}
	factor := 1 - decayPerDay*(days-decayGraceDays)
	if factor < decayFloor {
		factor = decayFloor
	}
	return sm.Mastery * factor
}

// IsDecaying reports whether a skill has sat past its grace window.
func IsDecaying(sm SkillMastery, now time.Time) bool {
	if sm.LastPracticedAt.IsZero() {
		return false
	}
	return now.Sub(sm.LastPracticedAt).Hours()/24 > decayGraceDays
}
