package mistakes

import "time"

// Event is one classified mistake in the learner's history.
type Event struct {
	Label Label     `json:"label"`
	At    time.Time `json:"at"`
}

// Recency weights: today's mistakes count full, this week's fade, older
// ones barely register.
const (
	weightFresh = 1.0 // under 24h
	weightWarm  = 0.6 // under 72h
	weightCold  = 0.3

	// dominantMinCount and dominantMinShare gate the nudge: a pattern
	// must be both frequent and a real share of all mistakes.
	dominantMinCount = 5
	dominantMinShare = 0.25
)

// DominantMistake scans the history for a prevailing error pattern.
// Returns false when no label clears both the count and share thresholds.
func DominantMistake(history []Event, now time.Time) (Label, bool) {
	if len(history) == 0 {
		return "", false
	}

	type score struct {
		count    int
		weighted float64
	}
	scores := make(map[Label]*score)
	total := 0.0

	for _, ev := range history {
		age := now.Sub(ev.At)
		w := weightCold
		switch {
		case age < 24*time.Hour:
			w = weightFresh
		case age < 72*time.Hour:
			w = weightWarm
		}

		s := scores[ev.Label]
		if s == nil {
			s = &score{}
			scores[ev.Label] = s
		}
		s.count++
		s.weighted += w
		total += w
	}

	var dominant Label
	max := 0.0
	for label, s := range scores {
		if label == LabelNone {
			continue
		}
		if s.count < dominantMinCount || s.weighted/total < dominantMinShare {
			continue
		}
		if s.weighted > max {
			max = s.weighted
			dominant = label
		}
	}

	if dominant == "" {
		return "", false
	}
	return dominant, true
}

// DailyNudge returns the coaching line for the learner's dominant mistake,
// or "" when no pattern dominates.
func DailyNudge(history []Event, now time.Time) string {
	label, ok := DominantMistake(history, now)
	if !ok {
		return ""
	}
	return NudgeMessages[label]
}
