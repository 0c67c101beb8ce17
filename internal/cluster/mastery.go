package cluster

import "time"

// Component weights for overall cluster mastery. They must sum to 1.
const (
	weightWordKnowledge = 0.30
	weightContextual    = 0.35
	weightConfusion     = 0.25
	weightRecency       = 0.10
)

const (
	// contextualWindow caps how many recent drill results count toward
	// contextual accuracy.
	contextualWindow = 20

	// recencyFullDays is how long after the last drill recency stays 1.
	recencyFullDays = 7

	// recencyZeroDays is when recency reaches 0.
	recencyZeroDays = 30
)

// DrillResult is one recorded drill outcome.
type DrillResult struct {
	ClusterID string
	DrillID   string
	Correct   bool
	Timestamp time.Time
	Words     []string
}

// MasteryData is the four-component mastery breakdown for a cluster.
type MasteryData struct {
	ClusterID           string
	WordKnowledge       float64
	ContextualAccuracy  float64
	ConfusionResolution float64
	Recency             float64
	Overall             float64
}

// ComputeMastery derives cluster mastery from learned words, drill
// history and the confusion matrix. All inputs are read-only.
func ComputeMastery(c *Cluster, learned map[string]bool, history []DrillResult, matrix *Matrix, now time.Time) MasteryData {
	data := MasteryData{ClusterID: c.ID}

	// Word knowledge: fraction of cluster words marked learned.
	if len(c.Words) > 0 {
		known := 0
		for _, w := range c.Words {
			if learned[w] {
				known++
			}
		}
		data.WordKnowledge = float64(known) / float64(len(c.Words))
	}

	// Contextual accuracy over the last drills for this cluster.
	var drills []DrillResult
	for _, r := range history {
		if r.ClusterID == c.ID {
			drills = append(drills, r)
		}
	}
	if len(drills) > contextualWindow {
		drills = drills[len(drills)-contextualWindow:]
	}
	if len(drills) > 0 {
		correct := 0
		for _, r := range drills {
			if r.Correct {
				correct++
			}
		}
		data.ContextualAccuracy = float64(correct) / float64(len(drills))
	}

	// Confusion resolution: clusters with no listed pairs are fully
	// resolved by definition.
	data.ConfusionResolution = 1
	if total := c.PairCount(); total > 0 {
		active := 0
		if matrix != nil {
			active = matrix.ActivePairsWithin(c.Words)
		}
		res := 1 - float64(active)/float64(total)
		if res < 0 {
			res = 0
		}
		data.ConfusionResolution = res
	}

	// Recency: full credit within a week of the last drill, linear
	// falloff to zero at a month.
	if len(drills) > 0 {
		days := now.Sub(drills[len(drills)-1].Timestamp).Hours() / 24
		switch {
		case days <= recencyFullDays:
			data.Recency = 1
		case days <= recencyZeroDays:
			data.Recency = 1 - (days-recencyFullDays)/(recencyZeroDays-recencyFullDays)
		}
	}

	data.Overall = data.WordKnowledge*weightWordKnowledge +
		data.ContextualAccuracy*weightContextual +
		data.ConfusionResolution*weightConfusion +
		data.Recency*weightRecency
	return data
}

// MasteryLabel maps an overall score to its display band.
func MasteryLabel(overall float64) string {
	switch {
	case overall >= 0.85:
		return "mastered"
	case overall >= 0.65:
		return "proficient"
	case overall >= 0.4:
		return "developing"
	case overall >= 0.15:
		return "beginner"
	default:
		return "not started"
	}
}
