package cluster

import (
	"math"
	"testing"
	"time"
)

func fixtureCluster() *Cluster {
	return &Cluster{
		ID:    "fixture",
		Name:  "Fixture Cluster",
		Words: []string{"alpha", "beta", "gamma", "delta"},
		Pairs: []ConfusionPair{
			{Words: [2]string{"alpha", "beta"}},
			{Words: [2]string{"alpha", "gamma"}},
			{Words: [2]string{"beta", "gamma"}},
			{Words: [2]string{"beta", "delta"}},
			{Words: [2]string{"gamma", "delta"}},
		},
	}
}

func TestComputeMasteryWeightedSum(t *testing.T) {
	now := time.Now()
	c := fixtureCluster()

	// Components: word knowledge 0.5, contextual 1.0, resolution 0.8,
	// recency 1.0 -> overall 0.80.
	learned := map[string]bool{"alpha": true, "beta": true}
	history := []DrillResult{
		{ClusterID: "fixture", DrillID: "d1", Correct: true, Timestamp: now},
		{ClusterID: "fixture", DrillID: "d2", Correct: true, Timestamp: now},
	}
	matrix := NewMatrix()
	matrix.Record("alpha", "beta") // one active pair of five

	data := ComputeMastery(c, learned, history, matrix, now)
	if data.WordKnowledge != 0.5 {
		t.Errorf("WordKnowledge = %v, want 0.5", data.WordKnowledge)
	}
	if data.ContextualAccuracy != 1.0 {
		t.Errorf("ContextualAccuracy = %v, want 1.0", data.ContextualAccuracy)
	}
	if math.Abs(data.ConfusionResolution-0.8) > 1e-9 {
		t.Errorf("ConfusionResolution = %v, want 0.8", data.ConfusionResolution)
	}
	if data.Recency != 1.0 {
		t.Errorf("Recency = %v, want 1.0", data.Recency)
	}
	if math.Abs(data.Overall-0.80) > 1e-9 {
		t.Errorf("Overall = %v, want 0.80", data.Overall)
	}
}

func TestComputeMasteryBaseCases(t *testing.T) {
	now := time.Now()

	// Never-touched cluster with pairs: only resolution contributes.
	data := ComputeMastery(fixtureCluster(), nil, nil, NewMatrix(), now)
	if data.WordKnowledge != 0 || data.ContextualAccuracy != 0 || data.Recency != 0 {
		t.Errorf("untouched cluster: %+v, want zero components", data)
	}
	if data.ConfusionResolution != 1 {
		t.Errorf("ConfusionResolution = %v, want 1 with no recorded confusions", data.ConfusionResolution)
	}
	if math.Abs(data.Overall-0.25) > 1e-9 {
		t.Errorf("Overall = %v, want 0.25", data.Overall)
	}

	// A cluster with no listed pairs is fully resolved by definition.
	noPairs := &Cluster{ID: "np", Words: []string{"x", "y"}}
	data = ComputeMastery(noPairs, nil, nil, NewMatrix(), now)
	if data.ConfusionResolution != 1 {
		t.Errorf("no-pair resolution = %v, want 1", data.ConfusionResolution)
	}

	// An empty word list gives zero word knowledge, not a division error.
	empty := &Cluster{ID: "empty"}
	data = ComputeMastery(empty, nil, nil, NewMatrix(), now)
	if data.WordKnowledge != 0 {
		t.Errorf("empty-cluster word knowledge = %v, want 0", data.WordKnowledge)
	}
}

func TestComputeMasteryRecencyDecay(t *testing.T) {
	now := time.Now()
	c := fixtureCluster()

	// Exactly halfway between the 7-day and 30-day edges.
	mid := now.Add(-time.Duration(18.5 * 24 * float64(time.Hour)))
	history := []DrillResult{{ClusterID: "fixture", DrillID: "d1", Correct: true, Timestamp: mid}}
	data := ComputeMastery(c, nil, history, NewMatrix(), now)
	if math.Abs(data.Recency-0.5) > 1e-6 {
		t.Errorf("Recency at 18.5 days = %v, want 0.5", data.Recency)
	}

	// Past 30 days there is no recency credit.
	old := now.AddDate(0, 0, -45)
	history = []DrillResult{{ClusterID: "fixture", DrillID: "d1", Correct: true, Timestamp: old}}
	data = ComputeMastery(c, nil, history, NewMatrix(), now)
	if data.Recency != 0 {
		t.Errorf("Recency at 45 days = %v, want 0", data.Recency)
	}
}

func TestComputeMasteryContextualWindow(t *testing.T) {
	now := time.Now()
	c := fixtureCluster()

	// 10 old misses pushed out of the window by 20 recent hits.
	var history []DrillResult
	for i := 0; i < 10; i++ {
		history = append(history, DrillResult{ClusterID: "fixture", Correct: false, Timestamp: now})
	}
	for i := 0; i < 20; i++ {
		history = append(history, DrillResult{ClusterID: "fixture", Correct: true, Timestamp: now})
	}
	data := ComputeMastery(c, nil, history, NewMatrix(), now)
	if data.ContextualAccuracy != 1.0 {
		t.Errorf("ContextualAccuracy = %v, want 1.0 over the last %d drills", data.ContextualAccuracy, contextualWindow)
	}
}

func TestComputeMasteryIgnoresOtherClusters(t *testing.T) {
	now := time.Now()
	c := fixtureCluster()
	history := []DrillResult{
		{ClusterID: "other", Correct: false, Timestamp: now},
		{ClusterID: "fixture", Correct: true, Timestamp: now},
	}
	data := ComputeMastery(c, nil, history, NewMatrix(), now)
	if data.ContextualAccuracy != 1.0 {
		t.Errorf("other-cluster drills leaked in: accuracy %v", data.ContextualAccuracy)
	}
}

func TestMasteryLabelBands(t *testing.T) {
	cases := []struct {
		overall float64
		want    string
	}{
		{0.9, "mastered"},
		{0.85, "mastered"},
		{0.7, "proficient"},
		{0.5, "developing"},
		{0.2, "beginner"},
		{0.05, "not started"},
	}
	for _, tc := range cases {
		if got := MasteryLabel(tc.overall); got != tc.want {
			t.Errorf("MasteryLabel(%v) = %q, want %q", tc.overall, got, tc.want)
		}
	}
}

func TestSeededClustersResolve(t *testing.T) {
	for _, c := range All() {
		if len(c.Words) == 0 {
			t.Errorf("cluster %s has no words", c.ID)
		}
		for _, w := range c.Words {
			found := ForWord(w)
			if found == nil || found.ID != c.ID {
				t.Errorf("ForWord(%q) did not resolve to %s", w, c.ID)
			}
		}
		for _, d := range c.Drills {
			if d.ClusterID != c.ID {
				t.Errorf("drill %s carries cluster %s, want %s", d.ID, d.ClusterID, c.ID)
			}
			if len(d.Answer) == 0 {
				t.Errorf("drill %s has no answer key", d.ID)
			}
			for _, id := range d.Answer {
				if optionText(&d, id) == "" {
					t.Errorf("drill %s answer %q is not an option", d.ID, id)
				}
			}
		}
	}
}
