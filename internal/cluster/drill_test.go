package cluster

import (
	"math/rand"
	"testing"
	"time"

	"github.com/aeroSapphire/greprep/internal/store"
)

func TestScoreDrillSingleAnswer(t *testing.T) {
	d := &Drill{Answer: []string{"b"}}
	if !ScoreDrill(d, []string{"b"}) {
		t.Error("correct single answer rejected")
	}
	if ScoreDrill(d, []string{"a"}) {
		t.Error("wrong single answer accepted")
	}
	if ScoreDrill(d, nil) {
		t.Error("empty selection accepted")
	}
	if ScoreDrill(d, []string{"b", "a"}) {
		t.Error("over-selection accepted")
	}
}

func TestScoreDrillSetEquality(t *testing.T) {
	d := &Drill{Answer: []string{"a", "c"}}
	if !ScoreDrill(d, []string{"c", "a"}) {
		t.Error("order should not matter for unordered drills")
	}
	if ScoreDrill(d, []string{"a", "b"}) {
		t.Error("partial match accepted")
	}
	if ScoreDrill(d, []string{"a", "a"}) {
		t.Error("duplicate selection accepted")
	}
}

func TestScoreDrillOrderedSequence(t *testing.T) {
	d := &Drill{Answer: []string{"a", "b", "c"}, Ordered: true}
	if !ScoreDrill(d, []string{"a", "b", "c"}) {
		t.Error("exact sequence rejected")
	}
	if ScoreDrill(d, []string{"c", "b", "a"}) {
		t.Error("wrong order accepted for ordering drill")
	}
}

func TestNewSessionCoversDrillTypes(t *testing.T) {
	c, err := Get("ingenious-ingenuous")
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(7))
	sess := NewSession(c, 2, nil, rng)

	types := make(map[DrillType]bool)
	for _, d := range sess.Drills {
		types[d.Type] = true
	}
	if len(types) != 2 {
		t.Errorf("session covers %d types, want one of each available", len(types))
	}
}

func TestSessionSubmitAndSummary(t *testing.T) {
	c, err := Get("ingenious-ingenuous")
	if err != nil {
		t.Fatal(err)
	}
	matrix := NewMatrix()
	rng := rand.New(rand.NewSource(1))
	sess := NewSession(c, len(c.Drills), matrix, rng)

	for {
		drill := sess.Current()
		if drill == nil {
			break
		}
		// Miss intentionally by picking a wrong option.
		var wrong string
		for _, o := range drill.Options {
			if o.ID != drill.Answer[0] {
				wrong = o.ID
				break
			}
		}
		correct, err := sess.Submit([]string{wrong})
		if err != nil {
			t.Fatal(err)
		}
		if correct {
			t.Error("wrong selection scored correct")
		}
	}

	if _, err := sess.Submit([]string{"a"}); err == nil {
		t.Error("submit past the end should fail")
	}

	sum := sess.Summarize()
	if sum.Total != len(c.Drills) || sum.Correct != 0 {
		t.Errorf("summary = %d/%d, want 0/%d", sum.Correct, sum.Total, len(c.Drills))
	}
	if sum.Accuracy != 0 {
		t.Errorf("Accuracy = %v, want 0", sum.Accuracy)
	}
	if len(sum.Struggled) == 0 {
		t.Error("missed drills recorded no struggled words")
	}
	if len(sum.ByType) == 0 {
		t.Error("summary missing per-type breakdown")
	}

	// Every miss whose wrong pick is a real word feeds the matrix.
	if len(matrix.MostConfusedPairs(10)) == 0 {
		t.Error("sibling-word misses not recorded as confusions")
	}
}

func TestSessionAllCorrect(t *testing.T) {
	c, err := Get("frugal-scale")
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(1))
	sess := NewSession(c, 0, nil, rng)

	for {
		drill := sess.Current()
		if drill == nil {
			break
		}
		correct, err := sess.Submit(drill.Answer)
		if err != nil {
			t.Fatal(err)
		}
		if !correct {
			t.Errorf("answer key rejected for drill %s", drill.ID)
		}
	}

	sum := sess.Summarize()
	if sum.Accuracy != 1.0 {
		t.Errorf("Accuracy = %v, want 1.0", sum.Accuracy)
	}
	if len(sum.Struggled) != 0 {
		t.Errorf("perfect session lists struggled words: %v", sum.Struggled)
	}
}

func TestSessionResults(t *testing.T) {
	c, err := Get("flaunt-flout")
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(1))
	sess := NewSession(c, 0, nil, rng)
	drill := sess.Current()
	if _, err := sess.Submit(drill.Answer); err != nil {
		t.Fatal(err)
	}

	at := time.Now()
	results := sess.Results(at)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	r := results[0]
	if r.ClusterID != c.ID || r.DrillID != drill.ID || !r.Correct || !r.Timestamp.Equal(at) {
		t.Errorf("result = %+v", r)
	}
}

func TestClusterServiceSnapshotRoundTrip(t *testing.T) {
	svc := NewService(nil)
	svc.MarkLearned("flaunt")
	svc.MarkLearned("flout")
	svc.Matrix().Record("flaunt", "flout")
	now := time.Now()
	svc.RecordResults([]DrillResult{
		{ClusterID: "flaunt-flout", DrillID: "ff-d1", Correct: true, Timestamp: now, Words: []string{"flaunt", "flout"}},
	})

	learned, drills, confusion := svc.SnapshotData()
	restored := NewService(&store.SnapshotData{
		LearnedWords: learned,
		Drills:       drills,
		Confusion:    confusion,
	})

	if !restored.IsLearned("flaunt") || !restored.IsLearned("flout") {
		t.Error("learned words lost in round trip")
	}
	if restored.Matrix().Count("flaunt", "flout") != 1 {
		t.Error("confusion counts lost in round trip")
	}

	c, err := Get("flaunt-flout")
	if err != nil {
		t.Fatal(err)
	}
	a := svc.Mastery(c, now)
	b := restored.Mastery(c, now)
	if a.Overall != b.Overall {
		t.Errorf("mastery diverged after round trip: %v != %v", a.Overall, b.Overall)
	}
}
