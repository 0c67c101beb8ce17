package cluster

import "testing"

func TestMatrixRecordAndCount(t *testing.T) {
	m := NewMatrix()
	m.Record("flaunt", "flout")
	m.Record("flaunt", "flout")
	m.Record("flaunt", "vaunt")

	if got := m.Count("flaunt", "flout"); got != 2 {
		t.Errorf("Count(flaunt, flout) = %d, want 2", got)
	}
	if got := m.Count("flout", "flaunt"); got != 0 {
		t.Errorf("reverse direction counted: got %d", got)
	}
}

func TestMatrixIgnoresDegenerateRecords(t *testing.T) {
	m := NewMatrix()
	m.Record("flaunt", "flaunt")
	m.Record("", "flout")
	m.Record("flaunt", "")
	if got := m.Score("flaunt"); got != 0 {
		t.Errorf("degenerate records counted: score %v", got)
	}
}

func TestTopConfusionsOrdering(t *testing.T) {
	m := NewMatrix()
	m.Record("venal", "venial")
	m.Record("venal", "venial")
	m.Record("venal", "banal")

	top := m.TopConfusions("venal", 5)
	if len(top) != 2 {
		t.Fatalf("got %d entries, want 2", len(top))
	}
	if top[0].Word != "venial" || top[0].Count != 2 {
		t.Errorf("top entry = %+v, want venial x2", top[0])
	}
	if top[1].Word != "banal" {
		t.Errorf("second entry = %+v, want banal", top[1])
	}
}

func TestMostConfusedPairsSumsBothDirections(t *testing.T) {
	m := NewMatrix()
	m.Record("prescribe", "proscribe")
	m.Record("prescribe", "proscribe")
	m.Record("proscribe", "prescribe")
	m.Record("venal", "venial")

	pairs := m.MostConfusedPairs(10)
	if len(pairs) != 2 {
		t.Fatalf("got %d pairs, want 2", len(pairs))
	}
	if pairs[0].Count != 3 {
		t.Errorf("top pair count = %d, want 3 (both directions)", pairs[0].Count)
	}
	if pairs[0].WordA != "prescribe" || pairs[0].WordB != "proscribe" {
		t.Errorf("top pair = %+v", pairs[0])
	}
}

func TestConfusionScoreSaturates(t *testing.T) {
	m := NewMatrix()
	for i := 0; i < 5; i++ {
		m.Record("enervate", "energize")
	}
	if got := m.Score("enervate"); got != 0.5 {
		t.Errorf("Score at 5 = %v, want 0.5", got)
	}
	for i := 0; i < 20; i++ {
		m.Record("enervate", "innervate")
	}
	if got := m.Score("enervate"); got != 1 {
		t.Errorf("Score past saturation = %v, want 1", got)
	}
}

func TestActivePairsWithinDeduplicatesDirections(t *testing.T) {
	m := NewMatrix()
	m.Record("eminent", "imminent")
	m.Record("imminent", "eminent")
	m.Record("imminent", "immanent")
	m.Record("eminent", "salient") // outside the word set

	got := m.ActivePairsWithin([]string{"eminent", "imminent", "immanent"})
	if got != 2 {
		t.Errorf("ActivePairsWithin = %d, want 2", got)
	}
}

func TestMatrixCountsRoundTrip(t *testing.T) {
	m := NewMatrix()
	m.Record("flaunt", "flout")
	m.Record("venal", "venial")
	m.Record("venal", "venial")

	restored := NewMatrix()
	restored.LoadCounts(m.Counts())

	if restored.Count("flaunt", "flout") != 1 || restored.Count("venal", "venial") != 2 {
		t.Error("counts diverged after export/load")
	}
}
