package mastery

import (
	"math"
	"testing"
	"time"

	"github.com/aeroSapphire/greprep/internal/store"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func wrapSnapshot(m *store.MasterySnapshotData) *store.SnapshotData {
	return &store.SnapshotData{Mastery: m}
}

func TestLevelForBands(t *testing.T) {
	cases := []struct {
		mastery float64
		want    Level
	}{
		{0, LevelFoundation},
		{0.19, LevelFoundation},
		{0.2, LevelDeveloping},
		{0.39, LevelDeveloping},
		{0.4, LevelCompetent},
		{0.59, LevelCompetent},
		{0.6, LevelAdvanced},
		{0.79, LevelAdvanced},
		{0.8, LevelExpert},
		{1.0, LevelExpert},
	}
	for _, tc := range cases {
		if got := LevelFor(tc.mastery); got != tc.want {
			t.Errorf("LevelFor(%v) = %v, want %v", tc.mastery, got, tc.want)
		}
	}
}

func TestUpdateCorrectRaisesMastery(t *testing.T) {
	sm := NewSkillMastery("tc-contrast")
	next := UpdateAfterAnswer(sm, Answer{Correct: true, Difficulty: 3, At: time.Now()})

	// expected = 1/(1+e^(3-2)), update = 0.08*(1-expected)
	expected := 1 / (1 + math.Exp(1))
	want := 0.08 * (1 - expected)
	if !almostEqual(next.Mastery, want) {
		t.Errorf("Mastery = %v, want %v", next.Mastery, want)
	}
	if next.Level != LevelFoundation {
		t.Errorf("Level = %v, want foundation", next.Level)
	}
	if next.QuestionsSeen != 1 || next.CorrectCount != 1 {
		t.Errorf("counters = %d/%d, want 1/1", next.CorrectCount, next.QuestionsSeen)
	}
}

func TestUpdateIncorrectClampsAtZero(t *testing.T) {
	sm := NewSkillMastery("se-synonym")
	next := UpdateAfterAnswer(sm, Answer{Correct: false, Difficulty: 1, At: time.Now()})
	if next.Mastery != 0 {
		t.Errorf("Mastery = %v, want 0 (clamped)", next.Mastery)
	}
}

func TestSurpriseWeighting(t *testing.T) {
	// A correct answer on a hard question must move mastery further than
	// a correct answer on an easy one.
	sm := NewSkillMastery("rc-inference")
	hard := UpdateAfterAnswer(sm, Answer{Correct: true, Difficulty: 5, At: time.Now()})
	easy := UpdateAfterAnswer(sm, Answer{Correct: true, Difficulty: 1, At: time.Now()})
	if hard.Mastery <= easy.Mastery {
		t.Errorf("hard gain %v should exceed easy gain %v", hard.Mastery, easy.Mastery)
	}
}

func TestDifficultyNudge(t *testing.T) {
	sm := NewSkillMastery("tc-contrast")

	up := UpdateAfterAnswer(sm, Answer{Correct: true, Difficulty: 3, At: time.Now()})
	if !almostEqual(up.CurrentDifficulty, 2.3) {
		t.Errorf("CurrentDifficulty after correct = %v, want 2.3", up.CurrentDifficulty)
	}

	down := UpdateAfterAnswer(sm, Answer{Correct: false, Difficulty: 1, At: time.Now()})
	// target backs off to d-1 = 0 before clamping the result.
	if !almostEqual(down.CurrentDifficulty, 1.4) {
		t.Errorf("CurrentDifficulty after incorrect = %v, want 1.4", down.CurrentDifficulty)
	}
}

func TestDifficultyStaysInRange(t *testing.T) {
	sm := NewSkillMastery("tc-contrast")
	for i := 0; i < 50; i++ {
		sm = UpdateAfterAnswer(sm, Answer{Correct: false, Difficulty: 1, At: time.Now()})
	}
	if sm.CurrentDifficulty < MinDifficulty {
		t.Errorf("CurrentDifficulty = %v dropped below %d", sm.CurrentDifficulty, MinDifficulty)
	}
	for i := 0; i < 50; i++ {
		sm = UpdateAfterAnswer(sm, Answer{Correct: true, Difficulty: 5, At: time.Now()})
	}
	if sm.CurrentDifficulty > MaxDifficulty {
		t.Errorf("CurrentDifficulty = %v exceeded %d", sm.CurrentDifficulty, MaxDifficulty)
	}
}

func TestSignedStreak(t *testing.T) {
	sm := NewSkillMastery("rc-structure")
	for i := 0; i < 3; i++ {
		sm = UpdateAfterAnswer(sm, Answer{Correct: true, Difficulty: 2, At: time.Now()})
	}
	if sm.Streak != 3 {
		t.Errorf("Streak = %d, want 3", sm.Streak)
	}
	sm = UpdateAfterAnswer(sm, Answer{Correct: false, Difficulty: 2, At: time.Now()})
	if sm.Streak != -1 {
		t.Errorf("Streak = %d, want -1 after a miss", sm.Streak)
	}
	sm = UpdateAfterAnswer(sm, Answer{Correct: false, Difficulty: 2, At: time.Now()})
	if sm.Streak != -2 {
		t.Errorf("Streak = %d, want -2 after two misses", sm.Streak)
	}
}

func TestTrendNeedsHistory(t *testing.T) {
	sm := NewSkillMastery("se-context")
	for i := 0; i < 9; i++ {
		sm = UpdateAfterAnswer(sm, Answer{Correct: i%2 == 0, Difficulty: 2, At: time.Now()})
	}
	if sm.Trend != TrendStable {
		t.Errorf("Trend = %v before 10 answers, want stable", sm.Trend)
	}
}

func TestTrendImprovingAndDeclining(t *testing.T) {
	sm := NewSkillMastery("se-context")
	for i := 0; i < 5; i++ {
		sm = UpdateAfterAnswer(sm, Answer{Correct: false, Difficulty: 2, At: time.Now()})
	}
	for i := 0; i < 5; i++ {
		sm = UpdateAfterAnswer(sm, Answer{Correct: true, Difficulty: 2, At: time.Now()})
	}
	if sm.Trend != TrendImproving {
		t.Errorf("Trend = %v after 5 misses then 5 hits, want improving", sm.Trend)
	}

	sm2 := NewSkillMastery("se-context")
	for i := 0; i < 5; i++ {
		sm2 = UpdateAfterAnswer(sm2, Answer{Correct: true, Difficulty: 2, At: time.Now()})
	}
	for i := 0; i < 5; i++ {
		sm2 = UpdateAfterAnswer(sm2, Answer{Correct: false, Difficulty: 2, At: time.Now()})
	}
	if sm2.Trend != TrendDeclining {
		t.Errorf("Trend = %v after 5 hits then 5 misses, want declining", sm2.Trend)
	}
}

func TestRecentAnswersCapped(t *testing.T) {
	sm := NewSkillMastery("rc-tone")
	for i := 0; i < 30; i++ {
		sm = UpdateAfterAnswer(sm, Answer{Correct: true, Difficulty: 2, At: time.Now()})
	}
	if len(sm.RecentAnswers) != recentWindow {
		t.Errorf("RecentAnswers length = %d, want %d", len(sm.RecentAnswers), recentWindow)
	}
}

func TestUpdateDoesNotMutateInput(t *testing.T) {
	sm := NewSkillMastery("rc-tone")
	sm = UpdateAfterAnswer(sm, Answer{Correct: true, Difficulty: 2, At: time.Now()})
	before := sm.AccuracyByDifficulty[2].Seen

	_ = UpdateAfterAnswer(sm, Answer{Correct: true, Difficulty: 2, At: time.Now()})
	if sm.AccuracyByDifficulty[2].Seen != before {
		t.Error("update mutated the input state's difficulty buckets")
	}
}

func TestEffectiveMasteryDecay(t *testing.T) {
	now := time.Now()
	sm := NewSkillMastery("tc-elaboration")
	sm.Mastery = 0.8

	sm.LastPracticedAt = now.AddDate(0, 0, -10)
	if got := EffectiveMastery(sm, now); !almostEqual(got, 0.8) {
		t.Errorf("EffectiveMastery within grace = %v, want 0.8", got)
	}

	// 24 days idle: 10 days past grace, factor 1 - 0.02*10 = 0.8.
	sm.LastPracticedAt = now.AddDate(0, 0, -24)
	if got := EffectiveMastery(sm, now); !almostEqual(got, 0.8*0.8) {
		t.Errorf("EffectiveMastery at 24 days = %v, want 0.64", got)
	}

	// Long idle clamps at the floor.
	sm.LastPracticedAt = now.AddDate(0, -6, 0)
	if got := EffectiveMastery(sm, now); !almostEqual(got, 0.8*0.5) {
		t.Errorf("EffectiveMastery floor = %v, want 0.4", got)
	}
}

func TestDecayNeverMutatesStoredMastery(t *testing.T) {
	now := time.Now()
	sm := NewSkillMastery("tc-elaboration")
	sm.Mastery = 0.8
	sm.LastPracticedAt = now.AddDate(0, 0, -60)

	_ = EffectiveMastery(sm, now)
	if sm.Mastery != 0.8 {
		t.Errorf("stored mastery changed to %v", sm.Mastery)
	}
}

func TestServiceSnapshotRoundTrip(t *testing.T) {
	svc := NewService(nil)
	now := time.Now()
	svc.RecordAnswer("tc-contrast", true, 3, now)
	svc.RecordAnswer("tc-contrast", false, 2, now)
	svc.RecordAnswer("se-synonym", true, 4, now)

	snap := svc.SnapshotData()

	restored := NewService(wrapSnapshot(snap))
	for _, id := range []string{"tc-contrast", "se-synonym"} {
		a := svc.GetMastery(id)
		b := restored.GetMastery(id)
		if !almostEqual(a.Mastery, b.Mastery) {
			t.Errorf("%s: mastery %v != %v after round trip", id, a.Mastery, b.Mastery)
		}
		if a.QuestionsSeen != b.QuestionsSeen || a.CorrectCount != b.CorrectCount {
			t.Errorf("%s: counters diverged after round trip", id)
		}
		if !almostEqual(a.CurrentDifficulty, b.CurrentDifficulty) {
			t.Errorf("%s: difficulty %v != %v after round trip", id, a.CurrentDifficulty, b.CurrentDifficulty)
		}
		if a.Streak != b.Streak {
			t.Errorf("%s: streak diverged after round trip", id)
		}
	}
}

func TestWeakSkillsOrdering(t *testing.T) {
	svc := NewService(nil)
	now := time.Now()

	a := svc.GetMastery("rc-structure")
	a.Mastery = 0.1
	a.LastPracticedAt = now
	b := svc.GetMastery("tc-contrast")
	b.Mastery = 0.3
	b.LastPracticedAt = now
	c := svc.GetMastery("se-synonym")
	c.Mastery = 0.9
	c.LastPracticedAt = now

	weak := svc.WeakSkills(0.5, now)
	if len(weak) != 2 {
		t.Fatalf("got %d weak skills, want 2", len(weak))
	}
	if weak[0] != "rc-structure" || weak[1] != "tc-contrast" {
		t.Errorf("weak order = %v, want weakest first", weak)
	}
}
