package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// saveSnap writes a minimal snapshot whose sequence and timestamp are
// derived from n, so ordering assertions can refer to n directly.
func saveSnap(t *testing.T, repo SnapshotRepo, base time.Time, n int) {
	t.Helper()
	err := repo.Save(context.Background(), &Snapshot{
		Sequence:  int64(n),
		Timestamp: base.Add(time.Duration(n) * time.Minute),
		Data:      SnapshotData{Version: n},
	})
	if err != nil {
		t.Fatalf("save snapshot %d: %v", n, err)
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	// journal_mode reports "memory" for in-memory databases, so only the
	// pragmas that hold regardless of backing are checked here.
	checks := map[string]string{
		"foreign_keys": "1",
		"synchronous":  "1", // NORMAL
	}
	for pragma, want := range checks {
		var got string
		if err := db.QueryRow("PRAGMA " + pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", pragma, err)
			continue
		}
		if got != want {
			t.Errorf("PRAGMA %s = %q, want %q", pragma, got, want)
		}
	}
}

func TestSnapshotLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest on empty store: %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	base := time.Now().UTC().Truncate(time.Second)
	for n := 1; n <= 4; n++ {
		saveSnap(t, repo, base, n)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 4 || snap.Data.Version != 4 {
		t.Errorf("latest = seq %d version %d, want 4/4", snap.Sequence, snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for n := 1; n <= 7; n++ {
		saveSnap(t, repo, base, n)
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7 after prune", snap.Sequence)
	}
}

func TestSnapshotPruneNoopWhenUnderKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	saveSnap(t, repo, base, 1)
	saveSnap(t, repo, base, 2)

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	for want := int64(1); want <= 5; want++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq != want {
			t.Errorf("seq = %d, want %d", seq, want)
		}
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}

func TestSnapshotRoundTripFullState(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	data := SnapshotData{
		Version: SnapshotVersion,
		Mastery: &MasterySnapshotData{
			Skills: map[string]*SkillMasteryData{
				"tc-contrast": {
					SkillID:           "tc-contrast",
					Mastery:           0.42,
					Level:             "competent",
					QuestionsSeen:     10,
					CorrectCount:      7,
					CurrentDifficulty: 2.5,
					Trend:             "improving",
					Streak:            3,
					RecentAnswers:     []bool{true, true, false, true},
					AccuracyByDifficulty: map[int]*DifficultyStatsData{
						2: {Seen: 6, Correct: 5},
						3: {Seen: 4, Correct: 2},
					},
				},
			},
		},
		Reviews: &ReviewSnapshotData{
			Cards: map[string]*CardReviewData{
				"card-1": {
					CardID:          "card-1",
					IntervalMinutes: 5760,
					EaseFactor:      2.25,
					Repetitions:     2,
					LastGrade:       "easy",
					NextReviewAt:    "2026-09-04T10:00:00Z",
					LastReviewedAt:  "2026-08-31T10:00:00Z",
				},
			},
		},
		Drills: &DrillSnapshotData{
			Results: []*DrillResultData{
				{ClusterID: "flaunt-flout", DrillID: "ff-d1", Correct: true, Timestamp: "2026-08-30T09:00:00Z", Words: []string{"flaunt", "flout"}},
			},
		},
		Confusion: &ConfusionSnapshotData{
			Counts: map[string]map[string]int{"flaunt": {"flout": 2}},
		},
		LearnedWords:     []string{"flaunt", "flout"},
		LessonsCompleted: []string{"tc-contrast"},
	}

	err := repo.Save(ctx, &Snapshot{Sequence: 1, Timestamp: time.Now().UTC(), Data: data})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	got := snap.Data
	sm := got.Mastery.Skills["tc-contrast"]
	if sm == nil || sm.Mastery != 0.42 || sm.Streak != 3 || len(sm.RecentAnswers) != 4 {
		t.Errorf("mastery state lost in round trip: %+v", sm)
	}
	if sm.AccuracyByDifficulty[2].Correct != 5 {
		t.Errorf("difficulty buckets lost in round trip")
	}
	card := got.Reviews.Cards["card-1"]
	if card == nil || card.IntervalMinutes != 5760 || card.EaseFactor != 2.25 {
		t.Errorf("review state lost in round trip: %+v", card)
	}
	if len(got.Drills.Results) != 1 || got.Drills.Results[0].DrillID != "ff-d1" {
		t.Errorf("drill history lost in round trip")
	}
	if got.Confusion.Counts["flaunt"]["flout"] != 2 {
		t.Errorf("confusion counts lost in round trip")
	}
	if len(got.LearnedWords) != 2 || len(got.LessonsCompleted) != 1 {
		t.Errorf("word/lesson lists lost in round trip")
	}
}

func TestEventRepoAppendAndAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", QuestionID: "q1", SkillID: "tc-contrast", Difficulty: 2, Selected: []string{"a"}, Correct: true},
		{SessionID: "s1", QuestionID: "q2", SkillID: "tc-contrast", Difficulty: 3, Selected: []string{"b"}, Correct: true},
		{SessionID: "s1", QuestionID: "q3", SkillID: "tc-contrast", Difficulty: 3, Selected: []string{"c"}, Correct: false},
	}
	for _, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}

	acc, err := repo.SkillAccuracy(ctx, "tc-contrast")
	if err != nil {
		t.Fatalf("skill accuracy: %v", err)
	}
	if acc < 0.66 || acc > 0.67 {
		t.Errorf("accuracy = %v, want 2/3", acc)
	}

	acc, err = repo.SkillAccuracy(ctx, "never-seen")
	if err != nil {
		t.Fatalf("skill accuracy (empty): %v", err)
	}
	if acc != 0 {
		t.Errorf("accuracy for unseen skill = %v, want 0", acc)
	}

	latest, err := repo.LatestAnswerTime(ctx, "tc-contrast")
	if err != nil {
		t.Fatalf("latest answer time: %v", err)
	}
	if latest.IsZero() {
		t.Error("latest answer time is zero after appends")
	}

	if err := repo.AppendReviewEvent(ctx, ReviewEventData{CardID: "card-1", Grade: "easy", IntervalMinutes: 5760, EaseFactor: 2.25}); err != nil {
		t.Fatalf("append review: %v", err)
	}
	if err := repo.AppendDrillEvent(ctx, DrillEventData{ClusterID: "flaunt-flout", DrillID: "ff-d1", DrillType: "confusion_resolver", Correct: true, Words: []string{"flaunt", "flout"}}); err != nil {
		t.Fatalf("append drill: %v", err)
	}
	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", SkillID: "tc-contrast", Action: "complete", QuestionsServed: 3, CorrectAnswers: 2, DurationSecs: 120}); err != nil {
		t.Fatalf("append session: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock-model", Purpose: "sentence-eval", Success: true}); err != nil {
		t.Fatalf("append llm request: %v", err)
	}
}
