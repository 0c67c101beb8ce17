package practice

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/aeroSapphire/greprep/internal/question"
	"github.com/aeroSapphire/greprep/internal/screen"
	"github.com/aeroSapphire/greprep/internal/store"
)

// mockSource implements question.Source for testing.
type mockSource struct {
	questions []*question.Question
	err       error
}

func (m *mockSource) GetQuestions(_ context.Context, _ question.Filter, count int) ([]*question.Question, error) {
	if m.err != nil {
		return nil, m.err
	}
	if count > len(m.questions) {
		count = len(m.questions)
	}
	return m.questions[:count], nil
}

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	sessionEvents []store.SessionEventData
	answerEvents  []store.AnswerEventData
}

func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) AppendReviewEvent(_ context.Context, _ store.ReviewEventData) error {
	return nil
}
func (m *mockEventRepo) AppendDrillEvent(_ context.Context, _ store.DrillEventData) error {
	return nil
}
func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) SkillAccuracy(_ context.Context, _ string) (float64, error) {
	return 0, nil
}
func (m *mockEventRepo) LatestAnswerTime(_ context.Context, _ string) (time.Time, error) {
	return time.Time{}, nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMRequestEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	snapshots []*store.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snapshots = append(m.snapshots, snap)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snapshots) == 0 {
		return nil, nil
	}
	return m.snapshots[len(m.snapshots)-1], nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestions() []*question.Question {
	return []*question.Question{
		{
			ID:     "tc-test-1",
			Type:   question.TypeTextCompletion,
			Prompt: "Her speech was so ___ that the audience drifted off.",
			Options: []question.Option{
				{ID: "a", Text: "soporific", Correct: true},
				{ID: "b", Text: "rousing"},
				{ID: "c", Text: "trenchant"},
				{ID: "d", Text: "lucid"},
				{ID: "e", Text: "pithy"},
			},
			Difficulty: 3,
			SkillIDs:   []string{"TC-CON"},
		},
		{
			ID:     "tc-test-2",
			Type:   question.TypeTextCompletion,
			Prompt: "The critic's review was surprisingly ___.",
			Options: []question.Option{
				{ID: "a", Text: "laudatory", Correct: true},
				{ID: "b", Text: "caustic"},
				{ID: "c", Text: "tepid"},
				{ID: "d", Text: "opaque"},
				{ID: "e", Text: "florid"},
			},
			Difficulty: 3,
			SkillIDs:   []string{"TC-CON"},
		},
	}
}

func testPracticeScreen() (*Screen, *mockEventRepo, *mockSnapshotRepo) {
	src := &mockSource{questions: testQuestions()}
	eventRepo := &mockEventRepo{}
	snapRepo := &mockSnapshotRepo{}
	s := New("TC-CON", src, eventRepo, snapRepo, nil)
	return s, eventRepo, snapRepo
}

// startSession drives the async init and first question selection
// synchronously by running the returned commands by hand.
func startSession(t *testing.T, s *Screen) *Screen {
	t.Helper()

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("Init returned no command")
	}
	msg := cmd()
	scr, cmd := s.Update(msg)
	s = scr.(*Screen)
	if s.errMsg != "" {
		t.Fatalf("init failed: %s", s.errMsg)
	}
	if cmd == nil {
		t.Fatal("expected a select-next command after init")
	}
	scr, _ = s.Update(cmd())
	s = scr.(*Screen)
	if s.current == nil {
		t.Fatal("no question loaded after init")
	}
	return s
}

func TestPracticeScreen_Title(t *testing.T) {
	s, _, _ := testPracticeScreen()
	if s.Title() != "Practice: Contrast Signals" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestPracticeScreen_View_Loading(t *testing.T) {
	s, _, _ := testPracticeScreen()
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view for loading state")
	}
}

func TestPracticeScreen_View_Error(t *testing.T) {
	s, _, _ := testPracticeScreen()
	s.errMsg = "test error"
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view for error state")
	}
}

func TestPracticeScreen_SessionStartEvent(t *testing.T) {
	s, eventRepo, _ := testPracticeScreen()
	startSession(t, s)

	if len(eventRepo.sessionEvents) != 1 {
		t.Fatalf("session events = %d, want 1", len(eventRepo.sessionEvents))
	}
	if eventRepo.sessionEvents[0].Action != "start" {
		t.Errorf("action = %q, want %q", eventRepo.sessionEvents[0].Action, "start")
	}
}

func TestPracticeScreen_QuitConfirm(t *testing.T) {
	s, _, _ := testPracticeScreen()
	s = startSession(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ps := scr.(*Screen)
	if !ps.quitConfirm {
		t.Error("expected quit confirmation dialog")
	}

	scr, _ = ps.Update(keyPress('n'))
	ps = scr.(*Screen)
	if ps.quitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestPracticeScreen_QuitConfirm_Yes(t *testing.T) {
	s, _, _ := testPracticeScreen()
	s = startSession(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Error("expected a session-end command after quit confirmation")
	}
}

func TestPracticeScreen_AnswerSubmit(t *testing.T) {
	s, eventRepo, _ := testPracticeScreen()
	s = startSession(t, s)

	// Cursor starts on the correct option; enter submits it.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*Screen)

	if !ps.showFeedback {
		t.Error("expected feedback after submit")
	}
	if !ps.lastOK {
		t.Error("expected first option to grade correct")
	}
	if len(eventRepo.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(eventRepo.answerEvents))
	}
	if eventRepo.answerEvents[0].SkillID != "TC-CON" {
		t.Errorf("answer skill = %q, want TC-CON", eventRepo.answerEvents[0].SkillID)
	}
}

func TestPracticeScreen_WrongAnswerClassified(t *testing.T) {
	s, _, _ := testPracticeScreen()
	s = startSession(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('j'))
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*Screen)

	if ps.lastOK {
		t.Error("expected second option to grade wrong")
	}
	if cmd == nil {
		t.Fatal("expected a classification command after a wrong answer")
	}
	scr, _ = ps.Update(cmd())
	ps = scr.(*Screen)
	if ps.diagnosis == nil {
		t.Error("expected a mistake diagnosis after classification")
	}
}

func TestPracticeScreen_FinishSavesSnapshot(t *testing.T) {
	s, eventRepo, snapRepo := testPracticeScreen()
	s = startSession(t, s)

	// Answer one question, dismiss the feedback, then quit via the
	// confirmation dialog.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, cmdNext := scr.Update(keyPress(' '))
	if cmdNext == nil {
		t.Fatal("expected a select-next command after feedback dismiss")
	}
	scr, _ = scr.Update(cmdNext())
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	scr, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a session-end command")
	}
	scr, cmd = scr.Update(cmd())
	if cmd == nil {
		t.Fatal("expected a finish command")
	}
	scr, _ = scr.Update(cmd())
	ps := scr.(*Screen)
	if ps.errMsg != "" {
		t.Fatalf("finish failed: %s", ps.errMsg)
	}

	if len(snapRepo.snapshots) != 1 {
		t.Errorf("snapshots saved = %d, want 1", len(snapRepo.snapshots))
	}
	var completes int
	for _, e := range eventRepo.sessionEvents {
		if e.Action == "complete" {
			completes++
		}
	}
	if completes != 1 {
		t.Errorf("complete events = %d, want 1", completes)
	}
}

func TestPracticeScreen_KeyHints(t *testing.T) {
	s, _, _ := testPracticeScreen()
	s = startSession(t, s)

	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
	s.quitConfirm = true
	if len(s.KeyHints()) != 2 {
		t.Error("expected two hints in quit confirmation")
	}
}
