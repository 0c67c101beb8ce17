package practice

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/aeroSapphire/greprep/internal/llm"
	"github.com/aeroSapphire/greprep/internal/mistakes"
	core "github.com/aeroSapphire/greprep/internal/practice"
	"github.com/aeroSapphire/greprep/internal/profile"
	"github.com/aeroSapphire/greprep/internal/question"
	"github.com/aeroSapphire/greprep/internal/router"
	"github.com/aeroSapphire/greprep/internal/screen"
	"github.com/aeroSapphire/greprep/internal/screens/summary"
	"github.com/aeroSapphire/greprep/internal/skills"
	"github.com/aeroSapphire/greprep/internal/store"
	"github.com/aeroSapphire/greprep/internal/ui/components"
	"github.com/aeroSapphire/greprep/internal/ui/layout"
)

// sessionLength caps one sitting; the adaptive loop has no natural end
// until the bank runs dry.
const sessionLength = 10

// Screen runs one adaptive practice session for a single skill.
type Screen struct {
	skillID  string
	source   question.Source
	eventKey store.EventRepo
	snapRepo store.SnapshotRepo
	provider llm.Provider

	prof *profile.Profile
	ctrl *core.Controller

	current   *question.Question
	choices   components.ChoiceList
	startedAt time.Time
	askedAt   time.Time
	lastOK    bool
	diagnosis *mistakes.Result

	showFeedback bool
	quitConfirm  bool
	errMsg       string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a practice screen for the given skill.
func New(skillID string, source question.Source, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, provider llm.Provider) *Screen {
	return &Screen{
		skillID:  skillID,
		source:   source,
		eventKey: eventRepo,
		snapRepo: snapRepo,
		provider: provider,
	}
}

func (s *Screen) Init() tea.Cmd {
	s.startedAt = time.Now()
	return s.initSession()
}

func (s *Screen) Title() string {
	return "Practice: " + skills.DisplayName(s.skillID)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch {
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case s.showFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case s.current != nil && s.current.MultiSelect:
		return []layout.KeyHint{
			{Key: "Space", Description: "Mark"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

// initSession loads learner state and opens the adaptive controller.
func (s *Screen) initSession() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		prof, err := profile.Load(ctx, s.snapRepo, s.provider)
		if err != nil {
			return initDoneMsg{Err: err}
		}

		ctrl := core.Start(s.skillID, s.source, prof.Mastery)

		_ = s.eventKey.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID: ctrl.SessionID,
			SkillID:   s.skillID,
			Action:    "start",
		})

		return initDoneMsg{Profile: prof, Controller: ctrl}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case initDoneMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.prof = msg.Profile
		s.ctrl = msg.Controller
		return s, s.selectNext()

	case questionReadyMsg:
		return s.handleQuestionReady(msg)

	case classifiedMsg:
		s.diagnosis = msg.Result
		return s, nil

	case sessionEndMsg:
		return s, s.finishSession()

	case savedMsg:
		return s.handleSaved(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *Screen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	if msg.Question == nil {
		// Bank exhausted for this skill.
		return s, func() tea.Msg { return sessionEndMsg{} }
	}

	s.current = msg.Question
	s.askedAt = time.Now()
	s.diagnosis = nil
	s.choices = newChoiceList(msg.Question)
	return s, nil
}

func newChoiceList(q *question.Question) components.ChoiceList {
	texts := make([]string, len(q.Options))
	correct := make(map[int]bool)
	for i, o := range q.Options {
		texts[i] = o.Text
		if o.Correct {
			correct[i] = true
		}
	}
	return components.NewChoiceList(texts, correct, q.MultiSelect, len(correct))
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.ctrl == nil {
		return s, nil
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			return s, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if s.showFeedback {
		s.showFeedback = false
		if len(s.ctrl.History()) >= sessionLength {
			return s, func() tea.Msg { return sessionEndMsg{} }
		}
		return s, s.selectNext()
	}

	if key == "esc" {
		s.quitConfirm = true
		return s, nil
	}

	if s.current == nil {
		return s, nil
	}

	var done bool
	s.choices, done = s.choices.Update(msg)
	if !done {
		return s, nil
	}
	return s.submitAnswer()
}

// submitAnswer grades the marked options and records everything.
func (s *Screen) submitAnswer() (screen.Screen, tea.Cmd) {
	q := s.current

	var selected []string
	for _, i := range s.choices.SelectedIndices() {
		selected = append(selected, q.Options[i].ID)
	}

	correct, err := s.ctrl.SubmitAnswer(q, selected)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.lastOK = correct
	s.showFeedback = true

	responseMs := int(time.Since(s.askedAt).Milliseconds())
	ctx := context.Background()

	skillID := s.skillID
	if len(q.SkillIDs) > 0 {
		skillID = q.SkillIDs[0]
	}
	_ = s.eventKey.AppendAnswerEvent(ctx, store.AnswerEventData{
		SessionID:  s.ctrl.SessionID,
		QuestionID: q.ID,
		SkillID:    skillID,
		Difficulty: q.Difficulty,
		Selected:   selected,
		Correct:    correct,
	})

	if correct {
		return s, nil
	}

	// Wrong answer: classify it while the learner reads the feedback.
	input := &mistakes.ClassifyInput{
		Question:       q,
		Selected:       selected,
		ResponseTimeMs: responseMs,
		SkillAccuracy:  s.prof.Mastery.GetMastery(skillID).Accuracy(),
	}
	return s, func() tea.Msg {
		result := s.prof.Mistakes.Classify(context.Background(), input)
		return classifiedMsg{Result: result}
	}
}

// selectNext asks the controller for the next question.
func (s *Screen) selectNext() tea.Cmd {
	ctrl := s.ctrl
	return func() tea.Msg {
		q, err := ctrl.SelectNext(context.Background())
		return questionReadyMsg{Question: q, Err: err}
	}
}

// finishSession persists events and state, then shows the summary.
func (s *Screen) finishSession() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		s.ctrl.Complete()
		sum := s.ctrl.Summarize()

		_ = s.eventKey.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:       sum.SessionID,
			SkillID:         sum.SkillID,
			Action:          "complete",
			QuestionsServed: sum.Total,
			CorrectAnswers:  sum.Correct,
			DurationSecs:    int(time.Since(s.startedAt).Seconds()),
		})

		if sum.Total > 0 {
			s.prof.MarkLessonCompleted(s.skillID)
		}
		err := s.prof.Save(ctx, s.snapRepo)
		return savedMsg{Err: err}
	}
}

func (s *Screen) handleSaved(msg savedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	sum := s.ctrl.Summarize()
	nudge := s.prof.Mistakes.Nudge()
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New("Session Summary", practiceSummaryLines(sum, nudge)),
		}
	}
}
