// Package study implements the flashcard review screen: due cards first,
// then unseen deck cards, graded fail/hard/easy against the scheduler.
package study

import (
	"context"
	"sort"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/aeroSapphire/greprep/internal/evaluate"
	"github.com/aeroSapphire/greprep/internal/llm"
	"github.com/aeroSapphire/greprep/internal/profile"
	"github.com/aeroSapphire/greprep/internal/router"
	"github.com/aeroSapphire/greprep/internal/screen"
	"github.com/aeroSapphire/greprep/internal/screens/summary"
	"github.com/aeroSapphire/greprep/internal/srs"
	"github.com/aeroSapphire/greprep/internal/store"
	"github.com/aeroSapphire/greprep/internal/ui/components"
	"github.com/aeroSapphire/greprep/internal/ui/layout"
	"github.com/aeroSapphire/greprep/internal/vocab"
)

// sessionCards caps one sitting.
const sessionCards = 12

// phase is the per-card state machine.
type phase int

const (
	phaseFront phase = iota
	phaseBack
	phaseSentence // learner is writing a practice sentence
	phaseDone
)

// Screen runs one flashcard study session.
type Screen struct {
	eventRepo store.EventRepo
	snapRepo  store.SnapshotRepo
	provider  llm.Provider
	evaluator *evaluate.Evaluator

	prof      *profile.Profile
	queue     []string
	pos       int
	ph        phase
	startedAt time.Time

	gradeCounts map[srs.Grade]int
	lastLabel   string

	mnemonic    *evaluate.MnemonicResult
	genPending  bool
	sentence    components.TextInput
	evalResult  *evaluate.SentenceResult
	evalPending bool

	errMsg string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a study screen. provider may be nil; mnemonic generation
// and sentence practice are then unavailable.
func New(eventRepo store.EventRepo, snapRepo store.SnapshotRepo, provider llm.Provider) *Screen {
	s := &Screen{
		eventRepo:   eventRepo,
		snapRepo:    snapRepo,
		provider:    provider,
		gradeCounts: make(map[srs.Grade]int),
	}
	if provider != nil {
		s.evaluator = evaluate.NewEvaluator(provider, evaluate.DefaultConfig())
	}
	return s
}

func (s *Screen) Init() tea.Cmd {
	s.startedAt = time.Now()
	return s.initSession()
}

func (s *Screen) Title() string {
	return "Study"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.ph {
	case phaseFront:
		return []layout.KeyHint{
			{Key: "Space", Description: "Reveal"},
			{Key: "Esc", Description: "Finish"},
		}
	case phaseBack:
		hints := []layout.KeyHint{
			{Key: "1", Description: "Again"},
			{Key: "2", Description: "Hard"},
			{Key: "3", Description: "Easy"},
		}
		if s.evaluator != nil {
			hints = append(hints,
				layout.KeyHint{Key: "M", Description: "Mnemonic"},
				layout.KeyHint{Key: "W", Description: "Write a sentence"},
			)
		}
		return hints
	case phaseSentence:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Check"},
			{Key: "Esc", Description: "Back to card"},
		}
	default:
		return nil
	}
}

// initSession loads the profile and builds the card queue: every due
// card, then unseen deck cards to fill the session.
func (s *Screen) initSession() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		prof, err := profile.Load(ctx, s.snapRepo, s.provider)
		if err != nil {
			return initDoneMsg{Err: err}
		}

		now := time.Now()
		queue := prof.Reviews.Due(now)

		if len(queue) < sessionCards {
			var fresh []string
			for _, c := range vocab.All() {
				if prof.Reviews.Get(c.ID) == nil {
					fresh = append(fresh, c.ID)
				}
			}
			sort.Strings(fresh)
			for _, id := range fresh {
				if len(queue) >= sessionCards {
					break
				}
				queue = append(queue, id)
			}
		}
		if len(queue) > sessionCards {
			queue = queue[:sessionCards]
		}

		return initDoneMsg{Profile: prof, Queue: queue}
	}
}

func (s *Screen) currentCard() (vocab.Card, bool) {
	if s.pos >= len(s.queue) {
		return vocab.Card{}, false
	}
	c, err := vocab.Get(s.queue[s.pos])
	if err != nil {
		return vocab.Card{}, false
	}
	return c, true
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case initDoneMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.prof = msg.Profile
		s.queue = msg.Queue
		if len(s.queue) == 0 {
			return s, s.finishSession()
		}
		return s, nil

	case mnemonicMsg:
		s.genPending = false
		if card, ok := s.currentCard(); ok && card.ID == msg.CardID {
			s.mnemonic = msg.Result
		}
		return s, nil

	case sentenceEvalMsg:
		s.evalPending = false
		if card, ok := s.currentCard(); ok && card.ID == msg.CardID {
			s.evalResult = msg.Result
			s.sentence.Submit(msg.Result != nil && msg.Result.Correct)
		}
		return s, nil

	case savedMsg:
		return s.handleSaved(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.ph == phaseSentence {
		var cmd tea.Cmd
		s.sentence, cmd = s.sentence.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.prof == nil {
		return s, nil
	}

	switch s.ph {
	case phaseFront:
		switch key {
		case "esc":
			return s, s.finishSession()
		case "space", " ", "enter":
			s.ph = phaseBack
		}
		return s, nil

	case phaseBack:
		switch key {
		case "esc":
			return s, s.finishSession()
		case "1":
			return s.gradeCard(srs.GradeFail)
		case "2":
			return s.gradeCard(srs.GradeHard)
		case "3":
			return s.gradeCard(srs.GradeEasy)
		case "m", "M":
			return s.requestMnemonic()
		case "w", "W":
			return s.startSentence()
		}
		return s, nil

	case phaseSentence:
		switch key {
		case "esc":
			s.ph = phaseBack
			s.evalResult = nil
			return s, nil
		case "enter":
			return s.submitSentence()
		}
		var cmd tea.Cmd
		s.sentence, cmd = s.sentence.Update(msg)
		return s, cmd
	}

	return s, nil
}

// gradeCard applies the grade, logs it, and advances the queue.
func (s *Screen) gradeCard(grade srs.Grade) (screen.Screen, tea.Cmd) {
	card, ok := s.currentCard()
	if !ok {
		return s, s.finishSession()
	}

	now := time.Now()
	res, err := s.prof.Reviews.Grade(card.ID, grade, now)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.gradeCounts[grade]++
	s.lastLabel = res.IntervalLabel

	// An easy recall counts the word as learned for cluster mastery.
	if grade == srs.GradeEasy {
		s.prof.Clusters.MarkLearned(card.Word)
	}

	_ = s.eventRepo.AppendReviewEvent(context.Background(), store.ReviewEventData{
		CardID:          card.ID,
		Grade:           string(grade),
		IntervalMinutes: res.State.IntervalMinutes,
		EaseFactor:      res.State.EaseFactor,
	})

	s.pos++
	s.ph = phaseFront
	s.mnemonic = nil
	s.evalResult = nil
	if s.pos >= len(s.queue) {
		return s, s.finishSession()
	}
	return s, nil
}

func (s *Screen) requestMnemonic() (screen.Screen, tea.Cmd) {
	if s.evaluator == nil || s.genPending || s.mnemonic != nil {
		return s, nil
	}
	card, ok := s.currentCard()
	if !ok {
		return s, nil
	}
	s.genPending = true
	ev := s.evaluator
	return s, func() tea.Msg {
		result, err := ev.GenerateMnemonic(context.Background(), card.Word, card.Definition, card.PartOfSpeech, card.Etymology)
		if err != nil {
			result = evaluate.FallbackMnemonic(card.Word)
		}
		return mnemonicMsg{CardID: card.ID, Result: result}
	}
}

func (s *Screen) startSentence() (screen.Screen, tea.Cmd) {
	if s.evaluator == nil {
		return s, nil
	}
	card, ok := s.currentCard()
	if !ok {
		return s, nil
	}
	s.ph = phaseSentence
	s.evalResult = nil
	s.sentence = components.NewTextInput("Use \""+card.Word+"\" in a sentence...", 200)
	return s, s.sentence.Init()
}

func (s *Screen) submitSentence() (screen.Screen, tea.Cmd) {
	if s.evalPending || s.sentence.Value() == "" {
		return s, nil
	}
	card, ok := s.currentCard()
	if !ok {
		return s, nil
	}
	s.evalPending = true
	ev := s.evaluator
	text := s.sentence.Value()
	return s, func() tea.Msg {
		result, err := ev.EvaluateSentence(context.Background(), card.Word, card.Definition, text)
		if err != nil {
			result = evaluate.FallbackSentenceResult(card.Word)
		}
		return sentenceEvalMsg{CardID: card.ID, Result: result}
	}
}

// finishSession saves state and shows the recap.
func (s *Screen) finishSession() tea.Cmd {
	return func() tea.Msg {
		if s.prof == nil {
			return savedMsg{}
		}
		err := s.prof.Save(context.Background(), s.snapRepo)
		return savedMsg{Err: err}
	}
}

func (s *Screen) handleSaved(msg savedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.ph = phaseDone

	reviewed := s.gradeCounts[srs.GradeFail] + s.gradeCounts[srs.GradeHard] + s.gradeCounts[srs.GradeEasy]
	if reviewed == 0 {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New("Study Summary", s.summaryLines(reviewed)),
		}
	}
}
