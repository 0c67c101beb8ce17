// Package drill runs confusion-cluster drill sessions: short exercise
// runs over a single group of commonly mixed-up words, feeding the
// confusion matrix and cluster mastery.
package drill

import (
	"context"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/aeroSapphire/greprep/internal/cluster"
	"github.com/aeroSapphire/greprep/internal/llm"
	"github.com/aeroSapphire/greprep/internal/profile"
	"github.com/aeroSapphire/greprep/internal/router"
	"github.com/aeroSapphire/greprep/internal/screen"
	"github.com/aeroSapphire/greprep/internal/screens/summary"
	"github.com/aeroSapphire/greprep/internal/store"
	"github.com/aeroSapphire/greprep/internal/ui/components"
	"github.com/aeroSapphire/greprep/internal/ui/layout"
)

// Screen runs one drill session over a single cluster.
type Screen struct {
	clusterID string
	eventRepo store.EventRepo
	snapRepo  store.SnapshotRepo
	provider  llm.Provider

	prof          *profile.Profile
	clu           *cluster.Cluster
	sess          *cluster.Session
	masteryBefore float64

	choices      components.ChoiceList
	lastOK       bool
	showFeedback bool
	quitConfirm  bool
	errMsg       string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a drill screen for the given cluster.
func New(clusterID string, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, provider llm.Provider) *Screen {
	return &Screen{
		clusterID: clusterID,
		eventRepo: eventRepo,
		snapRepo:  snapRepo,
		provider:  provider,
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.initSession()
}

func (s *Screen) Title() string {
	if s.clu != nil {
		return "Drill: " + s.clu.Name
	}
	return "Cluster Drill"
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
	case s.currentDrill() != nil && len(s.currentDrill().Answer) > 1:
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

func (s *Screen) currentDrill() *cluster.Drill {
	if s.sess == nil {
		return nil
	}
	return s.sess.Current()
}

func (s *Screen) initSession() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		prof, err := profile.Load(ctx, s.snapRepo, s.provider)
		if err != nil {
			return initDoneMsg{Err: err}
		}

		clu, err := cluster.Get(s.clusterID)
		if err != nil {
			return initDoneMsg{Err: err}
		}

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		sess := cluster.NewSession(clu, cluster.DefaultDrillCount, prof.Clusters.Matrix(), rng)

		return initDoneMsg{Profile: prof, Cluster: clu, Session: sess}
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
		s.clu = msg.Cluster
		s.sess = msg.Session
		s.masteryBefore = s.prof.Clusters.Mastery(s.clu, time.Now()).Overall
		s.loadCurrent()
		return s, nil

	case savedMsg:
		return s.handleSaved(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// loadCurrent builds the choice list for the next drill.
func (s *Screen) loadCurrent() {
	d := s.currentDrill()
	if d == nil {
		return
	}

	texts := make([]string, len(d.Options))
	for i, o := range d.Options {
		texts[i] = o.Text
	}
	correct := make(map[int]bool)
	for i, o := range d.Options {
		for _, id := range d.Answer {
			if o.ID == id {
				correct[i] = true
			}
		}
	}

	multi := len(d.Answer) > 1
	s.choices = components.NewChoiceList(texts, correct, multi, len(d.Answer))
	s.choices.Ordered = d.Ordered
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.sess == nil {
		return s, nil
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			return s, s.finishSession()
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if s.showFeedback {
		s.showFeedback = false
		if s.sess.Current() == nil {
			return s, s.finishSession()
		}
		s.loadCurrent()
		return s, nil
	}

	if key == "esc" {
		s.quitConfirm = true
		return s, nil
	}

	if s.currentDrill() == nil {
		return s, nil
	}

	var done bool
	s.choices, done = s.choices.Update(msg)
	if !done {
		return s, nil
	}
	return s.submitAnswer()
}

// submitAnswer scores the selection through the session, which also
// records any sibling-word confusion.
func (s *Screen) submitAnswer() (screen.Screen, tea.Cmd) {
	d := s.currentDrill()

	var selected []string
	for _, i := range s.choices.SelectedIndices() {
		selected = append(selected, d.Options[i].ID)
	}

	correct, err := s.sess.Submit(selected)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.lastOK = correct
	s.showFeedback = true

	_ = s.eventRepo.AppendDrillEvent(context.Background(), store.DrillEventData{
		ClusterID: s.clu.ID,
		DrillID:   d.ID,
		DrillType: string(d.Type),
		Correct:   correct,
		Words:     d.Words,
	})

	return s, nil
}

// finishSession folds the results into cluster mastery and persists.
func (s *Screen) finishSession() tea.Cmd {
	return func() tea.Msg {
		s.prof.Clusters.RecordResults(s.sess.Results(time.Now()))
		if err := s.prof.Save(context.Background(), s.snapRepo); err != nil {
			return savedMsg{Err: err}
		}
		return savedMsg{}
	}
}

func (s *Screen) handleSaved(msg savedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	sum := s.sess.Summarize()
	if sum.Total == 0 {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	lines := s.summaryLines(sum)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New("Drill Summary", lines),
		}
	}
}
