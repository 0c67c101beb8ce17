package cluster

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// DefaultDrillCount is how many drills a session asks for.
const DefaultDrillCount = 8

// DrillAnswer records the learner's response to one drill.
type DrillAnswer struct {
	DrillID  string
	Selected []string
	Correct  bool
	Words    []string
}

// Session is one drill run through a single cluster.
type Session struct {
	ClusterID   string
	ClusterName string
	Drills      []Drill
	Answers     []DrillAnswer
	StartedAt   time.Time

	matrix *Matrix
}

// NewSession picks up to count drills from the cluster, covering each
// drill type at least once before filling from the shuffled remainder.
// Wrong answers are fed into matrix when it is non-nil.
func NewSession(c *Cluster, count int, matrix *Matrix, rng *rand.Rand) *Session {
	if count <= 0 {
		count = DefaultDrillCount
	}

	pool := make([]Drill, len(c.Drills))
	copy(pool, c.Drills)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	var selected []Drill
	picked := make(map[string]bool)
	seenType := make(map[DrillType]bool)

	for _, d := range pool {
		if len(selected) >= count {
			break
		}
		if seenType[d.Type] {
			continue
		}
		seenType[d.Type] = true
		picked[d.ID] = true
		selected = append(selected, d)
	}
	for _, d := range pool {
		if len(selected) >= count {
			break
		}
		if picked[d.ID] {
			continue
		}
		picked[d.ID] = true
		selected = append(selected, d)
	}

	return &Session{
		ClusterID:   c.ID,
		ClusterName: c.Name,
		Drills:      selected,
		StartedAt:   time.Now(),
		matrix:      matrix,
	}
}

// Current returns the next unanswered drill, or nil when the session
// is complete.
func (s *Session) Current() *Drill {
	if len(s.Answers) >= len(s.Drills) {
		return nil
	}
	return &s.Drills[len(s.Answers)]
}

// Submit scores the learner's selection against the current drill and
// records the answer. Sibling-word misses feed the confusion matrix.
func (s *Session) Submit(selected []string) (bool, error) {
	drill := s.Current()
	if drill == nil {
		return false, fmt.Errorf("cluster: session already complete")
	}

	correct := ScoreDrill(drill, selected)
	s.Answers = append(s.Answers, DrillAnswer{
		DrillID:  drill.ID,
		Selected: append([]string(nil), selected...),
		Correct:  correct,
		Words:    drill.Words,
	})

	if !correct && s.matrix != nil {
		s.recordConfusions(drill, selected)
	}
	return correct, nil
}

// recordConfusions maps wrongly chosen options back to cluster words.
func (s *Session) recordConfusions(drill *Drill, selected []string) {
	correctSet := make(map[string]bool, len(drill.Answer))
	for _, id := range drill.Answer {
		correctSet[id] = true
	}
	correctWord := ""
	if len(drill.Answer) == 1 {
		correctWord = optionText(drill, drill.Answer[0])
	}
	if correctWord == "" {
		return
	}
	for _, id := range selected {
		if correctSet[id] {
			continue
		}
		chosen := optionText(drill, id)
		if chosen != "" {
			s.matrix.Record(correctWord, chosen)
		}
	}
}

func optionText(drill *Drill, optionID string) string {
	for _, o := range drill.Options {
		if o.ID == optionID {
			return o.Text
		}
	}
	return ""
}

// ScoreDrill compares a selection against the drill's answer key.
// Ordering drills require the exact sequence; otherwise the selection
// must match the key as a set.
func ScoreDrill(drill *Drill, selected []string) bool {
	if len(selected) != len(drill.Answer) {
		return false
	}
	if drill.Ordered {
		for i, id := range drill.Answer {
			if selected[i] != id {
				return false
			}
		}
		return true
	}
	want := make(map[string]bool, len(drill.Answer))
	for _, id := range drill.Answer {
		want[id] = true
	}
	for _, id := range selected {
		if !want[id] {
			return false
		}
		delete(want, id)
	}
	return len(want) == 0
}

// TypeStats is the per-drill-type score in a session summary.
type TypeStats struct {
	Total   int
	Correct int
}

// Summary is the end-of-session report.
type Summary struct {
	ClusterID string
	Total     int
	Correct   int
	Accuracy  float64
	ByType    map[DrillType]*TypeStats
	Struggled []string
}

// Summarize computes the session report from the recorded answers.
func (s *Session) Summarize() Summary {
	sum := Summary{
		ClusterID: s.ClusterID,
		Total:     len(s.Answers),
		ByType:    make(map[DrillType]*TypeStats),
	}

	struggled := make(map[string]bool)
	for i, ans := range s.Answers {
		if i >= len(s.Drills) {
			break
		}
		drill := s.Drills[i]
		ts := sum.ByType[drill.Type]
		if ts == nil {
			ts = &TypeStats{}
			sum.ByType[drill.Type] = ts
		}
		ts.Total++
		if ans.Correct {
			ts.Correct++
			sum.Correct++
		} else {
			for _, w := range ans.Words {
				struggled[w] = true
			}
		}
	}
	if sum.Total > 0 {
		sum.Accuracy = float64(sum.Correct) / float64(sum.Total)
	}
	for w := range struggled {
		sum.Struggled = append(sum.Struggled, w)
	}
	sort.Strings(sum.Struggled)
	return sum
}

// Results converts the session's answers to drill history entries.
func (s *Session) Results(at time.Time) []DrillResult {
	out := make([]DrillResult, 0, len(s.Answers))
	for _, ans := range s.Answers {
		out = append(out, DrillResult{
			ClusterID: s.ClusterID,
			DrillID:   ans.DrillID,
			Correct:   ans.Correct,
			Timestamp: at,
			Words:     append([]string(nil), ans.Words...),
		})
	}
	return out
}
