package cluster

import (
	"sort"
	"time"

	"github.com/aeroSapphire/greprep/internal/store"
)

// Service owns the learner's cluster state: learned words, drill
// history and the confusion matrix.
type Service struct {
	learned map[string]bool
	history []DrillResult
	matrix  *Matrix
}

// NewService creates a cluster service, loading state from the snapshot.
func NewService(snap *store.SnapshotData) *Service {
	s := &Service{
		learned: make(map[string]bool),
		matrix:  NewMatrix(),
	}
	if snap == nil {
		return s
	}

	for _, w := range snap.LearnedWords {
		s.learned[w] = true
	}
	if snap.Confusion != nil {
		s.matrix.LoadCounts(snap.Confusion.Counts)
	}
	if snap.Drills != nil {
		for _, rd := range snap.Drills.Results {
			if rd == nil {
				continue
			}
			r := DrillResult{
				ClusterID: rd.ClusterID,
				DrillID:   rd.DrillID,
				Correct:   rd.Correct,
				Words:     append([]string(nil), rd.Words...),
			}
			if t, err := time.Parse(time.RFC3339, rd.Timestamp); err == nil {
				r.Timestamp = t
			}
			s.history = append(s.history, r)
		}
	}
	return s
}

// Matrix exposes the confusion matrix for session wiring and queries.
func (s *Service) Matrix() *Matrix {
	return s.matrix
}

// MarkLearned records that the learner knows a word.
func (s *Service) MarkLearned(word string) {
	if word != "" {
		s.learned[word] = true
	}
}

// IsLearned reports whether a word has been marked learned.
func (s *Service) IsLearned(word string) bool {
	return s.learned[word]
}

// RecordResults appends a finished session's drill outcomes.
func (s *Service) RecordResults(results []DrillResult) {
	s.history = append(s.history, results...)
}

// Mastery computes the current mastery breakdown for a cluster.
func (s *Service) Mastery(c *Cluster, now time.Time) MasteryData {
	return ComputeMastery(c, s.learned, s.history, s.matrix, now)
}

// AllMasteries computes mastery for every registered cluster.
func (s *Service) AllMasteries(now time.Time) []MasteryData {
	clusters := All()
	out := make([]MasteryData, 0, len(clusters))
	for _, c := range clusters {
		out = append(out, s.Mastery(c, now))
	}
	return out
}

// SnapshotData exports the cluster state for persistence.
func (s *Service) SnapshotData() (learnedWords []string, drills *store.DrillSnapshotData, confusion *store.ConfusionSnapshotData) {
	for w := range s.learned {
		learnedWords = append(learnedWords, w)
	}
	sort.Strings(learnedWords)

	drills = &store.DrillSnapshotData{}
	for _, r := range s.history {
		drills.Results = append(drills.Results, &store.DrillResultData{
			ClusterID: r.ClusterID,
			DrillID:   r.DrillID,
			Correct:   r.Correct,
			Timestamp: r.Timestamp.Format(time.RFC3339),
			Words:     append([]string(nil), r.Words...),
		})
	}

	confusion = &store.ConfusionSnapshotData{Counts: s.matrix.Counts()}
	return learnedWords, drills, confusion
}
