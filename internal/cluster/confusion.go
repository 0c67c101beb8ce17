package cluster

import "sort"

// confusionSaturation is the count at which a word's confusion score
// pins to 1.
const confusionSaturation = 10

// Matrix counts directed confusions between words. counts[a][b] = 3
// means the learner picked b three times when a was correct.
type Matrix struct {
	counts map[string]map[string]int
}

// NewMatrix returns an empty confusion matrix.
func NewMatrix() *Matrix {
	return &Matrix{counts: make(map[string]map[string]int)}
}

// Record notes one confusion: chosen was picked when correct was right.
func (m *Matrix) Record(correct, chosen string) {
	if correct == "" || chosen == "" || correct == chosen {
		return
	}
	row := m.counts[correct]
	if row == nil {
		row = make(map[string]int)
		m.counts[correct] = row
	}
	row[chosen]++
}

// Count returns the directed confusion count from correct to chosen.
func (m *Matrix) Count(correct, chosen string) int {
	return m.counts[correct][chosen]
}

// WordConfusion is a confused-with entry for a single word.
type WordConfusion struct {
	Word  string
	Count int
}

// TopConfusions returns the words most often picked in place of word,
// highest count first.
func (m *Matrix) TopConfusions(word string, limit int) []WordConfusion {
	row := m.counts[word]
	if len(row) == 0 {
		return nil
	}
	out := make([]WordConfusion, 0, len(row))
	for w, c := range row {
		out = append(out, WordConfusion{Word: w, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// ConfusedPair is an unordered word pair with both directions summed.
type ConfusedPair struct {
	WordA string
	WordB string
	Count int
}

// MostConfusedPairs returns the pairs with the highest combined counts
// across both directions.
func (m *Matrix) MostConfusedPairs(limit int) []ConfusedPair {
	seen := make(map[[2]string]bool)
	var pairs []ConfusedPair

	for a, row := range m.counts {
		for b, count := range row {
			key := [2]string{a, b}
			if b < a {
				key = [2]string{b, a}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			pairs = append(pairs, ConfusedPair{
				WordA: key[0],
				WordB: key[1],
				Count: count + m.counts[b][a],
			})
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		if pairs[i].WordA != pairs[j].WordA {
			return pairs[i].WordA < pairs[j].WordA
		}
		return pairs[i].WordB < pairs[j].WordB
	})
	if limit > 0 && len(pairs) > limit {
		pairs = pairs[:limit]
	}
	return pairs
}

// Score normalizes a word's total outgoing confusions to [0,1]; it
// saturates at confusionSaturation occurrences.
func (m *Matrix) Score(word string) float64 {
	total := 0
	for _, c := range m.counts[word] {
		total += c
	}
	if total >= confusionSaturation {
		return 1
	}
	return float64(total) / confusionSaturation
}

// HasConfusion reports whether the pair has been confused in either
// direction.
func (m *Matrix) HasConfusion(a, b string) bool {
	return m.counts[a][b] > 0 || m.counts[b][a] > 0
}

// ActivePairsWithin counts unordered confused pairs where both words
// belong to the given word set.
func (m *Matrix) ActivePairsWithin(words []string) int {
	in := make(map[string]bool, len(words))
	for _, w := range words {
		in[w] = true
	}
	seen := make(map[[2]string]bool)
	active := 0
	for a, row := range m.counts {
		if !in[a] {
			continue
		}
		for b, count := range row {
			if !in[b] || count == 0 {
				continue
			}
			key := [2]string{a, b}
			if b < a {
				key = [2]string{b, a}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			active++
		}
	}
	return active
}

// Counts exports the raw directed counts for persistence.
func (m *Matrix) Counts() map[string]map[string]int {
	out := make(map[string]map[string]int, len(m.counts))
	for a, row := range m.counts {
		cp := make(map[string]int, len(row))
		for b, c := range row {
			cp[b] = c
		}
		out[a] = cp
	}
	return out
}

// LoadCounts replaces the matrix contents with persisted counts.
func (m *Matrix) LoadCounts(counts map[string]map[string]int) {
	m.counts = make(map[string]map[string]int, len(counts))
	for a, row := range counts {
		cp := make(map[string]int, len(row))
		for b, c := range row {
			if c > 0 {
				cp[b] = c
			}
		}
		if len(cp) > 0 {
			m.counts[a] = cp
		}
	}
}
