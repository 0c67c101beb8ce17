package vocab

import (
	"fmt"
	"sort"
	"strings"
)

// registry holds the seeded deck with precomputed indexes.
type registry struct {
	cards  []Card
	byID   map[string]*Card
	byWord map[string]*Card
}

// reg is the package-level registry singleton, set by init() in seed.go.
var reg *registry

func buildRegistry(cards []Card) *registry {
	r := &registry{
		cards:  cards,
		byID:   make(map[string]*Card, len(cards)),
		byWord: make(map[string]*Card, len(cards)),
	}
	for i := range r.cards {
		c := &r.cards[i]
		if _, dup := r.byID[c.ID]; dup {
			panic(fmt.Sprintf("vocab: duplicate card ID %q", c.ID))
		}
		r.byID[c.ID] = c
		r.byWord[strings.ToLower(c.Word)] = c
	}
	return r
}

// Get returns the card with the given ID.
func Get(id string) (Card, error) {
	c, ok := reg.byID[id]
	if !ok {
		return Card{}, fmt.Errorf("unknown card %q", id)
	}
	return *c, nil
}

// ByWord returns the card for a word, matching case-insensitively.
func ByWord(word string) (Card, bool) {
	c, ok := reg.byWord[strings.ToLower(word)]
	if !ok {
		return Card{}, false
	}
	return *c, true
}

// All returns every card sorted by ID.
func All() []Card {
	out := append([]Card(nil), reg.cards...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Count returns the deck size.
func Count() int {
	return len(reg.cards)
}
