package vocab

import (
	"testing"

	"github.com/aeroSapphire/greprep/internal/cluster"
)

func TestGet_Known(t *testing.T) {
	c, err := Get("w-enervate")
	if err != nil {
		t.Fatalf("Get(w-enervate) error: %v", err)
	}
	if c.Word != "enervate" {
		t.Errorf("Word = %q, want enervate", c.Word)
	}
	if c.Definition == "" || c.Example == "" {
		t.Error("definition and example must be filled")
	}
}

func TestGet_Unknown(t *testing.T) {
	if _, err := Get("w-nope"); err == nil {
		t.Error("expected error for unknown card")
	}
}

func TestByWord_CaseInsensitive(t *testing.T) {
	c, ok := ByWord("Flout")
	if !ok {
		t.Fatal("ByWord(Flout) not found")
	}
	if c.ID != "w-flout" {
		t.Errorf("ID = %q, want w-flout", c.ID)
	}
	if _, ok := ByWord("notaword"); ok {
		t.Error("ByWord should miss on unknown words")
	}
}

func TestAll_SortedUnique(t *testing.T) {
	cards := All()
	if len(cards) != Count() {
		t.Fatalf("All() length %d != Count() %d", len(cards), Count())
	}
	seen := make(map[string]bool)
	for i, c := range cards {
		if seen[c.ID] {
			t.Errorf("duplicate card ID %s", c.ID)
		}
		seen[c.ID] = true
		if i > 0 && cards[i-1].ID >= c.ID {
			t.Errorf("cards not sorted: %s before %s", cards[i-1].ID, c.ID)
		}
	}
}

func TestDeckCoversClusterWords(t *testing.T) {
	// Every word in a confusion cluster must have a flashcard, so drills
	// and study share one vocabulary.
	for _, w := range cluster.AllWords() {
		if _, ok := ByWord(w); !ok {
			t.Errorf("cluster word %q has no flashcard", w)
		}
	}
}
