package skills

import "testing"

func TestGet_Known(t *testing.T) {
	s, err := Get("TC-CON")
	if err != nil {
		t.Fatalf("Get(TC-CON) error: %v", err)
	}
	if s.Name != "Contrast Signals" {
		t.Errorf("Name = %q, want Contrast Signals", s.Name)
	}
	if s.Category != CategoryTextCompletion {
		t.Errorf("Category = %q, want text_completion", s.Category)
	}
}

func TestGet_Unknown(t *testing.T) {
	if _, err := Get("RC-NOPE"); err == nil {
		t.Error("expected error for unknown skill")
	}
}

func TestByCategory_SortedAndComplete(t *testing.T) {
	rc := ByCategory(CategoryReadingComp)
	if len(rc) != 8 {
		t.Fatalf("got %d RC skills, want 8", len(rc))
	}
	for i := 1; i < len(rc); i++ {
		if rc[i-1].ID >= rc[i].ID {
			t.Errorf("skills not sorted: %s before %s", rc[i-1].ID, rc[i].ID)
		}
	}
}

func TestAll_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range All() {
		if seen[s.ID] {
			t.Errorf("duplicate skill ID %s", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestIsTrap(t *testing.T) {
	s, err := Get("TRAP-EXT")
	if err != nil {
		t.Fatal(err)
	}
	if !s.IsTrap() {
		t.Error("TRAP-EXT should be a trap skill")
	}
	s, _ = Get("SE-SYN")
	if s.IsTrap() {
		t.Error("SE-SYN should not be a trap skill")
	}
}

func TestDisplayName_FallsBackToID(t *testing.T) {
	if got := DisplayName("XX-UNKNOWN"); got != "XX-UNKNOWN" {
		t.Errorf("DisplayName = %q, want XX-UNKNOWN", got)
	}
	if got := DisplayName("RC-INF"); got != "Inference Questions" {
		t.Errorf("DisplayName = %q, want Inference Questions", got)
	}
}
