package mistakes

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/aeroSapphire/greprep/internal/llm"
	"github.com/aeroSapphire/greprep/internal/question"
	"github.com/aeroSapphire/greprep/internal/store"
)

func seQuestion() *question.Question {
	return &question.Question{
		ID:     "se-1",
		Type:   question.TypeSentenceEquivalence,
		Prompt: "The critic's review was so ___ that even the director's allies found it hard to defend the film.",
		Options: []question.Option{
			{ID: "a", Text: "scathing", Correct: true},
			{ID: "b", Text: "caustic", Correct: true},
			{ID: "c", Text: "tepid"},
			{ID: "d", Text: "laudatory"},
			{ID: "e", Text: "ambivalent"},
			{ID: "f", Text: "prolix"},
		},
		MultiSelect: true,
		Difficulty:  3,
		SkillIDs:    []string{"se-synonym-pairs"},
	}
}

func tcQuestion() *question.Question {
	return &question.Question{
		ID:     "tc-1",
		Type:   question.TypeTextCompletion,
		Prompt: "Far from being ___, the senator's remarks were carefully rehearsed.",
		Options: []question.Option{
			{ID: "a", Text: "extemporaneous", Correct: true},
			{ID: "b", Text: "scripted"},
			{ID: "c", Text: "tedious"},
			{ID: "d", Text: "incisive"},
			{ID: "e", Text: "conciliatory"},
		},
		Difficulty: 3,
		SkillIDs:   []string{"tc-contrast-cues"},
	}
}

func TestRushGuessRule(t *testing.T) {
	input := &ClassifyInput{Question: tcQuestion(), Selected: []string{"b"}, ResponseTimeMs: 900}
	label, conf, name := RunRules(DefaultRules(), input)
	if label != LabelEliminationFailure {
		t.Errorf("label = %q, want %q", label, LabelEliminationFailure)
	}
	if conf == 0 || name != "rush-guess" {
		t.Errorf("conf = %f, name = %q", conf, name)
	}
}

func TestRushGuessNeedsResponseTime(t *testing.T) {
	// Zero response time means "not measured", not "instant".
	input := &ClassifyInput{Question: tcQuestion(), Selected: []string{"b"}, ResponseTimeMs: 0}
	if label, _, _ := RunRules(DefaultRules(), input); label != "" {
		t.Errorf("label = %q, want no match", label)
	}
}

func TestPartialPairRule(t *testing.T) {
	// One of the correct pair plus a distractor.
	input := &ClassifyInput{Question: seQuestion(), Selected: []string{"a", "e"}, ResponseTimeMs: 12000}
	label, _, name := RunRules(DefaultRules(), input)
	if label != LabelPartialSynonymTrap {
		t.Errorf("label = %q, want %q", label, LabelPartialSynonymTrap)
	}
	if name != "partial-pair" {
		t.Errorf("name = %q, want partial-pair", name)
	}
}

func TestPartialPairIgnoresTotalMiss(t *testing.T) {
	input := &ClassifyInput{Question: seQuestion(), Selected: []string{"c", "d"}, ResponseTimeMs: 12000}
	if label, _, _ := RunRules(DefaultRules(), input); label != "" {
		t.Errorf("label = %q, want no match for zero correct picks", label)
	}
}

func TestPartialPairSkipsTextCompletion(t *testing.T) {
	input := &ClassifyInput{Question: tcQuestion(), Selected: []string{"b"}, ResponseTimeMs: 12000}
	if label, _, _ := RunRules(DefaultRules(), input); label != "" {
		t.Errorf("label = %q, want no match on TC", label)
	}
}

func TestLLMClassifier(t *testing.T) {
	resp := json.RawMessage(`{"label":"POLARITY_ERROR","explanation":"The phrase 'far from being' reverses the blank's direction."}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	c := NewLLMClassifier(mock, DefaultClassifierConfig())

	input := &ClassifyInput{Question: tcQuestion(), Selected: []string{"b"}, ResponseTimeMs: 15000}
	result, err := c.Classify(context.Background(), input)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if result.Label != LabelPolarityError {
		t.Errorf("label = %q, want %q", result.Label, LabelPolarityError)
	}
	if result.Source != "llm" {
		t.Errorf("source = %q, want llm", result.Source)
	}
}

func TestLLMClassifierCaches(t *testing.T) {
	resp := json.RawMessage(`{"label":"CONTEXT_MISREAD","explanation":"x"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	c := NewLLMClassifier(mock, DefaultClassifierConfig())

	input := &ClassifyInput{Question: tcQuestion(), Selected: []string{"b"}, ResponseTimeMs: 15000}
	if _, err := c.Classify(context.Background(), input); err != nil {
		t.Fatalf("first Classify failed: %v", err)
	}

	// Same input again: must hit the cache, not the (now empty) provider.
	result, err := c.Classify(context.Background(), input)
	if err != nil {
		t.Fatalf("second Classify failed: %v", err)
	}
	if result.Label != LabelContextMisread {
		t.Errorf("label = %q, want cached %q", result.Label, LabelContextMisread)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestLLMClassifierUnknownLabel(t *testing.T) {
	resp := json.RawMessage(`{"label":"MADE_UP","explanation":"x"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	c := NewLLMClassifier(mock, DefaultClassifierConfig())

	input := &ClassifyInput{Question: tcQuestion(), Selected: []string{"b"}, ResponseTimeMs: 15000}
	result, err := c.Classify(context.Background(), input)
	if err == nil {
		t.Fatal("expected error for unknown label")
	}
	if result.Label != LabelEliminationFailure || result.Source != "fallback" {
		t.Errorf("result = %+v, want elimination-failure fallback", result)
	}
}

func TestLLMClassifierProviderError(t *testing.T) {
	mock := llm.NewMockProvider()
	c := NewLLMClassifier(mock, DefaultClassifierConfig())

	input := &ClassifyInput{Question: tcQuestion(), Selected: []string{"b"}, ResponseTimeMs: 15000}
	result, err := c.Classify(context.Background(), input)
	if err == nil {
		t.Fatal("expected error from empty mock provider")
	}
	if result == nil || result.Label != LabelEliminationFailure {
		t.Errorf("result = %+v, want elimination-failure fallback", result)
	}
}

func TestInputHashOrderInsensitive(t *testing.T) {
	a := &ClassifyInput{Question: seQuestion(), Selected: []string{"a", "e"}}
	b := &ClassifyInput{Question: seQuestion(), Selected: []string{"e", "a"}}
	if inputHash(a) != inputHash(b) {
		t.Error("hash should ignore selection order")
	}

	c := &ClassifyInput{Question: seQuestion(), Selected: []string{"a", "f"}}
	if inputHash(a) == inputHash(c) {
		t.Error("different selections must hash differently")
	}
}

func TestBuildClassifyMessage(t *testing.T) {
	input := &ClassifyInput{Question: seQuestion(), Selected: []string{"a", "e"}}
	msg, err := buildClassifyMessage(input)
	if err != nil {
		t.Fatalf("buildClassifyMessage failed: %v", err)
	}
	for _, want := range []string{"scathing", "POLARITY_ERROR", "ELIMINATION_FAILURE", "a, e"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Contains(msg, "- NONE:") {
		t.Error("NONE should not be listed as a pickable taxonomy row")
	}
}

func TestServiceRulesBeforeLLM(t *testing.T) {
	mock := llm.NewMockProvider() // Would error if reached.
	s := NewService(mock, nil)

	input := &ClassifyInput{Question: tcQuestion(), Selected: []string{"b"}, ResponseTimeMs: 500}
	result := s.Classify(context.Background(), input)
	if result.Label != LabelEliminationFailure {
		t.Errorf("label = %q, want %q", result.Label, LabelEliminationFailure)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider calls = %d, want 0 (rule should short-circuit)", mock.CallCount())
	}
	if len(s.History()) != 1 {
		t.Errorf("history length = %d, want 1", len(s.History()))
	}
}

func TestServiceWithoutProvider(t *testing.T) {
	s := NewService(nil, nil)
	input := &ClassifyInput{Question: tcQuestion(), Selected: []string{"b"}, ResponseTimeMs: 15000}
	result := s.Classify(context.Background(), input)
	if result.Label != LabelNone {
		t.Errorf("label = %q, want %q without a provider", result.Label, LabelNone)
	}
	if len(s.History()) != 0 {
		t.Error("NONE results should not enter the history")
	}
}

func TestDominantMistake(t *testing.T) {
	now := time.Now()
	var history []Event
	// Six fresh polarity errors and a scattering of others.
	for i := 0; i < 6; i++ {
		history = append(history, Event{Label: LabelPolarityError, At: now.Add(-time.Hour)})
	}
	history = append(history,
		Event{Label: LabelScopeError, At: now.Add(-time.Hour)},
		Event{Label: LabelContextMisread, At: now.Add(-48 * time.Hour)},
	)

	label, ok := DominantMistake(history, now)
	if !ok || label != LabelPolarityError {
		t.Fatalf("dominant = %q, %v; want POLARITY_ERROR, true", label, ok)
	}
	if DailyNudge(history, now) != NudgeMessages[LabelPolarityError] {
		t.Error("nudge should use the dominant label's message")
	}
}

func TestDominantMistakeNeedsCount(t *testing.T) {
	now := time.Now()
	history := []Event{
		{Label: LabelPolarityError, At: now},
		{Label: LabelPolarityError, At: now},
		{Label: LabelPolarityError, At: now},
		{Label: LabelPolarityError, At: now},
	}
	if _, ok := DominantMistake(history, now); ok {
		t.Error("four occurrences should not clear the five-count gate")
	}
}

func TestDominantMistakeAgeWeighting(t *testing.T) {
	now := time.Now()
	var history []Event
	// Five stale scope errors: count clears the gate, but at weight 0.3
	// each they carry 1.5 of the total.
	for i := 0; i < 5; i++ {
		history = append(history, Event{Label: LabelScopeError, At: now.Add(-100 * time.Hour)})
	}
	// Fresh noise across other labels pushes the stale share below 25%.
	for i := 0; i < 5; i++ {
		history = append(history, Event{Label: LabelPolarityError, At: now.Add(-time.Hour)})
	}
	// total = 1.5 + 5.0 = 6.5; scope share ≈ 0.23, polarity share ≈ 0.77.
	label, ok := DominantMistake(history, now)
	if !ok || label != LabelPolarityError {
		t.Fatalf("dominant = %q, %v; want fresh POLARITY_ERROR to win", label, ok)
	}
}

func TestServiceSnapshotRoundTrip(t *testing.T) {
	s := NewService(nil, nil)
	input := &ClassifyInput{Question: tcQuestion(), Selected: []string{"b"}, ResponseTimeMs: 500}
	s.Classify(context.Background(), input)
	s.Classify(context.Background(), input)

	data := s.SnapshotData()
	if len(data) != 2 {
		t.Fatalf("snapshot events = %d, want 2", len(data))
	}

	restored := NewService(nil, &store.SnapshotData{Mistakes: data})
	if len(restored.History()) != 2 {
		t.Fatalf("restored events = %d, want 2", len(restored.History()))
	}
	if restored.History()[0].Label != LabelEliminationFailure {
		t.Errorf("restored label = %q", restored.History()[0].Label)
	}
}

func TestDominantMistakeEmptyHistory(t *testing.T) {
	if _, ok := DominantMistake(nil, time.Now()); ok {
		t.Error("empty history should have no dominant mistake")
	}
	if DailyNudge(nil, time.Now()) != "" {
		t.Error("empty history should produce no nudge")
	}
}
