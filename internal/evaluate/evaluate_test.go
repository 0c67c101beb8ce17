package evaluate

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aeroSapphire/greprep/internal/llm"
)

func TestEvaluateSentence_Correct(t *testing.T) {
	resp := json.RawMessage(`{"is_correct":true,"feedback":"Nice — the sentence shows the word in its weakening sense.","suggestion":null}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	e := NewEvaluator(mock, DefaultConfig())

	result, err := e.EvaluateSentence(context.Background(), "enervate", "to weaken or drain of energy", "The heat enervated the hikers.")
	if err != nil {
		t.Fatalf("EvaluateSentence failed: %v", err)
	}
	if !result.Correct {
		t.Error("result should be correct")
	}
	if result.Suggestion != "" {
		t.Errorf("suggestion = %q, want empty", result.Suggestion)
	}
}

func TestEvaluateSentence_IncorrectWithSuggestion(t *testing.T) {
	resp := json.RawMessage(`{"is_correct":false,"feedback":"Enervate means to weaken, not to excite.","suggestion":"The long meeting enervated everyone in the room."}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	e := NewEvaluator(mock, DefaultConfig())

	result, err := e.EvaluateSentence(context.Background(), "enervate", "to weaken or drain of energy", "The concert enervated the crowd into a frenzy.")
	if err != nil {
		t.Fatalf("EvaluateSentence failed: %v", err)
	}
	if result.Correct {
		t.Error("result should be incorrect")
	}
	if result.Suggestion == "" {
		t.Error("expected a suggestion for an incorrect sentence")
	}
}

func TestEvaluateSentence_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // Empty queue → ErrProviderUnavailable
	e := NewEvaluator(mock, DefaultConfig())

	result, err := e.EvaluateSentence(context.Background(), "venal", "open to bribery", "He was venal.")
	if err == nil {
		t.Fatal("expected error from empty mock provider")
	}
	if result == nil {
		t.Fatal("expected fallback result alongside error")
	}
	if result.Correct {
		t.Error("fallback must not claim the sentence is correct")
	}
	if !strings.Contains(result.Feedback, "venal") {
		t.Errorf("fallback feedback should name the word, got %q", result.Feedback)
	}
}

func TestEvaluateSentence_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	e := NewEvaluator(mock, DefaultConfig())

	result, err := e.EvaluateSentence(context.Background(), "venal", "open to bribery", "He was venal.")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if result == nil || result.Correct {
		t.Error("expected non-correct fallback result")
	}
}

func TestEvaluateSentence_EmptyFeedbackRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"is_correct":true,"feedback":"","suggestion":null}`)})
	e := NewEvaluator(mock, DefaultConfig())

	_, err := e.EvaluateSentence(context.Background(), "venal", "open to bribery", "He was venal.")
	if err == nil {
		t.Fatal("expected invalid-response error for empty feedback")
	}
}

func TestEvaluateSentence_PromptContents(t *testing.T) {
	resp := json.RawMessage(`{"is_correct":true,"feedback":"ok","suggestion":null}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	e := NewEvaluator(mock, DefaultConfig())

	_, err := e.EvaluateSentence(context.Background(), "flout", "to openly disregard", "She flouted the dress code.")
	if err != nil {
		t.Fatalf("EvaluateSentence failed: %v", err)
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema != SentenceSchema {
		t.Error("request should carry the sentence schema")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"flout", "openly disregard", "dress code"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestGenerateMnemonic(t *testing.T) {
	resp := json.RawMessage(`{"mnemonic":"FLOUT sounds like FLOUT-OUT: you loudly shout OUT your refusal to follow the rule.","technique":"SOUND","explanation":"Ties the word's sound to open defiance."}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	e := NewEvaluator(mock, DefaultConfig())

	result, err := e.GenerateMnemonic(context.Background(), "flout", "to openly disregard", "verb", "")
	if err != nil {
		t.Fatalf("GenerateMnemonic failed: %v", err)
	}
	if result.Technique != "SOUND" {
		t.Errorf("technique = %q, want SOUND", result.Technique)
	}
	if result.Mnemonic == "" || result.Explanation == "" {
		t.Error("mnemonic and explanation should be populated")
	}
}

func TestGenerateMnemonic_UnknownTechniqueDefaults(t *testing.T) {
	resp := json.RawMessage(`{"mnemonic":"Think of a vein of gold: venal officials follow the money.","technique":"RHYME","explanation":"x"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	e := NewEvaluator(mock, DefaultConfig())

	result, err := e.GenerateMnemonic(context.Background(), "venal", "open to bribery", "", "")
	if err != nil {
		t.Fatalf("GenerateMnemonic failed: %v", err)
	}
	if result.Technique != TechniqueAssociation {
		t.Errorf("technique = %q, want %q", result.Technique, TechniqueAssociation)
	}
}

func TestGenerateMnemonic_FallbackOnError(t *testing.T) {
	mock := llm.NewMockProvider()
	e := NewEvaluator(mock, DefaultConfig())

	result, err := e.GenerateMnemonic(context.Background(), "venal", "open to bribery", "", "")
	if err == nil {
		t.Fatal("expected error from empty mock provider")
	}
	if result == nil || result.Mnemonic == "" {
		t.Fatal("expected non-empty fallback mnemonic")
	}
	if result.Technique != TechniqueAssociation {
		t.Errorf("fallback technique = %q, want %q", result.Technique, TechniqueAssociation)
	}
}

func TestBuildMnemonicMessage_OptionalFields(t *testing.T) {
	msg, err := buildMnemonicMessage("eminent", "famous and respected", "adjective", "Latin eminere, to stand out")
	if err != nil {
		t.Fatalf("buildMnemonicMessage failed: %v", err)
	}
	if !strings.Contains(msg, "Part of speech: adjective") {
		t.Error("message should include part of speech when given")
	}
	if !strings.Contains(msg, "eminere") {
		t.Error("message should include etymology when given")
	}

	msg, err = buildMnemonicMessage("eminent", "famous and respected", "", "")
	if err != nil {
		t.Fatalf("buildMnemonicMessage failed: %v", err)
	}
	if strings.Contains(msg, "Part of speech") || strings.Contains(msg, "Etymology") {
		t.Errorf("message should omit empty optional fields:\n%s", msg)
	}
}
