// Package evaluate wraps the LLM provider behind two narrow vocabulary
// helpers: judging a learner's own sentence and generating a mnemonic.
// Both decode the model output exactly once, at this boundary; callers
// never see raw JSON.
package evaluate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"text/template"
	"time"

	"github.com/aeroSapphire/greprep/internal/llm"
)

// Config holds tuning knobs for the evaluation helpers.
type Config struct {
	MaxTokens   int
	Temperature float64
	// Timeout bounds a single request; evaluation is interactive and
	// a slow answer is worse than no answer.
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   300,
		Temperature: 0.3,
		Timeout:     30 * time.Second,
	}
}

// Evaluator performs LLM-backed sentence evaluation and mnemonic generation.
type Evaluator struct {
	provider llm.Provider
	cfg      Config
}

// NewEvaluator creates an evaluator over the given provider.
func NewEvaluator(provider llm.Provider, cfg Config) *Evaluator {
	return &Evaluator{provider: provider, cfg: cfg}
}

// SentenceResult is the judgment of a learner-written sentence.
type SentenceResult struct {
	Correct    bool
	Feedback   string
	Suggestion string
}

// FallbackSentenceResult is the typed default callers should show when
// evaluation fails. It never claims the sentence is correct.
func FallbackSentenceResult(word string) *SentenceResult {
	return &SentenceResult{
		Correct:  false,
		Feedback: fmt.Sprintf("Could not evaluate your sentence right now. Check it yourself against the definition of %q.", word),
	}
}

// sentenceOutput is the raw LLM response.
type sentenceOutput struct {
	IsCorrect  bool    `json:"is_correct"`
	Feedback   string  `json:"feedback"`
	Suggestion *string `json:"suggestion"`
}

// EvaluateSentence asks the LLM whether the learner's sentence uses the
// word correctly. On any failure it returns the fallback result alongside
// the error, so callers always have something presentable.
func (e *Evaluator) EvaluateSentence(ctx context.Context, word, definition, sentence string) (*SentenceResult, error) {
	ctx = llm.WithPurpose(ctx, "sentence-eval")
	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	userMsg, err := buildSentenceMessage(word, definition, sentence)
	if err != nil {
		return FallbackSentenceResult(word), fmt.Errorf("build sentence prompt: %w", err)
	}

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: sentenceSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      SentenceSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return FallbackSentenceResult(word), fmt.Errorf("sentence evaluation failed: %w", err)
	}

	var raw sentenceOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return FallbackSentenceResult(word), fmt.Errorf("failed to parse evaluation response: %w", err)
	}
	if raw.Feedback == "" {
		return FallbackSentenceResult(word), &llm.ErrInvalidResponse{Content: resp.Content, Err: errors.New("empty feedback")}
	}

	result := &SentenceResult{
		Correct:  raw.IsCorrect,
		Feedback: raw.Feedback,
	}
	if raw.Suggestion != nil {
		result.Suggestion = *raw.Suggestion
	}
	return result, nil
}

const sentenceSystemPrompt = `You are evaluating whether a GRE student correctly understands and uses a vocabulary word.

Instructions:
- Judge only whether the sentence demonstrates correct understanding and usage of the word.
- Feedback is one or two sentences, addressed to the student.
- If the usage is wrong, include a corrected example sentence as the suggestion; otherwise suggestion is null.`

var sentenceUserTemplate = template.Must(template.New("sentence").Parse(`Word: {{printf "%q" .Word}}
Definition: {{printf "%q" .Definition}}
Student's sentence: {{printf "%q" .Sentence}}`))

func buildSentenceMessage(word, definition, sentence string) (string, error) {
	var buf bytes.Buffer
	err := sentenceUserTemplate.Execute(&buf, struct {
		Word, Definition, Sentence string
	}{word, definition, sentence})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
