package mistakes

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"text/template"

	"github.com/aeroSapphire/greprep/internal/llm"
	"github.com/aeroSapphire/greprep/internal/question"
)

// ClassifierConfig holds configuration for the LLM classifier.
type ClassifierConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultClassifierConfig returns sensible defaults.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		MaxTokens:   256,
		Temperature: 0.2,
	}
}

// LLMClassifier performs LLM-based mistake classification with an
// in-memory cache keyed by a deterministic hash of the input, so the same
// wrong answer never costs two requests.
type LLMClassifier struct {
	provider llm.Provider
	cfg      ClassifierConfig

	mu    sync.Mutex
	cache map[string]*Result
}

// NewLLMClassifier creates an LLM-based classifier.
func NewLLMClassifier(provider llm.Provider, cfg ClassifierConfig) *LLMClassifier {
	return &LLMClassifier{
		provider: provider,
		cfg:      cfg,
		cache:    make(map[string]*Result),
	}
}

// fallbackResult is returned whenever the LLM cannot be trusted: provider
// errors, malformed output, or a label outside the taxonomy.
func fallbackResult() *Result {
	return &Result{
		Label:       LabelEliminationFailure,
		Explanation: "Unable to reliably classify the mistake.",
		Source:      "fallback",
	}
}

type classifyOutput struct {
	Label       string `json:"label"`
	Explanation string `json:"explanation"`
}

// Classify sends the wrong answer to the LLM and decodes the taxonomy
// label. Never returns a nil Result; on failure the fallback is returned
// alongside the error.
func (c *LLMClassifier) Classify(ctx context.Context, input *ClassifyInput) (*Result, error) {
	key := inputHash(input)

	c.mu.Lock()
	if cached, ok := c.cache[key]; ok {
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	ctx = llm.WithPurpose(ctx, "mistake-classify")

	userMsg, err := buildClassifyMessage(input)
	if err != nil {
		return fallbackResult(), fmt.Errorf("build classify prompt: %w", err)
	}

	resp, err := c.provider.Generate(ctx, llm.Request{
		System: classifySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      MistakeSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return fallbackResult(), fmt.Errorf("mistake classification failed: %w", err)
	}

	var raw classifyOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return fallbackResult(), fmt.Errorf("failed to parse classification response: %w", err)
	}

	label := Label(raw.Label)
	if !label.Valid() {
		return fallbackResult(), &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("unknown label %q", raw.Label)}
	}

	result := &Result{
		Label:       label,
		Explanation: raw.Explanation,
		Confidence:  0.6,
		Source:      "llm",
	}
	if result.Explanation == "" {
		result.Explanation = "No explanation provided."
	}

	c.mu.Lock()
	c.cache[key] = result
	c.mu.Unlock()
	return result, nil
}

// inputHash builds a deterministic key: option order and selection order
// must not change the key.
func inputHash(input *ClassifyInput) string {
	q := input.Question

	optionTexts := make([]string, 0, len(q.Options))
	correct := make([]string, 0, 2)
	for _, o := range q.Options {
		optionTexts = append(optionTexts, strings.TrimSpace(o.Text))
		if o.Correct {
			correct = append(correct, o.ID)
		}
	}
	sort.Strings(optionTexts)
	sort.Strings(correct)

	selected := append([]string(nil), input.Selected...)
	sort.Strings(selected)

	parts := []string{
		string(q.Type),
		strings.TrimSpace(q.Prompt),
		strings.Join(optionTexts, "|"),
		strings.Join(correct, "|"),
		strings.Join(selected, "|"),
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "||")))
	return hex.EncodeToString(sum[:])
}

const classifySystemPrompt = `You are an expert GRE verbal tutor. A student answered a question incorrectly. Classify the error against the taxonomy below.

Instructions:
- Pick exactly one label from the taxonomy. Use NONE only when the error fits no category.
- Do NOT invent labels.
- Keep the explanation to one sentence, addressed to the student.`

var classifyUserTemplate = template.Must(template.New("classify").Parse(`Question type: {{.Type}}
Question: {{.Prompt}}
{{- if .Passage}}
Passage: {{.Passage}}
{{- end}}
Options:
{{- range .Options}}
- {{.ID}}: {{.Text}}{{if .Correct}} (correct){{end}}
{{- end}}
Student selected: {{.Selected}}

Taxonomy:
{{- range .Labels}}
- {{.Label}}: {{.Description}}
{{- end}}`))

func buildClassifyMessage(input *ClassifyInput) (string, error) {
	type labelRow struct {
		Label       Label
		Description string
	}
	rows := make([]labelRow, 0, len(AllLabels))
	for _, l := range AllLabels {
		if l == LabelNone {
			continue
		}
		rows = append(rows, labelRow{Label: l, Description: labelDescriptions[l]})
	}

	var buf bytes.Buffer
	err := classifyUserTemplate.Execute(&buf, struct {
		Type     question.Type
		Prompt   string
		Passage  string
		Options  []question.Option
		Selected string
		Labels   []labelRow
	}{
		Type:     input.Question.Type,
		Prompt:   input.Question.Prompt,
		Passage:  input.Question.Passage,
		Options:  input.Question.Options,
		Selected: strings.Join(input.Selected, ", "),
		Labels:   rows,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
