package evaluate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"text/template"

	"github.com/aeroSapphire/greprep/internal/llm"
)

// TechniqueAssociation is the default technique label when the model
// returns something outside the known set.
const TechniqueAssociation = "ASSOCIATION"

var knownTechniques = map[string]bool{
	"SOUND":       true,
	"VISUAL":      true,
	"STORY":       true,
	"BREAKDOWN":   true,
	"ASSOCIATION": true,
}

// MnemonicResult is a generated memory aid for a word.
type MnemonicResult struct {
	Mnemonic    string
	Technique   string
	Explanation string
}

// FallbackMnemonic is the typed default when generation fails: a plain
// association prompt the learner can fill in themselves.
func FallbackMnemonic(word string) *MnemonicResult {
	return &MnemonicResult{
		Mnemonic:  fmt.Sprintf("Link %q to a vivid image or person from your own life.", word),
		Technique: TechniqueAssociation,
	}
}

type mnemonicOutput struct {
	Mnemonic    string `json:"mnemonic"`
	Technique   string `json:"technique"`
	Explanation string `json:"explanation"`
}

// GenerateMnemonic asks the LLM for a memory aid. PartOfSpeech and
// etymology are optional and enrich the prompt when present. On any
// failure it returns the fallback result alongside the error.
func (e *Evaluator) GenerateMnemonic(ctx context.Context, word, definition, partOfSpeech, etymology string) (*MnemonicResult, error) {
	ctx = llm.WithPurpose(ctx, "mnemonic")
	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	userMsg, err := buildMnemonicMessage(word, definition, partOfSpeech, etymology)
	if err != nil {
		return FallbackMnemonic(word), fmt.Errorf("build mnemonic prompt: %w", err)
	}

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: mnemonicSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      MnemonicSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return FallbackMnemonic(word), fmt.Errorf("mnemonic generation failed: %w", err)
	}

	var raw mnemonicOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return FallbackMnemonic(word), fmt.Errorf("failed to parse mnemonic response: %w", err)
	}
	if raw.Mnemonic == "" {
		return FallbackMnemonic(word), &llm.ErrInvalidResponse{Content: resp.Content, Err: errors.New("empty mnemonic")}
	}
	if !knownTechniques[raw.Technique] {
		raw.Technique = TechniqueAssociation
	}

	return &MnemonicResult{
		Mnemonic:    raw.Mnemonic,
		Technique:   raw.Technique,
		Explanation: raw.Explanation,
	}, nil
}

const mnemonicSystemPrompt = `You create short, memorable mnemonics for GRE vocabulary words.

Instructions:
- The mnemonic is at most two sentences and must connect the word's sound or parts to its meaning.
- Pick the single best technique: SOUND (sounds-like), VISUAL (mental image), STORY (mini narrative), BREAKDOWN (roots and affixes), or ASSOCIATION (link to a familiar idea).
- When etymology is given, prefer BREAKDOWN if the roots are genuinely helpful.`

var mnemonicUserTemplate = template.Must(template.New("mnemonic").Parse(`Word: {{printf "%q" .Word}}
Definition: {{printf "%q" .Definition}}
{{- if .PartOfSpeech}}
Part of speech: {{.PartOfSpeech}}
{{- end}}
{{- if .Etymology}}
Etymology: {{.Etymology}}
{{- end}}`))

func buildMnemonicMessage(word, definition, partOfSpeech, etymology string) (string, error) {
	var buf bytes.Buffer
	err := mnemonicUserTemplate.Execute(&buf, struct {
		Word, Definition, PartOfSpeech, Etymology string
	}{word, definition, partOfSpeech, etymology})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
