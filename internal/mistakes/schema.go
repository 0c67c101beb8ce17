package mistakes

import "github.com/aeroSapphire/greprep/internal/llm"

// MistakeSchema defines the JSON schema for LLM mistake classification.
var MistakeSchema = &llm.Schema{
	Name:        "mistake-classify",
	Description: "Classification of a wrong verbal answer against a fixed mistake taxonomy",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"label": map[string]any{
				"type": "string",
				"enum": func() []any {
					out := make([]any, len(AllLabels))
					for i, l := range AllLabels {
						out[i] = string(l)
					}
					return out
				}(),
				"description": "The taxonomy label that best matches the error, or NONE",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "One sentence, addressed to the student, on what went wrong",
			},
		},
		"required":             []any{"label", "explanation"},
		"additionalProperties": false,
	},
}
