package evaluate

import "github.com/aeroSapphire/greprep/internal/llm"

// SentenceSchema defines the JSON schema for sentence evaluation responses.
var SentenceSchema = &llm.Schema{
	Name:        "sentence-eval",
	Description: "Judgment of whether a learner's sentence uses a vocabulary word correctly",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_correct": map[string]any{
				"type":        "boolean",
				"description": "Whether the sentence demonstrates correct understanding and usage of the word",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One or two sentences explaining the judgment",
			},
			"suggestion": map[string]any{
				"type":        []any{"string", "null"},
				"description": "A corrected example sentence when the usage is wrong, otherwise null",
			},
		},
		"required":             []any{"is_correct", "feedback", "suggestion"},
		"additionalProperties": false,
	},
}

// MnemonicSchema defines the JSON schema for mnemonic generation responses.
var MnemonicSchema = &llm.Schema{
	Name:        "mnemonic",
	Description: "A memory aid for a GRE vocabulary word",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"mnemonic": map[string]any{
				"type":        "string",
				"description": "The memory aid itself, at most two sentences",
			},
			"technique": map[string]any{
				"type":        "string",
				"enum":        []any{"SOUND", "VISUAL", "STORY", "BREAKDOWN", "ASSOCIATION"},
				"description": "Which mnemonic technique the aid uses",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "One sentence on why the aid connects the word to its meaning",
			},
		},
		"required":             []any{"mnemonic", "technique", "explanation"},
		"additionalProperties": false,
	},
}
