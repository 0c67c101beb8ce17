package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// evalSchema mirrors the sentence-eval response shape.
func evalSchema() *Schema {
	return &Schema{
		Name:        "test-sentence-eval",
		Description: "Judgment of a learner-written sentence",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"correct":  map[string]any{"type": "boolean"},
				"feedback": map[string]any{"type": "string"},
				"verdict":  map[string]any{"type": "string", "enum": []any{"good", "awkward", "wrong"}},
			},
			"required": []any{"correct", "feedback"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{
			name: "valid full object",
			raw:  `{"correct":true,"feedback":"Natural usage.","verdict":"good"}`,
		},
		{
			name: "valid without optional field",
			raw:  `{"correct":false,"feedback":"Polarity is flipped."}`,
		},
		{
			name:    "missing required field",
			raw:     `{"correct":true}`,
			wantErr: true,
		},
		{
			name:    "wrong type",
			raw:     `{"correct":"yes","feedback":"..."}`,
			wantErr: true,
		},
		{
			name:    "enum value outside the set",
			raw:     `{"correct":true,"feedback":"ok","verdict":"superb"}`,
			wantErr: true,
		},
		{
			name:    "malformed JSON",
			raw:     `{not json}`,
			wantErr: true,
		},
		{
			name:    "empty response",
			raw:     ``,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(evalSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("expected no error, got: %v", err)
				}
				return
			}
			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "test-mistake-classify",
		Description: "Nested classification result",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"diagnosis": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"label": map[string]any{"type": "string"},
					},
					"required": []any{"label"},
				},
				"confusions": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"diagnosis", "confusions"},
		},
	}

	valid := json.RawMessage(`{"diagnosis":{"label":"POLARITY_ERROR"},"confusions":["ingenuous","ingenious"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"diagnosis":{"label":"POLARITY_ERROR"},"confusions":[1,2]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
