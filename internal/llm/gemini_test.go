package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // raw ID pass-through
	}
	for _, tt := range tests {
		if got := resolveModel(tt.in, geminiModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	// Shaped like the sentence-eval schema: a flat object with an enum
	// and a string array.
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"correct":    map[string]any{"type": "boolean"},
			"feedback":   map[string]any{"type": "string"},
			"verdict":    map[string]any{"type": "string", "enum": []any{"good", "awkward", "wrong"}},
			"weak_spots": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required": []any{"correct", "feedback"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["correct"].Type != "BOOLEAN" {
		t.Fatalf("expected BOOLEAN for correct, got %s", schema.Properties["correct"].Type)
	}
	if schema.Properties["feedback"].Type != "STRING" {
		t.Fatalf("expected STRING for feedback, got %s", schema.Properties["feedback"].Type)
	}
	if len(schema.Properties["verdict"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["verdict"].Enum))
	}
	if schema.Properties["weak_spots"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for weak_spots, got %s", schema.Properties["weak_spots"].Type)
	}
	if schema.Properties["weak_spots"].Items.Type != "STRING" {
		t.Fatalf("expected STRING items, got %s", schema.Properties["weak_spots"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
