package llm

import (
	"testing"
)

func TestGeminiAliases(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // full IDs pass through
	}
	for _, tt := range tests {
		got := expandAlias(tt.input, geminiAliases)
		if got != tt.expected {
			t.Errorf("expandAlias(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestGeminiSchemaConversion(t *testing.T) {
	// The shape of the question template schema: strings, an enum and a
	// typed array must all survive the conversion.
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"prompt":   map[string]any{"type": "string"},
			"solution": map[string]any{"type": "string"},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"AFB I", "AFB II", "AFB III"},
			},
			"distractors": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"prompt", "solution"},
	}

	schema := geminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["prompt"].Type != "STRING" {
		t.Fatalf("expected STRING for prompt, got %s", schema.Properties["prompt"].Type)
	}
	if len(schema.Properties["difficulty"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["difficulty"].Enum))
	}
	if schema.Properties["distractors"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for distractors, got %s", schema.Properties["distractors"].Type)
	}
	if schema.Properties["distractors"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for distractor items, got %s", schema.Properties["distractors"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestGeminiSchemaIntegerType(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"grade": map[string]any{"type": "integer"},
		},
	}
	schema := geminiSchema(def)
	if schema.Properties["grade"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for grade, got %s", schema.Properties["grade"].Type)
	}
}
