package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// templateSchema mirrors the shape the template generator requests.
func templateSchema() *Schema {
	return &Schema{
		Name:        "question-template-test",
		Description: "A generated question template",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"prompt":   map[string]any{"type": "string"},
				"solution": map[string]any{"type": "string"},
				"difficulty": map[string]any{
					"type": "string",
					"enum": []any{"AFB I", "AFB II", "AFB III"},
				},
			},
			"required": []any{"prompt", "solution"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"prompt":"Berechne 7 + 8.","solution":"15","difficulty":"AFB I"}`)
	if err := validateResponse(templateSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_OptionalFieldOmitted(t *testing.T) {
	raw := json.RawMessage(`{"prompt":"Wie viel ist 9 · 4?","solution":"36"}`)
	if err := validateResponse(templateSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"prompt":"Berechne 7 + 8."}`)
	err := validateResponse(templateSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing solution")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"prompt":"Berechne 7 + 8.","solution":15}`)
	err := validateResponse(templateSchema(), raw)
	if err == nil {
		t.Fatal("expected error for numeric solution")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EnumViolation(t *testing.T) {
	raw := json.RawMessage(`{"prompt":"Berechne 7 + 8.","solution":"15","difficulty":"AFB IV"}`)
	err := validateResponse(templateSchema(), raw)
	if err == nil {
		t.Fatal("expected error for unknown difficulty level")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(templateSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyContent(t *testing.T) {
	if err := validateResponse(templateSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty content")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedDefinition(t *testing.T) {
	schema := &Schema{
		Name:        "template-batch-test",
		Description: "A batch of generated templates",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"cell": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"domain": map[string]any{"type": "string"},
					},
					"required": []any{"domain"},
				},
				"templates": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"cell", "templates"},
		},
	}

	valid := json.RawMessage(`{"cell":{"domain":"Zahlen & Operationen"},"templates":["Berechne 3 + 4.","Berechne 5 + 6."]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"cell":{"domain":"Zahlen & Operationen"},"templates":[1,2]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for non-string template entries")
	}
}
