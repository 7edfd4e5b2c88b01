package templategen

import "github.com/lernzeit/lernzeit/internal/llm"

// TemplateSchema defines the JSON schema for LLM template generation
// responses.
var TemplateSchema = &llm.Schema{
	Name:        "question-template",
	Description: "A single curriculum-aligned question template with solution and distractors",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"prompt": map[string]any{
				"type":        "string",
				"description": "The question text shown to the learner, in German, self-contained",
			},
			"solution": map[string]any{
				"type":        "string",
				"description": "The correct answer as a string, in simplest form",
			},
			"distractors": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 3 wrong options for multiple-choice questions, reflecting common mistakes. Empty array for other question types.",
			},
			"subcategory": map[string]any{
				"type":        "string",
				"description": "The curriculum subcategory this question practices",
			},
		},
		"required":             []any{"prompt", "solution", "distractors", "subcategory"},
		"additionalProperties": false,
	},
}
