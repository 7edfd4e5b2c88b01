// Package templategen turns curriculum coverage gaps into new question
// templates via the LLM provider and a validation funnel.
package templategen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lernzeit/lernzeit/internal/content"
	"github.com/lernzeit/lernzeit/internal/coverage"
	"github.com/lernzeit/lernzeit/internal/llm"
	"github.com/lernzeit/lernzeit/internal/store"
)

// GenerateInput describes one template to generate.
type GenerateInput struct {
	// Gap is the curriculum cell the template must fill.
	Gap coverage.Gap

	// ContextInstructions optionally carries the rotation engine's
	// scenario assignment for the prompt.
	ContextInstructions string
}

// Generator produces question templates using an LLM provider.
type Generator interface {
	// Generate produces a single template for the given gap. All
	// configured validators run before returning; a *RejectionError means
	// the LLM answered but the result was unusable.
	Generate(ctx context.Context, input GenerateInput) (store.TemplateRecord, error)
}

// RejectionError describes a generated template that failed validation.
type RejectionError struct {
	Validator string
	Issues    []string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("validator %q rejected template: %s", e.Validator, strings.Join(e.Issues, "; "))
}

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators run in order on every generated template; the first
	// rejection stops the pipeline.
	Validators []content.Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chain and
// recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []content.Validator{
			&content.ContentValidator{},
			&content.FirstGradeValidator{},
		},
		MaxTokens:   700,
		Temperature: 0.7,
	}
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// templateOutput is the raw LLM response before validation.
type templateOutput struct {
	Prompt      string   `json:"prompt"`
	Solution    string   `json:"solution"`
	Distractors []string `json:"distractors"`
	Subcategory string   `json:"subcategory"`
}

func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (store.TemplateRecord, error) {
	ctx = llm.WithPurpose(ctx, "template-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      TemplateSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return store.TemplateRecord{}, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw templateOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return store.TemplateRecord{}, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	subcategory := raw.Subcategory
	if subcategory == "" {
		subcategory = input.Gap.Subcategory
	}

	tmpl := store.TemplateRecord{
		Grade:        input.Gap.Grade,
		GradeApp:     input.Gap.Grade,
		QuarterApp:   string(input.Gap.Quarter),
		Domain:       string(input.Gap.Domain),
		Subcategory:  subcategory,
		Difficulty:   string(input.Gap.Difficulty),
		QuestionType: string(input.Gap.QuestionType),
		Prompt:       raw.Prompt,
		Solution:     raw.Solution,
		Distractors:  raw.Distractors,
		Status:       store.StatusActive,
	}

	// Run validators in order. The lowest quality score across the chain
	// becomes the template's initial quality.
	quality := 1.0
	for _, v := range g.config.Validators {
		report := v.Validate(tmpl)
		if !report.Valid {
			return store.TemplateRecord{}, &RejectionError{Validator: v.Name(), Issues: report.Issues}
		}
		if report.QualityScore < quality {
			quality = report.QualityScore
		}
	}
	tmpl.QualityScore = quality

	return tmpl, nil
}
