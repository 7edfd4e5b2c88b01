package templategen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/lernzeit/lernzeit/internal/coverage"
	"github.com/lernzeit/lernzeit/internal/curriculum"
	"github.com/lernzeit/lernzeit/internal/llm"
)

func gapFixture() coverage.Gap {
	return coverage.Gap{
		Grade:        3,
		Quarter:      curriculum.Q1,
		Domain:       curriculum.DomainZahlen,
		Subcategory:  "Schriftliche Addition",
		Difficulty:   curriculum.AFB1,
		QuestionType: curriculum.TypeTextInput,
		TargetCount:  8,
		Priority:     coverage.PriorityHigh,
	}
}

func cannedTemplate(prompt string) llm.MockResponse {
	content, _ := json.Marshal(map[string]any{
		"prompt":      prompt,
		"solution":    "42",
		"distractors": []string{},
		"subcategory": "Schriftliche Addition",
	})
	return llm.MockResponse{Content: content}
}

func TestGenerateHappyPath(t *testing.T) {
	provider := llm.NewMockProvider(cannedTemplate("Anna rechnet 17 + 25. Was ist das Ergebnis?"))
	g := New(provider, DefaultConfig())

	tmpl, err := g.Generate(context.Background(), GenerateInput{Gap: gapFixture()})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if tmpl.Grade != 3 || tmpl.QuarterApp != "Q1" {
		t.Errorf("gap fields not carried over: %+v", tmpl)
	}
	if tmpl.Domain != "Zahlen & Operationen" {
		t.Errorf("domain = %q", tmpl.Domain)
	}
	if tmpl.Status != "ACTIVE" {
		t.Errorf("status = %q, want ACTIVE", tmpl.Status)
	}
	if tmpl.QualityScore != 1 {
		t.Errorf("clean template quality = %v, want 1", tmpl.QualityScore)
	}

	if len(provider.Calls) != 1 {
		t.Fatalf("provider called %d times, want 1", len(provider.Calls))
	}
	msg := provider.Calls[0].Messages[0].Content
	for _, want := range []string{"Klassenstufe: 3", "Quartal: Q1", "Anforderungsbereich: AFB I"} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q:\n%s", want, msg)
		}
	}
}

func TestGenerateRejectsBlacklistedPrompt(t *testing.T) {
	provider := llm.NewMockProvider(cannedTemplate("Zeichne ein Quadrat mit 4 cm Seitenlänge."))
	g := New(provider, DefaultConfig())

	_, err := g.Generate(context.Background(), GenerateInput{Gap: gapFixture()})
	var rej *RejectionError
	if !errors.As(err, &rej) {
		t.Fatalf("expected RejectionError, got %v", err)
	}
	if rej.Validator != "content" {
		t.Errorf("rejecting validator = %q, want content", rej.Validator)
	}
}

func TestGenerateRejectsFirstGradeViolation(t *testing.T) {
	gap := gapFixture()
	gap.Grade = 1
	provider := llm.NewMockProvider(cannedTemplate("Lisa hat 45 Äpfel und isst 3."))
	g := New(provider, DefaultConfig())

	_, err := g.Generate(context.Background(), GenerateInput{Gap: gap})
	var rej *RejectionError
	if !errors.As(err, &rej) {
		t.Fatalf("expected RejectionError, got %v", err)
	}
	if rej.Validator != "first-grade" {
		t.Errorf("rejecting validator = %q, want first-grade", rej.Validator)
	}
}

func TestGeneratePropagatesProviderError(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	g := New(provider, DefaultConfig())

	_, err := g.Generate(context.Background(), GenerateInput{Gap: gapFixture()})
	if err == nil {
		t.Fatal("expected error")
	}
	var rej *RejectionError
	if errors.As(err, &rej) {
		t.Error("provider failure must not look like a validation rejection")
	}
}

func TestGenerateFallsBackToGapSubcategory(t *testing.T) {
	content, _ := json.Marshal(map[string]any{
		"prompt":      "Rechne 12 + 7.",
		"solution":    "19",
		"distractors": []string{},
		"subcategory": "",
	})
	provider := llm.NewMockProvider(llm.MockResponse{Content: content})
	g := New(provider, DefaultConfig())

	tmpl, err := g.Generate(context.Background(), GenerateInput{Gap: gapFixture()})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if tmpl.Subcategory != "Schriftliche Addition" {
		t.Errorf("subcategory = %q, want gap subcategory", tmpl.Subcategory)
	}
}

func TestGenerateIncludesContextInstructions(t *testing.T) {
	provider := llm.NewMockProvider(cannedTemplate("Beim Bäcker kosten 3 Brötchen 2 Euro."))
	g := New(provider, DefaultConfig())

	_, err := g.Generate(context.Background(), GenerateInput{
		Gap:                 gapFixture(),
		ContextInstructions: "KONTEXT-ROTATION:\nAufgabe 1: Szenario \"Einkaufen\"",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(provider.Calls[0].Messages[0].Content, "KONTEXT-ROTATION") {
		t.Error("context instructions missing from user message")
	}
}
