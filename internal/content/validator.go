package content

import (
	"fmt"

	"github.com/lernzeit/lernzeit/internal/store"
)

// Report is the outcome of validating a candidate template.
type Report struct {
	Valid         bool
	Issues        []string
	QualityScore  float64
	ShouldExclude bool
}

// Validator checks a candidate template before it enters the bank.
// Implementations are stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for log lines, e.g. "content",
	// "first-grade".
	Name() string

	Validate(t store.TemplateRecord) Report
}

const (
	maxPromptLen   = 600
	maxSolutionLen = 300

	// issuePenalty is deducted from the quality score per finding.
	issuePenalty = 0.2
)

// ContentValidator performs the structural and blacklist checks every
// template must pass regardless of grade.
type ContentValidator struct{}

func (v *ContentValidator) Name() string { return "content" }

func (v *ContentValidator) Validate(t store.TemplateRecord) Report {
	var issues []string
	exclude := false

	if t.Prompt == "" {
		issues = append(issues, "prompt is empty")
		exclude = true
	}
	if len(t.Prompt) > maxPromptLen {
		issues = append(issues, fmt.Sprintf("prompt exceeds %d characters", maxPromptLen))
	}
	if t.Solution == "" {
		issues = append(issues, "solution is empty")
		exclude = true
	}
	if len(t.Solution) > maxSolutionLen {
		issues = append(issues, fmt.Sprintf("solution exceeds %d characters", maxSolutionLen))
	}

	if phrase, ok := MatchBlacklist(t.Prompt); ok {
		issues = append(issues, fmt.Sprintf("prompt contains blacklisted phrase %q", phrase))
		exclude = true
	}

	if t.QuestionType == "multiple-choice" {
		if len(t.Distractors) < 2 {
			issues = append(issues, "multiple-choice template needs at least 2 distractors")
		}
		for _, d := range t.Distractors {
			if d == t.Solution {
				issues = append(issues, "distractor equals the solution")
				break
			}
		}
	}

	return report(issues, exclude)
}

func report(issues []string, exclude bool) Report {
	score := 1.0 - issuePenalty*float64(len(issues))
	if score < 0 {
		score = 0
	}
	return Report{
		Valid:         len(issues) == 0,
		Issues:        issues,
		QualityScore:  score,
		ShouldExclude: exclude,
	}
}
