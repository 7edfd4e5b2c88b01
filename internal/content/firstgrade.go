package content

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lernzeit/lernzeit/internal/store"
)

// firstGradeNumberLimit is the number range first graders work in.
const firstGradeNumberLimit = 20

var numberPattern = regexp.MustCompile(`\d+`)

// forbidden operation markers for grade 1. Multiplication and division are
// grade 2 material.
var firstGradeForbiddenOps = []string{" · ", " x ", " * ", " : ", " / ", "mal ", "geteilt"}

// FirstGradeValidator enforces the tighter rules for grade-1 templates:
// numbers stay within the Zahlenraum bis 20 and no multiplication or
// division appears. Templates for other grades pass unchanged.
type FirstGradeValidator struct{}

func (v *FirstGradeValidator) Name() string { return "first-grade" }

func (v *FirstGradeValidator) Validate(t store.TemplateRecord) Report {
	if t.Grade != 1 {
		return Report{Valid: true, QualityScore: 1}
	}

	var issues []string
	exclude := false

	for _, field := range []string{t.Prompt, t.Solution} {
		for _, m := range numberPattern.FindAllString(field, -1) {
			n, err := strconv.Atoi(m)
			if err != nil {
				continue
			}
			if n > firstGradeNumberLimit {
				issues = append(issues, fmt.Sprintf("number %d exceeds the grade-1 range of %d", n, firstGradeNumberLimit))
				exclude = true
			}
		}
	}

	lower := strings.ToLower(t.Prompt)
	for _, op := range firstGradeForbiddenOps {
		if strings.Contains(lower, op) {
			issues = append(issues, fmt.Sprintf("prompt uses operation %q not taught in grade 1", strings.TrimSpace(op)))
			exclude = true
			break
		}
	}

	return report(issues, exclude)
}
