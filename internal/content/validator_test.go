package content

import (
	"testing"

	"github.com/lernzeit/lernzeit/internal/store"
)

func validTemplate() store.TemplateRecord {
	return store.TemplateRecord{
		Grade:        3,
		QuarterApp:   "Q1",
		Domain:       "Zahlen & Operationen",
		Difficulty:   "AFB I",
		QuestionType: "text-input",
		Prompt:       "Anna kauft 3 Brötchen für je 2 Euro. Wie viel bezahlt sie?",
		Solution:     "6",
	}
}

func TestContentValidatorAcceptsCleanTemplate(t *testing.T) {
	v := &ContentValidator{}
	got := v.Validate(validTemplate())
	if !got.Valid || got.ShouldExclude {
		t.Errorf("clean template rejected: %+v", got)
	}
	if got.QualityScore != 1 {
		t.Errorf("quality = %v, want 1", got.QualityScore)
	}
}

func TestContentValidatorBlacklist(t *testing.T) {
	v := &ContentValidator{}
	tmpl := validTemplate()
	tmpl.Prompt = "Zeichne ein Rechteck mit 4 cm Seitenlänge."

	got := v.Validate(tmpl)
	if got.Valid || !got.ShouldExclude {
		t.Errorf("drawing task not excluded: %+v", got)
	}
}

func TestContentValidatorEmptyFields(t *testing.T) {
	v := &ContentValidator{}
	got := v.Validate(store.TemplateRecord{QuestionType: "text-input"})
	if got.Valid || !got.ShouldExclude {
		t.Errorf("empty template accepted: %+v", got)
	}
	if len(got.Issues) < 2 {
		t.Errorf("expected issues for prompt and solution, got %v", got.Issues)
	}
}

func TestContentValidatorMultipleChoice(t *testing.T) {
	v := &ContentValidator{}
	tmpl := validTemplate()
	tmpl.QuestionType = "multiple-choice"
	tmpl.Distractors = []string{"6"}
	tmpl.Solution = "6"

	got := v.Validate(tmpl)
	if got.Valid {
		t.Errorf("expected issues for distractor count and solution overlap, got %+v", got)
	}
}

func TestFirstGradeValidatorNumberRange(t *testing.T) {
	v := &FirstGradeValidator{}
	tmpl := validTemplate()
	tmpl.Grade = 1
	tmpl.Prompt = "Tim hat 35 Murmeln und verschenkt 5. Wie viele bleiben?"

	got := v.Validate(tmpl)
	if got.Valid || !got.ShouldExclude {
		t.Errorf("out-of-range number accepted for grade 1: %+v", got)
	}
}

func TestFirstGradeValidatorForbiddenOps(t *testing.T) {
	v := &FirstGradeValidator{}
	tmpl := validTemplate()
	tmpl.Grade = 1
	tmpl.Prompt = "Rechne: 4 mal 5"

	got := v.Validate(tmpl)
	if got.Valid {
		t.Errorf("multiplication accepted for grade 1: %+v", got)
	}
}

func TestFirstGradeValidatorIgnoresOtherGrades(t *testing.T) {
	v := &FirstGradeValidator{}
	tmpl := validTemplate()
	tmpl.Grade = 4
	tmpl.Prompt = "Rechne: 125 mal 4"

	if got := v.Validate(tmpl); !got.Valid {
		t.Errorf("grade-4 template rejected by first-grade rules: %+v", got)
	}
}

func TestMatchBlacklist(t *testing.T) {
	if _, ok := MatchBlacklist("Berechne 3 + 4."); ok {
		t.Error("clean prompt matched blacklist")
	}
	phrase, ok := MatchBlacklist("Schneide die Figur aus und klebe sie ein.")
	if !ok || phrase == "" {
		t.Error("cutting task not matched")
	}
}
