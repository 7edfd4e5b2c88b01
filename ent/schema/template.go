package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Template is a persisted question template, the unit served to learners.
type Template struct {
	ent.Schema
}

func (Template) Fields() []ent.Field {
	return []ent.Field{
		field.Int("grade").
			Range(1, 10).
			Comment("Grade the question was written for"),
		field.Int("grade_app").
			Range(1, 10).
			Comment("Grade the question is applied to (may differ for review material)"),
		field.String("quarter_app").
			NotEmpty().
			Comment("Q1-Q4"),
		field.String("domain").
			NotEmpty().
			Comment("Curriculum domain, e.g. Zahlen & Operationen"),
		field.String("subcategory").
			NotEmpty(),
		field.String("difficulty").
			NotEmpty().
			Comment("AFB I, AFB II or AFB III"),
		field.String("question_type").
			NotEmpty().
			Comment("multiple-choice, text-input, sort or matching"),
		field.Text("prompt").
			NotEmpty().
			Comment("Question text shown to the learner"),
		field.Text("solution").
			NotEmpty(),
		field.JSON("distractors", []string{}).
			Optional().
			Comment("Wrong options for multiple-choice"),
		field.Float("quality_score").
			Default(0).
			Min(0).Max(1).
			Comment("Set by the quality pipeline, never by the selector"),
		field.Int("plays").
			Default(0).
			Min(0).
			Comment("How often the template was selected"),
		field.Int("correct").
			Default(0).
			Min(0).
			Comment("How often it was answered correctly"),
		field.Int("rating_sum").
			Default(0),
		field.Int("rating_count").
			Default(0),
		field.String("status").
			Default("ACTIVE").
			Comment("ACTIVE or ARCHIVED"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Template) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("grade_app", "quarter_app"),
		index.Fields("domain", "subcategory"),
		index.Fields("status"),
		index.Fields("plays"),
	}
}
