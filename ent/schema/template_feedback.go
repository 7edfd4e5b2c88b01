package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TemplateFeedback is a user's complaint or praise about a served question.
// Negative types exclude the exact prompt from that user's future sessions.
type TemplateFeedback struct {
	ent.Schema
}

func (TemplateFeedback) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.Int("template_id").
			Optional(),
		field.Text("prompt").
			NotEmpty().
			Comment("Exact prompt text the feedback refers to"),
		field.String("feedback_type").
			NotEmpty().
			Comment("confusing, inappropriate, not_curriculum_compliant, too_easy, too_hard, good"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (TemplateFeedback) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "feedback_type"),
		index.Fields("template_id"),
	}
}
