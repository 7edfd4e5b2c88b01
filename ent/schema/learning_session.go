package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningSession is the aggregate record of one practice session.
// The templates field lists the exact template IDs served, so selection
// recency penalties work from real per-template history.
type LearningSession struct {
	ent.Schema
}

func (LearningSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Comment("UUID issued by the selector"),
		field.String("user_id").
			NotEmpty(),
		field.String("category").
			NotEmpty().
			Comment("Subject category, e.g. math"),
		field.Int("grade").
			Range(1, 10),
		field.Int("correct").
			Default(0).
			Min(0),
		field.Int("total").
			Default(0).
			Min(0),
		field.Int("duration_secs").
			Default(0),
		field.JSON("templates", []int{}).
			Optional().
			Comment("IDs of the templates served in this session"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (LearningSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("category", "grade"),
	}
}
