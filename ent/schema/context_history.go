package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContextHistory records a context combination served to a user, so later
// selections can avoid repeating it.
type ContextHistory struct {
	ent.Schema
}

func (ContextHistory) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.Int("scenario_family_id"),
		field.String("category").
			NotEmpty(),
		field.Int("grade").
			Range(1, 10),
		field.JSON("combination", map[string]string{}).
			Comment("dimension -> chosen value snapshot"),
		field.String("combination_hash").
			NotEmpty().
			Comment("Order-independent hash of the combination"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ContextHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "category", "grade"),
		index.Fields("combination_hash"),
		index.Fields("created_at"),
	}
}
