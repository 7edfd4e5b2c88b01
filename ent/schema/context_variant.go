package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContextVariant is one possible value for a context dimension of a
// scenario family, e.g. (location, "Bäckerei").
type ContextVariant struct {
	ent.Schema
}

func (ContextVariant) Fields() []ent.Field {
	return []ent.Field{
		field.Int("scenario_family_id"),
		field.String("dimension_type").
			NotEmpty().
			Comment("location, character, activity, object, time_setting"),
		field.String("value").
			NotEmpty(),
		field.String("semantic_cluster").
			Optional().
			Comment("Groups variants that feel alike; empty if unclustered"),
		field.Int("usage_count").
			Default(0).
			Min(0),
		field.Float("quality_score").
			Default(0.5).
			Min(0).Max(1),
	}
}

func (ContextVariant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("scenario_family_id", "dimension_type"),
		index.Fields("semantic_cluster"),
	}
}
