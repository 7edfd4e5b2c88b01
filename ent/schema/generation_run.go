package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GenerationRun records one batch-generation pass over the coverage gaps.
type GenerationRun struct {
	ent.Schema
}

func (GenerationRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Unique(),
		field.Int("gaps_targeted").
			Default(0),
		field.Int("generated").
			Default(0).
			Comment("Templates that passed validation and were stored"),
		field.Int("rejected").
			Default(0).
			Comment("Candidates rejected by validators"),
		field.Int("failed").
			Default(0).
			Comment("LLM calls that errored after retries"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("finished_at").
			Optional(),
	}
}

func (GenerationRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("started_at"),
	}
}
