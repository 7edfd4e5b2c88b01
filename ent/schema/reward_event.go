package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RewardEvent records screen-time minutes earned by a user.
type RewardEvent struct {
	ent.Schema
}

func (RewardEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RewardEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("session_id").NotEmpty(),
		field.Float("minutes").
			Min(0).
			Comment("Screen-time minutes awarded"),
		field.String("reason").
			NotEmpty().
			Comment("correct-answer, streak-bonus, session-complete"),
		field.Int("streak").
			Default(0).
			Comment("Consecutive correct answers at award time"),
	}
}

func (RewardEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("session_id"),
		index.Fields("reason"),
	}
}
