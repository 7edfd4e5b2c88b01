package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScenarioFamily defines a narrative frame ("shopping at the bakery") and
// which context dimensions apply to it.
type ScenarioFamily struct {
	ent.Schema
}

// SlotSpec describes a single context slot of a scenario family.
type SlotSpec struct {
	Required bool   `json:"required"`
	Hint     string `json:"hint,omitempty"`
}

func (ScenarioFamily) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique(),
		field.String("category").
			NotEmpty().
			Comment("Subject category the family belongs to, e.g. math, german"),
		field.Int("grade_min").
			Range(1, 10),
		field.Int("grade_max").
			Range(1, 10),
		field.Text("base_template").
			NotEmpty().
			Comment("Narrative template with {dimension} placeholders"),
		field.JSON("context_slots", map[string]SlotSpec{}).
			Comment("dimension name -> slot spec"),
		field.Int("difficulty_level").
			Default(1).
			Range(1, 3),
	}
}

func (ScenarioFamily) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category"),
		index.Fields("grade_min", "grade_max"),
	}
}
