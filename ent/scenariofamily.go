// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lernzeit/lernzeit/ent/scenariofamily"
	"github.com/lernzeit/lernzeit/ent/schema"
)

// ScenarioFamily is the model entity for the ScenarioFamily schema.
type ScenarioFamily struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Subject category the family belongs to, e.g. math, german
	Category string `json:"category,omitempty"`
	// GradeMin holds the value of the "grade_min" field.
	GradeMin int `json:"grade_min,omitempty"`
	// GradeMax holds the value of the "grade_max" field.
	GradeMax int `json:"grade_max,omitempty"`
	// Narrative template with {dimension} placeholders
	BaseTemplate string `json:"base_template,omitempty"`
	// dimension name -> slot spec
	ContextSlots map[string]schema.SlotSpec `json:"context_slots,omitempty"`
	// DifficultyLevel holds the value of the "difficulty_level" field.
	DifficultyLevel int `json:"difficulty_level,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScenarioFamily) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scenariofamily.FieldContextSlots:
			values[i] = new([]byte)
		case scenariofamily.FieldID, scenariofamily.FieldGradeMin, scenariofamily.FieldGradeMax, scenariofamily.FieldDifficultyLevel:
			values[i] = new(sql.NullInt64)
		case scenariofamily.FieldName, scenariofamily.FieldCategory, scenariofamily.FieldBaseTemplate:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScenarioFamily fields.
func (_m *ScenarioFamily) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scenariofamily.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case scenariofamily.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case scenariofamily.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case scenariofamily.FieldGradeMin:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field grade_min", values[i])
			} else if value.Valid {
				_m.GradeMin = int(value.Int64)
			}
		case scenariofamily.FieldGradeMax:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field grade_max", values[i])
			} else if value.Valid {
				_m.GradeMax = int(value.Int64)
			}
		case scenariofamily.FieldBaseTemplate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field base_template", values[i])
			} else if value.Valid {
				_m.BaseTemplate = value.String
			}
		case scenariofamily.FieldContextSlots:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field context_slots", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ContextSlots); err != nil {
					return fmt.Errorf("unmarshal field context_slots: %w", err)
				}
			}
		case scenariofamily.FieldDifficultyLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_level", values[i])
			} else if value.Valid {
				_m.DifficultyLevel = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScenarioFamily.
// This includes values selected through modifiers, order, etc.
func (_m *ScenarioFamily) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScenarioFamily.
// Note that you need to call ScenarioFamily.Unwrap() before calling this method if this ScenarioFamily
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScenarioFamily) Update() *ScenarioFamilyUpdateOne {
	return NewScenarioFamilyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScenarioFamily entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScenarioFamily) Unwrap() *ScenarioFamily {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScenarioFamily is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScenarioFamily) String() string {
	var builder strings.Builder
	builder.WriteString("ScenarioFamily(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("grade_min=")
	builder.WriteString(fmt.Sprintf("%v", _m.GradeMin))
	builder.WriteString(", ")
	builder.WriteString("grade_max=")
	builder.WriteString(fmt.Sprintf("%v", _m.GradeMax))
	builder.WriteString(", ")
	builder.WriteString("base_template=")
	builder.WriteString(_m.BaseTemplate)
	builder.WriteString(", ")
	builder.WriteString("context_slots=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContextSlots))
	builder.WriteString(", ")
	builder.WriteString("difficulty_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.DifficultyLevel))
	builder.WriteByte(')')
	return builder.String()
}

// ScenarioFamilies is a parsable slice of ScenarioFamily.
type ScenarioFamilies []*ScenarioFamily
