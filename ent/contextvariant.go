// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lernzeit/lernzeit/ent/contextvariant"
)

// ContextVariant is the model entity for the ContextVariant schema.
type ContextVariant struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ScenarioFamilyID holds the value of the "scenario_family_id" field.
	ScenarioFamilyID int `json:"scenario_family_id,omitempty"`
	// location, character, activity, object, time_setting
	DimensionType string `json:"dimension_type,omitempty"`
	// Value holds the value of the "value" field.
	Value string `json:"value,omitempty"`
	// Groups variants that feel alike; empty if unclustered
	SemanticCluster string `json:"semantic_cluster,omitempty"`
	// UsageCount holds the value of the "usage_count" field.
	UsageCount int `json:"usage_count,omitempty"`
	// QualityScore holds the value of the "quality_score" field.
	QualityScore float64 `json:"quality_score,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContextVariant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contextvariant.FieldQualityScore:
			values[i] = new(sql.NullFloat64)
		case contextvariant.FieldID, contextvariant.FieldScenarioFamilyID, contextvariant.FieldUsageCount:
			values[i] = new(sql.NullInt64)
		case contextvariant.FieldDimensionType, contextvariant.FieldValue, contextvariant.FieldSemanticCluster:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContextVariant fields.
func (_m *ContextVariant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contextvariant.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case contextvariant.FieldScenarioFamilyID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field scenario_family_id", values[i])
			} else if value.Valid {
				_m.ScenarioFamilyID = int(value.Int64)
			}
		case contextvariant.FieldDimensionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dimension_type", values[i])
			} else if value.Valid {
				_m.DimensionType = value.String
			}
		case contextvariant.FieldValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.String
			}
		case contextvariant.FieldSemanticCluster:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field semantic_cluster", values[i])
			} else if value.Valid {
				_m.SemanticCluster = value.String
			}
		case contextvariant.FieldUsageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field usage_count", values[i])
			} else if value.Valid {
				_m.UsageCount = int(value.Int64)
			}
		case contextvariant.FieldQualityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quality_score", values[i])
			} else if value.Valid {
				_m.QualityScore = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the ContextVariant.
// This includes values selected through modifiers, order, etc.
func (_m *ContextVariant) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ContextVariant.
// Note that you need to call ContextVariant.Unwrap() before calling this method if this ContextVariant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ContextVariant) Update() *ContextVariantUpdateOne {
	return NewContextVariantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ContextVariant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ContextVariant) Unwrap() *ContextVariant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ContextVariant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ContextVariant) String() string {
	var builder strings.Builder
	builder.WriteString("ContextVariant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("scenario_family_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScenarioFamilyID))
	builder.WriteString(", ")
	builder.WriteString("dimension_type=")
	builder.WriteString(_m.DimensionType)
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(_m.Value)
	builder.WriteString(", ")
	builder.WriteString("semantic_cluster=")
	builder.WriteString(_m.SemanticCluster)
	builder.WriteString(", ")
	builder.WriteString("usage_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsageCount))
	builder.WriteString(", ")
	builder.WriteString("quality_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.QualityScore))
	builder.WriteByte(')')
	return builder.String()
}

// ContextVariants is a parsable slice of ContextVariant.
type ContextVariants []*ContextVariant
