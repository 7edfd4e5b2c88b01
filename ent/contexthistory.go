// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lernzeit/lernzeit/ent/contexthistory"
)

// ContextHistory is the model entity for the ContextHistory schema.
type ContextHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// ScenarioFamilyID holds the value of the "scenario_family_id" field.
	ScenarioFamilyID int `json:"scenario_family_id,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Grade holds the value of the "grade" field.
	Grade int `json:"grade,omitempty"`
	// dimension -> chosen value snapshot
	Combination map[string]string `json:"combination,omitempty"`
	// Order-independent hash of the combination
	CombinationHash string `json:"combination_hash,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContextHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contexthistory.FieldCombination:
			values[i] = new([]byte)
		case contexthistory.FieldID, contexthistory.FieldScenarioFamilyID, contexthistory.FieldGrade:
			values[i] = new(sql.NullInt64)
		case contexthistory.FieldUserID, contexthistory.FieldCategory, contexthistory.FieldCombinationHash:
			values[i] = new(sql.NullString)
		case contexthistory.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContextHistory fields.
func (_m *ContextHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contexthistory.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case contexthistory.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case contexthistory.FieldScenarioFamilyID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field scenario_family_id", values[i])
			} else if value.Valid {
				_m.ScenarioFamilyID = int(value.Int64)
			}
		case contexthistory.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case contexthistory.FieldGrade:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field grade", values[i])
			} else if value.Valid {
				_m.Grade = int(value.Int64)
			}
		case contexthistory.FieldCombination:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field combination", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Combination); err != nil {
					return fmt.Errorf("unmarshal field combination: %w", err)
				}
			}
		case contexthistory.FieldCombinationHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field combination_hash", values[i])
			} else if value.Valid {
				_m.CombinationHash = value.String
			}
		case contexthistory.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ContextHistory.
// This includes values selected through modifiers, order, etc.
func (_m *ContextHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ContextHistory.
// Note that you need to call ContextHistory.Unwrap() before calling this method if this ContextHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ContextHistory) Update() *ContextHistoryUpdateOne {
	return NewContextHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ContextHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ContextHistory) Unwrap() *ContextHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ContextHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ContextHistory) String() string {
	var builder strings.Builder
	builder.WriteString("ContextHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("scenario_family_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScenarioFamilyID))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("grade=")
	builder.WriteString(fmt.Sprintf("%v", _m.Grade))
	builder.WriteString(", ")
	builder.WriteString("combination=")
	builder.WriteString(fmt.Sprintf("%v", _m.Combination))
	builder.WriteString(", ")
	builder.WriteString("combination_hash=")
	builder.WriteString(_m.CombinationHash)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ContextHistories is a parsable slice of ContextHistory.
type ContextHistories []*ContextHistory
