// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lernzeit/lernzeit/ent/generationrun"
)

// GenerationRun is the model entity for the GenerationRun schema.
type GenerationRun struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// GapsTargeted holds the value of the "gaps_targeted" field.
	GapsTargeted int `json:"gaps_targeted,omitempty"`
	// Templates that passed validation and were stored
	Generated int `json:"generated,omitempty"`
	// Candidates rejected by validators
	Rejected int `json:"rejected,omitempty"`
	// LLM calls that errored after retries
	Failed int `json:"failed,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt   time.Time `json:"finished_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GenerationRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case generationrun.FieldID, generationrun.FieldGapsTargeted, generationrun.FieldGenerated, generationrun.FieldRejected, generationrun.FieldFailed:
			values[i] = new(sql.NullInt64)
		case generationrun.FieldRunID:
			values[i] = new(sql.NullString)
		case generationrun.FieldStartedAt, generationrun.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GenerationRun fields.
func (_m *GenerationRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case generationrun.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case generationrun.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case generationrun.FieldGapsTargeted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field gaps_targeted", values[i])
			} else if value.Valid {
				_m.GapsTargeted = int(value.Int64)
			}
		case generationrun.FieldGenerated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field generated", values[i])
			} else if value.Valid {
				_m.Generated = int(value.Int64)
			}
		case generationrun.FieldRejected:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rejected", values[i])
			} else if value.Valid {
				_m.Rejected = int(value.Int64)
			}
		case generationrun.FieldFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed", values[i])
			} else if value.Valid {
				_m.Failed = int(value.Int64)
			}
		case generationrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case generationrun.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GenerationRun.
// This includes values selected through modifiers, order, etc.
func (_m *GenerationRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GenerationRun.
// Note that you need to call GenerationRun.Unwrap() before calling this method if this GenerationRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GenerationRun) Update() *GenerationRunUpdateOne {
	return NewGenerationRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GenerationRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GenerationRun) Unwrap() *GenerationRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GenerationRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GenerationRun) String() string {
	var builder strings.Builder
	builder.WriteString("GenerationRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("gaps_targeted=")
	builder.WriteString(fmt.Sprintf("%v", _m.GapsTargeted))
	builder.WriteString(", ")
	builder.WriteString("generated=")
	builder.WriteString(fmt.Sprintf("%v", _m.Generated))
	builder.WriteString(", ")
	builder.WriteString("rejected=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rejected))
	builder.WriteString(", ")
	builder.WriteString("failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Failed))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("finished_at=")
	builder.WriteString(_m.FinishedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GenerationRuns is a parsable slice of GenerationRun.
type GenerationRuns []*GenerationRun
