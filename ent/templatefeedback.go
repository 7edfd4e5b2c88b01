// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lernzeit/lernzeit/ent/templatefeedback"
)

// TemplateFeedback is the model entity for the TemplateFeedback schema.
type TemplateFeedback struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// TemplateID holds the value of the "template_id" field.
	TemplateID int `json:"template_id,omitempty"`
	// Exact prompt text the feedback refers to
	Prompt string `json:"prompt,omitempty"`
	// confusing, inappropriate, not_curriculum_compliant, too_easy, too_hard, good
	FeedbackType string `json:"feedback_type,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TemplateFeedback) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case templatefeedback.FieldID, templatefeedback.FieldTemplateID:
			values[i] = new(sql.NullInt64)
		case templatefeedback.FieldUserID, templatefeedback.FieldPrompt, templatefeedback.FieldFeedbackType:
			values[i] = new(sql.NullString)
		case templatefeedback.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TemplateFeedback fields.
func (_m *TemplateFeedback) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case templatefeedback.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case templatefeedback.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case templatefeedback.FieldTemplateID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field template_id", values[i])
			} else if value.Valid {
				_m.TemplateID = int(value.Int64)
			}
		case templatefeedback.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case templatefeedback.FieldFeedbackType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback_type", values[i])
			} else if value.Valid {
				_m.FeedbackType = value.String
			}
		case templatefeedback.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TemplateFeedback.
// This includes values selected through modifiers, order, etc.
func (_m *TemplateFeedback) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TemplateFeedback.
// Note that you need to call TemplateFeedback.Unwrap() before calling this method if this TemplateFeedback
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TemplateFeedback) Update() *TemplateFeedbackUpdateOne {
	return NewTemplateFeedbackClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TemplateFeedback entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TemplateFeedback) Unwrap() *TemplateFeedback {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TemplateFeedback is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TemplateFeedback) String() string {
	var builder strings.Builder
	builder.WriteString("TemplateFeedback(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("template_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TemplateID))
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("feedback_type=")
	builder.WriteString(_m.FeedbackType)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TemplateFeedbacks is a parsable slice of TemplateFeedback.
type TemplateFeedbacks []*TemplateFeedback
