// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lernzeit/lernzeit/ent/template"
)

// Template is the model entity for the Template schema.
type Template struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Grade the question was written for
	Grade int `json:"grade,omitempty"`
	// Grade the question is applied to (may differ for review material)
	GradeApp int `json:"grade_app,omitempty"`
	// Q1-Q4
	QuarterApp string `json:"quarter_app,omitempty"`
	// Curriculum domain, e.g. Zahlen & Operationen
	Domain string `json:"domain,omitempty"`
	// Subcategory holds the value of the "subcategory" field.
	Subcategory string `json:"subcategory,omitempty"`
	// AFB I, AFB II or AFB III
	Difficulty string `json:"difficulty,omitempty"`
	// multiple-choice, text-input, sort or matching
	QuestionType string `json:"question_type,omitempty"`
	// Question text shown to the learner
	Prompt string `json:"prompt,omitempty"`
	// Solution holds the value of the "solution" field.
	Solution string `json:"solution,omitempty"`
	// Wrong options for multiple-choice
	Distractors []string `json:"distractors,omitempty"`
	// Set by the quality pipeline, never by the selector
	QualityScore float64 `json:"quality_score,omitempty"`
	// How often the template was selected
	Plays int `json:"plays,omitempty"`
	// How often it was answered correctly
	Correct int `json:"correct,omitempty"`
	// RatingSum holds the value of the "rating_sum" field.
	RatingSum int `json:"rating_sum,omitempty"`
	// RatingCount holds the value of the "rating_count" field.
	RatingCount int `json:"rating_count,omitempty"`
	// ACTIVE or ARCHIVED
	Status string `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Template) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case template.FieldDistractors:
			values[i] = new([]byte)
		case template.FieldQualityScore:
			values[i] = new(sql.NullFloat64)
		case template.FieldID, template.FieldGrade, template.FieldGradeApp, template.FieldPlays, template.FieldCorrect, template.FieldRatingSum, template.FieldRatingCount:
			values[i] = new(sql.NullInt64)
		case template.FieldQuarterApp, template.FieldDomain, template.FieldSubcategory, template.FieldDifficulty, template.FieldQuestionType, template.FieldPrompt, template.FieldSolution, template.FieldStatus:
			values[i] = new(sql.NullString)
		case template.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Template fields.
func (_m *Template) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case template.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case template.FieldGrade:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field grade", values[i])
			} else if value.Valid {
				_m.Grade = int(value.Int64)
			}
		case template.FieldGradeApp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field grade_app", values[i])
			} else if value.Valid {
				_m.GradeApp = int(value.Int64)
			}
		case template.FieldQuarterApp:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quarter_app", values[i])
			} else if value.Valid {
				_m.QuarterApp = value.String
			}
		case template.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case template.FieldSubcategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subcategory", values[i])
			} else if value.Valid {
				_m.Subcategory = value.String
			}
		case template.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case template.FieldQuestionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_type", values[i])
			} else if value.Valid {
				_m.QuestionType = value.String
			}
		case template.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case template.FieldSolution:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field solution", values[i])
			} else if value.Valid {
				_m.Solution = value.String
			}
		case template.FieldDistractors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field distractors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Distractors); err != nil {
					return fmt.Errorf("unmarshal field distractors: %w", err)
				}
			}
		case template.FieldQualityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quality_score", values[i])
			} else if value.Valid {
				_m.QualityScore = value.Float64
			}
		case template.FieldPlays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field plays", values[i])
			} else if value.Valid {
				_m.Plays = int(value.Int64)
			}
		case template.FieldCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = int(value.Int64)
			}
		case template.FieldRatingSum:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rating_sum", values[i])
			} else if value.Valid {
				_m.RatingSum = int(value.Int64)
			}
		case template.FieldRatingCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rating_count", values[i])
			} else if value.Valid {
				_m.RatingCount = int(value.Int64)
			}
		case template.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case template.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Template.
// This includes values selected through modifiers, order, etc.
func (_m *Template) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Template.
// Note that you need to call Template.Unwrap() before calling this method if this Template
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Template) Update() *TemplateUpdateOne {
	return NewTemplateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Template entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Template) Unwrap() *Template {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Template is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Template) String() string {
	var builder strings.Builder
	builder.WriteString("Template(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("grade=")
	builder.WriteString(fmt.Sprintf("%v", _m.Grade))
	builder.WriteString(", ")
	builder.WriteString("grade_app=")
	builder.WriteString(fmt.Sprintf("%v", _m.GradeApp))
	builder.WriteString(", ")
	builder.WriteString("quarter_app=")
	builder.WriteString(_m.QuarterApp)
	builder.WriteString(", ")
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("subcategory=")
	builder.WriteString(_m.Subcategory)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("question_type=")
	builder.WriteString(_m.QuestionType)
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("solution=")
	builder.WriteString(_m.Solution)
	builder.WriteString(", ")
	builder.WriteString("distractors=")
	builder.WriteString(fmt.Sprintf("%v", _m.Distractors))
	builder.WriteString(", ")
	builder.WriteString("quality_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.QualityScore))
	builder.WriteString(", ")
	builder.WriteString("plays=")
	builder.WriteString(fmt.Sprintf("%v", _m.Plays))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("rating_sum=")
	builder.WriteString(fmt.Sprintf("%v", _m.RatingSum))
	builder.WriteString(", ")
	builder.WriteString("rating_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RatingCount))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Templates is a parsable slice of Template.
type Templates []*Template
