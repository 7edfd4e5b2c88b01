// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/lernzeit/lernzeit/ent/predicate"
	"github.com/lernzeit/lernzeit/ent/template"
)

// TemplateUpdate is the builder for updating Template entities.
type TemplateUpdate struct {
	config
	hooks    []Hook
	mutation *TemplateMutation
}

// Where appends a list predicates to the TemplateUpdate builder.
func (_u *TemplateUpdate) Where(ps ...predicate.Template) *TemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGrade sets the "grade" field.
func (_u *TemplateUpdate) SetGrade(v int) *TemplateUpdate {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillableGrade(v *int) *TemplateUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *TemplateUpdate) AddGrade(v int) *TemplateUpdate {
	_u.mutation.AddGrade(v)
	return _u
}

// SetGradeApp sets the "grade_app" field.
func (_u *TemplateUpdate) SetGradeApp(v int) *TemplateUpdate {
	_u.mutation.ResetGradeApp()
	_u.mutation.SetGradeApp(v)
	return _u
}

// SetNillableGradeApp sets the "grade_app" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillableGradeApp(v *int) *TemplateUpdate {
	if v != nil {
		_u.SetGradeApp(*v)
	}
	return _u
}

// AddGradeApp adds value to the "grade_app" field.
func (_u *TemplateUpdate) AddGradeApp(v int) *TemplateUpdate {
	_u.mutation.AddGradeApp(v)
	return _u
}

// SetQuarterApp sets the "quarter_app" field.
func (_u *TemplateUpdate) SetQuarterApp(v string) *TemplateUpdate {
	_u.mutation.SetQuarterApp(v)
	return _u
}

// SetNillableQuarterApp sets the "quarter_app" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillableQuarterApp(v *string) *TemplateUpdate {
	if v != nil {
		_u.SetQuarterApp(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *TemplateUpdate) SetDomain(v string) *TemplateUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillableDomain(v *string) *TemplateUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetSubcategory sets the "subcategory" field.
func (_u *TemplateUpdate) SetSubcategory(v string) *TemplateUpdate {
	_u.mutation.SetSubcategory(v)
	return _u
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillableSubcategory(v *string) *TemplateUpdate {
	if v != nil {
		_u.SetSubcategory(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *TemplateUpdate) SetDifficulty(v string) *TemplateUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillableDifficulty(v *string) *TemplateUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *TemplateUpdate) SetQuestionType(v string) *TemplateUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillableQuestionType(v *string) *TemplateUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *TemplateUpdate) SetPrompt(v string) *TemplateUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillablePrompt(v *string) *TemplateUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetSolution sets the "solution" field.
func (_u *TemplateUpdate) SetSolution(v string) *TemplateUpdate {
	_u.mutation.SetSolution(v)
	return _u
}

// SetNillableSolution sets the "solution" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillableSolution(v *string) *TemplateUpdate {
	if v != nil {
		_u.SetSolution(*v)
	}
	return _u
}

// SetDistractors sets the "distractors" field.
func (_u *TemplateUpdate) SetDistractors(v []string) *TemplateUpdate {
	_u.mutation.SetDistractors(v)
	return _u
}

// AppendDistractors appends value to the "distractors" field.
func (_u *TemplateUpdate) AppendDistractors(v []string) *TemplateUpdate {
	_u.mutation.AppendDistractors(v)
	return _u
}

// ClearDistractors clears the value of the "distractors" field.
func (_u *TemplateUpdate) ClearDistractors() *TemplateUpdate {
	_u.mutation.ClearDistractors()
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *TemplateUpdate) SetQualityScore(v float64) *TemplateUpdate {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillableQualityScore(v *float64) *TemplateUpdate {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *TemplateUpdate) AddQualityScore(v float64) *TemplateUpdate {
	_u.mutation.AddQualityScore(v)
	return _u
}

// SetPlays sets the "plays" field.
func (_u *TemplateUpdate) SetPlays(v int) *TemplateUpdate {
	_u.mutation.ResetPlays()
	_u.mutation.SetPlays(v)
	return _u
}

// SetNillablePlays sets the "plays" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillablePlays(v *int) *TemplateUpdate {
	if v != nil {
		_u.SetPlays(*v)
	}
	return _u
}

// AddPlays adds value to the "plays" field.
func (_u *TemplateUpdate) AddPlays(v int) *TemplateUpdate {
	_u.mutation.AddPlays(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *TemplateUpdate) SetCorrect(v int) *TemplateUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillableCorrect(v *int) *TemplateUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *TemplateUpdate) AddCorrect(v int) *TemplateUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetRatingSum sets the "rating_sum" field.
func (_u *TemplateUpdate) SetRatingSum(v int) *TemplateUpdate {
	_u.mutation.ResetRatingSum()
	_u.mutation.SetRatingSum(v)
	return _u
}

// SetNillableRatingSum sets the "rating_sum" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillableRatingSum(v *int) *TemplateUpdate {
	if v != nil {
		_u.SetRatingSum(*v)
	}
	return _u
}

// AddRatingSum adds value to the "rating_sum" field.
func (_u *TemplateUpdate) AddRatingSum(v int) *TemplateUpdate {
	_u.mutation.AddRatingSum(v)
	return _u
}

// SetRatingCount sets the "rating_count" field.
func (_u *TemplateUpdate) SetRatingCount(v int) *TemplateUpdate {
	_u.mutation.ResetRatingCount()
	_u.mutation.SetRatingCount(v)
	return _u
}

// SetNillableRatingCount sets the "rating_count" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillableRatingCount(v *int) *TemplateUpdate {
	if v != nil {
		_u.SetRatingCount(*v)
	}
	return _u
}

// AddRatingCount adds value to the "rating_count" field.
func (_u *TemplateUpdate) AddRatingCount(v int) *TemplateUpdate {
	_u.mutation.AddRatingCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TemplateUpdate) SetStatus(v string) *TemplateUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillableStatus(v *string) *TemplateUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the TemplateMutation object of the builder.
func (_u *TemplateUpdate) Mutation() *TemplateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TemplateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TemplateUpdate) check() error {
	if v, ok := _u.mutation.Grade(); ok {
		if err := template.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Template.grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GradeApp(); ok {
		if err := template.GradeAppValidator(v); err != nil {
			return &ValidationError{Name: "grade_app", err: fmt.Errorf(`ent: validator failed for field "Template.grade_app": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuarterApp(); ok {
		if err := template.QuarterAppValidator(v); err != nil {
			return &ValidationError{Name: "quarter_app", err: fmt.Errorf(`ent: validator failed for field "Template.quarter_app": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Domain(); ok {
		if err := template.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "Template.domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subcategory(); ok {
		if err := template.SubcategoryValidator(v); err != nil {
			return &ValidationError{Name: "subcategory", err: fmt.Errorf(`ent: validator failed for field "Template.subcategory": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := template.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Template.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := template.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "Template.question_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := template.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Template.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Solution(); ok {
		if err := template.SolutionValidator(v); err != nil {
			return &ValidationError{Name: "solution", err: fmt.Errorf(`ent: validator failed for field "Template.solution": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QualityScore(); ok {
		if err := template.QualityScoreValidator(v); err != nil {
			return &ValidationError{Name: "quality_score", err: fmt.Errorf(`ent: validator failed for field "Template.quality_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Plays(); ok {
		if err := template.PlaysValidator(v); err != nil {
			return &ValidationError{Name: "plays", err: fmt.Errorf(`ent: validator failed for field "Template.plays": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Correct(); ok {
		if err := template.CorrectValidator(v); err != nil {
			return &ValidationError{Name: "correct", err: fmt.Errorf(`ent: validator failed for field "Template.correct": %w`, err)}
		}
	}
	return nil
}

func (_u *TemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(template.Table, template.Columns, sqlgraph.NewFieldSpec(template.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(template.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(template.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GradeApp(); ok {
		_spec.SetField(template.FieldGradeApp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGradeApp(); ok {
		_spec.AddField(template.FieldGradeApp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuarterApp(); ok {
		_spec.SetField(template.FieldQuarterApp, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(template.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subcategory(); ok {
		_spec.SetField(template.FieldSubcategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(template.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(template.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(template.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Solution(); ok {
		_spec.SetField(template.FieldSolution, field.TypeString, value)
	}
	if value, ok := _u.mutation.Distractors(); ok {
		_spec.SetField(template.FieldDistractors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDistractors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, template.FieldDistractors, value)
		})
	}
	if _u.mutation.DistractorsCleared() {
		_spec.ClearField(template.FieldDistractors, field.TypeJSON)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(template.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(template.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Plays(); ok {
		_spec.SetField(template.FieldPlays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlays(); ok {
		_spec.AddField(template.FieldPlays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(template.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(template.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RatingSum(); ok {
		_spec.SetField(template.FieldRatingSum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRatingSum(); ok {
		_spec.AddField(template.FieldRatingSum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RatingCount(); ok {
		_spec.SetField(template.FieldRatingCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRatingCount(); ok {
		_spec.AddField(template.FieldRatingCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(template.FieldStatus, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{template.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TemplateUpdateOne is the builder for updating a single Template entity.
type TemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TemplateMutation
}

// SetGrade sets the "grade" field.
func (_u *TemplateUpdateOne) SetGrade(v int) *TemplateUpdateOne {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillableGrade(v *int) *TemplateUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *TemplateUpdateOne) AddGrade(v int) *TemplateUpdateOne {
	_u.mutation.AddGrade(v)
	return _u
}

// SetGradeApp sets the "grade_app" field.
func (_u *TemplateUpdateOne) SetGradeApp(v int) *TemplateUpdateOne {
	_u.mutation.ResetGradeApp()
	_u.mutation.SetGradeApp(v)
	return _u
}

// SetNillableGradeApp sets the "grade_app" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillableGradeApp(v *int) *TemplateUpdateOne {
	if v != nil {
		_u.SetGradeApp(*v)
	}
	return _u
}

// AddGradeApp adds value to the "grade_app" field.
func (_u *TemplateUpdateOne) AddGradeApp(v int) *TemplateUpdateOne {
	_u.mutation.AddGradeApp(v)
	return _u
}

// SetQuarterApp sets the "quarter_app" field.
func (_u *TemplateUpdateOne) SetQuarterApp(v string) *TemplateUpdateOne {
	_u.mutation.SetQuarterApp(v)
	return _u
}

// SetNillableQuarterApp sets the "quarter_app" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillableQuarterApp(v *string) *TemplateUpdateOne {
	if v != nil {
		_u.SetQuarterApp(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *TemplateUpdateOne) SetDomain(v string) *TemplateUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillableDomain(v *string) *TemplateUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetSubcategory sets the "subcategory" field.
func (_u *TemplateUpdateOne) SetSubcategory(v string) *TemplateUpdateOne {
	_u.mutation.SetSubcategory(v)
	return _u
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillableSubcategory(v *string) *TemplateUpdateOne {
	if v != nil {
		_u.SetSubcategory(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *TemplateUpdateOne) SetDifficulty(v string) *TemplateUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillableDifficulty(v *string) *TemplateUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *TemplateUpdateOne) SetQuestionType(v string) *TemplateUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillableQuestionType(v *string) *TemplateUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *TemplateUpdateOne) SetPrompt(v string) *TemplateUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillablePrompt(v *string) *TemplateUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetSolution sets the "solution" field.
func (_u *TemplateUpdateOne) SetSolution(v string) *TemplateUpdateOne {
	_u.mutation.SetSolution(v)
	return _u
}

// SetNillableSolution sets the "solution" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillableSolution(v *string) *TemplateUpdateOne {
	if v != nil {
		_u.SetSolution(*v)
	}
	return _u
}

// SetDistractors sets the "distractors" field.
func (_u *TemplateUpdateOne) SetDistractors(v []string) *TemplateUpdateOne {
	_u.mutation.SetDistractors(v)
	return _u
}

// AppendDistractors appends value to the "distractors" field.
func (_u *TemplateUpdateOne) AppendDistractors(v []string) *TemplateUpdateOne {
	_u.mutation.AppendDistractors(v)
	return _u
}

// ClearDistractors clears the value of the "distractors" field.
func (_u *TemplateUpdateOne) ClearDistractors() *TemplateUpdateOne {
	_u.mutation.ClearDistractors()
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *TemplateUpdateOne) SetQualityScore(v float64) *TemplateUpdateOne {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillableQualityScore(v *float64) *TemplateUpdateOne {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *TemplateUpdateOne) AddQualityScore(v float64) *TemplateUpdateOne {
	_u.mutation.AddQualityScore(v)
	return _u
}

// SetPlays sets the "plays" field.
func (_u *TemplateUpdateOne) SetPlays(v int) *TemplateUpdateOne {
	_u.mutation.ResetPlays()
	_u.mutation.SetPlays(v)
	return _u
}

// SetNillablePlays sets the "plays" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillablePlays(v *int) *TemplateUpdateOne {
	if v != nil {
		_u.SetPlays(*v)
	}
	return _u
}

// AddPlays adds value to the "plays" field.
func (_u *TemplateUpdateOne) AddPlays(v int) *TemplateUpdateOne {
	_u.mutation.AddPlays(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *TemplateUpdateOne) SetCorrect(v int) *TemplateUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillableCorrect(v *int) *TemplateUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *TemplateUpdateOne) AddCorrect(v int) *TemplateUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetRatingSum sets the "rating_sum" field.
func (_u *TemplateUpdateOne) SetRatingSum(v int) *TemplateUpdateOne {
	_u.mutation.ResetRatingSum()
	_u.mutation.SetRatingSum(v)
	return _u
}

// SetNillableRatingSum sets the "rating_sum" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillableRatingSum(v *int) *TemplateUpdateOne {
	if v != nil {
		_u.SetRatingSum(*v)
	}
	return _u
}

// AddRatingSum adds value to the "rating_sum" field.
func (_u *TemplateUpdateOne) AddRatingSum(v int) *TemplateUpdateOne {
	_u.mutation.AddRatingSum(v)
	return _u
}

// SetRatingCount sets the "rating_count" field.
func (_u *TemplateUpdateOne) SetRatingCount(v int) *TemplateUpdateOne {
	_u.mutation.ResetRatingCount()
	_u.mutation.SetRatingCount(v)
	return _u
}

// SetNillableRatingCount sets the "rating_count" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillableRatingCount(v *int) *TemplateUpdateOne {
	if v != nil {
		_u.SetRatingCount(*v)
	}
	return _u
}

// AddRatingCount adds value to the "rating_count" field.
func (_u *TemplateUpdateOne) AddRatingCount(v int) *TemplateUpdateOne {
	_u.mutation.AddRatingCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TemplateUpdateOne) SetStatus(v string) *TemplateUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillableStatus(v *string) *TemplateUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the TemplateMutation object of the builder.
func (_u *TemplateUpdateOne) Mutation() *TemplateMutation {
	return _u.mutation
}

// Where appends a list predicates to the TemplateUpdate builder.
func (_u *TemplateUpdateOne) Where(ps ...predicate.Template) *TemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TemplateUpdateOne) Select(field string, fields ...string) *TemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Template entity.
func (_u *TemplateUpdateOne) Save(ctx context.Context) (*Template, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TemplateUpdateOne) SaveX(ctx context.Context) *Template {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TemplateUpdateOne) check() error {
	if v, ok := _u.mutation.Grade(); ok {
		if err := template.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Template.grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GradeApp(); ok {
		if err := template.GradeAppValidator(v); err != nil {
			return &ValidationError{Name: "grade_app", err: fmt.Errorf(`ent: validator failed for field "Template.grade_app": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuarterApp(); ok {
		if err := template.QuarterAppValidator(v); err != nil {
			return &ValidationError{Name: "quarter_app", err: fmt.Errorf(`ent: validator failed for field "Template.quarter_app": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Domain(); ok {
		if err := template.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "Template.domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subcategory(); ok {
		if err := template.SubcategoryValidator(v); err != nil {
			return &ValidationError{Name: "subcategory", err: fmt.Errorf(`ent: validator failed for field "Template.subcategory": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := template.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Template.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := template.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "Template.question_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := template.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Template.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Solution(); ok {
		if err := template.SolutionValidator(v); err != nil {
			return &ValidationError{Name: "solution", err: fmt.Errorf(`ent: validator failed for field "Template.solution": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QualityScore(); ok {
		if err := template.QualityScoreValidator(v); err != nil {
			return &ValidationError{Name: "quality_score", err: fmt.Errorf(`ent: validator failed for field "Template.quality_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Plays(); ok {
		if err := template.PlaysValidator(v); err != nil {
			return &ValidationError{Name: "plays", err: fmt.Errorf(`ent: validator failed for field "Template.plays": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Correct(); ok {
		if err := template.CorrectValidator(v); err != nil {
			return &ValidationError{Name: "correct", err: fmt.Errorf(`ent: validator failed for field "Template.correct": %w`, err)}
		}
	}
	return nil
}

func (_u *TemplateUpdateOne) sqlSave(ctx context.Context) (_node *Template, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(template.Table, template.Columns, sqlgraph.NewFieldSpec(template.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Template.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, template.FieldID)
		for _, f := range fields {
			if !template.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != template.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(template.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(template.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GradeApp(); ok {
		_spec.SetField(template.FieldGradeApp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGradeApp(); ok {
		_spec.AddField(template.FieldGradeApp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuarterApp(); ok {
		_spec.SetField(template.FieldQuarterApp, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(template.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subcategory(); ok {
		_spec.SetField(template.FieldSubcategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(template.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(template.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(template.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Solution(); ok {
		_spec.SetField(template.FieldSolution, field.TypeString, value)
	}
	if value, ok := _u.mutation.Distractors(); ok {
		_spec.SetField(template.FieldDistractors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDistractors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, template.FieldDistractors, value)
		})
	}
	if _u.mutation.DistractorsCleared() {
		_spec.ClearField(template.FieldDistractors, field.TypeJSON)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(template.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(template.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Plays(); ok {
		_spec.SetField(template.FieldPlays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlays(); ok {
		_spec.AddField(template.FieldPlays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(template.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(template.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RatingSum(); ok {
		_spec.SetField(template.FieldRatingSum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRatingSum(); ok {
		_spec.AddField(template.FieldRatingSum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RatingCount(); ok {
		_spec.SetField(template.FieldRatingCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRatingCount(); ok {
		_spec.AddField(template.FieldRatingCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(template.FieldStatus, field.TypeString, value)
	}
	_node = &Template{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{template.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
