// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lernzeit/lernzeit/ent/template"
)

// TemplateCreate is the builder for creating a Template entity.
type TemplateCreate struct {
	config
	mutation *TemplateMutation
	hooks    []Hook
}

// SetGrade sets the "grade" field.
func (_c *TemplateCreate) SetGrade(v int) *TemplateCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetGradeApp sets the "grade_app" field.
func (_c *TemplateCreate) SetGradeApp(v int) *TemplateCreate {
	_c.mutation.SetGradeApp(v)
	return _c
}

// SetQuarterApp sets the "quarter_app" field.
func (_c *TemplateCreate) SetQuarterApp(v string) *TemplateCreate {
	_c.mutation.SetQuarterApp(v)
	return _c
}

// SetDomain sets the "domain" field.
func (_c *TemplateCreate) SetDomain(v string) *TemplateCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetSubcategory sets the "subcategory" field.
func (_c *TemplateCreate) SetSubcategory(v string) *TemplateCreate {
	_c.mutation.SetSubcategory(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *TemplateCreate) SetDifficulty(v string) *TemplateCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *TemplateCreate) SetQuestionType(v string) *TemplateCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *TemplateCreate) SetPrompt(v string) *TemplateCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetSolution sets the "solution" field.
func (_c *TemplateCreate) SetSolution(v string) *TemplateCreate {
	_c.mutation.SetSolution(v)
	return _c
}

// SetDistractors sets the "distractors" field.
func (_c *TemplateCreate) SetDistractors(v []string) *TemplateCreate {
	_c.mutation.SetDistractors(v)
	return _c
}

// SetQualityScore sets the "quality_score" field.
func (_c *TemplateCreate) SetQualityScore(v float64) *TemplateCreate {
	_c.mutation.SetQualityScore(v)
	return _c
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_c *TemplateCreate) SetNillableQualityScore(v *float64) *TemplateCreate {
	if v != nil {
		_c.SetQualityScore(*v)
	}
	return _c
}

// SetPlays sets the "plays" field.
func (_c *TemplateCreate) SetPlays(v int) *TemplateCreate {
	_c.mutation.SetPlays(v)
	return _c
}

// SetNillablePlays sets the "plays" field if the given value is not nil.
func (_c *TemplateCreate) SetNillablePlays(v *int) *TemplateCreate {
	if v != nil {
		_c.SetPlays(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *TemplateCreate) SetCorrect(v int) *TemplateCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *TemplateCreate) SetNillableCorrect(v *int) *TemplateCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// SetRatingSum sets the "rating_sum" field.
func (_c *TemplateCreate) SetRatingSum(v int) *TemplateCreate {
	_c.mutation.SetRatingSum(v)
	return _c
}

// SetNillableRatingSum sets the "rating_sum" field if the given value is not nil.
func (_c *TemplateCreate) SetNillableRatingSum(v *int) *TemplateCreate {
	if v != nil {
		_c.SetRatingSum(*v)
	}
	return _c
}

// SetRatingCount sets the "rating_count" field.
func (_c *TemplateCreate) SetRatingCount(v int) *TemplateCreate {
	_c.mutation.SetRatingCount(v)
	return _c
}

// SetNillableRatingCount sets the "rating_count" field if the given value is not nil.
func (_c *TemplateCreate) SetNillableRatingCount(v *int) *TemplateCreate {
	if v != nil {
		_c.SetRatingCount(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TemplateCreate) SetStatus(v string) *TemplateCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TemplateCreate) SetNillableStatus(v *string) *TemplateCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TemplateCreate) SetCreatedAt(v time.Time) *TemplateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TemplateCreate) SetNillableCreatedAt(v *time.Time) *TemplateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the TemplateMutation object of the builder.
func (_c *TemplateCreate) Mutation() *TemplateMutation {
	return _c.mutation
}

// Save creates the Template in the database.
func (_c *TemplateCreate) Save(ctx context.Context) (*Template, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TemplateCreate) SaveX(ctx context.Context) *Template {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TemplateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TemplateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TemplateCreate) defaults() {
	if _, ok := _c.mutation.QualityScore(); !ok {
		v := template.DefaultQualityScore
		_c.mutation.SetQualityScore(v)
	}
	if _, ok := _c.mutation.Plays(); !ok {
		v := template.DefaultPlays
		_c.mutation.SetPlays(v)
	}
	if _, ok := _c.mutation.Correct(); !ok {
		v := template.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
	if _, ok := _c.mutation.RatingSum(); !ok {
		v := template.DefaultRatingSum
		_c.mutation.SetRatingSum(v)
	}
	if _, ok := _c.mutation.RatingCount(); !ok {
		v := template.DefaultRatingCount
		_c.mutation.SetRatingCount(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := template.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := template.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TemplateCreate) check() error {
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "Template.grade"`)}
	}
	if v, ok := _c.mutation.Grade(); ok {
		if err := template.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Template.grade": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GradeApp(); !ok {
		return &ValidationError{Name: "grade_app", err: errors.New(`ent: missing required field "Template.grade_app"`)}
	}
	if v, ok := _c.mutation.GradeApp(); ok {
		if err := template.GradeAppValidator(v); err != nil {
			return &ValidationError{Name: "grade_app", err: fmt.Errorf(`ent: validator failed for field "Template.grade_app": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuarterApp(); !ok {
		return &ValidationError{Name: "quarter_app", err: errors.New(`ent: missing required field "Template.quarter_app"`)}
	}
	if v, ok := _c.mutation.QuarterApp(); ok {
		if err := template.QuarterAppValidator(v); err != nil {
			return &ValidationError{Name: "quarter_app", err: fmt.Errorf(`ent: validator failed for field "Template.quarter_app": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "Template.domain"`)}
	}
	if v, ok := _c.mutation.Domain(); ok {
		if err := template.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "Template.domain": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subcategory(); !ok {
		return &ValidationError{Name: "subcategory", err: errors.New(`ent: missing required field "Template.subcategory"`)}
	}
	if v, ok := _c.mutation.Subcategory(); ok {
		if err := template.SubcategoryValidator(v); err != nil {
			return &ValidationError{Name: "subcategory", err: fmt.Errorf(`ent: validator failed for field "Template.subcategory": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Template.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := template.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Template.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "Template.question_type"`)}
	}
	if v, ok := _c.mutation.QuestionType(); ok {
		if err := template.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "Template.question_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "Template.prompt"`)}
	}
	if v, ok := _c.mutation.Prompt(); ok {
		if err := template.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Template.prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Solution(); !ok {
		return &ValidationError{Name: "solution", err: errors.New(`ent: missing required field "Template.solution"`)}
	}
	if v, ok := _c.mutation.Solution(); ok {
		if err := template.SolutionValidator(v); err != nil {
			return &ValidationError{Name: "solution", err: fmt.Errorf(`ent: validator failed for field "Template.solution": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QualityScore(); !ok {
		return &ValidationError{Name: "quality_score", err: errors.New(`ent: missing required field "Template.quality_score"`)}
	}
	if v, ok := _c.mutation.QualityScore(); ok {
		if err := template.QualityScoreValidator(v); err != nil {
			return &ValidationError{Name: "quality_score", err: fmt.Errorf(`ent: validator failed for field "Template.quality_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Plays(); !ok {
		return &ValidationError{Name: "plays", err: errors.New(`ent: missing required field "Template.plays"`)}
	}
	if v, ok := _c.mutation.Plays(); ok {
		if err := template.PlaysValidator(v); err != nil {
			return &ValidationError{Name: "plays", err: fmt.Errorf(`ent: validator failed for field "Template.plays": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "Template.correct"`)}
	}
	if v, ok := _c.mutation.Correct(); ok {
		if err := template.CorrectValidator(v); err != nil {
			return &ValidationError{Name: "correct", err: fmt.Errorf(`ent: validator failed for field "Template.correct": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RatingSum(); !ok {
		return &ValidationError{Name: "rating_sum", err: errors.New(`ent: missing required field "Template.rating_sum"`)}
	}
	if _, ok := _c.mutation.RatingCount(); !ok {
		return &ValidationError{Name: "rating_count", err: errors.New(`ent: missing required field "Template.rating_count"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Template.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Template.created_at"`)}
	}
	return nil
}

func (_c *TemplateCreate) sqlSave(ctx context.Context) (*Template, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TemplateCreate) createSpec() (*Template, *sqlgraph.CreateSpec) {
	var (
		_node = &Template{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(template.Table, sqlgraph.NewFieldSpec(template.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(template.FieldGrade, field.TypeInt, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.GradeApp(); ok {
		_spec.SetField(template.FieldGradeApp, field.TypeInt, value)
		_node.GradeApp = value
	}
	if value, ok := _c.mutation.QuarterApp(); ok {
		_spec.SetField(template.FieldQuarterApp, field.TypeString, value)
		_node.QuarterApp = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(template.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.Subcategory(); ok {
		_spec.SetField(template.FieldSubcategory, field.TypeString, value)
		_node.Subcategory = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(template.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(template.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(template.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Solution(); ok {
		_spec.SetField(template.FieldSolution, field.TypeString, value)
		_node.Solution = value
	}
	if value, ok := _c.mutation.Distractors(); ok {
		_spec.SetField(template.FieldDistractors, field.TypeJSON, value)
		_node.Distractors = value
	}
	if value, ok := _c.mutation.QualityScore(); ok {
		_spec.SetField(template.FieldQualityScore, field.TypeFloat64, value)
		_node.QualityScore = value
	}
	if value, ok := _c.mutation.Plays(); ok {
		_spec.SetField(template.FieldPlays, field.TypeInt, value)
		_node.Plays = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(template.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.RatingSum(); ok {
		_spec.SetField(template.FieldRatingSum, field.TypeInt, value)
		_node.RatingSum = value
	}
	if value, ok := _c.mutation.RatingCount(); ok {
		_spec.SetField(template.FieldRatingCount, field.TypeInt, value)
		_node.RatingCount = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(template.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(template.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TemplateCreateBulk is the builder for creating many Template entities in bulk.
type TemplateCreateBulk struct {
	config
	err      error
	builders []*TemplateCreate
}

// Save creates the Template entities in the database.
func (_c *TemplateCreateBulk) Save(ctx context.Context) ([]*Template, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Template, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TemplateMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TemplateCreateBulk) SaveX(ctx context.Context) []*Template {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TemplateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
