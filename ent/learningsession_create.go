// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lernzeit/lernzeit/ent/learningsession"
)

// LearningSessionCreate is the builder for creating a LearningSession entity.
type LearningSessionCreate struct {
	config
	mutation *LearningSessionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *LearningSessionCreate) SetSessionID(v string) *LearningSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *LearningSessionCreate) SetUserID(v string) *LearningSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *LearningSessionCreate) SetCategory(v string) *LearningSessionCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetGrade sets the "grade" field.
func (_c *LearningSessionCreate) SetGrade(v int) *LearningSessionCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *LearningSessionCreate) SetCorrect(v int) *LearningSessionCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableCorrect(v *int) *LearningSessionCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// SetTotal sets the "total" field.
func (_c *LearningSessionCreate) SetTotal(v int) *LearningSessionCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableTotal(v *int) *LearningSessionCreate {
	if v != nil {
		_c.SetTotal(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *LearningSessionCreate) SetDurationSecs(v int) *LearningSessionCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableDurationSecs(v *int) *LearningSessionCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// SetTemplates sets the "templates" field.
func (_c *LearningSessionCreate) SetTemplates(v []int) *LearningSessionCreate {
	_c.mutation.SetTemplates(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LearningSessionCreate) SetCreatedAt(v time.Time) *LearningSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableCreatedAt(v *time.Time) *LearningSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the LearningSessionMutation object of the builder.
func (_c *LearningSessionCreate) Mutation() *LearningSessionMutation {
	return _c.mutation
}

// Save creates the LearningSession in the database.
func (_c *LearningSessionCreate) Save(ctx context.Context) (*LearningSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningSessionCreate) SaveX(ctx context.Context) *LearningSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningSessionCreate) defaults() {
	if _, ok := _c.mutation.Correct(); !ok {
		v := learningsession.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
	if _, ok := _c.mutation.Total(); !ok {
		v := learningsession.DefaultTotal
		_c.mutation.SetTotal(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := learningsession.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := learningsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningSessionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "LearningSession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := learningsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LearningSession.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LearningSession.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := learningsession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningSession.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "LearningSession.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := learningsession.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "LearningSession.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "LearningSession.grade"`)}
	}
	if v, ok := _c.mutation.Grade(); ok {
		if err := learningsession.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "LearningSession.grade": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "LearningSession.correct"`)}
	}
	if v, ok := _c.mutation.Correct(); ok {
		if err := learningsession.CorrectValidator(v); err != nil {
			return &ValidationError{Name: "correct", err: fmt.Errorf(`ent: validator failed for field "LearningSession.correct": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "LearningSession.total"`)}
	}
	if v, ok := _c.mutation.Total(); ok {
		if err := learningsession.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "LearningSession.total": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "LearningSession.duration_secs"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LearningSession.created_at"`)}
	}
	return nil
}

func (_c *LearningSessionCreate) sqlSave(ctx context.Context) (*LearningSession, error) {
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

func (_c *LearningSessionCreate) createSpec() (*LearningSession, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningsession.Table, sqlgraph.NewFieldSpec(learningsession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(learningsession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(learningsession.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(learningsession.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(learningsession.FieldGrade, field.TypeInt, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(learningsession.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(learningsession.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(learningsession.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	if value, ok := _c.mutation.Templates(); ok {
		_spec.SetField(learningsession.FieldTemplates, field.TypeJSON, value)
		_node.Templates = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(learningsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// LearningSessionCreateBulk is the builder for creating many LearningSession entities in bulk.
type LearningSessionCreateBulk struct {
	config
	err      error
	builders []*LearningSessionCreate
}

// Save creates the LearningSession entities in the database.
func (_c *LearningSessionCreateBulk) Save(ctx context.Context) ([]*LearningSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningSessionMutation)
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
func (_c *LearningSessionCreateBulk) SaveX(ctx context.Context) []*LearningSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
