// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lernzeit/lernzeit/ent/templatefeedback"
)

// TemplateFeedbackCreate is the builder for creating a TemplateFeedback entity.
type TemplateFeedbackCreate struct {
	config
	mutation *TemplateFeedbackMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *TemplateFeedbackCreate) SetUserID(v string) *TemplateFeedbackCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTemplateID sets the "template_id" field.
func (_c *TemplateFeedbackCreate) SetTemplateID(v int) *TemplateFeedbackCreate {
	_c.mutation.SetTemplateID(v)
	return _c
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_c *TemplateFeedbackCreate) SetNillableTemplateID(v *int) *TemplateFeedbackCreate {
	if v != nil {
		_c.SetTemplateID(*v)
	}
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *TemplateFeedbackCreate) SetPrompt(v string) *TemplateFeedbackCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetFeedbackType sets the "feedback_type" field.
func (_c *TemplateFeedbackCreate) SetFeedbackType(v string) *TemplateFeedbackCreate {
	_c.mutation.SetFeedbackType(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TemplateFeedbackCreate) SetCreatedAt(v time.Time) *TemplateFeedbackCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TemplateFeedbackCreate) SetNillableCreatedAt(v *time.Time) *TemplateFeedbackCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the TemplateFeedbackMutation object of the builder.
func (_c *TemplateFeedbackCreate) Mutation() *TemplateFeedbackMutation {
	return _c.mutation
}

// Save creates the TemplateFeedback in the database.
func (_c *TemplateFeedbackCreate) Save(ctx context.Context) (*TemplateFeedback, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TemplateFeedbackCreate) SaveX(ctx context.Context) *TemplateFeedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TemplateFeedbackCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TemplateFeedbackCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TemplateFeedbackCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := templatefeedback.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TemplateFeedbackCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TemplateFeedback.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := templatefeedback.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TemplateFeedback.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "TemplateFeedback.prompt"`)}
	}
	if v, ok := _c.mutation.Prompt(); ok {
		if err := templatefeedback.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "TemplateFeedback.prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FeedbackType(); !ok {
		return &ValidationError{Name: "feedback_type", err: errors.New(`ent: missing required field "TemplateFeedback.feedback_type"`)}
	}
	if v, ok := _c.mutation.FeedbackType(); ok {
		if err := templatefeedback.FeedbackTypeValidator(v); err != nil {
			return &ValidationError{Name: "feedback_type", err: fmt.Errorf(`ent: validator failed for field "TemplateFeedback.feedback_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TemplateFeedback.created_at"`)}
	}
	return nil
}

func (_c *TemplateFeedbackCreate) sqlSave(ctx context.Context) (*TemplateFeedback, error) {
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

func (_c *TemplateFeedbackCreate) createSpec() (*TemplateFeedback, *sqlgraph.CreateSpec) {
	var (
		_node = &TemplateFeedback{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(templatefeedback.Table, sqlgraph.NewFieldSpec(templatefeedback.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(templatefeedback.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TemplateID(); ok {
		_spec.SetField(templatefeedback.FieldTemplateID, field.TypeInt, value)
		_node.TemplateID = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(templatefeedback.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.FeedbackType(); ok {
		_spec.SetField(templatefeedback.FieldFeedbackType, field.TypeString, value)
		_node.FeedbackType = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(templatefeedback.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TemplateFeedbackCreateBulk is the builder for creating many TemplateFeedback entities in bulk.
type TemplateFeedbackCreateBulk struct {
	config
	err      error
	builders []*TemplateFeedbackCreate
}

// Save creates the TemplateFeedback entities in the database.
func (_c *TemplateFeedbackCreateBulk) Save(ctx context.Context) ([]*TemplateFeedback, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TemplateFeedback, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TemplateFeedbackMutation)
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
func (_c *TemplateFeedbackCreateBulk) SaveX(ctx context.Context) []*TemplateFeedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TemplateFeedbackCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TemplateFeedbackCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
