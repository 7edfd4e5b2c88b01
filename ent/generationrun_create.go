// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lernzeit/lernzeit/ent/generationrun"
)

// GenerationRunCreate is the builder for creating a GenerationRun entity.
type GenerationRunCreate struct {
	config
	mutation *GenerationRunMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *GenerationRunCreate) SetRunID(v string) *GenerationRunCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetGapsTargeted sets the "gaps_targeted" field.
func (_c *GenerationRunCreate) SetGapsTargeted(v int) *GenerationRunCreate {
	_c.mutation.SetGapsTargeted(v)
	return _c
}

// SetNillableGapsTargeted sets the "gaps_targeted" field if the given value is not nil.
func (_c *GenerationRunCreate) SetNillableGapsTargeted(v *int) *GenerationRunCreate {
	if v != nil {
		_c.SetGapsTargeted(*v)
	}
	return _c
}

// SetGenerated sets the "generated" field.
func (_c *GenerationRunCreate) SetGenerated(v int) *GenerationRunCreate {
	_c.mutation.SetGenerated(v)
	return _c
}

// SetNillableGenerated sets the "generated" field if the given value is not nil.
func (_c *GenerationRunCreate) SetNillableGenerated(v *int) *GenerationRunCreate {
	if v != nil {
		_c.SetGenerated(*v)
	}
	return _c
}

// SetRejected sets the "rejected" field.
func (_c *GenerationRunCreate) SetRejected(v int) *GenerationRunCreate {
	_c.mutation.SetRejected(v)
	return _c
}

// SetNillableRejected sets the "rejected" field if the given value is not nil.
func (_c *GenerationRunCreate) SetNillableRejected(v *int) *GenerationRunCreate {
	if v != nil {
		_c.SetRejected(*v)
	}
	return _c
}

// SetFailed sets the "failed" field.
func (_c *GenerationRunCreate) SetFailed(v int) *GenerationRunCreate {
	_c.mutation.SetFailed(v)
	return _c
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_c *GenerationRunCreate) SetNillableFailed(v *int) *GenerationRunCreate {
	if v != nil {
		_c.SetFailed(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *GenerationRunCreate) SetStartedAt(v time.Time) *GenerationRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *GenerationRunCreate) SetNillableStartedAt(v *time.Time) *GenerationRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *GenerationRunCreate) SetFinishedAt(v time.Time) *GenerationRunCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *GenerationRunCreate) SetNillableFinishedAt(v *time.Time) *GenerationRunCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// Mutation returns the GenerationRunMutation object of the builder.
func (_c *GenerationRunCreate) Mutation() *GenerationRunMutation {
	return _c.mutation
}

// Save creates the GenerationRun in the database.
func (_c *GenerationRunCreate) Save(ctx context.Context) (*GenerationRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GenerationRunCreate) SaveX(ctx context.Context) *GenerationRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GenerationRunCreate) defaults() {
	if _, ok := _c.mutation.GapsTargeted(); !ok {
		v := generationrun.DefaultGapsTargeted
		_c.mutation.SetGapsTargeted(v)
	}
	if _, ok := _c.mutation.Generated(); !ok {
		v := generationrun.DefaultGenerated
		_c.mutation.SetGenerated(v)
	}
	if _, ok := _c.mutation.Rejected(); !ok {
		v := generationrun.DefaultRejected
		_c.mutation.SetRejected(v)
	}
	if _, ok := _c.mutation.Failed(); !ok {
		v := generationrun.DefaultFailed
		_c.mutation.SetFailed(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := generationrun.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GenerationRunCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "GenerationRun.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := generationrun.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "GenerationRun.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GapsTargeted(); !ok {
		return &ValidationError{Name: "gaps_targeted", err: errors.New(`ent: missing required field "GenerationRun.gaps_targeted"`)}
	}
	if _, ok := _c.mutation.Generated(); !ok {
		return &ValidationError{Name: "generated", err: errors.New(`ent: missing required field "GenerationRun.generated"`)}
	}
	if _, ok := _c.mutation.Rejected(); !ok {
		return &ValidationError{Name: "rejected", err: errors.New(`ent: missing required field "GenerationRun.rejected"`)}
	}
	if _, ok := _c.mutation.Failed(); !ok {
		return &ValidationError{Name: "failed", err: errors.New(`ent: missing required field "GenerationRun.failed"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "GenerationRun.started_at"`)}
	}
	return nil
}

func (_c *GenerationRunCreate) sqlSave(ctx context.Context) (*GenerationRun, error) {
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

func (_c *GenerationRunCreate) createSpec() (*GenerationRun, *sqlgraph.CreateSpec) {
	var (
		_node = &GenerationRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(generationrun.Table, sqlgraph.NewFieldSpec(generationrun.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(generationrun.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.GapsTargeted(); ok {
		_spec.SetField(generationrun.FieldGapsTargeted, field.TypeInt, value)
		_node.GapsTargeted = value
	}
	if value, ok := _c.mutation.Generated(); ok {
		_spec.SetField(generationrun.FieldGenerated, field.TypeInt, value)
		_node.Generated = value
	}
	if value, ok := _c.mutation.Rejected(); ok {
		_spec.SetField(generationrun.FieldRejected, field.TypeInt, value)
		_node.Rejected = value
	}
	if value, ok := _c.mutation.Failed(); ok {
		_spec.SetField(generationrun.FieldFailed, field.TypeInt, value)
		_node.Failed = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(generationrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(generationrun.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = value
	}
	return _node, _spec
}

// GenerationRunCreateBulk is the builder for creating many GenerationRun entities in bulk.
type GenerationRunCreateBulk struct {
	config
	err      error
	builders []*GenerationRunCreate
}

// Save creates the GenerationRun entities in the database.
func (_c *GenerationRunCreateBulk) Save(ctx context.Context) ([]*GenerationRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GenerationRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GenerationRunMutation)
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
func (_c *GenerationRunCreateBulk) SaveX(ctx context.Context) []*GenerationRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GenerationRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GenerationRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
