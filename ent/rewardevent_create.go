// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lernzeit/lernzeit/ent/rewardevent"
)

// RewardEventCreate is the builder for creating a RewardEvent entity.
type RewardEventCreate struct {
	config
	mutation *RewardEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *RewardEventCreate) SetSequence(v int64) *RewardEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RewardEventCreate) SetTimestamp(v time.Time) *RewardEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RewardEventCreate) SetNillableTimestamp(v *time.Time) *RewardEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *RewardEventCreate) SetUserID(v string) *RewardEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *RewardEventCreate) SetSessionID(v string) *RewardEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetMinutes sets the "minutes" field.
func (_c *RewardEventCreate) SetMinutes(v float64) *RewardEventCreate {
	_c.mutation.SetMinutes(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *RewardEventCreate) SetReason(v string) *RewardEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetStreak sets the "streak" field.
func (_c *RewardEventCreate) SetStreak(v int) *RewardEventCreate {
	_c.mutation.SetStreak(v)
	return _c
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_c *RewardEventCreate) SetNillableStreak(v *int) *RewardEventCreate {
	if v != nil {
		_c.SetStreak(*v)
	}
	return _c
}

// Mutation returns the RewardEventMutation object of the builder.
func (_c *RewardEventCreate) Mutation() *RewardEventMutation {
	return _c.mutation
}

// Save creates the RewardEvent in the database.
func (_c *RewardEventCreate) Save(ctx context.Context) (*RewardEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RewardEventCreate) SaveX(ctx context.Context) *RewardEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RewardEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RewardEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RewardEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := rewardevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Streak(); !ok {
		v := rewardevent.DefaultStreak
		_c.mutation.SetStreak(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RewardEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RewardEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RewardEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "RewardEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := rewardevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "RewardEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := rewardevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Minutes(); !ok {
		return &ValidationError{Name: "minutes", err: errors.New(`ent: missing required field "RewardEvent.minutes"`)}
	}
	if v, ok := _c.mutation.Minutes(); ok {
		if err := rewardevent.MinutesValidator(v); err != nil {
			return &ValidationError{Name: "minutes", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "RewardEvent.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := rewardevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "RewardEvent.streak"`)}
	}
	return nil
}

func (_c *RewardEventCreate) sqlSave(ctx context.Context) (*RewardEvent, error) {
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

func (_c *RewardEventCreate) createSpec() (*RewardEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RewardEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rewardevent.Table, sqlgraph.NewFieldSpec(rewardevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(rewardevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(rewardevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(rewardevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(rewardevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Minutes(); ok {
		_spec.SetField(rewardevent.FieldMinutes, field.TypeFloat64, value)
		_node.Minutes = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(rewardevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Streak(); ok {
		_spec.SetField(rewardevent.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	return _node, _spec
}

// RewardEventCreateBulk is the builder for creating many RewardEvent entities in bulk.
type RewardEventCreateBulk struct {
	config
	err      error
	builders []*RewardEventCreate
}

// Save creates the RewardEvent entities in the database.
func (_c *RewardEventCreateBulk) Save(ctx context.Context) ([]*RewardEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RewardEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RewardEventMutation)
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
func (_c *RewardEventCreateBulk) SaveX(ctx context.Context) []*RewardEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RewardEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RewardEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
