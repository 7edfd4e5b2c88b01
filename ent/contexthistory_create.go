// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lernzeit/lernzeit/ent/contexthistory"
)

// ContextHistoryCreate is the builder for creating a ContextHistory entity.
type ContextHistoryCreate struct {
	config
	mutation *ContextHistoryMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ContextHistoryCreate) SetUserID(v string) *ContextHistoryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetScenarioFamilyID sets the "scenario_family_id" field.
func (_c *ContextHistoryCreate) SetScenarioFamilyID(v int) *ContextHistoryCreate {
	_c.mutation.SetScenarioFamilyID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *ContextHistoryCreate) SetCategory(v string) *ContextHistoryCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetGrade sets the "grade" field.
func (_c *ContextHistoryCreate) SetGrade(v int) *ContextHistoryCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetCombination sets the "combination" field.
func (_c *ContextHistoryCreate) SetCombination(v map[string]string) *ContextHistoryCreate {
	_c.mutation.SetCombination(v)
	return _c
}

// SetCombinationHash sets the "combination_hash" field.
func (_c *ContextHistoryCreate) SetCombinationHash(v string) *ContextHistoryCreate {
	_c.mutation.SetCombinationHash(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContextHistoryCreate) SetCreatedAt(v time.Time) *ContextHistoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContextHistoryCreate) SetNillableCreatedAt(v *time.Time) *ContextHistoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ContextHistoryMutation object of the builder.
func (_c *ContextHistoryCreate) Mutation() *ContextHistoryMutation {
	return _c.mutation
}

// Save creates the ContextHistory in the database.
func (_c *ContextHistoryCreate) Save(ctx context.Context) (*ContextHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContextHistoryCreate) SaveX(ctx context.Context) *ContextHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContextHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContextHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContextHistoryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contexthistory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContextHistoryCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ContextHistory.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := contexthistory.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ContextHistory.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScenarioFamilyID(); !ok {
		return &ValidationError{Name: "scenario_family_id", err: errors.New(`ent: missing required field "ContextHistory.scenario_family_id"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "ContextHistory.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := contexthistory.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ContextHistory.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "ContextHistory.grade"`)}
	}
	if v, ok := _c.mutation.Grade(); ok {
		if err := contexthistory.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "ContextHistory.grade": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Combination(); !ok {
		return &ValidationError{Name: "combination", err: errors.New(`ent: missing required field "ContextHistory.combination"`)}
	}
	if _, ok := _c.mutation.CombinationHash(); !ok {
		return &ValidationError{Name: "combination_hash", err: errors.New(`ent: missing required field "ContextHistory.combination_hash"`)}
	}
	if v, ok := _c.mutation.CombinationHash(); ok {
		if err := contexthistory.CombinationHashValidator(v); err != nil {
			return &ValidationError{Name: "combination_hash", err: fmt.Errorf(`ent: validator failed for field "ContextHistory.combination_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ContextHistory.created_at"`)}
	}
	return nil
}

func (_c *ContextHistoryCreate) sqlSave(ctx context.Context) (*ContextHistory, error) {
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

func (_c *ContextHistoryCreate) createSpec() (*ContextHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &ContextHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contexthistory.Table, sqlgraph.NewFieldSpec(contexthistory.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(contexthistory.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ScenarioFamilyID(); ok {
		_spec.SetField(contexthistory.FieldScenarioFamilyID, field.TypeInt, value)
		_node.ScenarioFamilyID = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(contexthistory.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(contexthistory.FieldGrade, field.TypeInt, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.Combination(); ok {
		_spec.SetField(contexthistory.FieldCombination, field.TypeJSON, value)
		_node.Combination = value
	}
	if value, ok := _c.mutation.CombinationHash(); ok {
		_spec.SetField(contexthistory.FieldCombinationHash, field.TypeString, value)
		_node.CombinationHash = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contexthistory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ContextHistoryCreateBulk is the builder for creating many ContextHistory entities in bulk.
type ContextHistoryCreateBulk struct {
	config
	err      error
	builders []*ContextHistoryCreate
}

// Save creates the ContextHistory entities in the database.
func (_c *ContextHistoryCreateBulk) Save(ctx context.Context) ([]*ContextHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContextHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContextHistoryMutation)
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
func (_c *ContextHistoryCreateBulk) SaveX(ctx context.Context) []*ContextHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContextHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContextHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
