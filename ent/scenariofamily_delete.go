// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lernzeit/lernzeit/ent/predicate"
	"github.com/lernzeit/lernzeit/ent/scenariofamily"
)

// ScenarioFamilyDelete is the builder for deleting a ScenarioFamily entity.
type ScenarioFamilyDelete struct {
	config
	hooks    []Hook
	mutation *ScenarioFamilyMutation
}

// Where appends a list predicates to the ScenarioFamilyDelete builder.
func (_d *ScenarioFamilyDelete) Where(ps ...predicate.ScenarioFamily) *ScenarioFamilyDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ScenarioFamilyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ScenarioFamilyDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ScenarioFamilyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(scenariofamily.Table, sqlgraph.NewFieldSpec(scenariofamily.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ScenarioFamilyDeleteOne is the builder for deleting a single ScenarioFamily entity.
type ScenarioFamilyDeleteOne struct {
	_d *ScenarioFamilyDelete
}

// Where appends a list predicates to the ScenarioFamilyDelete builder.
func (_d *ScenarioFamilyDeleteOne) Where(ps ...predicate.ScenarioFamily) *ScenarioFamilyDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ScenarioFamilyDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{scenariofamily.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ScenarioFamilyDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
