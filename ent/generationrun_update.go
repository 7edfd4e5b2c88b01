// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lernzeit/lernzeit/ent/generationrun"
	"github.com/lernzeit/lernzeit/ent/predicate"
)

// GenerationRunUpdate is the builder for updating GenerationRun entities.
type GenerationRunUpdate struct {
	config
	hooks    []Hook
	mutation *GenerationRunMutation
}

// Where appends a list predicates to the GenerationRunUpdate builder.
func (_u *GenerationRunUpdate) Where(ps ...predicate.GenerationRun) *GenerationRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *GenerationRunUpdate) SetRunID(v string) *GenerationRunUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *GenerationRunUpdate) SetNillableRunID(v *string) *GenerationRunUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetGapsTargeted sets the "gaps_targeted" field.
func (_u *GenerationRunUpdate) SetGapsTargeted(v int) *GenerationRunUpdate {
	_u.mutation.ResetGapsTargeted()
	_u.mutation.SetGapsTargeted(v)
	return _u
}

// SetNillableGapsTargeted sets the "gaps_targeted" field if the given value is not nil.
func (_u *GenerationRunUpdate) SetNillableGapsTargeted(v *int) *GenerationRunUpdate {
	if v != nil {
		_u.SetGapsTargeted(*v)
	}
	return _u
}

// AddGapsTargeted adds value to the "gaps_targeted" field.
func (_u *GenerationRunUpdate) AddGapsTargeted(v int) *GenerationRunUpdate {
	_u.mutation.AddGapsTargeted(v)
	return _u
}

// SetGenerated sets the "generated" field.
func (_u *GenerationRunUpdate) SetGenerated(v int) *GenerationRunUpdate {
	_u.mutation.ResetGenerated()
	_u.mutation.SetGenerated(v)
	return _u
}

// SetNillableGenerated sets the "generated" field if the given value is not nil.
func (_u *GenerationRunUpdate) SetNillableGenerated(v *int) *GenerationRunUpdate {
	if v != nil {
		_u.SetGenerated(*v)
	}
	return _u
}

// AddGenerated adds value to the "generated" field.
func (_u *GenerationRunUpdate) AddGenerated(v int) *GenerationRunUpdate {
	_u.mutation.AddGenerated(v)
	return _u
}

// SetRejected sets the "rejected" field.
func (_u *GenerationRunUpdate) SetRejected(v int) *GenerationRunUpdate {
	_u.mutation.ResetRejected()
	_u.mutation.SetRejected(v)
	return _u
}

// SetNillableRejected sets the "rejected" field if the given value is not nil.
func (_u *GenerationRunUpdate) SetNillableRejected(v *int) *GenerationRunUpdate {
	if v != nil {
		_u.SetRejected(*v)
	}
	return _u
}

// AddRejected adds value to the "rejected" field.
func (_u *GenerationRunUpdate) AddRejected(v int) *GenerationRunUpdate {
	_u.mutation.AddRejected(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *GenerationRunUpdate) SetFailed(v int) *GenerationRunUpdate {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *GenerationRunUpdate) SetNillableFailed(v *int) *GenerationRunUpdate {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *GenerationRunUpdate) AddFailed(v int) *GenerationRunUpdate {
	_u.mutation.AddFailed(v)
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *GenerationRunUpdate) SetFinishedAt(v time.Time) *GenerationRunUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *GenerationRunUpdate) SetNillableFinishedAt(v *time.Time) *GenerationRunUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *GenerationRunUpdate) ClearFinishedAt() *GenerationRunUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the GenerationRunMutation object of the builder.
func (_u *GenerationRunUpdate) Mutation() *GenerationRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GenerationRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GenerationRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GenerationRunUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := generationrun.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "GenerationRun.run_id": %w`, err)}
		}
	}
	return nil
}

func (_u *GenerationRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generationrun.Table, generationrun.Columns, sqlgraph.NewFieldSpec(generationrun.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(generationrun.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GapsTargeted(); ok {
		_spec.SetField(generationrun.FieldGapsTargeted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGapsTargeted(); ok {
		_spec.AddField(generationrun.FieldGapsTargeted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Generated(); ok {
		_spec.SetField(generationrun.FieldGenerated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGenerated(); ok {
		_spec.AddField(generationrun.FieldGenerated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rejected(); ok {
		_spec.SetField(generationrun.FieldRejected, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRejected(); ok {
		_spec.AddField(generationrun.FieldRejected, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(generationrun.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(generationrun.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(generationrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(generationrun.FieldFinishedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GenerationRunUpdateOne is the builder for updating a single GenerationRun entity.
type GenerationRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GenerationRunMutation
}

// SetRunID sets the "run_id" field.
func (_u *GenerationRunUpdateOne) SetRunID(v string) *GenerationRunUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *GenerationRunUpdateOne) SetNillableRunID(v *string) *GenerationRunUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetGapsTargeted sets the "gaps_targeted" field.
func (_u *GenerationRunUpdateOne) SetGapsTargeted(v int) *GenerationRunUpdateOne {
	_u.mutation.ResetGapsTargeted()
	_u.mutation.SetGapsTargeted(v)
	return _u
}

// SetNillableGapsTargeted sets the "gaps_targeted" field if the given value is not nil.
func (_u *GenerationRunUpdateOne) SetNillableGapsTargeted(v *int) *GenerationRunUpdateOne {
	if v != nil {
		_u.SetGapsTargeted(*v)
	}
	return _u
}

// AddGapsTargeted adds value to the "gaps_targeted" field.
func (_u *GenerationRunUpdateOne) AddGapsTargeted(v int) *GenerationRunUpdateOne {
	_u.mutation.AddGapsTargeted(v)
	return _u
}

// SetGenerated sets the "generated" field.
func (_u *GenerationRunUpdateOne) SetGenerated(v int) *GenerationRunUpdateOne {
	_u.mutation.ResetGenerated()
	_u.mutation.SetGenerated(v)
	return _u
}

// SetNillableGenerated sets the "generated" field if the given value is not nil.
func (_u *GenerationRunUpdateOne) SetNillableGenerated(v *int) *GenerationRunUpdateOne {
	if v != nil {
		_u.SetGenerated(*v)
	}
	return _u
}

// AddGenerated adds value to the "generated" field.
func (_u *GenerationRunUpdateOne) AddGenerated(v int) *GenerationRunUpdateOne {
	_u.mutation.AddGenerated(v)
	return _u
}

// SetRejected sets the "rejected" field.
func (_u *GenerationRunUpdateOne) SetRejected(v int) *GenerationRunUpdateOne {
	_u.mutation.ResetRejected()
	_u.mutation.SetRejected(v)
	return _u
}

// SetNillableRejected sets the "rejected" field if the given value is not nil.
func (_u *GenerationRunUpdateOne) SetNillableRejected(v *int) *GenerationRunUpdateOne {
	if v != nil {
		_u.SetRejected(*v)
	}
	return _u
}

// AddRejected adds value to the "rejected" field.
func (_u *GenerationRunUpdateOne) AddRejected(v int) *GenerationRunUpdateOne {
	_u.mutation.AddRejected(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *GenerationRunUpdateOne) SetFailed(v int) *GenerationRunUpdateOne {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *GenerationRunUpdateOne) SetNillableFailed(v *int) *GenerationRunUpdateOne {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *GenerationRunUpdateOne) AddFailed(v int) *GenerationRunUpdateOne {
	_u.mutation.AddFailed(v)
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *GenerationRunUpdateOne) SetFinishedAt(v time.Time) *GenerationRunUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *GenerationRunUpdateOne) SetNillableFinishedAt(v *time.Time) *GenerationRunUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *GenerationRunUpdateOne) ClearFinishedAt() *GenerationRunUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the GenerationRunMutation object of the builder.
func (_u *GenerationRunUpdateOne) Mutation() *GenerationRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the GenerationRunUpdate builder.
func (_u *GenerationRunUpdateOne) Where(ps ...predicate.GenerationRun) *GenerationRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GenerationRunUpdateOne) Select(field string, fields ...string) *GenerationRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GenerationRun entity.
func (_u *GenerationRunUpdateOne) Save(ctx context.Context) (*GenerationRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationRunUpdateOne) SaveX(ctx context.Context) *GenerationRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GenerationRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GenerationRunUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := generationrun.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "GenerationRun.run_id": %w`, err)}
		}
	}
	return nil
}

func (_u *GenerationRunUpdateOne) sqlSave(ctx context.Context) (_node *GenerationRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generationrun.Table, generationrun.Columns, sqlgraph.NewFieldSpec(generationrun.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GenerationRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generationrun.FieldID)
		for _, f := range fields {
			if !generationrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generationrun.FieldID {
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
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(generationrun.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GapsTargeted(); ok {
		_spec.SetField(generationrun.FieldGapsTargeted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGapsTargeted(); ok {
		_spec.AddField(generationrun.FieldGapsTargeted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Generated(); ok {
		_spec.SetField(generationrun.FieldGenerated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGenerated(); ok {
		_spec.AddField(generationrun.FieldGenerated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rejected(); ok {
		_spec.SetField(generationrun.FieldRejected, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRejected(); ok {
		_spec.AddField(generationrun.FieldRejected, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(generationrun.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(generationrun.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(generationrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(generationrun.FieldFinishedAt, field.TypeTime)
	}
	_node = &GenerationRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
