// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lernzeit/lernzeit/ent/contexthistory"
	"github.com/lernzeit/lernzeit/ent/predicate"
)

// ContextHistoryUpdate is the builder for updating ContextHistory entities.
type ContextHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *ContextHistoryMutation
}

// Where appends a list predicates to the ContextHistoryUpdate builder.
func (_u *ContextHistoryUpdate) Where(ps ...predicate.ContextHistory) *ContextHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ContextHistoryUpdate) SetUserID(v string) *ContextHistoryUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ContextHistoryUpdate) SetNillableUserID(v *string) *ContextHistoryUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetScenarioFamilyID sets the "scenario_family_id" field.
func (_u *ContextHistoryUpdate) SetScenarioFamilyID(v int) *ContextHistoryUpdate {
	_u.mutation.ResetScenarioFamilyID()
	_u.mutation.SetScenarioFamilyID(v)
	return _u
}

// SetNillableScenarioFamilyID sets the "scenario_family_id" field if the given value is not nil.
func (_u *ContextHistoryUpdate) SetNillableScenarioFamilyID(v *int) *ContextHistoryUpdate {
	if v != nil {
		_u.SetScenarioFamilyID(*v)
	}
	return _u
}

// AddScenarioFamilyID adds value to the "scenario_family_id" field.
func (_u *ContextHistoryUpdate) AddScenarioFamilyID(v int) *ContextHistoryUpdate {
	_u.mutation.AddScenarioFamilyID(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *ContextHistoryUpdate) SetCategory(v string) *ContextHistoryUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ContextHistoryUpdate) SetNillableCategory(v *string) *ContextHistoryUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *ContextHistoryUpdate) SetGrade(v int) *ContextHistoryUpdate {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *ContextHistoryUpdate) SetNillableGrade(v *int) *ContextHistoryUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *ContextHistoryUpdate) AddGrade(v int) *ContextHistoryUpdate {
	_u.mutation.AddGrade(v)
	return _u
}

// SetCombination sets the "combination" field.
func (_u *ContextHistoryUpdate) SetCombination(v map[string]string) *ContextHistoryUpdate {
	_u.mutation.SetCombination(v)
	return _u
}

// SetCombinationHash sets the "combination_hash" field.
func (_u *ContextHistoryUpdate) SetCombinationHash(v string) *ContextHistoryUpdate {
	_u.mutation.SetCombinationHash(v)
	return _u
}

// SetNillableCombinationHash sets the "combination_hash" field if the given value is not nil.
func (_u *ContextHistoryUpdate) SetNillableCombinationHash(v *string) *ContextHistoryUpdate {
	if v != nil {
		_u.SetCombinationHash(*v)
	}
	return _u
}

// Mutation returns the ContextHistoryMutation object of the builder.
func (_u *ContextHistoryUpdate) Mutation() *ContextHistoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContextHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContextHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContextHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContextHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContextHistoryUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := contexthistory.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ContextHistory.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := contexthistory.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ContextHistory.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Grade(); ok {
		if err := contexthistory.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "ContextHistory.grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CombinationHash(); ok {
		if err := contexthistory.CombinationHashValidator(v); err != nil {
			return &ValidationError{Name: "combination_hash", err: fmt.Errorf(`ent: validator failed for field "ContextHistory.combination_hash": %w`, err)}
		}
	}
	return nil
}

func (_u *ContextHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contexthistory.Table, contexthistory.Columns, sqlgraph.NewFieldSpec(contexthistory.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(contexthistory.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScenarioFamilyID(); ok {
		_spec.SetField(contexthistory.FieldScenarioFamilyID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScenarioFamilyID(); ok {
		_spec.AddField(contexthistory.FieldScenarioFamilyID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(contexthistory.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(contexthistory.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(contexthistory.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Combination(); ok {
		_spec.SetField(contexthistory.FieldCombination, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CombinationHash(); ok {
		_spec.SetField(contexthistory.FieldCombinationHash, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contexthistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContextHistoryUpdateOne is the builder for updating a single ContextHistory entity.
type ContextHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContextHistoryMutation
}

// SetUserID sets the "user_id" field.
func (_u *ContextHistoryUpdateOne) SetUserID(v string) *ContextHistoryUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ContextHistoryUpdateOne) SetNillableUserID(v *string) *ContextHistoryUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetScenarioFamilyID sets the "scenario_family_id" field.
func (_u *ContextHistoryUpdateOne) SetScenarioFamilyID(v int) *ContextHistoryUpdateOne {
	_u.mutation.ResetScenarioFamilyID()
	_u.mutation.SetScenarioFamilyID(v)
	return _u
}

// SetNillableScenarioFamilyID sets the "scenario_family_id" field if the given value is not nil.
func (_u *ContextHistoryUpdateOne) SetNillableScenarioFamilyID(v *int) *ContextHistoryUpdateOne {
	if v != nil {
		_u.SetScenarioFamilyID(*v)
	}
	return _u
}

// AddScenarioFamilyID adds value to the "scenario_family_id" field.
func (_u *ContextHistoryUpdateOne) AddScenarioFamilyID(v int) *ContextHistoryUpdateOne {
	_u.mutation.AddScenarioFamilyID(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *ContextHistoryUpdateOne) SetCategory(v string) *ContextHistoryUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ContextHistoryUpdateOne) SetNillableCategory(v *string) *ContextHistoryUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *ContextHistoryUpdateOne) SetGrade(v int) *ContextHistoryUpdateOne {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *ContextHistoryUpdateOne) SetNillableGrade(v *int) *ContextHistoryUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *ContextHistoryUpdateOne) AddGrade(v int) *ContextHistoryUpdateOne {
	_u.mutation.AddGrade(v)
	return _u
}

// SetCombination sets the "combination" field.
func (_u *ContextHistoryUpdateOne) SetCombination(v map[string]string) *ContextHistoryUpdateOne {
	_u.mutation.SetCombination(v)
	return _u
}

// SetCombinationHash sets the "combination_hash" field.
func (_u *ContextHistoryUpdateOne) SetCombinationHash(v string) *ContextHistoryUpdateOne {
	_u.mutation.SetCombinationHash(v)
	return _u
}

// SetNillableCombinationHash sets the "combination_hash" field if the given value is not nil.
func (_u *ContextHistoryUpdateOne) SetNillableCombinationHash(v *string) *ContextHistoryUpdateOne {
	if v != nil {
		_u.SetCombinationHash(*v)
	}
	return _u
}

// Mutation returns the ContextHistoryMutation object of the builder.
func (_u *ContextHistoryUpdateOne) Mutation() *ContextHistoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContextHistoryUpdate builder.
func (_u *ContextHistoryUpdateOne) Where(ps ...predicate.ContextHistory) *ContextHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContextHistoryUpdateOne) Select(field string, fields ...string) *ContextHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContextHistory entity.
func (_u *ContextHistoryUpdateOne) Save(ctx context.Context) (*ContextHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContextHistoryUpdateOne) SaveX(ctx context.Context) *ContextHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContextHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContextHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContextHistoryUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := contexthistory.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ContextHistory.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := contexthistory.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ContextHistory.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Grade(); ok {
		if err := contexthistory.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "ContextHistory.grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CombinationHash(); ok {
		if err := contexthistory.CombinationHashValidator(v); err != nil {
			return &ValidationError{Name: "combination_hash", err: fmt.Errorf(`ent: validator failed for field "ContextHistory.combination_hash": %w`, err)}
		}
	}
	return nil
}

func (_u *ContextHistoryUpdateOne) sqlSave(ctx context.Context) (_node *ContextHistory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contexthistory.Table, contexthistory.Columns, sqlgraph.NewFieldSpec(contexthistory.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContextHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contexthistory.FieldID)
		for _, f := range fields {
			if !contexthistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contexthistory.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(contexthistory.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScenarioFamilyID(); ok {
		_spec.SetField(contexthistory.FieldScenarioFamilyID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScenarioFamilyID(); ok {
		_spec.AddField(contexthistory.FieldScenarioFamilyID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(contexthistory.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(contexthistory.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(contexthistory.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Combination(); ok {
		_spec.SetField(contexthistory.FieldCombination, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CombinationHash(); ok {
		_spec.SetField(contexthistory.FieldCombinationHash, field.TypeString, value)
	}
	_node = &ContextHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contexthistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
