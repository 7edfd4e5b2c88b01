// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lernzeit/lernzeit/ent/predicate"
	"github.com/lernzeit/lernzeit/ent/scenariofamily"
	"github.com/lernzeit/lernzeit/ent/schema"
)

// ScenarioFamilyUpdate is the builder for updating ScenarioFamily entities.
type ScenarioFamilyUpdate struct {
	config
	hooks    []Hook
	mutation *ScenarioFamilyMutation
}

// Where appends a list predicates to the ScenarioFamilyUpdate builder.
func (_u *ScenarioFamilyUpdate) Where(ps ...predicate.ScenarioFamily) *ScenarioFamilyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ScenarioFamilyUpdate) SetName(v string) *ScenarioFamilyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ScenarioFamilyUpdate) SetNillableName(v *string) *ScenarioFamilyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ScenarioFamilyUpdate) SetCategory(v string) *ScenarioFamilyUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ScenarioFamilyUpdate) SetNillableCategory(v *string) *ScenarioFamilyUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetGradeMin sets the "grade_min" field.
func (_u *ScenarioFamilyUpdate) SetGradeMin(v int) *ScenarioFamilyUpdate {
	_u.mutation.ResetGradeMin()
	_u.mutation.SetGradeMin(v)
	return _u
}

// SetNillableGradeMin sets the "grade_min" field if the given value is not nil.
func (_u *ScenarioFamilyUpdate) SetNillableGradeMin(v *int) *ScenarioFamilyUpdate {
	if v != nil {
		_u.SetGradeMin(*v)
	}
	return _u
}

// AddGradeMin adds value to the "grade_min" field.
func (_u *ScenarioFamilyUpdate) AddGradeMin(v int) *ScenarioFamilyUpdate {
	_u.mutation.AddGradeMin(v)
	return _u
}

// SetGradeMax sets the "grade_max" field.
func (_u *ScenarioFamilyUpdate) SetGradeMax(v int) *ScenarioFamilyUpdate {
	_u.mutation.ResetGradeMax()
	_u.mutation.SetGradeMax(v)
	return _u
}

// SetNillableGradeMax sets the "grade_max" field if the given value is not nil.
func (_u *ScenarioFamilyUpdate) SetNillableGradeMax(v *int) *ScenarioFamilyUpdate {
	if v != nil {
		_u.SetGradeMax(*v)
	}
	return _u
}

// AddGradeMax adds value to the "grade_max" field.
func (_u *ScenarioFamilyUpdate) AddGradeMax(v int) *ScenarioFamilyUpdate {
	_u.mutation.AddGradeMax(v)
	return _u
}

// SetBaseTemplate sets the "base_template" field.
func (_u *ScenarioFamilyUpdate) SetBaseTemplate(v string) *ScenarioFamilyUpdate {
	_u.mutation.SetBaseTemplate(v)
	return _u
}

// SetNillableBaseTemplate sets the "base_template" field if the given value is not nil.
func (_u *ScenarioFamilyUpdate) SetNillableBaseTemplate(v *string) *ScenarioFamilyUpdate {
	if v != nil {
		_u.SetBaseTemplate(*v)
	}
	return _u
}

// SetContextSlots sets the "context_slots" field.
func (_u *ScenarioFamilyUpdate) SetContextSlots(v map[string]schema.SlotSpec) *ScenarioFamilyUpdate {
	_u.mutation.SetContextSlots(v)
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *ScenarioFamilyUpdate) SetDifficultyLevel(v int) *ScenarioFamilyUpdate {
	_u.mutation.ResetDifficultyLevel()
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *ScenarioFamilyUpdate) SetNillableDifficultyLevel(v *int) *ScenarioFamilyUpdate {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// AddDifficultyLevel adds value to the "difficulty_level" field.
func (_u *ScenarioFamilyUpdate) AddDifficultyLevel(v int) *ScenarioFamilyUpdate {
	_u.mutation.AddDifficultyLevel(v)
	return _u
}

// Mutation returns the ScenarioFamilyMutation object of the builder.
func (_u *ScenarioFamilyUpdate) Mutation() *ScenarioFamilyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScenarioFamilyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScenarioFamilyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScenarioFamilyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScenarioFamilyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScenarioFamilyUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := scenariofamily.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ScenarioFamily.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := scenariofamily.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ScenarioFamily.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GradeMin(); ok {
		if err := scenariofamily.GradeMinValidator(v); err != nil {
			return &ValidationError{Name: "grade_min", err: fmt.Errorf(`ent: validator failed for field "ScenarioFamily.grade_min": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GradeMax(); ok {
		if err := scenariofamily.GradeMaxValidator(v); err != nil {
			return &ValidationError{Name: "grade_max", err: fmt.Errorf(`ent: validator failed for field "ScenarioFamily.grade_max": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BaseTemplate(); ok {
		if err := scenariofamily.BaseTemplateValidator(v); err != nil {
			return &ValidationError{Name: "base_template", err: fmt.Errorf(`ent: validator failed for field "ScenarioFamily.base_template": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DifficultyLevel(); ok {
		if err := scenariofamily.DifficultyLevelValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_level", err: fmt.Errorf(`ent: validator failed for field "ScenarioFamily.difficulty_level": %w`, err)}
		}
	}
	return nil
}

func (_u *ScenarioFamilyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scenariofamily.Table, scenariofamily.Columns, sqlgraph.NewFieldSpec(scenariofamily.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(scenariofamily.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(scenariofamily.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradeMin(); ok {
		_spec.SetField(scenariofamily.FieldGradeMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGradeMin(); ok {
		_spec.AddField(scenariofamily.FieldGradeMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GradeMax(); ok {
		_spec.SetField(scenariofamily.FieldGradeMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGradeMax(); ok {
		_spec.AddField(scenariofamily.FieldGradeMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BaseTemplate(); ok {
		_spec.SetField(scenariofamily.FieldBaseTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContextSlots(); ok {
		_spec.SetField(scenariofamily.FieldContextSlots, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(scenariofamily.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyLevel(); ok {
		_spec.AddField(scenariofamily.FieldDifficultyLevel, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scenariofamily.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScenarioFamilyUpdateOne is the builder for updating a single ScenarioFamily entity.
type ScenarioFamilyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScenarioFamilyMutation
}

// SetName sets the "name" field.
func (_u *ScenarioFamilyUpdateOne) SetName(v string) *ScenarioFamilyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ScenarioFamilyUpdateOne) SetNillableName(v *string) *ScenarioFamilyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ScenarioFamilyUpdateOne) SetCategory(v string) *ScenarioFamilyUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ScenarioFamilyUpdateOne) SetNillableCategory(v *string) *ScenarioFamilyUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetGradeMin sets the "grade_min" field.
func (_u *ScenarioFamilyUpdateOne) SetGradeMin(v int) *ScenarioFamilyUpdateOne {
	_u.mutation.ResetGradeMin()
	_u.mutation.SetGradeMin(v)
	return _u
}

// SetNillableGradeMin sets the "grade_min" field if the given value is not nil.
func (_u *ScenarioFamilyUpdateOne) SetNillableGradeMin(v *int) *ScenarioFamilyUpdateOne {
	if v != nil {
		_u.SetGradeMin(*v)
	}
	return _u
}

// AddGradeMin adds value to the "grade_min" field.
func (_u *ScenarioFamilyUpdateOne) AddGradeMin(v int) *ScenarioFamilyUpdateOne {
	_u.mutation.AddGradeMin(v)
	return _u
}

// SetGradeMax sets the "grade_max" field.
func (_u *ScenarioFamilyUpdateOne) SetGradeMax(v int) *ScenarioFamilyUpdateOne {
	_u.mutation.ResetGradeMax()
	_u.mutation.SetGradeMax(v)
	return _u
}

// SetNillableGradeMax sets the "grade_max" field if the given value is not nil.
func (_u *ScenarioFamilyUpdateOne) SetNillableGradeMax(v *int) *ScenarioFamilyUpdateOne {
	if v != nil {
		_u.SetGradeMax(*v)
	}
	return _u
}

// AddGradeMax adds value to the "grade_max" field.
func (_u *ScenarioFamilyUpdateOne) AddGradeMax(v int) *ScenarioFamilyUpdateOne {
	_u.mutation.AddGradeMax(v)
	return _u
}

// SetBaseTemplate sets the "base_template" field.
func (_u *ScenarioFamilyUpdateOne) SetBaseTemplate(v string) *ScenarioFamilyUpdateOne {
	_u.mutation.SetBaseTemplate(v)
	return _u
}

// SetNillableBaseTemplate sets the "base_template" field if the given value is not nil.
func (_u *ScenarioFamilyUpdateOne) SetNillableBaseTemplate(v *string) *ScenarioFamilyUpdateOne {
	if v != nil {
		_u.SetBaseTemplate(*v)
	}
	return _u
}

// SetContextSlots sets the "context_slots" field.
func (_u *ScenarioFamilyUpdateOne) SetContextSlots(v map[string]schema.SlotSpec) *ScenarioFamilyUpdateOne {
	_u.mutation.SetContextSlots(v)
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *ScenarioFamilyUpdateOne) SetDifficultyLevel(v int) *ScenarioFamilyUpdateOne {
	_u.mutation.ResetDifficultyLevel()
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *ScenarioFamilyUpdateOne) SetNillableDifficultyLevel(v *int) *ScenarioFamilyUpdateOne {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// AddDifficultyLevel adds value to the "difficulty_level" field.
func (_u *ScenarioFamilyUpdateOne) AddDifficultyLevel(v int) *ScenarioFamilyUpdateOne {
	_u.mutation.AddDifficultyLevel(v)
	return _u
}

// Mutation returns the ScenarioFamilyMutation object of the builder.
func (_u *ScenarioFamilyUpdateOne) Mutation() *ScenarioFamilyMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScenarioFamilyUpdate builder.
func (_u *ScenarioFamilyUpdateOne) Where(ps ...predicate.ScenarioFamily) *ScenarioFamilyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScenarioFamilyUpdateOne) Select(field string, fields ...string) *ScenarioFamilyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScenarioFamily entity.
func (_u *ScenarioFamilyUpdateOne) Save(ctx context.Context) (*ScenarioFamily, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScenarioFamilyUpdateOne) SaveX(ctx context.Context) *ScenarioFamily {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScenarioFamilyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScenarioFamilyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScenarioFamilyUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := scenariofamily.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ScenarioFamily.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := scenariofamily.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ScenarioFamily.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GradeMin(); ok {
		if err := scenariofamily.GradeMinValidator(v); err != nil {
			return &ValidationError{Name: "grade_min", err: fmt.Errorf(`ent: validator failed for field "ScenarioFamily.grade_min": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GradeMax(); ok {
		if err := scenariofamily.GradeMaxValidator(v); err != nil {
			return &ValidationError{Name: "grade_max", err: fmt.Errorf(`ent: validator failed for field "ScenarioFamily.grade_max": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BaseTemplate(); ok {
		if err := scenariofamily.BaseTemplateValidator(v); err != nil {
			return &ValidationError{Name: "base_template", err: fmt.Errorf(`ent: validator failed for field "ScenarioFamily.base_template": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DifficultyLevel(); ok {
		if err := scenariofamily.DifficultyLevelValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_level", err: fmt.Errorf(`ent: validator failed for field "ScenarioFamily.difficulty_level": %w`, err)}
		}
	}
	return nil
}

func (_u *ScenarioFamilyUpdateOne) sqlSave(ctx context.Context) (_node *ScenarioFamily, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scenariofamily.Table, scenariofamily.Columns, sqlgraph.NewFieldSpec(scenariofamily.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScenarioFamily.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scenariofamily.FieldID)
		for _, f := range fields {
			if !scenariofamily.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scenariofamily.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(scenariofamily.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(scenariofamily.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradeMin(); ok {
		_spec.SetField(scenariofamily.FieldGradeMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGradeMin(); ok {
		_spec.AddField(scenariofamily.FieldGradeMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GradeMax(); ok {
		_spec.SetField(scenariofamily.FieldGradeMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGradeMax(); ok {
		_spec.AddField(scenariofamily.FieldGradeMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BaseTemplate(); ok {
		_spec.SetField(scenariofamily.FieldBaseTemplate, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContextSlots(); ok {
		_spec.SetField(scenariofamily.FieldContextSlots, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(scenariofamily.FieldDifficultyLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficultyLevel(); ok {
		_spec.AddField(scenariofamily.FieldDifficultyLevel, field.TypeInt, value)
	}
	_node = &ScenarioFamily{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scenariofamily.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
