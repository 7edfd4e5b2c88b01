// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lernzeit/lernzeit/ent/contextvariant"
	"github.com/lernzeit/lernzeit/ent/predicate"
)

// ContextVariantUpdate is the builder for updating ContextVariant entities.
type ContextVariantUpdate struct {
	config
	hooks    []Hook
	mutation *ContextVariantMutation
}

// Where appends a list predicates to the ContextVariantUpdate builder.
func (_u *ContextVariantUpdate) Where(ps ...predicate.ContextVariant) *ContextVariantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScenarioFamilyID sets the "scenario_family_id" field.
func (_u *ContextVariantUpdate) SetScenarioFamilyID(v int) *ContextVariantUpdate {
	_u.mutation.ResetScenarioFamilyID()
	_u.mutation.SetScenarioFamilyID(v)
	return _u
}

// SetNillableScenarioFamilyID sets the "scenario_family_id" field if the given value is not nil.
func (_u *ContextVariantUpdate) SetNillableScenarioFamilyID(v *int) *ContextVariantUpdate {
	if v != nil {
		_u.SetScenarioFamilyID(*v)
	}
	return _u
}

// AddScenarioFamilyID adds value to the "scenario_family_id" field.
func (_u *ContextVariantUpdate) AddScenarioFamilyID(v int) *ContextVariantUpdate {
	_u.mutation.AddScenarioFamilyID(v)
	return _u
}

// SetDimensionType sets the "dimension_type" field.
func (_u *ContextVariantUpdate) SetDimensionType(v string) *ContextVariantUpdate {
	_u.mutation.SetDimensionType(v)
	return _u
}

// SetNillableDimensionType sets the "dimension_type" field if the given value is not nil.
func (_u *ContextVariantUpdate) SetNillableDimensionType(v *string) *ContextVariantUpdate {
	if v != nil {
		_u.SetDimensionType(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *ContextVariantUpdate) SetValue(v string) *ContextVariantUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *ContextVariantUpdate) SetNillableValue(v *string) *ContextVariantUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetSemanticCluster sets the "semantic_cluster" field.
func (_u *ContextVariantUpdate) SetSemanticCluster(v string) *ContextVariantUpdate {
	_u.mutation.SetSemanticCluster(v)
	return _u
}

// SetNillableSemanticCluster sets the "semantic_cluster" field if the given value is not nil.
func (_u *ContextVariantUpdate) SetNillableSemanticCluster(v *string) *ContextVariantUpdate {
	if v != nil {
		_u.SetSemanticCluster(*v)
	}
	return _u
}

// ClearSemanticCluster clears the value of the "semantic_cluster" field.
func (_u *ContextVariantUpdate) ClearSemanticCluster() *ContextVariantUpdate {
	_u.mutation.ClearSemanticCluster()
	return _u
}

// SetUsageCount sets the "usage_count" field.
func (_u *ContextVariantUpdate) SetUsageCount(v int) *ContextVariantUpdate {
	_u.mutation.ResetUsageCount()
	_u.mutation.SetUsageCount(v)
	return _u
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_u *ContextVariantUpdate) SetNillableUsageCount(v *int) *ContextVariantUpdate {
	if v != nil {
		_u.SetUsageCount(*v)
	}
	return _u
}

// AddUsageCount adds value to the "usage_count" field.
func (_u *ContextVariantUpdate) AddUsageCount(v int) *ContextVariantUpdate {
	_u.mutation.AddUsageCount(v)
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *ContextVariantUpdate) SetQualityScore(v float64) *ContextVariantUpdate {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *ContextVariantUpdate) SetNillableQualityScore(v *float64) *ContextVariantUpdate {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *ContextVariantUpdate) AddQualityScore(v float64) *ContextVariantUpdate {
	_u.mutation.AddQualityScore(v)
	return _u
}

// Mutation returns the ContextVariantMutation object of the builder.
func (_u *ContextVariantUpdate) Mutation() *ContextVariantMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContextVariantUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContextVariantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContextVariantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContextVariantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContextVariantUpdate) check() error {
	if v, ok := _u.mutation.DimensionType(); ok {
		if err := contextvariant.DimensionTypeValidator(v); err != nil {
			return &ValidationError{Name: "dimension_type", err: fmt.Errorf(`ent: validator failed for field "ContextVariant.dimension_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := contextvariant.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "ContextVariant.value": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UsageCount(); ok {
		if err := contextvariant.UsageCountValidator(v); err != nil {
			return &ValidationError{Name: "usage_count", err: fmt.Errorf(`ent: validator failed for field "ContextVariant.usage_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QualityScore(); ok {
		if err := contextvariant.QualityScoreValidator(v); err != nil {
			return &ValidationError{Name: "quality_score", err: fmt.Errorf(`ent: validator failed for field "ContextVariant.quality_score": %w`, err)}
		}
	}
	return nil
}

func (_u *ContextVariantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contextvariant.Table, contextvariant.Columns, sqlgraph.NewFieldSpec(contextvariant.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ScenarioFamilyID(); ok {
		_spec.SetField(contextvariant.FieldScenarioFamilyID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScenarioFamilyID(); ok {
		_spec.AddField(contextvariant.FieldScenarioFamilyID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DimensionType(); ok {
		_spec.SetField(contextvariant.FieldDimensionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(contextvariant.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.SemanticCluster(); ok {
		_spec.SetField(contextvariant.FieldSemanticCluster, field.TypeString, value)
	}
	if _u.mutation.SemanticClusterCleared() {
		_spec.ClearField(contextvariant.FieldSemanticCluster, field.TypeString)
	}
	if value, ok := _u.mutation.UsageCount(); ok {
		_spec.SetField(contextvariant.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsageCount(); ok {
		_spec.AddField(contextvariant.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(contextvariant.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(contextvariant.FieldQualityScore, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contextvariant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContextVariantUpdateOne is the builder for updating a single ContextVariant entity.
type ContextVariantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContextVariantMutation
}

// SetScenarioFamilyID sets the "scenario_family_id" field.
func (_u *ContextVariantUpdateOne) SetScenarioFamilyID(v int) *ContextVariantUpdateOne {
	_u.mutation.ResetScenarioFamilyID()
	_u.mutation.SetScenarioFamilyID(v)
	return _u
}

// SetNillableScenarioFamilyID sets the "scenario_family_id" field if the given value is not nil.
func (_u *ContextVariantUpdateOne) SetNillableScenarioFamilyID(v *int) *ContextVariantUpdateOne {
	if v != nil {
		_u.SetScenarioFamilyID(*v)
	}
	return _u
}

// AddScenarioFamilyID adds value to the "scenario_family_id" field.
func (_u *ContextVariantUpdateOne) AddScenarioFamilyID(v int) *ContextVariantUpdateOne {
	_u.mutation.AddScenarioFamilyID(v)
	return _u
}

// SetDimensionType sets the "dimension_type" field.
func (_u *ContextVariantUpdateOne) SetDimensionType(v string) *ContextVariantUpdateOne {
	_u.mutation.SetDimensionType(v)
	return _u
}

// SetNillableDimensionType sets the "dimension_type" field if the given value is not nil.
func (_u *ContextVariantUpdateOne) SetNillableDimensionType(v *string) *ContextVariantUpdateOne {
	if v != nil {
		_u.SetDimensionType(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *ContextVariantUpdateOne) SetValue(v string) *ContextVariantUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *ContextVariantUpdateOne) SetNillableValue(v *string) *ContextVariantUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetSemanticCluster sets the "semantic_cluster" field.
func (_u *ContextVariantUpdateOne) SetSemanticCluster(v string) *ContextVariantUpdateOne {
	_u.mutation.SetSemanticCluster(v)
	return _u
}

// SetNillableSemanticCluster sets the "semantic_cluster" field if the given value is not nil.
func (_u *ContextVariantUpdateOne) SetNillableSemanticCluster(v *string) *ContextVariantUpdateOne {
	if v != nil {
		_u.SetSemanticCluster(*v)
	}
	return _u
}

// ClearSemanticCluster clears the value of the "semantic_cluster" field.
func (_u *ContextVariantUpdateOne) ClearSemanticCluster() *ContextVariantUpdateOne {
	_u.mutation.ClearSemanticCluster()
	return _u
}

// SetUsageCount sets the "usage_count" field.
func (_u *ContextVariantUpdateOne) SetUsageCount(v int) *ContextVariantUpdateOne {
	_u.mutation.ResetUsageCount()
	_u.mutation.SetUsageCount(v)
	return _u
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_u *ContextVariantUpdateOne) SetNillableUsageCount(v *int) *ContextVariantUpdateOne {
	if v != nil {
		_u.SetUsageCount(*v)
	}
	return _u
}

// AddUsageCount adds value to the "usage_count" field.
func (_u *ContextVariantUpdateOne) AddUsageCount(v int) *ContextVariantUpdateOne {
	_u.mutation.AddUsageCount(v)
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *ContextVariantUpdateOne) SetQualityScore(v float64) *ContextVariantUpdateOne {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *ContextVariantUpdateOne) SetNillableQualityScore(v *float64) *ContextVariantUpdateOne {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *ContextVariantUpdateOne) AddQualityScore(v float64) *ContextVariantUpdateOne {
	_u.mutation.AddQualityScore(v)
	return _u
}

// Mutation returns the ContextVariantMutation object of the builder.
func (_u *ContextVariantUpdateOne) Mutation() *ContextVariantMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContextVariantUpdate builder.
func (_u *ContextVariantUpdateOne) Where(ps ...predicate.ContextVariant) *ContextVariantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContextVariantUpdateOne) Select(field string, fields ...string) *ContextVariantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContextVariant entity.
func (_u *ContextVariantUpdateOne) Save(ctx context.Context) (*ContextVariant, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContextVariantUpdateOne) SaveX(ctx context.Context) *ContextVariant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContextVariantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContextVariantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContextVariantUpdateOne) check() error {
	if v, ok := _u.mutation.DimensionType(); ok {
		if err := contextvariant.DimensionTypeValidator(v); err != nil {
			return &ValidationError{Name: "dimension_type", err: fmt.Errorf(`ent: validator failed for field "ContextVariant.dimension_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := contextvariant.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "ContextVariant.value": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UsageCount(); ok {
		if err := contextvariant.UsageCountValidator(v); err != nil {
			return &ValidationError{Name: "usage_count", err: fmt.Errorf(`ent: validator failed for field "ContextVariant.usage_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QualityScore(); ok {
		if err := contextvariant.QualityScoreValidator(v); err != nil {
			return &ValidationError{Name: "quality_score", err: fmt.Errorf(`ent: validator failed for field "ContextVariant.quality_score": %w`, err)}
		}
	}
	return nil
}

func (_u *ContextVariantUpdateOne) sqlSave(ctx context.Context) (_node *ContextVariant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contextvariant.Table, contextvariant.Columns, sqlgraph.NewFieldSpec(contextvariant.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContextVariant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contextvariant.FieldID)
		for _, f := range fields {
			if !contextvariant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contextvariant.FieldID {
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
	if value, ok := _u.mutation.ScenarioFamilyID(); ok {
		_spec.SetField(contextvariant.FieldScenarioFamilyID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScenarioFamilyID(); ok {
		_spec.AddField(contextvariant.FieldScenarioFamilyID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DimensionType(); ok {
		_spec.SetField(contextvariant.FieldDimensionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(contextvariant.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.SemanticCluster(); ok {
		_spec.SetField(contextvariant.FieldSemanticCluster, field.TypeString, value)
	}
	if _u.mutation.SemanticClusterCleared() {
		_spec.ClearField(contextvariant.FieldSemanticCluster, field.TypeString)
	}
	if value, ok := _u.mutation.UsageCount(); ok {
		_spec.SetField(contextvariant.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsageCount(); ok {
		_spec.AddField(contextvariant.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(contextvariant.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(contextvariant.FieldQualityScore, field.TypeFloat64, value)
	}
	_node = &ContextVariant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contextvariant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
