// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lernzeit/lernzeit/ent/contextvariant"
)

// ContextVariantCreate is the builder for creating a ContextVariant entity.
type ContextVariantCreate struct {
	config
	mutation *ContextVariantMutation
	hooks    []Hook
}

// SetScenarioFamilyID sets the "scenario_family_id" field.
func (_c *ContextVariantCreate) SetScenarioFamilyID(v int) *ContextVariantCreate {
	_c.mutation.SetScenarioFamilyID(v)
	return _c
}

// SetDimensionType sets the "dimension_type" field.
func (_c *ContextVariantCreate) SetDimensionType(v string) *ContextVariantCreate {
	_c.mutation.SetDimensionType(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *ContextVariantCreate) SetValue(v string) *ContextVariantCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetSemanticCluster sets the "semantic_cluster" field.
func (_c *ContextVariantCreate) SetSemanticCluster(v string) *ContextVariantCreate {
	_c.mutation.SetSemanticCluster(v)
	return _c
}

// SetNillableSemanticCluster sets the "semantic_cluster" field if the given value is not nil.
func (_c *ContextVariantCreate) SetNillableSemanticCluster(v *string) *ContextVariantCreate {
	if v != nil {
		_c.SetSemanticCluster(*v)
	}
	return _c
}

// SetUsageCount sets the "usage_count" field.
func (_c *ContextVariantCreate) SetUsageCount(v int) *ContextVariantCreate {
	_c.mutation.SetUsageCount(v)
	return _c
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_c *ContextVariantCreate) SetNillableUsageCount(v *int) *ContextVariantCreate {
	if v != nil {
		_c.SetUsageCount(*v)
	}
	return _c
}

// SetQualityScore sets the "quality_score" field.
func (_c *ContextVariantCreate) SetQualityScore(v float64) *ContextVariantCreate {
	_c.mutation.SetQualityScore(v)
	return _c
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_c *ContextVariantCreate) SetNillableQualityScore(v *float64) *ContextVariantCreate {
	if v != nil {
		_c.SetQualityScore(*v)
	}
	return _c
}

// Mutation returns the ContextVariantMutation object of the builder.
func (_c *ContextVariantCreate) Mutation() *ContextVariantMutation {
	return _c.mutation
}

// Save creates the ContextVariant in the database.
func (_c *ContextVariantCreate) Save(ctx context.Context) (*ContextVariant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContextVariantCreate) SaveX(ctx context.Context) *ContextVariant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContextVariantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContextVariantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContextVariantCreate) defaults() {
	if _, ok := _c.mutation.UsageCount(); !ok {
		v := contextvariant.DefaultUsageCount
		_c.mutation.SetUsageCount(v)
	}
	if _, ok := _c.mutation.QualityScore(); !ok {
		v := contextvariant.DefaultQualityScore
		_c.mutation.SetQualityScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContextVariantCreate) check() error {
	if _, ok := _c.mutation.ScenarioFamilyID(); !ok {
		return &ValidationError{Name: "scenario_family_id", err: errors.New(`ent: missing required field "ContextVariant.scenario_family_id"`)}
	}
	if _, ok := _c.mutation.DimensionType(); !ok {
		return &ValidationError{Name: "dimension_type", err: errors.New(`ent: missing required field "ContextVariant.dimension_type"`)}
	}
	if v, ok := _c.mutation.DimensionType(); ok {
		if err := contextvariant.DimensionTypeValidator(v); err != nil {
			return &ValidationError{Name: "dimension_type", err: fmt.Errorf(`ent: validator failed for field "ContextVariant.dimension_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "ContextVariant.value"`)}
	}
	if v, ok := _c.mutation.Value(); ok {
		if err := contextvariant.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "ContextVariant.value": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UsageCount(); !ok {
		return &ValidationError{Name: "usage_count", err: errors.New(`ent: missing required field "ContextVariant.usage_count"`)}
	}
	if v, ok := _c.mutation.UsageCount(); ok {
		if err := contextvariant.UsageCountValidator(v); err != nil {
			return &ValidationError{Name: "usage_count", err: fmt.Errorf(`ent: validator failed for field "ContextVariant.usage_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QualityScore(); !ok {
		return &ValidationError{Name: "quality_score", err: errors.New(`ent: missing required field "ContextVariant.quality_score"`)}
	}
	if v, ok := _c.mutation.QualityScore(); ok {
		if err := contextvariant.QualityScoreValidator(v); err != nil {
			return &ValidationError{Name: "quality_score", err: fmt.Errorf(`ent: validator failed for field "ContextVariant.quality_score": %w`, err)}
		}
	}
	return nil
}

func (_c *ContextVariantCreate) sqlSave(ctx context.Context) (*ContextVariant, error) {
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

func (_c *ContextVariantCreate) createSpec() (*ContextVariant, *sqlgraph.CreateSpec) {
	var (
		_node = &ContextVariant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contextvariant.Table, sqlgraph.NewFieldSpec(contextvariant.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ScenarioFamilyID(); ok {
		_spec.SetField(contextvariant.FieldScenarioFamilyID, field.TypeInt, value)
		_node.ScenarioFamilyID = value
	}
	if value, ok := _c.mutation.DimensionType(); ok {
		_spec.SetField(contextvariant.FieldDimensionType, field.TypeString, value)
		_node.DimensionType = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(contextvariant.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.SemanticCluster(); ok {
		_spec.SetField(contextvariant.FieldSemanticCluster, field.TypeString, value)
		_node.SemanticCluster = value
	}
	if value, ok := _c.mutation.UsageCount(); ok {
		_spec.SetField(contextvariant.FieldUsageCount, field.TypeInt, value)
		_node.UsageCount = value
	}
	if value, ok := _c.mutation.QualityScore(); ok {
		_spec.SetField(contextvariant.FieldQualityScore, field.TypeFloat64, value)
		_node.QualityScore = value
	}
	return _node, _spec
}

// ContextVariantCreateBulk is the builder for creating many ContextVariant entities in bulk.
type ContextVariantCreateBulk struct {
	config
	err      error
	builders []*ContextVariantCreate
}

// Save creates the ContextVariant entities in the database.
func (_c *ContextVariantCreateBulk) Save(ctx context.Context) ([]*ContextVariant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContextVariant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContextVariantMutation)
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
func (_c *ContextVariantCreateBulk) SaveX(ctx context.Context) []*ContextVariant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContextVariantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContextVariantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
