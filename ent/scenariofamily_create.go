// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lernzeit/lernzeit/ent/scenariofamily"
	"github.com/lernzeit/lernzeit/ent/schema"
)

// ScenarioFamilyCreate is the builder for creating a ScenarioFamily entity.
type ScenarioFamilyCreate struct {
	config
	mutation *ScenarioFamilyMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ScenarioFamilyCreate) SetName(v string) *ScenarioFamilyCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *ScenarioFamilyCreate) SetCategory(v string) *ScenarioFamilyCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetGradeMin sets the "grade_min" field.
func (_c *ScenarioFamilyCreate) SetGradeMin(v int) *ScenarioFamilyCreate {
	_c.mutation.SetGradeMin(v)
	return _c
}

// SetGradeMax sets the "grade_max" field.
func (_c *ScenarioFamilyCreate) SetGradeMax(v int) *ScenarioFamilyCreate {
	_c.mutation.SetGradeMax(v)
	return _c
}

// SetBaseTemplate sets the "base_template" field.
func (_c *ScenarioFamilyCreate) SetBaseTemplate(v string) *ScenarioFamilyCreate {
	_c.mutation.SetBaseTemplate(v)
	return _c
}

// SetContextSlots sets the "context_slots" field.
func (_c *ScenarioFamilyCreate) SetContextSlots(v map[string]schema.SlotSpec) *ScenarioFamilyCreate {
	_c.mutation.SetContextSlots(v)
	return _c
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_c *ScenarioFamilyCreate) SetDifficultyLevel(v int) *ScenarioFamilyCreate {
	_c.mutation.SetDifficultyLevel(v)
	return _c
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_c *ScenarioFamilyCreate) SetNillableDifficultyLevel(v *int) *ScenarioFamilyCreate {
	if v != nil {
		_c.SetDifficultyLevel(*v)
	}
	return _c
}

// Mutation returns the ScenarioFamilyMutation object of the builder.
func (_c *ScenarioFamilyCreate) Mutation() *ScenarioFamilyMutation {
	return _c.mutation
}

// Save creates the ScenarioFamily in the database.
func (_c *ScenarioFamilyCreate) Save(ctx context.Context) (*ScenarioFamily, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScenarioFamilyCreate) SaveX(ctx context.Context) *ScenarioFamily {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScenarioFamilyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScenarioFamilyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScenarioFamilyCreate) defaults() {
	if _, ok := _c.mutation.DifficultyLevel(); !ok {
		v := scenariofamily.DefaultDifficultyLevel
		_c.mutation.SetDifficultyLevel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScenarioFamilyCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ScenarioFamily.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := scenariofamily.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ScenarioFamily.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "ScenarioFamily.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := scenariofamily.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ScenarioFamily.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GradeMin(); !ok {
		return &ValidationError{Name: "grade_min", err: errors.New(`ent: missing required field "ScenarioFamily.grade_min"`)}
	}
	if v, ok := _c.mutation.GradeMin(); ok {
		if err := scenariofamily.GradeMinValidator(v); err != nil {
			return &ValidationError{Name: "grade_min", err: fmt.Errorf(`ent: validator failed for field "ScenarioFamily.grade_min": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GradeMax(); !ok {
		return &ValidationError{Name: "grade_max", err: errors.New(`ent: missing required field "ScenarioFamily.grade_max"`)}
	}
	if v, ok := _c.mutation.GradeMax(); ok {
		if err := scenariofamily.GradeMaxValidator(v); err != nil {
			return &ValidationError{Name: "grade_max", err: fmt.Errorf(`ent: validator failed for field "ScenarioFamily.grade_max": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BaseTemplate(); !ok {
		return &ValidationError{Name: "base_template", err: errors.New(`ent: missing required field "ScenarioFamily.base_template"`)}
	}
	if v, ok := _c.mutation.BaseTemplate(); ok {
		if err := scenariofamily.BaseTemplateValidator(v); err != nil {
			return &ValidationError{Name: "base_template", err: fmt.Errorf(`ent: validator failed for field "ScenarioFamily.base_template": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContextSlots(); !ok {
		return &ValidationError{Name: "context_slots", err: errors.New(`ent: missing required field "ScenarioFamily.context_slots"`)}
	}
	if _, ok := _c.mutation.DifficultyLevel(); !ok {
		return &ValidationError{Name: "difficulty_level", err: errors.New(`ent: missing required field "ScenarioFamily.difficulty_level"`)}
	}
	if v, ok := _c.mutation.DifficultyLevel(); ok {
		if err := scenariofamily.DifficultyLevelValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_level", err: fmt.Errorf(`ent: validator failed for field "ScenarioFamily.difficulty_level": %w`, err)}
		}
	}
	return nil
}

func (_c *ScenarioFamilyCreate) sqlSave(ctx context.Context) (*ScenarioFamily, error) {
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

func (_c *ScenarioFamilyCreate) createSpec() (*ScenarioFamily, *sqlgraph.CreateSpec) {
	var (
		_node = &ScenarioFamily{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scenariofamily.Table, sqlgraph.NewFieldSpec(scenariofamily.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(scenariofamily.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(scenariofamily.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.GradeMin(); ok {
		_spec.SetField(scenariofamily.FieldGradeMin, field.TypeInt, value)
		_node.GradeMin = value
	}
	if value, ok := _c.mutation.GradeMax(); ok {
		_spec.SetField(scenariofamily.FieldGradeMax, field.TypeInt, value)
		_node.GradeMax = value
	}
	if value, ok := _c.mutation.BaseTemplate(); ok {
		_spec.SetField(scenariofamily.FieldBaseTemplate, field.TypeString, value)
		_node.BaseTemplate = value
	}
	if value, ok := _c.mutation.ContextSlots(); ok {
		_spec.SetField(scenariofamily.FieldContextSlots, field.TypeJSON, value)
		_node.ContextSlots = value
	}
	if value, ok := _c.mutation.DifficultyLevel(); ok {
		_spec.SetField(scenariofamily.FieldDifficultyLevel, field.TypeInt, value)
		_node.DifficultyLevel = value
	}
	return _node, _spec
}

// ScenarioFamilyCreateBulk is the builder for creating many ScenarioFamily entities in bulk.
type ScenarioFamilyCreateBulk struct {
	config
	err      error
	builders []*ScenarioFamilyCreate
}

// Save creates the ScenarioFamily entities in the database.
func (_c *ScenarioFamilyCreateBulk) Save(ctx context.Context) ([]*ScenarioFamily, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScenarioFamily, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScenarioFamilyMutation)
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
func (_c *ScenarioFamilyCreateBulk) SaveX(ctx context.Context) []*ScenarioFamily {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScenarioFamilyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScenarioFamilyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
