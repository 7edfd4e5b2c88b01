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
	"github.com/lernzeit/lernzeit/ent/templatefeedback"
)

// TemplateFeedbackUpdate is the builder for updating TemplateFeedback entities.
type TemplateFeedbackUpdate struct {
	config
	hooks    []Hook
	mutation *TemplateFeedbackMutation
}

// Where appends a list predicates to the TemplateFeedbackUpdate builder.
func (_u *TemplateFeedbackUpdate) Where(ps ...predicate.TemplateFeedback) *TemplateFeedbackUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TemplateFeedbackUpdate) SetUserID(v string) *TemplateFeedbackUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TemplateFeedbackUpdate) SetNillableUserID(v *string) *TemplateFeedbackUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *TemplateFeedbackUpdate) SetTemplateID(v int) *TemplateFeedbackUpdate {
	_u.mutation.ResetTemplateID()
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *TemplateFeedbackUpdate) SetNillableTemplateID(v *int) *TemplateFeedbackUpdate {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// AddTemplateID adds value to the "template_id" field.
func (_u *TemplateFeedbackUpdate) AddTemplateID(v int) *TemplateFeedbackUpdate {
	_u.mutation.AddTemplateID(v)
	return _u
}

// ClearTemplateID clears the value of the "template_id" field.
func (_u *TemplateFeedbackUpdate) ClearTemplateID() *TemplateFeedbackUpdate {
	_u.mutation.ClearTemplateID()
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *TemplateFeedbackUpdate) SetPrompt(v string) *TemplateFeedbackUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *TemplateFeedbackUpdate) SetNillablePrompt(v *string) *TemplateFeedbackUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetFeedbackType sets the "feedback_type" field.
func (_u *TemplateFeedbackUpdate) SetFeedbackType(v string) *TemplateFeedbackUpdate {
	_u.mutation.SetFeedbackType(v)
	return _u
}

// SetNillableFeedbackType sets the "feedback_type" field if the given value is not nil.
func (_u *TemplateFeedbackUpdate) SetNillableFeedbackType(v *string) *TemplateFeedbackUpdate {
	if v != nil {
		_u.SetFeedbackType(*v)
	}
	return _u
}

// Mutation returns the TemplateFeedbackMutation object of the builder.
func (_u *TemplateFeedbackUpdate) Mutation() *TemplateFeedbackMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TemplateFeedbackUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TemplateFeedbackUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TemplateFeedbackUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TemplateFeedbackUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TemplateFeedbackUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := templatefeedback.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TemplateFeedback.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := templatefeedback.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "TemplateFeedback.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FeedbackType(); ok {
		if err := templatefeedback.FeedbackTypeValidator(v); err != nil {
			return &ValidationError{Name: "feedback_type", err: fmt.Errorf(`ent: validator failed for field "TemplateFeedback.feedback_type": %w`, err)}
		}
	}
	return nil
}

func (_u *TemplateFeedbackUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(templatefeedback.Table, templatefeedback.Columns, sqlgraph.NewFieldSpec(templatefeedback.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(templatefeedback.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(templatefeedback.FieldTemplateID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTemplateID(); ok {
		_spec.AddField(templatefeedback.FieldTemplateID, field.TypeInt, value)
	}
	if _u.mutation.TemplateIDCleared() {
		_spec.ClearField(templatefeedback.FieldTemplateID, field.TypeInt)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(templatefeedback.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FeedbackType(); ok {
		_spec.SetField(templatefeedback.FieldFeedbackType, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{templatefeedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TemplateFeedbackUpdateOne is the builder for updating a single TemplateFeedback entity.
type TemplateFeedbackUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TemplateFeedbackMutation
}

// SetUserID sets the "user_id" field.
func (_u *TemplateFeedbackUpdateOne) SetUserID(v string) *TemplateFeedbackUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TemplateFeedbackUpdateOne) SetNillableUserID(v *string) *TemplateFeedbackUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *TemplateFeedbackUpdateOne) SetTemplateID(v int) *TemplateFeedbackUpdateOne {
	_u.mutation.ResetTemplateID()
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *TemplateFeedbackUpdateOne) SetNillableTemplateID(v *int) *TemplateFeedbackUpdateOne {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// AddTemplateID adds value to the "template_id" field.
func (_u *TemplateFeedbackUpdateOne) AddTemplateID(v int) *TemplateFeedbackUpdateOne {
	_u.mutation.AddTemplateID(v)
	return _u
}

// ClearTemplateID clears the value of the "template_id" field.
func (_u *TemplateFeedbackUpdateOne) ClearTemplateID() *TemplateFeedbackUpdateOne {
	_u.mutation.ClearTemplateID()
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *TemplateFeedbackUpdateOne) SetPrompt(v string) *TemplateFeedbackUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *TemplateFeedbackUpdateOne) SetNillablePrompt(v *string) *TemplateFeedbackUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetFeedbackType sets the "feedback_type" field.
func (_u *TemplateFeedbackUpdateOne) SetFeedbackType(v string) *TemplateFeedbackUpdateOne {
	_u.mutation.SetFeedbackType(v)
	return _u
}

// SetNillableFeedbackType sets the "feedback_type" field if the given value is not nil.
func (_u *TemplateFeedbackUpdateOne) SetNillableFeedbackType(v *string) *TemplateFeedbackUpdateOne {
	if v != nil {
		_u.SetFeedbackType(*v)
	}
	return _u
}

// Mutation returns the TemplateFeedbackMutation object of the builder.
func (_u *TemplateFeedbackUpdateOne) Mutation() *TemplateFeedbackMutation {
	return _u.mutation
}

// Where appends a list predicates to the TemplateFeedbackUpdate builder.
func (_u *TemplateFeedbackUpdateOne) Where(ps ...predicate.TemplateFeedback) *TemplateFeedbackUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TemplateFeedbackUpdateOne) Select(field string, fields ...string) *TemplateFeedbackUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TemplateFeedback entity.
func (_u *TemplateFeedbackUpdateOne) Save(ctx context.Context) (*TemplateFeedback, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TemplateFeedbackUpdateOne) SaveX(ctx context.Context) *TemplateFeedback {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TemplateFeedbackUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TemplateFeedbackUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TemplateFeedbackUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := templatefeedback.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TemplateFeedback.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := templatefeedback.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "TemplateFeedback.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FeedbackType(); ok {
		if err := templatefeedback.FeedbackTypeValidator(v); err != nil {
			return &ValidationError{Name: "feedback_type", err: fmt.Errorf(`ent: validator failed for field "TemplateFeedback.feedback_type": %w`, err)}
		}
	}
	return nil
}

func (_u *TemplateFeedbackUpdateOne) sqlSave(ctx context.Context) (_node *TemplateFeedback, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(templatefeedback.Table, templatefeedback.Columns, sqlgraph.NewFieldSpec(templatefeedback.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TemplateFeedback.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, templatefeedback.FieldID)
		for _, f := range fields {
			if !templatefeedback.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != templatefeedback.FieldID {
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
		_spec.SetField(templatefeedback.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(templatefeedback.FieldTemplateID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTemplateID(); ok {
		_spec.AddField(templatefeedback.FieldTemplateID, field.TypeInt, value)
	}
	if _u.mutation.TemplateIDCleared() {
		_spec.ClearField(templatefeedback.FieldTemplateID, field.TypeInt)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(templatefeedback.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FeedbackType(); ok {
		_spec.SetField(templatefeedback.FieldFeedbackType, field.TypeString, value)
	}
	_node = &TemplateFeedback{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{templatefeedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
