// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/lernzeit/lernzeit/ent/learningsession"
	"github.com/lernzeit/lernzeit/ent/predicate"
)

// LearningSessionUpdate is the builder for updating LearningSession entities.
type LearningSessionUpdate struct {
	config
	hooks    []Hook
	mutation *LearningSessionMutation
}

// Where appends a list predicates to the LearningSessionUpdate builder.
func (_u *LearningSessionUpdate) Where(ps ...predicate.LearningSession) *LearningSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *LearningSessionUpdate) SetSessionID(v string) *LearningSessionUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LearningSessionUpdate) SetNillableSessionID(v *string) *LearningSessionUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LearningSessionUpdate) SetUserID(v string) *LearningSessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LearningSessionUpdate) SetNillableUserID(v *string) *LearningSessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *LearningSessionUpdate) SetCategory(v string) *LearningSessionUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *LearningSessionUpdate) SetNillableCategory(v *string) *LearningSessionUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *LearningSessionUpdate) SetGrade(v int) *LearningSessionUpdate {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *LearningSessionUpdate) SetNillableGrade(v *int) *LearningSessionUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *LearningSessionUpdate) AddGrade(v int) *LearningSessionUpdate {
	_u.mutation.AddGrade(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *LearningSessionUpdate) SetCorrect(v int) *LearningSessionUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *LearningSessionUpdate) SetNillableCorrect(v *int) *LearningSessionUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *LearningSessionUpdate) AddCorrect(v int) *LearningSessionUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *LearningSessionUpdate) SetTotal(v int) *LearningSessionUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *LearningSessionUpdate) SetNillableTotal(v *int) *LearningSessionUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *LearningSessionUpdate) AddTotal(v int) *LearningSessionUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *LearningSessionUpdate) SetDurationSecs(v int) *LearningSessionUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *LearningSessionUpdate) SetNillableDurationSecs(v *int) *LearningSessionUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *LearningSessionUpdate) AddDurationSecs(v int) *LearningSessionUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetTemplates sets the "templates" field.
func (_u *LearningSessionUpdate) SetTemplates(v []int) *LearningSessionUpdate {
	_u.mutation.SetTemplates(v)
	return _u
}

// AppendTemplates appends value to the "templates" field.
func (_u *LearningSessionUpdate) AppendTemplates(v []int) *LearningSessionUpdate {
	_u.mutation.AppendTemplates(v)
	return _u
}

// ClearTemplates clears the value of the "templates" field.
func (_u *LearningSessionUpdate) ClearTemplates() *LearningSessionUpdate {
	_u.mutation.ClearTemplates()
	return _u
}

// Mutation returns the LearningSessionMutation object of the builder.
func (_u *LearningSessionUpdate) Mutation() *LearningSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningSessionUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := learningsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LearningSession.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := learningsession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningSession.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := learningsession.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "LearningSession.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Grade(); ok {
		if err := learningsession.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "LearningSession.grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Correct(); ok {
		if err := learningsession.CorrectValidator(v); err != nil {
			return &ValidationError{Name: "correct", err: fmt.Errorf(`ent: validator failed for field "LearningSession.correct": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Total(); ok {
		if err := learningsession.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "LearningSession.total": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningsession.Table, learningsession.Columns, sqlgraph.NewFieldSpec(learningsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(learningsession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(learningsession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(learningsession.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(learningsession.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(learningsession.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(learningsession.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(learningsession.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(learningsession.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(learningsession.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(learningsession.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(learningsession.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Templates(); ok {
		_spec.SetField(learningsession.FieldTemplates, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTemplates(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningsession.FieldTemplates, value)
		})
	}
	if _u.mutation.TemplatesCleared() {
		_spec.ClearField(learningsession.FieldTemplates, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningSessionUpdateOne is the builder for updating a single LearningSession entity.
type LearningSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningSessionMutation
}

// SetSessionID sets the "session_id" field.
func (_u *LearningSessionUpdateOne) SetSessionID(v string) *LearningSessionUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LearningSessionUpdateOne) SetNillableSessionID(v *string) *LearningSessionUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LearningSessionUpdateOne) SetUserID(v string) *LearningSessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LearningSessionUpdateOne) SetNillableUserID(v *string) *LearningSessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *LearningSessionUpdateOne) SetCategory(v string) *LearningSessionUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *LearningSessionUpdateOne) SetNillableCategory(v *string) *LearningSessionUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *LearningSessionUpdateOne) SetGrade(v int) *LearningSessionUpdateOne {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *LearningSessionUpdateOne) SetNillableGrade(v *int) *LearningSessionUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *LearningSessionUpdateOne) AddGrade(v int) *LearningSessionUpdateOne {
	_u.mutation.AddGrade(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *LearningSessionUpdateOne) SetCorrect(v int) *LearningSessionUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *LearningSessionUpdateOne) SetNillableCorrect(v *int) *LearningSessionUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *LearningSessionUpdateOne) AddCorrect(v int) *LearningSessionUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *LearningSessionUpdateOne) SetTotal(v int) *LearningSessionUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *LearningSessionUpdateOne) SetNillableTotal(v *int) *LearningSessionUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *LearningSessionUpdateOne) AddTotal(v int) *LearningSessionUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *LearningSessionUpdateOne) SetDurationSecs(v int) *LearningSessionUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *LearningSessionUpdateOne) SetNillableDurationSecs(v *int) *LearningSessionUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *LearningSessionUpdateOne) AddDurationSecs(v int) *LearningSessionUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetTemplates sets the "templates" field.
func (_u *LearningSessionUpdateOne) SetTemplates(v []int) *LearningSessionUpdateOne {
	_u.mutation.SetTemplates(v)
	return _u
}

// AppendTemplates appends value to the "templates" field.
func (_u *LearningSessionUpdateOne) AppendTemplates(v []int) *LearningSessionUpdateOne {
	_u.mutation.AppendTemplates(v)
	return _u
}

// ClearTemplates clears the value of the "templates" field.
func (_u *LearningSessionUpdateOne) ClearTemplates() *LearningSessionUpdateOne {
	_u.mutation.ClearTemplates()
	return _u
}

// Mutation returns the LearningSessionMutation object of the builder.
func (_u *LearningSessionUpdateOne) Mutation() *LearningSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningSessionUpdate builder.
func (_u *LearningSessionUpdateOne) Where(ps ...predicate.LearningSession) *LearningSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningSessionUpdateOne) Select(field string, fields ...string) *LearningSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningSession entity.
func (_u *LearningSessionUpdateOne) Save(ctx context.Context) (*LearningSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningSessionUpdateOne) SaveX(ctx context.Context) *LearningSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningSessionUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := learningsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LearningSession.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := learningsession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningSession.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := learningsession.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "LearningSession.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Grade(); ok {
		if err := learningsession.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "LearningSession.grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Correct(); ok {
		if err := learningsession.CorrectValidator(v); err != nil {
			return &ValidationError{Name: "correct", err: fmt.Errorf(`ent: validator failed for field "LearningSession.correct": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Total(); ok {
		if err := learningsession.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "LearningSession.total": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningSessionUpdateOne) sqlSave(ctx context.Context) (_node *LearningSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningsession.Table, learningsession.Columns, sqlgraph.NewFieldSpec(learningsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningsession.FieldID)
		for _, f := range fields {
			if !learningsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningsession.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(learningsession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(learningsession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(learningsession.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(learningsession.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(learningsession.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(learningsession.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(learningsession.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(learningsession.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(learningsession.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(learningsession.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(learningsession.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Templates(); ok {
		_spec.SetField(learningsession.FieldTemplates, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTemplates(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningsession.FieldTemplates, value)
		})
	}
	if _u.mutation.TemplatesCleared() {
		_spec.ClearField(learningsession.FieldTemplates, field.TypeJSON)
	}
	_node = &LearningSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
