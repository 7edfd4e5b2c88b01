// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lernzeit/lernzeit/ent/contexthistory"
	"github.com/lernzeit/lernzeit/ent/contextvariant"
	"github.com/lernzeit/lernzeit/ent/generationrun"
	"github.com/lernzeit/lernzeit/ent/learningsession"
	"github.com/lernzeit/lernzeit/ent/llmrequestevent"
	"github.com/lernzeit/lernzeit/ent/predicate"
	"github.com/lernzeit/lernzeit/ent/rewardevent"
	"github.com/lernzeit/lernzeit/ent/scenariofamily"
	"github.com/lernzeit/lernzeit/ent/schema"
	"github.com/lernzeit/lernzeit/ent/template"
	"github.com/lernzeit/lernzeit/ent/templatefeedback"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeContextHistory   = "ContextHistory"
	TypeContextVariant   = "ContextVariant"
	TypeGenerationRun    = "GenerationRun"
	TypeLLMRequestEvent  = "LLMRequestEvent"
	TypeLearningSession  = "LearningSession"
	TypeRewardEvent      = "RewardEvent"
	TypeScenarioFamily   = "ScenarioFamily"
	TypeTemplate         = "Template"
	TypeTemplateFeedback = "TemplateFeedback"
)

// ContextHistoryMutation represents an operation that mutates the ContextHistory nodes in the graph.
type ContextHistoryMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	user_id               *string
	scenario_family_id    *int
	addscenario_family_id *int
	category              *string
	grade                 *int
	addgrade              *int
	combination           *map[string]string
	combination_hash      *string
	created_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*ContextHistory, error)
	predicates            []predicate.ContextHistory
}

var _ ent.Mutation = (*ContextHistoryMutation)(nil)

// contexthistoryOption allows management of the mutation configuration using functional options.
type contexthistoryOption func(*ContextHistoryMutation)

// newContextHistoryMutation creates new mutation for the ContextHistory entity.
func newContextHistoryMutation(c config, op Op, opts ...contexthistoryOption) *ContextHistoryMutation {
	m := &ContextHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeContextHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContextHistoryID sets the ID field of the mutation.
func withContextHistoryID(id int) contexthistoryOption {
	return func(m *ContextHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *ContextHistory
		)
		m.oldValue = func(ctx context.Context) (*ContextHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContextHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContextHistory sets the old ContextHistory of the mutation.
func withContextHistory(node *ContextHistory) contexthistoryOption {
	return func(m *ContextHistoryMutation) {
		m.oldValue = func(context.Context) (*ContextHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContextHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContextHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContextHistoryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContextHistoryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContextHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ContextHistoryMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ContextHistoryMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ContextHistory entity.
// If the ContextHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextHistoryMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ContextHistoryMutation) ResetUserID() {
	m.user_id = nil
}

// SetScenarioFamilyID sets the "scenario_family_id" field.
func (m *ContextHistoryMutation) SetScenarioFamilyID(i int) {
	m.scenario_family_id = &i
	m.addscenario_family_id = nil
}

// ScenarioFamilyID returns the value of the "scenario_family_id" field in the mutation.
func (m *ContextHistoryMutation) ScenarioFamilyID() (r int, exists bool) {
	v := m.scenario_family_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScenarioFamilyID returns the old "scenario_family_id" field's value of the ContextHistory entity.
// If the ContextHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextHistoryMutation) OldScenarioFamilyID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenarioFamilyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenarioFamilyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenarioFamilyID: %w", err)
	}
	return oldValue.ScenarioFamilyID, nil
}

// AddScenarioFamilyID adds i to the "scenario_family_id" field.
func (m *ContextHistoryMutation) AddScenarioFamilyID(i int) {
	if m.addscenario_family_id != nil {
		*m.addscenario_family_id += i
	} else {
		m.addscenario_family_id = &i
	}
}

// AddedScenarioFamilyID returns the value that was added to the "scenario_family_id" field in this mutation.
func (m *ContextHistoryMutation) AddedScenarioFamilyID() (r int, exists bool) {
	v := m.addscenario_family_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetScenarioFamilyID resets all changes to the "scenario_family_id" field.
func (m *ContextHistoryMutation) ResetScenarioFamilyID() {
	m.scenario_family_id = nil
	m.addscenario_family_id = nil
}

// SetCategory sets the "category" field.
func (m *ContextHistoryMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ContextHistoryMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ContextHistory entity.
// If the ContextHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextHistoryMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *ContextHistoryMutation) ResetCategory() {
	m.category = nil
}

// SetGrade sets the "grade" field.
func (m *ContextHistoryMutation) SetGrade(i int) {
	m.grade = &i
	m.addgrade = nil
}

// Grade returns the value of the "grade" field in the mutation.
func (m *ContextHistoryMutation) Grade() (r int, exists bool) {
	v := m.grade
	if v == nil {
		return
	}
	return *v, true
}

// OldGrade returns the old "grade" field's value of the ContextHistory entity.
// If the ContextHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextHistoryMutation) OldGrade(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrade: %w", err)
	}
	return oldValue.Grade, nil
}

// AddGrade adds i to the "grade" field.
func (m *ContextHistoryMutation) AddGrade(i int) {
	if m.addgrade != nil {
		*m.addgrade += i
	} else {
		m.addgrade = &i
	}
}

// AddedGrade returns the value that was added to the "grade" field in this mutation.
func (m *ContextHistoryMutation) AddedGrade() (r int, exists bool) {
	v := m.addgrade
	if v == nil {
		return
	}
	return *v, true
}

// ResetGrade resets all changes to the "grade" field.
func (m *ContextHistoryMutation) ResetGrade() {
	m.grade = nil
	m.addgrade = nil
}

// SetCombination sets the "combination" field.
func (m *ContextHistoryMutation) SetCombination(value map[string]string) {
	m.combination = &value
}

// Combination returns the value of the "combination" field in the mutation.
func (m *ContextHistoryMutation) Combination() (r map[string]string, exists bool) {
	v := m.combination
	if v == nil {
		return
	}
	return *v, true
}

// OldCombination returns the old "combination" field's value of the ContextHistory entity.
// If the ContextHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextHistoryMutation) OldCombination(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCombination is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCombination requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCombination: %w", err)
	}
	return oldValue.Combination, nil
}

// ResetCombination resets all changes to the "combination" field.
func (m *ContextHistoryMutation) ResetCombination() {
	m.combination = nil
}

// SetCombinationHash sets the "combination_hash" field.
func (m *ContextHistoryMutation) SetCombinationHash(s string) {
	m.combination_hash = &s
}

// CombinationHash returns the value of the "combination_hash" field in the mutation.
func (m *ContextHistoryMutation) CombinationHash() (r string, exists bool) {
	v := m.combination_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldCombinationHash returns the old "combination_hash" field's value of the ContextHistory entity.
// If the ContextHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextHistoryMutation) OldCombinationHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCombinationHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCombinationHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCombinationHash: %w", err)
	}
	return oldValue.CombinationHash, nil
}

// ResetCombinationHash resets all changes to the "combination_hash" field.
func (m *ContextHistoryMutation) ResetCombinationHash() {
	m.combination_hash = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ContextHistoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContextHistoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ContextHistory entity.
// If the ContextHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextHistoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContextHistoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ContextHistoryMutation builder.
func (m *ContextHistoryMutation) Where(ps ...predicate.ContextHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContextHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContextHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContextHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContextHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContextHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContextHistory).
func (m *ContextHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContextHistoryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user_id != nil {
		fields = append(fields, contexthistory.FieldUserID)
	}
	if m.scenario_family_id != nil {
		fields = append(fields, contexthistory.FieldScenarioFamilyID)
	}
	if m.category != nil {
		fields = append(fields, contexthistory.FieldCategory)
	}
	if m.grade != nil {
		fields = append(fields, contexthistory.FieldGrade)
	}
	if m.combination != nil {
		fields = append(fields, contexthistory.FieldCombination)
	}
	if m.combination_hash != nil {
		fields = append(fields, contexthistory.FieldCombinationHash)
	}
	if m.created_at != nil {
		fields = append(fields, contexthistory.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContextHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contexthistory.FieldUserID:
		return m.UserID()
	case contexthistory.FieldScenarioFamilyID:
		return m.ScenarioFamilyID()
	case contexthistory.FieldCategory:
		return m.Category()
	case contexthistory.FieldGrade:
		return m.Grade()
	case contexthistory.FieldCombination:
		return m.Combination()
	case contexthistory.FieldCombinationHash:
		return m.CombinationHash()
	case contexthistory.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContextHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contexthistory.FieldUserID:
		return m.OldUserID(ctx)
	case contexthistory.FieldScenarioFamilyID:
		return m.OldScenarioFamilyID(ctx)
	case contexthistory.FieldCategory:
		return m.OldCategory(ctx)
	case contexthistory.FieldGrade:
		return m.OldGrade(ctx)
	case contexthistory.FieldCombination:
		return m.OldCombination(ctx)
	case contexthistory.FieldCombinationHash:
		return m.OldCombinationHash(ctx)
	case contexthistory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ContextHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContextHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contexthistory.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case contexthistory.FieldScenarioFamilyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenarioFamilyID(v)
		return nil
	case contexthistory.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case contexthistory.FieldGrade:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrade(v)
		return nil
	case contexthistory.FieldCombination:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCombination(v)
		return nil
	case contexthistory.FieldCombinationHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCombinationHash(v)
		return nil
	case contexthistory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ContextHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContextHistoryMutation) AddedFields() []string {
	var fields []string
	if m.addscenario_family_id != nil {
		fields = append(fields, contexthistory.FieldScenarioFamilyID)
	}
	if m.addgrade != nil {
		fields = append(fields, contexthistory.FieldGrade)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContextHistoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contexthistory.FieldScenarioFamilyID:
		return m.AddedScenarioFamilyID()
	case contexthistory.FieldGrade:
		return m.AddedGrade()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContextHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contexthistory.FieldScenarioFamilyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScenarioFamilyID(v)
		return nil
	case contexthistory.FieldGrade:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGrade(v)
		return nil
	}
	return fmt.Errorf("unknown ContextHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContextHistoryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContextHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContextHistoryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ContextHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContextHistoryMutation) ResetField(name string) error {
	switch name {
	case contexthistory.FieldUserID:
		m.ResetUserID()
		return nil
	case contexthistory.FieldScenarioFamilyID:
		m.ResetScenarioFamilyID()
		return nil
	case contexthistory.FieldCategory:
		m.ResetCategory()
		return nil
	case contexthistory.FieldGrade:
		m.ResetGrade()
		return nil
	case contexthistory.FieldCombination:
		m.ResetCombination()
		return nil
	case contexthistory.FieldCombinationHash:
		m.ResetCombinationHash()
		return nil
	case contexthistory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ContextHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContextHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContextHistoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContextHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContextHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContextHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContextHistoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContextHistoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ContextHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContextHistoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ContextHistory edge %s", name)
}

// ContextVariantMutation represents an operation that mutates the ContextVariant nodes in the graph.
type ContextVariantMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	scenario_family_id    *int
	addscenario_family_id *int
	dimension_type        *string
	value                 *string
	semantic_cluster      *string
	usage_count           *int
	addusage_count        *int
	quality_score         *float64
	addquality_score      *float64
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*ContextVariant, error)
	predicates            []predicate.ContextVariant
}

var _ ent.Mutation = (*ContextVariantMutation)(nil)

// contextvariantOption allows management of the mutation configuration using functional options.
type contextvariantOption func(*ContextVariantMutation)

// newContextVariantMutation creates new mutation for the ContextVariant entity.
func newContextVariantMutation(c config, op Op, opts ...contextvariantOption) *ContextVariantMutation {
	m := &ContextVariantMutation{
		config:        c,
		op:            op,
		typ:           TypeContextVariant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContextVariantID sets the ID field of the mutation.
func withContextVariantID(id int) contextvariantOption {
	return func(m *ContextVariantMutation) {
		var (
			err   error
			once  sync.Once
			value *ContextVariant
		)
		m.oldValue = func(ctx context.Context) (*ContextVariant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContextVariant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContextVariant sets the old ContextVariant of the mutation.
func withContextVariant(node *ContextVariant) contextvariantOption {
	return func(m *ContextVariantMutation) {
		m.oldValue = func(context.Context) (*ContextVariant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContextVariantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContextVariantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContextVariantMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContextVariantMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContextVariant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetScenarioFamilyID sets the "scenario_family_id" field.
func (m *ContextVariantMutation) SetScenarioFamilyID(i int) {
	m.scenario_family_id = &i
	m.addscenario_family_id = nil
}

// ScenarioFamilyID returns the value of the "scenario_family_id" field in the mutation.
func (m *ContextVariantMutation) ScenarioFamilyID() (r int, exists bool) {
	v := m.scenario_family_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScenarioFamilyID returns the old "scenario_family_id" field's value of the ContextVariant entity.
// If the ContextVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextVariantMutation) OldScenarioFamilyID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenarioFamilyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenarioFamilyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenarioFamilyID: %w", err)
	}
	return oldValue.ScenarioFamilyID, nil
}

// AddScenarioFamilyID adds i to the "scenario_family_id" field.
func (m *ContextVariantMutation) AddScenarioFamilyID(i int) {
	if m.addscenario_family_id != nil {
		*m.addscenario_family_id += i
	} else {
		m.addscenario_family_id = &i
	}
}

// AddedScenarioFamilyID returns the value that was added to the "scenario_family_id" field in this mutation.
func (m *ContextVariantMutation) AddedScenarioFamilyID() (r int, exists bool) {
	v := m.addscenario_family_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetScenarioFamilyID resets all changes to the "scenario_family_id" field.
func (m *ContextVariantMutation) ResetScenarioFamilyID() {
	m.scenario_family_id = nil
	m.addscenario_family_id = nil
}

// SetDimensionType sets the "dimension_type" field.
func (m *ContextVariantMutation) SetDimensionType(s string) {
	m.dimension_type = &s
}

// DimensionType returns the value of the "dimension_type" field in the mutation.
func (m *ContextVariantMutation) DimensionType() (r string, exists bool) {
	v := m.dimension_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDimensionType returns the old "dimension_type" field's value of the ContextVariant entity.
// If the ContextVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextVariantMutation) OldDimensionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDimensionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDimensionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDimensionType: %w", err)
	}
	return oldValue.DimensionType, nil
}

// ResetDimensionType resets all changes to the "dimension_type" field.
func (m *ContextVariantMutation) ResetDimensionType() {
	m.dimension_type = nil
}

// SetValue sets the "value" field.
func (m *ContextVariantMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *ContextVariantMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the ContextVariant entity.
// If the ContextVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextVariantMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *ContextVariantMutation) ResetValue() {
	m.value = nil
}

// SetSemanticCluster sets the "semantic_cluster" field.
func (m *ContextVariantMutation) SetSemanticCluster(s string) {
	m.semantic_cluster = &s
}

// SemanticCluster returns the value of the "semantic_cluster" field in the mutation.
func (m *ContextVariantMutation) SemanticCluster() (r string, exists bool) {
	v := m.semantic_cluster
	if v == nil {
		return
	}
	return *v, true
}

// OldSemanticCluster returns the old "semantic_cluster" field's value of the ContextVariant entity.
// If the ContextVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextVariantMutation) OldSemanticCluster(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSemanticCluster is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSemanticCluster requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSemanticCluster: %w", err)
	}
	return oldValue.SemanticCluster, nil
}

// ClearSemanticCluster clears the value of the "semantic_cluster" field.
func (m *ContextVariantMutation) ClearSemanticCluster() {
	m.semantic_cluster = nil
	m.clearedFields[contextvariant.FieldSemanticCluster] = struct{}{}
}

// SemanticClusterCleared returns if the "semantic_cluster" field was cleared in this mutation.
func (m *ContextVariantMutation) SemanticClusterCleared() bool {
	_, ok := m.clearedFields[contextvariant.FieldSemanticCluster]
	return ok
}

// ResetSemanticCluster resets all changes to the "semantic_cluster" field.
func (m *ContextVariantMutation) ResetSemanticCluster() {
	m.semantic_cluster = nil
	delete(m.clearedFields, contextvariant.FieldSemanticCluster)
}

// SetUsageCount sets the "usage_count" field.
func (m *ContextVariantMutation) SetUsageCount(i int) {
	m.usage_count = &i
	m.addusage_count = nil
}

// UsageCount returns the value of the "usage_count" field in the mutation.
func (m *ContextVariantMutation) UsageCount() (r int, exists bool) {
	v := m.usage_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUsageCount returns the old "usage_count" field's value of the ContextVariant entity.
// If the ContextVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextVariantMutation) OldUsageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsageCount: %w", err)
	}
	return oldValue.UsageCount, nil
}

// AddUsageCount adds i to the "usage_count" field.
func (m *ContextVariantMutation) AddUsageCount(i int) {
	if m.addusage_count != nil {
		*m.addusage_count += i
	} else {
		m.addusage_count = &i
	}
}

// AddedUsageCount returns the value that was added to the "usage_count" field in this mutation.
func (m *ContextVariantMutation) AddedUsageCount() (r int, exists bool) {
	v := m.addusage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUsageCount resets all changes to the "usage_count" field.
func (m *ContextVariantMutation) ResetUsageCount() {
	m.usage_count = nil
	m.addusage_count = nil
}

// SetQualityScore sets the "quality_score" field.
func (m *ContextVariantMutation) SetQualityScore(f float64) {
	m.quality_score = &f
	m.addquality_score = nil
}

// QualityScore returns the value of the "quality_score" field in the mutation.
func (m *ContextVariantMutation) QualityScore() (r float64, exists bool) {
	v := m.quality_score
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityScore returns the old "quality_score" field's value of the ContextVariant entity.
// If the ContextVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextVariantMutation) OldQualityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityScore: %w", err)
	}
	return oldValue.QualityScore, nil
}

// AddQualityScore adds f to the "quality_score" field.
func (m *ContextVariantMutation) AddQualityScore(f float64) {
	if m.addquality_score != nil {
		*m.addquality_score += f
	} else {
		m.addquality_score = &f
	}
}

// AddedQualityScore returns the value that was added to the "quality_score" field in this mutation.
func (m *ContextVariantMutation) AddedQualityScore() (r float64, exists bool) {
	v := m.addquality_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetQualityScore resets all changes to the "quality_score" field.
func (m *ContextVariantMutation) ResetQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
}

// Where appends a list predicates to the ContextVariantMutation builder.
func (m *ContextVariantMutation) Where(ps ...predicate.ContextVariant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContextVariantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContextVariantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContextVariant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContextVariantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContextVariantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContextVariant).
func (m *ContextVariantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContextVariantMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.scenario_family_id != nil {
		fields = append(fields, contextvariant.FieldScenarioFamilyID)
	}
	if m.dimension_type != nil {
		fields = append(fields, contextvariant.FieldDimensionType)
	}
	if m.value != nil {
		fields = append(fields, contextvariant.FieldValue)
	}
	if m.semantic_cluster != nil {
		fields = append(fields, contextvariant.FieldSemanticCluster)
	}
	if m.usage_count != nil {
		fields = append(fields, contextvariant.FieldUsageCount)
	}
	if m.quality_score != nil {
		fields = append(fields, contextvariant.FieldQualityScore)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContextVariantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contextvariant.FieldScenarioFamilyID:
		return m.ScenarioFamilyID()
	case contextvariant.FieldDimensionType:
		return m.DimensionType()
	case contextvariant.FieldValue:
		return m.Value()
	case contextvariant.FieldSemanticCluster:
		return m.SemanticCluster()
	case contextvariant.FieldUsageCount:
		return m.UsageCount()
	case contextvariant.FieldQualityScore:
		return m.QualityScore()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContextVariantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contextvariant.FieldScenarioFamilyID:
		return m.OldScenarioFamilyID(ctx)
	case contextvariant.FieldDimensionType:
		return m.OldDimensionType(ctx)
	case contextvariant.FieldValue:
		return m.OldValue(ctx)
	case contextvariant.FieldSemanticCluster:
		return m.OldSemanticCluster(ctx)
	case contextvariant.FieldUsageCount:
		return m.OldUsageCount(ctx)
	case contextvariant.FieldQualityScore:
		return m.OldQualityScore(ctx)
	}
	return nil, fmt.Errorf("unknown ContextVariant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContextVariantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contextvariant.FieldScenarioFamilyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenarioFamilyID(v)
		return nil
	case contextvariant.FieldDimensionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDimensionType(v)
		return nil
	case contextvariant.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case contextvariant.FieldSemanticCluster:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSemanticCluster(v)
		return nil
	case contextvariant.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsageCount(v)
		return nil
	case contextvariant.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityScore(v)
		return nil
	}
	return fmt.Errorf("unknown ContextVariant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContextVariantMutation) AddedFields() []string {
	var fields []string
	if m.addscenario_family_id != nil {
		fields = append(fields, contextvariant.FieldScenarioFamilyID)
	}
	if m.addusage_count != nil {
		fields = append(fields, contextvariant.FieldUsageCount)
	}
	if m.addquality_score != nil {
		fields = append(fields, contextvariant.FieldQualityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContextVariantMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contextvariant.FieldScenarioFamilyID:
		return m.AddedScenarioFamilyID()
	case contextvariant.FieldUsageCount:
		return m.AddedUsageCount()
	case contextvariant.FieldQualityScore:
		return m.AddedQualityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContextVariantMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contextvariant.FieldScenarioFamilyID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScenarioFamilyID(v)
		return nil
	case contextvariant.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUsageCount(v)
		return nil
	case contextvariant.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQualityScore(v)
		return nil
	}
	return fmt.Errorf("unknown ContextVariant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContextVariantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contextvariant.FieldSemanticCluster) {
		fields = append(fields, contextvariant.FieldSemanticCluster)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContextVariantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContextVariantMutation) ClearField(name string) error {
	switch name {
	case contextvariant.FieldSemanticCluster:
		m.ClearSemanticCluster()
		return nil
	}
	return fmt.Errorf("unknown ContextVariant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContextVariantMutation) ResetField(name string) error {
	switch name {
	case contextvariant.FieldScenarioFamilyID:
		m.ResetScenarioFamilyID()
		return nil
	case contextvariant.FieldDimensionType:
		m.ResetDimensionType()
		return nil
	case contextvariant.FieldValue:
		m.ResetValue()
		return nil
	case contextvariant.FieldSemanticCluster:
		m.ResetSemanticCluster()
		return nil
	case contextvariant.FieldUsageCount:
		m.ResetUsageCount()
		return nil
	case contextvariant.FieldQualityScore:
		m.ResetQualityScore()
		return nil
	}
	return fmt.Errorf("unknown ContextVariant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContextVariantMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContextVariantMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContextVariantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContextVariantMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContextVariantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContextVariantMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContextVariantMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ContextVariant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContextVariantMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ContextVariant edge %s", name)
}

// GenerationRunMutation represents an operation that mutates the GenerationRun nodes in the graph.
type GenerationRunMutation struct {
	config
	op               Op
	typ              string
	id               *int
	run_id           *string
	gaps_targeted    *int
	addgaps_targeted *int
	generated        *int
	addgenerated     *int
	rejected         *int
	addrejected      *int
	failed           *int
	addfailed        *int
	started_at       *time.Time
	finished_at      *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*GenerationRun, error)
	predicates       []predicate.GenerationRun
}

var _ ent.Mutation = (*GenerationRunMutation)(nil)

// generationrunOption allows management of the mutation configuration using functional options.
type generationrunOption func(*GenerationRunMutation)

// newGenerationRunMutation creates new mutation for the GenerationRun entity.
func newGenerationRunMutation(c config, op Op, opts ...generationrunOption) *GenerationRunMutation {
	m := &GenerationRunMutation{
		config:        c,
		op:            op,
		typ:           TypeGenerationRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGenerationRunID sets the ID field of the mutation.
func withGenerationRunID(id int) generationrunOption {
	return func(m *GenerationRunMutation) {
		var (
			err   error
			once  sync.Once
			value *GenerationRun
		)
		m.oldValue = func(ctx context.Context) (*GenerationRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GenerationRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGenerationRun sets the old GenerationRun of the mutation.
func withGenerationRun(node *GenerationRun) generationrunOption {
	return func(m *GenerationRunMutation) {
		m.oldValue = func(context.Context) (*GenerationRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GenerationRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GenerationRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GenerationRunMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GenerationRunMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GenerationRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *GenerationRunMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *GenerationRunMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the GenerationRun entity.
// If the GenerationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationRunMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *GenerationRunMutation) ResetRunID() {
	m.run_id = nil
}

// SetGapsTargeted sets the "gaps_targeted" field.
func (m *GenerationRunMutation) SetGapsTargeted(i int) {
	m.gaps_targeted = &i
	m.addgaps_targeted = nil
}

// GapsTargeted returns the value of the "gaps_targeted" field in the mutation.
func (m *GenerationRunMutation) GapsTargeted() (r int, exists bool) {
	v := m.gaps_targeted
	if v == nil {
		return
	}
	return *v, true
}

// OldGapsTargeted returns the old "gaps_targeted" field's value of the GenerationRun entity.
// If the GenerationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationRunMutation) OldGapsTargeted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGapsTargeted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGapsTargeted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGapsTargeted: %w", err)
	}
	return oldValue.GapsTargeted, nil
}

// AddGapsTargeted adds i to the "gaps_targeted" field.
func (m *GenerationRunMutation) AddGapsTargeted(i int) {
	if m.addgaps_targeted != nil {
		*m.addgaps_targeted += i
	} else {
		m.addgaps_targeted = &i
	}
}

// AddedGapsTargeted returns the value that was added to the "gaps_targeted" field in this mutation.
func (m *GenerationRunMutation) AddedGapsTargeted() (r int, exists bool) {
	v := m.addgaps_targeted
	if v == nil {
		return
	}
	return *v, true
}

// ResetGapsTargeted resets all changes to the "gaps_targeted" field.
func (m *GenerationRunMutation) ResetGapsTargeted() {
	m.gaps_targeted = nil
	m.addgaps_targeted = nil
}

// SetGenerated sets the "generated" field.
func (m *GenerationRunMutation) SetGenerated(i int) {
	m.generated = &i
	m.addgenerated = nil
}

// Generated returns the value of the "generated" field in the mutation.
func (m *GenerationRunMutation) Generated() (r int, exists bool) {
	v := m.generated
	if v == nil {
		return
	}
	return *v, true
}

// OldGenerated returns the old "generated" field's value of the GenerationRun entity.
// If the GenerationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationRunMutation) OldGenerated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenerated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenerated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenerated: %w", err)
	}
	return oldValue.Generated, nil
}

// AddGenerated adds i to the "generated" field.
func (m *GenerationRunMutation) AddGenerated(i int) {
	if m.addgenerated != nil {
		*m.addgenerated += i
	} else {
		m.addgenerated = &i
	}
}

// AddedGenerated returns the value that was added to the "generated" field in this mutation.
func (m *GenerationRunMutation) AddedGenerated() (r int, exists bool) {
	v := m.addgenerated
	if v == nil {
		return
	}
	return *v, true
}

// ResetGenerated resets all changes to the "generated" field.
func (m *GenerationRunMutation) ResetGenerated() {
	m.generated = nil
	m.addgenerated = nil
}

// SetRejected sets the "rejected" field.
func (m *GenerationRunMutation) SetRejected(i int) {
	m.rejected = &i
	m.addrejected = nil
}

// Rejected returns the value of the "rejected" field in the mutation.
func (m *GenerationRunMutation) Rejected() (r int, exists bool) {
	v := m.rejected
	if v == nil {
		return
	}
	return *v, true
}

// OldRejected returns the old "rejected" field's value of the GenerationRun entity.
// If the GenerationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationRunMutation) OldRejected(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejected: %w", err)
	}
	return oldValue.Rejected, nil
}

// AddRejected adds i to the "rejected" field.
func (m *GenerationRunMutation) AddRejected(i int) {
	if m.addrejected != nil {
		*m.addrejected += i
	} else {
		m.addrejected = &i
	}
}

// AddedRejected returns the value that was added to the "rejected" field in this mutation.
func (m *GenerationRunMutation) AddedRejected() (r int, exists bool) {
	v := m.addrejected
	if v == nil {
		return
	}
	return *v, true
}

// ResetRejected resets all changes to the "rejected" field.
func (m *GenerationRunMutation) ResetRejected() {
	m.rejected = nil
	m.addrejected = nil
}

// SetFailed sets the "failed" field.
func (m *GenerationRunMutation) SetFailed(i int) {
	m.failed = &i
	m.addfailed = nil
}

// Failed returns the value of the "failed" field in the mutation.
func (m *GenerationRunMutation) Failed() (r int, exists bool) {
	v := m.failed
	if v == nil {
		return
	}
	return *v, true
}

// OldFailed returns the old "failed" field's value of the GenerationRun entity.
// If the GenerationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationRunMutation) OldFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailed: %w", err)
	}
	return oldValue.Failed, nil
}

// AddFailed adds i to the "failed" field.
func (m *GenerationRunMutation) AddFailed(i int) {
	if m.addfailed != nil {
		*m.addfailed += i
	} else {
		m.addfailed = &i
	}
}

// AddedFailed returns the value that was added to the "failed" field in this mutation.
func (m *GenerationRunMutation) AddedFailed() (r int, exists bool) {
	v := m.addfailed
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailed resets all changes to the "failed" field.
func (m *GenerationRunMutation) ResetFailed() {
	m.failed = nil
	m.addfailed = nil
}

// SetStartedAt sets the "started_at" field.
func (m *GenerationRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *GenerationRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the GenerationRun entity.
// If the GenerationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *GenerationRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *GenerationRunMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *GenerationRunMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the GenerationRun entity.
// If the GenerationRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationRunMutation) OldFinishedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *GenerationRunMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[generationrun.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *GenerationRunMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[generationrun.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *GenerationRunMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, generationrun.FieldFinishedAt)
}

// Where appends a list predicates to the GenerationRunMutation builder.
func (m *GenerationRunMutation) Where(ps ...predicate.GenerationRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GenerationRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GenerationRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GenerationRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GenerationRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GenerationRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GenerationRun).
func (m *GenerationRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GenerationRunMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.run_id != nil {
		fields = append(fields, generationrun.FieldRunID)
	}
	if m.gaps_targeted != nil {
		fields = append(fields, generationrun.FieldGapsTargeted)
	}
	if m.generated != nil {
		fields = append(fields, generationrun.FieldGenerated)
	}
	if m.rejected != nil {
		fields = append(fields, generationrun.FieldRejected)
	}
	if m.failed != nil {
		fields = append(fields, generationrun.FieldFailed)
	}
	if m.started_at != nil {
		fields = append(fields, generationrun.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, generationrun.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GenerationRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case generationrun.FieldRunID:
		return m.RunID()
	case generationrun.FieldGapsTargeted:
		return m.GapsTargeted()
	case generationrun.FieldGenerated:
		return m.Generated()
	case generationrun.FieldRejected:
		return m.Rejected()
	case generationrun.FieldFailed:
		return m.Failed()
	case generationrun.FieldStartedAt:
		return m.StartedAt()
	case generationrun.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GenerationRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case generationrun.FieldRunID:
		return m.OldRunID(ctx)
	case generationrun.FieldGapsTargeted:
		return m.OldGapsTargeted(ctx)
	case generationrun.FieldGenerated:
		return m.OldGenerated(ctx)
	case generationrun.FieldRejected:
		return m.OldRejected(ctx)
	case generationrun.FieldFailed:
		return m.OldFailed(ctx)
	case generationrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case generationrun.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GenerationRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case generationrun.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case generationrun.FieldGapsTargeted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGapsTargeted(v)
		return nil
	case generationrun.FieldGenerated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenerated(v)
		return nil
	case generationrun.FieldRejected:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejected(v)
		return nil
	case generationrun.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailed(v)
		return nil
	case generationrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case generationrun.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GenerationRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GenerationRunMutation) AddedFields() []string {
	var fields []string
	if m.addgaps_targeted != nil {
		fields = append(fields, generationrun.FieldGapsTargeted)
	}
	if m.addgenerated != nil {
		fields = append(fields, generationrun.FieldGenerated)
	}
	if m.addrejected != nil {
		fields = append(fields, generationrun.FieldRejected)
	}
	if m.addfailed != nil {
		fields = append(fields, generationrun.FieldFailed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GenerationRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case generationrun.FieldGapsTargeted:
		return m.AddedGapsTargeted()
	case generationrun.FieldGenerated:
		return m.AddedGenerated()
	case generationrun.FieldRejected:
		return m.AddedRejected()
	case generationrun.FieldFailed:
		return m.AddedFailed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case generationrun.FieldGapsTargeted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGapsTargeted(v)
		return nil
	case generationrun.FieldGenerated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGenerated(v)
		return nil
	case generationrun.FieldRejected:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRejected(v)
		return nil
	case generationrun.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailed(v)
		return nil
	}
	return fmt.Errorf("unknown GenerationRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GenerationRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(generationrun.FieldFinishedAt) {
		fields = append(fields, generationrun.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GenerationRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GenerationRunMutation) ClearField(name string) error {
	switch name {
	case generationrun.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown GenerationRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GenerationRunMutation) ResetField(name string) error {
	switch name {
	case generationrun.FieldRunID:
		m.ResetRunID()
		return nil
	case generationrun.FieldGapsTargeted:
		m.ResetGapsTargeted()
		return nil
	case generationrun.FieldGenerated:
		m.ResetGenerated()
		return nil
	case generationrun.FieldRejected:
		m.ResetRejected()
		return nil
	case generationrun.FieldFailed:
		m.ResetFailed()
		return nil
	case generationrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case generationrun.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown GenerationRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GenerationRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GenerationRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GenerationRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GenerationRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GenerationRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GenerationRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GenerationRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GenerationRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GenerationRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GenerationRun edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// LearningSessionMutation represents an operation that mutates the LearningSession nodes in the graph.
type LearningSessionMutation struct {
	config
	op               Op
	typ              string
	id               *int
	session_id       *string
	user_id          *string
	category         *string
	grade            *int
	addgrade         *int
	correct          *int
	addcorrect       *int
	total            *int
	addtotal         *int
	duration_secs    *int
	addduration_secs *int
	templates        *[]int
	appendtemplates  []int
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LearningSession, error)
	predicates       []predicate.LearningSession
}

var _ ent.Mutation = (*LearningSessionMutation)(nil)

// learningsessionOption allows management of the mutation configuration using functional options.
type learningsessionOption func(*LearningSessionMutation)

// newLearningSessionMutation creates new mutation for the LearningSession entity.
func newLearningSessionMutation(c config, op Op, opts ...learningsessionOption) *LearningSessionMutation {
	m := &LearningSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeLearningSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearningSessionID sets the ID field of the mutation.
func withLearningSessionID(id int) learningsessionOption {
	return func(m *LearningSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *LearningSession
		)
		m.oldValue = func(ctx context.Context) (*LearningSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearningSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearningSession sets the old LearningSession of the mutation.
func withLearningSession(node *LearningSession) learningsessionOption {
	return func(m *LearningSessionMutation) {
		m.oldValue = func(context.Context) (*LearningSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearningSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearningSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearningSessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearningSessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearningSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *LearningSessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *LearningSessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *LearningSessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUserID sets the "user_id" field.
func (m *LearningSessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LearningSessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LearningSessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetCategory sets the "category" field.
func (m *LearningSessionMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *LearningSessionMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *LearningSessionMutation) ResetCategory() {
	m.category = nil
}

// SetGrade sets the "grade" field.
func (m *LearningSessionMutation) SetGrade(i int) {
	m.grade = &i
	m.addgrade = nil
}

// Grade returns the value of the "grade" field in the mutation.
func (m *LearningSessionMutation) Grade() (r int, exists bool) {
	v := m.grade
	if v == nil {
		return
	}
	return *v, true
}

// OldGrade returns the old "grade" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldGrade(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrade: %w", err)
	}
	return oldValue.Grade, nil
}

// AddGrade adds i to the "grade" field.
func (m *LearningSessionMutation) AddGrade(i int) {
	if m.addgrade != nil {
		*m.addgrade += i
	} else {
		m.addgrade = &i
	}
}

// AddedGrade returns the value that was added to the "grade" field in this mutation.
func (m *LearningSessionMutation) AddedGrade() (r int, exists bool) {
	v := m.addgrade
	if v == nil {
		return
	}
	return *v, true
}

// ResetGrade resets all changes to the "grade" field.
func (m *LearningSessionMutation) ResetGrade() {
	m.grade = nil
	m.addgrade = nil
}

// SetCorrect sets the "correct" field.
func (m *LearningSessionMutation) SetCorrect(i int) {
	m.correct = &i
	m.addcorrect = nil
}

// Correct returns the value of the "correct" field in the mutation.
func (m *LearningSessionMutation) Correct() (r int, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// AddCorrect adds i to the "correct" field.
func (m *LearningSessionMutation) AddCorrect(i int) {
	if m.addcorrect != nil {
		*m.addcorrect += i
	} else {
		m.addcorrect = &i
	}
}

// AddedCorrect returns the value that was added to the "correct" field in this mutation.
func (m *LearningSessionMutation) AddedCorrect() (r int, exists bool) {
	v := m.addcorrect
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrect resets all changes to the "correct" field.
func (m *LearningSessionMutation) ResetCorrect() {
	m.correct = nil
	m.addcorrect = nil
}

// SetTotal sets the "total" field.
func (m *LearningSessionMutation) SetTotal(i int) {
	m.total = &i
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *LearningSessionMutation) Total() (r int, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds i to the "total" field.
func (m *LearningSessionMutation) AddTotal(i int) {
	if m.addtotal != nil {
		*m.addtotal += i
	} else {
		m.addtotal = &i
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *LearningSessionMutation) AddedTotal() (r int, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotal resets all changes to the "total" field.
func (m *LearningSessionMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
}

// SetDurationSecs sets the "duration_secs" field.
func (m *LearningSessionMutation) SetDurationSecs(i int) {
	m.duration_secs = &i
	m.addduration_secs = nil
}

// DurationSecs returns the value of the "duration_secs" field in the mutation.
func (m *LearningSessionMutation) DurationSecs() (r int, exists bool) {
	v := m.duration_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSecs returns the old "duration_secs" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldDurationSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSecs: %w", err)
	}
	return oldValue.DurationSecs, nil
}

// AddDurationSecs adds i to the "duration_secs" field.
func (m *LearningSessionMutation) AddDurationSecs(i int) {
	if m.addduration_secs != nil {
		*m.addduration_secs += i
	} else {
		m.addduration_secs = &i
	}
}

// AddedDurationSecs returns the value that was added to the "duration_secs" field in this mutation.
func (m *LearningSessionMutation) AddedDurationSecs() (r int, exists bool) {
	v := m.addduration_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSecs resets all changes to the "duration_secs" field.
func (m *LearningSessionMutation) ResetDurationSecs() {
	m.duration_secs = nil
	m.addduration_secs = nil
}

// SetTemplates sets the "templates" field.
func (m *LearningSessionMutation) SetTemplates(i []int) {
	m.templates = &i
	m.appendtemplates = nil
}

// Templates returns the value of the "templates" field in the mutation.
func (m *LearningSessionMutation) Templates() (r []int, exists bool) {
	v := m.templates
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplates returns the old "templates" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldTemplates(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplates is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplates requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplates: %w", err)
	}
	return oldValue.Templates, nil
}

// AppendTemplates adds i to the "templates" field.
func (m *LearningSessionMutation) AppendTemplates(i []int) {
	m.appendtemplates = append(m.appendtemplates, i...)
}

// AppendedTemplates returns the list of values that were appended to the "templates" field in this mutation.
func (m *LearningSessionMutation) AppendedTemplates() ([]int, bool) {
	if len(m.appendtemplates) == 0 {
		return nil, false
	}
	return m.appendtemplates, true
}

// ClearTemplates clears the value of the "templates" field.
func (m *LearningSessionMutation) ClearTemplates() {
	m.templates = nil
	m.appendtemplates = nil
	m.clearedFields[learningsession.FieldTemplates] = struct{}{}
}

// TemplatesCleared returns if the "templates" field was cleared in this mutation.
func (m *LearningSessionMutation) TemplatesCleared() bool {
	_, ok := m.clearedFields[learningsession.FieldTemplates]
	return ok
}

// ResetTemplates resets all changes to the "templates" field.
func (m *LearningSessionMutation) ResetTemplates() {
	m.templates = nil
	m.appendtemplates = nil
	delete(m.clearedFields, learningsession.FieldTemplates)
}

// SetCreatedAt sets the "created_at" field.
func (m *LearningSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LearningSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LearningSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LearningSessionMutation builder.
func (m *LearningSessionMutation) Where(ps ...predicate.LearningSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearningSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearningSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearningSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearningSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearningSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearningSession).
func (m *LearningSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearningSessionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.session_id != nil {
		fields = append(fields, learningsession.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, learningsession.FieldUserID)
	}
	if m.category != nil {
		fields = append(fields, learningsession.FieldCategory)
	}
	if m.grade != nil {
		fields = append(fields, learningsession.FieldGrade)
	}
	if m.correct != nil {
		fields = append(fields, learningsession.FieldCorrect)
	}
	if m.total != nil {
		fields = append(fields, learningsession.FieldTotal)
	}
	if m.duration_secs != nil {
		fields = append(fields, learningsession.FieldDurationSecs)
	}
	if m.templates != nil {
		fields = append(fields, learningsession.FieldTemplates)
	}
	if m.created_at != nil {
		fields = append(fields, learningsession.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearningSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learningsession.FieldSessionID:
		return m.SessionID()
	case learningsession.FieldUserID:
		return m.UserID()
	case learningsession.FieldCategory:
		return m.Category()
	case learningsession.FieldGrade:
		return m.Grade()
	case learningsession.FieldCorrect:
		return m.Correct()
	case learningsession.FieldTotal:
		return m.Total()
	case learningsession.FieldDurationSecs:
		return m.DurationSecs()
	case learningsession.FieldTemplates:
		return m.Templates()
	case learningsession.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearningSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learningsession.FieldSessionID:
		return m.OldSessionID(ctx)
	case learningsession.FieldUserID:
		return m.OldUserID(ctx)
	case learningsession.FieldCategory:
		return m.OldCategory(ctx)
	case learningsession.FieldGrade:
		return m.OldGrade(ctx)
	case learningsession.FieldCorrect:
		return m.OldCorrect(ctx)
	case learningsession.FieldTotal:
		return m.OldTotal(ctx)
	case learningsession.FieldDurationSecs:
		return m.OldDurationSecs(ctx)
	case learningsession.FieldTemplates:
		return m.OldTemplates(ctx)
	case learningsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LearningSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learningsession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case learningsession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case learningsession.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case learningsession.FieldGrade:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrade(v)
		return nil
	case learningsession.FieldCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case learningsession.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case learningsession.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSecs(v)
		return nil
	case learningsession.FieldTemplates:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplates(v)
		return nil
	case learningsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LearningSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearningSessionMutation) AddedFields() []string {
	var fields []string
	if m.addgrade != nil {
		fields = append(fields, learningsession.FieldGrade)
	}
	if m.addcorrect != nil {
		fields = append(fields, learningsession.FieldCorrect)
	}
	if m.addtotal != nil {
		fields = append(fields, learningsession.FieldTotal)
	}
	if m.addduration_secs != nil {
		fields = append(fields, learningsession.FieldDurationSecs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearningSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learningsession.FieldGrade:
		return m.AddedGrade()
	case learningsession.FieldCorrect:
		return m.AddedCorrect()
	case learningsession.FieldTotal:
		return m.AddedTotal()
	case learningsession.FieldDurationSecs:
		return m.AddedDurationSecs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learningsession.FieldGrade:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGrade(v)
		return nil
	case learningsession.FieldCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrect(v)
		return nil
	case learningsession.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	case learningsession.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSecs(v)
		return nil
	}
	return fmt.Errorf("unknown LearningSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearningSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(learningsession.FieldTemplates) {
		fields = append(fields, learningsession.FieldTemplates)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearningSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearningSessionMutation) ClearField(name string) error {
	switch name {
	case learningsession.FieldTemplates:
		m.ClearTemplates()
		return nil
	}
	return fmt.Errorf("unknown LearningSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearningSessionMutation) ResetField(name string) error {
	switch name {
	case learningsession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case learningsession.FieldUserID:
		m.ResetUserID()
		return nil
	case learningsession.FieldCategory:
		m.ResetCategory()
		return nil
	case learningsession.FieldGrade:
		m.ResetGrade()
		return nil
	case learningsession.FieldCorrect:
		m.ResetCorrect()
		return nil
	case learningsession.FieldTotal:
		m.ResetTotal()
		return nil
	case learningsession.FieldDurationSecs:
		m.ResetDurationSecs()
		return nil
	case learningsession.FieldTemplates:
		m.ResetTemplates()
		return nil
	case learningsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LearningSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearningSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearningSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearningSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearningSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearningSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearningSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearningSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LearningSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearningSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LearningSession edge %s", name)
}

// RewardEventMutation represents an operation that mutates the RewardEvent nodes in the graph.
type RewardEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	user_id       *string
	session_id    *string
	minutes       *float64
	addminutes    *float64
	reason        *string
	streak        *int
	addstreak     *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*RewardEvent, error)
	predicates    []predicate.RewardEvent
}

var _ ent.Mutation = (*RewardEventMutation)(nil)

// rewardeventOption allows management of the mutation configuration using functional options.
type rewardeventOption func(*RewardEventMutation)

// newRewardEventMutation creates new mutation for the RewardEvent entity.
func newRewardEventMutation(c config, op Op, opts ...rewardeventOption) *RewardEventMutation {
	m := &RewardEventMutation{
		config:        c,
		op:            op,
		typ:           TypeRewardEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRewardEventID sets the ID field of the mutation.
func withRewardEventID(id int) rewardeventOption {
	return func(m *RewardEventMutation) {
		var (
			err   error
			once  sync.Once
			value *RewardEvent
		)
		m.oldValue = func(ctx context.Context) (*RewardEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RewardEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRewardEvent sets the old RewardEvent of the mutation.
func withRewardEvent(node *RewardEvent) rewardeventOption {
	return func(m *RewardEventMutation) {
		m.oldValue = func(context.Context) (*RewardEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RewardEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RewardEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RewardEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RewardEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RewardEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *RewardEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *RewardEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the RewardEvent entity.
// If the RewardEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RewardEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *RewardEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *RewardEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *RewardEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *RewardEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *RewardEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the RewardEvent entity.
// If the RewardEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RewardEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *RewardEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetUserID sets the "user_id" field.
func (m *RewardEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *RewardEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the RewardEvent entity.
// If the RewardEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RewardEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *RewardEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *RewardEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *RewardEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the RewardEvent entity.
// If the RewardEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RewardEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *RewardEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetMinutes sets the "minutes" field.
func (m *RewardEventMutation) SetMinutes(f float64) {
	m.minutes = &f
	m.addminutes = nil
}

// Minutes returns the value of the "minutes" field in the mutation.
func (m *RewardEventMutation) Minutes() (r float64, exists bool) {
	v := m.minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldMinutes returns the old "minutes" field's value of the RewardEvent entity.
// If the RewardEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RewardEventMutation) OldMinutes(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinutes: %w", err)
	}
	return oldValue.Minutes, nil
}

// AddMinutes adds f to the "minutes" field.
func (m *RewardEventMutation) AddMinutes(f float64) {
	if m.addminutes != nil {
		*m.addminutes += f
	} else {
		m.addminutes = &f
	}
}

// AddedMinutes returns the value that was added to the "minutes" field in this mutation.
func (m *RewardEventMutation) AddedMinutes() (r float64, exists bool) {
	v := m.addminutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinutes resets all changes to the "minutes" field.
func (m *RewardEventMutation) ResetMinutes() {
	m.minutes = nil
	m.addminutes = nil
}

// SetReason sets the "reason" field.
func (m *RewardEventMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *RewardEventMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the RewardEvent entity.
// If the RewardEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RewardEventMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *RewardEventMutation) ResetReason() {
	m.reason = nil
}

// SetStreak sets the "streak" field.
func (m *RewardEventMutation) SetStreak(i int) {
	m.streak = &i
	m.addstreak = nil
}

// Streak returns the value of the "streak" field in the mutation.
func (m *RewardEventMutation) Streak() (r int, exists bool) {
	v := m.streak
	if v == nil {
		return
	}
	return *v, true
}

// OldStreak returns the old "streak" field's value of the RewardEvent entity.
// If the RewardEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RewardEventMutation) OldStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreak: %w", err)
	}
	return oldValue.Streak, nil
}

// AddStreak adds i to the "streak" field.
func (m *RewardEventMutation) AddStreak(i int) {
	if m.addstreak != nil {
		*m.addstreak += i
	} else {
		m.addstreak = &i
	}
}

// AddedStreak returns the value that was added to the "streak" field in this mutation.
func (m *RewardEventMutation) AddedStreak() (r int, exists bool) {
	v := m.addstreak
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreak resets all changes to the "streak" field.
func (m *RewardEventMutation) ResetStreak() {
	m.streak = nil
	m.addstreak = nil
}

// Where appends a list predicates to the RewardEventMutation builder.
func (m *RewardEventMutation) Where(ps ...predicate.RewardEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RewardEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RewardEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RewardEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RewardEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RewardEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RewardEvent).
func (m *RewardEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RewardEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.sequence != nil {
		fields = append(fields, rewardevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, rewardevent.FieldTimestamp)
	}
	if m.user_id != nil {
		fields = append(fields, rewardevent.FieldUserID)
	}
	if m.session_id != nil {
		fields = append(fields, rewardevent.FieldSessionID)
	}
	if m.minutes != nil {
		fields = append(fields, rewardevent.FieldMinutes)
	}
	if m.reason != nil {
		fields = append(fields, rewardevent.FieldReason)
	}
	if m.streak != nil {
		fields = append(fields, rewardevent.FieldStreak)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RewardEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rewardevent.FieldSequence:
		return m.Sequence()
	case rewardevent.FieldTimestamp:
		return m.Timestamp()
	case rewardevent.FieldUserID:
		return m.UserID()
	case rewardevent.FieldSessionID:
		return m.SessionID()
	case rewardevent.FieldMinutes:
		return m.Minutes()
	case rewardevent.FieldReason:
		return m.Reason()
	case rewardevent.FieldStreak:
		return m.Streak()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RewardEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rewardevent.FieldSequence:
		return m.OldSequence(ctx)
	case rewardevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case rewardevent.FieldUserID:
		return m.OldUserID(ctx)
	case rewardevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case rewardevent.FieldMinutes:
		return m.OldMinutes(ctx)
	case rewardevent.FieldReason:
		return m.OldReason(ctx)
	case rewardevent.FieldStreak:
		return m.OldStreak(ctx)
	}
	return nil, fmt.Errorf("unknown RewardEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RewardEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rewardevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case rewardevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case rewardevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case rewardevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case rewardevent.FieldMinutes:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinutes(v)
		return nil
	case rewardevent.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case rewardevent.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreak(v)
		return nil
	}
	return fmt.Errorf("unknown RewardEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RewardEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, rewardevent.FieldSequence)
	}
	if m.addminutes != nil {
		fields = append(fields, rewardevent.FieldMinutes)
	}
	if m.addstreak != nil {
		fields = append(fields, rewardevent.FieldStreak)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RewardEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case rewardevent.FieldSequence:
		return m.AddedSequence()
	case rewardevent.FieldMinutes:
		return m.AddedMinutes()
	case rewardevent.FieldStreak:
		return m.AddedStreak()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RewardEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case rewardevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case rewardevent.FieldMinutes:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinutes(v)
		return nil
	case rewardevent.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreak(v)
		return nil
	}
	return fmt.Errorf("unknown RewardEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RewardEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RewardEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RewardEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RewardEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RewardEventMutation) ResetField(name string) error {
	switch name {
	case rewardevent.FieldSequence:
		m.ResetSequence()
		return nil
	case rewardevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case rewardevent.FieldUserID:
		m.ResetUserID()
		return nil
	case rewardevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case rewardevent.FieldMinutes:
		m.ResetMinutes()
		return nil
	case rewardevent.FieldReason:
		m.ResetReason()
		return nil
	case rewardevent.FieldStreak:
		m.ResetStreak()
		return nil
	}
	return fmt.Errorf("unknown RewardEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RewardEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RewardEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RewardEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RewardEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RewardEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RewardEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RewardEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RewardEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RewardEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RewardEvent edge %s", name)
}

// ScenarioFamilyMutation represents an operation that mutates the ScenarioFamily nodes in the graph.
type ScenarioFamilyMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	name                *string
	category            *string
	grade_min           *int
	addgrade_min        *int
	grade_max           *int
	addgrade_max        *int
	base_template       *string
	context_slots       *map[string]schema.SlotSpec
	difficulty_level    *int
	adddifficulty_level *int
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*ScenarioFamily, error)
	predicates          []predicate.ScenarioFamily
}

var _ ent.Mutation = (*ScenarioFamilyMutation)(nil)

// scenariofamilyOption allows management of the mutation configuration using functional options.
type scenariofamilyOption func(*ScenarioFamilyMutation)

// newScenarioFamilyMutation creates new mutation for the ScenarioFamily entity.
func newScenarioFamilyMutation(c config, op Op, opts ...scenariofamilyOption) *ScenarioFamilyMutation {
	m := &ScenarioFamilyMutation{
		config:        c,
		op:            op,
		typ:           TypeScenarioFamily,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScenarioFamilyID sets the ID field of the mutation.
func withScenarioFamilyID(id int) scenariofamilyOption {
	return func(m *ScenarioFamilyMutation) {
		var (
			err   error
			once  sync.Once
			value *ScenarioFamily
		)
		m.oldValue = func(ctx context.Context) (*ScenarioFamily, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScenarioFamily.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScenarioFamily sets the old ScenarioFamily of the mutation.
func withScenarioFamily(node *ScenarioFamily) scenariofamilyOption {
	return func(m *ScenarioFamilyMutation) {
		m.oldValue = func(context.Context) (*ScenarioFamily, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScenarioFamilyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScenarioFamilyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScenarioFamilyMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScenarioFamilyMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScenarioFamily.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ScenarioFamilyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ScenarioFamilyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ScenarioFamily entity.
// If the ScenarioFamily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioFamilyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ScenarioFamilyMutation) ResetName() {
	m.name = nil
}

// SetCategory sets the "category" field.
func (m *ScenarioFamilyMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ScenarioFamilyMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ScenarioFamily entity.
// If the ScenarioFamily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioFamilyMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *ScenarioFamilyMutation) ResetCategory() {
	m.category = nil
}

// SetGradeMin sets the "grade_min" field.
func (m *ScenarioFamilyMutation) SetGradeMin(i int) {
	m.grade_min = &i
	m.addgrade_min = nil
}

// GradeMin returns the value of the "grade_min" field in the mutation.
func (m *ScenarioFamilyMutation) GradeMin() (r int, exists bool) {
	v := m.grade_min
	if v == nil {
		return
	}
	return *v, true
}

// OldGradeMin returns the old "grade_min" field's value of the ScenarioFamily entity.
// If the ScenarioFamily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioFamilyMutation) OldGradeMin(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGradeMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGradeMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGradeMin: %w", err)
	}
	return oldValue.GradeMin, nil
}

// AddGradeMin adds i to the "grade_min" field.
func (m *ScenarioFamilyMutation) AddGradeMin(i int) {
	if m.addgrade_min != nil {
		*m.addgrade_min += i
	} else {
		m.addgrade_min = &i
	}
}

// AddedGradeMin returns the value that was added to the "grade_min" field in this mutation.
func (m *ScenarioFamilyMutation) AddedGradeMin() (r int, exists bool) {
	v := m.addgrade_min
	if v == nil {
		return
	}
	return *v, true
}

// ResetGradeMin resets all changes to the "grade_min" field.
func (m *ScenarioFamilyMutation) ResetGradeMin() {
	m.grade_min = nil
	m.addgrade_min = nil
}

// SetGradeMax sets the "grade_max" field.
func (m *ScenarioFamilyMutation) SetGradeMax(i int) {
	m.grade_max = &i
	m.addgrade_max = nil
}

// GradeMax returns the value of the "grade_max" field in the mutation.
func (m *ScenarioFamilyMutation) GradeMax() (r int, exists bool) {
	v := m.grade_max
	if v == nil {
		return
	}
	return *v, true
}

// OldGradeMax returns the old "grade_max" field's value of the ScenarioFamily entity.
// If the ScenarioFamily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioFamilyMutation) OldGradeMax(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGradeMax is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGradeMax requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGradeMax: %w", err)
	}
	return oldValue.GradeMax, nil
}

// AddGradeMax adds i to the "grade_max" field.
func (m *ScenarioFamilyMutation) AddGradeMax(i int) {
	if m.addgrade_max != nil {
		*m.addgrade_max += i
	} else {
		m.addgrade_max = &i
	}
}

// AddedGradeMax returns the value that was added to the "grade_max" field in this mutation.
func (m *ScenarioFamilyMutation) AddedGradeMax() (r int, exists bool) {
	v := m.addgrade_max
	if v == nil {
		return
	}
	return *v, true
}

// ResetGradeMax resets all changes to the "grade_max" field.
func (m *ScenarioFamilyMutation) ResetGradeMax() {
	m.grade_max = nil
	m.addgrade_max = nil
}

// SetBaseTemplate sets the "base_template" field.
func (m *ScenarioFamilyMutation) SetBaseTemplate(s string) {
	m.base_template = &s
}

// BaseTemplate returns the value of the "base_template" field in the mutation.
func (m *ScenarioFamilyMutation) BaseTemplate() (r string, exists bool) {
	v := m.base_template
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseTemplate returns the old "base_template" field's value of the ScenarioFamily entity.
// If the ScenarioFamily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioFamilyMutation) OldBaseTemplate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseTemplate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseTemplate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseTemplate: %w", err)
	}
	return oldValue.BaseTemplate, nil
}

// ResetBaseTemplate resets all changes to the "base_template" field.
func (m *ScenarioFamilyMutation) ResetBaseTemplate() {
	m.base_template = nil
}

// SetContextSlots sets the "context_slots" field.
func (m *ScenarioFamilyMutation) SetContextSlots(ms map[string]schema.SlotSpec) {
	m.context_slots = &ms
}

// ContextSlots returns the value of the "context_slots" field in the mutation.
func (m *ScenarioFamilyMutation) ContextSlots() (r map[string]schema.SlotSpec, exists bool) {
	v := m.context_slots
	if v == nil {
		return
	}
	return *v, true
}

// OldContextSlots returns the old "context_slots" field's value of the ScenarioFamily entity.
// If the ScenarioFamily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioFamilyMutation) OldContextSlots(ctx context.Context) (v map[string]schema.SlotSpec, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextSlots is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextSlots requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextSlots: %w", err)
	}
	return oldValue.ContextSlots, nil
}

// ResetContextSlots resets all changes to the "context_slots" field.
func (m *ScenarioFamilyMutation) ResetContextSlots() {
	m.context_slots = nil
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (m *ScenarioFamilyMutation) SetDifficultyLevel(i int) {
	m.difficulty_level = &i
	m.adddifficulty_level = nil
}

// DifficultyLevel returns the value of the "difficulty_level" field in the mutation.
func (m *ScenarioFamilyMutation) DifficultyLevel() (r int, exists bool) {
	v := m.difficulty_level
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyLevel returns the old "difficulty_level" field's value of the ScenarioFamily entity.
// If the ScenarioFamily object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioFamilyMutation) OldDifficultyLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyLevel: %w", err)
	}
	return oldValue.DifficultyLevel, nil
}

// AddDifficultyLevel adds i to the "difficulty_level" field.
func (m *ScenarioFamilyMutation) AddDifficultyLevel(i int) {
	if m.adddifficulty_level != nil {
		*m.adddifficulty_level += i
	} else {
		m.adddifficulty_level = &i
	}
}

// AddedDifficultyLevel returns the value that was added to the "difficulty_level" field in this mutation.
func (m *ScenarioFamilyMutation) AddedDifficultyLevel() (r int, exists bool) {
	v := m.adddifficulty_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficultyLevel resets all changes to the "difficulty_level" field.
func (m *ScenarioFamilyMutation) ResetDifficultyLevel() {
	m.difficulty_level = nil
	m.adddifficulty_level = nil
}

// Where appends a list predicates to the ScenarioFamilyMutation builder.
func (m *ScenarioFamilyMutation) Where(ps ...predicate.ScenarioFamily) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScenarioFamilyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScenarioFamilyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScenarioFamily, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScenarioFamilyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScenarioFamilyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScenarioFamily).
func (m *ScenarioFamilyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScenarioFamilyMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.name != nil {
		fields = append(fields, scenariofamily.FieldName)
	}
	if m.category != nil {
		fields = append(fields, scenariofamily.FieldCategory)
	}
	if m.grade_min != nil {
		fields = append(fields, scenariofamily.FieldGradeMin)
	}
	if m.grade_max != nil {
		fields = append(fields, scenariofamily.FieldGradeMax)
	}
	if m.base_template != nil {
		fields = append(fields, scenariofamily.FieldBaseTemplate)
	}
	if m.context_slots != nil {
		fields = append(fields, scenariofamily.FieldContextSlots)
	}
	if m.difficulty_level != nil {
		fields = append(fields, scenariofamily.FieldDifficultyLevel)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScenarioFamilyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scenariofamily.FieldName:
		return m.Name()
	case scenariofamily.FieldCategory:
		return m.Category()
	case scenariofamily.FieldGradeMin:
		return m.GradeMin()
	case scenariofamily.FieldGradeMax:
		return m.GradeMax()
	case scenariofamily.FieldBaseTemplate:
		return m.BaseTemplate()
	case scenariofamily.FieldContextSlots:
		return m.ContextSlots()
	case scenariofamily.FieldDifficultyLevel:
		return m.DifficultyLevel()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScenarioFamilyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scenariofamily.FieldName:
		return m.OldName(ctx)
	case scenariofamily.FieldCategory:
		return m.OldCategory(ctx)
	case scenariofamily.FieldGradeMin:
		return m.OldGradeMin(ctx)
	case scenariofamily.FieldGradeMax:
		return m.OldGradeMax(ctx)
	case scenariofamily.FieldBaseTemplate:
		return m.OldBaseTemplate(ctx)
	case scenariofamily.FieldContextSlots:
		return m.OldContextSlots(ctx)
	case scenariofamily.FieldDifficultyLevel:
		return m.OldDifficultyLevel(ctx)
	}
	return nil, fmt.Errorf("unknown ScenarioFamily field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScenarioFamilyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scenariofamily.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case scenariofamily.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case scenariofamily.FieldGradeMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGradeMin(v)
		return nil
	case scenariofamily.FieldGradeMax:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGradeMax(v)
		return nil
	case scenariofamily.FieldBaseTemplate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseTemplate(v)
		return nil
	case scenariofamily.FieldContextSlots:
		v, ok := value.(map[string]schema.SlotSpec)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextSlots(v)
		return nil
	case scenariofamily.FieldDifficultyLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyLevel(v)
		return nil
	}
	return fmt.Errorf("unknown ScenarioFamily field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScenarioFamilyMutation) AddedFields() []string {
	var fields []string
	if m.addgrade_min != nil {
		fields = append(fields, scenariofamily.FieldGradeMin)
	}
	if m.addgrade_max != nil {
		fields = append(fields, scenariofamily.FieldGradeMax)
	}
	if m.adddifficulty_level != nil {
		fields = append(fields, scenariofamily.FieldDifficultyLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScenarioFamilyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scenariofamily.FieldGradeMin:
		return m.AddedGradeMin()
	case scenariofamily.FieldGradeMax:
		return m.AddedGradeMax()
	case scenariofamily.FieldDifficultyLevel:
		return m.AddedDifficultyLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScenarioFamilyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scenariofamily.FieldGradeMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGradeMin(v)
		return nil
	case scenariofamily.FieldGradeMax:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGradeMax(v)
		return nil
	case scenariofamily.FieldDifficultyLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficultyLevel(v)
		return nil
	}
	return fmt.Errorf("unknown ScenarioFamily numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScenarioFamilyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScenarioFamilyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScenarioFamilyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ScenarioFamily nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScenarioFamilyMutation) ResetField(name string) error {
	switch name {
	case scenariofamily.FieldName:
		m.ResetName()
		return nil
	case scenariofamily.FieldCategory:
		m.ResetCategory()
		return nil
	case scenariofamily.FieldGradeMin:
		m.ResetGradeMin()
		return nil
	case scenariofamily.FieldGradeMax:
		m.ResetGradeMax()
		return nil
	case scenariofamily.FieldBaseTemplate:
		m.ResetBaseTemplate()
		return nil
	case scenariofamily.FieldContextSlots:
		m.ResetContextSlots()
		return nil
	case scenariofamily.FieldDifficultyLevel:
		m.ResetDifficultyLevel()
		return nil
	}
	return fmt.Errorf("unknown ScenarioFamily field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScenarioFamilyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScenarioFamilyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScenarioFamilyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScenarioFamilyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScenarioFamilyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScenarioFamilyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScenarioFamilyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScenarioFamily unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScenarioFamilyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScenarioFamily edge %s", name)
}

// TemplateMutation represents an operation that mutates the Template nodes in the graph.
type TemplateMutation struct {
	config
	op                Op
	typ               string
	id                *int
	grade             *int
	addgrade          *int
	grade_app         *int
	addgrade_app      *int
	quarter_app       *string
	domain            *string
	subcategory       *string
	difficulty        *string
	question_type     *string
	prompt            *string
	solution          *string
	distractors       *[]string
	appenddistractors []string
	quality_score     *float64
	addquality_score  *float64
	plays             *int
	addplays          *int
	correct           *int
	addcorrect        *int
	rating_sum        *int
	addrating_sum     *int
	rating_count      *int
	addrating_count   *int
	status            *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Template, error)
	predicates        []predicate.Template
}

var _ ent.Mutation = (*TemplateMutation)(nil)

// templateOption allows management of the mutation configuration using functional options.
type templateOption func(*TemplateMutation)

// newTemplateMutation creates new mutation for the Template entity.
func newTemplateMutation(c config, op Op, opts ...templateOption) *TemplateMutation {
	m := &TemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTemplateID sets the ID field of the mutation.
func withTemplateID(id int) templateOption {
	return func(m *TemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *Template
		)
		m.oldValue = func(ctx context.Context) (*Template, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Template.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTemplate sets the old Template of the mutation.
func withTemplate(node *Template) templateOption {
	return func(m *TemplateMutation) {
		m.oldValue = func(context.Context) (*Template, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TemplateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TemplateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Template.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGrade sets the "grade" field.
func (m *TemplateMutation) SetGrade(i int) {
	m.grade = &i
	m.addgrade = nil
}

// Grade returns the value of the "grade" field in the mutation.
func (m *TemplateMutation) Grade() (r int, exists bool) {
	v := m.grade
	if v == nil {
		return
	}
	return *v, true
}

// OldGrade returns the old "grade" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldGrade(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrade: %w", err)
	}
	return oldValue.Grade, nil
}

// AddGrade adds i to the "grade" field.
func (m *TemplateMutation) AddGrade(i int) {
	if m.addgrade != nil {
		*m.addgrade += i
	} else {
		m.addgrade = &i
	}
}

// AddedGrade returns the value that was added to the "grade" field in this mutation.
func (m *TemplateMutation) AddedGrade() (r int, exists bool) {
	v := m.addgrade
	if v == nil {
		return
	}
	return *v, true
}

// ResetGrade resets all changes to the "grade" field.
func (m *TemplateMutation) ResetGrade() {
	m.grade = nil
	m.addgrade = nil
}

// SetGradeApp sets the "grade_app" field.
func (m *TemplateMutation) SetGradeApp(i int) {
	m.grade_app = &i
	m.addgrade_app = nil
}

// GradeApp returns the value of the "grade_app" field in the mutation.
func (m *TemplateMutation) GradeApp() (r int, exists bool) {
	v := m.grade_app
	if v == nil {
		return
	}
	return *v, true
}

// OldGradeApp returns the old "grade_app" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldGradeApp(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGradeApp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGradeApp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGradeApp: %w", err)
	}
	return oldValue.GradeApp, nil
}

// AddGradeApp adds i to the "grade_app" field.
func (m *TemplateMutation) AddGradeApp(i int) {
	if m.addgrade_app != nil {
		*m.addgrade_app += i
	} else {
		m.addgrade_app = &i
	}
}

// AddedGradeApp returns the value that was added to the "grade_app" field in this mutation.
func (m *TemplateMutation) AddedGradeApp() (r int, exists bool) {
	v := m.addgrade_app
	if v == nil {
		return
	}
	return *v, true
}

// ResetGradeApp resets all changes to the "grade_app" field.
func (m *TemplateMutation) ResetGradeApp() {
	m.grade_app = nil
	m.addgrade_app = nil
}

// SetQuarterApp sets the "quarter_app" field.
func (m *TemplateMutation) SetQuarterApp(s string) {
	m.quarter_app = &s
}

// QuarterApp returns the value of the "quarter_app" field in the mutation.
func (m *TemplateMutation) QuarterApp() (r string, exists bool) {
	v := m.quarter_app
	if v == nil {
		return
	}
	return *v, true
}

// OldQuarterApp returns the old "quarter_app" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldQuarterApp(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuarterApp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuarterApp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuarterApp: %w", err)
	}
	return oldValue.QuarterApp, nil
}

// ResetQuarterApp resets all changes to the "quarter_app" field.
func (m *TemplateMutation) ResetQuarterApp() {
	m.quarter_app = nil
}

// SetDomain sets the "domain" field.
func (m *TemplateMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *TemplateMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ResetDomain resets all changes to the "domain" field.
func (m *TemplateMutation) ResetDomain() {
	m.domain = nil
}

// SetSubcategory sets the "subcategory" field.
func (m *TemplateMutation) SetSubcategory(s string) {
	m.subcategory = &s
}

// Subcategory returns the value of the "subcategory" field in the mutation.
func (m *TemplateMutation) Subcategory() (r string, exists bool) {
	v := m.subcategory
	if v == nil {
		return
	}
	return *v, true
}

// OldSubcategory returns the old "subcategory" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldSubcategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubcategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubcategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubcategory: %w", err)
	}
	return oldValue.Subcategory, nil
}

// ResetSubcategory resets all changes to the "subcategory" field.
func (m *TemplateMutation) ResetSubcategory() {
	m.subcategory = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *TemplateMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *TemplateMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *TemplateMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetQuestionType sets the "question_type" field.
func (m *TemplateMutation) SetQuestionType(s string) {
	m.question_type = &s
}

// QuestionType returns the value of the "question_type" field in the mutation.
func (m *TemplateMutation) QuestionType() (r string, exists bool) {
	v := m.question_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionType returns the old "question_type" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldQuestionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionType: %w", err)
	}
	return oldValue.QuestionType, nil
}

// ResetQuestionType resets all changes to the "question_type" field.
func (m *TemplateMutation) ResetQuestionType() {
	m.question_type = nil
}

// SetPrompt sets the "prompt" field.
func (m *TemplateMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *TemplateMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *TemplateMutation) ResetPrompt() {
	m.prompt = nil
}

// SetSolution sets the "solution" field.
func (m *TemplateMutation) SetSolution(s string) {
	m.solution = &s
}

// Solution returns the value of the "solution" field in the mutation.
func (m *TemplateMutation) Solution() (r string, exists bool) {
	v := m.solution
	if v == nil {
		return
	}
	return *v, true
}

// OldSolution returns the old "solution" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldSolution(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSolution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSolution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSolution: %w", err)
	}
	return oldValue.Solution, nil
}

// ResetSolution resets all changes to the "solution" field.
func (m *TemplateMutation) ResetSolution() {
	m.solution = nil
}

// SetDistractors sets the "distractors" field.
func (m *TemplateMutation) SetDistractors(s []string) {
	m.distractors = &s
	m.appenddistractors = nil
}

// Distractors returns the value of the "distractors" field in the mutation.
func (m *TemplateMutation) Distractors() (r []string, exists bool) {
	v := m.distractors
	if v == nil {
		return
	}
	return *v, true
}

// OldDistractors returns the old "distractors" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldDistractors(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistractors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistractors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistractors: %w", err)
	}
	return oldValue.Distractors, nil
}

// AppendDistractors adds s to the "distractors" field.
func (m *TemplateMutation) AppendDistractors(s []string) {
	m.appenddistractors = append(m.appenddistractors, s...)
}

// AppendedDistractors returns the list of values that were appended to the "distractors" field in this mutation.
func (m *TemplateMutation) AppendedDistractors() ([]string, bool) {
	if len(m.appenddistractors) == 0 {
		return nil, false
	}
	return m.appenddistractors, true
}

// ClearDistractors clears the value of the "distractors" field.
func (m *TemplateMutation) ClearDistractors() {
	m.distractors = nil
	m.appenddistractors = nil
	m.clearedFields[template.FieldDistractors] = struct{}{}
}

// DistractorsCleared returns if the "distractors" field was cleared in this mutation.
func (m *TemplateMutation) DistractorsCleared() bool {
	_, ok := m.clearedFields[template.FieldDistractors]
	return ok
}

// ResetDistractors resets all changes to the "distractors" field.
func (m *TemplateMutation) ResetDistractors() {
	m.distractors = nil
	m.appenddistractors = nil
	delete(m.clearedFields, template.FieldDistractors)
}

// SetQualityScore sets the "quality_score" field.
func (m *TemplateMutation) SetQualityScore(f float64) {
	m.quality_score = &f
	m.addquality_score = nil
}

// QualityScore returns the value of the "quality_score" field in the mutation.
func (m *TemplateMutation) QualityScore() (r float64, exists bool) {
	v := m.quality_score
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityScore returns the old "quality_score" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldQualityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityScore: %w", err)
	}
	return oldValue.QualityScore, nil
}

// AddQualityScore adds f to the "quality_score" field.
func (m *TemplateMutation) AddQualityScore(f float64) {
	if m.addquality_score != nil {
		*m.addquality_score += f
	} else {
		m.addquality_score = &f
	}
}

// AddedQualityScore returns the value that was added to the "quality_score" field in this mutation.
func (m *TemplateMutation) AddedQualityScore() (r float64, exists bool) {
	v := m.addquality_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetQualityScore resets all changes to the "quality_score" field.
func (m *TemplateMutation) ResetQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
}

// SetPlays sets the "plays" field.
func (m *TemplateMutation) SetPlays(i int) {
	m.plays = &i
	m.addplays = nil
}

// Plays returns the value of the "plays" field in the mutation.
func (m *TemplateMutation) Plays() (r int, exists bool) {
	v := m.plays
	if v == nil {
		return
	}
	return *v, true
}

// OldPlays returns the old "plays" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldPlays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlays: %w", err)
	}
	return oldValue.Plays, nil
}

// AddPlays adds i to the "plays" field.
func (m *TemplateMutation) AddPlays(i int) {
	if m.addplays != nil {
		*m.addplays += i
	} else {
		m.addplays = &i
	}
}

// AddedPlays returns the value that was added to the "plays" field in this mutation.
func (m *TemplateMutation) AddedPlays() (r int, exists bool) {
	v := m.addplays
	if v == nil {
		return
	}
	return *v, true
}

// ResetPlays resets all changes to the "plays" field.
func (m *TemplateMutation) ResetPlays() {
	m.plays = nil
	m.addplays = nil
}

// SetCorrect sets the "correct" field.
func (m *TemplateMutation) SetCorrect(i int) {
	m.correct = &i
	m.addcorrect = nil
}

// Correct returns the value of the "correct" field in the mutation.
func (m *TemplateMutation) Correct() (r int, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// AddCorrect adds i to the "correct" field.
func (m *TemplateMutation) AddCorrect(i int) {
	if m.addcorrect != nil {
		*m.addcorrect += i
	} else {
		m.addcorrect = &i
	}
}

// AddedCorrect returns the value that was added to the "correct" field in this mutation.
func (m *TemplateMutation) AddedCorrect() (r int, exists bool) {
	v := m.addcorrect
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrect resets all changes to the "correct" field.
func (m *TemplateMutation) ResetCorrect() {
	m.correct = nil
	m.addcorrect = nil
}

// SetRatingSum sets the "rating_sum" field.
func (m *TemplateMutation) SetRatingSum(i int) {
	m.rating_sum = &i
	m.addrating_sum = nil
}

// RatingSum returns the value of the "rating_sum" field in the mutation.
func (m *TemplateMutation) RatingSum() (r int, exists bool) {
	v := m.rating_sum
	if v == nil {
		return
	}
	return *v, true
}

// OldRatingSum returns the old "rating_sum" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldRatingSum(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRatingSum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRatingSum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRatingSum: %w", err)
	}
	return oldValue.RatingSum, nil
}

// AddRatingSum adds i to the "rating_sum" field.
func (m *TemplateMutation) AddRatingSum(i int) {
	if m.addrating_sum != nil {
		*m.addrating_sum += i
	} else {
		m.addrating_sum = &i
	}
}

// AddedRatingSum returns the value that was added to the "rating_sum" field in this mutation.
func (m *TemplateMutation) AddedRatingSum() (r int, exists bool) {
	v := m.addrating_sum
	if v == nil {
		return
	}
	return *v, true
}

// ResetRatingSum resets all changes to the "rating_sum" field.
func (m *TemplateMutation) ResetRatingSum() {
	m.rating_sum = nil
	m.addrating_sum = nil
}

// SetRatingCount sets the "rating_count" field.
func (m *TemplateMutation) SetRatingCount(i int) {
	m.rating_count = &i
	m.addrating_count = nil
}

// RatingCount returns the value of the "rating_count" field in the mutation.
func (m *TemplateMutation) RatingCount() (r int, exists bool) {
	v := m.rating_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRatingCount returns the old "rating_count" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldRatingCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRatingCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRatingCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRatingCount: %w", err)
	}
	return oldValue.RatingCount, nil
}

// AddRatingCount adds i to the "rating_count" field.
func (m *TemplateMutation) AddRatingCount(i int) {
	if m.addrating_count != nil {
		*m.addrating_count += i
	} else {
		m.addrating_count = &i
	}
}

// AddedRatingCount returns the value that was added to the "rating_count" field in this mutation.
func (m *TemplateMutation) AddedRatingCount() (r int, exists bool) {
	v := m.addrating_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRatingCount resets all changes to the "rating_count" field.
func (m *TemplateMutation) ResetRatingCount() {
	m.rating_count = nil
	m.addrating_count = nil
}

// SetStatus sets the "status" field.
func (m *TemplateMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *TemplateMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TemplateMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TemplateMutation builder.
func (m *TemplateMutation) Where(ps ...predicate.Template) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Template, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Template).
func (m *TemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TemplateMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.grade != nil {
		fields = append(fields, template.FieldGrade)
	}
	if m.grade_app != nil {
		fields = append(fields, template.FieldGradeApp)
	}
	if m.quarter_app != nil {
		fields = append(fields, template.FieldQuarterApp)
	}
	if m.domain != nil {
		fields = append(fields, template.FieldDomain)
	}
	if m.subcategory != nil {
		fields = append(fields, template.FieldSubcategory)
	}
	if m.difficulty != nil {
		fields = append(fields, template.FieldDifficulty)
	}
	if m.question_type != nil {
		fields = append(fields, template.FieldQuestionType)
	}
	if m.prompt != nil {
		fields = append(fields, template.FieldPrompt)
	}
	if m.solution != nil {
		fields = append(fields, template.FieldSolution)
	}
	if m.distractors != nil {
		fields = append(fields, template.FieldDistractors)
	}
	if m.quality_score != nil {
		fields = append(fields, template.FieldQualityScore)
	}
	if m.plays != nil {
		fields = append(fields, template.FieldPlays)
	}
	if m.correct != nil {
		fields = append(fields, template.FieldCorrect)
	}
	if m.rating_sum != nil {
		fields = append(fields, template.FieldRatingSum)
	}
	if m.rating_count != nil {
		fields = append(fields, template.FieldRatingCount)
	}
	if m.status != nil {
		fields = append(fields, template.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, template.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case template.FieldGrade:
		return m.Grade()
	case template.FieldGradeApp:
		return m.GradeApp()
	case template.FieldQuarterApp:
		return m.QuarterApp()
	case template.FieldDomain:
		return m.Domain()
	case template.FieldSubcategory:
		return m.Subcategory()
	case template.FieldDifficulty:
		return m.Difficulty()
	case template.FieldQuestionType:
		return m.QuestionType()
	case template.FieldPrompt:
		return m.Prompt()
	case template.FieldSolution:
		return m.Solution()
	case template.FieldDistractors:
		return m.Distractors()
	case template.FieldQualityScore:
		return m.QualityScore()
	case template.FieldPlays:
		return m.Plays()
	case template.FieldCorrect:
		return m.Correct()
	case template.FieldRatingSum:
		return m.RatingSum()
	case template.FieldRatingCount:
		return m.RatingCount()
	case template.FieldStatus:
		return m.Status()
	case template.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case template.FieldGrade:
		return m.OldGrade(ctx)
	case template.FieldGradeApp:
		return m.OldGradeApp(ctx)
	case template.FieldQuarterApp:
		return m.OldQuarterApp(ctx)
	case template.FieldDomain:
		return m.OldDomain(ctx)
	case template.FieldSubcategory:
		return m.OldSubcategory(ctx)
	case template.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case template.FieldQuestionType:
		return m.OldQuestionType(ctx)
	case template.FieldPrompt:
		return m.OldPrompt(ctx)
	case template.FieldSolution:
		return m.OldSolution(ctx)
	case template.FieldDistractors:
		return m.OldDistractors(ctx)
	case template.FieldQualityScore:
		return m.OldQualityScore(ctx)
	case template.FieldPlays:
		return m.OldPlays(ctx)
	case template.FieldCorrect:
		return m.OldCorrect(ctx)
	case template.FieldRatingSum:
		return m.OldRatingSum(ctx)
	case template.FieldRatingCount:
		return m.OldRatingCount(ctx)
	case template.FieldStatus:
		return m.OldStatus(ctx)
	case template.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Template field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case template.FieldGrade:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrade(v)
		return nil
	case template.FieldGradeApp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGradeApp(v)
		return nil
	case template.FieldQuarterApp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuarterApp(v)
		return nil
	case template.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case template.FieldSubcategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubcategory(v)
		return nil
	case template.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case template.FieldQuestionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionType(v)
		return nil
	case template.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case template.FieldSolution:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSolution(v)
		return nil
	case template.FieldDistractors:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistractors(v)
		return nil
	case template.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityScore(v)
		return nil
	case template.FieldPlays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlays(v)
		return nil
	case template.FieldCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case template.FieldRatingSum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRatingSum(v)
		return nil
	case template.FieldRatingCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRatingCount(v)
		return nil
	case template.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case template.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Template field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TemplateMutation) AddedFields() []string {
	var fields []string
	if m.addgrade != nil {
		fields = append(fields, template.FieldGrade)
	}
	if m.addgrade_app != nil {
		fields = append(fields, template.FieldGradeApp)
	}
	if m.addquality_score != nil {
		fields = append(fields, template.FieldQualityScore)
	}
	if m.addplays != nil {
		fields = append(fields, template.FieldPlays)
	}
	if m.addcorrect != nil {
		fields = append(fields, template.FieldCorrect)
	}
	if m.addrating_sum != nil {
		fields = append(fields, template.FieldRatingSum)
	}
	if m.addrating_count != nil {
		fields = append(fields, template.FieldRatingCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TemplateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case template.FieldGrade:
		return m.AddedGrade()
	case template.FieldGradeApp:
		return m.AddedGradeApp()
	case template.FieldQualityScore:
		return m.AddedQualityScore()
	case template.FieldPlays:
		return m.AddedPlays()
	case template.FieldCorrect:
		return m.AddedCorrect()
	case template.FieldRatingSum:
		return m.AddedRatingSum()
	case template.FieldRatingCount:
		return m.AddedRatingCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case template.FieldGrade:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGrade(v)
		return nil
	case template.FieldGradeApp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGradeApp(v)
		return nil
	case template.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQualityScore(v)
		return nil
	case template.FieldPlays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPlays(v)
		return nil
	case template.FieldCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrect(v)
		return nil
	case template.FieldRatingSum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRatingSum(v)
		return nil
	case template.FieldRatingCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRatingCount(v)
		return nil
	}
	return fmt.Errorf("unknown Template numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(template.FieldDistractors) {
		fields = append(fields, template.FieldDistractors)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TemplateMutation) ClearField(name string) error {
	switch name {
	case template.FieldDistractors:
		m.ClearDistractors()
		return nil
	}
	return fmt.Errorf("unknown Template nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TemplateMutation) ResetField(name string) error {
	switch name {
	case template.FieldGrade:
		m.ResetGrade()
		return nil
	case template.FieldGradeApp:
		m.ResetGradeApp()
		return nil
	case template.FieldQuarterApp:
		m.ResetQuarterApp()
		return nil
	case template.FieldDomain:
		m.ResetDomain()
		return nil
	case template.FieldSubcategory:
		m.ResetSubcategory()
		return nil
	case template.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case template.FieldQuestionType:
		m.ResetQuestionType()
		return nil
	case template.FieldPrompt:
		m.ResetPrompt()
		return nil
	case template.FieldSolution:
		m.ResetSolution()
		return nil
	case template.FieldDistractors:
		m.ResetDistractors()
		return nil
	case template.FieldQualityScore:
		m.ResetQualityScore()
		return nil
	case template.FieldPlays:
		m.ResetPlays()
		return nil
	case template.FieldCorrect:
		m.ResetCorrect()
		return nil
	case template.FieldRatingSum:
		m.ResetRatingSum()
		return nil
	case template.FieldRatingCount:
		m.ResetRatingCount()
		return nil
	case template.FieldStatus:
		m.ResetStatus()
		return nil
	case template.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Template field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TemplateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TemplateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TemplateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TemplateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Template unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TemplateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Template edge %s", name)
}

// TemplateFeedbackMutation represents an operation that mutates the TemplateFeedback nodes in the graph.
type TemplateFeedbackMutation struct {
	config
	op             Op
	typ            string
	id             *int
	user_id        *string
	template_id    *int
	addtemplate_id *int
	prompt         *string
	feedback_type  *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*TemplateFeedback, error)
	predicates     []predicate.TemplateFeedback
}

var _ ent.Mutation = (*TemplateFeedbackMutation)(nil)

// templatefeedbackOption allows management of the mutation configuration using functional options.
type templatefeedbackOption func(*TemplateFeedbackMutation)

// newTemplateFeedbackMutation creates new mutation for the TemplateFeedback entity.
func newTemplateFeedbackMutation(c config, op Op, opts ...templatefeedbackOption) *TemplateFeedbackMutation {
	m := &TemplateFeedbackMutation{
		config:        c,
		op:            op,
		typ:           TypeTemplateFeedback,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTemplateFeedbackID sets the ID field of the mutation.
func withTemplateFeedbackID(id int) templatefeedbackOption {
	return func(m *TemplateFeedbackMutation) {
		var (
			err   error
			once  sync.Once
			value *TemplateFeedback
		)
		m.oldValue = func(ctx context.Context) (*TemplateFeedback, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TemplateFeedback.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTemplateFeedback sets the old TemplateFeedback of the mutation.
func withTemplateFeedback(node *TemplateFeedback) templatefeedbackOption {
	return func(m *TemplateFeedbackMutation) {
		m.oldValue = func(context.Context) (*TemplateFeedback, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TemplateFeedbackMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TemplateFeedbackMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TemplateFeedbackMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TemplateFeedbackMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TemplateFeedback.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *TemplateFeedbackMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TemplateFeedbackMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the TemplateFeedback entity.
// If the TemplateFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateFeedbackMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TemplateFeedbackMutation) ResetUserID() {
	m.user_id = nil
}

// SetTemplateID sets the "template_id" field.
func (m *TemplateFeedbackMutation) SetTemplateID(i int) {
	m.template_id = &i
	m.addtemplate_id = nil
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *TemplateFeedbackMutation) TemplateID() (r int, exists bool) {
	v := m.template_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the TemplateFeedback entity.
// If the TemplateFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateFeedbackMutation) OldTemplateID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// AddTemplateID adds i to the "template_id" field.
func (m *TemplateFeedbackMutation) AddTemplateID(i int) {
	if m.addtemplate_id != nil {
		*m.addtemplate_id += i
	} else {
		m.addtemplate_id = &i
	}
}

// AddedTemplateID returns the value that was added to the "template_id" field in this mutation.
func (m *TemplateFeedbackMutation) AddedTemplateID() (r int, exists bool) {
	v := m.addtemplate_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearTemplateID clears the value of the "template_id" field.
func (m *TemplateFeedbackMutation) ClearTemplateID() {
	m.template_id = nil
	m.addtemplate_id = nil
	m.clearedFields[templatefeedback.FieldTemplateID] = struct{}{}
}

// TemplateIDCleared returns if the "template_id" field was cleared in this mutation.
func (m *TemplateFeedbackMutation) TemplateIDCleared() bool {
	_, ok := m.clearedFields[templatefeedback.FieldTemplateID]
	return ok
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *TemplateFeedbackMutation) ResetTemplateID() {
	m.template_id = nil
	m.addtemplate_id = nil
	delete(m.clearedFields, templatefeedback.FieldTemplateID)
}

// SetPrompt sets the "prompt" field.
func (m *TemplateFeedbackMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *TemplateFeedbackMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the TemplateFeedback entity.
// If the TemplateFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateFeedbackMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *TemplateFeedbackMutation) ResetPrompt() {
	m.prompt = nil
}

// SetFeedbackType sets the "feedback_type" field.
func (m *TemplateFeedbackMutation) SetFeedbackType(s string) {
	m.feedback_type = &s
}

// FeedbackType returns the value of the "feedback_type" field in the mutation.
func (m *TemplateFeedbackMutation) FeedbackType() (r string, exists bool) {
	v := m.feedback_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedbackType returns the old "feedback_type" field's value of the TemplateFeedback entity.
// If the TemplateFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateFeedbackMutation) OldFeedbackType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedbackType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedbackType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedbackType: %w", err)
	}
	return oldValue.FeedbackType, nil
}

// ResetFeedbackType resets all changes to the "feedback_type" field.
func (m *TemplateFeedbackMutation) ResetFeedbackType() {
	m.feedback_type = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TemplateFeedbackMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TemplateFeedbackMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TemplateFeedback entity.
// If the TemplateFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateFeedbackMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TemplateFeedbackMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TemplateFeedbackMutation builder.
func (m *TemplateFeedbackMutation) Where(ps ...predicate.TemplateFeedback) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TemplateFeedbackMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TemplateFeedbackMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TemplateFeedback, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TemplateFeedbackMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TemplateFeedbackMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TemplateFeedback).
func (m *TemplateFeedbackMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TemplateFeedbackMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, templatefeedback.FieldUserID)
	}
	if m.template_id != nil {
		fields = append(fields, templatefeedback.FieldTemplateID)
	}
	if m.prompt != nil {
		fields = append(fields, templatefeedback.FieldPrompt)
	}
	if m.feedback_type != nil {
		fields = append(fields, templatefeedback.FieldFeedbackType)
	}
	if m.created_at != nil {
		fields = append(fields, templatefeedback.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TemplateFeedbackMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case templatefeedback.FieldUserID:
		return m.UserID()
	case templatefeedback.FieldTemplateID:
		return m.TemplateID()
	case templatefeedback.FieldPrompt:
		return m.Prompt()
	case templatefeedback.FieldFeedbackType:
		return m.FeedbackType()
	case templatefeedback.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TemplateFeedbackMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case templatefeedback.FieldUserID:
		return m.OldUserID(ctx)
	case templatefeedback.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case templatefeedback.FieldPrompt:
		return m.OldPrompt(ctx)
	case templatefeedback.FieldFeedbackType:
		return m.OldFeedbackType(ctx)
	case templatefeedback.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TemplateFeedback field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TemplateFeedbackMutation) SetField(name string, value ent.Value) error {
	switch name {
	case templatefeedback.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case templatefeedback.FieldTemplateID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case templatefeedback.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case templatefeedback.FieldFeedbackType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedbackType(v)
		return nil
	case templatefeedback.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TemplateFeedback field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TemplateFeedbackMutation) AddedFields() []string {
	var fields []string
	if m.addtemplate_id != nil {
		fields = append(fields, templatefeedback.FieldTemplateID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TemplateFeedbackMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case templatefeedback.FieldTemplateID:
		return m.AddedTemplateID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TemplateFeedbackMutation) AddField(name string, value ent.Value) error {
	switch name {
	case templatefeedback.FieldTemplateID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemplateID(v)
		return nil
	}
	return fmt.Errorf("unknown TemplateFeedback numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TemplateFeedbackMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(templatefeedback.FieldTemplateID) {
		fields = append(fields, templatefeedback.FieldTemplateID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TemplateFeedbackMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TemplateFeedbackMutation) ClearField(name string) error {
	switch name {
	case templatefeedback.FieldTemplateID:
		m.ClearTemplateID()
		return nil
	}
	return fmt.Errorf("unknown TemplateFeedback nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TemplateFeedbackMutation) ResetField(name string) error {
	switch name {
	case templatefeedback.FieldUserID:
		m.ResetUserID()
		return nil
	case templatefeedback.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case templatefeedback.FieldPrompt:
		m.ResetPrompt()
		return nil
	case templatefeedback.FieldFeedbackType:
		m.ResetFeedbackType()
		return nil
	case templatefeedback.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TemplateFeedback field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TemplateFeedbackMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TemplateFeedbackMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TemplateFeedbackMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TemplateFeedbackMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TemplateFeedbackMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TemplateFeedbackMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TemplateFeedbackMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TemplateFeedback unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TemplateFeedbackMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TemplateFeedback edge %s", name)
}
