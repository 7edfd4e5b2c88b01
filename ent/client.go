// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/lernzeit/lernzeit/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/lernzeit/lernzeit/ent/contexthistory"
	"github.com/lernzeit/lernzeit/ent/contextvariant"
	"github.com/lernzeit/lernzeit/ent/generationrun"
	"github.com/lernzeit/lernzeit/ent/learningsession"
	"github.com/lernzeit/lernzeit/ent/llmrequestevent"
	"github.com/lernzeit/lernzeit/ent/rewardevent"
	"github.com/lernzeit/lernzeit/ent/scenariofamily"
	"github.com/lernzeit/lernzeit/ent/template"
	"github.com/lernzeit/lernzeit/ent/templatefeedback"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ContextHistory is the client for interacting with the ContextHistory builders.
	ContextHistory *ContextHistoryClient
	// ContextVariant is the client for interacting with the ContextVariant builders.
	ContextVariant *ContextVariantClient
	// GenerationRun is the client for interacting with the GenerationRun builders.
	GenerationRun *GenerationRunClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// LearningSession is the client for interacting with the LearningSession builders.
	LearningSession *LearningSessionClient
	// RewardEvent is the client for interacting with the RewardEvent builders.
	RewardEvent *RewardEventClient
	// ScenarioFamily is the client for interacting with the ScenarioFamily builders.
	ScenarioFamily *ScenarioFamilyClient
	// Template is the client for interacting with the Template builders.
	Template *TemplateClient
	// TemplateFeedback is the client for interacting with the TemplateFeedback builders.
	TemplateFeedback *TemplateFeedbackClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ContextHistory = NewContextHistoryClient(c.config)
	c.ContextVariant = NewContextVariantClient(c.config)
	c.GenerationRun = NewGenerationRunClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.LearningSession = NewLearningSessionClient(c.config)
	c.RewardEvent = NewRewardEventClient(c.config)
	c.ScenarioFamily = NewScenarioFamilyClient(c.config)
	c.Template = NewTemplateClient(c.config)
	c.TemplateFeedback = NewTemplateFeedbackClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		ContextHistory:   NewContextHistoryClient(cfg),
		ContextVariant:   NewContextVariantClient(cfg),
		GenerationRun:    NewGenerationRunClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		LearningSession:  NewLearningSessionClient(cfg),
		RewardEvent:      NewRewardEventClient(cfg),
		ScenarioFamily:   NewScenarioFamilyClient(cfg),
		Template:         NewTemplateClient(cfg),
		TemplateFeedback: NewTemplateFeedbackClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		ContextHistory:   NewContextHistoryClient(cfg),
		ContextVariant:   NewContextVariantClient(cfg),
		GenerationRun:    NewGenerationRunClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		LearningSession:  NewLearningSessionClient(cfg),
		RewardEvent:      NewRewardEventClient(cfg),
		ScenarioFamily:   NewScenarioFamilyClient(cfg),
		Template:         NewTemplateClient(cfg),
		TemplateFeedback: NewTemplateFeedbackClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ContextHistory.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.ContextHistory, c.ContextVariant, c.GenerationRun, c.LLMRequestEvent,
		c.LearningSession, c.RewardEvent, c.ScenarioFamily, c.Template,
		c.TemplateFeedback,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ContextHistory, c.ContextVariant, c.GenerationRun, c.LLMRequestEvent,
		c.LearningSession, c.RewardEvent, c.ScenarioFamily, c.Template,
		c.TemplateFeedback,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ContextHistoryMutation:
		return c.ContextHistory.mutate(ctx, m)
	case *ContextVariantMutation:
		return c.ContextVariant.mutate(ctx, m)
	case *GenerationRunMutation:
		return c.GenerationRun.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *LearningSessionMutation:
		return c.LearningSession.mutate(ctx, m)
	case *RewardEventMutation:
		return c.RewardEvent.mutate(ctx, m)
	case *ScenarioFamilyMutation:
		return c.ScenarioFamily.mutate(ctx, m)
	case *TemplateMutation:
		return c.Template.mutate(ctx, m)
	case *TemplateFeedbackMutation:
		return c.TemplateFeedback.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ContextHistoryClient is a client for the ContextHistory schema.
type ContextHistoryClient struct {
	config
}

// NewContextHistoryClient returns a client for the ContextHistory from the given config.
func NewContextHistoryClient(c config) *ContextHistoryClient {
	return &ContextHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contexthistory.Hooks(f(g(h())))`.
func (c *ContextHistoryClient) Use(hooks ...Hook) {
	c.hooks.ContextHistory = append(c.hooks.ContextHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contexthistory.Intercept(f(g(h())))`.
func (c *ContextHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContextHistory = append(c.inters.ContextHistory, interceptors...)
}

// Create returns a builder for creating a ContextHistory entity.
func (c *ContextHistoryClient) Create() *ContextHistoryCreate {
	mutation := newContextHistoryMutation(c.config, OpCreate)
	return &ContextHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContextHistory entities.
func (c *ContextHistoryClient) CreateBulk(builders ...*ContextHistoryCreate) *ContextHistoryCreateBulk {
	return &ContextHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContextHistoryClient) MapCreateBulk(slice any, setFunc func(*ContextHistoryCreate, int)) *ContextHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContextHistoryCreateBulk{err: fmt.Errorf("calling to ContextHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContextHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContextHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContextHistory.
func (c *ContextHistoryClient) Update() *ContextHistoryUpdate {
	mutation := newContextHistoryMutation(c.config, OpUpdate)
	return &ContextHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContextHistoryClient) UpdateOne(_m *ContextHistory) *ContextHistoryUpdateOne {
	mutation := newContextHistoryMutation(c.config, OpUpdateOne, withContextHistory(_m))
	return &ContextHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContextHistoryClient) UpdateOneID(id int) *ContextHistoryUpdateOne {
	mutation := newContextHistoryMutation(c.config, OpUpdateOne, withContextHistoryID(id))
	return &ContextHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContextHistory.
func (c *ContextHistoryClient) Delete() *ContextHistoryDelete {
	mutation := newContextHistoryMutation(c.config, OpDelete)
	return &ContextHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContextHistoryClient) DeleteOne(_m *ContextHistory) *ContextHistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContextHistoryClient) DeleteOneID(id int) *ContextHistoryDeleteOne {
	builder := c.Delete().Where(contexthistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContextHistoryDeleteOne{builder}
}

// Query returns a query builder for ContextHistory.
func (c *ContextHistoryClient) Query() *ContextHistoryQuery {
	return &ContextHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContextHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a ContextHistory entity by its id.
func (c *ContextHistoryClient) Get(ctx context.Context, id int) (*ContextHistory, error) {
	return c.Query().Where(contexthistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContextHistoryClient) GetX(ctx context.Context, id int) *ContextHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ContextHistoryClient) Hooks() []Hook {
	return c.hooks.ContextHistory
}

// Interceptors returns the client interceptors.
func (c *ContextHistoryClient) Interceptors() []Interceptor {
	return c.inters.ContextHistory
}

func (c *ContextHistoryClient) mutate(ctx context.Context, m *ContextHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContextHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContextHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContextHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContextHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContextHistory mutation op: %q", m.Op())
	}
}

// ContextVariantClient is a client for the ContextVariant schema.
type ContextVariantClient struct {
	config
}

// NewContextVariantClient returns a client for the ContextVariant from the given config.
func NewContextVariantClient(c config) *ContextVariantClient {
	return &ContextVariantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contextvariant.Hooks(f(g(h())))`.
func (c *ContextVariantClient) Use(hooks ...Hook) {
	c.hooks.ContextVariant = append(c.hooks.ContextVariant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contextvariant.Intercept(f(g(h())))`.
func (c *ContextVariantClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContextVariant = append(c.inters.ContextVariant, interceptors...)
}

// Create returns a builder for creating a ContextVariant entity.
func (c *ContextVariantClient) Create() *ContextVariantCreate {
	mutation := newContextVariantMutation(c.config, OpCreate)
	return &ContextVariantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContextVariant entities.
func (c *ContextVariantClient) CreateBulk(builders ...*ContextVariantCreate) *ContextVariantCreateBulk {
	return &ContextVariantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContextVariantClient) MapCreateBulk(slice any, setFunc func(*ContextVariantCreate, int)) *ContextVariantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContextVariantCreateBulk{err: fmt.Errorf("calling to ContextVariantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContextVariantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContextVariantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContextVariant.
func (c *ContextVariantClient) Update() *ContextVariantUpdate {
	mutation := newContextVariantMutation(c.config, OpUpdate)
	return &ContextVariantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContextVariantClient) UpdateOne(_m *ContextVariant) *ContextVariantUpdateOne {
	mutation := newContextVariantMutation(c.config, OpUpdateOne, withContextVariant(_m))
	return &ContextVariantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContextVariantClient) UpdateOneID(id int) *ContextVariantUpdateOne {
	mutation := newContextVariantMutation(c.config, OpUpdateOne, withContextVariantID(id))
	return &ContextVariantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContextVariant.
func (c *ContextVariantClient) Delete() *ContextVariantDelete {
	mutation := newContextVariantMutation(c.config, OpDelete)
	return &ContextVariantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContextVariantClient) DeleteOne(_m *ContextVariant) *ContextVariantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContextVariantClient) DeleteOneID(id int) *ContextVariantDeleteOne {
	builder := c.Delete().Where(contextvariant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContextVariantDeleteOne{builder}
}

// Query returns a query builder for ContextVariant.
func (c *ContextVariantClient) Query() *ContextVariantQuery {
	return &ContextVariantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContextVariant},
		inters: c.Interceptors(),
	}
}

// Get returns a ContextVariant entity by its id.
func (c *ContextVariantClient) Get(ctx context.Context, id int) (*ContextVariant, error) {
	return c.Query().Where(contextvariant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContextVariantClient) GetX(ctx context.Context, id int) *ContextVariant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ContextVariantClient) Hooks() []Hook {
	return c.hooks.ContextVariant
}

// Interceptors returns the client interceptors.
func (c *ContextVariantClient) Interceptors() []Interceptor {
	return c.inters.ContextVariant
}

func (c *ContextVariantClient) mutate(ctx context.Context, m *ContextVariantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContextVariantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContextVariantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContextVariantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContextVariantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContextVariant mutation op: %q", m.Op())
	}
}

// GenerationRunClient is a client for the GenerationRun schema.
type GenerationRunClient struct {
	config
}

// NewGenerationRunClient returns a client for the GenerationRun from the given config.
func NewGenerationRunClient(c config) *GenerationRunClient {
	return &GenerationRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `generationrun.Hooks(f(g(h())))`.
func (c *GenerationRunClient) Use(hooks ...Hook) {
	c.hooks.GenerationRun = append(c.hooks.GenerationRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `generationrun.Intercept(f(g(h())))`.
func (c *GenerationRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.GenerationRun = append(c.inters.GenerationRun, interceptors...)
}

// Create returns a builder for creating a GenerationRun entity.
func (c *GenerationRunClient) Create() *GenerationRunCreate {
	mutation := newGenerationRunMutation(c.config, OpCreate)
	return &GenerationRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GenerationRun entities.
func (c *GenerationRunClient) CreateBulk(builders ...*GenerationRunCreate) *GenerationRunCreateBulk {
	return &GenerationRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GenerationRunClient) MapCreateBulk(slice any, setFunc func(*GenerationRunCreate, int)) *GenerationRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GenerationRunCreateBulk{err: fmt.Errorf("calling to GenerationRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GenerationRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GenerationRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GenerationRun.
func (c *GenerationRunClient) Update() *GenerationRunUpdate {
	mutation := newGenerationRunMutation(c.config, OpUpdate)
	return &GenerationRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GenerationRunClient) UpdateOne(_m *GenerationRun) *GenerationRunUpdateOne {
	mutation := newGenerationRunMutation(c.config, OpUpdateOne, withGenerationRun(_m))
	return &GenerationRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GenerationRunClient) UpdateOneID(id int) *GenerationRunUpdateOne {
	mutation := newGenerationRunMutation(c.config, OpUpdateOne, withGenerationRunID(id))
	return &GenerationRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GenerationRun.
func (c *GenerationRunClient) Delete() *GenerationRunDelete {
	mutation := newGenerationRunMutation(c.config, OpDelete)
	return &GenerationRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GenerationRunClient) DeleteOne(_m *GenerationRun) *GenerationRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GenerationRunClient) DeleteOneID(id int) *GenerationRunDeleteOne {
	builder := c.Delete().Where(generationrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GenerationRunDeleteOne{builder}
}

// Query returns a query builder for GenerationRun.
func (c *GenerationRunClient) Query() *GenerationRunQuery {
	return &GenerationRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGenerationRun},
		inters: c.Interceptors(),
	}
}

// Get returns a GenerationRun entity by its id.
func (c *GenerationRunClient) Get(ctx context.Context, id int) (*GenerationRun, error) {
	return c.Query().Where(generationrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GenerationRunClient) GetX(ctx context.Context, id int) *GenerationRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GenerationRunClient) Hooks() []Hook {
	return c.hooks.GenerationRun
}

// Interceptors returns the client interceptors.
func (c *GenerationRunClient) Interceptors() []Interceptor {
	return c.inters.GenerationRun
}

func (c *GenerationRunClient) mutate(ctx context.Context, m *GenerationRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GenerationRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GenerationRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GenerationRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GenerationRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GenerationRun mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// LearningSessionClient is a client for the LearningSession schema.
type LearningSessionClient struct {
	config
}

// NewLearningSessionClient returns a client for the LearningSession from the given config.
func NewLearningSessionClient(c config) *LearningSessionClient {
	return &LearningSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learningsession.Hooks(f(g(h())))`.
func (c *LearningSessionClient) Use(hooks ...Hook) {
	c.hooks.LearningSession = append(c.hooks.LearningSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learningsession.Intercept(f(g(h())))`.
func (c *LearningSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearningSession = append(c.inters.LearningSession, interceptors...)
}

// Create returns a builder for creating a LearningSession entity.
func (c *LearningSessionClient) Create() *LearningSessionCreate {
	mutation := newLearningSessionMutation(c.config, OpCreate)
	return &LearningSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearningSession entities.
func (c *LearningSessionClient) CreateBulk(builders ...*LearningSessionCreate) *LearningSessionCreateBulk {
	return &LearningSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearningSessionClient) MapCreateBulk(slice any, setFunc func(*LearningSessionCreate, int)) *LearningSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearningSessionCreateBulk{err: fmt.Errorf("calling to LearningSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearningSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearningSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearningSession.
func (c *LearningSessionClient) Update() *LearningSessionUpdate {
	mutation := newLearningSessionMutation(c.config, OpUpdate)
	return &LearningSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearningSessionClient) UpdateOne(_m *LearningSession) *LearningSessionUpdateOne {
	mutation := newLearningSessionMutation(c.config, OpUpdateOne, withLearningSession(_m))
	return &LearningSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearningSessionClient) UpdateOneID(id int) *LearningSessionUpdateOne {
	mutation := newLearningSessionMutation(c.config, OpUpdateOne, withLearningSessionID(id))
	return &LearningSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearningSession.
func (c *LearningSessionClient) Delete() *LearningSessionDelete {
	mutation := newLearningSessionMutation(c.config, OpDelete)
	return &LearningSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearningSessionClient) DeleteOne(_m *LearningSession) *LearningSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearningSessionClient) DeleteOneID(id int) *LearningSessionDeleteOne {
	builder := c.Delete().Where(learningsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearningSessionDeleteOne{builder}
}

// Query returns a query builder for LearningSession.
func (c *LearningSessionClient) Query() *LearningSessionQuery {
	return &LearningSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearningSession},
		inters: c.Interceptors(),
	}
}

// Get returns a LearningSession entity by its id.
func (c *LearningSessionClient) Get(ctx context.Context, id int) (*LearningSession, error) {
	return c.Query().Where(learningsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearningSessionClient) GetX(ctx context.Context, id int) *LearningSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearningSessionClient) Hooks() []Hook {
	return c.hooks.LearningSession
}

// Interceptors returns the client interceptors.
func (c *LearningSessionClient) Interceptors() []Interceptor {
	return c.inters.LearningSession
}

func (c *LearningSessionClient) mutate(ctx context.Context, m *LearningSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearningSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearningSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearningSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearningSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearningSession mutation op: %q", m.Op())
	}
}

// RewardEventClient is a client for the RewardEvent schema.
type RewardEventClient struct {
	config
}

// NewRewardEventClient returns a client for the RewardEvent from the given config.
func NewRewardEventClient(c config) *RewardEventClient {
	return &RewardEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rewardevent.Hooks(f(g(h())))`.
func (c *RewardEventClient) Use(hooks ...Hook) {
	c.hooks.RewardEvent = append(c.hooks.RewardEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rewardevent.Intercept(f(g(h())))`.
func (c *RewardEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.RewardEvent = append(c.inters.RewardEvent, interceptors...)
}

// Create returns a builder for creating a RewardEvent entity.
func (c *RewardEventClient) Create() *RewardEventCreate {
	mutation := newRewardEventMutation(c.config, OpCreate)
	return &RewardEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RewardEvent entities.
func (c *RewardEventClient) CreateBulk(builders ...*RewardEventCreate) *RewardEventCreateBulk {
	return &RewardEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RewardEventClient) MapCreateBulk(slice any, setFunc func(*RewardEventCreate, int)) *RewardEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RewardEventCreateBulk{err: fmt.Errorf("calling to RewardEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RewardEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RewardEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RewardEvent.
func (c *RewardEventClient) Update() *RewardEventUpdate {
	mutation := newRewardEventMutation(c.config, OpUpdate)
	return &RewardEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RewardEventClient) UpdateOne(_m *RewardEvent) *RewardEventUpdateOne {
	mutation := newRewardEventMutation(c.config, OpUpdateOne, withRewardEvent(_m))
	return &RewardEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RewardEventClient) UpdateOneID(id int) *RewardEventUpdateOne {
	mutation := newRewardEventMutation(c.config, OpUpdateOne, withRewardEventID(id))
	return &RewardEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RewardEvent.
func (c *RewardEventClient) Delete() *RewardEventDelete {
	mutation := newRewardEventMutation(c.config, OpDelete)
	return &RewardEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RewardEventClient) DeleteOne(_m *RewardEvent) *RewardEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RewardEventClient) DeleteOneID(id int) *RewardEventDeleteOne {
	builder := c.Delete().Where(rewardevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RewardEventDeleteOne{builder}
}

// Query returns a query builder for RewardEvent.
func (c *RewardEventClient) Query() *RewardEventQuery {
	return &RewardEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRewardEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a RewardEvent entity by its id.
func (c *RewardEventClient) Get(ctx context.Context, id int) (*RewardEvent, error) {
	return c.Query().Where(rewardevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RewardEventClient) GetX(ctx context.Context, id int) *RewardEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RewardEventClient) Hooks() []Hook {
	return c.hooks.RewardEvent
}

// Interceptors returns the client interceptors.
func (c *RewardEventClient) Interceptors() []Interceptor {
	return c.inters.RewardEvent
}

func (c *RewardEventClient) mutate(ctx context.Context, m *RewardEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RewardEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RewardEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RewardEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RewardEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RewardEvent mutation op: %q", m.Op())
	}
}

// ScenarioFamilyClient is a client for the ScenarioFamily schema.
type ScenarioFamilyClient struct {
	config
}

// NewScenarioFamilyClient returns a client for the ScenarioFamily from the given config.
func NewScenarioFamilyClient(c config) *ScenarioFamilyClient {
	return &ScenarioFamilyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scenariofamily.Hooks(f(g(h())))`.
func (c *ScenarioFamilyClient) Use(hooks ...Hook) {
	c.hooks.ScenarioFamily = append(c.hooks.ScenarioFamily, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scenariofamily.Intercept(f(g(h())))`.
func (c *ScenarioFamilyClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScenarioFamily = append(c.inters.ScenarioFamily, interceptors...)
}

// Create returns a builder for creating a ScenarioFamily entity.
func (c *ScenarioFamilyClient) Create() *ScenarioFamilyCreate {
	mutation := newScenarioFamilyMutation(c.config, OpCreate)
	return &ScenarioFamilyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScenarioFamily entities.
func (c *ScenarioFamilyClient) CreateBulk(builders ...*ScenarioFamilyCreate) *ScenarioFamilyCreateBulk {
	return &ScenarioFamilyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScenarioFamilyClient) MapCreateBulk(slice any, setFunc func(*ScenarioFamilyCreate, int)) *ScenarioFamilyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScenarioFamilyCreateBulk{err: fmt.Errorf("calling to ScenarioFamilyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScenarioFamilyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScenarioFamilyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScenarioFamily.
func (c *ScenarioFamilyClient) Update() *ScenarioFamilyUpdate {
	mutation := newScenarioFamilyMutation(c.config, OpUpdate)
	return &ScenarioFamilyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScenarioFamilyClient) UpdateOne(_m *ScenarioFamily) *ScenarioFamilyUpdateOne {
	mutation := newScenarioFamilyMutation(c.config, OpUpdateOne, withScenarioFamily(_m))
	return &ScenarioFamilyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScenarioFamilyClient) UpdateOneID(id int) *ScenarioFamilyUpdateOne {
	mutation := newScenarioFamilyMutation(c.config, OpUpdateOne, withScenarioFamilyID(id))
	return &ScenarioFamilyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScenarioFamily.
func (c *ScenarioFamilyClient) Delete() *ScenarioFamilyDelete {
	mutation := newScenarioFamilyMutation(c.config, OpDelete)
	return &ScenarioFamilyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScenarioFamilyClient) DeleteOne(_m *ScenarioFamily) *ScenarioFamilyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScenarioFamilyClient) DeleteOneID(id int) *ScenarioFamilyDeleteOne {
	builder := c.Delete().Where(scenariofamily.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScenarioFamilyDeleteOne{builder}
}

// Query returns a query builder for ScenarioFamily.
func (c *ScenarioFamilyClient) Query() *ScenarioFamilyQuery {
	return &ScenarioFamilyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScenarioFamily},
		inters: c.Interceptors(),
	}
}

// Get returns a ScenarioFamily entity by its id.
func (c *ScenarioFamilyClient) Get(ctx context.Context, id int) (*ScenarioFamily, error) {
	return c.Query().Where(scenariofamily.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScenarioFamilyClient) GetX(ctx context.Context, id int) *ScenarioFamily {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScenarioFamilyClient) Hooks() []Hook {
	return c.hooks.ScenarioFamily
}

// Interceptors returns the client interceptors.
func (c *ScenarioFamilyClient) Interceptors() []Interceptor {
	return c.inters.ScenarioFamily
}

func (c *ScenarioFamilyClient) mutate(ctx context.Context, m *ScenarioFamilyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScenarioFamilyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScenarioFamilyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScenarioFamilyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScenarioFamilyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScenarioFamily mutation op: %q", m.Op())
	}
}

// TemplateClient is a client for the Template schema.
type TemplateClient struct {
	config
}

// NewTemplateClient returns a client for the Template from the given config.
func NewTemplateClient(c config) *TemplateClient {
	return &TemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `template.Hooks(f(g(h())))`.
func (c *TemplateClient) Use(hooks ...Hook) {
	c.hooks.Template = append(c.hooks.Template, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `template.Intercept(f(g(h())))`.
func (c *TemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.Template = append(c.inters.Template, interceptors...)
}

// Create returns a builder for creating a Template entity.
func (c *TemplateClient) Create() *TemplateCreate {
	mutation := newTemplateMutation(c.config, OpCreate)
	return &TemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Template entities.
func (c *TemplateClient) CreateBulk(builders ...*TemplateCreate) *TemplateCreateBulk {
	return &TemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TemplateClient) MapCreateBulk(slice any, setFunc func(*TemplateCreate, int)) *TemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TemplateCreateBulk{err: fmt.Errorf("calling to TemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Template.
func (c *TemplateClient) Update() *TemplateUpdate {
	mutation := newTemplateMutation(c.config, OpUpdate)
	return &TemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TemplateClient) UpdateOne(_m *Template) *TemplateUpdateOne {
	mutation := newTemplateMutation(c.config, OpUpdateOne, withTemplate(_m))
	return &TemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TemplateClient) UpdateOneID(id int) *TemplateUpdateOne {
	mutation := newTemplateMutation(c.config, OpUpdateOne, withTemplateID(id))
	return &TemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Template.
func (c *TemplateClient) Delete() *TemplateDelete {
	mutation := newTemplateMutation(c.config, OpDelete)
	return &TemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TemplateClient) DeleteOne(_m *Template) *TemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TemplateClient) DeleteOneID(id int) *TemplateDeleteOne {
	builder := c.Delete().Where(template.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TemplateDeleteOne{builder}
}

// Query returns a query builder for Template.
func (c *TemplateClient) Query() *TemplateQuery {
	return &TemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a Template entity by its id.
func (c *TemplateClient) Get(ctx context.Context, id int) (*Template, error) {
	return c.Query().Where(template.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TemplateClient) GetX(ctx context.Context, id int) *Template {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TemplateClient) Hooks() []Hook {
	return c.hooks.Template
}

// Interceptors returns the client interceptors.
func (c *TemplateClient) Interceptors() []Interceptor {
	return c.inters.Template
}

func (c *TemplateClient) mutate(ctx context.Context, m *TemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Template mutation op: %q", m.Op())
	}
}

// TemplateFeedbackClient is a client for the TemplateFeedback schema.
type TemplateFeedbackClient struct {
	config
}

// NewTemplateFeedbackClient returns a client for the TemplateFeedback from the given config.
func NewTemplateFeedbackClient(c config) *TemplateFeedbackClient {
	return &TemplateFeedbackClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `templatefeedback.Hooks(f(g(h())))`.
func (c *TemplateFeedbackClient) Use(hooks ...Hook) {
	c.hooks.TemplateFeedback = append(c.hooks.TemplateFeedback, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `templatefeedback.Intercept(f(g(h())))`.
func (c *TemplateFeedbackClient) Intercept(interceptors ...Interceptor) {
	c.inters.TemplateFeedback = append(c.inters.TemplateFeedback, interceptors...)
}

// Create returns a builder for creating a TemplateFeedback entity.
func (c *TemplateFeedbackClient) Create() *TemplateFeedbackCreate {
	mutation := newTemplateFeedbackMutation(c.config, OpCreate)
	return &TemplateFeedbackCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TemplateFeedback entities.
func (c *TemplateFeedbackClient) CreateBulk(builders ...*TemplateFeedbackCreate) *TemplateFeedbackCreateBulk {
	return &TemplateFeedbackCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TemplateFeedbackClient) MapCreateBulk(slice any, setFunc func(*TemplateFeedbackCreate, int)) *TemplateFeedbackCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TemplateFeedbackCreateBulk{err: fmt.Errorf("calling to TemplateFeedbackClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TemplateFeedbackCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TemplateFeedbackCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TemplateFeedback.
func (c *TemplateFeedbackClient) Update() *TemplateFeedbackUpdate {
	mutation := newTemplateFeedbackMutation(c.config, OpUpdate)
	return &TemplateFeedbackUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TemplateFeedbackClient) UpdateOne(_m *TemplateFeedback) *TemplateFeedbackUpdateOne {
	mutation := newTemplateFeedbackMutation(c.config, OpUpdateOne, withTemplateFeedback(_m))
	return &TemplateFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TemplateFeedbackClient) UpdateOneID(id int) *TemplateFeedbackUpdateOne {
	mutation := newTemplateFeedbackMutation(c.config, OpUpdateOne, withTemplateFeedbackID(id))
	return &TemplateFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TemplateFeedback.
func (c *TemplateFeedbackClient) Delete() *TemplateFeedbackDelete {
	mutation := newTemplateFeedbackMutation(c.config, OpDelete)
	return &TemplateFeedbackDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TemplateFeedbackClient) DeleteOne(_m *TemplateFeedback) *TemplateFeedbackDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TemplateFeedbackClient) DeleteOneID(id int) *TemplateFeedbackDeleteOne {
	builder := c.Delete().Where(templatefeedback.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TemplateFeedbackDeleteOne{builder}
}

// Query returns a query builder for TemplateFeedback.
func (c *TemplateFeedbackClient) Query() *TemplateFeedbackQuery {
	return &TemplateFeedbackQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTemplateFeedback},
		inters: c.Interceptors(),
	}
}

// Get returns a TemplateFeedback entity by its id.
func (c *TemplateFeedbackClient) Get(ctx context.Context, id int) (*TemplateFeedback, error) {
	return c.Query().Where(templatefeedback.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TemplateFeedbackClient) GetX(ctx context.Context, id int) *TemplateFeedback {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TemplateFeedbackClient) Hooks() []Hook {
	return c.hooks.TemplateFeedback
}

// Interceptors returns the client interceptors.
func (c *TemplateFeedbackClient) Interceptors() []Interceptor {
	return c.inters.TemplateFeedback
}

func (c *TemplateFeedbackClient) mutate(ctx context.Context, m *TemplateFeedbackMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TemplateFeedbackCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TemplateFeedbackUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TemplateFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TemplateFeedbackDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TemplateFeedback mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ContextHistory, ContextVariant, GenerationRun, LLMRequestEvent, LearningSession,
		RewardEvent, ScenarioFamily, Template, TemplateFeedback []ent.Hook
	}
	inters struct {
		ContextHistory, ContextVariant, GenerationRun, LLMRequestEvent, LearningSession,
		RewardEvent, ScenarioFamily, Template, TemplateFeedback []ent.Interceptor
	}
)
