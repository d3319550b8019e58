// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/skillissue/engine/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/skillissue/engine/ent/calibrationanswer"
	"github.com/skillissue/engine/ent/calibrationquestion"
	"github.com/skillissue/engine/ent/calibrationstate"
	"github.com/skillissue/engine/ent/challenge"
	"github.com/skillissue/engine/ent/executiontraceevent"
	"github.com/skillissue/engine/ent/llmrequestevent"
	"github.com/skillissue/engine/ent/performancestate"
	"github.com/skillissue/engine/ent/pushevent"
	"github.com/skillissue/engine/ent/skill"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CalibrationAnswer is the client for interacting with the CalibrationAnswer builders.
	CalibrationAnswer *CalibrationAnswerClient
	// CalibrationQuestion is the client for interacting with the CalibrationQuestion builders.
	CalibrationQuestion *CalibrationQuestionClient
	// CalibrationState is the client for interacting with the CalibrationState builders.
	CalibrationState *CalibrationStateClient
	// Challenge is the client for interacting with the Challenge builders.
	Challenge *ChallengeClient
	// ExecutionTraceEvent is the client for interacting with the ExecutionTraceEvent builders.
	ExecutionTraceEvent *ExecutionTraceEventClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// PerformanceState is the client for interacting with the PerformanceState builders.
	PerformanceState *PerformanceStateClient
	// PushEvent is the client for interacting with the PushEvent builders.
	PushEvent *PushEventClient
	// Skill is the client for interacting with the Skill builders.
	Skill *SkillClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CalibrationAnswer = NewCalibrationAnswerClient(c.config)
	c.CalibrationQuestion = NewCalibrationQuestionClient(c.config)
	c.CalibrationState = NewCalibrationStateClient(c.config)
	c.Challenge = NewChallengeClient(c.config)
	c.ExecutionTraceEvent = NewExecutionTraceEventClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.PerformanceState = NewPerformanceStateClient(c.config)
	c.PushEvent = NewPushEventClient(c.config)
	c.Skill = NewSkillClient(c.config)
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
		ctx:                 ctx,
		config:              cfg,
		CalibrationAnswer:   NewCalibrationAnswerClient(cfg),
		CalibrationQuestion: NewCalibrationQuestionClient(cfg),
		CalibrationState:    NewCalibrationStateClient(cfg),
		Challenge:           NewChallengeClient(cfg),
		ExecutionTraceEvent: NewExecutionTraceEventClient(cfg),
		LLMRequestEvent:     NewLLMRequestEventClient(cfg),
		PerformanceState:    NewPerformanceStateClient(cfg),
		PushEvent:           NewPushEventClient(cfg),
		Skill:               NewSkillClient(cfg),
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
		ctx:                 ctx,
		config:              cfg,
		CalibrationAnswer:   NewCalibrationAnswerClient(cfg),
		CalibrationQuestion: NewCalibrationQuestionClient(cfg),
		CalibrationState:    NewCalibrationStateClient(cfg),
		Challenge:           NewChallengeClient(cfg),
		ExecutionTraceEvent: NewExecutionTraceEventClient(cfg),
		LLMRequestEvent:     NewLLMRequestEventClient(cfg),
		PerformanceState:    NewPerformanceStateClient(cfg),
		PushEvent:           NewPushEventClient(cfg),
		Skill:               NewSkillClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CalibrationAnswer.
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
		c.CalibrationAnswer, c.CalibrationQuestion, c.CalibrationState, c.Challenge,
		c.ExecutionTraceEvent, c.LLMRequestEvent, c.PerformanceState, c.PushEvent,
		c.Skill,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.CalibrationAnswer, c.CalibrationQuestion, c.CalibrationState, c.Challenge,
		c.ExecutionTraceEvent, c.LLMRequestEvent, c.PerformanceState, c.PushEvent,
		c.Skill,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CalibrationAnswerMutation:
		return c.CalibrationAnswer.mutate(ctx, m)
	case *CalibrationQuestionMutation:
		return c.CalibrationQuestion.mutate(ctx, m)
	case *CalibrationStateMutation:
		return c.CalibrationState.mutate(ctx, m)
	case *ChallengeMutation:
		return c.Challenge.mutate(ctx, m)
	case *ExecutionTraceEventMutation:
		return c.ExecutionTraceEvent.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *PerformanceStateMutation:
		return c.PerformanceState.mutate(ctx, m)
	case *PushEventMutation:
		return c.PushEvent.mutate(ctx, m)
	case *SkillMutation:
		return c.Skill.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CalibrationAnswerClient is a client for the CalibrationAnswer schema.
type CalibrationAnswerClient struct {
	config
}

// NewCalibrationAnswerClient returns a client for the CalibrationAnswer from the given config.
func NewCalibrationAnswerClient(c config) *CalibrationAnswerClient {
	return &CalibrationAnswerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `calibrationanswer.Hooks(f(g(h())))`.
func (c *CalibrationAnswerClient) Use(hooks ...Hook) {
	c.hooks.CalibrationAnswer = append(c.hooks.CalibrationAnswer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `calibrationanswer.Intercept(f(g(h())))`.
func (c *CalibrationAnswerClient) Intercept(interceptors ...Interceptor) {
	c.inters.CalibrationAnswer = append(c.inters.CalibrationAnswer, interceptors...)
}

// Create returns a builder for creating a CalibrationAnswer entity.
func (c *CalibrationAnswerClient) Create() *CalibrationAnswerCreate {
	mutation := newCalibrationAnswerMutation(c.config, OpCreate)
	return &CalibrationAnswerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CalibrationAnswer entities.
func (c *CalibrationAnswerClient) CreateBulk(builders ...*CalibrationAnswerCreate) *CalibrationAnswerCreateBulk {
	return &CalibrationAnswerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CalibrationAnswerClient) MapCreateBulk(slice any, setFunc func(*CalibrationAnswerCreate, int)) *CalibrationAnswerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CalibrationAnswerCreateBulk{err: fmt.Errorf("calling to CalibrationAnswerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CalibrationAnswerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CalibrationAnswerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CalibrationAnswer.
func (c *CalibrationAnswerClient) Update() *CalibrationAnswerUpdate {
	mutation := newCalibrationAnswerMutation(c.config, OpUpdate)
	return &CalibrationAnswerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CalibrationAnswerClient) UpdateOne(_m *CalibrationAnswer) *CalibrationAnswerUpdateOne {
	mutation := newCalibrationAnswerMutation(c.config, OpUpdateOne, withCalibrationAnswer(_m))
	return &CalibrationAnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CalibrationAnswerClient) UpdateOneID(id int) *CalibrationAnswerUpdateOne {
	mutation := newCalibrationAnswerMutation(c.config, OpUpdateOne, withCalibrationAnswerID(id))
	return &CalibrationAnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CalibrationAnswer.
func (c *CalibrationAnswerClient) Delete() *CalibrationAnswerDelete {
	mutation := newCalibrationAnswerMutation(c.config, OpDelete)
	return &CalibrationAnswerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CalibrationAnswerClient) DeleteOne(_m *CalibrationAnswer) *CalibrationAnswerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CalibrationAnswerClient) DeleteOneID(id int) *CalibrationAnswerDeleteOne {
	builder := c.Delete().Where(calibrationanswer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CalibrationAnswerDeleteOne{builder}
}

// Query returns a query builder for CalibrationAnswer.
func (c *CalibrationAnswerClient) Query() *CalibrationAnswerQuery {
	return &CalibrationAnswerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCalibrationAnswer},
		inters: c.Interceptors(),
	}
}

// Get returns a CalibrationAnswer entity by its id.
func (c *CalibrationAnswerClient) Get(ctx context.Context, id int) (*CalibrationAnswer, error) {
	return c.Query().Where(calibrationanswer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CalibrationAnswerClient) GetX(ctx context.Context, id int) *CalibrationAnswer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CalibrationAnswerClient) Hooks() []Hook {
	return c.hooks.CalibrationAnswer
}

// Interceptors returns the client interceptors.
func (c *CalibrationAnswerClient) Interceptors() []Interceptor {
	return c.inters.CalibrationAnswer
}

func (c *CalibrationAnswerClient) mutate(ctx context.Context, m *CalibrationAnswerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CalibrationAnswerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CalibrationAnswerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CalibrationAnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CalibrationAnswerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CalibrationAnswer mutation op: %q", m.Op())
	}
}

// CalibrationQuestionClient is a client for the CalibrationQuestion schema.
type CalibrationQuestionClient struct {
	config
}

// NewCalibrationQuestionClient returns a client for the CalibrationQuestion from the given config.
func NewCalibrationQuestionClient(c config) *CalibrationQuestionClient {
	return &CalibrationQuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `calibrationquestion.Hooks(f(g(h())))`.
func (c *CalibrationQuestionClient) Use(hooks ...Hook) {
	c.hooks.CalibrationQuestion = append(c.hooks.CalibrationQuestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `calibrationquestion.Intercept(f(g(h())))`.
func (c *CalibrationQuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.CalibrationQuestion = append(c.inters.CalibrationQuestion, interceptors...)
}

// Create returns a builder for creating a CalibrationQuestion entity.
func (c *CalibrationQuestionClient) Create() *CalibrationQuestionCreate {
	mutation := newCalibrationQuestionMutation(c.config, OpCreate)
	return &CalibrationQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CalibrationQuestion entities.
func (c *CalibrationQuestionClient) CreateBulk(builders ...*CalibrationQuestionCreate) *CalibrationQuestionCreateBulk {
	return &CalibrationQuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CalibrationQuestionClient) MapCreateBulk(slice any, setFunc func(*CalibrationQuestionCreate, int)) *CalibrationQuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CalibrationQuestionCreateBulk{err: fmt.Errorf("calling to CalibrationQuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CalibrationQuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CalibrationQuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CalibrationQuestion.
func (c *CalibrationQuestionClient) Update() *CalibrationQuestionUpdate {
	mutation := newCalibrationQuestionMutation(c.config, OpUpdate)
	return &CalibrationQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CalibrationQuestionClient) UpdateOne(_m *CalibrationQuestion) *CalibrationQuestionUpdateOne {
	mutation := newCalibrationQuestionMutation(c.config, OpUpdateOne, withCalibrationQuestion(_m))
	return &CalibrationQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CalibrationQuestionClient) UpdateOneID(id int) *CalibrationQuestionUpdateOne {
	mutation := newCalibrationQuestionMutation(c.config, OpUpdateOne, withCalibrationQuestionID(id))
	return &CalibrationQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CalibrationQuestion.
func (c *CalibrationQuestionClient) Delete() *CalibrationQuestionDelete {
	mutation := newCalibrationQuestionMutation(c.config, OpDelete)
	return &CalibrationQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CalibrationQuestionClient) DeleteOne(_m *CalibrationQuestion) *CalibrationQuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CalibrationQuestionClient) DeleteOneID(id int) *CalibrationQuestionDeleteOne {
	builder := c.Delete().Where(calibrationquestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CalibrationQuestionDeleteOne{builder}
}

// Query returns a query builder for CalibrationQuestion.
func (c *CalibrationQuestionClient) Query() *CalibrationQuestionQuery {
	return &CalibrationQuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCalibrationQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a CalibrationQuestion entity by its id.
func (c *CalibrationQuestionClient) Get(ctx context.Context, id int) (*CalibrationQuestion, error) {
	return c.Query().Where(calibrationquestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CalibrationQuestionClient) GetX(ctx context.Context, id int) *CalibrationQuestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CalibrationQuestionClient) Hooks() []Hook {
	return c.hooks.CalibrationQuestion
}

// Interceptors returns the client interceptors.
func (c *CalibrationQuestionClient) Interceptors() []Interceptor {
	return c.inters.CalibrationQuestion
}

func (c *CalibrationQuestionClient) mutate(ctx context.Context, m *CalibrationQuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CalibrationQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CalibrationQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CalibrationQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CalibrationQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CalibrationQuestion mutation op: %q", m.Op())
	}
}

// CalibrationStateClient is a client for the CalibrationState schema.
type CalibrationStateClient struct {
	config
}

// NewCalibrationStateClient returns a client for the CalibrationState from the given config.
func NewCalibrationStateClient(c config) *CalibrationStateClient {
	return &CalibrationStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `calibrationstate.Hooks(f(g(h())))`.
func (c *CalibrationStateClient) Use(hooks ...Hook) {
	c.hooks.CalibrationState = append(c.hooks.CalibrationState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `calibrationstate.Intercept(f(g(h())))`.
func (c *CalibrationStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.CalibrationState = append(c.inters.CalibrationState, interceptors...)
}

// Create returns a builder for creating a CalibrationState entity.
func (c *CalibrationStateClient) Create() *CalibrationStateCreate {
	mutation := newCalibrationStateMutation(c.config, OpCreate)
	return &CalibrationStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CalibrationState entities.
func (c *CalibrationStateClient) CreateBulk(builders ...*CalibrationStateCreate) *CalibrationStateCreateBulk {
	return &CalibrationStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CalibrationStateClient) MapCreateBulk(slice any, setFunc func(*CalibrationStateCreate, int)) *CalibrationStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CalibrationStateCreateBulk{err: fmt.Errorf("calling to CalibrationStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CalibrationStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CalibrationStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CalibrationState.
func (c *CalibrationStateClient) Update() *CalibrationStateUpdate {
	mutation := newCalibrationStateMutation(c.config, OpUpdate)
	return &CalibrationStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CalibrationStateClient) UpdateOne(_m *CalibrationState) *CalibrationStateUpdateOne {
	mutation := newCalibrationStateMutation(c.config, OpUpdateOne, withCalibrationState(_m))
	return &CalibrationStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CalibrationStateClient) UpdateOneID(id string) *CalibrationStateUpdateOne {
	mutation := newCalibrationStateMutation(c.config, OpUpdateOne, withCalibrationStateID(id))
	return &CalibrationStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CalibrationState.
func (c *CalibrationStateClient) Delete() *CalibrationStateDelete {
	mutation := newCalibrationStateMutation(c.config, OpDelete)
	return &CalibrationStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CalibrationStateClient) DeleteOne(_m *CalibrationState) *CalibrationStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CalibrationStateClient) DeleteOneID(id string) *CalibrationStateDeleteOne {
	builder := c.Delete().Where(calibrationstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CalibrationStateDeleteOne{builder}
}

// Query returns a query builder for CalibrationState.
func (c *CalibrationStateClient) Query() *CalibrationStateQuery {
	return &CalibrationStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCalibrationState},
		inters: c.Interceptors(),
	}
}

// Get returns a CalibrationState entity by its id.
func (c *CalibrationStateClient) Get(ctx context.Context, id string) (*CalibrationState, error) {
	return c.Query().Where(calibrationstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CalibrationStateClient) GetX(ctx context.Context, id string) *CalibrationState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CalibrationStateClient) Hooks() []Hook {
	return c.hooks.CalibrationState
}

// Interceptors returns the client interceptors.
func (c *CalibrationStateClient) Interceptors() []Interceptor {
	return c.inters.CalibrationState
}

func (c *CalibrationStateClient) mutate(ctx context.Context, m *CalibrationStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CalibrationStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CalibrationStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CalibrationStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CalibrationStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CalibrationState mutation op: %q", m.Op())
	}
}

// ChallengeClient is a client for the Challenge schema.
type ChallengeClient struct {
	config
}

// NewChallengeClient returns a client for the Challenge from the given config.
func NewChallengeClient(c config) *ChallengeClient {
	return &ChallengeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `challenge.Hooks(f(g(h())))`.
func (c *ChallengeClient) Use(hooks ...Hook) {
	c.hooks.Challenge = append(c.hooks.Challenge, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `challenge.Intercept(f(g(h())))`.
func (c *ChallengeClient) Intercept(interceptors ...Interceptor) {
	c.inters.Challenge = append(c.inters.Challenge, interceptors...)
}

// Create returns a builder for creating a Challenge entity.
func (c *ChallengeClient) Create() *ChallengeCreate {
	mutation := newChallengeMutation(c.config, OpCreate)
	return &ChallengeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Challenge entities.
func (c *ChallengeClient) CreateBulk(builders ...*ChallengeCreate) *ChallengeCreateBulk {
	return &ChallengeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChallengeClient) MapCreateBulk(slice any, setFunc func(*ChallengeCreate, int)) *ChallengeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChallengeCreateBulk{err: fmt.Errorf("calling to ChallengeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChallengeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChallengeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Challenge.
func (c *ChallengeClient) Update() *ChallengeUpdate {
	mutation := newChallengeMutation(c.config, OpUpdate)
	return &ChallengeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChallengeClient) UpdateOne(_m *Challenge) *ChallengeUpdateOne {
	mutation := newChallengeMutation(c.config, OpUpdateOne, withChallenge(_m))
	return &ChallengeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChallengeClient) UpdateOneID(id string) *ChallengeUpdateOne {
	mutation := newChallengeMutation(c.config, OpUpdateOne, withChallengeID(id))
	return &ChallengeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Challenge.
func (c *ChallengeClient) Delete() *ChallengeDelete {
	mutation := newChallengeMutation(c.config, OpDelete)
	return &ChallengeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChallengeClient) DeleteOne(_m *Challenge) *ChallengeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChallengeClient) DeleteOneID(id string) *ChallengeDeleteOne {
	builder := c.Delete().Where(challenge.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChallengeDeleteOne{builder}
}

// Query returns a query builder for Challenge.
func (c *ChallengeClient) Query() *ChallengeQuery {
	return &ChallengeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChallenge},
		inters: c.Interceptors(),
	}
}

// Get returns a Challenge entity by its id.
func (c *ChallengeClient) Get(ctx context.Context, id string) (*Challenge, error) {
	return c.Query().Where(challenge.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChallengeClient) GetX(ctx context.Context, id string) *Challenge {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChallengeClient) Hooks() []Hook {
	return c.hooks.Challenge
}

// Interceptors returns the client interceptors.
func (c *ChallengeClient) Interceptors() []Interceptor {
	return c.inters.Challenge
}

func (c *ChallengeClient) mutate(ctx context.Context, m *ChallengeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChallengeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChallengeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChallengeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChallengeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Challenge mutation op: %q", m.Op())
	}
}

// ExecutionTraceEventClient is a client for the ExecutionTraceEvent schema.
type ExecutionTraceEventClient struct {
	config
}

// NewExecutionTraceEventClient returns a client for the ExecutionTraceEvent from the given config.
func NewExecutionTraceEventClient(c config) *ExecutionTraceEventClient {
	return &ExecutionTraceEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `executiontraceevent.Hooks(f(g(h())))`.
func (c *ExecutionTraceEventClient) Use(hooks ...Hook) {
	c.hooks.ExecutionTraceEvent = append(c.hooks.ExecutionTraceEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `executiontraceevent.Intercept(f(g(h())))`.
func (c *ExecutionTraceEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExecutionTraceEvent = append(c.inters.ExecutionTraceEvent, interceptors...)
}

// Create returns a builder for creating a ExecutionTraceEvent entity.
func (c *ExecutionTraceEventClient) Create() *ExecutionTraceEventCreate {
	mutation := newExecutionTraceEventMutation(c.config, OpCreate)
	return &ExecutionTraceEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExecutionTraceEvent entities.
func (c *ExecutionTraceEventClient) CreateBulk(builders ...*ExecutionTraceEventCreate) *ExecutionTraceEventCreateBulk {
	return &ExecutionTraceEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExecutionTraceEventClient) MapCreateBulk(slice any, setFunc func(*ExecutionTraceEventCreate, int)) *ExecutionTraceEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExecutionTraceEventCreateBulk{err: fmt.Errorf("calling to ExecutionTraceEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExecutionTraceEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExecutionTraceEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExecutionTraceEvent.
func (c *ExecutionTraceEventClient) Update() *ExecutionTraceEventUpdate {
	mutation := newExecutionTraceEventMutation(c.config, OpUpdate)
	return &ExecutionTraceEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExecutionTraceEventClient) UpdateOne(_m *ExecutionTraceEvent) *ExecutionTraceEventUpdateOne {
	mutation := newExecutionTraceEventMutation(c.config, OpUpdateOne, withExecutionTraceEvent(_m))
	return &ExecutionTraceEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExecutionTraceEventClient) UpdateOneID(id int) *ExecutionTraceEventUpdateOne {
	mutation := newExecutionTraceEventMutation(c.config, OpUpdateOne, withExecutionTraceEventID(id))
	return &ExecutionTraceEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExecutionTraceEvent.
func (c *ExecutionTraceEventClient) Delete() *ExecutionTraceEventDelete {
	mutation := newExecutionTraceEventMutation(c.config, OpDelete)
	return &ExecutionTraceEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExecutionTraceEventClient) DeleteOne(_m *ExecutionTraceEvent) *ExecutionTraceEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExecutionTraceEventClient) DeleteOneID(id int) *ExecutionTraceEventDeleteOne {
	builder := c.Delete().Where(executiontraceevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExecutionTraceEventDeleteOne{builder}
}

// Query returns a query builder for ExecutionTraceEvent.
func (c *ExecutionTraceEventClient) Query() *ExecutionTraceEventQuery {
	return &ExecutionTraceEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExecutionTraceEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ExecutionTraceEvent entity by its id.
func (c *ExecutionTraceEventClient) Get(ctx context.Context, id int) (*ExecutionTraceEvent, error) {
	return c.Query().Where(executiontraceevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExecutionTraceEventClient) GetX(ctx context.Context, id int) *ExecutionTraceEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExecutionTraceEventClient) Hooks() []Hook {
	return c.hooks.ExecutionTraceEvent
}

// Interceptors returns the client interceptors.
func (c *ExecutionTraceEventClient) Interceptors() []Interceptor {
	return c.inters.ExecutionTraceEvent
}

func (c *ExecutionTraceEventClient) mutate(ctx context.Context, m *ExecutionTraceEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExecutionTraceEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExecutionTraceEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExecutionTraceEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExecutionTraceEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExecutionTraceEvent mutation op: %q", m.Op())
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

// PerformanceStateClient is a client for the PerformanceState schema.
type PerformanceStateClient struct {
	config
}

// NewPerformanceStateClient returns a client for the PerformanceState from the given config.
func NewPerformanceStateClient(c config) *PerformanceStateClient {
	return &PerformanceStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `performancestate.Hooks(f(g(h())))`.
func (c *PerformanceStateClient) Use(hooks ...Hook) {
	c.hooks.PerformanceState = append(c.hooks.PerformanceState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `performancestate.Intercept(f(g(h())))`.
func (c *PerformanceStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.PerformanceState = append(c.inters.PerformanceState, interceptors...)
}

// Create returns a builder for creating a PerformanceState entity.
func (c *PerformanceStateClient) Create() *PerformanceStateCreate {
	mutation := newPerformanceStateMutation(c.config, OpCreate)
	return &PerformanceStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PerformanceState entities.
func (c *PerformanceStateClient) CreateBulk(builders ...*PerformanceStateCreate) *PerformanceStateCreateBulk {
	return &PerformanceStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PerformanceStateClient) MapCreateBulk(slice any, setFunc func(*PerformanceStateCreate, int)) *PerformanceStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PerformanceStateCreateBulk{err: fmt.Errorf("calling to PerformanceStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PerformanceStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PerformanceStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PerformanceState.
func (c *PerformanceStateClient) Update() *PerformanceStateUpdate {
	mutation := newPerformanceStateMutation(c.config, OpUpdate)
	return &PerformanceStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PerformanceStateClient) UpdateOne(_m *PerformanceState) *PerformanceStateUpdateOne {
	mutation := newPerformanceStateMutation(c.config, OpUpdateOne, withPerformanceState(_m))
	return &PerformanceStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PerformanceStateClient) UpdateOneID(id int) *PerformanceStateUpdateOne {
	mutation := newPerformanceStateMutation(c.config, OpUpdateOne, withPerformanceStateID(id))
	return &PerformanceStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PerformanceState.
func (c *PerformanceStateClient) Delete() *PerformanceStateDelete {
	mutation := newPerformanceStateMutation(c.config, OpDelete)
	return &PerformanceStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PerformanceStateClient) DeleteOne(_m *PerformanceState) *PerformanceStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PerformanceStateClient) DeleteOneID(id int) *PerformanceStateDeleteOne {
	builder := c.Delete().Where(performancestate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PerformanceStateDeleteOne{builder}
}

// Query returns a query builder for PerformanceState.
func (c *PerformanceStateClient) Query() *PerformanceStateQuery {
	return &PerformanceStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePerformanceState},
		inters: c.Interceptors(),
	}
}

// Get returns a PerformanceState entity by its id.
func (c *PerformanceStateClient) Get(ctx context.Context, id int) (*PerformanceState, error) {
	return c.Query().Where(performancestate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PerformanceStateClient) GetX(ctx context.Context, id int) *PerformanceState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PerformanceStateClient) Hooks() []Hook {
	return c.hooks.PerformanceState
}

// Interceptors returns the client interceptors.
func (c *PerformanceStateClient) Interceptors() []Interceptor {
	return c.inters.PerformanceState
}

func (c *PerformanceStateClient) mutate(ctx context.Context, m *PerformanceStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PerformanceStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PerformanceStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PerformanceStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PerformanceStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PerformanceState mutation op: %q", m.Op())
	}
}

// PushEventClient is a client for the PushEvent schema.
type PushEventClient struct {
	config
}

// NewPushEventClient returns a client for the PushEvent from the given config.
func NewPushEventClient(c config) *PushEventClient {
	return &PushEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pushevent.Hooks(f(g(h())))`.
func (c *PushEventClient) Use(hooks ...Hook) {
	c.hooks.PushEvent = append(c.hooks.PushEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pushevent.Intercept(f(g(h())))`.
func (c *PushEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.PushEvent = append(c.inters.PushEvent, interceptors...)
}

// Create returns a builder for creating a PushEvent entity.
func (c *PushEventClient) Create() *PushEventCreate {
	mutation := newPushEventMutation(c.config, OpCreate)
	return &PushEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PushEvent entities.
func (c *PushEventClient) CreateBulk(builders ...*PushEventCreate) *PushEventCreateBulk {
	return &PushEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PushEventClient) MapCreateBulk(slice any, setFunc func(*PushEventCreate, int)) *PushEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PushEventCreateBulk{err: fmt.Errorf("calling to PushEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PushEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PushEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PushEvent.
func (c *PushEventClient) Update() *PushEventUpdate {
	mutation := newPushEventMutation(c.config, OpUpdate)
	return &PushEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PushEventClient) UpdateOne(_m *PushEvent) *PushEventUpdateOne {
	mutation := newPushEventMutation(c.config, OpUpdateOne, withPushEvent(_m))
	return &PushEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PushEventClient) UpdateOneID(id int) *PushEventUpdateOne {
	mutation := newPushEventMutation(c.config, OpUpdateOne, withPushEventID(id))
	return &PushEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PushEvent.
func (c *PushEventClient) Delete() *PushEventDelete {
	mutation := newPushEventMutation(c.config, OpDelete)
	return &PushEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PushEventClient) DeleteOne(_m *PushEvent) *PushEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PushEventClient) DeleteOneID(id int) *PushEventDeleteOne {
	builder := c.Delete().Where(pushevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PushEventDeleteOne{builder}
}

// Query returns a query builder for PushEvent.
func (c *PushEventClient) Query() *PushEventQuery {
	return &PushEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePushEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a PushEvent entity by its id.
func (c *PushEventClient) Get(ctx context.Context, id int) (*PushEvent, error) {
	return c.Query().Where(pushevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PushEventClient) GetX(ctx context.Context, id int) *PushEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PushEventClient) Hooks() []Hook {
	return c.hooks.PushEvent
}

// Interceptors returns the client interceptors.
func (c *PushEventClient) Interceptors() []Interceptor {
	return c.inters.PushEvent
}

func (c *PushEventClient) mutate(ctx context.Context, m *PushEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PushEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PushEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PushEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PushEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PushEvent mutation op: %q", m.Op())
	}
}

// SkillClient is a client for the Skill schema.
type SkillClient struct {
	config
}

// NewSkillClient returns a client for the Skill from the given config.
func NewSkillClient(c config) *SkillClient {
	return &SkillClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `skill.Hooks(f(g(h())))`.
func (c *SkillClient) Use(hooks ...Hook) {
	c.hooks.Skill = append(c.hooks.Skill, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `skill.Intercept(f(g(h())))`.
func (c *SkillClient) Intercept(interceptors ...Interceptor) {
	c.inters.Skill = append(c.inters.Skill, interceptors...)
}

// Create returns a builder for creating a Skill entity.
func (c *SkillClient) Create() *SkillCreate {
	mutation := newSkillMutation(c.config, OpCreate)
	return &SkillCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Skill entities.
func (c *SkillClient) CreateBulk(builders ...*SkillCreate) *SkillCreateBulk {
	return &SkillCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SkillClient) MapCreateBulk(slice any, setFunc func(*SkillCreate, int)) *SkillCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SkillCreateBulk{err: fmt.Errorf("calling to SkillClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SkillCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SkillCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Skill.
func (c *SkillClient) Update() *SkillUpdate {
	mutation := newSkillMutation(c.config, OpUpdate)
	return &SkillUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SkillClient) UpdateOne(_m *Skill) *SkillUpdateOne {
	mutation := newSkillMutation(c.config, OpUpdateOne, withSkill(_m))
	return &SkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SkillClient) UpdateOneID(id string) *SkillUpdateOne {
	mutation := newSkillMutation(c.config, OpUpdateOne, withSkillID(id))
	return &SkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Skill.
func (c *SkillClient) Delete() *SkillDelete {
	mutation := newSkillMutation(c.config, OpDelete)
	return &SkillDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SkillClient) DeleteOne(_m *Skill) *SkillDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SkillClient) DeleteOneID(id string) *SkillDeleteOne {
	builder := c.Delete().Where(skill.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SkillDeleteOne{builder}
}

// Query returns a query builder for Skill.
func (c *SkillClient) Query() *SkillQuery {
	return &SkillQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSkill},
		inters: c.Interceptors(),
	}
}

// Get returns a Skill entity by its id.
func (c *SkillClient) Get(ctx context.Context, id string) (*Skill, error) {
	return c.Query().Where(skill.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SkillClient) GetX(ctx context.Context, id string) *Skill {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SkillClient) Hooks() []Hook {
	return c.hooks.Skill
}

// Interceptors returns the client interceptors.
func (c *SkillClient) Interceptors() []Interceptor {
	return c.inters.Skill
}

func (c *SkillClient) mutate(ctx context.Context, m *SkillMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SkillCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SkillUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SkillDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Skill mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CalibrationAnswer, CalibrationQuestion, CalibrationState, Challenge,
		ExecutionTraceEvent, LLMRequestEvent, PerformanceState, PushEvent,
		Skill []ent.Hook
	}
	inters struct {
		CalibrationAnswer, CalibrationQuestion, CalibrationState, Challenge,
		ExecutionTraceEvent, LLMRequestEvent, PerformanceState, PushEvent,
		Skill []ent.Interceptor
	}
)
