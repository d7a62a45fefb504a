// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/nexus-controls/plcforge/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/nexus-controls/plcforge/ent/generatedcode"
	"github.com/nexus-controls/plcforge/ent/project"
	"github.com/nexus-controls/plcforge/ent/safetymanual"
	"github.com/nexus-controls/plcforge/ent/stage"
	"github.com/nexus-controls/plcforge/ent/uploadedfile"
	"github.com/nexus-controls/plcforge/ent/versionentry"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// GeneratedCode is the client for interacting with the GeneratedCode builders.
	GeneratedCode *GeneratedCodeClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// SafetyManual is the client for interacting with the SafetyManual builders.
	SafetyManual *SafetyManualClient
	// Stage is the client for interacting with the Stage builders.
	Stage *StageClient
	// UploadedFile is the client for interacting with the UploadedFile builders.
	UploadedFile *UploadedFileClient
	// VersionEntry is the client for interacting with the VersionEntry builders.
	VersionEntry *VersionEntryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.GeneratedCode = NewGeneratedCodeClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.SafetyManual = NewSafetyManualClient(c.config)
	c.Stage = NewStageClient(c.config)
	c.UploadedFile = NewUploadedFileClient(c.config)
	c.VersionEntry = NewVersionEntryClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		GeneratedCode: NewGeneratedCodeClient(cfg),
		Project:       NewProjectClient(cfg),
		SafetyManual:  NewSafetyManualClient(cfg),
		Stage:         NewStageClient(cfg),
		UploadedFile:  NewUploadedFileClient(cfg),
		VersionEntry:  NewVersionEntryClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		GeneratedCode: NewGeneratedCodeClient(cfg),
		Project:       NewProjectClient(cfg),
		SafetyManual:  NewSafetyManualClient(cfg),
		Stage:         NewStageClient(cfg),
		UploadedFile:  NewUploadedFileClient(cfg),
		VersionEntry:  NewVersionEntryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		GeneratedCode.
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
		c.GeneratedCode, c.Project, c.SafetyManual, c.Stage, c.UploadedFile,
		c.VersionEntry,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.GeneratedCode, c.Project, c.SafetyManual, c.Stage, c.UploadedFile,
		c.VersionEntry,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *GeneratedCodeMutation:
		return c.GeneratedCode.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *SafetyManualMutation:
		return c.SafetyManual.mutate(ctx, m)
	case *StageMutation:
		return c.Stage.mutate(ctx, m)
	case *UploadedFileMutation:
		return c.UploadedFile.mutate(ctx, m)
	case *VersionEntryMutation:
		return c.VersionEntry.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// GeneratedCodeClient is a client for the GeneratedCode schema.
type GeneratedCodeClient struct {
	config
}

// NewGeneratedCodeClient returns a client for the GeneratedCode from the given config.
func NewGeneratedCodeClient(c config) *GeneratedCodeClient {
	return &GeneratedCodeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `generatedcode.Hooks(f(g(h())))`.
func (c *GeneratedCodeClient) Use(hooks ...Hook) {
	c.hooks.GeneratedCode = append(c.hooks.GeneratedCode, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `generatedcode.Intercept(f(g(h())))`.
func (c *GeneratedCodeClient) Intercept(interceptors ...Interceptor) {
	c.inters.GeneratedCode = append(c.inters.GeneratedCode, interceptors...)
}

// Create returns a builder for creating a GeneratedCode entity.
func (c *GeneratedCodeClient) Create() *GeneratedCodeCreate {
	mutation := newGeneratedCodeMutation(c.config, OpCreate)
	return &GeneratedCodeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GeneratedCode entities.
func (c *GeneratedCodeClient) CreateBulk(builders ...*GeneratedCodeCreate) *GeneratedCodeCreateBulk {
	return &GeneratedCodeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GeneratedCodeClient) MapCreateBulk(slice any, setFunc func(*GeneratedCodeCreate, int)) *GeneratedCodeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GeneratedCodeCreateBulk{err: fmt.Errorf("calling to GeneratedCodeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GeneratedCodeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GeneratedCodeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GeneratedCode.
func (c *GeneratedCodeClient) Update() *GeneratedCodeUpdate {
	mutation := newGeneratedCodeMutation(c.config, OpUpdate)
	return &GeneratedCodeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GeneratedCodeClient) UpdateOne(_m *GeneratedCode) *GeneratedCodeUpdateOne {
	mutation := newGeneratedCodeMutation(c.config, OpUpdateOne, withGeneratedCode(_m))
	return &GeneratedCodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GeneratedCodeClient) UpdateOneID(id int) *GeneratedCodeUpdateOne {
	mutation := newGeneratedCodeMutation(c.config, OpUpdateOne, withGeneratedCodeID(id))
	return &GeneratedCodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GeneratedCode.
func (c *GeneratedCodeClient) Delete() *GeneratedCodeDelete {
	mutation := newGeneratedCodeMutation(c.config, OpDelete)
	return &GeneratedCodeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GeneratedCodeClient) DeleteOne(_m *GeneratedCode) *GeneratedCodeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GeneratedCodeClient) DeleteOneID(id int) *GeneratedCodeDeleteOne {
	builder := c.Delete().Where(generatedcode.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GeneratedCodeDeleteOne{builder}
}

// Query returns a query builder for GeneratedCode.
func (c *GeneratedCodeClient) Query() *GeneratedCodeQuery {
	return &GeneratedCodeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGeneratedCode},
		inters: c.Interceptors(),
	}
}

// Get returns a GeneratedCode entity by its id.
func (c *GeneratedCodeClient) Get(ctx context.Context, id int) (*GeneratedCode, error) {
	return c.Query().Where(generatedcode.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GeneratedCodeClient) GetX(ctx context.Context, id int) *GeneratedCode {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a GeneratedCode.
func (c *GeneratedCodeClient) QueryProject(_m *GeneratedCode) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(generatedcode.Table, generatedcode.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, generatedcode.ProjectTable, generatedcode.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStage queries the stage edge of a GeneratedCode.
func (c *GeneratedCodeClient) QueryStage(_m *GeneratedCode) *StageQuery {
	query := (&StageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(generatedcode.Table, generatedcode.FieldID, id),
			sqlgraph.To(stage.Table, stage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, generatedcode.StageTable, generatedcode.StageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GeneratedCodeClient) Hooks() []Hook {
	return c.hooks.GeneratedCode
}

// Interceptors returns the client interceptors.
func (c *GeneratedCodeClient) Interceptors() []Interceptor {
	return c.inters.GeneratedCode
}

func (c *GeneratedCodeClient) mutate(ctx context.Context, m *GeneratedCodeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GeneratedCodeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GeneratedCodeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GeneratedCodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GeneratedCodeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GeneratedCode mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id int) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id int) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id int) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id int) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStages queries the stages edge of a Project.
func (c *ProjectClient) QueryStages(_m *Project) *StageQuery {
	query := (&StageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(stage.Table, stage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.StagesTable, project.StagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCodes queries the codes edge of a Project.
func (c *ProjectClient) QueryCodes(_m *Project) *GeneratedCodeQuery {
	query := (&GeneratedCodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(generatedcode.Table, generatedcode.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.CodesTable, project.CodesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySafetyManuals queries the safety_manuals edge of a Project.
func (c *ProjectClient) QuerySafetyManuals(_m *Project) *SafetyManualQuery {
	query := (&SafetyManualClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(safetymanual.Table, safetymanual.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.SafetyManualsTable, project.SafetyManualsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUploadedFiles queries the uploaded_files edge of a Project.
func (c *ProjectClient) QueryUploadedFiles(_m *Project) *UploadedFileQuery {
	query := (&UploadedFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(uploadedfile.Table, uploadedfile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.UploadedFilesTable, project.UploadedFilesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// SafetyManualClient is a client for the SafetyManual schema.
type SafetyManualClient struct {
	config
}

// NewSafetyManualClient returns a client for the SafetyManual from the given config.
func NewSafetyManualClient(c config) *SafetyManualClient {
	return &SafetyManualClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `safetymanual.Hooks(f(g(h())))`.
func (c *SafetyManualClient) Use(hooks ...Hook) {
	c.hooks.SafetyManual = append(c.hooks.SafetyManual, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `safetymanual.Intercept(f(g(h())))`.
func (c *SafetyManualClient) Intercept(interceptors ...Interceptor) {
	c.inters.SafetyManual = append(c.inters.SafetyManual, interceptors...)
}

// Create returns a builder for creating a SafetyManual entity.
func (c *SafetyManualClient) Create() *SafetyManualCreate {
	mutation := newSafetyManualMutation(c.config, OpCreate)
	return &SafetyManualCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SafetyManual entities.
func (c *SafetyManualClient) CreateBulk(builders ...*SafetyManualCreate) *SafetyManualCreateBulk {
	return &SafetyManualCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SafetyManualClient) MapCreateBulk(slice any, setFunc func(*SafetyManualCreate, int)) *SafetyManualCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SafetyManualCreateBulk{err: fmt.Errorf("calling to SafetyManualClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SafetyManualCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SafetyManualCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SafetyManual.
func (c *SafetyManualClient) Update() *SafetyManualUpdate {
	mutation := newSafetyManualMutation(c.config, OpUpdate)
	return &SafetyManualUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SafetyManualClient) UpdateOne(_m *SafetyManual) *SafetyManualUpdateOne {
	mutation := newSafetyManualMutation(c.config, OpUpdateOne, withSafetyManual(_m))
	return &SafetyManualUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SafetyManualClient) UpdateOneID(id int) *SafetyManualUpdateOne {
	mutation := newSafetyManualMutation(c.config, OpUpdateOne, withSafetyManualID(id))
	return &SafetyManualUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SafetyManual.
func (c *SafetyManualClient) Delete() *SafetyManualDelete {
	mutation := newSafetyManualMutation(c.config, OpDelete)
	return &SafetyManualDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SafetyManualClient) DeleteOne(_m *SafetyManual) *SafetyManualDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SafetyManualClient) DeleteOneID(id int) *SafetyManualDeleteOne {
	builder := c.Delete().Where(safetymanual.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SafetyManualDeleteOne{builder}
}

// Query returns a query builder for SafetyManual.
func (c *SafetyManualClient) Query() *SafetyManualQuery {
	return &SafetyManualQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSafetyManual},
		inters: c.Interceptors(),
	}
}

// Get returns a SafetyManual entity by its id.
func (c *SafetyManualClient) Get(ctx context.Context, id int) (*SafetyManual, error) {
	return c.Query().Where(safetymanual.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SafetyManualClient) GetX(ctx context.Context, id int) *SafetyManual {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a SafetyManual.
func (c *SafetyManualClient) QueryProject(_m *SafetyManual) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(safetymanual.Table, safetymanual.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, safetymanual.ProjectTable, safetymanual.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SafetyManualClient) Hooks() []Hook {
	return c.hooks.SafetyManual
}

// Interceptors returns the client interceptors.
func (c *SafetyManualClient) Interceptors() []Interceptor {
	return c.inters.SafetyManual
}

func (c *SafetyManualClient) mutate(ctx context.Context, m *SafetyManualMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SafetyManualCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SafetyManualUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SafetyManualUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SafetyManualDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SafetyManual mutation op: %q", m.Op())
	}
}

// StageClient is a client for the Stage schema.
type StageClient struct {
	config
}

// NewStageClient returns a client for the Stage from the given config.
func NewStageClient(c config) *StageClient {
	return &StageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stage.Hooks(f(g(h())))`.
func (c *StageClient) Use(hooks ...Hook) {
	c.hooks.Stage = append(c.hooks.Stage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stage.Intercept(f(g(h())))`.
func (c *StageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Stage = append(c.inters.Stage, interceptors...)
}

// Create returns a builder for creating a Stage entity.
func (c *StageClient) Create() *StageCreate {
	mutation := newStageMutation(c.config, OpCreate)
	return &StageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Stage entities.
func (c *StageClient) CreateBulk(builders ...*StageCreate) *StageCreateBulk {
	return &StageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StageClient) MapCreateBulk(slice any, setFunc func(*StageCreate, int)) *StageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StageCreateBulk{err: fmt.Errorf("calling to StageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Stage.
func (c *StageClient) Update() *StageUpdate {
	mutation := newStageMutation(c.config, OpUpdate)
	return &StageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StageClient) UpdateOne(_m *Stage) *StageUpdateOne {
	mutation := newStageMutation(c.config, OpUpdateOne, withStage(_m))
	return &StageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StageClient) UpdateOneID(id int) *StageUpdateOne {
	mutation := newStageMutation(c.config, OpUpdateOne, withStageID(id))
	return &StageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Stage.
func (c *StageClient) Delete() *StageDelete {
	mutation := newStageMutation(c.config, OpDelete)
	return &StageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StageClient) DeleteOne(_m *Stage) *StageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StageClient) DeleteOneID(id int) *StageDeleteOne {
	builder := c.Delete().Where(stage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StageDeleteOne{builder}
}

// Query returns a query builder for Stage.
func (c *StageClient) Query() *StageQuery {
	return &StageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStage},
		inters: c.Interceptors(),
	}
}

// Get returns a Stage entity by its id.
func (c *StageClient) Get(ctx context.Context, id int) (*Stage, error) {
	return c.Query().Where(stage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StageClient) GetX(ctx context.Context, id int) *Stage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Stage.
func (c *StageClient) QueryProject(_m *Stage) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stage.Table, stage.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, stage.ProjectTable, stage.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCodes queries the codes edge of a Stage.
func (c *StageClient) QueryCodes(_m *Stage) *GeneratedCodeQuery {
	query := (&GeneratedCodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stage.Table, stage.FieldID, id),
			sqlgraph.To(generatedcode.Table, generatedcode.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stage.CodesTable, stage.CodesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StageClient) Hooks() []Hook {
	return c.hooks.Stage
}

// Interceptors returns the client interceptors.
func (c *StageClient) Interceptors() []Interceptor {
	return c.inters.Stage
}

func (c *StageClient) mutate(ctx context.Context, m *StageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Stage mutation op: %q", m.Op())
	}
}

// UploadedFileClient is a client for the UploadedFile schema.
type UploadedFileClient struct {
	config
}

// NewUploadedFileClient returns a client for the UploadedFile from the given config.
func NewUploadedFileClient(c config) *UploadedFileClient {
	return &UploadedFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `uploadedfile.Hooks(f(g(h())))`.
func (c *UploadedFileClient) Use(hooks ...Hook) {
	c.hooks.UploadedFile = append(c.hooks.UploadedFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `uploadedfile.Intercept(f(g(h())))`.
func (c *UploadedFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.UploadedFile = append(c.inters.UploadedFile, interceptors...)
}

// Create returns a builder for creating a UploadedFile entity.
func (c *UploadedFileClient) Create() *UploadedFileCreate {
	mutation := newUploadedFileMutation(c.config, OpCreate)
	return &UploadedFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UploadedFile entities.
func (c *UploadedFileClient) CreateBulk(builders ...*UploadedFileCreate) *UploadedFileCreateBulk {
	return &UploadedFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UploadedFileClient) MapCreateBulk(slice any, setFunc func(*UploadedFileCreate, int)) *UploadedFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UploadedFileCreateBulk{err: fmt.Errorf("calling to UploadedFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UploadedFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UploadedFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UploadedFile.
func (c *UploadedFileClient) Update() *UploadedFileUpdate {
	mutation := newUploadedFileMutation(c.config, OpUpdate)
	return &UploadedFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UploadedFileClient) UpdateOne(_m *UploadedFile) *UploadedFileUpdateOne {
	mutation := newUploadedFileMutation(c.config, OpUpdateOne, withUploadedFile(_m))
	return &UploadedFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UploadedFileClient) UpdateOneID(id int) *UploadedFileUpdateOne {
	mutation := newUploadedFileMutation(c.config, OpUpdateOne, withUploadedFileID(id))
	return &UploadedFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UploadedFile.
func (c *UploadedFileClient) Delete() *UploadedFileDelete {
	mutation := newUploadedFileMutation(c.config, OpDelete)
	return &UploadedFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UploadedFileClient) DeleteOne(_m *UploadedFile) *UploadedFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UploadedFileClient) DeleteOneID(id int) *UploadedFileDeleteOne {
	builder := c.Delete().Where(uploadedfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UploadedFileDeleteOne{builder}
}

// Query returns a query builder for UploadedFile.
func (c *UploadedFileClient) Query() *UploadedFileQuery {
	return &UploadedFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUploadedFile},
		inters: c.Interceptors(),
	}
}

// Get returns a UploadedFile entity by its id.
func (c *UploadedFileClient) Get(ctx context.Context, id int) (*UploadedFile, error) {
	return c.Query().Where(uploadedfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UploadedFileClient) GetX(ctx context.Context, id int) *UploadedFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a UploadedFile.
func (c *UploadedFileClient) QueryProject(_m *UploadedFile) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(uploadedfile.Table, uploadedfile.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, uploadedfile.ProjectTable, uploadedfile.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UploadedFileClient) Hooks() []Hook {
	return c.hooks.UploadedFile
}

// Interceptors returns the client interceptors.
func (c *UploadedFileClient) Interceptors() []Interceptor {
	return c.inters.UploadedFile
}

func (c *UploadedFileClient) mutate(ctx context.Context, m *UploadedFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UploadedFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UploadedFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UploadedFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UploadedFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UploadedFile mutation op: %q", m.Op())
	}
}

// VersionEntryClient is a client for the VersionEntry schema.
type VersionEntryClient struct {
	config
}

// NewVersionEntryClient returns a client for the VersionEntry from the given config.
func NewVersionEntryClient(c config) *VersionEntryClient {
	return &VersionEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `versionentry.Hooks(f(g(h())))`.
func (c *VersionEntryClient) Use(hooks ...Hook) {
	c.hooks.VersionEntry = append(c.hooks.VersionEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `versionentry.Intercept(f(g(h())))`.
func (c *VersionEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.VersionEntry = append(c.inters.VersionEntry, interceptors...)
}

// Create returns a builder for creating a VersionEntry entity.
func (c *VersionEntryClient) Create() *VersionEntryCreate {
	mutation := newVersionEntryMutation(c.config, OpCreate)
	return &VersionEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VersionEntry entities.
func (c *VersionEntryClient) CreateBulk(builders ...*VersionEntryCreate) *VersionEntryCreateBulk {
	return &VersionEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VersionEntryClient) MapCreateBulk(slice any, setFunc func(*VersionEntryCreate, int)) *VersionEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VersionEntryCreateBulk{err: fmt.Errorf("calling to VersionEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VersionEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VersionEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VersionEntry.
func (c *VersionEntryClient) Update() *VersionEntryUpdate {
	mutation := newVersionEntryMutation(c.config, OpUpdate)
	return &VersionEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VersionEntryClient) UpdateOne(_m *VersionEntry) *VersionEntryUpdateOne {
	mutation := newVersionEntryMutation(c.config, OpUpdateOne, withVersionEntry(_m))
	return &VersionEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VersionEntryClient) UpdateOneID(id int) *VersionEntryUpdateOne {
	mutation := newVersionEntryMutation(c.config, OpUpdateOne, withVersionEntryID(id))
	return &VersionEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VersionEntry.
func (c *VersionEntryClient) Delete() *VersionEntryDelete {
	mutation := newVersionEntryMutation(c.config, OpDelete)
	return &VersionEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VersionEntryClient) DeleteOne(_m *VersionEntry) *VersionEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VersionEntryClient) DeleteOneID(id int) *VersionEntryDeleteOne {
	builder := c.Delete().Where(versionentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VersionEntryDeleteOne{builder}
}

// Query returns a query builder for VersionEntry.
func (c *VersionEntryClient) Query() *VersionEntryQuery {
	return &VersionEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVersionEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a VersionEntry entity by its id.
func (c *VersionEntryClient) Get(ctx context.Context, id int) (*VersionEntry, error) {
	return c.Query().Where(versionentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VersionEntryClient) GetX(ctx context.Context, id int) *VersionEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VersionEntryClient) Hooks() []Hook {
	return c.hooks.VersionEntry
}

// Interceptors returns the client interceptors.
func (c *VersionEntryClient) Interceptors() []Interceptor {
	return c.inters.VersionEntry
}

func (c *VersionEntryClient) mutate(ctx context.Context, m *VersionEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VersionEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VersionEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VersionEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VersionEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VersionEntry mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		GeneratedCode, Project, SafetyManual, Stage, UploadedFile,
		VersionEntry []ent.Hook
	}
	inters struct {
		GeneratedCode, Project, SafetyManual, Stage, UploadedFile,
		VersionEntry []ent.Interceptor
	}
)
