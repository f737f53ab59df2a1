// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/missionloop/groundcontrol/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/missionloop/groundcontrol/ent/agentidentity"
	"github.com/missionloop/groundcontrol/ent/approval"
	"github.com/missionloop/groundcontrol/ent/artifact"
	"github.com/missionloop/groundcontrol/ent/authsession"
	"github.com/missionloop/groundcontrol/ent/capabilitytoken"
	"github.com/missionloop/groundcontrol/ent/deadletter"
	"github.com/missionloop/groundcontrol/ent/delegationedge"
	"github.com/missionloop/groundcontrol/ent/event"
	"github.com/missionloop/groundcontrol/ent/evidencemanifest"
	"github.com/missionloop/groundcontrol/ent/incident"
	"github.com/missionloop/groundcontrol/ent/incidentlearning"
	"github.com/missionloop/groundcontrol/ent/lesson"
	"github.com/missionloop/groundcontrol/ent/owner"
	"github.com/missionloop/groundcontrol/ent/principal"
	"github.com/missionloop/groundcontrol/ent/ratelimitstreak"
	"github.com/missionloop/groundcontrol/ent/room"
	"github.com/missionloop/groundcontrol/ent/run"
	"github.com/missionloop/groundcontrol/ent/scorecard"
	"github.com/missionloop/groundcontrol/ent/secret"
	"github.com/missionloop/groundcontrol/ent/skillentry"
	"github.com/missionloop/groundcontrol/ent/step"
	"github.com/missionloop/groundcontrol/ent/streamhead"
	"github.com/missionloop/groundcontrol/ent/thread"
	"github.com/missionloop/groundcontrol/ent/toolcall"
	"github.com/missionloop/groundcontrol/ent/workitemlease"

	stdsql "database/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentIdentity is the client for interacting with the AgentIdentity builders.
	AgentIdentity *AgentIdentityClient
	// Approval is the client for interacting with the Approval builders.
	Approval *ApprovalClient
	// Artifact is the client for interacting with the Artifact builders.
	Artifact *ArtifactClient
	// AuthSession is the client for interacting with the AuthSession builders.
	AuthSession *AuthSessionClient
	// CapabilityToken is the client for interacting with the CapabilityToken builders.
	CapabilityToken *CapabilityTokenClient
	// DeadLetter is the client for interacting with the DeadLetter builders.
	DeadLetter *DeadLetterClient
	// DelegationEdge is the client for interacting with the DelegationEdge builders.
	DelegationEdge *DelegationEdgeClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// EvidenceManifest is the client for interacting with the EvidenceManifest builders.
	EvidenceManifest *EvidenceManifestClient
	// Incident is the client for interacting with the Incident builders.
	Incident *IncidentClient
	// IncidentLearning is the client for interacting with the IncidentLearning builders.
	IncidentLearning *IncidentLearningClient
	// Lesson is the client for interacting with the Lesson builders.
	Lesson *LessonClient
	// Owner is the client for interacting with the Owner builders.
	Owner *OwnerClient
	// Principal is the client for interacting with the Principal builders.
	Principal *PrincipalClient
	// RateLimitStreak is the client for interacting with the RateLimitStreak builders.
	RateLimitStreak *RateLimitStreakClient
	// Room is the client for interacting with the Room builders.
	Room *RoomClient
	// Run is the client for interacting with the Run builders.
	Run *RunClient
	// Scorecard is the client for interacting with the Scorecard builders.
	Scorecard *ScorecardClient
	// Secret is the client for interacting with the Secret builders.
	Secret *SecretClient
	// SkillEntry is the client for interacting with the SkillEntry builders.
	SkillEntry *SkillEntryClient
	// Step is the client for interacting with the Step builders.
	Step *StepClient
	// StreamHead is the client for interacting with the StreamHead builders.
	StreamHead *StreamHeadClient
	// Thread is the client for interacting with the Thread builders.
	Thread *ThreadClient
	// ToolCall is the client for interacting with the ToolCall builders.
	ToolCall *ToolCallClient
	// WorkItemLease is the client for interacting with the WorkItemLease builders.
	WorkItemLease *WorkItemLeaseClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentIdentity = NewAgentIdentityClient(c.config)
	c.Approval = NewApprovalClient(c.config)
	c.Artifact = NewArtifactClient(c.config)
	c.AuthSession = NewAuthSessionClient(c.config)
	c.CapabilityToken = NewCapabilityTokenClient(c.config)
	c.DeadLetter = NewDeadLetterClient(c.config)
	c.DelegationEdge = NewDelegationEdgeClient(c.config)
	c.Event = NewEventClient(c.config)
	c.EvidenceManifest = NewEvidenceManifestClient(c.config)
	c.Incident = NewIncidentClient(c.config)
	c.IncidentLearning = NewIncidentLearningClient(c.config)
	c.Lesson = NewLessonClient(c.config)
	c.Owner = NewOwnerClient(c.config)
	c.Principal = NewPrincipalClient(c.config)
	c.RateLimitStreak = NewRateLimitStreakClient(c.config)
	c.Room = NewRoomClient(c.config)
	c.Run = NewRunClient(c.config)
	c.Scorecard = NewScorecardClient(c.config)
	c.Secret = NewSecretClient(c.config)
	c.SkillEntry = NewSkillEntryClient(c.config)
	c.Step = NewStepClient(c.config)
	c.StreamHead = NewStreamHeadClient(c.config)
	c.Thread = NewThreadClient(c.config)
	c.ToolCall = NewToolCallClient(c.config)
	c.WorkItemLease = NewWorkItemLeaseClient(c.config)
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
		AgentIdentity:    NewAgentIdentityClient(cfg),
		Approval:         NewApprovalClient(cfg),
		Artifact:         NewArtifactClient(cfg),
		AuthSession:      NewAuthSessionClient(cfg),
		CapabilityToken:  NewCapabilityTokenClient(cfg),
		DeadLetter:       NewDeadLetterClient(cfg),
		DelegationEdge:   NewDelegationEdgeClient(cfg),
		Event:            NewEventClient(cfg),
		EvidenceManifest: NewEvidenceManifestClient(cfg),
		Incident:         NewIncidentClient(cfg),
		IncidentLearning: NewIncidentLearningClient(cfg),
		Lesson:           NewLessonClient(cfg),
		Owner:            NewOwnerClient(cfg),
		Principal:        NewPrincipalClient(cfg),
		RateLimitStreak:  NewRateLimitStreakClient(cfg),
		Room:             NewRoomClient(cfg),
		Run:              NewRunClient(cfg),
		Scorecard:        NewScorecardClient(cfg),
		Secret:           NewSecretClient(cfg),
		SkillEntry:       NewSkillEntryClient(cfg),
		Step:             NewStepClient(cfg),
		StreamHead:       NewStreamHeadClient(cfg),
		Thread:           NewThreadClient(cfg),
		ToolCall:         NewToolCallClient(cfg),
		WorkItemLease:    NewWorkItemLeaseClient(cfg),
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
		AgentIdentity:    NewAgentIdentityClient(cfg),
		Approval:         NewApprovalClient(cfg),
		Artifact:         NewArtifactClient(cfg),
		AuthSession:      NewAuthSessionClient(cfg),
		CapabilityToken:  NewCapabilityTokenClient(cfg),
		DeadLetter:       NewDeadLetterClient(cfg),
		DelegationEdge:   NewDelegationEdgeClient(cfg),
		Event:            NewEventClient(cfg),
		EvidenceManifest: NewEvidenceManifestClient(cfg),
		Incident:         NewIncidentClient(cfg),
		IncidentLearning: NewIncidentLearningClient(cfg),
		Lesson:           NewLessonClient(cfg),
		Owner:            NewOwnerClient(cfg),
		Principal:        NewPrincipalClient(cfg),
		RateLimitStreak:  NewRateLimitStreakClient(cfg),
		Room:             NewRoomClient(cfg),
		Run:              NewRunClient(cfg),
		Scorecard:        NewScorecardClient(cfg),
		Secret:           NewSecretClient(cfg),
		SkillEntry:       NewSkillEntryClient(cfg),
		Step:             NewStepClient(cfg),
		StreamHead:       NewStreamHeadClient(cfg),
		Thread:           NewThreadClient(cfg),
		ToolCall:         NewToolCallClient(cfg),
		WorkItemLease:    NewWorkItemLeaseClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentIdentity.
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
		c.AgentIdentity, c.Approval, c.Artifact, c.AuthSession, c.CapabilityToken,
		c.DeadLetter, c.DelegationEdge, c.Event, c.EvidenceManifest, c.Incident,
		c.IncidentLearning, c.Lesson, c.Owner, c.Principal, c.RateLimitStreak, c.Room,
		c.Run, c.Scorecard, c.Secret, c.SkillEntry, c.Step, c.StreamHead, c.Thread,
		c.ToolCall, c.WorkItemLease,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentIdentity, c.Approval, c.Artifact, c.AuthSession, c.CapabilityToken,
		c.DeadLetter, c.DelegationEdge, c.Event, c.EvidenceManifest, c.Incident,
		c.IncidentLearning, c.Lesson, c.Owner, c.Principal, c.RateLimitStreak, c.Room,
		c.Run, c.Scorecard, c.Secret, c.SkillEntry, c.Step, c.StreamHead, c.Thread,
		c.ToolCall, c.WorkItemLease,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentIdentityMutation:
		return c.AgentIdentity.mutate(ctx, m)
	case *ApprovalMutation:
		return c.Approval.mutate(ctx, m)
	case *ArtifactMutation:
		return c.Artifact.mutate(ctx, m)
	case *AuthSessionMutation:
		return c.AuthSession.mutate(ctx, m)
	case *CapabilityTokenMutation:
		return c.CapabilityToken.mutate(ctx, m)
	case *DeadLetterMutation:
		return c.DeadLetter.mutate(ctx, m)
	case *DelegationEdgeMutation:
		return c.DelegationEdge.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *EvidenceManifestMutation:
		return c.EvidenceManifest.mutate(ctx, m)
	case *IncidentMutation:
		return c.Incident.mutate(ctx, m)
	case *IncidentLearningMutation:
		return c.IncidentLearning.mutate(ctx, m)
	case *LessonMutation:
		return c.Lesson.mutate(ctx, m)
	case *OwnerMutation:
		return c.Owner.mutate(ctx, m)
	case *PrincipalMutation:
		return c.Principal.mutate(ctx, m)
	case *RateLimitStreakMutation:
		return c.RateLimitStreak.mutate(ctx, m)
	case *RoomMutation:
		return c.Room.mutate(ctx, m)
	case *RunMutation:
		return c.Run.mutate(ctx, m)
	case *ScorecardMutation:
		return c.Scorecard.mutate(ctx, m)
	case *SecretMutation:
		return c.Secret.mutate(ctx, m)
	case *SkillEntryMutation:
		return c.SkillEntry.mutate(ctx, m)
	case *StepMutation:
		return c.Step.mutate(ctx, m)
	case *StreamHeadMutation:
		return c.StreamHead.mutate(ctx, m)
	case *ThreadMutation:
		return c.Thread.mutate(ctx, m)
	case *ToolCallMutation:
		return c.ToolCall.mutate(ctx, m)
	case *WorkItemLeaseMutation:
		return c.WorkItemLease.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentIdentityClient is a client for the AgentIdentity schema.
type AgentIdentityClient struct {
	config
}

// NewAgentIdentityClient returns a client for the AgentIdentity from the given config.
func NewAgentIdentityClient(c config) *AgentIdentityClient {
	return &AgentIdentityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentidentity.Hooks(f(g(h())))`.
func (c *AgentIdentityClient) Use(hooks ...Hook) {
	c.hooks.AgentIdentity = append(c.hooks.AgentIdentity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentidentity.Intercept(f(g(h())))`.
func (c *AgentIdentityClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentIdentity = append(c.inters.AgentIdentity, interceptors...)
}

// Create returns a builder for creating a AgentIdentity entity.
func (c *AgentIdentityClient) Create() *AgentIdentityCreate {
	mutation := newAgentIdentityMutation(c.config, OpCreate)
	return &AgentIdentityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentIdentity entities.
func (c *AgentIdentityClient) CreateBulk(builders ...*AgentIdentityCreate) *AgentIdentityCreateBulk {
	return &AgentIdentityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentIdentityClient) MapCreateBulk(slice any, setFunc func(*AgentIdentityCreate, int)) *AgentIdentityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentIdentityCreateBulk{err: fmt.Errorf("calling to AgentIdentityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentIdentityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentIdentityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentIdentity.
func (c *AgentIdentityClient) Update() *AgentIdentityUpdate {
	mutation := newAgentIdentityMutation(c.config, OpUpdate)
	return &AgentIdentityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentIdentityClient) UpdateOne(_m *AgentIdentity) *AgentIdentityUpdateOne {
	mutation := newAgentIdentityMutation(c.config, OpUpdateOne, withAgentIdentity(_m))
	return &AgentIdentityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentIdentityClient) UpdateOneID(id string) *AgentIdentityUpdateOne {
	mutation := newAgentIdentityMutation(c.config, OpUpdateOne, withAgentIdentityID(id))
	return &AgentIdentityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentIdentity.
func (c *AgentIdentityClient) Delete() *AgentIdentityDelete {
	mutation := newAgentIdentityMutation(c.config, OpDelete)
	return &AgentIdentityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentIdentityClient) DeleteOne(_m *AgentIdentity) *AgentIdentityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentIdentityClient) DeleteOneID(id string) *AgentIdentityDeleteOne {
	builder := c.Delete().Where(agentidentity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentIdentityDeleteOne{builder}
}

// Query returns a query builder for AgentIdentity.
func (c *AgentIdentityClient) Query() *AgentIdentityQuery {
	return &AgentIdentityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentIdentity},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentIdentity entity by its id.
func (c *AgentIdentityClient) Get(ctx context.Context, id string) (*AgentIdentity, error) {
	return c.Query().Where(agentidentity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentIdentityClient) GetX(ctx context.Context, id string) *AgentIdentity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentIdentityClient) Hooks() []Hook {
	return c.hooks.AgentIdentity
}

// Interceptors returns the client interceptors.
func (c *AgentIdentityClient) Interceptors() []Interceptor {
	return c.inters.AgentIdentity
}

func (c *AgentIdentityClient) mutate(ctx context.Context, m *AgentIdentityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentIdentityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentIdentityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentIdentityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentIdentityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentIdentity mutation op: %q", m.Op())
	}
}

// ApprovalClient is a client for the Approval schema.
type ApprovalClient struct {
	config
}

// NewApprovalClient returns a client for the Approval from the given config.
func NewApprovalClient(c config) *ApprovalClient {
	return &ApprovalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `approval.Hooks(f(g(h())))`.
func (c *ApprovalClient) Use(hooks ...Hook) {
	c.hooks.Approval = append(c.hooks.Approval, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `approval.Intercept(f(g(h())))`.
func (c *ApprovalClient) Intercept(interceptors ...Interceptor) {
	c.inters.Approval = append(c.inters.Approval, interceptors...)
}

// Create returns a builder for creating a Approval entity.
func (c *ApprovalClient) Create() *ApprovalCreate {
	mutation := newApprovalMutation(c.config, OpCreate)
	return &ApprovalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Approval entities.
func (c *ApprovalClient) CreateBulk(builders ...*ApprovalCreate) *ApprovalCreateBulk {
	return &ApprovalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApprovalClient) MapCreateBulk(slice any, setFunc func(*ApprovalCreate, int)) *ApprovalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApprovalCreateBulk{err: fmt.Errorf("calling to ApprovalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApprovalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApprovalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Approval.
func (c *ApprovalClient) Update() *ApprovalUpdate {
	mutation := newApprovalMutation(c.config, OpUpdate)
	return &ApprovalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApprovalClient) UpdateOne(_m *Approval) *ApprovalUpdateOne {
	mutation := newApprovalMutation(c.config, OpUpdateOne, withApproval(_m))
	return &ApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApprovalClient) UpdateOneID(id string) *ApprovalUpdateOne {
	mutation := newApprovalMutation(c.config, OpUpdateOne, withApprovalID(id))
	return &ApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Approval.
func (c *ApprovalClient) Delete() *ApprovalDelete {
	mutation := newApprovalMutation(c.config, OpDelete)
	return &ApprovalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApprovalClient) DeleteOne(_m *Approval) *ApprovalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApprovalClient) DeleteOneID(id string) *ApprovalDeleteOne {
	builder := c.Delete().Where(approval.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApprovalDeleteOne{builder}
}

// Query returns a query builder for Approval.
func (c *ApprovalClient) Query() *ApprovalQuery {
	return &ApprovalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApproval},
		inters: c.Interceptors(),
	}
}

// Get returns a Approval entity by its id.
func (c *ApprovalClient) Get(ctx context.Context, id string) (*Approval, error) {
	return c.Query().Where(approval.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApprovalClient) GetX(ctx context.Context, id string) *Approval {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ApprovalClient) Hooks() []Hook {
	return c.hooks.Approval
}

// Interceptors returns the client interceptors.
func (c *ApprovalClient) Interceptors() []Interceptor {
	return c.inters.Approval
}

func (c *ApprovalClient) mutate(ctx context.Context, m *ApprovalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApprovalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApprovalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApprovalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Approval mutation op: %q", m.Op())
	}
}

// ArtifactClient is a client for the Artifact schema.
type ArtifactClient struct {
	config
}

// NewArtifactClient returns a client for the Artifact from the given config.
func NewArtifactClient(c config) *ArtifactClient {
	return &ArtifactClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `artifact.Hooks(f(g(h())))`.
func (c *ArtifactClient) Use(hooks ...Hook) {
	c.hooks.Artifact = append(c.hooks.Artifact, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `artifact.Intercept(f(g(h())))`.
func (c *ArtifactClient) Intercept(interceptors ...Interceptor) {
	c.inters.Artifact = append(c.inters.Artifact, interceptors...)
}

// Create returns a builder for creating a Artifact entity.
func (c *ArtifactClient) Create() *ArtifactCreate {
	mutation := newArtifactMutation(c.config, OpCreate)
	return &ArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Artifact entities.
func (c *ArtifactClient) CreateBulk(builders ...*ArtifactCreate) *ArtifactCreateBulk {
	return &ArtifactCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ArtifactClient) MapCreateBulk(slice any, setFunc func(*ArtifactCreate, int)) *ArtifactCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ArtifactCreateBulk{err: fmt.Errorf("calling to ArtifactClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ArtifactCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ArtifactCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Artifact.
func (c *ArtifactClient) Update() *ArtifactUpdate {
	mutation := newArtifactMutation(c.config, OpUpdate)
	return &ArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ArtifactClient) UpdateOne(_m *Artifact) *ArtifactUpdateOne {
	mutation := newArtifactMutation(c.config, OpUpdateOne, withArtifact(_m))
	return &ArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ArtifactClient) UpdateOneID(id string) *ArtifactUpdateOne {
	mutation := newArtifactMutation(c.config, OpUpdateOne, withArtifactID(id))
	return &ArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Artifact.
func (c *ArtifactClient) Delete() *ArtifactDelete {
	mutation := newArtifactMutation(c.config, OpDelete)
	return &ArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ArtifactClient) DeleteOne(_m *Artifact) *ArtifactDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ArtifactClient) DeleteOneID(id string) *ArtifactDeleteOne {
	builder := c.Delete().Where(artifact.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ArtifactDeleteOne{builder}
}

// Query returns a query builder for Artifact.
func (c *ArtifactClient) Query() *ArtifactQuery {
	return &ArtifactQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeArtifact},
		inters: c.Interceptors(),
	}
}

// Get returns a Artifact entity by its id.
func (c *ArtifactClient) Get(ctx context.Context, id string) (*Artifact, error) {
	return c.Query().Where(artifact.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ArtifactClient) GetX(ctx context.Context, id string) *Artifact {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ArtifactClient) Hooks() []Hook {
	return c.hooks.Artifact
}

// Interceptors returns the client interceptors.
func (c *ArtifactClient) Interceptors() []Interceptor {
	return c.inters.Artifact
}

func (c *ArtifactClient) mutate(ctx context.Context, m *ArtifactMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Artifact mutation op: %q", m.Op())
	}
}

// AuthSessionClient is a client for the AuthSession schema.
type AuthSessionClient struct {
	config
}

// NewAuthSessionClient returns a client for the AuthSession from the given config.
func NewAuthSessionClient(c config) *AuthSessionClient {
	return &AuthSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `authsession.Hooks(f(g(h())))`.
func (c *AuthSessionClient) Use(hooks ...Hook) {
	c.hooks.AuthSession = append(c.hooks.AuthSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `authsession.Intercept(f(g(h())))`.
func (c *AuthSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuthSession = append(c.inters.AuthSession, interceptors...)
}

// Create returns a builder for creating a AuthSession entity.
func (c *AuthSessionClient) Create() *AuthSessionCreate {
	mutation := newAuthSessionMutation(c.config, OpCreate)
	return &AuthSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuthSession entities.
func (c *AuthSessionClient) CreateBulk(builders ...*AuthSessionCreate) *AuthSessionCreateBulk {
	return &AuthSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuthSessionClient) MapCreateBulk(slice any, setFunc func(*AuthSessionCreate, int)) *AuthSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuthSessionCreateBulk{err: fmt.Errorf("calling to AuthSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuthSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuthSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuthSession.
func (c *AuthSessionClient) Update() *AuthSessionUpdate {
	mutation := newAuthSessionMutation(c.config, OpUpdate)
	return &AuthSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuthSessionClient) UpdateOne(_m *AuthSession) *AuthSessionUpdateOne {
	mutation := newAuthSessionMutation(c.config, OpUpdateOne, withAuthSession(_m))
	return &AuthSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuthSessionClient) UpdateOneID(id string) *AuthSessionUpdateOne {
	mutation := newAuthSessionMutation(c.config, OpUpdateOne, withAuthSessionID(id))
	return &AuthSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuthSession.
func (c *AuthSessionClient) Delete() *AuthSessionDelete {
	mutation := newAuthSessionMutation(c.config, OpDelete)
	return &AuthSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuthSessionClient) DeleteOne(_m *AuthSession) *AuthSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuthSessionClient) DeleteOneID(id string) *AuthSessionDeleteOne {
	builder := c.Delete().Where(authsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuthSessionDeleteOne{builder}
}

// Query returns a query builder for AuthSession.
func (c *AuthSessionClient) Query() *AuthSessionQuery {
	return &AuthSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuthSession},
		inters: c.Interceptors(),
	}
}

// Get returns a AuthSession entity by its id.
func (c *AuthSessionClient) Get(ctx context.Context, id string) (*AuthSession, error) {
	return c.Query().Where(authsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuthSessionClient) GetX(ctx context.Context, id string) *AuthSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuthSessionClient) Hooks() []Hook {
	return c.hooks.AuthSession
}

// Interceptors returns the client interceptors.
func (c *AuthSessionClient) Interceptors() []Interceptor {
	return c.inters.AuthSession
}

func (c *AuthSessionClient) mutate(ctx context.Context, m *AuthSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuthSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuthSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuthSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuthSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuthSession mutation op: %q", m.Op())
	}
}

// CapabilityTokenClient is a client for the CapabilityToken schema.
type CapabilityTokenClient struct {
	config
}

// NewCapabilityTokenClient returns a client for the CapabilityToken from the given config.
func NewCapabilityTokenClient(c config) *CapabilityTokenClient {
	return &CapabilityTokenClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `capabilitytoken.Hooks(f(g(h())))`.
func (c *CapabilityTokenClient) Use(hooks ...Hook) {
	c.hooks.CapabilityToken = append(c.hooks.CapabilityToken, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `capabilitytoken.Intercept(f(g(h())))`.
func (c *CapabilityTokenClient) Intercept(interceptors ...Interceptor) {
	c.inters.CapabilityToken = append(c.inters.CapabilityToken, interceptors...)
}

// Create returns a builder for creating a CapabilityToken entity.
func (c *CapabilityTokenClient) Create() *CapabilityTokenCreate {
	mutation := newCapabilityTokenMutation(c.config, OpCreate)
	return &CapabilityTokenCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CapabilityToken entities.
func (c *CapabilityTokenClient) CreateBulk(builders ...*CapabilityTokenCreate) *CapabilityTokenCreateBulk {
	return &CapabilityTokenCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CapabilityTokenClient) MapCreateBulk(slice any, setFunc func(*CapabilityTokenCreate, int)) *CapabilityTokenCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CapabilityTokenCreateBulk{err: fmt.Errorf("calling to CapabilityTokenClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CapabilityTokenCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CapabilityTokenCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CapabilityToken.
func (c *CapabilityTokenClient) Update() *CapabilityTokenUpdate {
	mutation := newCapabilityTokenMutation(c.config, OpUpdate)
	return &CapabilityTokenUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CapabilityTokenClient) UpdateOne(_m *CapabilityToken) *CapabilityTokenUpdateOne {
	mutation := newCapabilityTokenMutation(c.config, OpUpdateOne, withCapabilityToken(_m))
	return &CapabilityTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CapabilityTokenClient) UpdateOneID(id string) *CapabilityTokenUpdateOne {
	mutation := newCapabilityTokenMutation(c.config, OpUpdateOne, withCapabilityTokenID(id))
	return &CapabilityTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CapabilityToken.
func (c *CapabilityTokenClient) Delete() *CapabilityTokenDelete {
	mutation := newCapabilityTokenMutation(c.config, OpDelete)
	return &CapabilityTokenDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CapabilityTokenClient) DeleteOne(_m *CapabilityToken) *CapabilityTokenDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CapabilityTokenClient) DeleteOneID(id string) *CapabilityTokenDeleteOne {
	builder := c.Delete().Where(capabilitytoken.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CapabilityTokenDeleteOne{builder}
}

// Query returns a query builder for CapabilityToken.
func (c *CapabilityTokenClient) Query() *CapabilityTokenQuery {
	return &CapabilityTokenQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCapabilityToken},
		inters: c.Interceptors(),
	}
}

// Get returns a CapabilityToken entity by its id.
func (c *CapabilityTokenClient) Get(ctx context.Context, id string) (*CapabilityToken, error) {
	return c.Query().Where(capabilitytoken.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CapabilityTokenClient) GetX(ctx context.Context, id string) *CapabilityToken {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CapabilityTokenClient) Hooks() []Hook {
	return c.hooks.CapabilityToken
}

// Interceptors returns the client interceptors.
func (c *CapabilityTokenClient) Interceptors() []Interceptor {
	return c.inters.CapabilityToken
}

func (c *CapabilityTokenClient) mutate(ctx context.Context, m *CapabilityTokenMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CapabilityTokenCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CapabilityTokenUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CapabilityTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CapabilityTokenDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CapabilityToken mutation op: %q", m.Op())
	}
}

// DeadLetterClient is a client for the DeadLetter schema.
type DeadLetterClient struct {
	config
}

// NewDeadLetterClient returns a client for the DeadLetter from the given config.
func NewDeadLetterClient(c config) *DeadLetterClient {
	return &DeadLetterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `deadletter.Hooks(f(g(h())))`.
func (c *DeadLetterClient) Use(hooks ...Hook) {
	c.hooks.DeadLetter = append(c.hooks.DeadLetter, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `deadletter.Intercept(f(g(h())))`.
func (c *DeadLetterClient) Intercept(interceptors ...Interceptor) {
	c.inters.DeadLetter = append(c.inters.DeadLetter, interceptors...)
}

// Create returns a builder for creating a DeadLetter entity.
func (c *DeadLetterClient) Create() *DeadLetterCreate {
	mutation := newDeadLetterMutation(c.config, OpCreate)
	return &DeadLetterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DeadLetter entities.
func (c *DeadLetterClient) CreateBulk(builders ...*DeadLetterCreate) *DeadLetterCreateBulk {
	return &DeadLetterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeadLetterClient) MapCreateBulk(slice any, setFunc func(*DeadLetterCreate, int)) *DeadLetterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeadLetterCreateBulk{err: fmt.Errorf("calling to DeadLetterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeadLetterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeadLetterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DeadLetter.
func (c *DeadLetterClient) Update() *DeadLetterUpdate {
	mutation := newDeadLetterMutation(c.config, OpUpdate)
	return &DeadLetterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeadLetterClient) UpdateOne(_m *DeadLetter) *DeadLetterUpdateOne {
	mutation := newDeadLetterMutation(c.config, OpUpdateOne, withDeadLetter(_m))
	return &DeadLetterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeadLetterClient) UpdateOneID(id string) *DeadLetterUpdateOne {
	mutation := newDeadLetterMutation(c.config, OpUpdateOne, withDeadLetterID(id))
	return &DeadLetterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DeadLetter.
func (c *DeadLetterClient) Delete() *DeadLetterDelete {
	mutation := newDeadLetterMutation(c.config, OpDelete)
	return &DeadLetterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeadLetterClient) DeleteOne(_m *DeadLetter) *DeadLetterDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeadLetterClient) DeleteOneID(id string) *DeadLetterDeleteOne {
	builder := c.Delete().Where(deadletter.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeadLetterDeleteOne{builder}
}

// Query returns a query builder for DeadLetter.
func (c *DeadLetterClient) Query() *DeadLetterQuery {
	return &DeadLetterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeadLetter},
		inters: c.Interceptors(),
	}
}

// Get returns a DeadLetter entity by its id.
func (c *DeadLetterClient) Get(ctx context.Context, id string) (*DeadLetter, error) {
	return c.Query().Where(deadletter.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeadLetterClient) GetX(ctx context.Context, id string) *DeadLetter {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DeadLetterClient) Hooks() []Hook {
	return c.hooks.DeadLetter
}

// Interceptors returns the client interceptors.
func (c *DeadLetterClient) Interceptors() []Interceptor {
	return c.inters.DeadLetter
}

func (c *DeadLetterClient) mutate(ctx context.Context, m *DeadLetterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeadLetterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeadLetterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeadLetterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeadLetterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DeadLetter mutation op: %q", m.Op())
	}
}

// DelegationEdgeClient is a client for the DelegationEdge schema.
type DelegationEdgeClient struct {
	config
}

// NewDelegationEdgeClient returns a client for the DelegationEdge from the given config.
func NewDelegationEdgeClient(c config) *DelegationEdgeClient {
	return &DelegationEdgeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `delegationedge.Hooks(f(g(h())))`.
func (c *DelegationEdgeClient) Use(hooks ...Hook) {
	c.hooks.DelegationEdge = append(c.hooks.DelegationEdge, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `delegationedge.Intercept(f(g(h())))`.
func (c *DelegationEdgeClient) Intercept(interceptors ...Interceptor) {
	c.inters.DelegationEdge = append(c.inters.DelegationEdge, interceptors...)
}

// Create returns a builder for creating a DelegationEdge entity.
func (c *DelegationEdgeClient) Create() *DelegationEdgeCreate {
	mutation := newDelegationEdgeMutation(c.config, OpCreate)
	return &DelegationEdgeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DelegationEdge entities.
func (c *DelegationEdgeClient) CreateBulk(builders ...*DelegationEdgeCreate) *DelegationEdgeCreateBulk {
	return &DelegationEdgeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DelegationEdgeClient) MapCreateBulk(slice any, setFunc func(*DelegationEdgeCreate, int)) *DelegationEdgeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DelegationEdgeCreateBulk{err: fmt.Errorf("calling to DelegationEdgeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DelegationEdgeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DelegationEdgeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DelegationEdge.
func (c *DelegationEdgeClient) Update() *DelegationEdgeUpdate {
	mutation := newDelegationEdgeMutation(c.config, OpUpdate)
	return &DelegationEdgeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DelegationEdgeClient) UpdateOne(_m *DelegationEdge) *DelegationEdgeUpdateOne {
	mutation := newDelegationEdgeMutation(c.config, OpUpdateOne, withDelegationEdge(_m))
	return &DelegationEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DelegationEdgeClient) UpdateOneID(id string) *DelegationEdgeUpdateOne {
	mutation := newDelegationEdgeMutation(c.config, OpUpdateOne, withDelegationEdgeID(id))
	return &DelegationEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DelegationEdge.
func (c *DelegationEdgeClient) Delete() *DelegationEdgeDelete {
	mutation := newDelegationEdgeMutation(c.config, OpDelete)
	return &DelegationEdgeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DelegationEdgeClient) DeleteOne(_m *DelegationEdge) *DelegationEdgeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DelegationEdgeClient) DeleteOneID(id string) *DelegationEdgeDeleteOne {
	builder := c.Delete().Where(delegationedge.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DelegationEdgeDeleteOne{builder}
}

// Query returns a query builder for DelegationEdge.
func (c *DelegationEdgeClient) Query() *DelegationEdgeQuery {
	return &DelegationEdgeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDelegationEdge},
		inters: c.Interceptors(),
	}
}

// Get returns a DelegationEdge entity by its id.
func (c *DelegationEdgeClient) Get(ctx context.Context, id string) (*DelegationEdge, error) {
	return c.Query().Where(delegationedge.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DelegationEdgeClient) GetX(ctx context.Context, id string) *DelegationEdge {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DelegationEdgeClient) Hooks() []Hook {
	return c.hooks.DelegationEdge
}

// Interceptors returns the client interceptors.
func (c *DelegationEdgeClient) Interceptors() []Interceptor {
	return c.inters.DelegationEdge
}

func (c *DelegationEdgeClient) mutate(ctx context.Context, m *DelegationEdgeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DelegationEdgeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DelegationEdgeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DelegationEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DelegationEdgeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DelegationEdge mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id string) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id string) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id string) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id string) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// EvidenceManifestClient is a client for the EvidenceManifest schema.
type EvidenceManifestClient struct {
	config
}

// NewEvidenceManifestClient returns a client for the EvidenceManifest from the given config.
func NewEvidenceManifestClient(c config) *EvidenceManifestClient {
	return &EvidenceManifestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evidencemanifest.Hooks(f(g(h())))`.
func (c *EvidenceManifestClient) Use(hooks ...Hook) {
	c.hooks.EvidenceManifest = append(c.hooks.EvidenceManifest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evidencemanifest.Intercept(f(g(h())))`.
func (c *EvidenceManifestClient) Intercept(interceptors ...Interceptor) {
	c.inters.EvidenceManifest = append(c.inters.EvidenceManifest, interceptors...)
}

// Create returns a builder for creating a EvidenceManifest entity.
func (c *EvidenceManifestClient) Create() *EvidenceManifestCreate {
	mutation := newEvidenceManifestMutation(c.config, OpCreate)
	return &EvidenceManifestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EvidenceManifest entities.
func (c *EvidenceManifestClient) CreateBulk(builders ...*EvidenceManifestCreate) *EvidenceManifestCreateBulk {
	return &EvidenceManifestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvidenceManifestClient) MapCreateBulk(slice any, setFunc func(*EvidenceManifestCreate, int)) *EvidenceManifestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvidenceManifestCreateBulk{err: fmt.Errorf("calling to EvidenceManifestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvidenceManifestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvidenceManifestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EvidenceManifest.
func (c *EvidenceManifestClient) Update() *EvidenceManifestUpdate {
	mutation := newEvidenceManifestMutation(c.config, OpUpdate)
	return &EvidenceManifestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvidenceManifestClient) UpdateOne(_m *EvidenceManifest) *EvidenceManifestUpdateOne {
	mutation := newEvidenceManifestMutation(c.config, OpUpdateOne, withEvidenceManifest(_m))
	return &EvidenceManifestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvidenceManifestClient) UpdateOneID(id string) *EvidenceManifestUpdateOne {
	mutation := newEvidenceManifestMutation(c.config, OpUpdateOne, withEvidenceManifestID(id))
	return &EvidenceManifestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EvidenceManifest.
func (c *EvidenceManifestClient) Delete() *EvidenceManifestDelete {
	mutation := newEvidenceManifestMutation(c.config, OpDelete)
	return &EvidenceManifestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvidenceManifestClient) DeleteOne(_m *EvidenceManifest) *EvidenceManifestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvidenceManifestClient) DeleteOneID(id string) *EvidenceManifestDeleteOne {
	builder := c.Delete().Where(evidencemanifest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvidenceManifestDeleteOne{builder}
}

// Query returns a query builder for EvidenceManifest.
func (c *EvidenceManifestClient) Query() *EvidenceManifestQuery {
	return &EvidenceManifestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvidenceManifest},
		inters: c.Interceptors(),
	}
}

// Get returns a EvidenceManifest entity by its id.
func (c *EvidenceManifestClient) Get(ctx context.Context, id string) (*EvidenceManifest, error) {
	return c.Query().Where(evidencemanifest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvidenceManifestClient) GetX(ctx context.Context, id string) *EvidenceManifest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EvidenceManifestClient) Hooks() []Hook {
	return c.hooks.EvidenceManifest
}

// Interceptors returns the client interceptors.
func (c *EvidenceManifestClient) Interceptors() []Interceptor {
	return c.inters.EvidenceManifest
}

func (c *EvidenceManifestClient) mutate(ctx context.Context, m *EvidenceManifestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvidenceManifestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvidenceManifestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvidenceManifestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvidenceManifestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EvidenceManifest mutation op: %q", m.Op())
	}
}

// IncidentClient is a client for the Incident schema.
type IncidentClient struct {
	config
}

// NewIncidentClient returns a client for the Incident from the given config.
func NewIncidentClient(c config) *IncidentClient {
	return &IncidentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `incident.Hooks(f(g(h())))`.
func (c *IncidentClient) Use(hooks ...Hook) {
	c.hooks.Incident = append(c.hooks.Incident, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `incident.Intercept(f(g(h())))`.
func (c *IncidentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Incident = append(c.inters.Incident, interceptors...)
}

// Create returns a builder for creating a Incident entity.
func (c *IncidentClient) Create() *IncidentCreate {
	mutation := newIncidentMutation(c.config, OpCreate)
	return &IncidentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Incident entities.
func (c *IncidentClient) CreateBulk(builders ...*IncidentCreate) *IncidentCreateBulk {
	return &IncidentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IncidentClient) MapCreateBulk(slice any, setFunc func(*IncidentCreate, int)) *IncidentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IncidentCreateBulk{err: fmt.Errorf("calling to IncidentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IncidentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IncidentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Incident.
func (c *IncidentClient) Update() *IncidentUpdate {
	mutation := newIncidentMutation(c.config, OpUpdate)
	return &IncidentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IncidentClient) UpdateOne(_m *Incident) *IncidentUpdateOne {
	mutation := newIncidentMutation(c.config, OpUpdateOne, withIncident(_m))
	return &IncidentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IncidentClient) UpdateOneID(id string) *IncidentUpdateOne {
	mutation := newIncidentMutation(c.config, OpUpdateOne, withIncidentID(id))
	return &IncidentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Incident.
func (c *IncidentClient) Delete() *IncidentDelete {
	mutation := newIncidentMutation(c.config, OpDelete)
	return &IncidentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IncidentClient) DeleteOne(_m *Incident) *IncidentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IncidentClient) DeleteOneID(id string) *IncidentDeleteOne {
	builder := c.Delete().Where(incident.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IncidentDeleteOne{builder}
}

// Query returns a query builder for Incident.
func (c *IncidentClient) Query() *IncidentQuery {
	return &IncidentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIncident},
		inters: c.Interceptors(),
	}
}

// Get returns a Incident entity by its id.
func (c *IncidentClient) Get(ctx context.Context, id string) (*Incident, error) {
	return c.Query().Where(incident.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IncidentClient) GetX(ctx context.Context, id string) *Incident {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IncidentClient) Hooks() []Hook {
	return c.hooks.Incident
}

// Interceptors returns the client interceptors.
func (c *IncidentClient) Interceptors() []Interceptor {
	return c.inters.Incident
}

func (c *IncidentClient) mutate(ctx context.Context, m *IncidentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IncidentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IncidentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IncidentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IncidentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Incident mutation op: %q", m.Op())
	}
}

// IncidentLearningClient is a client for the IncidentLearning schema.
type IncidentLearningClient struct {
	config
}

// NewIncidentLearningClient returns a client for the IncidentLearning from the given config.
func NewIncidentLearningClient(c config) *IncidentLearningClient {
	return &IncidentLearningClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `incidentlearning.Hooks(f(g(h())))`.
func (c *IncidentLearningClient) Use(hooks ...Hook) {
	c.hooks.IncidentLearning = append(c.hooks.IncidentLearning, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `incidentlearning.Intercept(f(g(h())))`.
func (c *IncidentLearningClient) Intercept(interceptors ...Interceptor) {
	c.inters.IncidentLearning = append(c.inters.IncidentLearning, interceptors...)
}

// Create returns a builder for creating a IncidentLearning entity.
func (c *IncidentLearningClient) Create() *IncidentLearningCreate {
	mutation := newIncidentLearningMutation(c.config, OpCreate)
	return &IncidentLearningCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IncidentLearning entities.
func (c *IncidentLearningClient) CreateBulk(builders ...*IncidentLearningCreate) *IncidentLearningCreateBulk {
	return &IncidentLearningCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IncidentLearningClient) MapCreateBulk(slice any, setFunc func(*IncidentLearningCreate, int)) *IncidentLearningCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IncidentLearningCreateBulk{err: fmt.Errorf("calling to IncidentLearningClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IncidentLearningCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IncidentLearningCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IncidentLearning.
func (c *IncidentLearningClient) Update() *IncidentLearningUpdate {
	mutation := newIncidentLearningMutation(c.config, OpUpdate)
	return &IncidentLearningUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IncidentLearningClient) UpdateOne(_m *IncidentLearning) *IncidentLearningUpdateOne {
	mutation := newIncidentLearningMutation(c.config, OpUpdateOne, withIncidentLearning(_m))
	return &IncidentLearningUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IncidentLearningClient) UpdateOneID(id string) *IncidentLearningUpdateOne {
	mutation := newIncidentLearningMutation(c.config, OpUpdateOne, withIncidentLearningID(id))
	return &IncidentLearningUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IncidentLearning.
func (c *IncidentLearningClient) Delete() *IncidentLearningDelete {
	mutation := newIncidentLearningMutation(c.config, OpDelete)
	return &IncidentLearningDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IncidentLearningClient) DeleteOne(_m *IncidentLearning) *IncidentLearningDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IncidentLearningClient) DeleteOneID(id string) *IncidentLearningDeleteOne {
	builder := c.Delete().Where(incidentlearning.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IncidentLearningDeleteOne{builder}
}

// Query returns a query builder for IncidentLearning.
func (c *IncidentLearningClient) Query() *IncidentLearningQuery {
	return &IncidentLearningQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIncidentLearning},
		inters: c.Interceptors(),
	}
}

// Get returns a IncidentLearning entity by its id.
func (c *IncidentLearningClient) Get(ctx context.Context, id string) (*IncidentLearning, error) {
	return c.Query().Where(incidentlearning.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IncidentLearningClient) GetX(ctx context.Context, id string) *IncidentLearning {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IncidentLearningClient) Hooks() []Hook {
	return c.hooks.IncidentLearning
}

// Interceptors returns the client interceptors.
func (c *IncidentLearningClient) Interceptors() []Interceptor {
	return c.inters.IncidentLearning
}

func (c *IncidentLearningClient) mutate(ctx context.Context, m *IncidentLearningMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IncidentLearningCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IncidentLearningUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IncidentLearningUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IncidentLearningDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IncidentLearning mutation op: %q", m.Op())
	}
}

// LessonClient is a client for the Lesson schema.
type LessonClient struct {
	config
}

// NewLessonClient returns a client for the Lesson from the given config.
func NewLessonClient(c config) *LessonClient {
	return &LessonClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lesson.Hooks(f(g(h())))`.
func (c *LessonClient) Use(hooks ...Hook) {
	c.hooks.Lesson = append(c.hooks.Lesson, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lesson.Intercept(f(g(h())))`.
func (c *LessonClient) Intercept(interceptors ...Interceptor) {
	c.inters.Lesson = append(c.inters.Lesson, interceptors...)
}

// Create returns a builder for creating a Lesson entity.
func (c *LessonClient) Create() *LessonCreate {
	mutation := newLessonMutation(c.config, OpCreate)
	return &LessonCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Lesson entities.
func (c *LessonClient) CreateBulk(builders ...*LessonCreate) *LessonCreateBulk {
	return &LessonCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonClient) MapCreateBulk(slice any, setFunc func(*LessonCreate, int)) *LessonCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonCreateBulk{err: fmt.Errorf("calling to LessonClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Lesson.
func (c *LessonClient) Update() *LessonUpdate {
	mutation := newLessonMutation(c.config, OpUpdate)
	return &LessonUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonClient) UpdateOne(_m *Lesson) *LessonUpdateOne {
	mutation := newLessonMutation(c.config, OpUpdateOne, withLesson(_m))
	return &LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonClient) UpdateOneID(id string) *LessonUpdateOne {
	mutation := newLessonMutation(c.config, OpUpdateOne, withLessonID(id))
	return &LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Lesson.
func (c *LessonClient) Delete() *LessonDelete {
	mutation := newLessonMutation(c.config, OpDelete)
	return &LessonDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonClient) DeleteOne(_m *Lesson) *LessonDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonClient) DeleteOneID(id string) *LessonDeleteOne {
	builder := c.Delete().Where(lesson.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonDeleteOne{builder}
}

// Query returns a query builder for Lesson.
func (c *LessonClient) Query() *LessonQuery {
	return &LessonQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLesson},
		inters: c.Interceptors(),
	}
}

// Get returns a Lesson entity by its id.
func (c *LessonClient) Get(ctx context.Context, id string) (*Lesson, error) {
	return c.Query().Where(lesson.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonClient) GetX(ctx context.Context, id string) *Lesson {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LessonClient) Hooks() []Hook {
	return c.hooks.Lesson
}

// Interceptors returns the client interceptors.
func (c *LessonClient) Interceptors() []Interceptor {
	return c.inters.Lesson
}

func (c *LessonClient) mutate(ctx context.Context, m *LessonMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Lesson mutation op: %q", m.Op())
	}
}

// OwnerClient is a client for the Owner schema.
type OwnerClient struct {
	config
}

// NewOwnerClient returns a client for the Owner from the given config.
func NewOwnerClient(c config) *OwnerClient {
	return &OwnerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `owner.Hooks(f(g(h())))`.
func (c *OwnerClient) Use(hooks ...Hook) {
	c.hooks.Owner = append(c.hooks.Owner, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `owner.Intercept(f(g(h())))`.
func (c *OwnerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Owner = append(c.inters.Owner, interceptors...)
}

// Create returns a builder for creating a Owner entity.
func (c *OwnerClient) Create() *OwnerCreate {
	mutation := newOwnerMutation(c.config, OpCreate)
	return &OwnerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Owner entities.
func (c *OwnerClient) CreateBulk(builders ...*OwnerCreate) *OwnerCreateBulk {
	return &OwnerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OwnerClient) MapCreateBulk(slice any, setFunc func(*OwnerCreate, int)) *OwnerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OwnerCreateBulk{err: fmt.Errorf("calling to OwnerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OwnerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OwnerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Owner.
func (c *OwnerClient) Update() *OwnerUpdate {
	mutation := newOwnerMutation(c.config, OpUpdate)
	return &OwnerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OwnerClient) UpdateOne(_m *Owner) *OwnerUpdateOne {
	mutation := newOwnerMutation(c.config, OpUpdateOne, withOwner(_m))
	return &OwnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OwnerClient) UpdateOneID(id string) *OwnerUpdateOne {
	mutation := newOwnerMutation(c.config, OpUpdateOne, withOwnerID(id))
	return &OwnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Owner.
func (c *OwnerClient) Delete() *OwnerDelete {
	mutation := newOwnerMutation(c.config, OpDelete)
	return &OwnerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OwnerClient) DeleteOne(_m *Owner) *OwnerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OwnerClient) DeleteOneID(id string) *OwnerDeleteOne {
	builder := c.Delete().Where(owner.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OwnerDeleteOne{builder}
}

// Query returns a query builder for Owner.
func (c *OwnerClient) Query() *OwnerQuery {
	return &OwnerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOwner},
		inters: c.Interceptors(),
	}
}

// Get returns a Owner entity by its id.
func (c *OwnerClient) Get(ctx context.Context, id string) (*Owner, error) {
	return c.Query().Where(owner.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OwnerClient) GetX(ctx context.Context, id string) *Owner {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OwnerClient) Hooks() []Hook {
	return c.hooks.Owner
}

// Interceptors returns the client interceptors.
func (c *OwnerClient) Interceptors() []Interceptor {
	return c.inters.Owner
}

func (c *OwnerClient) mutate(ctx context.Context, m *OwnerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OwnerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OwnerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OwnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OwnerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Owner mutation op: %q", m.Op())
	}
}

// PrincipalClient is a client for the Principal schema.
type PrincipalClient struct {
	config
}

// NewPrincipalClient returns a client for the Principal from the given config.
func NewPrincipalClient(c config) *PrincipalClient {
	return &PrincipalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `principal.Hooks(f(g(h())))`.
func (c *PrincipalClient) Use(hooks ...Hook) {
	c.hooks.Principal = append(c.hooks.Principal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `principal.Intercept(f(g(h())))`.
func (c *PrincipalClient) Intercept(interceptors ...Interceptor) {
	c.inters.Principal = append(c.inters.Principal, interceptors...)
}

// Create returns a builder for creating a Principal entity.
func (c *PrincipalClient) Create() *PrincipalCreate {
	mutation := newPrincipalMutation(c.config, OpCreate)
	return &PrincipalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Principal entities.
func (c *PrincipalClient) CreateBulk(builders ...*PrincipalCreate) *PrincipalCreateBulk {
	return &PrincipalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PrincipalClient) MapCreateBulk(slice any, setFunc func(*PrincipalCreate, int)) *PrincipalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PrincipalCreateBulk{err: fmt.Errorf("calling to PrincipalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PrincipalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PrincipalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Principal.
func (c *PrincipalClient) Update() *PrincipalUpdate {
	mutation := newPrincipalMutation(c.config, OpUpdate)
	return &PrincipalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PrincipalClient) UpdateOne(_m *Principal) *PrincipalUpdateOne {
	mutation := newPrincipalMutation(c.config, OpUpdateOne, withPrincipal(_m))
	return &PrincipalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PrincipalClient) UpdateOneID(id string) *PrincipalUpdateOne {
	mutation := newPrincipalMutation(c.config, OpUpdateOne, withPrincipalID(id))
	return &PrincipalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Principal.
func (c *PrincipalClient) Delete() *PrincipalDelete {
	mutation := newPrincipalMutation(c.config, OpDelete)
	return &PrincipalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PrincipalClient) DeleteOne(_m *Principal) *PrincipalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PrincipalClient) DeleteOneID(id string) *PrincipalDeleteOne {
	builder := c.Delete().Where(principal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PrincipalDeleteOne{builder}
}

// Query returns a query builder for Principal.
func (c *PrincipalClient) Query() *PrincipalQuery {
	return &PrincipalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePrincipal},
		inters: c.Interceptors(),
	}
}

// Get returns a Principal entity by its id.
func (c *PrincipalClient) Get(ctx context.Context, id string) (*Principal, error) {
	return c.Query().Where(principal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PrincipalClient) GetX(ctx context.Context, id string) *Principal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PrincipalClient) Hooks() []Hook {
	return c.hooks.Principal
}

// Interceptors returns the client interceptors.
func (c *PrincipalClient) Interceptors() []Interceptor {
	return c.inters.Principal
}

func (c *PrincipalClient) mutate(ctx context.Context, m *PrincipalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PrincipalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PrincipalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PrincipalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PrincipalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Principal mutation op: %q", m.Op())
	}
}

// RateLimitStreakClient is a client for the RateLimitStreak schema.
type RateLimitStreakClient struct {
	config
}

// NewRateLimitStreakClient returns a client for the RateLimitStreak from the given config.
func NewRateLimitStreakClient(c config) *RateLimitStreakClient {
	return &RateLimitStreakClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ratelimitstreak.Hooks(f(g(h())))`.
func (c *RateLimitStreakClient) Use(hooks ...Hook) {
	c.hooks.RateLimitStreak = append(c.hooks.RateLimitStreak, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ratelimitstreak.Intercept(f(g(h())))`.
func (c *RateLimitStreakClient) Intercept(interceptors ...Interceptor) {
	c.inters.RateLimitStreak = append(c.inters.RateLimitStreak, interceptors...)
}

// Create returns a builder for creating a RateLimitStreak entity.
func (c *RateLimitStreakClient) Create() *RateLimitStreakCreate {
	mutation := newRateLimitStreakMutation(c.config, OpCreate)
	return &RateLimitStreakCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RateLimitStreak entities.
func (c *RateLimitStreakClient) CreateBulk(builders ...*RateLimitStreakCreate) *RateLimitStreakCreateBulk {
	return &RateLimitStreakCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RateLimitStreakClient) MapCreateBulk(slice any, setFunc func(*RateLimitStreakCreate, int)) *RateLimitStreakCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RateLimitStreakCreateBulk{err: fmt.Errorf("calling to RateLimitStreakClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RateLimitStreakCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RateLimitStreakCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RateLimitStreak.
func (c *RateLimitStreakClient) Update() *RateLimitStreakUpdate {
	mutation := newRateLimitStreakMutation(c.config, OpUpdate)
	return &RateLimitStreakUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RateLimitStreakClient) UpdateOne(_m *RateLimitStreak) *RateLimitStreakUpdateOne {
	mutation := newRateLimitStreakMutation(c.config, OpUpdateOne, withRateLimitStreak(_m))
	return &RateLimitStreakUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RateLimitStreakClient) UpdateOneID(id string) *RateLimitStreakUpdateOne {
	mutation := newRateLimitStreakMutation(c.config, OpUpdateOne, withRateLimitStreakID(id))
	return &RateLimitStreakUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RateLimitStreak.
func (c *RateLimitStreakClient) Delete() *RateLimitStreakDelete {
	mutation := newRateLimitStreakMutation(c.config, OpDelete)
	return &RateLimitStreakDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RateLimitStreakClient) DeleteOne(_m *RateLimitStreak) *RateLimitStreakDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RateLimitStreakClient) DeleteOneID(id string) *RateLimitStreakDeleteOne {
	builder := c.Delete().Where(ratelimitstreak.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RateLimitStreakDeleteOne{builder}
}

// Query returns a query builder for RateLimitStreak.
func (c *RateLimitStreakClient) Query() *RateLimitStreakQuery {
	return &RateLimitStreakQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRateLimitStreak},
		inters: c.Interceptors(),
	}
}

// Get returns a RateLimitStreak entity by its id.
func (c *RateLimitStreakClient) Get(ctx context.Context, id string) (*RateLimitStreak, error) {
	return c.Query().Where(ratelimitstreak.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RateLimitStreakClient) GetX(ctx context.Context, id string) *RateLimitStreak {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RateLimitStreakClient) Hooks() []Hook {
	return c.hooks.RateLimitStreak
}

// Interceptors returns the client interceptors.
func (c *RateLimitStreakClient) Interceptors() []Interceptor {
	return c.inters.RateLimitStreak
}

func (c *RateLimitStreakClient) mutate(ctx context.Context, m *RateLimitStreakMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RateLimitStreakCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RateLimitStreakUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RateLimitStreakUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RateLimitStreakDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RateLimitStreak mutation op: %q", m.Op())
	}
}

// RoomClient is a client for the Room schema.
type RoomClient struct {
	config
}

// NewRoomClient returns a client for the Room from the given config.
func NewRoomClient(c config) *RoomClient {
	return &RoomClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `room.Hooks(f(g(h())))`.
func (c *RoomClient) Use(hooks ...Hook) {
	c.hooks.Room = append(c.hooks.Room, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `room.Intercept(f(g(h())))`.
func (c *RoomClient) Intercept(interceptors ...Interceptor) {
	c.inters.Room = append(c.inters.Room, interceptors...)
}

// Create returns a builder for creating a Room entity.
func (c *RoomClient) Create() *RoomCreate {
	mutation := newRoomMutation(c.config, OpCreate)
	return &RoomCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Room entities.
func (c *RoomClient) CreateBulk(builders ...*RoomCreate) *RoomCreateBulk {
	return &RoomCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RoomClient) MapCreateBulk(slice any, setFunc func(*RoomCreate, int)) *RoomCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RoomCreateBulk{err: fmt.Errorf("calling to RoomClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RoomCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RoomCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Room.
func (c *RoomClient) Update() *RoomUpdate {
	mutation := newRoomMutation(c.config, OpUpdate)
	return &RoomUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RoomClient) UpdateOne(_m *Room) *RoomUpdateOne {
	mutation := newRoomMutation(c.config, OpUpdateOne, withRoom(_m))
	return &RoomUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RoomClient) UpdateOneID(id string) *RoomUpdateOne {
	mutation := newRoomMutation(c.config, OpUpdateOne, withRoomID(id))
	return &RoomUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Room.
func (c *RoomClient) Delete() *RoomDelete {
	mutation := newRoomMutation(c.config, OpDelete)
	return &RoomDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RoomClient) DeleteOne(_m *Room) *RoomDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RoomClient) DeleteOneID(id string) *RoomDeleteOne {
	builder := c.Delete().Where(room.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RoomDeleteOne{builder}
}

// Query returns a query builder for Room.
func (c *RoomClient) Query() *RoomQuery {
	return &RoomQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRoom},
		inters: c.Interceptors(),
	}
}

// Get returns a Room entity by its id.
func (c *RoomClient) Get(ctx context.Context, id string) (*Room, error) {
	return c.Query().Where(room.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RoomClient) GetX(ctx context.Context, id string) *Room {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RoomClient) Hooks() []Hook {
	return c.hooks.Room
}

// Interceptors returns the client interceptors.
func (c *RoomClient) Interceptors() []Interceptor {
	return c.inters.Room
}

func (c *RoomClient) mutate(ctx context.Context, m *RoomMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RoomCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RoomUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RoomUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RoomDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Room mutation op: %q", m.Op())
	}
}

// RunClient is a client for the Run schema.
type RunClient struct {
	config
}

// NewRunClient returns a client for the Run from the given config.
func NewRunClient(c config) *RunClient {
	return &RunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `run.Hooks(f(g(h())))`.
func (c *RunClient) Use(hooks ...Hook) {
	c.hooks.Run = append(c.hooks.Run, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `run.Intercept(f(g(h())))`.
func (c *RunClient) Intercept(interceptors ...Interceptor) {
	c.inters.Run = append(c.inters.Run, interceptors...)
}

// Create returns a builder for creating a Run entity.
func (c *RunClient) Create() *RunCreate {
	mutation := newRunMutation(c.config, OpCreate)
	return &RunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Run entities.
func (c *RunClient) CreateBulk(builders ...*RunCreate) *RunCreateBulk {
	return &RunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunClient) MapCreateBulk(slice any, setFunc func(*RunCreate, int)) *RunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunCreateBulk{err: fmt.Errorf("calling to RunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Run.
func (c *RunClient) Update() *RunUpdate {
	mutation := newRunMutation(c.config, OpUpdate)
	return &RunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunClient) UpdateOne(_m *Run) *RunUpdateOne {
	mutation := newRunMutation(c.config, OpUpdateOne, withRun(_m))
	return &RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunClient) UpdateOneID(id string) *RunUpdateOne {
	mutation := newRunMutation(c.config, OpUpdateOne, withRunID(id))
	return &RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Run.
func (c *RunClient) Delete() *RunDelete {
	mutation := newRunMutation(c.config, OpDelete)
	return &RunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunClient) DeleteOne(_m *Run) *RunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunClient) DeleteOneID(id string) *RunDeleteOne {
	builder := c.Delete().Where(run.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunDeleteOne{builder}
}

// Query returns a query builder for Run.
func (c *RunClient) Query() *RunQuery {
	return &RunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRun},
		inters: c.Interceptors(),
	}
}

// Get returns a Run entity by its id.
func (c *RunClient) Get(ctx context.Context, id string) (*Run, error) {
	return c.Query().Where(run.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunClient) GetX(ctx context.Context, id string) *Run {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RunClient) Hooks() []Hook {
	return c.hooks.Run
}

// Interceptors returns the client interceptors.
func (c *RunClient) Interceptors() []Interceptor {
	return c.inters.Run
}

func (c *RunClient) mutate(ctx context.Context, m *RunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Run mutation op: %q", m.Op())
	}
}

// ScorecardClient is a client for the Scorecard schema.
type ScorecardClient struct {
	config
}

// NewScorecardClient returns a client for the Scorecard from the given config.
func NewScorecardClient(c config) *ScorecardClient {
	return &ScorecardClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scorecard.Hooks(f(g(h())))`.
func (c *ScorecardClient) Use(hooks ...Hook) {
	c.hooks.Scorecard = append(c.hooks.Scorecard, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scorecard.Intercept(f(g(h())))`.
func (c *ScorecardClient) Intercept(interceptors ...Interceptor) {
	c.inters.Scorecard = append(c.inters.Scorecard, interceptors...)
}

// Create returns a builder for creating a Scorecard entity.
func (c *ScorecardClient) Create() *ScorecardCreate {
	mutation := newScorecardMutation(c.config, OpCreate)
	return &ScorecardCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Scorecard entities.
func (c *ScorecardClient) CreateBulk(builders ...*ScorecardCreate) *ScorecardCreateBulk {
	return &ScorecardCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScorecardClient) MapCreateBulk(slice any, setFunc func(*ScorecardCreate, int)) *ScorecardCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScorecardCreateBulk{err: fmt.Errorf("calling to ScorecardClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScorecardCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScorecardCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Scorecard.
func (c *ScorecardClient) Update() *ScorecardUpdate {
	mutation := newScorecardMutation(c.config, OpUpdate)
	return &ScorecardUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScorecardClient) UpdateOne(_m *Scorecard) *ScorecardUpdateOne {
	mutation := newScorecardMutation(c.config, OpUpdateOne, withScorecard(_m))
	return &ScorecardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScorecardClient) UpdateOneID(id string) *ScorecardUpdateOne {
	mutation := newScorecardMutation(c.config, OpUpdateOne, withScorecardID(id))
	return &ScorecardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Scorecard.
func (c *ScorecardClient) Delete() *ScorecardDelete {
	mutation := newScorecardMutation(c.config, OpDelete)
	return &ScorecardDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScorecardClient) DeleteOne(_m *Scorecard) *ScorecardDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScorecardClient) DeleteOneID(id string) *ScorecardDeleteOne {
	builder := c.Delete().Where(scorecard.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScorecardDeleteOne{builder}
}

// Query returns a query builder for Scorecard.
func (c *ScorecardClient) Query() *ScorecardQuery {
	return &ScorecardQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScorecard},
		inters: c.Interceptors(),
	}
}

// Get returns a Scorecard entity by its id.
func (c *ScorecardClient) Get(ctx context.Context, id string) (*Scorecard, error) {
	return c.Query().Where(scorecard.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScorecardClient) GetX(ctx context.Context, id string) *Scorecard {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScorecardClient) Hooks() []Hook {
	return c.hooks.Scorecard
}

// Interceptors returns the client interceptors.
func (c *ScorecardClient) Interceptors() []Interceptor {
	return c.inters.Scorecard
}

func (c *ScorecardClient) mutate(ctx context.Context, m *ScorecardMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScorecardCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScorecardUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScorecardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScorecardDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Scorecard mutation op: %q", m.Op())
	}
}

// SecretClient is a client for the Secret schema.
type SecretClient struct {
	config
}

// NewSecretClient returns a client for the Secret from the given config.
func NewSecretClient(c config) *SecretClient {
	return &SecretClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `secret.Hooks(f(g(h())))`.
func (c *SecretClient) Use(hooks ...Hook) {
	c.hooks.Secret = append(c.hooks.Secret, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `secret.Intercept(f(g(h())))`.
func (c *SecretClient) Intercept(interceptors ...Interceptor) {
	c.inters.Secret = append(c.inters.Secret, interceptors...)
}

// Create returns a builder for creating a Secret entity.
func (c *SecretClient) Create() *SecretCreate {
	mutation := newSecretMutation(c.config, OpCreate)
	return &SecretCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Secret entities.
func (c *SecretClient) CreateBulk(builders ...*SecretCreate) *SecretCreateBulk {
	return &SecretCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SecretClient) MapCreateBulk(slice any, setFunc func(*SecretCreate, int)) *SecretCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SecretCreateBulk{err: fmt.Errorf("calling to SecretClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SecretCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SecretCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Secret.
func (c *SecretClient) Update() *SecretUpdate {
	mutation := newSecretMutation(c.config, OpUpdate)
	return &SecretUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SecretClient) UpdateOne(_m *Secret) *SecretUpdateOne {
	mutation := newSecretMutation(c.config, OpUpdateOne, withSecret(_m))
	return &SecretUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SecretClient) UpdateOneID(id string) *SecretUpdateOne {
	mutation := newSecretMutation(c.config, OpUpdateOne, withSecretID(id))
	return &SecretUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Secret.
func (c *SecretClient) Delete() *SecretDelete {
	mutation := newSecretMutation(c.config, OpDelete)
	return &SecretDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SecretClient) DeleteOne(_m *Secret) *SecretDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SecretClient) DeleteOneID(id string) *SecretDeleteOne {
	builder := c.Delete().Where(secret.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SecretDeleteOne{builder}
}

// Query returns a query builder for Secret.
func (c *SecretClient) Query() *SecretQuery {
	return &SecretQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSecret},
		inters: c.Interceptors(),
	}
}

// Get returns a Secret entity by its id.
func (c *SecretClient) Get(ctx context.Context, id string) (*Secret, error) {
	return c.Query().Where(secret.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SecretClient) GetX(ctx context.Context, id string) *Secret {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SecretClient) Hooks() []Hook {
	return c.hooks.Secret
}

// Interceptors returns the client interceptors.
func (c *SecretClient) Interceptors() []Interceptor {
	return c.inters.Secret
}

func (c *SecretClient) mutate(ctx context.Context, m *SecretMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SecretCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SecretUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SecretUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SecretDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Secret mutation op: %q", m.Op())
	}
}

// SkillEntryClient is a client for the SkillEntry schema.
type SkillEntryClient struct {
	config
}

// NewSkillEntryClient returns a client for the SkillEntry from the given config.
func NewSkillEntryClient(c config) *SkillEntryClient {
	return &SkillEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `skillentry.Hooks(f(g(h())))`.
func (c *SkillEntryClient) Use(hooks ...Hook) {
	c.hooks.SkillEntry = append(c.hooks.SkillEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `skillentry.Intercept(f(g(h())))`.
func (c *SkillEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.SkillEntry = append(c.inters.SkillEntry, interceptors...)
}

// Create returns a builder for creating a SkillEntry entity.
func (c *SkillEntryClient) Create() *SkillEntryCreate {
	mutation := newSkillEntryMutation(c.config, OpCreate)
	return &SkillEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SkillEntry entities.
func (c *SkillEntryClient) CreateBulk(builders ...*SkillEntryCreate) *SkillEntryCreateBulk {
	return &SkillEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SkillEntryClient) MapCreateBulk(slice any, setFunc func(*SkillEntryCreate, int)) *SkillEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SkillEntryCreateBulk{err: fmt.Errorf("calling to SkillEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SkillEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SkillEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SkillEntry.
func (c *SkillEntryClient) Update() *SkillEntryUpdate {
	mutation := newSkillEntryMutation(c.config, OpUpdate)
	return &SkillEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SkillEntryClient) UpdateOne(_m *SkillEntry) *SkillEntryUpdateOne {
	mutation := newSkillEntryMutation(c.config, OpUpdateOne, withSkillEntry(_m))
	return &SkillEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SkillEntryClient) UpdateOneID(id string) *SkillEntryUpdateOne {
	mutation := newSkillEntryMutation(c.config, OpUpdateOne, withSkillEntryID(id))
	return &SkillEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SkillEntry.
func (c *SkillEntryClient) Delete() *SkillEntryDelete {
	mutation := newSkillEntryMutation(c.config, OpDelete)
	return &SkillEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SkillEntryClient) DeleteOne(_m *SkillEntry) *SkillEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SkillEntryClient) DeleteOneID(id string) *SkillEntryDeleteOne {
	builder := c.Delete().Where(skillentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SkillEntryDeleteOne{builder}
}

// Query returns a query builder for SkillEntry.
func (c *SkillEntryClient) Query() *SkillEntryQuery {
	return &SkillEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSkillEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a SkillEntry entity by its id.
func (c *SkillEntryClient) Get(ctx context.Context, id string) (*SkillEntry, error) {
	return c.Query().Where(skillentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SkillEntryClient) GetX(ctx context.Context, id string) *SkillEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SkillEntryClient) Hooks() []Hook {
	return c.hooks.SkillEntry
}

// Interceptors returns the client interceptors.
func (c *SkillEntryClient) Interceptors() []Interceptor {
	return c.inters.SkillEntry
}

func (c *SkillEntryClient) mutate(ctx context.Context, m *SkillEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SkillEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SkillEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SkillEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SkillEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SkillEntry mutation op: %q", m.Op())
	}
}

// StepClient is a client for the Step schema.
type StepClient struct {
	config
}

// NewStepClient returns a client for the Step from the given config.
func NewStepClient(c config) *StepClient {
	return &StepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `step.Hooks(f(g(h())))`.
func (c *StepClient) Use(hooks ...Hook) {
	c.hooks.Step = append(c.hooks.Step, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `step.Intercept(f(g(h())))`.
func (c *StepClient) Intercept(interceptors ...Interceptor) {
	c.inters.Step = append(c.inters.Step, interceptors...)
}

// Create returns a builder for creating a Step entity.
func (c *StepClient) Create() *StepCreate {
	mutation := newStepMutation(c.config, OpCreate)
	return &StepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Step entities.
func (c *StepClient) CreateBulk(builders ...*StepCreate) *StepCreateBulk {
	return &StepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StepClient) MapCreateBulk(slice any, setFunc func(*StepCreate, int)) *StepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StepCreateBulk{err: fmt.Errorf("calling to StepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Step.
func (c *StepClient) Update() *StepUpdate {
	mutation := newStepMutation(c.config, OpUpdate)
	return &StepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StepClient) UpdateOne(_m *Step) *StepUpdateOne {
	mutation := newStepMutation(c.config, OpUpdateOne, withStep(_m))
	return &StepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StepClient) UpdateOneID(id string) *StepUpdateOne {
	mutation := newStepMutation(c.config, OpUpdateOne, withStepID(id))
	return &StepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Step.
func (c *StepClient) Delete() *StepDelete {
	mutation := newStepMutation(c.config, OpDelete)
	return &StepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StepClient) DeleteOne(_m *Step) *StepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StepClient) DeleteOneID(id string) *StepDeleteOne {
	builder := c.Delete().Where(step.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StepDeleteOne{builder}
}

// Query returns a query builder for Step.
func (c *StepClient) Query() *StepQuery {
	return &StepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStep},
		inters: c.Interceptors(),
	}
}

// Get returns a Step entity by its id.
func (c *StepClient) Get(ctx context.Context, id string) (*Step, error) {
	return c.Query().Where(step.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StepClient) GetX(ctx context.Context, id string) *Step {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StepClient) Hooks() []Hook {
	return c.hooks.Step
}

// Interceptors returns the client interceptors.
func (c *StepClient) Interceptors() []Interceptor {
	return c.inters.Step
}

func (c *StepClient) mutate(ctx context.Context, m *StepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Step mutation op: %q", m.Op())
	}
}

// StreamHeadClient is a client for the StreamHead schema.
type StreamHeadClient struct {
	config
}

// NewStreamHeadClient returns a client for the StreamHead from the given config.
func NewStreamHeadClient(c config) *StreamHeadClient {
	return &StreamHeadClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `streamhead.Hooks(f(g(h())))`.
func (c *StreamHeadClient) Use(hooks ...Hook) {
	c.hooks.StreamHead = append(c.hooks.StreamHead, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `streamhead.Intercept(f(g(h())))`.
func (c *StreamHeadClient) Intercept(interceptors ...Interceptor) {
	c.inters.StreamHead = append(c.inters.StreamHead, interceptors...)
}

// Create returns a builder for creating a StreamHead entity.
func (c *StreamHeadClient) Create() *StreamHeadCreate {
	mutation := newStreamHeadMutation(c.config, OpCreate)
	return &StreamHeadCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StreamHead entities.
func (c *StreamHeadClient) CreateBulk(builders ...*StreamHeadCreate) *StreamHeadCreateBulk {
	return &StreamHeadCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StreamHeadClient) MapCreateBulk(slice any, setFunc func(*StreamHeadCreate, int)) *StreamHeadCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StreamHeadCreateBulk{err: fmt.Errorf("calling to StreamHeadClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StreamHeadCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StreamHeadCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StreamHead.
func (c *StreamHeadClient) Update() *StreamHeadUpdate {
	mutation := newStreamHeadMutation(c.config, OpUpdate)
	return &StreamHeadUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StreamHeadClient) UpdateOne(_m *StreamHead) *StreamHeadUpdateOne {
	mutation := newStreamHeadMutation(c.config, OpUpdateOne, withStreamHead(_m))
	return &StreamHeadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StreamHeadClient) UpdateOneID(id string) *StreamHeadUpdateOne {
	mutation := newStreamHeadMutation(c.config, OpUpdateOne, withStreamHeadID(id))
	return &StreamHeadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StreamHead.
func (c *StreamHeadClient) Delete() *StreamHeadDelete {
	mutation := newStreamHeadMutation(c.config, OpDelete)
	return &StreamHeadDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StreamHeadClient) DeleteOne(_m *StreamHead) *StreamHeadDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StreamHeadClient) DeleteOneID(id string) *StreamHeadDeleteOne {
	builder := c.Delete().Where(streamhead.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StreamHeadDeleteOne{builder}
}

// Query returns a query builder for StreamHead.
func (c *StreamHeadClient) Query() *StreamHeadQuery {
	return &StreamHeadQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStreamHead},
		inters: c.Interceptors(),
	}
}

// Get returns a StreamHead entity by its id.
func (c *StreamHeadClient) Get(ctx context.Context, id string) (*StreamHead, error) {
	return c.Query().Where(streamhead.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StreamHeadClient) GetX(ctx context.Context, id string) *StreamHead {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StreamHeadClient) Hooks() []Hook {
	return c.hooks.StreamHead
}

// Interceptors returns the client interceptors.
func (c *StreamHeadClient) Interceptors() []Interceptor {
	return c.inters.StreamHead
}

func (c *StreamHeadClient) mutate(ctx context.Context, m *StreamHeadMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StreamHeadCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StreamHeadUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StreamHeadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StreamHeadDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StreamHead mutation op: %q", m.Op())
	}
}

// ThreadClient is a client for the Thread schema.
type ThreadClient struct {
	config
}

// NewThreadClient returns a client for the Thread from the given config.
func NewThreadClient(c config) *ThreadClient {
	return &ThreadClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `thread.Hooks(f(g(h())))`.
func (c *ThreadClient) Use(hooks ...Hook) {
	c.hooks.Thread = append(c.hooks.Thread, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `thread.Intercept(f(g(h())))`.
func (c *ThreadClient) Intercept(interceptors ...Interceptor) {
	c.inters.Thread = append(c.inters.Thread, interceptors...)
}

// Create returns a builder for creating a Thread entity.
func (c *ThreadClient) Create() *ThreadCreate {
	mutation := newThreadMutation(c.config, OpCreate)
	return &ThreadCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Thread entities.
func (c *ThreadClient) CreateBulk(builders ...*ThreadCreate) *ThreadCreateBulk {
	return &ThreadCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ThreadClient) MapCreateBulk(slice any, setFunc func(*ThreadCreate, int)) *ThreadCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ThreadCreateBulk{err: fmt.Errorf("calling to ThreadClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ThreadCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ThreadCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Thread.
func (c *ThreadClient) Update() *ThreadUpdate {
	mutation := newThreadMutation(c.config, OpUpdate)
	return &ThreadUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ThreadClient) UpdateOne(_m *Thread) *ThreadUpdateOne {
	mutation := newThreadMutation(c.config, OpUpdateOne, withThread(_m))
	return &ThreadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ThreadClient) UpdateOneID(id string) *ThreadUpdateOne {
	mutation := newThreadMutation(c.config, OpUpdateOne, withThreadID(id))
	return &ThreadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Thread.
func (c *ThreadClient) Delete() *ThreadDelete {
	mutation := newThreadMutation(c.config, OpDelete)
	return &ThreadDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ThreadClient) DeleteOne(_m *Thread) *ThreadDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ThreadClient) DeleteOneID(id string) *ThreadDeleteOne {
	builder := c.Delete().Where(thread.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ThreadDeleteOne{builder}
}

// Query returns a query builder for Thread.
func (c *ThreadClient) Query() *ThreadQuery {
	return &ThreadQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeThread},
		inters: c.Interceptors(),
	}
}

// Get returns a Thread entity by its id.
func (c *ThreadClient) Get(ctx context.Context, id string) (*Thread, error) {
	return c.Query().Where(thread.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ThreadClient) GetX(ctx context.Context, id string) *Thread {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ThreadClient) Hooks() []Hook {
	return c.hooks.Thread
}

// Interceptors returns the client interceptors.
func (c *ThreadClient) Interceptors() []Interceptor {
	return c.inters.Thread
}

func (c *ThreadClient) mutate(ctx context.Context, m *ThreadMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ThreadCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ThreadUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ThreadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ThreadDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Thread mutation op: %q", m.Op())
	}
}

// ToolCallClient is a client for the ToolCall schema.
type ToolCallClient struct {
	config
}

// NewToolCallClient returns a client for the ToolCall from the given config.
func NewToolCallClient(c config) *ToolCallClient {
	return &ToolCallClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `toolcall.Hooks(f(g(h())))`.
func (c *ToolCallClient) Use(hooks ...Hook) {
	c.hooks.ToolCall = append(c.hooks.ToolCall, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `toolcall.Intercept(f(g(h())))`.
func (c *ToolCallClient) Intercept(interceptors ...Interceptor) {
	c.inters.ToolCall = append(c.inters.ToolCall, interceptors...)
}

// Create returns a builder for creating a ToolCall entity.
func (c *ToolCallClient) Create() *ToolCallCreate {
	mutation := newToolCallMutation(c.config, OpCreate)
	return &ToolCallCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ToolCall entities.
func (c *ToolCallClient) CreateBulk(builders ...*ToolCallCreate) *ToolCallCreateBulk {
	return &ToolCallCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ToolCallClient) MapCreateBulk(slice any, setFunc func(*ToolCallCreate, int)) *ToolCallCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ToolCallCreateBulk{err: fmt.Errorf("calling to ToolCallClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ToolCallCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ToolCallCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ToolCall.
func (c *ToolCallClient) Update() *ToolCallUpdate {
	mutation := newToolCallMutation(c.config, OpUpdate)
	return &ToolCallUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ToolCallClient) UpdateOne(_m *ToolCall) *ToolCallUpdateOne {
	mutation := newToolCallMutation(c.config, OpUpdateOne, withToolCall(_m))
	return &ToolCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ToolCallClient) UpdateOneID(id string) *ToolCallUpdateOne {
	mutation := newToolCallMutation(c.config, OpUpdateOne, withToolCallID(id))
	return &ToolCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ToolCall.
func (c *ToolCallClient) Delete() *ToolCallDelete {
	mutation := newToolCallMutation(c.config, OpDelete)
	return &ToolCallDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ToolCallClient) DeleteOne(_m *ToolCall) *ToolCallDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ToolCallClient) DeleteOneID(id string) *ToolCallDeleteOne {
	builder := c.Delete().Where(toolcall.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ToolCallDeleteOne{builder}
}

// Query returns a query builder for ToolCall.
func (c *ToolCallClient) Query() *ToolCallQuery {
	return &ToolCallQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeToolCall},
		inters: c.Interceptors(),
	}
}

// Get returns a ToolCall entity by its id.
func (c *ToolCallClient) Get(ctx context.Context, id string) (*ToolCall, error) {
	return c.Query().Where(toolcall.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ToolCallClient) GetX(ctx context.Context, id string) *ToolCall {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ToolCallClient) Hooks() []Hook {
	return c.hooks.ToolCall
}

// Interceptors returns the client interceptors.
func (c *ToolCallClient) Interceptors() []Interceptor {
	return c.inters.ToolCall
}

func (c *ToolCallClient) mutate(ctx context.Context, m *ToolCallMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ToolCallCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ToolCallUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ToolCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ToolCallDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ToolCall mutation op: %q", m.Op())
	}
}

// WorkItemLeaseClient is a client for the WorkItemLease schema.
type WorkItemLeaseClient struct {
	config
}

// NewWorkItemLeaseClient returns a client for the WorkItemLease from the given config.
func NewWorkItemLeaseClient(c config) *WorkItemLeaseClient {
	return &WorkItemLeaseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workitemlease.Hooks(f(g(h())))`.
func (c *WorkItemLeaseClient) Use(hooks ...Hook) {
	c.hooks.WorkItemLease = append(c.hooks.WorkItemLease, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workitemlease.Intercept(f(g(h())))`.
func (c *WorkItemLeaseClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkItemLease = append(c.inters.WorkItemLease, interceptors...)
}

// Create returns a builder for creating a WorkItemLease entity.
func (c *WorkItemLeaseClient) Create() *WorkItemLeaseCreate {
	mutation := newWorkItemLeaseMutation(c.config, OpCreate)
	return &WorkItemLeaseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkItemLease entities.
func (c *WorkItemLeaseClient) CreateBulk(builders ...*WorkItemLeaseCreate) *WorkItemLeaseCreateBulk {
	return &WorkItemLeaseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkItemLeaseClient) MapCreateBulk(slice any, setFunc func(*WorkItemLeaseCreate, int)) *WorkItemLeaseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkItemLeaseCreateBulk{err: fmt.Errorf("calling to WorkItemLeaseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkItemLeaseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkItemLeaseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkItemLease.
func (c *WorkItemLeaseClient) Update() *WorkItemLeaseUpdate {
	mutation := newWorkItemLeaseMutation(c.config, OpUpdate)
	return &WorkItemLeaseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkItemLeaseClient) UpdateOne(_m *WorkItemLease) *WorkItemLeaseUpdateOne {
	mutation := newWorkItemLeaseMutation(c.config, OpUpdateOne, withWorkItemLease(_m))
	return &WorkItemLeaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkItemLeaseClient) UpdateOneID(id string) *WorkItemLeaseUpdateOne {
	mutation := newWorkItemLeaseMutation(c.config, OpUpdateOne, withWorkItemLeaseID(id))
	return &WorkItemLeaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkItemLease.
func (c *WorkItemLeaseClient) Delete() *WorkItemLeaseDelete {
	mutation := newWorkItemLeaseMutation(c.config, OpDelete)
	return &WorkItemLeaseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkItemLeaseClient) DeleteOne(_m *WorkItemLease) *WorkItemLeaseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkItemLeaseClient) DeleteOneID(id string) *WorkItemLeaseDeleteOne {
	builder := c.Delete().Where(workitemlease.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkItemLeaseDeleteOne{builder}
}

// Query returns a query builder for WorkItemLease.
func (c *WorkItemLeaseClient) Query() *WorkItemLeaseQuery {
	return &WorkItemLeaseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkItemLease},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkItemLease entity by its id.
func (c *WorkItemLeaseClient) Get(ctx context.Context, id string) (*WorkItemLease, error) {
	return c.Query().Where(workitemlease.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkItemLeaseClient) GetX(ctx context.Context, id string) *WorkItemLease {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WorkItemLeaseClient) Hooks() []Hook {
	return c.hooks.WorkItemLease
}

// Interceptors returns the client interceptors.
func (c *WorkItemLeaseClient) Interceptors() []Interceptor {
	return c.inters.WorkItemLease
}

func (c *WorkItemLeaseClient) mutate(ctx context.Context, m *WorkItemLeaseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkItemLeaseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkItemLeaseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkItemLeaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkItemLeaseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkItemLease mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentIdentity, Approval, Artifact, AuthSession, CapabilityToken, DeadLetter,
		DelegationEdge, Event, EvidenceManifest, Incident, IncidentLearning, Lesson,
		Owner, Principal, RateLimitStreak, Room, Run, Scorecard, Secret, SkillEntry,
		Step, StreamHead, Thread, ToolCall, WorkItemLease []ent.Hook
	}
	inters struct {
		AgentIdentity, Approval, Artifact, AuthSession, CapabilityToken, DeadLetter,
		DelegationEdge, Event, EvidenceManifest, Incident, IncidentLearning, Lesson,
		Owner, Principal, RateLimitStreak, Room, Run, Scorecard, Secret, SkillEntry,
		Step, StreamHead, Thread, ToolCall, WorkItemLease []ent.Interceptor
	}
)

// ExecContext allows calling the underlying ExecContext method of the driver if it is supported by it.
// See, database/sql#DB.ExecContext for more information.
func (c *config) ExecContext(ctx context.Context, query string, args ...any) (stdsql.Result, error) {
	ex, ok := c.driver.(interface {
		ExecContext(context.Context, string, ...any) (stdsql.Result, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.ExecContext is not supported")
	}
	return ex.ExecContext(ctx, query, args...)
}

// QueryContext allows calling the underlying QueryContext method of the driver if it is supported by it.
// See, database/sql#DB.QueryContext for more information.
func (c *config) QueryContext(ctx context.Context, query string, args ...any) (*stdsql.Rows, error) {
	q, ok := c.driver.(interface {
		QueryContext(context.Context, string, ...any) (*stdsql.Rows, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.QueryContext is not supported")
	}
	return q.QueryContext(ctx, query, args...)
}
