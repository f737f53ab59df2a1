// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
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
	"github.com/missionloop/groundcontrol/ent/predicate"
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
	"github.com/missionloop/groundcontrol/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentIdentity    = "AgentIdentity"
	TypeApproval         = "Approval"
	TypeArtifact         = "Artifact"
	TypeAuthSession      = "AuthSession"
	TypeCapabilityToken  = "CapabilityToken"
	TypeDeadLetter       = "DeadLetter"
	TypeDelegationEdge   = "DelegationEdge"
	TypeEvent            = "Event"
	TypeEvidenceManifest = "EvidenceManifest"
	TypeIncident         = "Incident"
	TypeIncidentLearning = "IncidentLearning"
	TypeLesson           = "Lesson"
	TypeOwner            = "Owner"
	TypePrincipal        = "Principal"
	TypeRateLimitStreak  = "RateLimitStreak"
	TypeRoom             = "Room"
	TypeRun              = "Run"
	TypeScorecard        = "Scorecard"
	TypeSecret           = "Secret"
	TypeSkillEntry       = "SkillEntry"
	TypeStep             = "Step"
	TypeStreamHead       = "StreamHead"
	TypeThread           = "Thread"
	TypeToolCall         = "ToolCall"
	TypeWorkItemLease    = "WorkItemLease"
)

// AgentIdentityMutation represents an operation that mutates the AgentIdentity nodes in the graph.
type AgentIdentityMutation struct {
	config
	op            Op
	typ           string
	id            *string
	workspace_id  *string
	principal_id  *string
	display_name  *string
	created_at    *time.Time
	revoked_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AgentIdentity, error)
	predicates    []predicate.AgentIdentity
}

var _ ent.Mutation = (*AgentIdentityMutation)(nil)

// agentidentityOption allows management of the mutation configuration using functional options.
type agentidentityOption func(*AgentIdentityMutation)

// newAgentIdentityMutation creates new mutation for the AgentIdentity entity.
func newAgentIdentityMutation(c config, op Op, opts ...agentidentityOption) *AgentIdentityMutation {
	m := &AgentIdentityMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentIdentity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentIdentityID sets the ID field of the mutation.
func withAgentIdentityID(id string) agentidentityOption {
	return func(m *AgentIdentityMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentIdentity
		)
		m.oldValue = func(ctx context.Context) (*AgentIdentity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentIdentity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentIdentity sets the old AgentIdentity of the mutation.
func withAgentIdentity(node *AgentIdentity) agentidentityOption {
	return func(m *AgentIdentityMutation) {
		m.oldValue = func(context.Context) (*AgentIdentity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentIdentityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentIdentityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentIdentity entities.
func (m *AgentIdentityMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentIdentityMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentIdentityMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentIdentity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *AgentIdentityMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *AgentIdentityMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the AgentIdentity entity.
// If the AgentIdentity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentIdentityMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *AgentIdentityMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetPrincipalID sets the "principal_id" field.
func (m *AgentIdentityMutation) SetPrincipalID(s string) {
	m.principal_id = &s
}

// PrincipalID returns the value of the "principal_id" field in the mutation.
func (m *AgentIdentityMutation) PrincipalID() (r string, exists bool) {
	v := m.principal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPrincipalID returns the old "principal_id" field's value of the AgentIdentity entity.
// If the AgentIdentity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentIdentityMutation) OldPrincipalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrincipalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrincipalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrincipalID: %w", err)
	}
	return oldValue.PrincipalID, nil
}

// ResetPrincipalID resets all changes to the "principal_id" field.
func (m *AgentIdentityMutation) ResetPrincipalID() {
	m.principal_id = nil
}

// SetDisplayName sets the "display_name" field.
func (m *AgentIdentityMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *AgentIdentityMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the AgentIdentity entity.
// If the AgentIdentity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentIdentityMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *AgentIdentityMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[agentidentity.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *AgentIdentityMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[agentidentity.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *AgentIdentityMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, agentidentity.FieldDisplayName)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentIdentityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentIdentityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentIdentity entity.
// If the AgentIdentity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentIdentityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AgentIdentityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetRevokedAt sets the "revoked_at" field.
func (m *AgentIdentityMutation) SetRevokedAt(t time.Time) {
	m.revoked_at = &t
}

// RevokedAt returns the value of the "revoked_at" field in the mutation.
func (m *AgentIdentityMutation) RevokedAt() (r time.Time, exists bool) {
	v := m.revoked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokedAt returns the old "revoked_at" field's value of the AgentIdentity entity.
// If the AgentIdentity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentIdentityMutation) OldRevokedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokedAt: %w", err)
	}
	return oldValue.RevokedAt, nil
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (m *AgentIdentityMutation) ClearRevokedAt() {
	m.revoked_at = nil
	m.clearedFields[agentidentity.FieldRevokedAt] = struct{}{}
}

// RevokedAtCleared returns if the "revoked_at" field was cleared in this mutation.
func (m *AgentIdentityMutation) RevokedAtCleared() bool {
	_, ok := m.clearedFields[agentidentity.FieldRevokedAt]
	return ok
}

// ResetRevokedAt resets all changes to the "revoked_at" field.
func (m *AgentIdentityMutation) ResetRevokedAt() {
	m.revoked_at = nil
	delete(m.clearedFields, agentidentity.FieldRevokedAt)
}

// Where appends a list predicates to the AgentIdentityMutation builder.
func (m *AgentIdentityMutation) Where(ps ...predicate.AgentIdentity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentIdentityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentIdentityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentIdentity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentIdentityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentIdentityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentIdentity).
func (m *AgentIdentityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentIdentityMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.workspace_id != nil {
		fields = append(fields, agentidentity.FieldWorkspaceID)
	}
	if m.principal_id != nil {
		fields = append(fields, agentidentity.FieldPrincipalID)
	}
	if m.display_name != nil {
		fields = append(fields, agentidentity.FieldDisplayName)
	}
	if m.created_at != nil {
		fields = append(fields, agentidentity.FieldCreatedAt)
	}
	if m.revoked_at != nil {
		fields = append(fields, agentidentity.FieldRevokedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentIdentityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentidentity.FieldWorkspaceID:
		return m.WorkspaceID()
	case agentidentity.FieldPrincipalID:
		return m.PrincipalID()
	case agentidentity.FieldDisplayName:
		return m.DisplayName()
	case agentidentity.FieldCreatedAt:
		return m.CreatedAt()
	case agentidentity.FieldRevokedAt:
		return m.RevokedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentIdentityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentidentity.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case agentidentity.FieldPrincipalID:
		return m.OldPrincipalID(ctx)
	case agentidentity.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case agentidentity.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentidentity.FieldRevokedAt:
		return m.OldRevokedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentIdentity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentIdentityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentidentity.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case agentidentity.FieldPrincipalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrincipalID(v)
		return nil
	case agentidentity.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case agentidentity.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentidentity.FieldRevokedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentIdentity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentIdentityMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentIdentityMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentIdentityMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentIdentity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentIdentityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentidentity.FieldDisplayName) {
		fields = append(fields, agentidentity.FieldDisplayName)
	}
	if m.FieldCleared(agentidentity.FieldRevokedAt) {
		fields = append(fields, agentidentity.FieldRevokedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentIdentityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentIdentityMutation) ClearField(name string) error {
	switch name {
	case agentidentity.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	case agentidentity.FieldRevokedAt:
		m.ClearRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentIdentity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentIdentityMutation) ResetField(name string) error {
	switch name {
	case agentidentity.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case agentidentity.FieldPrincipalID:
		m.ResetPrincipalID()
		return nil
	case agentidentity.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case agentidentity.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentidentity.FieldRevokedAt:
		m.ResetRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentIdentity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentIdentityMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentIdentityMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentIdentityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentIdentityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentIdentityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentIdentityMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentIdentityMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentIdentity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentIdentityMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentIdentity edge %s", name)
}

// ApprovalMutation represents an operation that mutates the Approval nodes in the graph.
type ApprovalMutation struct {
	config
	op             Op
	typ            string
	id             *string
	workspace_id   *string
	room_id        *string
	run_id         *string
	title          *string
	status         *approval.Status
	requested_by   *string
	decided_by     *string
	decided_at     *time.Time
	correlation_id *string
	last_event_id  *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Approval, error)
	predicates     []predicate.Approval
}

var _ ent.Mutation = (*ApprovalMutation)(nil)

// approvalOption allows management of the mutation configuration using functional options.
type approvalOption func(*ApprovalMutation)

// newApprovalMutation creates new mutation for the Approval entity.
func newApprovalMutation(c config, op Op, opts ...approvalOption) *ApprovalMutation {
	m := &ApprovalMutation{
		config:        c,
		op:            op,
		typ:           TypeApproval,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApprovalID sets the ID field of the mutation.
func withApprovalID(id string) approvalOption {
	return func(m *ApprovalMutation) {
		var (
			err   error
			once  sync.Once
			value *Approval
		)
		m.oldValue = func(ctx context.Context) (*Approval, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Approval.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApproval sets the old Approval of the mutation.
func withApproval(node *Approval) approvalOption {
	return func(m *ApprovalMutation) {
		m.oldValue = func(context.Context) (*Approval, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApprovalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApprovalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Approval entities.
func (m *ApprovalMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApprovalMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApprovalMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Approval.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *ApprovalMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *ApprovalMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *ApprovalMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetRoomID sets the "room_id" field.
func (m *ApprovalMutation) SetRoomID(s string) {
	m.room_id = &s
}

// RoomID returns the value of the "room_id" field in the mutation.
func (m *ApprovalMutation) RoomID() (r string, exists bool) {
	v := m.room_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomID returns the old "room_id" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldRoomID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomID: %w", err)
	}
	return oldValue.RoomID, nil
}

// ClearRoomID clears the value of the "room_id" field.
func (m *ApprovalMutation) ClearRoomID() {
	m.room_id = nil
	m.clearedFields[approval.FieldRoomID] = struct{}{}
}

// RoomIDCleared returns if the "room_id" field was cleared in this mutation.
func (m *ApprovalMutation) RoomIDCleared() bool {
	_, ok := m.clearedFields[approval.FieldRoomID]
	return ok
}

// ResetRoomID resets all changes to the "room_id" field.
func (m *ApprovalMutation) ResetRoomID() {
	m.room_id = nil
	delete(m.clearedFields, approval.FieldRoomID)
}

// SetRunID sets the "run_id" field.
func (m *ApprovalMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ApprovalMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldRunID(ctx context.Context) (v *string, err error) {
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

// ClearRunID clears the value of the "run_id" field.
func (m *ApprovalMutation) ClearRunID() {
	m.run_id = nil
	m.clearedFields[approval.FieldRunID] = struct{}{}
}

// RunIDCleared returns if the "run_id" field was cleared in this mutation.
func (m *ApprovalMutation) RunIDCleared() bool {
	_, ok := m.clearedFields[approval.FieldRunID]
	return ok
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ApprovalMutation) ResetRunID() {
	m.run_id = nil
	delete(m.clearedFields, approval.FieldRunID)
}

// SetTitle sets the "title" field.
func (m *ApprovalMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ApprovalMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *ApprovalMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[approval.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *ApprovalMutation) TitleCleared() bool {
	_, ok := m.clearedFields[approval.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *ApprovalMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, approval.FieldTitle)
}

// SetStatus sets the "status" field.
func (m *ApprovalMutation) SetStatus(a approval.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *ApprovalMutation) Status() (r approval.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldStatus(ctx context.Context) (v approval.Status, err error) {
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
func (m *ApprovalMutation) ResetStatus() {
	m.status = nil
}

// SetRequestedBy sets the "requested_by" field.
func (m *ApprovalMutation) SetRequestedBy(s string) {
	m.requested_by = &s
}

// RequestedBy returns the value of the "requested_by" field in the mutation.
func (m *ApprovalMutation) RequestedBy() (r string, exists bool) {
	v := m.requested_by
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedBy returns the old "requested_by" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldRequestedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedBy: %w", err)
	}
	return oldValue.RequestedBy, nil
}

// ResetRequestedBy resets all changes to the "requested_by" field.
func (m *ApprovalMutation) ResetRequestedBy() {
	m.requested_by = nil
}

// SetDecidedBy sets the "decided_by" field.
func (m *ApprovalMutation) SetDecidedBy(s string) {
	m.decided_by = &s
}

// DecidedBy returns the value of the "decided_by" field in the mutation.
func (m *ApprovalMutation) DecidedBy() (r string, exists bool) {
	v := m.decided_by
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedBy returns the old "decided_by" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldDecidedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedBy: %w", err)
	}
	return oldValue.DecidedBy, nil
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (m *ApprovalMutation) ClearDecidedBy() {
	m.decided_by = nil
	m.clearedFields[approval.FieldDecidedBy] = struct{}{}
}

// DecidedByCleared returns if the "decided_by" field was cleared in this mutation.
func (m *ApprovalMutation) DecidedByCleared() bool {
	_, ok := m.clearedFields[approval.FieldDecidedBy]
	return ok
}

// ResetDecidedBy resets all changes to the "decided_by" field.
func (m *ApprovalMutation) ResetDecidedBy() {
	m.decided_by = nil
	delete(m.clearedFields, approval.FieldDecidedBy)
}

// SetDecidedAt sets the "decided_at" field.
func (m *ApprovalMutation) SetDecidedAt(t time.Time) {
	m.decided_at = &t
}

// DecidedAt returns the value of the "decided_at" field in the mutation.
func (m *ApprovalMutation) DecidedAt() (r time.Time, exists bool) {
	v := m.decided_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedAt returns the old "decided_at" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldDecidedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedAt: %w", err)
	}
	return oldValue.DecidedAt, nil
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (m *ApprovalMutation) ClearDecidedAt() {
	m.decided_at = nil
	m.clearedFields[approval.FieldDecidedAt] = struct{}{}
}

// DecidedAtCleared returns if the "decided_at" field was cleared in this mutation.
func (m *ApprovalMutation) DecidedAtCleared() bool {
	_, ok := m.clearedFields[approval.FieldDecidedAt]
	return ok
}

// ResetDecidedAt resets all changes to the "decided_at" field.
func (m *ApprovalMutation) ResetDecidedAt() {
	m.decided_at = nil
	delete(m.clearedFields, approval.FieldDecidedAt)
}

// SetCorrelationID sets the "correlation_id" field.
func (m *ApprovalMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *ApprovalMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *ApprovalMutation) ResetCorrelationID() {
	m.correlation_id = nil
}

// SetLastEventID sets the "last_event_id" field.
func (m *ApprovalMutation) SetLastEventID(s string) {
	m.last_event_id = &s
}

// LastEventID returns the value of the "last_event_id" field in the mutation.
func (m *ApprovalMutation) LastEventID() (r string, exists bool) {
	v := m.last_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEventID returns the old "last_event_id" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldLastEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEventID: %w", err)
	}
	return oldValue.LastEventID, nil
}

// ResetLastEventID resets all changes to the "last_event_id" field.
func (m *ApprovalMutation) ResetLastEventID() {
	m.last_event_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ApprovalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApprovalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ApprovalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ApprovalMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ApprovalMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ApprovalMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ApprovalMutation builder.
func (m *ApprovalMutation) Where(ps ...predicate.Approval) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApprovalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApprovalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Approval, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApprovalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApprovalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Approval).
func (m *ApprovalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApprovalMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.workspace_id != nil {
		fields = append(fields, approval.FieldWorkspaceID)
	}
	if m.room_id != nil {
		fields = append(fields, approval.FieldRoomID)
	}
	if m.run_id != nil {
		fields = append(fields, approval.FieldRunID)
	}
	if m.title != nil {
		fields = append(fields, approval.FieldTitle)
	}
	if m.status != nil {
		fields = append(fields, approval.FieldStatus)
	}
	if m.requested_by != nil {
		fields = append(fields, approval.FieldRequestedBy)
	}
	if m.decided_by != nil {
		fields = append(fields, approval.FieldDecidedBy)
	}
	if m.decided_at != nil {
		fields = append(fields, approval.FieldDecidedAt)
	}
	if m.correlation_id != nil {
		fields = append(fields, approval.FieldCorrelationID)
	}
	if m.last_event_id != nil {
		fields = append(fields, approval.FieldLastEventID)
	}
	if m.created_at != nil {
		fields = append(fields, approval.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, approval.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApprovalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case approval.FieldWorkspaceID:
		return m.WorkspaceID()
	case approval.FieldRoomID:
		return m.RoomID()
	case approval.FieldRunID:
		return m.RunID()
	case approval.FieldTitle:
		return m.Title()
	case approval.FieldStatus:
		return m.Status()
	case approval.FieldRequestedBy:
		return m.RequestedBy()
	case approval.FieldDecidedBy:
		return m.DecidedBy()
	case approval.FieldDecidedAt:
		return m.DecidedAt()
	case approval.FieldCorrelationID:
		return m.CorrelationID()
	case approval.FieldLastEventID:
		return m.LastEventID()
	case approval.FieldCreatedAt:
		return m.CreatedAt()
	case approval.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApprovalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case approval.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case approval.FieldRoomID:
		return m.OldRoomID(ctx)
	case approval.FieldRunID:
		return m.OldRunID(ctx)
	case approval.FieldTitle:
		return m.OldTitle(ctx)
	case approval.FieldStatus:
		return m.OldStatus(ctx)
	case approval.FieldRequestedBy:
		return m.OldRequestedBy(ctx)
	case approval.FieldDecidedBy:
		return m.OldDecidedBy(ctx)
	case approval.FieldDecidedAt:
		return m.OldDecidedAt(ctx)
	case approval.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case approval.FieldLastEventID:
		return m.OldLastEventID(ctx)
	case approval.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case approval.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Approval field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case approval.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case approval.FieldRoomID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomID(v)
		return nil
	case approval.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case approval.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case approval.FieldStatus:
		v, ok := value.(approval.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case approval.FieldRequestedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedBy(v)
		return nil
	case approval.FieldDecidedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedBy(v)
		return nil
	case approval.FieldDecidedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedAt(v)
		return nil
	case approval.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case approval.FieldLastEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEventID(v)
		return nil
	case approval.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case approval.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Approval field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApprovalMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApprovalMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Approval numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApprovalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(approval.FieldRoomID) {
		fields = append(fields, approval.FieldRoomID)
	}
	if m.FieldCleared(approval.FieldRunID) {
		fields = append(fields, approval.FieldRunID)
	}
	if m.FieldCleared(approval.FieldTitle) {
		fields = append(fields, approval.FieldTitle)
	}
	if m.FieldCleared(approval.FieldDecidedBy) {
		fields = append(fields, approval.FieldDecidedBy)
	}
	if m.FieldCleared(approval.FieldDecidedAt) {
		fields = append(fields, approval.FieldDecidedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApprovalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApprovalMutation) ClearField(name string) error {
	switch name {
	case approval.FieldRoomID:
		m.ClearRoomID()
		return nil
	case approval.FieldRunID:
		m.ClearRunID()
		return nil
	case approval.FieldTitle:
		m.ClearTitle()
		return nil
	case approval.FieldDecidedBy:
		m.ClearDecidedBy()
		return nil
	case approval.FieldDecidedAt:
		m.ClearDecidedAt()
		return nil
	}
	return fmt.Errorf("unknown Approval nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApprovalMutation) ResetField(name string) error {
	switch name {
	case approval.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case approval.FieldRoomID:
		m.ResetRoomID()
		return nil
	case approval.FieldRunID:
		m.ResetRunID()
		return nil
	case approval.FieldTitle:
		m.ResetTitle()
		return nil
	case approval.FieldStatus:
		m.ResetStatus()
		return nil
	case approval.FieldRequestedBy:
		m.ResetRequestedBy()
		return nil
	case approval.FieldDecidedBy:
		m.ResetDecidedBy()
		return nil
	case approval.FieldDecidedAt:
		m.ResetDecidedAt()
		return nil
	case approval.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case approval.FieldLastEventID:
		m.ResetLastEventID()
		return nil
	case approval.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case approval.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Approval field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApprovalMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApprovalMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApprovalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApprovalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApprovalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApprovalMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApprovalMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Approval unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApprovalMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Approval edge %s", name)
}

// ArtifactMutation represents an operation that mutates the Artifact nodes in the graph.
type ArtifactMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	workspace_id        *string
	run_id              *string
	object_key          *string
	media_type          *string
	size_bytes          *int64
	addsize_bytes       *int64
	created_by_agent_id *string
	correlation_id      *string
	last_event_id       *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Artifact, error)
	predicates          []predicate.Artifact
}

var _ ent.Mutation = (*ArtifactMutation)(nil)

// artifactOption allows management of the mutation configuration using functional options.
type artifactOption func(*ArtifactMutation)

// newArtifactMutation creates new mutation for the Artifact entity.
func newArtifactMutation(c config, op Op, opts ...artifactOption) *ArtifactMutation {
	m := &ArtifactMutation{
		config:        c,
		op:            op,
		typ:           TypeArtifact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArtifactID sets the ID field of the mutation.
func withArtifactID(id string) artifactOption {
	return func(m *ArtifactMutation) {
		var (
			err   error
			once  sync.Once
			value *Artifact
		)
		m.oldValue = func(ctx context.Context) (*Artifact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Artifact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArtifact sets the old Artifact of the mutation.
func withArtifact(node *Artifact) artifactOption {
	return func(m *ArtifactMutation) {
		m.oldValue = func(context.Context) (*Artifact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArtifactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArtifactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Artifact entities.
func (m *ArtifactMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArtifactMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArtifactMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Artifact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *ArtifactMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *ArtifactMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *ArtifactMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetRunID sets the "run_id" field.
func (m *ArtifactMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ArtifactMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldRunID(ctx context.Context) (v *string, err error) {
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

// ClearRunID clears the value of the "run_id" field.
func (m *ArtifactMutation) ClearRunID() {
	m.run_id = nil
	m.clearedFields[artifact.FieldRunID] = struct{}{}
}

// RunIDCleared returns if the "run_id" field was cleared in this mutation.
func (m *ArtifactMutation) RunIDCleared() bool {
	_, ok := m.clearedFields[artifact.FieldRunID]
	return ok
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ArtifactMutation) ResetRunID() {
	m.run_id = nil
	delete(m.clearedFields, artifact.FieldRunID)
}

// SetObjectKey sets the "object_key" field.
func (m *ArtifactMutation) SetObjectKey(s string) {
	m.object_key = &s
}

// ObjectKey returns the value of the "object_key" field in the mutation.
func (m *ArtifactMutation) ObjectKey() (r string, exists bool) {
	v := m.object_key
	if v == nil {
		return
	}
	return *v, true
}

// OldObjectKey returns the old "object_key" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldObjectKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjectKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjectKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjectKey: %w", err)
	}
	return oldValue.ObjectKey, nil
}

// ResetObjectKey resets all changes to the "object_key" field.
func (m *ArtifactMutation) ResetObjectKey() {
	m.object_key = nil
}

// SetMediaType sets the "media_type" field.
func (m *ArtifactMutation) SetMediaType(s string) {
	m.media_type = &s
}

// MediaType returns the value of the "media_type" field in the mutation.
func (m *ArtifactMutation) MediaType() (r string, exists bool) {
	v := m.media_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaType returns the old "media_type" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldMediaType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaType: %w", err)
	}
	return oldValue.MediaType, nil
}

// ClearMediaType clears the value of the "media_type" field.
func (m *ArtifactMutation) ClearMediaType() {
	m.media_type = nil
	m.clearedFields[artifact.FieldMediaType] = struct{}{}
}

// MediaTypeCleared returns if the "media_type" field was cleared in this mutation.
func (m *ArtifactMutation) MediaTypeCleared() bool {
	_, ok := m.clearedFields[artifact.FieldMediaType]
	return ok
}

// ResetMediaType resets all changes to the "media_type" field.
func (m *ArtifactMutation) ResetMediaType() {
	m.media_type = nil
	delete(m.clearedFields, artifact.FieldMediaType)
}

// SetSizeBytes sets the "size_bytes" field.
func (m *ArtifactMutation) SetSizeBytes(i int64) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *ArtifactMutation) SizeBytes() (r int64, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *ArtifactMutation) AddSizeBytes(i int64) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *ArtifactMutation) AddedSizeBytes() (r int64, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ClearSizeBytes clears the value of the "size_bytes" field.
func (m *ArtifactMutation) ClearSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
	m.clearedFields[artifact.FieldSizeBytes] = struct{}{}
}

// SizeBytesCleared returns if the "size_bytes" field was cleared in this mutation.
func (m *ArtifactMutation) SizeBytesCleared() bool {
	_, ok := m.clearedFields[artifact.FieldSizeBytes]
	return ok
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *ArtifactMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
	delete(m.clearedFields, artifact.FieldSizeBytes)
}

// SetCreatedByAgentID sets the "created_by_agent_id" field.
func (m *ArtifactMutation) SetCreatedByAgentID(s string) {
	m.created_by_agent_id = &s
}

// CreatedByAgentID returns the value of the "created_by_agent_id" field in the mutation.
func (m *ArtifactMutation) CreatedByAgentID() (r string, exists bool) {
	v := m.created_by_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedByAgentID returns the old "created_by_agent_id" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldCreatedByAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedByAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedByAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedByAgentID: %w", err)
	}
	return oldValue.CreatedByAgentID, nil
}

// ClearCreatedByAgentID clears the value of the "created_by_agent_id" field.
func (m *ArtifactMutation) ClearCreatedByAgentID() {
	m.created_by_agent_id = nil
	m.clearedFields[artifact.FieldCreatedByAgentID] = struct{}{}
}

// CreatedByAgentIDCleared returns if the "created_by_agent_id" field was cleared in this mutation.
func (m *ArtifactMutation) CreatedByAgentIDCleared() bool {
	_, ok := m.clearedFields[artifact.FieldCreatedByAgentID]
	return ok
}

// ResetCreatedByAgentID resets all changes to the "created_by_agent_id" field.
func (m *ArtifactMutation) ResetCreatedByAgentID() {
	m.created_by_agent_id = nil
	delete(m.clearedFields, artifact.FieldCreatedByAgentID)
}

// SetCorrelationID sets the "correlation_id" field.
func (m *ArtifactMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *ArtifactMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *ArtifactMutation) ResetCorrelationID() {
	m.correlation_id = nil
}

// SetLastEventID sets the "last_event_id" field.
func (m *ArtifactMutation) SetLastEventID(s string) {
	m.last_event_id = &s
}

// LastEventID returns the value of the "last_event_id" field in the mutation.
func (m *ArtifactMutation) LastEventID() (r string, exists bool) {
	v := m.last_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEventID returns the old "last_event_id" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldLastEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEventID: %w", err)
	}
	return oldValue.LastEventID, nil
}

// ResetLastEventID resets all changes to the "last_event_id" field.
func (m *ArtifactMutation) ResetLastEventID() {
	m.last_event_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ArtifactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ArtifactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ArtifactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ArtifactMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ArtifactMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ArtifactMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ArtifactMutation builder.
func (m *ArtifactMutation) Where(ps ...predicate.Artifact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArtifactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArtifactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Artifact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArtifactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArtifactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Artifact).
func (m *ArtifactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArtifactMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.workspace_id != nil {
		fields = append(fields, artifact.FieldWorkspaceID)
	}
	if m.run_id != nil {
		fields = append(fields, artifact.FieldRunID)
	}
	if m.object_key != nil {
		fields = append(fields, artifact.FieldObjectKey)
	}
	if m.media_type != nil {
		fields = append(fields, artifact.FieldMediaType)
	}
	if m.size_bytes != nil {
		fields = append(fields, artifact.FieldSizeBytes)
	}
	if m.created_by_agent_id != nil {
		fields = append(fields, artifact.FieldCreatedByAgentID)
	}
	if m.correlation_id != nil {
		fields = append(fields, artifact.FieldCorrelationID)
	}
	if m.last_event_id != nil {
		fields = append(fields, artifact.FieldLastEventID)
	}
	if m.created_at != nil {
		fields = append(fields, artifact.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, artifact.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArtifactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case artifact.FieldWorkspaceID:
		return m.WorkspaceID()
	case artifact.FieldRunID:
		return m.RunID()
	case artifact.FieldObjectKey:
		return m.ObjectKey()
	case artifact.FieldMediaType:
		return m.MediaType()
	case artifact.FieldSizeBytes:
		return m.SizeBytes()
	case artifact.FieldCreatedByAgentID:
		return m.CreatedByAgentID()
	case artifact.FieldCorrelationID:
		return m.CorrelationID()
	case artifact.FieldLastEventID:
		return m.LastEventID()
	case artifact.FieldCreatedAt:
		return m.CreatedAt()
	case artifact.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArtifactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case artifact.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case artifact.FieldRunID:
		return m.OldRunID(ctx)
	case artifact.FieldObjectKey:
		return m.OldObjectKey(ctx)
	case artifact.FieldMediaType:
		return m.OldMediaType(ctx)
	case artifact.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case artifact.FieldCreatedByAgentID:
		return m.OldCreatedByAgentID(ctx)
	case artifact.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case artifact.FieldLastEventID:
		return m.OldLastEventID(ctx)
	case artifact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case artifact.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Artifact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArtifactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case artifact.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case artifact.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case artifact.FieldObjectKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjectKey(v)
		return nil
	case artifact.FieldMediaType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaType(v)
		return nil
	case artifact.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case artifact.FieldCreatedByAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedByAgentID(v)
		return nil
	case artifact.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case artifact.FieldLastEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEventID(v)
		return nil
	case artifact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case artifact.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Artifact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArtifactMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, artifact.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArtifactMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case artifact.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArtifactMutation) AddField(name string, value ent.Value) error {
	switch name {
	case artifact.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown Artifact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArtifactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(artifact.FieldRunID) {
		fields = append(fields, artifact.FieldRunID)
	}
	if m.FieldCleared(artifact.FieldMediaType) {
		fields = append(fields, artifact.FieldMediaType)
	}
	if m.FieldCleared(artifact.FieldSizeBytes) {
		fields = append(fields, artifact.FieldSizeBytes)
	}
	if m.FieldCleared(artifact.FieldCreatedByAgentID) {
		fields = append(fields, artifact.FieldCreatedByAgentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArtifactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArtifactMutation) ClearField(name string) error {
	switch name {
	case artifact.FieldRunID:
		m.ClearRunID()
		return nil
	case artifact.FieldMediaType:
		m.ClearMediaType()
		return nil
	case artifact.FieldSizeBytes:
		m.ClearSizeBytes()
		return nil
	case artifact.FieldCreatedByAgentID:
		m.ClearCreatedByAgentID()
		return nil
	}
	return fmt.Errorf("unknown Artifact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArtifactMutation) ResetField(name string) error {
	switch name {
	case artifact.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case artifact.FieldRunID:
		m.ResetRunID()
		return nil
	case artifact.FieldObjectKey:
		m.ResetObjectKey()
		return nil
	case artifact.FieldMediaType:
		m.ResetMediaType()
		return nil
	case artifact.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case artifact.FieldCreatedByAgentID:
		m.ResetCreatedByAgentID()
		return nil
	case artifact.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case artifact.FieldLastEventID:
		m.ResetLastEventID()
		return nil
	case artifact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case artifact.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Artifact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArtifactMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArtifactMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArtifactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArtifactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArtifactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArtifactMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArtifactMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Artifact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArtifactMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Artifact edge %s", name)
}

// AuthSessionMutation represents an operation that mutates the AuthSession nodes in the graph.
type AuthSessionMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	owner_id           *string
	workspace_id       *string
	refresh_token_hash *string
	access_expires_at  *time.Time
	refresh_expires_at *time.Time
	created_at         *time.Time
	revoked_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*AuthSession, error)
	predicates         []predicate.AuthSession
}

var _ ent.Mutation = (*AuthSessionMutation)(nil)

// authsessionOption allows management of the mutation configuration using functional options.
type authsessionOption func(*AuthSessionMutation)

// newAuthSessionMutation creates new mutation for the AuthSession entity.
func newAuthSessionMutation(c config, op Op, opts ...authsessionOption) *AuthSessionMutation {
	m := &AuthSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeAuthSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuthSessionID sets the ID field of the mutation.
func withAuthSessionID(id string) authsessionOption {
	return func(m *AuthSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *AuthSession
		)
		m.oldValue = func(ctx context.Context) (*AuthSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuthSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuthSession sets the old AuthSession of the mutation.
func withAuthSession(node *AuthSession) authsessionOption {
	return func(m *AuthSessionMutation) {
		m.oldValue = func(context.Context) (*AuthSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuthSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuthSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuthSession entities.
func (m *AuthSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuthSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuthSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuthSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *AuthSessionMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *AuthSessionMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the AuthSession entity.
// If the AuthSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthSessionMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *AuthSessionMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *AuthSessionMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *AuthSessionMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the AuthSession entity.
// If the AuthSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthSessionMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *AuthSessionMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetRefreshTokenHash sets the "refresh_token_hash" field.
func (m *AuthSessionMutation) SetRefreshTokenHash(s string) {
	m.refresh_token_hash = &s
}

// RefreshTokenHash returns the value of the "refresh_token_hash" field in the mutation.
func (m *AuthSessionMutation) RefreshTokenHash() (r string, exists bool) {
	v := m.refresh_token_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldRefreshTokenHash returns the old "refresh_token_hash" field's value of the AuthSession entity.
// If the AuthSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthSessionMutation) OldRefreshTokenHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefreshTokenHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefreshTokenHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefreshTokenHash: %w", err)
	}
	return oldValue.RefreshTokenHash, nil
}

// ResetRefreshTokenHash resets all changes to the "refresh_token_hash" field.
func (m *AuthSessionMutation) ResetRefreshTokenHash() {
	m.refresh_token_hash = nil
}

// SetAccessExpiresAt sets the "access_expires_at" field.
func (m *AuthSessionMutation) SetAccessExpiresAt(t time.Time) {
	m.access_expires_at = &t
}

// AccessExpiresAt returns the value of the "access_expires_at" field in the mutation.
func (m *AuthSessionMutation) AccessExpiresAt() (r time.Time, exists bool) {
	v := m.access_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessExpiresAt returns the old "access_expires_at" field's value of the AuthSession entity.
// If the AuthSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthSessionMutation) OldAccessExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessExpiresAt: %w", err)
	}
	return oldValue.AccessExpiresAt, nil
}

// ResetAccessExpiresAt resets all changes to the "access_expires_at" field.
func (m *AuthSessionMutation) ResetAccessExpiresAt() {
	m.access_expires_at = nil
}

// SetRefreshExpiresAt sets the "refresh_expires_at" field.
func (m *AuthSessionMutation) SetRefreshExpiresAt(t time.Time) {
	m.refresh_expires_at = &t
}

// RefreshExpiresAt returns the value of the "refresh_expires_at" field in the mutation.
func (m *AuthSessionMutation) RefreshExpiresAt() (r time.Time, exists bool) {
	v := m.refresh_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRefreshExpiresAt returns the old "refresh_expires_at" field's value of the AuthSession entity.
// If the AuthSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthSessionMutation) OldRefreshExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefreshExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefreshExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefreshExpiresAt: %w", err)
	}
	return oldValue.RefreshExpiresAt, nil
}

// ResetRefreshExpiresAt resets all changes to the "refresh_expires_at" field.
func (m *AuthSessionMutation) ResetRefreshExpiresAt() {
	m.refresh_expires_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AuthSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuthSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuthSession entity.
// If the AuthSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AuthSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetRevokedAt sets the "revoked_at" field.
func (m *AuthSessionMutation) SetRevokedAt(t time.Time) {
	m.revoked_at = &t
}

// RevokedAt returns the value of the "revoked_at" field in the mutation.
func (m *AuthSessionMutation) RevokedAt() (r time.Time, exists bool) {
	v := m.revoked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokedAt returns the old "revoked_at" field's value of the AuthSession entity.
// If the AuthSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthSessionMutation) OldRevokedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokedAt: %w", err)
	}
	return oldValue.RevokedAt, nil
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (m *AuthSessionMutation) ClearRevokedAt() {
	m.revoked_at = nil
	m.clearedFields[authsession.FieldRevokedAt] = struct{}{}
}

// RevokedAtCleared returns if the "revoked_at" field was cleared in this mutation.
func (m *AuthSessionMutation) RevokedAtCleared() bool {
	_, ok := m.clearedFields[authsession.FieldRevokedAt]
	return ok
}

// ResetRevokedAt resets all changes to the "revoked_at" field.
func (m *AuthSessionMutation) ResetRevokedAt() {
	m.revoked_at = nil
	delete(m.clearedFields, authsession.FieldRevokedAt)
}

// Where appends a list predicates to the AuthSessionMutation builder.
func (m *AuthSessionMutation) Where(ps ...predicate.AuthSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuthSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuthSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuthSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuthSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuthSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuthSession).
func (m *AuthSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuthSessionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.owner_id != nil {
		fields = append(fields, authsession.FieldOwnerID)
	}
	if m.workspace_id != nil {
		fields = append(fields, authsession.FieldWorkspaceID)
	}
	if m.refresh_token_hash != nil {
		fields = append(fields, authsession.FieldRefreshTokenHash)
	}
	if m.access_expires_at != nil {
		fields = append(fields, authsession.FieldAccessExpiresAt)
	}
	if m.refresh_expires_at != nil {
		fields = append(fields, authsession.FieldRefreshExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, authsession.FieldCreatedAt)
	}
	if m.revoked_at != nil {
		fields = append(fields, authsession.FieldRevokedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuthSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case authsession.FieldOwnerID:
		return m.OwnerID()
	case authsession.FieldWorkspaceID:
		return m.WorkspaceID()
	case authsession.FieldRefreshTokenHash:
		return m.RefreshTokenHash()
	case authsession.FieldAccessExpiresAt:
		return m.AccessExpiresAt()
	case authsession.FieldRefreshExpiresAt:
		return m.RefreshExpiresAt()
	case authsession.FieldCreatedAt:
		return m.CreatedAt()
	case authsession.FieldRevokedAt:
		return m.RevokedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuthSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case authsession.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case authsession.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case authsession.FieldRefreshTokenHash:
		return m.OldRefreshTokenHash(ctx)
	case authsession.FieldAccessExpiresAt:
		return m.OldAccessExpiresAt(ctx)
	case authsession.FieldRefreshExpiresAt:
		return m.OldRefreshExpiresAt(ctx)
	case authsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case authsession.FieldRevokedAt:
		return m.OldRevokedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuthSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuthSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case authsession.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case authsession.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case authsession.FieldRefreshTokenHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefreshTokenHash(v)
		return nil
	case authsession.FieldAccessExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessExpiresAt(v)
		return nil
	case authsession.FieldRefreshExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefreshExpiresAt(v)
		return nil
	case authsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case authsession.FieldRevokedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuthSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuthSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuthSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuthSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuthSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuthSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(authsession.FieldRevokedAt) {
		fields = append(fields, authsession.FieldRevokedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuthSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuthSessionMutation) ClearField(name string) error {
	switch name {
	case authsession.FieldRevokedAt:
		m.ClearRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown AuthSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuthSessionMutation) ResetField(name string) error {
	switch name {
	case authsession.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case authsession.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case authsession.FieldRefreshTokenHash:
		m.ResetRefreshTokenHash()
		return nil
	case authsession.FieldAccessExpiresAt:
		m.ResetAccessExpiresAt()
		return nil
	case authsession.FieldRefreshExpiresAt:
		m.ResetRefreshExpiresAt()
		return nil
	case authsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case authsession.FieldRevokedAt:
		m.ResetRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown AuthSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuthSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuthSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuthSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuthSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuthSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuthSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuthSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuthSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuthSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuthSession edge %s", name)
}

// CapabilityTokenMutation represents an operation that mutates the CapabilityToken nodes in the graph.
type CapabilityTokenMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	workspace_id            *string
	issued_to_principal_id  *string
	granted_by_principal_id *string
	parent_token_id         *string
	scopes                  *models.ScopeSet
	valid_until             *time.Time
	created_at              *time.Time
	revoked_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*CapabilityToken, error)
	predicates              []predicate.CapabilityToken
}

var _ ent.Mutation = (*CapabilityTokenMutation)(nil)

// capabilitytokenOption allows management of the mutation configuration using functional options.
type capabilitytokenOption func(*CapabilityTokenMutation)

// newCapabilityTokenMutation creates new mutation for the CapabilityToken entity.
func newCapabilityTokenMutation(c config, op Op, opts ...capabilitytokenOption) *CapabilityTokenMutation {
	m := &CapabilityTokenMutation{
		config:        c,
		op:            op,
		typ:           TypeCapabilityToken,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCapabilityTokenID sets the ID field of the mutation.
func withCapabilityTokenID(id string) capabilitytokenOption {
	return func(m *CapabilityTokenMutation) {
		var (
			err   error
			once  sync.Once
			value *CapabilityToken
		)
		m.oldValue = func(ctx context.Context) (*CapabilityToken, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CapabilityToken.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCapabilityToken sets the old CapabilityToken of the mutation.
func withCapabilityToken(node *CapabilityToken) capabilitytokenOption {
	return func(m *CapabilityTokenMutation) {
		m.oldValue = func(context.Context) (*CapabilityToken, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CapabilityTokenMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CapabilityTokenMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CapabilityToken entities.
func (m *CapabilityTokenMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CapabilityTokenMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CapabilityTokenMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CapabilityToken.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *CapabilityTokenMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *CapabilityTokenMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the CapabilityToken entity.
// If the CapabilityToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapabilityTokenMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *CapabilityTokenMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetIssuedToPrincipalID sets the "issued_to_principal_id" field.
func (m *CapabilityTokenMutation) SetIssuedToPrincipalID(s string) {
	m.issued_to_principal_id = &s
}

// IssuedToPrincipalID returns the value of the "issued_to_principal_id" field in the mutation.
func (m *CapabilityTokenMutation) IssuedToPrincipalID() (r string, exists bool) {
	v := m.issued_to_principal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIssuedToPrincipalID returns the old "issued_to_principal_id" field's value of the CapabilityToken entity.
// If the CapabilityToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapabilityTokenMutation) OldIssuedToPrincipalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssuedToPrincipalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssuedToPrincipalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssuedToPrincipalID: %w", err)
	}
	return oldValue.IssuedToPrincipalID, nil
}

// ResetIssuedToPrincipalID resets all changes to the "issued_to_principal_id" field.
func (m *CapabilityTokenMutation) ResetIssuedToPrincipalID() {
	m.issued_to_principal_id = nil
}

// SetGrantedByPrincipalID sets the "granted_by_principal_id" field.
func (m *CapabilityTokenMutation) SetGrantedByPrincipalID(s string) {
	m.granted_by_principal_id = &s
}

// GrantedByPrincipalID returns the value of the "granted_by_principal_id" field in the mutation.
func (m *CapabilityTokenMutation) GrantedByPrincipalID() (r string, exists bool) {
	v := m.granted_by_principal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGrantedByPrincipalID returns the old "granted_by_principal_id" field's value of the CapabilityToken entity.
// If the CapabilityToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapabilityTokenMutation) OldGrantedByPrincipalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrantedByPrincipalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrantedByPrincipalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrantedByPrincipalID: %w", err)
	}
	return oldValue.GrantedByPrincipalID, nil
}

// ResetGrantedByPrincipalID resets all changes to the "granted_by_principal_id" field.
func (m *CapabilityTokenMutation) ResetGrantedByPrincipalID() {
	m.granted_by_principal_id = nil
}

// SetParentTokenID sets the "parent_token_id" field.
func (m *CapabilityTokenMutation) SetParentTokenID(s string) {
	m.parent_token_id = &s
}

// ParentTokenID returns the value of the "parent_token_id" field in the mutation.
func (m *CapabilityTokenMutation) ParentTokenID() (r string, exists bool) {
	v := m.parent_token_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentTokenID returns the old "parent_token_id" field's value of the CapabilityToken entity.
// If the CapabilityToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapabilityTokenMutation) OldParentTokenID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentTokenID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentTokenID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentTokenID: %w", err)
	}
	return oldValue.ParentTokenID, nil
}

// ClearParentTokenID clears the value of the "parent_token_id" field.
func (m *CapabilityTokenMutation) ClearParentTokenID() {
	m.parent_token_id = nil
	m.clearedFields[capabilitytoken.FieldParentTokenID] = struct{}{}
}

// ParentTokenIDCleared returns if the "parent_token_id" field was cleared in this mutation.
func (m *CapabilityTokenMutation) ParentTokenIDCleared() bool {
	_, ok := m.clearedFields[capabilitytoken.FieldParentTokenID]
	return ok
}

// ResetParentTokenID resets all changes to the "parent_token_id" field.
func (m *CapabilityTokenMutation) ResetParentTokenID() {
	m.parent_token_id = nil
	delete(m.clearedFields, capabilitytoken.FieldParentTokenID)
}

// SetScopes sets the "scopes" field.
func (m *CapabilityTokenMutation) SetScopes(ms models.ScopeSet) {
	m.scopes = &ms
}

// Scopes returns the value of the "scopes" field in the mutation.
func (m *CapabilityTokenMutation) Scopes() (r models.ScopeSet, exists bool) {
	v := m.scopes
	if v == nil {
		return
	}
	return *v, true
}

// OldScopes returns the old "scopes" field's value of the CapabilityToken entity.
// If the CapabilityToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapabilityTokenMutation) OldScopes(ctx context.Context) (v models.ScopeSet, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopes: %w", err)
	}
	return oldValue.Scopes, nil
}

// ResetScopes resets all changes to the "scopes" field.
func (m *CapabilityTokenMutation) ResetScopes() {
	m.scopes = nil
}

// SetValidUntil sets the "valid_until" field.
func (m *CapabilityTokenMutation) SetValidUntil(t time.Time) {
	m.valid_until = &t
}

// ValidUntil returns the value of the "valid_until" field in the mutation.
func (m *CapabilityTokenMutation) ValidUntil() (r time.Time, exists bool) {
	v := m.valid_until
	if v == nil {
		return
	}
	return *v, true
}

// OldValidUntil returns the old "valid_until" field's value of the CapabilityToken entity.
// If the CapabilityToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapabilityTokenMutation) OldValidUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidUntil: %w", err)
	}
	return oldValue.ValidUntil, nil
}

// ClearValidUntil clears the value of the "valid_until" field.
func (m *CapabilityTokenMutation) ClearValidUntil() {
	m.valid_until = nil
	m.clearedFields[capabilitytoken.FieldValidUntil] = struct{}{}
}

// ValidUntilCleared returns if the "valid_until" field was cleared in this mutation.
func (m *CapabilityTokenMutation) ValidUntilCleared() bool {
	_, ok := m.clearedFields[capabilitytoken.FieldValidUntil]
	return ok
}

// ResetValidUntil resets all changes to the "valid_until" field.
func (m *CapabilityTokenMutation) ResetValidUntil() {
	m.valid_until = nil
	delete(m.clearedFields, capabilitytoken.FieldValidUntil)
}

// SetCreatedAt sets the "created_at" field.
func (m *CapabilityTokenMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CapabilityTokenMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CapabilityToken entity.
// If the CapabilityToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapabilityTokenMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CapabilityTokenMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetRevokedAt sets the "revoked_at" field.
func (m *CapabilityTokenMutation) SetRevokedAt(t time.Time) {
	m.revoked_at = &t
}

// RevokedAt returns the value of the "revoked_at" field in the mutation.
func (m *CapabilityTokenMutation) RevokedAt() (r time.Time, exists bool) {
	v := m.revoked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokedAt returns the old "revoked_at" field's value of the CapabilityToken entity.
// If the CapabilityToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapabilityTokenMutation) OldRevokedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokedAt: %w", err)
	}
	return oldValue.RevokedAt, nil
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (m *CapabilityTokenMutation) ClearRevokedAt() {
	m.revoked_at = nil
	m.clearedFields[capabilitytoken.FieldRevokedAt] = struct{}{}
}

// RevokedAtCleared returns if the "revoked_at" field was cleared in this mutation.
func (m *CapabilityTokenMutation) RevokedAtCleared() bool {
	_, ok := m.clearedFields[capabilitytoken.FieldRevokedAt]
	return ok
}

// ResetRevokedAt resets all changes to the "revoked_at" field.
func (m *CapabilityTokenMutation) ResetRevokedAt() {
	m.revoked_at = nil
	delete(m.clearedFields, capabilitytoken.FieldRevokedAt)
}

// Where appends a list predicates to the CapabilityTokenMutation builder.
func (m *CapabilityTokenMutation) Where(ps ...predicate.CapabilityToken) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CapabilityTokenMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CapabilityTokenMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CapabilityToken, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CapabilityTokenMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CapabilityTokenMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CapabilityToken).
func (m *CapabilityTokenMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CapabilityTokenMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.workspace_id != nil {
		fields = append(fields, capabilitytoken.FieldWorkspaceID)
	}
	if m.issued_to_principal_id != nil {
		fields = append(fields, capabilitytoken.FieldIssuedToPrincipalID)
	}
	if m.granted_by_principal_id != nil {
		fields = append(fields, capabilitytoken.FieldGrantedByPrincipalID)
	}
	if m.parent_token_id != nil {
		fields = append(fields, capabilitytoken.FieldParentTokenID)
	}
	if m.scopes != nil {
		fields = append(fields, capabilitytoken.FieldScopes)
	}
	if m.valid_until != nil {
		fields = append(fields, capabilitytoken.FieldValidUntil)
	}
	if m.created_at != nil {
		fields = append(fields, capabilitytoken.FieldCreatedAt)
	}
	if m.revoked_at != nil {
		fields = append(fields, capabilitytoken.FieldRevokedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CapabilityTokenMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case capabilitytoken.FieldWorkspaceID:
		return m.WorkspaceID()
	case capabilitytoken.FieldIssuedToPrincipalID:
		return m.IssuedToPrincipalID()
	case capabilitytoken.FieldGrantedByPrincipalID:
		return m.GrantedByPrincipalID()
	case capabilitytoken.FieldParentTokenID:
		return m.ParentTokenID()
	case capabilitytoken.FieldScopes:
		return m.Scopes()
	case capabilitytoken.FieldValidUntil:
		return m.ValidUntil()
	case capabilitytoken.FieldCreatedAt:
		return m.CreatedAt()
	case capabilitytoken.FieldRevokedAt:
		return m.RevokedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CapabilityTokenMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case capabilitytoken.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case capabilitytoken.FieldIssuedToPrincipalID:
		return m.OldIssuedToPrincipalID(ctx)
	case capabilitytoken.FieldGrantedByPrincipalID:
		return m.OldGrantedByPrincipalID(ctx)
	case capabilitytoken.FieldParentTokenID:
		return m.OldParentTokenID(ctx)
	case capabilitytoken.FieldScopes:
		return m.OldScopes(ctx)
	case capabilitytoken.FieldValidUntil:
		return m.OldValidUntil(ctx)
	case capabilitytoken.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case capabilitytoken.FieldRevokedAt:
		return m.OldRevokedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CapabilityToken field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CapabilityTokenMutation) SetField(name string, value ent.Value) error {
	switch name {
	case capabilitytoken.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case capabilitytoken.FieldIssuedToPrincipalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssuedToPrincipalID(v)
		return nil
	case capabilitytoken.FieldGrantedByPrincipalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrantedByPrincipalID(v)
		return nil
	case capabilitytoken.FieldParentTokenID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentTokenID(v)
		return nil
	case capabilitytoken.FieldScopes:
		v, ok := value.(models.ScopeSet)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopes(v)
		return nil
	case capabilitytoken.FieldValidUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidUntil(v)
		return nil
	case capabilitytoken.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case capabilitytoken.FieldRevokedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CapabilityToken field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CapabilityTokenMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CapabilityTokenMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CapabilityTokenMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CapabilityToken numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CapabilityTokenMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(capabilitytoken.FieldParentTokenID) {
		fields = append(fields, capabilitytoken.FieldParentTokenID)
	}
	if m.FieldCleared(capabilitytoken.FieldValidUntil) {
		fields = append(fields, capabilitytoken.FieldValidUntil)
	}
	if m.FieldCleared(capabilitytoken.FieldRevokedAt) {
		fields = append(fields, capabilitytoken.FieldRevokedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CapabilityTokenMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CapabilityTokenMutation) ClearField(name string) error {
	switch name {
	case capabilitytoken.FieldParentTokenID:
		m.ClearParentTokenID()
		return nil
	case capabilitytoken.FieldValidUntil:
		m.ClearValidUntil()
		return nil
	case capabilitytoken.FieldRevokedAt:
		m.ClearRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown CapabilityToken nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CapabilityTokenMutation) ResetField(name string) error {
	switch name {
	case capabilitytoken.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case capabilitytoken.FieldIssuedToPrincipalID:
		m.ResetIssuedToPrincipalID()
		return nil
	case capabilitytoken.FieldGrantedByPrincipalID:
		m.ResetGrantedByPrincipalID()
		return nil
	case capabilitytoken.FieldParentTokenID:
		m.ResetParentTokenID()
		return nil
	case capabilitytoken.FieldScopes:
		m.ResetScopes()
		return nil
	case capabilitytoken.FieldValidUntil:
		m.ResetValidUntil()
		return nil
	case capabilitytoken.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case capabilitytoken.FieldRevokedAt:
		m.ResetRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown CapabilityToken field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CapabilityTokenMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CapabilityTokenMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CapabilityTokenMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CapabilityTokenMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CapabilityTokenMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CapabilityTokenMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CapabilityTokenMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CapabilityToken unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CapabilityTokenMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CapabilityToken edge %s", name)
}

// DeadLetterMutation represents an operation that mutates the DeadLetter nodes in the graph.
type DeadLetterMutation struct {
	config
	op            Op
	typ           string
	id            *string
	workspace_id  *string
	event_id      *string
	projector     *string
	error         *string
	attempts      *int
	addattempts   *int
	created_at    *time.Time
	resolved_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*DeadLetter, error)
	predicates    []predicate.DeadLetter
}

var _ ent.Mutation = (*DeadLetterMutation)(nil)

// deadletterOption allows management of the mutation configuration using functional options.
type deadletterOption func(*DeadLetterMutation)

// newDeadLetterMutation creates new mutation for the DeadLetter entity.
func newDeadLetterMutation(c config, op Op, opts ...deadletterOption) *DeadLetterMutation {
	m := &DeadLetterMutation{
		config:        c,
		op:            op,
		typ:           TypeDeadLetter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeadLetterID sets the ID field of the mutation.
func withDeadLetterID(id string) deadletterOption {
	return func(m *DeadLetterMutation) {
		var (
			err   error
			once  sync.Once
			value *DeadLetter
		)
		m.oldValue = func(ctx context.Context) (*DeadLetter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DeadLetter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeadLetter sets the old DeadLetter of the mutation.
func withDeadLetter(node *DeadLetter) deadletterOption {
	return func(m *DeadLetterMutation) {
		m.oldValue = func(context.Context) (*DeadLetter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeadLetterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeadLetterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DeadLetter entities.
func (m *DeadLetterMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeadLetterMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeadLetterMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DeadLetter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *DeadLetterMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *DeadLetterMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *DeadLetterMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetEventID sets the "event_id" field.
func (m *DeadLetterMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *DeadLetterMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *DeadLetterMutation) ResetEventID() {
	m.event_id = nil
}

// SetProjector sets the "projector" field.
func (m *DeadLetterMutation) SetProjector(s string) {
	m.projector = &s
}

// Projector returns the value of the "projector" field in the mutation.
func (m *DeadLetterMutation) Projector() (r string, exists bool) {
	v := m.projector
	if v == nil {
		return
	}
	return *v, true
}

// OldProjector returns the old "projector" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldProjector(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjector is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjector requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjector: %w", err)
	}
	return oldValue.Projector, nil
}

// ResetProjector resets all changes to the "projector" field.
func (m *DeadLetterMutation) ResetProjector() {
	m.projector = nil
}

// SetError sets the "error" field.
func (m *DeadLetterMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *DeadLetterMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ResetError resets all changes to the "error" field.
func (m *DeadLetterMutation) ResetError() {
	m.error = nil
}

// SetAttempts sets the "attempts" field.
func (m *DeadLetterMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *DeadLetterMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *DeadLetterMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *DeadLetterMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *DeadLetterMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DeadLetterMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DeadLetterMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *DeadLetterMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *DeadLetterMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *DeadLetterMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *DeadLetterMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[deadletter.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *DeadLetterMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[deadletter.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *DeadLetterMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, deadletter.FieldResolvedAt)
}

// Where appends a list predicates to the DeadLetterMutation builder.
func (m *DeadLetterMutation) Where(ps ...predicate.DeadLetter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeadLetterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeadLetterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DeadLetter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeadLetterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeadLetterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DeadLetter).
func (m *DeadLetterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeadLetterMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.workspace_id != nil {
		fields = append(fields, deadletter.FieldWorkspaceID)
	}
	if m.event_id != nil {
		fields = append(fields, deadletter.FieldEventID)
	}
	if m.projector != nil {
		fields = append(fields, deadletter.FieldProjector)
	}
	if m.error != nil {
		fields = append(fields, deadletter.FieldError)
	}
	if m.attempts != nil {
		fields = append(fields, deadletter.FieldAttempts)
	}
	if m.created_at != nil {
		fields = append(fields, deadletter.FieldCreatedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, deadletter.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeadLetterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deadletter.FieldWorkspaceID:
		return m.WorkspaceID()
	case deadletter.FieldEventID:
		return m.EventID()
	case deadletter.FieldProjector:
		return m.Projector()
	case deadletter.FieldError:
		return m.Error()
	case deadletter.FieldAttempts:
		return m.Attempts()
	case deadletter.FieldCreatedAt:
		return m.CreatedAt()
	case deadletter.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeadLetterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deadletter.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case deadletter.FieldEventID:
		return m.OldEventID(ctx)
	case deadletter.FieldProjector:
		return m.OldProjector(ctx)
	case deadletter.FieldError:
		return m.OldError(ctx)
	case deadletter.FieldAttempts:
		return m.OldAttempts(ctx)
	case deadletter.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case deadletter.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DeadLetter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeadLetterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deadletter.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case deadletter.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case deadletter.FieldProjector:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjector(v)
		return nil
	case deadletter.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case deadletter.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case deadletter.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case deadletter.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DeadLetter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeadLetterMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, deadletter.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeadLetterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case deadletter.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeadLetterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case deadletter.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown DeadLetter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeadLetterMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(deadletter.FieldResolvedAt) {
		fields = append(fields, deadletter.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeadLetterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeadLetterMutation) ClearField(name string) error {
	switch name {
	case deadletter.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown DeadLetter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeadLetterMutation) ResetField(name string) error {
	switch name {
	case deadletter.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case deadletter.FieldEventID:
		m.ResetEventID()
		return nil
	case deadletter.FieldProjector:
		m.ResetProjector()
		return nil
	case deadletter.FieldError:
		m.ResetError()
		return nil
	case deadletter.FieldAttempts:
		m.ResetAttempts()
		return nil
	case deadletter.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case deadletter.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown DeadLetter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeadLetterMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeadLetterMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeadLetterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeadLetterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeadLetterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeadLetterMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeadLetterMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DeadLetter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeadLetterMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DeadLetter edge %s", name)
}

// DelegationEdgeMutation represents an operation that mutates the DelegationEdge nodes in the graph.
type DelegationEdgeMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	workspace_id            *string
	parent_token_id         *string
	child_token_id          *string
	issued_to_principal_id  *string
	granted_by_principal_id *string
	depth                   *int
	adddepth                *int
	created_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*DelegationEdge, error)
	predicates              []predicate.DelegationEdge
}

var _ ent.Mutation = (*DelegationEdgeMutation)(nil)

// delegationedgeOption allows management of the mutation configuration using functional options.
type delegationedgeOption func(*DelegationEdgeMutation)

// newDelegationEdgeMutation creates new mutation for the DelegationEdge entity.
func newDelegationEdgeMutation(c config, op Op, opts ...delegationedgeOption) *DelegationEdgeMutation {
	m := &DelegationEdgeMutation{
		config:        c,
		op:            op,
		typ:           TypeDelegationEdge,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDelegationEdgeID sets the ID field of the mutation.
func withDelegationEdgeID(id string) delegationedgeOption {
	return func(m *DelegationEdgeMutation) {
		var (
			err   error
			once  sync.Once
			value *DelegationEdge
		)
		m.oldValue = func(ctx context.Context) (*DelegationEdge, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DelegationEdge.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDelegationEdge sets the old DelegationEdge of the mutation.
func withDelegationEdge(node *DelegationEdge) delegationedgeOption {
	return func(m *DelegationEdgeMutation) {
		m.oldValue = func(context.Context) (*DelegationEdge, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DelegationEdgeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DelegationEdgeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DelegationEdge entities.
func (m *DelegationEdgeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DelegationEdgeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DelegationEdgeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DelegationEdge.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *DelegationEdgeMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *DelegationEdgeMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the DelegationEdge entity.
// If the DelegationEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationEdgeMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *DelegationEdgeMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetParentTokenID sets the "parent_token_id" field.
func (m *DelegationEdgeMutation) SetParentTokenID(s string) {
	m.parent_token_id = &s
}

// ParentTokenID returns the value of the "parent_token_id" field in the mutation.
func (m *DelegationEdgeMutation) ParentTokenID() (r string, exists bool) {
	v := m.parent_token_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentTokenID returns the old "parent_token_id" field's value of the DelegationEdge entity.
// If the DelegationEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationEdgeMutation) OldParentTokenID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentTokenID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentTokenID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentTokenID: %w", err)
	}
	return oldValue.ParentTokenID, nil
}

// ResetParentTokenID resets all changes to the "parent_token_id" field.
func (m *DelegationEdgeMutation) ResetParentTokenID() {
	m.parent_token_id = nil
}

// SetChildTokenID sets the "child_token_id" field.
func (m *DelegationEdgeMutation) SetChildTokenID(s string) {
	m.child_token_id = &s
}

// ChildTokenID returns the value of the "child_token_id" field in the mutation.
func (m *DelegationEdgeMutation) ChildTokenID() (r string, exists bool) {
	v := m.child_token_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChildTokenID returns the old "child_token_id" field's value of the DelegationEdge entity.
// If the DelegationEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationEdgeMutation) OldChildTokenID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildTokenID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildTokenID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildTokenID: %w", err)
	}
	return oldValue.ChildTokenID, nil
}

// ResetChildTokenID resets all changes to the "child_token_id" field.
func (m *DelegationEdgeMutation) ResetChildTokenID() {
	m.child_token_id = nil
}

// SetIssuedToPrincipalID sets the "issued_to_principal_id" field.
func (m *DelegationEdgeMutation) SetIssuedToPrincipalID(s string) {
	m.issued_to_principal_id = &s
}

// IssuedToPrincipalID returns the value of the "issued_to_principal_id" field in the mutation.
func (m *DelegationEdgeMutation) IssuedToPrincipalID() (r string, exists bool) {
	v := m.issued_to_principal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIssuedToPrincipalID returns the old "issued_to_principal_id" field's value of the DelegationEdge entity.
// If the DelegationEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationEdgeMutation) OldIssuedToPrincipalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssuedToPrincipalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssuedToPrincipalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssuedToPrincipalID: %w", err)
	}
	return oldValue.IssuedToPrincipalID, nil
}

// ResetIssuedToPrincipalID resets all changes to the "issued_to_principal_id" field.
func (m *DelegationEdgeMutation) ResetIssuedToPrincipalID() {
	m.issued_to_principal_id = nil
}

// SetGrantedByPrincipalID sets the "granted_by_principal_id" field.
func (m *DelegationEdgeMutation) SetGrantedByPrincipalID(s string) {
	m.granted_by_principal_id = &s
}

// GrantedByPrincipalID returns the value of the "granted_by_principal_id" field in the mutation.
func (m *DelegationEdgeMutation) GrantedByPrincipalID() (r string, exists bool) {
	v := m.granted_by_principal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGrantedByPrincipalID returns the old "granted_by_principal_id" field's value of the DelegationEdge entity.
// If the DelegationEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationEdgeMutation) OldGrantedByPrincipalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrantedByPrincipalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrantedByPrincipalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrantedByPrincipalID: %w", err)
	}
	return oldValue.GrantedByPrincipalID, nil
}

// ResetGrantedByPrincipalID resets all changes to the "granted_by_principal_id" field.
func (m *DelegationEdgeMutation) ResetGrantedByPrincipalID() {
	m.granted_by_principal_id = nil
}

// SetDepth sets the "depth" field.
func (m *DelegationEdgeMutation) SetDepth(i int) {
	m.depth = &i
	m.adddepth = nil
}

// Depth returns the value of the "depth" field in the mutation.
func (m *DelegationEdgeMutation) Depth() (r int, exists bool) {
	v := m.depth
	if v == nil {
		return
	}
	return *v, true
}

// OldDepth returns the old "depth" field's value of the DelegationEdge entity.
// If the DelegationEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationEdgeMutation) OldDepth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepth: %w", err)
	}
	return oldValue.Depth, nil
}

// AddDepth adds i to the "depth" field.
func (m *DelegationEdgeMutation) AddDepth(i int) {
	if m.adddepth != nil {
		*m.adddepth += i
	} else {
		m.adddepth = &i
	}
}

// AddedDepth returns the value that was added to the "depth" field in this mutation.
func (m *DelegationEdgeMutation) AddedDepth() (r int, exists bool) {
	v := m.adddepth
	if v == nil {
		return
	}
	return *v, true
}

// ResetDepth resets all changes to the "depth" field.
func (m *DelegationEdgeMutation) ResetDepth() {
	m.depth = nil
	m.adddepth = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DelegationEdgeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DelegationEdgeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DelegationEdge entity.
// If the DelegationEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DelegationEdgeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *DelegationEdgeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the DelegationEdgeMutation builder.
func (m *DelegationEdgeMutation) Where(ps ...predicate.DelegationEdge) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DelegationEdgeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DelegationEdgeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DelegationEdge, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DelegationEdgeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DelegationEdgeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DelegationEdge).
func (m *DelegationEdgeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DelegationEdgeMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.workspace_id != nil {
		fields = append(fields, delegationedge.FieldWorkspaceID)
	}
	if m.parent_token_id != nil {
		fields = append(fields, delegationedge.FieldParentTokenID)
	}
	if m.child_token_id != nil {
		fields = append(fields, delegationedge.FieldChildTokenID)
	}
	if m.issued_to_principal_id != nil {
		fields = append(fields, delegationedge.FieldIssuedToPrincipalID)
	}
	if m.granted_by_principal_id != nil {
		fields = append(fields, delegationedge.FieldGrantedByPrincipalID)
	}
	if m.depth != nil {
		fields = append(fields, delegationedge.FieldDepth)
	}
	if m.created_at != nil {
		fields = append(fields, delegationedge.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DelegationEdgeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case delegationedge.FieldWorkspaceID:
		return m.WorkspaceID()
	case delegationedge.FieldParentTokenID:
		return m.ParentTokenID()
	case delegationedge.FieldChildTokenID:
		return m.ChildTokenID()
	case delegationedge.FieldIssuedToPrincipalID:
		return m.IssuedToPrincipalID()
	case delegationedge.FieldGrantedByPrincipalID:
		return m.GrantedByPrincipalID()
	case delegationedge.FieldDepth:
		return m.Depth()
	case delegationedge.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DelegationEdgeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case delegationedge.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case delegationedge.FieldParentTokenID:
		return m.OldParentTokenID(ctx)
	case delegationedge.FieldChildTokenID:
		return m.OldChildTokenID(ctx)
	case delegationedge.FieldIssuedToPrincipalID:
		return m.OldIssuedToPrincipalID(ctx)
	case delegationedge.FieldGrantedByPrincipalID:
		return m.OldGrantedByPrincipalID(ctx)
	case delegationedge.FieldDepth:
		return m.OldDepth(ctx)
	case delegationedge.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DelegationEdge field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DelegationEdgeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case delegationedge.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case delegationedge.FieldParentTokenID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentTokenID(v)
		return nil
	case delegationedge.FieldChildTokenID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildTokenID(v)
		return nil
	case delegationedge.FieldIssuedToPrincipalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssuedToPrincipalID(v)
		return nil
	case delegationedge.FieldGrantedByPrincipalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrantedByPrincipalID(v)
		return nil
	case delegationedge.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepth(v)
		return nil
	case delegationedge.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DelegationEdge field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DelegationEdgeMutation) AddedFields() []string {
	var fields []string
	if m.adddepth != nil {
		fields = append(fields, delegationedge.FieldDepth)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DelegationEdgeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case delegationedge.FieldDepth:
		return m.AddedDepth()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DelegationEdgeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case delegationedge.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDepth(v)
		return nil
	}
	return fmt.Errorf("unknown DelegationEdge numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DelegationEdgeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DelegationEdgeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DelegationEdgeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DelegationEdge nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DelegationEdgeMutation) ResetField(name string) error {
	switch name {
	case delegationedge.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case delegationedge.FieldParentTokenID:
		m.ResetParentTokenID()
		return nil
	case delegationedge.FieldChildTokenID:
		m.ResetChildTokenID()
		return nil
	case delegationedge.FieldIssuedToPrincipalID:
		m.ResetIssuedToPrincipalID()
		return nil
	case delegationedge.FieldGrantedByPrincipalID:
		m.ResetGrantedByPrincipalID()
		return nil
	case delegationedge.FieldDepth:
		m.ResetDepth()
		return nil
	case delegationedge.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DelegationEdge field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DelegationEdgeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DelegationEdgeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DelegationEdgeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DelegationEdgeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DelegationEdgeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DelegationEdgeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DelegationEdgeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DelegationEdge unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DelegationEdgeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DelegationEdge edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	event_type           *string
	event_version        *int
	addevent_version     *int
	occurred_at          *time.Time
	recorded_at          *time.Time
	workspace_id         *string
	mission_id           *string
	room_id              *string
	thread_id            *string
	run_id               *string
	step_id              *string
	actor_type           *event.ActorType
	actor_id             *string
	actor_principal_id   *string
	zone                 *event.Zone
	stream_type          *event.StreamType
	stream_id            *string
	stream_seq           *int64
	addstream_seq        *int64
	correlation_id       *string
	causation_id         *string
	redaction_level      *event.RedactionLevel
	contains_secrets     *bool
	policy_context       *json.RawMessage
	appendpolicy_context json.RawMessage
	model_context        *json.RawMessage
	appendmodel_context  json.RawMessage
	display              *json.RawMessage
	appenddisplay        json.RawMessage
	data                 *json.RawMessage
	appenddata           json.RawMessage
	idempotency_key      *string
	prev_event_hash      *string
	event_hash           *string
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Event, error)
	predicates           []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id string) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventType sets the "event_type" field.
func (m *EventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventMutation) ResetEventType() {
	m.event_type = nil
}

// SetEventVersion sets the "event_version" field.
func (m *EventMutation) SetEventVersion(i int) {
	m.event_version = &i
	m.addevent_version = nil
}

// EventVersion returns the value of the "event_version" field in the mutation.
func (m *EventMutation) EventVersion() (r int, exists bool) {
	v := m.event_version
	if v == nil {
		return
	}
	return *v, true
}

// OldEventVersion returns the old "event_version" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventVersion: %w", err)
	}
	return oldValue.EventVersion, nil
}

// AddEventVersion adds i to the "event_version" field.
func (m *EventMutation) AddEventVersion(i int) {
	if m.addevent_version != nil {
		*m.addevent_version += i
	} else {
		m.addevent_version = &i
	}
}

// AddedEventVersion returns the value that was added to the "event_version" field in this mutation.
func (m *EventMutation) AddedEventVersion() (r int, exists bool) {
	v := m.addevent_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetEventVersion resets all changes to the "event_version" field.
func (m *EventMutation) ResetEventVersion() {
	m.event_version = nil
	m.addevent_version = nil
}

// SetOccurredAt sets the "occurred_at" field.
func (m *EventMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *EventMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *EventMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// SetRecordedAt sets the "recorded_at" field.
func (m *EventMutation) SetRecordedAt(t time.Time) {
	m.recorded_at = &t
}

// RecordedAt returns the value of the "recorded_at" field in the mutation.
func (m *EventMutation) RecordedAt() (r time.Time, exists bool) {
	v := m.recorded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordedAt returns the old "recorded_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRecordedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordedAt: %w", err)
	}
	return oldValue.RecordedAt, nil
}

// ResetRecordedAt resets all changes to the "recorded_at" field.
func (m *EventMutation) ResetRecordedAt() {
	m.recorded_at = nil
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *EventMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *EventMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *EventMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetMissionID sets the "mission_id" field.
func (m *EventMutation) SetMissionID(s string) {
	m.mission_id = &s
}

// MissionID returns the value of the "mission_id" field in the mutation.
func (m *EventMutation) MissionID() (r string, exists bool) {
	v := m.mission_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMissionID returns the old "mission_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldMissionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMissionID: %w", err)
	}
	return oldValue.MissionID, nil
}

// ClearMissionID clears the value of the "mission_id" field.
func (m *EventMutation) ClearMissionID() {
	m.mission_id = nil
	m.clearedFields[event.FieldMissionID] = struct{}{}
}

// MissionIDCleared returns if the "mission_id" field was cleared in this mutation.
func (m *EventMutation) MissionIDCleared() bool {
	_, ok := m.clearedFields[event.FieldMissionID]
	return ok
}

// ResetMissionID resets all changes to the "mission_id" field.
func (m *EventMutation) ResetMissionID() {
	m.mission_id = nil
	delete(m.clearedFields, event.FieldMissionID)
}

// SetRoomID sets the "room_id" field.
func (m *EventMutation) SetRoomID(s string) {
	m.room_id = &s
}

// RoomID returns the value of the "room_id" field in the mutation.
func (m *EventMutation) RoomID() (r string, exists bool) {
	v := m.room_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomID returns the old "room_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRoomID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomID: %w", err)
	}
	return oldValue.RoomID, nil
}

// ClearRoomID clears the value of the "room_id" field.
func (m *EventMutation) ClearRoomID() {
	m.room_id = nil
	m.clearedFields[event.FieldRoomID] = struct{}{}
}

// RoomIDCleared returns if the "room_id" field was cleared in this mutation.
func (m *EventMutation) RoomIDCleared() bool {
	_, ok := m.clearedFields[event.FieldRoomID]
	return ok
}

// ResetRoomID resets all changes to the "room_id" field.
func (m *EventMutation) ResetRoomID() {
	m.room_id = nil
	delete(m.clearedFields, event.FieldRoomID)
}

// SetThreadID sets the "thread_id" field.
func (m *EventMutation) SetThreadID(s string) {
	m.thread_id = &s
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *EventMutation) ThreadID() (r string, exists bool) {
	v := m.thread_id
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldThreadID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ClearThreadID clears the value of the "thread_id" field.
func (m *EventMutation) ClearThreadID() {
	m.thread_id = nil
	m.clearedFields[event.FieldThreadID] = struct{}{}
}

// ThreadIDCleared returns if the "thread_id" field was cleared in this mutation.
func (m *EventMutation) ThreadIDCleared() bool {
	_, ok := m.clearedFields[event.FieldThreadID]
	return ok
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *EventMutation) ResetThreadID() {
	m.thread_id = nil
	delete(m.clearedFields, event.FieldThreadID)
}

// SetRunID sets the "run_id" field.
func (m *EventMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *EventMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRunID(ctx context.Context) (v *string, err error) {
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

// ClearRunID clears the value of the "run_id" field.
func (m *EventMutation) ClearRunID() {
	m.run_id = nil
	m.clearedFields[event.FieldRunID] = struct{}{}
}

// RunIDCleared returns if the "run_id" field was cleared in this mutation.
func (m *EventMutation) RunIDCleared() bool {
	_, ok := m.clearedFields[event.FieldRunID]
	return ok
}

// ResetRunID resets all changes to the "run_id" field.
func (m *EventMutation) ResetRunID() {
	m.run_id = nil
	delete(m.clearedFields, event.FieldRunID)
}

// SetStepID sets the "step_id" field.
func (m *EventMutation) SetStepID(s string) {
	m.step_id = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *EventMutation) StepID() (r string, exists bool) {
	v := m.step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldStepID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ClearStepID clears the value of the "step_id" field.
func (m *EventMutation) ClearStepID() {
	m.step_id = nil
	m.clearedFields[event.FieldStepID] = struct{}{}
}

// StepIDCleared returns if the "step_id" field was cleared in this mutation.
func (m *EventMutation) StepIDCleared() bool {
	_, ok := m.clearedFields[event.FieldStepID]
	return ok
}

// ResetStepID resets all changes to the "step_id" field.
func (m *EventMutation) ResetStepID() {
	m.step_id = nil
	delete(m.clearedFields, event.FieldStepID)
}

// SetActorType sets the "actor_type" field.
func (m *EventMutation) SetActorType(et event.ActorType) {
	m.actor_type = &et
}

// ActorType returns the value of the "actor_type" field in the mutation.
func (m *EventMutation) ActorType() (r event.ActorType, exists bool) {
	v := m.actor_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActorType returns the old "actor_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldActorType(ctx context.Context) (v event.ActorType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorType: %w", err)
	}
	return oldValue.ActorType, nil
}

// ResetActorType resets all changes to the "actor_type" field.
func (m *EventMutation) ResetActorType() {
	m.actor_type = nil
}

// SetActorID sets the "actor_id" field.
func (m *EventMutation) SetActorID(s string) {
	m.actor_id = &s
}

// ActorID returns the value of the "actor_id" field in the mutation.
func (m *EventMutation) ActorID() (r string, exists bool) {
	v := m.actor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorID returns the old "actor_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldActorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorID: %w", err)
	}
	return oldValue.ActorID, nil
}

// ResetActorID resets all changes to the "actor_id" field.
func (m *EventMutation) ResetActorID() {
	m.actor_id = nil
}

// SetActorPrincipalID sets the "actor_principal_id" field.
func (m *EventMutation) SetActorPrincipalID(s string) {
	m.actor_principal_id = &s
}

// ActorPrincipalID returns the value of the "actor_principal_id" field in the mutation.
func (m *EventMutation) ActorPrincipalID() (r string, exists bool) {
	v := m.actor_principal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorPrincipalID returns the old "actor_principal_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldActorPrincipalID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorPrincipalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorPrincipalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorPrincipalID: %w", err)
	}
	return oldValue.ActorPrincipalID, nil
}

// ClearActorPrincipalID clears the value of the "actor_principal_id" field.
func (m *EventMutation) ClearActorPrincipalID() {
	m.actor_principal_id = nil
	m.clearedFields[event.FieldActorPrincipalID] = struct{}{}
}

// ActorPrincipalIDCleared returns if the "actor_principal_id" field was cleared in this mutation.
func (m *EventMutation) ActorPrincipalIDCleared() bool {
	_, ok := m.clearedFields[event.FieldActorPrincipalID]
	return ok
}

// ResetActorPrincipalID resets all changes to the "actor_principal_id" field.
func (m *EventMutation) ResetActorPrincipalID() {
	m.actor_principal_id = nil
	delete(m.clearedFields, event.FieldActorPrincipalID)
}

// SetZone sets the "zone" field.
func (m *EventMutation) SetZone(e event.Zone) {
	m.zone = &e
}

// Zone returns the value of the "zone" field in the mutation.
func (m *EventMutation) Zone() (r event.Zone, exists bool) {
	v := m.zone
	if v == nil {
		return
	}
	return *v, true
}

// OldZone returns the old "zone" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldZone(ctx context.Context) (v event.Zone, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZone: %w", err)
	}
	return oldValue.Zone, nil
}

// ResetZone resets all changes to the "zone" field.
func (m *EventMutation) ResetZone() {
	m.zone = nil
}

// SetStreamType sets the "stream_type" field.
func (m *EventMutation) SetStreamType(et event.StreamType) {
	m.stream_type = &et
}

// StreamType returns the value of the "stream_type" field in the mutation.
func (m *EventMutation) StreamType() (r event.StreamType, exists bool) {
	v := m.stream_type
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamType returns the old "stream_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldStreamType(ctx context.Context) (v event.StreamType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamType: %w", err)
	}
	return oldValue.StreamType, nil
}

// ResetStreamType resets all changes to the "stream_type" field.
func (m *EventMutation) ResetStreamType() {
	m.stream_type = nil
}

// SetStreamID sets the "stream_id" field.
func (m *EventMutation) SetStreamID(s string) {
	m.stream_id = &s
}

// StreamID returns the value of the "stream_id" field in the mutation.
func (m *EventMutation) StreamID() (r string, exists bool) {
	v := m.stream_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamID returns the old "stream_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldStreamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamID: %w", err)
	}
	return oldValue.StreamID, nil
}

// ResetStreamID resets all changes to the "stream_id" field.
func (m *EventMutation) ResetStreamID() {
	m.stream_id = nil
}

// SetStreamSeq sets the "stream_seq" field.
func (m *EventMutation) SetStreamSeq(i int64) {
	m.stream_seq = &i
	m.addstream_seq = nil
}

// StreamSeq returns the value of the "stream_seq" field in the mutation.
func (m *EventMutation) StreamSeq() (r int64, exists bool) {
	v := m.stream_seq
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamSeq returns the old "stream_seq" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldStreamSeq(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamSeq: %w", err)
	}
	return oldValue.StreamSeq, nil
}

// AddStreamSeq adds i to the "stream_seq" field.
func (m *EventMutation) AddStreamSeq(i int64) {
	if m.addstream_seq != nil {
		*m.addstream_seq += i
	} else {
		m.addstream_seq = &i
	}
}

// AddedStreamSeq returns the value that was added to the "stream_seq" field in this mutation.
func (m *EventMutation) AddedStreamSeq() (r int64, exists bool) {
	v := m.addstream_seq
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreamSeq resets all changes to the "stream_seq" field.
func (m *EventMutation) ResetStreamSeq() {
	m.stream_seq = nil
	m.addstream_seq = nil
}

// SetCorrelationID sets the "correlation_id" field.
func (m *EventMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *EventMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *EventMutation) ResetCorrelationID() {
	m.correlation_id = nil
}

// SetCausationID sets the "causation_id" field.
func (m *EventMutation) SetCausationID(s string) {
	m.causation_id = &s
}

// CausationID returns the value of the "causation_id" field in the mutation.
func (m *EventMutation) CausationID() (r string, exists bool) {
	v := m.causation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCausationID returns the old "causation_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCausationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCausationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCausationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCausationID: %w", err)
	}
	return oldValue.CausationID, nil
}

// ClearCausationID clears the value of the "causation_id" field.
func (m *EventMutation) ClearCausationID() {
	m.causation_id = nil
	m.clearedFields[event.FieldCausationID] = struct{}{}
}

// CausationIDCleared returns if the "causation_id" field was cleared in this mutation.
func (m *EventMutation) CausationIDCleared() bool {
	_, ok := m.clearedFields[event.FieldCausationID]
	return ok
}

// ResetCausationID resets all changes to the "causation_id" field.
func (m *EventMutation) ResetCausationID() {
	m.causation_id = nil
	delete(m.clearedFields, event.FieldCausationID)
}

// SetRedactionLevel sets the "redaction_level" field.
func (m *EventMutation) SetRedactionLevel(el event.RedactionLevel) {
	m.redaction_level = &el
}

// RedactionLevel returns the value of the "redaction_level" field in the mutation.
func (m *EventMutation) RedactionLevel() (r event.RedactionLevel, exists bool) {
	v := m.redaction_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRedactionLevel returns the old "redaction_level" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRedactionLevel(ctx context.Context) (v event.RedactionLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRedactionLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRedactionLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRedactionLevel: %w", err)
	}
	return oldValue.RedactionLevel, nil
}

// ResetRedactionLevel resets all changes to the "redaction_level" field.
func (m *EventMutation) ResetRedactionLevel() {
	m.redaction_level = nil
}

// SetContainsSecrets sets the "contains_secrets" field.
func (m *EventMutation) SetContainsSecrets(b bool) {
	m.contains_secrets = &b
}

// ContainsSecrets returns the value of the "contains_secrets" field in the mutation.
func (m *EventMutation) ContainsSecrets() (r bool, exists bool) {
	v := m.contains_secrets
	if v == nil {
		return
	}
	return *v, true
}

// OldContainsSecrets returns the old "contains_secrets" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldContainsSecrets(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContainsSecrets is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContainsSecrets requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContainsSecrets: %w", err)
	}
	return oldValue.ContainsSecrets, nil
}

// ResetContainsSecrets resets all changes to the "contains_secrets" field.
func (m *EventMutation) ResetContainsSecrets() {
	m.contains_secrets = nil
}

// SetPolicyContext sets the "policy_context" field.
func (m *EventMutation) SetPolicyContext(jm json.RawMessage) {
	m.policy_context = &jm
	m.appendpolicy_context = nil
}

// PolicyContext returns the value of the "policy_context" field in the mutation.
func (m *EventMutation) PolicyContext() (r json.RawMessage, exists bool) {
	v := m.policy_context
	if v == nil {
		return
	}
	return *v, true
}

// OldPolicyContext returns the old "policy_context" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPolicyContext(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPolicyContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPolicyContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPolicyContext: %w", err)
	}
	return oldValue.PolicyContext, nil
}

// AppendPolicyContext adds jm to the "policy_context" field.
func (m *EventMutation) AppendPolicyContext(jm json.RawMessage) {
	m.appendpolicy_context = append(m.appendpolicy_context, jm...)
}

// AppendedPolicyContext returns the list of values that were appended to the "policy_context" field in this mutation.
func (m *EventMutation) AppendedPolicyContext() (json.RawMessage, bool) {
	if len(m.appendpolicy_context) == 0 {
		return nil, false
	}
	return m.appendpolicy_context, true
}

// ClearPolicyContext clears the value of the "policy_context" field.
func (m *EventMutation) ClearPolicyContext() {
	m.policy_context = nil
	m.appendpolicy_context = nil
	m.clearedFields[event.FieldPolicyContext] = struct{}{}
}

// PolicyContextCleared returns if the "policy_context" field was cleared in this mutation.
func (m *EventMutation) PolicyContextCleared() bool {
	_, ok := m.clearedFields[event.FieldPolicyContext]
	return ok
}

// ResetPolicyContext resets all changes to the "policy_context" field.
func (m *EventMutation) ResetPolicyContext() {
	m.policy_context = nil
	m.appendpolicy_context = nil
	delete(m.clearedFields, event.FieldPolicyContext)
}

// SetModelContext sets the "model_context" field.
func (m *EventMutation) SetModelContext(jm json.RawMessage) {
	m.model_context = &jm
	m.appendmodel_context = nil
}

// ModelContext returns the value of the "model_context" field in the mutation.
func (m *EventMutation) ModelContext() (r json.RawMessage, exists bool) {
	v := m.model_context
	if v == nil {
		return
	}
	return *v, true
}

// OldModelContext returns the old "model_context" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldModelContext(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelContext: %w", err)
	}
	return oldValue.ModelContext, nil
}

// AppendModelContext adds jm to the "model_context" field.
func (m *EventMutation) AppendModelContext(jm json.RawMessage) {
	m.appendmodel_context = append(m.appendmodel_context, jm...)
}

// AppendedModelContext returns the list of values that were appended to the "model_context" field in this mutation.
func (m *EventMutation) AppendedModelContext() (json.RawMessage, bool) {
	if len(m.appendmodel_context) == 0 {
		return nil, false
	}
	return m.appendmodel_context, true
}

// ClearModelContext clears the value of the "model_context" field.
func (m *EventMutation) ClearModelContext() {
	m.model_context = nil
	m.appendmodel_context = nil
	m.clearedFields[event.FieldModelContext] = struct{}{}
}

// ModelContextCleared returns if the "model_context" field was cleared in this mutation.
func (m *EventMutation) ModelContextCleared() bool {
	_, ok := m.clearedFields[event.FieldModelContext]
	return ok
}

// ResetModelContext resets all changes to the "model_context" field.
func (m *EventMutation) ResetModelContext() {
	m.model_context = nil
	m.appendmodel_context = nil
	delete(m.clearedFields, event.FieldModelContext)
}

// SetDisplay sets the "display" field.
func (m *EventMutation) SetDisplay(jm json.RawMessage) {
	m.display = &jm
	m.appenddisplay = nil
}

// Display returns the value of the "display" field in the mutation.
func (m *EventMutation) Display() (r json.RawMessage, exists bool) {
	v := m.display
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplay returns the old "display" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldDisplay(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplay: %w", err)
	}
	return oldValue.Display, nil
}

// AppendDisplay adds jm to the "display" field.
func (m *EventMutation) AppendDisplay(jm json.RawMessage) {
	m.appenddisplay = append(m.appenddisplay, jm...)
}

// AppendedDisplay returns the list of values that were appended to the "display" field in this mutation.
func (m *EventMutation) AppendedDisplay() (json.RawMessage, bool) {
	if len(m.appenddisplay) == 0 {
		return nil, false
	}
	return m.appenddisplay, true
}

// ClearDisplay clears the value of the "display" field.
func (m *EventMutation) ClearDisplay() {
	m.display = nil
	m.appenddisplay = nil
	m.clearedFields[event.FieldDisplay] = struct{}{}
}

// DisplayCleared returns if the "display" field was cleared in this mutation.
func (m *EventMutation) DisplayCleared() bool {
	_, ok := m.clearedFields[event.FieldDisplay]
	return ok
}

// ResetDisplay resets all changes to the "display" field.
func (m *EventMutation) ResetDisplay() {
	m.display = nil
	m.appenddisplay = nil
	delete(m.clearedFields, event.FieldDisplay)
}

// SetData sets the "data" field.
func (m *EventMutation) SetData(jm json.RawMessage) {
	m.data = &jm
	m.appenddata = nil
}

// Data returns the value of the "data" field in the mutation.
func (m *EventMutation) Data() (r json.RawMessage, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// AppendData adds jm to the "data" field.
func (m *EventMutation) AppendData(jm json.RawMessage) {
	m.appenddata = append(m.appenddata, jm...)
}

// AppendedData returns the list of values that were appended to the "data" field in this mutation.
func (m *EventMutation) AppendedData() (json.RawMessage, bool) {
	if len(m.appenddata) == 0 {
		return nil, false
	}
	return m.appenddata, true
}

// ClearData clears the value of the "data" field.
func (m *EventMutation) ClearData() {
	m.data = nil
	m.appenddata = nil
	m.clearedFields[event.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *EventMutation) DataCleared() bool {
	_, ok := m.clearedFields[event.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *EventMutation) ResetData() {
	m.data = nil
	m.appenddata = nil
	delete(m.clearedFields, event.FieldData)
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (m *EventMutation) SetIdempotencyKey(s string) {
	m.idempotency_key = &s
}

// IdempotencyKey returns the value of the "idempotency_key" field in the mutation.
func (m *EventMutation) IdempotencyKey() (r string, exists bool) {
	v := m.idempotency_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIdempotencyKey returns the old "idempotency_key" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldIdempotencyKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdempotencyKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdempotencyKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdempotencyKey: %w", err)
	}
	return oldValue.IdempotencyKey, nil
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (m *EventMutation) ClearIdempotencyKey() {
	m.idempotency_key = nil
	m.clearedFields[event.FieldIdempotencyKey] = struct{}{}
}

// IdempotencyKeyCleared returns if the "idempotency_key" field was cleared in this mutation.
func (m *EventMutation) IdempotencyKeyCleared() bool {
	_, ok := m.clearedFields[event.FieldIdempotencyKey]
	return ok
}

// ResetIdempotencyKey resets all changes to the "idempotency_key" field.
func (m *EventMutation) ResetIdempotencyKey() {
	m.idempotency_key = nil
	delete(m.clearedFields, event.FieldIdempotencyKey)
}

// SetPrevEventHash sets the "prev_event_hash" field.
func (m *EventMutation) SetPrevEventHash(s string) {
	m.prev_event_hash = &s
}

// PrevEventHash returns the value of the "prev_event_hash" field in the mutation.
func (m *EventMutation) PrevEventHash() (r string, exists bool) {
	v := m.prev_event_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPrevEventHash returns the old "prev_event_hash" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPrevEventHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrevEventHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrevEventHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrevEventHash: %w", err)
	}
	return oldValue.PrevEventHash, nil
}

// ClearPrevEventHash clears the value of the "prev_event_hash" field.
func (m *EventMutation) ClearPrevEventHash() {
	m.prev_event_hash = nil
	m.clearedFields[event.FieldPrevEventHash] = struct{}{}
}

// PrevEventHashCleared returns if the "prev_event_hash" field was cleared in this mutation.
func (m *EventMutation) PrevEventHashCleared() bool {
	_, ok := m.clearedFields[event.FieldPrevEventHash]
	return ok
}

// ResetPrevEventHash resets all changes to the "prev_event_hash" field.
func (m *EventMutation) ResetPrevEventHash() {
	m.prev_event_hash = nil
	delete(m.clearedFields, event.FieldPrevEventHash)
}

// SetEventHash sets the "event_hash" field.
func (m *EventMutation) SetEventHash(s string) {
	m.event_hash = &s
}

// EventHash returns the value of the "event_hash" field in the mutation.
func (m *EventMutation) EventHash() (r string, exists bool) {
	v := m.event_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldEventHash returns the old "event_hash" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventHash: %w", err)
	}
	return oldValue.EventHash, nil
}

// ClearEventHash clears the value of the "event_hash" field.
func (m *EventMutation) ClearEventHash() {
	m.event_hash = nil
	m.clearedFields[event.FieldEventHash] = struct{}{}
}

// EventHashCleared returns if the "event_hash" field was cleared in this mutation.
func (m *EventMutation) EventHashCleared() bool {
	_, ok := m.clearedFields[event.FieldEventHash]
	return ok
}

// ResetEventHash resets all changes to the "event_hash" field.
func (m *EventMutation) ResetEventHash() {
	m.event_hash = nil
	delete(m.clearedFields, event.FieldEventHash)
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 28)
	if m.event_type != nil {
		fields = append(fields, event.FieldEventType)
	}
	if m.event_version != nil {
		fields = append(fields, event.FieldEventVersion)
	}
	if m.occurred_at != nil {
		fields = append(fields, event.FieldOccurredAt)
	}
	if m.recorded_at != nil {
		fields = append(fields, event.FieldRecordedAt)
	}
	if m.workspace_id != nil {
		fields = append(fields, event.FieldWorkspaceID)
	}
	if m.mission_id != nil {
		fields = append(fields, event.FieldMissionID)
	}
	if m.room_id != nil {
		fields = append(fields, event.FieldRoomID)
	}
	if m.thread_id != nil {
		fields = append(fields, event.FieldThreadID)
	}
	if m.run_id != nil {
		fields = append(fields, event.FieldRunID)
	}
	if m.step_id != nil {
		fields = append(fields, event.FieldStepID)
	}
	if m.actor_type != nil {
		fields = append(fields, event.FieldActorType)
	}
	if m.actor_id != nil {
		fields = append(fields, event.FieldActorID)
	}
	if m.actor_principal_id != nil {
		fields = append(fields, event.FieldActorPrincipalID)
	}
	if m.zone != nil {
		fields = append(fields, event.FieldZone)
	}
	if m.stream_type != nil {
		fields = append(fields, event.FieldStreamType)
	}
	if m.stream_id != nil {
		fields = append(fields, event.FieldStreamID)
	}
	if m.stream_seq != nil {
		fields = append(fields, event.FieldStreamSeq)
	}
	if m.correlation_id != nil {
		fields = append(fields, event.FieldCorrelationID)
	}
	if m.causation_id != nil {
		fields = append(fields, event.FieldCausationID)
	}
	if m.redaction_level != nil {
		fields = append(fields, event.FieldRedactionLevel)
	}
	if m.contains_secrets != nil {
		fields = append(fields, event.FieldContainsSecrets)
	}
	if m.policy_context != nil {
		fields = append(fields, event.FieldPolicyContext)
	}
	if m.model_context != nil {
		fields = append(fields, event.FieldModelContext)
	}
	if m.display != nil {
		fields = append(fields, event.FieldDisplay)
	}
	if m.data != nil {
		fields = append(fields, event.FieldData)
	}
	if m.idempotency_key != nil {
		fields = append(fields, event.FieldIdempotencyKey)
	}
	if m.prev_event_hash != nil {
		fields = append(fields, event.FieldPrevEventHash)
	}
	if m.event_hash != nil {
		fields = append(fields, event.FieldEventHash)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldEventType:
		return m.EventType()
	case event.FieldEventVersion:
		return m.EventVersion()
	case event.FieldOccurredAt:
		return m.OccurredAt()
	case event.FieldRecordedAt:
		return m.RecordedAt()
	case event.FieldWorkspaceID:
		return m.WorkspaceID()
	case event.FieldMissionID:
		return m.MissionID()
	case event.FieldRoomID:
		return m.RoomID()
	case event.FieldThreadID:
		return m.ThreadID()
	case event.FieldRunID:
		return m.RunID()
	case event.FieldStepID:
		return m.StepID()
	case event.FieldActorType:
		return m.ActorType()
	case event.FieldActorID:
		return m.ActorID()
	case event.FieldActorPrincipalID:
		return m.ActorPrincipalID()
	case event.FieldZone:
		return m.Zone()
	case event.FieldStreamType:
		return m.StreamType()
	case event.FieldStreamID:
		return m.StreamID()
	case event.FieldStreamSeq:
		return m.StreamSeq()
	case event.FieldCorrelationID:
		return m.CorrelationID()
	case event.FieldCausationID:
		return m.CausationID()
	case event.FieldRedactionLevel:
		return m.RedactionLevel()
	case event.FieldContainsSecrets:
		return m.ContainsSecrets()
	case event.FieldPolicyContext:
		return m.PolicyContext()
	case event.FieldModelContext:
		return m.ModelContext()
	case event.FieldDisplay:
		return m.Display()
	case event.FieldData:
		return m.Data()
	case event.FieldIdempotencyKey:
		return m.IdempotencyKey()
	case event.FieldPrevEventHash:
		return m.PrevEventHash()
	case event.FieldEventHash:
		return m.EventHash()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldEventType:
		return m.OldEventType(ctx)
	case event.FieldEventVersion:
		return m.OldEventVersion(ctx)
	case event.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	case event.FieldRecordedAt:
		return m.OldRecordedAt(ctx)
	case event.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case event.FieldMissionID:
		return m.OldMissionID(ctx)
	case event.FieldRoomID:
		return m.OldRoomID(ctx)
	case event.FieldThreadID:
		return m.OldThreadID(ctx)
	case event.FieldRunID:
		return m.OldRunID(ctx)
	case event.FieldStepID:
		return m.OldStepID(ctx)
	case event.FieldActorType:
		return m.OldActorType(ctx)
	case event.FieldActorID:
		return m.OldActorID(ctx)
	case event.FieldActorPrincipalID:
		return m.OldActorPrincipalID(ctx)
	case event.FieldZone:
		return m.OldZone(ctx)
	case event.FieldStreamType:
		return m.OldStreamType(ctx)
	case event.FieldStreamID:
		return m.OldStreamID(ctx)
	case event.FieldStreamSeq:
		return m.OldStreamSeq(ctx)
	case event.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case event.FieldCausationID:
		return m.OldCausationID(ctx)
	case event.FieldRedactionLevel:
		return m.OldRedactionLevel(ctx)
	case event.FieldContainsSecrets:
		return m.OldContainsSecrets(ctx)
	case event.FieldPolicyContext:
		return m.OldPolicyContext(ctx)
	case event.FieldModelContext:
		return m.OldModelContext(ctx)
	case event.FieldDisplay:
		return m.OldDisplay(ctx)
	case event.FieldData:
		return m.OldData(ctx)
	case event.FieldIdempotencyKey:
		return m.OldIdempotencyKey(ctx)
	case event.FieldPrevEventHash:
		return m.OldPrevEventHash(ctx)
	case event.FieldEventHash:
		return m.OldEventHash(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case event.FieldEventVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventVersion(v)
		return nil
	case event.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	case event.FieldRecordedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordedAt(v)
		return nil
	case event.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case event.FieldMissionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMissionID(v)
		return nil
	case event.FieldRoomID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomID(v)
		return nil
	case event.FieldThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case event.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case event.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case event.FieldActorType:
		v, ok := value.(event.ActorType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorType(v)
		return nil
	case event.FieldActorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorID(v)
		return nil
	case event.FieldActorPrincipalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorPrincipalID(v)
		return nil
	case event.FieldZone:
		v, ok := value.(event.Zone)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZone(v)
		return nil
	case event.FieldStreamType:
		v, ok := value.(event.StreamType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamType(v)
		return nil
	case event.FieldStreamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamID(v)
		return nil
	case event.FieldStreamSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamSeq(v)
		return nil
	case event.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case event.FieldCausationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCausationID(v)
		return nil
	case event.FieldRedactionLevel:
		v, ok := value.(event.RedactionLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRedactionLevel(v)
		return nil
	case event.FieldContainsSecrets:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContainsSecrets(v)
		return nil
	case event.FieldPolicyContext:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPolicyContext(v)
		return nil
	case event.FieldModelContext:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelContext(v)
		return nil
	case event.FieldDisplay:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplay(v)
		return nil
	case event.FieldData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case event.FieldIdempotencyKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdempotencyKey(v)
		return nil
	case event.FieldPrevEventHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrevEventHash(v)
		return nil
	case event.FieldEventHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventHash(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	if m.addevent_version != nil {
		fields = append(fields, event.FieldEventVersion)
	}
	if m.addstream_seq != nil {
		fields = append(fields, event.FieldStreamSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case event.FieldEventVersion:
		return m.AddedEventVersion()
	case event.FieldStreamSeq:
		return m.AddedStreamSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case event.FieldEventVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEventVersion(v)
		return nil
	case event.FieldStreamSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreamSeq(v)
		return nil
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldMissionID) {
		fields = append(fields, event.FieldMissionID)
	}
	if m.FieldCleared(event.FieldRoomID) {
		fields = append(fields, event.FieldRoomID)
	}
	if m.FieldCleared(event.FieldThreadID) {
		fields = append(fields, event.FieldThreadID)
	}
	if m.FieldCleared(event.FieldRunID) {
		fields = append(fields, event.FieldRunID)
	}
	if m.FieldCleared(event.FieldStepID) {
		fields = append(fields, event.FieldStepID)
	}
	if m.FieldCleared(event.FieldActorPrincipalID) {
		fields = append(fields, event.FieldActorPrincipalID)
	}
	if m.FieldCleared(event.FieldCausationID) {
		fields = append(fields, event.FieldCausationID)
	}
	if m.FieldCleared(event.FieldPolicyContext) {
		fields = append(fields, event.FieldPolicyContext)
	}
	if m.FieldCleared(event.FieldModelContext) {
		fields = append(fields, event.FieldModelContext)
	}
	if m.FieldCleared(event.FieldDisplay) {
		fields = append(fields, event.FieldDisplay)
	}
	if m.FieldCleared(event.FieldData) {
		fields = append(fields, event.FieldData)
	}
	if m.FieldCleared(event.FieldIdempotencyKey) {
		fields = append(fields, event.FieldIdempotencyKey)
	}
	if m.FieldCleared(event.FieldPrevEventHash) {
		fields = append(fields, event.FieldPrevEventHash)
	}
	if m.FieldCleared(event.FieldEventHash) {
		fields = append(fields, event.FieldEventHash)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldMissionID:
		m.ClearMissionID()
		return nil
	case event.FieldRoomID:
		m.ClearRoomID()
		return nil
	case event.FieldThreadID:
		m.ClearThreadID()
		return nil
	case event.FieldRunID:
		m.ClearRunID()
		return nil
	case event.FieldStepID:
		m.ClearStepID()
		return nil
	case event.FieldActorPrincipalID:
		m.ClearActorPrincipalID()
		return nil
	case event.FieldCausationID:
		m.ClearCausationID()
		return nil
	case event.FieldPolicyContext:
		m.ClearPolicyContext()
		return nil
	case event.FieldModelContext:
		m.ClearModelContext()
		return nil
	case event.FieldDisplay:
		m.ClearDisplay()
		return nil
	case event.FieldData:
		m.ClearData()
		return nil
	case event.FieldIdempotencyKey:
		m.ClearIdempotencyKey()
		return nil
	case event.FieldPrevEventHash:
		m.ClearPrevEventHash()
		return nil
	case event.FieldEventHash:
		m.ClearEventHash()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldEventType:
		m.ResetEventType()
		return nil
	case event.FieldEventVersion:
		m.ResetEventVersion()
		return nil
	case event.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	case event.FieldRecordedAt:
		m.ResetRecordedAt()
		return nil
	case event.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case event.FieldMissionID:
		m.ResetMissionID()
		return nil
	case event.FieldRoomID:
		m.ResetRoomID()
		return nil
	case event.FieldThreadID:
		m.ResetThreadID()
		return nil
	case event.FieldRunID:
		m.ResetRunID()
		return nil
	case event.FieldStepID:
		m.ResetStepID()
		return nil
	case event.FieldActorType:
		m.ResetActorType()
		return nil
	case event.FieldActorID:
		m.ResetActorID()
		return nil
	case event.FieldActorPrincipalID:
		m.ResetActorPrincipalID()
		return nil
	case event.FieldZone:
		m.ResetZone()
		return nil
	case event.FieldStreamType:
		m.ResetStreamType()
		return nil
	case event.FieldStreamID:
		m.ResetStreamID()
		return nil
	case event.FieldStreamSeq:
		m.ResetStreamSeq()
		return nil
	case event.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case event.FieldCausationID:
		m.ResetCausationID()
		return nil
	case event.FieldRedactionLevel:
		m.ResetRedactionLevel()
		return nil
	case event.FieldContainsSecrets:
		m.ResetContainsSecrets()
		return nil
	case event.FieldPolicyContext:
		m.ResetPolicyContext()
		return nil
	case event.FieldModelContext:
		m.ResetModelContext()
		return nil
	case event.FieldDisplay:
		m.ResetDisplay()
		return nil
	case event.FieldData:
		m.ResetData()
		return nil
	case event.FieldIdempotencyKey:
		m.ResetIdempotencyKey()
		return nil
	case event.FieldPrevEventHash:
		m.ResetPrevEventHash()
		return nil
	case event.FieldEventHash:
		m.ResetEventHash()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// EvidenceManifestMutation represents an operation that mutates the EvidenceManifest nodes in the graph.
type EvidenceManifestMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	workspace_id       *string
	run_id             *string
	artifact_ids       *[]string
	appendartifact_ids []string
	manifest_hash      *string
	last_event_id      *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*EvidenceManifest, error)
	predicates         []predicate.EvidenceManifest
}

var _ ent.Mutation = (*EvidenceManifestMutation)(nil)

// evidencemanifestOption allows management of the mutation configuration using functional options.
type evidencemanifestOption func(*EvidenceManifestMutation)

// newEvidenceManifestMutation creates new mutation for the EvidenceManifest entity.
func newEvidenceManifestMutation(c config, op Op, opts ...evidencemanifestOption) *EvidenceManifestMutation {
	m := &EvidenceManifestMutation{
		config:        c,
		op:            op,
		typ:           TypeEvidenceManifest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvidenceManifestID sets the ID field of the mutation.
func withEvidenceManifestID(id string) evidencemanifestOption {
	return func(m *EvidenceManifestMutation) {
		var (
			err   error
			once  sync.Once
			value *EvidenceManifest
		)
		m.oldValue = func(ctx context.Context) (*EvidenceManifest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EvidenceManifest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvidenceManifest sets the old EvidenceManifest of the mutation.
func withEvidenceManifest(node *EvidenceManifest) evidencemanifestOption {
	return func(m *EvidenceManifestMutation) {
		m.oldValue = func(context.Context) (*EvidenceManifest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvidenceManifestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvidenceManifestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EvidenceManifest entities.
func (m *EvidenceManifestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvidenceManifestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvidenceManifestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EvidenceManifest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *EvidenceManifestMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *EvidenceManifestMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the EvidenceManifest entity.
// If the EvidenceManifest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceManifestMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *EvidenceManifestMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetRunID sets the "run_id" field.
func (m *EvidenceManifestMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *EvidenceManifestMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the EvidenceManifest entity.
// If the EvidenceManifest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceManifestMutation) OldRunID(ctx context.Context) (v string, err error) {
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
func (m *EvidenceManifestMutation) ResetRunID() {
	m.run_id = nil
}

// SetArtifactIds sets the "artifact_ids" field.
func (m *EvidenceManifestMutation) SetArtifactIds(s []string) {
	m.artifact_ids = &s
	m.appendartifact_ids = nil
}

// ArtifactIds returns the value of the "artifact_ids" field in the mutation.
func (m *EvidenceManifestMutation) ArtifactIds() (r []string, exists bool) {
	v := m.artifact_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifactIds returns the old "artifact_ids" field's value of the EvidenceManifest entity.
// If the EvidenceManifest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceManifestMutation) OldArtifactIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifactIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifactIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifactIds: %w", err)
	}
	return oldValue.ArtifactIds, nil
}

// AppendArtifactIds adds s to the "artifact_ids" field.
func (m *EvidenceManifestMutation) AppendArtifactIds(s []string) {
	m.appendartifact_ids = append(m.appendartifact_ids, s...)
}

// AppendedArtifactIds returns the list of values that were appended to the "artifact_ids" field in this mutation.
func (m *EvidenceManifestMutation) AppendedArtifactIds() ([]string, bool) {
	if len(m.appendartifact_ids) == 0 {
		return nil, false
	}
	return m.appendartifact_ids, true
}

// ResetArtifactIds resets all changes to the "artifact_ids" field.
func (m *EvidenceManifestMutation) ResetArtifactIds() {
	m.artifact_ids = nil
	m.appendartifact_ids = nil
}

// SetManifestHash sets the "manifest_hash" field.
func (m *EvidenceManifestMutation) SetManifestHash(s string) {
	m.manifest_hash = &s
}

// ManifestHash returns the value of the "manifest_hash" field in the mutation.
func (m *EvidenceManifestMutation) ManifestHash() (r string, exists bool) {
	v := m.manifest_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldManifestHash returns the old "manifest_hash" field's value of the EvidenceManifest entity.
// If the EvidenceManifest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceManifestMutation) OldManifestHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManifestHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManifestHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManifestHash: %w", err)
	}
	return oldValue.ManifestHash, nil
}

// ResetManifestHash resets all changes to the "manifest_hash" field.
func (m *EvidenceManifestMutation) ResetManifestHash() {
	m.manifest_hash = nil
}

// SetLastEventID sets the "last_event_id" field.
func (m *EvidenceManifestMutation) SetLastEventID(s string) {
	m.last_event_id = &s
}

// LastEventID returns the value of the "last_event_id" field in the mutation.
func (m *EvidenceManifestMutation) LastEventID() (r string, exists bool) {
	v := m.last_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEventID returns the old "last_event_id" field's value of the EvidenceManifest entity.
// If the EvidenceManifest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceManifestMutation) OldLastEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEventID: %w", err)
	}
	return oldValue.LastEventID, nil
}

// ResetLastEventID resets all changes to the "last_event_id" field.
func (m *EvidenceManifestMutation) ResetLastEventID() {
	m.last_event_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EvidenceManifestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EvidenceManifestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EvidenceManifest entity.
// If the EvidenceManifest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceManifestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *EvidenceManifestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EvidenceManifestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EvidenceManifestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EvidenceManifest entity.
// If the EvidenceManifest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceManifestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EvidenceManifestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the EvidenceManifestMutation builder.
func (m *EvidenceManifestMutation) Where(ps ...predicate.EvidenceManifest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvidenceManifestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvidenceManifestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EvidenceManifest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvidenceManifestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvidenceManifestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EvidenceManifest).
func (m *EvidenceManifestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvidenceManifestMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.workspace_id != nil {
		fields = append(fields, evidencemanifest.FieldWorkspaceID)
	}
	if m.run_id != nil {
		fields = append(fields, evidencemanifest.FieldRunID)
	}
	if m.artifact_ids != nil {
		fields = append(fields, evidencemanifest.FieldArtifactIds)
	}
	if m.manifest_hash != nil {
		fields = append(fields, evidencemanifest.FieldManifestHash)
	}
	if m.last_event_id != nil {
		fields = append(fields, evidencemanifest.FieldLastEventID)
	}
	if m.created_at != nil {
		fields = append(fields, evidencemanifest.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, evidencemanifest.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvidenceManifestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evidencemanifest.FieldWorkspaceID:
		return m.WorkspaceID()
	case evidencemanifest.FieldRunID:
		return m.RunID()
	case evidencemanifest.FieldArtifactIds:
		return m.ArtifactIds()
	case evidencemanifest.FieldManifestHash:
		return m.ManifestHash()
	case evidencemanifest.FieldLastEventID:
		return m.LastEventID()
	case evidencemanifest.FieldCreatedAt:
		return m.CreatedAt()
	case evidencemanifest.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvidenceManifestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evidencemanifest.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case evidencemanifest.FieldRunID:
		return m.OldRunID(ctx)
	case evidencemanifest.FieldArtifactIds:
		return m.OldArtifactIds(ctx)
	case evidencemanifest.FieldManifestHash:
		return m.OldManifestHash(ctx)
	case evidencemanifest.FieldLastEventID:
		return m.OldLastEventID(ctx)
	case evidencemanifest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case evidencemanifest.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EvidenceManifest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvidenceManifestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evidencemanifest.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case evidencemanifest.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case evidencemanifest.FieldArtifactIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifactIds(v)
		return nil
	case evidencemanifest.FieldManifestHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManifestHash(v)
		return nil
	case evidencemanifest.FieldLastEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEventID(v)
		return nil
	case evidencemanifest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case evidencemanifest.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EvidenceManifest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvidenceManifestMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvidenceManifestMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvidenceManifestMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EvidenceManifest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvidenceManifestMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvidenceManifestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvidenceManifestMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EvidenceManifest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvidenceManifestMutation) ResetField(name string) error {
	switch name {
	case evidencemanifest.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case evidencemanifest.FieldRunID:
		m.ResetRunID()
		return nil
	case evidencemanifest.FieldArtifactIds:
		m.ResetArtifactIds()
		return nil
	case evidencemanifest.FieldManifestHash:
		m.ResetManifestHash()
		return nil
	case evidencemanifest.FieldLastEventID:
		m.ResetLastEventID()
		return nil
	case evidencemanifest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case evidencemanifest.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown EvidenceManifest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvidenceManifestMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvidenceManifestMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvidenceManifestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvidenceManifestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvidenceManifestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvidenceManifestMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvidenceManifestMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EvidenceManifest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvidenceManifestMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EvidenceManifest edge %s", name)
}

// IncidentMutation represents an operation that mutates the Incident nodes in the graph.
type IncidentMutation struct {
	config
	op                Op
	typ               string
	id                *string
	workspace_id      *string
	run_id            *string
	correlation_id    *string
	title             *string
	severity          *string
	status            *incident.Status
	rca_updated_at    *time.Time
	learning_count    *int
	addlearning_count *int
	opened_at         *time.Time
	closed_at         *time.Time
	last_event_id     *string
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Incident, error)
	predicates        []predicate.Incident
}

var _ ent.Mutation = (*IncidentMutation)(nil)

// incidentOption allows management of the mutation configuration using functional options.
type incidentOption func(*IncidentMutation)

// newIncidentMutation creates new mutation for the Incident entity.
func newIncidentMutation(c config, op Op, opts ...incidentOption) *IncidentMutation {
	m := &IncidentMutation{
		config:        c,
		op:            op,
		typ:           TypeIncident,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIncidentID sets the ID field of the mutation.
func withIncidentID(id string) incidentOption {
	return func(m *IncidentMutation) {
		var (
			err   error
			once  sync.Once
			value *Incident
		)
		m.oldValue = func(ctx context.Context) (*Incident, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Incident.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIncident sets the old Incident of the mutation.
func withIncident(node *Incident) incidentOption {
	return func(m *IncidentMutation) {
		m.oldValue = func(context.Context) (*Incident, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IncidentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IncidentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Incident entities.
func (m *IncidentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IncidentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IncidentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Incident.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *IncidentMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *IncidentMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *IncidentMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetRunID sets the "run_id" field.
func (m *IncidentMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *IncidentMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldRunID(ctx context.Context) (v *string, err error) {
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

// ClearRunID clears the value of the "run_id" field.
func (m *IncidentMutation) ClearRunID() {
	m.run_id = nil
	m.clearedFields[incident.FieldRunID] = struct{}{}
}

// RunIDCleared returns if the "run_id" field was cleared in this mutation.
func (m *IncidentMutation) RunIDCleared() bool {
	_, ok := m.clearedFields[incident.FieldRunID]
	return ok
}

// ResetRunID resets all changes to the "run_id" field.
func (m *IncidentMutation) ResetRunID() {
	m.run_id = nil
	delete(m.clearedFields, incident.FieldRunID)
}

// SetCorrelationID sets the "correlation_id" field.
func (m *IncidentMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *IncidentMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (m *IncidentMutation) ClearCorrelationID() {
	m.correlation_id = nil
	m.clearedFields[incident.FieldCorrelationID] = struct{}{}
}

// CorrelationIDCleared returns if the "correlation_id" field was cleared in this mutation.
func (m *IncidentMutation) CorrelationIDCleared() bool {
	_, ok := m.clearedFields[incident.FieldCorrelationID]
	return ok
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *IncidentMutation) ResetCorrelationID() {
	m.correlation_id = nil
	delete(m.clearedFields, incident.FieldCorrelationID)
}

// SetTitle sets the "title" field.
func (m *IncidentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *IncidentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *IncidentMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[incident.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *IncidentMutation) TitleCleared() bool {
	_, ok := m.clearedFields[incident.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *IncidentMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, incident.FieldTitle)
}

// SetSeverity sets the "severity" field.
func (m *IncidentMutation) SetSeverity(s string) {
	m.severity = &s
}

// Severity returns the value of the "severity" field in the mutation.
func (m *IncidentMutation) Severity() (r string, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldSeverity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ClearSeverity clears the value of the "severity" field.
func (m *IncidentMutation) ClearSeverity() {
	m.severity = nil
	m.clearedFields[incident.FieldSeverity] = struct{}{}
}

// SeverityCleared returns if the "severity" field was cleared in this mutation.
func (m *IncidentMutation) SeverityCleared() bool {
	_, ok := m.clearedFields[incident.FieldSeverity]
	return ok
}

// ResetSeverity resets all changes to the "severity" field.
func (m *IncidentMutation) ResetSeverity() {
	m.severity = nil
	delete(m.clearedFields, incident.FieldSeverity)
}

// SetStatus sets the "status" field.
func (m *IncidentMutation) SetStatus(i incident.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *IncidentMutation) Status() (r incident.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldStatus(ctx context.Context) (v incident.Status, err error) {
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
func (m *IncidentMutation) ResetStatus() {
	m.status = nil
}

// SetRcaUpdatedAt sets the "rca_updated_at" field.
func (m *IncidentMutation) SetRcaUpdatedAt(t time.Time) {
	m.rca_updated_at = &t
}

// RcaUpdatedAt returns the value of the "rca_updated_at" field in the mutation.
func (m *IncidentMutation) RcaUpdatedAt() (r time.Time, exists bool) {
	v := m.rca_updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRcaUpdatedAt returns the old "rca_updated_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldRcaUpdatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRcaUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRcaUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRcaUpdatedAt: %w", err)
	}
	return oldValue.RcaUpdatedAt, nil
}

// ClearRcaUpdatedAt clears the value of the "rca_updated_at" field.
func (m *IncidentMutation) ClearRcaUpdatedAt() {
	m.rca_updated_at = nil
	m.clearedFields[incident.FieldRcaUpdatedAt] = struct{}{}
}

// RcaUpdatedAtCleared returns if the "rca_updated_at" field was cleared in this mutation.
func (m *IncidentMutation) RcaUpdatedAtCleared() bool {
	_, ok := m.clearedFields[incident.FieldRcaUpdatedAt]
	return ok
}

// ResetRcaUpdatedAt resets all changes to the "rca_updated_at" field.
func (m *IncidentMutation) ResetRcaUpdatedAt() {
	m.rca_updated_at = nil
	delete(m.clearedFields, incident.FieldRcaUpdatedAt)
}

// SetLearningCount sets the "learning_count" field.
func (m *IncidentMutation) SetLearningCount(i int) {
	m.learning_count = &i
	m.addlearning_count = nil
}

// LearningCount returns the value of the "learning_count" field in the mutation.
func (m *IncidentMutation) LearningCount() (r int, exists bool) {
	v := m.learning_count
	if v == nil {
		return
	}
	return *v, true
}

// OldLearningCount returns the old "learning_count" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldLearningCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearningCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearningCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearningCount: %w", err)
	}
	return oldValue.LearningCount, nil
}

// AddLearningCount adds i to the "learning_count" field.
func (m *IncidentMutation) AddLearningCount(i int) {
	if m.addlearning_count != nil {
		*m.addlearning_count += i
	} else {
		m.addlearning_count = &i
	}
}

// AddedLearningCount returns the value that was added to the "learning_count" field in this mutation.
func (m *IncidentMutation) AddedLearningCount() (r int, exists bool) {
	v := m.addlearning_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetLearningCount resets all changes to the "learning_count" field.
func (m *IncidentMutation) ResetLearningCount() {
	m.learning_count = nil
	m.addlearning_count = nil
}

// SetOpenedAt sets the "opened_at" field.
func (m *IncidentMutation) SetOpenedAt(t time.Time) {
	m.opened_at = &t
}

// OpenedAt returns the value of the "opened_at" field in the mutation.
func (m *IncidentMutation) OpenedAt() (r time.Time, exists bool) {
	v := m.opened_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOpenedAt returns the old "opened_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldOpenedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpenedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpenedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpenedAt: %w", err)
	}
	return oldValue.OpenedAt, nil
}

// ResetOpenedAt resets all changes to the "opened_at" field.
func (m *IncidentMutation) ResetOpenedAt() {
	m.opened_at = nil
}

// SetClosedAt sets the "closed_at" field.
func (m *IncidentMutation) SetClosedAt(t time.Time) {
	m.closed_at = &t
}

// ClosedAt returns the value of the "closed_at" field in the mutation.
func (m *IncidentMutation) ClosedAt() (r time.Time, exists bool) {
	v := m.closed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClosedAt returns the old "closed_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldClosedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClosedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClosedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClosedAt: %w", err)
	}
	return oldValue.ClosedAt, nil
}

// ClearClosedAt clears the value of the "closed_at" field.
func (m *IncidentMutation) ClearClosedAt() {
	m.closed_at = nil
	m.clearedFields[incident.FieldClosedAt] = struct{}{}
}

// ClosedAtCleared returns if the "closed_at" field was cleared in this mutation.
func (m *IncidentMutation) ClosedAtCleared() bool {
	_, ok := m.clearedFields[incident.FieldClosedAt]
	return ok
}

// ResetClosedAt resets all changes to the "closed_at" field.
func (m *IncidentMutation) ResetClosedAt() {
	m.closed_at = nil
	delete(m.clearedFields, incident.FieldClosedAt)
}

// SetLastEventID sets the "last_event_id" field.
func (m *IncidentMutation) SetLastEventID(s string) {
	m.last_event_id = &s
}

// LastEventID returns the value of the "last_event_id" field in the mutation.
func (m *IncidentMutation) LastEventID() (r string, exists bool) {
	v := m.last_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEventID returns the old "last_event_id" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldLastEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEventID: %w", err)
	}
	return oldValue.LastEventID, nil
}

// ResetLastEventID resets all changes to the "last_event_id" field.
func (m *IncidentMutation) ResetLastEventID() {
	m.last_event_id = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *IncidentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *IncidentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *IncidentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the IncidentMutation builder.
func (m *IncidentMutation) Where(ps ...predicate.Incident) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IncidentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IncidentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Incident, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IncidentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IncidentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Incident).
func (m *IncidentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IncidentMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.workspace_id != nil {
		fields = append(fields, incident.FieldWorkspaceID)
	}
	if m.run_id != nil {
		fields = append(fields, incident.FieldRunID)
	}
	if m.correlation_id != nil {
		fields = append(fields, incident.FieldCorrelationID)
	}
	if m.title != nil {
		fields = append(fields, incident.FieldTitle)
	}
	if m.severity != nil {
		fields = append(fields, incident.FieldSeverity)
	}
	if m.status != nil {
		fields = append(fields, incident.FieldStatus)
	}
	if m.rca_updated_at != nil {
		fields = append(fields, incident.FieldRcaUpdatedAt)
	}
	if m.learning_count != nil {
		fields = append(fields, incident.FieldLearningCount)
	}
	if m.opened_at != nil {
		fields = append(fields, incident.FieldOpenedAt)
	}
	if m.closed_at != nil {
		fields = append(fields, incident.FieldClosedAt)
	}
	if m.last_event_id != nil {
		fields = append(fields, incident.FieldLastEventID)
	}
	if m.updated_at != nil {
		fields = append(fields, incident.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IncidentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case incident.FieldWorkspaceID:
		return m.WorkspaceID()
	case incident.FieldRunID:
		return m.RunID()
	case incident.FieldCorrelationID:
		return m.CorrelationID()
	case incident.FieldTitle:
		return m.Title()
	case incident.FieldSeverity:
		return m.Severity()
	case incident.FieldStatus:
		return m.Status()
	case incident.FieldRcaUpdatedAt:
		return m.RcaUpdatedAt()
	case incident.FieldLearningCount:
		return m.LearningCount()
	case incident.FieldOpenedAt:
		return m.OpenedAt()
	case incident.FieldClosedAt:
		return m.ClosedAt()
	case incident.FieldLastEventID:
		return m.LastEventID()
	case incident.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IncidentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case incident.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case incident.FieldRunID:
		return m.OldRunID(ctx)
	case incident.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case incident.FieldTitle:
		return m.OldTitle(ctx)
	case incident.FieldSeverity:
		return m.OldSeverity(ctx)
	case incident.FieldStatus:
		return m.OldStatus(ctx)
	case incident.FieldRcaUpdatedAt:
		return m.OldRcaUpdatedAt(ctx)
	case incident.FieldLearningCount:
		return m.OldLearningCount(ctx)
	case incident.FieldOpenedAt:
		return m.OldOpenedAt(ctx)
	case incident.FieldClosedAt:
		return m.OldClosedAt(ctx)
	case incident.FieldLastEventID:
		return m.OldLastEventID(ctx)
	case incident.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Incident field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncidentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case incident.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case incident.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case incident.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case incident.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case incident.FieldSeverity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case incident.FieldStatus:
		v, ok := value.(incident.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case incident.FieldRcaUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRcaUpdatedAt(v)
		return nil
	case incident.FieldLearningCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearningCount(v)
		return nil
	case incident.FieldOpenedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpenedAt(v)
		return nil
	case incident.FieldClosedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClosedAt(v)
		return nil
	case incident.FieldLastEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEventID(v)
		return nil
	case incident.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Incident field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IncidentMutation) AddedFields() []string {
	var fields []string
	if m.addlearning_count != nil {
		fields = append(fields, incident.FieldLearningCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IncidentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case incident.FieldLearningCount:
		return m.AddedLearningCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncidentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case incident.FieldLearningCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLearningCount(v)
		return nil
	}
	return fmt.Errorf("unknown Incident numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IncidentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(incident.FieldRunID) {
		fields = append(fields, incident.FieldRunID)
	}
	if m.FieldCleared(incident.FieldCorrelationID) {
		fields = append(fields, incident.FieldCorrelationID)
	}
	if m.FieldCleared(incident.FieldTitle) {
		fields = append(fields, incident.FieldTitle)
	}
	if m.FieldCleared(incident.FieldSeverity) {
		fields = append(fields, incident.FieldSeverity)
	}
	if m.FieldCleared(incident.FieldRcaUpdatedAt) {
		fields = append(fields, incident.FieldRcaUpdatedAt)
	}
	if m.FieldCleared(incident.FieldClosedAt) {
		fields = append(fields, incident.FieldClosedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IncidentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IncidentMutation) ClearField(name string) error {
	switch name {
	case incident.FieldRunID:
		m.ClearRunID()
		return nil
	case incident.FieldCorrelationID:
		m.ClearCorrelationID()
		return nil
	case incident.FieldTitle:
		m.ClearTitle()
		return nil
	case incident.FieldSeverity:
		m.ClearSeverity()
		return nil
	case incident.FieldRcaUpdatedAt:
		m.ClearRcaUpdatedAt()
		return nil
	case incident.FieldClosedAt:
		m.ClearClosedAt()
		return nil
	}
	return fmt.Errorf("unknown Incident nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IncidentMutation) ResetField(name string) error {
	switch name {
	case incident.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case incident.FieldRunID:
		m.ResetRunID()
		return nil
	case incident.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case incident.FieldTitle:
		m.ResetTitle()
		return nil
	case incident.FieldSeverity:
		m.ResetSeverity()
		return nil
	case incident.FieldStatus:
		m.ResetStatus()
		return nil
	case incident.FieldRcaUpdatedAt:
		m.ResetRcaUpdatedAt()
		return nil
	case incident.FieldLearningCount:
		m.ResetLearningCount()
		return nil
	case incident.FieldOpenedAt:
		m.ResetOpenedAt()
		return nil
	case incident.FieldClosedAt:
		m.ResetClosedAt()
		return nil
	case incident.FieldLastEventID:
		m.ResetLastEventID()
		return nil
	case incident.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Incident field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IncidentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IncidentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IncidentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IncidentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IncidentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IncidentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IncidentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Incident unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IncidentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Incident edge %s", name)
}

// IncidentLearningMutation represents an operation that mutates the IncidentLearning nodes in the graph.
type IncidentLearningMutation struct {
	config
	op            Op
	typ           string
	id            *string
	workspace_id  *string
	incident_id   *string
	summary       *string
	logged_by     *string
	last_event_id *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*IncidentLearning, error)
	predicates    []predicate.IncidentLearning
}

var _ ent.Mutation = (*IncidentLearningMutation)(nil)

// incidentlearningOption allows management of the mutation configuration using functional options.
type incidentlearningOption func(*IncidentLearningMutation)

// newIncidentLearningMutation creates new mutation for the IncidentLearning entity.
func newIncidentLearningMutation(c config, op Op, opts ...incidentlearningOption) *IncidentLearningMutation {
	m := &IncidentLearningMutation{
		config:        c,
		op:            op,
		typ:           TypeIncidentLearning,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIncidentLearningID sets the ID field of the mutation.
func withIncidentLearningID(id string) incidentlearningOption {
	return func(m *IncidentLearningMutation) {
		var (
			err   error
			once  sync.Once
			value *IncidentLearning
		)
		m.oldValue = func(ctx context.Context) (*IncidentLearning, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IncidentLearning.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIncidentLearning sets the old IncidentLearning of the mutation.
func withIncidentLearning(node *IncidentLearning) incidentlearningOption {
	return func(m *IncidentLearningMutation) {
		m.oldValue = func(context.Context) (*IncidentLearning, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IncidentLearningMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IncidentLearningMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IncidentLearning entities.
func (m *IncidentLearningMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IncidentLearningMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IncidentLearningMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IncidentLearning.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *IncidentLearningMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *IncidentLearningMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the IncidentLearning entity.
// If the IncidentLearning object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentLearningMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *IncidentLearningMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetIncidentID sets the "incident_id" field.
func (m *IncidentLearningMutation) SetIncidentID(s string) {
	m.incident_id = &s
}

// IncidentID returns the value of the "incident_id" field in the mutation.
func (m *IncidentLearningMutation) IncidentID() (r string, exists bool) {
	v := m.incident_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentID returns the old "incident_id" field's value of the IncidentLearning entity.
// If the IncidentLearning object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentLearningMutation) OldIncidentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentID: %w", err)
	}
	return oldValue.IncidentID, nil
}

// ResetIncidentID resets all changes to the "incident_id" field.
func (m *IncidentLearningMutation) ResetIncidentID() {
	m.incident_id = nil
}

// SetSummary sets the "summary" field.
func (m *IncidentLearningMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *IncidentLearningMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the IncidentLearning entity.
// If the IncidentLearning object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentLearningMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *IncidentLearningMutation) ResetSummary() {
	m.summary = nil
}

// SetLoggedBy sets the "logged_by" field.
func (m *IncidentLearningMutation) SetLoggedBy(s string) {
	m.logged_by = &s
}

// LoggedBy returns the value of the "logged_by" field in the mutation.
func (m *IncidentLearningMutation) LoggedBy() (r string, exists bool) {
	v := m.logged_by
	if v == nil {
		return
	}
	return *v, true
}

// OldLoggedBy returns the old "logged_by" field's value of the IncidentLearning entity.
// If the IncidentLearning object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentLearningMutation) OldLoggedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoggedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoggedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoggedBy: %w", err)
	}
	return oldValue.LoggedBy, nil
}

// ClearLoggedBy clears the value of the "logged_by" field.
func (m *IncidentLearningMutation) ClearLoggedBy() {
	m.logged_by = nil
	m.clearedFields[incidentlearning.FieldLoggedBy] = struct{}{}
}

// LoggedByCleared returns if the "logged_by" field was cleared in this mutation.
func (m *IncidentLearningMutation) LoggedByCleared() bool {
	_, ok := m.clearedFields[incidentlearning.FieldLoggedBy]
	return ok
}

// ResetLoggedBy resets all changes to the "logged_by" field.
func (m *IncidentLearningMutation) ResetLoggedBy() {
	m.logged_by = nil
	delete(m.clearedFields, incidentlearning.FieldLoggedBy)
}

// SetLastEventID sets the "last_event_id" field.
func (m *IncidentLearningMutation) SetLastEventID(s string) {
	m.last_event_id = &s
}

// LastEventID returns the value of the "last_event_id" field in the mutation.
func (m *IncidentLearningMutation) LastEventID() (r string, exists bool) {
	v := m.last_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEventID returns the old "last_event_id" field's value of the IncidentLearning entity.
// If the IncidentLearning object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentLearningMutation) OldLastEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEventID: %w", err)
	}
	return oldValue.LastEventID, nil
}

// ResetLastEventID resets all changes to the "last_event_id" field.
func (m *IncidentLearningMutation) ResetLastEventID() {
	m.last_event_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *IncidentLearningMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IncidentLearningMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the IncidentLearning entity.
// If the IncidentLearning object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentLearningMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *IncidentLearningMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the IncidentLearningMutation builder.
func (m *IncidentLearningMutation) Where(ps ...predicate.IncidentLearning) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IncidentLearningMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IncidentLearningMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IncidentLearning, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IncidentLearningMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IncidentLearningMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IncidentLearning).
func (m *IncidentLearningMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IncidentLearningMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.workspace_id != nil {
		fields = append(fields, incidentlearning.FieldWorkspaceID)
	}
	if m.incident_id != nil {
		fields = append(fields, incidentlearning.FieldIncidentID)
	}
	if m.summary != nil {
		fields = append(fields, incidentlearning.FieldSummary)
	}
	if m.logged_by != nil {
		fields = append(fields, incidentlearning.FieldLoggedBy)
	}
	if m.last_event_id != nil {
		fields = append(fields, incidentlearning.FieldLastEventID)
	}
	if m.created_at != nil {
		fields = append(fields, incidentlearning.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IncidentLearningMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case incidentlearning.FieldWorkspaceID:
		return m.WorkspaceID()
	case incidentlearning.FieldIncidentID:
		return m.IncidentID()
	case incidentlearning.FieldSummary:
		return m.Summary()
	case incidentlearning.FieldLoggedBy:
		return m.LoggedBy()
	case incidentlearning.FieldLastEventID:
		return m.LastEventID()
	case incidentlearning.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IncidentLearningMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case incidentlearning.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case incidentlearning.FieldIncidentID:
		return m.OldIncidentID(ctx)
	case incidentlearning.FieldSummary:
		return m.OldSummary(ctx)
	case incidentlearning.FieldLoggedBy:
		return m.OldLoggedBy(ctx)
	case incidentlearning.FieldLastEventID:
		return m.OldLastEventID(ctx)
	case incidentlearning.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IncidentLearning field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncidentLearningMutation) SetField(name string, value ent.Value) error {
	switch name {
	case incidentlearning.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case incidentlearning.FieldIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentID(v)
		return nil
	case incidentlearning.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case incidentlearning.FieldLoggedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoggedBy(v)
		return nil
	case incidentlearning.FieldLastEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEventID(v)
		return nil
	case incidentlearning.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IncidentLearning field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IncidentLearningMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IncidentLearningMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncidentLearningMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown IncidentLearning numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IncidentLearningMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(incidentlearning.FieldLoggedBy) {
		fields = append(fields, incidentlearning.FieldLoggedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IncidentLearningMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IncidentLearningMutation) ClearField(name string) error {
	switch name {
	case incidentlearning.FieldLoggedBy:
		m.ClearLoggedBy()
		return nil
	}
	return fmt.Errorf("unknown IncidentLearning nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IncidentLearningMutation) ResetField(name string) error {
	switch name {
	case incidentlearning.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case incidentlearning.FieldIncidentID:
		m.ResetIncidentID()
		return nil
	case incidentlearning.FieldSummary:
		m.ResetSummary()
		return nil
	case incidentlearning.FieldLoggedBy:
		m.ResetLoggedBy()
		return nil
	case incidentlearning.FieldLastEventID:
		m.ResetLastEventID()
		return nil
	case incidentlearning.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown IncidentLearning field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IncidentLearningMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IncidentLearningMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IncidentLearningMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IncidentLearningMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IncidentLearningMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IncidentLearningMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IncidentLearningMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown IncidentLearning unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IncidentLearningMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown IncidentLearning edge %s", name)
}

// LessonMutation represents an operation that mutates the Lesson nodes in the graph.
type LessonMutation struct {
	config
	op            Op
	typ           string
	id            *string
	workspace_id  *string
	scorecard_id  *string
	incident_id   *string
	title         *string
	body          *string
	last_event_id *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Lesson, error)
	predicates    []predicate.Lesson
}

var _ ent.Mutation = (*LessonMutation)(nil)

// lessonOption allows management of the mutation configuration using functional options.
type lessonOption func(*LessonMutation)

// newLessonMutation creates new mutation for the Lesson entity.
func newLessonMutation(c config, op Op, opts ...lessonOption) *LessonMutation {
	m := &LessonMutation{
		config:        c,
		op:            op,
		typ:           TypeLesson,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLessonID sets the ID field of the mutation.
func withLessonID(id string) lessonOption {
	return func(m *LessonMutation) {
		var (
			err   error
			once  sync.Once
			value *Lesson
		)
		m.oldValue = func(ctx context.Context) (*Lesson, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lesson.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLesson sets the old Lesson of the mutation.
func withLesson(node *Lesson) lessonOption {
	return func(m *LessonMutation) {
		m.oldValue = func(context.Context) (*Lesson, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LessonMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LessonMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Lesson entities.
func (m *LessonMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LessonMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LessonMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lesson.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *LessonMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *LessonMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *LessonMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetScorecardID sets the "scorecard_id" field.
func (m *LessonMutation) SetScorecardID(s string) {
	m.scorecard_id = &s
}

// ScorecardID returns the value of the "scorecard_id" field in the mutation.
func (m *LessonMutation) ScorecardID() (r string, exists bool) {
	v := m.scorecard_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScorecardID returns the old "scorecard_id" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldScorecardID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScorecardID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScorecardID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScorecardID: %w", err)
	}
	return oldValue.ScorecardID, nil
}

// ClearScorecardID clears the value of the "scorecard_id" field.
func (m *LessonMutation) ClearScorecardID() {
	m.scorecard_id = nil
	m.clearedFields[lesson.FieldScorecardID] = struct{}{}
}

// ScorecardIDCleared returns if the "scorecard_id" field was cleared in this mutation.
func (m *LessonMutation) ScorecardIDCleared() bool {
	_, ok := m.clearedFields[lesson.FieldScorecardID]
	return ok
}

// ResetScorecardID resets all changes to the "scorecard_id" field.
func (m *LessonMutation) ResetScorecardID() {
	m.scorecard_id = nil
	delete(m.clearedFields, lesson.FieldScorecardID)
}

// SetIncidentID sets the "incident_id" field.
func (m *LessonMutation) SetIncidentID(s string) {
	m.incident_id = &s
}

// IncidentID returns the value of the "incident_id" field in the mutation.
func (m *LessonMutation) IncidentID() (r string, exists bool) {
	v := m.incident_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentID returns the old "incident_id" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldIncidentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentID: %w", err)
	}
	return oldValue.IncidentID, nil
}

// ClearIncidentID clears the value of the "incident_id" field.
func (m *LessonMutation) ClearIncidentID() {
	m.incident_id = nil
	m.clearedFields[lesson.FieldIncidentID] = struct{}{}
}

// IncidentIDCleared returns if the "incident_id" field was cleared in this mutation.
func (m *LessonMutation) IncidentIDCleared() bool {
	_, ok := m.clearedFields[lesson.FieldIncidentID]
	return ok
}

// ResetIncidentID resets all changes to the "incident_id" field.
func (m *LessonMutation) ResetIncidentID() {
	m.incident_id = nil
	delete(m.clearedFields, lesson.FieldIncidentID)
}

// SetTitle sets the "title" field.
func (m *LessonMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *LessonMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *LessonMutation) ResetTitle() {
	m.title = nil
}

// SetBody sets the "body" field.
func (m *LessonMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *LessonMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ClearBody clears the value of the "body" field.
func (m *LessonMutation) ClearBody() {
	m.body = nil
	m.clearedFields[lesson.FieldBody] = struct{}{}
}

// BodyCleared returns if the "body" field was cleared in this mutation.
func (m *LessonMutation) BodyCleared() bool {
	_, ok := m.clearedFields[lesson.FieldBody]
	return ok
}

// ResetBody resets all changes to the "body" field.
func (m *LessonMutation) ResetBody() {
	m.body = nil
	delete(m.clearedFields, lesson.FieldBody)
}

// SetLastEventID sets the "last_event_id" field.
func (m *LessonMutation) SetLastEventID(s string) {
	m.last_event_id = &s
}

// LastEventID returns the value of the "last_event_id" field in the mutation.
func (m *LessonMutation) LastEventID() (r string, exists bool) {
	v := m.last_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEventID returns the old "last_event_id" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldLastEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEventID: %w", err)
	}
	return oldValue.LastEventID, nil
}

// ResetLastEventID resets all changes to the "last_event_id" field.
func (m *LessonMutation) ResetLastEventID() {
	m.last_event_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LessonMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LessonMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *LessonMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LessonMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LessonMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LessonMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the LessonMutation builder.
func (m *LessonMutation) Where(ps ...predicate.Lesson) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LessonMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LessonMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lesson, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LessonMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LessonMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lesson).
func (m *LessonMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LessonMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.workspace_id != nil {
		fields = append(fields, lesson.FieldWorkspaceID)
	}
	if m.scorecard_id != nil {
		fields = append(fields, lesson.FieldScorecardID)
	}
	if m.incident_id != nil {
		fields = append(fields, lesson.FieldIncidentID)
	}
	if m.title != nil {
		fields = append(fields, lesson.FieldTitle)
	}
	if m.body != nil {
		fields = append(fields, lesson.FieldBody)
	}
	if m.last_event_id != nil {
		fields = append(fields, lesson.FieldLastEventID)
	}
	if m.created_at != nil {
		fields = append(fields, lesson.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, lesson.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LessonMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lesson.FieldWorkspaceID:
		return m.WorkspaceID()
	case lesson.FieldScorecardID:
		return m.ScorecardID()
	case lesson.FieldIncidentID:
		return m.IncidentID()
	case lesson.FieldTitle:
		return m.Title()
	case lesson.FieldBody:
		return m.Body()
	case lesson.FieldLastEventID:
		return m.LastEventID()
	case lesson.FieldCreatedAt:
		return m.CreatedAt()
	case lesson.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LessonMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lesson.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case lesson.FieldScorecardID:
		return m.OldScorecardID(ctx)
	case lesson.FieldIncidentID:
		return m.OldIncidentID(ctx)
	case lesson.FieldTitle:
		return m.OldTitle(ctx)
	case lesson.FieldBody:
		return m.OldBody(ctx)
	case lesson.FieldLastEventID:
		return m.OldLastEventID(ctx)
	case lesson.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case lesson.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Lesson field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lesson.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case lesson.FieldScorecardID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScorecardID(v)
		return nil
	case lesson.FieldIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentID(v)
		return nil
	case lesson.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case lesson.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case lesson.FieldLastEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEventID(v)
		return nil
	case lesson.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case lesson.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Lesson field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LessonMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LessonMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Lesson numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LessonMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lesson.FieldScorecardID) {
		fields = append(fields, lesson.FieldScorecardID)
	}
	if m.FieldCleared(lesson.FieldIncidentID) {
		fields = append(fields, lesson.FieldIncidentID)
	}
	if m.FieldCleared(lesson.FieldBody) {
		fields = append(fields, lesson.FieldBody)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LessonMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LessonMutation) ClearField(name string) error {
	switch name {
	case lesson.FieldScorecardID:
		m.ClearScorecardID()
		return nil
	case lesson.FieldIncidentID:
		m.ClearIncidentID()
		return nil
	case lesson.FieldBody:
		m.ClearBody()
		return nil
	}
	return fmt.Errorf("unknown Lesson nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LessonMutation) ResetField(name string) error {
	switch name {
	case lesson.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case lesson.FieldScorecardID:
		m.ResetScorecardID()
		return nil
	case lesson.FieldIncidentID:
		m.ResetIncidentID()
		return nil
	case lesson.FieldTitle:
		m.ResetTitle()
		return nil
	case lesson.FieldBody:
		m.ResetBody()
		return nil
	case lesson.FieldLastEventID:
		m.ResetLastEventID()
		return nil
	case lesson.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case lesson.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Lesson field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LessonMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LessonMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LessonMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LessonMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LessonMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LessonMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LessonMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Lesson unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LessonMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Lesson edge %s", name)
}

// OwnerMutation represents an operation that mutates the Owner nodes in the graph.
type OwnerMutation struct {
	config
	op              Op
	typ             string
	id              *string
	workspace_id    *string
	email           *string
	principal_id    *string
	passphrase_hash *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Owner, error)
	predicates      []predicate.Owner
}

var _ ent.Mutation = (*OwnerMutation)(nil)

// ownerOption allows management of the mutation configuration using functional options.
type ownerOption func(*OwnerMutation)

// newOwnerMutation creates new mutation for the Owner entity.
func newOwnerMutation(c config, op Op, opts ...ownerOption) *OwnerMutation {
	m := &OwnerMutation{
		config:        c,
		op:            op,
		typ:           TypeOwner,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOwnerID sets the ID field of the mutation.
func withOwnerID(id string) ownerOption {
	return func(m *OwnerMutation) {
		var (
			err   error
			once  sync.Once
			value *Owner
		)
		m.oldValue = func(ctx context.Context) (*Owner, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Owner.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOwner sets the old Owner of the mutation.
func withOwner(node *Owner) ownerOption {
	return func(m *OwnerMutation) {
		m.oldValue = func(context.Context) (*Owner, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OwnerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OwnerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Owner entities.
func (m *OwnerMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OwnerMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OwnerMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Owner.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *OwnerMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *OwnerMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Owner entity.
// If the Owner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OwnerMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *OwnerMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetEmail sets the "email" field.
func (m *OwnerMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *OwnerMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Owner entity.
// If the Owner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OwnerMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *OwnerMutation) ResetEmail() {
	m.email = nil
}

// SetPrincipalID sets the "principal_id" field.
func (m *OwnerMutation) SetPrincipalID(s string) {
	m.principal_id = &s
}

// PrincipalID returns the value of the "principal_id" field in the mutation.
func (m *OwnerMutation) PrincipalID() (r string, exists bool) {
	v := m.principal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPrincipalID returns the old "principal_id" field's value of the Owner entity.
// If the Owner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OwnerMutation) OldPrincipalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrincipalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrincipalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrincipalID: %w", err)
	}
	return oldValue.PrincipalID, nil
}

// ResetPrincipalID resets all changes to the "principal_id" field.
func (m *OwnerMutation) ResetPrincipalID() {
	m.principal_id = nil
}

// SetPassphraseHash sets the "passphrase_hash" field.
func (m *OwnerMutation) SetPassphraseHash(s string) {
	m.passphrase_hash = &s
}

// PassphraseHash returns the value of the "passphrase_hash" field in the mutation.
func (m *OwnerMutation) PassphraseHash() (r string, exists bool) {
	v := m.passphrase_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPassphraseHash returns the old "passphrase_hash" field's value of the Owner entity.
// If the Owner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OwnerMutation) OldPassphraseHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassphraseHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassphraseHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassphraseHash: %w", err)
	}
	return oldValue.PassphraseHash, nil
}

// ResetPassphraseHash resets all changes to the "passphrase_hash" field.
func (m *OwnerMutation) ResetPassphraseHash() {
	m.passphrase_hash = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OwnerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OwnerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Owner entity.
// If the Owner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OwnerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *OwnerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the OwnerMutation builder.
func (m *OwnerMutation) Where(ps ...predicate.Owner) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OwnerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OwnerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Owner, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OwnerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OwnerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Owner).
func (m *OwnerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OwnerMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.workspace_id != nil {
		fields = append(fields, owner.FieldWorkspaceID)
	}
	if m.email != nil {
		fields = append(fields, owner.FieldEmail)
	}
	if m.principal_id != nil {
		fields = append(fields, owner.FieldPrincipalID)
	}
	if m.passphrase_hash != nil {
		fields = append(fields, owner.FieldPassphraseHash)
	}
	if m.created_at != nil {
		fields = append(fields, owner.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OwnerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case owner.FieldWorkspaceID:
		return m.WorkspaceID()
	case owner.FieldEmail:
		return m.Email()
	case owner.FieldPrincipalID:
		return m.PrincipalID()
	case owner.FieldPassphraseHash:
		return m.PassphraseHash()
	case owner.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OwnerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case owner.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case owner.FieldEmail:
		return m.OldEmail(ctx)
	case owner.FieldPrincipalID:
		return m.OldPrincipalID(ctx)
	case owner.FieldPassphraseHash:
		return m.OldPassphraseHash(ctx)
	case owner.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Owner field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OwnerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case owner.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case owner.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case owner.FieldPrincipalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrincipalID(v)
		return nil
	case owner.FieldPassphraseHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassphraseHash(v)
		return nil
	case owner.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Owner field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OwnerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OwnerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OwnerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Owner numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OwnerMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OwnerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OwnerMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Owner nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OwnerMutation) ResetField(name string) error {
	switch name {
	case owner.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case owner.FieldEmail:
		m.ResetEmail()
		return nil
	case owner.FieldPrincipalID:
		m.ResetPrincipalID()
		return nil
	case owner.FieldPassphraseHash:
		m.ResetPassphraseHash()
		return nil
	case owner.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Owner field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OwnerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OwnerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OwnerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OwnerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OwnerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OwnerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OwnerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Owner unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OwnerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Owner edge %s", name)
}

// PrincipalMutation represents an operation that mutates the Principal nodes in the graph.
type PrincipalMutation struct {
	config
	op                Op
	typ               string
	id                *string
	workspace_id      *string
	principal_type    *principal.PrincipalType
	display_name      *string
	legacy_actor_type *string
	legacy_actor_id   *string
	api_key_hash      *string
	created_at        *time.Time
	revoked_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Principal, error)
	predicates        []predicate.Principal
}

var _ ent.Mutation = (*PrincipalMutation)(nil)

// principalOption allows management of the mutation configuration using functional options.
type principalOption func(*PrincipalMutation)

// newPrincipalMutation creates new mutation for the Principal entity.
func newPrincipalMutation(c config, op Op, opts ...principalOption) *PrincipalMutation {
	m := &PrincipalMutation{
		config:        c,
		op:            op,
		typ:           TypePrincipal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPrincipalID sets the ID field of the mutation.
func withPrincipalID(id string) principalOption {
	return func(m *PrincipalMutation) {
		var (
			err   error
			once  sync.Once
			value *Principal
		)
		m.oldValue = func(ctx context.Context) (*Principal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Principal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPrincipal sets the old Principal of the mutation.
func withPrincipal(node *Principal) principalOption {
	return func(m *PrincipalMutation) {
		m.oldValue = func(context.Context) (*Principal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PrincipalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PrincipalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Principal entities.
func (m *PrincipalMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PrincipalMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PrincipalMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Principal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *PrincipalMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *PrincipalMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Principal entity.
// If the Principal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrincipalMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *PrincipalMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetPrincipalType sets the "principal_type" field.
func (m *PrincipalMutation) SetPrincipalType(pt principal.PrincipalType) {
	m.principal_type = &pt
}

// PrincipalType returns the value of the "principal_type" field in the mutation.
func (m *PrincipalMutation) PrincipalType() (r principal.PrincipalType, exists bool) {
	v := m.principal_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPrincipalType returns the old "principal_type" field's value of the Principal entity.
// If the Principal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrincipalMutation) OldPrincipalType(ctx context.Context) (v principal.PrincipalType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrincipalType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrincipalType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrincipalType: %w", err)
	}
	return oldValue.PrincipalType, nil
}

// ResetPrincipalType resets all changes to the "principal_type" field.
func (m *PrincipalMutation) ResetPrincipalType() {
	m.principal_type = nil
}

// SetDisplayName sets the "display_name" field.
func (m *PrincipalMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *PrincipalMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Principal entity.
// If the Principal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrincipalMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *PrincipalMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[principal.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *PrincipalMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[principal.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *PrincipalMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, principal.FieldDisplayName)
}

// SetLegacyActorType sets the "legacy_actor_type" field.
func (m *PrincipalMutation) SetLegacyActorType(s string) {
	m.legacy_actor_type = &s
}

// LegacyActorType returns the value of the "legacy_actor_type" field in the mutation.
func (m *PrincipalMutation) LegacyActorType() (r string, exists bool) {
	v := m.legacy_actor_type
	if v == nil {
		return
	}
	return *v, true
}

// OldLegacyActorType returns the old "legacy_actor_type" field's value of the Principal entity.
// If the Principal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrincipalMutation) OldLegacyActorType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLegacyActorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLegacyActorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLegacyActorType: %w", err)
	}
	return oldValue.LegacyActorType, nil
}

// ClearLegacyActorType clears the value of the "legacy_actor_type" field.
func (m *PrincipalMutation) ClearLegacyActorType() {
	m.legacy_actor_type = nil
	m.clearedFields[principal.FieldLegacyActorType] = struct{}{}
}

// LegacyActorTypeCleared returns if the "legacy_actor_type" field was cleared in this mutation.
func (m *PrincipalMutation) LegacyActorTypeCleared() bool {
	_, ok := m.clearedFields[principal.FieldLegacyActorType]
	return ok
}

// ResetLegacyActorType resets all changes to the "legacy_actor_type" field.
func (m *PrincipalMutation) ResetLegacyActorType() {
	m.legacy_actor_type = nil
	delete(m.clearedFields, principal.FieldLegacyActorType)
}

// SetLegacyActorID sets the "legacy_actor_id" field.
func (m *PrincipalMutation) SetLegacyActorID(s string) {
	m.legacy_actor_id = &s
}

// LegacyActorID returns the value of the "legacy_actor_id" field in the mutation.
func (m *PrincipalMutation) LegacyActorID() (r string, exists bool) {
	v := m.legacy_actor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLegacyActorID returns the old "legacy_actor_id" field's value of the Principal entity.
// If the Principal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrincipalMutation) OldLegacyActorID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLegacyActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLegacyActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLegacyActorID: %w", err)
	}
	return oldValue.LegacyActorID, nil
}

// ClearLegacyActorID clears the value of the "legacy_actor_id" field.
func (m *PrincipalMutation) ClearLegacyActorID() {
	m.legacy_actor_id = nil
	m.clearedFields[principal.FieldLegacyActorID] = struct{}{}
}

// LegacyActorIDCleared returns if the "legacy_actor_id" field was cleared in this mutation.
func (m *PrincipalMutation) LegacyActorIDCleared() bool {
	_, ok := m.clearedFields[principal.FieldLegacyActorID]
	return ok
}

// ResetLegacyActorID resets all changes to the "legacy_actor_id" field.
func (m *PrincipalMutation) ResetLegacyActorID() {
	m.legacy_actor_id = nil
	delete(m.clearedFields, principal.FieldLegacyActorID)
}

// SetAPIKeyHash sets the "api_key_hash" field.
func (m *PrincipalMutation) SetAPIKeyHash(s string) {
	m.api_key_hash = &s
}

// APIKeyHash returns the value of the "api_key_hash" field in the mutation.
func (m *PrincipalMutation) APIKeyHash() (r string, exists bool) {
	v := m.api_key_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIKeyHash returns the old "api_key_hash" field's value of the Principal entity.
// If the Principal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrincipalMutation) OldAPIKeyHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIKeyHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIKeyHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIKeyHash: %w", err)
	}
	return oldValue.APIKeyHash, nil
}

// ClearAPIKeyHash clears the value of the "api_key_hash" field.
func (m *PrincipalMutation) ClearAPIKeyHash() {
	m.api_key_hash = nil
	m.clearedFields[principal.FieldAPIKeyHash] = struct{}{}
}

// APIKeyHashCleared returns if the "api_key_hash" field was cleared in this mutation.
func (m *PrincipalMutation) APIKeyHashCleared() bool {
	_, ok := m.clearedFields[principal.FieldAPIKeyHash]
	return ok
}

// ResetAPIKeyHash resets all changes to the "api_key_hash" field.
func (m *PrincipalMutation) ResetAPIKeyHash() {
	m.api_key_hash = nil
	delete(m.clearedFields, principal.FieldAPIKeyHash)
}

// SetCreatedAt sets the "created_at" field.
func (m *PrincipalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PrincipalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Principal entity.
// If the Principal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrincipalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PrincipalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetRevokedAt sets the "revoked_at" field.
func (m *PrincipalMutation) SetRevokedAt(t time.Time) {
	m.revoked_at = &t
}

// RevokedAt returns the value of the "revoked_at" field in the mutation.
func (m *PrincipalMutation) RevokedAt() (r time.Time, exists bool) {
	v := m.revoked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokedAt returns the old "revoked_at" field's value of the Principal entity.
// If the Principal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PrincipalMutation) OldRevokedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokedAt: %w", err)
	}
	return oldValue.RevokedAt, nil
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (m *PrincipalMutation) ClearRevokedAt() {
	m.revoked_at = nil
	m.clearedFields[principal.FieldRevokedAt] = struct{}{}
}

// RevokedAtCleared returns if the "revoked_at" field was cleared in this mutation.
func (m *PrincipalMutation) RevokedAtCleared() bool {
	_, ok := m.clearedFields[principal.FieldRevokedAt]
	return ok
}

// ResetRevokedAt resets all changes to the "revoked_at" field.
func (m *PrincipalMutation) ResetRevokedAt() {
	m.revoked_at = nil
	delete(m.clearedFields, principal.FieldRevokedAt)
}

// Where appends a list predicates to the PrincipalMutation builder.
func (m *PrincipalMutation) Where(ps ...predicate.Principal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PrincipalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PrincipalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Principal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PrincipalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PrincipalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Principal).
func (m *PrincipalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PrincipalMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.workspace_id != nil {
		fields = append(fields, principal.FieldWorkspaceID)
	}
	if m.principal_type != nil {
		fields = append(fields, principal.FieldPrincipalType)
	}
	if m.display_name != nil {
		fields = append(fields, principal.FieldDisplayName)
	}
	if m.legacy_actor_type != nil {
		fields = append(fields, principal.FieldLegacyActorType)
	}
	if m.legacy_actor_id != nil {
		fields = append(fields, principal.FieldLegacyActorID)
	}
	if m.api_key_hash != nil {
		fields = append(fields, principal.FieldAPIKeyHash)
	}
	if m.created_at != nil {
		fields = append(fields, principal.FieldCreatedAt)
	}
	if m.revoked_at != nil {
		fields = append(fields, principal.FieldRevokedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PrincipalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case principal.FieldWorkspaceID:
		return m.WorkspaceID()
	case principal.FieldPrincipalType:
		return m.PrincipalType()
	case principal.FieldDisplayName:
		return m.DisplayName()
	case principal.FieldLegacyActorType:
		return m.LegacyActorType()
	case principal.FieldLegacyActorID:
		return m.LegacyActorID()
	case principal.FieldAPIKeyHash:
		return m.APIKeyHash()
	case principal.FieldCreatedAt:
		return m.CreatedAt()
	case principal.FieldRevokedAt:
		return m.RevokedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PrincipalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case principal.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case principal.FieldPrincipalType:
		return m.OldPrincipalType(ctx)
	case principal.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case principal.FieldLegacyActorType:
		return m.OldLegacyActorType(ctx)
	case principal.FieldLegacyActorID:
		return m.OldLegacyActorID(ctx)
	case principal.FieldAPIKeyHash:
		return m.OldAPIKeyHash(ctx)
	case principal.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case principal.FieldRevokedAt:
		return m.OldRevokedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Principal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PrincipalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case principal.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case principal.FieldPrincipalType:
		v, ok := value.(principal.PrincipalType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrincipalType(v)
		return nil
	case principal.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case principal.FieldLegacyActorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLegacyActorType(v)
		return nil
	case principal.FieldLegacyActorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLegacyActorID(v)
		return nil
	case principal.FieldAPIKeyHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIKeyHash(v)
		return nil
	case principal.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case principal.FieldRevokedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Principal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PrincipalMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PrincipalMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PrincipalMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Principal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PrincipalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(principal.FieldDisplayName) {
		fields = append(fields, principal.FieldDisplayName)
	}
	if m.FieldCleared(principal.FieldLegacyActorType) {
		fields = append(fields, principal.FieldLegacyActorType)
	}
	if m.FieldCleared(principal.FieldLegacyActorID) {
		fields = append(fields, principal.FieldLegacyActorID)
	}
	if m.FieldCleared(principal.FieldAPIKeyHash) {
		fields = append(fields, principal.FieldAPIKeyHash)
	}
	if m.FieldCleared(principal.FieldRevokedAt) {
		fields = append(fields, principal.FieldRevokedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PrincipalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PrincipalMutation) ClearField(name string) error {
	switch name {
	case principal.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	case principal.FieldLegacyActorType:
		m.ClearLegacyActorType()
		return nil
	case principal.FieldLegacyActorID:
		m.ClearLegacyActorID()
		return nil
	case principal.FieldAPIKeyHash:
		m.ClearAPIKeyHash()
		return nil
	case principal.FieldRevokedAt:
		m.ClearRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown Principal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PrincipalMutation) ResetField(name string) error {
	switch name {
	case principal.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case principal.FieldPrincipalType:
		m.ResetPrincipalType()
		return nil
	case principal.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case principal.FieldLegacyActorType:
		m.ResetLegacyActorType()
		return nil
	case principal.FieldLegacyActorID:
		m.ResetLegacyActorID()
		return nil
	case principal.FieldAPIKeyHash:
		m.ResetAPIKeyHash()
		return nil
	case principal.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case principal.FieldRevokedAt:
		m.ResetRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown Principal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PrincipalMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PrincipalMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PrincipalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PrincipalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PrincipalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PrincipalMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PrincipalMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Principal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PrincipalMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Principal edge %s", name)
}

// RateLimitStreakMutation represents an operation that mutates the RateLimitStreak nodes in the graph.
type RateLimitStreakMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	workspace_id       *string
	agent_id           *string
	scope              *string
	consecutive_429    *int
	addconsecutive_429 *int
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*RateLimitStreak, error)
	predicates         []predicate.RateLimitStreak
}

var _ ent.Mutation = (*RateLimitStreakMutation)(nil)

// ratelimitstreakOption allows management of the mutation configuration using functional options.
type ratelimitstreakOption func(*RateLimitStreakMutation)

// newRateLimitStreakMutation creates new mutation for the RateLimitStreak entity.
func newRateLimitStreakMutation(c config, op Op, opts ...ratelimitstreakOption) *RateLimitStreakMutation {
	m := &RateLimitStreakMutation{
		config:        c,
		op:            op,
		typ:           TypeRateLimitStreak,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRateLimitStreakID sets the ID field of the mutation.
func withRateLimitStreakID(id string) ratelimitstreakOption {
	return func(m *RateLimitStreakMutation) {
		var (
			err   error
			once  sync.Once
			value *RateLimitStreak
		)
		m.oldValue = func(ctx context.Context) (*RateLimitStreak, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RateLimitStreak.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRateLimitStreak sets the old RateLimitStreak of the mutation.
func withRateLimitStreak(node *RateLimitStreak) ratelimitstreakOption {
	return func(m *RateLimitStreakMutation) {
		m.oldValue = func(context.Context) (*RateLimitStreak, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RateLimitStreakMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RateLimitStreakMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RateLimitStreak entities.
func (m *RateLimitStreakMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RateLimitStreakMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RateLimitStreakMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RateLimitStreak.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *RateLimitStreakMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *RateLimitStreakMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the RateLimitStreak entity.
// If the RateLimitStreak object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitStreakMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *RateLimitStreakMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetAgentID sets the "agent_id" field.
func (m *RateLimitStreakMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *RateLimitStreakMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the RateLimitStreak entity.
// If the RateLimitStreak object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitStreakMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *RateLimitStreakMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetScope sets the "scope" field.
func (m *RateLimitStreakMutation) SetScope(s string) {
	m.scope = &s
}

// Scope returns the value of the "scope" field in the mutation.
func (m *RateLimitStreakMutation) Scope() (r string, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the RateLimitStreak entity.
// If the RateLimitStreak object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitStreakMutation) OldScope(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ResetScope resets all changes to the "scope" field.
func (m *RateLimitStreakMutation) ResetScope() {
	m.scope = nil
}

// SetConsecutive429 sets the "consecutive_429" field.
func (m *RateLimitStreakMutation) SetConsecutive429(i int) {
	m.consecutive_429 = &i
	m.addconsecutive_429 = nil
}

// Consecutive429 returns the value of the "consecutive_429" field in the mutation.
func (m *RateLimitStreakMutation) Consecutive429() (r int, exists bool) {
	v := m.consecutive_429
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutive429 returns the old "consecutive_429" field's value of the RateLimitStreak entity.
// If the RateLimitStreak object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitStreakMutation) OldConsecutive429(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutive429 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutive429 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutive429: %w", err)
	}
	return oldValue.Consecutive429, nil
}

// AddConsecutive429 adds i to the "consecutive_429" field.
func (m *RateLimitStreakMutation) AddConsecutive429(i int) {
	if m.addconsecutive_429 != nil {
		*m.addconsecutive_429 += i
	} else {
		m.addconsecutive_429 = &i
	}
}

// AddedConsecutive429 returns the value that was added to the "consecutive_429" field in this mutation.
func (m *RateLimitStreakMutation) AddedConsecutive429() (r int, exists bool) {
	v := m.addconsecutive_429
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutive429 resets all changes to the "consecutive_429" field.
func (m *RateLimitStreakMutation) ResetConsecutive429() {
	m.consecutive_429 = nil
	m.addconsecutive_429 = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RateLimitStreakMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RateLimitStreakMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RateLimitStreak entity.
// If the RateLimitStreak object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitStreakMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RateLimitStreakMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the RateLimitStreakMutation builder.
func (m *RateLimitStreakMutation) Where(ps ...predicate.RateLimitStreak) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RateLimitStreakMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RateLimitStreakMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RateLimitStreak, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RateLimitStreakMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RateLimitStreakMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RateLimitStreak).
func (m *RateLimitStreakMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RateLimitStreakMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.workspace_id != nil {
		fields = append(fields, ratelimitstreak.FieldWorkspaceID)
	}
	if m.agent_id != nil {
		fields = append(fields, ratelimitstreak.FieldAgentID)
	}
	if m.scope != nil {
		fields = append(fields, ratelimitstreak.FieldScope)
	}
	if m.consecutive_429 != nil {
		fields = append(fields, ratelimitstreak.FieldConsecutive429)
	}
	if m.updated_at != nil {
		fields = append(fields, ratelimitstreak.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RateLimitStreakMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ratelimitstreak.FieldWorkspaceID:
		return m.WorkspaceID()
	case ratelimitstreak.FieldAgentID:
		return m.AgentID()
	case ratelimitstreak.FieldScope:
		return m.Scope()
	case ratelimitstreak.FieldConsecutive429:
		return m.Consecutive429()
	case ratelimitstreak.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RateLimitStreakMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ratelimitstreak.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case ratelimitstreak.FieldAgentID:
		return m.OldAgentID(ctx)
	case ratelimitstreak.FieldScope:
		return m.OldScope(ctx)
	case ratelimitstreak.FieldConsecutive429:
		return m.OldConsecutive429(ctx)
	case ratelimitstreak.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RateLimitStreak field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RateLimitStreakMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ratelimitstreak.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case ratelimitstreak.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case ratelimitstreak.FieldScope:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case ratelimitstreak.FieldConsecutive429:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutive429(v)
		return nil
	case ratelimitstreak.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RateLimitStreak field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RateLimitStreakMutation) AddedFields() []string {
	var fields []string
	if m.addconsecutive_429 != nil {
		fields = append(fields, ratelimitstreak.FieldConsecutive429)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RateLimitStreakMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ratelimitstreak.FieldConsecutive429:
		return m.AddedConsecutive429()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RateLimitStreakMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ratelimitstreak.FieldConsecutive429:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutive429(v)
		return nil
	}
	return fmt.Errorf("unknown RateLimitStreak numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RateLimitStreakMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RateLimitStreakMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RateLimitStreakMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RateLimitStreak nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RateLimitStreakMutation) ResetField(name string) error {
	switch name {
	case ratelimitstreak.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case ratelimitstreak.FieldAgentID:
		m.ResetAgentID()
		return nil
	case ratelimitstreak.FieldScope:
		m.ResetScope()
		return nil
	case ratelimitstreak.FieldConsecutive429:
		m.ResetConsecutive429()
		return nil
	case ratelimitstreak.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown RateLimitStreak field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RateLimitStreakMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RateLimitStreakMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RateLimitStreakMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RateLimitStreakMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RateLimitStreakMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RateLimitStreakMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RateLimitStreakMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RateLimitStreak unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RateLimitStreakMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RateLimitStreak edge %s", name)
}

// RoomMutation represents an operation that mutates the Room nodes in the graph.
type RoomMutation struct {
	config
	op               Op
	typ              string
	id               *string
	workspace_id     *string
	title            *string
	message_count    *int64
	addmessage_count *int64
	correlation_id   *string
	last_event_id    *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Room, error)
	predicates       []predicate.Room
}

var _ ent.Mutation = (*RoomMutation)(nil)

// roomOption allows management of the mutation configuration using functional options.
type roomOption func(*RoomMutation)

// newRoomMutation creates new mutation for the Room entity.
func newRoomMutation(c config, op Op, opts ...roomOption) *RoomMutation {
	m := &RoomMutation{
		config:        c,
		op:            op,
		typ:           TypeRoom,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoomID sets the ID field of the mutation.
func withRoomID(id string) roomOption {
	return func(m *RoomMutation) {
		var (
			err   error
			once  sync.Once
			value *Room
		)
		m.oldValue = func(ctx context.Context) (*Room, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Room.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRoom sets the old Room of the mutation.
func withRoom(node *Room) roomOption {
	return func(m *RoomMutation) {
		m.oldValue = func(context.Context) (*Room, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoomMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoomMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Room entities.
func (m *RoomMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoomMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoomMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Room.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *RoomMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *RoomMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *RoomMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetTitle sets the "title" field.
func (m *RoomMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *RoomMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *RoomMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[room.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *RoomMutation) TitleCleared() bool {
	_, ok := m.clearedFields[room.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *RoomMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, room.FieldTitle)
}

// SetMessageCount sets the "message_count" field.
func (m *RoomMutation) SetMessageCount(i int64) {
	m.message_count = &i
	m.addmessage_count = nil
}

// MessageCount returns the value of the "message_count" field in the mutation.
func (m *RoomMutation) MessageCount() (r int64, exists bool) {
	v := m.message_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageCount returns the old "message_count" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldMessageCount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageCount: %w", err)
	}
	return oldValue.MessageCount, nil
}

// AddMessageCount adds i to the "message_count" field.
func (m *RoomMutation) AddMessageCount(i int64) {
	if m.addmessage_count != nil {
		*m.addmessage_count += i
	} else {
		m.addmessage_count = &i
	}
}

// AddedMessageCount returns the value that was added to the "message_count" field in this mutation.
func (m *RoomMutation) AddedMessageCount() (r int64, exists bool) {
	v := m.addmessage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMessageCount resets all changes to the "message_count" field.
func (m *RoomMutation) ResetMessageCount() {
	m.message_count = nil
	m.addmessage_count = nil
}

// SetCorrelationID sets the "correlation_id" field.
func (m *RoomMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *RoomMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (m *RoomMutation) ClearCorrelationID() {
	m.correlation_id = nil
	m.clearedFields[room.FieldCorrelationID] = struct{}{}
}

// CorrelationIDCleared returns if the "correlation_id" field was cleared in this mutation.
func (m *RoomMutation) CorrelationIDCleared() bool {
	_, ok := m.clearedFields[room.FieldCorrelationID]
	return ok
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *RoomMutation) ResetCorrelationID() {
	m.correlation_id = nil
	delete(m.clearedFields, room.FieldCorrelationID)
}

// SetLastEventID sets the "last_event_id" field.
func (m *RoomMutation) SetLastEventID(s string) {
	m.last_event_id = &s
}

// LastEventID returns the value of the "last_event_id" field in the mutation.
func (m *RoomMutation) LastEventID() (r string, exists bool) {
	v := m.last_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEventID returns the old "last_event_id" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldLastEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEventID: %w", err)
	}
	return oldValue.LastEventID, nil
}

// ResetLastEventID resets all changes to the "last_event_id" field.
func (m *RoomMutation) ResetLastEventID() {
	m.last_event_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RoomMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RoomMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RoomMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RoomMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RoomMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RoomMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the RoomMutation builder.
func (m *RoomMutation) Where(ps ...predicate.Room) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoomMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoomMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Room, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoomMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoomMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Room).
func (m *RoomMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoomMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.workspace_id != nil {
		fields = append(fields, room.FieldWorkspaceID)
	}
	if m.title != nil {
		fields = append(fields, room.FieldTitle)
	}
	if m.message_count != nil {
		fields = append(fields, room.FieldMessageCount)
	}
	if m.correlation_id != nil {
		fields = append(fields, room.FieldCorrelationID)
	}
	if m.last_event_id != nil {
		fields = append(fields, room.FieldLastEventID)
	}
	if m.created_at != nil {
		fields = append(fields, room.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, room.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoomMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case room.FieldWorkspaceID:
		return m.WorkspaceID()
	case room.FieldTitle:
		return m.Title()
	case room.FieldMessageCount:
		return m.MessageCount()
	case room.FieldCorrelationID:
		return m.CorrelationID()
	case room.FieldLastEventID:
		return m.LastEventID()
	case room.FieldCreatedAt:
		return m.CreatedAt()
	case room.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoomMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case room.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case room.FieldTitle:
		return m.OldTitle(ctx)
	case room.FieldMessageCount:
		return m.OldMessageCount(ctx)
	case room.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case room.FieldLastEventID:
		return m.OldLastEventID(ctx)
	case room.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case room.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Room field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoomMutation) SetField(name string, value ent.Value) error {
	switch name {
	case room.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case room.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case room.FieldMessageCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageCount(v)
		return nil
	case room.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case room.FieldLastEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEventID(v)
		return nil
	case room.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case room.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Room field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoomMutation) AddedFields() []string {
	var fields []string
	if m.addmessage_count != nil {
		fields = append(fields, room.FieldMessageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoomMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case room.FieldMessageCount:
		return m.AddedMessageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoomMutation) AddField(name string, value ent.Value) error {
	switch name {
	case room.FieldMessageCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMessageCount(v)
		return nil
	}
	return fmt.Errorf("unknown Room numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoomMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(room.FieldTitle) {
		fields = append(fields, room.FieldTitle)
	}
	if m.FieldCleared(room.FieldCorrelationID) {
		fields = append(fields, room.FieldCorrelationID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoomMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoomMutation) ClearField(name string) error {
	switch name {
	case room.FieldTitle:
		m.ClearTitle()
		return nil
	case room.FieldCorrelationID:
		m.ClearCorrelationID()
		return nil
	}
	return fmt.Errorf("unknown Room nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoomMutation) ResetField(name string) error {
	switch name {
	case room.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case room.FieldTitle:
		m.ResetTitle()
		return nil
	case room.FieldMessageCount:
		m.ResetMessageCount()
		return nil
	case room.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case room.FieldLastEventID:
		m.ResetLastEventID()
		return nil
	case room.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case room.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Room field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoomMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoomMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoomMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoomMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoomMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoomMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoomMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Room unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoomMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Room edge %s", name)
}

// RunMutation represents an operation that mutates the Run nodes in the graph.
type RunMutation struct {
	config
	op             Op
	typ            string
	id             *string
	workspace_id   *string
	mission_id     *string
	room_id        *string
	title          *string
	status         *run.Status
	error_code     *string
	error_kind     *string
	started_at     *time.Time
	finished_at    *time.Time
	correlation_id *string
	last_event_id  *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Run, error)
	predicates     []predicate.Run
}

var _ ent.Mutation = (*RunMutation)(nil)

// runOption allows management of the mutation configuration using functional options.
type runOption func(*RunMutation)

// newRunMutation creates new mutation for the Run entity.
func newRunMutation(c config, op Op, opts ...runOption) *RunMutation {
	m := &RunMutation{
		config:        c,
		op:            op,
		typ:           TypeRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunID sets the ID field of the mutation.
func withRunID(id string) runOption {
	return func(m *RunMutation) {
		var (
			err   error
			once  sync.Once
			value *Run
		)
		m.oldValue = func(ctx context.Context) (*Run, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Run.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRun sets the old Run of the mutation.
func withRun(node *Run) runOption {
	return func(m *RunMutation) {
		m.oldValue = func(context.Context) (*Run, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Run entities.
func (m *RunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Run.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *RunMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *RunMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *RunMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetMissionID sets the "mission_id" field.
func (m *RunMutation) SetMissionID(s string) {
	m.mission_id = &s
}

// MissionID returns the value of the "mission_id" field in the mutation.
func (m *RunMutation) MissionID() (r string, exists bool) {
	v := m.mission_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMissionID returns the old "mission_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldMissionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMissionID: %w", err)
	}
	return oldValue.MissionID, nil
}

// ClearMissionID clears the value of the "mission_id" field.
func (m *RunMutation) ClearMissionID() {
	m.mission_id = nil
	m.clearedFields[run.FieldMissionID] = struct{}{}
}

// MissionIDCleared returns if the "mission_id" field was cleared in this mutation.
func (m *RunMutation) MissionIDCleared() bool {
	_, ok := m.clearedFields[run.FieldMissionID]
	return ok
}

// ResetMissionID resets all changes to the "mission_id" field.
func (m *RunMutation) ResetMissionID() {
	m.mission_id = nil
	delete(m.clearedFields, run.FieldMissionID)
}

// SetRoomID sets the "room_id" field.
func (m *RunMutation) SetRoomID(s string) {
	m.room_id = &s
}

// RoomID returns the value of the "room_id" field in the mutation.
func (m *RunMutation) RoomID() (r string, exists bool) {
	v := m.room_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomID returns the old "room_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldRoomID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomID: %w", err)
	}
	return oldValue.RoomID, nil
}

// ClearRoomID clears the value of the "room_id" field.
func (m *RunMutation) ClearRoomID() {
	m.room_id = nil
	m.clearedFields[run.FieldRoomID] = struct{}{}
}

// RoomIDCleared returns if the "room_id" field was cleared in this mutation.
func (m *RunMutation) RoomIDCleared() bool {
	_, ok := m.clearedFields[run.FieldRoomID]
	return ok
}

// ResetRoomID resets all changes to the "room_id" field.
func (m *RunMutation) ResetRoomID() {
	m.room_id = nil
	delete(m.clearedFields, run.FieldRoomID)
}

// SetTitle sets the "title" field.
func (m *RunMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *RunMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *RunMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[run.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *RunMutation) TitleCleared() bool {
	_, ok := m.clearedFields[run.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *RunMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, run.FieldTitle)
}

// SetStatus sets the "status" field.
func (m *RunMutation) SetStatus(r run.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RunMutation) Status() (r run.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStatus(ctx context.Context) (v run.Status, err error) {
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
func (m *RunMutation) ResetStatus() {
	m.status = nil
}

// SetErrorCode sets the "error_code" field.
func (m *RunMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *RunMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldErrorCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *RunMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[run.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *RunMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[run.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *RunMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, run.FieldErrorCode)
}

// SetErrorKind sets the "error_kind" field.
func (m *RunMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *RunMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldErrorKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *RunMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[run.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *RunMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[run.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *RunMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, run.FieldErrorKind)
}

// SetStartedAt sets the "started_at" field.
func (m *RunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
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

// ClearStartedAt clears the value of the "started_at" field.
func (m *RunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[run.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *RunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, run.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *RunMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *RunMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *RunMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[run.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *RunMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *RunMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, run.FieldFinishedAt)
}

// SetCorrelationID sets the "correlation_id" field.
func (m *RunMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *RunMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *RunMutation) ResetCorrelationID() {
	m.correlation_id = nil
}

// SetLastEventID sets the "last_event_id" field.
func (m *RunMutation) SetLastEventID(s string) {
	m.last_event_id = &s
}

// LastEventID returns the value of the "last_event_id" field in the mutation.
func (m *RunMutation) LastEventID() (r string, exists bool) {
	v := m.last_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEventID returns the old "last_event_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldLastEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEventID: %w", err)
	}
	return oldValue.LastEventID, nil
}

// ResetLastEventID resets all changes to the "last_event_id" field.
func (m *RunMutation) ResetLastEventID() {
	m.last_event_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RunMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RunMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RunMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the RunMutation builder.
func (m *RunMutation) Where(ps ...predicate.Run) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Run, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Run).
func (m *RunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.workspace_id != nil {
		fields = append(fields, run.FieldWorkspaceID)
	}
	if m.mission_id != nil {
		fields = append(fields, run.FieldMissionID)
	}
	if m.room_id != nil {
		fields = append(fields, run.FieldRoomID)
	}
	if m.title != nil {
		fields = append(fields, run.FieldTitle)
	}
	if m.status != nil {
		fields = append(fields, run.FieldStatus)
	}
	if m.error_code != nil {
		fields = append(fields, run.FieldErrorCode)
	}
	if m.error_kind != nil {
		fields = append(fields, run.FieldErrorKind)
	}
	if m.started_at != nil {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, run.FieldFinishedAt)
	}
	if m.correlation_id != nil {
		fields = append(fields, run.FieldCorrelationID)
	}
	if m.last_event_id != nil {
		fields = append(fields, run.FieldLastEventID)
	}
	if m.created_at != nil {
		fields = append(fields, run.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, run.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case run.FieldWorkspaceID:
		return m.WorkspaceID()
	case run.FieldMissionID:
		return m.MissionID()
	case run.FieldRoomID:
		return m.RoomID()
	case run.FieldTitle:
		return m.Title()
	case run.FieldStatus:
		return m.Status()
	case run.FieldErrorCode:
		return m.ErrorCode()
	case run.FieldErrorKind:
		return m.ErrorKind()
	case run.FieldStartedAt:
		return m.StartedAt()
	case run.FieldFinishedAt:
		return m.FinishedAt()
	case run.FieldCorrelationID:
		return m.CorrelationID()
	case run.FieldLastEventID:
		return m.LastEventID()
	case run.FieldCreatedAt:
		return m.CreatedAt()
	case run.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case run.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case run.FieldMissionID:
		return m.OldMissionID(ctx)
	case run.FieldRoomID:
		return m.OldRoomID(ctx)
	case run.FieldTitle:
		return m.OldTitle(ctx)
	case run.FieldStatus:
		return m.OldStatus(ctx)
	case run.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case run.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case run.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case run.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case run.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case run.FieldLastEventID:
		return m.OldLastEventID(ctx)
	case run.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case run.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Run field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case run.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case run.FieldMissionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMissionID(v)
		return nil
	case run.FieldRoomID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomID(v)
		return nil
	case run.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case run.FieldStatus:
		v, ok := value.(run.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case run.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case run.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case run.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case run.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case run.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case run.FieldLastEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEventID(v)
		return nil
	case run.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case run.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Run numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(run.FieldMissionID) {
		fields = append(fields, run.FieldMissionID)
	}
	if m.FieldCleared(run.FieldRoomID) {
		fields = append(fields, run.FieldRoomID)
	}
	if m.FieldCleared(run.FieldTitle) {
		fields = append(fields, run.FieldTitle)
	}
	if m.FieldCleared(run.FieldErrorCode) {
		fields = append(fields, run.FieldErrorCode)
	}
	if m.FieldCleared(run.FieldErrorKind) {
		fields = append(fields, run.FieldErrorKind)
	}
	if m.FieldCleared(run.FieldStartedAt) {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.FieldCleared(run.FieldFinishedAt) {
		fields = append(fields, run.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunMutation) ClearField(name string) error {
	switch name {
	case run.FieldMissionID:
		m.ClearMissionID()
		return nil
	case run.FieldRoomID:
		m.ClearRoomID()
		return nil
	case run.FieldTitle:
		m.ClearTitle()
		return nil
	case run.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case run.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case run.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case run.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Run nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunMutation) ResetField(name string) error {
	switch name {
	case run.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case run.FieldMissionID:
		m.ResetMissionID()
		return nil
	case run.FieldRoomID:
		m.ResetRoomID()
		return nil
	case run.FieldTitle:
		m.ResetTitle()
		return nil
	case run.FieldStatus:
		m.ResetStatus()
		return nil
	case run.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case run.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case run.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case run.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case run.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case run.FieldLastEventID:
		m.ResetLastEventID()
		return nil
	case run.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case run.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Run unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Run edge %s", name)
}

// ScorecardMutation represents an operation that mutates the Scorecard nodes in the graph.
type ScorecardMutation struct {
	config
	op             Op
	typ            string
	id             *string
	workspace_id   *string
	run_id         *string
	subject        *string
	metrics        *[]models.ScoreMetric
	appendmetrics  []models.ScoreMetric
	metrics_hash   *string
	score          *float64
	addscore       *float64
	decision       *scorecard.Decision
	correlation_id *string
	last_event_id  *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Scorecard, error)
	predicates     []predicate.Scorecard
}

var _ ent.Mutation = (*ScorecardMutation)(nil)

// scorecardOption allows management of the mutation configuration using functional options.
type scorecardOption func(*ScorecardMutation)

// newScorecardMutation creates new mutation for the Scorecard entity.
func newScorecardMutation(c config, op Op, opts ...scorecardOption) *ScorecardMutation {
	m := &ScorecardMutation{
		config:        c,
		op:            op,
		typ:           TypeScorecard,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScorecardID sets the ID field of the mutation.
func withScorecardID(id string) scorecardOption {
	return func(m *ScorecardMutation) {
		var (
			err   error
			once  sync.Once
			value *Scorecard
		)
		m.oldValue = func(ctx context.Context) (*Scorecard, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Scorecard.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScorecard sets the old Scorecard of the mutation.
func withScorecard(node *Scorecard) scorecardOption {
	return func(m *ScorecardMutation) {
		m.oldValue = func(context.Context) (*Scorecard, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScorecardMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScorecardMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Scorecard entities.
func (m *ScorecardMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScorecardMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScorecardMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Scorecard.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *ScorecardMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *ScorecardMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Scorecard entity.
// If the Scorecard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScorecardMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *ScorecardMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetRunID sets the "run_id" field.
func (m *ScorecardMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ScorecardMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Scorecard entity.
// If the Scorecard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScorecardMutation) OldRunID(ctx context.Context) (v *string, err error) {
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

// ClearRunID clears the value of the "run_id" field.
func (m *ScorecardMutation) ClearRunID() {
	m.run_id = nil
	m.clearedFields[scorecard.FieldRunID] = struct{}{}
}

// RunIDCleared returns if the "run_id" field was cleared in this mutation.
func (m *ScorecardMutation) RunIDCleared() bool {
	_, ok := m.clearedFields[scorecard.FieldRunID]
	return ok
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ScorecardMutation) ResetRunID() {
	m.run_id = nil
	delete(m.clearedFields, scorecard.FieldRunID)
}

// SetSubject sets the "subject" field.
func (m *ScorecardMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *ScorecardMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the Scorecard entity.
// If the Scorecard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScorecardMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ClearSubject clears the value of the "subject" field.
func (m *ScorecardMutation) ClearSubject() {
	m.subject = nil
	m.clearedFields[scorecard.FieldSubject] = struct{}{}
}

// SubjectCleared returns if the "subject" field was cleared in this mutation.
func (m *ScorecardMutation) SubjectCleared() bool {
	_, ok := m.clearedFields[scorecard.FieldSubject]
	return ok
}

// ResetSubject resets all changes to the "subject" field.
func (m *ScorecardMutation) ResetSubject() {
	m.subject = nil
	delete(m.clearedFields, scorecard.FieldSubject)
}

// SetMetrics sets the "metrics" field.
func (m *ScorecardMutation) SetMetrics(mm []models.ScoreMetric) {
	m.metrics = &mm
	m.appendmetrics = nil
}

// Metrics returns the value of the "metrics" field in the mutation.
func (m *ScorecardMutation) Metrics() (r []models.ScoreMetric, exists bool) {
	v := m.metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldMetrics returns the old "metrics" field's value of the Scorecard entity.
// If the Scorecard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScorecardMutation) OldMetrics(ctx context.Context) (v []models.ScoreMetric, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetrics: %w", err)
	}
	return oldValue.Metrics, nil
}

// AppendMetrics adds mm to the "metrics" field.
func (m *ScorecardMutation) AppendMetrics(mm []models.ScoreMetric) {
	m.appendmetrics = append(m.appendmetrics, mm...)
}

// AppendedMetrics returns the list of values that were appended to the "metrics" field in this mutation.
func (m *ScorecardMutation) AppendedMetrics() ([]models.ScoreMetric, bool) {
	if len(m.appendmetrics) == 0 {
		return nil, false
	}
	return m.appendmetrics, true
}

// ResetMetrics resets all changes to the "metrics" field.
func (m *ScorecardMutation) ResetMetrics() {
	m.metrics = nil
	m.appendmetrics = nil
}

// SetMetricsHash sets the "metrics_hash" field.
func (m *ScorecardMutation) SetMetricsHash(s string) {
	m.metrics_hash = &s
}

// MetricsHash returns the value of the "metrics_hash" field in the mutation.
func (m *ScorecardMutation) MetricsHash() (r string, exists bool) {
	v := m.metrics_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldMetricsHash returns the old "metrics_hash" field's value of the Scorecard entity.
// If the Scorecard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScorecardMutation) OldMetricsHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetricsHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetricsHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetricsHash: %w", err)
	}
	return oldValue.MetricsHash, nil
}

// ResetMetricsHash resets all changes to the "metrics_hash" field.
func (m *ScorecardMutation) ResetMetricsHash() {
	m.metrics_hash = nil
}

// SetScore sets the "score" field.
func (m *ScorecardMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *ScorecardMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Scorecard entity.
// If the Scorecard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScorecardMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *ScorecardMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *ScorecardMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *ScorecardMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetDecision sets the "decision" field.
func (m *ScorecardMutation) SetDecision(s scorecard.Decision) {
	m.decision = &s
}

// Decision returns the value of the "decision" field in the mutation.
func (m *ScorecardMutation) Decision() (r scorecard.Decision, exists bool) {
	v := m.decision
	if v == nil {
		return
	}
	return *v, true
}

// OldDecision returns the old "decision" field's value of the Scorecard entity.
// If the Scorecard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScorecardMutation) OldDecision(ctx context.Context) (v scorecard.Decision, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecision: %w", err)
	}
	return oldValue.Decision, nil
}

// ResetDecision resets all changes to the "decision" field.
func (m *ScorecardMutation) ResetDecision() {
	m.decision = nil
}

// SetCorrelationID sets the "correlation_id" field.
func (m *ScorecardMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *ScorecardMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the Scorecard entity.
// If the Scorecard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScorecardMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *ScorecardMutation) ResetCorrelationID() {
	m.correlation_id = nil
}

// SetLastEventID sets the "last_event_id" field.
func (m *ScorecardMutation) SetLastEventID(s string) {
	m.last_event_id = &s
}

// LastEventID returns the value of the "last_event_id" field in the mutation.
func (m *ScorecardMutation) LastEventID() (r string, exists bool) {
	v := m.last_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEventID returns the old "last_event_id" field's value of the Scorecard entity.
// If the Scorecard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScorecardMutation) OldLastEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEventID: %w", err)
	}
	return oldValue.LastEventID, nil
}

// ResetLastEventID resets all changes to the "last_event_id" field.
func (m *ScorecardMutation) ResetLastEventID() {
	m.last_event_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ScorecardMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScorecardMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Scorecard entity.
// If the Scorecard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScorecardMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ScorecardMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ScorecardMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ScorecardMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Scorecard entity.
// If the Scorecard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScorecardMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ScorecardMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ScorecardMutation builder.
func (m *ScorecardMutation) Where(ps ...predicate.Scorecard) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScorecardMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScorecardMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Scorecard, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScorecardMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScorecardMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Scorecard).
func (m *ScorecardMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScorecardMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.workspace_id != nil {
		fields = append(fields, scorecard.FieldWorkspaceID)
	}
	if m.run_id != nil {
		fields = append(fields, scorecard.FieldRunID)
	}
	if m.subject != nil {
		fields = append(fields, scorecard.FieldSubject)
	}
	if m.metrics != nil {
		fields = append(fields, scorecard.FieldMetrics)
	}
	if m.metrics_hash != nil {
		fields = append(fields, scorecard.FieldMetricsHash)
	}
	if m.score != nil {
		fields = append(fields, scorecard.FieldScore)
	}
	if m.decision != nil {
		fields = append(fields, scorecard.FieldDecision)
	}
	if m.correlation_id != nil {
		fields = append(fields, scorecard.FieldCorrelationID)
	}
	if m.last_event_id != nil {
		fields = append(fields, scorecard.FieldLastEventID)
	}
	if m.created_at != nil {
		fields = append(fields, scorecard.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, scorecard.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScorecardMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scorecard.FieldWorkspaceID:
		return m.WorkspaceID()
	case scorecard.FieldRunID:
		return m.RunID()
	case scorecard.FieldSubject:
		return m.Subject()
	case scorecard.FieldMetrics:
		return m.Metrics()
	case scorecard.FieldMetricsHash:
		return m.MetricsHash()
	case scorecard.FieldScore:
		return m.Score()
	case scorecard.FieldDecision:
		return m.Decision()
	case scorecard.FieldCorrelationID:
		return m.CorrelationID()
	case scorecard.FieldLastEventID:
		return m.LastEventID()
	case scorecard.FieldCreatedAt:
		return m.CreatedAt()
	case scorecard.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScorecardMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scorecard.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case scorecard.FieldRunID:
		return m.OldRunID(ctx)
	case scorecard.FieldSubject:
		return m.OldSubject(ctx)
	case scorecard.FieldMetrics:
		return m.OldMetrics(ctx)
	case scorecard.FieldMetricsHash:
		return m.OldMetricsHash(ctx)
	case scorecard.FieldScore:
		return m.OldScore(ctx)
	case scorecard.FieldDecision:
		return m.OldDecision(ctx)
	case scorecard.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case scorecard.FieldLastEventID:
		return m.OldLastEventID(ctx)
	case scorecard.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case scorecard.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Scorecard field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScorecardMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scorecard.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case scorecard.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case scorecard.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case scorecard.FieldMetrics:
		v, ok := value.([]models.ScoreMetric)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetrics(v)
		return nil
	case scorecard.FieldMetricsHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetricsHash(v)
		return nil
	case scorecard.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case scorecard.FieldDecision:
		v, ok := value.(scorecard.Decision)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecision(v)
		return nil
	case scorecard.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case scorecard.FieldLastEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEventID(v)
		return nil
	case scorecard.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case scorecard.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Scorecard field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScorecardMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, scorecard.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScorecardMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scorecard.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScorecardMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scorecard.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown Scorecard numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScorecardMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scorecard.FieldRunID) {
		fields = append(fields, scorecard.FieldRunID)
	}
	if m.FieldCleared(scorecard.FieldSubject) {
		fields = append(fields, scorecard.FieldSubject)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScorecardMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScorecardMutation) ClearField(name string) error {
	switch name {
	case scorecard.FieldRunID:
		m.ClearRunID()
		return nil
	case scorecard.FieldSubject:
		m.ClearSubject()
		return nil
	}
	return fmt.Errorf("unknown Scorecard nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScorecardMutation) ResetField(name string) error {
	switch name {
	case scorecard.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case scorecard.FieldRunID:
		m.ResetRunID()
		return nil
	case scorecard.FieldSubject:
		m.ResetSubject()
		return nil
	case scorecard.FieldMetrics:
		m.ResetMetrics()
		return nil
	case scorecard.FieldMetricsHash:
		m.ResetMetricsHash()
		return nil
	case scorecard.FieldScore:
		m.ResetScore()
		return nil
	case scorecard.FieldDecision:
		m.ResetDecision()
		return nil
	case scorecard.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case scorecard.FieldLastEventID:
		m.ResetLastEventID()
		return nil
	case scorecard.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case scorecard.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Scorecard field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScorecardMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScorecardMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScorecardMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScorecardMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScorecardMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScorecardMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScorecardMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Scorecard unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScorecardMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Scorecard edge %s", name)
}

// SecretMutation represents an operation that mutates the Secret nodes in the graph.
type SecretMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	workspace_id            *string
	secret_name             *string
	algorithm               *string
	ciphertext              *[]byte
	nonce                   *[]byte
	created_by_principal_id *string
	created_at              *time.Time
	last_accessed_at        *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*Secret, error)
	predicates              []predicate.Secret
}

var _ ent.Mutation = (*SecretMutation)(nil)

// secretOption allows management of the mutation configuration using functional options.
type secretOption func(*SecretMutation)

// newSecretMutation creates new mutation for the Secret entity.
func newSecretMutation(c config, op Op, opts ...secretOption) *SecretMutation {
	m := &SecretMutation{
		config:        c,
		op:            op,
		typ:           TypeSecret,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSecretID sets the ID field of the mutation.
func withSecretID(id string) secretOption {
	return func(m *SecretMutation) {
		var (
			err   error
			once  sync.Once
			value *Secret
		)
		m.oldValue = func(ctx context.Context) (*Secret, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Secret.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSecret sets the old Secret of the mutation.
func withSecret(node *Secret) secretOption {
	return func(m *SecretMutation) {
		m.oldValue = func(context.Context) (*Secret, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SecretMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SecretMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Secret entities.
func (m *SecretMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SecretMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SecretMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Secret.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *SecretMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *SecretMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Secret entity.
// If the Secret object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *SecretMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetSecretName sets the "secret_name" field.
func (m *SecretMutation) SetSecretName(s string) {
	m.secret_name = &s
}

// SecretName returns the value of the "secret_name" field in the mutation.
func (m *SecretMutation) SecretName() (r string, exists bool) {
	v := m.secret_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSecretName returns the old "secret_name" field's value of the Secret entity.
// If the Secret object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretMutation) OldSecretName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecretName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecretName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecretName: %w", err)
	}
	return oldValue.SecretName, nil
}

// ResetSecretName resets all changes to the "secret_name" field.
func (m *SecretMutation) ResetSecretName() {
	m.secret_name = nil
}

// SetAlgorithm sets the "algorithm" field.
func (m *SecretMutation) SetAlgorithm(s string) {
	m.algorithm = &s
}

// Algorithm returns the value of the "algorithm" field in the mutation.
func (m *SecretMutation) Algorithm() (r string, exists bool) {
	v := m.algorithm
	if v == nil {
		return
	}
	return *v, true
}

// OldAlgorithm returns the old "algorithm" field's value of the Secret entity.
// If the Secret object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretMutation) OldAlgorithm(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlgorithm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlgorithm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlgorithm: %w", err)
	}
	return oldValue.Algorithm, nil
}

// ResetAlgorithm resets all changes to the "algorithm" field.
func (m *SecretMutation) ResetAlgorithm() {
	m.algorithm = nil
}

// SetCiphertext sets the "ciphertext" field.
func (m *SecretMutation) SetCiphertext(b []byte) {
	m.ciphertext = &b
}

// Ciphertext returns the value of the "ciphertext" field in the mutation.
func (m *SecretMutation) Ciphertext() (r []byte, exists bool) {
	v := m.ciphertext
	if v == nil {
		return
	}
	return *v, true
}

// OldCiphertext returns the old "ciphertext" field's value of the Secret entity.
// If the Secret object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretMutation) OldCiphertext(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCiphertext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCiphertext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCiphertext: %w", err)
	}
	return oldValue.Ciphertext, nil
}

// ResetCiphertext resets all changes to the "ciphertext" field.
func (m *SecretMutation) ResetCiphertext() {
	m.ciphertext = nil
}

// SetNonce sets the "nonce" field.
func (m *SecretMutation) SetNonce(b []byte) {
	m.nonce = &b
}

// Nonce returns the value of the "nonce" field in the mutation.
func (m *SecretMutation) Nonce() (r []byte, exists bool) {
	v := m.nonce
	if v == nil {
		return
	}
	return *v, true
}

// OldNonce returns the old "nonce" field's value of the Secret entity.
// If the Secret object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretMutation) OldNonce(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNonce is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNonce requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNonce: %w", err)
	}
	return oldValue.Nonce, nil
}

// ResetNonce resets all changes to the "nonce" field.
func (m *SecretMutation) ResetNonce() {
	m.nonce = nil
}

// SetCreatedByPrincipalID sets the "created_by_principal_id" field.
func (m *SecretMutation) SetCreatedByPrincipalID(s string) {
	m.created_by_principal_id = &s
}

// CreatedByPrincipalID returns the value of the "created_by_principal_id" field in the mutation.
func (m *SecretMutation) CreatedByPrincipalID() (r string, exists bool) {
	v := m.created_by_principal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedByPrincipalID returns the old "created_by_principal_id" field's value of the Secret entity.
// If the Secret object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretMutation) OldCreatedByPrincipalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedByPrincipalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedByPrincipalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedByPrincipalID: %w", err)
	}
	return oldValue.CreatedByPrincipalID, nil
}

// ResetCreatedByPrincipalID resets all changes to the "created_by_principal_id" field.
func (m *SecretMutation) ResetCreatedByPrincipalID() {
	m.created_by_principal_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SecretMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SecretMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Secret entity.
// If the Secret object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SecretMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (m *SecretMutation) SetLastAccessedAt(t time.Time) {
	m.last_accessed_at = &t
}

// LastAccessedAt returns the value of the "last_accessed_at" field in the mutation.
func (m *SecretMutation) LastAccessedAt() (r time.Time, exists bool) {
	v := m.last_accessed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAccessedAt returns the old "last_accessed_at" field's value of the Secret entity.
// If the Secret object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretMutation) OldLastAccessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAccessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAccessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAccessedAt: %w", err)
	}
	return oldValue.LastAccessedAt, nil
}

// ClearLastAccessedAt clears the value of the "last_accessed_at" field.
func (m *SecretMutation) ClearLastAccessedAt() {
	m.last_accessed_at = nil
	m.clearedFields[secret.FieldLastAccessedAt] = struct{}{}
}

// LastAccessedAtCleared returns if the "last_accessed_at" field was cleared in this mutation.
func (m *SecretMutation) LastAccessedAtCleared() bool {
	_, ok := m.clearedFields[secret.FieldLastAccessedAt]
	return ok
}

// ResetLastAccessedAt resets all changes to the "last_accessed_at" field.
func (m *SecretMutation) ResetLastAccessedAt() {
	m.last_accessed_at = nil
	delete(m.clearedFields, secret.FieldLastAccessedAt)
}

// Where appends a list predicates to the SecretMutation builder.
func (m *SecretMutation) Where(ps ...predicate.Secret) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SecretMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SecretMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Secret, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SecretMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SecretMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Secret).
func (m *SecretMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SecretMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.workspace_id != nil {
		fields = append(fields, secret.FieldWorkspaceID)
	}
	if m.secret_name != nil {
		fields = append(fields, secret.FieldSecretName)
	}
	if m.algorithm != nil {
		fields = append(fields, secret.FieldAlgorithm)
	}
	if m.ciphertext != nil {
		fields = append(fields, secret.FieldCiphertext)
	}
	if m.nonce != nil {
		fields = append(fields, secret.FieldNonce)
	}
	if m.created_by_principal_id != nil {
		fields = append(fields, secret.FieldCreatedByPrincipalID)
	}
	if m.created_at != nil {
		fields = append(fields, secret.FieldCreatedAt)
	}
	if m.last_accessed_at != nil {
		fields = append(fields, secret.FieldLastAccessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SecretMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case secret.FieldWorkspaceID:
		return m.WorkspaceID()
	case secret.FieldSecretName:
		return m.SecretName()
	case secret.FieldAlgorithm:
		return m.Algorithm()
	case secret.FieldCiphertext:
		return m.Ciphertext()
	case secret.FieldNonce:
		return m.Nonce()
	case secret.FieldCreatedByPrincipalID:
		return m.CreatedByPrincipalID()
	case secret.FieldCreatedAt:
		return m.CreatedAt()
	case secret.FieldLastAccessedAt:
		return m.LastAccessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SecretMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case secret.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case secret.FieldSecretName:
		return m.OldSecretName(ctx)
	case secret.FieldAlgorithm:
		return m.OldAlgorithm(ctx)
	case secret.FieldCiphertext:
		return m.OldCiphertext(ctx)
	case secret.FieldNonce:
		return m.OldNonce(ctx)
	case secret.FieldCreatedByPrincipalID:
		return m.OldCreatedByPrincipalID(ctx)
	case secret.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case secret.FieldLastAccessedAt:
		return m.OldLastAccessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Secret field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SecretMutation) SetField(name string, value ent.Value) error {
	switch name {
	case secret.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case secret.FieldSecretName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecretName(v)
		return nil
	case secret.FieldAlgorithm:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlgorithm(v)
		return nil
	case secret.FieldCiphertext:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCiphertext(v)
		return nil
	case secret.FieldNonce:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNonce(v)
		return nil
	case secret.FieldCreatedByPrincipalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedByPrincipalID(v)
		return nil
	case secret.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case secret.FieldLastAccessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAccessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Secret field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SecretMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SecretMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SecretMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Secret numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SecretMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(secret.FieldLastAccessedAt) {
		fields = append(fields, secret.FieldLastAccessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SecretMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SecretMutation) ClearField(name string) error {
	switch name {
	case secret.FieldLastAccessedAt:
		m.ClearLastAccessedAt()
		return nil
	}
	return fmt.Errorf("unknown Secret nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SecretMutation) ResetField(name string) error {
	switch name {
	case secret.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case secret.FieldSecretName:
		m.ResetSecretName()
		return nil
	case secret.FieldAlgorithm:
		m.ResetAlgorithm()
		return nil
	case secret.FieldCiphertext:
		m.ResetCiphertext()
		return nil
	case secret.FieldNonce:
		m.ResetNonce()
		return nil
	case secret.FieldCreatedByPrincipalID:
		m.ResetCreatedByPrincipalID()
		return nil
	case secret.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case secret.FieldLastAccessedAt:
		m.ResetLastAccessedAt()
		return nil
	}
	return fmt.Errorf("unknown Secret field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SecretMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SecretMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SecretMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SecretMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SecretMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SecretMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SecretMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Secret unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SecretMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Secret edge %s", name)
}

// SkillEntryMutation represents an operation that mutates the SkillEntry nodes in the graph.
type SkillEntryMutation struct {
	config
	op                Op
	typ               string
	id                *string
	workspace_id      *string
	agent_id          *string
	skill_name        *string
	attempts          *int64
	addattempts       *int64
	successes         *int64
	addsuccesses      *int64
	survival_score    *float64
	addsurvival_score *float64
	last_event_id     *string
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*SkillEntry, error)
	predicates        []predicate.SkillEntry
}

var _ ent.Mutation = (*SkillEntryMutation)(nil)

// skillentryOption allows management of the mutation configuration using functional options.
type skillentryOption func(*SkillEntryMutation)

// newSkillEntryMutation creates new mutation for the SkillEntry entity.
func newSkillEntryMutation(c config, op Op, opts ...skillentryOption) *SkillEntryMutation {
	m := &SkillEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeSkillEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSkillEntryID sets the ID field of the mutation.
func withSkillEntryID(id string) skillentryOption {
	return func(m *SkillEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *SkillEntry
		)
		m.oldValue = func(ctx context.Context) (*SkillEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SkillEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSkillEntry sets the old SkillEntry of the mutation.
func withSkillEntry(node *SkillEntry) skillentryOption {
	return func(m *SkillEntryMutation) {
		m.oldValue = func(context.Context) (*SkillEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SkillEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SkillEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SkillEntry entities.
func (m *SkillEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SkillEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SkillEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SkillEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *SkillEntryMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *SkillEntryMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the SkillEntry entity.
// If the SkillEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillEntryMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *SkillEntryMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetAgentID sets the "agent_id" field.
func (m *SkillEntryMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *SkillEntryMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the SkillEntry entity.
// If the SkillEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillEntryMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *SkillEntryMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetSkillName sets the "skill_name" field.
func (m *SkillEntryMutation) SetSkillName(s string) {
	m.skill_name = &s
}

// SkillName returns the value of the "skill_name" field in the mutation.
func (m *SkillEntryMutation) SkillName() (r string, exists bool) {
	v := m.skill_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillName returns the old "skill_name" field's value of the SkillEntry entity.
// If the SkillEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillEntryMutation) OldSkillName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillName: %w", err)
	}
	return oldValue.SkillName, nil
}

// ResetSkillName resets all changes to the "skill_name" field.
func (m *SkillEntryMutation) ResetSkillName() {
	m.skill_name = nil
}

// SetAttempts sets the "attempts" field.
func (m *SkillEntryMutation) SetAttempts(i int64) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *SkillEntryMutation) Attempts() (r int64, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the SkillEntry entity.
// If the SkillEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillEntryMutation) OldAttempts(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *SkillEntryMutation) AddAttempts(i int64) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *SkillEntryMutation) AddedAttempts() (r int64, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *SkillEntryMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetSuccesses sets the "successes" field.
func (m *SkillEntryMutation) SetSuccesses(i int64) {
	m.successes = &i
	m.addsuccesses = nil
}

// Successes returns the value of the "successes" field in the mutation.
func (m *SkillEntryMutation) Successes() (r int64, exists bool) {
	v := m.successes
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccesses returns the old "successes" field's value of the SkillEntry entity.
// If the SkillEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillEntryMutation) OldSuccesses(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccesses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccesses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccesses: %w", err)
	}
	return oldValue.Successes, nil
}

// AddSuccesses adds i to the "successes" field.
func (m *SkillEntryMutation) AddSuccesses(i int64) {
	if m.addsuccesses != nil {
		*m.addsuccesses += i
	} else {
		m.addsuccesses = &i
	}
}

// AddedSuccesses returns the value that was added to the "successes" field in this mutation.
func (m *SkillEntryMutation) AddedSuccesses() (r int64, exists bool) {
	v := m.addsuccesses
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccesses resets all changes to the "successes" field.
func (m *SkillEntryMutation) ResetSuccesses() {
	m.successes = nil
	m.addsuccesses = nil
}

// SetSurvivalScore sets the "survival_score" field.
func (m *SkillEntryMutation) SetSurvivalScore(f float64) {
	m.survival_score = &f
	m.addsurvival_score = nil
}

// SurvivalScore returns the value of the "survival_score" field in the mutation.
func (m *SkillEntryMutation) SurvivalScore() (r float64, exists bool) {
	v := m.survival_score
	if v == nil {
		return
	}
	return *v, true
}

// OldSurvivalScore returns the old "survival_score" field's value of the SkillEntry entity.
// If the SkillEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillEntryMutation) OldSurvivalScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSurvivalScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSurvivalScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSurvivalScore: %w", err)
	}
	return oldValue.SurvivalScore, nil
}

// AddSurvivalScore adds f to the "survival_score" field.
func (m *SkillEntryMutation) AddSurvivalScore(f float64) {
	if m.addsurvival_score != nil {
		*m.addsurvival_score += f
	} else {
		m.addsurvival_score = &f
	}
}

// AddedSurvivalScore returns the value that was added to the "survival_score" field in this mutation.
func (m *SkillEntryMutation) AddedSurvivalScore() (r float64, exists bool) {
	v := m.addsurvival_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetSurvivalScore resets all changes to the "survival_score" field.
func (m *SkillEntryMutation) ResetSurvivalScore() {
	m.survival_score = nil
	m.addsurvival_score = nil
}

// SetLastEventID sets the "last_event_id" field.
func (m *SkillEntryMutation) SetLastEventID(s string) {
	m.last_event_id = &s
}

// LastEventID returns the value of the "last_event_id" field in the mutation.
func (m *SkillEntryMutation) LastEventID() (r string, exists bool) {
	v := m.last_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEventID returns the old "last_event_id" field's value of the SkillEntry entity.
// If the SkillEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillEntryMutation) OldLastEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEventID: %w", err)
	}
	return oldValue.LastEventID, nil
}

// ResetLastEventID resets all changes to the "last_event_id" field.
func (m *SkillEntryMutation) ResetLastEventID() {
	m.last_event_id = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SkillEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SkillEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SkillEntry entity.
// If the SkillEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SkillEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SkillEntryMutation builder.
func (m *SkillEntryMutation) Where(ps ...predicate.SkillEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SkillEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SkillEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SkillEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SkillEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SkillEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SkillEntry).
func (m *SkillEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SkillEntryMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.workspace_id != nil {
		fields = append(fields, skillentry.FieldWorkspaceID)
	}
	if m.agent_id != nil {
		fields = append(fields, skillentry.FieldAgentID)
	}
	if m.skill_name != nil {
		fields = append(fields, skillentry.FieldSkillName)
	}
	if m.attempts != nil {
		fields = append(fields, skillentry.FieldAttempts)
	}
	if m.successes != nil {
		fields = append(fields, skillentry.FieldSuccesses)
	}
	if m.survival_score != nil {
		fields = append(fields, skillentry.FieldSurvivalScore)
	}
	if m.last_event_id != nil {
		fields = append(fields, skillentry.FieldLastEventID)
	}
	if m.updated_at != nil {
		fields = append(fields, skillentry.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SkillEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case skillentry.FieldWorkspaceID:
		return m.WorkspaceID()
	case skillentry.FieldAgentID:
		return m.AgentID()
	case skillentry.FieldSkillName:
		return m.SkillName()
	case skillentry.FieldAttempts:
		return m.Attempts()
	case skillentry.FieldSuccesses:
		return m.Successes()
	case skillentry.FieldSurvivalScore:
		return m.SurvivalScore()
	case skillentry.FieldLastEventID:
		return m.LastEventID()
	case skillentry.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SkillEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case skillentry.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case skillentry.FieldAgentID:
		return m.OldAgentID(ctx)
	case skillentry.FieldSkillName:
		return m.OldSkillName(ctx)
	case skillentry.FieldAttempts:
		return m.OldAttempts(ctx)
	case skillentry.FieldSuccesses:
		return m.OldSuccesses(ctx)
	case skillentry.FieldSurvivalScore:
		return m.OldSurvivalScore(ctx)
	case skillentry.FieldLastEventID:
		return m.OldLastEventID(ctx)
	case skillentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SkillEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case skillentry.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case skillentry.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case skillentry.FieldSkillName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillName(v)
		return nil
	case skillentry.FieldAttempts:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case skillentry.FieldSuccesses:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccesses(v)
		return nil
	case skillentry.FieldSurvivalScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSurvivalScore(v)
		return nil
	case skillentry.FieldLastEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEventID(v)
		return nil
	case skillentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SkillEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SkillEntryMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, skillentry.FieldAttempts)
	}
	if m.addsuccesses != nil {
		fields = append(fields, skillentry.FieldSuccesses)
	}
	if m.addsurvival_score != nil {
		fields = append(fields, skillentry.FieldSurvivalScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SkillEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case skillentry.FieldAttempts:
		return m.AddedAttempts()
	case skillentry.FieldSuccesses:
		return m.AddedSuccesses()
	case skillentry.FieldSurvivalScore:
		return m.AddedSurvivalScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case skillentry.FieldAttempts:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case skillentry.FieldSuccesses:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccesses(v)
		return nil
	case skillentry.FieldSurvivalScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSurvivalScore(v)
		return nil
	}
	return fmt.Errorf("unknown SkillEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SkillEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SkillEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SkillEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SkillEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SkillEntryMutation) ResetField(name string) error {
	switch name {
	case skillentry.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case skillentry.FieldAgentID:
		m.ResetAgentID()
		return nil
	case skillentry.FieldSkillName:
		m.ResetSkillName()
		return nil
	case skillentry.FieldAttempts:
		m.ResetAttempts()
		return nil
	case skillentry.FieldSuccesses:
		m.ResetSuccesses()
		return nil
	case skillentry.FieldSurvivalScore:
		m.ResetSurvivalScore()
		return nil
	case skillentry.FieldLastEventID:
		m.ResetLastEventID()
		return nil
	case skillentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SkillEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SkillEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SkillEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SkillEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SkillEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SkillEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SkillEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SkillEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SkillEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SkillEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SkillEntry edge %s", name)
}

// StepMutation represents an operation that mutates the Step nodes in the graph.
type StepMutation struct {
	config
	op             Op
	typ            string
	id             *string
	workspace_id   *string
	run_id         *string
	name           *string
	status         *step.Status
	correlation_id *string
	last_event_id  *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Step, error)
	predicates     []predicate.Step
}

var _ ent.Mutation = (*StepMutation)(nil)

// stepOption allows management of the mutation configuration using functional options.
type stepOption func(*StepMutation)

// newStepMutation creates new mutation for the Step entity.
func newStepMutation(c config, op Op, opts ...stepOption) *StepMutation {
	m := &StepMutation{
		config:        c,
		op:            op,
		typ:           TypeStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStepID sets the ID field of the mutation.
func withStepID(id string) stepOption {
	return func(m *StepMutation) {
		var (
			err   error
			once  sync.Once
			value *Step
		)
		m.oldValue = func(ctx context.Context) (*Step, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Step.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStep sets the old Step of the mutation.
func withStep(node *Step) stepOption {
	return func(m *StepMutation) {
		m.oldValue = func(context.Context) (*Step, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Step entities.
func (m *StepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Step.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *StepMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *StepMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *StepMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetRunID sets the "run_id" field.
func (m *StepMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *StepMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldRunID(ctx context.Context) (v string, err error) {
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
func (m *StepMutation) ResetRunID() {
	m.run_id = nil
}

// SetName sets the "name" field.
func (m *StepMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *StepMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldName(ctx context.Context) (v string, err error) {
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

// ClearName clears the value of the "name" field.
func (m *StepMutation) ClearName() {
	m.name = nil
	m.clearedFields[step.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *StepMutation) NameCleared() bool {
	_, ok := m.clearedFields[step.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *StepMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, step.FieldName)
}

// SetStatus sets the "status" field.
func (m *StepMutation) SetStatus(s step.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StepMutation) Status() (r step.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldStatus(ctx context.Context) (v step.Status, err error) {
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
func (m *StepMutation) ResetStatus() {
	m.status = nil
}

// SetCorrelationID sets the "correlation_id" field.
func (m *StepMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *StepMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *StepMutation) ResetCorrelationID() {
	m.correlation_id = nil
}

// SetLastEventID sets the "last_event_id" field.
func (m *StepMutation) SetLastEventID(s string) {
	m.last_event_id = &s
}

// LastEventID returns the value of the "last_event_id" field in the mutation.
func (m *StepMutation) LastEventID() (r string, exists bool) {
	v := m.last_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEventID returns the old "last_event_id" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldLastEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEventID: %w", err)
	}
	return oldValue.LastEventID, nil
}

// ResetLastEventID resets all changes to the "last_event_id" field.
func (m *StepMutation) ResetLastEventID() {
	m.last_event_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *StepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StepMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StepMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StepMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the StepMutation builder.
func (m *StepMutation) Where(ps ...predicate.Step) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Step, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Step).
func (m *StepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StepMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.workspace_id != nil {
		fields = append(fields, step.FieldWorkspaceID)
	}
	if m.run_id != nil {
		fields = append(fields, step.FieldRunID)
	}
	if m.name != nil {
		fields = append(fields, step.FieldName)
	}
	if m.status != nil {
		fields = append(fields, step.FieldStatus)
	}
	if m.correlation_id != nil {
		fields = append(fields, step.FieldCorrelationID)
	}
	if m.last_event_id != nil {
		fields = append(fields, step.FieldLastEventID)
	}
	if m.created_at != nil {
		fields = append(fields, step.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, step.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case step.FieldWorkspaceID:
		return m.WorkspaceID()
	case step.FieldRunID:
		return m.RunID()
	case step.FieldName:
		return m.Name()
	case step.FieldStatus:
		return m.Status()
	case step.FieldCorrelationID:
		return m.CorrelationID()
	case step.FieldLastEventID:
		return m.LastEventID()
	case step.FieldCreatedAt:
		return m.CreatedAt()
	case step.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case step.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case step.FieldRunID:
		return m.OldRunID(ctx)
	case step.FieldName:
		return m.OldName(ctx)
	case step.FieldStatus:
		return m.OldStatus(ctx)
	case step.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case step.FieldLastEventID:
		return m.OldLastEventID(ctx)
	case step.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case step.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Step field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case step.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case step.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case step.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case step.FieldStatus:
		v, ok := value.(step.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case step.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case step.FieldLastEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEventID(v)
		return nil
	case step.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case step.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Step field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StepMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StepMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Step numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(step.FieldName) {
		fields = append(fields, step.FieldName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StepMutation) ClearField(name string) error {
	switch name {
	case step.FieldName:
		m.ClearName()
		return nil
	}
	return fmt.Errorf("unknown Step nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StepMutation) ResetField(name string) error {
	switch name {
	case step.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case step.FieldRunID:
		m.ResetRunID()
		return nil
	case step.FieldName:
		m.ResetName()
		return nil
	case step.FieldStatus:
		m.ResetStatus()
		return nil
	case step.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case step.FieldLastEventID:
		m.ResetLastEventID()
		return nil
	case step.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case step.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Step field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StepMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StepMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StepMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StepMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Step unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StepMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Step edge %s", name)
}

// StreamHeadMutation represents an operation that mutates the StreamHead nodes in the graph.
type StreamHeadMutation struct {
	config
	op              Op
	typ             string
	id              *string
	stream_type     *streamhead.StreamType
	stream_id       *string
	last_seq        *int64
	addlast_seq     *int64
	last_event_hash *string
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*StreamHead, error)
	predicates      []predicate.StreamHead
}

var _ ent.Mutation = (*StreamHeadMutation)(nil)

// streamheadOption allows management of the mutation configuration using functional options.
type streamheadOption func(*StreamHeadMutation)

// newStreamHeadMutation creates new mutation for the StreamHead entity.
func newStreamHeadMutation(c config, op Op, opts ...streamheadOption) *StreamHeadMutation {
	m := &StreamHeadMutation{
		config:        c,
		op:            op,
		typ:           TypeStreamHead,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStreamHeadID sets the ID field of the mutation.
func withStreamHeadID(id string) streamheadOption {
	return func(m *StreamHeadMutation) {
		var (
			err   error
			once  sync.Once
			value *StreamHead
		)
		m.oldValue = func(ctx context.Context) (*StreamHead, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StreamHead.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStreamHead sets the old StreamHead of the mutation.
func withStreamHead(node *StreamHead) streamheadOption {
	return func(m *StreamHeadMutation) {
		m.oldValue = func(context.Context) (*StreamHead, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StreamHeadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StreamHeadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StreamHead entities.
func (m *StreamHeadMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StreamHeadMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StreamHeadMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StreamHead.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStreamType sets the "stream_type" field.
func (m *StreamHeadMutation) SetStreamType(st streamhead.StreamType) {
	m.stream_type = &st
}

// StreamType returns the value of the "stream_type" field in the mutation.
func (m *StreamHeadMutation) StreamType() (r streamhead.StreamType, exists bool) {
	v := m.stream_type
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamType returns the old "stream_type" field's value of the StreamHead entity.
// If the StreamHead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreamHeadMutation) OldStreamType(ctx context.Context) (v streamhead.StreamType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamType: %w", err)
	}
	return oldValue.StreamType, nil
}

// ResetStreamType resets all changes to the "stream_type" field.
func (m *StreamHeadMutation) ResetStreamType() {
	m.stream_type = nil
}

// SetStreamID sets the "stream_id" field.
func (m *StreamHeadMutation) SetStreamID(s string) {
	m.stream_id = &s
}

// StreamID returns the value of the "stream_id" field in the mutation.
func (m *StreamHeadMutation) StreamID() (r string, exists bool) {
	v := m.stream_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamID returns the old "stream_id" field's value of the StreamHead entity.
// If the StreamHead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreamHeadMutation) OldStreamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamID: %w", err)
	}
	return oldValue.StreamID, nil
}

// ResetStreamID resets all changes to the "stream_id" field.
func (m *StreamHeadMutation) ResetStreamID() {
	m.stream_id = nil
}

// SetLastSeq sets the "last_seq" field.
func (m *StreamHeadMutation) SetLastSeq(i int64) {
	m.last_seq = &i
	m.addlast_seq = nil
}

// LastSeq returns the value of the "last_seq" field in the mutation.
func (m *StreamHeadMutation) LastSeq() (r int64, exists bool) {
	v := m.last_seq
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeq returns the old "last_seq" field's value of the StreamHead entity.
// If the StreamHead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreamHeadMutation) OldLastSeq(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeq: %w", err)
	}
	return oldValue.LastSeq, nil
}

// AddLastSeq adds i to the "last_seq" field.
func (m *StreamHeadMutation) AddLastSeq(i int64) {
	if m.addlast_seq != nil {
		*m.addlast_seq += i
	} else {
		m.addlast_seq = &i
	}
}

// AddedLastSeq returns the value that was added to the "last_seq" field in this mutation.
func (m *StreamHeadMutation) AddedLastSeq() (r int64, exists bool) {
	v := m.addlast_seq
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastSeq resets all changes to the "last_seq" field.
func (m *StreamHeadMutation) ResetLastSeq() {
	m.last_seq = nil
	m.addlast_seq = nil
}

// SetLastEventHash sets the "last_event_hash" field.
func (m *StreamHeadMutation) SetLastEventHash(s string) {
	m.last_event_hash = &s
}

// LastEventHash returns the value of the "last_event_hash" field in the mutation.
func (m *StreamHeadMutation) LastEventHash() (r string, exists bool) {
	v := m.last_event_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEventHash returns the old "last_event_hash" field's value of the StreamHead entity.
// If the StreamHead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreamHeadMutation) OldLastEventHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEventHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEventHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEventHash: %w", err)
	}
	return oldValue.LastEventHash, nil
}

// ClearLastEventHash clears the value of the "last_event_hash" field.
func (m *StreamHeadMutation) ClearLastEventHash() {
	m.last_event_hash = nil
	m.clearedFields[streamhead.FieldLastEventHash] = struct{}{}
}

// LastEventHashCleared returns if the "last_event_hash" field was cleared in this mutation.
func (m *StreamHeadMutation) LastEventHashCleared() bool {
	_, ok := m.clearedFields[streamhead.FieldLastEventHash]
	return ok
}

// ResetLastEventHash resets all changes to the "last_event_hash" field.
func (m *StreamHeadMutation) ResetLastEventHash() {
	m.last_event_hash = nil
	delete(m.clearedFields, streamhead.FieldLastEventHash)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StreamHeadMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StreamHeadMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StreamHead entity.
// If the StreamHead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreamHeadMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StreamHeadMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the StreamHeadMutation builder.
func (m *StreamHeadMutation) Where(ps ...predicate.StreamHead) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StreamHeadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StreamHeadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StreamHead, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StreamHeadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StreamHeadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StreamHead).
func (m *StreamHeadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StreamHeadMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.stream_type != nil {
		fields = append(fields, streamhead.FieldStreamType)
	}
	if m.stream_id != nil {
		fields = append(fields, streamhead.FieldStreamID)
	}
	if m.last_seq != nil {
		fields = append(fields, streamhead.FieldLastSeq)
	}
	if m.last_event_hash != nil {
		fields = append(fields, streamhead.FieldLastEventHash)
	}
	if m.updated_at != nil {
		fields = append(fields, streamhead.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StreamHeadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case streamhead.FieldStreamType:
		return m.StreamType()
	case streamhead.FieldStreamID:
		return m.StreamID()
	case streamhead.FieldLastSeq:
		return m.LastSeq()
	case streamhead.FieldLastEventHash:
		return m.LastEventHash()
	case streamhead.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StreamHeadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case streamhead.FieldStreamType:
		return m.OldStreamType(ctx)
	case streamhead.FieldStreamID:
		return m.OldStreamID(ctx)
	case streamhead.FieldLastSeq:
		return m.OldLastSeq(ctx)
	case streamhead.FieldLastEventHash:
		return m.OldLastEventHash(ctx)
	case streamhead.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StreamHead field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StreamHeadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case streamhead.FieldStreamType:
		v, ok := value.(streamhead.StreamType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamType(v)
		return nil
	case streamhead.FieldStreamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamID(v)
		return nil
	case streamhead.FieldLastSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeq(v)
		return nil
	case streamhead.FieldLastEventHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEventHash(v)
		return nil
	case streamhead.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StreamHead field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StreamHeadMutation) AddedFields() []string {
	var fields []string
	if m.addlast_seq != nil {
		fields = append(fields, streamhead.FieldLastSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StreamHeadMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case streamhead.FieldLastSeq:
		return m.AddedLastSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StreamHeadMutation) AddField(name string, value ent.Value) error {
	switch name {
	case streamhead.FieldLastSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastSeq(v)
		return nil
	}
	return fmt.Errorf("unknown StreamHead numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StreamHeadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(streamhead.FieldLastEventHash) {
		fields = append(fields, streamhead.FieldLastEventHash)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StreamHeadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StreamHeadMutation) ClearField(name string) error {
	switch name {
	case streamhead.FieldLastEventHash:
		m.ClearLastEventHash()
		return nil
	}
	return fmt.Errorf("unknown StreamHead nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StreamHeadMutation) ResetField(name string) error {
	switch name {
	case streamhead.FieldStreamType:
		m.ResetStreamType()
		return nil
	case streamhead.FieldStreamID:
		m.ResetStreamID()
		return nil
	case streamhead.FieldLastSeq:
		m.ResetLastSeq()
		return nil
	case streamhead.FieldLastEventHash:
		m.ResetLastEventHash()
		return nil
	case streamhead.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown StreamHead field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StreamHeadMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StreamHeadMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StreamHeadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StreamHeadMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StreamHeadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StreamHeadMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StreamHeadMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StreamHead unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StreamHeadMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StreamHead edge %s", name)
}

// ThreadMutation represents an operation that mutates the Thread nodes in the graph.
type ThreadMutation struct {
	config
	op               Op
	typ              string
	id               *string
	workspace_id     *string
	room_id          *string
	message_count    *int64
	addmessage_count *int64
	last_event_id    *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Thread, error)
	predicates       []predicate.Thread
}

var _ ent.Mutation = (*ThreadMutation)(nil)

// threadOption allows management of the mutation configuration using functional options.
type threadOption func(*ThreadMutation)

// newThreadMutation creates new mutation for the Thread entity.
func newThreadMutation(c config, op Op, opts ...threadOption) *ThreadMutation {
	m := &ThreadMutation{
		config:        c,
		op:            op,
		typ:           TypeThread,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withThreadID sets the ID field of the mutation.
func withThreadID(id string) threadOption {
	return func(m *ThreadMutation) {
		var (
			err   error
			once  sync.Once
			value *Thread
		)
		m.oldValue = func(ctx context.Context) (*Thread, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Thread.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withThread sets the old Thread of the mutation.
func withThread(node *Thread) threadOption {
	return func(m *ThreadMutation) {
		m.oldValue = func(context.Context) (*Thread, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ThreadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ThreadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Thread entities.
func (m *ThreadMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ThreadMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ThreadMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Thread.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *ThreadMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *ThreadMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *ThreadMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetRoomID sets the "room_id" field.
func (m *ThreadMutation) SetRoomID(s string) {
	m.room_id = &s
}

// RoomID returns the value of the "room_id" field in the mutation.
func (m *ThreadMutation) RoomID() (r string, exists bool) {
	v := m.room_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomID returns the old "room_id" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldRoomID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomID: %w", err)
	}
	return oldValue.RoomID, nil
}

// ResetRoomID resets all changes to the "room_id" field.
func (m *ThreadMutation) ResetRoomID() {
	m.room_id = nil
}

// SetMessageCount sets the "message_count" field.
func (m *ThreadMutation) SetMessageCount(i int64) {
	m.message_count = &i
	m.addmessage_count = nil
}

// MessageCount returns the value of the "message_count" field in the mutation.
func (m *ThreadMutation) MessageCount() (r int64, exists bool) {
	v := m.message_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageCount returns the old "message_count" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldMessageCount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageCount: %w", err)
	}
	return oldValue.MessageCount, nil
}

// AddMessageCount adds i to the "message_count" field.
func (m *ThreadMutation) AddMessageCount(i int64) {
	if m.addmessage_count != nil {
		*m.addmessage_count += i
	} else {
		m.addmessage_count = &i
	}
}

// AddedMessageCount returns the value that was added to the "message_count" field in this mutation.
func (m *ThreadMutation) AddedMessageCount() (r int64, exists bool) {
	v := m.addmessage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMessageCount resets all changes to the "message_count" field.
func (m *ThreadMutation) ResetMessageCount() {
	m.message_count = nil
	m.addmessage_count = nil
}

// SetLastEventID sets the "last_event_id" field.
func (m *ThreadMutation) SetLastEventID(s string) {
	m.last_event_id = &s
}

// LastEventID returns the value of the "last_event_id" field in the mutation.
func (m *ThreadMutation) LastEventID() (r string, exists bool) {
	v := m.last_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEventID returns the old "last_event_id" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldLastEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEventID: %w", err)
	}
	return oldValue.LastEventID, nil
}

// ResetLastEventID resets all changes to the "last_event_id" field.
func (m *ThreadMutation) ResetLastEventID() {
	m.last_event_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ThreadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ThreadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ThreadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ThreadMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ThreadMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Thread entity.
// If the Thread object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ThreadMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ThreadMutation builder.
func (m *ThreadMutation) Where(ps ...predicate.Thread) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ThreadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ThreadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Thread, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ThreadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ThreadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Thread).
func (m *ThreadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ThreadMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.workspace_id != nil {
		fields = append(fields, thread.FieldWorkspaceID)
	}
	if m.room_id != nil {
		fields = append(fields, thread.FieldRoomID)
	}
	if m.message_count != nil {
		fields = append(fields, thread.FieldMessageCount)
	}
	if m.last_event_id != nil {
		fields = append(fields, thread.FieldLastEventID)
	}
	if m.created_at != nil {
		fields = append(fields, thread.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, thread.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ThreadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case thread.FieldWorkspaceID:
		return m.WorkspaceID()
	case thread.FieldRoomID:
		return m.RoomID()
	case thread.FieldMessageCount:
		return m.MessageCount()
	case thread.FieldLastEventID:
		return m.LastEventID()
	case thread.FieldCreatedAt:
		return m.CreatedAt()
	case thread.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ThreadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case thread.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case thread.FieldRoomID:
		return m.OldRoomID(ctx)
	case thread.FieldMessageCount:
		return m.OldMessageCount(ctx)
	case thread.FieldLastEventID:
		return m.OldLastEventID(ctx)
	case thread.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case thread.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Thread field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThreadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case thread.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case thread.FieldRoomID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomID(v)
		return nil
	case thread.FieldMessageCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageCount(v)
		return nil
	case thread.FieldLastEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEventID(v)
		return nil
	case thread.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case thread.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Thread field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ThreadMutation) AddedFields() []string {
	var fields []string
	if m.addmessage_count != nil {
		fields = append(fields, thread.FieldMessageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ThreadMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case thread.FieldMessageCount:
		return m.AddedMessageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThreadMutation) AddField(name string, value ent.Value) error {
	switch name {
	case thread.FieldMessageCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMessageCount(v)
		return nil
	}
	return fmt.Errorf("unknown Thread numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ThreadMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ThreadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ThreadMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Thread nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ThreadMutation) ResetField(name string) error {
	switch name {
	case thread.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case thread.FieldRoomID:
		m.ResetRoomID()
		return nil
	case thread.FieldMessageCount:
		m.ResetMessageCount()
		return nil
	case thread.FieldLastEventID:
		m.ResetLastEventID()
		return nil
	case thread.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case thread.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Thread field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ThreadMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ThreadMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ThreadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ThreadMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ThreadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ThreadMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ThreadMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Thread unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ThreadMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Thread edge %s", name)
}

// ToolCallMutation represents an operation that mutates the ToolCall nodes in the graph.
type ToolCallMutation struct {
	config
	op             Op
	typ            string
	id             *string
	workspace_id   *string
	run_id         *string
	step_id        *string
	tool_name      *string
	status         *toolcall.Status
	error_code     *string
	started_at     *time.Time
	finished_at    *time.Time
	correlation_id *string
	last_event_id  *string
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ToolCall, error)
	predicates     []predicate.ToolCall
}

var _ ent.Mutation = (*ToolCallMutation)(nil)

// toolcallOption allows management of the mutation configuration using functional options.
type toolcallOption func(*ToolCallMutation)

// newToolCallMutation creates new mutation for the ToolCall entity.
func newToolCallMutation(c config, op Op, opts ...toolcallOption) *ToolCallMutation {
	m := &ToolCallMutation{
		config:        c,
		op:            op,
		typ:           TypeToolCall,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withToolCallID sets the ID field of the mutation.
func withToolCallID(id string) toolcallOption {
	return func(m *ToolCallMutation) {
		var (
			err   error
			once  sync.Once
			value *ToolCall
		)
		m.oldValue = func(ctx context.Context) (*ToolCall, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ToolCall.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withToolCall sets the old ToolCall of the mutation.
func withToolCall(node *ToolCall) toolcallOption {
	return func(m *ToolCallMutation) {
		m.oldValue = func(context.Context) (*ToolCall, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ToolCallMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ToolCallMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ToolCall entities.
func (m *ToolCallMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ToolCallMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ToolCallMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ToolCall.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *ToolCallMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *ToolCallMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *ToolCallMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetRunID sets the "run_id" field.
func (m *ToolCallMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ToolCallMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldRunID(ctx context.Context) (v *string, err error) {
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

// ClearRunID clears the value of the "run_id" field.
func (m *ToolCallMutation) ClearRunID() {
	m.run_id = nil
	m.clearedFields[toolcall.FieldRunID] = struct{}{}
}

// RunIDCleared returns if the "run_id" field was cleared in this mutation.
func (m *ToolCallMutation) RunIDCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldRunID]
	return ok
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ToolCallMutation) ResetRunID() {
	m.run_id = nil
	delete(m.clearedFields, toolcall.FieldRunID)
}

// SetStepID sets the "step_id" field.
func (m *ToolCallMutation) SetStepID(s string) {
	m.step_id = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *ToolCallMutation) StepID() (r string, exists bool) {
	v := m.step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldStepID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ClearStepID clears the value of the "step_id" field.
func (m *ToolCallMutation) ClearStepID() {
	m.step_id = nil
	m.clearedFields[toolcall.FieldStepID] = struct{}{}
}

// StepIDCleared returns if the "step_id" field was cleared in this mutation.
func (m *ToolCallMutation) StepIDCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldStepID]
	return ok
}

// ResetStepID resets all changes to the "step_id" field.
func (m *ToolCallMutation) ResetStepID() {
	m.step_id = nil
	delete(m.clearedFields, toolcall.FieldStepID)
}

// SetToolName sets the "tool_name" field.
func (m *ToolCallMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *ToolCallMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *ToolCallMutation) ResetToolName() {
	m.tool_name = nil
}

// SetStatus sets the "status" field.
func (m *ToolCallMutation) SetStatus(t toolcall.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *ToolCallMutation) Status() (r toolcall.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldStatus(ctx context.Context) (v toolcall.Status, err error) {
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
func (m *ToolCallMutation) ResetStatus() {
	m.status = nil
}

// SetErrorCode sets the "error_code" field.
func (m *ToolCallMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *ToolCallMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldErrorCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *ToolCallMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[toolcall.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *ToolCallMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *ToolCallMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, toolcall.FieldErrorCode)
}

// SetStartedAt sets the "started_at" field.
func (m *ToolCallMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ToolCallMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ToolCallMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ToolCallMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ToolCallMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *ToolCallMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[toolcall.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ToolCallMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ToolCallMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, toolcall.FieldFinishedAt)
}

// SetCorrelationID sets the "correlation_id" field.
func (m *ToolCallMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *ToolCallMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *ToolCallMutation) ResetCorrelationID() {
	m.correlation_id = nil
}

// SetLastEventID sets the "last_event_id" field.
func (m *ToolCallMutation) SetLastEventID(s string) {
	m.last_event_id = &s
}

// LastEventID returns the value of the "last_event_id" field in the mutation.
func (m *ToolCallMutation) LastEventID() (r string, exists bool) {
	v := m.last_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEventID returns the old "last_event_id" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldLastEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEventID: %w", err)
	}
	return oldValue.LastEventID, nil
}

// ResetLastEventID resets all changes to the "last_event_id" field.
func (m *ToolCallMutation) ResetLastEventID() {
	m.last_event_id = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ToolCallMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ToolCallMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ToolCallMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ToolCallMutation builder.
func (m *ToolCallMutation) Where(ps ...predicate.ToolCall) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ToolCallMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ToolCallMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ToolCall, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ToolCallMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ToolCallMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ToolCall).
func (m *ToolCallMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ToolCallMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.workspace_id != nil {
		fields = append(fields, toolcall.FieldWorkspaceID)
	}
	if m.run_id != nil {
		fields = append(fields, toolcall.FieldRunID)
	}
	if m.step_id != nil {
		fields = append(fields, toolcall.FieldStepID)
	}
	if m.tool_name != nil {
		fields = append(fields, toolcall.FieldToolName)
	}
	if m.status != nil {
		fields = append(fields, toolcall.FieldStatus)
	}
	if m.error_code != nil {
		fields = append(fields, toolcall.FieldErrorCode)
	}
	if m.started_at != nil {
		fields = append(fields, toolcall.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, toolcall.FieldFinishedAt)
	}
	if m.correlation_id != nil {
		fields = append(fields, toolcall.FieldCorrelationID)
	}
	if m.last_event_id != nil {
		fields = append(fields, toolcall.FieldLastEventID)
	}
	if m.updated_at != nil {
		fields = append(fields, toolcall.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ToolCallMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case toolcall.FieldWorkspaceID:
		return m.WorkspaceID()
	case toolcall.FieldRunID:
		return m.RunID()
	case toolcall.FieldStepID:
		return m.StepID()
	case toolcall.FieldToolName:
		return m.ToolName()
	case toolcall.FieldStatus:
		return m.Status()
	case toolcall.FieldErrorCode:
		return m.ErrorCode()
	case toolcall.FieldStartedAt:
		return m.StartedAt()
	case toolcall.FieldFinishedAt:
		return m.FinishedAt()
	case toolcall.FieldCorrelationID:
		return m.CorrelationID()
	case toolcall.FieldLastEventID:
		return m.LastEventID()
	case toolcall.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ToolCallMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case toolcall.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case toolcall.FieldRunID:
		return m.OldRunID(ctx)
	case toolcall.FieldStepID:
		return m.OldStepID(ctx)
	case toolcall.FieldToolName:
		return m.OldToolName(ctx)
	case toolcall.FieldStatus:
		return m.OldStatus(ctx)
	case toolcall.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case toolcall.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case toolcall.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case toolcall.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case toolcall.FieldLastEventID:
		return m.OldLastEventID(ctx)
	case toolcall.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ToolCall field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolCallMutation) SetField(name string, value ent.Value) error {
	switch name {
	case toolcall.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case toolcall.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case toolcall.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case toolcall.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case toolcall.FieldStatus:
		v, ok := value.(toolcall.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case toolcall.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case toolcall.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case toolcall.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case toolcall.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case toolcall.FieldLastEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEventID(v)
		return nil
	case toolcall.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ToolCall field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ToolCallMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ToolCallMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolCallMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ToolCall numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ToolCallMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(toolcall.FieldRunID) {
		fields = append(fields, toolcall.FieldRunID)
	}
	if m.FieldCleared(toolcall.FieldStepID) {
		fields = append(fields, toolcall.FieldStepID)
	}
	if m.FieldCleared(toolcall.FieldErrorCode) {
		fields = append(fields, toolcall.FieldErrorCode)
	}
	if m.FieldCleared(toolcall.FieldFinishedAt) {
		fields = append(fields, toolcall.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ToolCallMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ToolCallMutation) ClearField(name string) error {
	switch name {
	case toolcall.FieldRunID:
		m.ClearRunID()
		return nil
	case toolcall.FieldStepID:
		m.ClearStepID()
		return nil
	case toolcall.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case toolcall.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ToolCall nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ToolCallMutation) ResetField(name string) error {
	switch name {
	case toolcall.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case toolcall.FieldRunID:
		m.ResetRunID()
		return nil
	case toolcall.FieldStepID:
		m.ResetStepID()
		return nil
	case toolcall.FieldToolName:
		m.ResetToolName()
		return nil
	case toolcall.FieldStatus:
		m.ResetStatus()
		return nil
	case toolcall.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case toolcall.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case toolcall.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case toolcall.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case toolcall.FieldLastEventID:
		m.ResetLastEventID()
		return nil
	case toolcall.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ToolCall field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ToolCallMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ToolCallMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ToolCallMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ToolCallMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ToolCallMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ToolCallMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ToolCallMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ToolCall unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ToolCallMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ToolCall edge %s", name)
}

// WorkItemLeaseMutation represents an operation that mutates the WorkItemLease nodes in the graph.
type WorkItemLeaseMutation struct {
	config
	op             Op
	typ            string
	id             *string
	workspace_id   *string
	work_item_type *workitemlease.WorkItemType
	work_item_id   *string
	agent_id       *string
	expires_at     *time.Time
	version        *int
	addversion     *int
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*WorkItemLease, error)
	predicates     []predicate.WorkItemLease
}

var _ ent.Mutation = (*WorkItemLeaseMutation)(nil)

// workitemleaseOption allows management of the mutation configuration using functional options.
type workitemleaseOption func(*WorkItemLeaseMutation)

// newWorkItemLeaseMutation creates new mutation for the WorkItemLease entity.
func newWorkItemLeaseMutation(c config, op Op, opts ...workitemleaseOption) *WorkItemLeaseMutation {
	m := &WorkItemLeaseMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkItemLease,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkItemLeaseID sets the ID field of the mutation.
func withWorkItemLeaseID(id string) workitemleaseOption {
	return func(m *WorkItemLeaseMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkItemLease
		)
		m.oldValue = func(ctx context.Context) (*WorkItemLease, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkItemLease.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkItemLease sets the old WorkItemLease of the mutation.
func withWorkItemLease(node *WorkItemLease) workitemleaseOption {
	return func(m *WorkItemLeaseMutation) {
		m.oldValue = func(context.Context) (*WorkItemLease, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkItemLeaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkItemLeaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkItemLease entities.
func (m *WorkItemLeaseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkItemLeaseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkItemLeaseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkItemLease.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *WorkItemLeaseMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *WorkItemLeaseMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the WorkItemLease entity.
// If the WorkItemLease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemLeaseMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *WorkItemLeaseMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetWorkItemType sets the "work_item_type" field.
func (m *WorkItemLeaseMutation) SetWorkItemType(wit workitemlease.WorkItemType) {
	m.work_item_type = &wit
}

// WorkItemType returns the value of the "work_item_type" field in the mutation.
func (m *WorkItemLeaseMutation) WorkItemType() (r workitemlease.WorkItemType, exists bool) {
	v := m.work_item_type
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkItemType returns the old "work_item_type" field's value of the WorkItemLease entity.
// If the WorkItemLease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemLeaseMutation) OldWorkItemType(ctx context.Context) (v workitemlease.WorkItemType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkItemType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkItemType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkItemType: %w", err)
	}
	return oldValue.WorkItemType, nil
}

// ResetWorkItemType resets all changes to the "work_item_type" field.
func (m *WorkItemLeaseMutation) ResetWorkItemType() {
	m.work_item_type = nil
}

// SetWorkItemID sets the "work_item_id" field.
func (m *WorkItemLeaseMutation) SetWorkItemID(s string) {
	m.work_item_id = &s
}

// WorkItemID returns the value of the "work_item_id" field in the mutation.
func (m *WorkItemLeaseMutation) WorkItemID() (r string, exists bool) {
	v := m.work_item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkItemID returns the old "work_item_id" field's value of the WorkItemLease entity.
// If the WorkItemLease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemLeaseMutation) OldWorkItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkItemID: %w", err)
	}
	return oldValue.WorkItemID, nil
}

// ResetWorkItemID resets all changes to the "work_item_id" field.
func (m *WorkItemLeaseMutation) ResetWorkItemID() {
	m.work_item_id = nil
}

// SetAgentID sets the "agent_id" field.
func (m *WorkItemLeaseMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *WorkItemLeaseMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the WorkItemLease entity.
// If the WorkItemLease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemLeaseMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *WorkItemLeaseMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *WorkItemLeaseMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *WorkItemLeaseMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the WorkItemLease entity.
// If the WorkItemLease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemLeaseMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *WorkItemLeaseMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetVersion sets the "version" field.
func (m *WorkItemLeaseMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *WorkItemLeaseMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the WorkItemLease entity.
// If the WorkItemLease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemLeaseMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *WorkItemLeaseMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *WorkItemLeaseMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *WorkItemLeaseMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkItemLeaseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkItemLeaseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkItemLease entity.
// If the WorkItemLease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemLeaseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *WorkItemLeaseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkItemLeaseMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkItemLeaseMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WorkItemLease entity.
// If the WorkItemLease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemLeaseMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkItemLeaseMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the WorkItemLeaseMutation builder.
func (m *WorkItemLeaseMutation) Where(ps ...predicate.WorkItemLease) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkItemLeaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkItemLeaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkItemLease, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkItemLeaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkItemLeaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkItemLease).
func (m *WorkItemLeaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkItemLeaseMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.workspace_id != nil {
		fields = append(fields, workitemlease.FieldWorkspaceID)
	}
	if m.work_item_type != nil {
		fields = append(fields, workitemlease.FieldWorkItemType)
	}
	if m.work_item_id != nil {
		fields = append(fields, workitemlease.FieldWorkItemID)
	}
	if m.agent_id != nil {
		fields = append(fields, workitemlease.FieldAgentID)
	}
	if m.expires_at != nil {
		fields = append(fields, workitemlease.FieldExpiresAt)
	}
	if m.version != nil {
		fields = append(fields, workitemlease.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, workitemlease.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workitemlease.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkItemLeaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workitemlease.FieldWorkspaceID:
		return m.WorkspaceID()
	case workitemlease.FieldWorkItemType:
		return m.WorkItemType()
	case workitemlease.FieldWorkItemID:
		return m.WorkItemID()
	case workitemlease.FieldAgentID:
		return m.AgentID()
	case workitemlease.FieldExpiresAt:
		return m.ExpiresAt()
	case workitemlease.FieldVersion:
		return m.Version()
	case workitemlease.FieldCreatedAt:
		return m.CreatedAt()
	case workitemlease.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkItemLeaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workitemlease.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case workitemlease.FieldWorkItemType:
		return m.OldWorkItemType(ctx)
	case workitemlease.FieldWorkItemID:
		return m.OldWorkItemID(ctx)
	case workitemlease.FieldAgentID:
		return m.OldAgentID(ctx)
	case workitemlease.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case workitemlease.FieldVersion:
		return m.OldVersion(ctx)
	case workitemlease.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workitemlease.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkItemLease field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkItemLeaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workitemlease.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case workitemlease.FieldWorkItemType:
		v, ok := value.(workitemlease.WorkItemType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkItemType(v)
		return nil
	case workitemlease.FieldWorkItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkItemID(v)
		return nil
	case workitemlease.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case workitemlease.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case workitemlease.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case workitemlease.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workitemlease.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkItemLease field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkItemLeaseMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, workitemlease.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkItemLeaseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workitemlease.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkItemLeaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workitemlease.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown WorkItemLease numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkItemLeaseMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkItemLeaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkItemLeaseMutation) ClearField(name string) error {
	return fmt.Errorf("unknown WorkItemLease nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkItemLeaseMutation) ResetField(name string) error {
	switch name {
	case workitemlease.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case workitemlease.FieldWorkItemType:
		m.ResetWorkItemType()
		return nil
	case workitemlease.FieldWorkItemID:
		m.ResetWorkItemID()
		return nil
	case workitemlease.FieldAgentID:
		m.ResetAgentID()
		return nil
	case workitemlease.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case workitemlease.FieldVersion:
		m.ResetVersion()
		return nil
	case workitemlease.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workitemlease.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkItemLease field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkItemLeaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkItemLeaseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkItemLeaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkItemLeaseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkItemLeaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkItemLeaseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkItemLeaseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WorkItemLease unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkItemLeaseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WorkItemLease edge %s", name)
}
