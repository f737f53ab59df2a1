// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionloop/groundcontrol/ent/agentidentity"
	"github.com/missionloop/groundcontrol/ent/predicate"
)

// AgentIdentityUpdate is the builder for updating AgentIdentity entities.
type AgentIdentityUpdate struct {
	config
	hooks    []Hook
	mutation *AgentIdentityMutation
}

// Where appends a list predicates to the AgentIdentityUpdate builder.
func (_u *AgentIdentityUpdate) Where(ps ...predicate.AgentIdentity) *AgentIdentityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *AgentIdentityUpdate) SetWorkspaceID(v string) *AgentIdentityUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *AgentIdentityUpdate) SetNillableWorkspaceID(v *string) *AgentIdentityUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetPrincipalID sets the "principal_id" field.
func (_u *AgentIdentityUpdate) SetPrincipalID(v string) *AgentIdentityUpdate {
	_u.mutation.SetPrincipalID(v)
	return _u
}

// SetNillablePrincipalID sets the "principal_id" field if the given value is not nil.
func (_u *AgentIdentityUpdate) SetNillablePrincipalID(v *string) *AgentIdentityUpdate {
	if v != nil {
		_u.SetPrincipalID(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *AgentIdentityUpdate) SetDisplayName(v string) *AgentIdentityUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *AgentIdentityUpdate) SetNillableDisplayName(v *string) *AgentIdentityUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *AgentIdentityUpdate) ClearDisplayName() *AgentIdentityUpdate {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AgentIdentityUpdate) SetCreatedAt(v time.Time) *AgentIdentityUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AgentIdentityUpdate) SetNillableCreatedAt(v *time.Time) *AgentIdentityUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetRevokedAt sets the "revoked_at" field.
func (_u *AgentIdentityUpdate) SetRevokedAt(v time.Time) *AgentIdentityUpdate {
	_u.mutation.SetRevokedAt(v)
	return _u
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_u *AgentIdentityUpdate) SetNillableRevokedAt(v *time.Time) *AgentIdentityUpdate {
	if v != nil {
		_u.SetRevokedAt(*v)
	}
	return _u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (_u *AgentIdentityUpdate) ClearRevokedAt() *AgentIdentityUpdate {
	_u.mutation.ClearRevokedAt()
	return _u
}

// Mutation returns the AgentIdentityMutation object of the builder.
func (_u *AgentIdentityUpdate) Mutation() *AgentIdentityMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentIdentityUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentIdentityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentIdentityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentIdentityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentIdentityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentidentity.Table, agentidentity.Columns, sqlgraph.NewFieldSpec(agentidentity.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(agentidentity.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrincipalID(); ok {
		_spec.SetField(agentidentity.FieldPrincipalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(agentidentity.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(agentidentity.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(agentidentity.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RevokedAt(); ok {
		_spec.SetField(agentidentity.FieldRevokedAt, field.TypeTime, value)
	}
	if _u.mutation.RevokedAtCleared() {
		_spec.ClearField(agentidentity.FieldRevokedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentidentity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentIdentityUpdateOne is the builder for updating a single AgentIdentity entity.
type AgentIdentityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentIdentityMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *AgentIdentityUpdateOne) SetWorkspaceID(v string) *AgentIdentityUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *AgentIdentityUpdateOne) SetNillableWorkspaceID(v *string) *AgentIdentityUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetPrincipalID sets the "principal_id" field.
func (_u *AgentIdentityUpdateOne) SetPrincipalID(v string) *AgentIdentityUpdateOne {
	_u.mutation.SetPrincipalID(v)
	return _u
}

// SetNillablePrincipalID sets the "principal_id" field if the given value is not nil.
func (_u *AgentIdentityUpdateOne) SetNillablePrincipalID(v *string) *AgentIdentityUpdateOne {
	if v != nil {
		_u.SetPrincipalID(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *AgentIdentityUpdateOne) SetDisplayName(v string) *AgentIdentityUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *AgentIdentityUpdateOne) SetNillableDisplayName(v *string) *AgentIdentityUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *AgentIdentityUpdateOne) ClearDisplayName() *AgentIdentityUpdateOne {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AgentIdentityUpdateOne) SetCreatedAt(v time.Time) *AgentIdentityUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AgentIdentityUpdateOne) SetNillableCreatedAt(v *time.Time) *AgentIdentityUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetRevokedAt sets the "revoked_at" field.
func (_u *AgentIdentityUpdateOne) SetRevokedAt(v time.Time) *AgentIdentityUpdateOne {
	_u.mutation.SetRevokedAt(v)
	return _u
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_u *AgentIdentityUpdateOne) SetNillableRevokedAt(v *time.Time) *AgentIdentityUpdateOne {
	if v != nil {
		_u.SetRevokedAt(*v)
	}
	return _u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (_u *AgentIdentityUpdateOne) ClearRevokedAt() *AgentIdentityUpdateOne {
	_u.mutation.ClearRevokedAt()
	return _u
}

// Mutation returns the AgentIdentityMutation object of the builder.
func (_u *AgentIdentityUpdateOne) Mutation() *AgentIdentityMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentIdentityUpdate builder.
func (_u *AgentIdentityUpdateOne) Where(ps ...predicate.AgentIdentity) *AgentIdentityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentIdentityUpdateOne) Select(field string, fields ...string) *AgentIdentityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentIdentity entity.
func (_u *AgentIdentityUpdateOne) Save(ctx context.Context) (*AgentIdentity, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentIdentityUpdateOne) SaveX(ctx context.Context) *AgentIdentity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentIdentityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentIdentityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentIdentityUpdateOne) sqlSave(ctx context.Context) (_node *AgentIdentity, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentidentity.Table, agentidentity.Columns, sqlgraph.NewFieldSpec(agentidentity.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentIdentity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentidentity.FieldID)
		for _, f := range fields {
			if !agentidentity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentidentity.FieldID {
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
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(agentidentity.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrincipalID(); ok {
		_spec.SetField(agentidentity.FieldPrincipalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(agentidentity.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(agentidentity.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(agentidentity.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RevokedAt(); ok {
		_spec.SetField(agentidentity.FieldRevokedAt, field.TypeTime, value)
	}
	if _u.mutation.RevokedAtCleared() {
		_spec.ClearField(agentidentity.FieldRevokedAt, field.TypeTime)
	}
	_node = &AgentIdentity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentidentity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
