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
	"github.com/missionloop/groundcontrol/ent/predicate"
	"github.com/missionloop/groundcontrol/ent/principal"
)

// PrincipalUpdate is the builder for updating Principal entities.
type PrincipalUpdate struct {
	config
	hooks    []Hook
	mutation *PrincipalMutation
}

// Where appends a list predicates to the PrincipalUpdate builder.
func (_u *PrincipalUpdate) Where(ps ...predicate.Principal) *PrincipalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *PrincipalUpdate) SetWorkspaceID(v string) *PrincipalUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *PrincipalUpdate) SetNillableWorkspaceID(v *string) *PrincipalUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetPrincipalType sets the "principal_type" field.
func (_u *PrincipalUpdate) SetPrincipalType(v principal.PrincipalType) *PrincipalUpdate {
	_u.mutation.SetPrincipalType(v)
	return _u
}

// SetNillablePrincipalType sets the "principal_type" field if the given value is not nil.
func (_u *PrincipalUpdate) SetNillablePrincipalType(v *principal.PrincipalType) *PrincipalUpdate {
	if v != nil {
		_u.SetPrincipalType(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *PrincipalUpdate) SetDisplayName(v string) *PrincipalUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *PrincipalUpdate) SetNillableDisplayName(v *string) *PrincipalUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *PrincipalUpdate) ClearDisplayName() *PrincipalUpdate {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetLegacyActorType sets the "legacy_actor_type" field.
func (_u *PrincipalUpdate) SetLegacyActorType(v string) *PrincipalUpdate {
	_u.mutation.SetLegacyActorType(v)
	return _u
}

// SetNillableLegacyActorType sets the "legacy_actor_type" field if the given value is not nil.
func (_u *PrincipalUpdate) SetNillableLegacyActorType(v *string) *PrincipalUpdate {
	if v != nil {
		_u.SetLegacyActorType(*v)
	}
	return _u
}

// ClearLegacyActorType clears the value of the "legacy_actor_type" field.
func (_u *PrincipalUpdate) ClearLegacyActorType() *PrincipalUpdate {
	_u.mutation.ClearLegacyActorType()
	return _u
}

// SetLegacyActorID sets the "legacy_actor_id" field.
func (_u *PrincipalUpdate) SetLegacyActorID(v string) *PrincipalUpdate {
	_u.mutation.SetLegacyActorID(v)
	return _u
}

// SetNillableLegacyActorID sets the "legacy_actor_id" field if the given value is not nil.
func (_u *PrincipalUpdate) SetNillableLegacyActorID(v *string) *PrincipalUpdate {
	if v != nil {
		_u.SetLegacyActorID(*v)
	}
	return _u
}

// ClearLegacyActorID clears the value of the "legacy_actor_id" field.
func (_u *PrincipalUpdate) ClearLegacyActorID() *PrincipalUpdate {
	_u.mutation.ClearLegacyActorID()
	return _u
}

// SetAPIKeyHash sets the "api_key_hash" field.
func (_u *PrincipalUpdate) SetAPIKeyHash(v string) *PrincipalUpdate {
	_u.mutation.SetAPIKeyHash(v)
	return _u
}

// SetNillableAPIKeyHash sets the "api_key_hash" field if the given value is not nil.
func (_u *PrincipalUpdate) SetNillableAPIKeyHash(v *string) *PrincipalUpdate {
	if v != nil {
		_u.SetAPIKeyHash(*v)
	}
	return _u
}

// ClearAPIKeyHash clears the value of the "api_key_hash" field.
func (_u *PrincipalUpdate) ClearAPIKeyHash() *PrincipalUpdate {
	_u.mutation.ClearAPIKeyHash()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PrincipalUpdate) SetCreatedAt(v time.Time) *PrincipalUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PrincipalUpdate) SetNillableCreatedAt(v *time.Time) *PrincipalUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetRevokedAt sets the "revoked_at" field.
func (_u *PrincipalUpdate) SetRevokedAt(v time.Time) *PrincipalUpdate {
	_u.mutation.SetRevokedAt(v)
	return _u
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_u *PrincipalUpdate) SetNillableRevokedAt(v *time.Time) *PrincipalUpdate {
	if v != nil {
		_u.SetRevokedAt(*v)
	}
	return _u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (_u *PrincipalUpdate) ClearRevokedAt() *PrincipalUpdate {
	_u.mutation.ClearRevokedAt()
	return _u
}

// Mutation returns the PrincipalMutation object of the builder.
func (_u *PrincipalUpdate) Mutation() *PrincipalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PrincipalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PrincipalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PrincipalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PrincipalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PrincipalUpdate) check() error {
	if v, ok := _u.mutation.PrincipalType(); ok {
		if err := principal.PrincipalTypeValidator(v); err != nil {
			return &ValidationError{Name: "principal_type", err: fmt.Errorf(`ent: validator failed for field "Principal.principal_type": %w`, err)}
		}
	}
	return nil
}

func (_u *PrincipalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(principal.Table, principal.Columns, sqlgraph.NewFieldSpec(principal.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(principal.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrincipalType(); ok {
		_spec.SetField(principal.FieldPrincipalType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(principal.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(principal.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.LegacyActorType(); ok {
		_spec.SetField(principal.FieldLegacyActorType, field.TypeString, value)
	}
	if _u.mutation.LegacyActorTypeCleared() {
		_spec.ClearField(principal.FieldLegacyActorType, field.TypeString)
	}
	if value, ok := _u.mutation.LegacyActorID(); ok {
		_spec.SetField(principal.FieldLegacyActorID, field.TypeString, value)
	}
	if _u.mutation.LegacyActorIDCleared() {
		_spec.ClearField(principal.FieldLegacyActorID, field.TypeString)
	}
	if value, ok := _u.mutation.APIKeyHash(); ok {
		_spec.SetField(principal.FieldAPIKeyHash, field.TypeString, value)
	}
	if _u.mutation.APIKeyHashCleared() {
		_spec.ClearField(principal.FieldAPIKeyHash, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(principal.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RevokedAt(); ok {
		_spec.SetField(principal.FieldRevokedAt, field.TypeTime, value)
	}
	if _u.mutation.RevokedAtCleared() {
		_spec.ClearField(principal.FieldRevokedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{principal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PrincipalUpdateOne is the builder for updating a single Principal entity.
type PrincipalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PrincipalMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *PrincipalUpdateOne) SetWorkspaceID(v string) *PrincipalUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *PrincipalUpdateOne) SetNillableWorkspaceID(v *string) *PrincipalUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetPrincipalType sets the "principal_type" field.
func (_u *PrincipalUpdateOne) SetPrincipalType(v principal.PrincipalType) *PrincipalUpdateOne {
	_u.mutation.SetPrincipalType(v)
	return _u
}

// SetNillablePrincipalType sets the "principal_type" field if the given value is not nil.
func (_u *PrincipalUpdateOne) SetNillablePrincipalType(v *principal.PrincipalType) *PrincipalUpdateOne {
	if v != nil {
		_u.SetPrincipalType(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *PrincipalUpdateOne) SetDisplayName(v string) *PrincipalUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *PrincipalUpdateOne) SetNillableDisplayName(v *string) *PrincipalUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *PrincipalUpdateOne) ClearDisplayName() *PrincipalUpdateOne {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetLegacyActorType sets the "legacy_actor_type" field.
func (_u *PrincipalUpdateOne) SetLegacyActorType(v string) *PrincipalUpdateOne {
	_u.mutation.SetLegacyActorType(v)
	return _u
}

// SetNillableLegacyActorType sets the "legacy_actor_type" field if the given value is not nil.
func (_u *PrincipalUpdateOne) SetNillableLegacyActorType(v *string) *PrincipalUpdateOne {
	if v != nil {
		_u.SetLegacyActorType(*v)
	}
	return _u
}

// ClearLegacyActorType clears the value of the "legacy_actor_type" field.
func (_u *PrincipalUpdateOne) ClearLegacyActorType() *PrincipalUpdateOne {
	_u.mutation.ClearLegacyActorType()
	return _u
}

// SetLegacyActorID sets the "legacy_actor_id" field.
func (_u *PrincipalUpdateOne) SetLegacyActorID(v string) *PrincipalUpdateOne {
	_u.mutation.SetLegacyActorID(v)
	return _u
}

// SetNillableLegacyActorID sets the "legacy_actor_id" field if the given value is not nil.
func (_u *PrincipalUpdateOne) SetNillableLegacyActorID(v *string) *PrincipalUpdateOne {
	if v != nil {
		_u.SetLegacyActorID(*v)
	}
	return _u
}

// ClearLegacyActorID clears the value of the "legacy_actor_id" field.
func (_u *PrincipalUpdateOne) ClearLegacyActorID() *PrincipalUpdateOne {
	_u.mutation.ClearLegacyActorID()
	return _u
}

// SetAPIKeyHash sets the "api_key_hash" field.
func (_u *PrincipalUpdateOne) SetAPIKeyHash(v string) *PrincipalUpdateOne {
	_u.mutation.SetAPIKeyHash(v)
	return _u
}

// SetNillableAPIKeyHash sets the "api_key_hash" field if the given value is not nil.
func (_u *PrincipalUpdateOne) SetNillableAPIKeyHash(v *string) *PrincipalUpdateOne {
	if v != nil {
		_u.SetAPIKeyHash(*v)
	}
	return _u
}

// ClearAPIKeyHash clears the value of the "api_key_hash" field.
func (_u *PrincipalUpdateOne) ClearAPIKeyHash() *PrincipalUpdateOne {
	_u.mutation.ClearAPIKeyHash()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PrincipalUpdateOne) SetCreatedAt(v time.Time) *PrincipalUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PrincipalUpdateOne) SetNillableCreatedAt(v *time.Time) *PrincipalUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetRevokedAt sets the "revoked_at" field.
func (_u *PrincipalUpdateOne) SetRevokedAt(v time.Time) *PrincipalUpdateOne {
	_u.mutation.SetRevokedAt(v)
	return _u
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_u *PrincipalUpdateOne) SetNillableRevokedAt(v *time.Time) *PrincipalUpdateOne {
	if v != nil {
		_u.SetRevokedAt(*v)
	}
	return _u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (_u *PrincipalUpdateOne) ClearRevokedAt() *PrincipalUpdateOne {
	_u.mutation.ClearRevokedAt()
	return _u
}

// Mutation returns the PrincipalMutation object of the builder.
func (_u *PrincipalUpdateOne) Mutation() *PrincipalMutation {
	return _u.mutation
}

// Where appends a list predicates to the PrincipalUpdate builder.
func (_u *PrincipalUpdateOne) Where(ps ...predicate.Principal) *PrincipalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PrincipalUpdateOne) Select(field string, fields ...string) *PrincipalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Principal entity.
func (_u *PrincipalUpdateOne) Save(ctx context.Context) (*Principal, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PrincipalUpdateOne) SaveX(ctx context.Context) *Principal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PrincipalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PrincipalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PrincipalUpdateOne) check() error {
	if v, ok := _u.mutation.PrincipalType(); ok {
		if err := principal.PrincipalTypeValidator(v); err != nil {
			return &ValidationError{Name: "principal_type", err: fmt.Errorf(`ent: validator failed for field "Principal.principal_type": %w`, err)}
		}
	}
	return nil
}

func (_u *PrincipalUpdateOne) sqlSave(ctx context.Context) (_node *Principal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(principal.Table, principal.Columns, sqlgraph.NewFieldSpec(principal.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Principal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, principal.FieldID)
		for _, f := range fields {
			if !principal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != principal.FieldID {
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
		_spec.SetField(principal.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrincipalType(); ok {
		_spec.SetField(principal.FieldPrincipalType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(principal.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(principal.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.LegacyActorType(); ok {
		_spec.SetField(principal.FieldLegacyActorType, field.TypeString, value)
	}
	if _u.mutation.LegacyActorTypeCleared() {
		_spec.ClearField(principal.FieldLegacyActorType, field.TypeString)
	}
	if value, ok := _u.mutation.LegacyActorID(); ok {
		_spec.SetField(principal.FieldLegacyActorID, field.TypeString, value)
	}
	if _u.mutation.LegacyActorIDCleared() {
		_spec.ClearField(principal.FieldLegacyActorID, field.TypeString)
	}
	if value, ok := _u.mutation.APIKeyHash(); ok {
		_spec.SetField(principal.FieldAPIKeyHash, field.TypeString, value)
	}
	if _u.mutation.APIKeyHashCleared() {
		_spec.ClearField(principal.FieldAPIKeyHash, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(principal.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RevokedAt(); ok {
		_spec.SetField(principal.FieldRevokedAt, field.TypeTime, value)
	}
	if _u.mutation.RevokedAtCleared() {
		_spec.ClearField(principal.FieldRevokedAt, field.TypeTime)
	}
	_node = &Principal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{principal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
