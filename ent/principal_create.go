// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionloop/groundcontrol/ent/principal"
)

// PrincipalCreate is the builder for creating a Principal entity.
type PrincipalCreate struct {
	config
	mutation *PrincipalMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *PrincipalCreate) SetWorkspaceID(v string) *PrincipalCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetPrincipalType sets the "principal_type" field.
func (_c *PrincipalCreate) SetPrincipalType(v principal.PrincipalType) *PrincipalCreate {
	_c.mutation.SetPrincipalType(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *PrincipalCreate) SetDisplayName(v string) *PrincipalCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_c *PrincipalCreate) SetNillableDisplayName(v *string) *PrincipalCreate {
	if v != nil {
		_c.SetDisplayName(*v)
	}
	return _c
}

// SetLegacyActorType sets the "legacy_actor_type" field.
func (_c *PrincipalCreate) SetLegacyActorType(v string) *PrincipalCreate {
	_c.mutation.SetLegacyActorType(v)
	return _c
}

// SetNillableLegacyActorType sets the "legacy_actor_type" field if the given value is not nil.
func (_c *PrincipalCreate) SetNillableLegacyActorType(v *string) *PrincipalCreate {
	if v != nil {
		_c.SetLegacyActorType(*v)
	}
	return _c
}

// SetLegacyActorID sets the "legacy_actor_id" field.
func (_c *PrincipalCreate) SetLegacyActorID(v string) *PrincipalCreate {
	_c.mutation.SetLegacyActorID(v)
	return _c
}

// SetNillableLegacyActorID sets the "legacy_actor_id" field if the given value is not nil.
func (_c *PrincipalCreate) SetNillableLegacyActorID(v *string) *PrincipalCreate {
	if v != nil {
		_c.SetLegacyActorID(*v)
	}
	return _c
}

// SetAPIKeyHash sets the "api_key_hash" field.
func (_c *PrincipalCreate) SetAPIKeyHash(v string) *PrincipalCreate {
	_c.mutation.SetAPIKeyHash(v)
	return _c
}

// SetNillableAPIKeyHash sets the "api_key_hash" field if the given value is not nil.
func (_c *PrincipalCreate) SetNillableAPIKeyHash(v *string) *PrincipalCreate {
	if v != nil {
		_c.SetAPIKeyHash(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PrincipalCreate) SetCreatedAt(v time.Time) *PrincipalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PrincipalCreate) SetNillableCreatedAt(v *time.Time) *PrincipalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRevokedAt sets the "revoked_at" field.
func (_c *PrincipalCreate) SetRevokedAt(v time.Time) *PrincipalCreate {
	_c.mutation.SetRevokedAt(v)
	return _c
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_c *PrincipalCreate) SetNillableRevokedAt(v *time.Time) *PrincipalCreate {
	if v != nil {
		_c.SetRevokedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PrincipalCreate) SetID(v string) *PrincipalCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PrincipalMutation object of the builder.
func (_c *PrincipalCreate) Mutation() *PrincipalMutation {
	return _c.mutation
}

// Save creates the Principal in the database.
func (_c *PrincipalCreate) Save(ctx context.Context) (*Principal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PrincipalCreate) SaveX(ctx context.Context) *Principal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PrincipalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PrincipalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PrincipalCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := principal.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PrincipalCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Principal.workspace_id"`)}
	}
	if _, ok := _c.mutation.PrincipalType(); !ok {
		return &ValidationError{Name: "principal_type", err: errors.New(`ent: missing required field "Principal.principal_type"`)}
	}
	if v, ok := _c.mutation.PrincipalType(); ok {
		if err := principal.PrincipalTypeValidator(v); err != nil {
			return &ValidationError{Name: "principal_type", err: fmt.Errorf(`ent: validator failed for field "Principal.principal_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Principal.created_at"`)}
	}
	return nil
}

func (_c *PrincipalCreate) sqlSave(ctx context.Context) (*Principal, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Principal.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PrincipalCreate) createSpec() (*Principal, *sqlgraph.CreateSpec) {
	var (
		_node = &Principal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(principal.Table, sqlgraph.NewFieldSpec(principal.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(principal.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.PrincipalType(); ok {
		_spec.SetField(principal.FieldPrincipalType, field.TypeEnum, value)
		_node.PrincipalType = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(principal.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.LegacyActorType(); ok {
		_spec.SetField(principal.FieldLegacyActorType, field.TypeString, value)
		_node.LegacyActorType = &value
	}
	if value, ok := _c.mutation.LegacyActorID(); ok {
		_spec.SetField(principal.FieldLegacyActorID, field.TypeString, value)
		_node.LegacyActorID = &value
	}
	if value, ok := _c.mutation.APIKeyHash(); ok {
		_spec.SetField(principal.FieldAPIKeyHash, field.TypeString, value)
		_node.APIKeyHash = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(principal.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.RevokedAt(); ok {
		_spec.SetField(principal.FieldRevokedAt, field.TypeTime, value)
		_node.RevokedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Principal.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PrincipalUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *PrincipalCreate) OnConflict(opts ...sql.ConflictOption) *PrincipalUpsertOne {
	_c.conflict = opts
	return &PrincipalUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Principal.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PrincipalCreate) OnConflictColumns(columns ...string) *PrincipalUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PrincipalUpsertOne{
		create: _c,
	}
}

type (
	// PrincipalUpsertOne is the builder for "upsert"-ing
	//  one Principal node.
	PrincipalUpsertOne struct {
		create *PrincipalCreate
	}

	// PrincipalUpsert is the "OnConflict" setter.
	PrincipalUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *PrincipalUpsert) SetWorkspaceID(v string) *PrincipalUpsert {
	u.Set(principal.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *PrincipalUpsert) UpdateWorkspaceID() *PrincipalUpsert {
	u.SetExcluded(principal.FieldWorkspaceID)
	return u
}

// SetPrincipalType sets the "principal_type" field.
func (u *PrincipalUpsert) SetPrincipalType(v principal.PrincipalType) *PrincipalUpsert {
	u.Set(principal.FieldPrincipalType, v)
	return u
}

// UpdatePrincipalType sets the "principal_type" field to the value that was provided on create.
func (u *PrincipalUpsert) UpdatePrincipalType() *PrincipalUpsert {
	u.SetExcluded(principal.FieldPrincipalType)
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *PrincipalUpsert) SetDisplayName(v string) *PrincipalUpsert {
	u.Set(principal.FieldDisplayName, v)
	return u
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *PrincipalUpsert) UpdateDisplayName() *PrincipalUpsert {
	u.SetExcluded(principal.FieldDisplayName)
	return u
}

// ClearDisplayName clears the value of the "display_name" field.
func (u *PrincipalUpsert) ClearDisplayName() *PrincipalUpsert {
	u.SetNull(principal.FieldDisplayName)
	return u
}

// SetLegacyActorType sets the "legacy_actor_type" field.
func (u *PrincipalUpsert) SetLegacyActorType(v string) *PrincipalUpsert {
	u.Set(principal.FieldLegacyActorType, v)
	return u
}

// UpdateLegacyActorType sets the "legacy_actor_type" field to the value that was provided on create.
func (u *PrincipalUpsert) UpdateLegacyActorType() *PrincipalUpsert {
	u.SetExcluded(principal.FieldLegacyActorType)
	return u
}

// ClearLegacyActorType clears the value of the "legacy_actor_type" field.
func (u *PrincipalUpsert) ClearLegacyActorType() *PrincipalUpsert {
	u.SetNull(principal.FieldLegacyActorType)
	return u
}

// SetLegacyActorID sets the "legacy_actor_id" field.
func (u *PrincipalUpsert) SetLegacyActorID(v string) *PrincipalUpsert {
	u.Set(principal.FieldLegacyActorID, v)
	return u
}

// UpdateLegacyActorID sets the "legacy_actor_id" field to the value that was provided on create.
func (u *PrincipalUpsert) UpdateLegacyActorID() *PrincipalUpsert {
	u.SetExcluded(principal.FieldLegacyActorID)
	return u
}

// ClearLegacyActorID clears the value of the "legacy_actor_id" field.
func (u *PrincipalUpsert) ClearLegacyActorID() *PrincipalUpsert {
	u.SetNull(principal.FieldLegacyActorID)
	return u
}

// SetAPIKeyHash sets the "api_key_hash" field.
func (u *PrincipalUpsert) SetAPIKeyHash(v string) *PrincipalUpsert {
	u.Set(principal.FieldAPIKeyHash, v)
	return u
}

// UpdateAPIKeyHash sets the "api_key_hash" field to the value that was provided on create.
func (u *PrincipalUpsert) UpdateAPIKeyHash() *PrincipalUpsert {
	u.SetExcluded(principal.FieldAPIKeyHash)
	return u
}

// ClearAPIKeyHash clears the value of the "api_key_hash" field.
func (u *PrincipalUpsert) ClearAPIKeyHash() *PrincipalUpsert {
	u.SetNull(principal.FieldAPIKeyHash)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *PrincipalUpsert) SetCreatedAt(v time.Time) *PrincipalUpsert {
	u.Set(principal.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *PrincipalUpsert) UpdateCreatedAt() *PrincipalUpsert {
	u.SetExcluded(principal.FieldCreatedAt)
	return u
}

// SetRevokedAt sets the "revoked_at" field.
func (u *PrincipalUpsert) SetRevokedAt(v time.Time) *PrincipalUpsert {
	u.Set(principal.FieldRevokedAt, v)
	return u
}

// UpdateRevokedAt sets the "revoked_at" field to the value that was provided on create.
func (u *PrincipalUpsert) UpdateRevokedAt() *PrincipalUpsert {
	u.SetExcluded(principal.FieldRevokedAt)
	return u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (u *PrincipalUpsert) ClearRevokedAt() *PrincipalUpsert {
	u.SetNull(principal.FieldRevokedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Principal.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(principal.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PrincipalUpsertOne) UpdateNewValues() *PrincipalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(principal.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Principal.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PrincipalUpsertOne) Ignore() *PrincipalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PrincipalUpsertOne) DoNothing() *PrincipalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PrincipalCreate.OnConflict
// documentation for more info.
func (u *PrincipalUpsertOne) Update(set func(*PrincipalUpsert)) *PrincipalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PrincipalUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *PrincipalUpsertOne) SetWorkspaceID(v string) *PrincipalUpsertOne {
	return u.Update(func(s *PrincipalUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *PrincipalUpsertOne) UpdateWorkspaceID() *PrincipalUpsertOne {
	return u.Update(func(s *PrincipalUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetPrincipalType sets the "principal_type" field.
func (u *PrincipalUpsertOne) SetPrincipalType(v principal.PrincipalType) *PrincipalUpsertOne {
	return u.Update(func(s *PrincipalUpsert) {
		s.SetPrincipalType(v)
	})
}

// UpdatePrincipalType sets the "principal_type" field to the value that was provided on create.
func (u *PrincipalUpsertOne) UpdatePrincipalType() *PrincipalUpsertOne {
	return u.Update(func(s *PrincipalUpsert) {
		s.UpdatePrincipalType()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *PrincipalUpsertOne) SetDisplayName(v string) *PrincipalUpsertOne {
	return u.Update(func(s *PrincipalUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *PrincipalUpsertOne) UpdateDisplayName() *PrincipalUpsertOne {
	return u.Update(func(s *PrincipalUpsert) {
		s.UpdateDisplayName()
	})
}

// ClearDisplayName clears the value of the "display_name" field.
func (u *PrincipalUpsertOne) ClearDisplayName() *PrincipalUpsertOne {
	return u.Update(func(s *PrincipalUpsert) {
		s.ClearDisplayName()
	})
}

// SetLegacyActorType sets the "legacy_actor_type" field.
func (u *PrincipalUpsertOne) SetLegacyActorType(v string) *PrincipalUpsertOne {
	return u.Update(func(s *PrincipalUpsert) {
		s.SetLegacyActorType(v)
	})
}

// UpdateLegacyActorType sets the "legacy_actor_type" field to the value that was provided on create.
func (u *PrincipalUpsertOne) UpdateLegacyActorType() *PrincipalUpsertOne {
	return u.Update(func(s *PrincipalUpsert) {
		s.UpdateLegacyActorType()
	})
}

// ClearLegacyActorType clears the value of the "legacy_actor_type" field.
func (u *PrincipalUpsertOne) ClearLegacyActorType() *PrincipalUpsertOne {
	return u.Update(func(s *PrincipalUpsert) {
		s.ClearLegacyActorType()
	})
}

// SetLegacyActorID sets the "legacy_actor_id" field.
func (u *PrincipalUpsertOne) SetLegacyActorID(v string) *PrincipalUpsertOne {
	return u.Update(func(s *PrincipalUpsert) {
		s.SetLegacyActorID(v)
	})
}

// UpdateLegacyActorID sets the "legacy_actor_id" field to the value that was provided on create.
func (u *PrincipalUpsertOne) UpdateLegacyActorID() *PrincipalUpsertOne {
	return u.Update(func(s *PrincipalUpsert) {
		s.UpdateLegacyActorID()
	})
}

// ClearLegacyActorID clears the value of the "legacy_actor_id" field.
func (u *PrincipalUpsertOne) ClearLegacyActorID() *PrincipalUpsertOne {
	return u.Update(func(s *PrincipalUpsert) {
		s.ClearLegacyActorID()
	})
}

// SetAPIKeyHash sets the "api_key_hash" field.
func (u *PrincipalUpsertOne) SetAPIKeyHash(v string) *PrincipalUpsertOne {
	return u.Update(func(s *PrincipalUpsert) {
		s.SetAPIKeyHash(v)
	})
}

// UpdateAPIKeyHash sets the "api_key_hash" field to the value that was provided on create.
func (u *PrincipalUpsertOne) UpdateAPIKeyHash() *PrincipalUpsertOne {
	return u.Update(func(s *PrincipalUpsert) {
		s.UpdateAPIKeyHash()
	})
}

// ClearAPIKeyHash clears the value of the "api_key_hash" field.
func (u *PrincipalUpsertOne) ClearAPIKeyHash() *PrincipalUpsertOne {
	return u.Update(func(s *PrincipalUpsert) {
		s.ClearAPIKeyHash()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *PrincipalUpsertOne) SetCreatedAt(v time.Time) *PrincipalUpsertOne {
	return u.Update(func(s *PrincipalUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *PrincipalUpsertOne) UpdateCreatedAt() *PrincipalUpsertOne {
	return u.Update(func(s *PrincipalUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetRevokedAt sets the "revoked_at" field.
func (u *PrincipalUpsertOne) SetRevokedAt(v time.Time) *PrincipalUpsertOne {
	return u.Update(func(s *PrincipalUpsert) {
		s.SetRevokedAt(v)
	})
}

// UpdateRevokedAt sets the "revoked_at" field to the value that was provided on create.
func (u *PrincipalUpsertOne) UpdateRevokedAt() *PrincipalUpsertOne {
	return u.Update(func(s *PrincipalUpsert) {
		s.UpdateRevokedAt()
	})
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (u *PrincipalUpsertOne) ClearRevokedAt() *PrincipalUpsertOne {
	return u.Update(func(s *PrincipalUpsert) {
		s.ClearRevokedAt()
	})
}

// Exec executes the query.
func (u *PrincipalUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PrincipalCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PrincipalUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PrincipalUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PrincipalUpsertOne.ID is not supported by MySQL driver. Use PrincipalUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PrincipalUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PrincipalCreateBulk is the builder for creating many Principal entities in bulk.
type PrincipalCreateBulk struct {
	config
	err      error
	builders []*PrincipalCreate
	conflict []sql.ConflictOption
}

// Save creates the Principal entities in the database.
func (_c *PrincipalCreateBulk) Save(ctx context.Context) ([]*Principal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Principal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PrincipalMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PrincipalCreateBulk) SaveX(ctx context.Context) []*Principal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PrincipalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PrincipalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Principal.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PrincipalUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *PrincipalCreateBulk) OnConflict(opts ...sql.ConflictOption) *PrincipalUpsertBulk {
	_c.conflict = opts
	return &PrincipalUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Principal.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PrincipalCreateBulk) OnConflictColumns(columns ...string) *PrincipalUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PrincipalUpsertBulk{
		create: _c,
	}
}

// PrincipalUpsertBulk is the builder for "upsert"-ing
// a bulk of Principal nodes.
type PrincipalUpsertBulk struct {
	create *PrincipalCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Principal.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(principal.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PrincipalUpsertBulk) UpdateNewValues() *PrincipalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(principal.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Principal.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PrincipalUpsertBulk) Ignore() *PrincipalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PrincipalUpsertBulk) DoNothing() *PrincipalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PrincipalCreateBulk.OnConflict
// documentation for more info.
func (u *PrincipalUpsertBulk) Update(set func(*PrincipalUpsert)) *PrincipalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PrincipalUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *PrincipalUpsertBulk) SetWorkspaceID(v string) *PrincipalUpsertBulk {
	return u.Update(func(s *PrincipalUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *PrincipalUpsertBulk) UpdateWorkspaceID() *PrincipalUpsertBulk {
	return u.Update(func(s *PrincipalUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetPrincipalType sets the "principal_type" field.
func (u *PrincipalUpsertBulk) SetPrincipalType(v principal.PrincipalType) *PrincipalUpsertBulk {
	return u.Update(func(s *PrincipalUpsert) {
		s.SetPrincipalType(v)
	})
}

// UpdatePrincipalType sets the "principal_type" field to the value that was provided on create.
func (u *PrincipalUpsertBulk) UpdatePrincipalType() *PrincipalUpsertBulk {
	return u.Update(func(s *PrincipalUpsert) {
		s.UpdatePrincipalType()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *PrincipalUpsertBulk) SetDisplayName(v string) *PrincipalUpsertBulk {
	return u.Update(func(s *PrincipalUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *PrincipalUpsertBulk) UpdateDisplayName() *PrincipalUpsertBulk {
	return u.Update(func(s *PrincipalUpsert) {
		s.UpdateDisplayName()
	})
}

// ClearDisplayName clears the value of the "display_name" field.
func (u *PrincipalUpsertBulk) ClearDisplayName() *PrincipalUpsertBulk {
	return u.Update(func(s *PrincipalUpsert) {
		s.ClearDisplayName()
	})
}

// SetLegacyActorType sets the "legacy_actor_type" field.
func (u *PrincipalUpsertBulk) SetLegacyActorType(v string) *PrincipalUpsertBulk {
	return u.Update(func(s *PrincipalUpsert) {
		s.SetLegacyActorType(v)
	})
}

// UpdateLegacyActorType sets the "legacy_actor_type" field to the value that was provided on create.
func (u *PrincipalUpsertBulk) UpdateLegacyActorType() *PrincipalUpsertBulk {
	return u.Update(func(s *PrincipalUpsert) {
		s.UpdateLegacyActorType()
	})
}

// ClearLegacyActorType clears the value of the "legacy_actor_type" field.
func (u *PrincipalUpsertBulk) ClearLegacyActorType() *PrincipalUpsertBulk {
	return u.Update(func(s *PrincipalUpsert) {
		s.ClearLegacyActorType()
	})
}

// SetLegacyActorID sets the "legacy_actor_id" field.
func (u *PrincipalUpsertBulk) SetLegacyActorID(v string) *PrincipalUpsertBulk {
	return u.Update(func(s *PrincipalUpsert) {
		s.SetLegacyActorID(v)
	})
}

// UpdateLegacyActorID sets the "legacy_actor_id" field to the value that was provided on create.
func (u *PrincipalUpsertBulk) UpdateLegacyActorID() *PrincipalUpsertBulk {
	return u.Update(func(s *PrincipalUpsert) {
		s.UpdateLegacyActorID()
	})
}

// ClearLegacyActorID clears the value of the "legacy_actor_id" field.
func (u *PrincipalUpsertBulk) ClearLegacyActorID() *PrincipalUpsertBulk {
	return u.Update(func(s *PrincipalUpsert) {
		s.ClearLegacyActorID()
	})
}

// SetAPIKeyHash sets the "api_key_hash" field.
func (u *PrincipalUpsertBulk) SetAPIKeyHash(v string) *PrincipalUpsertBulk {
	return u.Update(func(s *PrincipalUpsert) {
		s.SetAPIKeyHash(v)
	})
}

// UpdateAPIKeyHash sets the "api_key_hash" field to the value that was provided on create.
func (u *PrincipalUpsertBulk) UpdateAPIKeyHash() *PrincipalUpsertBulk {
	return u.Update(func(s *PrincipalUpsert) {
		s.UpdateAPIKeyHash()
	})
}

// ClearAPIKeyHash clears the value of the "api_key_hash" field.
func (u *PrincipalUpsertBulk) ClearAPIKeyHash() *PrincipalUpsertBulk {
	return u.Update(func(s *PrincipalUpsert) {
		s.ClearAPIKeyHash()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *PrincipalUpsertBulk) SetCreatedAt(v time.Time) *PrincipalUpsertBulk {
	return u.Update(func(s *PrincipalUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *PrincipalUpsertBulk) UpdateCreatedAt() *PrincipalUpsertBulk {
	return u.Update(func(s *PrincipalUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetRevokedAt sets the "revoked_at" field.
func (u *PrincipalUpsertBulk) SetRevokedAt(v time.Time) *PrincipalUpsertBulk {
	return u.Update(func(s *PrincipalUpsert) {
		s.SetRevokedAt(v)
	})
}

// UpdateRevokedAt sets the "revoked_at" field to the value that was provided on create.
func (u *PrincipalUpsertBulk) UpdateRevokedAt() *PrincipalUpsertBulk {
	return u.Update(func(s *PrincipalUpsert) {
		s.UpdateRevokedAt()
	})
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (u *PrincipalUpsertBulk) ClearRevokedAt() *PrincipalUpsertBulk {
	return u.Update(func(s *PrincipalUpsert) {
		s.ClearRevokedAt()
	})
}

// Exec executes the query.
func (u *PrincipalUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PrincipalCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PrincipalCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PrincipalUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
