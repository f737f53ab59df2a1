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
	"github.com/missionloop/groundcontrol/ent/agentidentity"
)

// AgentIdentityCreate is the builder for creating a AgentIdentity entity.
type AgentIdentityCreate struct {
	config
	mutation *AgentIdentityMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *AgentIdentityCreate) SetWorkspaceID(v string) *AgentIdentityCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetPrincipalID sets the "principal_id" field.
func (_c *AgentIdentityCreate) SetPrincipalID(v string) *AgentIdentityCreate {
	_c.mutation.SetPrincipalID(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *AgentIdentityCreate) SetDisplayName(v string) *AgentIdentityCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_c *AgentIdentityCreate) SetNillableDisplayName(v *string) *AgentIdentityCreate {
	if v != nil {
		_c.SetDisplayName(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentIdentityCreate) SetCreatedAt(v time.Time) *AgentIdentityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentIdentityCreate) SetNillableCreatedAt(v *time.Time) *AgentIdentityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRevokedAt sets the "revoked_at" field.
func (_c *AgentIdentityCreate) SetRevokedAt(v time.Time) *AgentIdentityCreate {
	_c.mutation.SetRevokedAt(v)
	return _c
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_c *AgentIdentityCreate) SetNillableRevokedAt(v *time.Time) *AgentIdentityCreate {
	if v != nil {
		_c.SetRevokedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentIdentityCreate) SetID(v string) *AgentIdentityCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentIdentityMutation object of the builder.
func (_c *AgentIdentityCreate) Mutation() *AgentIdentityMutation {
	return _c.mutation
}

// Save creates the AgentIdentity in the database.
func (_c *AgentIdentityCreate) Save(ctx context.Context) (*AgentIdentity, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentIdentityCreate) SaveX(ctx context.Context) *AgentIdentity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentIdentityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentIdentityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentIdentityCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentidentity.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentIdentityCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "AgentIdentity.workspace_id"`)}
	}
	if _, ok := _c.mutation.PrincipalID(); !ok {
		return &ValidationError{Name: "principal_id", err: errors.New(`ent: missing required field "AgentIdentity.principal_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentIdentity.created_at"`)}
	}
	return nil
}

func (_c *AgentIdentityCreate) sqlSave(ctx context.Context) (*AgentIdentity, error) {
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
			return nil, fmt.Errorf("unexpected AgentIdentity.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentIdentityCreate) createSpec() (*AgentIdentity, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentIdentity{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentidentity.Table, sqlgraph.NewFieldSpec(agentidentity.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(agentidentity.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.PrincipalID(); ok {
		_spec.SetField(agentidentity.FieldPrincipalID, field.TypeString, value)
		_node.PrincipalID = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(agentidentity.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentidentity.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.RevokedAt(); ok {
		_spec.SetField(agentidentity.FieldRevokedAt, field.TypeTime, value)
		_node.RevokedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentIdentity.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentIdentityUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentIdentityCreate) OnConflict(opts ...sql.ConflictOption) *AgentIdentityUpsertOne {
	_c.conflict = opts
	return &AgentIdentityUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentIdentity.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentIdentityCreate) OnConflictColumns(columns ...string) *AgentIdentityUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentIdentityUpsertOne{
		create: _c,
	}
}

type (
	// AgentIdentityUpsertOne is the builder for "upsert"-ing
	//  one AgentIdentity node.
	AgentIdentityUpsertOne struct {
		create *AgentIdentityCreate
	}

	// AgentIdentityUpsert is the "OnConflict" setter.
	AgentIdentityUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *AgentIdentityUpsert) SetWorkspaceID(v string) *AgentIdentityUpsert {
	u.Set(agentidentity.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *AgentIdentityUpsert) UpdateWorkspaceID() *AgentIdentityUpsert {
	u.SetExcluded(agentidentity.FieldWorkspaceID)
	return u
}

// SetPrincipalID sets the "principal_id" field.
func (u *AgentIdentityUpsert) SetPrincipalID(v string) *AgentIdentityUpsert {
	u.Set(agentidentity.FieldPrincipalID, v)
	return u
}

// UpdatePrincipalID sets the "principal_id" field to the value that was provided on create.
func (u *AgentIdentityUpsert) UpdatePrincipalID() *AgentIdentityUpsert {
	u.SetExcluded(agentidentity.FieldPrincipalID)
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *AgentIdentityUpsert) SetDisplayName(v string) *AgentIdentityUpsert {
	u.Set(agentidentity.FieldDisplayName, v)
	return u
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *AgentIdentityUpsert) UpdateDisplayName() *AgentIdentityUpsert {
	u.SetExcluded(agentidentity.FieldDisplayName)
	return u
}

// ClearDisplayName clears the value of the "display_name" field.
func (u *AgentIdentityUpsert) ClearDisplayName() *AgentIdentityUpsert {
	u.SetNull(agentidentity.FieldDisplayName)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *AgentIdentityUpsert) SetCreatedAt(v time.Time) *AgentIdentityUpsert {
	u.Set(agentidentity.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AgentIdentityUpsert) UpdateCreatedAt() *AgentIdentityUpsert {
	u.SetExcluded(agentidentity.FieldCreatedAt)
	return u
}

// SetRevokedAt sets the "revoked_at" field.
func (u *AgentIdentityUpsert) SetRevokedAt(v time.Time) *AgentIdentityUpsert {
	u.Set(agentidentity.FieldRevokedAt, v)
	return u
}

// UpdateRevokedAt sets the "revoked_at" field to the value that was provided on create.
func (u *AgentIdentityUpsert) UpdateRevokedAt() *AgentIdentityUpsert {
	u.SetExcluded(agentidentity.FieldRevokedAt)
	return u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (u *AgentIdentityUpsert) ClearRevokedAt() *AgentIdentityUpsert {
	u.SetNull(agentidentity.FieldRevokedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AgentIdentity.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentidentity.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentIdentityUpsertOne) UpdateNewValues() *AgentIdentityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agentidentity.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentIdentity.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentIdentityUpsertOne) Ignore() *AgentIdentityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentIdentityUpsertOne) DoNothing() *AgentIdentityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentIdentityCreate.OnConflict
// documentation for more info.
func (u *AgentIdentityUpsertOne) Update(set func(*AgentIdentityUpsert)) *AgentIdentityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentIdentityUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *AgentIdentityUpsertOne) SetWorkspaceID(v string) *AgentIdentityUpsertOne {
	return u.Update(func(s *AgentIdentityUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *AgentIdentityUpsertOne) UpdateWorkspaceID() *AgentIdentityUpsertOne {
	return u.Update(func(s *AgentIdentityUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetPrincipalID sets the "principal_id" field.
func (u *AgentIdentityUpsertOne) SetPrincipalID(v string) *AgentIdentityUpsertOne {
	return u.Update(func(s *AgentIdentityUpsert) {
		s.SetPrincipalID(v)
	})
}

// UpdatePrincipalID sets the "principal_id" field to the value that was provided on create.
func (u *AgentIdentityUpsertOne) UpdatePrincipalID() *AgentIdentityUpsertOne {
	return u.Update(func(s *AgentIdentityUpsert) {
		s.UpdatePrincipalID()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *AgentIdentityUpsertOne) SetDisplayName(v string) *AgentIdentityUpsertOne {
	return u.Update(func(s *AgentIdentityUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *AgentIdentityUpsertOne) UpdateDisplayName() *AgentIdentityUpsertOne {
	return u.Update(func(s *AgentIdentityUpsert) {
		s.UpdateDisplayName()
	})
}

// ClearDisplayName clears the value of the "display_name" field.
func (u *AgentIdentityUpsertOne) ClearDisplayName() *AgentIdentityUpsertOne {
	return u.Update(func(s *AgentIdentityUpsert) {
		s.ClearDisplayName()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *AgentIdentityUpsertOne) SetCreatedAt(v time.Time) *AgentIdentityUpsertOne {
	return u.Update(func(s *AgentIdentityUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AgentIdentityUpsertOne) UpdateCreatedAt() *AgentIdentityUpsertOne {
	return u.Update(func(s *AgentIdentityUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetRevokedAt sets the "revoked_at" field.
func (u *AgentIdentityUpsertOne) SetRevokedAt(v time.Time) *AgentIdentityUpsertOne {
	return u.Update(func(s *AgentIdentityUpsert) {
		s.SetRevokedAt(v)
	})
}

// UpdateRevokedAt sets the "revoked_at" field to the value that was provided on create.
func (u *AgentIdentityUpsertOne) UpdateRevokedAt() *AgentIdentityUpsertOne {
	return u.Update(func(s *AgentIdentityUpsert) {
		s.UpdateRevokedAt()
	})
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (u *AgentIdentityUpsertOne) ClearRevokedAt() *AgentIdentityUpsertOne {
	return u.Update(func(s *AgentIdentityUpsert) {
		s.ClearRevokedAt()
	})
}

// Exec executes the query.
func (u *AgentIdentityUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentIdentityCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentIdentityUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentIdentityUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentIdentityUpsertOne.ID is not supported by MySQL driver. Use AgentIdentityUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentIdentityUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentIdentityCreateBulk is the builder for creating many AgentIdentity entities in bulk.
type AgentIdentityCreateBulk struct {
	config
	err      error
	builders []*AgentIdentityCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentIdentity entities in the database.
func (_c *AgentIdentityCreateBulk) Save(ctx context.Context) ([]*AgentIdentity, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentIdentity, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentIdentityMutation)
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
func (_c *AgentIdentityCreateBulk) SaveX(ctx context.Context) []*AgentIdentity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentIdentityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentIdentityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentIdentity.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentIdentityUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentIdentityCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentIdentityUpsertBulk {
	_c.conflict = opts
	return &AgentIdentityUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentIdentity.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentIdentityCreateBulk) OnConflictColumns(columns ...string) *AgentIdentityUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentIdentityUpsertBulk{
		create: _c,
	}
}

// AgentIdentityUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentIdentity nodes.
type AgentIdentityUpsertBulk struct {
	create *AgentIdentityCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentIdentity.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentidentity.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentIdentityUpsertBulk) UpdateNewValues() *AgentIdentityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agentidentity.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentIdentity.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentIdentityUpsertBulk) Ignore() *AgentIdentityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentIdentityUpsertBulk) DoNothing() *AgentIdentityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentIdentityCreateBulk.OnConflict
// documentation for more info.
func (u *AgentIdentityUpsertBulk) Update(set func(*AgentIdentityUpsert)) *AgentIdentityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentIdentityUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *AgentIdentityUpsertBulk) SetWorkspaceID(v string) *AgentIdentityUpsertBulk {
	return u.Update(func(s *AgentIdentityUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *AgentIdentityUpsertBulk) UpdateWorkspaceID() *AgentIdentityUpsertBulk {
	return u.Update(func(s *AgentIdentityUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetPrincipalID sets the "principal_id" field.
func (u *AgentIdentityUpsertBulk) SetPrincipalID(v string) *AgentIdentityUpsertBulk {
	return u.Update(func(s *AgentIdentityUpsert) {
		s.SetPrincipalID(v)
	})
}

// UpdatePrincipalID sets the "principal_id" field to the value that was provided on create.
func (u *AgentIdentityUpsertBulk) UpdatePrincipalID() *AgentIdentityUpsertBulk {
	return u.Update(func(s *AgentIdentityUpsert) {
		s.UpdatePrincipalID()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *AgentIdentityUpsertBulk) SetDisplayName(v string) *AgentIdentityUpsertBulk {
	return u.Update(func(s *AgentIdentityUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *AgentIdentityUpsertBulk) UpdateDisplayName() *AgentIdentityUpsertBulk {
	return u.Update(func(s *AgentIdentityUpsert) {
		s.UpdateDisplayName()
	})
}

// ClearDisplayName clears the value of the "display_name" field.
func (u *AgentIdentityUpsertBulk) ClearDisplayName() *AgentIdentityUpsertBulk {
	return u.Update(func(s *AgentIdentityUpsert) {
		s.ClearDisplayName()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *AgentIdentityUpsertBulk) SetCreatedAt(v time.Time) *AgentIdentityUpsertBulk {
	return u.Update(func(s *AgentIdentityUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AgentIdentityUpsertBulk) UpdateCreatedAt() *AgentIdentityUpsertBulk {
	return u.Update(func(s *AgentIdentityUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetRevokedAt sets the "revoked_at" field.
func (u *AgentIdentityUpsertBulk) SetRevokedAt(v time.Time) *AgentIdentityUpsertBulk {
	return u.Update(func(s *AgentIdentityUpsert) {
		s.SetRevokedAt(v)
	})
}

// UpdateRevokedAt sets the "revoked_at" field to the value that was provided on create.
func (u *AgentIdentityUpsertBulk) UpdateRevokedAt() *AgentIdentityUpsertBulk {
	return u.Update(func(s *AgentIdentityUpsert) {
		s.UpdateRevokedAt()
	})
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (u *AgentIdentityUpsertBulk) ClearRevokedAt() *AgentIdentityUpsertBulk {
	return u.Update(func(s *AgentIdentityUpsert) {
		s.ClearRevokedAt()
	})
}

// Exec executes the query.
func (u *AgentIdentityUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentIdentityCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentIdentityCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentIdentityUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
