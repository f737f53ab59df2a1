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
	"github.com/missionloop/groundcontrol/ent/owner"
)

// OwnerCreate is the builder for creating a Owner entity.
type OwnerCreate struct {
	config
	mutation *OwnerMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *OwnerCreate) SetWorkspaceID(v string) *OwnerCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *OwnerCreate) SetEmail(v string) *OwnerCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetPrincipalID sets the "principal_id" field.
func (_c *OwnerCreate) SetPrincipalID(v string) *OwnerCreate {
	_c.mutation.SetPrincipalID(v)
	return _c
}

// SetPassphraseHash sets the "passphrase_hash" field.
func (_c *OwnerCreate) SetPassphraseHash(v string) *OwnerCreate {
	_c.mutation.SetPassphraseHash(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OwnerCreate) SetCreatedAt(v time.Time) *OwnerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OwnerCreate) SetNillableCreatedAt(v *time.Time) *OwnerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OwnerCreate) SetID(v string) *OwnerCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the OwnerMutation object of the builder.
func (_c *OwnerCreate) Mutation() *OwnerMutation {
	return _c.mutation
}

// Save creates the Owner in the database.
func (_c *OwnerCreate) Save(ctx context.Context) (*Owner, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OwnerCreate) SaveX(ctx context.Context) *Owner {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OwnerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OwnerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OwnerCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := owner.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OwnerCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Owner.workspace_id"`)}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Owner.email"`)}
	}
	if _, ok := _c.mutation.PrincipalID(); !ok {
		return &ValidationError{Name: "principal_id", err: errors.New(`ent: missing required field "Owner.principal_id"`)}
	}
	if _, ok := _c.mutation.PassphraseHash(); !ok {
		return &ValidationError{Name: "passphrase_hash", err: errors.New(`ent: missing required field "Owner.passphrase_hash"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Owner.created_at"`)}
	}
	return nil
}

func (_c *OwnerCreate) sqlSave(ctx context.Context) (*Owner, error) {
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
			return nil, fmt.Errorf("unexpected Owner.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OwnerCreate) createSpec() (*Owner, *sqlgraph.CreateSpec) {
	var (
		_node = &Owner{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(owner.Table, sqlgraph.NewFieldSpec(owner.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(owner.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(owner.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.PrincipalID(); ok {
		_spec.SetField(owner.FieldPrincipalID, field.TypeString, value)
		_node.PrincipalID = value
	}
	if value, ok := _c.mutation.PassphraseHash(); ok {
		_spec.SetField(owner.FieldPassphraseHash, field.TypeString, value)
		_node.PassphraseHash = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(owner.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Owner.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OwnerUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *OwnerCreate) OnConflict(opts ...sql.ConflictOption) *OwnerUpsertOne {
	_c.conflict = opts
	return &OwnerUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Owner.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OwnerCreate) OnConflictColumns(columns ...string) *OwnerUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OwnerUpsertOne{
		create: _c,
	}
}

type (
	// OwnerUpsertOne is the builder for "upsert"-ing
	//  one Owner node.
	OwnerUpsertOne struct {
		create *OwnerCreate
	}

	// OwnerUpsert is the "OnConflict" setter.
	OwnerUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *OwnerUpsert) SetWorkspaceID(v string) *OwnerUpsert {
	u.Set(owner.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *OwnerUpsert) UpdateWorkspaceID() *OwnerUpsert {
	u.SetExcluded(owner.FieldWorkspaceID)
	return u
}

// SetEmail sets the "email" field.
func (u *OwnerUpsert) SetEmail(v string) *OwnerUpsert {
	u.Set(owner.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *OwnerUpsert) UpdateEmail() *OwnerUpsert {
	u.SetExcluded(owner.FieldEmail)
	return u
}

// SetPrincipalID sets the "principal_id" field.
func (u *OwnerUpsert) SetPrincipalID(v string) *OwnerUpsert {
	u.Set(owner.FieldPrincipalID, v)
	return u
}

// UpdatePrincipalID sets the "principal_id" field to the value that was provided on create.
func (u *OwnerUpsert) UpdatePrincipalID() *OwnerUpsert {
	u.SetExcluded(owner.FieldPrincipalID)
	return u
}

// SetPassphraseHash sets the "passphrase_hash" field.
func (u *OwnerUpsert) SetPassphraseHash(v string) *OwnerUpsert {
	u.Set(owner.FieldPassphraseHash, v)
	return u
}

// UpdatePassphraseHash sets the "passphrase_hash" field to the value that was provided on create.
func (u *OwnerUpsert) UpdatePassphraseHash() *OwnerUpsert {
	u.SetExcluded(owner.FieldPassphraseHash)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *OwnerUpsert) SetCreatedAt(v time.Time) *OwnerUpsert {
	u.Set(owner.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *OwnerUpsert) UpdateCreatedAt() *OwnerUpsert {
	u.SetExcluded(owner.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Owner.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(owner.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OwnerUpsertOne) UpdateNewValues() *OwnerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(owner.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Owner.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OwnerUpsertOne) Ignore() *OwnerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OwnerUpsertOne) DoNothing() *OwnerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OwnerCreate.OnConflict
// documentation for more info.
func (u *OwnerUpsertOne) Update(set func(*OwnerUpsert)) *OwnerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OwnerUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *OwnerUpsertOne) SetWorkspaceID(v string) *OwnerUpsertOne {
	return u.Update(func(s *OwnerUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *OwnerUpsertOne) UpdateWorkspaceID() *OwnerUpsertOne {
	return u.Update(func(s *OwnerUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetEmail sets the "email" field.
func (u *OwnerUpsertOne) SetEmail(v string) *OwnerUpsertOne {
	return u.Update(func(s *OwnerUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *OwnerUpsertOne) UpdateEmail() *OwnerUpsertOne {
	return u.Update(func(s *OwnerUpsert) {
		s.UpdateEmail()
	})
}

// SetPrincipalID sets the "principal_id" field.
func (u *OwnerUpsertOne) SetPrincipalID(v string) *OwnerUpsertOne {
	return u.Update(func(s *OwnerUpsert) {
		s.SetPrincipalID(v)
	})
}

// UpdatePrincipalID sets the "principal_id" field to the value that was provided on create.
func (u *OwnerUpsertOne) UpdatePrincipalID() *OwnerUpsertOne {
	return u.Update(func(s *OwnerUpsert) {
		s.UpdatePrincipalID()
	})
}

// SetPassphraseHash sets the "passphrase_hash" field.
func (u *OwnerUpsertOne) SetPassphraseHash(v string) *OwnerUpsertOne {
	return u.Update(func(s *OwnerUpsert) {
		s.SetPassphraseHash(v)
	})
}

// UpdatePassphraseHash sets the "passphrase_hash" field to the value that was provided on create.
func (u *OwnerUpsertOne) UpdatePassphraseHash() *OwnerUpsertOne {
	return u.Update(func(s *OwnerUpsert) {
		s.UpdatePassphraseHash()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *OwnerUpsertOne) SetCreatedAt(v time.Time) *OwnerUpsertOne {
	return u.Update(func(s *OwnerUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *OwnerUpsertOne) UpdateCreatedAt() *OwnerUpsertOne {
	return u.Update(func(s *OwnerUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *OwnerUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OwnerCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OwnerUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OwnerUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: OwnerUpsertOne.ID is not supported by MySQL driver. Use OwnerUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OwnerUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OwnerCreateBulk is the builder for creating many Owner entities in bulk.
type OwnerCreateBulk struct {
	config
	err      error
	builders []*OwnerCreate
	conflict []sql.ConflictOption
}

// Save creates the Owner entities in the database.
func (_c *OwnerCreateBulk) Save(ctx context.Context) ([]*Owner, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Owner, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OwnerMutation)
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
func (_c *OwnerCreateBulk) SaveX(ctx context.Context) []*Owner {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OwnerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OwnerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Owner.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OwnerUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *OwnerCreateBulk) OnConflict(opts ...sql.ConflictOption) *OwnerUpsertBulk {
	_c.conflict = opts
	return &OwnerUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Owner.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OwnerCreateBulk) OnConflictColumns(columns ...string) *OwnerUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OwnerUpsertBulk{
		create: _c,
	}
}

// OwnerUpsertBulk is the builder for "upsert"-ing
// a bulk of Owner nodes.
type OwnerUpsertBulk struct {
	create *OwnerCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Owner.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(owner.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OwnerUpsertBulk) UpdateNewValues() *OwnerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(owner.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Owner.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OwnerUpsertBulk) Ignore() *OwnerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OwnerUpsertBulk) DoNothing() *OwnerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OwnerCreateBulk.OnConflict
// documentation for more info.
func (u *OwnerUpsertBulk) Update(set func(*OwnerUpsert)) *OwnerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OwnerUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *OwnerUpsertBulk) SetWorkspaceID(v string) *OwnerUpsertBulk {
	return u.Update(func(s *OwnerUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *OwnerUpsertBulk) UpdateWorkspaceID() *OwnerUpsertBulk {
	return u.Update(func(s *OwnerUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetEmail sets the "email" field.
func (u *OwnerUpsertBulk) SetEmail(v string) *OwnerUpsertBulk {
	return u.Update(func(s *OwnerUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *OwnerUpsertBulk) UpdateEmail() *OwnerUpsertBulk {
	return u.Update(func(s *OwnerUpsert) {
		s.UpdateEmail()
	})
}

// SetPrincipalID sets the "principal_id" field.
func (u *OwnerUpsertBulk) SetPrincipalID(v string) *OwnerUpsertBulk {
	return u.Update(func(s *OwnerUpsert) {
		s.SetPrincipalID(v)
	})
}

// UpdatePrincipalID sets the "principal_id" field to the value that was provided on create.
func (u *OwnerUpsertBulk) UpdatePrincipalID() *OwnerUpsertBulk {
	return u.Update(func(s *OwnerUpsert) {
		s.UpdatePrincipalID()
	})
}

// SetPassphraseHash sets the "passphrase_hash" field.
func (u *OwnerUpsertBulk) SetPassphraseHash(v string) *OwnerUpsertBulk {
	return u.Update(func(s *OwnerUpsert) {
		s.SetPassphraseHash(v)
	})
}

// UpdatePassphraseHash sets the "passphrase_hash" field to the value that was provided on create.
func (u *OwnerUpsertBulk) UpdatePassphraseHash() *OwnerUpsertBulk {
	return u.Update(func(s *OwnerUpsert) {
		s.UpdatePassphraseHash()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *OwnerUpsertBulk) SetCreatedAt(v time.Time) *OwnerUpsertBulk {
	return u.Update(func(s *OwnerUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *OwnerUpsertBulk) UpdateCreatedAt() *OwnerUpsertBulk {
	return u.Update(func(s *OwnerUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *OwnerUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the OwnerCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OwnerCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OwnerUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
