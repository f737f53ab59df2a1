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
	"github.com/missionloop/groundcontrol/ent/evidencemanifest"
)

// EvidenceManifestCreate is the builder for creating a EvidenceManifest entity.
type EvidenceManifestCreate struct {
	config
	mutation *EvidenceManifestMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *EvidenceManifestCreate) SetWorkspaceID(v string) *EvidenceManifestCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *EvidenceManifestCreate) SetRunID(v string) *EvidenceManifestCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetArtifactIds sets the "artifact_ids" field.
func (_c *EvidenceManifestCreate) SetArtifactIds(v []string) *EvidenceManifestCreate {
	_c.mutation.SetArtifactIds(v)
	return _c
}

// SetManifestHash sets the "manifest_hash" field.
func (_c *EvidenceManifestCreate) SetManifestHash(v string) *EvidenceManifestCreate {
	_c.mutation.SetManifestHash(v)
	return _c
}

// SetLastEventID sets the "last_event_id" field.
func (_c *EvidenceManifestCreate) SetLastEventID(v string) *EvidenceManifestCreate {
	_c.mutation.SetLastEventID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EvidenceManifestCreate) SetCreatedAt(v time.Time) *EvidenceManifestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EvidenceManifestCreate) SetNillableCreatedAt(v *time.Time) *EvidenceManifestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EvidenceManifestCreate) SetUpdatedAt(v time.Time) *EvidenceManifestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EvidenceManifestCreate) SetNillableUpdatedAt(v *time.Time) *EvidenceManifestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EvidenceManifestCreate) SetID(v string) *EvidenceManifestCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EvidenceManifestMutation object of the builder.
func (_c *EvidenceManifestCreate) Mutation() *EvidenceManifestMutation {
	return _c.mutation
}

// Save creates the EvidenceManifest in the database.
func (_c *EvidenceManifestCreate) Save(ctx context.Context) (*EvidenceManifest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvidenceManifestCreate) SaveX(ctx context.Context) *EvidenceManifest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvidenceManifestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvidenceManifestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvidenceManifestCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := evidencemanifest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := evidencemanifest.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvidenceManifestCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "EvidenceManifest.workspace_id"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "EvidenceManifest.run_id"`)}
	}
	if _, ok := _c.mutation.ArtifactIds(); !ok {
		return &ValidationError{Name: "artifact_ids", err: errors.New(`ent: missing required field "EvidenceManifest.artifact_ids"`)}
	}
	if _, ok := _c.mutation.ManifestHash(); !ok {
		return &ValidationError{Name: "manifest_hash", err: errors.New(`ent: missing required field "EvidenceManifest.manifest_hash"`)}
	}
	if _, ok := _c.mutation.LastEventID(); !ok {
		return &ValidationError{Name: "last_event_id", err: errors.New(`ent: missing required field "EvidenceManifest.last_event_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EvidenceManifest.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EvidenceManifest.updated_at"`)}
	}
	return nil
}

func (_c *EvidenceManifestCreate) sqlSave(ctx context.Context) (*EvidenceManifest, error) {
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
			return nil, fmt.Errorf("unexpected EvidenceManifest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvidenceManifestCreate) createSpec() (*EvidenceManifest, *sqlgraph.CreateSpec) {
	var (
		_node = &EvidenceManifest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evidencemanifest.Table, sqlgraph.NewFieldSpec(evidencemanifest.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(evidencemanifest.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(evidencemanifest.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.ArtifactIds(); ok {
		_spec.SetField(evidencemanifest.FieldArtifactIds, field.TypeJSON, value)
		_node.ArtifactIds = value
	}
	if value, ok := _c.mutation.ManifestHash(); ok {
		_spec.SetField(evidencemanifest.FieldManifestHash, field.TypeString, value)
		_node.ManifestHash = value
	}
	if value, ok := _c.mutation.LastEventID(); ok {
		_spec.SetField(evidencemanifest.FieldLastEventID, field.TypeString, value)
		_node.LastEventID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(evidencemanifest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(evidencemanifest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EvidenceManifest.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvidenceManifestUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *EvidenceManifestCreate) OnConflict(opts ...sql.ConflictOption) *EvidenceManifestUpsertOne {
	_c.conflict = opts
	return &EvidenceManifestUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EvidenceManifest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvidenceManifestCreate) OnConflictColumns(columns ...string) *EvidenceManifestUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvidenceManifestUpsertOne{
		create: _c,
	}
}

type (
	// EvidenceManifestUpsertOne is the builder for "upsert"-ing
	//  one EvidenceManifest node.
	EvidenceManifestUpsertOne struct {
		create *EvidenceManifestCreate
	}

	// EvidenceManifestUpsert is the "OnConflict" setter.
	EvidenceManifestUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *EvidenceManifestUpsert) SetWorkspaceID(v string) *EvidenceManifestUpsert {
	u.Set(evidencemanifest.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *EvidenceManifestUpsert) UpdateWorkspaceID() *EvidenceManifestUpsert {
	u.SetExcluded(evidencemanifest.FieldWorkspaceID)
	return u
}

// SetRunID sets the "run_id" field.
func (u *EvidenceManifestUpsert) SetRunID(v string) *EvidenceManifestUpsert {
	u.Set(evidencemanifest.FieldRunID, v)
	return u
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *EvidenceManifestUpsert) UpdateRunID() *EvidenceManifestUpsert {
	u.SetExcluded(evidencemanifest.FieldRunID)
	return u
}

// SetArtifactIds sets the "artifact_ids" field.
func (u *EvidenceManifestUpsert) SetArtifactIds(v []string) *EvidenceManifestUpsert {
	u.Set(evidencemanifest.FieldArtifactIds, v)
	return u
}

// UpdateArtifactIds sets the "artifact_ids" field to the value that was provided on create.
func (u *EvidenceManifestUpsert) UpdateArtifactIds() *EvidenceManifestUpsert {
	u.SetExcluded(evidencemanifest.FieldArtifactIds)
	return u
}

// SetManifestHash sets the "manifest_hash" field.
func (u *EvidenceManifestUpsert) SetManifestHash(v string) *EvidenceManifestUpsert {
	u.Set(evidencemanifest.FieldManifestHash, v)
	return u
}

// UpdateManifestHash sets the "manifest_hash" field to the value that was provided on create.
func (u *EvidenceManifestUpsert) UpdateManifestHash() *EvidenceManifestUpsert {
	u.SetExcluded(evidencemanifest.FieldManifestHash)
	return u
}

// SetLastEventID sets the "last_event_id" field.
func (u *EvidenceManifestUpsert) SetLastEventID(v string) *EvidenceManifestUpsert {
	u.Set(evidencemanifest.FieldLastEventID, v)
	return u
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *EvidenceManifestUpsert) UpdateLastEventID() *EvidenceManifestUpsert {
	u.SetExcluded(evidencemanifest.FieldLastEventID)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *EvidenceManifestUpsert) SetCreatedAt(v time.Time) *EvidenceManifestUpsert {
	u.Set(evidencemanifest.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *EvidenceManifestUpsert) UpdateCreatedAt() *EvidenceManifestUpsert {
	u.SetExcluded(evidencemanifest.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EvidenceManifestUpsert) SetUpdatedAt(v time.Time) *EvidenceManifestUpsert {
	u.Set(evidencemanifest.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EvidenceManifestUpsert) UpdateUpdatedAt() *EvidenceManifestUpsert {
	u.SetExcluded(evidencemanifest.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EvidenceManifest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(evidencemanifest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EvidenceManifestUpsertOne) UpdateNewValues() *EvidenceManifestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(evidencemanifest.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EvidenceManifest.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EvidenceManifestUpsertOne) Ignore() *EvidenceManifestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvidenceManifestUpsertOne) DoNothing() *EvidenceManifestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvidenceManifestCreate.OnConflict
// documentation for more info.
func (u *EvidenceManifestUpsertOne) Update(set func(*EvidenceManifestUpsert)) *EvidenceManifestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvidenceManifestUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *EvidenceManifestUpsertOne) SetWorkspaceID(v string) *EvidenceManifestUpsertOne {
	return u.Update(func(s *EvidenceManifestUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *EvidenceManifestUpsertOne) UpdateWorkspaceID() *EvidenceManifestUpsertOne {
	return u.Update(func(s *EvidenceManifestUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetRunID sets the "run_id" field.
func (u *EvidenceManifestUpsertOne) SetRunID(v string) *EvidenceManifestUpsertOne {
	return u.Update(func(s *EvidenceManifestUpsert) {
		s.SetRunID(v)
	})
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *EvidenceManifestUpsertOne) UpdateRunID() *EvidenceManifestUpsertOne {
	return u.Update(func(s *EvidenceManifestUpsert) {
		s.UpdateRunID()
	})
}

// SetArtifactIds sets the "artifact_ids" field.
func (u *EvidenceManifestUpsertOne) SetArtifactIds(v []string) *EvidenceManifestUpsertOne {
	return u.Update(func(s *EvidenceManifestUpsert) {
		s.SetArtifactIds(v)
	})
}

// UpdateArtifactIds sets the "artifact_ids" field to the value that was provided on create.
func (u *EvidenceManifestUpsertOne) UpdateArtifactIds() *EvidenceManifestUpsertOne {
	return u.Update(func(s *EvidenceManifestUpsert) {
		s.UpdateArtifactIds()
	})
}

// SetManifestHash sets the "manifest_hash" field.
func (u *EvidenceManifestUpsertOne) SetManifestHash(v string) *EvidenceManifestUpsertOne {
	return u.Update(func(s *EvidenceManifestUpsert) {
		s.SetManifestHash(v)
	})
}

// UpdateManifestHash sets the "manifest_hash" field to the value that was provided on create.
func (u *EvidenceManifestUpsertOne) UpdateManifestHash() *EvidenceManifestUpsertOne {
	return u.Update(func(s *EvidenceManifestUpsert) {
		s.UpdateManifestHash()
	})
}

// SetLastEventID sets the "last_event_id" field.
func (u *EvidenceManifestUpsertOne) SetLastEventID(v string) *EvidenceManifestUpsertOne {
	return u.Update(func(s *EvidenceManifestUpsert) {
		s.SetLastEventID(v)
	})
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *EvidenceManifestUpsertOne) UpdateLastEventID() *EvidenceManifestUpsertOne {
	return u.Update(func(s *EvidenceManifestUpsert) {
		s.UpdateLastEventID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *EvidenceManifestUpsertOne) SetCreatedAt(v time.Time) *EvidenceManifestUpsertOne {
	return u.Update(func(s *EvidenceManifestUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *EvidenceManifestUpsertOne) UpdateCreatedAt() *EvidenceManifestUpsertOne {
	return u.Update(func(s *EvidenceManifestUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EvidenceManifestUpsertOne) SetUpdatedAt(v time.Time) *EvidenceManifestUpsertOne {
	return u.Update(func(s *EvidenceManifestUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EvidenceManifestUpsertOne) UpdateUpdatedAt() *EvidenceManifestUpsertOne {
	return u.Update(func(s *EvidenceManifestUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EvidenceManifestUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvidenceManifestCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvidenceManifestUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EvidenceManifestUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EvidenceManifestUpsertOne.ID is not supported by MySQL driver. Use EvidenceManifestUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EvidenceManifestUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EvidenceManifestCreateBulk is the builder for creating many EvidenceManifest entities in bulk.
type EvidenceManifestCreateBulk struct {
	config
	err      error
	builders []*EvidenceManifestCreate
	conflict []sql.ConflictOption
}

// Save creates the EvidenceManifest entities in the database.
func (_c *EvidenceManifestCreateBulk) Save(ctx context.Context) ([]*EvidenceManifest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvidenceManifest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvidenceManifestMutation)
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
func (_c *EvidenceManifestCreateBulk) SaveX(ctx context.Context) []*EvidenceManifest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvidenceManifestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvidenceManifestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EvidenceManifest.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvidenceManifestUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *EvidenceManifestCreateBulk) OnConflict(opts ...sql.ConflictOption) *EvidenceManifestUpsertBulk {
	_c.conflict = opts
	return &EvidenceManifestUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EvidenceManifest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvidenceManifestCreateBulk) OnConflictColumns(columns ...string) *EvidenceManifestUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvidenceManifestUpsertBulk{
		create: _c,
	}
}

// EvidenceManifestUpsertBulk is the builder for "upsert"-ing
// a bulk of EvidenceManifest nodes.
type EvidenceManifestUpsertBulk struct {
	create *EvidenceManifestCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EvidenceManifest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(evidencemanifest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EvidenceManifestUpsertBulk) UpdateNewValues() *EvidenceManifestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(evidencemanifest.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EvidenceManifest.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EvidenceManifestUpsertBulk) Ignore() *EvidenceManifestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvidenceManifestUpsertBulk) DoNothing() *EvidenceManifestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvidenceManifestCreateBulk.OnConflict
// documentation for more info.
func (u *EvidenceManifestUpsertBulk) Update(set func(*EvidenceManifestUpsert)) *EvidenceManifestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvidenceManifestUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *EvidenceManifestUpsertBulk) SetWorkspaceID(v string) *EvidenceManifestUpsertBulk {
	return u.Update(func(s *EvidenceManifestUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *EvidenceManifestUpsertBulk) UpdateWorkspaceID() *EvidenceManifestUpsertBulk {
	return u.Update(func(s *EvidenceManifestUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetRunID sets the "run_id" field.
func (u *EvidenceManifestUpsertBulk) SetRunID(v string) *EvidenceManifestUpsertBulk {
	return u.Update(func(s *EvidenceManifestUpsert) {
		s.SetRunID(v)
	})
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *EvidenceManifestUpsertBulk) UpdateRunID() *EvidenceManifestUpsertBulk {
	return u.Update(func(s *EvidenceManifestUpsert) {
		s.UpdateRunID()
	})
}

// SetArtifactIds sets the "artifact_ids" field.
func (u *EvidenceManifestUpsertBulk) SetArtifactIds(v []string) *EvidenceManifestUpsertBulk {
	return u.Update(func(s *EvidenceManifestUpsert) {
		s.SetArtifactIds(v)
	})
}

// UpdateArtifactIds sets the "artifact_ids" field to the value that was provided on create.
func (u *EvidenceManifestUpsertBulk) UpdateArtifactIds() *EvidenceManifestUpsertBulk {
	return u.Update(func(s *EvidenceManifestUpsert) {
		s.UpdateArtifactIds()
	})
}

// SetManifestHash sets the "manifest_hash" field.
func (u *EvidenceManifestUpsertBulk) SetManifestHash(v string) *EvidenceManifestUpsertBulk {
	return u.Update(func(s *EvidenceManifestUpsert) {
		s.SetManifestHash(v)
	})
}

// UpdateManifestHash sets the "manifest_hash" field to the value that was provided on create.
func (u *EvidenceManifestUpsertBulk) UpdateManifestHash() *EvidenceManifestUpsertBulk {
	return u.Update(func(s *EvidenceManifestUpsert) {
		s.UpdateManifestHash()
	})
}

// SetLastEventID sets the "last_event_id" field.
func (u *EvidenceManifestUpsertBulk) SetLastEventID(v string) *EvidenceManifestUpsertBulk {
	return u.Update(func(s *EvidenceManifestUpsert) {
		s.SetLastEventID(v)
	})
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *EvidenceManifestUpsertBulk) UpdateLastEventID() *EvidenceManifestUpsertBulk {
	return u.Update(func(s *EvidenceManifestUpsert) {
		s.UpdateLastEventID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *EvidenceManifestUpsertBulk) SetCreatedAt(v time.Time) *EvidenceManifestUpsertBulk {
	return u.Update(func(s *EvidenceManifestUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *EvidenceManifestUpsertBulk) UpdateCreatedAt() *EvidenceManifestUpsertBulk {
	return u.Update(func(s *EvidenceManifestUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EvidenceManifestUpsertBulk) SetUpdatedAt(v time.Time) *EvidenceManifestUpsertBulk {
	return u.Update(func(s *EvidenceManifestUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EvidenceManifestUpsertBulk) UpdateUpdatedAt() *EvidenceManifestUpsertBulk {
	return u.Update(func(s *EvidenceManifestUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EvidenceManifestUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EvidenceManifestCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvidenceManifestCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvidenceManifestUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
