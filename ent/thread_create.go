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
	"github.com/missionloop/groundcontrol/ent/thread"
)

// ThreadCreate is the builder for creating a Thread entity.
type ThreadCreate struct {
	config
	mutation *ThreadMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *ThreadCreate) SetWorkspaceID(v string) *ThreadCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetRoomID sets the "room_id" field.
func (_c *ThreadCreate) SetRoomID(v string) *ThreadCreate {
	_c.mutation.SetRoomID(v)
	return _c
}

// SetMessageCount sets the "message_count" field.
func (_c *ThreadCreate) SetMessageCount(v int64) *ThreadCreate {
	_c.mutation.SetMessageCount(v)
	return _c
}

// SetNillableMessageCount sets the "message_count" field if the given value is not nil.
func (_c *ThreadCreate) SetNillableMessageCount(v *int64) *ThreadCreate {
	if v != nil {
		_c.SetMessageCount(*v)
	}
	return _c
}

// SetLastEventID sets the "last_event_id" field.
func (_c *ThreadCreate) SetLastEventID(v string) *ThreadCreate {
	_c.mutation.SetLastEventID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ThreadCreate) SetCreatedAt(v time.Time) *ThreadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ThreadCreate) SetNillableCreatedAt(v *time.Time) *ThreadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ThreadCreate) SetUpdatedAt(v time.Time) *ThreadCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ThreadCreate) SetNillableUpdatedAt(v *time.Time) *ThreadCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ThreadCreate) SetID(v string) *ThreadCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ThreadMutation object of the builder.
func (_c *ThreadCreate) Mutation() *ThreadMutation {
	return _c.mutation
}

// Save creates the Thread in the database.
func (_c *ThreadCreate) Save(ctx context.Context) (*Thread, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ThreadCreate) SaveX(ctx context.Context) *Thread {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThreadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThreadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ThreadCreate) defaults() {
	if _, ok := _c.mutation.MessageCount(); !ok {
		v := thread.DefaultMessageCount
		_c.mutation.SetMessageCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := thread.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := thread.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ThreadCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Thread.workspace_id"`)}
	}
	if _, ok := _c.mutation.RoomID(); !ok {
		return &ValidationError{Name: "room_id", err: errors.New(`ent: missing required field "Thread.room_id"`)}
	}
	if _, ok := _c.mutation.MessageCount(); !ok {
		return &ValidationError{Name: "message_count", err: errors.New(`ent: missing required field "Thread.message_count"`)}
	}
	if _, ok := _c.mutation.LastEventID(); !ok {
		return &ValidationError{Name: "last_event_id", err: errors.New(`ent: missing required field "Thread.last_event_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Thread.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Thread.updated_at"`)}
	}
	return nil
}

func (_c *ThreadCreate) sqlSave(ctx context.Context) (*Thread, error) {
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
			return nil, fmt.Errorf("unexpected Thread.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ThreadCreate) createSpec() (*Thread, *sqlgraph.CreateSpec) {
	var (
		_node = &Thread{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(thread.Table, sqlgraph.NewFieldSpec(thread.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(thread.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.RoomID(); ok {
		_spec.SetField(thread.FieldRoomID, field.TypeString, value)
		_node.RoomID = value
	}
	if value, ok := _c.mutation.MessageCount(); ok {
		_spec.SetField(thread.FieldMessageCount, field.TypeInt64, value)
		_node.MessageCount = value
	}
	if value, ok := _c.mutation.LastEventID(); ok {
		_spec.SetField(thread.FieldLastEventID, field.TypeString, value)
		_node.LastEventID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(thread.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(thread.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Thread.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ThreadUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *ThreadCreate) OnConflict(opts ...sql.ConflictOption) *ThreadUpsertOne {
	_c.conflict = opts
	return &ThreadUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Thread.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ThreadCreate) OnConflictColumns(columns ...string) *ThreadUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ThreadUpsertOne{
		create: _c,
	}
}

type (
	// ThreadUpsertOne is the builder for "upsert"-ing
	//  one Thread node.
	ThreadUpsertOne struct {
		create *ThreadCreate
	}

	// ThreadUpsert is the "OnConflict" setter.
	ThreadUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *ThreadUpsert) SetWorkspaceID(v string) *ThreadUpsert {
	u.Set(thread.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *ThreadUpsert) UpdateWorkspaceID() *ThreadUpsert {
	u.SetExcluded(thread.FieldWorkspaceID)
	return u
}

// SetRoomID sets the "room_id" field.
func (u *ThreadUpsert) SetRoomID(v string) *ThreadUpsert {
	u.Set(thread.FieldRoomID, v)
	return u
}

// UpdateRoomID sets the "room_id" field to the value that was provided on create.
func (u *ThreadUpsert) UpdateRoomID() *ThreadUpsert {
	u.SetExcluded(thread.FieldRoomID)
	return u
}

// SetMessageCount sets the "message_count" field.
func (u *ThreadUpsert) SetMessageCount(v int64) *ThreadUpsert {
	u.Set(thread.FieldMessageCount, v)
	return u
}

// UpdateMessageCount sets the "message_count" field to the value that was provided on create.
func (u *ThreadUpsert) UpdateMessageCount() *ThreadUpsert {
	u.SetExcluded(thread.FieldMessageCount)
	return u
}

// AddMessageCount adds v to the "message_count" field.
func (u *ThreadUpsert) AddMessageCount(v int64) *ThreadUpsert {
	u.Add(thread.FieldMessageCount, v)
	return u
}

// SetLastEventID sets the "last_event_id" field.
func (u *ThreadUpsert) SetLastEventID(v string) *ThreadUpsert {
	u.Set(thread.FieldLastEventID, v)
	return u
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *ThreadUpsert) UpdateLastEventID() *ThreadUpsert {
	u.SetExcluded(thread.FieldLastEventID)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ThreadUpsert) SetCreatedAt(v time.Time) *ThreadUpsert {
	u.Set(thread.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ThreadUpsert) UpdateCreatedAt() *ThreadUpsert {
	u.SetExcluded(thread.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ThreadUpsert) SetUpdatedAt(v time.Time) *ThreadUpsert {
	u.Set(thread.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ThreadUpsert) UpdateUpdatedAt() *ThreadUpsert {
	u.SetExcluded(thread.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Thread.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(thread.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ThreadUpsertOne) UpdateNewValues() *ThreadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(thread.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Thread.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ThreadUpsertOne) Ignore() *ThreadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ThreadUpsertOne) DoNothing() *ThreadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ThreadCreate.OnConflict
// documentation for more info.
func (u *ThreadUpsertOne) Update(set func(*ThreadUpsert)) *ThreadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ThreadUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *ThreadUpsertOne) SetWorkspaceID(v string) *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *ThreadUpsertOne) UpdateWorkspaceID() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetRoomID sets the "room_id" field.
func (u *ThreadUpsertOne) SetRoomID(v string) *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.SetRoomID(v)
	})
}

// UpdateRoomID sets the "room_id" field to the value that was provided on create.
func (u *ThreadUpsertOne) UpdateRoomID() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateRoomID()
	})
}

// SetMessageCount sets the "message_count" field.
func (u *ThreadUpsertOne) SetMessageCount(v int64) *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.SetMessageCount(v)
	})
}

// AddMessageCount adds v to the "message_count" field.
func (u *ThreadUpsertOne) AddMessageCount(v int64) *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.AddMessageCount(v)
	})
}

// UpdateMessageCount sets the "message_count" field to the value that was provided on create.
func (u *ThreadUpsertOne) UpdateMessageCount() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateMessageCount()
	})
}

// SetLastEventID sets the "last_event_id" field.
func (u *ThreadUpsertOne) SetLastEventID(v string) *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.SetLastEventID(v)
	})
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *ThreadUpsertOne) UpdateLastEventID() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateLastEventID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ThreadUpsertOne) SetCreatedAt(v time.Time) *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ThreadUpsertOne) UpdateCreatedAt() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ThreadUpsertOne) SetUpdatedAt(v time.Time) *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ThreadUpsertOne) UpdateUpdatedAt() *ThreadUpsertOne {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ThreadUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ThreadCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ThreadUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ThreadUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ThreadUpsertOne.ID is not supported by MySQL driver. Use ThreadUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ThreadUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ThreadCreateBulk is the builder for creating many Thread entities in bulk.
type ThreadCreateBulk struct {
	config
	err      error
	builders []*ThreadCreate
	conflict []sql.ConflictOption
}

// Save creates the Thread entities in the database.
func (_c *ThreadCreateBulk) Save(ctx context.Context) ([]*Thread, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Thread, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ThreadMutation)
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
func (_c *ThreadCreateBulk) SaveX(ctx context.Context) []*Thread {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThreadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThreadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Thread.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ThreadUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *ThreadCreateBulk) OnConflict(opts ...sql.ConflictOption) *ThreadUpsertBulk {
	_c.conflict = opts
	return &ThreadUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Thread.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ThreadCreateBulk) OnConflictColumns(columns ...string) *ThreadUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ThreadUpsertBulk{
		create: _c,
	}
}

// ThreadUpsertBulk is the builder for "upsert"-ing
// a bulk of Thread nodes.
type ThreadUpsertBulk struct {
	create *ThreadCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Thread.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(thread.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ThreadUpsertBulk) UpdateNewValues() *ThreadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(thread.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Thread.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ThreadUpsertBulk) Ignore() *ThreadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ThreadUpsertBulk) DoNothing() *ThreadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ThreadCreateBulk.OnConflict
// documentation for more info.
func (u *ThreadUpsertBulk) Update(set func(*ThreadUpsert)) *ThreadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ThreadUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *ThreadUpsertBulk) SetWorkspaceID(v string) *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *ThreadUpsertBulk) UpdateWorkspaceID() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetRoomID sets the "room_id" field.
func (u *ThreadUpsertBulk) SetRoomID(v string) *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.SetRoomID(v)
	})
}

// UpdateRoomID sets the "room_id" field to the value that was provided on create.
func (u *ThreadUpsertBulk) UpdateRoomID() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateRoomID()
	})
}

// SetMessageCount sets the "message_count" field.
func (u *ThreadUpsertBulk) SetMessageCount(v int64) *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.SetMessageCount(v)
	})
}

// AddMessageCount adds v to the "message_count" field.
func (u *ThreadUpsertBulk) AddMessageCount(v int64) *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.AddMessageCount(v)
	})
}

// UpdateMessageCount sets the "message_count" field to the value that was provided on create.
func (u *ThreadUpsertBulk) UpdateMessageCount() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateMessageCount()
	})
}

// SetLastEventID sets the "last_event_id" field.
func (u *ThreadUpsertBulk) SetLastEventID(v string) *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.SetLastEventID(v)
	})
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *ThreadUpsertBulk) UpdateLastEventID() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateLastEventID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ThreadUpsertBulk) SetCreatedAt(v time.Time) *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ThreadUpsertBulk) UpdateCreatedAt() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ThreadUpsertBulk) SetUpdatedAt(v time.Time) *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ThreadUpsertBulk) UpdateUpdatedAt() *ThreadUpsertBulk {
	return u.Update(func(s *ThreadUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ThreadUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ThreadCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ThreadCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ThreadUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
