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
	"github.com/missionloop/groundcontrol/ent/room"
)

// RoomCreate is the builder for creating a Room entity.
type RoomCreate struct {
	config
	mutation *RoomMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *RoomCreate) SetWorkspaceID(v string) *RoomCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *RoomCreate) SetTitle(v string) *RoomCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *RoomCreate) SetNillableTitle(v *string) *RoomCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetMessageCount sets the "message_count" field.
func (_c *RoomCreate) SetMessageCount(v int64) *RoomCreate {
	_c.mutation.SetMessageCount(v)
	return _c
}

// SetNillableMessageCount sets the "message_count" field if the given value is not nil.
func (_c *RoomCreate) SetNillableMessageCount(v *int64) *RoomCreate {
	if v != nil {
		_c.SetMessageCount(*v)
	}
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *RoomCreate) SetCorrelationID(v string) *RoomCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_c *RoomCreate) SetNillableCorrelationID(v *string) *RoomCreate {
	if v != nil {
		_c.SetCorrelationID(*v)
	}
	return _c
}

// SetLastEventID sets the "last_event_id" field.
func (_c *RoomCreate) SetLastEventID(v string) *RoomCreate {
	_c.mutation.SetLastEventID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RoomCreate) SetCreatedAt(v time.Time) *RoomCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RoomCreate) SetNillableCreatedAt(v *time.Time) *RoomCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RoomCreate) SetUpdatedAt(v time.Time) *RoomCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RoomCreate) SetNillableUpdatedAt(v *time.Time) *RoomCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RoomCreate) SetID(v string) *RoomCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RoomMutation object of the builder.
func (_c *RoomCreate) Mutation() *RoomMutation {
	return _c.mutation
}

// Save creates the Room in the database.
func (_c *RoomCreate) Save(ctx context.Context) (*Room, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoomCreate) SaveX(ctx context.Context) *Room {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoomCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoomCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoomCreate) defaults() {
	if _, ok := _c.mutation.MessageCount(); !ok {
		v := room.DefaultMessageCount
		_c.mutation.SetMessageCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := room.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := room.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoomCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Room.workspace_id"`)}
	}
	if _, ok := _c.mutation.MessageCount(); !ok {
		return &ValidationError{Name: "message_count", err: errors.New(`ent: missing required field "Room.message_count"`)}
	}
	if _, ok := _c.mutation.LastEventID(); !ok {
		return &ValidationError{Name: "last_event_id", err: errors.New(`ent: missing required field "Room.last_event_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Room.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Room.updated_at"`)}
	}
	return nil
}

func (_c *RoomCreate) sqlSave(ctx context.Context) (*Room, error) {
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
			return nil, fmt.Errorf("unexpected Room.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RoomCreate) createSpec() (*Room, *sqlgraph.CreateSpec) {
	var (
		_node = &Room{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(room.Table, sqlgraph.NewFieldSpec(room.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(room.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(room.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.MessageCount(); ok {
		_spec.SetField(room.FieldMessageCount, field.TypeInt64, value)
		_node.MessageCount = value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(room.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.LastEventID(); ok {
		_spec.SetField(room.FieldLastEventID, field.TypeString, value)
		_node.LastEventID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(room.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(room.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Room.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RoomUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *RoomCreate) OnConflict(opts ...sql.ConflictOption) *RoomUpsertOne {
	_c.conflict = opts
	return &RoomUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Room.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RoomCreate) OnConflictColumns(columns ...string) *RoomUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RoomUpsertOne{
		create: _c,
	}
}

type (
	// RoomUpsertOne is the builder for "upsert"-ing
	//  one Room node.
	RoomUpsertOne struct {
		create *RoomCreate
	}

	// RoomUpsert is the "OnConflict" setter.
	RoomUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *RoomUpsert) SetWorkspaceID(v string) *RoomUpsert {
	u.Set(room.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *RoomUpsert) UpdateWorkspaceID() *RoomUpsert {
	u.SetExcluded(room.FieldWorkspaceID)
	return u
}

// SetTitle sets the "title" field.
func (u *RoomUpsert) SetTitle(v string) *RoomUpsert {
	u.Set(room.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *RoomUpsert) UpdateTitle() *RoomUpsert {
	u.SetExcluded(room.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *RoomUpsert) ClearTitle() *RoomUpsert {
	u.SetNull(room.FieldTitle)
	return u
}

// SetMessageCount sets the "message_count" field.
func (u *RoomUpsert) SetMessageCount(v int64) *RoomUpsert {
	u.Set(room.FieldMessageCount, v)
	return u
}

// UpdateMessageCount sets the "message_count" field to the value that was provided on create.
func (u *RoomUpsert) UpdateMessageCount() *RoomUpsert {
	u.SetExcluded(room.FieldMessageCount)
	return u
}

// AddMessageCount adds v to the "message_count" field.
func (u *RoomUpsert) AddMessageCount(v int64) *RoomUpsert {
	u.Add(room.FieldMessageCount, v)
	return u
}

// SetCorrelationID sets the "correlation_id" field.
func (u *RoomUpsert) SetCorrelationID(v string) *RoomUpsert {
	u.Set(room.FieldCorrelationID, v)
	return u
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *RoomUpsert) UpdateCorrelationID() *RoomUpsert {
	u.SetExcluded(room.FieldCorrelationID)
	return u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (u *RoomUpsert) ClearCorrelationID() *RoomUpsert {
	u.SetNull(room.FieldCorrelationID)
	return u
}

// SetLastEventID sets the "last_event_id" field.
func (u *RoomUpsert) SetLastEventID(v string) *RoomUpsert {
	u.Set(room.FieldLastEventID, v)
	return u
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *RoomUpsert) UpdateLastEventID() *RoomUpsert {
	u.SetExcluded(room.FieldLastEventID)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *RoomUpsert) SetCreatedAt(v time.Time) *RoomUpsert {
	u.Set(room.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *RoomUpsert) UpdateCreatedAt() *RoomUpsert {
	u.SetExcluded(room.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RoomUpsert) SetUpdatedAt(v time.Time) *RoomUpsert {
	u.Set(room.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RoomUpsert) UpdateUpdatedAt() *RoomUpsert {
	u.SetExcluded(room.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Room.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(room.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RoomUpsertOne) UpdateNewValues() *RoomUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(room.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Room.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RoomUpsertOne) Ignore() *RoomUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RoomUpsertOne) DoNothing() *RoomUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RoomCreate.OnConflict
// documentation for more info.
func (u *RoomUpsertOne) Update(set func(*RoomUpsert)) *RoomUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RoomUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *RoomUpsertOne) SetWorkspaceID(v string) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *RoomUpsertOne) UpdateWorkspaceID() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetTitle sets the "title" field.
func (u *RoomUpsertOne) SetTitle(v string) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *RoomUpsertOne) UpdateTitle() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *RoomUpsertOne) ClearTitle() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.ClearTitle()
	})
}

// SetMessageCount sets the "message_count" field.
func (u *RoomUpsertOne) SetMessageCount(v int64) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.SetMessageCount(v)
	})
}

// AddMessageCount adds v to the "message_count" field.
func (u *RoomUpsertOne) AddMessageCount(v int64) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.AddMessageCount(v)
	})
}

// UpdateMessageCount sets the "message_count" field to the value that was provided on create.
func (u *RoomUpsertOne) UpdateMessageCount() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateMessageCount()
	})
}

// SetCorrelationID sets the "correlation_id" field.
func (u *RoomUpsertOne) SetCorrelationID(v string) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *RoomUpsertOne) UpdateCorrelationID() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateCorrelationID()
	})
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (u *RoomUpsertOne) ClearCorrelationID() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.ClearCorrelationID()
	})
}

// SetLastEventID sets the "last_event_id" field.
func (u *RoomUpsertOne) SetLastEventID(v string) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.SetLastEventID(v)
	})
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *RoomUpsertOne) UpdateLastEventID() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateLastEventID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *RoomUpsertOne) SetCreatedAt(v time.Time) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *RoomUpsertOne) UpdateCreatedAt() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RoomUpsertOne) SetUpdatedAt(v time.Time) *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RoomUpsertOne) UpdateUpdatedAt() *RoomUpsertOne {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RoomUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RoomCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RoomUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RoomUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RoomUpsertOne.ID is not supported by MySQL driver. Use RoomUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RoomUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RoomCreateBulk is the builder for creating many Room entities in bulk.
type RoomCreateBulk struct {
	config
	err      error
	builders []*RoomCreate
	conflict []sql.ConflictOption
}

// Save creates the Room entities in the database.
func (_c *RoomCreateBulk) Save(ctx context.Context) ([]*Room, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Room, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoomMutation)
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
func (_c *RoomCreateBulk) SaveX(ctx context.Context) []*Room {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoomCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoomCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Room.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RoomUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *RoomCreateBulk) OnConflict(opts ...sql.ConflictOption) *RoomUpsertBulk {
	_c.conflict = opts
	return &RoomUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Room.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RoomCreateBulk) OnConflictColumns(columns ...string) *RoomUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RoomUpsertBulk{
		create: _c,
	}
}

// RoomUpsertBulk is the builder for "upsert"-ing
// a bulk of Room nodes.
type RoomUpsertBulk struct {
	create *RoomCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Room.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(room.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RoomUpsertBulk) UpdateNewValues() *RoomUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(room.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Room.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RoomUpsertBulk) Ignore() *RoomUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RoomUpsertBulk) DoNothing() *RoomUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RoomCreateBulk.OnConflict
// documentation for more info.
func (u *RoomUpsertBulk) Update(set func(*RoomUpsert)) *RoomUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RoomUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *RoomUpsertBulk) SetWorkspaceID(v string) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *RoomUpsertBulk) UpdateWorkspaceID() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetTitle sets the "title" field.
func (u *RoomUpsertBulk) SetTitle(v string) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *RoomUpsertBulk) UpdateTitle() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *RoomUpsertBulk) ClearTitle() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.ClearTitle()
	})
}

// SetMessageCount sets the "message_count" field.
func (u *RoomUpsertBulk) SetMessageCount(v int64) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.SetMessageCount(v)
	})
}

// AddMessageCount adds v to the "message_count" field.
func (u *RoomUpsertBulk) AddMessageCount(v int64) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.AddMessageCount(v)
	})
}

// UpdateMessageCount sets the "message_count" field to the value that was provided on create.
func (u *RoomUpsertBulk) UpdateMessageCount() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateMessageCount()
	})
}

// SetCorrelationID sets the "correlation_id" field.
func (u *RoomUpsertBulk) SetCorrelationID(v string) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *RoomUpsertBulk) UpdateCorrelationID() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateCorrelationID()
	})
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (u *RoomUpsertBulk) ClearCorrelationID() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.ClearCorrelationID()
	})
}

// SetLastEventID sets the "last_event_id" field.
func (u *RoomUpsertBulk) SetLastEventID(v string) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.SetLastEventID(v)
	})
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *RoomUpsertBulk) UpdateLastEventID() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateLastEventID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *RoomUpsertBulk) SetCreatedAt(v time.Time) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *RoomUpsertBulk) UpdateCreatedAt() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RoomUpsertBulk) SetUpdatedAt(v time.Time) *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RoomUpsertBulk) UpdateUpdatedAt() *RoomUpsertBulk {
	return u.Update(func(s *RoomUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RoomUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RoomCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RoomCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RoomUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
