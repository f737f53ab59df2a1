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
	"github.com/missionloop/groundcontrol/ent/streamhead"
)

// StreamHeadCreate is the builder for creating a StreamHead entity.
type StreamHeadCreate struct {
	config
	mutation *StreamHeadMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStreamType sets the "stream_type" field.
func (_c *StreamHeadCreate) SetStreamType(v streamhead.StreamType) *StreamHeadCreate {
	_c.mutation.SetStreamType(v)
	return _c
}

// SetStreamID sets the "stream_id" field.
func (_c *StreamHeadCreate) SetStreamID(v string) *StreamHeadCreate {
	_c.mutation.SetStreamID(v)
	return _c
}

// SetLastSeq sets the "last_seq" field.
func (_c *StreamHeadCreate) SetLastSeq(v int64) *StreamHeadCreate {
	_c.mutation.SetLastSeq(v)
	return _c
}

// SetNillableLastSeq sets the "last_seq" field if the given value is not nil.
func (_c *StreamHeadCreate) SetNillableLastSeq(v *int64) *StreamHeadCreate {
	if v != nil {
		_c.SetLastSeq(*v)
	}
	return _c
}

// SetLastEventHash sets the "last_event_hash" field.
func (_c *StreamHeadCreate) SetLastEventHash(v string) *StreamHeadCreate {
	_c.mutation.SetLastEventHash(v)
	return _c
}

// SetNillableLastEventHash sets the "last_event_hash" field if the given value is not nil.
func (_c *StreamHeadCreate) SetNillableLastEventHash(v *string) *StreamHeadCreate {
	if v != nil {
		_c.SetLastEventHash(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StreamHeadCreate) SetUpdatedAt(v time.Time) *StreamHeadCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StreamHeadCreate) SetNillableUpdatedAt(v *time.Time) *StreamHeadCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StreamHeadCreate) SetID(v string) *StreamHeadCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StreamHeadMutation object of the builder.
func (_c *StreamHeadCreate) Mutation() *StreamHeadMutation {
	return _c.mutation
}

// Save creates the StreamHead in the database.
func (_c *StreamHeadCreate) Save(ctx context.Context) (*StreamHead, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StreamHeadCreate) SaveX(ctx context.Context) *StreamHead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StreamHeadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StreamHeadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StreamHeadCreate) defaults() {
	if _, ok := _c.mutation.LastSeq(); !ok {
		v := streamhead.DefaultLastSeq
		_c.mutation.SetLastSeq(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := streamhead.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StreamHeadCreate) check() error {
	if _, ok := _c.mutation.StreamType(); !ok {
		return &ValidationError{Name: "stream_type", err: errors.New(`ent: missing required field "StreamHead.stream_type"`)}
	}
	if v, ok := _c.mutation.StreamType(); ok {
		if err := streamhead.StreamTypeValidator(v); err != nil {
			return &ValidationError{Name: "stream_type", err: fmt.Errorf(`ent: validator failed for field "StreamHead.stream_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StreamID(); !ok {
		return &ValidationError{Name: "stream_id", err: errors.New(`ent: missing required field "StreamHead.stream_id"`)}
	}
	if _, ok := _c.mutation.LastSeq(); !ok {
		return &ValidationError{Name: "last_seq", err: errors.New(`ent: missing required field "StreamHead.last_seq"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StreamHead.updated_at"`)}
	}
	return nil
}

func (_c *StreamHeadCreate) sqlSave(ctx context.Context) (*StreamHead, error) {
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
			return nil, fmt.Errorf("unexpected StreamHead.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StreamHeadCreate) createSpec() (*StreamHead, *sqlgraph.CreateSpec) {
	var (
		_node = &StreamHead{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(streamhead.Table, sqlgraph.NewFieldSpec(streamhead.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StreamType(); ok {
		_spec.SetField(streamhead.FieldStreamType, field.TypeEnum, value)
		_node.StreamType = value
	}
	if value, ok := _c.mutation.StreamID(); ok {
		_spec.SetField(streamhead.FieldStreamID, field.TypeString, value)
		_node.StreamID = value
	}
	if value, ok := _c.mutation.LastSeq(); ok {
		_spec.SetField(streamhead.FieldLastSeq, field.TypeInt64, value)
		_node.LastSeq = value
	}
	if value, ok := _c.mutation.LastEventHash(); ok {
		_spec.SetField(streamhead.FieldLastEventHash, field.TypeString, value)
		_node.LastEventHash = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(streamhead.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StreamHead.Create().
//		SetStreamType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StreamHeadUpsert) {
//			SetStreamType(v+v).
//		}).
//		Exec(ctx)
func (_c *StreamHeadCreate) OnConflict(opts ...sql.ConflictOption) *StreamHeadUpsertOne {
	_c.conflict = opts
	return &StreamHeadUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StreamHead.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StreamHeadCreate) OnConflictColumns(columns ...string) *StreamHeadUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StreamHeadUpsertOne{
		create: _c,
	}
}

type (
	// StreamHeadUpsertOne is the builder for "upsert"-ing
	//  one StreamHead node.
	StreamHeadUpsertOne struct {
		create *StreamHeadCreate
	}

	// StreamHeadUpsert is the "OnConflict" setter.
	StreamHeadUpsert struct {
		*sql.UpdateSet
	}
)

// SetStreamType sets the "stream_type" field.
func (u *StreamHeadUpsert) SetStreamType(v streamhead.StreamType) *StreamHeadUpsert {
	u.Set(streamhead.FieldStreamType, v)
	return u
}

// UpdateStreamType sets the "stream_type" field to the value that was provided on create.
func (u *StreamHeadUpsert) UpdateStreamType() *StreamHeadUpsert {
	u.SetExcluded(streamhead.FieldStreamType)
	return u
}

// SetStreamID sets the "stream_id" field.
func (u *StreamHeadUpsert) SetStreamID(v string) *StreamHeadUpsert {
	u.Set(streamhead.FieldStreamID, v)
	return u
}

// UpdateStreamID sets the "stream_id" field to the value that was provided on create.
func (u *StreamHeadUpsert) UpdateStreamID() *StreamHeadUpsert {
	u.SetExcluded(streamhead.FieldStreamID)
	return u
}

// SetLastSeq sets the "last_seq" field.
func (u *StreamHeadUpsert) SetLastSeq(v int64) *StreamHeadUpsert {
	u.Set(streamhead.FieldLastSeq, v)
	return u
}

// UpdateLastSeq sets the "last_seq" field to the value that was provided on create.
func (u *StreamHeadUpsert) UpdateLastSeq() *StreamHeadUpsert {
	u.SetExcluded(streamhead.FieldLastSeq)
	return u
}

// AddLastSeq adds v to the "last_seq" field.
func (u *StreamHeadUpsert) AddLastSeq(v int64) *StreamHeadUpsert {
	u.Add(streamhead.FieldLastSeq, v)
	return u
}

// SetLastEventHash sets the "last_event_hash" field.
func (u *StreamHeadUpsert) SetLastEventHash(v string) *StreamHeadUpsert {
	u.Set(streamhead.FieldLastEventHash, v)
	return u
}

// UpdateLastEventHash sets the "last_event_hash" field to the value that was provided on create.
func (u *StreamHeadUpsert) UpdateLastEventHash() *StreamHeadUpsert {
	u.SetExcluded(streamhead.FieldLastEventHash)
	return u
}

// ClearLastEventHash clears the value of the "last_event_hash" field.
func (u *StreamHeadUpsert) ClearLastEventHash() *StreamHeadUpsert {
	u.SetNull(streamhead.FieldLastEventHash)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StreamHeadUpsert) SetUpdatedAt(v time.Time) *StreamHeadUpsert {
	u.Set(streamhead.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StreamHeadUpsert) UpdateUpdatedAt() *StreamHeadUpsert {
	u.SetExcluded(streamhead.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StreamHead.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(streamhead.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StreamHeadUpsertOne) UpdateNewValues() *StreamHeadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(streamhead.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StreamHead.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StreamHeadUpsertOne) Ignore() *StreamHeadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StreamHeadUpsertOne) DoNothing() *StreamHeadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StreamHeadCreate.OnConflict
// documentation for more info.
func (u *StreamHeadUpsertOne) Update(set func(*StreamHeadUpsert)) *StreamHeadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StreamHeadUpsert{UpdateSet: update})
	}))
	return u
}

// SetStreamType sets the "stream_type" field.
func (u *StreamHeadUpsertOne) SetStreamType(v streamhead.StreamType) *StreamHeadUpsertOne {
	return u.Update(func(s *StreamHeadUpsert) {
		s.SetStreamType(v)
	})
}

// UpdateStreamType sets the "stream_type" field to the value that was provided on create.
func (u *StreamHeadUpsertOne) UpdateStreamType() *StreamHeadUpsertOne {
	return u.Update(func(s *StreamHeadUpsert) {
		s.UpdateStreamType()
	})
}

// SetStreamID sets the "stream_id" field.
func (u *StreamHeadUpsertOne) SetStreamID(v string) *StreamHeadUpsertOne {
	return u.Update(func(s *StreamHeadUpsert) {
		s.SetStreamID(v)
	})
}

// UpdateStreamID sets the "stream_id" field to the value that was provided on create.
func (u *StreamHeadUpsertOne) UpdateStreamID() *StreamHeadUpsertOne {
	return u.Update(func(s *StreamHeadUpsert) {
		s.UpdateStreamID()
	})
}

// SetLastSeq sets the "last_seq" field.
func (u *StreamHeadUpsertOne) SetLastSeq(v int64) *StreamHeadUpsertOne {
	return u.Update(func(s *StreamHeadUpsert) {
		s.SetLastSeq(v)
	})
}

// AddLastSeq adds v to the "last_seq" field.
func (u *StreamHeadUpsertOne) AddLastSeq(v int64) *StreamHeadUpsertOne {
	return u.Update(func(s *StreamHeadUpsert) {
		s.AddLastSeq(v)
	})
}

// UpdateLastSeq sets the "last_seq" field to the value that was provided on create.
func (u *StreamHeadUpsertOne) UpdateLastSeq() *StreamHeadUpsertOne {
	return u.Update(func(s *StreamHeadUpsert) {
		s.UpdateLastSeq()
	})
}

// SetLastEventHash sets the "last_event_hash" field.
func (u *StreamHeadUpsertOne) SetLastEventHash(v string) *StreamHeadUpsertOne {
	return u.Update(func(s *StreamHeadUpsert) {
		s.SetLastEventHash(v)
	})
}

// UpdateLastEventHash sets the "last_event_hash" field to the value that was provided on create.
func (u *StreamHeadUpsertOne) UpdateLastEventHash() *StreamHeadUpsertOne {
	return u.Update(func(s *StreamHeadUpsert) {
		s.UpdateLastEventHash()
	})
}

// ClearLastEventHash clears the value of the "last_event_hash" field.
func (u *StreamHeadUpsertOne) ClearLastEventHash() *StreamHeadUpsertOne {
	return u.Update(func(s *StreamHeadUpsert) {
		s.ClearLastEventHash()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StreamHeadUpsertOne) SetUpdatedAt(v time.Time) *StreamHeadUpsertOne {
	return u.Update(func(s *StreamHeadUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StreamHeadUpsertOne) UpdateUpdatedAt() *StreamHeadUpsertOne {
	return u.Update(func(s *StreamHeadUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StreamHeadUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StreamHeadCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StreamHeadUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StreamHeadUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StreamHeadUpsertOne.ID is not supported by MySQL driver. Use StreamHeadUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StreamHeadUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StreamHeadCreateBulk is the builder for creating many StreamHead entities in bulk.
type StreamHeadCreateBulk struct {
	config
	err      error
	builders []*StreamHeadCreate
	conflict []sql.ConflictOption
}

// Save creates the StreamHead entities in the database.
func (_c *StreamHeadCreateBulk) Save(ctx context.Context) ([]*StreamHead, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StreamHead, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StreamHeadMutation)
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
func (_c *StreamHeadCreateBulk) SaveX(ctx context.Context) []*StreamHead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StreamHeadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StreamHeadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StreamHead.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StreamHeadUpsert) {
//			SetStreamType(v+v).
//		}).
//		Exec(ctx)
func (_c *StreamHeadCreateBulk) OnConflict(opts ...sql.ConflictOption) *StreamHeadUpsertBulk {
	_c.conflict = opts
	return &StreamHeadUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StreamHead.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StreamHeadCreateBulk) OnConflictColumns(columns ...string) *StreamHeadUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StreamHeadUpsertBulk{
		create: _c,
	}
}

// StreamHeadUpsertBulk is the builder for "upsert"-ing
// a bulk of StreamHead nodes.
type StreamHeadUpsertBulk struct {
	create *StreamHeadCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StreamHead.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(streamhead.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StreamHeadUpsertBulk) UpdateNewValues() *StreamHeadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(streamhead.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StreamHead.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StreamHeadUpsertBulk) Ignore() *StreamHeadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StreamHeadUpsertBulk) DoNothing() *StreamHeadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StreamHeadCreateBulk.OnConflict
// documentation for more info.
func (u *StreamHeadUpsertBulk) Update(set func(*StreamHeadUpsert)) *StreamHeadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StreamHeadUpsert{UpdateSet: update})
	}))
	return u
}

// SetStreamType sets the "stream_type" field.
func (u *StreamHeadUpsertBulk) SetStreamType(v streamhead.StreamType) *StreamHeadUpsertBulk {
	return u.Update(func(s *StreamHeadUpsert) {
		s.SetStreamType(v)
	})
}

// UpdateStreamType sets the "stream_type" field to the value that was provided on create.
func (u *StreamHeadUpsertBulk) UpdateStreamType() *StreamHeadUpsertBulk {
	return u.Update(func(s *StreamHeadUpsert) {
		s.UpdateStreamType()
	})
}

// SetStreamID sets the "stream_id" field.
func (u *StreamHeadUpsertBulk) SetStreamID(v string) *StreamHeadUpsertBulk {
	return u.Update(func(s *StreamHeadUpsert) {
		s.SetStreamID(v)
	})
}

// UpdateStreamID sets the "stream_id" field to the value that was provided on create.
func (u *StreamHeadUpsertBulk) UpdateStreamID() *StreamHeadUpsertBulk {
	return u.Update(func(s *StreamHeadUpsert) {
		s.UpdateStreamID()
	})
}

// SetLastSeq sets the "last_seq" field.
func (u *StreamHeadUpsertBulk) SetLastSeq(v int64) *StreamHeadUpsertBulk {
	return u.Update(func(s *StreamHeadUpsert) {
		s.SetLastSeq(v)
	})
}

// AddLastSeq adds v to the "last_seq" field.
func (u *StreamHeadUpsertBulk) AddLastSeq(v int64) *StreamHeadUpsertBulk {
	return u.Update(func(s *StreamHeadUpsert) {
		s.AddLastSeq(v)
	})
}

// UpdateLastSeq sets the "last_seq" field to the value that was provided on create.
func (u *StreamHeadUpsertBulk) UpdateLastSeq() *StreamHeadUpsertBulk {
	return u.Update(func(s *StreamHeadUpsert) {
		s.UpdateLastSeq()
	})
}

// SetLastEventHash sets the "last_event_hash" field.
func (u *StreamHeadUpsertBulk) SetLastEventHash(v string) *StreamHeadUpsertBulk {
	return u.Update(func(s *StreamHeadUpsert) {
		s.SetLastEventHash(v)
	})
}

// UpdateLastEventHash sets the "last_event_hash" field to the value that was provided on create.
func (u *StreamHeadUpsertBulk) UpdateLastEventHash() *StreamHeadUpsertBulk {
	return u.Update(func(s *StreamHeadUpsert) {
		s.UpdateLastEventHash()
	})
}

// ClearLastEventHash clears the value of the "last_event_hash" field.
func (u *StreamHeadUpsertBulk) ClearLastEventHash() *StreamHeadUpsertBulk {
	return u.Update(func(s *StreamHeadUpsert) {
		s.ClearLastEventHash()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StreamHeadUpsertBulk) SetUpdatedAt(v time.Time) *StreamHeadUpsertBulk {
	return u.Update(func(s *StreamHeadUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StreamHeadUpsertBulk) UpdateUpdatedAt() *StreamHeadUpsertBulk {
	return u.Update(func(s *StreamHeadUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StreamHeadUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StreamHeadCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StreamHeadCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StreamHeadUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
