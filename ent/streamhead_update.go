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
	"github.com/missionloop/groundcontrol/ent/streamhead"
)

// StreamHeadUpdate is the builder for updating StreamHead entities.
type StreamHeadUpdate struct {
	config
	hooks    []Hook
	mutation *StreamHeadMutation
}

// Where appends a list predicates to the StreamHeadUpdate builder.
func (_u *StreamHeadUpdate) Where(ps ...predicate.StreamHead) *StreamHeadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStreamType sets the "stream_type" field.
func (_u *StreamHeadUpdate) SetStreamType(v streamhead.StreamType) *StreamHeadUpdate {
	_u.mutation.SetStreamType(v)
	return _u
}

// SetNillableStreamType sets the "stream_type" field if the given value is not nil.
func (_u *StreamHeadUpdate) SetNillableStreamType(v *streamhead.StreamType) *StreamHeadUpdate {
	if v != nil {
		_u.SetStreamType(*v)
	}
	return _u
}

// SetStreamID sets the "stream_id" field.
func (_u *StreamHeadUpdate) SetStreamID(v string) *StreamHeadUpdate {
	_u.mutation.SetStreamID(v)
	return _u
}

// SetNillableStreamID sets the "stream_id" field if the given value is not nil.
func (_u *StreamHeadUpdate) SetNillableStreamID(v *string) *StreamHeadUpdate {
	if v != nil {
		_u.SetStreamID(*v)
	}
	return _u
}

// SetLastSeq sets the "last_seq" field.
func (_u *StreamHeadUpdate) SetLastSeq(v int64) *StreamHeadUpdate {
	_u.mutation.ResetLastSeq()
	_u.mutation.SetLastSeq(v)
	return _u
}

// SetNillableLastSeq sets the "last_seq" field if the given value is not nil.
func (_u *StreamHeadUpdate) SetNillableLastSeq(v *int64) *StreamHeadUpdate {
	if v != nil {
		_u.SetLastSeq(*v)
	}
	return _u
}

// AddLastSeq adds value to the "last_seq" field.
func (_u *StreamHeadUpdate) AddLastSeq(v int64) *StreamHeadUpdate {
	_u.mutation.AddLastSeq(v)
	return _u
}

// SetLastEventHash sets the "last_event_hash" field.
func (_u *StreamHeadUpdate) SetLastEventHash(v string) *StreamHeadUpdate {
	_u.mutation.SetLastEventHash(v)
	return _u
}

// SetNillableLastEventHash sets the "last_event_hash" field if the given value is not nil.
func (_u *StreamHeadUpdate) SetNillableLastEventHash(v *string) *StreamHeadUpdate {
	if v != nil {
		_u.SetLastEventHash(*v)
	}
	return _u
}

// ClearLastEventHash clears the value of the "last_event_hash" field.
func (_u *StreamHeadUpdate) ClearLastEventHash() *StreamHeadUpdate {
	_u.mutation.ClearLastEventHash()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StreamHeadUpdate) SetUpdatedAt(v time.Time) *StreamHeadUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StreamHeadMutation object of the builder.
func (_u *StreamHeadUpdate) Mutation() *StreamHeadMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StreamHeadUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StreamHeadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StreamHeadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StreamHeadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StreamHeadUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := streamhead.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StreamHeadUpdate) check() error {
	if v, ok := _u.mutation.StreamType(); ok {
		if err := streamhead.StreamTypeValidator(v); err != nil {
			return &ValidationError{Name: "stream_type", err: fmt.Errorf(`ent: validator failed for field "StreamHead.stream_type": %w`, err)}
		}
	}
	return nil
}

func (_u *StreamHeadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(streamhead.Table, streamhead.Columns, sqlgraph.NewFieldSpec(streamhead.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StreamType(); ok {
		_spec.SetField(streamhead.FieldStreamType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StreamID(); ok {
		_spec.SetField(streamhead.FieldStreamID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastSeq(); ok {
		_spec.SetField(streamhead.FieldLastSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastSeq(); ok {
		_spec.AddField(streamhead.FieldLastSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastEventHash(); ok {
		_spec.SetField(streamhead.FieldLastEventHash, field.TypeString, value)
	}
	if _u.mutation.LastEventHashCleared() {
		_spec.ClearField(streamhead.FieldLastEventHash, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(streamhead.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{streamhead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StreamHeadUpdateOne is the builder for updating a single StreamHead entity.
type StreamHeadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StreamHeadMutation
}

// SetStreamType sets the "stream_type" field.
func (_u *StreamHeadUpdateOne) SetStreamType(v streamhead.StreamType) *StreamHeadUpdateOne {
	_u.mutation.SetStreamType(v)
	return _u
}

// SetNillableStreamType sets the "stream_type" field if the given value is not nil.
func (_u *StreamHeadUpdateOne) SetNillableStreamType(v *streamhead.StreamType) *StreamHeadUpdateOne {
	if v != nil {
		_u.SetStreamType(*v)
	}
	return _u
}

// SetStreamID sets the "stream_id" field.
func (_u *StreamHeadUpdateOne) SetStreamID(v string) *StreamHeadUpdateOne {
	_u.mutation.SetStreamID(v)
	return _u
}

// SetNillableStreamID sets the "stream_id" field if the given value is not nil.
func (_u *StreamHeadUpdateOne) SetNillableStreamID(v *string) *StreamHeadUpdateOne {
	if v != nil {
		_u.SetStreamID(*v)
	}
	return _u
}

// SetLastSeq sets the "last_seq" field.
func (_u *StreamHeadUpdateOne) SetLastSeq(v int64) *StreamHeadUpdateOne {
	_u.mutation.ResetLastSeq()
	_u.mutation.SetLastSeq(v)
	return _u
}

// SetNillableLastSeq sets the "last_seq" field if the given value is not nil.
func (_u *StreamHeadUpdateOne) SetNillableLastSeq(v *int64) *StreamHeadUpdateOne {
	if v != nil {
		_u.SetLastSeq(*v)
	}
	return _u
}

// AddLastSeq adds value to the "last_seq" field.
func (_u *StreamHeadUpdateOne) AddLastSeq(v int64) *StreamHeadUpdateOne {
	_u.mutation.AddLastSeq(v)
	return _u
}

// SetLastEventHash sets the "last_event_hash" field.
func (_u *StreamHeadUpdateOne) SetLastEventHash(v string) *StreamHeadUpdateOne {
	_u.mutation.SetLastEventHash(v)
	return _u
}

// SetNillableLastEventHash sets the "last_event_hash" field if the given value is not nil.
func (_u *StreamHeadUpdateOne) SetNillableLastEventHash(v *string) *StreamHeadUpdateOne {
	if v != nil {
		_u.SetLastEventHash(*v)
	}
	return _u
}

// ClearLastEventHash clears the value of the "last_event_hash" field.
func (_u *StreamHeadUpdateOne) ClearLastEventHash() *StreamHeadUpdateOne {
	_u.mutation.ClearLastEventHash()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StreamHeadUpdateOne) SetUpdatedAt(v time.Time) *StreamHeadUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StreamHeadMutation object of the builder.
func (_u *StreamHeadUpdateOne) Mutation() *StreamHeadMutation {
	return _u.mutation
}

// Where appends a list predicates to the StreamHeadUpdate builder.
func (_u *StreamHeadUpdateOne) Where(ps ...predicate.StreamHead) *StreamHeadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StreamHeadUpdateOne) Select(field string, fields ...string) *StreamHeadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StreamHead entity.
func (_u *StreamHeadUpdateOne) Save(ctx context.Context) (*StreamHead, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StreamHeadUpdateOne) SaveX(ctx context.Context) *StreamHead {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StreamHeadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StreamHeadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StreamHeadUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := streamhead.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StreamHeadUpdateOne) check() error {
	if v, ok := _u.mutation.StreamType(); ok {
		if err := streamhead.StreamTypeValidator(v); err != nil {
			return &ValidationError{Name: "stream_type", err: fmt.Errorf(`ent: validator failed for field "StreamHead.stream_type": %w`, err)}
		}
	}
	return nil
}

func (_u *StreamHeadUpdateOne) sqlSave(ctx context.Context) (_node *StreamHead, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(streamhead.Table, streamhead.Columns, sqlgraph.NewFieldSpec(streamhead.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StreamHead.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, streamhead.FieldID)
		for _, f := range fields {
			if !streamhead.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != streamhead.FieldID {
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
	if value, ok := _u.mutation.StreamType(); ok {
		_spec.SetField(streamhead.FieldStreamType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StreamID(); ok {
		_spec.SetField(streamhead.FieldStreamID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastSeq(); ok {
		_spec.SetField(streamhead.FieldLastSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastSeq(); ok {
		_spec.AddField(streamhead.FieldLastSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastEventHash(); ok {
		_spec.SetField(streamhead.FieldLastEventHash, field.TypeString, value)
	}
	if _u.mutation.LastEventHashCleared() {
		_spec.ClearField(streamhead.FieldLastEventHash, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(streamhead.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &StreamHead{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{streamhead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
