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
	"github.com/missionloop/groundcontrol/ent/artifact"
	"github.com/missionloop/groundcontrol/ent/predicate"
)

// ArtifactUpdate is the builder for updating Artifact entities.
type ArtifactUpdate struct {
	config
	hooks    []Hook
	mutation *ArtifactMutation
}

// Where appends a list predicates to the ArtifactUpdate builder.
func (_u *ArtifactUpdate) Where(ps ...predicate.Artifact) *ArtifactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *ArtifactUpdate) SetWorkspaceID(v string) *ArtifactUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableWorkspaceID(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *ArtifactUpdate) SetRunID(v string) *ArtifactUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableRunID(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *ArtifactUpdate) ClearRunID() *ArtifactUpdate {
	_u.mutation.ClearRunID()
	return _u
}

// SetObjectKey sets the "object_key" field.
func (_u *ArtifactUpdate) SetObjectKey(v string) *ArtifactUpdate {
	_u.mutation.SetObjectKey(v)
	return _u
}

// SetNillableObjectKey sets the "object_key" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableObjectKey(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetObjectKey(*v)
	}
	return _u
}

// SetMediaType sets the "media_type" field.
func (_u *ArtifactUpdate) SetMediaType(v string) *ArtifactUpdate {
	_u.mutation.SetMediaType(v)
	return _u
}

// SetNillableMediaType sets the "media_type" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableMediaType(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetMediaType(*v)
	}
	return _u
}

// ClearMediaType clears the value of the "media_type" field.
func (_u *ArtifactUpdate) ClearMediaType() *ArtifactUpdate {
	_u.mutation.ClearMediaType()
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *ArtifactUpdate) SetSizeBytes(v int64) *ArtifactUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableSizeBytes(v *int64) *ArtifactUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *ArtifactUpdate) AddSizeBytes(v int64) *ArtifactUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// ClearSizeBytes clears the value of the "size_bytes" field.
func (_u *ArtifactUpdate) ClearSizeBytes() *ArtifactUpdate {
	_u.mutation.ClearSizeBytes()
	return _u
}

// SetCreatedByAgentID sets the "created_by_agent_id" field.
func (_u *ArtifactUpdate) SetCreatedByAgentID(v string) *ArtifactUpdate {
	_u.mutation.SetCreatedByAgentID(v)
	return _u
}

// SetNillableCreatedByAgentID sets the "created_by_agent_id" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableCreatedByAgentID(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetCreatedByAgentID(*v)
	}
	return _u
}

// ClearCreatedByAgentID clears the value of the "created_by_agent_id" field.
func (_u *ArtifactUpdate) ClearCreatedByAgentID() *ArtifactUpdate {
	_u.mutation.ClearCreatedByAgentID()
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *ArtifactUpdate) SetCorrelationID(v string) *ArtifactUpdate {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableCorrelationID(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// SetLastEventID sets the "last_event_id" field.
func (_u *ArtifactUpdate) SetLastEventID(v string) *ArtifactUpdate {
	_u.mutation.SetLastEventID(v)
	return _u
}

// SetNillableLastEventID sets the "last_event_id" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableLastEventID(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetLastEventID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ArtifactUpdate) SetCreatedAt(v time.Time) *ArtifactUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableCreatedAt(v *time.Time) *ArtifactUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ArtifactUpdate) SetUpdatedAt(v time.Time) *ArtifactUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ArtifactMutation object of the builder.
func (_u *ArtifactUpdate) Mutation() *ArtifactMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ArtifactUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArtifactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ArtifactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArtifactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ArtifactUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := artifact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ArtifactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(artifact.Table, artifact.Columns, sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(artifact.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(artifact.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(artifact.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.ObjectKey(); ok {
		_spec.SetField(artifact.FieldObjectKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.MediaType(); ok {
		_spec.SetField(artifact.FieldMediaType, field.TypeString, value)
	}
	if _u.mutation.MediaTypeCleared() {
		_spec.ClearField(artifact.FieldMediaType, field.TypeString)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(artifact.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(artifact.FieldSizeBytes, field.TypeInt64, value)
	}
	if _u.mutation.SizeBytesCleared() {
		_spec.ClearField(artifact.FieldSizeBytes, field.TypeInt64)
	}
	if value, ok := _u.mutation.CreatedByAgentID(); ok {
		_spec.SetField(artifact.FieldCreatedByAgentID, field.TypeString, value)
	}
	if _u.mutation.CreatedByAgentIDCleared() {
		_spec.ClearField(artifact.FieldCreatedByAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(artifact.FieldCorrelationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastEventID(); ok {
		_spec.SetField(artifact.FieldLastEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(artifact.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(artifact.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{artifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ArtifactUpdateOne is the builder for updating a single Artifact entity.
type ArtifactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ArtifactMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *ArtifactUpdateOne) SetWorkspaceID(v string) *ArtifactUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableWorkspaceID(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *ArtifactUpdateOne) SetRunID(v string) *ArtifactUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableRunID(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *ArtifactUpdateOne) ClearRunID() *ArtifactUpdateOne {
	_u.mutation.ClearRunID()
	return _u
}

// SetObjectKey sets the "object_key" field.
func (_u *ArtifactUpdateOne) SetObjectKey(v string) *ArtifactUpdateOne {
	_u.mutation.SetObjectKey(v)
	return _u
}

// SetNillableObjectKey sets the "object_key" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableObjectKey(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetObjectKey(*v)
	}
	return _u
}

// SetMediaType sets the "media_type" field.
func (_u *ArtifactUpdateOne) SetMediaType(v string) *ArtifactUpdateOne {
	_u.mutation.SetMediaType(v)
	return _u
}

// SetNillableMediaType sets the "media_type" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableMediaType(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetMediaType(*v)
	}
	return _u
}

// ClearMediaType clears the value of the "media_type" field.
func (_u *ArtifactUpdateOne) ClearMediaType() *ArtifactUpdateOne {
	_u.mutation.ClearMediaType()
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *ArtifactUpdateOne) SetSizeBytes(v int64) *ArtifactUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableSizeBytes(v *int64) *ArtifactUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *ArtifactUpdateOne) AddSizeBytes(v int64) *ArtifactUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// ClearSizeBytes clears the value of the "size_bytes" field.
func (_u *ArtifactUpdateOne) ClearSizeBytes() *ArtifactUpdateOne {
	_u.mutation.ClearSizeBytes()
	return _u
}

// SetCreatedByAgentID sets the "created_by_agent_id" field.
func (_u *ArtifactUpdateOne) SetCreatedByAgentID(v string) *ArtifactUpdateOne {
	_u.mutation.SetCreatedByAgentID(v)
	return _u
}

// SetNillableCreatedByAgentID sets the "created_by_agent_id" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableCreatedByAgentID(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetCreatedByAgentID(*v)
	}
	return _u
}

// ClearCreatedByAgentID clears the value of the "created_by_agent_id" field.
func (_u *ArtifactUpdateOne) ClearCreatedByAgentID() *ArtifactUpdateOne {
	_u.mutation.ClearCreatedByAgentID()
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *ArtifactUpdateOne) SetCorrelationID(v string) *ArtifactUpdateOne {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableCorrelationID(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// SetLastEventID sets the "last_event_id" field.
func (_u *ArtifactUpdateOne) SetLastEventID(v string) *ArtifactUpdateOne {
	_u.mutation.SetLastEventID(v)
	return _u
}

// SetNillableLastEventID sets the "last_event_id" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableLastEventID(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetLastEventID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ArtifactUpdateOne) SetCreatedAt(v time.Time) *ArtifactUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableCreatedAt(v *time.Time) *ArtifactUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ArtifactUpdateOne) SetUpdatedAt(v time.Time) *ArtifactUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ArtifactMutation object of the builder.
func (_u *ArtifactUpdateOne) Mutation() *ArtifactMutation {
	return _u.mutation
}

// Where appends a list predicates to the ArtifactUpdate builder.
func (_u *ArtifactUpdateOne) Where(ps ...predicate.Artifact) *ArtifactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ArtifactUpdateOne) Select(field string, fields ...string) *ArtifactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Artifact entity.
func (_u *ArtifactUpdateOne) Save(ctx context.Context) (*Artifact, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArtifactUpdateOne) SaveX(ctx context.Context) *Artifact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ArtifactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArtifactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ArtifactUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := artifact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ArtifactUpdateOne) sqlSave(ctx context.Context) (_node *Artifact, err error) {
	_spec := sqlgraph.NewUpdateSpec(artifact.Table, artifact.Columns, sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Artifact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, artifact.FieldID)
		for _, f := range fields {
			if !artifact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != artifact.FieldID {
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
		_spec.SetField(artifact.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(artifact.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(artifact.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.ObjectKey(); ok {
		_spec.SetField(artifact.FieldObjectKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.MediaType(); ok {
		_spec.SetField(artifact.FieldMediaType, field.TypeString, value)
	}
	if _u.mutation.MediaTypeCleared() {
		_spec.ClearField(artifact.FieldMediaType, field.TypeString)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(artifact.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(artifact.FieldSizeBytes, field.TypeInt64, value)
	}
	if _u.mutation.SizeBytesCleared() {
		_spec.ClearField(artifact.FieldSizeBytes, field.TypeInt64)
	}
	if value, ok := _u.mutation.CreatedByAgentID(); ok {
		_spec.SetField(artifact.FieldCreatedByAgentID, field.TypeString, value)
	}
	if _u.mutation.CreatedByAgentIDCleared() {
		_spec.ClearField(artifact.FieldCreatedByAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(artifact.FieldCorrelationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastEventID(); ok {
		_spec.SetField(artifact.FieldLastEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(artifact.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(artifact.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Artifact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{artifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
