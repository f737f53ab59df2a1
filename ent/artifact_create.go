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
	"github.com/missionloop/groundcontrol/ent/artifact"
)

// ArtifactCreate is the builder for creating a Artifact entity.
type ArtifactCreate struct {
	config
	mutation *ArtifactMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *ArtifactCreate) SetWorkspaceID(v string) *ArtifactCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *ArtifactCreate) SetRunID(v string) *ArtifactCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableRunID(v *string) *ArtifactCreate {
	if v != nil {
		_c.SetRunID(*v)
	}
	return _c
}

// SetObjectKey sets the "object_key" field.
func (_c *ArtifactCreate) SetObjectKey(v string) *ArtifactCreate {
	_c.mutation.SetObjectKey(v)
	return _c
}

// SetMediaType sets the "media_type" field.
func (_c *ArtifactCreate) SetMediaType(v string) *ArtifactCreate {
	_c.mutation.SetMediaType(v)
	return _c
}

// SetNillableMediaType sets the "media_type" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableMediaType(v *string) *ArtifactCreate {
	if v != nil {
		_c.SetMediaType(*v)
	}
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *ArtifactCreate) SetSizeBytes(v int64) *ArtifactCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableSizeBytes(v *int64) *ArtifactCreate {
	if v != nil {
		_c.SetSizeBytes(*v)
	}
	return _c
}

// SetCreatedByAgentID sets the "created_by_agent_id" field.
func (_c *ArtifactCreate) SetCreatedByAgentID(v string) *ArtifactCreate {
	_c.mutation.SetCreatedByAgentID(v)
	return _c
}

// SetNillableCreatedByAgentID sets the "created_by_agent_id" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableCreatedByAgentID(v *string) *ArtifactCreate {
	if v != nil {
		_c.SetCreatedByAgentID(*v)
	}
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *ArtifactCreate) SetCorrelationID(v string) *ArtifactCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetLastEventID sets the "last_event_id" field.
func (_c *ArtifactCreate) SetLastEventID(v string) *ArtifactCreate {
	_c.mutation.SetLastEventID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ArtifactCreate) SetCreatedAt(v time.Time) *ArtifactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableCreatedAt(v *time.Time) *ArtifactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ArtifactCreate) SetUpdatedAt(v time.Time) *ArtifactCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableUpdatedAt(v *time.Time) *ArtifactCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ArtifactCreate) SetID(v string) *ArtifactCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ArtifactMutation object of the builder.
func (_c *ArtifactCreate) Mutation() *ArtifactMutation {
	return _c.mutation
}

// Save creates the Artifact in the database.
func (_c *ArtifactCreate) Save(ctx context.Context) (*Artifact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ArtifactCreate) SaveX(ctx context.Context) *Artifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArtifactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArtifactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ArtifactCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := artifact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := artifact.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ArtifactCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Artifact.workspace_id"`)}
	}
	if _, ok := _c.mutation.ObjectKey(); !ok {
		return &ValidationError{Name: "object_key", err: errors.New(`ent: missing required field "Artifact.object_key"`)}
	}
	if _, ok := _c.mutation.CorrelationID(); !ok {
		return &ValidationError{Name: "correlation_id", err: errors.New(`ent: missing required field "Artifact.correlation_id"`)}
	}
	if _, ok := _c.mutation.LastEventID(); !ok {
		return &ValidationError{Name: "last_event_id", err: errors.New(`ent: missing required field "Artifact.last_event_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Artifact.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Artifact.updated_at"`)}
	}
	return nil
}

func (_c *ArtifactCreate) sqlSave(ctx context.Context) (*Artifact, error) {
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
			return nil, fmt.Errorf("unexpected Artifact.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ArtifactCreate) createSpec() (*Artifact, *sqlgraph.CreateSpec) {
	var (
		_node = &Artifact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(artifact.Table, sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(artifact.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(artifact.FieldRunID, field.TypeString, value)
		_node.RunID = &value
	}
	if value, ok := _c.mutation.ObjectKey(); ok {
		_spec.SetField(artifact.FieldObjectKey, field.TypeString, value)
		_node.ObjectKey = value
	}
	if value, ok := _c.mutation.MediaType(); ok {
		_spec.SetField(artifact.FieldMediaType, field.TypeString, value)
		_node.MediaType = value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(artifact.FieldSizeBytes, field.TypeInt64, value)
		_node.SizeBytes = value
	}
	if value, ok := _c.mutation.CreatedByAgentID(); ok {
		_spec.SetField(artifact.FieldCreatedByAgentID, field.TypeString, value)
		_node.CreatedByAgentID = &value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(artifact.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.LastEventID(); ok {
		_spec.SetField(artifact.FieldLastEventID, field.TypeString, value)
		_node.LastEventID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(artifact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(artifact.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Artifact.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ArtifactUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *ArtifactCreate) OnConflict(opts ...sql.ConflictOption) *ArtifactUpsertOne {
	_c.conflict = opts
	return &ArtifactUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Artifact.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ArtifactCreate) OnConflictColumns(columns ...string) *ArtifactUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ArtifactUpsertOne{
		create: _c,
	}
}

type (
	// ArtifactUpsertOne is the builder for "upsert"-ing
	//  one Artifact node.
	ArtifactUpsertOne struct {
		create *ArtifactCreate
	}

	// ArtifactUpsert is the "OnConflict" setter.
	ArtifactUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *ArtifactUpsert) SetWorkspaceID(v string) *ArtifactUpsert {
	u.Set(artifact.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateWorkspaceID() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldWorkspaceID)
	return u
}

// SetRunID sets the "run_id" field.
func (u *ArtifactUpsert) SetRunID(v string) *ArtifactUpsert {
	u.Set(artifact.FieldRunID, v)
	return u
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateRunID() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldRunID)
	return u
}

// ClearRunID clears the value of the "run_id" field.
func (u *ArtifactUpsert) ClearRunID() *ArtifactUpsert {
	u.SetNull(artifact.FieldRunID)
	return u
}

// SetObjectKey sets the "object_key" field.
func (u *ArtifactUpsert) SetObjectKey(v string) *ArtifactUpsert {
	u.Set(artifact.FieldObjectKey, v)
	return u
}

// UpdateObjectKey sets the "object_key" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateObjectKey() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldObjectKey)
	return u
}

// SetMediaType sets the "media_type" field.
func (u *ArtifactUpsert) SetMediaType(v string) *ArtifactUpsert {
	u.Set(artifact.FieldMediaType, v)
	return u
}

// UpdateMediaType sets the "media_type" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateMediaType() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldMediaType)
	return u
}

// ClearMediaType clears the value of the "media_type" field.
func (u *ArtifactUpsert) ClearMediaType() *ArtifactUpsert {
	u.SetNull(artifact.FieldMediaType)
	return u
}

// SetSizeBytes sets the "size_bytes" field.
func (u *ArtifactUpsert) SetSizeBytes(v int64) *ArtifactUpsert {
	u.Set(artifact.FieldSizeBytes, v)
	return u
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateSizeBytes() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldSizeBytes)
	return u
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *ArtifactUpsert) AddSizeBytes(v int64) *ArtifactUpsert {
	u.Add(artifact.FieldSizeBytes, v)
	return u
}

// ClearSizeBytes clears the value of the "size_bytes" field.
func (u *ArtifactUpsert) ClearSizeBytes() *ArtifactUpsert {
	u.SetNull(artifact.FieldSizeBytes)
	return u
}

// SetCreatedByAgentID sets the "created_by_agent_id" field.
func (u *ArtifactUpsert) SetCreatedByAgentID(v string) *ArtifactUpsert {
	u.Set(artifact.FieldCreatedByAgentID, v)
	return u
}

// UpdateCreatedByAgentID sets the "created_by_agent_id" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateCreatedByAgentID() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldCreatedByAgentID)
	return u
}

// ClearCreatedByAgentID clears the value of the "created_by_agent_id" field.
func (u *ArtifactUpsert) ClearCreatedByAgentID() *ArtifactUpsert {
	u.SetNull(artifact.FieldCreatedByAgentID)
	return u
}

// SetCorrelationID sets the "correlation_id" field.
func (u *ArtifactUpsert) SetCorrelationID(v string) *ArtifactUpsert {
	u.Set(artifact.FieldCorrelationID, v)
	return u
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateCorrelationID() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldCorrelationID)
	return u
}

// SetLastEventID sets the "last_event_id" field.
func (u *ArtifactUpsert) SetLastEventID(v string) *ArtifactUpsert {
	u.Set(artifact.FieldLastEventID, v)
	return u
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateLastEventID() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldLastEventID)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ArtifactUpsert) SetCreatedAt(v time.Time) *ArtifactUpsert {
	u.Set(artifact.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateCreatedAt() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ArtifactUpsert) SetUpdatedAt(v time.Time) *ArtifactUpsert {
	u.Set(artifact.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateUpdatedAt() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Artifact.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(artifact.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ArtifactUpsertOne) UpdateNewValues() *ArtifactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(artifact.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Artifact.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ArtifactUpsertOne) Ignore() *ArtifactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ArtifactUpsertOne) DoNothing() *ArtifactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ArtifactCreate.OnConflict
// documentation for more info.
func (u *ArtifactUpsertOne) Update(set func(*ArtifactUpsert)) *ArtifactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ArtifactUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *ArtifactUpsertOne) SetWorkspaceID(v string) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateWorkspaceID() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetRunID sets the "run_id" field.
func (u *ArtifactUpsertOne) SetRunID(v string) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetRunID(v)
	})
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateRunID() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateRunID()
	})
}

// ClearRunID clears the value of the "run_id" field.
func (u *ArtifactUpsertOne) ClearRunID() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearRunID()
	})
}

// SetObjectKey sets the "object_key" field.
func (u *ArtifactUpsertOne) SetObjectKey(v string) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetObjectKey(v)
	})
}

// UpdateObjectKey sets the "object_key" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateObjectKey() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateObjectKey()
	})
}

// SetMediaType sets the "media_type" field.
func (u *ArtifactUpsertOne) SetMediaType(v string) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetMediaType(v)
	})
}

// UpdateMediaType sets the "media_type" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateMediaType() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateMediaType()
	})
}

// ClearMediaType clears the value of the "media_type" field.
func (u *ArtifactUpsertOne) ClearMediaType() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearMediaType()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *ArtifactUpsertOne) SetSizeBytes(v int64) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *ArtifactUpsertOne) AddSizeBytes(v int64) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateSizeBytes() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateSizeBytes()
	})
}

// ClearSizeBytes clears the value of the "size_bytes" field.
func (u *ArtifactUpsertOne) ClearSizeBytes() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearSizeBytes()
	})
}

// SetCreatedByAgentID sets the "created_by_agent_id" field.
func (u *ArtifactUpsertOne) SetCreatedByAgentID(v string) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetCreatedByAgentID(v)
	})
}

// UpdateCreatedByAgentID sets the "created_by_agent_id" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateCreatedByAgentID() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateCreatedByAgentID()
	})
}

// ClearCreatedByAgentID clears the value of the "created_by_agent_id" field.
func (u *ArtifactUpsertOne) ClearCreatedByAgentID() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearCreatedByAgentID()
	})
}

// SetCorrelationID sets the "correlation_id" field.
func (u *ArtifactUpsertOne) SetCorrelationID(v string) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateCorrelationID() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateCorrelationID()
	})
}

// SetLastEventID sets the "last_event_id" field.
func (u *ArtifactUpsertOne) SetLastEventID(v string) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetLastEventID(v)
	})
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateLastEventID() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateLastEventID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ArtifactUpsertOne) SetCreatedAt(v time.Time) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateCreatedAt() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ArtifactUpsertOne) SetUpdatedAt(v time.Time) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateUpdatedAt() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ArtifactUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ArtifactCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ArtifactUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ArtifactUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ArtifactUpsertOne.ID is not supported by MySQL driver. Use ArtifactUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ArtifactUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ArtifactCreateBulk is the builder for creating many Artifact entities in bulk.
type ArtifactCreateBulk struct {
	config
	err      error
	builders []*ArtifactCreate
	conflict []sql.ConflictOption
}

// Save creates the Artifact entities in the database.
func (_c *ArtifactCreateBulk) Save(ctx context.Context) ([]*Artifact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Artifact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ArtifactMutation)
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
func (_c *ArtifactCreateBulk) SaveX(ctx context.Context) []*Artifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArtifactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArtifactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Artifact.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ArtifactUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *ArtifactCreateBulk) OnConflict(opts ...sql.ConflictOption) *ArtifactUpsertBulk {
	_c.conflict = opts
	return &ArtifactUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Artifact.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ArtifactCreateBulk) OnConflictColumns(columns ...string) *ArtifactUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ArtifactUpsertBulk{
		create: _c,
	}
}

// ArtifactUpsertBulk is the builder for "upsert"-ing
// a bulk of Artifact nodes.
type ArtifactUpsertBulk struct {
	create *ArtifactCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Artifact.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(artifact.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ArtifactUpsertBulk) UpdateNewValues() *ArtifactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(artifact.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Artifact.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ArtifactUpsertBulk) Ignore() *ArtifactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ArtifactUpsertBulk) DoNothing() *ArtifactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ArtifactCreateBulk.OnConflict
// documentation for more info.
func (u *ArtifactUpsertBulk) Update(set func(*ArtifactUpsert)) *ArtifactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ArtifactUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *ArtifactUpsertBulk) SetWorkspaceID(v string) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateWorkspaceID() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetRunID sets the "run_id" field.
func (u *ArtifactUpsertBulk) SetRunID(v string) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetRunID(v)
	})
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateRunID() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateRunID()
	})
}

// ClearRunID clears the value of the "run_id" field.
func (u *ArtifactUpsertBulk) ClearRunID() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearRunID()
	})
}

// SetObjectKey sets the "object_key" field.
func (u *ArtifactUpsertBulk) SetObjectKey(v string) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetObjectKey(v)
	})
}

// UpdateObjectKey sets the "object_key" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateObjectKey() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateObjectKey()
	})
}

// SetMediaType sets the "media_type" field.
func (u *ArtifactUpsertBulk) SetMediaType(v string) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetMediaType(v)
	})
}

// UpdateMediaType sets the "media_type" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateMediaType() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateMediaType()
	})
}

// ClearMediaType clears the value of the "media_type" field.
func (u *ArtifactUpsertBulk) ClearMediaType() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearMediaType()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *ArtifactUpsertBulk) SetSizeBytes(v int64) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *ArtifactUpsertBulk) AddSizeBytes(v int64) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateSizeBytes() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateSizeBytes()
	})
}

// ClearSizeBytes clears the value of the "size_bytes" field.
func (u *ArtifactUpsertBulk) ClearSizeBytes() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearSizeBytes()
	})
}

// SetCreatedByAgentID sets the "created_by_agent_id" field.
func (u *ArtifactUpsertBulk) SetCreatedByAgentID(v string) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetCreatedByAgentID(v)
	})
}

// UpdateCreatedByAgentID sets the "created_by_agent_id" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateCreatedByAgentID() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateCreatedByAgentID()
	})
}

// ClearCreatedByAgentID clears the value of the "created_by_agent_id" field.
func (u *ArtifactUpsertBulk) ClearCreatedByAgentID() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearCreatedByAgentID()
	})
}

// SetCorrelationID sets the "correlation_id" field.
func (u *ArtifactUpsertBulk) SetCorrelationID(v string) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateCorrelationID() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateCorrelationID()
	})
}

// SetLastEventID sets the "last_event_id" field.
func (u *ArtifactUpsertBulk) SetLastEventID(v string) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetLastEventID(v)
	})
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateLastEventID() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateLastEventID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ArtifactUpsertBulk) SetCreatedAt(v time.Time) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateCreatedAt() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ArtifactUpsertBulk) SetUpdatedAt(v time.Time) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateUpdatedAt() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ArtifactUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ArtifactCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ArtifactCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ArtifactUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
