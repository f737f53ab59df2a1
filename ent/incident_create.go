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
	"github.com/missionloop/groundcontrol/ent/incident"
)

// IncidentCreate is the builder for creating a Incident entity.
type IncidentCreate struct {
	config
	mutation *IncidentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *IncidentCreate) SetWorkspaceID(v string) *IncidentCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *IncidentCreate) SetRunID(v string) *IncidentCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableRunID(v *string) *IncidentCreate {
	if v != nil {
		_c.SetRunID(*v)
	}
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *IncidentCreate) SetCorrelationID(v string) *IncidentCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableCorrelationID(v *string) *IncidentCreate {
	if v != nil {
		_c.SetCorrelationID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *IncidentCreate) SetTitle(v string) *IncidentCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableTitle(v *string) *IncidentCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *IncidentCreate) SetSeverity(v string) *IncidentCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableSeverity(v *string) *IncidentCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *IncidentCreate) SetStatus(v incident.Status) *IncidentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableStatus(v *incident.Status) *IncidentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRcaUpdatedAt sets the "rca_updated_at" field.
func (_c *IncidentCreate) SetRcaUpdatedAt(v time.Time) *IncidentCreate {
	_c.mutation.SetRcaUpdatedAt(v)
	return _c
}

// SetNillableRcaUpdatedAt sets the "rca_updated_at" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableRcaUpdatedAt(v *time.Time) *IncidentCreate {
	if v != nil {
		_c.SetRcaUpdatedAt(*v)
	}
	return _c
}

// SetLearningCount sets the "learning_count" field.
func (_c *IncidentCreate) SetLearningCount(v int) *IncidentCreate {
	_c.mutation.SetLearningCount(v)
	return _c
}

// SetNillableLearningCount sets the "learning_count" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableLearningCount(v *int) *IncidentCreate {
	if v != nil {
		_c.SetLearningCount(*v)
	}
	return _c
}

// SetOpenedAt sets the "opened_at" field.
func (_c *IncidentCreate) SetOpenedAt(v time.Time) *IncidentCreate {
	_c.mutation.SetOpenedAt(v)
	return _c
}

// SetNillableOpenedAt sets the "opened_at" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableOpenedAt(v *time.Time) *IncidentCreate {
	if v != nil {
		_c.SetOpenedAt(*v)
	}
	return _c
}

// SetClosedAt sets the "closed_at" field.
func (_c *IncidentCreate) SetClosedAt(v time.Time) *IncidentCreate {
	_c.mutation.SetClosedAt(v)
	return _c
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableClosedAt(v *time.Time) *IncidentCreate {
	if v != nil {
		_c.SetClosedAt(*v)
	}
	return _c
}

// SetLastEventID sets the "last_event_id" field.
func (_c *IncidentCreate) SetLastEventID(v string) *IncidentCreate {
	_c.mutation.SetLastEventID(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *IncidentCreate) SetUpdatedAt(v time.Time) *IncidentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *IncidentCreate) SetNillableUpdatedAt(v *time.Time) *IncidentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IncidentCreate) SetID(v string) *IncidentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the IncidentMutation object of the builder.
func (_c *IncidentCreate) Mutation() *IncidentMutation {
	return _c.mutation
}

// Save creates the Incident in the database.
func (_c *IncidentCreate) Save(ctx context.Context) (*Incident, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IncidentCreate) SaveX(ctx context.Context) *Incident {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IncidentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IncidentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IncidentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := incident.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.LearningCount(); !ok {
		v := incident.DefaultLearningCount
		_c.mutation.SetLearningCount(v)
	}
	if _, ok := _c.mutation.OpenedAt(); !ok {
		v := incident.DefaultOpenedAt()
		_c.mutation.SetOpenedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := incident.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IncidentCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Incident.workspace_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Incident.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := incident.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Incident.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearningCount(); !ok {
		return &ValidationError{Name: "learning_count", err: errors.New(`ent: missing required field "Incident.learning_count"`)}
	}
	if _, ok := _c.mutation.OpenedAt(); !ok {
		return &ValidationError{Name: "opened_at", err: errors.New(`ent: missing required field "Incident.opened_at"`)}
	}
	if _, ok := _c.mutation.LastEventID(); !ok {
		return &ValidationError{Name: "last_event_id", err: errors.New(`ent: missing required field "Incident.last_event_id"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Incident.updated_at"`)}
	}
	return nil
}

func (_c *IncidentCreate) sqlSave(ctx context.Context) (*Incident, error) {
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
			return nil, fmt.Errorf("unexpected Incident.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IncidentCreate) createSpec() (*Incident, *sqlgraph.CreateSpec) {
	var (
		_node = &Incident{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(incident.Table, sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(incident.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(incident.FieldRunID, field.TypeString, value)
		_node.RunID = &value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(incident.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(incident.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(incident.FieldSeverity, field.TypeString, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(incident.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RcaUpdatedAt(); ok {
		_spec.SetField(incident.FieldRcaUpdatedAt, field.TypeTime, value)
		_node.RcaUpdatedAt = &value
	}
	if value, ok := _c.mutation.LearningCount(); ok {
		_spec.SetField(incident.FieldLearningCount, field.TypeInt, value)
		_node.LearningCount = value
	}
	if value, ok := _c.mutation.OpenedAt(); ok {
		_spec.SetField(incident.FieldOpenedAt, field.TypeTime, value)
		_node.OpenedAt = value
	}
	if value, ok := _c.mutation.ClosedAt(); ok {
		_spec.SetField(incident.FieldClosedAt, field.TypeTime, value)
		_node.ClosedAt = &value
	}
	if value, ok := _c.mutation.LastEventID(); ok {
		_spec.SetField(incident.FieldLastEventID, field.TypeString, value)
		_node.LastEventID = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(incident.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Incident.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IncidentUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *IncidentCreate) OnConflict(opts ...sql.ConflictOption) *IncidentUpsertOne {
	_c.conflict = opts
	return &IncidentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Incident.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IncidentCreate) OnConflictColumns(columns ...string) *IncidentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IncidentUpsertOne{
		create: _c,
	}
}

type (
	// IncidentUpsertOne is the builder for "upsert"-ing
	//  one Incident node.
	IncidentUpsertOne struct {
		create *IncidentCreate
	}

	// IncidentUpsert is the "OnConflict" setter.
	IncidentUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *IncidentUpsert) SetWorkspaceID(v string) *IncidentUpsert {
	u.Set(incident.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *IncidentUpsert) UpdateWorkspaceID() *IncidentUpsert {
	u.SetExcluded(incident.FieldWorkspaceID)
	return u
}

// SetRunID sets the "run_id" field.
func (u *IncidentUpsert) SetRunID(v string) *IncidentUpsert {
	u.Set(incident.FieldRunID, v)
	return u
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *IncidentUpsert) UpdateRunID() *IncidentUpsert {
	u.SetExcluded(incident.FieldRunID)
	return u
}

// ClearRunID clears the value of the "run_id" field.
func (u *IncidentUpsert) ClearRunID() *IncidentUpsert {
	u.SetNull(incident.FieldRunID)
	return u
}

// SetCorrelationID sets the "correlation_id" field.
func (u *IncidentUpsert) SetCorrelationID(v string) *IncidentUpsert {
	u.Set(incident.FieldCorrelationID, v)
	return u
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *IncidentUpsert) UpdateCorrelationID() *IncidentUpsert {
	u.SetExcluded(incident.FieldCorrelationID)
	return u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (u *IncidentUpsert) ClearCorrelationID() *IncidentUpsert {
	u.SetNull(incident.FieldCorrelationID)
	return u
}

// SetTitle sets the "title" field.
func (u *IncidentUpsert) SetTitle(v string) *IncidentUpsert {
	u.Set(incident.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *IncidentUpsert) UpdateTitle() *IncidentUpsert {
	u.SetExcluded(incident.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *IncidentUpsert) ClearTitle() *IncidentUpsert {
	u.SetNull(incident.FieldTitle)
	return u
}

// SetSeverity sets the "severity" field.
func (u *IncidentUpsert) SetSeverity(v string) *IncidentUpsert {
	u.Set(incident.FieldSeverity, v)
	return u
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *IncidentUpsert) UpdateSeverity() *IncidentUpsert {
	u.SetExcluded(incident.FieldSeverity)
	return u
}

// ClearSeverity clears the value of the "severity" field.
func (u *IncidentUpsert) ClearSeverity() *IncidentUpsert {
	u.SetNull(incident.FieldSeverity)
	return u
}

// SetStatus sets the "status" field.
func (u *IncidentUpsert) SetStatus(v incident.Status) *IncidentUpsert {
	u.Set(incident.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *IncidentUpsert) UpdateStatus() *IncidentUpsert {
	u.SetExcluded(incident.FieldStatus)
	return u
}

// SetRcaUpdatedAt sets the "rca_updated_at" field.
func (u *IncidentUpsert) SetRcaUpdatedAt(v time.Time) *IncidentUpsert {
	u.Set(incident.FieldRcaUpdatedAt, v)
	return u
}

// UpdateRcaUpdatedAt sets the "rca_updated_at" field to the value that was provided on create.
func (u *IncidentUpsert) UpdateRcaUpdatedAt() *IncidentUpsert {
	u.SetExcluded(incident.FieldRcaUpdatedAt)
	return u
}

// ClearRcaUpdatedAt clears the value of the "rca_updated_at" field.
func (u *IncidentUpsert) ClearRcaUpdatedAt() *IncidentUpsert {
	u.SetNull(incident.FieldRcaUpdatedAt)
	return u
}

// SetLearningCount sets the "learning_count" field.
func (u *IncidentUpsert) SetLearningCount(v int) *IncidentUpsert {
	u.Set(incident.FieldLearningCount, v)
	return u
}

// UpdateLearningCount sets the "learning_count" field to the value that was provided on create.
func (u *IncidentUpsert) UpdateLearningCount() *IncidentUpsert {
	u.SetExcluded(incident.FieldLearningCount)
	return u
}

// AddLearningCount adds v to the "learning_count" field.
func (u *IncidentUpsert) AddLearningCount(v int) *IncidentUpsert {
	u.Add(incident.FieldLearningCount, v)
	return u
}

// SetOpenedAt sets the "opened_at" field.
func (u *IncidentUpsert) SetOpenedAt(v time.Time) *IncidentUpsert {
	u.Set(incident.FieldOpenedAt, v)
	return u
}

// UpdateOpenedAt sets the "opened_at" field to the value that was provided on create.
func (u *IncidentUpsert) UpdateOpenedAt() *IncidentUpsert {
	u.SetExcluded(incident.FieldOpenedAt)
	return u
}

// SetClosedAt sets the "closed_at" field.
func (u *IncidentUpsert) SetClosedAt(v time.Time) *IncidentUpsert {
	u.Set(incident.FieldClosedAt, v)
	return u
}

// UpdateClosedAt sets the "closed_at" field to the value that was provided on create.
func (u *IncidentUpsert) UpdateClosedAt() *IncidentUpsert {
	u.SetExcluded(incident.FieldClosedAt)
	return u
}

// ClearClosedAt clears the value of the "closed_at" field.
func (u *IncidentUpsert) ClearClosedAt() *IncidentUpsert {
	u.SetNull(incident.FieldClosedAt)
	return u
}

// SetLastEventID sets the "last_event_id" field.
func (u *IncidentUpsert) SetLastEventID(v string) *IncidentUpsert {
	u.Set(incident.FieldLastEventID, v)
	return u
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *IncidentUpsert) UpdateLastEventID() *IncidentUpsert {
	u.SetExcluded(incident.FieldLastEventID)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *IncidentUpsert) SetUpdatedAt(v time.Time) *IncidentUpsert {
	u.Set(incident.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *IncidentUpsert) UpdateUpdatedAt() *IncidentUpsert {
	u.SetExcluded(incident.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Incident.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(incident.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *IncidentUpsertOne) UpdateNewValues() *IncidentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(incident.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Incident.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *IncidentUpsertOne) Ignore() *IncidentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IncidentUpsertOne) DoNothing() *IncidentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IncidentCreate.OnConflict
// documentation for more info.
func (u *IncidentUpsertOne) Update(set func(*IncidentUpsert)) *IncidentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IncidentUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *IncidentUpsertOne) SetWorkspaceID(v string) *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *IncidentUpsertOne) UpdateWorkspaceID() *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetRunID sets the "run_id" field.
func (u *IncidentUpsertOne) SetRunID(v string) *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.SetRunID(v)
	})
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *IncidentUpsertOne) UpdateRunID() *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.UpdateRunID()
	})
}

// ClearRunID clears the value of the "run_id" field.
func (u *IncidentUpsertOne) ClearRunID() *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.ClearRunID()
	})
}

// SetCorrelationID sets the "correlation_id" field.
func (u *IncidentUpsertOne) SetCorrelationID(v string) *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *IncidentUpsertOne) UpdateCorrelationID() *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.UpdateCorrelationID()
	})
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (u *IncidentUpsertOne) ClearCorrelationID() *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.ClearCorrelationID()
	})
}

// SetTitle sets the "title" field.
func (u *IncidentUpsertOne) SetTitle(v string) *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *IncidentUpsertOne) UpdateTitle() *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *IncidentUpsertOne) ClearTitle() *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.ClearTitle()
	})
}

// SetSeverity sets the "severity" field.
func (u *IncidentUpsertOne) SetSeverity(v string) *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *IncidentUpsertOne) UpdateSeverity() *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.UpdateSeverity()
	})
}

// ClearSeverity clears the value of the "severity" field.
func (u *IncidentUpsertOne) ClearSeverity() *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.ClearSeverity()
	})
}

// SetStatus sets the "status" field.
func (u *IncidentUpsertOne) SetStatus(v incident.Status) *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *IncidentUpsertOne) UpdateStatus() *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.UpdateStatus()
	})
}

// SetRcaUpdatedAt sets the "rca_updated_at" field.
func (u *IncidentUpsertOne) SetRcaUpdatedAt(v time.Time) *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.SetRcaUpdatedAt(v)
	})
}

// UpdateRcaUpdatedAt sets the "rca_updated_at" field to the value that was provided on create.
func (u *IncidentUpsertOne) UpdateRcaUpdatedAt() *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.UpdateRcaUpdatedAt()
	})
}

// ClearRcaUpdatedAt clears the value of the "rca_updated_at" field.
func (u *IncidentUpsertOne) ClearRcaUpdatedAt() *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.ClearRcaUpdatedAt()
	})
}

// SetLearningCount sets the "learning_count" field.
func (u *IncidentUpsertOne) SetLearningCount(v int) *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.SetLearningCount(v)
	})
}

// AddLearningCount adds v to the "learning_count" field.
func (u *IncidentUpsertOne) AddLearningCount(v int) *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.AddLearningCount(v)
	})
}

// UpdateLearningCount sets the "learning_count" field to the value that was provided on create.
func (u *IncidentUpsertOne) UpdateLearningCount() *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.UpdateLearningCount()
	})
}

// SetOpenedAt sets the "opened_at" field.
func (u *IncidentUpsertOne) SetOpenedAt(v time.Time) *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.SetOpenedAt(v)
	})
}

// UpdateOpenedAt sets the "opened_at" field to the value that was provided on create.
func (u *IncidentUpsertOne) UpdateOpenedAt() *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.UpdateOpenedAt()
	})
}

// SetClosedAt sets the "closed_at" field.
func (u *IncidentUpsertOne) SetClosedAt(v time.Time) *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.SetClosedAt(v)
	})
}

// UpdateClosedAt sets the "closed_at" field to the value that was provided on create.
func (u *IncidentUpsertOne) UpdateClosedAt() *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.UpdateClosedAt()
	})
}

// ClearClosedAt clears the value of the "closed_at" field.
func (u *IncidentUpsertOne) ClearClosedAt() *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.ClearClosedAt()
	})
}

// SetLastEventID sets the "last_event_id" field.
func (u *IncidentUpsertOne) SetLastEventID(v string) *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.SetLastEventID(v)
	})
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *IncidentUpsertOne) UpdateLastEventID() *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.UpdateLastEventID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *IncidentUpsertOne) SetUpdatedAt(v time.Time) *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *IncidentUpsertOne) UpdateUpdatedAt() *IncidentUpsertOne {
	return u.Update(func(s *IncidentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *IncidentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IncidentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IncidentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *IncidentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: IncidentUpsertOne.ID is not supported by MySQL driver. Use IncidentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *IncidentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// IncidentCreateBulk is the builder for creating many Incident entities in bulk.
type IncidentCreateBulk struct {
	config
	err      error
	builders []*IncidentCreate
	conflict []sql.ConflictOption
}

// Save creates the Incident entities in the database.
func (_c *IncidentCreateBulk) Save(ctx context.Context) ([]*Incident, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Incident, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IncidentMutation)
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
func (_c *IncidentCreateBulk) SaveX(ctx context.Context) []*Incident {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IncidentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IncidentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Incident.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IncidentUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *IncidentCreateBulk) OnConflict(opts ...sql.ConflictOption) *IncidentUpsertBulk {
	_c.conflict = opts
	return &IncidentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Incident.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IncidentCreateBulk) OnConflictColumns(columns ...string) *IncidentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IncidentUpsertBulk{
		create: _c,
	}
}

// IncidentUpsertBulk is the builder for "upsert"-ing
// a bulk of Incident nodes.
type IncidentUpsertBulk struct {
	create *IncidentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Incident.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(incident.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *IncidentUpsertBulk) UpdateNewValues() *IncidentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(incident.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Incident.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *IncidentUpsertBulk) Ignore() *IncidentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IncidentUpsertBulk) DoNothing() *IncidentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IncidentCreateBulk.OnConflict
// documentation for more info.
func (u *IncidentUpsertBulk) Update(set func(*IncidentUpsert)) *IncidentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IncidentUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *IncidentUpsertBulk) SetWorkspaceID(v string) *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *IncidentUpsertBulk) UpdateWorkspaceID() *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetRunID sets the "run_id" field.
func (u *IncidentUpsertBulk) SetRunID(v string) *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.SetRunID(v)
	})
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *IncidentUpsertBulk) UpdateRunID() *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.UpdateRunID()
	})
}

// ClearRunID clears the value of the "run_id" field.
func (u *IncidentUpsertBulk) ClearRunID() *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.ClearRunID()
	})
}

// SetCorrelationID sets the "correlation_id" field.
func (u *IncidentUpsertBulk) SetCorrelationID(v string) *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *IncidentUpsertBulk) UpdateCorrelationID() *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.UpdateCorrelationID()
	})
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (u *IncidentUpsertBulk) ClearCorrelationID() *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.ClearCorrelationID()
	})
}

// SetTitle sets the "title" field.
func (u *IncidentUpsertBulk) SetTitle(v string) *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *IncidentUpsertBulk) UpdateTitle() *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *IncidentUpsertBulk) ClearTitle() *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.ClearTitle()
	})
}

// SetSeverity sets the "severity" field.
func (u *IncidentUpsertBulk) SetSeverity(v string) *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *IncidentUpsertBulk) UpdateSeverity() *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.UpdateSeverity()
	})
}

// ClearSeverity clears the value of the "severity" field.
func (u *IncidentUpsertBulk) ClearSeverity() *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.ClearSeverity()
	})
}

// SetStatus sets the "status" field.
func (u *IncidentUpsertBulk) SetStatus(v incident.Status) *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *IncidentUpsertBulk) UpdateStatus() *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.UpdateStatus()
	})
}

// SetRcaUpdatedAt sets the "rca_updated_at" field.
func (u *IncidentUpsertBulk) SetRcaUpdatedAt(v time.Time) *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.SetRcaUpdatedAt(v)
	})
}

// UpdateRcaUpdatedAt sets the "rca_updated_at" field to the value that was provided on create.
func (u *IncidentUpsertBulk) UpdateRcaUpdatedAt() *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.UpdateRcaUpdatedAt()
	})
}

// ClearRcaUpdatedAt clears the value of the "rca_updated_at" field.
func (u *IncidentUpsertBulk) ClearRcaUpdatedAt() *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.ClearRcaUpdatedAt()
	})
}

// SetLearningCount sets the "learning_count" field.
func (u *IncidentUpsertBulk) SetLearningCount(v int) *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.SetLearningCount(v)
	})
}

// AddLearningCount adds v to the "learning_count" field.
func (u *IncidentUpsertBulk) AddLearningCount(v int) *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.AddLearningCount(v)
	})
}

// UpdateLearningCount sets the "learning_count" field to the value that was provided on create.
func (u *IncidentUpsertBulk) UpdateLearningCount() *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.UpdateLearningCount()
	})
}

// SetOpenedAt sets the "opened_at" field.
func (u *IncidentUpsertBulk) SetOpenedAt(v time.Time) *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.SetOpenedAt(v)
	})
}

// UpdateOpenedAt sets the "opened_at" field to the value that was provided on create.
func (u *IncidentUpsertBulk) UpdateOpenedAt() *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.UpdateOpenedAt()
	})
}

// SetClosedAt sets the "closed_at" field.
func (u *IncidentUpsertBulk) SetClosedAt(v time.Time) *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.SetClosedAt(v)
	})
}

// UpdateClosedAt sets the "closed_at" field to the value that was provided on create.
func (u *IncidentUpsertBulk) UpdateClosedAt() *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.UpdateClosedAt()
	})
}

// ClearClosedAt clears the value of the "closed_at" field.
func (u *IncidentUpsertBulk) ClearClosedAt() *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.ClearClosedAt()
	})
}

// SetLastEventID sets the "last_event_id" field.
func (u *IncidentUpsertBulk) SetLastEventID(v string) *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.SetLastEventID(v)
	})
}

// UpdateLastEventID sets the "last_event_id" field to the value that was provided on create.
func (u *IncidentUpsertBulk) UpdateLastEventID() *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.UpdateLastEventID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *IncidentUpsertBulk) SetUpdatedAt(v time.Time) *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *IncidentUpsertBulk) UpdateUpdatedAt() *IncidentUpsertBulk {
	return u.Update(func(s *IncidentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *IncidentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the IncidentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IncidentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IncidentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
