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
	"github.com/missionloop/groundcontrol/ent/incident"
	"github.com/missionloop/groundcontrol/ent/predicate"
)

// IncidentUpdate is the builder for updating Incident entities.
type IncidentUpdate struct {
	config
	hooks    []Hook
	mutation *IncidentMutation
}

// Where appends a list predicates to the IncidentUpdate builder.
func (_u *IncidentUpdate) Where(ps ...predicate.Incident) *IncidentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *IncidentUpdate) SetWorkspaceID(v string) *IncidentUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableWorkspaceID(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *IncidentUpdate) SetRunID(v string) *IncidentUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableRunID(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *IncidentUpdate) ClearRunID() *IncidentUpdate {
	_u.mutation.ClearRunID()
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *IncidentUpdate) SetCorrelationID(v string) *IncidentUpdate {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableCorrelationID(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (_u *IncidentUpdate) ClearCorrelationID() *IncidentUpdate {
	_u.mutation.ClearCorrelationID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *IncidentUpdate) SetTitle(v string) *IncidentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableTitle(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *IncidentUpdate) ClearTitle() *IncidentUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *IncidentUpdate) SetSeverity(v string) *IncidentUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableSeverity(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// ClearSeverity clears the value of the "severity" field.
func (_u *IncidentUpdate) ClearSeverity() *IncidentUpdate {
	_u.mutation.ClearSeverity()
	return _u
}

// SetStatus sets the "status" field.
func (_u *IncidentUpdate) SetStatus(v incident.Status) *IncidentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableStatus(v *incident.Status) *IncidentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRcaUpdatedAt sets the "rca_updated_at" field.
func (_u *IncidentUpdate) SetRcaUpdatedAt(v time.Time) *IncidentUpdate {
	_u.mutation.SetRcaUpdatedAt(v)
	return _u
}

// SetNillableRcaUpdatedAt sets the "rca_updated_at" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableRcaUpdatedAt(v *time.Time) *IncidentUpdate {
	if v != nil {
		_u.SetRcaUpdatedAt(*v)
	}
	return _u
}

// ClearRcaUpdatedAt clears the value of the "rca_updated_at" field.
func (_u *IncidentUpdate) ClearRcaUpdatedAt() *IncidentUpdate {
	_u.mutation.ClearRcaUpdatedAt()
	return _u
}

// SetLearningCount sets the "learning_count" field.
func (_u *IncidentUpdate) SetLearningCount(v int) *IncidentUpdate {
	_u.mutation.ResetLearningCount()
	_u.mutation.SetLearningCount(v)
	return _u
}

// SetNillableLearningCount sets the "learning_count" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableLearningCount(v *int) *IncidentUpdate {
	if v != nil {
		_u.SetLearningCount(*v)
	}
	return _u
}

// AddLearningCount adds value to the "learning_count" field.
func (_u *IncidentUpdate) AddLearningCount(v int) *IncidentUpdate {
	_u.mutation.AddLearningCount(v)
	return _u
}

// SetOpenedAt sets the "opened_at" field.
func (_u *IncidentUpdate) SetOpenedAt(v time.Time) *IncidentUpdate {
	_u.mutation.SetOpenedAt(v)
	return _u
}

// SetNillableOpenedAt sets the "opened_at" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableOpenedAt(v *time.Time) *IncidentUpdate {
	if v != nil {
		_u.SetOpenedAt(*v)
	}
	return _u
}

// SetClosedAt sets the "closed_at" field.
func (_u *IncidentUpdate) SetClosedAt(v time.Time) *IncidentUpdate {
	_u.mutation.SetClosedAt(v)
	return _u
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableClosedAt(v *time.Time) *IncidentUpdate {
	if v != nil {
		_u.SetClosedAt(*v)
	}
	return _u
}

// ClearClosedAt clears the value of the "closed_at" field.
func (_u *IncidentUpdate) ClearClosedAt() *IncidentUpdate {
	_u.mutation.ClearClosedAt()
	return _u
}

// SetLastEventID sets the "last_event_id" field.
func (_u *IncidentUpdate) SetLastEventID(v string) *IncidentUpdate {
	_u.mutation.SetLastEventID(v)
	return _u
}

// SetNillableLastEventID sets the "last_event_id" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableLastEventID(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetLastEventID(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IncidentUpdate) SetUpdatedAt(v time.Time) *IncidentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the IncidentMutation object of the builder.
func (_u *IncidentUpdate) Mutation() *IncidentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IncidentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncidentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IncidentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncidentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IncidentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := incident.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IncidentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := incident.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Incident.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IncidentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(incident.Table, incident.Columns, sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(incident.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(incident.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(incident.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(incident.FieldCorrelationID, field.TypeString, value)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(incident.FieldCorrelationID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(incident.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(incident.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(incident.FieldSeverity, field.TypeString, value)
	}
	if _u.mutation.SeverityCleared() {
		_spec.ClearField(incident.FieldSeverity, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(incident.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RcaUpdatedAt(); ok {
		_spec.SetField(incident.FieldRcaUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RcaUpdatedAtCleared() {
		_spec.ClearField(incident.FieldRcaUpdatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LearningCount(); ok {
		_spec.SetField(incident.FieldLearningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLearningCount(); ok {
		_spec.AddField(incident.FieldLearningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OpenedAt(); ok {
		_spec.SetField(incident.FieldOpenedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClosedAt(); ok {
		_spec.SetField(incident.FieldClosedAt, field.TypeTime, value)
	}
	if _u.mutation.ClosedAtCleared() {
		_spec.ClearField(incident.FieldClosedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastEventID(); ok {
		_spec.SetField(incident.FieldLastEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(incident.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incident.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IncidentUpdateOne is the builder for updating a single Incident entity.
type IncidentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IncidentMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *IncidentUpdateOne) SetWorkspaceID(v string) *IncidentUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableWorkspaceID(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *IncidentUpdateOne) SetRunID(v string) *IncidentUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableRunID(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *IncidentUpdateOne) ClearRunID() *IncidentUpdateOne {
	_u.mutation.ClearRunID()
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *IncidentUpdateOne) SetCorrelationID(v string) *IncidentUpdateOne {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableCorrelationID(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (_u *IncidentUpdateOne) ClearCorrelationID() *IncidentUpdateOne {
	_u.mutation.ClearCorrelationID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *IncidentUpdateOne) SetTitle(v string) *IncidentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableTitle(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *IncidentUpdateOne) ClearTitle() *IncidentUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *IncidentUpdateOne) SetSeverity(v string) *IncidentUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableSeverity(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// ClearSeverity clears the value of the "severity" field.
func (_u *IncidentUpdateOne) ClearSeverity() *IncidentUpdateOne {
	_u.mutation.ClearSeverity()
	return _u
}

// SetStatus sets the "status" field.
func (_u *IncidentUpdateOne) SetStatus(v incident.Status) *IncidentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableStatus(v *incident.Status) *IncidentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRcaUpdatedAt sets the "rca_updated_at" field.
func (_u *IncidentUpdateOne) SetRcaUpdatedAt(v time.Time) *IncidentUpdateOne {
	_u.mutation.SetRcaUpdatedAt(v)
	return _u
}

// SetNillableRcaUpdatedAt sets the "rca_updated_at" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableRcaUpdatedAt(v *time.Time) *IncidentUpdateOne {
	if v != nil {
		_u.SetRcaUpdatedAt(*v)
	}
	return _u
}

// ClearRcaUpdatedAt clears the value of the "rca_updated_at" field.
func (_u *IncidentUpdateOne) ClearRcaUpdatedAt() *IncidentUpdateOne {
	_u.mutation.ClearRcaUpdatedAt()
	return _u
}

// SetLearningCount sets the "learning_count" field.
func (_u *IncidentUpdateOne) SetLearningCount(v int) *IncidentUpdateOne {
	_u.mutation.ResetLearningCount()
	_u.mutation.SetLearningCount(v)
	return _u
}

// SetNillableLearningCount sets the "learning_count" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableLearningCount(v *int) *IncidentUpdateOne {
	if v != nil {
		_u.SetLearningCount(*v)
	}
	return _u
}

// AddLearningCount adds value to the "learning_count" field.
func (_u *IncidentUpdateOne) AddLearningCount(v int) *IncidentUpdateOne {
	_u.mutation.AddLearningCount(v)
	return _u
}

// SetOpenedAt sets the "opened_at" field.
func (_u *IncidentUpdateOne) SetOpenedAt(v time.Time) *IncidentUpdateOne {
	_u.mutation.SetOpenedAt(v)
	return _u
}

// SetNillableOpenedAt sets the "opened_at" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableOpenedAt(v *time.Time) *IncidentUpdateOne {
	if v != nil {
		_u.SetOpenedAt(*v)
	}
	return _u
}

// SetClosedAt sets the "closed_at" field.
func (_u *IncidentUpdateOne) SetClosedAt(v time.Time) *IncidentUpdateOne {
	_u.mutation.SetClosedAt(v)
	return _u
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableClosedAt(v *time.Time) *IncidentUpdateOne {
	if v != nil {
		_u.SetClosedAt(*v)
	}
	return _u
}

// ClearClosedAt clears the value of the "closed_at" field.
func (_u *IncidentUpdateOne) ClearClosedAt() *IncidentUpdateOne {
	_u.mutation.ClearClosedAt()
	return _u
}

// SetLastEventID sets the "last_event_id" field.
func (_u *IncidentUpdateOne) SetLastEventID(v string) *IncidentUpdateOne {
	_u.mutation.SetLastEventID(v)
	return _u
}

// SetNillableLastEventID sets the "last_event_id" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableLastEventID(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetLastEventID(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IncidentUpdateOne) SetUpdatedAt(v time.Time) *IncidentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the IncidentMutation object of the builder.
func (_u *IncidentUpdateOne) Mutation() *IncidentMutation {
	return _u.mutation
}

// Where appends a list predicates to the IncidentUpdate builder.
func (_u *IncidentUpdateOne) Where(ps ...predicate.Incident) *IncidentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IncidentUpdateOne) Select(field string, fields ...string) *IncidentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Incident entity.
func (_u *IncidentUpdateOne) Save(ctx context.Context) (*Incident, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncidentUpdateOne) SaveX(ctx context.Context) *Incident {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IncidentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncidentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IncidentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := incident.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IncidentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := incident.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Incident.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IncidentUpdateOne) sqlSave(ctx context.Context) (_node *Incident, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(incident.Table, incident.Columns, sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Incident.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, incident.FieldID)
		for _, f := range fields {
			if !incident.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != incident.FieldID {
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
		_spec.SetField(incident.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(incident.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(incident.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(incident.FieldCorrelationID, field.TypeString, value)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(incident.FieldCorrelationID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(incident.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(incident.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(incident.FieldSeverity, field.TypeString, value)
	}
	if _u.mutation.SeverityCleared() {
		_spec.ClearField(incident.FieldSeverity, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(incident.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RcaUpdatedAt(); ok {
		_spec.SetField(incident.FieldRcaUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RcaUpdatedAtCleared() {
		_spec.ClearField(incident.FieldRcaUpdatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LearningCount(); ok {
		_spec.SetField(incident.FieldLearningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLearningCount(); ok {
		_spec.AddField(incident.FieldLearningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OpenedAt(); ok {
		_spec.SetField(incident.FieldOpenedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClosedAt(); ok {
		_spec.SetField(incident.FieldClosedAt, field.TypeTime, value)
	}
	if _u.mutation.ClosedAtCleared() {
		_spec.ClearField(incident.FieldClosedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastEventID(); ok {
		_spec.SetField(incident.FieldLastEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(incident.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Incident{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incident.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
