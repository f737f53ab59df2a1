// Code generated by ent, DO NOT EDIT.

package incidentlearning

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/missionloop/groundcontrol/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldContainsFold(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldEQ(FieldWorkspaceID, v))
}

// IncidentID applies equality check predicate on the "incident_id" field. It's identical to IncidentIDEQ.
func IncidentID(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldEQ(FieldIncidentID, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldEQ(FieldSummary, v))
}

// LoggedBy applies equality check predicate on the "logged_by" field. It's identical to LoggedByEQ.
func LoggedBy(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldEQ(FieldLoggedBy, v))
}

// LastEventID applies equality check predicate on the "last_event_id" field. It's identical to LastEventIDEQ.
func LastEventID(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldEQ(FieldLastEventID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldEQ(FieldCreatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// IncidentIDEQ applies the EQ predicate on the "incident_id" field.
func IncidentIDEQ(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldEQ(FieldIncidentID, v))
}

// IncidentIDNEQ applies the NEQ predicate on the "incident_id" field.
func IncidentIDNEQ(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldNEQ(FieldIncidentID, v))
}

// IncidentIDIn applies the In predicate on the "incident_id" field.
func IncidentIDIn(vs ...string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldIn(FieldIncidentID, vs...))
}

// IncidentIDNotIn applies the NotIn predicate on the "incident_id" field.
func IncidentIDNotIn(vs ...string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldNotIn(FieldIncidentID, vs...))
}

// IncidentIDGT applies the GT predicate on the "incident_id" field.
func IncidentIDGT(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldGT(FieldIncidentID, v))
}

// IncidentIDGTE applies the GTE predicate on the "incident_id" field.
func IncidentIDGTE(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldGTE(FieldIncidentID, v))
}

// IncidentIDLT applies the LT predicate on the "incident_id" field.
func IncidentIDLT(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldLT(FieldIncidentID, v))
}

// IncidentIDLTE applies the LTE predicate on the "incident_id" field.
func IncidentIDLTE(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldLTE(FieldIncidentID, v))
}

// IncidentIDContains applies the Contains predicate on the "incident_id" field.
func IncidentIDContains(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldContains(FieldIncidentID, v))
}

// IncidentIDHasPrefix applies the HasPrefix predicate on the "incident_id" field.
func IncidentIDHasPrefix(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldHasPrefix(FieldIncidentID, v))
}

// IncidentIDHasSuffix applies the HasSuffix predicate on the "incident_id" field.
func IncidentIDHasSuffix(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldHasSuffix(FieldIncidentID, v))
}

// IncidentIDEqualFold applies the EqualFold predicate on the "incident_id" field.
func IncidentIDEqualFold(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldEqualFold(FieldIncidentID, v))
}

// IncidentIDContainsFold applies the ContainsFold predicate on the "incident_id" field.
func IncidentIDContainsFold(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldContainsFold(FieldIncidentID, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldContainsFold(FieldSummary, v))
}

// LoggedByEQ applies the EQ predicate on the "logged_by" field.
func LoggedByEQ(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldEQ(FieldLoggedBy, v))
}

// LoggedByNEQ applies the NEQ predicate on the "logged_by" field.
func LoggedByNEQ(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldNEQ(FieldLoggedBy, v))
}

// LoggedByIn applies the In predicate on the "logged_by" field.
func LoggedByIn(vs ...string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldIn(FieldLoggedBy, vs...))
}

// LoggedByNotIn applies the NotIn predicate on the "logged_by" field.
func LoggedByNotIn(vs ...string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldNotIn(FieldLoggedBy, vs...))
}

// LoggedByGT applies the GT predicate on the "logged_by" field.
func LoggedByGT(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldGT(FieldLoggedBy, v))
}

// LoggedByGTE applies the GTE predicate on the "logged_by" field.
func LoggedByGTE(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldGTE(FieldLoggedBy, v))
}

// LoggedByLT applies the LT predicate on the "logged_by" field.
func LoggedByLT(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldLT(FieldLoggedBy, v))
}

// LoggedByLTE applies the LTE predicate on the "logged_by" field.
func LoggedByLTE(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldLTE(FieldLoggedBy, v))
}

// LoggedByContains applies the Contains predicate on the "logged_by" field.
func LoggedByContains(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldContains(FieldLoggedBy, v))
}

// LoggedByHasPrefix applies the HasPrefix predicate on the "logged_by" field.
func LoggedByHasPrefix(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldHasPrefix(FieldLoggedBy, v))
}

// LoggedByHasSuffix applies the HasSuffix predicate on the "logged_by" field.
func LoggedByHasSuffix(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldHasSuffix(FieldLoggedBy, v))
}

// LoggedByIsNil applies the IsNil predicate on the "logged_by" field.
func LoggedByIsNil() predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldIsNull(FieldLoggedBy))
}

// LoggedByNotNil applies the NotNil predicate on the "logged_by" field.
func LoggedByNotNil() predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldNotNull(FieldLoggedBy))
}

// LoggedByEqualFold applies the EqualFold predicate on the "logged_by" field.
func LoggedByEqualFold(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldEqualFold(FieldLoggedBy, v))
}

// LoggedByContainsFold applies the ContainsFold predicate on the "logged_by" field.
func LoggedByContainsFold(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldContainsFold(FieldLoggedBy, v))
}

// LastEventIDEQ applies the EQ predicate on the "last_event_id" field.
func LastEventIDEQ(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldEQ(FieldLastEventID, v))
}

// LastEventIDNEQ applies the NEQ predicate on the "last_event_id" field.
func LastEventIDNEQ(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldNEQ(FieldLastEventID, v))
}

// LastEventIDIn applies the In predicate on the "last_event_id" field.
func LastEventIDIn(vs ...string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldIn(FieldLastEventID, vs...))
}

// LastEventIDNotIn applies the NotIn predicate on the "last_event_id" field.
func LastEventIDNotIn(vs ...string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldNotIn(FieldLastEventID, vs...))
}

// LastEventIDGT applies the GT predicate on the "last_event_id" field.
func LastEventIDGT(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldGT(FieldLastEventID, v))
}

// LastEventIDGTE applies the GTE predicate on the "last_event_id" field.
func LastEventIDGTE(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldGTE(FieldLastEventID, v))
}

// LastEventIDLT applies the LT predicate on the "last_event_id" field.
func LastEventIDLT(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldLT(FieldLastEventID, v))
}

// LastEventIDLTE applies the LTE predicate on the "last_event_id" field.
func LastEventIDLTE(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldLTE(FieldLastEventID, v))
}

// LastEventIDContains applies the Contains predicate on the "last_event_id" field.
func LastEventIDContains(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldContains(FieldLastEventID, v))
}

// LastEventIDHasPrefix applies the HasPrefix predicate on the "last_event_id" field.
func LastEventIDHasPrefix(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldHasPrefix(FieldLastEventID, v))
}

// LastEventIDHasSuffix applies the HasSuffix predicate on the "last_event_id" field.
func LastEventIDHasSuffix(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldHasSuffix(FieldLastEventID, v))
}

// LastEventIDEqualFold applies the EqualFold predicate on the "last_event_id" field.
func LastEventIDEqualFold(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldEqualFold(FieldLastEventID, v))
}

// LastEventIDContainsFold applies the ContainsFold predicate on the "last_event_id" field.
func LastEventIDContainsFold(v string) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldContainsFold(FieldLastEventID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IncidentLearning) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IncidentLearning) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IncidentLearning) predicate.IncidentLearning {
	return predicate.IncidentLearning(sql.NotPredicates(p))
}
