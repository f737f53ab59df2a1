// Code generated by ent, DO NOT EDIT.

package skillentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/missionloop/groundcontrol/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldContainsFold(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldEQ(FieldWorkspaceID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldEQ(FieldAgentID, v))
}

// SkillName applies equality check predicate on the "skill_name" field. It's identical to SkillNameEQ.
func SkillName(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldEQ(FieldSkillName, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int64) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldEQ(FieldAttempts, v))
}

// Successes applies equality check predicate on the "successes" field. It's identical to SuccessesEQ.
func Successes(v int64) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldEQ(FieldSuccesses, v))
}

// SurvivalScore applies equality check predicate on the "survival_score" field. It's identical to SurvivalScoreEQ.
func SurvivalScore(v float64) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldEQ(FieldSurvivalScore, v))
}

// LastEventID applies equality check predicate on the "last_event_id" field. It's identical to LastEventIDEQ.
func LastEventID(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldEQ(FieldLastEventID, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldContainsFold(FieldAgentID, v))
}

// SkillNameEQ applies the EQ predicate on the "skill_name" field.
func SkillNameEQ(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldEQ(FieldSkillName, v))
}

// SkillNameNEQ applies the NEQ predicate on the "skill_name" field.
func SkillNameNEQ(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldNEQ(FieldSkillName, v))
}

// SkillNameIn applies the In predicate on the "skill_name" field.
func SkillNameIn(vs ...string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldIn(FieldSkillName, vs...))
}

// SkillNameNotIn applies the NotIn predicate on the "skill_name" field.
func SkillNameNotIn(vs ...string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldNotIn(FieldSkillName, vs...))
}

// SkillNameGT applies the GT predicate on the "skill_name" field.
func SkillNameGT(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldGT(FieldSkillName, v))
}

// SkillNameGTE applies the GTE predicate on the "skill_name" field.
func SkillNameGTE(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldGTE(FieldSkillName, v))
}

// SkillNameLT applies the LT predicate on the "skill_name" field.
func SkillNameLT(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldLT(FieldSkillName, v))
}

// SkillNameLTE applies the LTE predicate on the "skill_name" field.
func SkillNameLTE(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldLTE(FieldSkillName, v))
}

// SkillNameContains applies the Contains predicate on the "skill_name" field.
func SkillNameContains(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldContains(FieldSkillName, v))
}

// SkillNameHasPrefix applies the HasPrefix predicate on the "skill_name" field.
func SkillNameHasPrefix(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldHasPrefix(FieldSkillName, v))
}

// SkillNameHasSuffix applies the HasSuffix predicate on the "skill_name" field.
func SkillNameHasSuffix(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldHasSuffix(FieldSkillName, v))
}

// SkillNameEqualFold applies the EqualFold predicate on the "skill_name" field.
func SkillNameEqualFold(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldEqualFold(FieldSkillName, v))
}

// SkillNameContainsFold applies the ContainsFold predicate on the "skill_name" field.
func SkillNameContainsFold(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldContainsFold(FieldSkillName, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int64) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int64) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int64) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int64) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int64) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int64) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int64) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int64) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldLTE(FieldAttempts, v))
}

// SuccessesEQ applies the EQ predicate on the "successes" field.
func SuccessesEQ(v int64) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldEQ(FieldSuccesses, v))
}

// SuccessesNEQ applies the NEQ predicate on the "successes" field.
func SuccessesNEQ(v int64) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldNEQ(FieldSuccesses, v))
}

// SuccessesIn applies the In predicate on the "successes" field.
func SuccessesIn(vs ...int64) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldIn(FieldSuccesses, vs...))
}

// SuccessesNotIn applies the NotIn predicate on the "successes" field.
func SuccessesNotIn(vs ...int64) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldNotIn(FieldSuccesses, vs...))
}

// SuccessesGT applies the GT predicate on the "successes" field.
func SuccessesGT(v int64) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldGT(FieldSuccesses, v))
}

// SuccessesGTE applies the GTE predicate on the "successes" field.
func SuccessesGTE(v int64) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldGTE(FieldSuccesses, v))
}

// SuccessesLT applies the LT predicate on the "successes" field.
func SuccessesLT(v int64) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldLT(FieldSuccesses, v))
}

// SuccessesLTE applies the LTE predicate on the "successes" field.
func SuccessesLTE(v int64) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldLTE(FieldSuccesses, v))
}

// SurvivalScoreEQ applies the EQ predicate on the "survival_score" field.
func SurvivalScoreEQ(v float64) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldEQ(FieldSurvivalScore, v))
}

// SurvivalScoreNEQ applies the NEQ predicate on the "survival_score" field.
func SurvivalScoreNEQ(v float64) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldNEQ(FieldSurvivalScore, v))
}

// SurvivalScoreIn applies the In predicate on the "survival_score" field.
func SurvivalScoreIn(vs ...float64) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldIn(FieldSurvivalScore, vs...))
}

// SurvivalScoreNotIn applies the NotIn predicate on the "survival_score" field.
func SurvivalScoreNotIn(vs ...float64) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldNotIn(FieldSurvivalScore, vs...))
}

// SurvivalScoreGT applies the GT predicate on the "survival_score" field.
func SurvivalScoreGT(v float64) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldGT(FieldSurvivalScore, v))
}

// SurvivalScoreGTE applies the GTE predicate on the "survival_score" field.
func SurvivalScoreGTE(v float64) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldGTE(FieldSurvivalScore, v))
}

// SurvivalScoreLT applies the LT predicate on the "survival_score" field.
func SurvivalScoreLT(v float64) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldLT(FieldSurvivalScore, v))
}

// SurvivalScoreLTE applies the LTE predicate on the "survival_score" field.
func SurvivalScoreLTE(v float64) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldLTE(FieldSurvivalScore, v))
}

// LastEventIDEQ applies the EQ predicate on the "last_event_id" field.
func LastEventIDEQ(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldEQ(FieldLastEventID, v))
}

// LastEventIDNEQ applies the NEQ predicate on the "last_event_id" field.
func LastEventIDNEQ(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldNEQ(FieldLastEventID, v))
}

// LastEventIDIn applies the In predicate on the "last_event_id" field.
func LastEventIDIn(vs ...string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldIn(FieldLastEventID, vs...))
}

// LastEventIDNotIn applies the NotIn predicate on the "last_event_id" field.
func LastEventIDNotIn(vs ...string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldNotIn(FieldLastEventID, vs...))
}

// LastEventIDGT applies the GT predicate on the "last_event_id" field.
func LastEventIDGT(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldGT(FieldLastEventID, v))
}

// LastEventIDGTE applies the GTE predicate on the "last_event_id" field.
func LastEventIDGTE(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldGTE(FieldLastEventID, v))
}

// LastEventIDLT applies the LT predicate on the "last_event_id" field.
func LastEventIDLT(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldLT(FieldLastEventID, v))
}

// LastEventIDLTE applies the LTE predicate on the "last_event_id" field.
func LastEventIDLTE(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldLTE(FieldLastEventID, v))
}

// LastEventIDContains applies the Contains predicate on the "last_event_id" field.
func LastEventIDContains(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldContains(FieldLastEventID, v))
}

// LastEventIDHasPrefix applies the HasPrefix predicate on the "last_event_id" field.
func LastEventIDHasPrefix(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldHasPrefix(FieldLastEventID, v))
}

// LastEventIDHasSuffix applies the HasSuffix predicate on the "last_event_id" field.
func LastEventIDHasSuffix(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldHasSuffix(FieldLastEventID, v))
}

// LastEventIDEqualFold applies the EqualFold predicate on the "last_event_id" field.
func LastEventIDEqualFold(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldEqualFold(FieldLastEventID, v))
}

// LastEventIDContainsFold applies the ContainsFold predicate on the "last_event_id" field.
func LastEventIDContainsFold(v string) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldContainsFold(FieldLastEventID, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SkillEntry {
	return predicate.SkillEntry(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SkillEntry) predicate.SkillEntry {
	return predicate.SkillEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SkillEntry) predicate.SkillEntry {
	return predicate.SkillEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SkillEntry) predicate.SkillEntry {
	return predicate.SkillEntry(sql.NotPredicates(p))
}
