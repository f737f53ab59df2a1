// Code generated by ent, DO NOT EDIT.

package ratelimitstreak

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/missionloop/groundcontrol/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldContainsFold(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldEQ(FieldWorkspaceID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldEQ(FieldAgentID, v))
}

// Scope applies equality check predicate on the "scope" field. It's identical to ScopeEQ.
func Scope(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldEQ(FieldScope, v))
}

// Consecutive429 applies equality check predicate on the "consecutive_429" field. It's identical to Consecutive429EQ.
func Consecutive429(v int) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldEQ(FieldConsecutive429, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldContainsFold(FieldAgentID, v))
}

// ScopeEQ applies the EQ predicate on the "scope" field.
func ScopeEQ(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldEQ(FieldScope, v))
}

// ScopeNEQ applies the NEQ predicate on the "scope" field.
func ScopeNEQ(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldNEQ(FieldScope, v))
}

// ScopeIn applies the In predicate on the "scope" field.
func ScopeIn(vs ...string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldIn(FieldScope, vs...))
}

// ScopeNotIn applies the NotIn predicate on the "scope" field.
func ScopeNotIn(vs ...string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldNotIn(FieldScope, vs...))
}

// ScopeGT applies the GT predicate on the "scope" field.
func ScopeGT(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldGT(FieldScope, v))
}

// ScopeGTE applies the GTE predicate on the "scope" field.
func ScopeGTE(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldGTE(FieldScope, v))
}

// ScopeLT applies the LT predicate on the "scope" field.
func ScopeLT(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldLT(FieldScope, v))
}

// ScopeLTE applies the LTE predicate on the "scope" field.
func ScopeLTE(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldLTE(FieldScope, v))
}

// ScopeContains applies the Contains predicate on the "scope" field.
func ScopeContains(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldContains(FieldScope, v))
}

// ScopeHasPrefix applies the HasPrefix predicate on the "scope" field.
func ScopeHasPrefix(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldHasPrefix(FieldScope, v))
}

// ScopeHasSuffix applies the HasSuffix predicate on the "scope" field.
func ScopeHasSuffix(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldHasSuffix(FieldScope, v))
}

// ScopeEqualFold applies the EqualFold predicate on the "scope" field.
func ScopeEqualFold(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldEqualFold(FieldScope, v))
}

// ScopeContainsFold applies the ContainsFold predicate on the "scope" field.
func ScopeContainsFold(v string) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldContainsFold(FieldScope, v))
}

// Consecutive429EQ applies the EQ predicate on the "consecutive_429" field.
func Consecutive429EQ(v int) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldEQ(FieldConsecutive429, v))
}

// Consecutive429NEQ applies the NEQ predicate on the "consecutive_429" field.
func Consecutive429NEQ(v int) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldNEQ(FieldConsecutive429, v))
}

// Consecutive429In applies the In predicate on the "consecutive_429" field.
func Consecutive429In(vs ...int) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldIn(FieldConsecutive429, vs...))
}

// Consecutive429NotIn applies the NotIn predicate on the "consecutive_429" field.
func Consecutive429NotIn(vs ...int) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldNotIn(FieldConsecutive429, vs...))
}

// Consecutive429GT applies the GT predicate on the "consecutive_429" field.
func Consecutive429GT(v int) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldGT(FieldConsecutive429, v))
}

// Consecutive429GTE applies the GTE predicate on the "consecutive_429" field.
func Consecutive429GTE(v int) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldGTE(FieldConsecutive429, v))
}

// Consecutive429LT applies the LT predicate on the "consecutive_429" field.
func Consecutive429LT(v int) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldLT(FieldConsecutive429, v))
}

// Consecutive429LTE applies the LTE predicate on the "consecutive_429" field.
func Consecutive429LTE(v int) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldLTE(FieldConsecutive429, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RateLimitStreak) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RateLimitStreak) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RateLimitStreak) predicate.RateLimitStreak {
	return predicate.RateLimitStreak(sql.NotPredicates(p))
}
