// Code generated by ent, DO NOT EDIT.

package evidencemanifest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/missionloop/groundcontrol/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldContainsFold(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldEQ(FieldWorkspaceID, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldEQ(FieldRunID, v))
}

// ManifestHash applies equality check predicate on the "manifest_hash" field. It's identical to ManifestHashEQ.
func ManifestHash(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldEQ(FieldManifestHash, v))
}

// LastEventID applies equality check predicate on the "last_event_id" field. It's identical to LastEventIDEQ.
func LastEventID(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldEQ(FieldLastEventID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldContainsFold(FieldRunID, v))
}

// ManifestHashEQ applies the EQ predicate on the "manifest_hash" field.
func ManifestHashEQ(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldEQ(FieldManifestHash, v))
}

// ManifestHashNEQ applies the NEQ predicate on the "manifest_hash" field.
func ManifestHashNEQ(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldNEQ(FieldManifestHash, v))
}

// ManifestHashIn applies the In predicate on the "manifest_hash" field.
func ManifestHashIn(vs ...string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldIn(FieldManifestHash, vs...))
}

// ManifestHashNotIn applies the NotIn predicate on the "manifest_hash" field.
func ManifestHashNotIn(vs ...string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldNotIn(FieldManifestHash, vs...))
}

// ManifestHashGT applies the GT predicate on the "manifest_hash" field.
func ManifestHashGT(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldGT(FieldManifestHash, v))
}

// ManifestHashGTE applies the GTE predicate on the "manifest_hash" field.
func ManifestHashGTE(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldGTE(FieldManifestHash, v))
}

// ManifestHashLT applies the LT predicate on the "manifest_hash" field.
func ManifestHashLT(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldLT(FieldManifestHash, v))
}

// ManifestHashLTE applies the LTE predicate on the "manifest_hash" field.
func ManifestHashLTE(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldLTE(FieldManifestHash, v))
}

// ManifestHashContains applies the Contains predicate on the "manifest_hash" field.
func ManifestHashContains(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldContains(FieldManifestHash, v))
}

// ManifestHashHasPrefix applies the HasPrefix predicate on the "manifest_hash" field.
func ManifestHashHasPrefix(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldHasPrefix(FieldManifestHash, v))
}

// ManifestHashHasSuffix applies the HasSuffix predicate on the "manifest_hash" field.
func ManifestHashHasSuffix(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldHasSuffix(FieldManifestHash, v))
}

// ManifestHashEqualFold applies the EqualFold predicate on the "manifest_hash" field.
func ManifestHashEqualFold(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldEqualFold(FieldManifestHash, v))
}

// ManifestHashContainsFold applies the ContainsFold predicate on the "manifest_hash" field.
func ManifestHashContainsFold(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldContainsFold(FieldManifestHash, v))
}

// LastEventIDEQ applies the EQ predicate on the "last_event_id" field.
func LastEventIDEQ(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldEQ(FieldLastEventID, v))
}

// LastEventIDNEQ applies the NEQ predicate on the "last_event_id" field.
func LastEventIDNEQ(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldNEQ(FieldLastEventID, v))
}

// LastEventIDIn applies the In predicate on the "last_event_id" field.
func LastEventIDIn(vs ...string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldIn(FieldLastEventID, vs...))
}

// LastEventIDNotIn applies the NotIn predicate on the "last_event_id" field.
func LastEventIDNotIn(vs ...string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldNotIn(FieldLastEventID, vs...))
}

// LastEventIDGT applies the GT predicate on the "last_event_id" field.
func LastEventIDGT(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldGT(FieldLastEventID, v))
}

// LastEventIDGTE applies the GTE predicate on the "last_event_id" field.
func LastEventIDGTE(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldGTE(FieldLastEventID, v))
}

// LastEventIDLT applies the LT predicate on the "last_event_id" field.
func LastEventIDLT(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldLT(FieldLastEventID, v))
}

// LastEventIDLTE applies the LTE predicate on the "last_event_id" field.
func LastEventIDLTE(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldLTE(FieldLastEventID, v))
}

// LastEventIDContains applies the Contains predicate on the "last_event_id" field.
func LastEventIDContains(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldContains(FieldLastEventID, v))
}

// LastEventIDHasPrefix applies the HasPrefix predicate on the "last_event_id" field.
func LastEventIDHasPrefix(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldHasPrefix(FieldLastEventID, v))
}

// LastEventIDHasSuffix applies the HasSuffix predicate on the "last_event_id" field.
func LastEventIDHasSuffix(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldHasSuffix(FieldLastEventID, v))
}

// LastEventIDEqualFold applies the EqualFold predicate on the "last_event_id" field.
func LastEventIDEqualFold(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldEqualFold(FieldLastEventID, v))
}

// LastEventIDContainsFold applies the ContainsFold predicate on the "last_event_id" field.
func LastEventIDContainsFold(v string) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldContainsFold(FieldLastEventID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EvidenceManifest) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EvidenceManifest) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EvidenceManifest) predicate.EvidenceManifest {
	return predicate.EvidenceManifest(sql.NotPredicates(p))
}
