// Code generated by ent, DO NOT EDIT.

package principal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/missionloop/groundcontrol/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Principal {
	return predicate.Principal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Principal {
	return predicate.Principal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Principal {
	return predicate.Principal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Principal {
	return predicate.Principal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Principal {
	return predicate.Principal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Principal {
	return predicate.Principal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Principal {
	return predicate.Principal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Principal {
	return predicate.Principal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Principal {
	return predicate.Principal(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Principal {
	return predicate.Principal(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Principal {
	return predicate.Principal(sql.FieldContainsFold(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.Principal {
	return predicate.Principal(sql.FieldEQ(FieldWorkspaceID, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.Principal {
	return predicate.Principal(sql.FieldEQ(FieldDisplayName, v))
}

// LegacyActorType applies equality check predicate on the "legacy_actor_type" field. It's identical to LegacyActorTypeEQ.
func LegacyActorType(v string) predicate.Principal {
	return predicate.Principal(sql.FieldEQ(FieldLegacyActorType, v))
}

// LegacyActorID applies equality check predicate on the "legacy_actor_id" field. It's identical to LegacyActorIDEQ.
func LegacyActorID(v string) predicate.Principal {
	return predicate.Principal(sql.FieldEQ(FieldLegacyActorID, v))
}

// APIKeyHash applies equality check predicate on the "api_key_hash" field. It's identical to APIKeyHashEQ.
func APIKeyHash(v string) predicate.Principal {
	return predicate.Principal(sql.FieldEQ(FieldAPIKeyHash, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Principal {
	return predicate.Principal(sql.FieldEQ(FieldCreatedAt, v))
}

// RevokedAt applies equality check predicate on the "revoked_at" field. It's identical to RevokedAtEQ.
func RevokedAt(v time.Time) predicate.Principal {
	return predicate.Principal(sql.FieldEQ(FieldRevokedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.Principal {
	return predicate.Principal(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.Principal {
	return predicate.Principal(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.Principal {
	return predicate.Principal(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.Principal {
	return predicate.Principal(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.Principal {
	return predicate.Principal(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.Principal {
	return predicate.Principal(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.Principal {
	return predicate.Principal(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.Principal {
	return predicate.Principal(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.Principal {
	return predicate.Principal(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.Principal {
	return predicate.Principal(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.Principal {
	return predicate.Principal(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.Principal {
	return predicate.Principal(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.Principal {
	return predicate.Principal(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// PrincipalTypeEQ applies the EQ predicate on the "principal_type" field.
func PrincipalTypeEQ(v PrincipalType) predicate.Principal {
	return predicate.Principal(sql.FieldEQ(FieldPrincipalType, v))
}

// PrincipalTypeNEQ applies the NEQ predicate on the "principal_type" field.
func PrincipalTypeNEQ(v PrincipalType) predicate.Principal {
	return predicate.Principal(sql.FieldNEQ(FieldPrincipalType, v))
}

// PrincipalTypeIn applies the In predicate on the "principal_type" field.
func PrincipalTypeIn(vs ...PrincipalType) predicate.Principal {
	return predicate.Principal(sql.FieldIn(FieldPrincipalType, vs...))
}

// PrincipalTypeNotIn applies the NotIn predicate on the "principal_type" field.
func PrincipalTypeNotIn(vs ...PrincipalType) predicate.Principal {
	return predicate.Principal(sql.FieldNotIn(FieldPrincipalType, vs...))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.Principal {
	return predicate.Principal(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.Principal {
	return predicate.Principal(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.Principal {
	return predicate.Principal(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.Principal {
	return predicate.Principal(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.Principal {
	return predicate.Principal(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.Principal {
	return predicate.Principal(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.Principal {
	return predicate.Principal(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.Principal {
	return predicate.Principal(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.Principal {
	return predicate.Principal(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.Principal {
	return predicate.Principal(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.Principal {
	return predicate.Principal(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameIsNil applies the IsNil predicate on the "display_name" field.
func DisplayNameIsNil() predicate.Principal {
	return predicate.Principal(sql.FieldIsNull(FieldDisplayName))
}

// DisplayNameNotNil applies the NotNil predicate on the "display_name" field.
func DisplayNameNotNil() predicate.Principal {
	return predicate.Principal(sql.FieldNotNull(FieldDisplayName))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.Principal {
	return predicate.Principal(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.Principal {
	return predicate.Principal(sql.FieldContainsFold(FieldDisplayName, v))
}

// LegacyActorTypeEQ applies the EQ predicate on the "legacy_actor_type" field.
func LegacyActorTypeEQ(v string) predicate.Principal {
	return predicate.Principal(sql.FieldEQ(FieldLegacyActorType, v))
}

// LegacyActorTypeNEQ applies the NEQ predicate on the "legacy_actor_type" field.
func LegacyActorTypeNEQ(v string) predicate.Principal {
	return predicate.Principal(sql.FieldNEQ(FieldLegacyActorType, v))
}

// LegacyActorTypeIn applies the In predicate on the "legacy_actor_type" field.
func LegacyActorTypeIn(vs ...string) predicate.Principal {
	return predicate.Principal(sql.FieldIn(FieldLegacyActorType, vs...))
}

// LegacyActorTypeNotIn applies the NotIn predicate on the "legacy_actor_type" field.
func LegacyActorTypeNotIn(vs ...string) predicate.Principal {
	return predicate.Principal(sql.FieldNotIn(FieldLegacyActorType, vs...))
}

// LegacyActorTypeGT applies the GT predicate on the "legacy_actor_type" field.
func LegacyActorTypeGT(v string) predicate.Principal {
	return predicate.Principal(sql.FieldGT(FieldLegacyActorType, v))
}

// LegacyActorTypeGTE applies the GTE predicate on the "legacy_actor_type" field.
func LegacyActorTypeGTE(v string) predicate.Principal {
	return predicate.Principal(sql.FieldGTE(FieldLegacyActorType, v))
}

// LegacyActorTypeLT applies the LT predicate on the "legacy_actor_type" field.
func LegacyActorTypeLT(v string) predicate.Principal {
	return predicate.Principal(sql.FieldLT(FieldLegacyActorType, v))
}

// LegacyActorTypeLTE applies the LTE predicate on the "legacy_actor_type" field.
func LegacyActorTypeLTE(v string) predicate.Principal {
	return predicate.Principal(sql.FieldLTE(FieldLegacyActorType, v))
}

// LegacyActorTypeContains applies the Contains predicate on the "legacy_actor_type" field.
func LegacyActorTypeContains(v string) predicate.Principal {
	return predicate.Principal(sql.FieldContains(FieldLegacyActorType, v))
}

// LegacyActorTypeHasPrefix applies the HasPrefix predicate on the "legacy_actor_type" field.
func LegacyActorTypeHasPrefix(v string) predicate.Principal {
	return predicate.Principal(sql.FieldHasPrefix(FieldLegacyActorType, v))
}

// LegacyActorTypeHasSuffix applies the HasSuffix predicate on the "legacy_actor_type" field.
func LegacyActorTypeHasSuffix(v string) predicate.Principal {
	return predicate.Principal(sql.FieldHasSuffix(FieldLegacyActorType, v))
}

// LegacyActorTypeIsNil applies the IsNil predicate on the "legacy_actor_type" field.
func LegacyActorTypeIsNil() predicate.Principal {
	return predicate.Principal(sql.FieldIsNull(FieldLegacyActorType))
}

// LegacyActorTypeNotNil applies the NotNil predicate on the "legacy_actor_type" field.
func LegacyActorTypeNotNil() predicate.Principal {
	return predicate.Principal(sql.FieldNotNull(FieldLegacyActorType))
}

// LegacyActorTypeEqualFold applies the EqualFold predicate on the "legacy_actor_type" field.
func LegacyActorTypeEqualFold(v string) predicate.Principal {
	return predicate.Principal(sql.FieldEqualFold(FieldLegacyActorType, v))
}

// LegacyActorTypeContainsFold applies the ContainsFold predicate on the "legacy_actor_type" field.
func LegacyActorTypeContainsFold(v string) predicate.Principal {
	return predicate.Principal(sql.FieldContainsFold(FieldLegacyActorType, v))
}

// LegacyActorIDEQ applies the EQ predicate on the "legacy_actor_id" field.
func LegacyActorIDEQ(v string) predicate.Principal {
	return predicate.Principal(sql.FieldEQ(FieldLegacyActorID, v))
}

// LegacyActorIDNEQ applies the NEQ predicate on the "legacy_actor_id" field.
func LegacyActorIDNEQ(v string) predicate.Principal {
	return predicate.Principal(sql.FieldNEQ(FieldLegacyActorID, v))
}

// LegacyActorIDIn applies the In predicate on the "legacy_actor_id" field.
func LegacyActorIDIn(vs ...string) predicate.Principal {
	return predicate.Principal(sql.FieldIn(FieldLegacyActorID, vs...))
}

// LegacyActorIDNotIn applies the NotIn predicate on the "legacy_actor_id" field.
func LegacyActorIDNotIn(vs ...string) predicate.Principal {
	return predicate.Principal(sql.FieldNotIn(FieldLegacyActorID, vs...))
}

// LegacyActorIDGT applies the GT predicate on the "legacy_actor_id" field.
func LegacyActorIDGT(v string) predicate.Principal {
	return predicate.Principal(sql.FieldGT(FieldLegacyActorID, v))
}

// LegacyActorIDGTE applies the GTE predicate on the "legacy_actor_id" field.
func LegacyActorIDGTE(v string) predicate.Principal {
	return predicate.Principal(sql.FieldGTE(FieldLegacyActorID, v))
}

// LegacyActorIDLT applies the LT predicate on the "legacy_actor_id" field.
func LegacyActorIDLT(v string) predicate.Principal {
	return predicate.Principal(sql.FieldLT(FieldLegacyActorID, v))
}

// LegacyActorIDLTE applies the LTE predicate on the "legacy_actor_id" field.
func LegacyActorIDLTE(v string) predicate.Principal {
	return predicate.Principal(sql.FieldLTE(FieldLegacyActorID, v))
}

// LegacyActorIDContains applies the Contains predicate on the "legacy_actor_id" field.
func LegacyActorIDContains(v string) predicate.Principal {
	return predicate.Principal(sql.FieldContains(FieldLegacyActorID, v))
}

// LegacyActorIDHasPrefix applies the HasPrefix predicate on the "legacy_actor_id" field.
func LegacyActorIDHasPrefix(v string) predicate.Principal {
	return predicate.Principal(sql.FieldHasPrefix(FieldLegacyActorID, v))
}

// LegacyActorIDHasSuffix applies the HasSuffix predicate on the "legacy_actor_id" field.
func LegacyActorIDHasSuffix(v string) predicate.Principal {
	return predicate.Principal(sql.FieldHasSuffix(FieldLegacyActorID, v))
}

// LegacyActorIDIsNil applies the IsNil predicate on the "legacy_actor_id" field.
func LegacyActorIDIsNil() predicate.Principal {
	return predicate.Principal(sql.FieldIsNull(FieldLegacyActorID))
}

// LegacyActorIDNotNil applies the NotNil predicate on the "legacy_actor_id" field.
func LegacyActorIDNotNil() predicate.Principal {
	return predicate.Principal(sql.FieldNotNull(FieldLegacyActorID))
}

// LegacyActorIDEqualFold applies the EqualFold predicate on the "legacy_actor_id" field.
func LegacyActorIDEqualFold(v string) predicate.Principal {
	return predicate.Principal(sql.FieldEqualFold(FieldLegacyActorID, v))
}

// LegacyActorIDContainsFold applies the ContainsFold predicate on the "legacy_actor_id" field.
func LegacyActorIDContainsFold(v string) predicate.Principal {
	return predicate.Principal(sql.FieldContainsFold(FieldLegacyActorID, v))
}

// APIKeyHashEQ applies the EQ predicate on the "api_key_hash" field.
func APIKeyHashEQ(v string) predicate.Principal {
	return predicate.Principal(sql.FieldEQ(FieldAPIKeyHash, v))
}

// APIKeyHashNEQ applies the NEQ predicate on the "api_key_hash" field.
func APIKeyHashNEQ(v string) predicate.Principal {
	return predicate.Principal(sql.FieldNEQ(FieldAPIKeyHash, v))
}

// APIKeyHashIn applies the In predicate on the "api_key_hash" field.
func APIKeyHashIn(vs ...string) predicate.Principal {
	return predicate.Principal(sql.FieldIn(FieldAPIKeyHash, vs...))
}

// APIKeyHashNotIn applies the NotIn predicate on the "api_key_hash" field.
func APIKeyHashNotIn(vs ...string) predicate.Principal {
	return predicate.Principal(sql.FieldNotIn(FieldAPIKeyHash, vs...))
}

// APIKeyHashGT applies the GT predicate on the "api_key_hash" field.
func APIKeyHashGT(v string) predicate.Principal {
	return predicate.Principal(sql.FieldGT(FieldAPIKeyHash, v))
}

// APIKeyHashGTE applies the GTE predicate on the "api_key_hash" field.
func APIKeyHashGTE(v string) predicate.Principal {
	return predicate.Principal(sql.FieldGTE(FieldAPIKeyHash, v))
}

// APIKeyHashLT applies the LT predicate on the "api_key_hash" field.
func APIKeyHashLT(v string) predicate.Principal {
	return predicate.Principal(sql.FieldLT(FieldAPIKeyHash, v))
}

// APIKeyHashLTE applies the LTE predicate on the "api_key_hash" field.
func APIKeyHashLTE(v string) predicate.Principal {
	return predicate.Principal(sql.FieldLTE(FieldAPIKeyHash, v))
}

// APIKeyHashContains applies the Contains predicate on the "api_key_hash" field.
func APIKeyHashContains(v string) predicate.Principal {
	return predicate.Principal(sql.FieldContains(FieldAPIKeyHash, v))
}

// APIKeyHashHasPrefix applies the HasPrefix predicate on the "api_key_hash" field.
func APIKeyHashHasPrefix(v string) predicate.Principal {
	return predicate.Principal(sql.FieldHasPrefix(FieldAPIKeyHash, v))
}

// APIKeyHashHasSuffix applies the HasSuffix predicate on the "api_key_hash" field.
func APIKeyHashHasSuffix(v string) predicate.Principal {
	return predicate.Principal(sql.FieldHasSuffix(FieldAPIKeyHash, v))
}

// APIKeyHashIsNil applies the IsNil predicate on the "api_key_hash" field.
func APIKeyHashIsNil() predicate.Principal {
	return predicate.Principal(sql.FieldIsNull(FieldAPIKeyHash))
}

// APIKeyHashNotNil applies the NotNil predicate on the "api_key_hash" field.
func APIKeyHashNotNil() predicate.Principal {
	return predicate.Principal(sql.FieldNotNull(FieldAPIKeyHash))
}

// APIKeyHashEqualFold applies the EqualFold predicate on the "api_key_hash" field.
func APIKeyHashEqualFold(v string) predicate.Principal {
	return predicate.Principal(sql.FieldEqualFold(FieldAPIKeyHash, v))
}

// APIKeyHashContainsFold applies the ContainsFold predicate on the "api_key_hash" field.
func APIKeyHashContainsFold(v string) predicate.Principal {
	return predicate.Principal(sql.FieldContainsFold(FieldAPIKeyHash, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Principal {
	return predicate.Principal(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Principal {
	return predicate.Principal(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Principal {
	return predicate.Principal(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Principal {
	return predicate.Principal(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Principal {
	return predicate.Principal(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Principal {
	return predicate.Principal(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Principal {
	return predicate.Principal(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Principal {
	return predicate.Principal(sql.FieldLTE(FieldCreatedAt, v))
}

// RevokedAtEQ applies the EQ predicate on the "revoked_at" field.
func RevokedAtEQ(v time.Time) predicate.Principal {
	return predicate.Principal(sql.FieldEQ(FieldRevokedAt, v))
}

// RevokedAtNEQ applies the NEQ predicate on the "revoked_at" field.
func RevokedAtNEQ(v time.Time) predicate.Principal {
	return predicate.Principal(sql.FieldNEQ(FieldRevokedAt, v))
}

// RevokedAtIn applies the In predicate on the "revoked_at" field.
func RevokedAtIn(vs ...time.Time) predicate.Principal {
	return predicate.Principal(sql.FieldIn(FieldRevokedAt, vs...))
}

// RevokedAtNotIn applies the NotIn predicate on the "revoked_at" field.
func RevokedAtNotIn(vs ...time.Time) predicate.Principal {
	return predicate.Principal(sql.FieldNotIn(FieldRevokedAt, vs...))
}

// RevokedAtGT applies the GT predicate on the "revoked_at" field.
func RevokedAtGT(v time.Time) predicate.Principal {
	return predicate.Principal(sql.FieldGT(FieldRevokedAt, v))
}

// RevokedAtGTE applies the GTE predicate on the "revoked_at" field.
func RevokedAtGTE(v time.Time) predicate.Principal {
	return predicate.Principal(sql.FieldGTE(FieldRevokedAt, v))
}

// RevokedAtLT applies the LT predicate on the "revoked_at" field.
func RevokedAtLT(v time.Time) predicate.Principal {
	return predicate.Principal(sql.FieldLT(FieldRevokedAt, v))
}

// RevokedAtLTE applies the LTE predicate on the "revoked_at" field.
func RevokedAtLTE(v time.Time) predicate.Principal {
	return predicate.Principal(sql.FieldLTE(FieldRevokedAt, v))
}

// RevokedAtIsNil applies the IsNil predicate on the "revoked_at" field.
func RevokedAtIsNil() predicate.Principal {
	return predicate.Principal(sql.FieldIsNull(FieldRevokedAt))
}

// RevokedAtNotNil applies the NotNil predicate on the "revoked_at" field.
func RevokedAtNotNil() predicate.Principal {
	return predicate.Principal(sql.FieldNotNull(FieldRevokedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Principal) predicate.Principal {
	return predicate.Principal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Principal) predicate.Principal {
	return predicate.Principal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Principal) predicate.Principal {
	return predicate.Principal(sql.NotPredicates(p))
}
