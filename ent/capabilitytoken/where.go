// Code generated by ent, DO NOT EDIT.

package capabilitytoken

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/missionloop/groundcontrol/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldContainsFold(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldEQ(FieldWorkspaceID, v))
}

// IssuedToPrincipalID applies equality check predicate on the "issued_to_principal_id" field. It's identical to IssuedToPrincipalIDEQ.
func IssuedToPrincipalID(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldEQ(FieldIssuedToPrincipalID, v))
}

// GrantedByPrincipalID applies equality check predicate on the "granted_by_principal_id" field. It's identical to GrantedByPrincipalIDEQ.
func GrantedByPrincipalID(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldEQ(FieldGrantedByPrincipalID, v))
}

// ParentTokenID applies equality check predicate on the "parent_token_id" field. It's identical to ParentTokenIDEQ.
func ParentTokenID(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldEQ(FieldParentTokenID, v))
}

// ValidUntil applies equality check predicate on the "valid_until" field. It's identical to ValidUntilEQ.
func ValidUntil(v time.Time) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldEQ(FieldValidUntil, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldEQ(FieldCreatedAt, v))
}

// RevokedAt applies equality check predicate on the "revoked_at" field. It's identical to RevokedAtEQ.
func RevokedAt(v time.Time) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldEQ(FieldRevokedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// IssuedToPrincipalIDEQ applies the EQ predicate on the "issued_to_principal_id" field.
func IssuedToPrincipalIDEQ(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldEQ(FieldIssuedToPrincipalID, v))
}

// IssuedToPrincipalIDNEQ applies the NEQ predicate on the "issued_to_principal_id" field.
func IssuedToPrincipalIDNEQ(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldNEQ(FieldIssuedToPrincipalID, v))
}

// IssuedToPrincipalIDIn applies the In predicate on the "issued_to_principal_id" field.
func IssuedToPrincipalIDIn(vs ...string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldIn(FieldIssuedToPrincipalID, vs...))
}

// IssuedToPrincipalIDNotIn applies the NotIn predicate on the "issued_to_principal_id" field.
func IssuedToPrincipalIDNotIn(vs ...string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldNotIn(FieldIssuedToPrincipalID, vs...))
}

// IssuedToPrincipalIDGT applies the GT predicate on the "issued_to_principal_id" field.
func IssuedToPrincipalIDGT(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldGT(FieldIssuedToPrincipalID, v))
}

// IssuedToPrincipalIDGTE applies the GTE predicate on the "issued_to_principal_id" field.
func IssuedToPrincipalIDGTE(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldGTE(FieldIssuedToPrincipalID, v))
}

// IssuedToPrincipalIDLT applies the LT predicate on the "issued_to_principal_id" field.
func IssuedToPrincipalIDLT(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldLT(FieldIssuedToPrincipalID, v))
}

// IssuedToPrincipalIDLTE applies the LTE predicate on the "issued_to_principal_id" field.
func IssuedToPrincipalIDLTE(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldLTE(FieldIssuedToPrincipalID, v))
}

// IssuedToPrincipalIDContains applies the Contains predicate on the "issued_to_principal_id" field.
func IssuedToPrincipalIDContains(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldContains(FieldIssuedToPrincipalID, v))
}

// IssuedToPrincipalIDHasPrefix applies the HasPrefix predicate on the "issued_to_principal_id" field.
func IssuedToPrincipalIDHasPrefix(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldHasPrefix(FieldIssuedToPrincipalID, v))
}

// IssuedToPrincipalIDHasSuffix applies the HasSuffix predicate on the "issued_to_principal_id" field.
func IssuedToPrincipalIDHasSuffix(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldHasSuffix(FieldIssuedToPrincipalID, v))
}

// IssuedToPrincipalIDEqualFold applies the EqualFold predicate on the "issued_to_principal_id" field.
func IssuedToPrincipalIDEqualFold(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldEqualFold(FieldIssuedToPrincipalID, v))
}

// IssuedToPrincipalIDContainsFold applies the ContainsFold predicate on the "issued_to_principal_id" field.
func IssuedToPrincipalIDContainsFold(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldContainsFold(FieldIssuedToPrincipalID, v))
}

// GrantedByPrincipalIDEQ applies the EQ predicate on the "granted_by_principal_id" field.
func GrantedByPrincipalIDEQ(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldEQ(FieldGrantedByPrincipalID, v))
}

// GrantedByPrincipalIDNEQ applies the NEQ predicate on the "granted_by_principal_id" field.
func GrantedByPrincipalIDNEQ(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldNEQ(FieldGrantedByPrincipalID, v))
}

// GrantedByPrincipalIDIn applies the In predicate on the "granted_by_principal_id" field.
func GrantedByPrincipalIDIn(vs ...string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldIn(FieldGrantedByPrincipalID, vs...))
}

// GrantedByPrincipalIDNotIn applies the NotIn predicate on the "granted_by_principal_id" field.
func GrantedByPrincipalIDNotIn(vs ...string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldNotIn(FieldGrantedByPrincipalID, vs...))
}

// GrantedByPrincipalIDGT applies the GT predicate on the "granted_by_principal_id" field.
func GrantedByPrincipalIDGT(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldGT(FieldGrantedByPrincipalID, v))
}

// GrantedByPrincipalIDGTE applies the GTE predicate on the "granted_by_principal_id" field.
func GrantedByPrincipalIDGTE(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldGTE(FieldGrantedByPrincipalID, v))
}

// GrantedByPrincipalIDLT applies the LT predicate on the "granted_by_principal_id" field.
func GrantedByPrincipalIDLT(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldLT(FieldGrantedByPrincipalID, v))
}

// GrantedByPrincipalIDLTE applies the LTE predicate on the "granted_by_principal_id" field.
func GrantedByPrincipalIDLTE(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldLTE(FieldGrantedByPrincipalID, v))
}

// GrantedByPrincipalIDContains applies the Contains predicate on the "granted_by_principal_id" field.
func GrantedByPrincipalIDContains(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldContains(FieldGrantedByPrincipalID, v))
}

// GrantedByPrincipalIDHasPrefix applies the HasPrefix predicate on the "granted_by_principal_id" field.
func GrantedByPrincipalIDHasPrefix(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldHasPrefix(FieldGrantedByPrincipalID, v))
}

// GrantedByPrincipalIDHasSuffix applies the HasSuffix predicate on the "granted_by_principal_id" field.
func GrantedByPrincipalIDHasSuffix(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldHasSuffix(FieldGrantedByPrincipalID, v))
}

// GrantedByPrincipalIDEqualFold applies the EqualFold predicate on the "granted_by_principal_id" field.
func GrantedByPrincipalIDEqualFold(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldEqualFold(FieldGrantedByPrincipalID, v))
}

// GrantedByPrincipalIDContainsFold applies the ContainsFold predicate on the "granted_by_principal_id" field.
func GrantedByPrincipalIDContainsFold(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldContainsFold(FieldGrantedByPrincipalID, v))
}

// ParentTokenIDEQ applies the EQ predicate on the "parent_token_id" field.
func ParentTokenIDEQ(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldEQ(FieldParentTokenID, v))
}

// ParentTokenIDNEQ applies the NEQ predicate on the "parent_token_id" field.
func ParentTokenIDNEQ(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldNEQ(FieldParentTokenID, v))
}

// ParentTokenIDIn applies the In predicate on the "parent_token_id" field.
func ParentTokenIDIn(vs ...string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldIn(FieldParentTokenID, vs...))
}

// ParentTokenIDNotIn applies the NotIn predicate on the "parent_token_id" field.
func ParentTokenIDNotIn(vs ...string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldNotIn(FieldParentTokenID, vs...))
}

// ParentTokenIDGT applies the GT predicate on the "parent_token_id" field.
func ParentTokenIDGT(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldGT(FieldParentTokenID, v))
}

// ParentTokenIDGTE applies the GTE predicate on the "parent_token_id" field.
func ParentTokenIDGTE(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldGTE(FieldParentTokenID, v))
}

// ParentTokenIDLT applies the LT predicate on the "parent_token_id" field.
func ParentTokenIDLT(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldLT(FieldParentTokenID, v))
}

// ParentTokenIDLTE applies the LTE predicate on the "parent_token_id" field.
func ParentTokenIDLTE(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldLTE(FieldParentTokenID, v))
}

// ParentTokenIDContains applies the Contains predicate on the "parent_token_id" field.
func ParentTokenIDContains(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldContains(FieldParentTokenID, v))
}

// ParentTokenIDHasPrefix applies the HasPrefix predicate on the "parent_token_id" field.
func ParentTokenIDHasPrefix(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldHasPrefix(FieldParentTokenID, v))
}

// ParentTokenIDHasSuffix applies the HasSuffix predicate on the "parent_token_id" field.
func ParentTokenIDHasSuffix(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldHasSuffix(FieldParentTokenID, v))
}

// ParentTokenIDIsNil applies the IsNil predicate on the "parent_token_id" field.
func ParentTokenIDIsNil() predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldIsNull(FieldParentTokenID))
}

// ParentTokenIDNotNil applies the NotNil predicate on the "parent_token_id" field.
func ParentTokenIDNotNil() predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldNotNull(FieldParentTokenID))
}

// ParentTokenIDEqualFold applies the EqualFold predicate on the "parent_token_id" field.
func ParentTokenIDEqualFold(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldEqualFold(FieldParentTokenID, v))
}

// ParentTokenIDContainsFold applies the ContainsFold predicate on the "parent_token_id" field.
func ParentTokenIDContainsFold(v string) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldContainsFold(FieldParentTokenID, v))
}

// ValidUntilEQ applies the EQ predicate on the "valid_until" field.
func ValidUntilEQ(v time.Time) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldEQ(FieldValidUntil, v))
}

// ValidUntilNEQ applies the NEQ predicate on the "valid_until" field.
func ValidUntilNEQ(v time.Time) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldNEQ(FieldValidUntil, v))
}

// ValidUntilIn applies the In predicate on the "valid_until" field.
func ValidUntilIn(vs ...time.Time) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldIn(FieldValidUntil, vs...))
}

// ValidUntilNotIn applies the NotIn predicate on the "valid_until" field.
func ValidUntilNotIn(vs ...time.Time) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldNotIn(FieldValidUntil, vs...))
}

// ValidUntilGT applies the GT predicate on the "valid_until" field.
func ValidUntilGT(v time.Time) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldGT(FieldValidUntil, v))
}

// ValidUntilGTE applies the GTE predicate on the "valid_until" field.
func ValidUntilGTE(v time.Time) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldGTE(FieldValidUntil, v))
}

// ValidUntilLT applies the LT predicate on the "valid_until" field.
func ValidUntilLT(v time.Time) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldLT(FieldValidUntil, v))
}

// ValidUntilLTE applies the LTE predicate on the "valid_until" field.
func ValidUntilLTE(v time.Time) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldLTE(FieldValidUntil, v))
}

// ValidUntilIsNil applies the IsNil predicate on the "valid_until" field.
func ValidUntilIsNil() predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldIsNull(FieldValidUntil))
}

// ValidUntilNotNil applies the NotNil predicate on the "valid_until" field.
func ValidUntilNotNil() predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldNotNull(FieldValidUntil))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldLTE(FieldCreatedAt, v))
}

// RevokedAtEQ applies the EQ predicate on the "revoked_at" field.
func RevokedAtEQ(v time.Time) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldEQ(FieldRevokedAt, v))
}

// RevokedAtNEQ applies the NEQ predicate on the "revoked_at" field.
func RevokedAtNEQ(v time.Time) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldNEQ(FieldRevokedAt, v))
}

// RevokedAtIn applies the In predicate on the "revoked_at" field.
func RevokedAtIn(vs ...time.Time) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldIn(FieldRevokedAt, vs...))
}

// RevokedAtNotIn applies the NotIn predicate on the "revoked_at" field.
func RevokedAtNotIn(vs ...time.Time) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldNotIn(FieldRevokedAt, vs...))
}

// RevokedAtGT applies the GT predicate on the "revoked_at" field.
func RevokedAtGT(v time.Time) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldGT(FieldRevokedAt, v))
}

// RevokedAtGTE applies the GTE predicate on the "revoked_at" field.
func RevokedAtGTE(v time.Time) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldGTE(FieldRevokedAt, v))
}

// RevokedAtLT applies the LT predicate on the "revoked_at" field.
func RevokedAtLT(v time.Time) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldLT(FieldRevokedAt, v))
}

// RevokedAtLTE applies the LTE predicate on the "revoked_at" field.
func RevokedAtLTE(v time.Time) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldLTE(FieldRevokedAt, v))
}

// RevokedAtIsNil applies the IsNil predicate on the "revoked_at" field.
func RevokedAtIsNil() predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldIsNull(FieldRevokedAt))
}

// RevokedAtNotNil applies the NotNil predicate on the "revoked_at" field.
func RevokedAtNotNil() predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.FieldNotNull(FieldRevokedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CapabilityToken) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CapabilityToken) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CapabilityToken) predicate.CapabilityToken {
	return predicate.CapabilityToken(sql.NotPredicates(p))
}
