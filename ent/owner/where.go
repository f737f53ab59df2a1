// Code generated by ent, DO NOT EDIT.

package owner

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/missionloop/groundcontrol/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Owner {
	return predicate.Owner(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Owner {
	return predicate.Owner(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Owner {
	return predicate.Owner(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Owner {
	return predicate.Owner(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Owner {
	return predicate.Owner(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Owner {
	return predicate.Owner(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Owner {
	return predicate.Owner(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Owner {
	return predicate.Owner(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Owner {
	return predicate.Owner(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Owner {
	return predicate.Owner(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Owner {
	return predicate.Owner(sql.FieldContainsFold(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.Owner {
	return predicate.Owner(sql.FieldEQ(FieldWorkspaceID, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Owner {
	return predicate.Owner(sql.FieldEQ(FieldEmail, v))
}

// PrincipalID applies equality check predicate on the "principal_id" field. It's identical to PrincipalIDEQ.
func PrincipalID(v string) predicate.Owner {
	return predicate.Owner(sql.FieldEQ(FieldPrincipalID, v))
}

// PassphraseHash applies equality check predicate on the "passphrase_hash" field. It's identical to PassphraseHashEQ.
func PassphraseHash(v string) predicate.Owner {
	return predicate.Owner(sql.FieldEQ(FieldPassphraseHash, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Owner {
	return predicate.Owner(sql.FieldEQ(FieldCreatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.Owner {
	return predicate.Owner(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.Owner {
	return predicate.Owner(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.Owner {
	return predicate.Owner(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.Owner {
	return predicate.Owner(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.Owner {
	return predicate.Owner(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.Owner {
	return predicate.Owner(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.Owner {
	return predicate.Owner(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.Owner {
	return predicate.Owner(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.Owner {
	return predicate.Owner(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.Owner {
	return predicate.Owner(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.Owner {
	return predicate.Owner(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.Owner {
	return predicate.Owner(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.Owner {
	return predicate.Owner(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Owner {
	return predicate.Owner(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Owner {
	return predicate.Owner(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Owner {
	return predicate.Owner(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Owner {
	return predicate.Owner(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Owner {
	return predicate.Owner(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Owner {
	return predicate.Owner(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Owner {
	return predicate.Owner(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Owner {
	return predicate.Owner(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Owner {
	return predicate.Owner(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Owner {
	return predicate.Owner(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Owner {
	return predicate.Owner(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Owner {
	return predicate.Owner(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Owner {
	return predicate.Owner(sql.FieldContainsFold(FieldEmail, v))
}

// PrincipalIDEQ applies the EQ predicate on the "principal_id" field.
func PrincipalIDEQ(v string) predicate.Owner {
	return predicate.Owner(sql.FieldEQ(FieldPrincipalID, v))
}

// PrincipalIDNEQ applies the NEQ predicate on the "principal_id" field.
func PrincipalIDNEQ(v string) predicate.Owner {
	return predicate.Owner(sql.FieldNEQ(FieldPrincipalID, v))
}

// PrincipalIDIn applies the In predicate on the "principal_id" field.
func PrincipalIDIn(vs ...string) predicate.Owner {
	return predicate.Owner(sql.FieldIn(FieldPrincipalID, vs...))
}

// PrincipalIDNotIn applies the NotIn predicate on the "principal_id" field.
func PrincipalIDNotIn(vs ...string) predicate.Owner {
	return predicate.Owner(sql.FieldNotIn(FieldPrincipalID, vs...))
}

// PrincipalIDGT applies the GT predicate on the "principal_id" field.
func PrincipalIDGT(v string) predicate.Owner {
	return predicate.Owner(sql.FieldGT(FieldPrincipalID, v))
}

// PrincipalIDGTE applies the GTE predicate on the "principal_id" field.
func PrincipalIDGTE(v string) predicate.Owner {
	return predicate.Owner(sql.FieldGTE(FieldPrincipalID, v))
}

// PrincipalIDLT applies the LT predicate on the "principal_id" field.
func PrincipalIDLT(v string) predicate.Owner {
	return predicate.Owner(sql.FieldLT(FieldPrincipalID, v))
}

// PrincipalIDLTE applies the LTE predicate on the "principal_id" field.
func PrincipalIDLTE(v string) predicate.Owner {
	return predicate.Owner(sql.FieldLTE(FieldPrincipalID, v))
}

// PrincipalIDContains applies the Contains predicate on the "principal_id" field.
func PrincipalIDContains(v string) predicate.Owner {
	return predicate.Owner(sql.FieldContains(FieldPrincipalID, v))
}

// PrincipalIDHasPrefix applies the HasPrefix predicate on the "principal_id" field.
func PrincipalIDHasPrefix(v string) predicate.Owner {
	return predicate.Owner(sql.FieldHasPrefix(FieldPrincipalID, v))
}

// PrincipalIDHasSuffix applies the HasSuffix predicate on the "principal_id" field.
func PrincipalIDHasSuffix(v string) predicate.Owner {
	return predicate.Owner(sql.FieldHasSuffix(FieldPrincipalID, v))
}

// PrincipalIDEqualFold applies the EqualFold predicate on the "principal_id" field.
func PrincipalIDEqualFold(v string) predicate.Owner {
	return predicate.Owner(sql.FieldEqualFold(FieldPrincipalID, v))
}

// PrincipalIDContainsFold applies the ContainsFold predicate on the "principal_id" field.
func PrincipalIDContainsFold(v string) predicate.Owner {
	return predicate.Owner(sql.FieldContainsFold(FieldPrincipalID, v))
}

// PassphraseHashEQ applies the EQ predicate on the "passphrase_hash" field.
func PassphraseHashEQ(v string) predicate.Owner {
	return predicate.Owner(sql.FieldEQ(FieldPassphraseHash, v))
}

// PassphraseHashNEQ applies the NEQ predicate on the "passphrase_hash" field.
func PassphraseHashNEQ(v string) predicate.Owner {
	return predicate.Owner(sql.FieldNEQ(FieldPassphraseHash, v))
}

// PassphraseHashIn applies the In predicate on the "passphrase_hash" field.
func PassphraseHashIn(vs ...string) predicate.Owner {
	return predicate.Owner(sql.FieldIn(FieldPassphraseHash, vs...))
}

// PassphraseHashNotIn applies the NotIn predicate on the "passphrase_hash" field.
func PassphraseHashNotIn(vs ...string) predicate.Owner {
	return predicate.Owner(sql.FieldNotIn(FieldPassphraseHash, vs...))
}

// PassphraseHashGT applies the GT predicate on the "passphrase_hash" field.
func PassphraseHashGT(v string) predicate.Owner {
	return predicate.Owner(sql.FieldGT(FieldPassphraseHash, v))
}

// PassphraseHashGTE applies the GTE predicate on the "passphrase_hash" field.
func PassphraseHashGTE(v string) predicate.Owner {
	return predicate.Owner(sql.FieldGTE(FieldPassphraseHash, v))
}

// PassphraseHashLT applies the LT predicate on the "passphrase_hash" field.
func PassphraseHashLT(v string) predicate.Owner {
	return predicate.Owner(sql.FieldLT(FieldPassphraseHash, v))
}

// PassphraseHashLTE applies the LTE predicate on the "passphrase_hash" field.
func PassphraseHashLTE(v string) predicate.Owner {
	return predicate.Owner(sql.FieldLTE(FieldPassphraseHash, v))
}

// PassphraseHashContains applies the Contains predicate on the "passphrase_hash" field.
func PassphraseHashContains(v string) predicate.Owner {
	return predicate.Owner(sql.FieldContains(FieldPassphraseHash, v))
}

// PassphraseHashHasPrefix applies the HasPrefix predicate on the "passphrase_hash" field.
func PassphraseHashHasPrefix(v string) predicate.Owner {
	return predicate.Owner(sql.FieldHasPrefix(FieldPassphraseHash, v))
}

// PassphraseHashHasSuffix applies the HasSuffix predicate on the "passphrase_hash" field.
func PassphraseHashHasSuffix(v string) predicate.Owner {
	return predicate.Owner(sql.FieldHasSuffix(FieldPassphraseHash, v))
}

// PassphraseHashEqualFold applies the EqualFold predicate on the "passphrase_hash" field.
func PassphraseHashEqualFold(v string) predicate.Owner {
	return predicate.Owner(sql.FieldEqualFold(FieldPassphraseHash, v))
}

// PassphraseHashContainsFold applies the ContainsFold predicate on the "passphrase_hash" field.
func PassphraseHashContainsFold(v string) predicate.Owner {
	return predicate.Owner(sql.FieldContainsFold(FieldPassphraseHash, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Owner {
	return predicate.Owner(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Owner {
	return predicate.Owner(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Owner {
	return predicate.Owner(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Owner {
	return predicate.Owner(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Owner {
	return predicate.Owner(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Owner {
	return predicate.Owner(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Owner {
	return predicate.Owner(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Owner {
	return predicate.Owner(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Owner) predicate.Owner {
	return predicate.Owner(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Owner) predicate.Owner {
	return predicate.Owner(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Owner) predicate.Owner {
	return predicate.Owner(sql.NotPredicates(p))
}
