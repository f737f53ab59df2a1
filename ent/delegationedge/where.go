// Code generated by ent, DO NOT EDIT.

package delegationedge

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/missionloop/groundcontrol/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldContainsFold(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldEQ(FieldWorkspaceID, v))
}

// ParentTokenID applies equality check predicate on the "parent_token_id" field. It's identical to ParentTokenIDEQ.
func ParentTokenID(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldEQ(FieldParentTokenID, v))
}

// ChildTokenID applies equality check predicate on the "child_token_id" field. It's identical to ChildTokenIDEQ.
func ChildTokenID(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldEQ(FieldChildTokenID, v))
}

// IssuedToPrincipalID applies equality check predicate on the "issued_to_principal_id" field. It's identical to IssuedToPrincipalIDEQ.
func IssuedToPrincipalID(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldEQ(FieldIssuedToPrincipalID, v))
}

// GrantedByPrincipalID applies equality check predicate on the "granted_by_principal_id" field. It's identical to GrantedByPrincipalIDEQ.
func GrantedByPrincipalID(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldEQ(FieldGrantedByPrincipalID, v))
}

// Depth applies equality check predicate on the "depth" field. It's identical to DepthEQ.
func Depth(v int) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldEQ(FieldDepth, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldEQ(FieldCreatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// ParentTokenIDEQ applies the EQ predicate on the "parent_token_id" field.
func ParentTokenIDEQ(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldEQ(FieldParentTokenID, v))
}

// ParentTokenIDNEQ applies the NEQ predicate on the "parent_token_id" field.
func ParentTokenIDNEQ(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldNEQ(FieldParentTokenID, v))
}

// ParentTokenIDIn applies the In predicate on the "parent_token_id" field.
func ParentTokenIDIn(vs ...string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldIn(FieldParentTokenID, vs...))
}

// ParentTokenIDNotIn applies the NotIn predicate on the "parent_token_id" field.
func ParentTokenIDNotIn(vs ...string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldNotIn(FieldParentTokenID, vs...))
}

// ParentTokenIDGT applies the GT predicate on the "parent_token_id" field.
func ParentTokenIDGT(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldGT(FieldParentTokenID, v))
}

// ParentTokenIDGTE applies the GTE predicate on the "parent_token_id" field.
func ParentTokenIDGTE(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldGTE(FieldParentTokenID, v))
}

// ParentTokenIDLT applies the LT predicate on the "parent_token_id" field.
func ParentTokenIDLT(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldLT(FieldParentTokenID, v))
}

// ParentTokenIDLTE applies the LTE predicate on the "parent_token_id" field.
func ParentTokenIDLTE(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldLTE(FieldParentTokenID, v))
}

// ParentTokenIDContains applies the Contains predicate on the "parent_token_id" field.
func ParentTokenIDContains(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldContains(FieldParentTokenID, v))
}

// ParentTokenIDHasPrefix applies the HasPrefix predicate on the "parent_token_id" field.
func ParentTokenIDHasPrefix(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldHasPrefix(FieldParentTokenID, v))
}

// ParentTokenIDHasSuffix applies the HasSuffix predicate on the "parent_token_id" field.
func ParentTokenIDHasSuffix(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldHasSuffix(FieldParentTokenID, v))
}

// ParentTokenIDEqualFold applies the EqualFold predicate on the "parent_token_id" field.
func ParentTokenIDEqualFold(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldEqualFold(FieldParentTokenID, v))
}

// ParentTokenIDContainsFold applies the ContainsFold predicate on the "parent_token_id" field.
func ParentTokenIDContainsFold(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldContainsFold(FieldParentTokenID, v))
}

// ChildTokenIDEQ applies the EQ predicate on the "child_token_id" field.
func ChildTokenIDEQ(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldEQ(FieldChildTokenID, v))
}

// ChildTokenIDNEQ applies the NEQ predicate on the "child_token_id" field.
func ChildTokenIDNEQ(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldNEQ(FieldChildTokenID, v))
}

// ChildTokenIDIn applies the In predicate on the "child_token_id" field.
func ChildTokenIDIn(vs ...string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldIn(FieldChildTokenID, vs...))
}

// ChildTokenIDNotIn applies the NotIn predicate on the "child_token_id" field.
func ChildTokenIDNotIn(vs ...string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldNotIn(FieldChildTokenID, vs...))
}

// ChildTokenIDGT applies the GT predicate on the "child_token_id" field.
func ChildTokenIDGT(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldGT(FieldChildTokenID, v))
}

// ChildTokenIDGTE applies the GTE predicate on the "child_token_id" field.
func ChildTokenIDGTE(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldGTE(FieldChildTokenID, v))
}

// ChildTokenIDLT applies the LT predicate on the "child_token_id" field.
func ChildTokenIDLT(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldLT(FieldChildTokenID, v))
}

// ChildTokenIDLTE applies the LTE predicate on the "child_token_id" field.
func ChildTokenIDLTE(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldLTE(FieldChildTokenID, v))
}

// ChildTokenIDContains applies the Contains predicate on the "child_token_id" field.
func ChildTokenIDContains(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldContains(FieldChildTokenID, v))
}

// ChildTokenIDHasPrefix applies the HasPrefix predicate on the "child_token_id" field.
func ChildTokenIDHasPrefix(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldHasPrefix(FieldChildTokenID, v))
}

// ChildTokenIDHasSuffix applies the HasSuffix predicate on the "child_token_id" field.
func ChildTokenIDHasSuffix(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldHasSuffix(FieldChildTokenID, v))
}

// ChildTokenIDEqualFold applies the EqualFold predicate on the "child_token_id" field.
func ChildTokenIDEqualFold(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldEqualFold(FieldChildTokenID, v))
}

// ChildTokenIDContainsFold applies the ContainsFold predicate on the "child_token_id" field.
func ChildTokenIDContainsFold(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldContainsFold(FieldChildTokenID, v))
}

// IssuedToPrincipalIDEQ applies the EQ predicate on the "issued_to_principal_id" field.
func IssuedToPrincipalIDEQ(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldEQ(FieldIssuedToPrincipalID, v))
}

// IssuedToPrincipalIDNEQ applies the NEQ predicate on the "issued_to_principal_id" field.
func IssuedToPrincipalIDNEQ(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldNEQ(FieldIssuedToPrincipalID, v))
}

// IssuedToPrincipalIDIn applies the In predicate on the "issued_to_principal_id" field.
func IssuedToPrincipalIDIn(vs ...string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldIn(FieldIssuedToPrincipalID, vs...))
}

// IssuedToPrincipalIDNotIn applies the NotIn predicate on the "issued_to_principal_id" field.
func IssuedToPrincipalIDNotIn(vs ...string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldNotIn(FieldIssuedToPrincipalID, vs...))
}

// IssuedToPrincipalIDGT applies the GT predicate on the "issued_to_principal_id" field.
func IssuedToPrincipalIDGT(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldGT(FieldIssuedToPrincipalID, v))
}

// IssuedToPrincipalIDGTE applies the GTE predicate on the "issued_to_principal_id" field.
func IssuedToPrincipalIDGTE(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldGTE(FieldIssuedToPrincipalID, v))
}

// IssuedToPrincipalIDLT applies the LT predicate on the "issued_to_principal_id" field.
func IssuedToPrincipalIDLT(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldLT(FieldIssuedToPrincipalID, v))
}

// IssuedToPrincipalIDLTE applies the LTE predicate on the "issued_to_principal_id" field.
func IssuedToPrincipalIDLTE(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldLTE(FieldIssuedToPrincipalID, v))
}

// IssuedToPrincipalIDContains applies the Contains predicate on the "issued_to_principal_id" field.
func IssuedToPrincipalIDContains(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldContains(FieldIssuedToPrincipalID, v))
}

// IssuedToPrincipalIDHasPrefix applies the HasPrefix predicate on the "issued_to_principal_id" field.
func IssuedToPrincipalIDHasPrefix(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldHasPrefix(FieldIssuedToPrincipalID, v))
}

// IssuedToPrincipalIDHasSuffix applies the HasSuffix predicate on the "issued_to_principal_id" field.
func IssuedToPrincipalIDHasSuffix(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldHasSuffix(FieldIssuedToPrincipalID, v))
}

// IssuedToPrincipalIDEqualFold applies the EqualFold predicate on the "issued_to_principal_id" field.
func IssuedToPrincipalIDEqualFold(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldEqualFold(FieldIssuedToPrincipalID, v))
}

// IssuedToPrincipalIDContainsFold applies the ContainsFold predicate on the "issued_to_principal_id" field.
func IssuedToPrincipalIDContainsFold(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldContainsFold(FieldIssuedToPrincipalID, v))
}

// GrantedByPrincipalIDEQ applies the EQ predicate on the "granted_by_principal_id" field.
func GrantedByPrincipalIDEQ(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldEQ(FieldGrantedByPrincipalID, v))
}

// GrantedByPrincipalIDNEQ applies the NEQ predicate on the "granted_by_principal_id" field.
func GrantedByPrincipalIDNEQ(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldNEQ(FieldGrantedByPrincipalID, v))
}

// GrantedByPrincipalIDIn applies the In predicate on the "granted_by_principal_id" field.
func GrantedByPrincipalIDIn(vs ...string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldIn(FieldGrantedByPrincipalID, vs...))
}

// GrantedByPrincipalIDNotIn applies the NotIn predicate on the "granted_by_principal_id" field.
func GrantedByPrincipalIDNotIn(vs ...string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldNotIn(FieldGrantedByPrincipalID, vs...))
}

// GrantedByPrincipalIDGT applies the GT predicate on the "granted_by_principal_id" field.
func GrantedByPrincipalIDGT(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldGT(FieldGrantedByPrincipalID, v))
}

// GrantedByPrincipalIDGTE applies the GTE predicate on the "granted_by_principal_id" field.
func GrantedByPrincipalIDGTE(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldGTE(FieldGrantedByPrincipalID, v))
}

// GrantedByPrincipalIDLT applies the LT predicate on the "granted_by_principal_id" field.
func GrantedByPrincipalIDLT(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldLT(FieldGrantedByPrincipalID, v))
}

// GrantedByPrincipalIDLTE applies the LTE predicate on the "granted_by_principal_id" field.
func GrantedByPrincipalIDLTE(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldLTE(FieldGrantedByPrincipalID, v))
}

// GrantedByPrincipalIDContains applies the Contains predicate on the "granted_by_principal_id" field.
func GrantedByPrincipalIDContains(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldContains(FieldGrantedByPrincipalID, v))
}

// GrantedByPrincipalIDHasPrefix applies the HasPrefix predicate on the "granted_by_principal_id" field.
func GrantedByPrincipalIDHasPrefix(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldHasPrefix(FieldGrantedByPrincipalID, v))
}

// GrantedByPrincipalIDHasSuffix applies the HasSuffix predicate on the "granted_by_principal_id" field.
func GrantedByPrincipalIDHasSuffix(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldHasSuffix(FieldGrantedByPrincipalID, v))
}

// GrantedByPrincipalIDEqualFold applies the EqualFold predicate on the "granted_by_principal_id" field.
func GrantedByPrincipalIDEqualFold(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldEqualFold(FieldGrantedByPrincipalID, v))
}

// GrantedByPrincipalIDContainsFold applies the ContainsFold predicate on the "granted_by_principal_id" field.
func GrantedByPrincipalIDContainsFold(v string) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldContainsFold(FieldGrantedByPrincipalID, v))
}

// DepthEQ applies the EQ predicate on the "depth" field.
func DepthEQ(v int) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldEQ(FieldDepth, v))
}

// DepthNEQ applies the NEQ predicate on the "depth" field.
func DepthNEQ(v int) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldNEQ(FieldDepth, v))
}

// DepthIn applies the In predicate on the "depth" field.
func DepthIn(vs ...int) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldIn(FieldDepth, vs...))
}

// DepthNotIn applies the NotIn predicate on the "depth" field.
func DepthNotIn(vs ...int) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldNotIn(FieldDepth, vs...))
}

// DepthGT applies the GT predicate on the "depth" field.
func DepthGT(v int) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldGT(FieldDepth, v))
}

// DepthGTE applies the GTE predicate on the "depth" field.
func DepthGTE(v int) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldGTE(FieldDepth, v))
}

// DepthLT applies the LT predicate on the "depth" field.
func DepthLT(v int) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldLT(FieldDepth, v))
}

// DepthLTE applies the LTE predicate on the "depth" field.
func DepthLTE(v int) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldLTE(FieldDepth, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DelegationEdge) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DelegationEdge) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DelegationEdge) predicate.DelegationEdge {
	return predicate.DelegationEdge(sql.NotPredicates(p))
}
