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
	"github.com/missionloop/groundcontrol/ent/delegationedge"
	"github.com/missionloop/groundcontrol/ent/predicate"
)

// DelegationEdgeUpdate is the builder for updating DelegationEdge entities.
type DelegationEdgeUpdate struct {
	config
	hooks    []Hook
	mutation *DelegationEdgeMutation
}

// Where appends a list predicates to the DelegationEdgeUpdate builder.
func (_u *DelegationEdgeUpdate) Where(ps ...predicate.DelegationEdge) *DelegationEdgeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *DelegationEdgeUpdate) SetWorkspaceID(v string) *DelegationEdgeUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *DelegationEdgeUpdate) SetNillableWorkspaceID(v *string) *DelegationEdgeUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetParentTokenID sets the "parent_token_id" field.
func (_u *DelegationEdgeUpdate) SetParentTokenID(v string) *DelegationEdgeUpdate {
	_u.mutation.SetParentTokenID(v)
	return _u
}

// SetNillableParentTokenID sets the "parent_token_id" field if the given value is not nil.
func (_u *DelegationEdgeUpdate) SetNillableParentTokenID(v *string) *DelegationEdgeUpdate {
	if v != nil {
		_u.SetParentTokenID(*v)
	}
	return _u
}

// SetChildTokenID sets the "child_token_id" field.
func (_u *DelegationEdgeUpdate) SetChildTokenID(v string) *DelegationEdgeUpdate {
	_u.mutation.SetChildTokenID(v)
	return _u
}

// SetNillableChildTokenID sets the "child_token_id" field if the given value is not nil.
func (_u *DelegationEdgeUpdate) SetNillableChildTokenID(v *string) *DelegationEdgeUpdate {
	if v != nil {
		_u.SetChildTokenID(*v)
	}
	return _u
}

// SetIssuedToPrincipalID sets the "issued_to_principal_id" field.
func (_u *DelegationEdgeUpdate) SetIssuedToPrincipalID(v string) *DelegationEdgeUpdate {
	_u.mutation.SetIssuedToPrincipalID(v)
	return _u
}

// SetNillableIssuedToPrincipalID sets the "issued_to_principal_id" field if the given value is not nil.
func (_u *DelegationEdgeUpdate) SetNillableIssuedToPrincipalID(v *string) *DelegationEdgeUpdate {
	if v != nil {
		_u.SetIssuedToPrincipalID(*v)
	}
	return _u
}

// SetGrantedByPrincipalID sets the "granted_by_principal_id" field.
func (_u *DelegationEdgeUpdate) SetGrantedByPrincipalID(v string) *DelegationEdgeUpdate {
	_u.mutation.SetGrantedByPrincipalID(v)
	return _u
}

// SetNillableGrantedByPrincipalID sets the "granted_by_principal_id" field if the given value is not nil.
func (_u *DelegationEdgeUpdate) SetNillableGrantedByPrincipalID(v *string) *DelegationEdgeUpdate {
	if v != nil {
		_u.SetGrantedByPrincipalID(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *DelegationEdgeUpdate) SetDepth(v int) *DelegationEdgeUpdate {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *DelegationEdgeUpdate) SetNillableDepth(v *int) *DelegationEdgeUpdate {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *DelegationEdgeUpdate) AddDepth(v int) *DelegationEdgeUpdate {
	_u.mutation.AddDepth(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DelegationEdgeUpdate) SetCreatedAt(v time.Time) *DelegationEdgeUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DelegationEdgeUpdate) SetNillableCreatedAt(v *time.Time) *DelegationEdgeUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the DelegationEdgeMutation object of the builder.
func (_u *DelegationEdgeUpdate) Mutation() *DelegationEdgeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DelegationEdgeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DelegationEdgeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DelegationEdgeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DelegationEdgeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DelegationEdgeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(delegationedge.Table, delegationedge.Columns, sqlgraph.NewFieldSpec(delegationedge.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(delegationedge.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentTokenID(); ok {
		_spec.SetField(delegationedge.FieldParentTokenID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChildTokenID(); ok {
		_spec.SetField(delegationedge.FieldChildTokenID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssuedToPrincipalID(); ok {
		_spec.SetField(delegationedge.FieldIssuedToPrincipalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GrantedByPrincipalID(); ok {
		_spec.SetField(delegationedge.FieldGrantedByPrincipalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(delegationedge.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(delegationedge.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(delegationedge.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{delegationedge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DelegationEdgeUpdateOne is the builder for updating a single DelegationEdge entity.
type DelegationEdgeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DelegationEdgeMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *DelegationEdgeUpdateOne) SetWorkspaceID(v string) *DelegationEdgeUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *DelegationEdgeUpdateOne) SetNillableWorkspaceID(v *string) *DelegationEdgeUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetParentTokenID sets the "parent_token_id" field.
func (_u *DelegationEdgeUpdateOne) SetParentTokenID(v string) *DelegationEdgeUpdateOne {
	_u.mutation.SetParentTokenID(v)
	return _u
}

// SetNillableParentTokenID sets the "parent_token_id" field if the given value is not nil.
func (_u *DelegationEdgeUpdateOne) SetNillableParentTokenID(v *string) *DelegationEdgeUpdateOne {
	if v != nil {
		_u.SetParentTokenID(*v)
	}
	return _u
}

// SetChildTokenID sets the "child_token_id" field.
func (_u *DelegationEdgeUpdateOne) SetChildTokenID(v string) *DelegationEdgeUpdateOne {
	_u.mutation.SetChildTokenID(v)
	return _u
}

// SetNillableChildTokenID sets the "child_token_id" field if the given value is not nil.
func (_u *DelegationEdgeUpdateOne) SetNillableChildTokenID(v *string) *DelegationEdgeUpdateOne {
	if v != nil {
		_u.SetChildTokenID(*v)
	}
	return _u
}

// SetIssuedToPrincipalID sets the "issued_to_principal_id" field.
func (_u *DelegationEdgeUpdateOne) SetIssuedToPrincipalID(v string) *DelegationEdgeUpdateOne {
	_u.mutation.SetIssuedToPrincipalID(v)
	return _u
}

// SetNillableIssuedToPrincipalID sets the "issued_to_principal_id" field if the given value is not nil.
func (_u *DelegationEdgeUpdateOne) SetNillableIssuedToPrincipalID(v *string) *DelegationEdgeUpdateOne {
	if v != nil {
		_u.SetIssuedToPrincipalID(*v)
	}
	return _u
}

// SetGrantedByPrincipalID sets the "granted_by_principal_id" field.
func (_u *DelegationEdgeUpdateOne) SetGrantedByPrincipalID(v string) *DelegationEdgeUpdateOne {
	_u.mutation.SetGrantedByPrincipalID(v)
	return _u
}

// SetNillableGrantedByPrincipalID sets the "granted_by_principal_id" field if the given value is not nil.
func (_u *DelegationEdgeUpdateOne) SetNillableGrantedByPrincipalID(v *string) *DelegationEdgeUpdateOne {
	if v != nil {
		_u.SetGrantedByPrincipalID(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *DelegationEdgeUpdateOne) SetDepth(v int) *DelegationEdgeUpdateOne {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *DelegationEdgeUpdateOne) SetNillableDepth(v *int) *DelegationEdgeUpdateOne {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *DelegationEdgeUpdateOne) AddDepth(v int) *DelegationEdgeUpdateOne {
	_u.mutation.AddDepth(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DelegationEdgeUpdateOne) SetCreatedAt(v time.Time) *DelegationEdgeUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DelegationEdgeUpdateOne) SetNillableCreatedAt(v *time.Time) *DelegationEdgeUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the DelegationEdgeMutation object of the builder.
func (_u *DelegationEdgeUpdateOne) Mutation() *DelegationEdgeMutation {
	return _u.mutation
}

// Where appends a list predicates to the DelegationEdgeUpdate builder.
func (_u *DelegationEdgeUpdateOne) Where(ps ...predicate.DelegationEdge) *DelegationEdgeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DelegationEdgeUpdateOne) Select(field string, fields ...string) *DelegationEdgeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DelegationEdge entity.
func (_u *DelegationEdgeUpdateOne) Save(ctx context.Context) (*DelegationEdge, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DelegationEdgeUpdateOne) SaveX(ctx context.Context) *DelegationEdge {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DelegationEdgeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DelegationEdgeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DelegationEdgeUpdateOne) sqlSave(ctx context.Context) (_node *DelegationEdge, err error) {
	_spec := sqlgraph.NewUpdateSpec(delegationedge.Table, delegationedge.Columns, sqlgraph.NewFieldSpec(delegationedge.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DelegationEdge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, delegationedge.FieldID)
		for _, f := range fields {
			if !delegationedge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != delegationedge.FieldID {
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
		_spec.SetField(delegationedge.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParentTokenID(); ok {
		_spec.SetField(delegationedge.FieldParentTokenID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChildTokenID(); ok {
		_spec.SetField(delegationedge.FieldChildTokenID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssuedToPrincipalID(); ok {
		_spec.SetField(delegationedge.FieldIssuedToPrincipalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GrantedByPrincipalID(); ok {
		_spec.SetField(delegationedge.FieldGrantedByPrincipalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(delegationedge.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(delegationedge.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(delegationedge.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &DelegationEdge{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{delegationedge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
