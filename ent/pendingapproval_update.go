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
	"github.com/nocforge/nocforge/ent/pendingapproval"
	"github.com/nocforge/nocforge/ent/predicate"
)

// PendingApprovalUpdate is the builder for updating PendingApproval entities.
type PendingApprovalUpdate struct {
	config
	hooks    []Hook
	mutation *PendingApprovalMutation
}

// Where appends a list predicates to the PendingApprovalUpdate builder.
func (_u *PendingApprovalUpdate) Where(ps ...predicate.PendingApproval) *PendingApprovalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetActionID sets the "action_id" field.
func (_u *PendingApprovalUpdate) SetActionID(v string) *PendingApprovalUpdate {
	_u.mutation.SetActionID(v)
	return _u
}

// SetNillableActionID sets the "action_id" field if the given value is not nil.
func (_u *PendingApprovalUpdate) SetNillableActionID(v *string) *PendingApprovalUpdate {
	if v != nil {
		_u.SetActionID(*v)
	}
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *PendingApprovalUpdate) SetToolName(v string) *PendingApprovalUpdate {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *PendingApprovalUpdate) SetNillableToolName(v *string) *PendingApprovalUpdate {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetToolArgs sets the "tool_args" field.
func (_u *PendingApprovalUpdate) SetToolArgs(v map[string]interface{}) *PendingApprovalUpdate {
	_u.mutation.SetToolArgs(v)
	return _u
}

// ClearToolArgs clears the value of the "tool_args" field.
func (_u *PendingApprovalUpdate) ClearToolArgs() *PendingApprovalUpdate {
	_u.mutation.ClearToolArgs()
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *PendingApprovalUpdate) SetRiskLevel(v string) *PendingApprovalUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *PendingApprovalUpdate) SetNillableRiskLevel(v *string) *PendingApprovalUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PendingApprovalUpdate) SetStatus(v pendingapproval.Status) *PendingApprovalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PendingApprovalUpdate) SetNillableStatus(v *pendingapproval.Status) *PendingApprovalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *PendingApprovalUpdate) SetExpiresAt(v time.Time) *PendingApprovalUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *PendingApprovalUpdate) SetNillableExpiresAt(v *time.Time) *PendingApprovalUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *PendingApprovalUpdate) SetDecidedAt(v time.Time) *PendingApprovalUpdate {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *PendingApprovalUpdate) SetNillableDecidedAt(v *time.Time) *PendingApprovalUpdate {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *PendingApprovalUpdate) ClearDecidedAt() *PendingApprovalUpdate {
	_u.mutation.ClearDecidedAt()
	return _u
}

// SetDecidedBy sets the "decided_by" field.
func (_u *PendingApprovalUpdate) SetDecidedBy(v string) *PendingApprovalUpdate {
	_u.mutation.SetDecidedBy(v)
	return _u
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_u *PendingApprovalUpdate) SetNillableDecidedBy(v *string) *PendingApprovalUpdate {
	if v != nil {
		_u.SetDecidedBy(*v)
	}
	return _u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (_u *PendingApprovalUpdate) ClearDecidedBy() *PendingApprovalUpdate {
	_u.mutation.ClearDecidedBy()
	return _u
}

// SetDecisionReason sets the "decision_reason" field.
func (_u *PendingApprovalUpdate) SetDecisionReason(v string) *PendingApprovalUpdate {
	_u.mutation.SetDecisionReason(v)
	return _u
}

// SetNillableDecisionReason sets the "decision_reason" field if the given value is not nil.
func (_u *PendingApprovalUpdate) SetNillableDecisionReason(v *string) *PendingApprovalUpdate {
	if v != nil {
		_u.SetDecisionReason(*v)
	}
	return _u
}

// ClearDecisionReason clears the value of the "decision_reason" field.
func (_u *PendingApprovalUpdate) ClearDecisionReason() *PendingApprovalUpdate {
	_u.mutation.ClearDecisionReason()
	return _u
}

// Mutation returns the PendingApprovalMutation object of the builder.
func (_u *PendingApprovalUpdate) Mutation() *PendingApprovalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PendingApprovalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PendingApprovalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PendingApprovalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PendingApprovalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PendingApprovalUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pendingapproval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PendingApproval.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PendingApproval.session"`)
	}
	return nil
}

func (_u *PendingApprovalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pendingapproval.Table, pendingapproval.Columns, sqlgraph.NewFieldSpec(pendingapproval.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ActionID(); ok {
		_spec.SetField(pendingapproval.FieldActionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(pendingapproval.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolArgs(); ok {
		_spec.SetField(pendingapproval.FieldToolArgs, field.TypeJSON, value)
	}
	if _u.mutation.ToolArgsCleared() {
		_spec.ClearField(pendingapproval.FieldToolArgs, field.TypeJSON)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(pendingapproval.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pendingapproval.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(pendingapproval.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(pendingapproval.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(pendingapproval.FieldDecidedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DecidedBy(); ok {
		_spec.SetField(pendingapproval.FieldDecidedBy, field.TypeString, value)
	}
	if _u.mutation.DecidedByCleared() {
		_spec.ClearField(pendingapproval.FieldDecidedBy, field.TypeString)
	}
	if value, ok := _u.mutation.DecisionReason(); ok {
		_spec.SetField(pendingapproval.FieldDecisionReason, field.TypeString, value)
	}
	if _u.mutation.DecisionReasonCleared() {
		_spec.ClearField(pendingapproval.FieldDecisionReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pendingapproval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PendingApprovalUpdateOne is the builder for updating a single PendingApproval entity.
type PendingApprovalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PendingApprovalMutation
}

// SetActionID sets the "action_id" field.
func (_u *PendingApprovalUpdateOne) SetActionID(v string) *PendingApprovalUpdateOne {
	_u.mutation.SetActionID(v)
	return _u
}

// SetNillableActionID sets the "action_id" field if the given value is not nil.
func (_u *PendingApprovalUpdateOne) SetNillableActionID(v *string) *PendingApprovalUpdateOne {
	if v != nil {
		_u.SetActionID(*v)
	}
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *PendingApprovalUpdateOne) SetToolName(v string) *PendingApprovalUpdateOne {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *PendingApprovalUpdateOne) SetNillableToolName(v *string) *PendingApprovalUpdateOne {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetToolArgs sets the "tool_args" field.
func (_u *PendingApprovalUpdateOne) SetToolArgs(v map[string]interface{}) *PendingApprovalUpdateOne {
	_u.mutation.SetToolArgs(v)
	return _u
}

// ClearToolArgs clears the value of the "tool_args" field.
func (_u *PendingApprovalUpdateOne) ClearToolArgs() *PendingApprovalUpdateOne {
	_u.mutation.ClearToolArgs()
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *PendingApprovalUpdateOne) SetRiskLevel(v string) *PendingApprovalUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *PendingApprovalUpdateOne) SetNillableRiskLevel(v *string) *PendingApprovalUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PendingApprovalUpdateOne) SetStatus(v pendingapproval.Status) *PendingApprovalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PendingApprovalUpdateOne) SetNillableStatus(v *pendingapproval.Status) *PendingApprovalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *PendingApprovalUpdateOne) SetExpiresAt(v time.Time) *PendingApprovalUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *PendingApprovalUpdateOne) SetNillableExpiresAt(v *time.Time) *PendingApprovalUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *PendingApprovalUpdateOne) SetDecidedAt(v time.Time) *PendingApprovalUpdateOne {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *PendingApprovalUpdateOne) SetNillableDecidedAt(v *time.Time) *PendingApprovalUpdateOne {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *PendingApprovalUpdateOne) ClearDecidedAt() *PendingApprovalUpdateOne {
	_u.mutation.ClearDecidedAt()
	return _u
}

// SetDecidedBy sets the "decided_by" field.
func (_u *PendingApprovalUpdateOne) SetDecidedBy(v string) *PendingApprovalUpdateOne {
	_u.mutation.SetDecidedBy(v)
	return _u
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_u *PendingApprovalUpdateOne) SetNillableDecidedBy(v *string) *PendingApprovalUpdateOne {
	if v != nil {
		_u.SetDecidedBy(*v)
	}
	return _u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (_u *PendingApprovalUpdateOne) ClearDecidedBy() *PendingApprovalUpdateOne {
	_u.mutation.ClearDecidedBy()
	return _u
}

// SetDecisionReason sets the "decision_reason" field.
func (_u *PendingApprovalUpdateOne) SetDecisionReason(v string) *PendingApprovalUpdateOne {
	_u.mutation.SetDecisionReason(v)
	return _u
}

// SetNillableDecisionReason sets the "decision_reason" field if the given value is not nil.
func (_u *PendingApprovalUpdateOne) SetNillableDecisionReason(v *string) *PendingApprovalUpdateOne {
	if v != nil {
		_u.SetDecisionReason(*v)
	}
	return _u
}

// ClearDecisionReason clears the value of the "decision_reason" field.
func (_u *PendingApprovalUpdateOne) ClearDecisionReason() *PendingApprovalUpdateOne {
	_u.mutation.ClearDecisionReason()
	return _u
}

// Mutation returns the PendingApprovalMutation object of the builder.
func (_u *PendingApprovalUpdateOne) Mutation() *PendingApprovalMutation {
	return _u.mutation
}

// Where appends a list predicates to the PendingApprovalUpdate builder.
func (_u *PendingApprovalUpdateOne) Where(ps ...predicate.PendingApproval) *PendingApprovalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PendingApprovalUpdateOne) Select(field string, fields ...string) *PendingApprovalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PendingApproval entity.
func (_u *PendingApprovalUpdateOne) Save(ctx context.Context) (*PendingApproval, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PendingApprovalUpdateOne) SaveX(ctx context.Context) *PendingApproval {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PendingApprovalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PendingApprovalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PendingApprovalUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pendingapproval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PendingApproval.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PendingApproval.session"`)
	}
	return nil
}

func (_u *PendingApprovalUpdateOne) sqlSave(ctx context.Context) (_node *PendingApproval, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pendingapproval.Table, pendingapproval.Columns, sqlgraph.NewFieldSpec(pendingapproval.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PendingApproval.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pendingapproval.FieldID)
		for _, f := range fields {
			if !pendingapproval.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pendingapproval.FieldID {
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
	if value, ok := _u.mutation.ActionID(); ok {
		_spec.SetField(pendingapproval.FieldActionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(pendingapproval.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolArgs(); ok {
		_spec.SetField(pendingapproval.FieldToolArgs, field.TypeJSON, value)
	}
	if _u.mutation.ToolArgsCleared() {
		_spec.ClearField(pendingapproval.FieldToolArgs, field.TypeJSON)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(pendingapproval.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pendingapproval.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(pendingapproval.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(pendingapproval.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(pendingapproval.FieldDecidedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DecidedBy(); ok {
		_spec.SetField(pendingapproval.FieldDecidedBy, field.TypeString, value)
	}
	if _u.mutation.DecidedByCleared() {
		_spec.ClearField(pendingapproval.FieldDecidedBy, field.TypeString)
	}
	if value, ok := _u.mutation.DecisionReason(); ok {
		_spec.SetField(pendingapproval.FieldDecisionReason, field.TypeString, value)
	}
	if _u.mutation.DecisionReasonCleared() {
		_spec.ClearField(pendingapproval.FieldDecisionReason, field.TypeString)
	}
	_node = &PendingApproval{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pendingapproval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
