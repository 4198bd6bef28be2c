// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nocforge/nocforge/ent/agentaction"
	"github.com/nocforge/nocforge/ent/predicate"
)

// AgentActionUpdate is the builder for updating AgentAction entities.
type AgentActionUpdate struct {
	config
	hooks    []Hook
	mutation *AgentActionMutation
}

// Where appends a list predicates to the AgentActionUpdate builder.
func (_u *AgentActionUpdate) Where(ps ...predicate.AgentAction) *AgentActionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSequenceNumber sets the "sequence_number" field.
func (_u *AgentActionUpdate) SetSequenceNumber(v int) *AgentActionUpdate {
	_u.mutation.ResetSequenceNumber()
	_u.mutation.SetSequenceNumber(v)
	return _u
}

// SetNillableSequenceNumber sets the "sequence_number" field if the given value is not nil.
func (_u *AgentActionUpdate) SetNillableSequenceNumber(v *int) *AgentActionUpdate {
	if v != nil {
		_u.SetSequenceNumber(*v)
	}
	return _u
}

// AddSequenceNumber adds value to the "sequence_number" field.
func (_u *AgentActionUpdate) AddSequenceNumber(v int) *AgentActionUpdate {
	_u.mutation.AddSequenceNumber(v)
	return _u
}

// SetToolCallID sets the "tool_call_id" field.
func (_u *AgentActionUpdate) SetToolCallID(v string) *AgentActionUpdate {
	_u.mutation.SetToolCallID(v)
	return _u
}

// SetNillableToolCallID sets the "tool_call_id" field if the given value is not nil.
func (_u *AgentActionUpdate) SetNillableToolCallID(v *string) *AgentActionUpdate {
	if v != nil {
		_u.SetToolCallID(*v)
	}
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *AgentActionUpdate) SetToolName(v string) *AgentActionUpdate {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *AgentActionUpdate) SetNillableToolName(v *string) *AgentActionUpdate {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetToolArgs sets the "tool_args" field.
func (_u *AgentActionUpdate) SetToolArgs(v map[string]interface{}) *AgentActionUpdate {
	_u.mutation.SetToolArgs(v)
	return _u
}

// ClearToolArgs clears the value of the "tool_args" field.
func (_u *AgentActionUpdate) ClearToolArgs() *AgentActionUpdate {
	_u.mutation.ClearToolArgs()
	return _u
}

// SetResult sets the "result" field.
func (_u *AgentActionUpdate) SetResult(v map[string]interface{}) *AgentActionUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *AgentActionUpdate) ClearResult() *AgentActionUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AgentActionUpdate) SetSuccess(v bool) *AgentActionUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AgentActionUpdate) SetNillableSuccess(v *bool) *AgentActionUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *AgentActionUpdate) SetRiskLevel(v string) *AgentActionUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *AgentActionUpdate) SetNillableRiskLevel(v *string) *AgentActionUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetApprovalID sets the "approval_id" field.
func (_u *AgentActionUpdate) SetApprovalID(v string) *AgentActionUpdate {
	_u.mutation.SetApprovalID(v)
	return _u
}

// SetNillableApprovalID sets the "approval_id" field if the given value is not nil.
func (_u *AgentActionUpdate) SetNillableApprovalID(v *string) *AgentActionUpdate {
	if v != nil {
		_u.SetApprovalID(*v)
	}
	return _u
}

// ClearApprovalID clears the value of the "approval_id" field.
func (_u *AgentActionUpdate) ClearApprovalID() *AgentActionUpdate {
	_u.mutation.ClearApprovalID()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AgentActionUpdate) SetDurationMs(v int) *AgentActionUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AgentActionUpdate) SetNillableDurationMs(v *int) *AgentActionUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AgentActionUpdate) AddDurationMs(v int) *AgentActionUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *AgentActionUpdate) ClearDurationMs() *AgentActionUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// Mutation returns the AgentActionMutation object of the builder.
func (_u *AgentActionUpdate) Mutation() *AgentActionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentActionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentActionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentActionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentActionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentActionUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentAction.session"`)
	}
	return nil
}

func (_u *AgentActionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentaction.Table, agentaction.Columns, sqlgraph.NewFieldSpec(agentaction.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SequenceNumber(); ok {
		_spec.SetField(agentaction.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceNumber(); ok {
		_spec.AddField(agentaction.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToolCallID(); ok {
		_spec.SetField(agentaction.FieldToolCallID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(agentaction.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolArgs(); ok {
		_spec.SetField(agentaction.FieldToolArgs, field.TypeJSON, value)
	}
	if _u.mutation.ToolArgsCleared() {
		_spec.ClearField(agentaction.FieldToolArgs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(agentaction.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(agentaction.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(agentaction.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(agentaction.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ApprovalID(); ok {
		_spec.SetField(agentaction.FieldApprovalID, field.TypeString, value)
	}
	if _u.mutation.ApprovalIDCleared() {
		_spec.ClearField(agentaction.FieldApprovalID, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(agentaction.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(agentaction.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(agentaction.FieldDurationMs, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentActionUpdateOne is the builder for updating a single AgentAction entity.
type AgentActionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentActionMutation
}

// SetSequenceNumber sets the "sequence_number" field.
func (_u *AgentActionUpdateOne) SetSequenceNumber(v int) *AgentActionUpdateOne {
	_u.mutation.ResetSequenceNumber()
	_u.mutation.SetSequenceNumber(v)
	return _u
}

// SetNillableSequenceNumber sets the "sequence_number" field if the given value is not nil.
func (_u *AgentActionUpdateOne) SetNillableSequenceNumber(v *int) *AgentActionUpdateOne {
	if v != nil {
		_u.SetSequenceNumber(*v)
	}
	return _u
}

// AddSequenceNumber adds value to the "sequence_number" field.
func (_u *AgentActionUpdateOne) AddSequenceNumber(v int) *AgentActionUpdateOne {
	_u.mutation.AddSequenceNumber(v)
	return _u
}

// SetToolCallID sets the "tool_call_id" field.
func (_u *AgentActionUpdateOne) SetToolCallID(v string) *AgentActionUpdateOne {
	_u.mutation.SetToolCallID(v)
	return _u
}

// SetNillableToolCallID sets the "tool_call_id" field if the given value is not nil.
func (_u *AgentActionUpdateOne) SetNillableToolCallID(v *string) *AgentActionUpdateOne {
	if v != nil {
		_u.SetToolCallID(*v)
	}
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *AgentActionUpdateOne) SetToolName(v string) *AgentActionUpdateOne {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *AgentActionUpdateOne) SetNillableToolName(v *string) *AgentActionUpdateOne {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetToolArgs sets the "tool_args" field.
func (_u *AgentActionUpdateOne) SetToolArgs(v map[string]interface{}) *AgentActionUpdateOne {
	_u.mutation.SetToolArgs(v)
	return _u
}

// ClearToolArgs clears the value of the "tool_args" field.
func (_u *AgentActionUpdateOne) ClearToolArgs() *AgentActionUpdateOne {
	_u.mutation.ClearToolArgs()
	return _u
}

// SetResult sets the "result" field.
func (_u *AgentActionUpdateOne) SetResult(v map[string]interface{}) *AgentActionUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *AgentActionUpdateOne) ClearResult() *AgentActionUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AgentActionUpdateOne) SetSuccess(v bool) *AgentActionUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AgentActionUpdateOne) SetNillableSuccess(v *bool) *AgentActionUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *AgentActionUpdateOne) SetRiskLevel(v string) *AgentActionUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *AgentActionUpdateOne) SetNillableRiskLevel(v *string) *AgentActionUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetApprovalID sets the "approval_id" field.
func (_u *AgentActionUpdateOne) SetApprovalID(v string) *AgentActionUpdateOne {
	_u.mutation.SetApprovalID(v)
	return _u
}

// SetNillableApprovalID sets the "approval_id" field if the given value is not nil.
func (_u *AgentActionUpdateOne) SetNillableApprovalID(v *string) *AgentActionUpdateOne {
	if v != nil {
		_u.SetApprovalID(*v)
	}
	return _u
}

// ClearApprovalID clears the value of the "approval_id" field.
func (_u *AgentActionUpdateOne) ClearApprovalID() *AgentActionUpdateOne {
	_u.mutation.ClearApprovalID()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AgentActionUpdateOne) SetDurationMs(v int) *AgentActionUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AgentActionUpdateOne) SetNillableDurationMs(v *int) *AgentActionUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AgentActionUpdateOne) AddDurationMs(v int) *AgentActionUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *AgentActionUpdateOne) ClearDurationMs() *AgentActionUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// Mutation returns the AgentActionMutation object of the builder.
func (_u *AgentActionUpdateOne) Mutation() *AgentActionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentActionUpdate builder.
func (_u *AgentActionUpdateOne) Where(ps ...predicate.AgentAction) *AgentActionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentActionUpdateOne) Select(field string, fields ...string) *AgentActionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentAction entity.
func (_u *AgentActionUpdateOne) Save(ctx context.Context) (*AgentAction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentActionUpdateOne) SaveX(ctx context.Context) *AgentAction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentActionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentActionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentActionUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentAction.session"`)
	}
	return nil
}

func (_u *AgentActionUpdateOne) sqlSave(ctx context.Context) (_node *AgentAction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentaction.Table, agentaction.Columns, sqlgraph.NewFieldSpec(agentaction.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentAction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentaction.FieldID)
		for _, f := range fields {
			if !agentaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentaction.FieldID {
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
	if value, ok := _u.mutation.SequenceNumber(); ok {
		_spec.SetField(agentaction.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceNumber(); ok {
		_spec.AddField(agentaction.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToolCallID(); ok {
		_spec.SetField(agentaction.FieldToolCallID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(agentaction.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolArgs(); ok {
		_spec.SetField(agentaction.FieldToolArgs, field.TypeJSON, value)
	}
	if _u.mutation.ToolArgsCleared() {
		_spec.ClearField(agentaction.FieldToolArgs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(agentaction.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(agentaction.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(agentaction.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(agentaction.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ApprovalID(); ok {
		_spec.SetField(agentaction.FieldApprovalID, field.TypeString, value)
	}
	if _u.mutation.ApprovalIDCleared() {
		_spec.ClearField(agentaction.FieldApprovalID, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(agentaction.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(agentaction.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(agentaction.FieldDurationMs, field.TypeInt)
	}
	_node = &AgentAction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
