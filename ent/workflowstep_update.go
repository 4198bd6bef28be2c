// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nocforge/nocforge/ent/predicate"
	"github.com/nocforge/nocforge/ent/workflowstep"
)

// WorkflowStepUpdate is the builder for updating WorkflowStep entities.
type WorkflowStepUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowStepMutation
}

// Where appends a list predicates to the WorkflowStepUpdate builder.
func (_u *WorkflowStepUpdate) Where(ps ...predicate.WorkflowStep) *WorkflowStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStepIndex sets the "step_index" field.
func (_u *WorkflowStepUpdate) SetStepIndex(v int) *WorkflowStepUpdate {
	_u.mutation.ResetStepIndex()
	_u.mutation.SetStepIndex(v)
	return _u
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableStepIndex(v *int) *WorkflowStepUpdate {
	if v != nil {
		_u.SetStepIndex(*v)
	}
	return _u
}

// AddStepIndex adds value to the "step_index" field.
func (_u *WorkflowStepUpdate) AddStepIndex(v int) *WorkflowStepUpdate {
	_u.mutation.AddStepIndex(v)
	return _u
}

// SetPhase sets the "phase" field.
func (_u *WorkflowStepUpdate) SetPhase(v string) *WorkflowStepUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillablePhase(v *string) *WorkflowStepUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetAgentType sets the "agent_type" field.
func (_u *WorkflowStepUpdate) SetAgentType(v string) *WorkflowStepUpdate {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableAgentType(v *string) *WorkflowStepUpdate {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *WorkflowStepUpdate) SetSessionID(v string) *WorkflowStepUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableSessionID(v *string) *WorkflowStepUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *WorkflowStepUpdate) ClearSessionID() *WorkflowStepUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *WorkflowStepUpdate) SetOutcome(v string) *WorkflowStepUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableOutcome(v *string) *WorkflowStepUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *WorkflowStepUpdate) ClearOutcome() *WorkflowStepUpdate {
	_u.mutation.ClearOutcome()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *WorkflowStepUpdate) SetSummary(v string) *WorkflowStepUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableSummary(v *string) *WorkflowStepUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *WorkflowStepUpdate) ClearSummary() *WorkflowStepUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *WorkflowStepUpdate) SetInputTokens(v int) *WorkflowStepUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableInputTokens(v *int) *WorkflowStepUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *WorkflowStepUpdate) AddInputTokens(v int) *WorkflowStepUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *WorkflowStepUpdate) SetOutputTokens(v int) *WorkflowStepUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableOutputTokens(v *int) *WorkflowStepUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *WorkflowStepUpdate) AddOutputTokens(v int) *WorkflowStepUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// Mutation returns the WorkflowStepMutation object of the builder.
func (_u *WorkflowStepUpdate) Mutation() *WorkflowStepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowStepUpdate) check() error {
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowStep.workflow"`)
	}
	return nil
}

func (_u *WorkflowStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowstep.Table, workflowstep.Columns, sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepIndex(); ok {
		_spec.SetField(workflowstep.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIndex(); ok {
		_spec.AddField(workflowstep.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(workflowstep.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(workflowstep.FieldAgentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(workflowstep.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(workflowstep.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(workflowstep.FieldOutcome, field.TypeString, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(workflowstep.FieldOutcome, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(workflowstep.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(workflowstep.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(workflowstep.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(workflowstep.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(workflowstep.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(workflowstep.FieldOutputTokens, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowStepUpdateOne is the builder for updating a single WorkflowStep entity.
type WorkflowStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowStepMutation
}

// SetStepIndex sets the "step_index" field.
func (_u *WorkflowStepUpdateOne) SetStepIndex(v int) *WorkflowStepUpdateOne {
	_u.mutation.ResetStepIndex()
	_u.mutation.SetStepIndex(v)
	return _u
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableStepIndex(v *int) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetStepIndex(*v)
	}
	return _u
}

// AddStepIndex adds value to the "step_index" field.
func (_u *WorkflowStepUpdateOne) AddStepIndex(v int) *WorkflowStepUpdateOne {
	_u.mutation.AddStepIndex(v)
	return _u
}

// SetPhase sets the "phase" field.
func (_u *WorkflowStepUpdateOne) SetPhase(v string) *WorkflowStepUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillablePhase(v *string) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetAgentType sets the "agent_type" field.
func (_u *WorkflowStepUpdateOne) SetAgentType(v string) *WorkflowStepUpdateOne {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableAgentType(v *string) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *WorkflowStepUpdateOne) SetSessionID(v string) *WorkflowStepUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableSessionID(v *string) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *WorkflowStepUpdateOne) ClearSessionID() *WorkflowStepUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *WorkflowStepUpdateOne) SetOutcome(v string) *WorkflowStepUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableOutcome(v *string) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *WorkflowStepUpdateOne) ClearOutcome() *WorkflowStepUpdateOne {
	_u.mutation.ClearOutcome()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *WorkflowStepUpdateOne) SetSummary(v string) *WorkflowStepUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableSummary(v *string) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *WorkflowStepUpdateOne) ClearSummary() *WorkflowStepUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *WorkflowStepUpdateOne) SetInputTokens(v int) *WorkflowStepUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableInputTokens(v *int) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *WorkflowStepUpdateOne) AddInputTokens(v int) *WorkflowStepUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *WorkflowStepUpdateOne) SetOutputTokens(v int) *WorkflowStepUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableOutputTokens(v *int) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *WorkflowStepUpdateOne) AddOutputTokens(v int) *WorkflowStepUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// Mutation returns the WorkflowStepMutation object of the builder.
func (_u *WorkflowStepUpdateOne) Mutation() *WorkflowStepMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkflowStepUpdate builder.
func (_u *WorkflowStepUpdateOne) Where(ps ...predicate.WorkflowStep) *WorkflowStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowStepUpdateOne) Select(field string, fields ...string) *WorkflowStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowStep entity.
func (_u *WorkflowStepUpdateOne) Save(ctx context.Context) (*WorkflowStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowStepUpdateOne) SaveX(ctx context.Context) *WorkflowStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowStepUpdateOne) check() error {
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowStep.workflow"`)
	}
	return nil
}

func (_u *WorkflowStepUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowstep.Table, workflowstep.Columns, sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowstep.FieldID)
		for _, f := range fields {
			if !workflowstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowstep.FieldID {
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
	if value, ok := _u.mutation.StepIndex(); ok {
		_spec.SetField(workflowstep.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIndex(); ok {
		_spec.AddField(workflowstep.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(workflowstep.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(workflowstep.FieldAgentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(workflowstep.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(workflowstep.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(workflowstep.FieldOutcome, field.TypeString, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(workflowstep.FieldOutcome, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(workflowstep.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(workflowstep.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(workflowstep.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(workflowstep.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(workflowstep.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(workflowstep.FieldOutputTokens, field.TypeInt, value)
	}
	_node = &WorkflowStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
