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
	"github.com/nocforge/nocforge/ent/predicate"
	"github.com/nocforge/nocforge/ent/workflowlog"
	"github.com/nocforge/nocforge/ent/workflowstep"
)

// WorkflowLogUpdate is the builder for updating WorkflowLog entities.
type WorkflowLogUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowLogMutation
}

// Where appends a list predicates to the WorkflowLogUpdate builder.
func (_u *WorkflowLogUpdate) Where(ps ...predicate.WorkflowLog) *WorkflowLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowLogUpdate) SetStatus(v string) *WorkflowLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowLogUpdate) SetNillableStatus(v *string) *WorkflowLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *WorkflowLogUpdate) SetOutcome(v string) *WorkflowLogUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *WorkflowLogUpdate) SetNillableOutcome(v *string) *WorkflowLogUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *WorkflowLogUpdate) ClearOutcome() *WorkflowLogUpdate {
	_u.mutation.ClearOutcome()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *WorkflowLogUpdate) SetSummary(v string) *WorkflowLogUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *WorkflowLogUpdate) SetNillableSummary(v *string) *WorkflowLogUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *WorkflowLogUpdate) ClearSummary() *WorkflowLogUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (_u *WorkflowLogUpdate) SetTotalInputTokens(v int) *WorkflowLogUpdate {
	_u.mutation.ResetTotalInputTokens()
	_u.mutation.SetTotalInputTokens(v)
	return _u
}

// SetNillableTotalInputTokens sets the "total_input_tokens" field if the given value is not nil.
func (_u *WorkflowLogUpdate) SetNillableTotalInputTokens(v *int) *WorkflowLogUpdate {
	if v != nil {
		_u.SetTotalInputTokens(*v)
	}
	return _u
}

// AddTotalInputTokens adds value to the "total_input_tokens" field.
func (_u *WorkflowLogUpdate) AddTotalInputTokens(v int) *WorkflowLogUpdate {
	_u.mutation.AddTotalInputTokens(v)
	return _u
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (_u *WorkflowLogUpdate) SetTotalOutputTokens(v int) *WorkflowLogUpdate {
	_u.mutation.ResetTotalOutputTokens()
	_u.mutation.SetTotalOutputTokens(v)
	return _u
}

// SetNillableTotalOutputTokens sets the "total_output_tokens" field if the given value is not nil.
func (_u *WorkflowLogUpdate) SetNillableTotalOutputTokens(v *int) *WorkflowLogUpdate {
	if v != nil {
		_u.SetTotalOutputTokens(*v)
	}
	return _u
}

// AddTotalOutputTokens adds value to the "total_output_tokens" field.
func (_u *WorkflowLogUpdate) AddTotalOutputTokens(v int) *WorkflowLogUpdate {
	_u.mutation.AddTotalOutputTokens(v)
	return _u
}

// SetEstimatedCost sets the "estimated_cost" field.
func (_u *WorkflowLogUpdate) SetEstimatedCost(v float64) *WorkflowLogUpdate {
	_u.mutation.ResetEstimatedCost()
	_u.mutation.SetEstimatedCost(v)
	return _u
}

// SetNillableEstimatedCost sets the "estimated_cost" field if the given value is not nil.
func (_u *WorkflowLogUpdate) SetNillableEstimatedCost(v *float64) *WorkflowLogUpdate {
	if v != nil {
		_u.SetEstimatedCost(*v)
	}
	return _u
}

// AddEstimatedCost adds value to the "estimated_cost" field.
func (_u *WorkflowLogUpdate) AddEstimatedCost(v float64) *WorkflowLogUpdate {
	_u.mutation.AddEstimatedCost(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowLogUpdate) SetCompletedAt(v time.Time) *WorkflowLogUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowLogUpdate) SetNillableCompletedAt(v *time.Time) *WorkflowLogUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowLogUpdate) ClearCompletedAt() *WorkflowLogUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddStepIDs adds the "steps" edge to the WorkflowStep entity by IDs.
func (_u *WorkflowLogUpdate) AddStepIDs(ids ...string) *WorkflowLogUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the WorkflowStep entity.
func (_u *WorkflowLogUpdate) AddSteps(v ...*WorkflowStep) *WorkflowLogUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// Mutation returns the WorkflowLogMutation object of the builder.
func (_u *WorkflowLogUpdate) Mutation() *WorkflowLogMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the WorkflowStep entity.
func (_u *WorkflowLogUpdate) ClearSteps() *WorkflowLogUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to WorkflowStep entities by IDs.
func (_u *WorkflowLogUpdate) RemoveStepIDs(ids ...string) *WorkflowLogUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to WorkflowStep entities.
func (_u *WorkflowLogUpdate) RemoveSteps(v ...*WorkflowStep) *WorkflowLogUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowLogUpdate) check() error {
	if _u.mutation.AlertCleared() && len(_u.mutation.AlertIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowLog.alert"`)
	}
	return nil
}

func (_u *WorkflowLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowlog.Table, workflowlog.Columns, sqlgraph.NewFieldSpec(workflowlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowlog.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(workflowlog.FieldOutcome, field.TypeString, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(workflowlog.FieldOutcome, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(workflowlog.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(workflowlog.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.TotalInputTokens(); ok {
		_spec.SetField(workflowlog.FieldTotalInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalInputTokens(); ok {
		_spec.AddField(workflowlog.FieldTotalInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalOutputTokens(); ok {
		_spec.SetField(workflowlog.FieldTotalOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalOutputTokens(); ok {
		_spec.AddField(workflowlog.FieldTotalOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedCost(); ok {
		_spec.SetField(workflowlog.FieldEstimatedCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCost(); ok {
		_spec.AddField(workflowlog.FieldEstimatedCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflowlog.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflowlog.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowlog.StepsTable,
			Columns: []string{workflowlog.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowlog.StepsTable,
			Columns: []string{workflowlog.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowlog.StepsTable,
			Columns: []string{workflowlog.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowLogUpdateOne is the builder for updating a single WorkflowLog entity.
type WorkflowLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowLogMutation
}

// SetStatus sets the "status" field.
func (_u *WorkflowLogUpdateOne) SetStatus(v string) *WorkflowLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowLogUpdateOne) SetNillableStatus(v *string) *WorkflowLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *WorkflowLogUpdateOne) SetOutcome(v string) *WorkflowLogUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *WorkflowLogUpdateOne) SetNillableOutcome(v *string) *WorkflowLogUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// ClearOutcome clears the value of the "outcome" field.
func (_u *WorkflowLogUpdateOne) ClearOutcome() *WorkflowLogUpdateOne {
	_u.mutation.ClearOutcome()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *WorkflowLogUpdateOne) SetSummary(v string) *WorkflowLogUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *WorkflowLogUpdateOne) SetNillableSummary(v *string) *WorkflowLogUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *WorkflowLogUpdateOne) ClearSummary() *WorkflowLogUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (_u *WorkflowLogUpdateOne) SetTotalInputTokens(v int) *WorkflowLogUpdateOne {
	_u.mutation.ResetTotalInputTokens()
	_u.mutation.SetTotalInputTokens(v)
	return _u
}

// SetNillableTotalInputTokens sets the "total_input_tokens" field if the given value is not nil.
func (_u *WorkflowLogUpdateOne) SetNillableTotalInputTokens(v *int) *WorkflowLogUpdateOne {
	if v != nil {
		_u.SetTotalInputTokens(*v)
	}
	return _u
}

// AddTotalInputTokens adds value to the "total_input_tokens" field.
func (_u *WorkflowLogUpdateOne) AddTotalInputTokens(v int) *WorkflowLogUpdateOne {
	_u.mutation.AddTotalInputTokens(v)
	return _u
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (_u *WorkflowLogUpdateOne) SetTotalOutputTokens(v int) *WorkflowLogUpdateOne {
	_u.mutation.ResetTotalOutputTokens()
	_u.mutation.SetTotalOutputTokens(v)
	return _u
}

// SetNillableTotalOutputTokens sets the "total_output_tokens" field if the given value is not nil.
func (_u *WorkflowLogUpdateOne) SetNillableTotalOutputTokens(v *int) *WorkflowLogUpdateOne {
	if v != nil {
		_u.SetTotalOutputTokens(*v)
	}
	return _u
}

// AddTotalOutputTokens adds value to the "total_output_tokens" field.
func (_u *WorkflowLogUpdateOne) AddTotalOutputTokens(v int) *WorkflowLogUpdateOne {
	_u.mutation.AddTotalOutputTokens(v)
	return _u
}

// SetEstimatedCost sets the "estimated_cost" field.
func (_u *WorkflowLogUpdateOne) SetEstimatedCost(v float64) *WorkflowLogUpdateOne {
	_u.mutation.ResetEstimatedCost()
	_u.mutation.SetEstimatedCost(v)
	return _u
}

// SetNillableEstimatedCost sets the "estimated_cost" field if the given value is not nil.
func (_u *WorkflowLogUpdateOne) SetNillableEstimatedCost(v *float64) *WorkflowLogUpdateOne {
	if v != nil {
		_u.SetEstimatedCost(*v)
	}
	return _u
}

// AddEstimatedCost adds value to the "estimated_cost" field.
func (_u *WorkflowLogUpdateOne) AddEstimatedCost(v float64) *WorkflowLogUpdateOne {
	_u.mutation.AddEstimatedCost(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowLogUpdateOne) SetCompletedAt(v time.Time) *WorkflowLogUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowLogUpdateOne) SetNillableCompletedAt(v *time.Time) *WorkflowLogUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowLogUpdateOne) ClearCompletedAt() *WorkflowLogUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddStepIDs adds the "steps" edge to the WorkflowStep entity by IDs.
func (_u *WorkflowLogUpdateOne) AddStepIDs(ids ...string) *WorkflowLogUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the WorkflowStep entity.
func (_u *WorkflowLogUpdateOne) AddSteps(v ...*WorkflowStep) *WorkflowLogUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// Mutation returns the WorkflowLogMutation object of the builder.
func (_u *WorkflowLogUpdateOne) Mutation() *WorkflowLogMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the WorkflowStep entity.
func (_u *WorkflowLogUpdateOne) ClearSteps() *WorkflowLogUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to WorkflowStep entities by IDs.
func (_u *WorkflowLogUpdateOne) RemoveStepIDs(ids ...string) *WorkflowLogUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to WorkflowStep entities.
func (_u *WorkflowLogUpdateOne) RemoveSteps(v ...*WorkflowStep) *WorkflowLogUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// Where appends a list predicates to the WorkflowLogUpdate builder.
func (_u *WorkflowLogUpdateOne) Where(ps ...predicate.WorkflowLog) *WorkflowLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowLogUpdateOne) Select(field string, fields ...string) *WorkflowLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowLog entity.
func (_u *WorkflowLogUpdateOne) Save(ctx context.Context) (*WorkflowLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowLogUpdateOne) SaveX(ctx context.Context) *WorkflowLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowLogUpdateOne) check() error {
	if _u.mutation.AlertCleared() && len(_u.mutation.AlertIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowLog.alert"`)
	}
	return nil
}

func (_u *WorkflowLogUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowlog.Table, workflowlog.Columns, sqlgraph.NewFieldSpec(workflowlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowlog.FieldID)
		for _, f := range fields {
			if !workflowlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowlog.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowlog.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(workflowlog.FieldOutcome, field.TypeString, value)
	}
	if _u.mutation.OutcomeCleared() {
		_spec.ClearField(workflowlog.FieldOutcome, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(workflowlog.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(workflowlog.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.TotalInputTokens(); ok {
		_spec.SetField(workflowlog.FieldTotalInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalInputTokens(); ok {
		_spec.AddField(workflowlog.FieldTotalInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalOutputTokens(); ok {
		_spec.SetField(workflowlog.FieldTotalOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalOutputTokens(); ok {
		_spec.AddField(workflowlog.FieldTotalOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedCost(); ok {
		_spec.SetField(workflowlog.FieldEstimatedCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCost(); ok {
		_spec.AddField(workflowlog.FieldEstimatedCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflowlog.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflowlog.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowlog.StepsTable,
			Columns: []string{workflowlog.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowlog.StepsTable,
			Columns: []string{workflowlog.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowlog.StepsTable,
			Columns: []string{workflowlog.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WorkflowLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
