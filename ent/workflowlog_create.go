// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nocforge/nocforge/ent/alert"
	"github.com/nocforge/nocforge/ent/workflowlog"
	"github.com/nocforge/nocforge/ent/workflowstep"
)

// WorkflowLogCreate is the builder for creating a WorkflowLog entity.
type WorkflowLogCreate struct {
	config
	mutation *WorkflowLogMutation
	hooks    []Hook
}

// SetAlertID sets the "alert_id" field.
func (_c *WorkflowLogCreate) SetAlertID(v string) *WorkflowLogCreate {
	_c.mutation.SetAlertID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkflowLogCreate) SetStatus(v string) *WorkflowLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkflowLogCreate) SetNillableStatus(v *string) *WorkflowLogCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *WorkflowLogCreate) SetOutcome(v string) *WorkflowLogCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_c *WorkflowLogCreate) SetNillableOutcome(v *string) *WorkflowLogCreate {
	if v != nil {
		_c.SetOutcome(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *WorkflowLogCreate) SetSummary(v string) *WorkflowLogCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *WorkflowLogCreate) SetNillableSummary(v *string) *WorkflowLogCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (_c *WorkflowLogCreate) SetTotalInputTokens(v int) *WorkflowLogCreate {
	_c.mutation.SetTotalInputTokens(v)
	return _c
}

// SetNillableTotalInputTokens sets the "total_input_tokens" field if the given value is not nil.
func (_c *WorkflowLogCreate) SetNillableTotalInputTokens(v *int) *WorkflowLogCreate {
	if v != nil {
		_c.SetTotalInputTokens(*v)
	}
	return _c
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (_c *WorkflowLogCreate) SetTotalOutputTokens(v int) *WorkflowLogCreate {
	_c.mutation.SetTotalOutputTokens(v)
	return _c
}

// SetNillableTotalOutputTokens sets the "total_output_tokens" field if the given value is not nil.
func (_c *WorkflowLogCreate) SetNillableTotalOutputTokens(v *int) *WorkflowLogCreate {
	if v != nil {
		_c.SetTotalOutputTokens(*v)
	}
	return _c
}

// SetEstimatedCost sets the "estimated_cost" field.
func (_c *WorkflowLogCreate) SetEstimatedCost(v float64) *WorkflowLogCreate {
	_c.mutation.SetEstimatedCost(v)
	return _c
}

// SetNillableEstimatedCost sets the "estimated_cost" field if the given value is not nil.
func (_c *WorkflowLogCreate) SetNillableEstimatedCost(v *float64) *WorkflowLogCreate {
	if v != nil {
		_c.SetEstimatedCost(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *WorkflowLogCreate) SetStartedAt(v time.Time) *WorkflowLogCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *WorkflowLogCreate) SetNillableStartedAt(v *time.Time) *WorkflowLogCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *WorkflowLogCreate) SetCompletedAt(v time.Time) *WorkflowLogCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *WorkflowLogCreate) SetNillableCompletedAt(v *time.Time) *WorkflowLogCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowLogCreate) SetID(v string) *WorkflowLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAlert sets the "alert" edge to the Alert entity.
func (_c *WorkflowLogCreate) SetAlert(v *Alert) *WorkflowLogCreate {
	return _c.SetAlertID(v.ID)
}

// AddStepIDs adds the "steps" edge to the WorkflowStep entity by IDs.
func (_c *WorkflowLogCreate) AddStepIDs(ids ...string) *WorkflowLogCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the WorkflowStep entity.
func (_c *WorkflowLogCreate) AddSteps(v ...*WorkflowStep) *WorkflowLogCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// Mutation returns the WorkflowLogMutation object of the builder.
func (_c *WorkflowLogCreate) Mutation() *WorkflowLogMutation {
	return _c.mutation
}

// Save creates the WorkflowLog in the database.
func (_c *WorkflowLogCreate) Save(ctx context.Context) (*WorkflowLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowLogCreate) SaveX(ctx context.Context) *WorkflowLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowLogCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := workflowlog.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalInputTokens(); !ok {
		v := workflowlog.DefaultTotalInputTokens
		_c.mutation.SetTotalInputTokens(v)
	}
	if _, ok := _c.mutation.TotalOutputTokens(); !ok {
		v := workflowlog.DefaultTotalOutputTokens
		_c.mutation.SetTotalOutputTokens(v)
	}
	if _, ok := _c.mutation.EstimatedCost(); !ok {
		v := workflowlog.DefaultEstimatedCost
		_c.mutation.SetEstimatedCost(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := workflowlog.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowLogCreate) check() error {
	if _, ok := _c.mutation.AlertID(); !ok {
		return &ValidationError{Name: "alert_id", err: errors.New(`ent: missing required field "WorkflowLog.alert_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WorkflowLog.status"`)}
	}
	if _, ok := _c.mutation.TotalInputTokens(); !ok {
		return &ValidationError{Name: "total_input_tokens", err: errors.New(`ent: missing required field "WorkflowLog.total_input_tokens"`)}
	}
	if _, ok := _c.mutation.TotalOutputTokens(); !ok {
		return &ValidationError{Name: "total_output_tokens", err: errors.New(`ent: missing required field "WorkflowLog.total_output_tokens"`)}
	}
	if _, ok := _c.mutation.EstimatedCost(); !ok {
		return &ValidationError{Name: "estimated_cost", err: errors.New(`ent: missing required field "WorkflowLog.estimated_cost"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "WorkflowLog.started_at"`)}
	}
	if len(_c.mutation.AlertIDs()) == 0 {
		return &ValidationError{Name: "alert", err: errors.New(`ent: missing required edge "WorkflowLog.alert"`)}
	}
	return nil
}

func (_c *WorkflowLogCreate) sqlSave(ctx context.Context) (*WorkflowLog, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected WorkflowLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowLogCreate) createSpec() (*WorkflowLog, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowlog.Table, sqlgraph.NewFieldSpec(workflowlog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workflowlog.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(workflowlog.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(workflowlog.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.TotalInputTokens(); ok {
		_spec.SetField(workflowlog.FieldTotalInputTokens, field.TypeInt, value)
		_node.TotalInputTokens = value
	}
	if value, ok := _c.mutation.TotalOutputTokens(); ok {
		_spec.SetField(workflowlog.FieldTotalOutputTokens, field.TypeInt, value)
		_node.TotalOutputTokens = value
	}
	if value, ok := _c.mutation.EstimatedCost(); ok {
		_spec.SetField(workflowlog.FieldEstimatedCost, field.TypeFloat64, value)
		_node.EstimatedCost = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(workflowlog.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(workflowlog.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.AlertIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowlog.AlertTable,
			Columns: []string{workflowlog.AlertColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AlertID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkflowLogCreateBulk is the builder for creating many WorkflowLog entities in bulk.
type WorkflowLogCreateBulk struct {
	config
	err      error
	builders []*WorkflowLogCreate
}

// Save creates the WorkflowLog entities in the database.
func (_c *WorkflowLogCreateBulk) Save(ctx context.Context) ([]*WorkflowLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowLogMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *WorkflowLogCreateBulk) SaveX(ctx context.Context) []*WorkflowLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
