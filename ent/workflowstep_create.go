// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nocforge/nocforge/ent/workflowlog"
	"github.com/nocforge/nocforge/ent/workflowstep"
)

// WorkflowStepCreate is the builder for creating a WorkflowStep entity.
type WorkflowStepCreate struct {
	config
	mutation *WorkflowStepMutation
	hooks    []Hook
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *WorkflowStepCreate) SetWorkflowID(v string) *WorkflowStepCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetStepIndex sets the "step_index" field.
func (_c *WorkflowStepCreate) SetStepIndex(v int) *WorkflowStepCreate {
	_c.mutation.SetStepIndex(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *WorkflowStepCreate) SetPhase(v string) *WorkflowStepCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetAgentType sets the "agent_type" field.
func (_c *WorkflowStepCreate) SetAgentType(v string) *WorkflowStepCreate {
	_c.mutation.SetAgentType(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *WorkflowStepCreate) SetSessionID(v string) *WorkflowStepCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *WorkflowStepCreate) SetNillableSessionID(v *string) *WorkflowStepCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *WorkflowStepCreate) SetOutcome(v string) *WorkflowStepCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_c *WorkflowStepCreate) SetNillableOutcome(v *string) *WorkflowStepCreate {
	if v != nil {
		_c.SetOutcome(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *WorkflowStepCreate) SetSummary(v string) *WorkflowStepCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *WorkflowStepCreate) SetNillableSummary(v *string) *WorkflowStepCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *WorkflowStepCreate) SetInputTokens(v int) *WorkflowStepCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *WorkflowStepCreate) SetNillableInputTokens(v *int) *WorkflowStepCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *WorkflowStepCreate) SetOutputTokens(v int) *WorkflowStepCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *WorkflowStepCreate) SetNillableOutputTokens(v *int) *WorkflowStepCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowStepCreate) SetCreatedAt(v time.Time) *WorkflowStepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowStepCreate) SetNillableCreatedAt(v *time.Time) *WorkflowStepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowStepCreate) SetID(v string) *WorkflowStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorkflow sets the "workflow" edge to the WorkflowLog entity.
func (_c *WorkflowStepCreate) SetWorkflow(v *WorkflowLog) *WorkflowStepCreate {
	return _c.SetWorkflowID(v.ID)
}

// Mutation returns the WorkflowStepMutation object of the builder.
func (_c *WorkflowStepCreate) Mutation() *WorkflowStepMutation {
	return _c.mutation
}

// Save creates the WorkflowStep in the database.
func (_c *WorkflowStepCreate) Save(ctx context.Context) (*WorkflowStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowStepCreate) SaveX(ctx context.Context) *WorkflowStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowStepCreate) defaults() {
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := workflowstep.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := workflowstep.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflowstep.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowStepCreate) check() error {
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "WorkflowStep.workflow_id"`)}
	}
	if _, ok := _c.mutation.StepIndex(); !ok {
		return &ValidationError{Name: "step_index", err: errors.New(`ent: missing required field "WorkflowStep.step_index"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "WorkflowStep.phase"`)}
	}
	if _, ok := _c.mutation.AgentType(); !ok {
		return &ValidationError{Name: "agent_type", err: errors.New(`ent: missing required field "WorkflowStep.agent_type"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "WorkflowStep.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "WorkflowStep.output_tokens"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkflowStep.created_at"`)}
	}
	if len(_c.mutation.WorkflowIDs()) == 0 {
		return &ValidationError{Name: "workflow", err: errors.New(`ent: missing required edge "WorkflowStep.workflow"`)}
	}
	return nil
}

func (_c *WorkflowStepCreate) sqlSave(ctx context.Context) (*WorkflowStep, error) {
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
			return nil, fmt.Errorf("unexpected WorkflowStep.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowStepCreate) createSpec() (*WorkflowStep, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowstep.Table, sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StepIndex(); ok {
		_spec.SetField(workflowstep.FieldStepIndex, field.TypeInt, value)
		_node.StepIndex = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(workflowstep.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.AgentType(); ok {
		_spec.SetField(workflowstep.FieldAgentType, field.TypeString, value)
		_node.AgentType = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(workflowstep.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(workflowstep.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(workflowstep.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(workflowstep.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(workflowstep.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflowstep.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.WorkflowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowstep.WorkflowTable,
			Columns: []string{workflowstep.WorkflowColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WorkflowID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkflowStepCreateBulk is the builder for creating many WorkflowStep entities in bulk.
type WorkflowStepCreateBulk struct {
	config
	err      error
	builders []*WorkflowStepCreate
}

// Save creates the WorkflowStep entities in the database.
func (_c *WorkflowStepCreateBulk) Save(ctx context.Context) ([]*WorkflowStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowStepMutation)
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
func (_c *WorkflowStepCreateBulk) SaveX(ctx context.Context) []*WorkflowStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
