// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nocforge/nocforge/ent/pendingapproval"
	"github.com/nocforge/nocforge/ent/session"
)

// PendingApprovalCreate is the builder for creating a PendingApproval entity.
type PendingApprovalCreate struct {
	config
	mutation *PendingApprovalMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *PendingApprovalCreate) SetSessionID(v string) *PendingApprovalCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetActionID sets the "action_id" field.
func (_c *PendingApprovalCreate) SetActionID(v string) *PendingApprovalCreate {
	_c.mutation.SetActionID(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *PendingApprovalCreate) SetToolName(v string) *PendingApprovalCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetToolArgs sets the "tool_args" field.
func (_c *PendingApprovalCreate) SetToolArgs(v map[string]interface{}) *PendingApprovalCreate {
	_c.mutation.SetToolArgs(v)
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *PendingApprovalCreate) SetRiskLevel(v string) *PendingApprovalCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_c *PendingApprovalCreate) SetNillableRiskLevel(v *string) *PendingApprovalCreate {
	if v != nil {
		_c.SetRiskLevel(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PendingApprovalCreate) SetStatus(v pendingapproval.Status) *PendingApprovalCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PendingApprovalCreate) SetNillableStatus(v *pendingapproval.Status) *PendingApprovalCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRequestedAt sets the "requested_at" field.
func (_c *PendingApprovalCreate) SetRequestedAt(v time.Time) *PendingApprovalCreate {
	_c.mutation.SetRequestedAt(v)
	return _c
}

// SetNillableRequestedAt sets the "requested_at" field if the given value is not nil.
func (_c *PendingApprovalCreate) SetNillableRequestedAt(v *time.Time) *PendingApprovalCreate {
	if v != nil {
		_c.SetRequestedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *PendingApprovalCreate) SetExpiresAt(v time.Time) *PendingApprovalCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetDecidedAt sets the "decided_at" field.
func (_c *PendingApprovalCreate) SetDecidedAt(v time.Time) *PendingApprovalCreate {
	_c.mutation.SetDecidedAt(v)
	return _c
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_c *PendingApprovalCreate) SetNillableDecidedAt(v *time.Time) *PendingApprovalCreate {
	if v != nil {
		_c.SetDecidedAt(*v)
	}
	return _c
}

// SetDecidedBy sets the "decided_by" field.
func (_c *PendingApprovalCreate) SetDecidedBy(v string) *PendingApprovalCreate {
	_c.mutation.SetDecidedBy(v)
	return _c
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_c *PendingApprovalCreate) SetNillableDecidedBy(v *string) *PendingApprovalCreate {
	if v != nil {
		_c.SetDecidedBy(*v)
	}
	return _c
}

// SetDecisionReason sets the "decision_reason" field.
func (_c *PendingApprovalCreate) SetDecisionReason(v string) *PendingApprovalCreate {
	_c.mutation.SetDecisionReason(v)
	return _c
}

// SetNillableDecisionReason sets the "decision_reason" field if the given value is not nil.
func (_c *PendingApprovalCreate) SetNillableDecisionReason(v *string) *PendingApprovalCreate {
	if v != nil {
		_c.SetDecisionReason(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PendingApprovalCreate) SetID(v string) *PendingApprovalCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *PendingApprovalCreate) SetSession(v *Session) *PendingApprovalCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the PendingApprovalMutation object of the builder.
func (_c *PendingApprovalCreate) Mutation() *PendingApprovalMutation {
	return _c.mutation
}

// Save creates the PendingApproval in the database.
func (_c *PendingApprovalCreate) Save(ctx context.Context) (*PendingApproval, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PendingApprovalCreate) SaveX(ctx context.Context) *PendingApproval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PendingApprovalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PendingApprovalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PendingApprovalCreate) defaults() {
	if _, ok := _c.mutation.RiskLevel(); !ok {
		v := pendingapproval.DefaultRiskLevel
		_c.mutation.SetRiskLevel(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := pendingapproval.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RequestedAt(); !ok {
		v := pendingapproval.DefaultRequestedAt()
		_c.mutation.SetRequestedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PendingApprovalCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PendingApproval.session_id"`)}
	}
	if _, ok := _c.mutation.ActionID(); !ok {
		return &ValidationError{Name: "action_id", err: errors.New(`ent: missing required field "PendingApproval.action_id"`)}
	}
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "PendingApproval.tool_name"`)}
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		return &ValidationError{Name: "risk_level", err: errors.New(`ent: missing required field "PendingApproval.risk_level"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PendingApproval.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pendingapproval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PendingApproval.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequestedAt(); !ok {
		return &ValidationError{Name: "requested_at", err: errors.New(`ent: missing required field "PendingApproval.requested_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "PendingApproval.expires_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "PendingApproval.session"`)}
	}
	return nil
}

func (_c *PendingApprovalCreate) sqlSave(ctx context.Context) (*PendingApproval, error) {
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
			return nil, fmt.Errorf("unexpected PendingApproval.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PendingApprovalCreate) createSpec() (*PendingApproval, *sqlgraph.CreateSpec) {
	var (
		_node = &PendingApproval{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pendingapproval.Table, sqlgraph.NewFieldSpec(pendingapproval.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ActionID(); ok {
		_spec.SetField(pendingapproval.FieldActionID, field.TypeString, value)
		_node.ActionID = value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(pendingapproval.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.ToolArgs(); ok {
		_spec.SetField(pendingapproval.FieldToolArgs, field.TypeJSON, value)
		_node.ToolArgs = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(pendingapproval.FieldRiskLevel, field.TypeString, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pendingapproval.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RequestedAt(); ok {
		_spec.SetField(pendingapproval.FieldRequestedAt, field.TypeTime, value)
		_node.RequestedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(pendingapproval.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.DecidedAt(); ok {
		_spec.SetField(pendingapproval.FieldDecidedAt, field.TypeTime, value)
		_node.DecidedAt = &value
	}
	if value, ok := _c.mutation.DecidedBy(); ok {
		_spec.SetField(pendingapproval.FieldDecidedBy, field.TypeString, value)
		_node.DecidedBy = &value
	}
	if value, ok := _c.mutation.DecisionReason(); ok {
		_spec.SetField(pendingapproval.FieldDecisionReason, field.TypeString, value)
		_node.DecisionReason = &value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pendingapproval.SessionTable,
			Columns: []string{pendingapproval.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PendingApprovalCreateBulk is the builder for creating many PendingApproval entities in bulk.
type PendingApprovalCreateBulk struct {
	config
	err      error
	builders []*PendingApprovalCreate
}

// Save creates the PendingApproval entities in the database.
func (_c *PendingApprovalCreateBulk) Save(ctx context.Context) ([]*PendingApproval, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PendingApproval, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PendingApprovalMutation)
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
func (_c *PendingApprovalCreateBulk) SaveX(ctx context.Context) []*PendingApproval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PendingApprovalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PendingApprovalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
