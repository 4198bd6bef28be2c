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
)

// AlertCreate is the builder for creating a Alert entity.
type AlertCreate struct {
	config
	mutation *AlertMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *AlertCreate) SetTitle(v string) *AlertCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *AlertCreate) SetSeverity(v string) *AlertCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *AlertCreate) SetNillableSeverity(v *string) *AlertCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *AlertCreate) SetSource(v string) *AlertCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetDevice sets the "device" field.
func (_c *AlertCreate) SetDevice(v string) *AlertCreate {
	_c.mutation.SetDevice(v)
	return _c
}

// SetNillableDevice sets the "device" field if the given value is not nil.
func (_c *AlertCreate) SetNillableDevice(v *string) *AlertCreate {
	if v != nil {
		_c.SetDevice(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *AlertCreate) SetDescription(v string) *AlertCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *AlertCreate) SetNillableDescription(v *string) *AlertCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AlertCreate) SetStatus(v alert.Status) *AlertCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AlertCreate) SetNillableStatus(v *alert.Status) *AlertCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetIncidentID sets the "incident_id" field.
func (_c *AlertCreate) SetIncidentID(v string) *AlertCreate {
	_c.mutation.SetIncidentID(v)
	return _c
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_c *AlertCreate) SetNillableIncidentID(v *string) *AlertCreate {
	if v != nil {
		_c.SetIncidentID(*v)
	}
	return _c
}

// SetSkipAi sets the "skip_ai" field.
func (_c *AlertCreate) SetSkipAi(v bool) *AlertCreate {
	_c.mutation.SetSkipAi(v)
	return _c
}

// SetNillableSkipAi sets the "skip_ai" field if the given value is not nil.
func (_c *AlertCreate) SetNillableSkipAi(v *bool) *AlertCreate {
	if v != nil {
		_c.SetSkipAi(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *AlertCreate) SetPodID(v string) *AlertCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *AlertCreate) SetNillablePodID(v *string) *AlertCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *AlertCreate) SetClaimedAt(v time.Time) *AlertCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *AlertCreate) SetNillableClaimedAt(v *time.Time) *AlertCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AlertCreate) SetCreatedAt(v time.Time) *AlertCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AlertCreate) SetNillableCreatedAt(v *time.Time) *AlertCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (_c *AlertCreate) SetAcknowledgedAt(v time.Time) *AlertCreate {
	_c.mutation.SetAcknowledgedAt(v)
	return _c
}

// SetNillableAcknowledgedAt sets the "acknowledged_at" field if the given value is not nil.
func (_c *AlertCreate) SetNillableAcknowledgedAt(v *time.Time) *AlertCreate {
	if v != nil {
		_c.SetAcknowledgedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *AlertCreate) SetResolvedAt(v time.Time) *AlertCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *AlertCreate) SetNillableResolvedAt(v *time.Time) *AlertCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AlertCreate) SetID(v string) *AlertCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddWorkflowLogIDs adds the "workflow_logs" edge to the WorkflowLog entity by IDs.
func (_c *AlertCreate) AddWorkflowLogIDs(ids ...string) *AlertCreate {
	_c.mutation.AddWorkflowLogIDs(ids...)
	return _c
}

// AddWorkflowLogs adds the "workflow_logs" edges to the WorkflowLog entity.
func (_c *AlertCreate) AddWorkflowLogs(v ...*WorkflowLog) *AlertCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddWorkflowLogIDs(ids...)
}

// Mutation returns the AlertMutation object of the builder.
func (_c *AlertCreate) Mutation() *AlertMutation {
	return _c.mutation
}

// Save creates the Alert in the database.
func (_c *AlertCreate) Save(ctx context.Context) (*Alert, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AlertCreate) SaveX(ctx context.Context) *Alert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AlertCreate) defaults() {
	if _, ok := _c.mutation.Severity(); !ok {
		v := alert.DefaultSeverity
		_c.mutation.SetSeverity(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := alert.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.SkipAi(); !ok {
		v := alert.DefaultSkipAi
		_c.mutation.SetSkipAi(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := alert.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AlertCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Alert.title"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "Alert.severity"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Alert.source"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Alert.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := alert.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Alert.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkipAi(); !ok {
		return &ValidationError{Name: "skip_ai", err: errors.New(`ent: missing required field "Alert.skip_ai"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Alert.created_at"`)}
	}
	return nil
}

func (_c *AlertCreate) sqlSave(ctx context.Context) (*Alert, error) {
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
			return nil, fmt.Errorf("unexpected Alert.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AlertCreate) createSpec() (*Alert, *sqlgraph.CreateSpec) {
	var (
		_node = &Alert{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(alert.Table, sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(alert.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(alert.FieldSeverity, field.TypeString, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(alert.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Device(); ok {
		_spec.SetField(alert.FieldDevice, field.TypeString, value)
		_node.Device = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(alert.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(alert.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.IncidentID(); ok {
		_spec.SetField(alert.FieldIncidentID, field.TypeString, value)
		_node.IncidentID = &value
	}
	if value, ok := _c.mutation.SkipAi(); ok {
		_spec.SetField(alert.FieldSkipAi, field.TypeBool, value)
		_node.SkipAi = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(alert.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(alert.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(alert.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.AcknowledgedAt(); ok {
		_spec.SetField(alert.FieldAcknowledgedAt, field.TypeTime, value)
		_node.AcknowledgedAt = &value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(alert.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if nodes := _c.mutation.WorkflowLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   alert.WorkflowLogsTable,
			Columns: []string{alert.WorkflowLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AlertCreateBulk is the builder for creating many Alert entities in bulk.
type AlertCreateBulk struct {
	config
	err      error
	builders []*AlertCreate
}

// Save creates the Alert entities in the database.
func (_c *AlertCreateBulk) Save(ctx context.Context) ([]*Alert, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Alert, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AlertMutation)
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
func (_c *AlertCreateBulk) SaveX(ctx context.Context) []*Alert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
