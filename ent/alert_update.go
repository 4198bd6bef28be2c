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
	"github.com/nocforge/nocforge/ent/alert"
	"github.com/nocforge/nocforge/ent/predicate"
	"github.com/nocforge/nocforge/ent/workflowlog"
)

// AlertUpdate is the builder for updating Alert entities.
type AlertUpdate struct {
	config
	hooks    []Hook
	mutation *AlertMutation
}

// Where appends a list predicates to the AlertUpdate builder.
func (_u *AlertUpdate) Where(ps ...predicate.Alert) *AlertUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *AlertUpdate) SetTitle(v string) *AlertUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableTitle(v *string) *AlertUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *AlertUpdate) SetSeverity(v string) *AlertUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableSeverity(v *string) *AlertUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *AlertUpdate) SetSource(v string) *AlertUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableSource(v *string) *AlertUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetDevice sets the "device" field.
func (_u *AlertUpdate) SetDevice(v string) *AlertUpdate {
	_u.mutation.SetDevice(v)
	return _u
}

// SetNillableDevice sets the "device" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableDevice(v *string) *AlertUpdate {
	if v != nil {
		_u.SetDevice(*v)
	}
	return _u
}

// ClearDevice clears the value of the "device" field.
func (_u *AlertUpdate) ClearDevice() *AlertUpdate {
	_u.mutation.ClearDevice()
	return _u
}

// SetDescription sets the "description" field.
func (_u *AlertUpdate) SetDescription(v string) *AlertUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableDescription(v *string) *AlertUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AlertUpdate) ClearDescription() *AlertUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AlertUpdate) SetStatus(v alert.Status) *AlertUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableStatus(v *alert.Status) *AlertUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIncidentID sets the "incident_id" field.
func (_u *AlertUpdate) SetIncidentID(v string) *AlertUpdate {
	_u.mutation.SetIncidentID(v)
	return _u
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableIncidentID(v *string) *AlertUpdate {
	if v != nil {
		_u.SetIncidentID(*v)
	}
	return _u
}

// ClearIncidentID clears the value of the "incident_id" field.
func (_u *AlertUpdate) ClearIncidentID() *AlertUpdate {
	_u.mutation.ClearIncidentID()
	return _u
}

// SetSkipAi sets the "skip_ai" field.
func (_u *AlertUpdate) SetSkipAi(v bool) *AlertUpdate {
	_u.mutation.SetSkipAi(v)
	return _u
}

// SetNillableSkipAi sets the "skip_ai" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableSkipAi(v *bool) *AlertUpdate {
	if v != nil {
		_u.SetSkipAi(*v)
	}
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *AlertUpdate) SetPodID(v string) *AlertUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *AlertUpdate) SetNillablePodID(v *string) *AlertUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *AlertUpdate) ClearPodID() *AlertUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *AlertUpdate) SetClaimedAt(v time.Time) *AlertUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableClaimedAt(v *time.Time) *AlertUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *AlertUpdate) ClearClaimedAt() *AlertUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (_u *AlertUpdate) SetAcknowledgedAt(v time.Time) *AlertUpdate {
	_u.mutation.SetAcknowledgedAt(v)
	return _u
}

// SetNillableAcknowledgedAt sets the "acknowledged_at" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableAcknowledgedAt(v *time.Time) *AlertUpdate {
	if v != nil {
		_u.SetAcknowledgedAt(*v)
	}
	return _u
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (_u *AlertUpdate) ClearAcknowledgedAt() *AlertUpdate {
	_u.mutation.ClearAcknowledgedAt()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *AlertUpdate) SetResolvedAt(v time.Time) *AlertUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableResolvedAt(v *time.Time) *AlertUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *AlertUpdate) ClearResolvedAt() *AlertUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// AddWorkflowLogIDs adds the "workflow_logs" edge to the WorkflowLog entity by IDs.
func (_u *AlertUpdate) AddWorkflowLogIDs(ids ...string) *AlertUpdate {
	_u.mutation.AddWorkflowLogIDs(ids...)
	return _u
}

// AddWorkflowLogs adds the "workflow_logs" edges to the WorkflowLog entity.
func (_u *AlertUpdate) AddWorkflowLogs(v ...*WorkflowLog) *AlertUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWorkflowLogIDs(ids...)
}

// Mutation returns the AlertMutation object of the builder.
func (_u *AlertUpdate) Mutation() *AlertMutation {
	return _u.mutation
}

// ClearWorkflowLogs clears all "workflow_logs" edges to the WorkflowLog entity.
func (_u *AlertUpdate) ClearWorkflowLogs() *AlertUpdate {
	_u.mutation.ClearWorkflowLogs()
	return _u
}

// RemoveWorkflowLogIDs removes the "workflow_logs" edge to WorkflowLog entities by IDs.
func (_u *AlertUpdate) RemoveWorkflowLogIDs(ids ...string) *AlertUpdate {
	_u.mutation.RemoveWorkflowLogIDs(ids...)
	return _u
}

// RemoveWorkflowLogs removes "workflow_logs" edges to WorkflowLog entities.
func (_u *AlertUpdate) RemoveWorkflowLogs(v ...*WorkflowLog) *AlertUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWorkflowLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AlertUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AlertUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := alert.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Alert.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AlertUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alert.Table, alert.Columns, sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(alert.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(alert.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(alert.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Device(); ok {
		_spec.SetField(alert.FieldDevice, field.TypeString, value)
	}
	if _u.mutation.DeviceCleared() {
		_spec.ClearField(alert.FieldDevice, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(alert.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(alert.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(alert.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IncidentID(); ok {
		_spec.SetField(alert.FieldIncidentID, field.TypeString, value)
	}
	if _u.mutation.IncidentIDCleared() {
		_spec.ClearField(alert.FieldIncidentID, field.TypeString)
	}
	if value, ok := _u.mutation.SkipAi(); ok {
		_spec.SetField(alert.FieldSkipAi, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(alert.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(alert.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(alert.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(alert.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AcknowledgedAt(); ok {
		_spec.SetField(alert.FieldAcknowledgedAt, field.TypeTime, value)
	}
	if _u.mutation.AcknowledgedAtCleared() {
		_spec.ClearField(alert.FieldAcknowledgedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(alert.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(alert.FieldResolvedAt, field.TypeTime)
	}
	if _u.mutation.WorkflowLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWorkflowLogsIDs(); len(nodes) > 0 && !_u.mutation.WorkflowLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkflowLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AlertUpdateOne is the builder for updating a single Alert entity.
type AlertUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AlertMutation
}

// SetTitle sets the "title" field.
func (_u *AlertUpdateOne) SetTitle(v string) *AlertUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableTitle(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *AlertUpdateOne) SetSeverity(v string) *AlertUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableSeverity(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *AlertUpdateOne) SetSource(v string) *AlertUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableSource(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetDevice sets the "device" field.
func (_u *AlertUpdateOne) SetDevice(v string) *AlertUpdateOne {
	_u.mutation.SetDevice(v)
	return _u
}

// SetNillableDevice sets the "device" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableDevice(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetDevice(*v)
	}
	return _u
}

// ClearDevice clears the value of the "device" field.
func (_u *AlertUpdateOne) ClearDevice() *AlertUpdateOne {
	_u.mutation.ClearDevice()
	return _u
}

// SetDescription sets the "description" field.
func (_u *AlertUpdateOne) SetDescription(v string) *AlertUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableDescription(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AlertUpdateOne) ClearDescription() *AlertUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AlertUpdateOne) SetStatus(v alert.Status) *AlertUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableStatus(v *alert.Status) *AlertUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIncidentID sets the "incident_id" field.
func (_u *AlertUpdateOne) SetIncidentID(v string) *AlertUpdateOne {
	_u.mutation.SetIncidentID(v)
	return _u
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableIncidentID(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetIncidentID(*v)
	}
	return _u
}

// ClearIncidentID clears the value of the "incident_id" field.
func (_u *AlertUpdateOne) ClearIncidentID() *AlertUpdateOne {
	_u.mutation.ClearIncidentID()
	return _u
}

// SetSkipAi sets the "skip_ai" field.
func (_u *AlertUpdateOne) SetSkipAi(v bool) *AlertUpdateOne {
	_u.mutation.SetSkipAi(v)
	return _u
}

// SetNillableSkipAi sets the "skip_ai" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableSkipAi(v *bool) *AlertUpdateOne {
	if v != nil {
		_u.SetSkipAi(*v)
	}
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *AlertUpdateOne) SetPodID(v string) *AlertUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillablePodID(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *AlertUpdateOne) ClearPodID() *AlertUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *AlertUpdateOne) SetClaimedAt(v time.Time) *AlertUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableClaimedAt(v *time.Time) *AlertUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *AlertUpdateOne) ClearClaimedAt() *AlertUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (_u *AlertUpdateOne) SetAcknowledgedAt(v time.Time) *AlertUpdateOne {
	_u.mutation.SetAcknowledgedAt(v)
	return _u
}

// SetNillableAcknowledgedAt sets the "acknowledged_at" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableAcknowledgedAt(v *time.Time) *AlertUpdateOne {
	if v != nil {
		_u.SetAcknowledgedAt(*v)
	}
	return _u
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (_u *AlertUpdateOne) ClearAcknowledgedAt() *AlertUpdateOne {
	_u.mutation.ClearAcknowledgedAt()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *AlertUpdateOne) SetResolvedAt(v time.Time) *AlertUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableResolvedAt(v *time.Time) *AlertUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *AlertUpdateOne) ClearResolvedAt() *AlertUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// AddWorkflowLogIDs adds the "workflow_logs" edge to the WorkflowLog entity by IDs.
func (_u *AlertUpdateOne) AddWorkflowLogIDs(ids ...string) *AlertUpdateOne {
	_u.mutation.AddWorkflowLogIDs(ids...)
	return _u
}

// AddWorkflowLogs adds the "workflow_logs" edges to the WorkflowLog entity.
func (_u *AlertUpdateOne) AddWorkflowLogs(v ...*WorkflowLog) *AlertUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWorkflowLogIDs(ids...)
}

// Mutation returns the AlertMutation object of the builder.
func (_u *AlertUpdateOne) Mutation() *AlertMutation {
	return _u.mutation
}

// ClearWorkflowLogs clears all "workflow_logs" edges to the WorkflowLog entity.
func (_u *AlertUpdateOne) ClearWorkflowLogs() *AlertUpdateOne {
	_u.mutation.ClearWorkflowLogs()
	return _u
}

// RemoveWorkflowLogIDs removes the "workflow_logs" edge to WorkflowLog entities by IDs.
func (_u *AlertUpdateOne) RemoveWorkflowLogIDs(ids ...string) *AlertUpdateOne {
	_u.mutation.RemoveWorkflowLogIDs(ids...)
	return _u
}

// RemoveWorkflowLogs removes "workflow_logs" edges to WorkflowLog entities.
func (_u *AlertUpdateOne) RemoveWorkflowLogs(v ...*WorkflowLog) *AlertUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWorkflowLogIDs(ids...)
}

// Where appends a list predicates to the AlertUpdate builder.
func (_u *AlertUpdateOne) Where(ps ...predicate.Alert) *AlertUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AlertUpdateOne) Select(field string, fields ...string) *AlertUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Alert entity.
func (_u *AlertUpdateOne) Save(ctx context.Context) (*Alert, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertUpdateOne) SaveX(ctx context.Context) *Alert {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AlertUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := alert.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Alert.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AlertUpdateOne) sqlSave(ctx context.Context) (_node *Alert, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alert.Table, alert.Columns, sqlgraph.NewFieldSpec(alert.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Alert.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, alert.FieldID)
		for _, f := range fields {
			if !alert.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != alert.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(alert.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(alert.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(alert.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Device(); ok {
		_spec.SetField(alert.FieldDevice, field.TypeString, value)
	}
	if _u.mutation.DeviceCleared() {
		_spec.ClearField(alert.FieldDevice, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(alert.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(alert.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(alert.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IncidentID(); ok {
		_spec.SetField(alert.FieldIncidentID, field.TypeString, value)
	}
	if _u.mutation.IncidentIDCleared() {
		_spec.ClearField(alert.FieldIncidentID, field.TypeString)
	}
	if value, ok := _u.mutation.SkipAi(); ok {
		_spec.SetField(alert.FieldSkipAi, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(alert.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(alert.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(alert.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(alert.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AcknowledgedAt(); ok {
		_spec.SetField(alert.FieldAcknowledgedAt, field.TypeTime, value)
	}
	if _u.mutation.AcknowledgedAtCleared() {
		_spec.ClearField(alert.FieldAcknowledgedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(alert.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(alert.FieldResolvedAt, field.TypeTime)
	}
	if _u.mutation.WorkflowLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWorkflowLogsIDs(); len(nodes) > 0 && !_u.mutation.WorkflowLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkflowLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Alert{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
