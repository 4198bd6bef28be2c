// Code generated by ent, DO NOT EDIT.

package alert

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the alert type in the database.
	Label = "alert"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "alert_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldDevice holds the string denoting the device field in the database.
	FieldDevice = "device"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldIncidentID holds the string denoting the incident_id field in the database.
	FieldIncidentID = "incident_id"
	// FieldSkipAi holds the string denoting the skip_ai field in the database.
	FieldSkipAi = "skip_ai"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldClaimedAt holds the string denoting the claimed_at field in the database.
	FieldClaimedAt = "claimed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldAcknowledgedAt holds the string denoting the acknowledged_at field in the database.
	FieldAcknowledgedAt = "acknowledged_at"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// EdgeWorkflowLogs holds the string denoting the workflow_logs edge name in mutations.
	EdgeWorkflowLogs = "workflow_logs"
	// WorkflowLogFieldID holds the string denoting the ID field of the WorkflowLog.
	WorkflowLogFieldID = "workflow_id"
	// Table holds the table name of the alert in the database.
	Table = "alerts"
	// WorkflowLogsTable is the table that holds the workflow_logs relation/edge.
	WorkflowLogsTable = "workflow_logs"
	// WorkflowLogsInverseTable is the table name for the WorkflowLog entity.
	// It exists in this package in order to avoid circular dependency with the "workflowlog" package.
	WorkflowLogsInverseTable = "workflow_logs"
	// WorkflowLogsColumn is the table column denoting the workflow_logs relation/edge.
	WorkflowLogsColumn = "alert_id"
)

// Columns holds all SQL columns for alert fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldSeverity,
	FieldSource,
	FieldDevice,
	FieldDescription,
	FieldStatus,
	FieldIncidentID,
	FieldSkipAi,
	FieldPodID,
	FieldClaimedAt,
	FieldCreatedAt,
	FieldAcknowledgedAt,
	FieldResolvedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultSeverity holds the default value on creation for the "severity" field.
	DefaultSeverity string
	// DefaultSkipAi holds the default value on creation for the "skip_ai" field.
	DefaultSkipAi bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusNew is the default value of the Status enum.
const DefaultStatus = StatusNew

// Status values.
const (
	StatusNew             Status = "new"
	StatusProcessing      Status = "processing"
	StatusTriaged         Status = "triaged"
	StatusNoise           Status = "noise"
	StatusEscalated       Status = "escalated"
	StatusIncidentCreated Status = "incident_created"
	StatusResolved        Status = "resolved"
	StatusInvestigated    Status = "investigated"
	StatusError           Status = "error"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusNew, StatusProcessing, StatusTriaged, StatusNoise, StatusEscalated, StatusIncidentCreated, StatusResolved, StatusInvestigated, StatusError:
		return nil
	default:
		return fmt.Errorf("alert: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Alert queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByDevice orders the results by the device field.
func ByDevice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDevice, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByIncidentID orders the results by the incident_id field.
func ByIncidentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncidentID, opts...).ToFunc()
}

// BySkipAi orders the results by the skip_ai field.
func BySkipAi(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipAi, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByClaimedAt orders the results by the claimed_at field.
func ByClaimedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAcknowledgedAt orders the results by the acknowledged_at field.
func ByAcknowledgedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcknowledgedAt, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}

// ByWorkflowLogsCount orders the results by workflow_logs count.
func ByWorkflowLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newWorkflowLogsStep(), opts...)
	}
}

// ByWorkflowLogs orders the results by workflow_logs terms.
func ByWorkflowLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkflowLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newWorkflowLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkflowLogsInverseTable, WorkflowLogFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, WorkflowLogsTable, WorkflowLogsColumn),
	)
}
