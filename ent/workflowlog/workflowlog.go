// Code generated by ent, DO NOT EDIT.

package workflowlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the workflowlog type in the database.
	Label = "workflow_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "workflow_id"
	// FieldAlertID holds the string denoting the alert_id field in the database.
	FieldAlertID = "alert_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldTotalInputTokens holds the string denoting the total_input_tokens field in the database.
	FieldTotalInputTokens = "total_input_tokens"
	// FieldTotalOutputTokens holds the string denoting the total_output_tokens field in the database.
	FieldTotalOutputTokens = "total_output_tokens"
	// FieldEstimatedCost holds the string denoting the estimated_cost field in the database.
	FieldEstimatedCost = "estimated_cost"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeAlert holds the string denoting the alert edge name in mutations.
	EdgeAlert = "alert"
	// EdgeSteps holds the string denoting the steps edge name in mutations.
	EdgeSteps = "steps"
	// AlertFieldID holds the string denoting the ID field of the Alert.
	AlertFieldID = "alert_id"
	// WorkflowStepFieldID holds the string denoting the ID field of the WorkflowStep.
	WorkflowStepFieldID = "step_id"
	// Table holds the table name of the workflowlog in the database.
	Table = "workflow_logs"
	// AlertTable is the table that holds the alert relation/edge.
	AlertTable = "workflow_logs"
	// AlertInverseTable is the table name for the Alert entity.
	// It exists in this package in order to avoid circular dependency with the "alert" package.
	AlertInverseTable = "alerts"
	// AlertColumn is the table column denoting the alert relation/edge.
	AlertColumn = "alert_id"
	// StepsTable is the table that holds the steps relation/edge.
	StepsTable = "workflow_steps"
	// StepsInverseTable is the table name for the WorkflowStep entity.
	// It exists in this package in order to avoid circular dependency with the "workflowstep" package.
	StepsInverseTable = "workflow_steps"
	// StepsColumn is the table column denoting the steps relation/edge.
	StepsColumn = "workflow_id"
)

// Columns holds all SQL columns for workflowlog fields.
var Columns = []string{
	FieldID,
	FieldAlertID,
	FieldStatus,
	FieldOutcome,
	FieldSummary,
	FieldTotalInputTokens,
	FieldTotalOutputTokens,
	FieldEstimatedCost,
	FieldStartedAt,
	FieldCompletedAt,
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
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultTotalInputTokens holds the default value on creation for the "total_input_tokens" field.
	DefaultTotalInputTokens int
	// DefaultTotalOutputTokens holds the default value on creation for the "total_output_tokens" field.
	DefaultTotalOutputTokens int
	// DefaultEstimatedCost holds the default value on creation for the "estimated_cost" field.
	DefaultEstimatedCost float64
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// OrderOption defines the ordering options for the WorkflowLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAlertID orders the results by the alert_id field.
func ByAlertID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlertID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByTotalInputTokens orders the results by the total_input_tokens field.
func ByTotalInputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalInputTokens, opts...).ToFunc()
}

// ByTotalOutputTokens orders the results by the total_output_tokens field.
func ByTotalOutputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalOutputTokens, opts...).ToFunc()
}

// ByEstimatedCost orders the results by the estimated_cost field.
func ByEstimatedCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedCost, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByAlertField orders the results by alert field.
func ByAlertField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAlertStep(), sql.OrderByField(field, opts...))
	}
}

// ByStepsCount orders the results by steps count.
func ByStepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepsStep(), opts...)
	}
}

// BySteps orders the results by steps terms.
func BySteps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAlertStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AlertInverseTable, AlertFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AlertTable, AlertColumn),
	)
}
func newStepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepsInverseTable, WorkflowStepFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
	)
}
