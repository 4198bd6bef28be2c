// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nocforge/nocforge/ent/alert"
	"github.com/nocforge/nocforge/ent/workflowlog"
)

// WorkflowLog is the model entity for the WorkflowLog schema.
type WorkflowLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AlertID holds the value of the "alert_id" field.
	AlertID string `json:"alert_id,omitempty"`
	// running, completed, error
	Status string `json:"status,omitempty"`
	// Final disposition (noise, resolved, incident_created, ...)
	Outcome string `json:"outcome,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// TotalInputTokens holds the value of the "total_input_tokens" field.
	TotalInputTokens int `json:"total_input_tokens,omitempty"`
	// TotalOutputTokens holds the value of the "total_output_tokens" field.
	TotalOutputTokens int `json:"total_output_tokens,omitempty"`
	// USD estimate derived from token counts
	EstimatedCost float64 `json:"estimated_cost,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkflowLogQuery when eager-loading is set.
	Edges        WorkflowLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkflowLogEdges holds the relations/edges for other nodes in the graph.
type WorkflowLogEdges struct {
	// Alert holds the value of the alert edge.
	Alert *Alert `json:"alert,omitempty"`
	// Steps holds the value of the steps edge.
	Steps []*WorkflowStep `json:"steps,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AlertOrErr returns the Alert value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkflowLogEdges) AlertOrErr() (*Alert, error) {
	if e.Alert != nil {
		return e.Alert, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: alert.Label}
	}
	return nil, &NotLoadedError{edge: "alert"}
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowLogEdges) StepsOrErr() ([]*WorkflowStep, error) {
	if e.loadedTypes[1] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkflowLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workflowlog.FieldEstimatedCost:
			values[i] = new(sql.NullFloat64)
		case workflowlog.FieldTotalInputTokens, workflowlog.FieldTotalOutputTokens:
			values[i] = new(sql.NullInt64)
		case workflowlog.FieldID, workflowlog.FieldAlertID, workflowlog.FieldStatus, workflowlog.FieldOutcome, workflowlog.FieldSummary:
			values[i] = new(sql.NullString)
		case workflowlog.FieldStartedAt, workflowlog.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkflowLog fields.
func (_m *WorkflowLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workflowlog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case workflowlog.FieldAlertID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alert_id", values[i])
			} else if value.Valid {
				_m.AlertID = value.String
			}
		case workflowlog.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case workflowlog.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = value.String
			}
		case workflowlog.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case workflowlog.FieldTotalInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_input_tokens", values[i])
			} else if value.Valid {
				_m.TotalInputTokens = int(value.Int64)
			}
		case workflowlog.FieldTotalOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_output_tokens", values[i])
			} else if value.Valid {
				_m.TotalOutputTokens = int(value.Int64)
			}
		case workflowlog.FieldEstimatedCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_cost", values[i])
			} else if value.Valid {
				_m.EstimatedCost = value.Float64
			}
		case workflowlog.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case workflowlog.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkflowLog.
// This includes values selected through modifiers, order, etc.
func (_m *WorkflowLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAlert queries the "alert" edge of the WorkflowLog entity.
func (_m *WorkflowLog) QueryAlert() *AlertQuery {
	return NewWorkflowLogClient(_m.config).QueryAlert(_m)
}

// QuerySteps queries the "steps" edge of the WorkflowLog entity.
func (_m *WorkflowLog) QuerySteps() *WorkflowStepQuery {
	return NewWorkflowLogClient(_m.config).QuerySteps(_m)
}

// Update returns a builder for updating this WorkflowLog.
// Note that you need to call WorkflowLog.Unwrap() before calling this method if this WorkflowLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorkflowLog) Update() *WorkflowLogUpdateOne {
	return NewWorkflowLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorkflowLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorkflowLog) Unwrap() *WorkflowLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkflowLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorkflowLog) String() string {
	var builder strings.Builder
	builder.WriteString("WorkflowLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("alert_id=")
	builder.WriteString(_m.AlertID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("outcome=")
	builder.WriteString(_m.Outcome)
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("total_input_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalInputTokens))
	builder.WriteString(", ")
	builder.WriteString("total_output_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalOutputTokens))
	builder.WriteString(", ")
	builder.WriteString("estimated_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedCost))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// WorkflowLogs is a parsable slice of WorkflowLog.
type WorkflowLogs []*WorkflowLog
