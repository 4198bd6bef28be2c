// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentActionsColumns holds the columns for the "agent_actions" table.
	AgentActionsColumns = []*schema.Column{
		{Name: "action_id", Type: field.TypeString, Unique: true},
		{Name: "sequence_number", Type: field.TypeInt},
		{Name: "tool_call_id", Type: field.TypeString},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "tool_args", Type: field.TypeJSON, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "success", Type: field.TypeBool, Default: false},
		{Name: "risk_level", Type: field.TypeString, Default: "low"},
		{Name: "approval_id", Type: field.TypeString, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// AgentActionsTable holds the schema information for the "agent_actions" table.
	AgentActionsTable = &schema.Table{
		Name:       "agent_actions",
		Columns:    AgentActionsColumns,
		PrimaryKey: []*schema.Column{AgentActionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_actions_sessions_actions",
				Columns:    []*schema.Column{AgentActionsColumns[11]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentaction_session_id_sequence_number",
				Unique:  false,
				Columns: []*schema.Column{AgentActionsColumns[11], AgentActionsColumns[1]},
			},
			{
				Name:    "agentaction_approval_id",
				Unique:  false,
				Columns: []*schema.Column{AgentActionsColumns[8]},
			},
		},
	}
	// AlertsColumns holds the columns for the "alerts" table.
	AlertsColumns = []*schema.Column{
		{Name: "alert_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "severity", Type: field.TypeString, Default: "warning"},
		{Name: "source", Type: field.TypeString},
		{Name: "device", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "processing", "triaged", "noise", "escalated", "incident_created", "resolved", "investigated", "error"}, Default: "new"},
		{Name: "incident_id", Type: field.TypeString, Nullable: true},
		{Name: "skip_ai", Type: field.TypeBool, Default: false},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "acknowledged_at", Type: field.TypeTime, Nullable: true},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
	}
	// AlertsTable holds the schema information for the "alerts" table.
	AlertsTable = &schema.Table{
		Name:       "alerts",
		Columns:    AlertsColumns,
		PrimaryKey: []*schema.Column{AlertsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "alert_status",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[6]},
			},
			{
				Name:    "alert_device",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[4]},
			},
			{
				Name:    "alert_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[6], AlertsColumns[11]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[0]},
			},
			{
				Name:    "event_session_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
		},
	}
	// IncidentsColumns holds the columns for the "incidents" table.
	IncidentsColumns = []*schema.Column{
		{Name: "incident_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "severity", Type: field.TypeString, Default: "warning"},
		{Name: "status", Type: field.TypeString, Default: "open"},
		{Name: "source", Type: field.TypeString, Nullable: true},
		{Name: "affected_devices", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// IncidentsTable holds the schema information for the "incidents" table.
	IncidentsTable = &schema.Table{
		Name:       "incidents",
		Columns:    IncidentsColumns,
		PrimaryKey: []*schema.Column{IncidentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "incident_status",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[4]},
			},
			{
				Name:    "incident_created_at",
				Unique:  false,
				Columns: []*schema.Column{IncidentsColumns[7]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "sequence_number", Type: field.TypeInt},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"system", "user", "assistant", "tool"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "tool_calls", Type: field.TypeJSON, Nullable: true},
		{Name: "tool_call_id", Type: field.TypeString, Nullable: true},
		{Name: "tool_name", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_sessions_messages",
				Columns:    []*schema.Column{MessagesColumns[8]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_session_id_sequence_number",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[8], MessagesColumns[1]},
			},
		},
	}
	// PendingApprovalsColumns holds the columns for the "pending_approvals" table.
	PendingApprovalsColumns = []*schema.Column{
		{Name: "approval_id", Type: field.TypeString, Unique: true},
		{Name: "action_id", Type: field.TypeString},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "tool_args", Type: field.TypeJSON, Nullable: true},
		{Name: "risk_level", Type: field.TypeString, Default: "high"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "expired"}, Default: "pending"},
		{Name: "requested_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "decided_at", Type: field.TypeTime, Nullable: true},
		{Name: "decided_by", Type: field.TypeString, Nullable: true},
		{Name: "decision_reason", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// PendingApprovalsTable holds the schema information for the "pending_approvals" table.
	PendingApprovalsTable = &schema.Table{
		Name:       "pending_approvals",
		Columns:    PendingApprovalsColumns,
		PrimaryKey: []*schema.Column{PendingApprovalsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pending_approvals_sessions_approvals",
				Columns:    []*schema.Column{PendingApprovalsColumns[11]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pendingapproval_status",
				Unique:  false,
				Columns: []*schema.Column{PendingApprovalsColumns[5]},
			},
			{
				Name:    "pendingapproval_session_id_status",
				Unique:  false,
				Columns: []*schema.Column{PendingApprovalsColumns[11], PendingApprovalsColumns[5]},
			},
			{
				Name:    "pendingapproval_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{PendingApprovalsColumns[5], PendingApprovalsColumns[7]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "agent_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "awaiting_approval", "completed", "error"}, Default: "active"},
		{Name: "trigger_type", Type: field.TypeString, Nullable: true},
		{Name: "trigger_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "end_reason", Type: field.TypeString, Nullable: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[2]},
			},
			{
				Name:    "session_agent_type",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
			{
				Name:    "session_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[2], SessionsColumns[5]},
			},
			{
				Name:    "session_trigger_type_trigger_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[3], SessionsColumns[4]},
			},
		},
	}
	// WorkflowLogsColumns holds the columns for the "workflow_logs" table.
	WorkflowLogsColumns = []*schema.Column{
		{Name: "workflow_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeString, Default: "running"},
		{Name: "outcome", Type: field.TypeString, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "total_input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "estimated_cost", Type: field.TypeFloat64, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "alert_id", Type: field.TypeString},
	}
	// WorkflowLogsTable holds the schema information for the "workflow_logs" table.
	WorkflowLogsTable = &schema.Table{
		Name:       "workflow_logs",
		Columns:    WorkflowLogsColumns,
		PrimaryKey: []*schema.Column{WorkflowLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflow_logs_alerts_workflow_logs",
				Columns:    []*schema.Column{WorkflowLogsColumns[9]},
				RefColumns: []*schema.Column{AlertsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflowlog_alert_id",
				Unique:  false,
				Columns: []*schema.Column{WorkflowLogsColumns[9]},
			},
			{
				Name:    "workflowlog_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowLogsColumns[1]},
			},
		},
	}
	// WorkflowStepsColumns holds the columns for the "workflow_steps" table.
	WorkflowStepsColumns = []*schema.Column{
		{Name: "step_id", Type: field.TypeString, Unique: true},
		{Name: "step_index", Type: field.TypeInt},
		{Name: "phase", Type: field.TypeString},
		{Name: "agent_type", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "outcome", Type: field.TypeString, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// WorkflowStepsTable holds the schema information for the "workflow_steps" table.
	WorkflowStepsTable = &schema.Table{
		Name:       "workflow_steps",
		Columns:    WorkflowStepsColumns,
		PrimaryKey: []*schema.Column{WorkflowStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflow_steps_workflow_logs_steps",
				Columns:    []*schema.Column{WorkflowStepsColumns[10]},
				RefColumns: []*schema.Column{WorkflowLogsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflowstep_workflow_id_step_index",
				Unique:  false,
				Columns: []*schema.Column{WorkflowStepsColumns[10], WorkflowStepsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentActionsTable,
		AlertsTable,
		EventsTable,
		IncidentsTable,
		MessagesTable,
		PendingApprovalsTable,
		SessionsTable,
		WorkflowLogsTable,
		WorkflowStepsTable,
	}
)

func init() {
	AgentActionsTable.ForeignKeys[0].RefTable = SessionsTable
	MessagesTable.ForeignKeys[0].RefTable = SessionsTable
	PendingApprovalsTable.ForeignKeys[0].RefTable = SessionsTable
	WorkflowLogsTable.ForeignKeys[0].RefTable = AlertsTable
	WorkflowStepsTable.ForeignKeys[0].RefTable = WorkflowLogsTable
}
