package events

// AgentEventPayload is the payload for agent.event events. One payload per
// executor event, in emission order.
type AgentEventPayload struct {
	Type      string         `json:"type"`       // always EventTypeAgentEvent
	SessionID string         `json:"session_id"` // owning session
	EventType string         `json:"event_type"` // executor event type (thought, tool_call, ...)
	Content   string         `json:"content,omitempty"`
	ToolName  string         `json:"tool_name,omitempty"`
	ToolArgs  map[string]any `json:"tool_args,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp string         `json:"timestamp"` // RFC3339Nano
}

// SessionStatusPayload is the payload for session.status events.
// Published when a session transitions between lifecycle states.
type SessionStatusPayload struct {
	Type      string `json:"type"`       // always EventTypeSessionStatus
	SessionID string `json:"session_id"` // session UUID
	AgentType string `json:"agent_type"`
	Status    string `json:"status"` // active, awaiting_approval, completed, error
	Timestamp string `json:"timestamp"`
}

// AlertStatusPayload is the payload for alert.status transient events on the
// global alerts channel.
type AlertStatusPayload struct {
	Type       string `json:"type"`     // always EventTypeAlertStatus
	AlertID    string `json:"alert_id"` // alert UUID
	Status     string `json:"status"`   // new, processing, triaged, noise, ...
	IncidentID string `json:"incident_id,omitempty"`
	Timestamp  string `json:"timestamp"`
}

// ApprovalPendingPayload is the payload for approval.pending transient events.
// Published when an agent pauses on a human approval gate.
type ApprovalPendingPayload struct {
	Type       string         `json:"type"`        // always EventTypeApprovalPending
	ApprovalID string         `json:"approval_id"` // approval UUID
	SessionID  string         `json:"session_id"`  // paused session
	ToolName   string         `json:"tool_name"`   // gated tool
	ToolArgs   map[string]any `json:"tool_args,omitempty"`
	RiskLevel  string         `json:"risk_level"`
	ExpiresAt  string         `json:"expires_at"` // RFC3339Nano
	Timestamp  string         `json:"timestamp"`
}

// ApprovalDecidedPayload is the payload for approval.decided transient events.
type ApprovalDecidedPayload struct {
	Type       string `json:"type"`        // always EventTypeApprovalDecided
	ApprovalID string `json:"approval_id"` // approval UUID
	SessionID  string `json:"session_id"`
	Status     string `json:"status"` // approved, rejected, expired
	DecidedBy  string `json:"decided_by,omitempty"`
	Timestamp  string `json:"timestamp"`
}
