// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Agent events are published to a per-session channel as the executor
// produces them. Each persisted event carries a db_event_id so a client
// that reconnects can ask for everything it missed (the catchup flow).
// Status fan-out for list pages goes to the global channels, transient
// only; those pages reload over REST after a disconnect.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// EventTypeAgentEvent wraps one executor event (thought, tool_call,
	// tool_result, final_response, handoff, escalation, approval_required,
	// error, done) on the session channel.
	EventTypeAgentEvent = "agent.event"

	// EventTypeSessionStatus marks a session lifecycle transition.
	EventTypeSessionStatus = "session.status"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	EventTypeAlertStatus     = "alert.status"
	EventTypeApprovalPending = "approval.pending"
	EventTypeApprovalDecided = "approval.decided"
)

// Global channels for list pages. Per-session traffic uses SessionChannel.
const (
	// GlobalSessionsChannel carries session.status copies for the session
	// list page.
	GlobalSessionsChannel = "sessions"

	// GlobalAlertsChannel carries alert.status events for the alert queue
	// page.
	GlobalAlertsChannel = "alerts"

	// GlobalApprovalsChannel carries approval.pending/decided events for
	// the approvals inbox.
	GlobalApprovalsChannel = "approvals"
)

// SessionChannel returns the channel name for a specific session's events.
// Format: "session:{session_id}"
func SessionChannel(sessionID string) string {
	return "session:" + sessionID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "session:abc-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
