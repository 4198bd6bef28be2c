package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentEventPayload(t *testing.T) {
	t.Run("creates agent event payload with all fields", func(t *testing.T) {
		payload := AgentEventPayload{
			Type:      EventTypeAgentEvent,
			SessionID: "session-abc",
			EventType: "tool_call",
			Content:   "",
			ToolName:  "get_device_status",
			ToolArgs:  map[string]any{"device": "edge-rtr-01"},
			Timestamp: time.Now().Format(time.RFC3339Nano),
		}

		assert.Equal(t, EventTypeAgentEvent, payload.Type)
		assert.Equal(t, "session-abc", payload.SessionID)
		assert.Equal(t, "tool_call", payload.EventType)
		assert.Equal(t, "get_device_status", payload.ToolName)
		assert.NotEmpty(t, payload.Timestamp)
		require.NotNil(t, payload.ToolArgs)
		assert.Equal(t, "edge-rtr-01", payload.ToolArgs["device"])
	})

	t.Run("thought events carry content without tool fields", func(t *testing.T) {
		payload := AgentEventPayload{
			Type:      EventTypeAgentEvent,
			SessionID: "session-xyz",
			EventType: "thought",
			Content:   "The interface flap correlates with the optics alarm.",
			Timestamp: time.Now().Format(time.RFC3339Nano),
		}

		assert.Equal(t, "thought", payload.EventType)
		assert.NotEmpty(t, payload.Content)
		assert.Empty(t, payload.ToolName)
		assert.Nil(t, payload.ToolArgs)
	})

	t.Run("supports various executor event types", func(t *testing.T) {
		eventTypes := []string{
			"thought",
			"tool_call",
			"tool_result",
			"final_response",
			"handoff",
			"escalation",
			"approval_required",
			"error",
			"done",
		}

		for _, eventType := range eventTypes {
			payload := AgentEventPayload{
				Type:      EventTypeAgentEvent,
				SessionID: "session-id",
				EventType: eventType,
				Timestamp: time.Now().Format(time.RFC3339Nano),
			}

			assert.Equal(t, eventType, payload.EventType)
		}
	})

	t.Run("data is optional", func(t *testing.T) {
		payload := AgentEventPayload{
			Type:      EventTypeAgentEvent,
			SessionID: "session-id",
			EventType: "final_response",
			Content:   "Noise. Duplicate of maintenance window.",
			Timestamp: time.Now().Format(time.RFC3339Nano),
		}

		assert.Nil(t, payload.Data)
	})

	t.Run("approval_required events carry approval metadata in data", func(t *testing.T) {
		payload := AgentEventPayload{
			Type:      EventTypeAgentEvent,
			SessionID: "session-id",
			EventType: "approval_required",
			ToolName:  "restart_bgp_session",
			ToolArgs:  map[string]any{"device": "edge-rtr-01", "peer": "10.0.0.1"},
			Data:      map[string]any{"approval_id": "appr-123", "risk_level": "high"},
			Timestamp: time.Now().Format(time.RFC3339Nano),
		}

		require.NotNil(t, payload.Data)
		assert.Equal(t, "appr-123", payload.Data["approval_id"])
		assert.Equal(t, "high", payload.Data["risk_level"])
	})
}

func TestSessionStatusPayload(t *testing.T) {
	t.Run("creates session status payload", func(t *testing.T) {
		payload := SessionStatusPayload{
			Type:      EventTypeSessionStatus,
			SessionID: "session-123",
			AgentType: "triage",
			Status:    "active",
			Timestamp: time.Now().Format(time.RFC3339Nano),
		}

		assert.Equal(t, EventTypeSessionStatus, payload.Type)
		assert.Equal(t, "session-123", payload.SessionID)
		assert.Equal(t, "triage", payload.AgentType)
		assert.Equal(t, "active", payload.Status)
		assert.NotEmpty(t, payload.Timestamp)
	})

	t.Run("supports all session statuses", func(t *testing.T) {
		statuses := []string{
			"active",
			"awaiting_approval",
			"completed",
			"error",
		}

		for _, status := range statuses {
			payload := SessionStatusPayload{
				Type:      EventTypeSessionStatus,
				SessionID: "session-456",
				AgentType: "bgp",
				Status:    status,
				Timestamp: time.Now().Format(time.RFC3339Nano),
			}

			assert.Equal(t, status, payload.Status)
		}
	})

	t.Run("awaiting_approval status while paused on a gate", func(t *testing.T) {
		payload := SessionStatusPayload{
			Type:      EventTypeSessionStatus,
			SessionID: "session-paused",
			AgentType: "interface",
			Status:    "awaiting_approval",
			Timestamp: time.Now().Format(time.RFC3339Nano),
		}

		assert.Equal(t, "awaiting_approval", payload.Status)
	})
}

func TestAlertStatusPayload(t *testing.T) {
	t.Run("creates alert status payload", func(t *testing.T) {
		payload := AlertStatusPayload{
			Type:      EventTypeAlertStatus,
			AlertID:   "alert-123",
			Status:    "processing",
			Timestamp: time.Now().Format(time.RFC3339Nano),
		}

		assert.Equal(t, EventTypeAlertStatus, payload.Type)
		assert.Equal(t, "alert-123", payload.AlertID)
		assert.Equal(t, "processing", payload.Status)
		assert.Empty(t, payload.IncidentID)
	})

	t.Run("incident_created status carries the incident id", func(t *testing.T) {
		payload := AlertStatusPayload{
			Type:       EventTypeAlertStatus,
			AlertID:    "alert-456",
			Status:     "incident_created",
			IncidentID: "inc-789",
			Timestamp:  time.Now().Format(time.RFC3339Nano),
		}

		assert.Equal(t, "incident_created", payload.Status)
		assert.Equal(t, "inc-789", payload.IncidentID)
	})

	t.Run("supports workflow outcome statuses", func(t *testing.T) {
		statuses := []string{
			"new",
			"processing",
			"triaged",
			"noise",
			"escalated",
			"incident_created",
			"resolved",
			"investigated",
			"error",
		}

		for _, status := range statuses {
			payload := AlertStatusPayload{
				Type:      EventTypeAlertStatus,
				AlertID:   "alert-abc",
				Status:    status,
				Timestamp: time.Now().Format(time.RFC3339Nano),
			}

			assert.Equal(t, status, payload.Status)
		}
	})
}

func TestApprovalPayloads(t *testing.T) {
	t.Run("creates approval pending payload", func(t *testing.T) {
		expires := time.Now().Add(15 * time.Minute)
		payload := ApprovalPendingPayload{
			Type:       EventTypeApprovalPending,
			ApprovalID: "appr-123",
			SessionID:  "session-123",
			ToolName:   "clear_interface_counters",
			ToolArgs:   map[string]any{"device": "core-sw-02", "interface": "xe-0/0/1"},
			RiskLevel:  "high",
			ExpiresAt:  expires.Format(time.RFC3339Nano),
			Timestamp:  time.Now().Format(time.RFC3339Nano),
		}

		assert.Equal(t, EventTypeApprovalPending, payload.Type)
		assert.Equal(t, "appr-123", payload.ApprovalID)
		assert.Equal(t, "session-123", payload.SessionID)
		assert.Equal(t, "clear_interface_counters", payload.ToolName)
		assert.Equal(t, "high", payload.RiskLevel)
		assert.NotEmpty(t, payload.ExpiresAt)
	})

	t.Run("creates approval decided payload", func(t *testing.T) {
		payload := ApprovalDecidedPayload{
			Type:       EventTypeApprovalDecided,
			ApprovalID: "appr-456",
			SessionID:  "session-456",
			Status:     "approved",
			DecidedBy:  "oncall-engineer",
			Timestamp:  time.Now().Format(time.RFC3339Nano),
		}

		assert.Equal(t, EventTypeApprovalDecided, payload.Type)
		assert.Equal(t, "approved", payload.Status)
		assert.Equal(t, "oncall-engineer", payload.DecidedBy)
	})

	t.Run("expired decisions have no decider", func(t *testing.T) {
		payload := ApprovalDecidedPayload{
			Type:       EventTypeApprovalDecided,
			ApprovalID: "appr-789",
			SessionID:  "session-789",
			Status:     "expired",
			Timestamp:  time.Now().Format(time.RFC3339Nano),
		}

		assert.Equal(t, "expired", payload.Status)
		assert.Empty(t, payload.DecidedBy)
	})

	t.Run("supports all decision statuses", func(t *testing.T) {
		statuses := []string{"approved", "rejected", "expired"}

		for _, status := range statuses {
			payload := ApprovalDecidedPayload{
				Type:       EventTypeApprovalDecided,
				ApprovalID: "appr-abc",
				SessionID:  "session-abc",
				Status:     status,
				Timestamp:  time.Now().Format(time.RFC3339Nano),
			}

			assert.Equal(t, status, payload.Status)
		}
	})
}
