package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSessionChannelPayloads_ContainSessionID is a contract test between the
// Go backend and the frontend WebSocket client.
//
// The frontend routes incoming WS events by inspecting `data.session_id` in
// the JSON payload. ANY payload that is broadcast on a session-specific
// channel (session:{id}) MUST include a non-empty `session_id` field,
// otherwise the frontend silently drops it. Truncation recovery also depends
// on it: buildTruncatedPayload keeps only type, session_id and db_event_id.
//
// If you add a new payload that goes through a session channel, add it here.
// The test will fail if session_id is missing.
func TestSessionChannelPayloads_ContainSessionID(t *testing.T) {
	const testSessionID = "sess-contract-test"

	tests := []struct {
		name    string
		payload any
	}{
		{
			name: "AgentEventPayload",
			payload: AgentEventPayload{
				Type:      EventTypeAgentEvent,
				SessionID: testSessionID,
				EventType: "thought",
				Content:   "test",
				Timestamp: "2026-01-01T00:00:00Z",
			},
		},
		{
			name: "SessionStatusPayload",
			payload: SessionStatusPayload{
				Type:      EventTypeSessionStatus,
				SessionID: testSessionID,
				AgentType: "triage",
				Status:    "active",
				Timestamp: "2026-01-01T00:00:00Z",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.payload)
			require.NoError(t, err, "failed to marshal %s", tt.name)

			var parsed map[string]any
			require.NoError(t, json.Unmarshal(data, &parsed), "failed to unmarshal %s", tt.name)

			sid, ok := parsed["session_id"]
			assert.True(t, ok,
				"%s JSON is missing \"session_id\" field; frontend WS routing will silently drop this event", tt.name)
			assert.Equal(t, testSessionID, sid,
				"%s session_id has wrong value", tt.name)
		})
	}
}

// TestApprovalPayloads_ContainSessionID verifies the approval payloads. They
// go to the global approvals channel, but still carry session_id so the
// frontend can link the approval card to its session view.
func TestApprovalPayloads_ContainSessionID(t *testing.T) {
	pending := ApprovalPendingPayload{
		Type:       EventTypeApprovalPending,
		ApprovalID: "appr-1",
		SessionID:  "sess-approval",
		ToolName:   "restart_bgp_session",
		RiskLevel:  "high",
		ExpiresAt:  "2026-01-01T00:15:00Z",
		Timestamp:  "2026-01-01T00:00:00Z",
	}

	data, err := json.Marshal(pending)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	sid, ok := parsed["session_id"]
	assert.True(t, ok, "ApprovalPendingPayload is missing session_id")
	assert.Equal(t, "sess-approval", sid)

	decided := ApprovalDecidedPayload{
		Type:       EventTypeApprovalDecided,
		ApprovalID: "appr-1",
		SessionID:  "sess-approval",
		Status:     "approved",
		DecidedBy:  "oncall",
		Timestamp:  "2026-01-01T00:05:00Z",
	}

	data, err = json.Marshal(decided)
	require.NoError(t, err)

	parsed = map[string]any{}
	require.NoError(t, json.Unmarshal(data, &parsed))

	sid, ok = parsed["session_id"]
	assert.True(t, ok, "ApprovalDecidedPayload is missing session_id")
	assert.Equal(t, "sess-approval", sid)
}

// TestAlertStatusPayload_RoutingFields verifies alert.status events carry the
// alert_id the queue page keys on.
func TestAlertStatusPayload_RoutingFields(t *testing.T) {
	payload := AlertStatusPayload{
		Type:      EventTypeAlertStatus,
		AlertID:   "alert-routing",
		Status:    "triaged",
		Timestamp: "2026-01-01T00:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.Equal(t, "alert-routing", parsed["alert_id"])
	assert.Equal(t, EventTypeAlertStatus, parsed["type"])
}
