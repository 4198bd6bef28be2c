package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(AgentEventPayload{
			Type:      EventTypeAgentEvent,
			SessionID: "abc-123",
			EventType: "thought",
			Content:   "some content",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeAgentEvent)
		assert.Contains(t, result, "abc-123")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		longContent := make([]byte, 8000)
		for i := range longContent {
			longContent[i] = 'a'
		}
		payload, _ := json.Marshal(AgentEventPayload{
			Type:      EventTypeAgentEvent,
			SessionID: "abc-123",
			EventType: "tool_result",
			Content:   string(longContent),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, "truncated")
		assert.Less(t, len(result), 8000)
	})

	t.Run("does not truncate small payload", func(t *testing.T) {
		payload, _ := json.Marshal(AlertStatusPayload{
			Type:    EventTypeAlertStatus,
			AlertID: "alert-1",
			Status:  "triaged",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		longContent := make([]byte, 8000)
		for i := range longContent {
			longContent[i] = 'x'
		}
		payload, _ := json.Marshal(AgentEventPayload{
			Type:      EventTypeAgentEvent,
			SessionID: "sess-789",
			EventType: "tool_result",
			Content:   string(longContent),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeAgentEvent)
		assert.Contains(t, result, "sess-789")
		assert.Contains(t, result, `"truncated":true`)
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		// Build a payload whose JSON is just under 7900 bytes.
		// Marshal an empty struct first to measure the overhead of the struct's
		// fixed fields (keys, quotes, separators). The 20-byte safety margin
		// accounts for JSON encoding variability: if new fields with non-zero
		// defaults are added to AgentEventPayload, the base overhead grows and
		// the margin prevents the test from flipping unexpectedly.
		base, _ := json.Marshal(AgentEventPayload{Type: "t"})
		contentSize := 7900 - len(base) - 20
		content := make([]byte, contentSize)
		for i := range content {
			content[i] = 'b'
		}
		payload, _ := json.Marshal(AgentEventPayload{
			Type:    "t",
			Content: string(content),
		})
		require.LessOrEqual(t, len(payload), 7900, "test payload should be under limit")

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(AgentEventPayload{
			Type:      EventTypeAgentEvent,
			SessionID: "sess-1",
			EventType: "thought",
			Content:   "hello",
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "hello")
	})

	t.Run("truncated payload preserves db_event_id", func(t *testing.T) {
		longContent := make([]byte, 8000)
		for i := range longContent {
			longContent[i] = 'x'
		}
		payload, _ := json.Marshal(AgentEventPayload{
			Type:      EventTypeAgentEvent,
			SessionID: "sess-789",
			EventType: "tool_result",
			Content:   string(longContent),
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "sess-789")
	})

	t.Run("truncation keeps the client able to catch up", func(t *testing.T) {
		// A truncated delivery must still parse and carry db_event_id so the
		// client fetches the full row via catchup.
		longContent := make([]byte, 9000)
		for i := range longContent {
			longContent[i] = 'y'
		}
		payload, _ := json.Marshal(AgentEventPayload{
			Type:      EventTypeAgentEvent,
			SessionID: "sess-catchup",
			EventType: "tool_result",
			Content:   string(longContent),
		})

		result, err := injectDBEventIDAndTruncate(payload, 1234)
		require.NoError(t, err)

		var parsed map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &parsed))
		assert.Equal(t, true, parsed["truncated"])
		assert.Equal(t, float64(1234), parsed["db_event_id"])
		assert.Equal(t, "sess-catchup", parsed["session_id"])
	})
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}

func TestAgentEventPayload_JSON(t *testing.T) {
	payload := AgentEventPayload{
		Type:      EventTypeAgentEvent,
		SessionID: "sess-123",
		EventType: "tool_call",
		ToolName:  "get_bgp_summary",
		ToolArgs:  map[string]any{"device": "edge-rtr-01"},
		Timestamp: "2026-02-10T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded AgentEventPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeAgentEvent, decoded.Type)
	assert.Equal(t, "sess-123", decoded.SessionID)
	assert.Equal(t, "tool_call", decoded.EventType)
	assert.Equal(t, "get_bgp_summary", decoded.ToolName)
	assert.Equal(t, "edge-rtr-01", decoded.ToolArgs["device"])
	assert.Equal(t, "2026-02-10T12:00:00Z", decoded.Timestamp)
}

func TestAgentEventPayload_OmitsEmptyToolFields(t *testing.T) {
	// Thought events have no tool fields; omitempty keeps the NOTIFY payload
	// small.
	payload := AgentEventPayload{
		Type:      EventTypeAgentEvent,
		SessionID: "sess-123",
		EventType: "thought",
		Content:   "checking peer state",
		Timestamp: "2026-02-10T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "tool_name")
	assert.NotContains(t, string(data), "tool_args")
	assert.NotContains(t, string(data), `"data"`)
}

func TestAlertStatusPayload_JSON(t *testing.T) {
	payload := AlertStatusPayload{
		Type:       EventTypeAlertStatus,
		AlertID:    "alert-100",
		Status:     "incident_created",
		IncidentID: "inc-42",
		Timestamp:  "2026-02-13T10:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded AlertStatusPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeAlertStatus, decoded.Type)
	assert.Equal(t, "alert-100", decoded.AlertID)
	assert.Equal(t, "incident_created", decoded.Status)
	assert.Equal(t, "inc-42", decoded.IncidentID)
}

func TestApprovalPendingPayload_JSON(t *testing.T) {
	payload := ApprovalPendingPayload{
		Type:       EventTypeApprovalPending,
		ApprovalID: "appr-200",
		SessionID:  "sess-200",
		ToolName:   "restart_bgp_session",
		ToolArgs:   map[string]any{"peer": "10.0.0.1"},
		RiskLevel:  "high",
		ExpiresAt:  "2026-02-13T10:15:00Z",
		Timestamp:  "2026-02-13T10:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded ApprovalPendingPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeApprovalPending, decoded.Type)
	assert.Equal(t, "appr-200", decoded.ApprovalID)
	assert.Equal(t, "sess-200", decoded.SessionID)
	assert.Equal(t, "restart_bgp_session", decoded.ToolName)
	assert.Equal(t, "high", decoded.RiskLevel)
	assert.Equal(t, "2026-02-13T10:15:00Z", decoded.ExpiresAt)
}
