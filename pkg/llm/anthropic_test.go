package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nocforge/nocforge/pkg/config"
)

func anthropicClientFor(server *httptest.Server) *anthropicClient {
	return newAnthropicClient(&config.ProviderConfig{
		Kind:      config.ProviderKindAnthropic,
		Model:     "claude-sonnet-4-20250514",
		BaseURL:   server.URL,
		MaxTokens: 4096,
	}, "test-key", server.Client())
}

func bareAnthropicClient() *anthropicClient {
	return newAnthropicClient(&config.ProviderConfig{
		Kind:      config.ProviderKindAnthropic,
		Model:     "claude-sonnet-4-20250514",
		MaxTokens: 4096,
	}, "test-key", http.DefaultClient)
}

func TestToAnthropicRequestShape(t *testing.T) {
	client := bareAnthropicClient()

	wire := client.toAnthropicRequest(&ChatRequest{
		Messages: sampleConversation(),
		Tools: []ToolSchema{{
			Name:        "list_devices",
			Description: "list inventory",
			InputSchema: map[string]any{"type": "object"},
		}},
	}, false)

	// System messages move to the top-level field, joined in order.
	assert.Equal(t, "You are a network agent.\n\nReminder: be brief.", wire.System)

	// user, assistant(tool_use), user(tool_result)
	require.Len(t, wire.Messages, 3)
	assert.Equal(t, "user", wire.Messages[0].Role)

	assistant := wire.Messages[1]
	require.Len(t, assistant.Content, 2)
	assert.Equal(t, "text", assistant.Content[0].Type)
	assert.Equal(t, "tool_use", assistant.Content[1].Type)
	assert.Equal(t, "call_1", assistant.Content[1].ID)
	assert.Equal(t, "run_show_command", assistant.Content[1].Name)

	toolResult := wire.Messages[2]
	assert.Equal(t, "user", toolResult.Role)
	require.Len(t, toolResult.Content, 1)
	assert.Equal(t, "tool_result", toolResult.Content[0].Type)
	assert.Equal(t, "call_1", toolResult.Content[0].ToolUseID)

	require.Len(t, wire.Tools, 1)
	assert.Equal(t, map[string]any{"type": "object"}, wire.Tools[0].InputSchema)
}

func TestToAnthropicRequestMergesConsecutiveToolResults(t *testing.T) {
	client := bareAnthropicClient()

	wire := client.toAnthropicRequest(&ChatRequest{Messages: []Message{
		{Role: RoleUser, Content: "check both"},
		{Role: RoleAssistant, ToolCalls: []ToolCall{
			{ID: "c1", Name: "run_show_command", Arguments: map[string]any{"device_name": "r1"}},
			{ID: "c2", Name: "run_show_command", Arguments: map[string]any{"device_name": "r2"}},
		}},
		{Role: RoleTool, Content: `{"success":true}`, ToolCallID: "c1"},
		{Role: RoleTool, Content: `{"success":true}`, ToolCallID: "c2"},
	}}, false)

	// Both results land in one user message.
	require.Len(t, wire.Messages, 3)
	merged := wire.Messages[2]
	assert.Equal(t, "user", merged.Role)
	require.Len(t, merged.Content, 2)
	assert.Equal(t, "c1", merged.Content[0].ToolUseID)
	assert.Equal(t, "c2", merged.Content[1].ToolUseID)
}

func TestFromAnthropicResponseRoundTrip(t *testing.T) {
	resp := fromAnthropicResponse(&anthropicResponse{
		Content: []anthropicContentBlock{
			{Type: "text", Text: "Checking the neighbor."},
			{Type: "tool_use", ID: "toolu_1", Name: "run_show_command", Input: map[string]any{
				"device_name": "r1", "command": "show ip bgp summary",
			}},
		},
		StopReason: "tool_use",
		Usage:      &struct {
			InputTokens  int `json:"input_tokens"`
			OutputTokens int `json:"output_tokens"`
		}{InputTokens: 12, OutputTokens: 34},
	})

	assert.Equal(t, "Checking the neighbor.", resp.Content)
	assert.Equal(t, "tool_use", resp.StopReason)
	assert.Equal(t, 12, resp.Usage.InputTokens)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "toolu_1", resp.ToolCalls[0].ID)
	assert.Equal(t, map[string]any{
		"device_name": "r1", "command": "show ip bgp summary",
	}, resp.ToolCalls[0].Arguments)
}

func TestAnthropicChatHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var req anthropicRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 4096, req.MaxTokens, "max_tokens is mandatory on this API")

		fmt.Fprint(w, `{"content":[{"type":"text","text":"ok"}],"stop_reason":"end_turn","usage":{"input_tokens":3,"output_tokens":1}}`)
	}))
	defer server.Close()

	resp, err := anthropicClientFor(server).Chat(context.Background(), &ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: "ping"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Content)
	assert.Equal(t, "end_turn", resp.StopReason)
}

func TestAnthropicStreamChat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		frames := []string{
			`{"type":"message_start","message":{"usage":{"input_tokens":8}}}`,
			`{"type":"content_block_start","index":0,"content_block":{"type":"text"}}`,
			`{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"Session "}}`,
			`{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"flap confirmed."}}`,
			`{"type":"content_block_start","index":1,"content_block":{"type":"tool_use","id":"toolu_9","name":"push_device_config"}}`,
			`{"type":"content_block_delta","index":1,"delta":{"type":"input_json_delta","partial_json":"{\"device_na"}}`,
			`{"type":"content_block_delta","index":1,"delta":{"type":"input_json_delta","partial_json":"me\":\"r1\"}"}}`,
			`{"type":"message_delta","delta":{"stop_reason":"tool_use"},"usage":{"output_tokens":21}}`,
			`{"type":"message_stop"}`,
		}
		for _, f := range frames {
			fmt.Fprintf(w, "data: %s\n\n", f)
		}
	}))
	defer server.Close()

	events, err := anthropicClientFor(server).StreamChat(context.Background(), &ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: "fix it"}},
	})
	require.NoError(t, err)

	var (
		text  string
		calls []ToolCall
		final *Response
	)
	for ev := range events {
		switch ev.Type {
		case StreamEventText:
			text += ev.Delta
		case StreamEventToolCall:
			calls = append(calls, *ev.ToolCall)
		case StreamEventDone:
			final = ev.Response
		case StreamEventError:
			t.Fatalf("unexpected stream error: %v", ev.Err)
		}
	}

	assert.Equal(t, "Session flap confirmed.", text)
	require.Len(t, calls, 1)
	assert.Equal(t, "toolu_9", calls[0].ID)
	assert.Equal(t, map[string]any{"device_name": "r1"}, calls[0].Arguments)

	require.NotNil(t, final)
	assert.Equal(t, "tool_use", final.StopReason)
	assert.Equal(t, 8, final.Usage.InputTokens)
	assert.Equal(t, 21, final.Usage.OutputTokens)
}
