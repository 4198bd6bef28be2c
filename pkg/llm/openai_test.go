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

func openAIClientFor(server *httptest.Server) *openAIClient {
	return newOpenAIClient(&config.ProviderConfig{
		Kind:    config.ProviderKindOpenAI,
		Model:   "gpt-4o-mini",
		BaseURL: server.URL,
	}, "test-key", server.Client())
}

func sampleConversation() []Message {
	return []Message{
		{Role: RoleSystem, Content: "You are a network agent."},
		{Role: RoleUser, Content: "check bgp on r1"},
		{Role: RoleAssistant, Content: "Checking now.", ToolCalls: []ToolCall{
			{ID: "call_1", Name: "run_show_command", Arguments: map[string]any{
				"device_name": "r1", "command": "show ip bgp summary",
			}},
		}},
		{Role: RoleTool, Content: `{"success":true}`, ToolCallID: "call_1"},
		{Role: RoleSystem, Content: "Reminder: be brief."},
	}
}

func TestToOpenAIMessagesRoundTrip(t *testing.T) {
	wire := toOpenAIMessages(sampleConversation())

	// Later system messages merge into the first; the rest keep their order.
	require.Len(t, wire, 4)
	assert.Equal(t, "system", wire[0].Role)
	assert.Contains(t, wire[0].Content, "network agent")
	assert.Contains(t, wire[0].Content, "Reminder: be brief.")

	assistant := wire[2]
	require.Len(t, assistant.ToolCalls, 1)
	assert.Equal(t, "call_1", assistant.ToolCalls[0].ID)
	assert.Equal(t, "function", assistant.ToolCalls[0].Type)
	assert.Equal(t, "run_show_command", assistant.ToolCalls[0].Function.Name)

	toolMsg := wire[3]
	assert.Equal(t, "tool", toolMsg.Role)
	assert.Equal(t, "call_1", toolMsg.ToolCallID)

	// Wire → internal: id, name and arguments survive.
	parsed := fromOpenAIMessage(assistant, "tool_calls", Usage{})
	require.Len(t, parsed.ToolCalls, 1)
	assert.Equal(t, "call_1", parsed.ToolCalls[0].ID)
	assert.Equal(t, "run_show_command", parsed.ToolCalls[0].Name)
	assert.Equal(t, map[string]any{
		"device_name": "r1", "command": "show ip bgp summary",
	}, parsed.ToolCalls[0].Arguments)
}

func TestToOpenAIToolsShape(t *testing.T) {
	wire := toOpenAITools([]ToolSchema{{
		Name:        "list_devices",
		Description: "list inventory",
		InputSchema: map[string]any{"type": "object"},
	}})

	require.Len(t, wire, 1)
	assert.Equal(t, "function", wire[0].Type)
	assert.Equal(t, "list_devices", wire[0].Function.Name)
	assert.Equal(t, map[string]any{"type": "object"}, wire[0].Function.Parameters)
	assert.Nil(t, toOpenAITools(nil))
}

func TestOpenAIChat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req openAIRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		assert.False(t, req.Stream)

		fmt.Fprint(w, `{
			"choices": [{
				"message": {
					"role": "assistant",
					"content": "",
					"tool_calls": [{
						"id": "call_9",
						"type": "function",
						"function": {"name": "list_devices", "arguments": "{\"filter\":\"core\"}"}
					}]
				},
				"finish_reason": "tool_calls"
			}],
			"usage": {"prompt_tokens": 42, "completion_tokens": 7}
		}`)
	}))
	defer server.Close()

	resp, err := openAIClientFor(server).Chat(context.Background(), &ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: "list core devices"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "tool_calls", resp.StopReason)
	assert.Equal(t, 42, resp.Usage.InputTokens)
	assert.Equal(t, 7, resp.Usage.OutputTokens)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "call_9", resp.ToolCalls[0].ID)
	assert.Equal(t, map[string]any{"filter": "core"}, resp.ToolCalls[0].Arguments)
}

func TestOpenAIChatErrorTaxonomy(t *testing.T) {
	var status int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		fmt.Fprint(w, `{"error":{"message":"nope"}}`)
	}))
	defer server.Close()
	client := openAIClientFor(server)

	status = http.StatusTooManyRequests
	_, err := client.Chat(context.Background(), &ChatRequest{})
	var rateErr *RateLimitError
	assert.ErrorAs(t, err, &rateErr)

	status = http.StatusInternalServerError
	_, err = client.Chat(context.Background(), &ChatRequest{})
	var llmErr *Error
	require.ErrorAs(t, err, &llmErr)
	assert.Equal(t, http.StatusInternalServerError, llmErr.StatusCode)
}

func TestOpenAIStreamChatAccumulatesToolCallFragments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		chunks := []string{
			`{"choices":[{"delta":{"content":"Inspecting "}}]}`,
			`{"choices":[{"delta":{"content":"devices."}}]}`,
			`{"choices":[{"delta":{"tool_calls":[{"index":0,"id":"call_a","function":{"name":"list_devices","arguments":"{\"fil"}}]}}]}`,
			`{"choices":[{"delta":{"tool_calls":[{"index":0,"function":{"arguments":"ter\":\"core\"}"}}]}}]}`,
			`{"choices":[{"delta":{"tool_calls":[{"index":1,"id":"call_b","function":{"name":"search_knowledge","arguments":"{\"query\":\"bgp\"}"}}]}}]}`,
			`{"choices":[{"delta":{},"finish_reason":"tool_calls"}],"usage":{"prompt_tokens":5,"completion_tokens":9}}`,
		}
		for _, c := range chunks {
			fmt.Fprintf(w, "data: %s\n\n", c)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer server.Close()

	events, err := openAIClientFor(server).StreamChat(context.Background(), &ChatRequest{
		Messages: []Message{{Role: RoleUser, Content: "go"}},
	})
	require.NoError(t, err)

	var (
		text      string
		toolCalls []ToolCall
		final     *Response
	)
	for ev := range events {
		switch ev.Type {
		case StreamEventText:
			text += ev.Delta
		case StreamEventToolCall:
			toolCalls = append(toolCalls, *ev.ToolCall)
		case StreamEventDone:
			final = ev.Response
		case StreamEventError:
			t.Fatalf("unexpected stream error: %v", ev.Err)
		}
	}

	assert.Equal(t, "Inspecting devices.", text)
	require.Len(t, toolCalls, 2)
	assert.Equal(t, "call_a", toolCalls[0].ID)
	assert.Equal(t, map[string]any{"filter": "core"}, toolCalls[0].Arguments,
		"fragments split across chunks must reassemble")
	assert.Equal(t, "call_b", toolCalls[1].ID)
	assert.Equal(t, map[string]any{"query": "bgp"}, toolCalls[1].Arguments)

	require.NotNil(t, final)
	assert.Equal(t, "Inspecting devices.", final.Content)
	assert.Equal(t, "tool_calls", final.StopReason)
	assert.Equal(t, 5, final.Usage.InputTokens)
	assert.Len(t, final.ToolCalls, 2)
}

func TestOpenAIStreamMalformedToolArgumentsDegradeToRaw(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, `data: {"choices":[{"delta":{"tool_calls":[{"index":0,"id":"call_x","function":{"name":"list_devices","arguments":"{not json"}}]}}]}`+"\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer server.Close()

	events, err := openAIClientFor(server).StreamChat(context.Background(), &ChatRequest{})
	require.NoError(t, err)

	var toolCalls []ToolCall
	for ev := range events {
		if ev.Type == StreamEventToolCall {
			toolCalls = append(toolCalls, *ev.ToolCall)
		}
	}

	require.Len(t, toolCalls, 1)
	assert.Equal(t, map[string]any{"raw": "{not json"}, toolCalls[0].Arguments,
		"malformed buffers degrade instead of failing the turn")
}
