// Package llm provides a provider-agnostic chat client. Internal messages
// and tool calls are translated to and from each vendor's wire format;
// callers never see vendor-specific shapes or exception types.
package llm

// Role identifies the author of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is the internal conversation message shape.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`

	// ToolCalls is set on assistant messages that issued tool invocations.
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`

	// ToolCallID is set on tool messages; it links the result to the
	// provider-originated call and must be echoed back verbatim.
	ToolCallID string `json:"tool_call_id,omitempty"`
}

// ToolCall is an LLM-issued intent to execute a tool.
type ToolCall struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// ToolSchema is the vendor-neutral tool declaration.
type ToolSchema struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

// Usage reports token consumption for one call. Missing vendor values
// default to zero so downstream aggregation never nil-checks.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Response is the provider-agnostic result of one chat call.
type Response struct {
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	StopReason string     `json:"stop_reason,omitempty"`
	Usage      Usage      `json:"usage"`
}

// ChatRequest carries one conversation turn to the provider.
type ChatRequest struct {
	Messages    []Message
	Tools       []ToolSchema
	Temperature float64
	MaxTokens   int
}

// StreamEventType identifies the kind of streaming event.
type StreamEventType string

const (
	StreamEventText     StreamEventType = "text"
	StreamEventToolCall StreamEventType = "tool_call"
	StreamEventDone     StreamEventType = "done"
	StreamEventError    StreamEventType = "error"
)

// StreamEvent is one element of a StreamChat sequence. The channel is closed
// after a done or error event.
type StreamEvent struct {
	Type StreamEventType

	// Delta is a text fragment (StreamEventText).
	Delta string

	// ToolCall is a fully-accumulated tool call (StreamEventToolCall).
	ToolCall *ToolCall

	// Response is the complete accumulated response (StreamEventDone).
	Response *Response

	// Err is set on StreamEventError.
	Err error
}
