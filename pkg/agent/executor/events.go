// Package executor drives the agent reasoning loop: it feeds conversation
// history to the LLM, executes the tool calls the LLM issues, and emits a
// finite event sequence per run. Approval-gated tool calls pause the loop
// durably; ResumeWithApproval picks it back up after the human decision.
package executor

// EventType discriminates AgentEvent.
type EventType string

const (
	EventThought          EventType = "thought"
	EventToolCall         EventType = "tool_call"
	EventToolResult       EventType = "tool_result"
	EventFinalResponse    EventType = "final_response"
	EventHandoff          EventType = "handoff"
	EventEscalation       EventType = "escalation"
	EventApprovalRequired EventType = "approval_required"
	EventError            EventType = "error"
	EventDone             EventType = "done"
)

// AgentEvent is one element of the executor's output sequence. Each Run (or
// resume) produces a lazy, finite, non-restartable sequence ending in a
// single done event.
type AgentEvent struct {
	Type     EventType      `json:"type"`
	Content  string         `json:"content,omitempty"`
	ToolName string         `json:"tool_name,omitempty"`
	ToolArgs map[string]any `json:"tool_args,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}
