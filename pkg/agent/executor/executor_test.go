package executor

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nocforge/nocforge/pkg/agent"
	"github.com/nocforge/nocforge/pkg/llm"
	"github.com/nocforge/nocforge/pkg/tools"
)

// scriptedLLM returns canned responses in order; the last response repeats
// when the script runs out.
type scriptedLLM struct {
	mu        sync.Mutex
	responses []*llm.Response
	calls     int
	requests  []*llm.ChatRequest
}

func (s *scriptedLLM) Chat(ctx context.Context, req *llm.ChatRequest) (*llm.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.requests = append(s.requests, req)
	idx := s.calls - 1
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	return s.responses[idx], nil
}

func (s *scriptedLLM) StreamChat(ctx context.Context, req *llm.ChatRequest) (<-chan llm.StreamEvent, error) {
	resp, err := s.Chat(ctx, req)
	if err != nil {
		return nil, err
	}
	ch := make(chan llm.StreamEvent, 1)
	ch <- llm.StreamEvent{Type: llm.StreamEventDone, Response: resp}
	close(ch)
	return ch, nil
}

func (s *scriptedLLM) Model() string { return "scripted" }

func (s *scriptedLLM) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// memStore is an in-memory Store for loop tests.
type memStore struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	messages  map[string][]StoredMessage
	actions   []*ActionRecord
	approvals map[string]*ApprovalRecord
}

func newMemStore() *memStore {
	return &memStore{
		sessions:  make(map[string]*Session),
		messages:  make(map[string][]StoredMessage),
		approvals: make(map[string]*ApprovalRecord),
	}
}

func (m *memStore) GetSession(ctx context.Context, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s not found", id)
	}
	copied := *sess
	return &copied, nil
}

func (m *memStore) SetSessionStatus(ctx context.Context, id, status, endReason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		return fmt.Errorf("session %s not found", id)
	}
	sess.Status = status
	sess.EndReason = endReason
	return nil
}

func (m *memStore) ListMessages(ctx context.Context, sessionID string) ([]StoredMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]StoredMessage(nil), m.messages[sessionID]...), nil
}

func (m *memStore) AppendMessages(ctx context.Context, sessionID string, msgs []StoredMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	base := len(m.messages[sessionID])
	for i := range msgs {
		msgs[i].Sequence = base + i
	}
	m.messages[sessionID] = append(m.messages[sessionID], msgs...)
	return nil
}

func (m *memStore) RecordAction(ctx context.Context, action *ActionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actions = append(m.actions, action)
	return nil
}

func (m *memStore) CreateApproval(ctx context.Context, approval *ApprovalRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.approvals[approval.ID] = approval
	return nil
}

func (m *memStore) GetApproval(ctx context.Context, id string) (*ApprovalRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	approval, ok := m.approvals[id]
	if !ok {
		return nil, fmt.Errorf("approval %s not found", id)
	}
	copied := *approval
	return &copied, nil
}

func (m *memStore) sessionStatus(id string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id].Status
}

func (m *memStore) singleApproval(t *testing.T) *ApprovalRecord {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.Len(t, m.approvals, 1)
	for _, approval := range m.approvals {
		return approval
	}
	return nil
}

// --- fixtures ---

func textResponse(content string) *llm.Response {
	return &llm.Response{Content: content, StopReason: "stop", Usage: llm.Usage{InputTokens: 10, OutputTokens: 5}}
}

func toolCallResponse(id, name string, args map[string]any) *llm.Response {
	return &llm.Response{
		ToolCalls:  []llm.ToolCall{{ID: id, Name: name, Arguments: args}},
		StopReason: "tool_calls",
		Usage:      llm.Usage{InputTokens: 10, OutputTokens: 5},
	}
}

type harness struct {
	exec     *Executor
	store    *memStore
	llm      *scriptedLLM
	registry *tools.Registry
	executed *[]string // tool names actually invoked
}

func newHarness(t *testing.T, agentType string, responses ...*llm.Response) *harness {
	t.Helper()
	store := newMemStore()
	store.sessions["s1"] = &Session{ID: "s1", AgentType: agentType, Status: SessionActive}

	executed := []string{}
	registry := tools.NewRegistry()
	echo := func(name string) *tools.Tool {
		return &tools.Tool{
			Name: name,
			Handler: func(ctx context.Context, execCtx *tools.ExecutionContext, args map[string]any) (*tools.Result, error) {
				executed = append(executed, name)
				return &tools.Result{Success: true, Data: map[string]any{"echo": args}}, nil
			},
		}
	}
	require.NoError(t, registry.Register(echo("run_show_command")))
	require.NoError(t, registry.Register(&tools.Tool{
		Name:             "push_device_config",
		RiskLevel:        tools.RiskHigh,
		RequiresApproval: true,
		Handler: func(ctx context.Context, execCtx *tools.ExecutionContext, args map[string]any) (*tools.Result, error) {
			executed = append(executed, "push_device_config")
			return &tools.Result{Success: true, Data: map[string]any{"applied_by": execCtx.ApprovedBy}}, nil
		},
	}))
	require.NoError(t, registry.Register(&tools.Tool{
		Name:     tools.HandoffToolName,
		Internal: true,
		Handler: func(ctx context.Context, execCtx *tools.ExecutionContext, args map[string]any) (*tools.Result, error) {
			executed = append(executed, tools.HandoffToolName)
			return &tools.Result{Success: true, Data: map[string]any{
				"target_agent": args["target_agent"],
				"summary":      args["summary"],
			}}, nil
		},
	}))
	require.NoError(t, registry.Register(&tools.Tool{
		Name:     tools.EscalateToolName,
		Internal: true,
		Handler: func(ctx context.Context, execCtx *tools.ExecutionContext, args map[string]any) (*tools.Result, error) {
			executed = append(executed, tools.EscalateToolName)
			return &tools.Result{Success: true, Data: map[string]any{"reason": args["reason"]}}, nil
		},
	}))

	mock := &scriptedLLM{responses: responses}
	return &harness{
		exec:     New(mock, registry, store, Config{}),
		store:    store,
		llm:      mock,
		registry: registry,
		executed: &executed,
	}
}

func drain(t *testing.T, events <-chan AgentEvent) []AgentEvent {
	t.Helper()
	var out []AgentEvent
	for ev := range events {
		out = append(out, ev)
	}
	require.NotEmpty(t, out)
	require.Equal(t, EventDone, out[len(out)-1].Type, "sequence must end with done")
	return out
}

func eventTypes(events []AgentEvent) []EventType {
	out := make([]EventType, len(events))
	for i, ev := range events {
		out[i] = ev.Type
	}
	return out
}

// --- tests ---

func TestRunCleanFinalResponse(t *testing.T) {
	h := newHarness(t, agent.TypeGeneral, textResponse("All checks passed, nothing to do."))

	events, err := h.exec.Run(context.Background(), "s1", "check core-rtr-01", nil)
	require.NoError(t, err)
	got := drain(t, events)

	assert.Equal(t, []EventType{EventFinalResponse, EventDone}, eventTypes(got))
	assert.Equal(t, "All checks passed, nothing to do.", got[0].Content)
	assert.Equal(t, 1, h.llm.callCount())
	assert.Equal(t, SessionCompleted, h.store.sessionStatus("s1"),
		"a clean final response must close the session")
}

func TestRunReopensCompletedSession(t *testing.T) {
	h := newHarness(t, agent.TypeGeneral,
		textResponse("first answer"),
		textResponse("second answer"),
	)

	events, err := h.exec.Run(context.Background(), "s1", "first question", nil)
	require.NoError(t, err)
	drain(t, events)
	require.Equal(t, SessionCompleted, h.store.sessionStatus("s1"))

	// A follow-up turn on the completed session runs and closes it again.
	events, err = h.exec.Run(context.Background(), "s1", "follow-up question", nil)
	require.NoError(t, err)
	got := drain(t, events)

	assert.Equal(t, []EventType{EventFinalResponse, EventDone}, eventTypes(got))
	assert.Equal(t, "second answer", got[0].Content)
	assert.Equal(t, SessionCompleted, h.store.sessionStatus("s1"))
}

func TestRunUnknownSessionAndAgentType(t *testing.T) {
	h := newHarness(t, agent.TypeGeneral, textResponse("ok"))

	_, err := h.exec.Run(context.Background(), "nope", "hi", nil)
	assert.Error(t, err)

	h.store.sessions["weird"] = &Session{ID: "weird", AgentType: "quantum", Status: SessionActive}
	_, err = h.exec.Run(context.Background(), "weird", "hi", nil)
	assert.ErrorIs(t, err, agent.ErrUnknownAgentType)
}

func TestRunToolLoopThenFinal(t *testing.T) {
	h := newHarness(t, agent.TypeGeneral,
		toolCallResponse("call_1", "run_show_command", map[string]any{"device_name": "r1", "command": "show ip bgp summary"}),
		textResponse("Neighbor is established."),
	)

	events, err := h.exec.Run(context.Background(), "s1", "check bgp on r1", nil)
	require.NoError(t, err)
	got := drain(t, events)

	assert.Equal(t, []EventType{EventToolCall, EventToolResult, EventFinalResponse, EventDone}, eventTypes(got))
	assert.Equal(t, []string{"run_show_command"}, *h.executed)

	// Tool result message correlates to the call id and history ends with
	// the assistant's final answer.
	msgs := h.store.messages["s1"]
	var toolMsg *StoredMessage
	for i := range msgs {
		if msgs[i].Role == llm.RoleTool {
			toolMsg = &msgs[i]
		}
	}
	require.NotNil(t, toolMsg)
	assert.Equal(t, "call_1", toolMsg.ToolCallID)
	assert.Equal(t, llm.RoleAssistant, msgs[len(msgs)-1].Role)
}

func TestRunTerminatesAtExactlyMaxIterations(t *testing.T) {
	h := newHarness(t, agent.TypeGeneral,
		toolCallResponse("call_x", "run_show_command", map[string]any{"command": "show version"}),
	)

	events, err := h.exec.Run(context.Background(), "s1", "loop forever", nil)
	require.NoError(t, err)
	got := drain(t, events)

	assert.Equal(t, agent.DefaultMaxIterations, h.llm.callCount(),
		"mock always returns a tool call: exactly N LLM calls, never N+1")
	last := got[len(got)-2]
	assert.Equal(t, EventError, last.Type)
	assert.Equal(t, "maximum iterations reached", last.Content)
	assert.Equal(t, SessionError, h.store.sessionStatus("s1"))
}

func TestRunFirstTurnSeedsSystemPromptAndContextNote(t *testing.T) {
	h := newHarness(t, agent.TypeTriage, textResponse("noise, no action needed"))

	events, err := h.exec.Run(context.Background(), "s1", "triage this", &RunContext{
		ContextNote: "Alert: bgp neighbor down on core-rtr-01",
	})
	require.NoError(t, err)
	drain(t, events)

	msgs := h.store.messages["s1"]
	require.GreaterOrEqual(t, len(msgs), 3)
	assert.Equal(t, llm.RoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "triage agent")
	assert.Equal(t, llm.RoleSystem, msgs[1].Role)
	assert.Contains(t, msgs[1].Content, "core-rtr-01")
	assert.Equal(t, llm.RoleUser, msgs[2].Role)
}

func TestRunStatusSummaryFailureIsNonFatal(t *testing.T) {
	h := newHarness(t, agent.TypeGeneral, textResponse("done"))
	h.exec.cfg.StatusSummary = func(ctx context.Context) (string, error) {
		return "", fmt.Errorf("status service down")
	}

	events, err := h.exec.Run(context.Background(), "s1", "hello", nil)
	require.NoError(t, err)
	got := drain(t, events)

	assert.Equal(t, []EventType{EventFinalResponse, EventDone}, eventTypes(got))
}

func TestHandoffTerminatesTurn(t *testing.T) {
	h := newHarness(t, agent.TypeTriage,
		&llm.Response{
			ToolCalls: []llm.ToolCall{
				{ID: "call_h", Name: tools.HandoffToolName, Arguments: map[string]any{
					"target_agent": "bgp", "summary": "neighbor flap on r1",
				}},
				{ID: "call_after", Name: "run_show_command", Arguments: map[string]any{"command": "show version"}},
			},
			StopReason: "tool_calls",
		},
		textResponse("should never be reached"),
	)

	events, err := h.exec.Run(context.Background(), "s1", "route this", nil)
	require.NoError(t, err)
	got := drain(t, events)

	types := eventTypes(got)
	require.Contains(t, types, EventHandoff)
	assert.Equal(t, EventDone, types[len(types)-1])
	// Handoff is immediately followed by done: no tool calls after it.
	handoffIdx := -1
	for i, typ := range types {
		if typ == EventHandoff {
			handoffIdx = i
		}
	}
	assert.Equal(t, len(types)-2, handoffIdx)

	assert.Equal(t, []string{tools.HandoffToolName}, *h.executed,
		"remaining batch calls must not execute after handoff")
	assert.Equal(t, 1, h.llm.callCount())

	handoff := got[handoffIdx]
	assert.Equal(t, "bgp", handoff.Data["target_agent"])
	assert.Equal(t, "neighbor flap on r1", handoff.Data["summary"])
	assert.Equal(t, SessionCompleted, h.store.sessionStatus("s1"),
		"a handoff closes the triage session")
}

func TestEscalationDoesNotTerminate(t *testing.T) {
	h := newHarness(t, agent.TypeGeneral,
		toolCallResponse("call_e", tools.EscalateToolName, map[string]any{"reason": "flapping across sites"}),
		textResponse("Escalated; summary follows."),
	)

	events, err := h.exec.Run(context.Background(), "s1", "weird outage", nil)
	require.NoError(t, err)
	got := drain(t, events)

	types := eventTypes(got)
	assert.Equal(t, []EventType{EventToolCall, EventEscalation, EventToolResult, EventFinalResponse, EventDone}, types)
	assert.Equal(t, 2, h.llm.callCount(), "loop continues after escalation")
}

func TestApprovalPausesLoop(t *testing.T) {
	h := newHarness(t, agent.TypeGeneral,
		&llm.Response{
			ToolCalls: []llm.ToolCall{
				{ID: "call_cfg", Name: "push_device_config", Arguments: map[string]any{
					"device_name": "r1", "config_lines": []any{"interface Gi0/0", "no shutdown"},
				}},
				{ID: "call_skip", Name: "run_show_command", Arguments: map[string]any{"command": "show run"}},
			},
			StopReason: "tool_calls",
		},
	)

	events, err := h.exec.Run(context.Background(), "s1", "fix the interface", nil)
	require.NoError(t, err)
	got := drain(t, events)

	types := eventTypes(got)
	assert.Equal(t, []EventType{EventToolCall, EventApprovalRequired, EventDone}, types)
	assert.Empty(t, *h.executed, "gated handler must not run; batch remainder must not run")
	assert.Equal(t, SessionAwaitingApproval, h.store.sessionStatus("s1"))

	approval := h.store.singleApproval(t)
	assert.Equal(t, "push_device_config", approval.ToolName)
	assert.Equal(t, ApprovalPending, approval.Status)
	assert.Equal(t, approval.ID, got[1].Data["approval_id"])
	assert.Equal(t, 1, h.llm.callCount())
}

func TestResumeWithApprovalApprovedReExecutesExactCall(t *testing.T) {
	h := newHarness(t, agent.TypeGeneral,
		&llm.Response{
			ToolCalls: []llm.ToolCall{
				{ID: "call_cfg", Name: "push_device_config", Arguments: map[string]any{
					"device_name": "r1", "config_lines": []any{"no shutdown"},
				}},
			},
			StopReason: "tool_calls",
		},
		textResponse("Change applied, interface is up."),
	)

	events, err := h.exec.Run(context.Background(), "s1", "fix it", nil)
	require.NoError(t, err)
	drain(t, events)
	approval := h.store.singleApproval(t)

	resumed, err := h.exec.ResumeWithApproval(context.Background(), approval.ID, true, "oncall-engineer")
	require.NoError(t, err)
	got := drain(t, resumed)

	types := eventTypes(got)
	assert.Equal(t, []EventType{EventToolCall, EventToolResult, EventFinalResponse, EventDone}, types)
	assert.Equal(t, []string{"push_device_config"}, *h.executed)
	assert.Equal(t, map[string]any{"device_name": "r1", "config_lines": []any{"no shutdown"}}, got[0].ToolArgs,
		"re-execution must use the recorded arguments")
	assert.Equal(t, "oncall-engineer", got[1].Data["applied_by"])
	assert.Equal(t, SessionCompleted, h.store.sessionStatus("s1"),
		"the resumed run ended on a final response")

	// The re-executed result correlates with the originally gated call id.
	var toolMsgs []StoredMessage
	for _, m := range h.store.messages["s1"] {
		if m.Role == llm.RoleTool {
			toolMsgs = append(toolMsgs, m)
		}
	}
	require.NotEmpty(t, toolMsgs)
	assert.Equal(t, "call_cfg", toolMsgs[0].ToolCallID)
}

func TestResumeWithApprovalRejectedNeverExecutes(t *testing.T) {
	h := newHarness(t, agent.TypeGeneral,
		&llm.Response{
			ToolCalls: []llm.ToolCall{
				{ID: "call_cfg", Name: "push_device_config", Arguments: map[string]any{
					"device_name": "r1", "config_lines": []any{"shutdown"},
				}},
			},
			StopReason: "tool_calls",
		},
		textResponse("Understood, escalating to a human instead."),
	)

	events, err := h.exec.Run(context.Background(), "s1", "apply this", nil)
	require.NoError(t, err)
	drain(t, events)
	approval := h.store.singleApproval(t)

	resumed, err := h.exec.ResumeWithApproval(context.Background(), approval.ID, false, "noc-lead")
	require.NoError(t, err)
	got := drain(t, resumed)

	assert.Empty(t, *h.executed, "rejected tool must never execute")
	assert.Equal(t, []EventType{EventFinalResponse, EventDone}, eventTypes(got))

	// The dangling tool call got a rejection note and a system note names
	// the approver.
	var sawRejectionResult, sawSystemNote bool
	for _, m := range h.store.messages["s1"] {
		if m.Role == llm.RoleTool && m.ToolCallID == "call_cfg" {
			assert.Contains(t, m.Content, "rejected by noc-lead")
			sawRejectionResult = true
		}
		if m.Role == llm.RoleSystem && strings.Contains(m.Content, "noc-lead") && strings.Contains(m.Content, "rejected") {
			sawSystemNote = true
		}
	}
	assert.True(t, sawRejectionResult)
	assert.True(t, sawSystemNote)
}

func TestResumeWithApprovalUnknownID(t *testing.T) {
	// An unknown id surfaces on the event stream like any other run failure,
	// as one error event followed by done.
	h := newHarness(t, agent.TypeGeneral, textResponse("ok"))

	ch, err := h.exec.ResumeWithApproval(context.Background(), "no-such-approval", true, "anyone")
	require.NoError(t, err)

	events := drain(t, ch)
	require.Len(t, events, 2)
	assert.Equal(t, EventError, events[0].Type)
	assert.Contains(t, events[0].Content, ErrApprovalNotFound.Error())
	assert.Contains(t, events[0].Content, "no-such-approval")
	assert.Equal(t, EventDone, events[1].Type)
}

func TestDoneEventCarriesUsageTotals(t *testing.T) {
	h := newHarness(t, agent.TypeGeneral,
		toolCallResponse("c1", "run_show_command", map[string]any{"command": "show ip route"}),
		textResponse("routing table is healthy"),
	)

	events, err := h.exec.Run(context.Background(), "s1", "check routes", nil)
	require.NoError(t, err)
	got := drain(t, events)

	done := got[len(got)-1]
	assert.Equal(t, 20, done.Data["input_tokens"])
	assert.Equal(t, 10, done.Data["output_tokens"])
}
