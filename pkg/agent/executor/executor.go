package executor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nocforge/nocforge/pkg/agent"
	"github.com/nocforge/nocforge/pkg/llm"
	"github.com/nocforge/nocforge/pkg/tools"
)

var (
	// ErrApprovalNotFound is returned by ResumeWithApproval for unknown ids.
	ErrApprovalNotFound = errors.New("approval not found")

	// ErrMaxIterations is the iteration-cap failure. Its text is emitted
	// verbatim on the error event.
	ErrMaxIterations = errors.New("maximum iterations reached")
)

const (
	// DefaultIterationTimeout bounds one LLM call. A started tool execution
	// is never cancelled mid-flight; the timeout applies to reasoning only.
	DefaultIterationTimeout = 120 * time.Second

	// DefaultApprovalTTL is how long a pending approval stays decidable.
	DefaultApprovalTTL = 60 * time.Minute

	eventBufferSize = 64
)

// Config tunes one Executor. Zero values take the defaults above.
type Config struct {
	IterationTimeout time.Duration
	ApprovalTTL      time.Duration

	// StatusSummary, when set, is called once per new session to append a
	// short platform-status line to the system prompt. Best effort: a
	// failure is logged and the turn proceeds without it.
	StatusSummary func(ctx context.Context) (string, error)
}

// Executor drives agent reasoning loops. One Executor serves many sessions
// concurrently; per-run state lives on the stack of each Run invocation.
type Executor struct {
	llmClient llm.Client
	registry  *tools.Registry
	store     Store
	cfg       Config
}

// New creates an Executor.
func New(client llm.Client, registry *tools.Registry, store Store, cfg Config) *Executor {
	if cfg.IterationTimeout <= 0 {
		cfg.IterationTimeout = DefaultIterationTimeout
	}
	if cfg.ApprovalTTL <= 0 {
		cfg.ApprovalTTL = DefaultApprovalTTL
	}
	return &Executor{
		llmClient: client,
		registry:  registry,
		store:     store,
		cfg:       cfg,
	}
}

// Model reports the underlying LLM model identifier, used for cost
// attribution in workflow audit records.
func (e *Executor) Model() string { return e.llmClient.Model() }

// RunContext carries trigger-specific context into a run.
type RunContext struct {
	// ContextNote is appended as a system-role reminder before the user
	// message (originating alert fields, handoff summary).
	ContextNote string

	// Extra is passed through to tool handlers.
	Extra map[string]string
}

// runState is the per-run mutable state threaded through the loop.
type runState struct {
	sess    *Session
	cfg     *agent.Config
	history []StoredMessage
	events  chan AgentEvent
	extra   map[string]string
	wire    []llm.ToolSchema
	usage   llm.Usage
	iters   int
}

// Run starts (or continues) the reasoning loop for a session. Resolution
// failures (unknown session, unknown agent type) are returned synchronously;
// everything after that is reported as events. The returned channel is
// closed after the done event.
func (e *Executor) Run(ctx context.Context, sessionID, userInput string, runCtx *RunContext) (<-chan AgentEvent, error) {
	st, err := e.newRunState(ctx, sessionID, runCtx)
	if err != nil {
		return nil, err
	}

	go func() {
		defer close(st.events)

		// A new user turn reopens a completed session (chat follow-ups).
		if st.sess.Status == SessionCompleted {
			e.setSessionStatus(st.sess.ID, SessionActive, "")
			st.sess.Status = SessionActive
		}

		var pending []StoredMessage
		if len(st.history) == 0 {
			pending = append(pending, StoredMessage{Message: llm.Message{
				Role:    llm.RoleSystem,
				Content: e.seedSystemPrompt(ctx, st.cfg),
			}})
		}
		if runCtx != nil && runCtx.ContextNote != "" {
			pending = append(pending, StoredMessage{Message: llm.Message{
				Role:    llm.RoleSystem,
				Content: runCtx.ContextNote,
			}})
		}
		if userInput != "" {
			pending = append(pending, StoredMessage{Message: llm.Message{
				Role:    llm.RoleUser,
				Content: userInput,
			}})
		}
		if !e.commit(ctx, st, pending) {
			return
		}

		e.loop(ctx, st)
	}()

	return st.events, nil
}

func (e *Executor) newRunState(ctx context.Context, sessionID string, runCtx *RunContext) (*runState, error) {
	sess, err := e.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}
	agentCfg, err := agent.Resolve(sess.AgentType)
	if err != nil {
		return nil, err
	}
	history, err := e.store.ListMessages(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages for session %s: %w", sessionID, err)
	}

	var extra map[string]string
	if runCtx != nil {
		extra = runCtx.Extra
	}
	return &runState{
		sess:    sess,
		cfg:     agentCfg,
		history: history,
		events:  make(chan AgentEvent, eventBufferSize),
		extra:   extra,
		wire:    e.wireSchemas(agentCfg),
	}, nil
}

// seedSystemPrompt returns the agent's system prompt, optionally extended
// with a best-effort platform status line.
func (e *Executor) seedSystemPrompt(ctx context.Context, cfg *agent.Config) string {
	prompt := cfg.SystemPrompt
	if e.cfg.StatusSummary == nil {
		return prompt
	}
	summary, err := e.cfg.StatusSummary(ctx)
	if err != nil {
		slog.Warn("platform status summary failed, proceeding without it", "error", err)
		return prompt
	}
	if summary != "" {
		prompt += "\n\nCurrent platform status: " + summary
	}
	return prompt
}

func (e *Executor) wireSchemas(cfg *agent.Config) []llm.ToolSchema {
	schemas := e.registry.Schemas(cfg.Tools)
	out := make([]llm.ToolSchema, len(schemas))
	for i, s := range schemas {
		out[i] = llm.ToolSchema{Name: s.Name, Description: s.Description, InputSchema: s.InputSchema}
	}
	return out
}

// loop runs reasoning iterations until a terminal event. Each iteration is
// one LLM call plus the sequential execution of the tool calls it returned.
func (e *Executor) loop(ctx context.Context, st *runState) {
	for st.iters = 0; st.iters < st.cfg.MaxIterations; st.iters++ {
		resp, err := e.reason(ctx, st)
		if err != nil {
			e.fail(ctx, st, fmt.Sprintf("LLM call failed: %v", err))
			return
		}
		st.usage.InputTokens += resp.Usage.InputTokens
		st.usage.OutputTokens += resp.Usage.OutputTokens

		if len(resp.ToolCalls) == 0 {
			if !e.commit(ctx, st, []StoredMessage{{Message: llm.Message{
				Role:    llm.RoleAssistant,
				Content: resp.Content,
			}}}) {
				return
			}
			e.emit(ctx, st, AgentEvent{Type: EventFinalResponse, Content: resp.Content})
			e.setSessionStatus(st.sess.ID, SessionCompleted, "final_response")
			e.done(ctx, st)
			return
		}

		if resp.Content != "" {
			e.emit(ctx, st, AgentEvent{Type: EventThought, Content: resp.Content})
		}

		// The assistant message carrying the tool calls is committed before
		// any execution so a pause mid-batch leaves resumable history.
		if !e.commit(ctx, st, []StoredMessage{{Message: llm.Message{
			Role:      llm.RoleAssistant,
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		}}}) {
			return
		}

		terminal := e.executeBatch(ctx, st, resp.ToolCalls)
		if terminal {
			return
		}
	}

	e.emit(ctx, st, AgentEvent{Type: EventError, Content: ErrMaxIterations.Error()})
	e.setSessionStatus(st.sess.ID, SessionError, ErrMaxIterations.Error())
	e.done(ctx, st)
}

// reason makes one LLM call under the per-iteration timeout.
func (e *Executor) reason(ctx context.Context, st *runState) (*llm.Response, error) {
	iterCtx, cancel := context.WithTimeout(ctx, e.cfg.IterationTimeout)
	defer cancel()

	messages := make([]llm.Message, len(st.history))
	for i, m := range st.history {
		messages[i] = m.Message
	}
	return e.llmClient.Chat(iterCtx, &llm.ChatRequest{
		Messages:    messages,
		Tools:       st.wire,
		Temperature: st.cfg.Temperature,
		MaxTokens:   st.cfg.MaxTokens,
	})
}

// executeBatch runs one iteration's tool calls strictly in the order the LLM
// returned them. Returns true when the run terminated (handoff, approval
// pause, or persistence failure).
func (e *Executor) executeBatch(ctx context.Context, st *runState, calls []llm.ToolCall) bool {
	var pending []StoredMessage
	for i, call := range calls {
		e.emit(ctx, st, AgentEvent{Type: EventToolCall, ToolName: call.Name, ToolArgs: call.Arguments})

		start := time.Now()
		result := e.registry.Execute(ctx, call.Name, &tools.ExecutionContext{
			SessionID: st.sess.ID,
			AgentType: st.sess.AgentType,
			Extra:     st.extra,
		}, call.Arguments)
		duration := time.Since(start)

		if result.RequiresApproval {
			if !e.commit(ctx, st, pending) {
				return true
			}
			e.pauseForApproval(ctx, st, call, result, duration)
			return true
		}

		e.recordAction(st.sess.ID, call, result, duration, "")

		if call.Name == tools.HandoffToolName && result.Success {
			pending = append(pending, toolResultMessage(call, result))
			if !e.commit(ctx, st, pending) {
				return true
			}
			e.emit(ctx, st, AgentEvent{Type: EventHandoff, ToolName: call.Name, Data: resultData(result)})
			if len(calls) > i+1 {
				slog.Info("handoff ends turn, skipping remaining tool calls",
					"session_id", st.sess.ID, "skipped", len(calls)-i-1)
			}
			e.setSessionStatus(st.sess.ID, SessionCompleted, "handoff")
			e.done(ctx, st)
			return true
		}
		if call.Name == tools.EscalateToolName && result.Success {
			e.emit(ctx, st, AgentEvent{Type: EventEscalation, ToolName: call.Name, Data: resultData(result)})
		}

		e.emit(ctx, st, AgentEvent{
			Type:     EventToolResult,
			ToolName: call.Name,
			ToolArgs: call.Arguments,
			Data:     resultData(result),
		})
		pending = append(pending, toolResultMessage(call, result))
	}
	return !e.commit(ctx, st, pending)
}

// pauseForApproval persists the pending approval, flips the session to
// awaiting_approval, and ends the event sequence. Remaining tool calls in
// the batch are not executed; ResumeWithApproval settles them.
func (e *Executor) pauseForApproval(ctx context.Context, st *runState, call llm.ToolCall, result *tools.Result, duration time.Duration) {
	approvalID := uuid.NewString()
	result.ApprovalID = approvalID

	actionID := e.recordAction(st.sess.ID, call, result, duration, approvalID)

	approval := &ApprovalRecord{
		ID:          approvalID,
		SessionID:   st.sess.ID,
		ActionID:    actionID,
		ToolName:    call.Name,
		Args:        call.Arguments,
		RiskLevel:   string(result.RiskLevel),
		Status:      ApprovalPending,
		RequestedAt: time.Now().UTC(),
		ExpiresAt:   time.Now().UTC().Add(e.cfg.ApprovalTTL),
	}
	if err := e.store.CreateApproval(persistCtx(), approval); err != nil {
		e.fail(ctx, st, fmt.Sprintf("failed to persist approval: %v", err))
		return
	}
	e.setSessionStatus(st.sess.ID, SessionAwaitingApproval, "")

	data := resultData(result)
	data["approval_id"] = approvalID
	data["risk_level"] = string(result.RiskLevel)
	data["expires_at"] = approval.ExpiresAt.Format(time.RFC3339)
	e.emit(ctx, st, AgentEvent{
		Type:     EventApprovalRequired,
		ToolName: call.Name,
		ToolArgs: call.Arguments,
		Data:     data,
	})
	e.done(ctx, st)
}

// --- persistence helpers ---

// persistCtx returns the context used for critical writes. Deliberately
// detached from the run context so a cancelled consumer cannot lose
// state transitions.
func persistCtx() context.Context {
	return context.Background()
}

const persistTimeout = 10 * time.Second

// commit persists a message batch and folds it into the in-memory history.
// On failure the run is terminated with an error event.
func (e *Executor) commit(ctx context.Context, st *runState, msgs []StoredMessage) bool {
	if len(msgs) == 0 {
		return true
	}
	writeCtx, cancel := context.WithTimeout(persistCtx(), persistTimeout)
	defer cancel()
	if err := e.store.AppendMessages(writeCtx, st.sess.ID, msgs); err != nil {
		e.fail(ctx, st, fmt.Sprintf("failed to persist messages: %v", err))
		return false
	}
	st.history = append(st.history, msgs...)
	return true
}

func (e *Executor) recordAction(sessionID string, call llm.ToolCall, result *tools.Result, duration time.Duration, approvalID string) string {
	action := &ActionRecord{
		ID:         uuid.NewString(),
		SessionID:  sessionID,
		ToolCallID: call.ID,
		ToolName:   call.Name,
		Args:       call.Arguments,
		Result:     result,
		Success:    result.Success,
		RiskLevel:  string(result.RiskLevel),
		ApprovalID: approvalID,
		Duration:   duration,
	}
	writeCtx, cancel := context.WithTimeout(persistCtx(), persistTimeout)
	defer cancel()
	if err := e.store.RecordAction(writeCtx, action); err != nil {
		// Audit-trail loss is logged, not fatal to the run.
		slog.Error("failed to record agent action",
			"session_id", sessionID, "tool", call.Name, "error", err)
	}
	return action.ID
}

func (e *Executor) setSessionStatus(sessionID, status, endReason string) {
	writeCtx, cancel := context.WithTimeout(persistCtx(), persistTimeout)
	defer cancel()
	if err := e.store.SetSessionStatus(writeCtx, sessionID, status, endReason); err != nil {
		slog.Error("failed to update session status",
			"session_id", sessionID, "status", status, "error", err)
	}
}

// --- event helpers ---

func (e *Executor) emit(ctx context.Context, st *runState, ev AgentEvent) {
	select {
	case st.events <- ev:
	case <-ctx.Done():
	}
}

func (e *Executor) done(ctx context.Context, st *runState) {
	e.emit(ctx, st, AgentEvent{Type: EventDone, Data: map[string]any{
		"input_tokens":  st.usage.InputTokens,
		"output_tokens": st.usage.OutputTokens,
		"iterations":    st.iters,
	}})
}

// fail emits an error event, marks the session errored, and ends the
// sequence. Loop failures never escape as panics or returned errors.
func (e *Executor) fail(ctx context.Context, st *runState, msg string) {
	slog.Error("agent run failed", "session_id", st.sess.ID, "error", msg)
	e.emit(ctx, st, AgentEvent{Type: EventError, Content: msg})
	e.setSessionStatus(st.sess.ID, SessionError, msg)
	e.done(ctx, st)
}

// --- message shaping ---

func toolResultMessage(call llm.ToolCall, result *tools.Result) StoredMessage {
	return StoredMessage{
		Message: llm.Message{
			Role:       llm.RoleTool,
			Content:    marshalResult(result),
			ToolCallID: call.ID,
		},
		ToolName: call.Name,
	}
}

func marshalResult(result *tools.Result) string {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Sprintf(`{"success":false,"error":"unserializable result: %v"}`, err)
	}
	return string(raw)
}

// resultData flattens a tool result into event payload form.
func resultData(result *tools.Result) map[string]any {
	data := map[string]any{"success": result.Success}
	if result.Error != "" {
		data["error"] = result.Error
	}
	if inner, ok := result.Data.(map[string]any); ok {
		for k, v := range inner {
			if _, exists := data[k]; !exists {
				data[k] = v
			}
		}
	} else if result.Data != nil {
		data["result"] = result.Data
	}
	return data
}
