package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/nocforge/nocforge/pkg/llm"
	"github.com/nocforge/nocforge/pkg/tools"
)

const (
	continueAfterApprovalTurn = "The approved action has been executed; its result is above. Continue with the task."
	continueAfterRejectTurn   = "The proposed action was rejected. Do not retry it as-is; suggest an alternative approach or summarize what a human should do."
	skippedCallNote           = `{"success":false,"error":"not executed: superseded by approval decision"}`
)

// ResumeWithApproval continues a session paused on a human approval. The
// decision itself (status flip, decided_by, reason) is recorded by the
// approval service before this is called; here the loop is re-entered.
//
// Approved: the gated tool call is re-executed with the recorded arguments,
// now carrying the approver's identity, and its result is folded into the
// conversation. Rejected: the tool is never executed; the conversation gets
// a rejection note instead. Either way the loop then continues with a
// synthetic user turn.
func (e *Executor) ResumeWithApproval(ctx context.Context, approvalID string, approved bool, approver string) (<-chan AgentEvent, error) {
	approval, err := e.store.GetApproval(ctx, approvalID)
	if err != nil || approval == nil {
		// The decision endpoints 404 unknown ids before the runner is ever
		// invoked, so this guards direct runner use. Reported on the stream,
		// the same way every other run failure surfaces.
		events := make(chan AgentEvent, 2)
		events <- AgentEvent{Type: EventError, Content: fmt.Sprintf("%s: %s", ErrApprovalNotFound, approvalID)}
		events <- AgentEvent{Type: EventDone}
		close(events)
		return events, nil
	}

	st, err := e.newRunState(ctx, approval.SessionID, nil)
	if err != nil {
		return nil, err
	}

	gatedID, skippedIDs := unresolvedToolCalls(st.history, approval.ToolName)

	go func() {
		defer close(st.events)

		e.setSessionStatus(st.sess.ID, SessionActive, "")

		var pending []StoredMessage
		if approved {
			call := llm.ToolCall{ID: gatedID, Name: approval.ToolName, Arguments: approval.Args}
			e.emit(ctx, st, AgentEvent{Type: EventToolCall, ToolName: call.Name, ToolArgs: call.Arguments})

			start := time.Now()
			result := e.registry.Execute(ctx, call.Name, &tools.ExecutionContext{
				SessionID:  st.sess.ID,
				AgentType:  st.sess.AgentType,
				ApprovalID: approval.ID,
				ApprovedBy: approver,
			}, call.Arguments)
			e.recordAction(st.sess.ID, call, result, time.Since(start), approval.ID)

			e.emit(ctx, st, AgentEvent{
				Type:     EventToolResult,
				ToolName: call.Name,
				ToolArgs: call.Arguments,
				Data:     resultData(result),
			})
			pending = append(pending, toolResultMessage(call, result))
			pending = append(pending, skippedMessages(skippedIDs)...)
			pending = append(pending, StoredMessage{Message: llm.Message{
				Role:    llm.RoleUser,
				Content: continueAfterApprovalTurn,
			}})
		} else {
			reason := approval.DecisionReason
			if reason == "" {
				reason = "no reason given"
			}
			if gatedID != "" {
				pending = append(pending, StoredMessage{
					Message: llm.Message{
						Role:       llm.RoleTool,
						Content:    fmt.Sprintf(`{"success":false,"error":"rejected by %s: %s"}`, approver, reason),
						ToolCallID: gatedID,
					},
					ToolName: approval.ToolName,
				})
			}
			pending = append(pending, skippedMessages(skippedIDs)...)
			pending = append(pending, StoredMessage{Message: llm.Message{
				Role:    llm.RoleSystem,
				Content: fmt.Sprintf("Human reviewer %s rejected the proposed %s action: %s", approver, approval.ToolName, reason),
			}})
			pending = append(pending, StoredMessage{Message: llm.Message{
				Role:    llm.RoleUser,
				Content: continueAfterRejectTurn,
			}})
		}

		if !e.commit(ctx, st, pending) {
			return
		}
		e.loop(ctx, st)
	}()

	return st.events, nil
}

// unresolvedToolCalls scans the last assistant tool-call message for call
// ids that never received a tool result: the one matching the approved tool
// name (the gated call) and any that came after it in the batch.
func unresolvedToolCalls(history []StoredMessage, gatedToolName string) (gatedID string, skipped []string) {
	lastAssistant := -1
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == llm.RoleAssistant && len(history[i].ToolCalls) > 0 {
			lastAssistant = i
			break
		}
	}
	if lastAssistant < 0 {
		return "", nil
	}

	resolved := make(map[string]bool)
	for _, m := range history[lastAssistant+1:] {
		if m.Role == llm.RoleTool && m.ToolCallID != "" {
			resolved[m.ToolCallID] = true
		}
	}

	for _, call := range history[lastAssistant].ToolCalls {
		if resolved[call.ID] {
			continue
		}
		if gatedID == "" && call.Name == gatedToolName {
			gatedID = call.ID
			continue
		}
		skipped = append(skipped, call.ID)
	}
	return gatedID, skipped
}

func skippedMessages(ids []string) []StoredMessage {
	out := make([]StoredMessage, len(ids))
	for i, id := range ids {
		out[i] = StoredMessage{Message: llm.Message{
			Role:       llm.RoleTool,
			Content:    skippedCallNote,
			ToolCallID: id,
		}}
	}
	return out
}
