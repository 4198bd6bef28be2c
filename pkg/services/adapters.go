package services

import (
	"context"
	"encoding/json"

	"github.com/nocforge/nocforge/ent"
	"github.com/nocforge/nocforge/pkg/agent/executor"
	"github.com/nocforge/nocforge/pkg/llm"
	"github.com/nocforge/nocforge/pkg/workflow"
)

// ExecutorStore adapts the services layer to executor.Store. The executor
// works in its own value types; this is the only place that knows how they
// map onto ent entities.
type ExecutorStore struct {
	sessions  *SessionService
	messages  *MessageService
	actions   *ActionService
	approvals *ApprovalService
}

// NewExecutorStore creates an ExecutorStore over the given services.
func NewExecutorStore(sessions *SessionService, messages *MessageService, actions *ActionService, approvals *ApprovalService) *ExecutorStore {
	return &ExecutorStore{
		sessions:  sessions,
		messages:  messages,
		actions:   actions,
		approvals: approvals,
	}
}

func (s *ExecutorStore) GetSession(ctx context.Context, id string) (*executor.Session, error) {
	sess, err := s.sessions.GetSession(ctx, id, false)
	if err != nil {
		return nil, err
	}
	out := &executor.Session{
		ID:          sess.ID,
		AgentType:   sess.AgentType,
		Status:      sess.Status.String(),
		TriggerType: sess.TriggerType,
		TriggerID:   sess.TriggerID,
		CreatedAt:   sess.CreatedAt,
	}
	if sess.EndReason != nil {
		out.EndReason = *sess.EndReason
	}
	return out, nil
}

func (s *ExecutorStore) SetSessionStatus(ctx context.Context, id, status, endReason string) error {
	return s.sessions.SetSessionStatus(ctx, id, status, endReason)
}

func (s *ExecutorStore) ListMessages(ctx context.Context, sessionID string) ([]executor.StoredMessage, error) {
	rows, err := s.messages.ListMessages(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	out := make([]executor.StoredMessage, 0, len(rows))
	for _, row := range rows {
		msg := executor.StoredMessage{
			Message: llm.Message{
				Role:      llm.Role(row.Role),
				Content:   row.Content,
				ToolCalls: decodeToolCalls(row.ToolCalls),
			},
			Sequence: row.SequenceNumber,
		}
		if row.ToolCallID != nil {
			msg.ToolCallID = *row.ToolCallID
		}
		if row.ToolName != nil {
			msg.ToolName = *row.ToolName
		}
		out = append(out, msg)
	}
	return out, nil
}

func (s *ExecutorStore) AppendMessages(ctx context.Context, sessionID string, msgs []executor.StoredMessage) error {
	inputs := make([]MessageInput, 0, len(msgs))
	for _, msg := range msgs {
		inputs = append(inputs, MessageInput{
			Role:       string(msg.Role),
			Content:    msg.Content,
			ToolCalls:  encodeToolCalls(msg.ToolCalls),
			ToolCallID: msg.ToolCallID,
			ToolName:   msg.ToolName,
		})
	}
	return s.messages.AppendMessages(ctx, sessionID, inputs)
}

func (s *ExecutorStore) RecordAction(ctx context.Context, action *executor.ActionRecord) error {
	input := &ActionInput{
		ID:         action.ID,
		SessionID:  action.SessionID,
		ToolCallID: action.ToolCallID,
		ToolName:   action.ToolName,
		Args:       action.Args,
		Success:    action.Success,
		RiskLevel:  action.RiskLevel,
		ApprovalID: action.ApprovalID,
		DurationMs: int(action.Duration.Milliseconds()),
	}
	if action.Result != nil {
		input.Result = toJSONMap(action.Result)
	}
	_, err := s.actions.RecordAction(ctx, input)
	return err
}

func (s *ExecutorStore) CreateApproval(ctx context.Context, approval *executor.ApprovalRecord) error {
	_, err := s.approvals.CreateApproval(ctx, &ApprovalInput{
		ID:        approval.ID,
		SessionID: approval.SessionID,
		ActionID:  approval.ActionID,
		ToolName:  approval.ToolName,
		Args:      approval.Args,
		RiskLevel: approval.RiskLevel,
		ExpiresAt: approval.ExpiresAt,
	})
	return err
}

func (s *ExecutorStore) GetApproval(ctx context.Context, id string) (*executor.ApprovalRecord, error) {
	row, err := s.approvals.GetApproval(ctx, id)
	if err != nil {
		return nil, err
	}
	return approvalRecord(row), nil
}

func approvalRecord(row *ent.PendingApproval) *executor.ApprovalRecord {
	out := &executor.ApprovalRecord{
		ID:          row.ID,
		SessionID:   row.SessionID,
		ActionID:    row.ActionID,
		ToolName:    row.ToolName,
		Args:        row.ToolArgs,
		RiskLevel:   row.RiskLevel,
		Status:      row.Status.String(),
		RequestedAt: row.RequestedAt,
		ExpiresAt:   row.ExpiresAt,
	}
	if row.DecidedAt != nil {
		out.DecidedAt = *row.DecidedAt
	}
	if row.DecidedBy != nil {
		out.DecidedBy = *row.DecidedBy
	}
	if row.DecisionReason != nil {
		out.DecisionReason = *row.DecisionReason
	}
	return out
}

// decodeToolCalls rebuilds llm tool calls from the persisted JSON shape.
func decodeToolCalls(raw []map[string]interface{}) []llm.ToolCall {
	if len(raw) == 0 {
		return nil
	}
	calls := make([]llm.ToolCall, 0, len(raw))
	for _, entry := range raw {
		call := llm.ToolCall{}
		if id, ok := entry["id"].(string); ok {
			call.ID = id
		}
		if name, ok := entry["name"].(string); ok {
			call.Name = name
		}
		if args, ok := entry["arguments"].(map[string]interface{}); ok {
			call.Arguments = args
		}
		calls = append(calls, call)
	}
	return calls
}

func encodeToolCalls(calls []llm.ToolCall) []map[string]interface{} {
	if len(calls) == 0 {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(calls))
	for _, call := range calls {
		out = append(out, map[string]interface{}{
			"id":        call.ID,
			"name":      call.Name,
			"arguments": call.Arguments,
		})
	}
	return out
}

// toJSONMap flattens a struct through its JSON tags so the audit row stores
// the same shape the LLM saw.
func toJSONMap(v any) map[string]interface{} {
	data, err := json.Marshal(v)
	if err != nil {
		return map[string]interface{}{"marshal_error": err.Error()}
	}
	out := map[string]interface{}{}
	if err := json.Unmarshal(data, &out); err != nil {
		return map[string]interface{}{"raw": string(data)}
	}
	return out
}

// WorkflowAlertStore adapts AlertService to workflow.AlertStore.
type WorkflowAlertStore struct {
	alerts *AlertService
}

// NewWorkflowAlertStore creates a WorkflowAlertStore.
func NewWorkflowAlertStore(alerts *AlertService) *WorkflowAlertStore {
	return &WorkflowAlertStore{alerts: alerts}
}

func (s *WorkflowAlertStore) GetAlert(ctx context.Context, id string) (*workflow.Alert, error) {
	alert, err := s.alerts.GetAlert(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &workflow.Alert{
		ID:          alert.ID,
		Title:       alert.Title,
		Severity:    alert.Severity,
		Source:      alert.Source,
		Device:      alert.Device,
		Description: alert.Description,
		Status:      alert.Status.String(),
		SkipAI:      alert.SkipAi,
	}
	if alert.IncidentID != nil {
		out.IncidentID = *alert.IncidentID
	}
	return out, nil
}

func (s *WorkflowAlertStore) UpdateAlertStatus(ctx context.Context, id, status string) error {
	return s.alerts.UpdateAlertStatus(ctx, id, status)
}

func (s *WorkflowAlertStore) AcknowledgeAlert(ctx context.Context, id string) error {
	return s.alerts.AcknowledgeAlert(ctx, id)
}

func (s *WorkflowAlertStore) ResolveAlert(ctx context.Context, id string) error {
	return s.alerts.ResolveAlert(ctx, id)
}

func (s *WorkflowAlertStore) LinkIncident(ctx context.Context, alertID, incidentID string) error {
	return s.alerts.LinkIncident(ctx, alertID, incidentID)
}

// WorkflowSessionFactory adapts SessionService to workflow.SessionFactory.
type WorkflowSessionFactory struct {
	sessions *SessionService
}

// NewWorkflowSessionFactory creates a WorkflowSessionFactory.
func NewWorkflowSessionFactory(sessions *SessionService) *WorkflowSessionFactory {
	return &WorkflowSessionFactory{sessions: sessions}
}

func (f *WorkflowSessionFactory) CreateSession(ctx context.Context, agentType, triggerType, triggerID string) (string, error) {
	sess, err := f.sessions.CreateSession(ctx, agentType, triggerType, triggerID)
	if err != nil {
		return "", err
	}
	return sess.ID, nil
}

func (f *WorkflowSessionFactory) DescribeSession(ctx context.Context, sessionID string) (agentType, triggerType, triggerID string, err error) {
	sess, err := f.sessions.GetSession(ctx, sessionID, false)
	if err != nil {
		return "", "", "", err
	}
	return sess.AgentType, sess.TriggerType, sess.TriggerID, nil
}
