package services

import (
	"context"
	"fmt"

	"github.com/nocforge/nocforge/ent"
	"github.com/nocforge/nocforge/ent/agentaction"
)

// ActionInput is one tool invocation to record.
type ActionInput struct {
	ID         string
	SessionID  string
	ToolCallID string
	ToolName   string
	Args       map[string]interface{}
	Result     map[string]interface{}
	Success    bool
	RiskLevel  string
	ApprovalID string
	DurationMs int
}

// ActionService records the tool invocation audit trail.
type ActionService struct {
	client *ent.Client
}

// NewActionService creates a new ActionService.
func NewActionService(client *ent.Client) *ActionService {
	return &ActionService{client: client}
}

// RecordAction persists one action with the next session-scoped sequence
// number.
func (s *ActionService) RecordAction(httpCtx context.Context, input *ActionInput) (*ent.AgentAction, error) {
	if input.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if input.ToolName == "" {
		return nil, NewValidationError("tool_name", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	seq := 0
	last, err := tx.AgentAction.Query().
		Where(agentaction.SessionIDEQ(input.SessionID)).
		Order(ent.Desc(agentaction.FieldSequenceNumber)).
		First(ctx)
	if err == nil {
		seq = last.SequenceNumber + 1
	} else if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to read action tail: %w", err)
	}

	builder := tx.AgentAction.Create().
		SetID(input.ID).
		SetSessionID(input.SessionID).
		SetSequenceNumber(seq).
		SetToolCallID(input.ToolCallID).
		SetToolName(input.ToolName).
		SetSuccess(input.Success).
		SetRiskLevel(input.RiskLevel)
	if input.Args != nil {
		builder.SetToolArgs(input.Args)
	}
	if input.Result != nil {
		builder.SetResult(input.Result)
	}
	if input.ApprovalID != "" {
		builder.SetApprovalID(input.ApprovalID)
	}
	if input.DurationMs > 0 {
		builder.SetDurationMs(input.DurationMs)
	}

	action, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to record action: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit action: %w", err)
	}
	return action, nil
}

// ListActions returns a session's actions in execution order.
func (s *ActionService) ListActions(ctx context.Context, sessionID string) ([]*ent.AgentAction, error) {
	actions, err := s.client.AgentAction.Query().
		Where(agentaction.SessionIDEQ(sessionID)).
		Order(ent.Asc(agentaction.FieldSequenceNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list actions: %w", err)
	}
	return actions, nil
}
