package services

import (
	"context"
	"fmt"
	"time"

	"github.com/nocforge/nocforge/ent"
	"github.com/nocforge/nocforge/ent/pendingapproval"
)

// ApprovalInput is one approval gate to persist.
type ApprovalInput struct {
	ID        string
	SessionID string
	ActionID  string
	ToolName  string
	Args      map[string]interface{}
	RiskLevel string
	ExpiresAt time.Time
}

// ApprovalService manages the human approval gates that pause agent
// execution.
type ApprovalService struct {
	client *ent.Client
}

// NewApprovalService creates a new ApprovalService.
func NewApprovalService(client *ent.Client) *ApprovalService {
	return &ApprovalService{client: client}
}

// CreateApproval persists a pending approval. The row is the durable pause;
// the executor goroutine that created it exits afterwards.
func (s *ApprovalService) CreateApproval(httpCtx context.Context, input *ApprovalInput) (*ent.PendingApproval, error) {
	if input.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if input.ExpiresAt.IsZero() {
		return nil, NewValidationError("expires_at", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()

	builder := s.client.PendingApproval.Create().
		SetID(input.ID).
		SetSessionID(input.SessionID).
		SetActionID(input.ActionID).
		SetToolName(input.ToolName).
		SetRiskLevel(input.RiskLevel).
		SetStatus(pendingapproval.StatusPending).
		SetExpiresAt(input.ExpiresAt)
	if input.Args != nil {
		builder.SetToolArgs(input.Args)
	}

	approval, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create approval: %w", err)
	}
	return approval, nil
}

// GetApproval retrieves an approval by ID.
func (s *ApprovalService) GetApproval(ctx context.Context, id string) (*ent.PendingApproval, error) {
	approval, err := s.client.PendingApproval.Query().
		Where(pendingapproval.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get approval: %w", err)
	}
	return approval, nil
}

// ListPending returns pending approvals, oldest first, optionally scoped to
// one session.
func (s *ApprovalService) ListPending(ctx context.Context, sessionID string) ([]*ent.PendingApproval, error) {
	query := s.client.PendingApproval.Query().
		Where(pendingapproval.StatusEQ(pendingapproval.StatusPending))
	if sessionID != "" {
		query = query.Where(pendingapproval.SessionIDEQ(sessionID))
	}
	approvals, err := query.
		Order(ent.Asc(pendingapproval.FieldRequestedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending approvals: %w", err)
	}
	return approvals, nil
}

// Approve marks a pending approval approved.
func (s *ApprovalService) Approve(httpCtx context.Context, id, decidedBy, reason string) (*ent.PendingApproval, error) {
	return s.decide(httpCtx, id, pendingapproval.StatusApproved, decidedBy, reason)
}

// Reject marks a pending approval rejected.
func (s *ApprovalService) Reject(httpCtx context.Context, id, decidedBy, reason string) (*ent.PendingApproval, error) {
	return s.decide(httpCtx, id, pendingapproval.StatusRejected, decidedBy, reason)
}

// decide flips pending to the given terminal status. The conditional update
// makes concurrent decisions race-safe: exactly one wins, the loser gets
// ErrAlreadyDecided.
func (s *ApprovalService) decide(httpCtx context.Context, id string, status pendingapproval.Status, decidedBy, reason string) (*ent.PendingApproval, error) {
	if decidedBy == "" {
		return nil, NewValidationError("decided_by", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()

	now := time.Now().UTC()

	n, err := s.client.PendingApproval.Update().
		Where(
			pendingapproval.IDEQ(id),
			pendingapproval.StatusEQ(pendingapproval.StatusPending),
			pendingapproval.ExpiresAtGT(now),
		).
		SetStatus(status).
		SetDecidedAt(now).
		SetDecidedBy(decidedBy).
		SetDecisionReason(reason).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to decide approval: %w", err)
	}
	if n == 0 {
		// Distinguish why the update missed.
		current, err := s.GetApproval(ctx, id)
		if err != nil {
			return nil, err
		}
		if current.Status != pendingapproval.StatusPending {
			return nil, ErrAlreadyDecided
		}
		return nil, ErrExpired
	}

	return s.GetApproval(ctx, id)
}

// ExpireOld flips pending approvals past their expiry to expired. Idempotent;
// safe to run from every worker on a timer.
func (s *ApprovalService) ExpireOld(httpCtx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()

	now := time.Now().UTC()
	n, err := s.client.PendingApproval.Update().
		Where(
			pendingapproval.StatusEQ(pendingapproval.StatusPending),
			pendingapproval.ExpiresAtLTE(now),
		).
		SetStatus(pendingapproval.StatusExpired).
		SetDecidedAt(now).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to expire approvals: %w", err)
	}
	return n, nil
}
