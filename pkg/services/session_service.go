package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nocforge/nocforge/ent"
	"github.com/nocforge/nocforge/ent/agentaction"
	"github.com/nocforge/nocforge/ent/message"
	entsession "github.com/nocforge/nocforge/ent/session"
	"github.com/nocforge/nocforge/pkg/agent"
)

// criticalWriteTimeout bounds writes that must not inherit a cancelled
// request context (status transitions, message commits).
const criticalWriteTimeout = 10 * time.Second

// SessionService manages agent session lifecycle.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService.
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// CreateSession creates a session for the given agent type. Unknown agent
// types are rejected here, before any executor is involved.
func (s *SessionService) CreateSession(httpCtx context.Context, agentType, triggerType, triggerID string) (*ent.Session, error) {
	if agentType == "" {
		return nil, NewValidationError("agent_type", "required")
	}
	if !agent.IsKnownType(agentType) {
		return nil, fmt.Errorf("%w: %q", agent.ErrUnknownAgentType, agentType)
	}

	ctx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()

	builder := s.client.Session.Create().
		SetID(uuid.NewString()).
		SetAgentType(agentType).
		SetStatus(entsession.StatusActive)
	if triggerType != "" {
		builder.SetTriggerType(triggerType)
	}
	if triggerID != "" {
		builder.SetTriggerID(triggerID)
	}

	sess, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return sess, nil
}

// GetSession retrieves a session by ID, optionally with its messages and
// actions loaded in conversation order.
func (s *SessionService) GetSession(ctx context.Context, sessionID string, withEdges bool) (*ent.Session, error) {
	query := s.client.Session.Query().Where(entsession.IDEQ(sessionID))
	if withEdges {
		query = query.
			WithMessages(func(q *ent.MessageQuery) {
				q.Order(ent.Asc(message.FieldSequenceNumber))
			}).
			WithActions(func(q *ent.AgentActionQuery) {
				q.Order(ent.Asc(agentaction.FieldSequenceNumber))
			}).
			WithApprovals()
	}

	sess, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return sess, nil
}

// SessionFilters narrows ListSessions.
type SessionFilters struct {
	Status    string
	AgentType string
	Limit     int
	Offset    int
}

// ListSessions lists sessions newest-first with filtering and pagination.
func (s *SessionService) ListSessions(ctx context.Context, filters SessionFilters) ([]*ent.Session, int, error) {
	query := s.client.Session.Query()
	if filters.Status != "" {
		query = query.Where(entsession.StatusEQ(entsession.Status(filters.Status)))
	}
	if filters.AgentType != "" {
		query = query.Where(entsession.AgentTypeEQ(filters.AgentType))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	sessions, err := query.
		Order(ent.Desc(entsession.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, total, nil
}

// SetSessionStatus transitions a session's status. Terminal statuses also
// stamp ended_at and the end reason.
func (s *SessionService) SetSessionStatus(httpCtx context.Context, sessionID, status, endReason string) error {
	ctx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()

	builder := s.client.Session.UpdateOneID(sessionID).
		SetStatus(entsession.Status(status))
	if status == entsession.StatusCompleted.String() || status == entsession.StatusError.String() {
		builder.SetEndedAt(time.Now().UTC())
		if endReason != "" {
			builder.SetEndReason(endReason)
		}
	}

	if _, err := builder.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update session status: %w", err)
	}
	return nil
}
