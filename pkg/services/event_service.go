package services

import (
	"context"
	"fmt"
	"time"

	"github.com/nocforge/nocforge/ent"
	"github.com/nocforge/nocforge/ent/event"
)

// EventService reads and prunes the persisted WebSocket event log. Writes go
// through the events publisher, which needs the INSERT and pg_notify in one
// transaction.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsSince retrieves up to limit events on a channel after sinceID,
// oldest first. Used by the WebSocket catchup mechanism.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error) {
	events, err := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(int64(sinceID)),
		).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return events, nil
}

// CleanupSessionEvents removes all events for a session.
func (s *EventService) CleanupSessionEvents(httpCtx context.Context, sessionID string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.SessionIDEQ(sessionID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup session events: %w", err)
	}
	return count, nil
}

// CleanupOldEvents removes events older than the TTL.
func (s *EventService) CleanupOldEvents(httpCtx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old events: %w", err)
	}
	return count, nil
}
