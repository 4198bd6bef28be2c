package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nocforge/nocforge/ent"
	"github.com/nocforge/nocforge/ent/message"
)

// MessageInput is one conversation message to persist.
type MessageInput struct {
	Role       string
	Content    string
	ToolCalls  []map[string]interface{}
	ToolCallID string
	ToolName   string
}

// MessageService manages the append-only conversation log.
type MessageService struct {
	client *ent.Client
}

// NewMessageService creates a new MessageService.
func NewMessageService(client *ent.Client) *MessageService {
	return &MessageService{client: client}
}

// ListMessages returns a session's messages in conversation order.
func (s *MessageService) ListMessages(ctx context.Context, sessionID string) ([]*ent.Message, error) {
	msgs, err := s.client.Message.Query().
		Where(message.SessionIDEQ(sessionID)).
		Order(ent.Asc(message.FieldSequenceNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return msgs, nil
}

// AppendMessages persists a batch atomically, assigning sequence numbers
// after the session's current tail. A partial batch would corrupt the
// conversation the LLM replays from, hence the transaction.
func (s *MessageService) AppendMessages(httpCtx context.Context, sessionID string, msgs []MessageInput) error {
	if len(msgs) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	tail, err := nextSequence(ctx, tx, sessionID)
	if err != nil {
		return err
	}

	for i, msg := range msgs {
		builder := tx.Message.Create().
			SetID(uuid.NewString()).
			SetSessionID(sessionID).
			SetSequenceNumber(tail + i).
			SetRole(message.Role(msg.Role)).
			SetContent(msg.Content)
		if len(msg.ToolCalls) > 0 {
			builder.SetToolCalls(msg.ToolCalls)
		}
		if msg.ToolCallID != "" {
			builder.SetToolCallID(msg.ToolCallID)
		}
		if msg.ToolName != "" {
			builder.SetToolName(msg.ToolName)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("failed to append message: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit message batch: %w", err)
	}
	return nil
}

func nextSequence(ctx context.Context, tx *ent.Tx, sessionID string) (int, error) {
	last, err := tx.Message.Query().
		Where(message.SessionIDEQ(sessionID)).
		Order(ent.Desc(message.FieldSequenceNumber)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read message tail: %w", err)
	}
	return last.SequenceNumber + 1, nil
}
