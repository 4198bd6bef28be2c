package executor

import (
	"context"
	"time"

	"github.com/nocforge/nocforge/pkg/llm"
	"github.com/nocforge/nocforge/pkg/tools"
)

// Session status values, mirrored by the persistence layer.
const (
	SessionActive           = "active"
	SessionAwaitingApproval = "awaiting_approval"
	SessionCompleted        = "completed"
	SessionError            = "error"
)

// Approval status values.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
	ApprovalExpired  = "expired"
)

// Session is the executor's view of one conversation.
type Session struct {
	ID          string
	AgentType   string
	Status      string
	TriggerType string
	TriggerID   string
	EndReason   string
	CreatedAt   time.Time
}

// StoredMessage is one persisted conversation message. Sequence is assigned
// by the store on append.
type StoredMessage struct {
	llm.Message

	ToolName string
	Sequence int
}

// ActionRecord is the audit entry for one executed (or gated) tool call.
type ActionRecord struct {
	ID         string
	SessionID  string
	ToolCallID string
	ToolName   string
	Args       map[string]any
	Result     *tools.Result
	Success    bool
	RiskLevel  string
	ApprovalID string
	Duration   time.Duration
}

// ApprovalRecord is one pending (or decided) human approval.
type ApprovalRecord struct {
	ID             string
	SessionID      string
	ActionID       string
	ToolName       string
	Args           map[string]any
	RiskLevel      string
	Status         string
	RequestedAt    time.Time
	ExpiresAt      time.Time
	DecidedAt      time.Time
	DecidedBy      string
	DecisionReason string
}

// The store interfaces are defined here, at the consumer, and implemented by
// the services layer. Tests supply in-memory fakes.

type SessionStore interface {
	GetSession(ctx context.Context, id string) (*Session, error)
	SetSessionStatus(ctx context.Context, id, status, endReason string) error
}

type MessageStore interface {
	ListMessages(ctx context.Context, sessionID string) ([]StoredMessage, error)
	// AppendMessages persists the batch atomically, assigning sequence
	// numbers after the session's current tail.
	AppendMessages(ctx context.Context, sessionID string, msgs []StoredMessage) error
}

type ActionStore interface {
	RecordAction(ctx context.Context, action *ActionRecord) error
}

type ApprovalStore interface {
	CreateApproval(ctx context.Context, approval *ApprovalRecord) error
	GetApproval(ctx context.Context, id string) (*ApprovalRecord, error)
}

// Store bundles everything the executor persists through.
type Store interface {
	SessionStore
	MessageStore
	ActionStore
	ApprovalStore
}
