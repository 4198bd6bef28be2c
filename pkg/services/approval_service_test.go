package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nocforge/nocforge/ent"
	"github.com/nocforge/nocforge/pkg/agent"
)

func createTestApproval(t *testing.T, client *ent.Client, expiresAt time.Time) *ent.PendingApproval {
	t.Helper()
	ctx := context.Background()

	sess, err := NewSessionService(client).CreateSession(ctx, agent.TypeAutomation, "alert", "a1")
	require.NoError(t, err)

	approval, err := NewApprovalService(client).CreateApproval(ctx, &ApprovalInput{
		ID:        uuid.NewString(),
		SessionID: sess.ID,
		ActionID:  uuid.NewString(),
		ToolName:  "push_device_config",
		Args:      map[string]interface{}{"device_name": "r1", "config": "no shutdown"},
		RiskLevel: "high",
		ExpiresAt: expiresAt,
	})
	require.NoError(t, err)
	return approval
}

func TestApproveMarksDecision(t *testing.T) {
	client := setupClient(t)
	svc := NewApprovalService(client)
	approval := createTestApproval(t, client, time.Now().Add(time.Hour))

	decided, err := svc.Approve(context.Background(), approval.ID, "oncall@example.com", "looks safe")
	require.NoError(t, err)
	assert.Equal(t, "approved", decided.Status.String())
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, "oncall@example.com", *decided.DecidedBy)
	require.NotNil(t, decided.DecisionReason)
	assert.Equal(t, "looks safe", *decided.DecisionReason)
	assert.NotNil(t, decided.DecidedAt)
}

func TestDecideTwiceReturnsAlreadyDecided(t *testing.T) {
	client := setupClient(t)
	svc := NewApprovalService(client)
	approval := createTestApproval(t, client, time.Now().Add(time.Hour))
	ctx := context.Background()

	_, err := svc.Approve(ctx, approval.ID, "first@example.com", "")
	require.NoError(t, err)

	_, err = svc.Reject(ctx, approval.ID, "second@example.com", "too risky")
	assert.ErrorIs(t, err, ErrAlreadyDecided)
}

func TestDecideExpiredApproval(t *testing.T) {
	client := setupClient(t)
	svc := NewApprovalService(client)
	approval := createTestApproval(t, client, time.Now().Add(-time.Minute))

	_, err := svc.Approve(context.Background(), approval.ID, "late@example.com", "")
	assert.ErrorIs(t, err, ErrExpired)
}

func TestDecideUnknownApproval(t *testing.T) {
	client := setupClient(t)
	svc := NewApprovalService(client)

	_, err := svc.Approve(context.Background(), "missing", "someone@example.com", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExpireOldIsIdempotent(t *testing.T) {
	client := setupClient(t)
	svc := NewApprovalService(client)
	ctx := context.Background()

	stale := createTestApproval(t, client, time.Now().Add(-time.Minute))
	createTestApproval(t, client, time.Now().Add(time.Hour))

	n, err := svc.ExpireOld(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	expired, err := svc.GetApproval(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, "expired", expired.Status.String())

	// Second sweep finds nothing new.
	n, err = svc.ExpireOld(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestListPendingScopedToSession(t *testing.T) {
	client := setupClient(t)
	svc := NewApprovalService(client)
	ctx := context.Background()

	a := createTestApproval(t, client, time.Now().Add(time.Hour))
	createTestApproval(t, client, time.Now().Add(time.Hour))

	all, err := svc.ListPending(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := svc.ListPending(ctx, a.SessionID)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, a.ID, scoped[0].ID)
}
