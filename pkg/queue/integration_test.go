package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nocforge/nocforge/pkg/config"
	"github.com/nocforge/nocforge/pkg/services"
	"github.com/nocforge/nocforge/pkg/workflow"
	testdb "github.com/nocforge/nocforge/test/database"
)

// resolvingProcessor stands in for the workflow engine: it marks every
// claimed alert resolved.
type resolvingProcessor struct {
	alerts *services.AlertService

	mu        sync.Mutex
	processed []string
}

func (p *resolvingProcessor) ProcessAlert(ctx context.Context, alertID string) (*workflow.Result, error) {
	if err := p.alerts.ResolveAlert(ctx, alertID); err != nil {
		return nil, err
	}
	p.mu.Lock()
	p.processed = append(p.processed, alertID)
	p.mu.Unlock()
	return &workflow.Result{Outcome: workflow.OutcomeResolved}, nil
}

func (p *resolvingProcessor) processedCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.processed)
}

func TestWorkerPoolDrainsRealQueue(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	alertSvc := services.NewAlertService(dbClient.Client)
	approvalSvc := services.NewApprovalService(dbClient.Client)
	sessionSvc := services.NewSessionService(dbClient.Client)
	processor := &resolvingProcessor{alerts: alertSvc}

	var ids []string
	for _, title := range []string{"bgp flap", "ospf adjacency down", "stp loop"} {
		alert, err := alertSvc.CreateAlert(ctx, &services.AlertInput{Title: title, Source: "test"})
		require.NoError(t, err)
		ids = append(ids, alert.ID)
	}

	// A skip_ai alert must never be claimed.
	manual, err := alertSvc.CreateAlert(ctx, &services.AlertInput{
		Title:  "planned maintenance",
		Source: "manual",
		SkipAI: true,
	})
	require.NoError(t, err)

	// An expired pending approval for the sweep to collect.
	sess, err := sessionSvc.CreateSession(ctx, "automation", "alert", ids[0])
	require.NoError(t, err)
	expiredApprovalID := uuid.NewString()
	_, err = approvalSvc.CreateApproval(ctx, &services.ApprovalInput{
		ID:        expiredApprovalID,
		SessionID: sess.ID,
		ActionID:  uuid.NewString(),
		ToolName:  "device.configure",
		RiskLevel: "high",
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
	})
	require.NoError(t, err)

	pool := NewWorkerPool("pod-integration",
		&config.QueueConfig{
			WorkerCount:             2,
			PollInterval:            20 * time.Millisecond,
			SessionTimeout:          time.Minute,
			GracefulShutdownTimeout: 10 * time.Second,
		},
		&config.ApprovalsConfig{SweepInterval: 50 * time.Millisecond},
		alertSvc, processor, approvalSvc)
	require.NoError(t, pool.Start(ctx))

	require.Eventually(t, func() bool {
		return processor.processedCount() == len(ids)
	}, 15*time.Second, 50*time.Millisecond, "pool must drain the queue")

	require.Eventually(t, func() bool {
		approval, err := approvalSvc.GetApproval(ctx, expiredApprovalID)
		return err == nil && approval.Status.String() == "expired"
	}, 15*time.Second, 50*time.Millisecond, "sweep must expire the overdue approval")

	pool.Stop()

	for _, id := range ids {
		alert, err := alertSvc.GetAlert(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "resolved", alert.Status.String())
	}

	untouched, err := alertSvc.GetAlert(ctx, manual.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", untouched.Status.String(), "skip_ai alert stays in the human queue")

	health := pool.Health()
	assert.GreaterOrEqual(t, health.ApprovalsExpired, 1)
}
