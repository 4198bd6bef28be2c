// Package queue runs the background worker pool that drains the alert queue:
// each worker claims new alerts and drives them through the workflow engine.
// The pool also owns the periodic maintenance sweep (approval expiry and
// stale-claim requeue).
package queue

import (
	"context"
	"time"

	"github.com/nocforge/nocforge/ent"
	"github.com/nocforge/nocforge/pkg/workflow"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// WorkerHealth is one worker's health snapshot.
type WorkerHealth struct {
	ID              string       `json:"id"`
	Status          WorkerStatus `json:"status"`
	CurrentAlertID  string       `json:"current_alert_id,omitempty"`
	AlertsProcessed int          `json:"alerts_processed"`
	LastActivity    time.Time    `json:"last_activity"`
}

// PoolHealth is the pool's aggregate health snapshot.
type PoolHealth struct {
	PodID            string         `json:"pod_id"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveWorkers    int            `json:"active_workers"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastSweep        time.Time      `json:"last_sweep,omitempty"`
	ApprovalsExpired int            `json:"approvals_expired"`
	AlertsRequeued   int            `json:"alerts_requeued"`
}

// AlertQueue is the slice of the alert service the pool drives: claiming
// work, flipping failed alerts to error, and requeueing abandoned claims.
type AlertQueue interface {
	ClaimNextNewAlert(ctx context.Context, podID string) (*ent.Alert, error)
	UpdateAlertStatus(ctx context.Context, id, status string) error
	RequeueStaleClaims(ctx context.Context, maxAge time.Duration) (int, error)
}

// AlertProcessor runs one claimed alert through the workflow.
type AlertProcessor interface {
	ProcessAlert(ctx context.Context, alertID string) (*workflow.Result, error)
}

// ApprovalSweeper expires overdue pending approvals.
type ApprovalSweeper interface {
	ExpireOld(ctx context.Context) (int, error)
}
