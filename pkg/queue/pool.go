package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nocforge/nocforge/pkg/config"
)

// staleClaimGrace is added to the per-alert timeout before a processing
// claim counts as abandoned. A claim older than timeout+grace can only
// belong to a worker that died without writing a terminal status.
const staleClaimGrace = 5 * time.Minute

// WorkerPool manages the queue workers and the maintenance sweep.
type WorkerPool struct {
	podID        string
	queueCfg     *config.QueueConfig
	approvalsCfg *config.ApprovalsConfig
	queue        AlertQueue
	processor    AlertProcessor
	approvals    ApprovalSweeper
	workers      []*Worker
	stopCh       chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup
	started      bool

	// Maintenance sweep stats
	mu               sync.Mutex
	lastSweep        time.Time
	approvalsExpired int
	alertsRequeued   int
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, queueCfg *config.QueueConfig, approvalsCfg *config.ApprovalsConfig, queue AlertQueue, processor AlertProcessor, approvals ApprovalSweeper) *WorkerPool {
	return &WorkerPool{
		podID:        podID,
		queueCfg:     queueCfg,
		approvalsCfg: approvalsCfg,
		queue:        queue,
		processor:    processor,
		approvals:    approvals,
		workers:      make([]*Worker, 0, queueCfg.WorkerCount),
		stopCh:       make(chan struct{}),
	}
}

// Start spawns worker goroutines and the maintenance sweep. Safe to call
// multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.queueCfg.WorkerCount)

	for i := 0; i < p.queueCfg.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.queueCfg, p.queue, p.processor)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runMaintenance(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish their
// current alerts, up to the configured graceful shutdown timeout.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	p.stopOnce.Do(func() { close(p.stopCh) })

	done := make(chan struct{})
	go func() {
		for _, worker := range p.workers {
			worker.Stop()
		}
		p.wg.Wait()
		close(done)
	}()

	timeout := p.queueCfg.GracefulShutdownTimeout
	if timeout <= 0 {
		timeout = config.DefaultGracefulShutdownTimeout
	}

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-time.After(timeout):
		slog.Warn("Worker pool shutdown timeout exceeded, abandoning active work",
			"timeout", timeout)
	}
}

// runMaintenance periodically expires overdue approvals and requeues
// abandoned alert claims. Every pod runs the sweep; both operations are
// idempotent conditional updates, so overlap between pods is harmless.
func (p *WorkerPool) runMaintenance(ctx context.Context) {
	interval := p.approvalsCfg.SweepInterval
	if interval <= 0 {
		interval = config.DefaultApprovalSweepInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.sweep(ctx)
		}
	}
}

func (p *WorkerPool) sweep(ctx context.Context) {
	expired, err := p.approvals.ExpireOld(ctx)
	if err != nil {
		slog.Error("Approval expiry sweep failed", "pod_id", p.podID, "error", err)
	} else if expired > 0 {
		slog.Info("Expired overdue approvals", "pod_id", p.podID, "count", expired)
	}

	requeued, err := p.queue.RequeueStaleClaims(ctx, p.queueCfg.SessionTimeout+staleClaimGrace)
	if err != nil {
		slog.Error("Stale claim requeue failed", "pod_id", p.podID, "error", err)
	} else if requeued > 0 {
		slog.Warn("Requeued abandoned alert claims", "pod_id", p.podID, "count", requeued)
	}

	p.mu.Lock()
	p.lastSweep = time.Now()
	p.approvalsExpired += expired
	p.alertsRequeued += requeued
	p.mu.Unlock()
}

// Health returns the current health snapshot of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == WorkerStatusWorking {
			activeWorkers++
		}
	}

	p.mu.Lock()
	lastSweep := p.lastSweep
	approvalsExpired := p.approvalsExpired
	alertsRequeued := p.alertsRequeued
	p.mu.Unlock()

	return &PoolHealth{
		PodID:            p.podID,
		TotalWorkers:     len(p.workers),
		ActiveWorkers:    activeWorkers,
		WorkerStats:      workerStats,
		LastSweep:        lastSweep,
		ApprovalsExpired: approvalsExpired,
		AlertsRequeued:   alertsRequeued,
	}
}
