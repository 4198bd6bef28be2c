package queue

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/nocforge/nocforge/pkg/config"
	"github.com/nocforge/nocforge/pkg/services"
	"github.com/nocforge/nocforge/pkg/workflow"
)

// Worker is a single queue worker that polls for and processes alerts.
type Worker struct {
	id        string
	podID     string
	cfg       *config.QueueConfig
	queue     AlertQueue
	processor AlertProcessor
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu              sync.RWMutex
	status          WorkerStatus
	currentAlertID  string
	alertsProcessed int
	lastActivity    time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, cfg *config.QueueConfig, queue AlertQueue, processor AlertProcessor) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		cfg:          cfg,
		queue:        queue,
		processor:    processor,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish its current
// alert. Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health snapshot.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:              w.id,
		Status:          w.status,
		CurrentAlertID:  w.currentAlertID,
		AlertsProcessed: w.alertsProcessed,
		LastActivity:    w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, services.ErrNotFound) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing alert", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims the next alert and runs it through the workflow.
// Returns services.ErrNotFound when the queue is empty.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	alert, err := w.queue.ClaimNextNewAlert(ctx, w.podID)
	if err != nil {
		return err
	}

	log := slog.With("alert_id", alert.ID, "worker_id", w.id)
	log.Info("Alert claimed", "title", alert.Title)

	w.setStatus(WorkerStatusWorking, alert.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	alertCtx, cancel := context.WithTimeout(ctx, w.cfg.SessionTimeout)
	defer cancel()

	result, err := w.processor.ProcessAlert(alertCtx, alert.ID)
	if err != nil {
		// The workflow records its own failure detail; the queue's job is to
		// make sure the alert leaves "processing" so it shows up as failed.
		log.Error("Workflow failed", "error", err)
		if statusErr := w.queue.UpdateAlertStatus(context.Background(), alert.ID, workflow.OutcomeError); statusErr != nil {
			log.Error("Failed to mark alert errored", "error", statusErr)
		}
	} else {
		log.Info("Alert processing complete", "outcome", result.Outcome)
	}

	w.mu.Lock()
	w.alertsProcessed++
	w.mu.Unlock()

	return nil
}

// pollInterval returns the poll duration with jitter so workers on the same
// interval do not hit the database in lockstep.
func (w *Worker) pollInterval() time.Duration {
	base := w.cfg.PollInterval
	if base <= 0 {
		base = config.DefaultPollInterval
	}
	jitter := base / 4
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, alertID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentAlertID = alertID
	w.lastActivity = time.Now()
}
