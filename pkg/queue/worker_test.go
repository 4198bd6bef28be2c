package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nocforge/nocforge/ent"
	"github.com/nocforge/nocforge/pkg/config"
	"github.com/nocforge/nocforge/pkg/services"
	"github.com/nocforge/nocforge/pkg/workflow"
)

// fakeQueue is an in-memory AlertQueue.
type fakeQueue struct {
	mu            sync.Mutex
	pending       []*ent.Alert
	statusUpdates map[string]string
	requeued      int
}

func newFakeQueue(alertIDs ...string) *fakeQueue {
	q := &fakeQueue{statusUpdates: make(map[string]string)}
	for _, id := range alertIDs {
		q.pending = append(q.pending, &ent.Alert{ID: id, Title: "test " + id})
	}
	return q
}

func (q *fakeQueue) ClaimNextNewAlert(ctx context.Context, podID string) (*ent.Alert, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil, services.ErrNotFound
	}
	alert := q.pending[0]
	q.pending = q.pending[1:]
	return alert, nil
}

func (q *fakeQueue) UpdateAlertStatus(ctx context.Context, id, status string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.statusUpdates[id] = status
	return nil
}

func (q *fakeQueue) RequeueStaleClaims(ctx context.Context, maxAge time.Duration) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.requeued++
	return 0, nil
}

func (q *fakeQueue) statusOf(id string) string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.statusUpdates[id]
}

// fakeProcessor records processed alert IDs.
type fakeProcessor struct {
	mu        sync.Mutex
	processed []string
	err       error
	block     chan struct{} // when non-nil, ProcessAlert waits on it
}

func (p *fakeProcessor) ProcessAlert(ctx context.Context, alertID string) (*workflow.Result, error) {
	if p.block != nil {
		select {
		case <-p.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	p.mu.Lock()
	p.processed = append(p.processed, alertID)
	p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	return &workflow.Result{Outcome: workflow.OutcomeTriaged}, nil
}

func (p *fakeProcessor) processedCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.processed)
}

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             1,
		PollInterval:            10 * time.Millisecond,
		SessionTimeout:          time.Minute,
		GracefulShutdownTimeout: 5 * time.Second,
	}
}

func TestWorkerProcessesClaimedAlerts(t *testing.T) {
	queue := newFakeQueue("a-1", "a-2")
	processor := &fakeProcessor{}

	worker := NewWorker("w-0", "pod-test", testQueueConfig(), queue, processor)
	worker.Start(context.Background())
	defer worker.Stop()

	require.Eventually(t, func() bool {
		return processor.processedCount() == 2
	}, 5*time.Second, 10*time.Millisecond)

	// Disposition is the workflow's job; a successful run writes no status
	// from the queue side.
	assert.Empty(t, queue.statusOf("a-1"))
	assert.Empty(t, queue.statusOf("a-2"))

	health := worker.Health()
	assert.Equal(t, 2, health.AlertsProcessed)
	assert.Equal(t, WorkerStatusIdle, health.Status)
}

func TestWorkerMarksFailedAlerts(t *testing.T) {
	queue := newFakeQueue("a-1")
	processor := &fakeProcessor{err: errors.New("llm unavailable")}

	worker := NewWorker("w-0", "pod-test", testQueueConfig(), queue, processor)
	worker.Start(context.Background())
	defer worker.Stop()

	require.Eventually(t, func() bool {
		return queue.statusOf("a-1") == workflow.OutcomeError
	}, 5*time.Second, 10*time.Millisecond, "failed alert must leave processing")
}

func TestWorkerStopsWhileIdle(t *testing.T) {
	worker := NewWorker("w-0", "pod-test", testQueueConfig(), newFakeQueue(), &fakeProcessor{})
	worker.Start(context.Background())

	done := make(chan struct{})
	go func() {
		worker.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("idle worker did not stop")
	}
}

func TestWorkerFinishesCurrentAlertOnStop(t *testing.T) {
	queue := newFakeQueue("a-1")
	processor := &fakeProcessor{block: make(chan struct{})}

	worker := NewWorker("w-0", "pod-test", testQueueConfig(), queue, processor)
	worker.Start(context.Background())

	require.Eventually(t, func() bool {
		return worker.Health().Status == WorkerStatusWorking
	}, 5*time.Second, 10*time.Millisecond)

	stopDone := make(chan struct{})
	go func() {
		worker.Stop()
		close(stopDone)
	}()

	// Stop must wait for the in-flight alert.
	select {
	case <-stopDone:
		t.Fatal("Stop returned while an alert was still processing")
	case <-time.After(50 * time.Millisecond):
	}

	close(processor.block)
	select {
	case <-stopDone:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop after finishing its alert")
	}

	assert.Equal(t, 1, processor.processedCount())
}
