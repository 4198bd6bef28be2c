package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nocforge/nocforge/pkg/config"
)

type fakeSweeper struct {
	mu      sync.Mutex
	expired int
	sweeps  int
}

func (s *fakeSweeper) ExpireOld(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweeps++
	s.expired += 2
	return 2, nil
}

func (s *fakeSweeper) sweepCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweeps
}

func testApprovalsConfig() *config.ApprovalsConfig {
	return &config.ApprovalsConfig{
		ExpiryMinutes: 60,
		SweepInterval: 20 * time.Millisecond,
	}
}

func TestPoolStartsConfiguredWorkerCount(t *testing.T) {
	cfg := testQueueConfig()
	cfg.WorkerCount = 3

	pool := NewWorkerPool("pod-test", cfg, testApprovalsConfig(), newFakeQueue(), &fakeProcessor{}, &fakeSweeper{})
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	health := pool.Health()
	assert.Equal(t, 3, health.TotalWorkers)
	assert.Len(t, health.WorkerStats, 3)

	// Duplicate Start is a no-op.
	require.NoError(t, pool.Start(context.Background()))
	assert.Equal(t, 3, pool.Health().TotalWorkers)
}

func TestPoolMaintenanceSweep(t *testing.T) {
	queue := newFakeQueue()
	sweeper := &fakeSweeper{}
	cfg := testQueueConfig()
	cfg.WorkerCount = 0

	pool := NewWorkerPool("pod-test", cfg, testApprovalsConfig(), queue, &fakeProcessor{}, sweeper)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		return sweeper.sweepCount() >= 2
	}, 5*time.Second, 10*time.Millisecond, "sweep must run on the configured interval")

	// The same sweep requeues abandoned claims.
	require.Eventually(t, func() bool {
		queue.mu.Lock()
		defer queue.mu.Unlock()
		return queue.requeued >= 2
	}, 5*time.Second, 10*time.Millisecond)

	health := pool.Health()
	assert.GreaterOrEqual(t, health.ApprovalsExpired, 4)
	assert.False(t, health.LastSweep.IsZero())
}

func TestPoolProcessesAlertsAcrossWorkers(t *testing.T) {
	queue := newFakeQueue("a-1", "a-2", "a-3", "a-4")
	processor := &fakeProcessor{}
	cfg := testQueueConfig()
	cfg.WorkerCount = 2

	pool := NewWorkerPool("pod-test", cfg, testApprovalsConfig(), queue, processor, &fakeSweeper{})
	require.NoError(t, pool.Start(context.Background()))

	require.Eventually(t, func() bool {
		return processor.processedCount() == 4
	}, 5*time.Second, 10*time.Millisecond)

	pool.Stop()
	assert.Equal(t, 4, processor.processedCount())
}

func TestPoolStopIsIdempotent(t *testing.T) {
	pool := NewWorkerPool("pod-test", testQueueConfig(), testApprovalsConfig(), newFakeQueue(), &fakeProcessor{}, &fakeSweeper{})
	require.NoError(t, pool.Start(context.Background()))

	pool.Stop()
	pool.Stop()
}
