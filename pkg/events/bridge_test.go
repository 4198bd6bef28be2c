package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nocforge/nocforge/pkg/agent/executor"
)

// scriptedRunner replays a fixed event sequence and records how far the
// bridge drained it.
type scriptedRunner struct {
	events  []executor.AgentEvent
	drained chan struct{}
}

func (r *scriptedRunner) Run(ctx context.Context, sessionID, userInput string, runCtx *executor.RunContext) (<-chan executor.AgentEvent, error) {
	out := make(chan executor.AgentEvent)
	go func() {
		defer close(out)
		defer close(r.drained)
		for _, ev := range r.events {
			out <- ev
		}
	}()
	return out, nil
}

func (r *scriptedRunner) ResumeWithApproval(ctx context.Context, approvalID string, approved bool, approver string) (<-chan executor.AgentEvent, error) {
	return r.Run(ctx, "", "", nil)
}

func (r *scriptedRunner) Model() string { return "test-model" }

func TestPublishingRunnerForwardsFullStream(t *testing.T) {
	inner := &scriptedRunner{
		events: []executor.AgentEvent{
			{Type: executor.EventFinalResponse, Content: "all good"},
			{Type: executor.EventDone},
		},
		drained: make(chan struct{}),
	}
	runner := NewPublishingRunner(inner, nil, nil)

	ch, err := runner.Run(context.Background(), "s1", "hello", nil)
	require.NoError(t, err)

	var got []executor.AgentEvent
	for ev := range ch {
		got = append(got, ev)
	}
	require.Len(t, got, 2)
	assert.Equal(t, executor.EventFinalResponse, got[0].Type)
	assert.Equal(t, executor.EventDone, got[1].Type)
}

func TestPublishingRunnerReleasesAbandonedConsumer(t *testing.T) {
	inner := &scriptedRunner{
		events: []executor.AgentEvent{
			{Type: executor.EventThought, Content: "step 1"},
			{Type: executor.EventThought, Content: "step 2"},
			{Type: executor.EventFinalResponse, Content: "done anyway"},
			{Type: executor.EventDone},
		},
		drained: make(chan struct{}),
	}
	runner := NewPublishingRunner(inner, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := runner.Run(ctx, "s1", "hello", nil)
	require.NoError(t, err)

	// Read one event, then walk away mid-stream.
	<-ch
	cancel()

	// The inner run must still drain to completion rather than park on the
	// abandoned output channel.
	select {
	case <-inner.drained:
	case <-time.After(2 * time.Second):
		t.Fatal("inner event stream was never drained after the consumer left")
	}
}
