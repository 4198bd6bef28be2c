package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/nocforge/nocforge/pkg/agent/executor"
)

// AgentRunner is the slice of the executor the bridge decorates: the run
// entry point plus the approval resume path.
type AgentRunner interface {
	Run(ctx context.Context, sessionID, userInput string, runCtx *executor.RunContext) (<-chan executor.AgentEvent, error)
	ResumeWithApproval(ctx context.Context, approvalID string, approved bool, approver string) (<-chan executor.AgentEvent, error)
	Model() string
}

// PublishingRunner decorates an AgentRunner so every executor event is also
// published to the session's WebSocket channel. The inner channel is
// forwarded untouched; publishing failures are logged and never block the
// run.
type PublishingRunner struct {
	inner     AgentRunner
	approvals executor.ApprovalStore
	publisher *EventPublisher
}

// NewPublishingRunner wraps a runner with event publishing. The approval
// store resolves which session a resumed run belongs to.
func NewPublishingRunner(inner AgentRunner, approvals executor.ApprovalStore, publisher *EventPublisher) *PublishingRunner {
	return &PublishingRunner{inner: inner, approvals: approvals, publisher: publisher}
}

func (r *PublishingRunner) Model() string {
	return r.inner.Model()
}

// Run starts the inner runner and tees its event stream through the
// publisher.
func (r *PublishingRunner) Run(ctx context.Context, sessionID, userInput string, runCtx *executor.RunContext) (<-chan executor.AgentEvent, error) {
	in, err := r.inner.Run(ctx, sessionID, userInput, runCtx)
	if err != nil {
		return nil, err
	}
	return r.pump(ctx, sessionID, in), nil
}

// ResumeWithApproval resumes the inner executor and tees the stream the same
// way Run does. Events from a resumed run land on the paused session's
// channel.
func (r *PublishingRunner) ResumeWithApproval(ctx context.Context, approvalID string, approved bool, approver string) (<-chan executor.AgentEvent, error) {
	approval, err := r.approvals.GetApproval(ctx, approvalID)
	if err != nil {
		return nil, err
	}

	in, err := r.inner.ResumeWithApproval(ctx, approvalID, approved, approver)
	if err != nil {
		return nil, err
	}
	return r.pump(ctx, approval.SessionID, in), nil
}

func (r *PublishingRunner) pump(ctx context.Context, sessionID string, in <-chan executor.AgentEvent) <-chan executor.AgentEvent {
	out := make(chan executor.AgentEvent)
	go func() {
		defer close(out)
		for ev := range in {
			r.publish(sessionID, ev)
			select {
			case out <- ev:
			case <-ctx.Done():
				// The consumer is gone. Keep publishing the rest of the
				// stream so WebSocket subscribers still see the run finish,
				// then let the executor's goroutine complete.
				for ev := range in {
					r.publish(sessionID, ev)
				}
				return
			}
		}
	}()
	return out
}

func (r *PublishingRunner) publish(sessionID string, ev executor.AgentEvent) {
	if r.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := r.publisher.PublishAgentEvent(ctx, sessionID, AgentEventPayload{
		Type:      EventTypeAgentEvent,
		SessionID: sessionID,
		EventType: string(ev.Type),
		Content:   ev.Content,
		ToolName:  ev.ToolName,
		ToolArgs:  ev.ToolArgs,
		Data:      ev.Data,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		slog.Warn("Failed to publish agent event",
			"session_id", sessionID, "event_type", ev.Type, "error", err)
	}
}
