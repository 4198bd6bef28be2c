package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nocforge/nocforge/ent"
	entworkflowlog "github.com/nocforge/nocforge/ent/workflowlog"
	"github.com/nocforge/nocforge/ent/workflowstep"
	"github.com/nocforge/nocforge/pkg/llm"
	"github.com/nocforge/nocforge/pkg/workflow"
)

// WorkflowService records the per-alert audit trail. It implements
// workflow.Audit.
type WorkflowService struct {
	client *ent.Client
}

// NewWorkflowService creates a new WorkflowService.
func NewWorkflowService(client *ent.Client) *WorkflowService {
	return &WorkflowService{client: client}
}

// StartWorkflow opens a running workflow log for the alert and returns its ID.
func (s *WorkflowService) StartWorkflow(httpCtx context.Context, alertID string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()

	wf, err := s.client.WorkflowLog.Create().
		SetID(uuid.NewString()).
		SetAlertID(alertID).
		SetStatus("running").
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to start workflow: %w", err)
	}
	return wf.ID, nil
}

// RecordStep appends one phase record to the workflow.
func (s *WorkflowService) RecordStep(httpCtx context.Context, workflowID string, step *workflow.Step) error {
	ctx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()

	index, err := s.client.WorkflowStep.Query().
		Where(workflowstep.WorkflowIDEQ(workflowID)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count workflow steps: %w", err)
	}

	builder := s.client.WorkflowStep.Create().
		SetID(uuid.NewString()).
		SetWorkflowID(workflowID).
		SetStepIndex(index).
		SetPhase(step.Phase).
		SetAgentType(step.AgentType).
		SetInputTokens(step.Usage.InputTokens).
		SetOutputTokens(step.Usage.OutputTokens)
	if step.SessionID != "" {
		builder.SetSessionID(step.SessionID)
	}
	if step.Outcome != "" {
		builder.SetOutcome(step.Outcome)
	}
	if step.Summary != "" {
		builder.SetSummary(step.Summary)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to record workflow step: %w", err)
	}
	return nil
}

// CompleteWorkflow closes the workflow log with its final disposition and
// accumulated token totals.
func (s *WorkflowService) CompleteWorkflow(httpCtx context.Context, workflowID, outcome, summary string, usage llm.Usage, estimatedCost float64) error {
	ctx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()

	status := "completed"
	if outcome == workflow.OutcomeError {
		status = "error"
	}

	builder := s.client.WorkflowLog.UpdateOneID(workflowID).
		SetStatus(status).
		SetOutcome(outcome).
		SetTotalInputTokens(usage.InputTokens).
		SetTotalOutputTokens(usage.OutputTokens).
		SetEstimatedCost(estimatedCost).
		SetCompletedAt(time.Now().UTC())
	if summary != "" {
		builder.SetSummary(summary)
	}

	if _, err := builder.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete workflow: %w", err)
	}
	return nil
}

// OpenWorkflow returns the id of the alert's newest still-running workflow
// log, typically one left open by an approval pause.
func (s *WorkflowService) OpenWorkflow(ctx context.Context, alertID string) (string, error) {
	wf, err := s.client.WorkflowLog.Query().
		Where(
			entworkflowlog.AlertIDEQ(alertID),
			entworkflowlog.StatusEQ("running"),
		).
		Order(ent.Desc(entworkflowlog.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to find open workflow: %w", err)
	}
	return wf.ID, nil
}

// GetWorkflowsForAlert returns an alert's workflow logs with their steps,
// newest-first.
func (s *WorkflowService) GetWorkflowsForAlert(ctx context.Context, alertID string) ([]*ent.WorkflowLog, error) {
	logs, err := s.client.WorkflowLog.Query().
		Where(entworkflowlog.AlertIDEQ(alertID)).
		WithSteps(func(q *ent.WorkflowStepQuery) {
			q.Order(ent.Asc(workflowstep.FieldStepIndex))
		}).
		Order(ent.Desc(entworkflowlog.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get workflows for alert: %w", err)
	}
	return logs, nil
}
