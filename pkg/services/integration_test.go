package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nocforge/nocforge/pkg/agent"
	"github.com/nocforge/nocforge/pkg/agent/executor"
	"github.com/nocforge/nocforge/pkg/llm"
	"github.com/nocforge/nocforge/pkg/tools"
	"github.com/nocforge/nocforge/pkg/workflow"
)

// TestExecutorStoreRoundTrip drives the full executor persistence surface
// through the ent-backed adapter: conversation append/replay, action audit
// and the durable approval row.
func TestExecutorStoreRoundTrip(t *testing.T) {
	client := setupClient(t)
	ctx := context.Background()

	sessions := NewSessionService(client)
	store := NewExecutorStore(
		sessions,
		NewMessageService(client),
		NewActionService(client),
		NewApprovalService(client),
	)

	sess, err := sessions.CreateSession(ctx, agent.TypeBGP, "handoff", "parent-1")
	require.NoError(t, err)

	got, err := store.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, executor.SessionActive, got.Status)
	assert.Equal(t, "handoff", got.TriggerType)

	err = store.AppendMessages(ctx, sess.ID, []executor.StoredMessage{
		{Message: llm.Message{Role: llm.RoleUser, Content: "check r1"}},
		{Message: llm.Message{Role: llm.RoleAssistant, ToolCalls: []llm.ToolCall{
			{ID: "call_1", Name: "run_show_command", Arguments: map[string]any{"device_name": "r1"}},
		}}},
		{
			Message:  llm.Message{Role: llm.RoleTool, Content: `{"success":true}`, ToolCallID: "call_1"},
			ToolName: "run_show_command",
		},
	})
	require.NoError(t, err)

	replayed, err := store.ListMessages(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, replayed, 3)
	assert.Equal(t, llm.RoleAssistant, replayed[1].Role)
	require.Len(t, replayed[1].ToolCalls, 1)
	assert.Equal(t, "call_1", replayed[1].ToolCalls[0].ID)
	assert.Equal(t, map[string]any{"device_name": "r1"}, replayed[1].ToolCalls[0].Arguments)
	assert.Equal(t, "call_1", replayed[2].ToolCallID)
	assert.Equal(t, "run_show_command", replayed[2].ToolName)

	actionID := uuid.NewString()
	err = store.RecordAction(ctx, &executor.ActionRecord{
		ID:         actionID,
		SessionID:  sess.ID,
		ToolCallID: "call_1",
		ToolName:   "run_show_command",
		Args:       map[string]any{"device_name": "r1"},
		Result:     &tools.Result{Success: true, Data: "neighbor up"},
		Success:    true,
		RiskLevel:  "low",
		Duration:   50 * time.Millisecond,
	})
	require.NoError(t, err)

	approvalID := uuid.NewString()
	err = store.CreateApproval(ctx, &executor.ApprovalRecord{
		ID:        approvalID,
		SessionID: sess.ID,
		ActionID:  actionID,
		ToolName:  "push_device_config",
		Args:      map[string]any{"device_name": "r1"},
		RiskLevel: "high",
		ExpiresAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	approval, err := store.GetApproval(ctx, approvalID)
	require.NoError(t, err)
	assert.Equal(t, executor.ApprovalPending, approval.Status)
	assert.Equal(t, actionID, approval.ActionID)
	assert.Equal(t, map[string]any{"device_name": "r1"}, approval.Args)

	require.NoError(t, store.SetSessionStatus(ctx, sess.ID, executor.SessionAwaitingApproval, ""))
	got, err = store.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, executor.SessionAwaitingApproval, got.Status)
}

func TestIncidentServiceImplementsBackend(t *testing.T) {
	var _ tools.IncidentBackend = (*IncidentService)(nil)

	client := setupClient(t)
	svc := NewIncidentService(client)
	ctx := context.Background()

	record, err := svc.CreateIncident(ctx, tools.IncidentRequest{
		Title:           "BGP session down on r1",
		Description:     "Neighbor 10.0.0.2 flapping",
		Severity:        "critical",
		Source:          "agent",
		AffectedDevices: []string{"r1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "open", record.Status)

	updated, err := svc.UpdateIncident(ctx, record.ID, tools.IncidentUpdate{
		Status: "mitigated",
		Note:   "Interface bounced, session re-established.",
	})
	require.NoError(t, err)
	assert.Equal(t, "mitigated", updated.Status)

	stored, err := svc.GetIncident(ctx, record.ID)
	require.NoError(t, err)
	assert.Contains(t, stored.Description, "flapping")
	assert.Contains(t, stored.Description, "re-established")

	_, err = svc.UpdateIncident(ctx, "missing", tools.IncidentUpdate{Status: "closed"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWorkflowServiceAuditTrail(t *testing.T) {
	var _ workflow.Audit = (*WorkflowService)(nil)

	client := setupClient(t)
	svc := NewWorkflowService(client)
	ctx := context.Background()
	alert := createTestAlert(t, client, "isis adjacency flap")

	wfID, err := svc.StartWorkflow(ctx, alert.ID)
	require.NoError(t, err)

	err = svc.RecordStep(ctx, wfID, &workflow.Step{
		Phase:     workflow.PhaseTriage,
		AgentType: agent.TypeTriage,
		SessionID: "sess-1",
		Outcome:   "handoff",
		Summary:   "Looks like an ISIS problem.",
		Usage:     llm.Usage{InputTokens: 100, OutputTokens: 20},
	})
	require.NoError(t, err)
	err = svc.RecordStep(ctx, wfID, &workflow.Step{
		Phase:     workflow.PhaseSpecialist,
		AgentType: agent.TypeISIS,
		SessionID: "sess-2",
		Outcome:   workflow.OutcomeResolved,
		Usage:     llm.Usage{InputTokens: 300, OutputTokens: 80},
	})
	require.NoError(t, err)

	err = svc.CompleteWorkflow(ctx, wfID, workflow.OutcomeResolved, "adjacency restored",
		llm.Usage{InputTokens: 400, OutputTokens: 100}, 0.0042)
	require.NoError(t, err)

	logs, err := svc.GetWorkflowsForAlert(ctx, alert.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)

	wf := logs[0]
	assert.Equal(t, "completed", wf.Status)
	assert.Equal(t, workflow.OutcomeResolved, wf.Outcome)
	assert.Equal(t, 400, wf.TotalInputTokens)
	assert.InDelta(t, 0.0042, wf.EstimatedCost, 1e-9)
	assert.NotNil(t, wf.CompletedAt)

	require.Len(t, wf.Edges.Steps, 2)
	assert.Equal(t, 0, wf.Edges.Steps[0].StepIndex)
	assert.Equal(t, workflow.PhaseTriage, wf.Edges.Steps[0].Phase)
	assert.Equal(t, 1, wf.Edges.Steps[1].StepIndex)
}

func TestCompleteWorkflowErrorOutcomeSetsErrorStatus(t *testing.T) {
	client := setupClient(t)
	svc := NewWorkflowService(client)
	ctx := context.Background()
	alert := createTestAlert(t, client, "unreachable device")

	wfID, err := svc.StartWorkflow(ctx, alert.ID)
	require.NoError(t, err)

	require.NoError(t, svc.CompleteWorkflow(ctx, wfID, workflow.OutcomeError, "llm unavailable", llm.Usage{}, 0))

	logs, err := svc.GetWorkflowsForAlert(ctx, alert.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "error", logs[0].Status)
}
