package workflow

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nocforge/nocforge/pkg/agent"
	"github.com/nocforge/nocforge/pkg/agent/executor"
	"github.com/nocforge/nocforge/pkg/llm"
	"github.com/nocforge/nocforge/pkg/tools"
)

type fakeAlerts struct {
	alerts       map[string]*Alert
	statusTrail  []string
	acknowledged bool
	resolved     bool
	linkedTo     string
}

func (f *fakeAlerts) GetAlert(ctx context.Context, id string) (*Alert, error) {
	a, ok := f.alerts[id]
	if !ok {
		return nil, fmt.Errorf("alert %s not found", id)
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAlerts) UpdateAlertStatus(ctx context.Context, id, status string) error {
	f.statusTrail = append(f.statusTrail, status)
	f.alerts[id].Status = status
	return nil
}

func (f *fakeAlerts) AcknowledgeAlert(ctx context.Context, id string) error {
	f.acknowledged = true
	return nil
}

func (f *fakeAlerts) ResolveAlert(ctx context.Context, id string) error {
	f.resolved = true
	return nil
}

func (f *fakeAlerts) LinkIncident(ctx context.Context, alertID, incidentID string) error {
	f.linkedTo = incidentID
	f.alerts[alertID].IncidentID = incidentID
	return nil
}

type sessionInfo struct {
	agentType   string
	triggerType string
	triggerID   string
}

type fakeSessions struct {
	created      []string // agent types, in creation order
	descriptions map[string]sessionInfo
}

func (f *fakeSessions) CreateSession(ctx context.Context, agentType, triggerType, triggerID string) (string, error) {
	f.created = append(f.created, agentType)
	id := fmt.Sprintf("sess-%d-%s", len(f.created), agentType)
	f.descriptions[id] = sessionInfo{agentType: agentType, triggerType: triggerType, triggerID: triggerID}
	return id, nil
}

func (f *fakeSessions) DescribeSession(ctx context.Context, sessionID string) (string, string, string, error) {
	info, ok := f.descriptions[sessionID]
	if !ok {
		return "", "", "", fmt.Errorf("session %s not found", sessionID)
	}
	return info.agentType, info.triggerType, info.triggerID, nil
}

type fakeIncidents struct {
	created []tools.IncidentRequest
}

func (f *fakeIncidents) CreateIncident(ctx context.Context, req tools.IncidentRequest) (*tools.IncidentRecord, error) {
	f.created = append(f.created, req)
	return &tools.IncidentRecord{ID: fmt.Sprintf("inc-%d", len(f.created)), Title: req.Title, Severity: req.Severity, Status: "open"}, nil
}

type fakeAudit struct {
	steps     []*Step
	completed bool
	outcome   string
	cost      float64
	open      string
}

func (f *fakeAudit) StartWorkflow(ctx context.Context, alertID string) (string, error) {
	f.open = "wf-1"
	return "wf-1", nil
}

func (f *fakeAudit) OpenWorkflow(ctx context.Context, alertID string) (string, error) {
	if f.open == "" || f.completed {
		return "", fmt.Errorf("no running workflow for alert %s", alertID)
	}
	return f.open, nil
}

func (f *fakeAudit) RecordStep(ctx context.Context, workflowID string, step *Step) error {
	f.steps = append(f.steps, step)
	return nil
}

func (f *fakeAudit) CompleteWorkflow(ctx context.Context, workflowID, outcome, summary string, usage llm.Usage, cost float64) error {
	f.completed = true
	f.outcome = outcome
	f.cost = cost
	return nil
}

// scriptedRunner returns one canned event sequence per Run or resume call.
type scriptedRunner struct {
	scripts [][]executor.AgentEvent
	calls   int
	resumed []string
}

func (s *scriptedRunner) Run(ctx context.Context, sessionID, userInput string, runCtx *executor.RunContext) (<-chan executor.AgentEvent, error) {
	script := s.scripts[s.calls]
	s.calls++
	ch := make(chan executor.AgentEvent, len(script))
	for _, ev := range script {
		ch <- ev
	}
	close(ch)
	return ch, nil
}

func (s *scriptedRunner) ResumeWithApproval(ctx context.Context, approvalID string, approved bool, approver string) (<-chan executor.AgentEvent, error) {
	s.resumed = append(s.resumed, approvalID)
	return s.Run(ctx, "", "", nil)
}

func (s *scriptedRunner) Model() string { return "gpt-4o-mini" }

type fakeApprovals struct {
	records map[string]*executor.ApprovalRecord
}

func (f *fakeApprovals) GetApproval(ctx context.Context, id string) (*executor.ApprovalRecord, error) {
	rec, ok := f.records[id]
	if !ok {
		return nil, fmt.Errorf("approval %s not found", id)
	}
	return rec, nil
}

func finalRun(text string) []executor.AgentEvent {
	return []executor.AgentEvent{
		{Type: executor.EventFinalResponse, Content: text},
		{Type: executor.EventDone, Data: map[string]any{"input_tokens": 100, "output_tokens": 50}},
	}
}

func handoffRun(target, summary string) []executor.AgentEvent {
	return []executor.AgentEvent{
		{Type: executor.EventHandoff, Data: map[string]any{"target_agent": target, "summary": summary}},
		{Type: executor.EventDone, Data: map[string]any{"input_tokens": 100, "output_tokens": 50}},
	}
}

type testEngine struct {
	engine    *Engine
	alerts    *fakeAlerts
	sessions  *fakeSessions
	incidents *fakeIncidents
	audit     *fakeAudit
	runner    *scriptedRunner
	approvals *fakeApprovals
}

func newTestEngine(t *testing.T, alert *Alert, scripts ...[]executor.AgentEvent) *testEngine {
	t.Helper()
	alerts := &fakeAlerts{alerts: map[string]*Alert{alert.ID: alert}}
	sessions := &fakeSessions{descriptions: map[string]sessionInfo{}}
	incidents := &fakeIncidents{}
	audit := &fakeAudit{}
	runner := &scriptedRunner{scripts: scripts}
	approvals := &fakeApprovals{records: map[string]*executor.ApprovalRecord{}}
	return &testEngine{
		engine:    NewEngine(alerts, sessions, incidents, audit, runner, approvals),
		alerts:    alerts,
		sessions:  sessions,
		incidents: incidents,
		audit:     audit,
		runner:    runner,
		approvals: approvals,
	}
}

func bgpAlert() *Alert {
	return &Alert{
		ID:          "a1",
		Title:       "BGP neighbor down on core-rtr-01",
		Severity:    "major",
		Source:      "snmp",
		Device:      "core-rtr-01",
		Description: "bgp neighbor 10.0.0.2 transitioned to idle",
		Status:      "new",
	}
}

func TestProcessAlertNoiseVerdict(t *testing.T) {
	te := newTestEngine(t, bgpAlert(),
		finalRun("This is a false positive; the neighbor recovered before triage."),
	)

	result, err := te.engine.ProcessAlert(context.Background(), "a1")
	require.NoError(t, err)

	assert.Equal(t, OutcomeNoise, result.Outcome)
	assert.Equal(t, []string{StatusProcessing, OutcomeNoise}, te.alerts.statusTrail)
	assert.True(t, te.alerts.acknowledged)
	assert.Equal(t, []string{agent.TypeTriage}, te.sessions.created)
	assert.Equal(t, OutcomeNoise, te.audit.outcome)
}

func TestProcessAlertTriagedWithoutHandoff(t *testing.T) {
	te := newTestEngine(t, bgpAlert(),
		finalRun("Interface errors on Gi0/1; monitoring for recurrence."),
	)

	result, err := te.engine.ProcessAlert(context.Background(), "a1")
	require.NoError(t, err)

	assert.Equal(t, OutcomeTriaged, result.Outcome)
}

func TestProcessAlertHandoffToSpecialistResolved(t *testing.T) {
	te := newTestEngine(t, bgpAlert(),
		handoffRun("bgp", "neighbor 10.0.0.2 flapping, looks like an MTU problem"),
		finalRun("Cleared the session after fixing the MTU; the issue has been resolved."),
	)

	result, err := te.engine.ProcessAlert(context.Background(), "a1")
	require.NoError(t, err)

	assert.Equal(t, OutcomeResolved, result.Outcome)
	assert.Equal(t, []string{agent.TypeTriage, agent.TypeBGP}, te.sessions.created)
	assert.True(t, te.alerts.resolved)
	assert.Equal(t, "bgp", result.SpecialistType)

	// Both phases audited with token totals folded into the workflow.
	require.Len(t, te.audit.steps, 2)
	assert.Equal(t, PhaseTriage, te.audit.steps[0].Phase)
	assert.Equal(t, PhaseSpecialist, te.audit.steps[1].Phase)
	assert.Equal(t, 200, result.Usage.InputTokens)
	assert.Greater(t, result.EstimatedCost, 0.0)
}

func TestProcessAlertUnknownSpecialistFallsBackToGeneral(t *testing.T) {
	te := newTestEngine(t, bgpAlert(),
		handoffRun("quantum-networking", "no idea what this is"),
		finalRun("Investigated; nothing conclusive."),
	)

	result, err := te.engine.ProcessAlert(context.Background(), "a1")
	require.NoError(t, err)

	assert.Equal(t, OutcomeInvestigated, result.Outcome)
	assert.Equal(t, []string{agent.TypeTriage, agent.TypeGeneral}, te.sessions.created)
	assert.Equal(t, agent.TypeGeneral, result.SpecialistType)
}

func TestProcessAlertSpecialistCreatesIncident(t *testing.T) {
	te := newTestEngine(t, bgpAlert(),
		handoffRun("bgp", "hard neighbor failure"),
		[]executor.AgentEvent{
			{Type: executor.EventToolResult, ToolName: "create_incident", Data: map[string]any{
				"success": true,
				"result":  &tools.IncidentRecord{ID: "inc-42", Title: "BGP outage", Severity: "major", Status: "open"},
			}},
			{Type: executor.EventFinalResponse, Content: "Opened an incident for the outage."},
			{Type: executor.EventDone, Data: map[string]any{"input_tokens": 100, "output_tokens": 50}},
		},
	)

	result, err := te.engine.ProcessAlert(context.Background(), "a1")
	require.NoError(t, err)

	assert.Equal(t, OutcomeIncidentCreated, result.Outcome)
	assert.Equal(t, "inc-42", result.IncidentID)
	assert.Equal(t, "inc-42", te.alerts.linkedTo)
	assert.Empty(t, te.incidents.created, "engine must not create a second incident")
}

func TestProcessAlertTriageEscalationCreatesIncidentWhenMissing(t *testing.T) {
	te := newTestEngine(t, bgpAlert(),
		[]executor.AgentEvent{
			{Type: executor.EventEscalation, ToolName: "escalate_to_human", Data: map[string]any{
				"success": true, "reason": "flapping across both core routers",
			}},
			{Type: executor.EventToolResult, ToolName: "escalate_to_human", Data: map[string]any{"success": true}},
			{Type: executor.EventFinalResponse, Content: "Escalated to the on-call engineer."},
			{Type: executor.EventDone, Data: map[string]any{"input_tokens": 100, "output_tokens": 50}},
		},
	)

	result, err := te.engine.ProcessAlert(context.Background(), "a1")
	require.NoError(t, err)

	assert.Equal(t, OutcomeEscalated, result.Outcome)
	require.Len(t, te.incidents.created, 1)
	assert.Contains(t, te.incidents.created[0].Title, "Escalated:")
	assert.Contains(t, te.incidents.created[0].Description, "flapping across both core routers")
	assert.Equal(t, result.IncidentID, te.alerts.linkedTo)
}

func TestProcessAlertAwaitingApprovalLeavesAlertProcessing(t *testing.T) {
	te := newTestEngine(t, bgpAlert(),
		handoffRun("bgp", "needs a config change"),
		[]executor.AgentEvent{
			{Type: executor.EventApprovalRequired, ToolName: "push_device_config", Data: map[string]any{"approval_id": "ap-1"}},
			{Type: executor.EventDone, Data: map[string]any{"input_tokens": 100, "output_tokens": 50}},
		},
	)

	result, err := te.engine.ProcessAlert(context.Background(), "a1")
	require.NoError(t, err)

	assert.Equal(t, OutcomeAwaitingApproval, result.Outcome)
	assert.Equal(t, []string{StatusProcessing}, te.alerts.statusTrail,
		"alert must stay in processing while the approval is pending")
	assert.False(t, te.audit.completed)
}

func TestProcessAlertSkipAI(t *testing.T) {
	alert := bgpAlert()
	alert.SkipAI = true
	te := newTestEngine(t, alert)

	result, err := te.engine.ProcessAlert(context.Background(), "a1")
	require.NoError(t, err)

	assert.Equal(t, OutcomeSkipped, result.Outcome)
	assert.Empty(t, te.sessions.created)
	assert.Empty(t, te.alerts.statusTrail)
}

func TestProcessAlertTriageErrorMarksAlert(t *testing.T) {
	te := newTestEngine(t, bgpAlert(),
		[]executor.AgentEvent{
			{Type: executor.EventError, Content: "maximum iterations reached"},
			{Type: executor.EventDone, Data: map[string]any{"input_tokens": 100, "output_tokens": 50}},
		},
	)

	result, err := te.engine.ProcessAlert(context.Background(), "a1")
	require.NoError(t, err)

	assert.Equal(t, OutcomeError, result.Outcome)
	assert.Equal(t, []string{StatusProcessing, OutcomeError}, te.alerts.statusTrail)
}

// pausedAlertEngine seeds the state left behind by a run that stopped on an
// approval gate: alert in processing, an open workflow log, a paused session
// and its pending approval record.
func pausedAlertEngine(t *testing.T, agentType string, scripts ...[]executor.AgentEvent) *testEngine {
	t.Helper()
	alert := bgpAlert()
	alert.Status = StatusProcessing
	te := newTestEngine(t, alert, scripts...)
	te.audit.open = "wf-1"
	te.sessions.descriptions["sess-paused"] = sessionInfo{
		agentType:   agentType,
		triggerType: "alert",
		triggerID:   alert.ID,
	}
	te.approvals.records["ap-1"] = &executor.ApprovalRecord{
		ID:        "ap-1",
		SessionID: "sess-paused",
		ToolName:  "push_device_config",
	}
	return te
}

func TestResumeAfterDecisionResolvesAlert(t *testing.T) {
	te := pausedAlertEngine(t, agent.TypeBGP,
		finalRun("Config applied; the issue has been resolved."),
	)

	result, err := te.engine.ResumeAfterDecision(context.Background(), "ap-1", true, "oncall-engineer")
	require.NoError(t, err)

	assert.Equal(t, []string{"ap-1"}, te.runner.resumed)
	assert.Equal(t, OutcomeResolved, result.Outcome)
	assert.True(t, te.alerts.resolved)
	assert.True(t, te.alerts.acknowledged)
	assert.Equal(t, []string{OutcomeResolved}, te.alerts.statusTrail)

	// The resumed phase lands in the workflow log that the pause left open.
	require.Len(t, te.audit.steps, 1)
	assert.Equal(t, PhaseSpecialist, te.audit.steps[0].Phase)
	assert.Equal(t, agent.TypeBGP, te.audit.steps[0].AgentType)
	assert.True(t, te.audit.completed)
	assert.Equal(t, OutcomeResolved, te.audit.outcome)
}

func TestResumeAfterDecisionRejectedStillSettles(t *testing.T) {
	te := pausedAlertEngine(t, agent.TypeBGP,
		finalRun("Not applying the change; documented the findings for a human."),
	)

	result, err := te.engine.ResumeAfterDecision(context.Background(), "ap-1", false, "noc-lead")
	require.NoError(t, err)

	assert.Equal(t, OutcomeInvestigated, result.Outcome)
	assert.False(t, te.alerts.resolved)
	assert.Equal(t, []string{OutcomeInvestigated}, te.alerts.statusTrail)
	assert.True(t, te.audit.completed)
}

func TestResumeAfterDecisionTriageNoise(t *testing.T) {
	te := pausedAlertEngine(t, agent.TypeTriage,
		finalRun("After checking, this is a false positive."),
	)

	result, err := te.engine.ResumeAfterDecision(context.Background(), "ap-1", true, "oncall-engineer")
	require.NoError(t, err)

	assert.Equal(t, OutcomeNoise, result.Outcome)
	require.Len(t, te.audit.steps, 1)
	assert.Equal(t, PhaseTriage, te.audit.steps[0].Phase)
}

func TestResumeAfterDecisionSecondGateKeepsAlertOpen(t *testing.T) {
	te := pausedAlertEngine(t, agent.TypeBGP,
		[]executor.AgentEvent{
			{Type: executor.EventApprovalRequired, ToolName: "push_device_config", Data: map[string]any{"approval_id": "ap-2"}},
			{Type: executor.EventDone, Data: map[string]any{"input_tokens": 100, "output_tokens": 50}},
		},
	)

	result, err := te.engine.ResumeAfterDecision(context.Background(), "ap-1", true, "oncall-engineer")
	require.NoError(t, err)

	assert.Equal(t, OutcomeAwaitingApproval, result.Outcome)
	assert.Empty(t, te.alerts.statusTrail, "alert stays processing until the next decision")
	assert.False(t, te.audit.completed)
}

func TestResumeAfterDecisionChatSessionSkipsAlertSettling(t *testing.T) {
	te := newTestEngine(t, bgpAlert(),
		finalRun("Here is what I found."),
	)
	te.sessions.descriptions["sess-chat"] = sessionInfo{agentType: agent.TypeGeneral, triggerType: "chat"}
	te.approvals.records["ap-9"] = &executor.ApprovalRecord{ID: "ap-9", SessionID: "sess-chat"}

	result, err := te.engine.ResumeAfterDecision(context.Background(), "ap-9", true, "chat")
	require.NoError(t, err)

	assert.Equal(t, "completed", result.Outcome)
	assert.Empty(t, te.alerts.statusTrail)
	assert.False(t, te.audit.completed)
}
