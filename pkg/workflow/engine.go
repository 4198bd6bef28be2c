// Package workflow drives an alert from ingestion to disposition: a triage
// agent run, an optional specialist run on handoff, and the audit trail
// tying both to the alert.
package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nocforge/nocforge/pkg/agent"
	"github.com/nocforge/nocforge/pkg/agent/executor"
	"github.com/nocforge/nocforge/pkg/llm"
	"github.com/nocforge/nocforge/pkg/tools"
)

// Workflow outcomes, doubling as alert statuses.
const (
	OutcomeNoise            = "noise"
	OutcomeTriaged          = "triaged"
	OutcomeEscalated        = "escalated"
	OutcomeIncidentCreated  = "incident_created"
	OutcomeResolved         = "resolved"
	OutcomeInvestigated     = "investigated"
	OutcomeError            = "error"
	OutcomeAwaitingApproval = "awaiting_approval"
	OutcomeSkipped          = "skipped"

	StatusProcessing = "processing"
)

const (
	PhaseTriage     = "triage"
	PhaseSpecialist = "specialist"
)

// Alert is the engine's view of one alert.
type Alert struct {
	ID          string
	Title       string
	Severity    string
	Source      string
	Device      string
	Description string
	Status      string
	IncidentID  string
	SkipAI      bool
}

// Step is one recorded workflow phase.
type Step struct {
	Phase     string
	AgentType string
	SessionID string
	Outcome   string
	Summary   string
	Usage     llm.Usage
}

// Result is what ProcessAlert reports back to the queue worker.
type Result struct {
	Outcome             string
	TriageSessionID     string
	SpecialistSessionID string
	SpecialistType      string
	IncidentID          string
	Summary             string
	Usage               llm.Usage
	EstimatedCost       float64
}

// The engine's collaborators, defined here and implemented by the services
// and executor packages.

type AlertStore interface {
	GetAlert(ctx context.Context, id string) (*Alert, error)
	UpdateAlertStatus(ctx context.Context, id, status string) error
	AcknowledgeAlert(ctx context.Context, id string) error
	ResolveAlert(ctx context.Context, id string) error
	LinkIncident(ctx context.Context, alertID, incidentID string) error
}

type SessionFactory interface {
	CreateSession(ctx context.Context, agentType, triggerType, triggerID string) (string, error)
	// DescribeSession reports which agent a session runs and what triggered
	// it, so a resumed session can be routed back to its alert.
	DescribeSession(ctx context.Context, sessionID string) (agentType, triggerType, triggerID string, err error)
}

// ApprovalFinder resolves an approval id to its session.
type ApprovalFinder interface {
	GetApproval(ctx context.Context, id string) (*executor.ApprovalRecord, error)
}

type IncidentCreator interface {
	CreateIncident(ctx context.Context, req tools.IncidentRequest) (*tools.IncidentRecord, error)
}

type Audit interface {
	StartWorkflow(ctx context.Context, alertID string) (string, error)
	RecordStep(ctx context.Context, workflowID string, step *Step) error
	CompleteWorkflow(ctx context.Context, workflowID, outcome, summary string, usage llm.Usage, estimatedCost float64) error
	// OpenWorkflow finds the alert's still-running workflow log, left open
	// by an approval pause.
	OpenWorkflow(ctx context.Context, alertID string) (string, error)
}

// Runner is the slice of the executor the engine drives.
type Runner interface {
	Run(ctx context.Context, sessionID, userInput string, runCtx *executor.RunContext) (<-chan executor.AgentEvent, error)
	ResumeWithApproval(ctx context.Context, approvalID string, approved bool, approver string) (<-chan executor.AgentEvent, error)
	Model() string
}

// Engine runs the alert-to-resolution workflow.
type Engine struct {
	alerts    AlertStore
	sessions  SessionFactory
	incidents IncidentCreator
	audit     Audit
	runner    Runner
	approvals ApprovalFinder
}

func NewEngine(alerts AlertStore, sessions SessionFactory, incidents IncidentCreator, audit Audit, runner Runner, approvals ApprovalFinder) *Engine {
	return &Engine{
		alerts:    alerts,
		sessions:  sessions,
		incidents: incidents,
		audit:     audit,
		runner:    runner,
		approvals: approvals,
	}
}

// ProcessAlert runs the triage phase and, on handoff, the specialist phase,
// then writes the final disposition to the alert and the audit log.
func (e *Engine) ProcessAlert(ctx context.Context, alertID string) (*Result, error) {
	alert, err := e.alerts.GetAlert(ctx, alertID)
	if err != nil {
		return nil, fmt.Errorf("failed to load alert %s: %w", alertID, err)
	}
	if alert.SkipAI {
		return &Result{Outcome: OutcomeSkipped}, nil
	}

	if err := e.alerts.UpdateAlertStatus(ctx, alertID, StatusProcessing); err != nil {
		return nil, fmt.Errorf("failed to mark alert processing: %w", err)
	}
	workflowID, err := e.audit.StartWorkflow(ctx, alertID)
	if err != nil {
		return nil, fmt.Errorf("failed to start workflow log: %w", err)
	}

	result := &Result{}

	triage, err := e.runPhase(ctx, workflowID, PhaseTriage, agent.TypeTriage, alert, triageUserTurn(alert))
	if err != nil {
		e.finish(ctx, workflowID, alertID, result, OutcomeError, err.Error())
		return result, err
	}
	result.TriageSessionID = triage.sessionID
	result.Usage = addUsage(result.Usage, triage.usage)
	result.Summary = triage.final

	switch {
	case triage.errored:
		e.finish(ctx, workflowID, alertID, result, OutcomeError, triage.errMsg)
		return result, nil
	case triage.awaitingApproval:
		// Alert stays in processing; the approval decision resumes it.
		result.Outcome = OutcomeAwaitingApproval
		return result, nil
	case triage.handedOff:
		return e.runSpecialistPhase(ctx, workflowID, alert, triage, result)
	case triage.escalated:
		e.ensureIncident(ctx, alert, triage, result)
		e.ack(ctx, alertID)
		e.finish(ctx, workflowID, alertID, result, OutcomeEscalated, triage.final)
		return result, nil
	case IsNoiseVerdict(triage.final):
		e.ack(ctx, alertID)
		e.finish(ctx, workflowID, alertID, result, OutcomeNoise, triage.final)
		return result, nil
	default:
		e.ack(ctx, alertID)
		e.finish(ctx, workflowID, alertID, result, OutcomeTriaged, triage.final)
		return result, nil
	}
}

func (e *Engine) runSpecialistPhase(ctx context.Context, workflowID string, alert *Alert, triage *phaseResult, result *Result) (*Result, error) {
	target := strings.ToLower(triage.handoffTarget)
	if !agent.IsKnownType(target) {
		slog.Warn("handoff targets unknown agent type, falling back to general",
			"alert_id", alert.ID, "target", target)
		target = agent.TypeGeneral
	}
	result.SpecialistType = target

	specialist, err := e.runPhase(ctx, workflowID, PhaseSpecialist, target, alert, specialistUserTurn(alert, triage.handoffSummary))
	if err != nil {
		e.finish(ctx, workflowID, alert.ID, result, OutcomeError, err.Error())
		return result, err
	}
	result.SpecialistSessionID = specialist.sessionID
	result.Usage = addUsage(result.Usage, specialist.usage)
	result.Summary = specialist.final

	switch {
	case specialist.errored:
		e.finish(ctx, workflowID, alert.ID, result, OutcomeError, specialist.errMsg)
	case specialist.awaitingApproval:
		result.Outcome = OutcomeAwaitingApproval
		return result, nil
	case specialist.incidentID != "":
		result.IncidentID = specialist.incidentID
		if err := e.alerts.LinkIncident(ctx, alert.ID, specialist.incidentID); err != nil {
			slog.Error("failed to link incident to alert", "alert_id", alert.ID, "error", err)
		}
		e.ack(ctx, alert.ID)
		e.finish(ctx, workflowID, alert.ID, result, OutcomeIncidentCreated, specialist.final)
	case specialist.escalated:
		e.ensureIncident(ctx, alert, specialist, result)
		e.ack(ctx, alert.ID)
		e.finish(ctx, workflowID, alert.ID, result, OutcomeEscalated, specialist.final)
	case IsResolvedVerdict(specialist.final):
		e.ack(ctx, alert.ID)
		if err := e.alerts.ResolveAlert(ctx, alert.ID); err != nil {
			slog.Error("failed to mark alert resolved", "alert_id", alert.ID, "error", err)
		}
		e.finish(ctx, workflowID, alert.ID, result, OutcomeResolved, specialist.final)
	default:
		e.ack(ctx, alert.ID)
		e.finish(ctx, workflowID, alert.ID, result, OutcomeInvestigated, specialist.final)
	}
	return result, nil
}

// ResumeAfterDecision resumes the session paused on the given approval and,
// when the session was triggered by an alert, settles that alert's workflow
// with the resumed run's outcome: disposition written to the alert, audit
// step recorded, the open workflow log completed. A chat-triggered session
// is resumed and drained only; its events reach clients over the session's
// event channel.
func (e *Engine) ResumeAfterDecision(ctx context.Context, approvalID string, approved bool, approver string) (*Result, error) {
	approval, err := e.approvals.GetApproval(ctx, approvalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load approval %s: %w", approvalID, err)
	}
	agentType, triggerType, alertID, err := e.sessions.DescribeSession(ctx, approval.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", approval.SessionID, err)
	}

	events, err := e.runner.ResumeWithApproval(ctx, approvalID, approved, approver)
	if err != nil {
		return nil, err
	}
	res := collect(events)
	res.sessionID = approval.SessionID

	result := &Result{Summary: res.final, Usage: res.usage}
	if triggerType != "alert" || alertID == "" {
		result.Outcome = res.outcomeLabel()
		return result, nil
	}

	alert, err := e.alerts.GetAlert(ctx, alertID)
	if err != nil {
		return nil, fmt.Errorf("failed to load alert %s: %w", alertID, err)
	}

	workflowID, err := e.audit.OpenWorkflow(ctx, alertID)
	if err != nil {
		slog.Warn("no open workflow log for resumed alert, starting a new one",
			"alert_id", alertID, "error", err)
		if workflowID, err = e.audit.StartWorkflow(ctx, alertID); err != nil {
			return nil, fmt.Errorf("failed to reopen workflow log: %w", err)
		}
	}

	phase := PhaseSpecialist
	if agentType == agent.TypeTriage {
		phase = PhaseTriage
		result.TriageSessionID = approval.SessionID
	} else {
		result.SpecialistSessionID = approval.SessionID
		result.SpecialistType = agentType
	}

	if err := e.audit.RecordStep(ctx, workflowID, &Step{
		Phase:     phase,
		AgentType: agentType,
		SessionID: approval.SessionID,
		Outcome:   res.outcomeLabel(),
		Summary:   res.final,
		Usage:     res.usage,
	}); err != nil {
		slog.Error("failed to record workflow step", "workflow_id", workflowID, "phase", phase, "error", err)
	}

	switch {
	case res.errored:
		e.finish(ctx, workflowID, alertID, result, OutcomeError, res.errMsg)
	case res.awaitingApproval:
		// Another gate; the alert stays processing until the next decision.
		result.Outcome = OutcomeAwaitingApproval
	case res.handedOff:
		return e.runSpecialistPhase(ctx, workflowID, alert, res, result)
	case res.incidentID != "":
		result.IncidentID = res.incidentID
		if err := e.alerts.LinkIncident(ctx, alertID, res.incidentID); err != nil {
			slog.Error("failed to link incident to alert", "alert_id", alertID, "error", err)
		}
		e.ack(ctx, alertID)
		e.finish(ctx, workflowID, alertID, result, OutcomeIncidentCreated, res.final)
	case res.escalated:
		e.ensureIncident(ctx, alert, res, result)
		e.ack(ctx, alertID)
		e.finish(ctx, workflowID, alertID, result, OutcomeEscalated, res.final)
	case IsResolvedVerdict(res.final):
		e.ack(ctx, alertID)
		if err := e.alerts.ResolveAlert(ctx, alertID); err != nil {
			slog.Error("failed to mark alert resolved", "alert_id", alertID, "error", err)
		}
		e.finish(ctx, workflowID, alertID, result, OutcomeResolved, res.final)
	case phase == PhaseTriage && IsNoiseVerdict(res.final):
		e.ack(ctx, alertID)
		e.finish(ctx, workflowID, alertID, result, OutcomeNoise, res.final)
	case phase == PhaseTriage:
		e.ack(ctx, alertID)
		e.finish(ctx, workflowID, alertID, result, OutcomeTriaged, res.final)
	default:
		e.ack(ctx, alertID)
		e.finish(ctx, workflowID, alertID, result, OutcomeInvestigated, res.final)
	}
	return result, nil
}

// runPhase creates a session for the given agent type, runs it to a
// terminal event, and records the audit step.
func (e *Engine) runPhase(ctx context.Context, workflowID, phase, agentType string, alert *Alert, userTurn string) (*phaseResult, error) {
	sessionID, err := e.sessions.CreateSession(ctx, agentType, "alert", alert.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s session: %w", phase, err)
	}

	events, err := e.runner.Run(ctx, sessionID, userTurn, &executor.RunContext{
		ContextNote: alertContextNote(alert),
		Extra:       map[string]string{"alert_id": alert.ID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start %s run: %w", phase, err)
	}

	res := collect(events)
	res.sessionID = sessionID

	if err := e.audit.RecordStep(ctx, workflowID, &Step{
		Phase:     phase,
		AgentType: agentType,
		SessionID: sessionID,
		Outcome:   res.outcomeLabel(),
		Summary:   res.final,
		Usage:     res.usage,
	}); err != nil {
		slog.Error("failed to record workflow step", "workflow_id", workflowID, "phase", phase, "error", err)
	}
	return res, nil
}

// ensureIncident guarantees an escalated alert has an incident attached,
// creating one from the alert fields when the agent did not.
func (e *Engine) ensureIncident(ctx context.Context, alert *Alert, phase *phaseResult, result *Result) {
	if phase.incidentID != "" {
		result.IncidentID = phase.incidentID
	} else if alert.IncidentID != "" {
		result.IncidentID = alert.IncidentID
	} else {
		rec, err := e.incidents.CreateIncident(ctx, tools.IncidentRequest{
			Title:       "Escalated: " + alert.Title,
			Description: alert.Description + "\n\nEscalated by agent:\n" + phase.escalationReason,
			Severity:    alert.Severity,
			Source:      "escalation",
			AffectedDevices: func() []string {
				if alert.Device == "" {
					return nil
				}
				return []string{alert.Device}
			}(),
		})
		if err != nil {
			slog.Error("failed to create incident for escalated alert", "alert_id", alert.ID, "error", err)
			return
		}
		result.IncidentID = rec.ID
	}
	if err := e.alerts.LinkIncident(ctx, alert.ID, result.IncidentID); err != nil {
		slog.Error("failed to link incident to alert", "alert_id", alert.ID, "error", err)
	}
}

func (e *Engine) ack(ctx context.Context, alertID string) {
	if err := e.alerts.AcknowledgeAlert(ctx, alertID); err != nil {
		slog.Error("failed to acknowledge alert", "alert_id", alertID, "error", err)
	}
}

// finish writes the terminal alert status and closes the workflow log.
func (e *Engine) finish(ctx context.Context, workflowID, alertID string, result *Result, outcome, summary string) {
	result.Outcome = outcome
	result.EstimatedCost = EstimateCost(e.runner.Model(), result.Usage)
	if err := e.alerts.UpdateAlertStatus(ctx, alertID, outcome); err != nil {
		slog.Error("failed to update alert status", "alert_id", alertID, "status", outcome, "error", err)
	}
	if err := e.audit.CompleteWorkflow(ctx, workflowID, outcome, summary, result.Usage, result.EstimatedCost); err != nil {
		slog.Error("failed to complete workflow log", "workflow_id", workflowID, "error", err)
	}
}

func addUsage(a, b llm.Usage) llm.Usage {
	return llm.Usage{
		InputTokens:  a.InputTokens + b.InputTokens,
		OutputTokens: a.OutputTokens + b.OutputTokens,
	}
}

// --- prompt shaping ---

func alertContextNote(alert *Alert) string {
	var b strings.Builder
	b.WriteString("Originating alert:\n")
	fmt.Fprintf(&b, "- Title: %s\n", alert.Title)
	fmt.Fprintf(&b, "- Severity: %s\n", alert.Severity)
	fmt.Fprintf(&b, "- Source: %s\n", alert.Source)
	if alert.Device != "" {
		fmt.Fprintf(&b, "- Device: %s\n", alert.Device)
	}
	if alert.Description != "" {
		fmt.Fprintf(&b, "- Description: %s\n", alert.Description)
	}
	return b.String()
}

func triageUserTurn(alert *Alert) string {
	return fmt.Sprintf("An alert has fired: %q (severity %s). Triage it: gather initial diagnostics, then hand off to a specialist, flag it as noise, or escalate.",
		alert.Title, alert.Severity)
}

func specialistUserTurn(alert *Alert, handoffSummary string) string {
	return fmt.Sprintf("The triage agent handed the alert %q to you.\n\nTriage findings:\n%s\n\nInvestigate and either remediate (with approval), open an incident, declare it resolved, or escalate.",
		alert.Title, handoffSummary)
}
