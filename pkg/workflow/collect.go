package workflow

import (
	"github.com/nocforge/nocforge/pkg/agent/executor"
	"github.com/nocforge/nocforge/pkg/llm"
	"github.com/nocforge/nocforge/pkg/tools"
)

// phaseResult is the fold of one agent run's event sequence.
type phaseResult struct {
	sessionID        string
	final            string
	handedOff        bool
	handoffTarget    string
	handoffSummary   string
	escalated        bool
	escalationReason string
	awaitingApproval bool
	approvalID       string
	errored          bool
	errMsg           string
	incidentID       string
	usage            llm.Usage
}

// collect drains a run's event channel into a phaseResult.
func collect(events <-chan executor.AgentEvent) *phaseResult {
	res := &phaseResult{}
	for ev := range events {
		switch ev.Type {
		case executor.EventFinalResponse:
			res.final = ev.Content
		case executor.EventHandoff:
			res.handedOff = true
			if ev.Data != nil {
				res.handoffTarget, _ = ev.Data["target_agent"].(string)
				res.handoffSummary, _ = ev.Data["summary"].(string)
			}
		case executor.EventEscalation:
			res.escalated = true
			if ev.Data != nil {
				res.escalationReason, _ = ev.Data["reason"].(string)
			}
		case executor.EventApprovalRequired:
			res.awaitingApproval = true
			if ev.Data != nil {
				res.approvalID, _ = ev.Data["approval_id"].(string)
			}
		case executor.EventToolResult:
			if ev.ToolName == "create_incident" && ev.Data != nil {
				if ok, _ := ev.Data["success"].(bool); ok {
					res.incidentID = incidentIDFrom(ev.Data)
				}
			}
		case executor.EventError:
			res.errored = true
			res.errMsg = ev.Content
		case executor.EventDone:
			if ev.Data != nil {
				if n, ok := ev.Data["input_tokens"].(int); ok {
					res.usage.InputTokens = n
				}
				if n, ok := ev.Data["output_tokens"].(int); ok {
					res.usage.OutputTokens = n
				}
			}
		}
	}
	return res
}

// incidentIDFrom digs the created incident's id out of a tool result
// payload, tolerating both the typed record and plain JSON maps.
func incidentIDFrom(data map[string]any) string {
	switch rec := data["result"].(type) {
	case *tools.IncidentRecord:
		return rec.ID
	case tools.IncidentRecord:
		return rec.ID
	case map[string]any:
		id, _ := rec["id"].(string)
		return id
	}
	if id, ok := data["id"].(string); ok {
		return id
	}
	return ""
}

// outcomeLabel names the phase's dominant outcome for the audit step.
func (r *phaseResult) outcomeLabel() string {
	switch {
	case r.errored:
		return OutcomeError
	case r.awaitingApproval:
		return OutcomeAwaitingApproval
	case r.handedOff:
		return "handoff"
	case r.incidentID != "":
		return OutcomeIncidentCreated
	case r.escalated:
		return OutcomeEscalated
	default:
		return "completed"
	}
}
