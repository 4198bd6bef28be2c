// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/nocforge/nocforge/ent/agentaction"
	"github.com/nocforge/nocforge/ent/alert"
	"github.com/nocforge/nocforge/ent/event"
	"github.com/nocforge/nocforge/ent/incident"
	"github.com/nocforge/nocforge/ent/message"
	"github.com/nocforge/nocforge/ent/pendingapproval"
	"github.com/nocforge/nocforge/ent/schema"
	"github.com/nocforge/nocforge/ent/session"
	"github.com/nocforge/nocforge/ent/workflowlog"
	"github.com/nocforge/nocforge/ent/workflowstep"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentactionFields := schema.AgentAction{}.Fields()
	_ = agentactionFields
	// agentactionDescSuccess is the schema descriptor for success field.
	agentactionDescSuccess := agentactionFields[7].Descriptor()
	// agentaction.DefaultSuccess holds the default value on creation for the success field.
	agentaction.DefaultSuccess = agentactionDescSuccess.Default.(bool)
	// agentactionDescRiskLevel is the schema descriptor for risk_level field.
	agentactionDescRiskLevel := agentactionFields[8].Descriptor()
	// agentaction.DefaultRiskLevel holds the default value on creation for the risk_level field.
	agentaction.DefaultRiskLevel = agentactionDescRiskLevel.Default.(string)
	// agentactionDescCreatedAt is the schema descriptor for created_at field.
	agentactionDescCreatedAt := agentactionFields[11].Descriptor()
	// agentaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentaction.DefaultCreatedAt = agentactionDescCreatedAt.Default.(func() time.Time)
	alertFields := schema.Alert{}.Fields()
	_ = alertFields
	// alertDescSeverity is the schema descriptor for severity field.
	alertDescSeverity := alertFields[2].Descriptor()
	// alert.DefaultSeverity holds the default value on creation for the severity field.
	alert.DefaultSeverity = alertDescSeverity.Default.(string)
	// alertDescSkipAi is the schema descriptor for skip_ai field.
	alertDescSkipAi := alertFields[8].Descriptor()
	// alert.DefaultSkipAi holds the default value on creation for the skip_ai field.
	alert.DefaultSkipAi = alertDescSkipAi.Default.(bool)
	// alertDescCreatedAt is the schema descriptor for created_at field.
	alertDescCreatedAt := alertFields[11].Descriptor()
	// alert.DefaultCreatedAt holds the default value on creation for the created_at field.
	alert.DefaultCreatedAt = alertDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[4].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	incidentFields := schema.Incident{}.Fields()
	_ = incidentFields
	// incidentDescSeverity is the schema descriptor for severity field.
	incidentDescSeverity := incidentFields[3].Descriptor()
	// incident.DefaultSeverity holds the default value on creation for the severity field.
	incident.DefaultSeverity = incidentDescSeverity.Default.(string)
	// incidentDescStatus is the schema descriptor for status field.
	incidentDescStatus := incidentFields[4].Descriptor()
	// incident.DefaultStatus holds the default value on creation for the status field.
	incident.DefaultStatus = incidentDescStatus.Default.(string)
	// incidentDescCreatedAt is the schema descriptor for created_at field.
	incidentDescCreatedAt := incidentFields[7].Descriptor()
	// incident.DefaultCreatedAt holds the default value on creation for the created_at field.
	incident.DefaultCreatedAt = incidentDescCreatedAt.Default.(func() time.Time)
	// incidentDescUpdatedAt is the schema descriptor for updated_at field.
	incidentDescUpdatedAt := incidentFields[8].Descriptor()
	// incident.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	incident.DefaultUpdatedAt = incidentDescUpdatedAt.Default.(func() time.Time)
	// incident.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	incident.UpdateDefaultUpdatedAt = incidentDescUpdatedAt.UpdateDefault.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[8].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	pendingapprovalFields := schema.PendingApproval{}.Fields()
	_ = pendingapprovalFields
	// pendingapprovalDescRiskLevel is the schema descriptor for risk_level field.
	pendingapprovalDescRiskLevel := pendingapprovalFields[5].Descriptor()
	// pendingapproval.DefaultRiskLevel holds the default value on creation for the risk_level field.
	pendingapproval.DefaultRiskLevel = pendingapprovalDescRiskLevel.Default.(string)
	// pendingapprovalDescRequestedAt is the schema descriptor for requested_at field.
	pendingapprovalDescRequestedAt := pendingapprovalFields[7].Descriptor()
	// pendingapproval.DefaultRequestedAt holds the default value on creation for the requested_at field.
	pendingapproval.DefaultRequestedAt = pendingapprovalDescRequestedAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[5].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	workflowlogFields := schema.WorkflowLog{}.Fields()
	_ = workflowlogFields
	// workflowlogDescStatus is the schema descriptor for status field.
	workflowlogDescStatus := workflowlogFields[2].Descriptor()
	// workflowlog.DefaultStatus holds the default value on creation for the status field.
	workflowlog.DefaultStatus = workflowlogDescStatus.Default.(string)
	// workflowlogDescTotalInputTokens is the schema descriptor for total_input_tokens field.
	workflowlogDescTotalInputTokens := workflowlogFields[5].Descriptor()
	// workflowlog.DefaultTotalInputTokens holds the default value on creation for the total_input_tokens field.
	workflowlog.DefaultTotalInputTokens = workflowlogDescTotalInputTokens.Default.(int)
	// workflowlogDescTotalOutputTokens is the schema descriptor for total_output_tokens field.
	workflowlogDescTotalOutputTokens := workflowlogFields[6].Descriptor()
	// workflowlog.DefaultTotalOutputTokens holds the default value on creation for the total_output_tokens field.
	workflowlog.DefaultTotalOutputTokens = workflowlogDescTotalOutputTokens.Default.(int)
	// workflowlogDescEstimatedCost is the schema descriptor for estimated_cost field.
	workflowlogDescEstimatedCost := workflowlogFields[7].Descriptor()
	// workflowlog.DefaultEstimatedCost holds the default value on creation for the estimated_cost field.
	workflowlog.DefaultEstimatedCost = workflowlogDescEstimatedCost.Default.(float64)
	// workflowlogDescStartedAt is the schema descriptor for started_at field.
	workflowlogDescStartedAt := workflowlogFields[8].Descriptor()
	// workflowlog.DefaultStartedAt holds the default value on creation for the started_at field.
	workflowlog.DefaultStartedAt = workflowlogDescStartedAt.Default.(func() time.Time)
	workflowstepFields := schema.WorkflowStep{}.Fields()
	_ = workflowstepFields
	// workflowstepDescInputTokens is the schema descriptor for input_tokens field.
	workflowstepDescInputTokens := workflowstepFields[8].Descriptor()
	// workflowstep.DefaultInputTokens holds the default value on creation for the input_tokens field.
	workflowstep.DefaultInputTokens = workflowstepDescInputTokens.Default.(int)
	// workflowstepDescOutputTokens is the schema descriptor for output_tokens field.
	workflowstepDescOutputTokens := workflowstepFields[9].Descriptor()
	// workflowstep.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	workflowstep.DefaultOutputTokens = workflowstepDescOutputTokens.Default.(int)
	// workflowstepDescCreatedAt is the schema descriptor for created_at field.
	workflowstepDescCreatedAt := workflowstepFields[10].Descriptor()
	// workflowstep.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowstep.DefaultCreatedAt = workflowstepDescCreatedAt.Default.(func() time.Time)
}
