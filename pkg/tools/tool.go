// Package tools declares the operations agents may perform, validates their
// inputs against JSON schemas, and resolves tool names to handlers at
// runtime. Tool failures are data, never errors: nothing a handler does can
// crash the reasoning loop.
package tools

import "context"

// RiskLevel classifies the blast radius of a tool.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Handler executes one tool call. Returning an error (or panicking) is
// converted by the Registry into a failed Result.
type Handler func(ctx context.Context, execCtx *ExecutionContext, args map[string]any) (*Result, error)

// Tool declares one operation available to agents.
type Tool struct {
	Name        string
	Description string

	// InputSchema is a JSON Schema object: {"type":"object","properties":{...},"required":[...]}.
	InputSchema map[string]any

	Category         string
	RiskLevel        RiskLevel
	RequiresApproval bool

	// Internal tools are usable by agents but hidden from UI catalogs
	// (handoff, escalation).
	Internal bool

	Handler Handler
}

// ExecutionContext carries per-call identity into tool handlers.
type ExecutionContext struct {
	SessionID string
	AgentType string

	// ApprovalID and ApprovedBy are set when a previously-gated call is
	// re-executed after human approval.
	ApprovalID string
	ApprovedBy string

	// Extra carries agent-specific string values (alert ID, device scope).
	Extra map[string]string
}

// Result is produced exactly once per tool call.
type Result struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`

	// RequiresApproval marks a call that was gated instead of executed.
	// The executor persists a PendingApproval and fills ApprovalID.
	RequiresApproval bool      `json:"requires_approval,omitempty"`
	ApprovalID       string    `json:"approval_id,omitempty"`
	RiskLevel        RiskLevel `json:"risk_level"`
}
