package api

// CreateAlertRequest is the webhook ingress body for POST /api/v1/alerts.
type CreateAlertRequest struct {
	Title       string `json:"title" binding:"required"`
	Severity    string `json:"severity"`
	Source      string `json:"source" binding:"required"`
	Device      string `json:"device"`
	Description string `json:"description"`
	SkipAI      bool   `json:"skip_ai"`
}

// CreateApprovalRequest is the body for POST /api/v1/approvals, used by
// external systems that gate their own actions on a human decision.
type CreateApprovalRequest struct {
	SessionID      string         `json:"session_id" binding:"required"`
	ActionID       string         `json:"action_id"`
	ActionType     string         `json:"action_type" binding:"required"`
	Description    string         `json:"description"`
	RiskLevel      string         `json:"risk_level"`
	ExpiresMinutes int            `json:"expires_minutes"`
	Args           map[string]any `json:"args,omitempty"`
}

// DecideApprovalRequest is the body for approve/reject endpoints.
type DecideApprovalRequest struct {
	DecidedBy string `json:"decided_by" binding:"required"`
	Reason    string `json:"reason"`
}
