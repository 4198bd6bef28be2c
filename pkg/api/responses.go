package api

// AlertAcceptedResponse is returned by POST /api/v1/alerts. Processing is
// asynchronous; the caller polls the alert or subscribes to the alerts
// channel.
type AlertAcceptedResponse struct {
	AlertID string `json:"alert_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ApprovalDecidedResponse is returned by the approve/reject endpoints.
type ApprovalDecidedResponse struct {
	ApprovalID string `json:"approval_id"`
	SessionID  string `json:"session_id"`
	Status     string `json:"status"`
	Resuming   bool   `json:"resuming"`
}
