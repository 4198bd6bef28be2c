package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nocforge/nocforge/pkg/agent/executor"
	"github.com/nocforge/nocforge/pkg/services"
	"github.com/nocforge/nocforge/pkg/workflow"
	testdb "github.com/nocforge/nocforge/test/database"
)

// stubRunner satisfies events.AgentRunner for handler tests. Each call
// streams a canned final_response/done pair and records that it ran.
type stubRunner struct {
	mu      sync.Mutex
	runs    []string // session IDs passed to Run
	resumes []string // approval IDs passed to ResumeWithApproval
}

func (r *stubRunner) Run(ctx context.Context, sessionID, userInput string, runCtx *executor.RunContext) (<-chan executor.AgentEvent, error) {
	r.mu.Lock()
	r.runs = append(r.runs, sessionID)
	r.mu.Unlock()
	return r.cannedStream(), nil
}

func (r *stubRunner) ResumeWithApproval(ctx context.Context, approvalID string, approved bool, approver string) (<-chan executor.AgentEvent, error) {
	r.mu.Lock()
	r.resumes = append(r.resumes, approvalID)
	r.mu.Unlock()
	return r.cannedStream(), nil
}

func (r *stubRunner) Model() string { return "stub-model" }

func (r *stubRunner) cannedStream() <-chan executor.AgentEvent {
	ch := make(chan executor.AgentEvent, 2)
	ch <- executor.AgentEvent{Type: executor.EventFinalResponse, Content: "done"}
	ch <- executor.AgentEvent{Type: executor.EventDone}
	close(ch)
	return ch
}

func (r *stubRunner) resumeCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.resumes)
}

// stubResumer records workflow settlements triggered by approval decisions.
type stubResumer struct {
	mu        sync.Mutex
	decisions []string // approval IDs
}

func (r *stubResumer) ResumeAfterDecision(ctx context.Context, approvalID string, approved bool, approver string) (*workflow.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decisions = append(r.decisions, approvalID)
	return &workflow.Result{Outcome: "resolved"}, nil
}

func (r *stubResumer) decided() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.decisions...)
}

type apiTestEnv struct {
	server    *httptest.Server
	alerts    *services.AlertService
	sessions  *services.SessionService
	approvals *services.ApprovalService
	runner    *stubRunner
	resumer   *stubResumer
}

func setupAPITest(t *testing.T) *apiTestEnv {
	return setupAPITestEnv(t, false)
}

// setupAPITestWithEngine additionally wires a stub workflow engine, the
// production shape where approval decisions settle the alert workflow.
func setupAPITestWithEngine(t *testing.T) *apiTestEnv {
	return setupAPITestEnv(t, true)
}

func setupAPITestEnv(t *testing.T, withEngine bool) *apiTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbClient := testdb.NewTestClient(t)

	env := &apiTestEnv{
		alerts:    services.NewAlertService(dbClient.Client),
		sessions:  services.NewSessionService(dbClient.Client),
		approvals: services.NewApprovalService(dbClient.Client),
		runner:    &stubRunner{},
	}

	deps := Deps{
		DB:        dbClient,
		Alerts:    env.alerts,
		Sessions:  env.sessions,
		Approvals: env.approvals,
		Incidents: services.NewIncidentService(dbClient.Client),
		Workflows: services.NewWorkflowService(dbClient.Client),
		Runner:    env.runner,
	}
	if withEngine {
		env.resumer = &stubResumer{}
		deps.Resumer = env.resumer
	}

	env.server = httptest.NewServer(NewServer(deps).Router())
	t.Cleanup(func() { env.server.Close() })
	return env
}

// doJSON issues a request and decodes the JSON response body.
func (env *apiTestEnv) doJSON(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, env.server.URL+path, reqBody)
	require.NoError(t, err)
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp.StatusCode, decoded
}

func TestCreateAlertEndpoint(t *testing.T) {
	env := setupAPITest(t)

	t.Run("valid alert accepted", func(t *testing.T) {
		status, body := env.doJSON(t, http.MethodPost, "/api/v1/alerts", map[string]any{
			"title":    "BGP neighbor down",
			"severity": "critical",
			"source":   "prometheus",
			"device":   "edge-router-1",
		})

		assert.Equal(t, http.StatusAccepted, status)
		assert.NotEmpty(t, body["alert_id"])
		assert.Equal(t, "new", body["status"])
	})

	t.Run("missing title rejected", func(t *testing.T) {
		status, body := env.doJSON(t, http.MethodPost, "/api/v1/alerts", map[string]any{
			"source": "prometheus",
		})

		assert.Equal(t, http.StatusBadRequest, status)
		assert.NotEmpty(t, body["error"])
	})

	t.Run("missing source rejected", func(t *testing.T) {
		status, _ := env.doJSON(t, http.MethodPost, "/api/v1/alerts", map[string]any{
			"title": "orphan alert",
		})

		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("skip_ai is persisted", func(t *testing.T) {
		status, body := env.doJSON(t, http.MethodPost, "/api/v1/alerts", map[string]any{
			"title":   "maintenance window",
			"source":  "manual",
			"skip_ai": true,
		})
		require.Equal(t, http.StatusAccepted, status)

		alertID := body["alert_id"].(string)
		status, body = env.doJSON(t, http.MethodGet, "/api/v1/alerts/"+alertID, nil)
		require.Equal(t, http.StatusOK, status)

		alert := body["alert"].(map[string]any)
		assert.Equal(t, true, alert["skip_ai"])
	})
}

func TestListAlertsEndpoint(t *testing.T) {
	env := setupAPITest(t)
	ctx := context.Background()

	for i, device := range []string{"r1", "r1", "r2"} {
		_, err := env.alerts.CreateAlert(ctx, &services.AlertInput{
			Title:  fmt.Sprintf("alert %d", i),
			Source: "test",
			Device: device,
		})
		require.NoError(t, err)
	}

	t.Run("unfiltered", func(t *testing.T) {
		status, body := env.doJSON(t, http.MethodGet, "/api/v1/alerts", nil)
		require.Equal(t, http.StatusOK, status)
		assert.EqualValues(t, 3, body["total"])
		assert.Len(t, body["alerts"], 3)
	})

	t.Run("filtered by device", func(t *testing.T) {
		status, body := env.doJSON(t, http.MethodGet, "/api/v1/alerts?device=r1", nil)
		require.Equal(t, http.StatusOK, status)
		assert.EqualValues(t, 2, body["total"])
	})

	t.Run("pagination limit", func(t *testing.T) {
		status, body := env.doJSON(t, http.MethodGet, "/api/v1/alerts?limit=1", nil)
		require.Equal(t, http.StatusOK, status)
		assert.EqualValues(t, 3, body["total"])
		assert.Len(t, body["alerts"], 1)
	})
}

func TestAlertLifecycleEndpoints(t *testing.T) {
	env := setupAPITest(t)
	ctx := context.Background()

	alert, err := env.alerts.CreateAlert(ctx, &services.AlertInput{
		Title:  "interface flapping",
		Source: "test",
	})
	require.NoError(t, err)

	t.Run("ack", func(t *testing.T) {
		status, body := env.doJSON(t, http.MethodPost, "/api/v1/alerts/"+alert.ID+"/ack", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, true, body["acknowledged"])
	})

	t.Run("resolve", func(t *testing.T) {
		status, body := env.doJSON(t, http.MethodPost, "/api/v1/alerts/"+alert.ID+"/resolve", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "resolved", body["status"])
	})

	t.Run("get reflects final status", func(t *testing.T) {
		status, body := env.doJSON(t, http.MethodGet, "/api/v1/alerts/"+alert.ID, nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "resolved", body["alert"].(map[string]any)["status"])
	})

	t.Run("unknown alert is 404", func(t *testing.T) {
		status, _ := env.doJSON(t, http.MethodGet, "/api/v1/alerts/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestApprovalEndpoints(t *testing.T) {
	env := setupAPITest(t)
	ctx := context.Background()

	sess, err := env.sessions.CreateSession(ctx, "automation", "alert", "")
	require.NoError(t, err)

	newApproval := func(t *testing.T, expiresAt time.Time) string {
		t.Helper()
		id := uuid.NewString()
		_, err := env.approvals.CreateApproval(ctx, &services.ApprovalInput{
			ID:        id,
			SessionID: sess.ID,
			ActionID:  uuid.NewString(),
			ToolName:  "device.configure",
			Args:      map[string]any{"device_name": "edge-router-1"},
			RiskLevel: "high",
			ExpiresAt: expiresAt,
		})
		require.NoError(t, err)
		return id
	}

	t.Run("create via REST", func(t *testing.T) {
		status, body := env.doJSON(t, http.MethodPost, "/api/v1/approvals", map[string]any{
			"session_id":      sess.ID,
			"action_type":     "maintenance.reboot",
			"description":     "reboot edge-router-1 line card",
			"risk_level":      "high",
			"expires_minutes": 30,
		})
		require.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "pending", body["status"])
		assert.Equal(t, sess.ID, body["session_id"])
		assert.Equal(t, "maintenance.reboot", body["tool_name"])
	})

	t.Run("create for unknown session is 404", func(t *testing.T) {
		status, _ := env.doJSON(t, http.MethodPost, "/api/v1/approvals", map[string]any{
			"session_id":  uuid.NewString(),
			"action_type": "maintenance.reboot",
		})
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("list pending", func(t *testing.T) {
		id := newApproval(t, time.Now().UTC().Add(time.Hour))

		status, body := env.doJSON(t, http.MethodGet, "/api/v1/approvals?session_id="+sess.ID, nil)
		require.Equal(t, http.StatusOK, status)

		approvals := body["approvals"].([]any)
		require.NotEmpty(t, approvals)
		found := false
		for _, a := range approvals {
			if a.(map[string]any)["id"] == id {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("approve resumes the session", func(t *testing.T) {
		id := newApproval(t, time.Now().UTC().Add(time.Hour))
		before := env.runner.resumeCount()

		status, body := env.doJSON(t, http.MethodPost, "/api/v1/approvals/"+id+"/approve", map[string]any{
			"decided_by": "oncall",
			"reason":     "change window open",
		})
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "approved", body["status"])
		assert.Equal(t, sess.ID, body["session_id"])
		assert.Equal(t, true, body["resuming"])

		require.Eventually(t, func() bool {
			return env.runner.resumeCount() > before
		}, 5*time.Second, 10*time.Millisecond, "resume never reached the runner")
	})

	t.Run("second decision conflicts", func(t *testing.T) {
		id := newApproval(t, time.Now().UTC().Add(time.Hour))

		status, _ := env.doJSON(t, http.MethodPost, "/api/v1/approvals/"+id+"/reject", map[string]any{
			"decided_by": "oncall",
		})
		require.Equal(t, http.StatusOK, status)

		status, body := env.doJSON(t, http.MethodPost, "/api/v1/approvals/"+id+"/approve", map[string]any{
			"decided_by": "someone-else",
		})
		assert.Equal(t, http.StatusConflict, status)
		assert.Contains(t, body["error"], "already decided")
	})

	t.Run("expired approval conflicts", func(t *testing.T) {
		id := newApproval(t, time.Now().UTC().Add(-time.Minute))

		status, body := env.doJSON(t, http.MethodPost, "/api/v1/approvals/"+id+"/approve", map[string]any{
			"decided_by": "oncall",
		})
		assert.Equal(t, http.StatusConflict, status)
		assert.Contains(t, body["error"], "expired")
	})

	t.Run("missing decided_by rejected", func(t *testing.T) {
		id := newApproval(t, time.Now().UTC().Add(time.Hour))

		status, _ := env.doJSON(t, http.MethodPost, "/api/v1/approvals/"+id+"/approve", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("expire-old sweep", func(t *testing.T) {
		newApproval(t, time.Now().UTC().Add(-time.Minute))

		status, body := env.doJSON(t, http.MethodPost, "/api/v1/approvals/expire-old", nil)
		require.Equal(t, http.StatusOK, status)
		assert.GreaterOrEqual(t, body["expired"].(float64), float64(1))
	})
}

// With a workflow engine wired, a REST approval decision must settle the
// alert workflow through the engine rather than only draining the resumed
// event stream.
func TestApprovalDecisionSettlesWorkflow(t *testing.T) {
	env := setupAPITestWithEngine(t)
	ctx := context.Background()

	sess, err := env.sessions.CreateSession(ctx, "automation", "alert", uuid.NewString())
	require.NoError(t, err)

	id := uuid.NewString()
	_, err = env.approvals.CreateApproval(ctx, &services.ApprovalInput{
		ID:        id,
		SessionID: sess.ID,
		ActionID:  uuid.NewString(),
		ToolName:  "device.configure",
		Args:      map[string]any{"device_name": "edge-router-1"},
		RiskLevel: "high",
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	})
	require.NoError(t, err)

	status, body := env.doJSON(t, http.MethodPost, "/api/v1/approvals/"+id+"/approve", map[string]any{
		"decided_by": "oncall",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "approved", body["status"])

	require.Eventually(t, func() bool {
		return len(env.resumer.decided()) == 1
	}, 5*time.Second, 10*time.Millisecond, "decision never reached the engine")
	assert.Equal(t, []string{id}, env.resumer.decided())
	assert.Zero(t, env.runner.resumeCount(), "engine settlement must replace the plain resume")
}

func TestSessionEndpoints(t *testing.T) {
	env := setupAPITest(t)
	ctx := context.Background()

	sess, err := env.sessions.CreateSession(ctx, "bgp", "chat", "")
	require.NoError(t, err)
	_, err = env.sessions.CreateSession(ctx, "triage", "alert", "alert-1")
	require.NoError(t, err)

	t.Run("list with agent_type filter", func(t *testing.T) {
		status, body := env.doJSON(t, http.MethodGet, "/api/v1/sessions?agent_type=bgp", nil)
		require.Equal(t, http.StatusOK, status)
		assert.EqualValues(t, 1, body["total"])
	})

	t.Run("get by id", func(t *testing.T) {
		status, body := env.doJSON(t, http.MethodGet, "/api/v1/sessions/"+sess.ID, nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, sess.ID, body["id"])
		assert.Equal(t, "bgp", body["agent_type"])
	})

	t.Run("unknown session is 404", func(t *testing.T) {
		status, _ := env.doJSON(t, http.MethodGet, "/api/v1/sessions/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestAgentTypesEndpoint(t *testing.T) {
	env := setupAPITest(t)

	status, body := env.doJSON(t, http.MethodGet, "/api/v1/agent-types", nil)
	require.Equal(t, http.StatusOK, status)

	types := body["agent_types"].([]any)
	require.NotEmpty(t, types)

	seen := map[string]bool{}
	for _, ti := range types {
		entry := ti.(map[string]any)
		assert.NotEmpty(t, entry["type"])
		assert.NotEmpty(t, entry["name"])
		seen[entry["type"].(string)] = true
	}
	assert.True(t, seen["triage"])
	assert.True(t, seen["automation"])
}

func TestHealthEndpoint(t *testing.T) {
	env := setupAPITest(t)

	status, body := env.doJSON(t, http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])
}

func TestIncidentEndpoints(t *testing.T) {
	env := setupAPITest(t)

	t.Run("empty list", func(t *testing.T) {
		status, body := env.doJSON(t, http.MethodGet, "/api/v1/incidents", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Empty(t, body["incidents"])
	})

	t.Run("unknown incident is 404", func(t *testing.T) {
		status, _ := env.doJSON(t, http.MethodGet, "/api/v1/incidents/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}
