package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DeviceBackend executes read and change operations against network devices.
// The orchestration engine treats it as an opaque JSON contract; transport,
// drivers and job scheduling are the backend's concern.
type DeviceBackend interface {
	ListDevices(ctx context.Context, filter string) ([]Device, error)
	Show(ctx context.Context, device, command, parseHint string) (*ShowResult, error)
	Configure(ctx context.Context, device string, lines []string, dryRun bool) (*ConfigureResult, error)
	RunMOP(ctx context.Context, mopID string, params map[string]any) (*MOPResult, error)
}

type Device struct {
	Name     string `json:"name"`
	Platform string `json:"platform"`
	Site     string `json:"site"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

type ShowResult struct {
	Device  string `json:"device"`
	Command string `json:"command"`
	Output  string `json:"output"`
	Parsed  any    `json:"parsed,omitempty"`
}

type ConfigureResult struct {
	Device  string   `json:"device"`
	Applied bool     `json:"applied"`
	DryRun  bool     `json:"dry_run"`
	Changes []string `json:"changes,omitempty"`
}

type MOPResult struct {
	MOPID  string `json:"mop_id"`
	JobID  string `json:"job_id"`
	Status string `json:"status"`
	Detail any    `json:"detail,omitempty"`
}

// HTTPDeviceBackend talks to the device automation service over HTTP/JSON.
type HTTPDeviceBackend struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPDeviceBackend creates a backend client. An empty apiKey disables
// the Authorization header for backends behind network trust.
func NewHTTPDeviceBackend(baseURL, apiKey string, timeout time.Duration) *HTTPDeviceBackend {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &HTTPDeviceBackend{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (b *HTTPDeviceBackend) ListDevices(ctx context.Context, filter string) ([]Device, error) {
	var out struct {
		Devices []Device `json:"devices"`
	}
	payload := map[string]any{}
	if filter != "" {
		payload["filter"] = filter
	}
	if err := b.post(ctx, "/api/v1/devices/list", payload, &out); err != nil {
		return nil, err
	}
	return out.Devices, nil
}

func (b *HTTPDeviceBackend) Show(ctx context.Context, device, command, parseHint string) (*ShowResult, error) {
	payload := map[string]any{
		"device":  device,
		"command": command,
	}
	if parseHint != "" {
		payload["parse_hint"] = parseHint
	}
	var out ShowResult
	if err := b.post(ctx, "/api/v1/devices/show", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *HTTPDeviceBackend) Configure(ctx context.Context, device string, lines []string, dryRun bool) (*ConfigureResult, error) {
	payload := map[string]any{
		"device":  device,
		"lines":   lines,
		"dry_run": dryRun,
	}
	var out ConfigureResult
	if err := b.post(ctx, "/api/v1/devices/configure", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *HTTPDeviceBackend) RunMOP(ctx context.Context, mopID string, params map[string]any) (*MOPResult, error) {
	payload := map[string]any{
		"mop_id": mopID,
		"params": params,
	}
	var out MOPResult
	if err := b.post(ctx, "/api/v1/mops/execute", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *HTTPDeviceBackend) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if b.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+b.apiKey)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("device backend request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read device backend response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("device backend returned %d: %s", resp.StatusCode, truncate(string(respBody), 512))
	}
	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("malformed device backend response: %w", err)
		}
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
