package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// KnowledgeBackend serves runbooks and operational documentation.
type KnowledgeBackend interface {
	Search(ctx context.Context, query string, limit int) ([]KnowledgeHit, error)
	List(ctx context.Context, category string) ([]KnowledgeDoc, error)
	Expand(ctx context.Context, docID string) (*KnowledgeDoc, error)
}

type KnowledgeHit struct {
	DocID   string  `json:"doc_id"`
	Title   string  `json:"title"`
	Snippet string  `json:"snippet"`
	Score   float64 `json:"score"`
}

type KnowledgeDoc struct {
	DocID    string `json:"doc_id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content,omitempty"`
}

// HTTPKnowledgeBackend talks to the knowledge service over HTTP/JSON.
type HTTPKnowledgeBackend struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewHTTPKnowledgeBackend(baseURL, apiKey string, timeout time.Duration) *HTTPKnowledgeBackend {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPKnowledgeBackend{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (b *HTTPKnowledgeBackend) Search(ctx context.Context, query string, limit int) ([]KnowledgeHit, error) {
	if limit <= 0 {
		limit = 5
	}
	var out struct {
		Hits []KnowledgeHit `json:"hits"`
	}
	err := b.do(ctx, http.MethodPost, "/api/v1/knowledge/search", map[string]any{
		"query": query,
		"limit": limit,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.Hits, nil
}

func (b *HTTPKnowledgeBackend) List(ctx context.Context, category string) ([]KnowledgeDoc, error) {
	path := "/api/v1/knowledge/docs"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}
	var out struct {
		Docs []KnowledgeDoc `json:"docs"`
	}
	if err := b.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Docs, nil
}

func (b *HTTPKnowledgeBackend) Expand(ctx context.Context, docID string) (*KnowledgeDoc, error) {
	var out KnowledgeDoc
	if err := b.do(ctx, http.MethodGet, "/api/v1/knowledge/docs/"+url.PathEscape(docID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *HTTPKnowledgeBackend) do(ctx context.Context, method, path string, payload, out any) error {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if b.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+b.apiKey)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("knowledge backend request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read knowledge backend response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("knowledge backend returned %d: %s", resp.StatusCode, truncate(string(respBody), 512))
	}
	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("malformed knowledge backend response: %w", err)
		}
	}
	return nil
}
