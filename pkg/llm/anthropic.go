package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/nocforge/nocforge/pkg/config"
)

const (
	defaultAnthropicBaseURL = "https://api.anthropic.com/v1"
	anthropicVersion        = "2023-06-01"
)

// anthropicClient speaks the Anthropic messages protocol.
type anthropicClient struct {
	cfg        *config.ProviderConfig
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func newAnthropicClient(pc *config.ProviderConfig, apiKey string, httpClient *http.Client) *anthropicClient {
	baseURL := pc.BaseURL
	if baseURL == "" {
		baseURL = defaultAnthropicBaseURL
	}
	return &anthropicClient{
		cfg:        pc,
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *anthropicClient) Model() string { return c.cfg.Model }

// --- Wire types ---

type anthropicContentBlock struct {
	Type string `json:"type"`

	// type == "text"
	Text string `json:"text,omitempty"`

	// type == "tool_use"
	ID    string         `json:"id,omitempty"`
	Name  string         `json:"name,omitempty"`
	Input map[string]any `json:"input,omitempty"`

	// type == "tool_result"
	ToolUseID string `json:"tool_use_id,omitempty"`
	Content   string `json:"content,omitempty"`
}

type anthropicMessage struct {
	Role    string                  `json:"role"`
	Content []anthropicContentBlock `json:"content"`
}

type anthropicTool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
	Tools       []anthropicTool    `json:"tools,omitempty"`
	Temperature float64            `json:"temperature"`
	MaxTokens   int                `json:"max_tokens"`
	Stream      bool               `json:"stream,omitempty"`
}

type anthropicResponse struct {
	Content    []anthropicContentBlock `json:"content"`
	StopReason string                  `json:"stop_reason"`
	Usage      *struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// --- Translation: internal → wire ---

// toAnthropicRequest maps internal messages to the messages-API shape.
// System messages are pulled out of the list into the top-level system
// field; a tool message becomes a user message carrying a tool_result
// block, and consecutive tool messages merge into one user message.
func (c *anthropicClient) toAnthropicRequest(req *ChatRequest, stream bool) *anthropicRequest {
	out := &anthropicRequest{
		Model:       c.cfg.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Stream:      stream,
	}
	if out.MaxTokens <= 0 {
		out.MaxTokens = c.cfg.MaxTokens
	}

	var systemParts []string
	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			systemParts = append(systemParts, m.Content)
		case RoleAssistant:
			blocks := []anthropicContentBlock{}
			if m.Content != "" {
				blocks = append(blocks, anthropicContentBlock{Type: "text", Text: m.Content})
			}
			for _, tc := range m.ToolCalls {
				input := tc.Arguments
				if input == nil {
					input = map[string]any{}
				}
				blocks = append(blocks, anthropicContentBlock{
					Type:  "tool_use",
					ID:    tc.ID,
					Name:  tc.Name,
					Input: input,
				})
			}
			out.Messages = append(out.Messages, anthropicMessage{Role: "assistant", Content: blocks})
		case RoleTool:
			block := anthropicContentBlock{
				Type:      "tool_result",
				ToolUseID: m.ToolCallID,
				Content:   m.Content,
			}
			// Tool results for one assistant turn belong in a single user message.
			if n := len(out.Messages); n > 0 && out.Messages[n-1].Role == "user" &&
				len(out.Messages[n-1].Content) > 0 && out.Messages[n-1].Content[0].Type == "tool_result" {
				out.Messages[n-1].Content = append(out.Messages[n-1].Content, block)
				continue
			}
			out.Messages = append(out.Messages, anthropicMessage{
				Role:    "user",
				Content: []anthropicContentBlock{block},
			})
		default:
			out.Messages = append(out.Messages, anthropicMessage{
				Role:    "user",
				Content: []anthropicContentBlock{{Type: "text", Text: m.Content}},
			})
		}
	}
	out.System = strings.Join(systemParts, "\n\n")

	for _, t := range req.Tools {
		out.Tools = append(out.Tools, anthropicTool{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.InputSchema,
		})
	}
	return out
}

// --- Translation: wire → internal ---

func fromAnthropicResponse(parsed *anthropicResponse) *Response {
	resp := &Response{StopReason: parsed.StopReason}
	if parsed.Usage != nil {
		resp.Usage.InputTokens = parsed.Usage.InputTokens
		resp.Usage.OutputTokens = parsed.Usage.OutputTokens
	}
	var text strings.Builder
	for _, block := range parsed.Content {
		switch block.Type {
		case "text":
			text.WriteString(block.Text)
		case "tool_use":
			args := block.Input
			if args == nil {
				args = map[string]any{}
			}
			resp.ToolCalls = append(resp.ToolCalls, ToolCall{
				ID:        block.ID,
				Name:      block.Name,
				Arguments: args,
			})
		}
	}
	resp.Content = text.String()
	return resp
}

// --- Chat ---

func (c *anthropicClient) Chat(ctx context.Context, req *ChatRequest) (*Response, error) {
	body, err := c.doRequest(ctx, c.toAnthropicRequest(req, false))
	if err != nil {
		return nil, err
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &Error{StatusCode: http.StatusOK, Message: fmt.Sprintf("malformed provider response: %v", err)}
	}
	return fromAnthropicResponse(&parsed), nil
}

// --- Streaming ---

type anthropicStreamEvent struct {
	Type  string `json:"type"`
	Index int    `json:"index"`

	Message *struct {
		Usage struct {
			InputTokens int `json:"input_tokens"`
		} `json:"usage"`
	} `json:"message"`

	ContentBlock *anthropicContentBlock `json:"content_block"`

	Delta *struct {
		Type        string `json:"type"`
		Text        string `json:"text"`
		PartialJSON string `json:"partial_json"`
		StopReason  string `json:"stop_reason"`
	} `json:"delta"`

	Usage *struct {
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

func (c *anthropicClient) StreamChat(ctx context.Context, req *ChatRequest) (<-chan StreamEvent, error) {
	httpResp, err := c.doStreamRequest(ctx, c.toAnthropicRequest(req, true))
	if err != nil {
		return nil, err
	}

	events := make(chan StreamEvent, streamBufferSize)
	go func() {
		defer close(events)
		defer httpResp.Body.Close()

		var (
			text    strings.Builder
			usage   Usage
			stop    string
			buffers = map[int]*toolCallBuffer{}
		)

		err := readSSE(httpResp.Body, func(data string) error {
			var ev anthropicStreamEvent
			if err := json.Unmarshal([]byte(data), &ev); err != nil {
				return nil
			}
			switch ev.Type {
			case "message_start":
				if ev.Message != nil {
					usage.InputTokens = ev.Message.Usage.InputTokens
				}
			case "content_block_start":
				if ev.ContentBlock != nil && ev.ContentBlock.Type == "tool_use" {
					buffers[ev.Index] = &toolCallBuffer{id: ev.ContentBlock.ID, name: ev.ContentBlock.Name}
				}
			case "content_block_delta":
				if ev.Delta == nil {
					return nil
				}
				switch ev.Delta.Type {
				case "text_delta":
					text.WriteString(ev.Delta.Text)
					if !emit(ctx, events, StreamEvent{Type: StreamEventText, Delta: ev.Delta.Text}) {
						return io.EOF
					}
				case "input_json_delta":
					if buf, ok := buffers[ev.Index]; ok {
						buf.args.WriteString(ev.Delta.PartialJSON)
					}
				}
			case "message_delta":
				if ev.Delta != nil && ev.Delta.StopReason != "" {
					stop = ev.Delta.StopReason
				}
				if ev.Usage != nil {
					usage.OutputTokens = ev.Usage.OutputTokens
				}
			case "message_stop":
				return io.EOF
			}
			return nil
		})
		if err != nil && err != io.EOF {
			emit(ctx, events, StreamEvent{Type: StreamEventError, Err: err})
			return
		}

		resp := &Response{Content: text.String(), StopReason: stop, Usage: usage}
		indexes := make([]int, 0, len(buffers))
		for i := range buffers {
			indexes = append(indexes, i)
		}
		sort.Ints(indexes)
		for _, i := range indexes {
			buf := buffers[i]
			call := ToolCall{ID: buf.id, Name: buf.name, Arguments: decodeArguments(buf.args.String())}
			resp.ToolCalls = append(resp.ToolCalls, call)
			if !emit(ctx, events, StreamEvent{Type: StreamEventToolCall, ToolCall: &call}) {
				return
			}
		}

		emit(ctx, events, StreamEvent{Type: StreamEventDone, Response: resp})
	}()

	return events, nil
}

// --- HTTP plumbing ---

func (c *anthropicClient) newHTTPRequest(ctx context.Context, wireReq *anthropicRequest) (*http.Request, error) {
	body, err := json.Marshal(wireReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)
	return httpReq, nil
}

func (c *anthropicClient) doRequest(ctx context.Context, wireReq *anthropicRequest) ([]byte, error) {
	httpReq, err := c.newHTTPRequest(ctx, wireReq)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &Error{StatusCode: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{StatusCode: resp.StatusCode, Message: err.Error()}
	}
	if resp.StatusCode >= 400 {
		return nil, errorFromStatus(resp.StatusCode, body)
	}
	return body, nil
}

func (c *anthropicClient) doStreamRequest(ctx context.Context, wireReq *anthropicRequest) (*http.Response, error) {
	httpReq, err := c.newHTTPRequest(ctx, wireReq)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "text/event-stream")
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &Error{StatusCode: 0, Message: err.Error()}
	}
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, errorFromStatus(resp.StatusCode, body)
	}
	return resp, nil
}
