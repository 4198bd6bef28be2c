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
	defaultOpenAIBaseURL     = "https://api.openai.com/v1"
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
)

// openAIClient speaks the OpenAI chat-completions protocol. OpenRouter uses
// the same wire format with a different base URL.
type openAIClient struct {
	cfg        *config.ProviderConfig
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func newOpenAIClient(pc *config.ProviderConfig, apiKey string, httpClient *http.Client) *openAIClient {
	baseURL := pc.BaseURL
	if baseURL == "" {
		if pc.Kind == config.ProviderKindOpenRouter {
			baseURL = defaultOpenRouterBaseURL
		} else {
			baseURL = defaultOpenAIBaseURL
		}
	}
	return &openAIClient{
		cfg:        pc,
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *openAIClient) Model() string { return c.cfg.Model }

// --- Wire types ---

type openAIMessage struct {
	Role       string           `json:"role"`
	Content    string           `json:"content"`
	ToolCalls  []openAIToolCall `json:"tool_calls,omitempty"`
	ToolCallID string           `json:"tool_call_id,omitempty"`
}

type openAIToolCall struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Function openAIFunction `json:"function"`
}

type openAIFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type openAITool struct {
	Type     string           `json:"type"`
	Function openAIToolSchema `json:"function"`
}

type openAIToolSchema struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Tools       []openAITool    `json:"tools,omitempty"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
	Stream      bool            `json:"stream,omitempty"`
}

type openAIResponse struct {
	Choices []struct {
		Message      openAIMessage `json:"message"`
		FinishReason string        `json:"finish_reason"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

// --- Translation: internal → wire ---

// toOpenAIMessages maps internal messages to the chat-completions shape.
// OpenAI accepts inline system messages: the first is kept in place and any
// later system messages are merged into it.
func toOpenAIMessages(messages []Message) []openAIMessage {
	out := make([]openAIMessage, 0, len(messages))
	firstSystem := -1
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			if firstSystem >= 0 {
				out[firstSystem].Content += "\n\n" + m.Content
				continue
			}
			firstSystem = len(out)
			out = append(out, openAIMessage{Role: "system", Content: m.Content})
		case RoleAssistant:
			om := openAIMessage{Role: "assistant", Content: m.Content}
			for _, tc := range m.ToolCalls {
				om.ToolCalls = append(om.ToolCalls, openAIToolCall{
					ID:   tc.ID,
					Type: "function",
					Function: openAIFunction{
						Name:      tc.Name,
						Arguments: encodeArguments(tc.Arguments),
					},
				})
			}
			out = append(out, om)
		case RoleTool:
			out = append(out, openAIMessage{
				Role:       "tool",
				Content:    m.Content,
				ToolCallID: m.ToolCallID,
			})
		default:
			out = append(out, openAIMessage{Role: "user", Content: m.Content})
		}
	}
	return out
}

func toOpenAITools(tools []ToolSchema) []openAITool {
	if len(tools) == 0 {
		return nil
	}
	out := make([]openAITool, len(tools))
	for i, t := range tools {
		out[i] = openAITool{
			Type: "function",
			Function: openAIToolSchema{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.InputSchema,
			},
		}
	}
	return out
}

// --- Translation: wire → internal ---

func fromOpenAIMessage(m openAIMessage, finishReason string, usage Usage) *Response {
	resp := &Response{
		Content:    m.Content,
		StopReason: finishReason,
		Usage:      usage,
	}
	for _, tc := range m.ToolCalls {
		resp.ToolCalls = append(resp.ToolCalls, ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: decodeArguments(tc.Function.Arguments),
		})
	}
	return resp
}

// --- Chat ---

func (c *openAIClient) Chat(ctx context.Context, req *ChatRequest) (*Response, error) {
	body, err := c.doRequest(ctx, c.buildRequest(req, false))
	if err != nil {
		return nil, err
	}

	var parsed openAIResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &Error{StatusCode: http.StatusOK, Message: fmt.Sprintf("malformed provider response: %v", err)}
	}
	if len(parsed.Choices) == 0 {
		return nil, &Error{StatusCode: http.StatusOK, Message: "provider returned no choices"}
	}

	usage := Usage{}
	if parsed.Usage != nil {
		usage.InputTokens = parsed.Usage.PromptTokens
		usage.OutputTokens = parsed.Usage.CompletionTokens
	}
	choice := parsed.Choices[0]
	return fromOpenAIMessage(choice.Message, choice.FinishReason, usage), nil
}

// --- Streaming ---

type openAIStreamChunk struct {
	Choices []struct {
		Delta struct {
			Content   string `json:"content"`
			ToolCalls []struct {
				Index    int    `json:"index"`
				ID       string `json:"id"`
				Function struct {
					Name      string `json:"name"`
					Arguments string `json:"arguments"`
				} `json:"function"`
			} `json:"tool_calls"`
		} `json:"delta"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

// toolCallBuffer accumulates partial tool-call fragments keyed by stream index.
type toolCallBuffer struct {
	id   string
	name string
	args strings.Builder
}

func (c *openAIClient) StreamChat(ctx context.Context, req *ChatRequest) (<-chan StreamEvent, error) {
	httpResp, err := c.doStreamRequest(ctx, c.buildRequest(req, true))
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
			if data == "[DONE]" {
				return io.EOF
			}
			var chunk openAIStreamChunk
			if err := json.Unmarshal([]byte(data), &chunk); err != nil {
				// Skip malformed keep-alive frames rather than failing the turn.
				return nil
			}
			if chunk.Usage != nil {
				usage.InputTokens = chunk.Usage.PromptTokens
				usage.OutputTokens = chunk.Usage.CompletionTokens
			}
			if len(chunk.Choices) == 0 {
				return nil
			}
			choice := chunk.Choices[0]
			if choice.FinishReason != "" {
				stop = choice.FinishReason
			}
			if choice.Delta.Content != "" {
				text.WriteString(choice.Delta.Content)
				if !emit(ctx, events, StreamEvent{Type: StreamEventText, Delta: choice.Delta.Content}) {
					return io.EOF
				}
			}
			for _, tc := range choice.Delta.ToolCalls {
				buf, ok := buffers[tc.Index]
				if !ok {
					buf = &toolCallBuffer{}
					buffers[tc.Index] = buf
				}
				if tc.ID != "" {
					buf.id = tc.ID
				}
				if tc.Function.Name != "" {
					buf.name = tc.Function.Name
				}
				buf.args.WriteString(tc.Function.Arguments)
			}
			return nil
		})
		if err != nil && err != io.EOF {
			emit(ctx, events, StreamEvent{Type: StreamEventError, Err: err})
			return
		}

		// Finalize accumulated tool calls in stream index order.
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

func (c *openAIClient) buildRequest(req *ChatRequest, stream bool) *openAIRequest {
	return &openAIRequest{
		Model:       c.cfg.Model,
		Messages:    toOpenAIMessages(req.Messages),
		Tools:       toOpenAITools(req.Tools),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Stream:      stream,
	}
}

func (c *openAIClient) newHTTPRequest(ctx context.Context, wireReq *openAIRequest) (*http.Request, error) {
	body, err := json.Marshal(wireReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	return httpReq, nil
}

func (c *openAIClient) doRequest(ctx context.Context, wireReq *openAIRequest) ([]byte, error) {
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

func (c *openAIClient) doStreamRequest(ctx context.Context, wireReq *openAIRequest) (*http.Response, error) {
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
