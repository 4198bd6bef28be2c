package llm

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/nocforge/nocforge/pkg/config"
)

// Client is the provider-agnostic chat interface.
type Client interface {
	// Chat sends one conversation turn and blocks for the full response.
	Chat(ctx context.Context, req *ChatRequest) (*Response, error)

	// StreamChat sends one conversation turn and returns a stream of events.
	// The channel is closed after a done or error event. Partial tool-call
	// JSON fragments are accumulated internally; callers only ever see
	// complete tool calls.
	StreamChat(ctx context.Context, req *ChatRequest) (<-chan StreamEvent, error)

	// Model returns the configured model name, for audit records.
	Model() string
}

// New resolves the active provider from configuration and returns a client
// for it. Configuration problems (unknown provider, missing API key) are
// hard errors here, before any network call is attempted.
func New(cfg *config.LLMConfig) (Client, error) {
	pc, ok := cfg.Providers[cfg.ActiveProvider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotFound, cfg.ActiveProvider)
	}
	return NewForProvider(pc)
}

// NewForProvider returns a client for one provider definition.
func NewForProvider(pc *config.ProviderConfig) (Client, error) {
	apiKey := ""
	if pc.APIKeyEnv != "" {
		apiKey = os.Getenv(pc.APIKeyEnv)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: environment variable %q is empty", ErrAPIKeyMissing, pc.APIKeyEnv)
	}

	httpClient := &http.Client{Timeout: pc.Timeout}

	switch pc.Kind {
	case config.ProviderKindOpenAI, config.ProviderKindOpenRouter:
		return newOpenAIClient(pc, apiKey, httpClient), nil
	case config.ProviderKindAnthropic:
		return newAnthropicClient(pc, apiKey, httpClient), nil
	default:
		return nil, fmt.Errorf("%w: unsupported kind %q", ErrProviderNotFound, pc.Kind)
	}
}
