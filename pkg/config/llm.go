package config

import (
	"fmt"
	"sync"
	"time"
)

// ProviderKind identifies the wire protocol a provider speaks.
type ProviderKind string

const (
	ProviderKindOpenAI     ProviderKind = "openai"
	ProviderKindOpenRouter ProviderKind = "openrouter"
	ProviderKindAnthropic  ProviderKind = "anthropic"
)

// ProviderConfig defines one LLM provider.
type ProviderConfig struct {
	// Wire protocol (required)
	Kind ProviderKind `yaml:"kind"`

	// Model name (required)
	Model string `yaml:"model"`

	// Environment variable holding the API key
	APIKeyEnv string `yaml:"api_key_env"`

	// Optional custom endpoint
	BaseURL string `yaml:"base_url,omitempty"`

	// Sampling defaults, overridable per agent
	Temperature float64 `yaml:"temperature,omitempty"`
	MaxTokens   int     `yaml:"max_tokens,omitempty"`

	// Per-call network timeout
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

func (p *ProviderConfig) applyDefaults() {
	if p.Timeout <= 0 {
		p.Timeout = DefaultLLMTimeout
	}
	if p.MaxTokens <= 0 {
		p.MaxTokens = DefaultMaxTokens
	}
}

func (p *ProviderConfig) validate() error {
	switch p.Kind {
	case ProviderKindOpenAI, ProviderKindOpenRouter, ProviderKindAnthropic:
	default:
		return fmt.Errorf("%w: unsupported provider kind %q", ErrInvalidConfig, p.Kind)
	}
	if p.Model == "" {
		return fmt.Errorf("%w: model is required", ErrInvalidConfig)
	}
	return nil
}

// ProviderRegistry stores provider configurations with thread-safe access.
type ProviderRegistry struct {
	providers map[string]*ProviderConfig
	mu        sync.RWMutex
}

// NewProviderRegistry creates a registry from a provider map.
func NewProviderRegistry(providers map[string]*ProviderConfig) *ProviderRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*ProviderConfig, len(providers))
	for k, v := range providers {
		copied[k] = v
	}
	return &ProviderRegistry{providers: copied}
}

// Get retrieves a provider configuration by name.
func (r *ProviderRegistry) Get(name string) (*ProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotFound, name)
	}
	return p, nil
}

// Has checks whether a provider exists in the registry.
func (r *ProviderRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.providers[name]
	return exists
}

// Len returns the number of registered providers.
func (r *ProviderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}
