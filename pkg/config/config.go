// Package config provides configuration management for the NOC automation
// platform: LLM providers, agent runtime limits, backends, queue and
// approval settings.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level platform configuration, loaded from YAML with
// environment-variable expansion for secrets.
type Config struct {
	LLM       LLMConfig       `yaml:"llm"`
	Agents    AgentsConfig    `yaml:"agents"`
	Backends  BackendsConfig  `yaml:"backends"`
	Approvals ApprovalsConfig `yaml:"approvals"`
	Queue     QueueConfig     `yaml:"queue"`
	Retention RetentionConfig `yaml:"retention"`
}

// LLMConfig selects the active provider and holds provider definitions.
type LLMConfig struct {
	ActiveProvider string                     `yaml:"active_provider"`
	Providers      map[string]*ProviderConfig `yaml:"providers"`
}

// AgentsConfig holds runtime limits applied to every agent run.
type AgentsConfig struct {
	MaxIterations int           `yaml:"max_iterations"`
	Temperature   float64       `yaml:"temperature"`
	MaxTokens     int           `yaml:"max_tokens"`
	RunTimeout    time.Duration `yaml:"run_timeout"`
}

// BackendsConfig points at the external device and knowledge services.
type BackendsConfig struct {
	DeviceURL    string `yaml:"device_url"`
	KnowledgeURL string `yaml:"knowledge_url"`
}

// ApprovalsConfig controls the human approval gate.
type ApprovalsConfig struct {
	ExpiryMinutes int           `yaml:"expiry_minutes"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// RetentionConfig controls cleanup of the persisted event log.
type RetentionConfig struct {
	EventTTL        time.Duration `yaml:"event_ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// QueueConfig controls the alert worker pool.
type QueueConfig struct {
	WorkerCount             int           `yaml:"worker_count"`
	PollInterval            time.Duration `yaml:"poll_interval"`
	SessionTimeout          time.Duration `yaml:"session_timeout"`
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// Load reads and validates the configuration file, applying defaults for
// anything the file leaves unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Agents.MaxIterations <= 0 {
		c.Agents.MaxIterations = DefaultMaxIterations
	}
	if c.Agents.Temperature == 0 {
		c.Agents.Temperature = DefaultTemperature
	}
	if c.Agents.MaxTokens <= 0 {
		c.Agents.MaxTokens = DefaultMaxTokens
	}
	if c.Agents.RunTimeout <= 0 {
		c.Agents.RunTimeout = DefaultRunTimeout
	}
	if c.Approvals.ExpiryMinutes <= 0 {
		c.Approvals.ExpiryMinutes = DefaultApprovalExpiryMinutes
	}
	if c.Approvals.SweepInterval <= 0 {
		c.Approvals.SweepInterval = DefaultApprovalSweepInterval
	}
	if c.Queue.WorkerCount <= 0 {
		c.Queue.WorkerCount = DefaultWorkerCount
	}
	if c.Queue.PollInterval <= 0 {
		c.Queue.PollInterval = DefaultPollInterval
	}
	if c.Queue.SessionTimeout <= 0 {
		c.Queue.SessionTimeout = DefaultSessionTimeout
	}
	if c.Queue.GracefulShutdownTimeout <= 0 {
		c.Queue.GracefulShutdownTimeout = DefaultGracefulShutdownTimeout
	}
	if c.Retention.EventTTL <= 0 {
		c.Retention.EventTTL = DefaultEventTTL
	}
	if c.Retention.CleanupInterval <= 0 {
		c.Retention.CleanupInterval = DefaultCleanupInterval
	}
	for _, p := range c.LLM.Providers {
		p.applyDefaults()
	}
}

func (c *Config) validate() error {
	if c.LLM.ActiveProvider == "" {
		return fmt.Errorf("%w: llm.active_provider is required", ErrInvalidConfig)
	}
	if _, ok := c.LLM.Providers[c.LLM.ActiveProvider]; !ok {
		return fmt.Errorf("%w: active provider %q has no definition under llm.providers",
			ErrInvalidConfig, c.LLM.ActiveProvider)
	}
	for name, p := range c.LLM.Providers {
		if err := p.validate(); err != nil {
			return fmt.Errorf("provider %q: %w", name, err)
		}
	}
	return nil
}
