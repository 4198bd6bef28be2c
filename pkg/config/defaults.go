package config

import "time"

// Agent runtime defaults.
const (
	DefaultMaxIterations = 10
	DefaultTemperature   = 0.2
	DefaultMaxTokens     = 4096
	DefaultRunTimeout    = 10 * time.Minute
)

// LLM client defaults.
const (
	DefaultLLMTimeout = 120 * time.Second
)

// Approval gate defaults.
const (
	DefaultApprovalExpiryMinutes = 60
	DefaultApprovalSweepInterval = time.Minute
)

// Event log retention defaults.
const (
	DefaultEventTTL        = 24 * time.Hour
	DefaultCleanupInterval = time.Hour
)

// Queue defaults.
const (
	DefaultWorkerCount             = 2
	DefaultPollInterval            = 2 * time.Second
	DefaultSessionTimeout          = 15 * time.Minute
	DefaultGracefulShutdownTimeout = 30 * time.Second
)
