package config

import "errors"

var (
	// ErrInvalidConfig indicates the configuration file failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrProviderNotFound indicates a lookup for an unregistered LLM provider.
	ErrProviderNotFound = errors.New("llm provider not found")
)
