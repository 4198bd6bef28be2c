package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nocforge/nocforge/pkg/llm"
)

func TestEstimateCostKnownModel(t *testing.T) {
	usage := llm.Usage{InputTokens: 1_000_000, OutputTokens: 1_000_000}

	assert.InDelta(t, 12.50, EstimateCost("gpt-4o", usage), 1e-9)
	assert.InDelta(t, 0.75, EstimateCost("gpt-4o-mini", usage), 1e-9, "longest prefix must win over gpt-4o")
}

func TestEstimateCostDatedModelMatchesFamily(t *testing.T) {
	usage := llm.Usage{InputTokens: 2_000_000}

	assert.InDelta(t, 6.00, EstimateCost("claude-sonnet-4-20250514", usage), 1e-9)
}

func TestEstimateCostUnknownModelUsesDefault(t *testing.T) {
	usage := llm.Usage{InputTokens: 1_000_000, OutputTokens: 1_000_000}

	assert.InDelta(t, 4.00, EstimateCost("mystery-model-9", usage), 1e-9)
}

func TestEstimateCostZeroUsage(t *testing.T) {
	assert.Zero(t, EstimateCost("gpt-4o", llm.Usage{}))
}
