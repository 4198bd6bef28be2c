package workflow

import (
	"strings"

	"github.com/nocforge/nocforge/pkg/llm"
)

// modelRate is USD per million tokens.
type modelRate struct {
	input  float64
	output float64
}

// modelRates holds pricing for the models the platform commonly runs on.
// Matching is by longest prefix so dated model ids pick up their family
// rate. Unknown models fall back to defaultRate.
var modelRates = map[string]modelRate{
	"gpt-4o":            {2.50, 10.00},
	"gpt-4o-mini":       {0.15, 0.60},
	"gpt-4.1":           {2.00, 8.00},
	"gpt-4.1-mini":      {0.40, 1.60},
	"claude-opus-4":     {15.00, 75.00},
	"claude-sonnet-4":   {3.00, 15.00},
	"claude-3-5-haiku":  {0.80, 4.00},
	"claude-3-5-sonnet": {3.00, 15.00},
}

var defaultRate = modelRate{1.00, 3.00}

// EstimateCost converts a usage total into an estimated USD cost for the
// given model. Audit-only; never used for billing.
func EstimateCost(model string, usage llm.Usage) float64 {
	rate := defaultRate
	bestLen := 0
	for prefix, r := range modelRates {
		if strings.HasPrefix(model, prefix) && len(prefix) > bestLen {
			rate = r
			bestLen = len(prefix)
		}
	}
	return float64(usage.InputTokens)*rate.input/1e6 + float64(usage.OutputTokens)*rate.output/1e6
}
