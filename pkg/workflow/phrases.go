package workflow

import "strings"

// Disposition phrases are matched case-insensitively as substrings of the
// agent's final response. The sets are fixed; routing behavior depends on
// them, so additions need the same care as a config schema change.

var noisePhrases = []string{
	"false positive",
	"no action needed",
	"duplicate alert",
	"not actionable",
	"can be safely ignored",
}

var resolvedPhrases = []string{
	"issue has been resolved",
	"problem is resolved",
	"back to normal",
	"resolved successfully",
	"issue is fixed",
}

func containsAnyPhrase(text string, phrases []string) bool {
	lower := strings.ToLower(text)
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// IsNoiseVerdict reports whether a triage final response declares the alert
// to be noise.
func IsNoiseVerdict(finalResponse string) bool {
	return containsAnyPhrase(finalResponse, noisePhrases)
}

// IsResolvedVerdict reports whether a specialist final response declares the
// issue resolved.
func IsResolvedVerdict(finalResponse string) bool {
	return containsAnyPhrase(finalResponse, resolvedPhrases)
}
