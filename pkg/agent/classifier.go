package agent

import "strings"

// Classification is the triage classifier's verdict for one issue.
type Classification struct {
	Category      string  `json:"category"`
	Confidence    float64 `json:"confidence"`
	ShouldHandoff bool    `json:"should_handoff"`

	// Scores holds the raw per-category scores for observability.
	Scores map[string]float64 `json:"scores,omitempty"`
}

// diagnosticWeight discounts keyword hits in diagnostic output relative to
// hits in the alert description.
const diagnosticWeight = 0.5

// handoffThreshold is the confidence above which triage should hand off.
const handoffThreshold = 0.5

// categoryKeywords are the fixed keyword sets the classifier scores against.
// Matching is case-insensitive substring containment; each keyword counts at
// most once per text, and a keyword embedded in a longer matched keyword
// ("spf" inside "ospf") does not count separately.
var categoryKeywords = map[string][]string{
	TypeBGP: {
		"bgp", "neighbor", "peering", "flapping", "as-path", "as path",
		"route advertisement", "prefix", "ebgp", "ibgp", "route reflector",
	},
	TypeOSPF: {
		"ospf", "adjacency", "lsa", "spf", "area 0", "backbone area",
		"dr election", "exstart", "hello timer",
	},
	TypeISIS: {
		"isis", "is-is", "lsp", "level-1", "level-2", "clns", "net address",
		"circuit type",
	},
	TypeLayer2: {
		"vlan", "spanning-tree", "spanning tree", "stp", "mac address",
		"trunk", "broadcast storm", "mac flap", "bpdu", "port-channel",
	},
}

// ClassifyIssue scores an issue's description and diagnostic output against
// the specialist keyword sets and picks the best-matching category.
//
// score = matches(description) + 0.5 * matches(diagnostics)
// confidence = min(score/3, 1)
// shouldHandoff when confidence > 0.5
//
// Deterministic and stateless; constants are load-bearing for routing
// behavior and must not drift.
func ClassifyIssue(description, diagnostics string) Classification {
	desc := strings.ToLower(description)
	diag := strings.ToLower(diagnostics)

	// Fixed evaluation order keeps tie-breaking deterministic.
	order := []string{TypeBGP, TypeOSPF, TypeISIS, TypeLayer2}

	scores := make(map[string]float64, len(order))
	bestCategory := TypeGeneral
	var topScore float64
	for _, category := range order {
		kws := categoryKeywords[category]
		score := float64(len(matchKeywords(desc, kws)))
		if diag != "" {
			score += diagnosticWeight * float64(len(matchKeywords(diag, kws)))
		}
		scores[category] = score
		if score > topScore {
			topScore = score
			bestCategory = category
		}
	}

	if topScore <= 0 {
		return Classification{Category: TypeGeneral, Scores: scores}
	}

	confidence := topScore / 3
	if confidence > 1 {
		confidence = 1
	}
	return Classification{
		Category:      bestCategory,
		Confidence:    confidence,
		ShouldHandoff: confidence > handoffThreshold,
		Scores:        scores,
	}
}

// matchKeywords returns the keywords contained in text. A matched keyword
// that is a substring of another, longer matched keyword is discarded so one
// occurrence in the text cannot score twice.
func matchKeywords(text string, keywords []string) []string {
	var matched []string
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			matched = append(matched, kw)
		}
	}

	var distinct []string
	for i, kw := range matched {
		shadowed := false
		for j, longer := range matched {
			if i != j && len(longer) > len(kw) && strings.Contains(longer, kw) {
				shadowed = true
				break
			}
		}
		if !shadowed {
			distinct = append(distinct, kw)
		}
	}
	return distinct
}
