// Package agent defines the per-specialty agent configurations and the
// keyword classifier the triage agent uses to route issues to specialists.
package agent

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultMaxIterations caps the reasoning loop when a definition does not
// override it.
const DefaultMaxIterations = 10

// ErrUnknownAgentType is returned by Resolve for types not in the registry.
// Unknown types are a hard error at session creation; the executor never
// falls back to a default agent silently.
var ErrUnknownAgentType = errors.New("unknown agent type")

// Agent type identifiers.
const (
	TypeTriage        = "triage"
	TypeBGP           = "bgp"
	TypeOSPF          = "ospf"
	TypeISIS          = "isis"
	TypeLayer2        = "layer2"
	TypeMPLS          = "mpls"
	TypeAutomation    = "automation"
	TypeDocumentation = "documentation"
	TypeGeneral       = "general"
)

// Config is one agent type as pure data. Behavior differences between types
// are entirely prompt plus tool subset; there is no per-type code.
type Config struct {
	Type        string
	Name        string
	Description string

	SystemPrompt string

	// Tools is the explicit allow-list of tool names. A nil list opts into
	// the full catalog; only the general and automation types do that.
	Tools []string

	MaxIterations int

	// Temperature and MaxTokens of zero defer to the provider config.
	Temperature float64
	MaxTokens   int
}

// TypeInfo is the UI-facing summary of one agent type.
type TypeInfo struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var readOnlyDeviceTools = []string{
	"list_devices",
	"run_show_command",
	"run_show_commands",
}

var knowledgeTools = []string{
	"search_knowledge",
	"list_knowledge",
	"expand_knowledge_context",
}

// specialistTools is the shared subset for protocol specialists: read
// diagnostics, consult runbooks, propose config changes (approval-gated),
// track incidents, escalate.
func specialistTools() []string {
	tools := []string{}
	tools = append(tools, readOnlyDeviceTools...)
	tools = append(tools, knowledgeTools...)
	tools = append(tools,
		"push_device_config",
		"create_incident",
		"update_incident",
		"escalate_to_human",
	)
	return tools
}

func triageTools() []string {
	tools := []string{}
	tools = append(tools, readOnlyDeviceTools...)
	tools = append(tools, knowledgeTools...)
	tools = append(tools,
		"handoff_to_agent",
		"escalate_to_human",
		"create_incident",
	)
	return tools
}

var definitions = map[string]*Config{
	TypeTriage: {
		Type:          TypeTriage,
		Name:          "Triage Agent",
		Description:   "First responder for incoming alerts: gathers initial diagnostics, classifies the issue, and routes to a specialist or disposes of noise.",
		SystemPrompt:  triagePrompt,
		Tools:         triageTools(),
		MaxIterations: DefaultMaxIterations,
	},
	TypeBGP: {
		Type:          TypeBGP,
		Name:          "BGP Specialist",
		Description:   "Diagnoses BGP peering, route advertisement, and path selection problems.",
		SystemPrompt:  bgpPrompt,
		Tools:         specialistTools(),
		MaxIterations: DefaultMaxIterations,
	},
	TypeOSPF: {
		Type:          TypeOSPF,
		Name:          "OSPF Specialist",
		Description:   "Diagnoses OSPF adjacency, LSA propagation, and SPF convergence problems.",
		SystemPrompt:  ospfPrompt,
		Tools:         specialistTools(),
		MaxIterations: DefaultMaxIterations,
	},
	TypeISIS: {
		Type:          TypeISIS,
		Name:          "IS-IS Specialist",
		Description:   "Diagnoses IS-IS adjacency, LSP flooding, and level configuration problems.",
		SystemPrompt:  isisPrompt,
		Tools:         specialistTools(),
		MaxIterations: DefaultMaxIterations,
	},
	TypeLayer2: {
		Type:          TypeLayer2,
		Name:          "Layer 2 Specialist",
		Description:   "Diagnoses VLAN, spanning-tree, MAC learning, and trunking problems.",
		SystemPrompt:  layer2Prompt,
		Tools:         specialistTools(),
		MaxIterations: DefaultMaxIterations,
	},
	TypeMPLS: {
		Type:          TypeMPLS,
		Name:          "MPLS Specialist",
		Description:   "Diagnoses MPLS label distribution, LSP, and L3VPN problems.",
		SystemPrompt:  mplsPrompt,
		Tools:         specialistTools(),
		MaxIterations: DefaultMaxIterations,
	},
	TypeAutomation: {
		Type:          TypeAutomation,
		Name:          "Automation Agent",
		Description:   "Executes operational procedures and configuration changes across the network with full tool access.",
		SystemPrompt:  automationPrompt,
		Tools:         nil, // full catalog
		MaxIterations: DefaultMaxIterations,
	},
	TypeDocumentation: {
		Type:          TypeDocumentation,
		Name:          "Documentation Agent",
		Description:   "Answers questions from runbooks and operational documentation.",
		SystemPrompt:  documentationPrompt,
		Tools:         knowledgeTools,
		MaxIterations: DefaultMaxIterations,
	},
	TypeGeneral: {
		Type:          TypeGeneral,
		Name:          "General Network Agent",
		Description:   "Broad network troubleshooting when no specialist matches.",
		SystemPrompt:  generalPrompt,
		Tools:         nil, // full catalog
		MaxIterations: DefaultMaxIterations,
	},
}

// Resolve returns the configuration for an agent type.
func Resolve(agentType string) (*Config, error) {
	cfg, ok := definitions[agentType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAgentType, agentType)
	}
	// Copy so callers cannot mutate the registry entry.
	out := *cfg
	if cfg.Tools != nil {
		out.Tools = append([]string(nil), cfg.Tools...)
	}
	return &out, nil
}

// IsKnownType reports whether the type exists without resolving it.
func IsKnownType(agentType string) bool {
	_, ok := definitions[agentType]
	return ok
}

// ListTypes returns all agent types sorted by type id.
func ListTypes() []TypeInfo {
	out := make([]TypeInfo, 0, len(definitions))
	for _, cfg := range definitions {
		out = append(out, TypeInfo{Type: cfg.Type, Name: cfg.Name, Description: cfg.Description})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}
