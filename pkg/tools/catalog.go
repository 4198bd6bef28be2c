package tools

import (
	"context"
	"fmt"
	"strings"
)

// IncidentBackend is the slice of the incident service the catalog needs.
// Implemented by services.IncidentService.
type IncidentBackend interface {
	CreateIncident(ctx context.Context, req IncidentRequest) (*IncidentRecord, error)
	UpdateIncident(ctx context.Context, incidentID string, update IncidentUpdate) (*IncidentRecord, error)
}

type IncidentRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Severity        string   `json:"severity"`
	Source          string   `json:"source"`
	AffectedDevices []string `json:"affected_devices,omitempty"`
}

type IncidentUpdate struct {
	Status string `json:"status,omitempty"`
	Note   string `json:"note,omitempty"`
}

type IncidentRecord struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Severity string `json:"severity"`
	Status   string `json:"status"`
}

// CatalogDeps are the collaborators the built-in tool handlers call into.
type CatalogDeps struct {
	Devices   DeviceBackend
	Knowledge KnowledgeBackend
	Incidents IncidentBackend
}

// RegisterCatalog registers the fixed network operations tool set.
func RegisterCatalog(r *Registry, deps CatalogDeps) error {
	catalog := []*Tool{
		listDevicesTool(deps.Devices),
		runShowCommandTool(deps.Devices),
		runShowCommandsTool(deps.Devices),
		pushDeviceConfigTool(deps.Devices),
		executeMOPTool(deps.Devices),
		searchKnowledgeTool(deps.Knowledge),
		listKnowledgeTool(deps.Knowledge),
		expandKnowledgeContextTool(deps.Knowledge),
		createIncidentTool(deps.Incidents),
		updateIncidentTool(deps.Incidents),
		handoffTool(),
		escalateTool(),
	}
	for _, t := range catalog {
		if err := r.Register(t); err != nil {
			return fmt.Errorf("failed to register tool %s: %w", t.Name, err)
		}
	}
	return nil
}

func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		req := make([]any, len(required))
		for i, f := range required {
			req[i] = f
		}
		schema["required"] = req
	}
	return schema
}

func stringProp(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func listDevicesTool(backend DeviceBackend) *Tool {
	return &Tool{
		Name:        "list_devices",
		Description: "List network devices in the inventory, optionally filtered by name, site, role, or platform substring.",
		InputSchema: objectSchema(map[string]any{
			"filter": stringProp("Optional substring filter applied to device name, site, role, and platform."),
		}),
		Category:  "device",
		RiskLevel: RiskLow,
		Handler: func(ctx context.Context, execCtx *ExecutionContext, args map[string]any) (*Result, error) {
			filter, _ := args["filter"].(string)
			devices, err := backend.ListDevices(ctx, filter)
			if err != nil {
				return nil, err
			}
			return &Result{Success: true, Data: map[string]any{"devices": devices, "count": len(devices)}}, nil
		},
	}
}

func runShowCommandTool(backend DeviceBackend) *Tool {
	return &Tool{
		Name:        "run_show_command",
		Description: "Run a single read-only show command on a network device and return its output.",
		InputSchema: objectSchema(map[string]any{
			"device_name": stringProp("Device to run the command on."),
			"command":     stringProp("The show command to execute."),
			"parse_hint":  stringProp("Optional template hint for structured parsing of the output."),
		}, "device_name", "command"),
		Category:  "device",
		RiskLevel: RiskLow,
		Handler: func(ctx context.Context, execCtx *ExecutionContext, args map[string]any) (*Result, error) {
			device, _ := args["device_name"].(string)
			command, _ := args["command"].(string)
			parseHint, _ := args["parse_hint"].(string)
			out, err := backend.Show(ctx, device, command, parseHint)
			if err != nil {
				return nil, err
			}
			return &Result{Success: true, Data: out}, nil
		},
	}
}

func runShowCommandsTool(backend DeviceBackend) *Tool {
	return &Tool{
		Name:        "run_show_commands",
		Description: "Run several read-only show commands on one device sequentially. Partial failures are reported per command.",
		InputSchema: objectSchema(map[string]any{
			"device_name": stringProp("Device to run the commands on."),
			"commands": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Show commands to execute in order.",
			},
		}, "device_name", "commands"),
		Category:  "device",
		RiskLevel: RiskLow,
		Handler: func(ctx context.Context, execCtx *ExecutionContext, args map[string]any) (*Result, error) {
			device, _ := args["device_name"].(string)
			commands := stringSlice(args["commands"])
			if len(commands) == 0 {
				return &Result{Success: false, Error: "commands must be a non-empty list of strings"}, nil
			}

			results := make([]map[string]any, 0, len(commands))
			failures := 0
			for _, cmd := range commands {
				out, err := backend.Show(ctx, device, cmd, "")
				if err != nil {
					failures++
					results = append(results, map[string]any{"command": cmd, "error": err.Error()})
					continue
				}
				results = append(results, map[string]any{"command": cmd, "output": out.Output, "parsed": out.Parsed})
			}
			return &Result{
				Success: failures < len(commands),
				Data:    map[string]any{"device": device, "results": results, "failures": failures},
			}, nil
		},
	}
}

func pushDeviceConfigTool(backend DeviceBackend) *Tool {
	return &Tool{
		Name:        "push_device_config",
		Description: "Apply configuration lines to a network device. Requires human approval. Set dry_run to preview the diff without applying.",
		InputSchema: objectSchema(map[string]any{
			"device_name": stringProp("Device to configure."),
			"config_lines": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Configuration lines to apply in order.",
			},
			"dry_run": map[string]any{"type": "boolean", "description": "Preview the change without applying it."},
		}, "device_name", "config_lines"),
		Category:         "device",
		RiskLevel:        RiskHigh,
		RequiresApproval: true,
		Handler: func(ctx context.Context, execCtx *ExecutionContext, args map[string]any) (*Result, error) {
			device, _ := args["device_name"].(string)
			lines := stringSlice(args["config_lines"])
			if len(lines) == 0 {
				return &Result{Success: false, Error: "config_lines must be a non-empty list of strings"}, nil
			}
			dryRun, _ := args["dry_run"].(bool)
			out, err := backend.Configure(ctx, device, lines, dryRun)
			if err != nil {
				return nil, err
			}
			return &Result{Success: true, Data: out}, nil
		},
	}
}

func executeMOPTool(backend DeviceBackend) *Tool {
	return &Tool{
		Name:        "execute_mop",
		Description: "Execute a pre-defined method of procedure (MOP) against the network. Requires human approval.",
		InputSchema: objectSchema(map[string]any{
			"mop_id": stringProp("Identifier of the MOP to execute."),
			"params": map[string]any{
				"type":        "object",
				"description": "MOP-specific parameters.",
			},
		}, "mop_id"),
		Category:         "automation",
		RiskLevel:        RiskHigh,
		RequiresApproval: true,
		Handler: func(ctx context.Context, execCtx *ExecutionContext, args map[string]any) (*Result, error) {
			mopID, _ := args["mop_id"].(string)
			params, _ := args["params"].(map[string]any)
			out, err := backend.RunMOP(ctx, mopID, params)
			if err != nil {
				return nil, err
			}
			return &Result{Success: true, Data: out}, nil
		},
	}
}

func searchKnowledgeTool(backend KnowledgeBackend) *Tool {
	return &Tool{
		Name:        "search_knowledge",
		Description: "Search runbooks and operational documentation for relevant entries.",
		InputSchema: objectSchema(map[string]any{
			"query": stringProp("Search query describing the problem or topic."),
			"limit": map[string]any{"type": "integer", "description": "Maximum number of results, default 5."},
		}, "query"),
		Category:  "knowledge",
		RiskLevel: RiskLow,
		Handler: func(ctx context.Context, execCtx *ExecutionContext, args map[string]any) (*Result, error) {
			query, _ := args["query"].(string)
			limit := intArg(args["limit"])
			hits, err := backend.Search(ctx, query, limit)
			if err != nil {
				return nil, err
			}
			return &Result{Success: true, Data: map[string]any{"hits": hits, "count": len(hits)}}, nil
		},
	}
}

func listKnowledgeTool(backend KnowledgeBackend) *Tool {
	return &Tool{
		Name:        "list_knowledge",
		Description: "List available runbooks and documentation, optionally within one category.",
		InputSchema: objectSchema(map[string]any{
			"category": stringProp("Optional category to filter by (runbook, design, postmortem)."),
		}),
		Category:  "knowledge",
		RiskLevel: RiskLow,
		Handler: func(ctx context.Context, execCtx *ExecutionContext, args map[string]any) (*Result, error) {
			category, _ := args["category"].(string)
			docs, err := backend.List(ctx, category)
			if err != nil {
				return nil, err
			}
			return &Result{Success: true, Data: map[string]any{"docs": docs, "count": len(docs)}}, nil
		},
	}
}

func expandKnowledgeContextTool(backend KnowledgeBackend) *Tool {
	return &Tool{
		Name:        "expand_knowledge_context",
		Description: "Fetch the full content of one knowledge document found via search_knowledge or list_knowledge.",
		InputSchema: objectSchema(map[string]any{
			"doc_id": stringProp("Document identifier to expand."),
		}, "doc_id"),
		Category:  "knowledge",
		RiskLevel: RiskLow,
		Handler: func(ctx context.Context, execCtx *ExecutionContext, args map[string]any) (*Result, error) {
			docID, _ := args["doc_id"].(string)
			doc, err := backend.Expand(ctx, docID)
			if err != nil {
				return nil, err
			}
			return &Result{Success: true, Data: doc}, nil
		},
	}
}

func createIncidentTool(backend IncidentBackend) *Tool {
	return &Tool{
		Name:        "create_incident",
		Description: "Create an incident ticket for a confirmed network problem that needs tracked remediation.",
		InputSchema: objectSchema(map[string]any{
			"title":       stringProp("Short incident title."),
			"description": stringProp("What is broken, evidence gathered, and impact."),
			"severity":    stringProp("One of: critical, major, minor, warning."),
			"affected_devices": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Devices involved in the incident.",
			},
		}, "title", "description", "severity"),
		Category:  "incident",
		RiskLevel: RiskMedium,
		Handler: func(ctx context.Context, execCtx *ExecutionContext, args map[string]any) (*Result, error) {
			title, _ := args["title"].(string)
			description, _ := args["description"].(string)
			severity, _ := args["severity"].(string)
			rec, err := backend.CreateIncident(ctx, IncidentRequest{
				Title:           title,
				Description:     description,
				Severity:        strings.ToLower(severity),
				Source:          "agent",
				AffectedDevices: stringSlice(args["affected_devices"]),
			})
			if err != nil {
				return nil, err
			}
			return &Result{Success: true, Data: rec}, nil
		},
	}
}

func updateIncidentTool(backend IncidentBackend) *Tool {
	return &Tool{
		Name:        "update_incident",
		Description: "Update the status of an existing incident or append an investigation note.",
		InputSchema: objectSchema(map[string]any{
			"incident_id": stringProp("Incident to update."),
			"status":      stringProp("Optional new status (open, mitigated, resolved, closed)."),
			"note":        stringProp("Optional note to append to the incident timeline."),
		}, "incident_id"),
		Category:  "incident",
		RiskLevel: RiskMedium,
		Handler: func(ctx context.Context, execCtx *ExecutionContext, args map[string]any) (*Result, error) {
			incidentID, _ := args["incident_id"].(string)
			status, _ := args["status"].(string)
			note, _ := args["note"].(string)
			if status == "" && note == "" {
				return &Result{Success: false, Error: "provide status or note"}, nil
			}
			rec, err := backend.UpdateIncident(ctx, incidentID, IncidentUpdate{Status: strings.ToLower(status), Note: note})
			if err != nil {
				return nil, err
			}
			return &Result{Success: true, Data: rec}, nil
		},
	}
}

// HandoffToolName and EscalateToolName are matched by the executor to decide
// turn termination and escalation events.
const (
	HandoffToolName  = "handoff_to_agent"
	EscalateToolName = "escalate_to_human"
)

// handoffTool transfers the conversation to a specialist agent. The handler
// only validates and echoes the payload; the executor interprets a
// successful result as the end of the current agent's turn.
func handoffTool() *Tool {
	return &Tool{
		Name:        HandoffToolName,
		Description: "Hand the conversation off to a specialist agent better suited for this issue. Ends your turn.",
		InputSchema: objectSchema(map[string]any{
			"target_agent": stringProp("Specialist agent type to hand off to (bgp, ospf, isis, layer2, mpls, automation, documentation, general)."),
			"summary":      stringProp("Summary of findings so far for the specialist to start from."),
		}, "target_agent", "summary"),
		Category:  "control",
		RiskLevel: RiskLow,
		Internal:  true,
		Handler: func(ctx context.Context, execCtx *ExecutionContext, args map[string]any) (*Result, error) {
			target, _ := args["target_agent"].(string)
			summary, _ := args["summary"].(string)
			if target == "" {
				return &Result{Success: false, Error: "target_agent must not be empty"}, nil
			}
			return &Result{Success: true, Data: map[string]any{
				"target_agent": strings.ToLower(target),
				"summary":      summary,
			}}, nil
		},
	}
}

// escalateTool flags the session for human attention. Unlike handoff it does
// not end the turn; the agent may still summarize afterwards.
func escalateTool() *Tool {
	return &Tool{
		Name:        EscalateToolName,
		Description: "Escalate this issue to a human network engineer when it is beyond safe automated handling.",
		InputSchema: objectSchema(map[string]any{
			"reason":   stringProp("Why human attention is needed."),
			"severity": stringProp("Urgency of the escalation (critical, major, minor)."),
		}, "reason"),
		Category:  "control",
		RiskLevel: RiskLow,
		Internal:  true,
		Handler: func(ctx context.Context, execCtx *ExecutionContext, args map[string]any) (*Result, error) {
			reason, _ := args["reason"].(string)
			severity, _ := args["severity"].(string)
			if severity == "" {
				severity = "major"
			}
			return &Result{Success: true, Data: map[string]any{
				"reason":   reason,
				"severity": strings.ToLower(severity),
			}}, nil
		},
	}
}

// stringSlice coerces a decoded JSON value into []string, skipping
// non-string elements.
func stringSlice(v any) []string {
	switch vals := v.(type) {
	case []string:
		return vals
	case []any:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// intArg coerces a decoded JSON number into int; returns 0 when absent.
func intArg(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}
