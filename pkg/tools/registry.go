package tools

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Registry resolves tool names to executable handlers. Constructed once at
// process start and passed into every executor; read-mostly afterwards.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*Tool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*Tool)}
}

// Register adds a tool. Re-registering a name replaces the previous entry.
func (r *Registry) Register(tool *Tool) error {
	if tool == nil || tool.Name == "" {
		return fmt.Errorf("tool must have a name")
	}
	if tool.Handler == nil {
		return fmt.Errorf("tool %q must have a handler", tool.Name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[tool.Name] = tool
	return nil
}

// Get returns a tool by name.
func (r *Registry) Get(name string) (*Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// List returns all tools sorted by name. Internal tools are included;
// callers building UI catalogs filter on Tool.Internal.
func (r *Registry) List() []*Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Subset returns the tools matching the given names, preserving name order.
// Unknown names are skipped. A nil name list returns the full catalog.
func (r *Registry) Subset(names []string) []*Tool {
	if names == nil {
		return r.List()
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Tool, 0, len(names))
	for _, name := range names {
		if t, ok := r.tools[name]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Execute validates args and runs the named tool. It never returns a Go
// error: unknown tools, validation failures, handler errors and handler
// panics all become failed Results.
//
// A tool with RequiresApproval set is not executed unless the context
// carries an approval id; the gated Result is returned for the executor
// to persist and pause on.
func (r *Registry) Execute(ctx context.Context, name string, execCtx *ExecutionContext, args map[string]any) *Result {
	tool, ok := r.Get(name)
	if !ok {
		return &Result{Success: false, Error: fmt.Sprintf("unknown tool: %s", name), RiskLevel: RiskLow}
	}

	if err := validateArgs(tool.InputSchema, args); err != nil {
		return &Result{Success: false, Error: err.Error(), RiskLevel: tool.RiskLevel}
	}

	if execCtx == nil {
		execCtx = &ExecutionContext{}
	}
	if tool.RequiresApproval && execCtx.ApprovalID == "" {
		return &Result{
			Success:          false,
			RequiresApproval: true,
			RiskLevel:        tool.RiskLevel,
			Data: map[string]any{
				"message": fmt.Sprintf("tool %s requires human approval before execution", name),
			},
		}
	}

	result := r.invoke(ctx, tool, execCtx, args)
	if result.RiskLevel == "" {
		result.RiskLevel = tool.RiskLevel
	}
	return result
}

// invoke runs the handler, converting errors and panics to failed Results.
func (r *Registry) invoke(ctx context.Context, tool *Tool, execCtx *ExecutionContext, args map[string]any) (result *Result) {
	defer func() {
		if rec := recover(); rec != nil {
			result = &Result{
				Success:   false,
				Error:     fmt.Sprintf("tool %s panicked: %v", tool.Name, rec),
				RiskLevel: tool.RiskLevel,
			}
		}
	}()

	res, err := tool.Handler(ctx, execCtx, args)
	if err != nil {
		return &Result{Success: false, Error: err.Error(), RiskLevel: tool.RiskLevel}
	}
	if res == nil {
		return &Result{Success: false, Error: fmt.Sprintf("tool %s returned no result", tool.Name), RiskLevel: tool.RiskLevel}
	}
	return res
}
