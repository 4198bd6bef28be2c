package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configSchema() map[string]any {
	return objectSchema(map[string]any{
		"device_name": stringProp("device"),
		"config_lines": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
	}, "device_name")
}

func TestRegistryExecuteUnknownTool(t *testing.T) {
	r := NewRegistry()

	result := r.Execute(context.Background(), "no_such_tool", nil, nil)

	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Equal(t, "unknown tool: no_such_tool", result.Error)
}

func TestRegistryExecuteValidationFailureSkipsHandler(t *testing.T) {
	r := NewRegistry()
	invoked := false
	require.NoError(t, r.Register(&Tool{
		Name:        "device_config",
		InputSchema: configSchema(),
		RiskLevel:   RiskHigh,
		Handler: func(ctx context.Context, execCtx *ExecutionContext, args map[string]any) (*Result, error) {
			invoked = true
			return &Result{Success: true}, nil
		},
	}))

	result := r.Execute(context.Background(), "device_config", nil, map[string]any{})

	assert.False(t, result.Success)
	assert.Equal(t, "Missing required field: device_name", result.Error)
	assert.False(t, invoked, "handler must not run on validation failure")
}

func TestRegistryExecuteTypeMismatch(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&Tool{
		Name:        "device_config",
		InputSchema: configSchema(),
		Handler: func(ctx context.Context, execCtx *ExecutionContext, args map[string]any) (*Result, error) {
			return &Result{Success: true}, nil
		},
	}))

	result := r.Execute(context.Background(), "device_config", nil, map[string]any{
		"device_name": 42,
	})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "Invalid type for field: device_name")
}

func TestRegistryExecuteHandlerErrorBecomesResult(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&Tool{
		Name:      "flaky",
		RiskLevel: RiskMedium,
		Handler: func(ctx context.Context, execCtx *ExecutionContext, args map[string]any) (*Result, error) {
			return nil, errors.New("backend unreachable")
		},
	}))

	result := r.Execute(context.Background(), "flaky", nil, nil)

	assert.False(t, result.Success)
	assert.Equal(t, "backend unreachable", result.Error)
	assert.Equal(t, RiskMedium, result.RiskLevel)
}

func TestRegistryExecuteRecoversPanic(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&Tool{
		Name: "explosive",
		Handler: func(ctx context.Context, execCtx *ExecutionContext, args map[string]any) (*Result, error) {
			panic("boom")
		},
	}))

	result := r.Execute(context.Background(), "explosive", nil, nil)

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "explosive panicked")
	assert.Contains(t, result.Error, "boom")
}

func TestRegistryExecuteApprovalGate(t *testing.T) {
	r := NewRegistry()
	invocations := 0
	require.NoError(t, r.Register(&Tool{
		Name:             "push_config",
		RiskLevel:        RiskHigh,
		RequiresApproval: true,
		Handler: func(ctx context.Context, execCtx *ExecutionContext, args map[string]any) (*Result, error) {
			invocations++
			return &Result{Success: true, Data: "applied"}, nil
		},
	}))

	// No approval id: gated, handler never runs.
	gated := r.Execute(context.Background(), "push_config", &ExecutionContext{SessionID: "s1"}, nil)
	require.True(t, gated.RequiresApproval)
	assert.False(t, gated.Success)
	assert.Equal(t, RiskHigh, gated.RiskLevel)
	assert.Equal(t, 0, invocations)

	// Approval id present: handler runs.
	approved := r.Execute(context.Background(), "push_config", &ExecutionContext{
		SessionID:  "s1",
		ApprovalID: "ap-1",
		ApprovedBy: "oncall",
	}, nil)
	require.False(t, approved.RequiresApproval)
	assert.True(t, approved.Success)
	assert.Equal(t, 1, invocations)
}

func TestRegistrySubsetPreservesOrderAndSkipsUnknown(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"alpha", "beta", "gamma"} {
		require.NoError(t, r.Register(&Tool{
			Name: name,
			Handler: func(ctx context.Context, execCtx *ExecutionContext, args map[string]any) (*Result, error) {
				return &Result{Success: true}, nil
			},
		}))
	}

	subset := r.Subset([]string{"gamma", "missing", "alpha"})

	require.Len(t, subset, 2)
	assert.Equal(t, "gamma", subset[0].Name)
	assert.Equal(t, "alpha", subset[1].Name)
}

func TestRegistrySchemasDefaultsEmptyObject(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&Tool{
		Name:        "bare",
		Description: "no schema declared",
		Handler: func(ctx context.Context, execCtx *ExecutionContext, args map[string]any) (*Result, error) {
			return &Result{Success: true}, nil
		},
	}))

	schemas := r.Schemas(nil)

	require.Len(t, schemas, 1)
	assert.Equal(t, "bare", schemas[0].Name)
	assert.Equal(t, "object", schemas[0].InputSchema["type"])
}
