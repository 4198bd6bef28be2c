package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKnownTypes(t *testing.T) {
	for _, agentType := range []string{
		TypeTriage, TypeBGP, TypeOSPF, TypeISIS, TypeLayer2,
		TypeMPLS, TypeAutomation, TypeDocumentation, TypeGeneral,
	} {
		cfg, err := Resolve(agentType)
		require.NoError(t, err, agentType)
		assert.Equal(t, agentType, cfg.Type)
		assert.NotEmpty(t, cfg.SystemPrompt, agentType)
		assert.Equal(t, DefaultMaxIterations, cfg.MaxIterations, agentType)
	}
}

func TestResolveUnknownTypeIsHardError(t *testing.T) {
	cfg, err := Resolve("quantum")

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrUnknownAgentType)
}

func TestResolveReturnsCopy(t *testing.T) {
	cfg, err := Resolve(TypeTriage)
	require.NoError(t, err)
	require.NotEmpty(t, cfg.Tools)

	cfg.Tools[0] = "mutated"
	cfg.MaxIterations = 99

	again, err := Resolve(TypeTriage)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again.Tools[0])
	assert.Equal(t, DefaultMaxIterations, again.MaxIterations)
}

func TestOnlyGeneralAndAutomationGetFullCatalog(t *testing.T) {
	for _, info := range ListTypes() {
		cfg, err := Resolve(info.Type)
		require.NoError(t, err)
		if info.Type == TypeGeneral || info.Type == TypeAutomation {
			assert.Nil(t, cfg.Tools, info.Type)
		} else {
			assert.NotEmpty(t, cfg.Tools, "%s must declare an explicit allow-list", info.Type)
		}
	}
}

func TestTriageCanRouteButNotConfigure(t *testing.T) {
	cfg, err := Resolve(TypeTriage)
	require.NoError(t, err)

	assert.Contains(t, cfg.Tools, "handoff_to_agent")
	assert.Contains(t, cfg.Tools, "escalate_to_human")
	assert.NotContains(t, cfg.Tools, "push_device_config")
	assert.NotContains(t, cfg.Tools, "execute_mop")
}

func TestListTypesSortedAndComplete(t *testing.T) {
	types := ListTypes()

	require.Len(t, types, 9)
	for i := 1; i < len(types); i++ {
		assert.Less(t, types[i-1].Type, types[i].Type)
	}
}
