package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nocforge/nocforge/pkg/config"
)

func TestNewUnknownActiveProvider(t *testing.T) {
	_, err := New(&config.LLMConfig{
		ActiveProvider: "ghost",
		Providers:      map[string]*config.ProviderConfig{},
	})

	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestNewForProviderMissingAPIKey(t *testing.T) {
	t.Setenv("NOCFORGE_TEST_EMPTY_KEY", "")

	_, err := NewForProvider(&config.ProviderConfig{
		Kind:      config.ProviderKindOpenAI,
		Model:     "gpt-4o-mini",
		APIKeyEnv: "NOCFORGE_TEST_EMPTY_KEY",
	})

	assert.ErrorIs(t, err, ErrAPIKeyMissing,
		"missing key must fail before any network call")
}

func TestNewForProviderSelectsByKind(t *testing.T) {
	t.Setenv("NOCFORGE_TEST_KEY", "sk-test")

	openai, err := NewForProvider(&config.ProviderConfig{
		Kind:      config.ProviderKindOpenAI,
		Model:     "gpt-4o-mini",
		APIKeyEnv: "NOCFORGE_TEST_KEY",
		Timeout:   30 * time.Second,
	})
	require.NoError(t, err)
	assert.IsType(t, &openAIClient{}, openai)
	assert.Equal(t, "gpt-4o-mini", openai.Model())

	anthropic, err := NewForProvider(&config.ProviderConfig{
		Kind:      config.ProviderKindAnthropic,
		Model:     "claude-sonnet-4-20250514",
		APIKeyEnv: "NOCFORGE_TEST_KEY",
	})
	require.NoError(t, err)
	assert.IsType(t, &anthropicClient{}, anthropic)

	openrouter, err := NewForProvider(&config.ProviderConfig{
		Kind:      config.ProviderKindOpenRouter,
		Model:     "meta-llama/llama-3.1-70b-instruct",
		APIKeyEnv: "NOCFORGE_TEST_KEY",
	})
	require.NoError(t, err)
	orc, ok := openrouter.(*openAIClient)
	require.True(t, ok, "openrouter speaks the openai wire protocol")
	assert.Contains(t, orc.baseURL, "openrouter.ai")

	_, err = NewForProvider(&config.ProviderConfig{
		Kind:      "carrier-pigeon",
		APIKeyEnv: "NOCFORGE_TEST_KEY",
	})
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestDecodeArguments(t *testing.T) {
	assert.Equal(t, map[string]any{"a": "b"}, decodeArguments(`{"a":"b"}`))
	assert.Equal(t, map[string]any{}, decodeArguments(""))
	assert.Equal(t, map[string]any{"raw": "{broken"}, decodeArguments("{broken"))
}

func TestEncodeArguments(t *testing.T) {
	assert.Equal(t, "{}", encodeArguments(nil))
	assert.JSONEq(t, `{"x":1}`, encodeArguments(map[string]any{"x": 1}))
}
