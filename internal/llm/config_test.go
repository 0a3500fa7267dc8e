package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, "http://localhost:8787", cfg.Endpoint)
	assert.Equal(t, 10000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("SOLACE_AI_ENABLED", "true")
	t.Setenv("SOLACE_AI_ENDPOINT", "http://example.com:9999")
	t.Setenv("SOLACE_AI_TIMEOUT_MS", "2500")
	t.Setenv("SOLACE_AI_MAX_RETRIES", "3")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "http://example.com:9999", cfg.Endpoint)
	assert.Equal(t, 2500, cfg.TimeoutMs)
	assert.Equal(t, 3, cfg.MaxRetries)
}

func TestLoadConfig_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("SOLACE_AI_TIMEOUT_MS", "not-a-number")
	t.Setenv("SOLACE_AI_MAX_RETRIES", "-5")

	cfg := LoadConfig()

	assert.Equal(t, 10000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
}
