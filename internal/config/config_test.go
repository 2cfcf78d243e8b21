package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"TRIPBUD_API_URL", "VITE_API_URL", "TRIPBUD_PROVIDER", "TRIPBUD_API_TIMEOUT", "TRIPBUD_REDIS_ADDR", "TRIPBUD_DB_DSN"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.Web.APIURL)
	assert.Equal(t, 60*time.Second, cfg.Web.APITimeout)
	assert.Equal(t, 24*time.Hour, cfg.Web.SessionTTL)
	assert.Equal(t, ":3000", cfg.Web.Addr)
	assert.Equal(t, ":8000", cfg.API.Addr)
	assert.Equal(t, []string{"*"}, cfg.API.CORSOrigins)
	assert.Equal(t, "", cfg.AI.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.GeminiModel)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TRIPBUD_API_URL", "")
	t.Setenv("VITE_API_URL", "http://api.internal:9000")
	t.Setenv("TRIPBUD_API_TIMEOUT", "5s")
	t.Setenv("TRIPBUD_PROVIDER", "Mock")
	t.Setenv("TRIPBUD_CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("TRIPBUD_REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://api.internal:9000", cfg.Web.APIURL)
	assert.Equal(t, 5*time.Second, cfg.Web.APITimeout)
	assert.Equal(t, "mock", cfg.AI.Provider)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.API.CORSOrigins)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)

	t.Setenv("TRIPBUD_API_URL", "http://primary:8000")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "http://primary:8000", cfg.Web.APIURL)
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	t.Setenv("TRIPBUD_PROVIDER", "claude")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadAnthropicSettings(t *testing.T) {
	t.Setenv("TRIPBUD_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "anthropic", cfg.AI.Provider)
	assert.Equal(t, "sk-ant-test", cfg.AI.AnthropicKey)
	assert.Equal(t, "claude-sonnet-4-20250514", cfg.AI.AnthropicModel)

	t.Setenv("ANTHROPIC_MODEL", "claude-3-5-haiku-latest")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "claude-3-5-haiku-latest", cfg.AI.AnthropicModel)
}
