package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"database_url": "postgres://localhost/hr",
		"provider": "openai",
		"sampler_seed": 1993,
		"port": 8080,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/hr", cfg.DatabaseURL)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, int64(1993), cfg.SamplerSeed)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)
	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
	assert.NoError(t, (&Config{Provider: "gemini"}).Validate())
	assert.NoError(t, (&Config{Provider: "openai"}).Validate())
	assert.Error(t, (&Config{Provider: "mistral"}).Validate())
	assert.Error(t, (&Config{SamplerSeed: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Provider: "openai"}
	defaults := Config{
		DatabaseURL: "postgres://localhost/hr",
		Provider:    "gemini",
		SamplerSeed: 1993,
	}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "openai", merged.Provider, "explicit value wins")
	assert.Equal(t, "postgres://localhost/hr", merged.DatabaseURL)
	assert.Equal(t, int64(1993), merged.SamplerSeed)
}

func TestFromEnv_ProviderSelectsAPIKey(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GEMINI_API_KEY", "gm-test")
	t.Setenv("DATABASE_URL", "postgres://localhost/hr")
	t.Setenv("SAMPLER_SEED", "7")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "postgres://localhost/hr", cfg.DatabaseURL)
	assert.Equal(t, int64(7), cfg.SamplerSeed)
}

func TestFromEnv_DefaultsToGeminiKey(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("GEMINI_API_KEY", "gm-test")
	t.Setenv("SAMPLER_SEED", "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "gm-test", cfg.APIKey)
}

func TestFromEnv_BadSeed(t *testing.T) {
	t.Setenv("SAMPLER_SEED", "not-a-number")
	_, err := FromEnv()
	require.Error(t, err)
}
