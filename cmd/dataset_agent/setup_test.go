package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfig_EnvOnly(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/warehouse")
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg, err := resolveConfig("")
	require.NoError(t, err)

	assert.Equal(t, "postgres://env/warehouse", cfg.DatabaseURL)
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "env-key", cfg.APIKey)
}

func TestResolveConfig_FileOverridesEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/warehouse")
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("GEMINI_API_KEY", "env-key")

	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"database_url": "postgres://file/warehouse", "provider": "openai", "sampler_seed": 7}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := resolveConfig(path)
	require.NoError(t, err)

	// The file wins over the environment; env fills what the file left unset.
	assert.Equal(t, "postgres://file/warehouse", cfg.DatabaseURL)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, int64(7), cfg.SamplerSeed)
	assert.Equal(t, "env-key", cfg.APIKey)
}

func TestResolveConfig_MissingFile(t *testing.T) {
	_, err := resolveConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestApplyFlagOverride(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	var flagVal string
	cmd.Flags().StringVar(&flagVal, "db-url", "", "")

	target := "original"
	applyFlagOverride(cmd, "db-url", func() { target = flagVal })
	assert.Equal(t, "original", target, "unset flag must not override")

	require.NoError(t, cmd.Flags().Set("db-url", "postgres://flag/warehouse"))
	applyFlagOverride(cmd, "db-url", func() { target = flagVal })
	assert.Equal(t, "postgres://flag/warehouse", target)
}
