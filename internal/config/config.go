// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags or environment variables.
type Config struct {
	// Storage
	DatabaseURL           string `json:"database_url,omitempty"`            // warehouse PostgreSQL connection URL
	CheckpointDatabaseURL string `json:"checkpoint_database_url,omitempty"` // optional persistent checkpoint store

	// LLM
	Provider string `json:"provider,omitempty"` // "gemini" (default) or "openai"
	APIKey   string `json:"api_key,omitempty"`  // provider API key

	// Generation
	SamplerSeed int64 `json:"sampler_seed,omitempty"` // 0 means the built-in default seed

	// Server
	Port int `json:"port,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables. The
// provider API key picks GEMINI_API_KEY or OPENAI_API_KEY to match
// LLM_PROVIDER.
func FromEnv() (*Config, error) {
	cfg := &Config{
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		CheckpointDatabaseURL: os.Getenv("CHECKPOINT_DATABASE_URL"),
		Provider:              os.Getenv("LLM_PROVIDER"),
	}

	if cfg.Provider == "openai" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	} else {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	if seed := os.Getenv("SAMPLER_SEED"); seed != "" {
		parsed, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SAMPLER_SEED: %v", err)
		}
		cfg.SamplerSeed = parsed
	}

	return cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are checked by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Provider != "" && c.Provider != "gemini" && c.Provider != "openai" {
		return fmt.Errorf("config error: unknown provider %q (expected gemini or openai)", c.Provider)
	}
	if c.SamplerSeed < 0 {
		return fmt.Errorf("config error: 'sampler_seed' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. Used to layer config file values under flags and env vars.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.CheckpointDatabaseURL == "" {
		result.CheckpointDatabaseURL = defaults.CheckpointDatabaseURL
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.SamplerSeed == 0 {
		result.SamplerSeed = defaults.SamplerSeed
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	// Bool fields: cannot distinguish unset from false, flags always win.

	return result
}
