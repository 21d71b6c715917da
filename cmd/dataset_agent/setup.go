package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/hr-dataset-agent/internal/agent"
	"github.com/jonathan/hr-dataset-agent/internal/checkpoint"
	"github.com/jonathan/hr-dataset-agent/internal/config"
	"github.com/jonathan/hr-dataset-agent/internal/llm"
	"github.com/jonathan/hr-dataset-agent/internal/observability"
	"github.com/jonathan/hr-dataset-agent/internal/sampling"
	"github.com/jonathan/hr-dataset-agent/internal/warehouse"
	"github.com/jonathan/hr-dataset-agent/internal/workflow"
)

// resolveConfig layers configuration: environment values (lowest), config
// file, then CLI flags applied by the caller before validation.
func resolveConfig(configPath string) (config.Config, error) {
	envCfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}

	cfg := *envCfg
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	return cfg, nil
}

// applyFlagOverride copies a flag value into the config only when the flag
// was set explicitly, so env and file values survive unset flags.
func applyFlagOverride(cmd *cobra.Command, name string, apply func()) {
	if cmd.Flags().Changed(name) {
		apply()
	}
}

// newLLMClient builds the provider client for the configured provider.
func newLLMClient(ctx context.Context, cfg config.Config) (llm.Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("an API key is required: set GEMINI_API_KEY (or OPENAI_API_KEY for --provider openai), or pass --api-key")
	}
	return llm.NewClient(ctx, llm.ConfigForProvider(llm.Provider(cfg.Provider)), cfg.APIKey)
}

// newWorkflow wires the generation workflow: LLM generator, warehouse,
// checkpoint store, and sampler. The returned cleanup closes every
// connection it opened.
func newWorkflow(ctx context.Context, cfg config.Config) (*workflow.Workflow, func(), error) {
	if cfg.DatabaseURL == "" {
		return nil, nil, fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	client, err := newLLMClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	store, err := warehouse.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to warehouse: %w", err)
	}

	var steps checkpoint.Store = checkpoint.NewMemoryStore()
	var closeSteps func()
	if cfg.CheckpointDatabaseURL != "" {
		pgSteps, err := checkpoint.ConnectPostgres(ctx, cfg.CheckpointDatabaseURL)
		if err != nil {
			_ = store.Close()
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to connect to checkpoint store: %w", err)
		}
		steps = pgSteps
		closeSteps = pgSteps.Close
	}

	seed := cfg.SamplerSeed
	if seed == 0 {
		seed = sampling.DefaultSeed
	}

	opts := []workflow.Option{
		workflow.WithCheckpointStore(steps),
		workflow.WithSampler(sampling.New(seed)),
		workflow.WithVerbose(cfg.Verbose),
	}
	if cfg.Verbose {
		opts = append(opts, workflow.WithObserver(observability.NewPrinter(os.Stdout)))
	}
	wf := workflow.New(llm.NewGenerator(client), store, opts...)

	cleanup := func() {
		if closeSteps != nil {
			closeSteps()
		}
		_ = store.Close()
		_ = client.Close()
	}
	return wf, cleanup, nil
}

// newAgent wires the analysis agent: LLM client plus warehouse.
func newAgent(ctx context.Context, cfg config.Config) (*agent.Agent, func(), error) {
	if cfg.DatabaseURL == "" {
		return nil, nil, fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	client, err := newLLMClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	store, err := warehouse.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to warehouse: %w", err)
	}

	cleanup := func() {
		_ = store.Close()
		_ = client.Close()
	}
	return agent.New(client, store), cleanup, nil
}
