package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/hr-dataset-agent/internal/observability"
)

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic HR dataset from a company description",
	Long: `Runs the full generation workflow: company specification -> demographic ratios -> schema creation -> business units, departments, and employees with compensation.

Every step is checkpointed. Re-running with --run-id resumes an interrupted run, skipping steps whose inputs are unchanged.`,
	RunE: runGenerateCmd,
}

var (
	generateConfigPath      string
	generatePrompt          string
	generateRunID           string
	generateDatabaseURL     string
	generateCheckpointDBURL string
	generateProvider        string
	generateAPIKey          string
	generateSeed            int64
	generateVerbose         bool
)

func init() {
	generateCommand.Flags().StringVar(&generateConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	generateCommand.Flags().StringVarP(&generatePrompt, "prompt", "p", "", "Company description to generate the dataset from")
	generateCommand.Flags().StringVar(&generateRunID, "run-id", "", "Run id to resume (optional, a fresh run gets a new id)")
	generateCommand.Flags().StringVar(&generateDatabaseURL, "db-url", "", "Warehouse PostgreSQL URL (optional, defaults to DATABASE_URL env var)")
	generateCommand.Flags().StringVar(&generateCheckpointDBURL, "checkpoint-db-url", "", "Checkpoint PostgreSQL URL (optional, defaults to CHECKPOINT_DATABASE_URL env var; in-memory when unset)")
	generateCommand.Flags().StringVar(&generateProvider, "provider", "", "LLM provider: gemini (default) or openai")
	generateCommand.Flags().StringVar(&generateAPIKey, "api-key", "", "Provider API key (optional, defaults to GEMINI_API_KEY / OPENAI_API_KEY env var)")
	generateCommand.Flags().Int64Var(&generateSeed, "seed", 0, "Demographic sampler seed (0 uses the built-in default)")
	generateCommand.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print step progress and formatted summaries")

	rootCmd.AddCommand(generateCommand)
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(generateConfigPath)
	if err != nil {
		return err
	}

	applyFlagOverride(cmd, "db-url", func() { cfg.DatabaseURL = generateDatabaseURL })
	applyFlagOverride(cmd, "checkpoint-db-url", func() { cfg.CheckpointDatabaseURL = generateCheckpointDBURL })
	applyFlagOverride(cmd, "provider", func() { cfg.Provider = generateProvider })
	applyFlagOverride(cmd, "api-key", func() { cfg.APIKey = generateAPIKey })
	applyFlagOverride(cmd, "seed", func() { cfg.SamplerSeed = generateSeed })
	applyFlagOverride(cmd, "verbose", func() { cfg.Verbose = generateVerbose })

	if err := cfg.Validate(); err != nil {
		return err
	}
	if generatePrompt == "" {
		return fmt.Errorf("--prompt is required")
	}

	runID := uuid.Nil
	if generateRunID != "" {
		runID, err = uuid.Parse(generateRunID)
		if err != nil {
			return fmt.Errorf("invalid run id %q: %w", generateRunID, err)
		}
	}

	wf, cleanup, err := newWorkflow(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	summary, err := wf.Run(ctx, runID, generatePrompt)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintSummary(summary)
	return nil
}
