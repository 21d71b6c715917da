package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var askCommand = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a natural-language question about the generated dataset",
	Long: `Translates the question into a read-only SQL query, executes it against the warehouse, and summarizes the result in plain language.

The generated SQL is validated before execution: only single SELECT statements run.`,
	Args: cobra.ExactArgs(1),
	RunE: runAskCmd,
}

var (
	askConfigPath  string
	askDatabaseURL string
	askProvider    string
	askAPIKey      string
	askShowSQL     bool
)

func init() {
	askCommand.Flags().StringVar(&askConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	askCommand.Flags().StringVar(&askDatabaseURL, "db-url", "", "Warehouse PostgreSQL URL (optional, defaults to DATABASE_URL env var)")
	askCommand.Flags().StringVar(&askProvider, "provider", "", "LLM provider: gemini (default) or openai")
	askCommand.Flags().StringVar(&askAPIKey, "api-key", "", "Provider API key (optional, defaults to GEMINI_API_KEY / OPENAI_API_KEY env var)")
	askCommand.Flags().BoolVar(&askShowSQL, "show-sql", false, "Print the executed SQL query before the answer")

	rootCmd.AddCommand(askCommand)
}

func runAskCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(askConfigPath)
	if err != nil {
		return err
	}

	applyFlagOverride(cmd, "db-url", func() { cfg.DatabaseURL = askDatabaseURL })
	applyFlagOverride(cmd, "provider", func() { cfg.Provider = askProvider })
	applyFlagOverride(cmd, "api-key", func() { cfg.APIKey = askAPIKey })

	if err := cfg.Validate(); err != nil {
		return err
	}

	a, cleanup, err := newAgent(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	resp, err := a.Ask(ctx, args[0])
	if err != nil {
		return err
	}

	if askShowSQL {
		fmt.Fprintf(os.Stdout, "-- %s\n\n", resp.SQLQuery)
	}
	fmt.Fprintln(os.Stdout, resp.Content)
	return nil
}
