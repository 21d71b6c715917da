package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/hr-dataset-agent/internal/warehouse"
)

var schemaCommand = &cobra.Command{
	Use:   "schema",
	Short: "Create the warehouse tables",
	Long:  "Creates the five dataset tables if they do not exist. The generate command also does this as its first storage step; schema exists for provisioning a warehouse ahead of time.",
	RunE:  runSchemaCmd,
}

var (
	schemaConfigPath  string
	schemaDatabaseURL string
)

func init() {
	schemaCommand.Flags().StringVar(&schemaConfigPath, "config", "", "Path to config.json file")
	schemaCommand.Flags().StringVar(&schemaDatabaseURL, "db-url", "", "Warehouse PostgreSQL URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(schemaCommand)
}

func runSchemaCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(schemaConfigPath)
	if err != nil {
		return err
	}
	applyFlagOverride(cmd, "db-url", func() { cfg.DatabaseURL = schemaDatabaseURL })
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	store, err := warehouse.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to warehouse: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.CreateSchema(ctx); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "warehouse schema ready")
	return nil
}
