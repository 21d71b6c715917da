package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/hr-dataset-agent/internal/agent"
	"github.com/jonathan/hr-dataset-agent/internal/checkpoint"
	"github.com/jonathan/hr-dataset-agent/internal/config"
	"github.com/jonathan/hr-dataset-agent/internal/llm"
	"github.com/jonathan/hr-dataset-agent/internal/sampling"
	"github.com/jonathan/hr-dataset-agent/internal/server"
	"github.com/jonathan/hr-dataset-agent/internal/warehouse"
	"github.com/jonathan/hr-dataset-agent/internal/workflow"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing the generation workflow and the analysis agent as REST endpoints.

When JWT_SECRET is set, /login issues bearer tokens and every data endpoint requires one.`,
	RunE: runServe,
}

var (
	serveConfigPath string
	servePort       int
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := resolveConfig(serveConfigPath)
	if err != nil {
		return err
	}
	applyFlagOverride(cmd, "port", func() { cfg.Port = servePort })
	if cfg.Port == 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	// Workflow and agent share one LLM client and one warehouse connection.
	client, err := newLLMClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	store, err := warehouse.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to warehouse: %w", err)
	}
	defer func() { _ = store.Close() }()

	var steps checkpoint.Store = checkpoint.NewMemoryStore()
	if cfg.CheckpointDatabaseURL != "" {
		pgSteps, err := checkpoint.ConnectPostgres(ctx, cfg.CheckpointDatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to checkpoint store: %w", err)
		}
		defer pgSteps.Close()
		steps = pgSteps
	}

	seed := cfg.SamplerSeed
	if seed == 0 {
		seed = sampling.DefaultSeed
	}

	wf := workflow.New(llm.NewGenerator(client), store,
		workflow.WithCheckpointStore(steps),
		workflow.WithSampler(sampling.New(seed)),
		workflow.WithVerbose(cfg.Verbose),
	)

	srvCfg := server.Config{
		Asker:  agent.New(client, store),
		Runner: wf,
	}

	// Auth is opt-in: without JWT_SECRET the API runs open.
	if os.Getenv("JWT_SECRET") != "" {
		jwtCfg, err := config.NewJWTConfig()
		if err != nil {
			return err
		}
		pwCfg, err := config.NewPasswordConfig()
		if err != nil {
			return err
		}
		if pwCfg.APIPasswordHash == "" {
			return fmt.Errorf("API_PASSWORD_HASH is required when JWT_SECRET is set")
		}
		srvCfg.JWT = server.NewJWTService(jwtCfg)
		srvCfg.Passwords = pwCfg
	}

	fmt.Fprintf(os.Stdout, "Listening on :%d\n", cfg.Port)
	return server.New(srvCfg).Start(ctx, cfg.Port)
}
