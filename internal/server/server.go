package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/cors"

	"github.com/jonathan/hr-dataset-agent/internal/agent"
	"github.com/jonathan/hr-dataset-agent/internal/config"
	"github.com/jonathan/hr-dataset-agent/internal/workflow"
)

// Asker answers dataset questions. Implemented by *agent.Agent.
type Asker interface {
	Ask(ctx context.Context, question string) (*agent.Response, error)
}

// Runner executes dataset generation. Implemented by *workflow.Workflow.
type Runner interface {
	Run(ctx context.Context, runID uuid.UUID, prompt string) (*workflow.Summary, error)
}

// Server is the HTTP API.
type Server struct {
	router    chi.Router
	asker     Asker
	runner    Runner
	jwt       *JWTService
	passwords *config.PasswordConfig
}

// Config holds server wiring.
type Config struct {
	Asker     Asker
	Runner    Runner
	JWT       *JWTService            // nil disables auth entirely
	Passwords *config.PasswordConfig // required when JWT is set
}

// New assembles the router. When cfg.JWT is nil the API is open; otherwise
// /login issues tokens and every other endpoint requires a bearer token.
func New(cfg Config) *Server {
	s := &Server{
		asker:     cfg.Asker,
		runner:    cfg.Runner,
		jwt:       cfg.JWT,
		passwords: cfg.Passwords,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"POST", "GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
	}).Handler)

	r.Get("/healthz", s.handleHealth)
	if s.jwt != nil {
		r.Post("/login", s.handleLogin)
	}

	r.Group(func(r chi.Router) {
		if s.jwt != nil {
			r.Use(s.requireAuth)
		}
		r.Post("/ask", s.handleAsk)
		r.Post("/generate", s.handleGenerate)
	})

	s.router = r
	return s
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, port int) error {
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}
