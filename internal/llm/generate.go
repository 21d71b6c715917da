package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonathan/hr-dataset-agent/internal/schemas"
)

// Request describes one structured generation call: rendered prompt text
// plus the name of the embedded schema the response must conform to.
type Request struct {
	// Schema is the name of an embedded schema (see internal/schemas).
	// Its source is inlined into the prompt and the response is
	// validated against it before unmarshalling.
	Schema string
	// Instructions is the fully rendered prompt text.
	Instructions string
}

// CallOptions bound a structured generation call: which model tier to use,
// the per-attempt timeout, and how many attempts to make before giving up.
type CallOptions struct {
	Tier        ModelTier
	Timeout     time.Duration
	MaxAttempts int
}

// StructuredGenerator produces schema-conformant documents from prompts.
type StructuredGenerator interface {
	// Generate runs the request and unmarshals the validated response
	// into out, which must be a pointer.
	Generate(ctx context.Context, req Request, opts CallOptions, out any) error
}

// Generator implements StructuredGenerator on top of a Client. Each attempt
// gets its own timeout; malformed or non-conformant responses are retried
// until the attempt budget runs out.
type Generator struct {
	client Client
}

// NewGenerator creates a Generator backed by the given client.
func NewGenerator(client Client) *Generator {
	return &Generator{client: client}
}

// Generate runs a structured generation call with retries.
func (g *Generator) Generate(ctx context.Context, req Request, opts CallOptions, out any) error {
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}

	prompt, err := buildPrompt(req)
	if err != nil {
		return &GenerationError{Schema: req.Schema, Cause: err}
	}

	var lastErr error
	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			return &GenerationError{Schema: req.Schema, Attempts: attempt - 1, Cause: ctx.Err()}
		}

		raw, err := g.attempt(ctx, prompt, opts)
		if err != nil {
			lastErr = err
			continue
		}

		doc := []byte(CleanJSONBlock(raw))
		if err := schemas.Validate(req.Schema, doc); err != nil {
			lastErr = err
			continue
		}

		if err := json.Unmarshal(doc, out); err != nil {
			lastErr = fmt.Errorf("failed to unmarshal response: %w", err)
			continue
		}
		return nil
	}

	return &GenerationError{Schema: req.Schema, Attempts: opts.MaxAttempts, Cause: lastErr}
}

func (g *Generator) attempt(ctx context.Context, prompt string, opts CallOptions) (string, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}
	return g.client.GenerateJSON(ctx, prompt, opts.Tier)
}

func buildPrompt(req Request) (string, error) {
	source, err := schemas.Source(req.Schema)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s\n\nRespond with a single JSON object that conforms to this JSON Schema:\n%s", req.Instructions, source), nil
}
