// Package agent answers natural-language questions about a generated dataset.
// It is a thin adapter: generate one read-only SQL statement, execute it
// against the warehouse, and summarize the result rows.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/hr-dataset-agent/internal/llm"
	"github.com/jonathan/hr-dataset-agent/internal/prompts"
	"github.com/jonathan/hr-dataset-agent/internal/warehouse"
)

// topK is the default row limit suggested to the query generator.
const topK = 5

// schemaDescription is the static table reference handed to the query
// generator. It must track the warehouse schema.
const schemaDescription = `jobs(id, name, description, job_level, job_family, contract_type, workplace_type)
business_units(id, name, description, director_job_id -> jobs.id)
departments(id, name, description, manager_job_id -> jobs.id, business_unit_id -> business_units.id)
employees(id, job_id -> jobs.id, department_id -> departments.id, business_unit_id -> business_units.id, first_name, last_name, birth_date, gender, ethnicity, education_level, education_field, generation)
compensations(id, employee_id -> employees.id, annual_base_salary, annual_bonus_amount, annual_commission_amount, rate_type, total_compensation)`

// Querier is the read-only warehouse surface the agent executes against.
type Querier interface {
	Query(ctx context.Context, query string) (*warehouse.Dataset, error)
}

// Response is the agent's answer to one question.
type Response struct {
	Content  string             `json:"content"`
	SQLQuery string             `json:"sql_query,omitempty"`
	Dataset  *warehouse.Dataset `json:"dataset,omitempty"`
}

// Agent turns questions into answers backed by warehouse queries.
type Agent struct {
	client llm.Client
	db     Querier
}

// New creates an agent over an LLM client and a warehouse query surface.
func New(client llm.Client, db Querier) *Agent {
	return &Agent{client: client, db: db}
}

// Ask answers one question: generate a query, guard it, run it, summarize.
// Errors surface directly; there is no retry beyond the client's own budget.
func (a *Agent) Ask(ctx context.Context, question string) (*Response, error) {
	query, err := a.generateQuery(ctx, question)
	if err != nil {
		return nil, err
	}

	if err := ValidateReadOnly(query); err != nil {
		return nil, err
	}

	dataset, err := a.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	content, err := a.summarize(ctx, question, query, dataset)
	if err != nil {
		return nil, err
	}

	return &Response{Content: content, SQLQuery: query, Dataset: dataset}, nil
}

func (a *Agent) generateQuery(ctx context.Context, question string) (string, error) {
	template, err := prompts.Get("agent.json", "sql_query")
	if err != nil {
		return "", err
	}
	prompt := prompts.Format(template, map[string]string{
		"Dialect":  "PostgreSQL",
		"TopK":     fmt.Sprintf("%d", topK),
		"Schema":   schemaDescription,
		"Question": question,
	})

	raw, err := a.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", fmt.Errorf("failed to generate query: %w", err)
	}

	// Models wrap SQL in code fences the same way they wrap JSON.
	query := strings.TrimSpace(llm.CleanJSONBlock(raw))
	return strings.TrimSuffix(query, ";"), nil
}

func (a *Agent) summarize(ctx context.Context, question, query string, dataset *warehouse.Dataset) (string, error) {
	template, err := prompts.Get("agent.json", "answer")
	if err != nil {
		return "", err
	}

	results, err := json.Marshal(dataset)
	if err != nil {
		return "", fmt.Errorf("failed to serialize query results: %w", err)
	}

	prompt := prompts.Format(template, map[string]string{
		"Question": question,
		"Query":    query,
		"Results":  string(results),
	})

	content, err := a.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", fmt.Errorf("failed to summarize results: %w", err)
	}
	return strings.TrimSpace(content), nil
}
