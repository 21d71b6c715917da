// Package workflow orchestrates dataset generation: one pass from a free-text
// company description to a fully populated warehouse. The pass is expressed
// as a tree of checkpointed tasks so an interrupted run can resume with the
// same run id instead of repeating LLM calls and inserts.
package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/hr-dataset-agent/internal/checkpoint"
	"github.com/jonathan/hr-dataset-agent/internal/llm"
	"github.com/jonathan/hr-dataset-agent/internal/model"
	"github.com/jonathan/hr-dataset-agent/internal/sampling"
)

// batchSize bounds how many employee expansions run concurrently. Matches
// the assumed concurrency ceiling of the generation capability.
const batchSize = 5

// Per-call budgets. The company specification is one large reasoning call;
// ratios are a single mid-size call; the per-employee calls are small and
// high-volume, so they get a short timeout and more attempts.
var (
	companySpecBudget = llm.CallOptions{Tier: llm.TierAdvanced, Timeout: 10 * time.Minute, MaxAttempts: 3}
	ratiosBudget      = llm.CallOptions{Tier: llm.TierStandard, Timeout: time.Minute, MaxAttempts: 3}
	employeeBudget    = llm.CallOptions{Tier: llm.TierLite, Timeout: 20 * time.Second, MaxAttempts: 5}
)

// Storage is the warehouse surface the workflow writes through.
type Storage interface {
	CreateSchema(ctx context.Context) error
	InsertJob(ctx context.Context, job *model.Job) error
	InsertBusinessUnit(ctx context.Context, bu *model.BusinessUnit) error
	InsertDepartment(ctx context.Context, dept *model.Department, businessUnitID uuid.UUID) error
	InsertEmployee(ctx context.Context, emp *model.Employee, comp *model.Compensation) error
}

// Observer receives intermediate artifacts as a run produces them. Used by
// the CLI to render progress in verbose mode.
type Observer interface {
	CompanyGenerated(company *model.Company)
	RatiosGenerated(ratios *model.Ratios)
}

// Workflow generates one dataset per Run call.
type Workflow struct {
	gen      llm.StructuredGenerator
	storage  Storage
	steps    checkpoint.Store
	sampler  *sampling.Sampler
	observer Observer
	verbose  bool
}

// Option configures a Workflow.
type Option func(*Workflow)

// WithCheckpointStore replaces the default in-memory checkpoint store.
func WithCheckpointStore(store checkpoint.Store) Option {
	return func(w *Workflow) { w.steps = store }
}

// WithSampler replaces the default sampler (seeded with sampling.DefaultSeed).
func WithSampler(s *sampling.Sampler) Option {
	return func(w *Workflow) { w.sampler = s }
}

// WithVerbose enables step progress output.
func WithVerbose(verbose bool) Option {
	return func(w *Workflow) { w.verbose = verbose }
}

// WithObserver attaches an observer for intermediate artifacts.
func WithObserver(o Observer) Option {
	return func(w *Workflow) { w.observer = o }
}

// New creates a workflow over a structured generator and a storage layer.
func New(gen llm.StructuredGenerator, storage Storage, opts ...Option) *Workflow {
	w := &Workflow{
		gen:     gen,
		storage: storage,
		steps:   checkpoint.NewMemoryStore(),
		sampler: sampling.New(sampling.DefaultSeed),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Summary reports what a completed run produced.
type Summary struct {
	RunID         uuid.UUID      `json:"run_id"`
	Company       string         `json:"company"`
	Industry      model.Industry `json:"industry"`
	BusinessUnits int            `json:"business_units"`
	Departments   int            `json:"departments"`
	Jobs          int            `json:"jobs"`
	Employees     int            `json:"employees"`
}

// Run executes the full generation pass for one company description.
// runID identifies the workflow instance for checkpointing: re-invoking with
// the same id resumes, uuid.Nil starts a fresh run.
func (w *Workflow) Run(ctx context.Context, runID uuid.UUID, prompt string) (*Summary, error) {
	if runID == uuid.Nil {
		runID = model.NewID()
	}

	company, err := runTask(ctx, w.steps, runID, "company_spec", []any{prompt}, func(ctx context.Context) (*model.Company, error) {
		return w.generateCompany(ctx, prompt)
	})
	if err != nil {
		return nil, &SpecificationError{Stage: "company specification", Cause: err}
	}
	w.logf("company specification: %s (%s, %d employees)", company.Name, company.Industry, company.Headcount())
	if w.observer != nil {
		w.observer.CompanyGenerated(company)
	}

	ratios, err := runTask(ctx, w.steps, runID, "demographic_ratios", []any{company}, func(ctx context.Context) (*model.Ratios, error) {
		return w.generateRatios(ctx, company)
	})
	if err != nil {
		return nil, &SpecificationError{Stage: "demographic ratios", Cause: err}
	}
	w.logf("demographic ratios generated")
	if w.observer != nil {
		w.observer.RatiosGenerated(ratios)
	}

	if _, err := runTask(ctx, w.steps, runID, "create_schema", nil, func(ctx context.Context) (bool, error) {
		return true, w.storage.CreateSchema(ctx)
	}); err != nil {
		return nil, err
	}

	for i := range company.BusinessUnits {
		if err := w.runBusinessUnit(ctx, runID, fmt.Sprintf("bu[%d]", i), &company.BusinessUnits[i], ratios); err != nil {
			return nil, err
		}
	}

	return summarize(runID, company), nil
}

func (w *Workflow) runBusinessUnit(ctx context.Context, runID uuid.UUID, key string, bu *model.BusinessUnit, ratios *model.Ratios) error {
	inserted, err := runTask(ctx, w.steps, runID, key+".insert", []any{bu}, func(ctx context.Context) (*model.BusinessUnit, error) {
		if err := w.storage.InsertJob(ctx, &bu.Director); err != nil {
			return nil, err
		}
		if err := w.storage.InsertBusinessUnit(ctx, bu); err != nil {
			return nil, err
		}
		return bu, nil
	})
	if err != nil {
		return err
	}
	// Collision retries may have regenerated ids inside the task; on resume
	// the checkpointed copy carries them.
	*bu = *inserted
	w.logf("business unit: %s", bu.Name)

	demo, err := w.sampler.Demographics(ratios)
	if err != nil {
		return err
	}
	buID := bu.ID
	if _, err := w.expandEmployee(ctx, runID, key+".director", &bu.Director, nil, &buID, demo); err != nil {
		return err
	}

	for j := range bu.Departments {
		if err := w.runDepartment(ctx, runID, fmt.Sprintf("%s.dept[%d]", key, j), &bu.Departments[j], bu.ID, ratios); err != nil {
			return err
		}
	}
	return nil
}

func (w *Workflow) runDepartment(ctx context.Context, runID uuid.UUID, key string, dept *model.Department, businessUnitID uuid.UUID, ratios *model.Ratios) error {
	inserted, err := runTask(ctx, w.steps, runID, key+".insert", []any{dept, businessUnitID}, func(ctx context.Context) (*model.Department, error) {
		if err := w.storage.InsertJob(ctx, &dept.Manager); err != nil {
			return nil, err
		}
		for k := range dept.Jobs {
			if err := w.storage.InsertJob(ctx, &dept.Jobs[k].Job); err != nil {
				return nil, err
			}
		}
		if err := w.storage.InsertDepartment(ctx, dept, businessUnitID); err != nil {
			return nil, err
		}
		return dept, nil
	})
	if err != nil {
		return err
	}
	*dept = *inserted
	w.logf("department: %s", dept.Name)

	demo, err := w.sampler.Demographics(ratios)
	if err != nil {
		return err
	}
	deptID := dept.ID
	if _, err := w.expandEmployee(ctx, runID, key+".manager", &dept.Manager, &deptID, nil, demo); err != nil {
		return err
	}

	for k := range dept.Jobs {
		spec := &dept.Jobs[k]
		if err := w.runHeadcount(ctx, runID, fmt.Sprintf("%s.job[%d]", key, k), spec, deptID, ratios); err != nil {
			return err
		}
	}
	return nil
}

// runHeadcount expands the rank-and-file employees for one job/headcount
// pair, batchSize at a time. Demographics are drawn sequentially before each
// batch fans out so the seeded sampler stream stays deterministic.
func (w *Workflow) runHeadcount(ctx context.Context, runID uuid.UUID, key string, spec *model.JobsSpec, departmentID uuid.UUID, ratios *model.Ratios) error {
	units := make([]int, spec.Headcount)
	for n := range units {
		units[n] = n
	}

	for _, batch := range sampling.Batches(units, batchSize) {
		demos := make([]sampling.Demographics, len(batch))
		for bi := range batch {
			demo, err := w.sampler.Demographics(ratios)
			if err != nil {
				return err
			}
			demos[bi] = demo
		}

		g, gctx := errgroup.WithContext(ctx)
		for bi, n := range batch {
			bi, n := bi, n
			g.Go(func() error {
				taskKey := fmt.Sprintf("%s.emp[%d]", key, n)
				deptID := departmentID
				_, err := w.expandEmployee(gctx, runID, taskKey, &spec.Job, &deptID, nil, demos[bi])
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}
	w.logf("job: %s x%d", spec.Job.Name, spec.Headcount)
	return nil
}

func (w *Workflow) logf(format string, args ...any) {
	if w.verbose {
		fmt.Printf(format+"\n", args...)
	}
}

func summarize(runID uuid.UUID, company *model.Company) *Summary {
	summary := &Summary{
		RunID:         runID,
		Company:       company.Name,
		Industry:      company.Industry,
		BusinessUnits: len(company.BusinessUnits),
		Employees:     company.Headcount(),
	}
	for i := range company.BusinessUnits {
		bu := &company.BusinessUnits[i]
		summary.Departments += len(bu.Departments)
		summary.Jobs++ // director
		for j := range bu.Departments {
			summary.Jobs += 1 + len(bu.Departments[j].Jobs) // manager + dept jobs
		}
	}
	return summary
}
