package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/hr-dataset-agent/internal/checkpoint"
	"github.com/jonathan/hr-dataset-agent/internal/llm"
	"github.com/jonathan/hr-dataset-agent/internal/model"
	"github.com/jonathan/hr-dataset-agent/internal/prompts"
	"github.com/jonathan/hr-dataset-agent/internal/sampling"
	"github.com/jonathan/hr-dataset-agent/internal/schemas"
)

// runTask executes one checkpointed task. A completed record whose inputs
// hash matches short-circuits to the stored result; anything else runs fn and
// records the outcome.
func runTask[T any](ctx context.Context, steps checkpoint.Store, runID uuid.UUID, task string, inputs []any, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	hash, err := checkpoint.HashInputs(inputs...)
	if err != nil {
		return zero, err
	}

	record, err := steps.Get(ctx, runID, task)
	if err != nil {
		return zero, err
	}
	if record != nil && record.Status == checkpoint.StatusCompleted && record.InputsHash == hash {
		var out T
		if err := json.Unmarshal(record.Result, &out); err == nil {
			return out, nil
		}
		// Unreadable result, fall through and re-execute.
	}

	out, err := fn(ctx)
	if err != nil {
		// Best effort: a failed record aids diagnosis but must not mask
		// the original error.
		_ = steps.Put(ctx, runID, &checkpoint.Record{
			Task:        task,
			InputsHash:  hash,
			Status:      checkpoint.StatusFailed,
			CompletedAt: time.Now(),
		})
		return zero, err
	}

	result, err := json.Marshal(out)
	if err != nil {
		return zero, fmt.Errorf("failed to marshal result of task %s: %w", task, err)
	}
	if err := steps.Put(ctx, runID, &checkpoint.Record{
		Task:        task,
		InputsHash:  hash,
		Status:      checkpoint.StatusCompleted,
		Result:      result,
		CompletedAt: time.Now(),
	}); err != nil {
		return zero, err
	}
	return out, nil
}

func (w *Workflow) generateCompany(ctx context.Context, description string) (*model.Company, error) {
	template, err := prompts.Get("dataset.json", "company_spec")
	if err != nil {
		return nil, err
	}
	instructions := prompts.Format(template, map[string]string{"Description": description})

	var company model.Company
	if err := w.gen.Generate(ctx, llm.Request{
		Schema:       schemas.Company,
		Instructions: instructions,
	}, companySpecBudget, &company); err != nil {
		return nil, err
	}

	company.EnsureIDs()
	if err := company.Validate(); err != nil {
		return nil, err
	}
	return &company, nil
}

func (w *Workflow) generateRatios(ctx context.Context, company *model.Company) (*model.Ratios, error) {
	template, err := prompts.Get("dataset.json", "demographic_ratios")
	if err != nil {
		return nil, err
	}
	spec, err := json.Marshal(company)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize company specification: %w", err)
	}
	instructions := prompts.Format(template, map[string]string{"CompanySpec": string(spec)})

	var ratios model.Ratios
	if err := w.gen.Generate(ctx, llm.Request{
		Schema:       schemas.Ratios,
		Instructions: instructions,
	}, ratiosBudget, &ratios); err != nil {
		return nil, err
	}

	if err := ratios.Validate(); err != nil {
		return nil, err
	}
	return &ratios, nil
}

// employeeRecord is the checkpointed result of one employee expansion.
type employeeRecord struct {
	Employee     *model.Employee     `json:"employee"`
	Compensation *model.Compensation `json:"compensation"`
}

// expandEmployee runs the full chain for one person: construct from sampled
// demographics, fill education, generate compensation, insert both in one
// transaction. Any failure fails the task and propagates.
func (w *Workflow) expandEmployee(ctx context.Context, runID uuid.UUID, task string, job *model.Job, departmentID, businessUnitID *uuid.UUID, demo sampling.Demographics) (*employeeRecord, error) {
	record, err := runTask(ctx, w.steps, runID, task, []any{job, departmentID, businessUnitID, demo}, func(ctx context.Context) (*employeeRecord, error) {
		emp, err := model.NewEmployee(job.ID, departmentID, businessUnitID, demo.FirstName, demo.LastName, demo.BirthDate, demo.Gender, demo.Ethnicity)
		if err != nil {
			return nil, err
		}

		empJSON, err := json.Marshal(emp)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize employee: %w", err)
		}
		jobJSON, err := json.Marshal(job)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize job: %w", err)
		}
		promptData := map[string]string{"Employee": string(empJSON), "Job": string(jobJSON)}

		var education model.EducationAssignment
		if err := w.generateEmployeePart(ctx, "education_assignment", schemas.EducationAssignment, promptData, &education); err != nil {
			return nil, err
		}
		if err := emp.SetEducation(education.EducationLevel, education.EducationField); err != nil {
			return nil, err
		}

		// Re-serialize so the compensation call sees the education fields.
		empJSON, err = json.Marshal(emp)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize employee: %w", err)
		}
		promptData["Employee"] = string(empJSON)

		var comp model.Compensation
		if err := w.generateEmployeePart(ctx, "compensation", schemas.Compensation, promptData, &comp); err != nil {
			return nil, err
		}
		if err := comp.Validate(); err != nil {
			return nil, err
		}

		if err := w.storage.InsertEmployee(ctx, emp, &comp); err != nil {
			return nil, err
		}
		return &employeeRecord{Employee: emp, Compensation: &comp}, nil
	})
	if err != nil {
		return nil, &ExpansionError{Task: task, Cause: err}
	}
	return record, nil
}

func (w *Workflow) generateEmployeePart(ctx context.Context, promptKey, schema string, data map[string]string, out any) error {
	template, err := prompts.Get("dataset.json", promptKey)
	if err != nil {
		return err
	}
	return w.gen.Generate(ctx, llm.Request{
		Schema:       schema,
		Instructions: prompts.Format(template, data),
	}, employeeBudget, out)
}
