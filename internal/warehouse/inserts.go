package warehouse

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/hr-dataset-agent/internal/model"
)

// maxInsertAttempts bounds primary key regeneration when an insert hits a
// unique violation. Time-ordered ids make collisions rare, so hitting this
// limit points at a systemic problem rather than bad luck.
const maxInsertAttempts = 100

// InsertJob stores a job position definition.
func (s *Store) InsertJob(ctx context.Context, job *model.Job) error {
	return s.insertWithRetry(ctx, "jobs", &job.ID, func(id uuid.UUID) error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO jobs (id, name, description, job_level, job_family, contract_type, workplace_type)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			id, job.Name, job.Description, job.JobLevel, job.JobFamily, job.ContractType, job.WorkplaceType,
		)
		return err
	})
}

// InsertBusinessUnit stores a business unit. Its director job must already
// exist.
func (s *Store) InsertBusinessUnit(ctx context.Context, bu *model.BusinessUnit) error {
	return s.insertWithRetry(ctx, "business_units", &bu.ID, func(id uuid.UUID) error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO business_units (id, name, description, director_job_id)
			VALUES ($1, $2, $3, $4)`,
			id, bu.Name, bu.Description, bu.Director.ID,
		)
		return err
	})
}

// InsertDepartment stores a department under its parent business unit. Its
// manager job and the business unit must already exist.
func (s *Store) InsertDepartment(ctx context.Context, dept *model.Department, businessUnitID uuid.UUID) error {
	return s.insertWithRetry(ctx, "departments", &dept.ID, func(id uuid.UUID) error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO departments (id, name, description, manager_job_id, business_unit_id)
			VALUES ($1, $2, $3, $4, $5)`,
			id, dept.Name, dept.Description, dept.Manager.ID, businessUnitID,
		)
		return err
	})
}

// InsertEmployee stores an employee and their compensation package in one
// transaction. Exactly one of DepartmentID and BusinessUnitID must be set:
// directors hang off a business unit, everyone else off a department.
func (s *Store) InsertEmployee(ctx context.Context, emp *model.Employee, comp *model.Compensation) error {
	if (emp.DepartmentID == nil) == (emp.BusinessUnitID == nil) {
		return &ConstraintError{
			Table: "employees",
			Cause: fmt.Errorf("employee %s %s must reference exactly one of department or business unit", emp.FirstName, emp.LastName),
		}
	}

	for attempt := 1; ; attempt++ {
		err := s.insertEmployeeTx(ctx, emp, comp)
		if err == nil {
			return nil
		}
		if isConstraintViolation(err) {
			return &ConstraintError{Table: "employees", Cause: err}
		}
		if !isUniqueViolation(err) {
			return fmt.Errorf("failed to insert employee: %w", err)
		}
		if attempt >= maxInsertAttempts {
			return &RetryExhaustedError{Table: "employees", Attempts: attempt, Cause: err}
		}
		// Collided id. Regenerate both and retry the whole transaction.
		emp.ID = model.NewID()
		comp.ID = model.NewID()
	}
}

func (s *Store) insertEmployeeTx(ctx context.Context, emp *model.Employee, comp *model.Compensation) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO employees (id, job_id, department_id, business_unit_id, first_name, last_name,
			birth_date, gender, ethnicity, education_level, education_field, generation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		emp.ID, emp.JobID, emp.DepartmentID, emp.BusinessUnitID, emp.FirstName, emp.LastName,
		emp.BirthDate, emp.Gender, emp.Ethnicity, emp.EducationLevel, emp.EducationField, emp.Generation,
	)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO compensations (id, employee_id, annual_base_salary, annual_bonus_amount,
			annual_commission_amount, rate_type, total_compensation)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		comp.ID, emp.ID, comp.AnnualBaseSalary, comp.AnnualBonusAmount,
		comp.AnnualCommissionAmount, comp.RateType, comp.Total(),
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// insertWithRetry runs an insert, regenerating the entity id and retrying on
// unique violations. The id pointer is updated in place so callers keep a
// consistent view of the stored entity.
func (s *Store) insertWithRetry(ctx context.Context, table string, id *uuid.UUID, insert func(uuid.UUID) error) error {
	for attempt := 1; ; attempt++ {
		err := insert(*id)
		if err == nil {
			return nil
		}
		if isConstraintViolation(err) {
			return &ConstraintError{Table: table, Cause: err}
		}
		if !isUniqueViolation(err) {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
		if attempt >= maxInsertAttempts {
			return &RetryExhaustedError{Table: table, Attempts: attempt, Cause: err}
		}
		*id = model.NewID()
	}
}
