package model

import "github.com/google/uuid"

// RateType classifies how compensation is paid out.
type RateType string

// Rate types.
const (
	RateHourly RateType = "Hourly"
	RateSalary RateType = "Salary"
)

// Valid reports whether the rate type is recognized.
func (r RateType) Valid() bool {
	return r == RateHourly || r == RateSalary
}

// Compensation is the annual pay package for one employee. Created and
// persisted together with its employee, immutable afterwards.
type Compensation struct {
	ID                     uuid.UUID `json:"id"`
	AnnualBaseSalary       float64   `json:"annual_base_salary" validate:"gte=1"`
	AnnualBonusAmount      *float64  `json:"annual_bonus_amount,omitempty" validate:"omitempty,gte=0"`
	AnnualCommissionAmount *float64  `json:"annual_commission_amount,omitempty" validate:"omitempty,gte=0"`
	RateType               RateType  `json:"rate_type"`
}

// Validate checks the numeric ranges and rate type. Assigns an id when the
// package arrived from the structured-generation capability without one.
func (c *Compensation) Validate() error {
	if c.ID == uuid.Nil {
		c.ID = NewID()
	}
	if !c.RateType.Valid() {
		return &ValidationError{Entity: "compensation", Field: "rate_type", Message: "unrecognized rate type: " + string(c.RateType)}
	}
	if err := validate.Struct(c); err != nil {
		return &ValidationError{Entity: "compensation", Message: "amount out of range", Cause: err}
	}
	return nil
}

// Total returns base + bonus + commission, treating nil amounts as zero.
func (c *Compensation) Total() float64 {
	total := c.AnnualBaseSalary
	if c.AnnualBonusAmount != nil {
		total += *c.AnnualBonusAmount
	}
	if c.AnnualCommissionAmount != nil {
		total += *c.AnnualCommissionAmount
	}
	return total
}

// EducationAssignment is the structured response shape for the per-employee
// education generation step.
type EducationAssignment struct {
	EducationLevel EducationLevel `json:"education_level"`
	EducationField EducationField `json:"education_field"`
}
