package model

import "github.com/google/uuid"

// JobLevel is the rank of a position within the organizational hierarchy.
type JobLevel string

// Job level ranks, lowest to highest.
const (
	LevelIntern    JobLevel = "Intern"
	LevelJunior    JobLevel = "Junior"
	LevelMid       JobLevel = "Mid"
	LevelSenior    JobLevel = "Senior"
	LevelLead      JobLevel = "Lead"
	LevelManager   JobLevel = "Manager"
	LevelDirector  JobLevel = "Director"
	LevelPresident JobLevel = "President"
)

// JobLevels lists all valid job levels in rank order.
var JobLevels = []JobLevel{
	LevelIntern, LevelJunior, LevelMid, LevelSenior,
	LevelLead, LevelManager, LevelDirector, LevelPresident,
}

// Valid reports whether the level is one of the defined ranks.
func (l JobLevel) Valid() bool {
	for _, v := range JobLevels {
		if l == v {
			return true
		}
	}
	return false
}

// JobFamily groups related roles by functional area.
type JobFamily string

// Functional job families.
const (
	FamilyEngineering         JobFamily = "Engineering"
	FamilyProduct             JobFamily = "Product"
	FamilyDesign              JobFamily = "Design"
	FamilyData                JobFamily = "Data"
	FamilyMarketing           JobFamily = "Marketing"
	FamilySales               JobFamily = "Sales"
	FamilyCustomerSuccess     JobFamily = "Customer Success"
	FamilyFinance             JobFamily = "Finance"
	FamilyHumanResources      JobFamily = "Human Resources"
	FamilyLegal               JobFamily = "Legal"
	FamilyOperations          JobFamily = "Operations"
	FamilySecurity            JobFamily = "Security"
	FamilyQualityAssurance    JobFamily = "Quality Assurance"
	FamilyBusinessDevelopment JobFamily = "Business Development"
	FamilyExecutive           JobFamily = "Executive"
)

// JobFamilies lists all valid job families.
var JobFamilies = []JobFamily{
	FamilyEngineering, FamilyProduct, FamilyDesign, FamilyData,
	FamilyMarketing, FamilySales, FamilyCustomerSuccess, FamilyFinance,
	FamilyHumanResources, FamilyLegal, FamilyOperations, FamilySecurity,
	FamilyQualityAssurance, FamilyBusinessDevelopment, FamilyExecutive,
}

// Valid reports whether the family is one of the defined categories.
func (f JobFamily) Valid() bool {
	for _, v := range JobFamilies {
		if f == v {
			return true
		}
	}
	return false
}

// ContractType classifies the employment relationship.
type ContractType string

// Contract types.
const (
	ContractFullTime  ContractType = "Full-Time"
	ContractPartTime  ContractType = "Part-Time"
	ContractContract  ContractType = "Contract"
	ContractTemporary ContractType = "Temporary"
	ContractIntern    ContractType = "Intern"
)

// Valid reports whether the contract type is recognized.
func (c ContractType) Valid() bool {
	switch c {
	case ContractFullTime, ContractPartTime, ContractContract, ContractTemporary, ContractIntern:
		return true
	}
	return false
}

// WorkplaceType classifies where work is performed.
type WorkplaceType string

// Workplace arrangements.
const (
	WorkplaceRemote WorkplaceType = "Remote"
	WorkplaceOnsite WorkplaceType = "Onsite"
	WorkplaceHybrid WorkplaceType = "Hybrid"
)

// Valid reports whether the workplace type is recognized.
func (w WorkplaceType) Valid() bool {
	switch w {
	case WorkplaceRemote, WorkplaceOnsite, WorkplaceHybrid:
		return true
	}
	return false
}

// Job is a position definition shared by reference across many employees.
// Immutable once created.
type Job struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description,omitempty"`
	JobLevel      JobLevel      `json:"job_level"`
	JobFamily     JobFamily     `json:"job_family"`
	ContractType  ContractType  `json:"contract_type"`
	WorkplaceType WorkplaceType `json:"workplace_type"`
}

// Validate checks the job's enum fields and required name.
func (j *Job) Validate() error {
	if j.Name == "" {
		return &ValidationError{Entity: "job", Field: "name", Message: "name is required"}
	}
	if !j.JobLevel.Valid() {
		return &ValidationError{Entity: "job", Field: "job_level", Message: "unrecognized job level: " + string(j.JobLevel)}
	}
	if !j.JobFamily.Valid() {
		return &ValidationError{Entity: "job", Field: "job_family", Message: "unrecognized job family: " + string(j.JobFamily)}
	}
	if !j.ContractType.Valid() {
		return &ValidationError{Entity: "job", Field: "contract_type", Message: "unrecognized contract type: " + string(j.ContractType)}
	}
	if !j.WorkplaceType.Valid() {
		return &ValidationError{Entity: "job", Field: "workplace_type", Message: "unrecognized workplace type: " + string(j.WorkplaceType)}
	}
	return nil
}
