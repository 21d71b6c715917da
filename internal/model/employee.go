package model

import (
	"time"

	"github.com/google/uuid"
)

// Gender identity categories.
type Gender string

// Gender categories.
const (
	GenderMale           Gender = "Male"
	GenderFemale         Gender = "Female"
	GenderNonBinary      Gender = "Non-binary"
	GenderPreferNotToSay Gender = "Prefer not to say"
)

// Valid reports whether the gender category is recognized.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderNonBinary, GenderPreferNotToSay:
		return true
	}
	return false
}

// Ethnicity background categories.
type Ethnicity string

// Ethnicity categories.
const (
	EthnicityAsian    Ethnicity = "Asian"
	EthnicityBlack    Ethnicity = "Black"
	EthnicityHispanic Ethnicity = "Hispanic"
	EthnicityWhite    Ethnicity = "White"
	EthnicityOther    Ethnicity = "Other"
)

// Valid reports whether the ethnicity category is recognized.
func (e Ethnicity) Valid() bool {
	switch e {
	case EthnicityAsian, EthnicityBlack, EthnicityHispanic, EthnicityWhite, EthnicityOther:
		return true
	}
	return false
}

// Generation is a birth-year-derived demographic cohort.
type Generation string

// Generational cohorts.
const (
	GenerationBabyBoomer Generation = "Baby Boomer"
	GenerationGenX       Generation = "Generation X"
	GenerationMillennial Generation = "Millennial"
	GenerationGenZ       Generation = "Generation Z"
)

// Generation boundary dates. A birth date before a boundary belongs to the
// cohort the boundary closes.
var (
	genXStart       = time.Date(1965, 1, 1, 0, 0, 0, 0, time.UTC)
	millennialStart = time.Date(1981, 1, 1, 0, 0, 0, 0, time.UTC)
	genZStart       = time.Date(1997, 1, 1, 0, 0, 0, 0, time.UTC)
	genZEnd         = time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)
)

// GenerationOf derives the generational cohort from a birth date. Dates on or
// after 2016-01-01 fall outside every cohort and are rejected.
func GenerationOf(birthDate time.Time) (Generation, error) {
	switch {
	case birthDate.Before(genXStart):
		return GenerationBabyBoomer, nil
	case birthDate.Before(millennialStart):
		return GenerationGenX, nil
	case birthDate.Before(genZStart):
		return GenerationMillennial, nil
	case birthDate.Before(genZEnd):
		return GenerationGenZ, nil
	default:
		return "", &ValidationError{
			Entity:  "employee",
			Field:   "birth_date",
			Message: "birth date " + birthDate.Format("2006-01-02") + " falls outside all generational ranges",
		}
	}
}

// EducationLevel is the highest level of formal education completed.
type EducationLevel string

// Education levels.
const (
	EducationHighSchool EducationLevel = "High School"
	EducationAssociate  EducationLevel = "Associate Degree"
	EducationBachelors  EducationLevel = "Bachelor Degree"
	EducationMasters    EducationLevel = "Master Degree"
	EducationDoctorate  EducationLevel = "Doctorate"
)

// Valid reports whether the education level is recognized.
func (l EducationLevel) Valid() bool {
	switch l {
	case EducationHighSchool, EducationAssociate, EducationBachelors, EducationMasters, EducationDoctorate:
		return true
	}
	return false
}

// EducationField is the academic discipline of an employee's study.
type EducationField string

// Education fields.
const (
	FieldAgriculture           EducationField = "Agriculture"
	FieldArts                  EducationField = "Arts"
	FieldBiologicalSciences    EducationField = "Biological Sciences"
	FieldBusiness              EducationField = "Business & Management"
	FieldCommunicationMedia    EducationField = "Communication, Journalism & Media"
	FieldComputerScience       EducationField = "Computer Science"
	FieldCivilEngineering      EducationField = "Civil Engineering"
	FieldElectricalEngineering EducationField = "Electrical Engineering"
	FieldMechanicalEngineering EducationField = "Mechanical Engineering"
	FieldChemicalEngineering   EducationField = "Chemical Engineering"
	FieldBiomedicalEngineering EducationField = "Biomedical Engineering"
	FieldMaterialsEngineering  EducationField = "Materials Engineering"
	FieldEconomics             EducationField = "Economics"
	FieldHealthSciences        EducationField = "Health Sciences"
	FieldLaw                   EducationField = "Law"
	FieldLiterature            EducationField = "Literature"
	FieldMathematicsStatistics EducationField = "Mathematics & Statistics"
	FieldMedicine              EducationField = "Medicine"
	FieldMilitaryScience       EducationField = "Military Science"
	FieldNursing               EducationField = "Nursing"
	FieldPedagogy              EducationField = "Pedagogy"
	FieldPharmacy              EducationField = "Pharmacy"
	FieldPhysicalSciences      EducationField = "Physics & Chemistry"
	FieldPoliticalScience      EducationField = "Political Science"
	FieldPsychology            EducationField = "Psychology"
	FieldReligiousStudies      EducationField = "Religious Studies"
	FieldSocialSciences        EducationField = "Social Sciences"
)

// EducationFields lists all valid education fields.
var EducationFields = []EducationField{
	FieldAgriculture, FieldArts, FieldBiologicalSciences, FieldBusiness,
	FieldCommunicationMedia, FieldComputerScience, FieldCivilEngineering,
	FieldElectricalEngineering, FieldMechanicalEngineering, FieldChemicalEngineering,
	FieldBiomedicalEngineering, FieldMaterialsEngineering, FieldEconomics,
	FieldHealthSciences, FieldLaw, FieldLiterature, FieldMathematicsStatistics,
	FieldMedicine, FieldMilitaryScience, FieldNursing, FieldPedagogy,
	FieldPharmacy, FieldPhysicalSciences, FieldPoliticalScience, FieldPsychology,
	FieldReligiousStudies, FieldSocialSciences,
}

// Valid reports whether the education field is recognized.
func (f EducationField) Valid() bool {
	for _, v := range EducationFields {
		if f == v {
			return true
		}
	}
	return false
}

// Employee is a generated person assigned to a job and to exactly one of a
// department (rank-and-file and managers) or a business unit (directors).
// Demographics are fixed at creation; only the education fields are filled
// later, once, before persistence.
type Employee struct {
	ID             uuid.UUID       `json:"id"`
	JobID          uuid.UUID       `json:"job_id"`
	DepartmentID   *uuid.UUID      `json:"department_id,omitempty"`
	BusinessUnitID *uuid.UUID      `json:"business_unit_id,omitempty"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	BirthDate      time.Time       `json:"birth_date"`
	Gender         Gender          `json:"gender"`
	Ethnicity      Ethnicity       `json:"ethnicity"`
	Generation     Generation      `json:"generation"`
	EducationLevel *EducationLevel `json:"education_level,omitempty"`
	EducationField *EducationField `json:"education_field,omitempty"`
}

// NewEmployee constructs an employee with its generation derived from the
// birth date. Education fields start nil. The department/business-unit
// exclusivity rule is enforced by the storage layer.
func NewEmployee(jobID uuid.UUID, departmentID, businessUnitID *uuid.UUID, firstName, lastName string, birthDate time.Time, gender Gender, ethnicity Ethnicity) (*Employee, error) {
	if jobID == uuid.Nil {
		return nil, &ValidationError{Entity: "employee", Field: "job_id", Message: "job id is required"}
	}
	if !gender.Valid() {
		return nil, &ValidationError{Entity: "employee", Field: "gender", Message: "unrecognized gender category: " + string(gender)}
	}
	if !ethnicity.Valid() {
		return nil, &ValidationError{Entity: "employee", Field: "ethnicity", Message: "unrecognized ethnicity category: " + string(ethnicity)}
	}
	generation, err := GenerationOf(birthDate)
	if err != nil {
		return nil, err
	}
	return &Employee{
		ID:             NewID(),
		JobID:          jobID,
		DepartmentID:   departmentID,
		BusinessUnitID: businessUnitID,
		FirstName:      firstName,
		LastName:       lastName,
		BirthDate:      birthDate,
		Gender:         gender,
		Ethnicity:      ethnicity,
		Generation:     generation,
	}, nil
}

// SetEducation fills the education fields. Valid exactly once, before the
// employee is persisted.
func (e *Employee) SetEducation(level EducationLevel, field EducationField) error {
	if !level.Valid() {
		return &ValidationError{Entity: "employee", Field: "education_level", Message: "unrecognized education level: " + string(level)}
	}
	if !field.Valid() {
		return &ValidationError{Entity: "employee", Field: "education_field", Message: "unrecognized education field: " + string(field)}
	}
	e.EducationLevel = &level
	e.EducationField = &field
	return nil
}
