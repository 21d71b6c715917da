package model

import "github.com/google/uuid"

// Industry classifies a company by its primary business sector.
type Industry string

// Industry sectors.
const (
	IndustryCommunicationServices Industry = "Communication Services"
	IndustryConsulting            Industry = "Consulting"
	IndustryConsumerStaples       Industry = "Consumer Staples"
	IndustryEducation             Industry = "Education"
	IndustryEnergy                Industry = "Energy"
	IndustryFinancials            Industry = "Financials"
	IndustryHealthcare            Industry = "Healthcare"
	IndustryIndustrials           Industry = "Industrials"
	IndustryRealEstate            Industry = "Real Estate"
	IndustryRetail                Industry = "Retail"
	IndustryTechnology            Industry = "Technology"
	IndustryUtilities             Industry = "Utilities"
)

// Industries lists all valid industry sectors.
var Industries = []Industry{
	IndustryCommunicationServices, IndustryConsulting, IndustryConsumerStaples,
	IndustryEducation, IndustryEnergy, IndustryFinancials, IndustryHealthcare,
	IndustryIndustrials, IndustryRealEstate, IndustryRetail,
	IndustryTechnology, IndustryUtilities,
}

// Valid reports whether the industry is one of the defined sectors.
func (i Industry) Valid() bool {
	for _, v := range Industries {
		if i == v {
			return true
		}
	}
	return false
}

// JobsSpec pairs a job definition with its planned headcount in a department.
type JobsSpec struct {
	Job       Job `json:"job"`
	Headcount int `json:"headcount" validate:"gte=1"`
}

// Department is a functional unit inside a business unit: one manager plus an
// ordered list of job/headcount allocations. Its parent business unit is a
// storage-level relation, assigned at insertion time.
type Department struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Manager     Job        `json:"manager"`
	Jobs        []JobsSpec `json:"jobs"`
}

// BusinessUnit is a top-level organizational division with one director and
// several departments.
type BusinessUnit struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Director    Job          `json:"director"`
	Departments []Department `json:"departments"`
}

// Company is the full organizational specification produced by the
// specification-generation step. Immutable once created.
type Company struct {
	ID            uuid.UUID      `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	Industry      Industry       `json:"industry"`
	BusinessUnits []BusinessUnit `json:"business_units"`
}

// EnsureIDs walks the company tree and assigns a fresh time-ordered id to
// every node that does not have one yet. Generated specifications arrive from
// the structured-generation capability without identifiers.
func (c *Company) EnsureIDs() {
	if c.ID == uuid.Nil {
		c.ID = NewID()
	}
	for i := range c.BusinessUnits {
		bu := &c.BusinessUnits[i]
		if bu.ID == uuid.Nil {
			bu.ID = NewID()
		}
		if bu.Director.ID == uuid.Nil {
			bu.Director.ID = NewID()
		}
		for j := range bu.Departments {
			dept := &bu.Departments[j]
			if dept.ID == uuid.Nil {
				dept.ID = NewID()
			}
			if dept.Manager.ID == uuid.Nil {
				dept.Manager.ID = NewID()
			}
			for k := range dept.Jobs {
				if dept.Jobs[k].Job.ID == uuid.Nil {
					dept.Jobs[k].Job.ID = NewID()
				}
			}
		}
	}
}

// Validate checks the company tree: required names, a valid industry, at
// least one business unit, and every job and headcount within it.
func (c *Company) Validate() error {
	if c.Name == "" {
		return &ValidationError{Entity: "company", Field: "name", Message: "name is required"}
	}
	if !c.Industry.Valid() {
		return &ValidationError{Entity: "company", Field: "industry", Message: "unrecognized industry: " + string(c.Industry)}
	}
	if len(c.BusinessUnits) == 0 {
		return &ValidationError{Entity: "company", Field: "business_units", Message: "at least one business unit is required"}
	}
	for i := range c.BusinessUnits {
		bu := &c.BusinessUnits[i]
		if bu.Name == "" {
			return &ValidationError{Entity: "business_unit", Field: "name", Message: "name is required"}
		}
		if err := bu.Director.Validate(); err != nil {
			return err
		}
		for j := range bu.Departments {
			dept := &bu.Departments[j]
			if dept.Name == "" {
				return &ValidationError{Entity: "department", Field: "name", Message: "name is required"}
			}
			if err := dept.Manager.Validate(); err != nil {
				return err
			}
			for k := range dept.Jobs {
				spec := &dept.Jobs[k]
				if err := spec.Job.Validate(); err != nil {
					return err
				}
				if err := validate.Struct(spec); err != nil {
					return &ValidationError{Entity: "department", Field: "jobs", Message: "headcount must be at least 1", Cause: err}
				}
			}
		}
	}
	return nil
}

// Headcount returns the total number of employees the specification will
// produce: every planned position plus one director per business unit and
// one manager per department.
func (c *Company) Headcount() int {
	total := 0
	for i := range c.BusinessUnits {
		bu := &c.BusinessUnits[i]
		total++ // director
		for j := range bu.Departments {
			total++ // manager
			for _, spec := range bu.Departments[j].Jobs {
				total += spec.Headcount
			}
		}
	}
	return total
}
