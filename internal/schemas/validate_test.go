package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidRatios(t *testing.T) {
	doc := []byte(`{
		"gender": {"male": 0.48, "female": 0.48, "non_binary": 0.02, "prefer_not_to_say": 0.02},
		"ethnicity": {"white": 0.6, "black": 0.13, "asian": 0.12, "hispanic": 0.1, "other": 0.05},
		"generation": {"baby_boomer": 0.1, "gen_x": 0.25, "millennial": 0.45, "gen_z": 0.2}
	}`)

	assert.NoError(t, Validate(Ratios, doc))
}

func TestValidate_RatiosMissingCategory(t *testing.T) {
	doc := []byte(`{
		"gender": {"male": 0.5, "female": 0.5, "non_binary": 0, "prefer_not_to_say": 0},
		"ethnicity": {"white": 0.6, "black": 0.13, "asian": 0.12, "hispanic": 0.1, "other": 0.05}
	}`)

	err := Validate(Ratios, doc)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
	assert.Equal(t, Ratios, validationErr.Schema)
}

func TestValidate_RatiosOutOfRange(t *testing.T) {
	doc := []byte(`{
		"gender": {"male": 1.5, "female": 0.5, "non_binary": 0, "prefer_not_to_say": 0},
		"ethnicity": {"white": 0.6, "black": 0.13, "asian": 0.12, "hispanic": 0.1, "other": 0.05},
		"generation": {"baby_boomer": 0.1, "gen_x": 0.25, "millennial": 0.45, "gen_z": 0.2}
	}`)

	err := Validate(Ratios, doc)
	require.Error(t, err)

	_, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
}

func TestValidate_ValidCompany(t *testing.T) {
	doc := []byte(`{
		"name": "Acme Robotics",
		"description": "Industrial automation",
		"industry": "Industrials",
		"business_units": [
			{
				"name": "Operations",
				"description": "Runs the plants",
				"director": {
					"name": "Director of Operations",
					"description": "Leads operations",
					"job_level": "Director",
					"job_family": "Operations",
					"contract_type": "Full-Time",
					"workplace_type": "Onsite"
				},
				"departments": [
					{
						"name": "Assembly",
						"description": "Final assembly",
						"manager": {
							"name": "Assembly Manager",
							"description": "Manages the line",
							"job_level": "Manager",
							"job_family": "Operations",
							"contract_type": "Full-Time",
							"workplace_type": "Onsite"
						},
						"jobs": [
							{
								"job": {
									"name": "Assembly Technician",
									"description": "Assembles units",
									"job_level": "Junior",
									"job_family": "Operations",
									"contract_type": "Full-Time",
									"workplace_type": "Onsite"
								},
								"headcount": 12
							}
						]
					}
				]
			}
		]
	}`)

	assert.NoError(t, Validate(Company, doc))
}

func TestValidate_CompanyBadEnum(t *testing.T) {
	doc := []byte(`{
		"name": "Acme",
		"description": "x",
		"industry": "Alchemy",
		"business_units": []
	}`)

	err := Validate(Company, doc)
	require.Error(t, err)

	_, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
}

func TestValidate_EducationAssignment(t *testing.T) {
	valid := []byte(`{"education_level": "Bachelor Degree", "education_field": "Computer Science"}`)
	assert.NoError(t, Validate(EducationAssignment, valid))

	invalid := []byte(`{"education_level": "Kindergarten", "education_field": "Computer Science"}`)
	err := Validate(EducationAssignment, invalid)
	require.Error(t, err)
}

func TestValidate_Compensation(t *testing.T) {
	valid := []byte(`{"annual_base_salary": 85000, "annual_bonus_amount": 5000, "rate_type": "Salary"}`)
	assert.NoError(t, Validate(Compensation, valid))

	zeroBase := []byte(`{"annual_base_salary": 0, "rate_type": "Salary"}`)
	err := Validate(Compensation, zeroBase)
	require.Error(t, err)
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("benefits", []byte(`{}`))
	require.Error(t, err)

	loadErr, ok := err.(*SchemaLoadError)
	require.True(t, ok, "error should be SchemaLoadError type")
	assert.Equal(t, "benefits", loadErr.Schema)
}

func TestSource_ReturnsEmbeddedSchema(t *testing.T) {
	for _, name := range []string{Company, Ratios, EducationAssignment, Compensation} {
		raw, err := Source(name)
		require.NoError(t, err, name)
		assert.Contains(t, string(raw), "$schema")
	}
}
