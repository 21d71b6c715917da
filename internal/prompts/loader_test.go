package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownPrompts(t *testing.T) {
	tests := []struct {
		filename string
		key      string
		contains string
	}{
		{"dataset.json", "company_spec", "business strategist"},
		{"dataset.json", "demographic_ratios", "demographic ratios"},
		{"dataset.json", "education_assignment", "education level"},
		{"dataset.json", "compensation", "compensation"},
		{"agent.json", "sql_query", "SQL database"},
		{"agent.json", "answer", "data analyst"},
	}

	for _, tt := range tests {
		t.Run(tt.filename+"/"+tt.key, func(t *testing.T) {
			prompt, err := Get(tt.filename, tt.key)
			require.NoError(t, err)
			assert.Contains(t, strings.ToLower(prompt), strings.ToLower(tt.contains))
		})
	}
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("dataset.json", "benefits")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("missing.json", "company_spec")
	require.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("dataset.json", "does-not-exist")
	})
}

func TestFormat(t *testing.T) {
	template := "Employee:\n{{.Employee}}\n\nJob:\n{{.Job}}"
	result := Format(template, map[string]string{
		"Employee": `{"first_name": "Ada"}`,
		"Job":      `{"name": "Engineer"}`,
	})

	assert.Equal(t, "Employee:\n{\"first_name\": \"Ada\"}\n\nJob:\n{\"name\": \"Engineer\"}", result)
	assert.NotContains(t, result, "{{.")
}

func TestFormat_UnknownPlaceholderLeftAsIs(t *testing.T) {
	result := Format("Hello {{.Name}}", map[string]string{"Other": "x"})
	assert.Equal(t, "Hello {{.Name}}", result)
}

func TestKeys(t *testing.T) {
	keys, err := Keys("dataset.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"company_spec", "compensation", "demographic_ratios", "education_assignment"}, keys)
}
