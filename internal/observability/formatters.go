// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/hr-dataset-agent/internal/model"
	"github.com/jonathan/hr-dataset-agent/internal/workflow"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCompany outputs a human-readable summary of the generated company
// specification: the org tree down to departments, with headcounts.
func (p *Printer) PrintCompany(company *model.Company) {
	if company == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:   %s\n", company.Name))
	sb.WriteString(fmt.Sprintf("Industry:  %s\n", company.Industry))
	sb.WriteString("\n")

	count := min(len(company.BusinessUnits), maxItemsToShow)
	for i := 0; i < count; i++ {
		bu := company.BusinessUnits[i]
		sb.WriteString(fmt.Sprintf("• %s (%d departments)\n", bu.Name, len(bu.Departments)))
		deptCount := min(len(bu.Departments), 3)
		for j := 0; j < deptCount; j++ {
			dept := bu.Departments[j]
			headcount := 0
			for _, spec := range dept.Jobs {
				headcount += spec.Headcount
			}
			sb.WriteString(fmt.Sprintf("  - %s: %d positions\n", dept.Name, headcount))
		}
		if len(bu.Departments) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more departments\n", len(bu.Departments)-3))
		}
	}

	if len(company.BusinessUnits) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more business units\n", len(company.BusinessUnits)-maxItemsToShow))
	}

	p.printBox("COMPANY SPECIFICATION", strings.TrimSuffix(sb.String(), "\n"))
}

// CompanyGenerated implements workflow.Observer.
func (p *Printer) CompanyGenerated(company *model.Company) { p.PrintCompany(company) }

// RatiosGenerated implements workflow.Observer.
func (p *Printer) RatiosGenerated(ratios *model.Ratios) { p.PrintRatios(ratios) }

// PrintRatios outputs the demographic distributions as percentage tables.
func (p *Printer) PrintRatios(ratios *model.Ratios) {
	if ratios == nil {
		return
	}

	var sb strings.Builder

	writeGroup := func(label string, weights []model.Weight) {
		sb.WriteString(label + ":\n")
		for _, w := range weights {
			sb.WriteString(fmt.Sprintf("  %-20s %5.1f%%\n", w.Category, w.Value*100))
		}
	}

	writeGroup("Gender", ratios.Gender.Weights())
	sb.WriteString("\n")
	writeGroup("Ethnicity", ratios.Ethnicity.Weights())
	sb.WriteString("\n")
	writeGroup("Generation", ratios.Generation.Weights())

	p.printBox("DEMOGRAPHIC RATIOS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs the final row counts of a completed generation run.
func (p *Printer) PrintSummary(summary *workflow.Summary) {
	if summary == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Run:             %s\n", summary.RunID))
	sb.WriteString(fmt.Sprintf("Company:         %s\n", summary.Company))
	sb.WriteString(fmt.Sprintf("Industry:        %s\n", summary.Industry))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Business units:  %d\n", summary.BusinessUnits))
	sb.WriteString(fmt.Sprintf("Departments:     %d\n", summary.Departments))
	sb.WriteString(fmt.Sprintf("Jobs:            %d\n", summary.Jobs))
	sb.WriteString(fmt.Sprintf("Employees:       %d", summary.Employees))

	p.printBox("DATASET SUMMARY", sb.String())
}
