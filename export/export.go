/*
Package export serializes budget summaries to the persisted JSON contract.

PURPOSE:
  Maps the internal budget.Summary onto the stable wire field names consumed
  by the web interface (scenario, total_staff, total_annual_budget,
  personnel_costs, operational_costs, cost_per_employee, plus both
  breakdowns). These names are a compatibility contract - renaming them
  breaks existing consumers.

NAMING CONVENTION:
  *JSON types are wire DTOs. The domain model never carries json tags; the
  mapping lives here so the calculator can evolve independently of the file
  format.

OUTPUT SHAPE:
  {
    "minimal":       { "scenario": "Minimal", "total_staff": 50, ... },
    "moderate":      { ... },
    "comprehensive": { ... }
  }

SEE ALSO:
  - budget/summary.go: The source record
  - cmd/budget: Writes the export file
*/
package export

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/warp/budget-engine/budget"
)

// DefaultFilename is where the CLI writes the export when no path is given.
const DefaultFilename = "cost_analysis.json"

// =============================================================================
// WIRE DTOS - field names are a compatibility contract
// =============================================================================

// StaffingLineJSON is one staffing_breakdown entry.
type StaffingLineJSON struct {
	Category    string  `json:"category"`
	Count       int     `json:"count"`
	AvgSalary   float64 `json:"avg_salary"`
	TotalCost   float64 `json:"total_cost"`
	Description string  `json:"description"`
}

// OperationalLineJSON is one operational_breakdown entry.
type OperationalLineJSON struct {
	Category    string  `json:"category"`
	AnnualCost  float64 `json:"annual_cost"`
	Description string  `json:"description"`
}

// SummaryJSON is the serialized form of one scenario's summary.
type SummaryJSON struct {
	Scenario             string                `json:"scenario"`
	TotalStaff           int                   `json:"total_staff"`
	TotalAnnualBudget    float64               `json:"total_annual_budget"`
	PersonnelCosts       float64               `json:"personnel_costs"`
	OperationalCosts     float64               `json:"operational_costs"`
	CostPerEmployee      float64               `json:"cost_per_employee"`
	StaffingBreakdown    []StaffingLineJSON    `json:"staffing_breakdown"`
	OperationalBreakdown []OperationalLineJSON `json:"operational_breakdown"`
}

// FromSummary maps a computed summary onto the wire DTO.
// The scenario field is title-cased for display ("Minimal").
func FromSummary(s budget.Summary) SummaryJSON {
	staffing := make([]StaffingLineJSON, 0, len(s.Staffing))
	for _, line := range s.Staffing {
		staffing = append(staffing, StaffingLineJSON{
			Category:    line.Category,
			Count:       line.Count,
			AvgSalary:   line.Salary.Float64(),
			TotalCost:   line.TotalCost.Float64(),
			Description: line.Description,
		})
	}

	operational := make([]OperationalLineJSON, 0, len(s.Operational))
	for _, line := range s.Operational {
		operational = append(operational, OperationalLineJSON{
			Category:    line.Category,
			AnnualCost:  line.AnnualCost.Float64(),
			Description: line.Description,
		})
	}

	return SummaryJSON{
		Scenario:             s.Scenario.Label(),
		TotalStaff:           s.TotalStaff,
		TotalAnnualBudget:    s.TotalAnnualBudget.Float64(),
		PersonnelCosts:       s.PersonnelCosts.Float64(),
		OperationalCosts:     s.OperationalCosts.Float64(),
		CostPerEmployee:      s.CostPerEmployee.Float64(),
		StaffingBreakdown:    staffing,
		OperationalBreakdown: operational,
	}
}

// =============================================================================
// DOCUMENT ASSEMBLY
// =============================================================================

// Document computes every scenario and returns the full export map keyed by
// scenario identifier.
func Document() (map[string]SummaryJSON, error) {
	doc := make(map[string]SummaryJSON, len(budget.Scenarios()))
	for _, s := range budget.Scenarios() {
		summary, err := budget.NewForScenario(s).Summary()
		if err != nil {
			return nil, fmt.Errorf("summarize %s: %w", s, err)
		}
		doc[s.String()] = FromSummary(summary)
	}
	return doc, nil
}

// Marshal renders the export document as indented JSON.
func Marshal() ([]byte, error) {
	doc, err := Document()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}

// WriteFile writes the export document to path.
func WriteFile(path string) error {
	data, err := Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}
