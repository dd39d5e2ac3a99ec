/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract. Summary bodies
  reuse the export package's wire DTOs so the API and the exported file
  present identical field names.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

SEE ALSO:
  - handlers.go: Uses these types
  - export/export.go: SummaryJSON wire shape
*/
package api

import (
	"github.com/warp/budget-engine/export"
)

// ScenarioDTO is one catalog entry.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TotalStaff  int    `json:"total_staff"`
}

// SummaryDTO wraps the wire summary with the identifier the caller sent.
// When the caller's identifier is outside the enumeration, Known is false
// and the body carries the comprehensive configuration (the documented
// fallback) - clients can detect the substitution without breaking.
type SummaryDTO struct {
	Requested string `json:"requested"`
	Known     bool   `json:"known_scenario"`
	export.SummaryJSON
}

// StaffingBreakdownDTO is the staffing-only view of a scenario.
type StaffingBreakdownDTO struct {
	Scenario   string                    `json:"scenario"`
	TotalStaff int                       `json:"total_staff"`
	Breakdown  []export.StaffingLineJSON `json:"staffing_breakdown"`
}

// OperationalBreakdownDTO is the operational-only view of a scenario.
type OperationalBreakdownDTO struct {
	Scenario  string                       `json:"scenario"`
	Total     float64                      `json:"operational_costs"`
	Breakdown []export.OperationalLineJSON `json:"operational_breakdown"`
}

// ComparisonColumnDTO is one scenario column of the comparison.
type ComparisonColumnDTO struct {
	Scenario          string  `json:"scenario"`
	TotalStaff        int     `json:"total_staff"`
	TotalAnnualBudget float64 `json:"total_annual_budget"`
	PersonnelCosts    float64 `json:"personnel_costs"`
	OperationalCosts  float64 `json:"operational_costs"`
	CostPerEmployee   float64 `json:"cost_per_employee"`
}

// ComparisonDTO compares all scenarios in enumeration order.
type ComparisonDTO struct {
	Scenarios []ComparisonColumnDTO `json:"scenarios"`
}

// CreateRunRequest asks for a computation to be persisted.
type CreateRunRequest struct {
	Scenario string `json:"scenario"`
}

// RunDTO is one persisted run in API responses. Money fields stay decimal
// text as stored; Summary is included only on single-run reads.
type RunDTO struct {
	ID                string `json:"id"`
	RequestedScenario string `json:"requested_scenario"`
	Scenario          string `json:"scenario"`
	TotalStaff        int    `json:"total_staff"`
	TotalAnnualBudget string `json:"total_annual_budget"`
	PersonnelCosts    string `json:"personnel_costs"`
	OperationalCosts  string `json:"operational_costs"`
	CostPerEmployee   string `json:"cost_per_employee"`
	CreatedAt         string `json:"created_at"`
	Summary           any    `json:"summary,omitempty"`
}

// ErrorDTO is the uniform error body.
type ErrorDTO struct {
	Error string `json:"error"`
}
