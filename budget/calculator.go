/*
calculator.go - The scenario cost calculator

PURPOSE:
  Given a scenario identifier, build the itemized staffing and operational
  line sequences and answer aggregate cost queries over them. The whole
  component is a deterministic function scenario -> breakdown: no I/O, no
  randomness, no mutation after construction.

CONSTRUCTION ORDER:
  Staffing is built first; its total headcount feeds the per-employee
  operational formulas (facilities, technology, training). Operational
  generation therefore consumes the staffing result, never the reverse.

CONCURRENCY:
  A Calculator is read-only after New returns, so a single instance may be
  queried from multiple goroutines without locking.

SEE ALSO:
  - tables.go: The static inputs
  - summary.go: Composite summary assembly
*/
package budget

import (
	"github.com/shopspring/decimal"
)

// Calculator holds the itemized budget for one scenario.
// Construct with New (identifier, with fallback) or NewForScenario.
type Calculator struct {
	scenario    Scenario
	staffing    []StaffingLine
	operational []OperationalLine
}

// New builds the calculator for a scenario identifier. Unknown identifiers
// resolve to the comprehensive scenario (see ParseScenario).
func New(id string) *Calculator {
	return NewForScenario(ParseScenario(id))
}

// NewForScenario builds the calculator for a known scenario.
func NewForScenario(s Scenario) *Calculator {
	staffing := buildStaffing(s)
	total := 0
	for _, line := range staffing {
		total += line.Count
	}
	return &Calculator{
		scenario:    s,
		staffing:    staffing,
		operational: buildOperational(s, total),
	}
}

// Scenario returns the effective scenario this calculator was built for.
func (c *Calculator) Scenario() Scenario { return c.scenario }

// Staffing returns the staffing lines in plan order.
// The returned slice is shared; callers must not modify it.
func (c *Calculator) Staffing() []StaffingLine { return c.staffing }

// Operational returns the operational lines in plan order.
// The returned slice is shared; callers must not modify it.
func (c *Calculator) Operational() []OperationalLine { return c.operational }

// =============================================================================
// LINE GENERATION
// =============================================================================

// buildStaffing resolves a scenario's staffing plan against the salary
// table, preserving plan order.
func buildStaffing(s Scenario) []StaffingLine {
	plan := staffingPlans[s]
	if plan == nil {
		plan = staffingPlans[ScenarioComprehensive]
	}

	lines := make([]StaffingLine, 0, len(plan))
	for _, e := range plan {
		lines = append(lines, StaffingLine{
			Category:    e.Label,
			Key:         e.Key,
			Count:       e.Count,
			Salary:      SalaryRanges[e.Key],
			Description: e.Description,
		})
	}
	return lines
}

// buildOperational computes the ten operational lines for a scenario.
// Flat lines scale by one of the three scenario factors; per-employee lines
// scale by total headcount (facilities additionally by the facility factor).
func buildOperational(s Scenario, totalStaff int) []OperationalLine {
	f := ScaleFactorsFor(s)
	staff := decimal.NewFromInt(int64(totalStaff))

	return []OperationalLine{
		{
			Category:    "Compute Infrastructure & Cloud Services",
			AnnualCost:  NewMoneyFromInt(8_000_000).Mul(f.Compute),
			Description: "GPU clusters for model evaluation, cloud services, data storage",
		},
		{
			Category:    "Facilities & Real Estate",
			AnnualCost:  NewMoneyFromInt(12_000).Mul(staff).Mul(f.Facility),
			Description: "Office space, security, utilities (avg $12k/employee annually in NYC)",
		},
		{
			Category:    "Technology & Software",
			AnnualCost:  NewMoneyFromInt(8_000).Mul(staff),
			Description: "Software licenses, development tools, security tools, collaboration platforms",
		},
		{
			Category:    "External Research & Contracts",
			AnnualCost:  NewMoneyFromInt(5_000_000).Mul(f.Contract),
			Description: "University partnerships, consulting, third-party audits, expert reviews",
		},
		{
			Category:    "Training & Professional Development",
			AnnualCost:  NewMoneyFromInt(5_000).Mul(staff),
			Description: "Technical training, conferences, certifications, continuing education",
		},
		{
			Category:    "Travel & Outreach",
			AnnualCost:  NewMoneyFromInt(1_000_000).Mul(f.Contract),
			Description: "Industry engagement, international coordination, conferences, site visits",
		},
		{
			Category:    "Legal & Compliance",
			AnnualCost:  NewMoneyFromInt(800_000).Mul(f.Contract),
			Description: "External legal counsel, compliance tools, regulatory filings",
		},
		{
			Category:    "Communications & Public Affairs",
			AnnualCost:  NewMoneyFromInt(500_000).Mul(f.Facility),
			Description: "Public education, stakeholder engagement, reporting, publications",
		},
		{
			Category:    "Emergency Response & Incident Management",
			AnnualCost:  NewMoneyFromInt(1_500_000).Mul(f.Compute),
			Description: "Rapid response capabilities, incident investigation, crisis management",
		},
		{
			Category:    "Administrative Overhead",
			AnnualCost:  NewMoneyFromInt(500_000).Mul(f.Facility),
			Description: "General supplies, equipment, miscellaneous operational expenses",
		},
	}
}

// =============================================================================
// AGGREGATE QUERIES
// =============================================================================

// TotalPersonnelCost sums the loaded cost of every staffing line.
func (c *Calculator) TotalPersonnelCost() Money {
	total := Money{}
	for _, line := range c.staffing {
		total = total.Add(line.LoadedCost())
	}
	return total
}

// TotalOperationalCost sums every operational line.
func (c *Calculator) TotalOperationalCost() Money {
	total := Money{}
	for _, line := range c.operational {
		total = total.Add(line.AnnualCost)
	}
	return total
}

// TotalAnnualCost is personnel plus operational, exactly.
func (c *Calculator) TotalAnnualCost() Money {
	return c.TotalPersonnelCost().Add(c.TotalOperationalCost())
}

// TotalStaffCount sums all staffing-line headcounts.
func (c *Calculator) TotalStaffCount() int {
	total := 0
	for _, line := range c.staffing {
		total += line.Count
	}
	return total
}

// CostPerEmployee is the fully loaded annual cost divided by headcount.
// Fails with ErrZeroStaff when the scenario has no staff rather than
// dividing silently.
func (c *Calculator) CostPerEmployee() (Money, error) {
	staff := c.TotalStaffCount()
	if staff == 0 {
		return Money{}, &ZeroStaffError{Scenario: c.scenario}
	}
	return c.TotalAnnualCost().Div(decimal.NewFromInt(int64(staff))), nil
}
