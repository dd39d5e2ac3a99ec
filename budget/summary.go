/*
summary.go - Composite summary assembly

PURPOSE:
  Summary packages every aggregate plus both line breakdowns (with each
  line's percentage share of the total budget) into one record suitable for
  rendering or serialization. It is recomputed on every call - there is no
  cached state, so repeated calls on the same calculator are identical.

SEE ALSO:
  - export/: Maps Summary onto the persisted JSON field names
  - report/: Renders Summary as an aligned text report
*/
package budget

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// StaffingLineSummary is a staffing line with its computed totals.
type StaffingLineSummary struct {
	Category    string
	Count       int
	Salary      Money
	TotalCost   Money           // Loaded cost (count x salary x 1.30)
	PctOfTotal  decimal.Decimal // Share of total annual budget, in percent
	Description string
}

// OperationalLineSummary is an operational line with its budget share.
type OperationalLineSummary struct {
	Category    string
	AnnualCost  Money
	PctOfTotal  decimal.Decimal
	Description string
}

// Summary is the complete computed result for one scenario.
type Summary struct {
	Scenario          Scenario
	TotalStaff        int
	TotalAnnualBudget Money
	PersonnelCosts    Money
	OperationalCosts  Money
	CostPerEmployee   Money
	Staffing          []StaffingLineSummary
	Operational       []OperationalLineSummary
}

// Summary assembles the full breakdown. It fails only when the scenario has
// zero staff (cost per employee is undefined there).
func (c *Calculator) Summary() (Summary, error) {
	perEmployee, err := c.CostPerEmployee()
	if err != nil {
		return Summary{}, err
	}

	total := c.TotalAnnualCost()

	staffing := make([]StaffingLineSummary, 0, len(c.staffing))
	for _, line := range c.staffing {
		cost := line.LoadedCost()
		staffing = append(staffing, StaffingLineSummary{
			Category:    line.Category,
			Count:       line.Count,
			Salary:      line.Salary,
			TotalCost:   cost,
			PctOfTotal:  pctOf(cost, total),
			Description: line.Description,
		})
	}

	operational := make([]OperationalLineSummary, 0, len(c.operational))
	for _, line := range c.operational {
		operational = append(operational, OperationalLineSummary{
			Category:    line.Category,
			AnnualCost:  line.AnnualCost,
			PctOfTotal:  pctOf(line.AnnualCost, total),
			Description: line.Description,
		})
	}

	return Summary{
		Scenario:          c.scenario,
		TotalStaff:        c.TotalStaffCount(),
		TotalAnnualBudget: total,
		PersonnelCosts:    c.TotalPersonnelCost(),
		OperationalCosts:  c.TotalOperationalCost(),
		CostPerEmployee:   perEmployee,
		Staffing:          staffing,
		Operational:       operational,
	}, nil
}

// pctOf returns part/whole as a percentage. Zero when the whole is zero;
// that only happens for an empty plan, which Summary already rejects.
func pctOf(part, whole Money) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Value.Div(whole.Value).Mul(hundred)
}
