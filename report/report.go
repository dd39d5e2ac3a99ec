/*
Package report renders budget summaries as aligned text reports.

PURPOSE:
  Human-readable output for the CLI: a per-scenario report (totals plus
  personnel and operational sections with percentage shares) and a
  side-by-side comparison table across the scenario enumeration.

FORMATTING:
  Currency is whole dollars with thousands separators ("$23,632,500").
  Columns are hand-aligned with fmt width specifiers; percentages show one
  decimal place. The layout intentionally matches the long-lived console
  output consumers are used to reading.

SEE ALSO:
  - budget/summary.go: The record being rendered
  - cmd/budget: Drives these writers
*/
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/warp/budget-engine/budget"
)

const lineWidth = 80

// =============================================================================
// CURRENCY FORMATTING
// =============================================================================

// FormatMoney renders a whole-dollar amount with thousands separators.
// Fractions round to the nearest dollar.
func FormatMoney(m budget.Money) string {
	s := m.Value.Round(0).String()

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func pct(p decimal.Decimal) string {
	return fmt.Sprintf("%4.1f%%", p.InexactFloat64())
}

func share(part, whole budget.Money) string {
	if whole.IsZero() {
		return " 0.0%"
	}
	return fmt.Sprintf("%.1f%%", part.Float64()/whole.Float64()*100)
}

// =============================================================================
// PER-SCENARIO REPORT
// =============================================================================

// WriteSummary renders one scenario's full report.
func WriteSummary(w io.Writer, s budget.Summary) error {
	rule := strings.Repeat("=", lineWidth)
	dashes := strings.Repeat("-", lineWidth)

	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\n", rule)
	fmt.Fprintf(&b, "NY FRONTIER AI SAFETY AGENCY - %s SCENARIO\n", strings.ToUpper(s.Scenario.String()))
	fmt.Fprintf(&b, "%s\n\n", rule)

	fmt.Fprintf(&b, "TOTAL ANNUAL BUDGET: %s\n", FormatMoney(s.TotalAnnualBudget))
	fmt.Fprintf(&b, "Total Staff: %d\n", s.TotalStaff)
	fmt.Fprintf(&b, "Cost per Employee (fully loaded): %s\n\n", FormatMoney(s.CostPerEmployee))

	fmt.Fprintf(&b, "PERSONNEL COSTS: %s (%s)\n", FormatMoney(s.PersonnelCosts), share(s.PersonnelCosts, s.TotalAnnualBudget))
	fmt.Fprintf(&b, "%s\n", dashes)
	for _, line := range s.Staffing {
		fmt.Fprintf(&b, "  %-40s %3d staff  %14s  (%s)\n",
			line.Category, line.Count, FormatMoney(line.TotalCost), pct(line.PctOfTotal))
	}
	b.WriteByte('\n')

	fmt.Fprintf(&b, "OPERATIONAL COSTS: %s (%s)\n", FormatMoney(s.OperationalCosts), share(s.OperationalCosts, s.TotalAnnualBudget))
	fmt.Fprintf(&b, "%s\n", dashes)
	for _, line := range s.Operational {
		fmt.Fprintf(&b, "  %-40s %14s  (%s)\n",
			line.Category, FormatMoney(line.AnnualCost), pct(line.PctOfTotal))
	}
	fmt.Fprintf(&b, "\n%s\n\n", rule)

	_, err := io.WriteString(w, b.String())
	return err
}

// =============================================================================
// SCENARIO COMPARISON
// =============================================================================

// WriteComparison renders a metric-by-scenario table. Summaries appear as
// columns in the order given.
func WriteComparison(w io.Writer, summaries []budget.Summary) error {
	rule := strings.Repeat("=", lineWidth)
	dashes := strings.Repeat("-", lineWidth)

	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\nSCENARIO COMPARISON\n%s\n\n", rule, rule)

	fmt.Fprintf(&b, "%-30s", "Metric")
	for _, s := range summaries {
		fmt.Fprintf(&b, " %15s", s.Scenario.Label())
	}
	fmt.Fprintf(&b, "\n%s\n", dashes)

	row := func(metric string, value func(budget.Summary) string) {
		fmt.Fprintf(&b, "%-30s", metric)
		for _, s := range summaries {
			fmt.Fprintf(&b, " %15s", value(s))
		}
		b.WriteByte('\n')
	}

	row("Total Staff", func(s budget.Summary) string { return fmt.Sprintf("%d", s.TotalStaff) })
	row("Annual Budget", func(s budget.Summary) string { return FormatMoney(s.TotalAnnualBudget) })
	row("Personnel Costs", func(s budget.Summary) string { return FormatMoney(s.PersonnelCosts) })
	row("Operational Costs", func(s budget.Summary) string { return FormatMoney(s.OperationalCosts) })
	row("Cost per Employee", func(s budget.Summary) string { return FormatMoney(s.CostPerEmployee) })

	fmt.Fprintf(&b, "\n%s\n\n", rule)

	_, err := io.WriteString(w, b.String())
	return err
}

// AllSummaries computes the summary for every scenario in enumeration order.
func AllSummaries() ([]budget.Summary, error) {
	out := make([]budget.Summary, 0, len(budget.Scenarios()))
	for _, s := range budget.Scenarios() {
		summary, err := budget.NewForScenario(s).Summary()
		if err != nil {
			return nil, fmt.Errorf("summarize %s: %w", s, err)
		}
		out = append(out, summary)
	}
	return out, nil
}
