/*
Package budget computes annual operating budgets for a proposed frontier AI
safety regulatory agency.

PURPOSE:
  This package contains the core scenario cost calculator: static reference
  data (salary table, per-scenario staffing plans, operational cost formulas)
  and pure query functions that turn a scenario identifier into a fully
  itemized, internally consistent budget breakdown.

KEY CONCEPTS IN THIS FILE (types.go):
  - Money: A currency amount backed by decimal.Decimal
  - Scenario: One of {minimal, moderate, comprehensive}
  - StaffCategory: A closed set of 7 job-category keys
  - StaffingLine/OperationalLine: Itemized budget lines
  - ScaleFactors: Per-scenario multipliers for operational formulas

DESIGN PRINCIPLES:
  1. Immutability: All reference tables are constants; a calculator never
     mutates after construction
  2. Precision: Uses decimal.Decimal so that totals sum exactly
     (total annual == personnel + operational, no float drift)
  3. Purity: No I/O, no randomness, no external calls anywhere in this
     package - scenario in, breakdown out

USAGE:
  calc := budget.New("moderate")
  total := calc.TotalAnnualCost()
  summary, err := calc.Summary()

SEE ALSO:
  - tables.go: Static salary and scenario reference data
  - calculator.go: The calculator and its aggregate queries
  - errors.go: Error types (zero-staff division guard)
*/
package budget

import (
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Currency amount (annual USD)
// =============================================================================

type Money struct {
	Value decimal.Decimal
}

func NewMoney(value float64) Money {
	return Money{Value: decimal.NewFromFloat(value)}
}

func NewMoneyFromInt(value int64) Money {
	return Money{Value: decimal.NewFromInt(value)}
}

func MustParseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func (m Money) Add(b Money) Money              { return Money{Value: m.Value.Add(b.Value)} }
func (m Money) Sub(b Money) Money              { return Money{Value: m.Value.Sub(b.Value)} }
func (m Money) Mul(s decimal.Decimal) Money    { return Money{Value: m.Value.Mul(s)} }
func (m Money) Div(s decimal.Decimal) Money    { return Money{Value: m.Value.Div(s)} }
func (m Money) Neg() Money                     { return Money{Value: m.Value.Neg()} }
func (m Money) IsZero() bool                   { return m.Value.IsZero() }
func (m Money) IsNegative() bool               { return m.Value.IsNegative() }
func (m Money) IsPositive() bool               { return m.Value.IsPositive() }
func (m Money) Equal(b Money) bool             { return m.Value.Equal(b.Value) }
func (m Money) GreaterThan(b Money) bool       { return m.Value.GreaterThan(b.Value) }
func (m Money) LessThan(b Money) bool          { return m.Value.LessThan(b.Value) }
func (m Money) Float64() float64               { return m.Value.InexactFloat64() }

// =============================================================================
// SCENARIO - Closed enumeration of budget scenarios
// =============================================================================

type Scenario string

const (
	ScenarioMinimal       Scenario = "minimal"       // Small focused team (~50 staff)
	ScenarioModerate      Scenario = "moderate"      // Medium-sized agency (~150 staff)
	ScenarioComprehensive Scenario = "comprehensive" // Full-service regulatory body (~300 staff)
)

// Scenarios lists the enumeration in increasing-scale order.
// Breakdown consumers (comparison table, exporter) iterate in this order.
func Scenarios() []Scenario {
	return []Scenario{ScenarioMinimal, ScenarioModerate, ScenarioComprehensive}
}

// ParseScenario maps an identifier to a Scenario.
//
// COMPATIBILITY: any identifier that is not "minimal" or "moderate" resolves
// to ScenarioComprehensive. This silent fallback is deliberate - the original
// model treats comprehensive as the catch-all branch rather than rejecting
// unknown input, and downstream consumers depend on it. Use KnownScenario to
// detect whether the fallback fired.
func ParseScenario(id string) Scenario {
	switch Scenario(strings.ToLower(strings.TrimSpace(id))) {
	case ScenarioMinimal:
		return ScenarioMinimal
	case ScenarioModerate:
		return ScenarioModerate
	default:
		return ScenarioComprehensive
	}
}

// KnownScenario reports whether id names a member of the enumeration
// (i.e. ParseScenario returned it by match rather than by fallback).
func KnownScenario(id string) bool {
	switch Scenario(strings.ToLower(strings.TrimSpace(id))) {
	case ScenarioMinimal, ScenarioModerate, ScenarioComprehensive:
		return true
	}
	return false
}

// Label returns the scenario name title-cased for display and export
// ("minimal" -> "Minimal").
func (s Scenario) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s.String()[:1]) + s.String()[1:]
}

func (s Scenario) String() string { return string(s) }

// =============================================================================
// STAFF CATEGORY - Closed set of job-category keys
// =============================================================================

type StaffCategory string

const (
	CategoryExecutiveLeadership   StaffCategory = "executive_leadership"
	CategorySeniorTechnical       StaffCategory = "senior_technical"
	CategoryTechnicalStaff        StaffCategory = "technical_staff"
	CategoryJuniorTechnical       StaffCategory = "junior_technical"
	CategoryPolicyLegal           StaffCategory = "policy_legal"
	CategoryComplianceEnforcement StaffCategory = "compliance_enforcement"
	CategoryOperationsAdmin       StaffCategory = "operations_admin"
)

// =============================================================================
// BUDGET LINES
// =============================================================================

// StaffingLine is one staffing category within a scenario's plan.
type StaffingLine struct {
	Category    string        // Display label ("Executive Leadership")
	Key         StaffCategory // Salary table key
	Count       int           // Headcount, non-negative
	Salary      Money         // Annual base salary from SalaryRanges
	Description string
}

// LoadedCost returns count x salary x 1.30. The 0.30 is a fixed
// benefits-overhead rate applied uniformly to every category.
func (l StaffingLine) LoadedCost() Money {
	return l.Salary.Mul(decimal.NewFromInt(int64(l.Count))).Mul(benefitsLoadRate)
}

// OperationalLine is one operational expense category within a scenario.
type OperationalLine struct {
	Category    string
	AnnualCost  Money
	Description string
}

// ScaleFactors are the per-scenario multipliers applied to operational
// cost formulas.
type ScaleFactors struct {
	Compute  decimal.Decimal
	Facility decimal.Decimal
	Contract decimal.Decimal
}
