/*
calculator_test.go - Behavior tests for the scenario cost calculator

PURPOSE:
  These tests pin the arithmetic contract of the calculator:
  1. Exactness - total annual == personnel + operational, no drift
  2. Concrete values - known headcounts and costs per scenario
  3. Scale factors - operational formulas multiply correctly
  4. Monotonicity - scenarios grow minimal -> moderate -> comprehensive
  5. Fallback - unknown identifiers resolve to comprehensive
  6. Idempotence - no hidden mutable state

READING THESE TESTS:
  Each test has GIVEN/WHEN/THEN comments describing the scenario and clear
  assertions with explanatory messages.
*/
package budget_test

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/warp/budget-engine/budget"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func usd(n int64) budget.Money {
	return budget.NewMoneyFromInt(n)
}

func mustSummary(t *testing.T, c *budget.Calculator) budget.Summary {
	t.Helper()
	s, err := c.Summary()
	if err != nil {
		t.Fatalf("Summary failed for %s: %v", c.Scenario(), err)
	}
	return s
}

// =============================================================================
// EXACTNESS INVARIANTS
// =============================================================================

func TestTotalAnnualCost_ExactSumOfParts(t *testing.T) {
	// GIVEN: Each of the three defined scenarios
	// WHEN: Computing the three aggregate costs
	// THEN: total == personnel + operational, exactly (decimal, not float)

	for _, s := range budget.Scenarios() {
		calc := budget.NewForScenario(s)

		personnel := calc.TotalPersonnelCost()
		operational := calc.TotalOperationalCost()
		total := calc.TotalAnnualCost()

		if !total.Equal(personnel.Add(operational)) {
			t.Errorf("%s: total %v != personnel %v + operational %v",
				s, total.Value, personnel.Value, operational.Value)
		}
	}
}

func TestTotalStaffCount_SumOfLineHeadcounts(t *testing.T) {
	// GIVEN: Each defined scenario
	// WHEN: Summing the headcounts of the staffing lines directly
	// THEN: The sum matches TotalStaffCount

	for _, s := range budget.Scenarios() {
		calc := budget.NewForScenario(s)

		sum := 0
		for _, line := range calc.Staffing() {
			sum += line.Count
		}

		if got := calc.TotalStaffCount(); got != sum {
			t.Errorf("%s: TotalStaffCount %d != line sum %d", s, got, sum)
		}
	}
}

func TestCostPerEmployee_MatchesDivision(t *testing.T) {
	// GIVEN: Each defined scenario
	// WHEN: Computing cost per employee
	// THEN: It equals total / staff within floating-point tolerance

	for _, s := range budget.Scenarios() {
		calc := budget.NewForScenario(s)

		perEmployee, err := calc.CostPerEmployee()
		if err != nil {
			t.Fatalf("%s: CostPerEmployee failed: %v", s, err)
		}

		want := calc.TotalAnnualCost().Float64() / float64(calc.TotalStaffCount())
		got := perEmployee.Float64()
		if diff := got - want; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("%s: cost per employee %v, want %v", s, got, want)
		}
	}
}

// =============================================================================
// CONCRETE SCENARIO VALUES
// =============================================================================

func TestStaffCounts_PerScenario(t *testing.T) {
	// GIVEN: The three shipped staffing plans
	// THEN: Headcounts total 50, 150, and 308

	want := map[budget.Scenario]int{
		budget.ScenarioMinimal:       50,
		budget.ScenarioModerate:      150,
		budget.ScenarioComprehensive: 308,
	}

	for s, staff := range want {
		if got := budget.NewForScenario(s).TotalStaffCount(); got != staff {
			t.Errorf("%s: total staff %d, want %d", s, got, staff)
		}
	}
}

func TestMinimal_ConcreteBreakdown(t *testing.T) {
	// GIVEN: The minimal scenario (50 staff)
	// THEN: Executive leadership loads to 3 x 175,000 x 1.30 = 682,500,
	//       personnel totals 7,442,500, operational 16,190,000, and the
	//       annual budget is 23,632,500 ($472,650 per employee)

	calc := budget.New("minimal")

	exec := calc.Staffing()[0]
	if exec.Category != "Executive Leadership" {
		t.Fatalf("first staffing line is %q, want Executive Leadership", exec.Category)
	}
	if !exec.LoadedCost().Equal(usd(682_500)) {
		t.Errorf("executive loaded cost %v, want 682500", exec.LoadedCost().Value)
	}

	if got := calc.TotalPersonnelCost(); !got.Equal(usd(7_442_500)) {
		t.Errorf("personnel cost %v, want 7442500", got.Value)
	}
	if got := calc.TotalOperationalCost(); !got.Equal(usd(16_190_000)) {
		t.Errorf("operational cost %v, want 16190000", got.Value)
	}
	if got := calc.TotalAnnualCost(); !got.Equal(usd(23_632_500)) {
		t.Errorf("annual cost %v, want 23632500", got.Value)
	}

	perEmployee, err := calc.CostPerEmployee()
	if err != nil {
		t.Fatalf("CostPerEmployee failed: %v", err)
	}
	if !perEmployee.Equal(usd(472_650)) {
		t.Errorf("cost per employee %v, want 472650", perEmployee.Value)
	}
}

func TestModerate_TotalBudget(t *testing.T) {
	// GIVEN: The moderate scenario (150 staff)
	// THEN: 21,450,000 personnel + 30,550,000 operational = 52,000,000

	calc := budget.New("moderate")

	if got := calc.TotalPersonnelCost(); !got.Equal(usd(21_450_000)) {
		t.Errorf("personnel cost %v, want 21450000", got.Value)
	}
	if got := calc.TotalOperationalCost(); !got.Equal(usd(30_550_000)) {
		t.Errorf("operational cost %v, want 30550000", got.Value)
	}
	if got := calc.TotalAnnualCost(); !got.Equal(usd(52_000_000)) {
		t.Errorf("annual cost %v, want 52000000", got.Value)
	}
}

func TestComprehensive_TotalBudget(t *testing.T) {
	// GIVEN: The comprehensive scenario (308 staff)
	// THEN: 43,940,000 personnel + 57,839,200 operational = 101,779,200

	calc := budget.New("comprehensive")

	if got := calc.TotalPersonnelCost(); !got.Equal(usd(43_940_000)) {
		t.Errorf("personnel cost %v, want 43940000", got.Value)
	}
	if got := calc.TotalOperationalCost(); !got.Equal(usd(57_839_200)) {
		t.Errorf("operational cost %v, want 57839200", got.Value)
	}
	if got := calc.TotalAnnualCost(); !got.Equal(usd(101_779_200)) {
		t.Errorf("annual cost %v, want 101779200", got.Value)
	}
}

// =============================================================================
// OPERATIONAL FORMULAS
// =============================================================================

func TestComputeInfrastructure_ScalesPerScenario(t *testing.T) {
	// GIVEN: The compute infrastructure line ($8M base)
	// THEN: It scales by exactly 1.0 / 2.0 / 4.0 across the scenarios

	want := map[budget.Scenario]budget.Money{
		budget.ScenarioMinimal:       usd(8_000_000),
		budget.ScenarioModerate:      usd(16_000_000),
		budget.ScenarioComprehensive: usd(32_000_000),
	}

	for s, cost := range want {
		line := budget.NewForScenario(s).Operational()[0]
		if line.Category != "Compute Infrastructure & Cloud Services" {
			t.Fatalf("%s: first operational line is %q", s, line.Category)
		}
		if !line.AnnualCost.Equal(cost) {
			t.Errorf("%s: compute line %v, want %v", s, line.AnnualCost.Value, cost.Value)
		}
	}
}

func TestOperationalLines_MinimalFormulas(t *testing.T) {
	// GIVEN: Minimal scenario - 50 staff, scales (1.0, 0.8, 0.7)
	// THEN: Every per-employee and flat-scaled line matches its formula

	byCategory := map[string]budget.Money{}
	for _, line := range budget.New("minimal").Operational() {
		byCategory[line.Category] = line.AnnualCost
	}

	want := map[string]budget.Money{
		"Facilities & Real Estate":                 usd(480_000),   // 50 x 12,000 x 0.8
		"Technology & Software":                    usd(400_000),   // 50 x 8,000, unscaled
		"External Research & Contracts":            usd(3_500_000), // 5,000,000 x 0.7
		"Training & Professional Development":      usd(250_000),   // 50 x 5,000, unscaled
		"Travel & Outreach":                        usd(700_000),   // 1,000,000 x 0.7
		"Legal & Compliance":                       usd(560_000),   // 800,000 x 0.7
		"Communications & Public Affairs":          usd(400_000),   // 500,000 x 0.8
		"Emergency Response & Incident Management": usd(1_500_000), // 1,500,000 x 1.0
		"Administrative Overhead":                  usd(400_000),   // 500,000 x 0.8
	}

	for category, cost := range want {
		got, ok := byCategory[category]
		if !ok {
			t.Errorf("missing operational line %q", category)
			continue
		}
		if !got.Equal(cost) {
			t.Errorf("%s: %v, want %v", category, got.Value, cost.Value)
		}
	}
}

func TestOperationalLines_FixedOrderAndCount(t *testing.T) {
	// GIVEN: Any scenario
	// THEN: Exactly ten operational lines, always in the same order
	//       (breakdown percentages are reported in insertion order)

	wantOrder := []string{
		"Compute Infrastructure & Cloud Services",
		"Facilities & Real Estate",
		"Technology & Software",
		"External Research & Contracts",
		"Training & Professional Development",
		"Travel & Outreach",
		"Legal & Compliance",
		"Communications & Public Affairs",
		"Emergency Response & Incident Management",
		"Administrative Overhead",
	}

	for _, s := range budget.Scenarios() {
		lines := budget.NewForScenario(s).Operational()
		if len(lines) != len(wantOrder) {
			t.Fatalf("%s: %d operational lines, want %d", s, len(lines), len(wantOrder))
		}
		for i, line := range lines {
			if line.Category != wantOrder[i] {
				t.Errorf("%s: line %d is %q, want %q", s, i, line.Category, wantOrder[i])
			}
		}
	}
}

// =============================================================================
// MONOTONICITY ACROSS SCENARIOS
// =============================================================================

func TestScenarios_GrowMonotonically(t *testing.T) {
	// GIVEN: The scenarios ordered minimal -> moderate -> comprehensive
	// THEN: Headcount never shrinks for any shared category, and the total
	//       annual budget strictly increases

	minimal := budget.NewForScenario(budget.ScenarioMinimal)
	moderate := budget.NewForScenario(budget.ScenarioModerate)
	comprehensive := budget.NewForScenario(budget.ScenarioComprehensive)

	counts := func(c *budget.Calculator) map[string]int {
		m := map[string]int{}
		for _, line := range c.Staffing() {
			m[line.Category] = line.Count
		}
		return m
	}

	small, mid, large := counts(minimal), counts(moderate), counts(comprehensive)
	for category, n := range small {
		if mid[category] < n {
			t.Errorf("%s: moderate count %d < minimal %d", category, mid[category], n)
		}
	}
	for category, n := range mid {
		if category == "Junior Technical Staff" {
			// Present in moderate/comprehensive only; minimal has no junior tier.
			continue
		}
		if large[category] < n {
			t.Errorf("%s: comprehensive count %d < moderate %d", category, large[category], n)
		}
	}
	if large["Junior Technical Staff"] < mid["Junior Technical Staff"] {
		t.Error("junior technical shrinks moderate -> comprehensive")
	}

	if !minimal.TotalAnnualCost().LessThan(moderate.TotalAnnualCost()) {
		t.Error("minimal budget should be below moderate")
	}
	if !moderate.TotalAnnualCost().LessThan(comprehensive.TotalAnnualCost()) {
		t.Error("moderate budget should be below comprehensive")
	}
}

// =============================================================================
// FALLBACK AND IDEMPOTENCE
// =============================================================================

func TestUnknownScenario_FallsBackToComprehensive(t *testing.T) {
	// GIVEN: An identifier outside the enumeration
	// WHEN: Building a calculator from it
	// THEN: The result is identical to the comprehensive scenario
	//       (compatibility fallback - see ParseScenario)

	bogus := mustSummary(t, budget.New("bogus"))
	comprehensive := mustSummary(t, budget.New("comprehensive"))

	if !reflect.DeepEqual(bogus, comprehensive) {
		t.Error("unknown scenario should produce the comprehensive breakdown")
	}

	if budget.KnownScenario("bogus") {
		t.Error("KnownScenario should report the fallback")
	}
	if !budget.KnownScenario("MODERATE") {
		t.Error("KnownScenario should be case-insensitive")
	}
}

func TestSummary_Idempotent(t *testing.T) {
	// GIVEN: One calculator instance
	// WHEN: Calling Summary twice
	// THEN: Both results are identical (no hidden mutable state)

	calc := budget.New("moderate")

	first := mustSummary(t, calc)
	second := mustSummary(t, calc)

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated Summary calls should be identical")
	}
}

// =============================================================================
// SUMMARY CONTENTS
// =============================================================================

func TestSummary_PercentagesSumToHundred(t *testing.T) {
	// GIVEN: A full summary
	// THEN: Staffing and operational percentage shares together cover the
	//       whole budget (sum to 100 within decimal division precision)

	summary := mustSummary(t, budget.New("comprehensive"))

	sum := decimal.Zero
	for _, line := range summary.Staffing {
		sum = sum.Add(line.PctOfTotal)
	}
	for _, line := range summary.Operational {
		sum = sum.Add(line.PctOfTotal)
	}

	if diff := sum.Sub(decimal.NewFromInt(100)).Abs(); diff.GreaterThan(decimal.NewFromFloat(1e-9)) {
		t.Errorf("percentages sum to %v, want 100", sum)
	}
}

func TestSummary_CarriesAggregates(t *testing.T) {
	// GIVEN: A summary for minimal
	// THEN: The scalar fields mirror the aggregate queries

	calc := budget.New("minimal")
	summary := mustSummary(t, calc)

	if summary.Scenario != budget.ScenarioMinimal {
		t.Errorf("scenario %q, want minimal", summary.Scenario)
	}
	if summary.TotalStaff != 50 {
		t.Errorf("total staff %d, want 50", summary.TotalStaff)
	}
	if !summary.TotalAnnualBudget.Equal(calc.TotalAnnualCost()) {
		t.Error("summary total differs from TotalAnnualCost")
	}
	if !summary.PersonnelCosts.Equal(calc.TotalPersonnelCost()) {
		t.Error("summary personnel differs from TotalPersonnelCost")
	}
	if !summary.OperationalCosts.Equal(calc.TotalOperationalCost()) {
		t.Error("summary operational differs from TotalOperationalCost")
	}
	if len(summary.Staffing) != 6 {
		t.Errorf("minimal staffing lines %d, want 6 (no junior tier)", len(summary.Staffing))
	}
	if len(summary.Operational) != 10 {
		t.Errorf("operational lines %d, want 10", len(summary.Operational))
	}
}
