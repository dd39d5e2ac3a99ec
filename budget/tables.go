/*
tables.go - Static reference data for the cost model

PURPOSE:
  All hardcoded inputs live here: the salary table, the per-scenario
  staffing plans, and the per-scenario operational scale factors. The
  calculator never computes from anything else.

SALARY DATA:
  Based on NY state government compensation (NY OER salary schedules,
  SeeThroughNY data). Comparable agencies used to size the scenarios:
  - NY Department of Financial Services: 1,390 staff, $360M budget
  - UK AI Safety Institute: 100+ technical staff, ~$85M USD budget
  - NIST AI Safety Institute: ~$10M initial budget
  - California DTSC: ~1,000 staff, ~$196M budget

ORDERING:
  Staffing plans are ordered slices, not maps. Line-item order is part of
  the contract: reports and exports present percentage breakdowns in
  insertion order, so it must be stable.

SEE ALSO:
  - calculator.go: Consumes these tables
*/
package budget

// benefitsLoadRate converts base salary to fully loaded cost
// (30% benefits overhead, applied uniformly).
var benefitsLoadRate = MustParseDecimal("1.30")

// =============================================================================
// SALARY TABLE
// =============================================================================

// SalaryRanges maps each job category to its annual base salary.
// Process-wide constant; never mutated.
var SalaryRanges = map[StaffCategory]Money{
	CategoryExecutiveLeadership:   NewMoneyFromInt(175_000), // Commissioner, Deputy Commissioners
	CategorySeniorTechnical:       NewMoneyFromInt(145_000), // Senior AI Safety Researchers, Principal Engineers
	CategoryTechnicalStaff:        NewMoneyFromInt(110_000), // AI Safety Researchers, ML Engineers, Evaluators
	CategoryPolicyLegal:           NewMoneyFromInt(115_000), // Policy Analysts, Legal Counsel
	CategoryComplianceEnforcement: NewMoneyFromInt(95_000),  // Compliance Officers, Enforcement Staff
	CategoryOperationsAdmin:       NewMoneyFromInt(70_000),  // Administrative, HR, Finance, IT
	CategoryJuniorTechnical:       NewMoneyFromInt(85_000),  // Junior Researchers, Analysts
}

// =============================================================================
// STAFFING PLANS - Ordered (category, headcount) per scenario
// =============================================================================

// staffingEntry is one row of a scenario's staffing plan before salaries
// are attached.
type staffingEntry struct {
	Label       string
	Key         StaffCategory
	Count       int
	Description string
}

// staffingPlans holds the fixed staffing plan for each scenario.
// Headcounts grow monotonically minimal -> moderate -> comprehensive for
// every category present in all three; minimal has no junior technical tier.
var staffingPlans = map[Scenario][]staffingEntry{
	// Small focused team - basic model evaluation and oversight
	ScenarioMinimal: {
		{"Executive Leadership", CategoryExecutiveLeadership, 3,
			"Commissioner, Deputy Commissioner, Chief of Staff"},
		{"Senior Technical Staff", CategorySeniorTechnical, 8,
			"Senior AI Safety Researchers, Principal ML Engineers"},
		{"Technical Staff", CategoryTechnicalStaff, 20,
			"AI Safety Researchers, ML Engineers, Model Evaluators"},
		{"Policy & Legal", CategoryPolicyLegal, 8,
			"Policy Analysts, Legal Counsel, Regulatory Affairs"},
		{"Compliance & Enforcement", CategoryComplianceEnforcement, 6,
			"Compliance Officers, Enforcement Investigators"},
		{"Operations & Administration", CategoryOperationsAdmin, 5,
			"Administrative Support, HR, Finance, IT"},
	},

	// Medium agency - comprehensive evaluation, compliance, enforcement
	ScenarioModerate: {
		{"Executive Leadership", CategoryExecutiveLeadership, 5,
			"Commissioner, 2 Deputy Commissioners, Chief of Staff, Strategic Advisor"},
		{"Senior Technical Staff", CategorySeniorTechnical, 20,
			"Senior AI Safety Researchers, Principal Engineers, Technical Directors"},
		{"Technical Staff", CategoryTechnicalStaff, 60,
			"AI Safety Researchers, ML Engineers, Model Evaluators, Security Analysts"},
		{"Junior Technical Staff", CategoryJuniorTechnical, 20,
			"Junior Researchers, Technical Analysts, Research Associates"},
		{"Policy & Legal", CategoryPolicyLegal, 20,
			"Policy Analysts, Legal Counsel, Regulatory Affairs, Interagency Liaisons"},
		{"Compliance & Enforcement", CategoryComplianceEnforcement, 15,
			"Compliance Officers, Enforcement Investigators, Audit Coordinators"},
		{"Operations & Administration", CategoryOperationsAdmin, 10,
			"Administrative Support, HR, Finance, IT, Communications"},
	},

	// Large full-service agency - proactive monitoring, research,
	// international coordination
	ScenarioComprehensive: {
		{"Executive Leadership", CategoryExecutiveLeadership, 8,
			"Commissioner, 3 Deputy Commissioners, Chief of Staff, Strategic Advisors, Division Directors"},
		{"Senior Technical Staff", CategorySeniorTechnical, 40,
			"Senior Researchers, Principal Engineers, Technical Directors, Research Leads"},
		{"Technical Staff", CategoryTechnicalStaff, 140,
			"AI Safety Researchers, ML Engineers, Evaluators, Security Analysts, Red Team"},
		{"Junior Technical Staff", CategoryJuniorTechnical, 40,
			"Junior Researchers, Technical Analysts, Research Associates"},
		{"Policy & Legal", CategoryPolicyLegal, 35,
			"Policy Analysts, Legal Counsel, Regulatory Affairs, International Coordinators"},
		{"Compliance & Enforcement", CategoryComplianceEnforcement, 25,
			"Compliance Officers, Enforcement Investigators, Audit Team, Field Inspectors"},
		{"Operations & Administration", CategoryOperationsAdmin, 20,
			"Administrative Support, HR, Finance, IT, Communications, Facilities"},
	},
}

// =============================================================================
// OPERATIONAL SCALE FACTORS
// =============================================================================

var scaleFactorTable = map[Scenario]ScaleFactors{
	ScenarioMinimal: {
		Compute:  MustParseDecimal("1.0"),
		Facility: MustParseDecimal("0.8"),
		Contract: MustParseDecimal("0.7"),
	},
	ScenarioModerate: {
		Compute:  MustParseDecimal("2.0"),
		Facility: MustParseDecimal("1.0"),
		Contract: MustParseDecimal("1.0"),
	},
	ScenarioComprehensive: {
		Compute:  MustParseDecimal("4.0"),
		Facility: MustParseDecimal("1.2"),
		Contract: MustParseDecimal("1.5"),
	},
}

// ScaleFactorsFor returns the operational multipliers for a scenario.
func ScaleFactorsFor(s Scenario) ScaleFactors {
	if f, ok := scaleFactorTable[s]; ok {
		return f
	}
	return scaleFactorTable[ScenarioComprehensive]
}
