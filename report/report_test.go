package report_test

import (
	"strings"
	"testing"

	"github.com/warp/budget-engine/budget"
	"github.com/warp/budget-engine/report"
)

func TestFormatMoney_ThousandsSeparators(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "$0"},
		{999, "$999"},
		{1_000, "$1,000"},
		{682_500, "$682,500"},
		{23_632_500, "$23,632,500"},
		{101_779_200, "$101,779,200"},
		{-480_000, "-$480,000"},
	}

	for _, c := range cases {
		if got := report.FormatMoney(budget.NewMoneyFromInt(c.in)); got != c.want {
			t.Errorf("FormatMoney(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestWriteSummary_RendersSections(t *testing.T) {
	// GIVEN: The minimal scenario summary
	// WHEN: Rendering the text report
	// THEN: Header, totals, and both sections appear with known figures

	summary, err := budget.New("minimal").Summary()
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}

	var out strings.Builder
	if err := report.WriteSummary(&out, summary); err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}
	text := out.String()

	for _, want := range []string{
		"NY FRONTIER AI SAFETY AGENCY - MINIMAL SCENARIO",
		"TOTAL ANNUAL BUDGET: $23,632,500",
		"Total Staff: 50",
		"Cost per Employee (fully loaded): $472,650",
		"PERSONNEL COSTS: $7,442,500",
		"OPERATIONAL COSTS: $16,190,000",
		"Executive Leadership",
		"$682,500",
		"Compute Infrastructure & Cloud Services",
		"$8,000,000",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestWriteComparison_AllScenarios(t *testing.T) {
	// GIVEN: Summaries for the whole enumeration
	// WHEN: Rendering the comparison table
	// THEN: Every scenario column and every metric row is present

	summaries, err := report.AllSummaries()
	if err != nil {
		t.Fatalf("AllSummaries failed: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("got %d summaries, want 3", len(summaries))
	}

	var out strings.Builder
	if err := report.WriteComparison(&out, summaries); err != nil {
		t.Fatalf("WriteComparison failed: %v", err)
	}
	text := out.String()

	for _, want := range []string{
		"SCENARIO COMPARISON",
		"Minimal", "Moderate", "Comprehensive",
		"Total Staff",
		"Annual Budget",
		"Personnel Costs",
		"Operational Costs",
		"Cost per Employee",
		"$52,000,000",  // moderate annual budget
		"$101,779,200", // comprehensive annual budget
	} {
		if !strings.Contains(text, want) {
			t.Errorf("comparison missing %q", want)
		}
	}
}
