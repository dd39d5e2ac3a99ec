/*
main.go - One-shot budget report CLI

PURPOSE:
  Prints the full text report for each scenario, the side-by-side
  comparison, and writes the JSON export - the offline counterpart of the
  API server.

COMMAND-LINE FLAGS:
  -scenario   Report a single scenario instead of all three. Unknown
              identifiers fall back to comprehensive (documented
              compatibility behavior).
  -out        Export file path (default: cost_analysis.json)
  -no-export  Skip writing the export file

EXAMPLES:
  # Full report + comparison + cost_analysis.json
  ./budget

  # One scenario, no file written
  ./budget -scenario=moderate -no-export

SEE ALSO:
  - report/report.go: Text rendering
  - export/export.go: JSON export
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/warp/budget-engine/budget"
	"github.com/warp/budget-engine/export"
	"github.com/warp/budget-engine/report"
)

func main() {
	scenario := flag.String("scenario", "", "single scenario to report (minimal, moderate, comprehensive)")
	out := flag.String("out", export.DefaultFilename, "export file path")
	noExport := flag.Bool("no-export", false, "skip writing the JSON export")
	flag.Parse()

	if *scenario != "" {
		if !budget.KnownScenario(*scenario) {
			fmt.Fprintf(os.Stderr, "unknown scenario %q, using comprehensive\n", *scenario)
		}
		summary, err := budget.New(*scenario).Summary()
		if err != nil {
			log.Fatalf("Failed to summarize %s: %v", *scenario, err)
		}
		if err := report.WriteSummary(os.Stdout, summary); err != nil {
			log.Fatalf("Failed to render report: %v", err)
		}
		return
	}

	summaries, err := report.AllSummaries()
	if err != nil {
		log.Fatalf("Failed to summarize scenarios: %v", err)
	}

	for _, summary := range summaries {
		if err := report.WriteSummary(os.Stdout, summary); err != nil {
			log.Fatalf("Failed to render report: %v", err)
		}
	}

	if err := report.WriteComparison(os.Stdout, summaries); err != nil {
		log.Fatalf("Failed to render comparison: %v", err)
	}

	if *noExport {
		return
	}
	if err := export.WriteFile(*out); err != nil {
		log.Fatalf("Failed to export: %v", err)
	}
	fmt.Printf("Cost analysis exported to %s\n", *out)
}
