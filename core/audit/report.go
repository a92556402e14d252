package audit

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Render prints the audit results to the terminal. Returns the number of
// failing checks.
func Render(results []Result) int {
	pterm.DefaultSection.Println("Consistency audit")

	data := pterm.TableData{{"Check", "Table", "Status", "Violations"}}
	for _, r := range results {
		status := "OK"
		violations := "-"
		switch r.Status {
		case StatusViolation:
			status = "FAIL"
			violations = fmt.Sprintf("%d", r.Violations)
		case StatusSkipped:
			status = "SKIPPED"
		}
		data = append(data, []string{r.Check, r.Table, status, violations})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Printf("render table: %v\n", err)
	}

	okCount, violationCount, skippedCount := Totals(results)
	for _, r := range results {
		switch r.Status {
		case StatusViolation:
			pterm.Error.Printf("%s (%s): %d violating rows\n", r.Check, r.Table, r.Violations)
		case StatusSkipped:
			pterm.Warning.Printf("%s (%s): cannot verify, %s\n", r.Check, r.Table, r.Detail)
		}
	}

	if violationCount == 0 {
		pterm.Success.Printf("%d checks passed, %d skipped\n", okCount, skippedCount)
	} else {
		pterm.Error.Printf("%d checks failed, %d passed, %d skipped\n", violationCount, okCount, skippedCount)
	}
	return violationCount
}
