// Package audit re-reads the whole dataset and runs independent consistency
// checks: nulls, duplicates, date ordering, status coherence, formats,
// cross-table joins and price reconciliation. Checks never abort the run;
// each reports its own outcome.
package audit

// Status is the outcome of a single check.
type Status string

const (
	// StatusOK means the check ran and found no violating rows.
	StatusOK Status = "ok"
	// StatusViolation means the check ran and found violating rows.
	StatusViolation Status = "violation"
	// StatusSkipped means the check could not run because a required table
	// or column is missing from the snapshot.
	StatusSkipped Status = "skipped"
)

// Result reports the outcome of one check over one table.
type Result struct {
	Check      string
	Table      string
	Status     Status
	Violations int
	Detail     string
}

func ok(check, table string) Result {
	return Result{Check: check, Table: table, Status: StatusOK}
}

func violation(check, table string, count int, detail string) Result {
	return Result{Check: check, Table: table, Status: StatusViolation, Violations: count, Detail: detail}
}

func skipped(check, table, detail string) Result {
	return Result{Check: check, Table: table, Status: StatusSkipped, Detail: detail}
}

// outcome folds a violation count into an OK or Violation result.
func outcome(check, table string, count int, detail string) Result {
	if count > 0 {
		return violation(check, table, count, detail)
	}
	return ok(check, table)
}
