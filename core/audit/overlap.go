package audit

import (
	"github.com/fleetlab/rentgen/core/model"
	"github.com/fleetlab/rentgen/core/schedule"
	"github.com/fleetlab/rentgen/core/store"
)

// CheckVehicleOverlaps counts rentals and maintenances whose date range
// overlaps another record on the same vehicle. Two ranges conflict when they
// share at least one day, bounds inclusive.
func CheckVehicleOverlaps(rentals, maintenances []store.Row) Result {
	const check = "no overlapping vehicle occupancy"
	if !hasColumns(rentals, "vehicle_id", "start_date", "end_date") ||
		!hasColumns(maintenances, "vehicle_id", "start_date", "end_date") {
		return skipped(check, model.TableVehicles, "occupancy columns not found")
	}
	spans := collectSpans(rentals, "vehicle_id")
	for id, ss := range collectSpans(maintenances, "vehicle_id") {
		spans[id] = append(spans[id], ss...)
	}
	return outcome(check, model.TableVehicles, countOverlapping(spans), "")
}

// CheckClientOverlaps counts rentals whose date range overlaps another
// rental of the same client.
func CheckClientOverlaps(rentals []store.Row) Result {
	const check = "no overlapping client rentals"
	if !hasColumns(rentals, "client_id", "start_date", "end_date") {
		return skipped(check, model.TableRentals, "occupancy columns not found")
	}
	return outcome(check, model.TableRentals, countOverlapping(collectSpans(rentals, "client_id")), "")
}

func collectSpans(rows []store.Row, keyCol string) map[int64][]schedule.Span {
	spans := make(map[int64][]schedule.Span)
	for _, row := range rows {
		id, ok := row.Int64(keyCol)
		if !ok {
			continue
		}
		start, sok := model.DateFromValue(row["start_date"])
		end, eok := model.DateFromValue(row["end_date"])
		if !sok || !eok {
			continue
		}
		spans[id] = append(spans[id], schedule.Span{Start: start, End: end})
	}
	return spans
}

// countOverlapping counts spans involved in at least one pairwise overlap.
func countOverlapping(spans map[int64][]schedule.Span) int {
	count := 0
	for _, ss := range spans {
		for i, a := range ss {
			for j, b := range ss {
				if i != j && a.Overlaps(b) {
					count++
					break
				}
			}
		}
	}
	return count
}
