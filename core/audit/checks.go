package audit

import (
	"fmt"
	"math"
	"strings"

	"github.com/fleetlab/rentgen/core/model"
	"github.com/fleetlab/rentgen/core/store"
)

// CheckNulls counts rows missing a value in any of the required columns.
func CheckNulls(table string, rows []store.Row, cols ...string) Result {
	const check = "required columns present"
	if !hasColumns(rows, cols...) {
		return skipped(check, table, "required columns not found")
	}
	count := 0
	for _, row := range rows {
		for _, col := range cols {
			if row.IsNull(col) {
				count++
				break
			}
		}
	}
	return outcome(check, table, count, fmt.Sprintf("columns %s", strings.Join(cols, ", ")))
}

// CheckDuplicates counts rows participating in any group sharing the same
// value for the key columns.
func CheckDuplicates(table string, rows []store.Row, keyCols ...string) Result {
	check := fmt.Sprintf("unique %s", strings.Join(keyCols, "+"))
	if !hasColumns(rows, keyCols...) {
		return skipped(check, table, "key columns not found")
	}
	groups := make(map[string]int)
	for _, row := range rows {
		groups[dupKey(row, keyCols)]++
	}
	count := 0
	for _, n := range groups {
		if n > 1 {
			count += n
		}
	}
	return outcome(check, table, count, "")
}

func dupKey(row store.Row, cols []string) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = fmt.Sprintf("%v", row[col])
	}
	return strings.Join(parts, "\x1f")
}

// CheckDateOrder counts rows whose start date is after their end date.
func CheckDateOrder(table string, rows []store.Row) Result {
	const check = "start before end"
	if !hasColumns(rows, "start_date", "end_date") {
		return skipped(check, table, "date columns not found")
	}
	count := 0
	for _, row := range rows {
		start, sok := model.DateFromValue(row["start_date"])
		end, eok := model.DateFromValue(row["end_date"])
		if sok && eok && start.After(end.Time) {
			count++
		}
	}
	return outcome(check, table, count, "")
}

// CheckStaleActive counts rows still marked Active whose end date has
// already passed.
func CheckStaleActive(table string, rows []store.Row, today model.Date) Result {
	const check = "active records not ended"
	if !hasColumns(rows, "status", "end_date") {
		return skipped(check, table, "status or end date column not found")
	}
	count := 0
	for _, row := range rows {
		status, _ := row.String("status")
		if model.RecordStatus(status) != model.StatusActive {
			continue
		}
		if end, ok := model.DateFromValue(row["end_date"]); ok && end.Before(today.Time) {
			count++
		}
	}
	return outcome(check, table, count, "")
}

// CheckPlateFormat counts malformed vehicle plates.
func CheckPlateFormat(rows []store.Row) Result {
	const check = "plate format"
	if !hasColumns(rows, "plate") {
		return skipped(check, model.TableVehicles, "plate column not found")
	}
	count := 0
	for _, row := range rows {
		plate, ok := row.String("plate")
		if !ok || !model.ValidPlate(plate) {
			count++
		}
	}
	return outcome(check, model.TableVehicles, count, "")
}

// CheckLicenseFormat counts license numbers that are not 11-digit strings.
func CheckLicenseFormat(rows []store.Row) Result {
	const check = "license number format"
	if !hasColumns(rows, "license_number") {
		return skipped(check, model.TableClients, "license_number column not found")
	}
	count := 0
	for _, row := range rows {
		license, ok := row.String("license_number")
		if !ok || !model.ValidLicense(license) {
			count++
		}
	}
	return outcome(check, model.TableClients, count, "")
}

// CheckEmailFormat counts malformed client emails.
func CheckEmailFormat(rows []store.Row) Result {
	const check = "email format"
	if !hasColumns(rows, "email") {
		return skipped(check, model.TableClients, "email column not found")
	}
	count := 0
	for _, row := range rows {
		email, ok := row.String("email")
		if !ok || !model.ValidEmail(email) {
			count++
		}
	}
	return outcome(check, model.TableClients, count, "")
}

// CheckMechanicSpecialty joins the mechanic link table with mechanics and
// maintenances and counts links whose mechanic specialty differs from the
// maintenance type.
func CheckMechanicSpecialty(links, mechanics, maintenances []store.Row) Result {
	const check = "mechanic specialty matches maintenance type"
	if !hasColumns(links, "mechanic_id", "maintenance_id") ||
		!hasColumns(mechanics, "id", "specialty") ||
		!hasColumns(maintenances, "id", "type") {
		return skipped(check, model.TableMaintenanceMechanics, "join columns not found")
	}

	specialtyByID := make(map[int64]string, len(mechanics))
	for _, row := range mechanics {
		if id, ok := row.Int64("id"); ok {
			specialtyByID[id], _ = row.String("specialty")
		}
	}
	typeByID := make(map[int64]string, len(maintenances))
	for _, row := range maintenances {
		if id, ok := row.Int64("id"); ok {
			typeByID[id], _ = row.String("type")
		}
	}

	count := 0
	for _, link := range links {
		mechID, mok := link.Int64("mechanic_id")
		maintID, tok := link.Int64("maintenance_id")
		if !mok || !tok {
			count++
			continue
		}
		specialty, sok := specialtyByID[mechID]
		typ, yok := typeByID[maintID]
		if !sok || !yok || !strings.EqualFold(specialty, typ) {
			count++
		}
	}
	return outcome(check, model.TableMaintenanceMechanics, count, "")
}

// CheckRentalTotals recomputes each rental total from the vehicle tier, the
// tier-matched insurance fee and the linked service lines, and counts
// rentals off by more than a cent.
func CheckRentalTotals(rentals, vehicles, insurances, rentalServices []store.Row) Result {
	const check = "total value reconciliation"
	if !hasColumns(rentals, "id", "vehicle_id", "insurance_id", "start_date", "end_date", "total_value") ||
		!hasColumns(vehicles, "id", "tier") ||
		!hasColumns(insurances, "id", "basic_fee", "advanced_fee") {
		return skipped(check, model.TableRentals, "join columns not found")
	}

	tierByID := make(map[int64]model.Tier, len(vehicles))
	for _, row := range vehicles {
		if id, ok := row.Int64("id"); ok {
			tier, _ := row.String("tier")
			tierByID[id] = model.Tier(tier)
		}
	}
	insuranceByID := make(map[int64]model.Insurance, len(insurances))
	for _, row := range insurances {
		ins := model.InsuranceFromRow(row)
		insuranceByID[ins.ID] = ins
	}
	serviceTotal := make(map[int64]float64)
	for _, row := range rentalServices {
		rentalID, ok := row.Int64("rental_id")
		if !ok {
			continue
		}
		price, _ := row.Float64("price")
		serviceTotal[rentalID] += price
	}

	count := 0
	for _, row := range rentals {
		rental := model.RentalFromRow(row)
		tier, tok := tierByID[rental.VehicleID]
		ins, iok := insuranceByID[rental.InsuranceID]
		if !tok || !iok {
			count++
			continue
		}
		days := rental.Start.DaysUntil(rental.End)
		expected := model.DailyRate(tier)*float64(days) + ins.FeeFor(tier) + serviceTotal[rental.ID]
		if math.Abs(rental.TotalValue-expected) > 0.01 {
			count++
		}
	}
	return outcome(check, model.TableRentals, count, "")
}

// CheckVehicleStatus recomputes the expected availability status of every
// vehicle from its active rentals and maintenances covering today and counts
// vehicles whose stored status disagrees.
func CheckVehicleStatus(vehicles, rentals, maintenances []store.Row, today model.Date) Result {
	const check = "status matches occupancy"
	if !hasColumns(vehicles, "id", "status") ||
		!hasColumns(rentals, "vehicle_id") ||
		!hasColumns(maintenances, "vehicle_id") {
		return skipped(check, model.TableVehicles, "status or vehicle reference columns not found")
	}

	rented := activeVehicleSet(rentals, today)
	inMaintenance := activeVehicleSet(maintenances, today)

	count := 0
	for _, row := range vehicles {
		id, ok := row.Int64("id")
		if !ok {
			continue
		}
		status, _ := row.String("status")
		expected := model.VehicleAvailable
		switch {
		case rented[id]:
			expected = model.VehicleRented
		case inMaintenance[id]:
			expected = model.VehicleInMaintenance
		}
		if model.VehicleStatus(status) != expected {
			count++
		}
	}
	return outcome(check, model.TableVehicles, count, "")
}

// activeVehicleSet collects vehicles with an Active record covering today.
func activeVehicleSet(rows []store.Row, today model.Date) map[int64]bool {
	set := make(map[int64]bool)
	for _, row := range rows {
		status, _ := row.String("status")
		if model.RecordStatus(status) != model.StatusActive {
			continue
		}
		id, ok := row.Int64("vehicle_id")
		if !ok {
			continue
		}
		start, sok := model.DateFromValue(row["start_date"])
		end, eok := model.DateFromValue(row["end_date"])
		if sok && eok && !start.After(today.Time) && !end.Before(today.Time) {
			set[id] = true
		}
	}
	return set
}
