package audit

import (
	"context"

	"github.com/fleetlab/rentgen/core/logger"
	"github.com/fleetlab/rentgen/core/model"
	"github.com/fleetlab/rentgen/core/store"
)

// Auditor runs the consistency battery against a store snapshot.
type Auditor struct {
	store store.Store
	log   logger.Logger
	today model.Date
}

// New returns an Auditor evaluating temporal checks against today.
func New(st store.Store, log logger.Logger, today model.Date) *Auditor {
	return &Auditor{store: st, log: log, today: today}
}

// Run loads a snapshot and executes every check. Checks are independent:
// none aborts the run, and running twice over an unchanged store yields
// identical results.
func (a *Auditor) Run(ctx context.Context) []Result {
	snap := LoadSnapshot(ctx, a.store, a.log)
	return a.RunOn(snap)
}

// RunOn executes the battery over an already loaded snapshot.
func (a *Auditor) RunOn(snap *Snapshot) []Result {
	var results []Result
	add := func(table string, run func() Result, check, reason string) {
		if !snap.Has(table) {
			results = append(results, skipped(check, table, reason))
			return
		}
		results = append(results, run())
	}

	rentals := snap.Rows(model.TableRentals)
	maintenances := snap.Rows(model.TableMaintenances)

	add(model.TableRentals, func() Result {
		return CheckNulls(model.TableRentals, rentals,
			"client_id", "vehicle_id", "insurance_id", "start_date", "end_date", "total_value")
	}, "required columns present", "rentals table not loaded")
	add(model.TableRentals, func() Result {
		return CheckDateOrder(model.TableRentals, rentals)
	}, "start before end", "rentals table not loaded")
	add(model.TableRentals, func() Result {
		return CheckStaleActive(model.TableRentals, rentals, a.today)
	}, "active records not ended", "rentals table not loaded")

	add(model.TableMaintenances, func() Result {
		return CheckNulls(model.TableMaintenances, maintenances,
			"vehicle_id", "start_date", "end_date", "cost")
	}, "required columns present", "maintenances table not loaded")
	add(model.TableMaintenances, func() Result {
		return CheckDateOrder(model.TableMaintenances, maintenances)
	}, "start before end", "maintenances table not loaded")
	add(model.TableMaintenances, func() Result {
		return CheckStaleActive(model.TableMaintenances, maintenances, a.today)
	}, "active records not ended", "maintenances table not loaded")

	vehicles := snap.Rows(model.TableVehicles)
	clients := snap.Rows(model.TableClients)

	add(model.TableVehicles, func() Result {
		return CheckDuplicates(model.TableVehicles, vehicles, "plate")
	}, "unique plate", "vehicles table not loaded")
	add(model.TableVehicles, func() Result {
		return CheckPlateFormat(vehicles)
	}, "plate format", "vehicles table not loaded")

	add(model.TableClients, func() Result {
		return CheckDuplicates(model.TableClients, clients, "license_number")
	}, "unique license_number", "clients table not loaded")
	add(model.TableClients, func() Result {
		return CheckLicenseFormat(clients)
	}, "license number format", "clients table not loaded")
	add(model.TableClients, func() Result {
		return CheckDuplicates(model.TableClients, clients, "email")
	}, "unique email", "clients table not loaded")
	add(model.TableClients, func() Result {
		return CheckEmailFormat(clients)
	}, "email format", "clients table not loaded")

	if snap.Has(model.TableMaintenanceMechanics) && snap.Has(model.TableMechanics) && snap.Has(model.TableMaintenances) {
		results = append(results, CheckMechanicSpecialty(
			snap.Rows(model.TableMaintenanceMechanics),
			snap.Rows(model.TableMechanics),
			maintenances,
		))
	} else {
		results = append(results, skipped(
			"mechanic specialty matches maintenance type",
			model.TableMaintenanceMechanics, "mechanic link tables not loaded"))
	}

	if snap.Has(model.TableRentals) && snap.Has(model.TableVehicles) && snap.Has(model.TableInsurances) &&
		snap.Errors[model.TableRentalServices] == nil {
		results = append(results, CheckRentalTotals(
			rentals, vehicles,
			snap.Rows(model.TableInsurances),
			snap.Rows(model.TableRentalServices),
		))
	} else {
		results = append(results, skipped(
			"total value reconciliation", model.TableRentals, "pricing tables not loaded"))
	}

	if snap.Has(model.TableVehicles) && snap.Has(model.TableRentals) && snap.Has(model.TableMaintenances) {
		results = append(results, CheckVehicleStatus(vehicles, rentals, maintenances, a.today))
		results = append(results, CheckVehicleOverlaps(rentals, maintenances))
	} else {
		results = append(results, skipped(
			"status matches occupancy", model.TableVehicles, "occupancy tables not loaded"))
		results = append(results, skipped(
			"no overlapping vehicle occupancy", model.TableVehicles, "occupancy tables not loaded"))
	}

	add(model.TableRentals, func() Result {
		return CheckClientOverlaps(rentals)
	}, "no overlapping client rentals", "rentals table not loaded")

	return results
}

// Totals tallies results per status.
func Totals(results []Result) (okCount, violationCount, skippedCount int) {
	for _, r := range results {
		switch r.Status {
		case StatusOK:
			okCount++
		case StatusViolation:
			violationCount++
		case StatusSkipped:
			skippedCount++
		}
	}
	return
}
