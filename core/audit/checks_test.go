package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fleetlab/rentgen/core/model"
	"github.com/fleetlab/rentgen/core/store"
)

var testToday = model.NewDate(2026, 6, 15)

func TestCheckNulls(t *testing.T) {
	rows := []store.Row{
		{"client_id": int64(1), "vehicle_id": int64(2)},
		{"client_id": nil, "vehicle_id": int64(3)},
		{"client_id": int64(4)},
	}
	r := CheckNulls("rentals", rows, "client_id", "vehicle_id")
	assert.Equal(t, StatusViolation, r.Status)
	assert.Equal(t, 2, r.Violations)

	r = CheckNulls("rentals", rows[:1], "client_id", "vehicle_id")
	assert.Equal(t, StatusOK, r.Status)

	r = CheckNulls("rentals", rows, "no_such_column")
	assert.Equal(t, StatusSkipped, r.Status)
}

func TestCheckDuplicates(t *testing.T) {
	rows := []store.Row{
		{"plate": "ABC1234"},
		{"plate": "ABC1234"},
		{"plate": "DEF5678"},
	}
	r := CheckDuplicates("vehicles", rows, "plate")
	assert.Equal(t, StatusViolation, r.Status)
	assert.Equal(t, 2, r.Violations)

	r = CheckDuplicates("vehicles", rows[1:], "plate")
	assert.Equal(t, StatusOK, r.Status)

	r = CheckDuplicates("vehicles", rows, "vin")
	assert.Equal(t, StatusSkipped, r.Status)
}

func TestCheckDateOrder(t *testing.T) {
	rows := []store.Row{
		{"start_date": "2026-06-01", "end_date": "2026-06-05"},
		{"start_date": "2026-06-10", "end_date": "2026-06-02"},
		{"start_date": "2026-06-03", "end_date": "2026-06-03"},
	}
	r := CheckDateOrder("rentals", rows)
	assert.Equal(t, StatusViolation, r.Status)
	assert.Equal(t, 1, r.Violations)
}

func TestCheckStaleActive(t *testing.T) {
	rows := []store.Row{
		{"status": "Active", "end_date": "2026-06-20"},
		{"status": "Active", "end_date": "2026-06-10"},
		{"status": "Concluded", "end_date": "2026-06-01"},
	}
	r := CheckStaleActive("rentals", rows, testToday)
	assert.Equal(t, StatusViolation, r.Status)
	assert.Equal(t, 1, r.Violations)
}

func TestCheckFormats(t *testing.T) {
	vehicles := []store.Row{
		{"plate": "ABC1D23"},
		{"plate": "bad-plate"},
	}
	r := CheckPlateFormat(vehicles)
	assert.Equal(t, StatusViolation, r.Status)
	assert.Equal(t, 1, r.Violations)

	clients := []store.Row{
		{"license_number": "12345678901", "email": "ana@example.com"},
		{"license_number": "123", "email": "not-an-email"},
	}
	r = CheckLicenseFormat(clients)
	assert.Equal(t, StatusViolation, r.Status)
	assert.Equal(t, 1, r.Violations)

	r = CheckEmailFormat(clients)
	assert.Equal(t, StatusViolation, r.Status)
	assert.Equal(t, 1, r.Violations)
}

func TestCheckMechanicSpecialty(t *testing.T) {
	mechanics := []store.Row{
		{"id": int64(1), "specialty": "preventive"},
		{"id": int64(2), "specialty": "corrective"},
	}
	maintenances := []store.Row{
		{"id": int64(10), "type": "preventive"},
	}
	links := []store.Row{
		{"maintenance_id": int64(10), "mechanic_id": int64(1)},
		{"maintenance_id": int64(10), "mechanic_id": int64(2)},
	}
	r := CheckMechanicSpecialty(links, mechanics, maintenances)
	assert.Equal(t, StatusViolation, r.Status)
	assert.Equal(t, 1, r.Violations)

	r = CheckMechanicSpecialty(links[:1], mechanics, maintenances)
	assert.Equal(t, StatusOK, r.Status)
}

func TestCheckRentalTotals(t *testing.T) {
	vehicles := []store.Row{
		{"id": int64(1), "tier": "Basic"},
		{"id": int64(2), "tier": "Advanced"},
	}
	insurances := []store.Row{
		{"id": int64(1), "basic_fee": 100.0, "advanced_fee": 250.0},
	}
	lines := []store.Row{
		{"rental_id": int64(20), "service_id": int64(1), "quantity": 2, "price": 50.0},
	}
	rentals := []store.Row{
		// Basic, 5 days: 80*5 + 100 = 500.
		{"id": int64(10), "vehicle_id": int64(1), "insurance_id": int64(1),
			"start_date": "2026-06-01", "end_date": "2026-06-06", "total_value": 500.0},
		// Advanced, 3 days plus a 50 line: 140*3 + 250 + 50 = 720.
		{"id": int64(20), "vehicle_id": int64(2), "insurance_id": int64(1),
			"start_date": "2026-06-01", "end_date": "2026-06-04", "total_value": 720.0},
	}
	r := CheckRentalTotals(rentals, vehicles, insurances, lines)
	assert.Equal(t, StatusOK, r.Status)

	rentals[1]["total_value"] = 719.5
	r = CheckRentalTotals(rentals, vehicles, insurances, lines)
	assert.Equal(t, StatusViolation, r.Status)
	assert.Equal(t, 1, r.Violations)

	// Sub-cent drift stays within tolerance.
	rentals[1]["total_value"] = 720.005
	r = CheckRentalTotals(rentals, vehicles, insurances, lines)
	assert.Equal(t, StatusOK, r.Status)
}

func TestCheckVehicleStatus(t *testing.T) {
	vehicles := []store.Row{
		{"id": int64(1), "status": "Rented"},
		{"id": int64(2), "status": "InMaintenance"},
		{"id": int64(3), "status": "Available"},
		{"id": int64(4), "status": "Rented"},
	}
	rentals := []store.Row{
		{"vehicle_id": int64(1), "status": "Active", "start_date": "2026-06-10", "end_date": "2026-06-20"},
		// Concluded bookings imply no occupancy.
		{"vehicle_id": int64(4), "status": "Concluded", "start_date": "2026-06-01", "end_date": "2026-06-05"},
	}
	maintenances := []store.Row{
		{"vehicle_id": int64(2), "status": "Active", "start_date": "2026-06-14", "end_date": "2026-06-16"},
	}
	r := CheckVehicleStatus(vehicles, rentals, maintenances, testToday)
	assert.Equal(t, StatusViolation, r.Status)
	assert.Equal(t, 1, r.Violations)
}

func TestCheckVehicleOverlaps(t *testing.T) {
	rentals := []store.Row{
		{"vehicle_id": int64(1), "start_date": "2026-06-01", "end_date": "2026-06-05"},
		{"vehicle_id": int64(1), "start_date": "2026-06-10", "end_date": "2026-06-12"},
	}
	maintenances := []store.Row{
		{"vehicle_id": int64(1), "start_date": "2026-06-05", "end_date": "2026-06-07"},
	}
	// The rental ending June 5 touches the maintenance starting June 5.
	r := CheckVehicleOverlaps(rentals, maintenances)
	assert.Equal(t, StatusViolation, r.Status)
	assert.Equal(t, 2, r.Violations)

	r = CheckVehicleOverlaps(rentals, nil)
	assert.Equal(t, StatusOK, r.Status)
}

func TestCheckClientOverlaps(t *testing.T) {
	rentals := []store.Row{
		{"client_id": int64(1), "start_date": "2026-06-01", "end_date": "2026-06-05"},
		{"client_id": int64(1), "start_date": "2026-06-03", "end_date": "2026-06-08"},
		{"client_id": int64(2), "start_date": "2026-06-01", "end_date": "2026-06-05"},
	}
	r := CheckClientOverlaps(rentals)
	assert.Equal(t, StatusViolation, r.Status)
	assert.Equal(t, 2, r.Violations)
}
