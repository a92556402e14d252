package generate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetlab/rentgen/core/audit"
	"github.com/fleetlab/rentgen/core/model"
	"github.com/fleetlab/rentgen/core/store"
	infralogger "github.com/fleetlab/rentgen/infra/logger"
)

func TestGenerateRentalsRequiresClients(t *testing.T) {
	gc := testContext(t, 10)
	ctx := context.Background()
	require.NoError(t, SeedCatalog(ctx, gc))

	_, err := GenerateRentals(ctx, gc, 3)
	assert.ErrorContains(t, err, "no clients")
}

func TestGenerateRentalsStopsWithoutFreeVehicle(t *testing.T) {
	gc := testContext(t, 11)
	ctx := context.Background()
	require.NoError(t, SeedCatalog(ctx, gc))
	_, err := GenerateClients(ctx, gc, 3)
	require.NoError(t, err)

	// No vehicles at all: the first iteration stops the batch without error.
	created, err := GenerateRentals(ctx, gc, 5)
	require.NoError(t, err)
	assert.Zero(t, created)

	rentals, err := gc.Store.Select(ctx, model.TableRentals, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, rentals)
}

func TestGenerateRentalsSkipsBookedClients(t *testing.T) {
	gc := testContext(t, 12)
	ctx := context.Background()
	require.NoError(t, SeedCatalog(ctx, gc))
	clients, err := GenerateClients(ctx, gc, 1)
	require.NoError(t, err)
	_, err = GenerateVehicles(ctx, gc, 4)
	require.NoError(t, err)

	// Book the only client across the whole plannable window so every
	// iteration finds a vehicle but never a free client.
	booked := model.Rental{
		ClientID:    clients[0].ID,
		VehicleID:   999,
		InsuranceID: 1,
		Start:       gc.Today.AddDays(-120),
		End:         gc.Today.AddDays(90),
		TotalValue:  100,
		Status:      model.StatusActive,
	}
	_, err = gc.Store.Insert(ctx, model.TableRentals, []store.Row{booked.Row()})
	require.NoError(t, err)

	created, err := GenerateRentals(ctx, gc, 5)
	require.NoError(t, err)
	assert.Zero(t, created)

	rentals, err := gc.Store.Select(ctx, model.TableRentals, nil, nil)
	require.NoError(t, err)
	assert.Len(t, rentals, 1)
}

func TestGenerateRentalsNoVehicleOrClientOverlap(t *testing.T) {
	gc := testContext(t, 13)
	ctx := context.Background()
	require.NoError(t, SeedCatalog(ctx, gc))
	_, err := GenerateClients(ctx, gc, 10)
	require.NoError(t, err)
	_, err = GenerateVehicles(ctx, gc, 6)
	require.NoError(t, err)

	created, err := GenerateRentals(ctx, gc, 15)
	require.NoError(t, err)
	require.Positive(t, created)

	rows, err := gc.Store.Select(ctx, model.TableRentals, nil, nil)
	require.NoError(t, err)
	assertNoOverlaps(t, rows, "vehicle_id")
	assertNoOverlaps(t, rows, "client_id")
}

func TestGenerateMaintenancesMatchesSpecialty(t *testing.T) {
	gc := testContext(t, 14)
	ctx := context.Background()
	_, err := GenerateVehicles(ctx, gc, 6)
	require.NoError(t, err)
	mechanics, err := GenerateMechanics(ctx, gc, 6)
	require.NoError(t, err)

	created, err := GenerateMaintenances(ctx, gc, 5)
	require.NoError(t, err)
	require.Positive(t, created)

	specialtyByID := make(map[int64]model.MaintenanceType)
	for _, m := range mechanics {
		specialtyByID[m.ID] = m.Specialty
	}
	maintRows, err := gc.Store.Select(ctx, model.TableMaintenances, nil, nil)
	require.NoError(t, err)
	typeByID := make(map[int64]model.MaintenanceType)
	for _, row := range maintRows {
		m := model.MaintenanceFromRow(row)
		typeByID[m.ID] = m.Type
		assert.True(t, m.Start.Before(m.End.Time), "start must precede end")
		assert.Positive(t, m.Cost)
		assert.NotEmpty(t, m.Description)
	}

	linkRows, err := gc.Store.Select(ctx, model.TableMaintenanceMechanics, nil, nil)
	require.NoError(t, err)
	for _, row := range linkRows {
		mechID, _ := row.Int64("mechanic_id")
		maintID, _ := row.Int64("maintenance_id")
		hours, _ := row.Float64("hours_worked")
		assert.Equal(t, typeByID[maintID], specialtyByID[mechID],
			"mechanic %d specialty must match maintenance %d type", mechID, maintID)
		assert.Positive(t, hours)
	}
}

// TestGenerateThenAuditClean populates a full dataset and expects the audit
// battery to pass with no violations.
func TestGenerateThenAuditClean(t *testing.T) {
	gc := testContext(t, 15)
	ctx := context.Background()
	require.NoError(t, SeedCatalog(ctx, gc))

	counts := Counts{Clients: 10, Vehicles: 5, Mechanics: 5, Rentals: 20, Maintenances: 3}
	require.NoError(t, GenerateAll(ctx, gc, counts))

	auditor := audit.New(gc.Store, infralogger.NopLogger{}, gc.Today)
	results := auditor.Run(ctx)
	require.NotEmpty(t, results)

	for _, r := range results {
		assert.NotEqual(t, audit.StatusViolation, r.Status,
			"check %q on %s found %d violations (%s)", r.Check, r.Table, r.Violations, r.Detail)
		assert.NotEqual(t, audit.StatusSkipped, r.Status,
			"check %q on %s unexpectedly skipped (%s)", r.Check, r.Table, r.Detail)
	}
}

// assertNoOverlaps verifies that the date ranges sharing a key column never
// intersect, bounds inclusive.
func assertNoOverlaps(t *testing.T, rows []store.Row, keyCol string) {
	t.Helper()
	type span struct{ start, end model.Date }
	byKey := make(map[int64][]span)
	for _, row := range rows {
		key, ok := row.Int64(keyCol)
		require.True(t, ok)
		start, sok := model.DateFromValue(row["start_date"])
		end, eok := model.DateFromValue(row["end_date"])
		require.True(t, sok)
		require.True(t, eok)
		byKey[key] = append(byKey[key], span{start, end})
	}
	for key, spans := range byKey {
		for i := 0; i < len(spans); i++ {
			for j := i + 1; j < len(spans); j++ {
				a, b := spans[i], spans[j]
				overlap := !a.start.After(b.end.Time) && !b.start.After(a.end.Time)
				assert.False(t, overlap, "%s %d has overlapping ranges [%s, %s] and [%s, %s]",
					keyCol, key, a.start, a.end, b.start, b.end)
			}
		}
	}
}
