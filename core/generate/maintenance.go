package generate

import (
	"context"
	"fmt"

	"github.com/fleetlab/rentgen/core/model"
	"github.com/fleetlab/rentgen/core/schedule"
	"github.com/fleetlab/rentgen/core/store"
)

// GenerateMaintenances attempts n maintenance iterations and returns how
// many were created. As with rentals, a period with no conflict-free vehicle
// stops the batch.
func GenerateMaintenances(ctx context.Context, gc *Context, n int) (int, error) {
	mechRows, err := gc.Store.Select(ctx, model.TableMechanics, nil, nil)
	if err != nil {
		return 0, fmt.Errorf("load mechanics: %w", err)
	}
	mechanics := make([]model.Mechanic, len(mechRows))
	for i, row := range mechRows {
		mechanics[i] = model.MechanicFromRow(row)
	}

	vehicleIdx, err := vehicleOccupancy(ctx, gc)
	if err != nil {
		return 0, err
	}

	created := 0
	for i := 0; i < n; i++ {
		target := model.StatusActive
		if gc.Rand.Intn(2) == 0 {
			target = model.StatusConcluded
		}
		status, start, end := schedule.Plan(gc.Today, target, gc.Rand)

		vehicle, err := pickFreeVehicle(ctx, gc, vehicleIdx, start, end)
		if err != nil {
			gc.Log.Warnf("maintenance batch stopped after %d of %d: %v", created, n, err)
			break
		}

		typ := specialties[gc.Rand.Intn(len(specialties))]
		m := model.Maintenance{
			VehicleID:   vehicle.ID,
			Type:        typ,
			Start:       start,
			End:         end,
			Cost:        round2(300 + gc.Rand.Float64()*4700),
			Description: gc.Facts.Sentence(8),
			Status:      status,
		}
		inserted, err := gc.Store.Insert(ctx, model.TableMaintenances, []store.Row{m.Row()})
		if err != nil {
			return created, fmt.Errorf("insert maintenance: %w", err)
		}
		maintenanceID, _ := inserted[0].Int64("id")

		links := pickMechanicLinks(gc, mechanics, typ, maintenanceID)
		if len(links) > 0 {
			linkRows := make([]store.Row, len(links))
			for j, l := range links {
				linkRows[j] = l.Row()
			}
			if _, err := gc.Store.Insert(ctx, model.TableMaintenanceMechanics, linkRows); err != nil {
				return created, fmt.Errorf("insert maintenance mechanics: %w", err)
			}
		}

		vehicleIdx.Record(vehicle.ID, start, end)

		if status == model.StatusActive {
			if err := setVehicleStatus(ctx, gc, vehicle.ID, model.VehicleInMaintenance); err != nil {
				return created, err
			}
		}

		created++
		gc.Log.Debugw("maintenance created", map[string]any{
			"maintenance_id": maintenanceID,
			"vehicle_id":     vehicle.ID,
			"type":           string(typ),
			"start":          start.String(),
			"end":            end.String(),
			"status":         string(status),
			"mechanics":      len(links),
		})
	}

	gc.Log.Infof("generated %d maintenances", created)
	return created, nil
}

// pickMechanicLinks selects up to two mechanics whose specialty matches the
// maintenance type. No match is fine; the maintenance stands without links.
func pickMechanicLinks(gc *Context, mechanics []model.Mechanic, typ model.MaintenanceType, maintenanceID int64) []model.MaintenanceMechanic {
	var matching []model.Mechanic
	for _, m := range mechanics {
		if m.Specialty == typ {
			matching = append(matching, m)
		}
	}
	if len(matching) == 0 {
		return nil
	}
	count := min(2, len(matching))
	perm := gc.Rand.Perm(len(matching))

	links := make([]model.MaintenanceMechanic, 0, count)
	for _, idx := range perm[:count] {
		links = append(links, model.MaintenanceMechanic{
			MaintenanceID: maintenanceID,
			MechanicID:    matching[idx].ID,
			HoursWorked:   round2(1 + gc.Rand.Float64()*3),
		})
	}
	return links
}
