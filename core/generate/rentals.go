package generate

import (
	"context"
	"fmt"

	"github.com/fleetlab/rentgen/core/model"
	"github.com/fleetlab/rentgen/core/schedule"
	"github.com/fleetlab/rentgen/core/store"
)

// GenerateRentals attempts n rental iterations and returns how many were
// created. An iteration without a conflict-free vehicle stops the batch (the
// fleet is the limiting resource); one without a conflict-free client is
// skipped.
func GenerateRentals(ctx context.Context, gc *Context, n int) (int, error) {
	clientRows, err := gc.Store.Select(ctx, model.TableClients, []string{"id"}, nil)
	if err != nil {
		return 0, fmt.Errorf("load clients: %w", err)
	}
	clients := make([]int64, 0, len(clientRows))
	for _, row := range clientRows {
		if id, ok := row.Int64("id"); ok {
			clients = append(clients, id)
		}
	}
	if len(clients) == 0 {
		return 0, fmt.Errorf("no clients to rent to; generate clients first")
	}

	insRows, err := gc.Store.Select(ctx, model.TableInsurances, nil, nil)
	if err != nil {
		return 0, fmt.Errorf("load insurances: %w", err)
	}
	insurances := make([]model.Insurance, len(insRows))
	for i, row := range insRows {
		insurances[i] = model.InsuranceFromRow(row)
	}
	if len(insurances) == 0 {
		return 0, fmt.Errorf("no insurance records; seed the catalog first")
	}

	svcRows, err := gc.Store.Select(ctx, model.TableServices, nil, nil)
	if err != nil {
		return 0, fmt.Errorf("load services: %w", err)
	}
	services := make([]model.Service, len(svcRows))
	for i, row := range svcRows {
		services[i] = model.ServiceFromRow(row)
	}

	vehicleIdx, err := vehicleOccupancy(ctx, gc)
	if err != nil {
		return 0, err
	}
	clientIdx := schedule.NewIndex()
	if err := loadSpans(ctx, gc, model.TableRentals, "client_id", clientIdx); err != nil {
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
			gc.Log.Warnf("rental batch stopped after %d of %d: %v", created, n, err)
			break
		}

		clientID, ok := pickFreeClient(gc, clients, clientIdx, start, end)
		if !ok {
			gc.Log.Infof("skipping rental %d of %d: %v", i+1, n, ErrNoClientFree)
			continue
		}

		ins := insurances[gc.Rand.Intn(len(insurances))]
		days := start.DaysUntil(end)
		total := RentalBasePrice(vehicle.Tier, days, ins)

		lines := pickServiceLines(gc, services)
		for _, l := range lines {
			total += l.Price
		}

		rental := model.Rental{
			ClientID:    clientID,
			VehicleID:   vehicle.ID,
			InsuranceID: ins.ID,
			Start:       start,
			End:         end,
			TotalValue:  round2(total),
			Status:      status,
		}
		inserted, err := gc.Store.Insert(ctx, model.TableRentals, []store.Row{rental.Row()})
		if err != nil {
			return created, fmt.Errorf("insert rental: %w", err)
		}
		rentalID, _ := inserted[0].Int64("id")

		if len(lines) > 0 {
			lineRows := make([]store.Row, len(lines))
			for j, l := range lines {
				l.RentalID = rentalID
				lineRows[j] = l.Row()
			}
			if _, err := gc.Store.Insert(ctx, model.TableRentalServices, lineRows); err != nil {
				return created, fmt.Errorf("insert rental services: %w", err)
			}
		}

		vehicleIdx.Record(vehicle.ID, start, end)
		clientIdx.Record(clientID, start, end)

		if status == model.StatusActive {
			if err := setVehicleStatus(ctx, gc, vehicle.ID, model.VehicleRented); err != nil {
				return created, err
			}
		}

		created++
		gc.Log.Debugw("rental created", map[string]any{
			"rental_id":  rentalID,
			"vehicle_id": vehicle.ID,
			"client_id":  clientID,
			"start":      start.String(),
			"end":        end.String(),
			"status":     string(status),
			"total":      rental.TotalValue,
		})
	}

	gc.Log.Infof("generated %d rentals", created)
	return created, nil
}

// pickFreeVehicle re-reads the fleet and returns a random available vehicle
// with no occupancy conflict over [start, end]. The re-read is required:
// earlier iterations mutate vehicle status in the store.
func pickFreeVehicle(ctx context.Context, gc *Context, ix *schedule.Index, start, end model.Date) (model.Vehicle, error) {
	rows, err := gc.Store.Select(ctx, model.TableVehicles, nil, nil)
	if err != nil {
		return model.Vehicle{}, fmt.Errorf("load vehicles: %w", err)
	}
	var free []model.Vehicle
	for _, row := range rows {
		v := model.VehicleFromRow(row)
		if v.Status != model.VehicleAvailable {
			continue
		}
		if ix.Conflicts(v.ID, start, end) {
			continue
		}
		free = append(free, v)
	}
	if len(free) == 0 {
		return model.Vehicle{}, ErrNoVehicleFree
	}
	return free[gc.Rand.Intn(len(free))], nil
}

func pickFreeClient(gc *Context, clients []int64, ix *schedule.Index, start, end model.Date) (int64, bool) {
	var free []int64
	for _, id := range clients {
		if !ix.Conflicts(id, start, end) {
			free = append(free, id)
		}
	}
	if len(free) == 0 {
		return 0, false
	}
	return free[gc.Rand.Intn(len(free))], true
}

// pickServiceLines draws 1-3 distinct services with quantities of 1-2 each.
// An empty catalog yields no lines.
func pickServiceLines(gc *Context, services []model.Service) []model.RentalService {
	if len(services) == 0 {
		return nil
	}
	count := 1 + gc.Rand.Intn(min(3, len(services)))
	perm := gc.Rand.Perm(len(services))

	lines := make([]model.RentalService, 0, count)
	for _, idx := range perm[:count] {
		s := services[idx]
		qty := 1 + gc.Rand.Intn(2)
		lines = append(lines, model.RentalService{
			ServiceID: s.ID,
			Quantity:  qty,
			Price:     ServiceLinePrice(s, qty),
		})
	}
	return lines
}

// setVehicleStatus marks a vehicle as occupied. Only Active records change
// the status: a concluded booking must not overwrite the occupancy left by an
// active one on the same vehicle.
func setVehicleStatus(ctx context.Context, gc *Context, vehicleID int64, status model.VehicleStatus) error {
	err := gc.Store.Update(ctx, model.TableVehicles,
		store.Row{"status": string(status)},
		store.Filter{"id": vehicleID},
	)
	if err != nil {
		return fmt.Errorf("update vehicle %d status: %w", vehicleID, err)
	}
	return nil
}
