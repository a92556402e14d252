package generate

import (
	"context"
	"fmt"

	"github.com/fleetlab/rentgen/core/model"
	"github.com/fleetlab/rentgen/core/store"
)

// makeModels pairs each make with four models; the first two are Basic, the
// last two Advanced.
var makeModels = map[string][]string{
	"Toyota":     {"Yaris", "Etios", "RAV4", "Corolla"},
	"Honda":      {"Fit", "City", "CR-V", "Civic"},
	"Ford":       {"Fiesta", "Focus", "Mustang", "Fusion"},
	"Chevrolet":  {"Onix", "Cruze", "Tracker", "Camaro"},
	"Volkswagen": {"Up", "Polo", "T-Cross", "Tiguan"},
	"Hyundai":    {"HB20", "Elantra", "Creta", "Tucson"},
}

// makes is the stable iteration order for makeModels.
var makes = []string{"Toyota", "Honda", "Ford", "Chevrolet", "Volkswagen", "Hyundai"}

// GenerateVehicles creates n available vehicles with unique plates. The tier
// follows the model's position in its make list.
func GenerateVehicles(ctx context.Context, gc *Context, n int) ([]model.Vehicle, error) {
	existing, err := gc.Store.Select(ctx, model.TableVehicles, []string{"plate"}, nil)
	if err != nil {
		return nil, fmt.Errorf("load existing vehicles: %w", err)
	}
	plates := make(map[string]bool, len(existing))
	for _, row := range existing {
		if p, ok := row.String("plate"); ok {
			plates[p] = true
		}
	}

	rows := make([]store.Row, 0, n)
	for len(rows) < n {
		plate := ""
		attempts := 0
		for {
			plate = gc.Facts.Plate()
			if !plates[plate] {
				break
			}
			attempts++
			if attempts >= maxUniqueAttempts {
				return nil, &ExhaustionError{Entity: "vehicle", Attempts: attempts}
			}
		}
		plates[plate] = true

		make_ := makes[gc.Rand.Intn(len(makes))]
		models := makeModels[make_]
		idx := gc.Rand.Intn(len(models))
		tier := model.TierBasic
		if idx >= 2 {
			tier = model.TierAdvanced
		}
		v := model.Vehicle{
			Plate:  plate,
			Model:  make_ + " " + models[idx],
			Year:   2018 + gc.Rand.Intn(7),
			Tier:   tier,
			Status: model.VehicleAvailable,
		}
		rows = append(rows, v.Row())
	}

	inserted, err := gc.Store.Insert(ctx, model.TableVehicles, rows)
	if err != nil {
		return nil, fmt.Errorf("insert vehicles: %w", err)
	}
	vehicles := make([]model.Vehicle, len(inserted))
	for i, row := range inserted {
		vehicles[i] = model.VehicleFromRow(row)
	}
	gc.Log.Infof("generated %d vehicles", len(vehicles))
	return vehicles, nil
}
