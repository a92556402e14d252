package generate

import (
	"context"
	"fmt"

	"github.com/fleetlab/rentgen/core/model"
	"github.com/fleetlab/rentgen/core/store"
)

var specialties = []model.MaintenanceType{model.MaintenancePreventive, model.MaintenanceCorrective}

// GenerateMechanics creates n mechanics with a random specialty.
func GenerateMechanics(ctx context.Context, gc *Context, n int) ([]model.Mechanic, error) {
	rows := make([]store.Row, 0, n)
	for i := 0; i < n; i++ {
		m := model.Mechanic{
			Name:      gc.Facts.PersonName(),
			Specialty: specialties[gc.Rand.Intn(len(specialties))],
		}
		rows = append(rows, m.Row())
	}

	inserted, err := gc.Store.Insert(ctx, model.TableMechanics, rows)
	if err != nil {
		return nil, fmt.Errorf("insert mechanics: %w", err)
	}
	mechanics := make([]model.Mechanic, len(inserted))
	for i, row := range inserted {
		mechanics[i] = model.MechanicFromRow(row)
	}
	gc.Log.Infof("generated %d mechanics", len(mechanics))
	return mechanics, nil
}
