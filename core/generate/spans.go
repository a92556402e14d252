package generate

import (
	"context"
	"fmt"

	"github.com/fleetlab/rentgen/core/model"
	"github.com/fleetlab/rentgen/core/schedule"
)

// loadSpans seeds ix with the (keyCol, start_date, end_date) ranges persisted
// in table. A missing end date counts as a one-day range, so half-written
// history still blocks its start day.
func loadSpans(ctx context.Context, gc *Context, table, keyCol string, ix *schedule.Index) error {
	rows, err := gc.Store.Select(ctx, table, []string{keyCol, "start_date", "end_date"}, nil)
	if err != nil {
		return fmt.Errorf("load %s spans: %w", table, err)
	}
	for _, row := range rows {
		id, ok := row.Int64(keyCol)
		if !ok {
			continue
		}
		start, ok := model.DateFromValue(row["start_date"])
		if !ok {
			continue
		}
		end, ok := model.DateFromValue(row["end_date"])
		if !ok {
			end = start
		}
		ix.Record(id, start, end)
	}
	return nil
}

// vehicleOccupancy merges rental and maintenance ranges per vehicle; both
// claim the vehicle exclusively.
func vehicleOccupancy(ctx context.Context, gc *Context) (*schedule.Index, error) {
	ix := schedule.NewIndex()
	if err := loadSpans(ctx, gc, model.TableRentals, "vehicle_id", ix); err != nil {
		return nil, err
	}
	if err := loadSpans(ctx, gc, model.TableMaintenances, "vehicle_id", ix); err != nil {
		return nil, err
	}
	return ix, nil
}
