package generate

import (
	"context"
	"fmt"

	"github.com/fleetlab/rentgen/core/model"
	"github.com/fleetlab/rentgen/core/store"
)

// Catalog defaults. The generator cannot price a rental without an insurance
// record, so a fresh store is seeded before the first run.
var (
	defaultInsurance = model.Insurance{BasicFee: 100, AdvancedFee: 250}

	defaultServices = []model.Service{
		{Name: "Additional driver", StandardPrice: 50},
		{Name: "GPS navigation", StandardPrice: 25},
		{Name: "Child seat", StandardPrice: 30},
		{Name: "Roadside assistance", StandardPrice: 40},
		{Name: "Full coverage waiver", StandardPrice: 120},
	}
)

// SeedCatalog inserts the insurance record and the standard service catalog
// when their tables are empty. Re-running against a populated store is a
// no-op.
func SeedCatalog(ctx context.Context, gc *Context) error {
	insurances, err := gc.Store.Select(ctx, model.TableInsurances, []string{"id"}, nil)
	if err != nil {
		return fmt.Errorf("load insurances: %w", err)
	}
	if len(insurances) == 0 {
		if _, err := gc.Store.Insert(ctx, model.TableInsurances, []store.Row{defaultInsurance.Row()}); err != nil {
			return fmt.Errorf("seed insurances: %w", err)
		}
		gc.Log.Infof("seeded insurance catalog")
	}

	services, err := gc.Store.Select(ctx, model.TableServices, []string{"id"}, nil)
	if err != nil {
		return fmt.Errorf("load services: %w", err)
	}
	if len(services) == 0 {
		rows := make([]store.Row, len(defaultServices))
		for i, s := range defaultServices {
			rows[i] = s.Row()
		}
		if _, err := gc.Store.Insert(ctx, model.TableServices, rows); err != nil {
			return fmt.Errorf("seed services: %w", err)
		}
		gc.Log.Infof("seeded %d services", len(defaultServices))
	}
	return nil
}
