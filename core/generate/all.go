package generate

import (
	"context"
	"fmt"
)

// Counts holds how many records of each kind a run should attempt.
type Counts struct {
	Clients      int
	Vehicles     int
	Mechanics    int
	Rentals      int
	Maintenances int
}

// CountsForLevel scales the dataset from level 1 (small) to 5 (large).
func CountsForLevel(level int) (Counts, error) {
	if level < 1 || level > 5 {
		return Counts{}, fmt.Errorf("level must be between 1 and 5, got %d", level)
	}
	scale := func(lo, hi int) int {
		return lo + (level-1)*(hi-lo)/4
	}
	return Counts{
		Clients:      scale(10, 50),
		Vehicles:     scale(5, 30),
		Mechanics:    5,
		Rentals:      scale(2, 20),
		Maintenances: scale(1, 10),
	}, nil
}

// GenerateAll populates the whole dataset in dependency order: base entities
// first, then maintenances, then rentals.
func GenerateAll(ctx context.Context, gc *Context, c Counts) error {
	gc.Log.Infof("generation run %s: %d clients, %d vehicles, %d mechanics, %d maintenances, %d rentals",
		gc.RunID, c.Clients, c.Vehicles, c.Mechanics, c.Maintenances, c.Rentals)

	if _, err := GenerateClients(ctx, gc, c.Clients); err != nil {
		return err
	}
	if _, err := GenerateVehicles(ctx, gc, c.Vehicles); err != nil {
		return err
	}
	if _, err := GenerateMechanics(ctx, gc, c.Mechanics); err != nil {
		return err
	}
	if _, err := GenerateMaintenances(ctx, gc, c.Maintenances); err != nil {
		return err
	}
	if _, err := GenerateRentals(ctx, gc, c.Rentals); err != nil {
		return err
	}
	return nil
}
