package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fleetlab/rentgen/app"
	"github.com/fleetlab/rentgen/config"
	"github.com/fleetlab/rentgen/core/generate"
	"github.com/fleetlab/rentgen/infra/logger"
)

var (
	genLevel        int
	genSeed         int64
	genToday        string
	genClients      int
	genVehicles     int
	genMechanics    int
	genRentals      int
	genMaintenances int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Populate the store with a synthetic rental dataset",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&genLevel, "level", 0, "dataset size level 1-5 (overrides config)")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "deterministic seed (overrides config)")
	generateCmd.Flags().StringVar(&genToday, "today", "", "reference day, 2006-01-02 (overrides config)")
	generateCmd.Flags().IntVar(&genClients, "clients", -1, "explicit client count")
	generateCmd.Flags().IntVar(&genVehicles, "vehicles", -1, "explicit vehicle count")
	generateCmd.Flags().IntVar(&genMechanics, "mechanics", -1, "explicit mechanic count")
	generateCmd.Flags().IntVar(&genRentals, "rentals", -1, "explicit rental count")
	generateCmd.Flags().IntVar(&genMaintenances, "maintenances", -1, "explicit maintenance count")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if genLevel != 0 {
		cfg.Generate.Level = genLevel
	}
	if cmd.Flags().Changed("seed") {
		cfg.Generate.Seed = genSeed
	}
	if genToday != "" {
		cfg.Generate.Today = genToday
	}
	if err := cfg.Generate.Validate(); err != nil {
		return err
	}

	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()

	counts, err := generate.CountsForLevel(cfg.Generate.Level)
	if err != nil {
		return err
	}
	if genClients >= 0 {
		counts.Clients = genClients
	}
	if genVehicles >= 0 {
		counts.Vehicles = genVehicles
	}
	if genMechanics >= 0 {
		counts.Mechanics = genMechanics
	}
	if genRentals >= 0 {
		counts.Rentals = genRentals
	}
	if genMaintenances >= 0 {
		counts.Maintenances = genMaintenances
	}

	gc := svc.GenerationContext()
	if err := generate.SeedCatalog(ctx, gc); err != nil {
		return err
	}
	return generate.GenerateAll(ctx, gc, counts)
}
