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

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the insurance record and service catalog when missing",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
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

	return generate.SeedCatalog(ctx, svc.GenerationContext())
}
