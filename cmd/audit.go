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
	"github.com/fleetlab/rentgen/core/audit"
	"github.com/fleetlab/rentgen/infra/logger"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit the dataset for referential, temporal and pricing consistency",
	RunE:  runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
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

	results := svc.Audit(ctx)
	if failing := audit.Render(results); failing > 0 {
		return fmt.Errorf("audit found %d failing checks", failing)
	}
	return nil
}
