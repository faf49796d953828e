package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// harvestRunCmd represents the harvest run command
var harvestRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Harvest every catalog target once",
	Long: `Harvest every catalog target once and exit.

Rows whose values have not changed since the last harvest are not written
again. The command fails if any catalog target fails.

Example:
  egeriactl harvest run
  egeriactl harvest run --no-migrate`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runHarvestOnce(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "Harvest failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	harvestCmd.AddCommand(harvestRunCmd)
	harvestRunCmd.Flags().Bool("no-migrate", false, "skip running database migrations first")
}

func runHarvestOnce(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if noMigrate, _ := cmd.Flags().GetBool("no-migrate"); !noMigrate {
		if err := migrateTargets(cfg.Targets()); err != nil {
			return err
		}
	}

	connector, err := newConnector(cfg, logger)
	if err != nil {
		return err
	}
	_, closer, err := auditSweeps(cfg, connector)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := connector.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := connector.Disconnect(); err != nil {
			logger.Warn("Failed to disconnect catalog targets", zap.Error(err))
		}
	}()

	return connector.Refresh(ctx)
}
