package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/server"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/server/endpoints"
)

// harvestServeCmd represents the harvest serve command
var harvestServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Harvest periodically and serve the harvester status",
	Long: `Harvest every catalog target each refresh interval and serve the
harvester status over HTTP.

Endpoints:
  GET  /         liveness
  GET  /status   last sweep of every catalog target
  POST /refresh  request an immediate sweep

By default, database migrations are run on startup. Use --no-migrate to skip.

Example:
  egeriactl harvest serve
  egeriactl harvest serve --listen :9090`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serveHarvester(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "Harvester stopped: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	harvestCmd.AddCommand(harvestServeCmd)
	harvestServeCmd.Flags().StringP("listen", "l", "", "override the configured listen address")
	harvestServeCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}

func serveHarvester(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if listen, _ := cmd.Flags().GetString("listen"); listen != "" {
		cfg.ListenAddress = listen
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if noMigrate, _ := cmd.Flags().GetBool("no-migrate"); !noMigrate {
		logger.Info("Running database migrations...")
		if err := migrateTargets(cfg.Targets()); err != nil {
			return err
		}
	}

	connector, err := newConnector(cfg, logger)
	if err != nil {
		return err
	}
	trail, closer, err := auditSweeps(cfg, connector)
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

	srv := server.NewServer(connector, cfg, logger, cfg.ListenAddress)
	srv.Audit = trail
	endpoints.RegisterAll(srv)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		return connector.Run(gctx, cfg.RefreshInterval)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
