package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// harvestWatchCmd represents the harvest watch command
var harvestWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Harvest whenever a survey log file changes",
	Long: `Watch the survey log directory and harvest whenever a profile log is
written. Subdirectories are watched too, including ones created while the
command runs. A sweep also runs every refresh interval.

By default, database migrations are run on startup. Use --no-migrate to skip.

Example:
  EGERIA_SURVEY_LOG_DIR=/var/lib/egeria/surveys egeriactl harvest watch`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := watchSurveyLogs(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch survey logs: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	harvestCmd.AddCommand(harvestWatchCmd)
	harvestWatchCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}

// triggerer is satisfied by the harvest connector
type triggerer interface {
	Trigger()
}

func watchSurveyLogs(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.SurveyLogDir == "" {
		return fmt.Errorf("survey_log_dir must be configured to watch survey logs")
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
	_, closer, err := auditSweeps(cfg, connector)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watchTree(watcher, cfg.SurveyLogDir); err != nil {
		return err
	}

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

	logger.Info("Watching survey logs", zap.String("dir", cfg.SurveyLogDir))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return connector.Run(gctx, cfg.RefreshInterval)
	})
	g.Go(func() error {
		return forwardEvents(gctx, watcher, connector, logger)
	})
	return g.Wait()
}

// watchTree adds dir and every directory below it to watcher
func watchTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

// forwardEvents triggers a harvest for every write or create in the watched
// directories until ctx is done or the watcher is closed. Directories created
// meanwhile are watched as well.
func forwardEvents(ctx context.Context, watcher *fsnotify.Watcher, h triggerer, logger *zap.Logger) error {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watchTree(watcher, event.Name); err != nil {
						logger.Warn("Failed to watch new directory", zap.String("dir", event.Name), zap.Error(err))
					}
				}
			}
			logger.Debug("Survey log changed", zap.String("file", filepath.Base(event.Name)))
			h.Trigger()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error", zap.Error(err))
		case <-ctx.Done():
			return nil
		}
	}
}
