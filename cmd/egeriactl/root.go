package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/config"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/logging"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/rest"
)

var rootCmd = &cobra.Command{
	Use:   "egeriactl",
	Short: "Egeria survey harvester and digital architecture client",
	Long: `Harvest survey reports from an Egeria metadata server into SQL catalog
targets, and query the digital architecture services of the server.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to egeria.yml (default $EGERIA_CONFIG_PATH/egeria.yml)")
	rootCmd.PersistentFlags().String("log-level", "", "override the configured log level")
}

// readConfig reads the configuration named by --config, or the default one
func readConfig(cmd *cobra.Command) (*config.HarvestConfig, error) {
	path, _ := cmd.Flags().GetString("config")

	var (
		cfg *config.HarvestConfig
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// loadConfig reads and validates the platform configuration
func loadConfig(cmd *cobra.Command) (*config.HarvestConfig, error) {
	cfg, err := readConfig(cmd)
	if err != nil {
		return nil, err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.HarvestConfig) (*zap.Logger, error) {
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("server", cfg.ServerName)), nil
}

// newRESTClient creates the platform client every command shares
func newRESTClient(cfg *config.HarvestConfig, logger *zap.Logger) (*rest.Client, error) {
	opts := []rest.Option{
		rest.WithLogger(logger.Named("rest")),
		rest.WithRetry(uint(cfg.RetryAttempts), 500*time.Millisecond),
		rest.WithMaxPageSize(cfg.MaxPageSize),
	}
	if cfg.Password != "" {
		opts = append(opts, rest.WithTokenSource(
			rest.NewPasswordTokenSource(cfg.PlatformURL, cfg.UserID, cfg.Password, nil),
		))
	}
	return rest.NewClient(cfg.PlatformURL, cfg.ServerName, opts...)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
