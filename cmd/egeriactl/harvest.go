package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/audit"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/config"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/harvest"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/harvest/store"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/harvest/store/gorm"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/openmetadata"
)

// harvestCmd represents the harvest command
var harvestCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Harvest survey reports into catalog targets",
	Long:  `Harvest survey reports and their annotations into the configured SQL catalog targets.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'harvest' requires a subcommand (run, serve, watch)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(harvestCmd)
}

func openTarget(_ context.Context, target config.CatalogTarget) (store.SyncStore, error) {
	st, err := gorm.Open(target.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("catalog target %s: %w", target.Name, err)
	}
	return st, nil
}

// newConnector wires the metadata source and catalog targets of cfg
func newConnector(cfg *config.HarvestConfig, logger *zap.Logger) (*harvest.Connector, error) {
	if err := cfg.ValidateHarvest(); err != nil {
		return nil, err
	}

	client, err := newRESTClient(cfg, logger)
	if err != nil {
		return nil, err
	}
	source := openmetadata.NewClient(client, cfg.ServiceURLMarker)

	var logs *harvest.LogReader
	if cfg.SurveyLogDir != "" {
		logs = harvest.NewLogReader(cfg.SurveyLogDir)
	}

	return harvest.NewConnector(source, openTarget, cfg.Targets(), harvest.ProcessorConfig{
		UserID:   cfg.UserID,
		PageSize: cfg.PageSize,
		Logs:     logs,
		Logger:   logger,
	}), nil
}

// auditSweeps opens the configured audit trail and records every catalog
// target refresh of connector in it
func auditSweeps(cfg *config.HarvestConfig, connector *harvest.Connector) (*audit.Logger, io.Closer, error) {
	trail, closer, err := audit.Open(cfg.AuditLog)
	if err != nil {
		return nil, nil, err
	}
	if trail != nil {
		connector.OnTargetRefreshed(func(st harvest.TargetStatus) {
			trail.Log(audit.SweepEvent{
				SweepID:     st.SweepID,
				Target:      st.Name,
				Reports:     st.Stats.Reports,
				Annotations: st.Stats.Annotations,
				Inserted:    st.Stats.Inserted,
				Unchanged:   st.Stats.Unchanged,
				Duration:    st.Duration,
				Error:       st.LastError,
			})
		})
	}
	return trail, closer, nil
}
