package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/config"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/rest"
)

// queryEnv is what every read-only catalog query needs
type queryEnv struct {
	ctx       context.Context
	cfg       *config.HarvestConfig
	client    *rest.Client
	startFrom int
	pageSize  int
}

func addPagingFlags(cmd *cobra.Command) {
	cmd.Flags().Int("start-from", 0, "index of the first element to return")
	cmd.Flags().Int("page-size", 0, "maximum number of elements to return (default: configured page_size)")
}

// runQuery loads the configuration, connects and prints what query returns as JSON
func runQuery(cmd *cobra.Command, query func(q *queryEnv) (any, error)) {
	if err := executeQuery(cmd, os.Stdout, query); err != nil {
		fmt.Fprintf(os.Stderr, "Query failed: %v\n", err)
		os.Exit(1)
	}
}

func executeQuery(cmd *cobra.Command, out io.Writer, query func(q *queryEnv) (any, error)) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	client, err := newRESTClient(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	q := &queryEnv{ctx: ctx, cfg: cfg, client: client, pageSize: cfg.PageSize}
	if cmd.Flags().Lookup("start-from") != nil {
		q.startFrom, _ = cmd.Flags().GetInt("start-from")
		if size, _ := cmd.Flags().GetInt("page-size"); size > 0 {
			q.pageSize = size
		}
	}

	result, err := query(q)
	if err != nil {
		return err
	}
	return printJSON(out, result)
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
