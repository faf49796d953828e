package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/config"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/db"
)

// migrationsTable keeps the harvester's migration history apart from any
// other golang-migrate user of the same database
const migrationsTable = "egeria_schema_migrations"

// dbMigrateCmd represents the db migrate command
var dbMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create and/or upgrade the catalog target schema",
	Long: `Create and/or upgrade the catalog target schema.

This command runs all pending database migrations against every postgres
catalog target. SQLite targets create their tables when first opened.

Example:
  egeriactl db migrate
  egeriactl db migrate --target warehouse`,
	Run: func(cmd *cobra.Command, args []string) {
		targets, err := selectTargets(cmd)
		if err == nil {
			err = migrateTargets(targets)
		}
		if err != nil {
			fmt.Println("Migration failed:", err)
			os.Exit(1)
		}
	},
}

var dbMigrateDownCmd = &cobra.Command{
	Use:   "down [steps]",
	Short: "Rollback database migrations",
	Long: `Rollback database migrations.

This command rolls back the specified number of migrations (default: 1).

Example:
  egeriactl db down --target warehouse      # Rollback 1 migration
  egeriactl db down 3 --target warehouse    # Rollback 3 migrations`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		steps := 1
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				fmt.Printf("Invalid number of steps %q\n", args[0])
				os.Exit(1)
			}
			steps = n
		}

		targets, err := selectTargets(cmd)
		if err == nil {
			for _, t := range postgresTargets(targets) {
				if err = runMigrationsDown(t, steps); err != nil {
					break
				}
			}
		}
		if err != nil {
			fmt.Println("Rollback failed:", err)
			os.Exit(1)
		}
	},
}

var dbMigrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current migration version",
	Long:  `Show the current migration version of every postgres catalog target.`,
	Run: func(cmd *cobra.Command, args []string) {
		targets, err := selectTargets(cmd)
		if err == nil {
			for _, t := range postgresTargets(targets) {
				if err = showMigrationStatus(t); err != nil {
					break
				}
			}
		}
		if err != nil {
			fmt.Println("Failed to get status:", err)
			os.Exit(1)
		}
	},
}

func init() {
	dbCmd.AddCommand(dbMigrateCmd)
	dbCmd.AddCommand(dbMigrateDownCmd)
	dbCmd.AddCommand(dbMigrateStatusCmd)
}

// selectTargets returns the configured catalog targets, or only the one
// named by --target
func selectTargets(cmd *cobra.Command) ([]config.CatalogTarget, error) {
	cfg, err := readConfig(cmd)
	if err != nil {
		return nil, err
	}

	targets := cfg.Targets()
	if len(targets) == 0 {
		return nil, fmt.Errorf("no catalog targets configured; set DATABASE_URL or catalog_targets")
	}

	name, _ := cmd.Flags().GetString("target")
	if name == "" {
		return targets, nil
	}
	for _, t := range targets {
		if t.Name == name {
			return []config.CatalogTarget{t}, nil
		}
	}
	return nil, fmt.Errorf("unknown catalog target %q", name)
}

func postgresTargets(targets []config.CatalogTarget) []config.CatalogTarget {
	var out []config.CatalogTarget
	for _, t := range targets {
		if _, ok := db.SQLitePath(t.DatabaseURL); ok {
			continue
		}
		out = append(out, t)
	}
	return out
}

// databaseURLWithMigrationsTable returns dbURL with the migrations table parameter
func databaseURLWithMigrationsTable(dbURL string) string {
	if strings.Contains(dbURL, "?") {
		return dbURL + "&x-migrations-table=" + migrationsTable
	}
	return dbURL + "?x-migrations-table=" + migrationsTable
}

func migrateTargets(targets []config.CatalogTarget) error {
	for _, t := range postgresTargets(targets) {
		if err := runMigrations(t); err != nil {
			return fmt.Errorf("catalog target %s: %w", t.Name, err)
		}
	}
	return nil
}

func runMigrations(target config.CatalogTarget) error {
	m, err := createMigrateInstance(databaseURLWithMigrationsTable(target.DatabaseURL))
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	version, dirty, _ := m.Version()
	fmt.Printf("[%s] Current version: %d (dirty: %v)\n", target.Name, version, dirty)

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Printf("[%s] No migrations to run - database is up to date\n", target.Name)
			return nil
		}
		return fmt.Errorf("migration failed: %w", err)
	}

	newVersion, _, _ := m.Version()
	fmt.Printf("[%s] Migrated to version: %d\n", target.Name, newVersion)
	return nil
}

func runMigrationsDown(target config.CatalogTarget, steps int) error {
	m, err := createMigrateInstance(databaseURLWithMigrationsTable(target.DatabaseURL))
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	fmt.Printf("[%s] Rolling back %d migration(s)...\n", target.Name, steps)

	if err := m.Steps(-steps); err != nil {
		return fmt.Errorf("rollback failed: %w", err)
	}

	version, _, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		fmt.Printf("[%s] All migrations rolled back\n", target.Name)
		return nil
	}
	fmt.Printf("[%s] Rolled back to version: %d\n", target.Name, version)
	return nil
}

func showMigrationStatus(target config.CatalogTarget) error {
	m, err := createMigrateInstance(databaseURLWithMigrationsTable(target.DatabaseURL))
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	files, err := listMigrationFiles()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Printf("[%s] No migrations have been applied yet (%d available)\n", target.Name, len(files))
			return nil
		}
		return err
	}

	fmt.Printf("[%s] Current version: %d of %d\n", target.Name, version, len(files))
	if dirty {
		fmt.Printf("[%s] Warning: Database is in a dirty state\n", target.Name)
	}
	return nil
}
