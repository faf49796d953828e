package db

import (
	"fmt"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/model"
)

// Config holds database connection configuration
type Config struct {
	// URL is the database connection URL (defaults to DATABASE_URL env var)
	URL string
	// Debug logs every SQL statement
	Debug bool
}

// Connect establishes a database connection.
// If no URL is provided, it reads from DATABASE_URL environment variable.
// URLs starting with "sqlite:" open a sqlite database whose tables are
// created on connect; anything else is treated as a PostgreSQL DSN.
func Connect(cfg Config) (*gorm.DB, error) {
	dbURL := cfg.URL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	logMode := logger.Silent
	if cfg.Debug || os.Getenv("EGERIA_LOG_LEVEL") == "debug" {
		logMode = logger.Info
	}
	gormConfig := &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
	}

	if path, ok := SQLitePath(dbURL); ok {
		db, err := gorm.Open(sqlite.Open(path), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
		}
		if err := AutoMigrate(db); err != nil {
			return nil, err
		}
		return db, nil
	}

	db, err := gorm.Open(
		postgres.New(postgres.Config{
			DSN:                  dbURL,
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		}),
		gormConfig,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// SQLitePath returns the file path of a sqlite URL
func SQLitePath(dbURL string) (string, bool) {
	for _, prefix := range []string{"sqlite://", "sqlite:", "sqlite3:"} {
		if strings.HasPrefix(dbURL, prefix) {
			return strings.TrimPrefix(dbURL, prefix), true
		}
	}
	return "", false
}

// AutoMigrate creates the survey tables from the row models. PostgreSQL
// databases use the versioned migrations instead.
func AutoMigrate(db *gorm.DB) error {
	rows := model.Rows()
	values := make([]interface{}, len(rows))
	for i, row := range rows {
		values[i] = row
	}
	if err := db.AutoMigrate(values...); err != nil {
		return fmt.Errorf("failed to create survey tables: %w", err)
	}
	return nil
}

// URL returns the database URL from environment.
// Returns empty string if DATABASE_URL is not set.
func URL() string {
	return os.Getenv("DATABASE_URL")
}
