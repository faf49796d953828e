// Package db holds the versioned PostgreSQL schema of the survey tables.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
