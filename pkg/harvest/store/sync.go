package store

import (
	"context"
	"time"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/model"
)

// SyncStore persists harvested rows, keeping one version per change
type SyncStore interface {
	// Sync stamps row with syncTime and inserts it unless the newest stored
	// row with the same key holds identical values. It reports whether a
	// row was inserted.
	Sync(ctx context.Context, row model.Row, syncTime time.Time) (bool, error)

	// CheckConnectivity verifies database connectivity
	CheckConnectivity(ctx context.Context) error

	// Close releases the underlying connection
	Close() error
}
