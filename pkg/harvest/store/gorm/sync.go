package gorm

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/harvest/store"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/model"
)

var _ store.SyncStore = (*SyncStore)(nil)

// SyncStore writes versioned rows using GORM
type SyncStore struct {
	db *gorm.DB
}

// NewSyncStore creates a new SyncStore
func NewSyncStore(db *gorm.DB) *SyncStore {
	return &SyncStore{db: db}
}

// Latest returns the newest stored version of the row identified by key,
// or nil when there is none
func (s *SyncStore) Latest(ctx context.Context, table string, key map[string]any) (map[string]any, error) {
	var found []map[string]interface{}
	err := s.db.WithContext(ctx).
		Table(table).
		Where(key).
		Order(model.SyncTimeColumn + " DESC").
		Limit(1).
		Find(&found).Error
	if err != nil {
		return nil, fmt.Errorf("reading latest %s row: %w", table, err)
	}
	if len(found) == 0 {
		return nil, nil
	}
	return found[0], nil
}

// Sync inserts row at syncTime unless its values match the latest version
func (s *SyncStore) Sync(ctx context.Context, row model.Row, syncTime time.Time) (bool, error) {
	table := row.TableName()

	latest, err := s.Latest(ctx, table, model.Key(row))
	if err != nil {
		return false, err
	}
	if latest != nil && !model.Changed(latest, model.Values(row)) {
		return false, nil
	}

	row.SetSyncTime(syncTime)
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return false, fmt.Errorf("inserting %s row: %w", table, err)
	}
	return true, nil
}

// CheckConnectivity verifies database connectivity
func (s *SyncStore) CheckConnectivity(ctx context.Context) error {
	return s.db.WithContext(ctx).Exec("SELECT 1").Error
}

// Close closes the connection pool behind the store
func (s *SyncStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
