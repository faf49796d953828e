package gorm

import (
	"github.com/doodlesbykumbi/egeria-in-go/pkg/db"
)

// Open connects to the catalog target at databaseURL
func Open(databaseURL string) (*SyncStore, error) {
	gormDB, err := db.Connect(db.Config{URL: databaseURL})
	if err != nil {
		return nil, err
	}
	return NewSyncStore(gormDB), nil
}
