// Package store defines the storage abstraction the harvester writes
// through, so the processor can be tested without a database.
//
// # Available Stores
//
//   - SyncStore: change-detecting inserts of versioned rows
//
// The gorm subpackage provides the implementation used against postgres
// and sqlite catalog targets.
package store
