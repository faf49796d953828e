// Package harvest copies survey reports from an Egeria open metadata store
// into SQL catalog targets.
//
// A CatalogTargetProcessor walks every SurveyReport, the engine action that
// produced it, the asset it describes and each reported annotation, and
// turns them into the rows defined in package model. Rows are written
// through a store.SyncStore, which only inserts a new version when
// something changed since the last sweep.
//
// A Connector drives one processor per catalog target, either on demand or
// on a fixed interval, and keeps the status of the last sweep per target.
package harvest
