// Package model defines the tables the survey harvester writes.
//
// Every table keeps history: a row's primary key is its natural key plus
// sync_time, and a new version is written only when a value changed since
// the latest stored version.
//
//   - sr_report: one row per survey report
//   - sr_annotation: annotations attached to a report
//   - sr_resource_measurements: resource measurement annotations
//   - sr_directory_measurements: directory level measurements, keyed by path
//   - sr_file_measurements: file level measurements, keyed by path
//   - sr_profile_measures: named counts from profile annotations and logs
//   - sr_request_for_action: actions requested by a survey
package model
