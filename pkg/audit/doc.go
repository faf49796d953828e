// Package audit writes an RFC5424 audit trail of what the harvester did and
// who asked it to.
//
// # Event Types
//
//   - SweepEvent: the outcome of one catalog target in a harvest sweep
//   - RefreshRequestEvent: a refresh requested over the status server
//
// # Usage
//
//	logger, closer, err := audit.Open(cfg.AuditLog)
//	...
//	logger.Log(audit.SweepEvent{SweepID: id, Target: "warehouse", Reports: 3})
package audit
