package audit

import (
	"fmt"
	"strconv"
)

// SweepEvent records the outcome of one catalog target in a harvest sweep
type SweepEvent struct {
	SweepID     string
	Target      string
	Reports     int
	Annotations int
	Inserted    int
	Unchanged   int
	Duration    string
	Error       string
}

func (e SweepEvent) MessageID() string {
	return "harvest"
}

func (e SweepEvent) Message() string {
	if e.Error != "" {
		return fmt.Sprintf("harvest of catalog target %s failed: %s", e.Target, e.Error)
	}
	return fmt.Sprintf("harvested %d survey reports into catalog target %s (%d rows written, %d unchanged)",
		e.Reports, e.Target, e.Inserted, e.Unchanged)
}

func (e SweepEvent) Severity() Severity {
	if e.Error != "" {
		return SeverityError
	}
	return SeverityInfo
}

func (e SweepEvent) Facility() int {
	return FacilityDaemon
}

func (e SweepEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDSweep: {
			"id":          e.SweepID,
			"reports":     strconv.Itoa(e.Reports),
			"annotations": strconv.Itoa(e.Annotations),
			"inserted":    strconv.Itoa(e.Inserted),
			"unchanged":   strconv.Itoa(e.Unchanged),
		},
		SDIDTarget: {
			"name": e.Target,
		},
	}
	if e.Duration != "" {
		sd[SDIDSweep]["duration"] = e.Duration
	}
	return sd
}

// RefreshRequestEvent records a refresh requested over HTTP
type RefreshRequestEvent struct {
	Subject  string
	ClientIP string
}

func (e RefreshRequestEvent) MessageID() string {
	return "refresh"
}

func (e RefreshRequestEvent) Message() string {
	if e.Subject == "" {
		return "anonymous client requested a harvest refresh"
	}
	return fmt.Sprintf("%s requested a harvest refresh", e.Subject)
}

func (e RefreshRequestEvent) Severity() Severity {
	return SeverityNotice
}

func (e RefreshRequestEvent) Facility() int {
	return FacilityAuthPriv
}

func (e RefreshRequestEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDClient: {"ip": e.ClientIP},
	}
	if e.Subject != "" {
		sd[SDIDSubject] = map[string]string{"sub": e.Subject}
	}
	return sd
}
