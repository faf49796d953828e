package model

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func int64p(v int64) *int64 { return &v }

func TestKeyExcludesSyncTime(t *testing.T) {
	row := &ProfileMeasure{
		AnnotationGUID:      "a-1",
		MeasurementCategory: "profileLog",
		MeasurementName:     "csv",
		SyncTime:            time.Now(),
		ReportGUID:          "r-1",
		MeasurementCount:    4,
	}

	want := map[string]any{
		"annotation_guid":      "a-1",
		"measurement_category": "profileLog",
		"measurement_name":     "csv",
	}
	if diff := cmp.Diff(want, Key(row)); diff != "" {
		t.Errorf("Key() mismatch (-want +got):\n%s", diff)
	}
}

func TestID(t *testing.T) {
	a := &DirectoryMeasurement{DirectoryPath: "/data", ReportGUID: "r-1", SyncTime: time.Now()}
	b := &DirectoryMeasurement{DirectoryPath: "/data", ReportGUID: "r-2"}
	assert.Equal(t, "sr_directory_measurements|directory_path=/data", ID(a))
	assert.Equal(t, ID(a), ID(b))
	assert.NotEqual(t, ID(a), ID(&FileMeasurement{FilePath: "/data"}))
}

func TestValuesExcludesSyncTime(t *testing.T) {
	row := &RequestForAction{
		AnnotationGUID:    "a-1",
		SyncTime:          time.Now(),
		ReportGUID:        "r-1",
		ActionRequestName: "rescan",
		ActionTargetGUIDs: "t-1,t-2",
	}

	values := Values(row)
	assert.NotContains(t, values, SyncTimeColumn)
	assert.Equal(t, "rescan", values["action_request_name"])
	assert.Len(t, values, 6)
}

func TestRowsHaveKeys(t *testing.T) {
	for _, row := range Rows() {
		assert.NotEmpty(t, Key(row), row.TableName())
		assert.Contains(t, row.TableName(), "sr_")
	}
}

func TestSetSyncTime(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	report := &SurveyReport{}
	report.SetSyncTime(now)
	assert.Equal(t, now, report.SyncTime)
}

func TestEqual(t *testing.T) {
	ts := time.Date(2026, 3, 1, 9, 30, 0, 123456789, time.UTC)
	local := ts.In(time.FixedZone("CET", 3600))

	tests := []struct {
		name  string
		a, b  any
		equal bool
	}{
		{name: "int32 and int64", a: int32(5), b: int64(5), equal: true},
		{name: "integral float and int", a: float64(5), b: int64p(5), equal: true},
		{name: "fractional float and int", a: 5.5, b: int64(5), equal: false},
		{name: "bool and int", a: int64(1), b: true, equal: true},
		{name: "bool and zero", a: int64(0), b: true, equal: false},
		{name: "bytes and string", a: []byte("abc"), b: "abc", equal: true},
		{name: "nil and nil pointer", a: nil, b: (*int64)(nil), equal: true},
		{name: "nil and value", a: nil, b: "x", equal: false},
		{name: "empty string and nil", a: "", b: nil, equal: false},
		{name: "times in different zones", a: local, b: &ts, equal: true},
		{name: "times truncated to micros", a: ts.Truncate(time.Microsecond), b: ts, equal: true},
		{name: "time and RFC3339 string", a: "2026-03-01T09:30:00.123456Z", b: ts, equal: true},
		{name: "time and sqlite string", a: "2026-03-01 10:30:00.123456+01:00", b: ts, equal: true},
		{name: "time and garbage string", a: "yesterday", b: ts, equal: false},
		{name: "different strings", a: "a", b: "b", equal: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, Equal(tt.a, tt.b))
			assert.Equal(t, tt.equal, Equal(tt.b, tt.a))
		})
	}
}

func TestChanged(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	fresh := Values(&FileMeasurement{
		FilePath:     "/data/a.csv",
		ReportGUID:   "r-1",
		FileName:     "a.csv",
		CanRead:      true,
		CreationTime: &created,
		FileSize:     int64p(42),
	})

	stored := map[string]any{}
	for k, v := range fresh {
		stored[k] = v
	}
	stored["sync_time"] = time.Now()
	stored["can_read"] = int64(1)
	stored["file_size"] = int32(42)
	stored["creation_time"] = created.Local()

	assert.False(t, Changed(stored, fresh))

	stored["file_size"] = int32(43)
	assert.True(t, Changed(stored, fresh))

	assert.True(t, Changed(map[string]any{}, fresh))
}
