package gorm

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/model"
)

var profileColumns = []string{
	"annotation_guid", "measurement_category", "measurement_name", "sync_time",
	"report_guid", "subject_guid", "measurement_count",
}

func newMockStore(t *testing.T) (*SyncStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{
			Conn:                 db,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{
			Logger:                 logger.Default.LogMode(logger.Silent),
			SkipDefaultTransaction: true,
		},
	)
	require.NoError(t, err)
	return NewSyncStore(gormDB), mock
}

func profileMeasure(count int64) *model.ProfileMeasure {
	return &model.ProfileMeasure{
		AnnotationGUID:      "a-1",
		MeasurementCategory: "profileLog",
		MeasurementName:     "csv",
		ReportGUID:          "r-1",
		SubjectGUID:         "s-1",
		MeasurementCount:    count,
	}
}

func TestSyncInsertsNewRow(t *testing.T) {
	s, mock := newMockStore(t)
	syncTime := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "sr_profile_measures"`).
		WillReturnRows(sqlmock.NewRows(profileColumns))
	mock.ExpectExec(`INSERT INTO "sr_profile_measures"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	row := profileMeasure(3)
	inserted, err := s.Sync(context.Background(), row, syncTime)
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, syncTime, row.SyncTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncSkipsUnchangedRow(t *testing.T) {
	s, mock := newMockStore(t)
	stored := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "sr_profile_measures"`).
		WillReturnRows(sqlmock.NewRows(profileColumns).
			AddRow("a-1", "profileLog", "csv", stored, "r-1", "s-1", int64(3)))

	inserted, err := s.Sync(context.Background(), profileMeasure(3), time.Now())
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncInsertsChangedRow(t *testing.T) {
	s, mock := newMockStore(t)
	stored := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "sr_profile_measures"`).
		WillReturnRows(sqlmock.NewRows(profileColumns).
			AddRow("a-1", "profileLog", "csv", stored, "r-1", "s-1", int64(2)))
	mock.ExpectExec(`INSERT INTO "sr_profile_measures"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	inserted, err := s.Sync(context.Background(), profileMeasure(3), time.Now())
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncQueryError(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(`SELECT \* FROM "sr_profile_measures"`).
		WillReturnError(assert.AnError)

	_, err := s.Sync(context.Background(), profileMeasure(3), time.Now())
	assert.ErrorIs(t, err, assert.AnError)
	assert.ErrorContains(t, err, "reading latest sr_profile_measures row")
}

func TestCheckConnectivity(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec(`SELECT 1`).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.NoError(t, s.CheckConnectivity(context.Background()))
}

func TestSyncAgainstSqlite(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.FileMeasurement{}))

	s := NewSyncStore(db)
	defer s.Close()
	ctx := context.Background()

	created := time.Date(2026, 1, 5, 8, 0, 0, 123456000, time.UTC)
	size := int64(2048)
	file := func() *model.FileMeasurement {
		return &model.FileMeasurement{
			FilePath:     "/data/landing/weekly.csv",
			ReportGUID:   "r-1",
			FileName:     "weekly.csv",
			FileType:     "CSV Data File",
			CanRead:      true,
			CreationTime: &created,
			FileSize:     &size,
		}
	}

	first := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	inserted, err := s.Sync(ctx, file(), first)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = s.Sync(ctx, file(), first.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, inserted, "identical values read back from sqlite must compare equal")

	size = 4096
	inserted, err = s.Sync(ctx, file(), first.Add(2*time.Hour))
	require.NoError(t, err)
	assert.True(t, inserted)

	var count int64
	require.NoError(t, db.Table("sr_file_measurements").Count(&count).Error)
	assert.Equal(t, int64(2), count)

	latest, err := s.Latest(ctx, "sr_file_measurements", map[string]any{"file_path": "/data/landing/weekly.csv"})
	require.NoError(t, err)
	assert.True(t, model.Equal(int64(4096), latest["file_size"]))
}
