package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/infinitivesi/lab-8/pkg/database"
	"github.com/infinitivesi/lab-8/pkg/logger"
)

// OpenSQLite opens a file-backed sqlite database in a per-test directory.
func OpenSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	return OpenSQLiteAt(t, filepath.Join(t.TempDir(), "test.sqlite"), 5*time.Second)
}

// OpenSQLiteAt opens path with its own pool, so several pools can contend
// for one file.
func OpenSQLiteAt(t *testing.T, path string, busyTimeout time.Duration) *gorm.DB {
	t.Helper()

	log, _ := logger.NewTestLogger()
	db, err := database.Open(database.Config{
		Driver:      database.DriverSQLite,
		Path:        path,
		BusyTimeout: busyTimeout,
	}, log)
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// SetupMockPostgres wires sqlmock behind the postgres dialector.
func SetupMockPostgres(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}
