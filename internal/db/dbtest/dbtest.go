// Package dbtest opens throwaway migrated SQLite databases for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"fitbook/internal/db"
)

func Open(t testing.TB) *sqlx.DB {
	t.Helper()

	database, err := db.Connect(db.DriverSQLite, filepath.Join(t.TempDir(), "fitness.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, db.RunMigrations(database))
	return database
}
