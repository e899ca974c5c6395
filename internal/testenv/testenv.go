// Package testenv opens throwaway records databases for tests.
package testenv

import (
	"context"
	"testing"

	"github.com/barangayan/brgyems/internal/config"
	"github.com/barangayan/brgyems/internal/database"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// Config returns an SQLite configuration rooted in a fresh temporary directory
func Config(t testing.TB) config.DatabaseConfig {
	t.Helper()
	return config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		Dir:          t.TempDir(),
		File:         "test.db",
		SeedDemoUser: true,
	}
}

// OpenDB connects to a bootstrapped database that is closed when the test ends
func OpenDB(t testing.TB) *database.DB {
	t.Helper()

	db, err := database.Connect(Config(t), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.EnsureCreated(context.Background()))
	return db
}
