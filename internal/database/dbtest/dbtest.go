// Package dbtest opens throwaway in-memory databases for tests.
package dbtest

import (
	"context"
	"testing"

	"github.com/mx-space/portfolio/internal/config"
	"github.com/mx-space/portfolio/internal/database"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Config returns an app config pointing at a private in-memory SQLite database.
func Config() *config.AppConfig {
	return &config.AppConfig{
		Port: 8000,
		Env:  "test",
		Database: config.DatabaseRuntimeConfig{
			URL: "sqlite::memory:",
		},
	}
}

// New opens an in-memory database with the portfolio schema applied. It is
// closed when the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := database.Open(Config())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.EnsureSchema(context.Background(), db))
	return db
}
