package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/spindle-tools/cli/internal/domain"
	"github.com/spindle-tools/cli/internal/store"
	"github.com/spindle-tools/cli/internal/store/migrations"
)

// NewTestDB creates an in-memory SQLite database with migrations
// applied. It is closed automatically when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")

	t.Cleanup(func() {
		_ = db.Close()
	})

	err = migrations.Run(db)
	require.NoError(t, err, "failed to run migrations")

	return db
}

// NewTestStore wraps a fresh in-memory database in a Store.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.NewWithDB(NewTestDB(t))
}

// SeedResults inserts rip results into the test store.
func SeedResults(t *testing.T, s *store.Store, results []domain.RipResult) {
	t.Helper()

	for _, result := range results {
		err := s.Insert(result)
		require.NoError(t, err, "failed to seed result: %+v", result)
	}
}
