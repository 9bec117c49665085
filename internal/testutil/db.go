// Package testutil holds helpers shared by package tests.
package testutil

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/drawer/internal/events"
	"github.com/footprint-tools/drawer/internal/store"
	"github.com/footprint-tools/drawer/internal/store/migrations"
)

// NewTestDB opens a migrated in-memory database closed with the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Run(db), "failed to run migrations")
	return db
}

// NewTestStore wraps NewTestDB in a journal store.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.NewWithDB(NewTestDB(t))
}

// SeedJournal records one event per name, a minute apart starting at start.
func SeedJournal(t *testing.T, s *store.Store, source string, start time.Time, names ...string) {
	t.Helper()
	for i, name := range names {
		e := events.Event{Source: source, Name: name, Trust: events.TrustHigh, At: start.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, s.Record(e), "failed to seed %s", name)
	}
}
