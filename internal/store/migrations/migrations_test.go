package migrations_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/drawer/internal/store/migrations"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLoad_Ordered(t *testing.T) {
	all, err := migrations.Load()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(all), 2)
	for i := 1; i < len(all); i++ {
		require.Greater(t, all[i].Version, all[i-1].Version)
	}
	require.Equal(t, "journal", all[0].Description)
}

func TestRun_Idempotent(t *testing.T) {
	db := openMemory(t)

	require.NoError(t, migrations.Run(db))
	v1, err := migrations.CurrentVersion(db)
	require.NoError(t, err)

	require.NoError(t, migrations.Run(db))
	v2, err := migrations.CurrentVersion(db)
	require.NoError(t, err)
	require.Equal(t, v1, v2)

	pending, err := migrations.Pending(db)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestRun_CreatesJournal(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, migrations.Run(db))

	_, err := db.Exec(`INSERT INTO journal (source, name, trust, at) VALUES ('nav', 'open', 'high', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM journal`).Scan(&n))
	require.Equal(t, 1, n)
}

func TestCurrentVersion_FreshDatabase(t *testing.T) {
	db := openMemory(t)
	v, err := migrations.CurrentVersion(db)
	require.NoError(t, err)
	require.Zero(t, v)
}
