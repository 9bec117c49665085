// Package migrations applies the embedded schema files in order.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// Migration is one NN_description.sql file.
type Migration struct {
	Version     int
	Description string
	SQL         string
}

const createSchemaTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	description TEXT NOT NULL,
	applied_at TEXT NOT NULL DEFAULT (datetime('now'))
)`

// Load returns the embedded migrations sorted by version.
func Load() ([]Migration, error) {
	entries, err := sqlFiles.ReadDir("sql")
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	var all []Migration
	seen := make(map[int]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		version, description, err := parseFilename(entry.Name())
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", entry.Name(), err)
		}
		if prev, dup := seen[version]; dup {
			return nil, fmt.Errorf("duplicate version %d: %s and %s", version, prev, description)
		}
		seen[version] = description

		content, err := sqlFiles.ReadFile(path.Join("sql", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		all = append(all, Migration{Version: version, Description: description, SQL: string(content)})
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Version < all[j].Version })
	return all, nil
}

func parseFilename(name string) (int, string, error) {
	prefix, description, ok := strings.Cut(strings.TrimSuffix(name, ".sql"), "_")
	if !ok || description == "" {
		return 0, "", fmt.Errorf("invalid format, expected NN_description.sql")
	}
	version, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, "", fmt.Errorf("invalid version number: %w", err)
	}
	return version, description, nil
}

// Run applies every migration newer than the recorded version, each in
// its own transaction.
func Run(db *sql.DB) error {
	pending, err := Pending(db)
	if err != nil {
		return err
	}
	for _, m := range pending {
		if err := apply(db, m); err != nil {
			return fmt.Errorf("migration %02d_%s: %w", m.Version, m.Description, err)
		}
	}
	return nil
}

func apply(db *sql.DB, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.Exec(m.SQL); err != nil {
		return err
	}
	if _, err := tx.Exec(
		"INSERT INTO schema_migrations (version, description) VALUES (?, ?)",
		m.Version, m.Description,
	); err != nil {
		return fmt.Errorf("record migration: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	committed = true
	return nil
}

// CurrentVersion returns the highest applied version, 0 for a new database.
func CurrentVersion(db *sql.DB) (int, error) {
	if _, err := db.Exec(createSchemaTable); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}
	var version sql.NullInt64
	if err := db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version); err != nil {
		return 0, fmt.Errorf("get current version: %w", err)
	}
	return int(version.Int64), nil
}

// Pending returns migrations not yet applied.
func Pending(db *sql.DB) ([]Migration, error) {
	all, err := Load()
	if err != nil {
		return nil, err
	}
	current, err := CurrentVersion(db)
	if err != nil {
		return nil, err
	}
	var pending []Migration
	for _, m := range all {
		if m.Version > current {
			pending = append(pending, m)
		}
	}
	return pending, nil
}
