// Package store is the sqlite journal of drawer notifications.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/footprint-tools/drawer/internal/store/migrations"
)

// Store wraps the journal database.
type Store struct {
	db   *sql.DB
	path string
}

// New opens path, creating its directory, and runs pending migrations.
func New(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := configureSQLite(db, path); err != nil {
		_ = db.Close()
		return nil, err
	}
	setDBPermissions(path)

	if err := migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// NewWithDB wraps an already migrated connection.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying connection.
func (s *Store) DB() *sql.DB { return s.db }

// Close closes the connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func configureSQLite(db *sql.DB, path string) error {
	if path == ":memory:" {
		// every connection would get its own empty database
		db.SetMaxOpenConns(1)
		return nil
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("configure database: %w", err)
		}
	}
	return nil
}

func setDBPermissions(path string) {
	if path == ":memory:" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}
