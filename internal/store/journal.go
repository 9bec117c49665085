package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/footprint-tools/drawer/internal/events"
)

// timeLayout is fixed width so stored times sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Filter narrows List and Count. Zero values match everything.
type Filter struct {
	Name   string
	Source string
	Since  time.Time
	Limit  int
}

func (f Filter) where() (string, []any) {
	var conds []string
	var args []any
	if f.Name != "" {
		conds = append(conds, "name = ?")
		args = append(args, f.Name)
	}
	if f.Source != "" {
		conds = append(conds, "source = ?")
		args = append(args, f.Source)
	}
	if !f.Since.IsZero() {
		conds = append(conds, "at >= ?")
		args = append(args, f.Since.UTC().Format(timeLayout))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Record appends e to the journal.
func (s *Store) Record(e events.Event) error {
	_, err := s.db.Exec(
		`INSERT INTO journal (source, name, trust, at) VALUES (?, ?, ?, ?)`,
		e.Source, e.Name, e.Trust.String(), e.At.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("record event: %w", err)
	}
	return nil
}

// List returns matching events, newest first.
func (s *Store) List(f Filter) ([]events.Event, error) {
	where, args := f.where()
	query := `SELECT id, source, name, trust, at FROM journal` + where + ` ORDER BY at DESC, id DESC`
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []events.Event
	for rows.Next() {
		var (
			e     events.Event
			trust string
			at    string
		)
		if err := rows.Scan(&e.ID, &e.Source, &e.Name, &trust, &at); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Trust = events.ParseTrust(trust)
		if e.At, err = time.Parse(timeLayout, at); err != nil {
			return nil, fmt.Errorf("parse event time %q: %w", at, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Count returns the number of matching events. Limit is ignored.
func (s *Store) Count(f Filter) (int, error) {
	where, args := f.where()
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM journal`+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return n, nil
}

// Clear deletes every event and returns how many were removed.
func (s *Store) Clear() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM journal`)
	if err != nil {
		return 0, fmt.Errorf("clear journal: %w", err)
	}
	return res.RowsAffected()
}

var _ events.Sink = (*Store)(nil)
