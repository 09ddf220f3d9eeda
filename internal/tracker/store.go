package tracker

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Entry is one logged workout.
type Entry struct {
	ID              int64
	Name            string `validate:"required,max=100"`
	DurationMinutes int    `validate:"min=1,max=1440"`
	LoggedAt        time.Time
}

// Store persists logged workouts in a local SQLite file. It shares nothing
// with the HTTP service's catalog.
type Store struct {
	db *sql.DB
}

// NewStore creates the schema if needed.
func NewStore(ctx context.Context, db *sql.DB) (*Store, error) {
	const schema = `
	CREATE TABLE IF NOT EXISTS logged_workouts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL,
		logged_at TEXT NOT NULL
	)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("create logged_workouts: %w", err)
	}
	return &Store{db: db}, nil
}

// Add inserts the entry and fills in its ID.
func (s *Store) Add(ctx context.Context, entry *Entry) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO logged_workouts (name, duration_minutes, logged_at) VALUES (?, ?, ?)`,
		entry.Name, entry.DurationMinutes, entry.LoggedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert logged workout: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert logged workout: %w", err)
	}
	entry.ID = id
	return nil
}

// List returns all entries in insertion order.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, duration_minutes, logged_at FROM logged_workouts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list logged workouts: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var loggedAt string
		if err := rows.Scan(&e.ID, &e.Name, &e.DurationMinutes, &loggedAt); err != nil {
			return nil, fmt.Errorf("scan logged workout: %w", err)
		}
		if e.LoggedAt, err = time.Parse(time.RFC3339Nano, loggedAt); err != nil {
			return nil, fmt.Errorf("parse logged_at %q: %w", loggedAt, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
