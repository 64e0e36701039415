// Package history keeps a local log of catalog lookups in SQLite.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Lookup kinds recorded in the log.
const (
	KindRelease = "release"
	KindArtist  = "artist"
	KindLabel   = "label"
	KindSearch  = "search"
)

// Store manages the lookup history database
type Store struct {
	db *sql.DB
}

// Entry is one recorded lookup
type Entry struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Query     string    `json:"query"`
	Success   bool      `json:"success"`
	Error     string    `json:"error,omitempty"`
	Summary   string    `json:"summary,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Open opens (or creates) the history database at path.
// ":memory:" gives a throwaway database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps :memory: databases consistent
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA journal_mode = WAL",
		"PRAGMA temp_store = MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS lookups (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			query TEXT NOT NULL,
			success BOOLEAN NOT NULL DEFAULT 0,
			error TEXT,
			summary TEXT,
			timestamp INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_lookups_timestamp ON lookups(timestamp);
		CREATE INDEX IF NOT EXISTS idx_lookups_kind ON lookups(kind, timestamp);
	`

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Add records a lookup. A zero Timestamp is replaced by the current time.
func (s *Store) Add(ctx context.Context, e Entry) (int64, error) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	query := `
		INSERT INTO lookups (kind, query, success, error, summary, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		e.Kind,
		e.Query,
		e.Success,
		nullString(e.Error),
		nullString(e.Summary),
		e.Timestamp.Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert lookup: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get insert id: %w", err)
	}

	return id, nil
}

// Recent returns the newest entries first. A limit of 0 returns everything.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	query := `
		SELECT id, kind, query, success, COALESCE(error, ''), COALESCE(summary, ''), timestamp
		FROM lookups
		ORDER BY timestamp DESC, id DESC
	`

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query lookups: %w", err)
	}
	return scanEntries(rows)
}

// Search returns entries whose query contains term, newest first.
// An empty kind matches every kind.
func (s *Store) Search(ctx context.Context, kind, term string) ([]Entry, error) {
	query := `
		SELECT id, kind, query, success, COALESCE(error, ''), COALESCE(summary, ''), timestamp
		FROM lookups
		WHERE query LIKE ? ESCAPE '\'
	`
	args := []any{"%" + escapeLike(term) + "%"}

	if kind != "" {
		query += " AND kind = ?"
		args = append(args, kind)
	}
	query += " ORDER BY timestamp DESC, id DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search lookups: %w", err)
	}
	return scanEntries(rows)
}

// Count returns the number of recorded lookups
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM lookups").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count lookups: %w", err)
	}

	return count, nil
}

// Cleanup removes entries older than maxAge and returns how many were deleted
func (s *Store) Cleanup(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge).Unix()

	result, err := s.db.ExecContext(ctx, "DELETE FROM lookups WHERE timestamp < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old lookups: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return deleted, nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var timestampUnix int64

		err := rows.Scan(
			&e.ID,
			&e.Kind,
			&e.Query,
			&e.Success,
			&e.Error,
			&e.Summary,
			&timestampUnix,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lookup: %w", err)
		}

		e.Timestamp = time.Unix(timestampUnix, 0)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lookups: %w", err)
	}

	return entries, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// escapeLike escapes LIKE wildcards so term matches literally.
func escapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}
