package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// ErrMiss is returned by Get when no cached response exists for a URL.
var ErrMiss = errors.New("cache miss")

// Store persists fetched HTTP responses in a SQLite database keyed by URL.
// A single Store is opened per run; there are no concurrent writers.
type Store struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Entry is one cached HTTP response.
type Entry struct {
	// URL is the request URL the response was fetched from.
	URL string

	// StatusCode is the HTTP response status code.
	StatusCode int

	// ContentType is the value of the Content-Type response header.
	ContentType string

	// Body is the decoded response body.
	Body []byte

	// FetchedAt is when the response was stored.
	FetchedAt time.Time
}

// Open opens or creates the response cache under the given directory.
// The directory is created if it does not exist.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	dbPath := filepath.Join(dir, "pepscan.db")
	db, err := sql.Open("sqlite", dbPath+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	// SQLite only supports one writer; a single connection is enough
	// for a sequential scraper.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{db: db, dbPath: dbPath}
	if err := s.createTable(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create cache table: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the location of the cache database file.
func (s *Store) Path() string {
	return s.dbPath
}

// createTable creates the cache schema if it doesn't exist.
func (s *Store) createTable() error {
	schema := `
	CREATE TABLE IF NOT EXISTS responses (
		url TEXT PRIMARY KEY,
		status_code INTEGER NOT NULL,
		content_type TEXT NOT NULL,
		body BLOB NOT NULL,
		fetched_at TEXT NOT NULL
	);
	`
	_, err := s.db.ExecContext(context.Background(), schema)
	return err
}

// Put inserts or replaces the cached response for the entry's URL.
func (s *Store) Put(ctx context.Context, e *Entry) error {
	fetchedAt := e.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now()
	}

	query := `
	INSERT INTO responses (url, status_code, content_type, body, fetched_at)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(url) DO UPDATE SET
		status_code = excluded.status_code,
		content_type = excluded.content_type,
		body = excluded.body,
		fetched_at = excluded.fetched_at
	`

	_, err := s.db.ExecContext(ctx, query,
		e.URL,
		e.StatusCode,
		e.ContentType,
		e.Body,
		fetchedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to store response for %s: %w", e.URL, err)
	}
	return nil
}

// Get retrieves the cached response for a URL.
// It returns ErrMiss when nothing is cached for that URL.
func (s *Store) Get(ctx context.Context, url string) (*Entry, error) {
	query := `
	SELECT url, status_code, content_type, body, fetched_at
	FROM responses
	WHERE url = ?
	`

	var e Entry
	var fetchedAt string
	err := s.db.QueryRowContext(ctx, query, url).Scan(
		&e.URL,
		&e.StatusCode,
		&e.ContentType,
		&e.Body,
		&fetchedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached response for %s: %w", url, err)
	}

	e.FetchedAt, _ = time.Parse(time.RFC3339, fetchedAt)
	return &e, nil
}

// Clear removes all cached responses.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM responses"); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}

// Count returns the number of cached responses.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM responses").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count cached responses: %w", err)
	}
	return n, nil
}
