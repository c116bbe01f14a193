// Package storage provides SQLite-based persistence for the element
// selection history. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// defaultSource is stored when a caller records without naming a source.
const defaultSource = "keyboard"

// DefaultPath is the history database used when no --db flag is given.
const DefaultPath = "~/.atomviz/history.db"

// Store manages the SQLite database connection for selection history.
type Store struct {
	db *sql.DB
}

// Selection is one element the user settled on.
type Selection struct {
	ID           int64
	AtomicNumber int
	Element      string
	Source       string
	CreatedAt    time.Time
}

// ElementCount is an element together with how often it was selected.
type ElementCount struct {
	AtomicNumber int
	Element      string
	Count        int
}

// Stats summarises the whole history.
type Stats struct {
	Total        int
	Distinct     int
	LastSelected time.Time
}

// dsnPragmas let several SSH viewers write concurrently: WAL keeps readers
// off the writer's lock and busy_timeout makes writers wait instead of
// failing with SQLITE_BUSY.
const dsnPragmas = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// Open creates or opens the history database at dbPath, creating parent
// directories and the schema as needed. A leading ~ expands to the home
// directory.
func Open(dbPath string) (*Store, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath+dsnPragmas)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS selections (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			atomic_number INTEGER NOT NULL,
			element TEXT NOT NULL,
			source TEXT NOT NULL DEFAULT 'keyboard',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_selections_number ON selections(atomic_number);
		CREATE INDEX IF NOT EXISTS idx_selections_created ON selections(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordSelection stores one settled element.
// Returns the ID of the inserted record.
func (s *Store) RecordSelection(n int, name, source string) (int64, error) {
	if source == "" {
		source = defaultSource
	}
	result, err := s.db.Exec(
		"INSERT INTO selections (atomic_number, element, source) VALUES (?, ?, ?)",
		n, name, source,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record selection: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSelections retrieves the last N selections, newest first.
func (s *Store) RecentSelections(limit int) ([]Selection, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, atomic_number, element, source, created_at
		 FROM selections
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query selections: %w", err)
	}
	defer rows.Close()

	var entries []Selection
	for rows.Next() {
		var e Selection
		var createdAt any
		if err := rows.Scan(&e.ID, &e.AtomicNumber, &e.Element, &e.Source, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// TopElements returns the most frequently selected elements, ties broken by
// atomic number.
func (s *Store) TopElements(limit int) ([]ElementCount, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT atomic_number, element, COUNT(*) AS n
		 FROM selections
		 GROUP BY atomic_number, element
		 ORDER BY n DESC, atomic_number ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query top elements: %w", err)
	}
	defer rows.Close()

	var counts []ElementCount
	for rows.Next() {
		var c ElementCount
		if err := rows.Scan(&c.AtomicNumber, &c.Element, &c.Count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

// Stats retrieves aggregated statistics for the history.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT atomic_number) FROM selections`,
	).Scan(&stats.Total, &stats.Distinct)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var last any
	err = s.db.QueryRow(
		`SELECT created_at FROM selections ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&last)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last selection: %w", err)
	}
	if err == nil {
		stats.LastSelected = parseTime(last)
	}

	return stats, nil
}

// ClearHistory deletes every recorded selection.
func (s *Store) ClearHistory() error {
	_, err := s.db.Exec("DELETE FROM selections")
	if err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
