// Package gallery persists interesting evolved programs so a studio session
// can pick up where a previous one left off.
package gallery

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one saved program.
type Entry struct {
	ID      int64
	Kind    string // "cellular" or "beat"
	Source  string // textual program form
	Score   int
	SavedAt time.Time
}

// Store is a SQLite-backed gallery of programs.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens (creating if needed) the gallery database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening gallery database: %w", err)
	}

	// Set busy timeout for concurrent access
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS programs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		kind TEXT NOT NULL,
		source TEXT NOT NULL,
		score INTEGER NOT NULL,
		saved_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating programs table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save records a program and returns its id.
func (s *Store) Save(kind, source string, score int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		"INSERT INTO programs (kind, source, score) VALUES (?, ?, ?)",
		kind, source, score)
	if err != nil {
		return 0, fmt.Errorf("saving program: %w", err)
	}
	return res.LastInsertId()
}

// Best returns up to limit entries of the given kind, highest score first.
func (s *Store) Best(kind string, limit int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(
		`SELECT id, kind, source, score, saved_at FROM programs
		 WHERE kind = ? ORDER BY score DESC, id ASC LIMIT ?`,
		kind, limit)
	if err != nil {
		return nil, fmt.Errorf("querying programs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Kind, &e.Source, &e.Score, &e.SavedAt); err != nil {
			return nil, fmt.Errorf("scanning program row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the number of saved programs.
func (s *Store) Count() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM programs").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting programs: %w", err)
	}
	return n, nil
}
