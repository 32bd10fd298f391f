// Package store reads the bundled VerseMate seed database: offline
// verses, topical articles, commentary, bookmarks, and the reading
// positions this application persists itself.
package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store wraps the offline SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens the seed database. Missing tables are created with the
// seed schema so the application also starts against an empty file;
// content tables are treated as read-only here, except for bookmarks.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	s := &Store{db: db, path: path}
	if err := s.ensureLocalTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Path returns the filesystem path of the database file.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureLocalTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS offline_verses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			version_key TEXT NOT NULL,
			book_id INTEGER NOT NULL,
			chapter_number INTEGER NOT NULL,
			verse_number INTEGER NOT NULL,
			text TEXT NOT NULL,
			UNIQUE(version_key, book_id, chapter_number, verse_number)
		);
		CREATE TABLE IF NOT EXISTS offline_explanations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			language_code TEXT NOT NULL,
			explanation_id INTEGER NOT NULL,
			book_id INTEGER NOT NULL,
			chapter_number INTEGER NOT NULL,
			verse_start INTEGER,
			verse_end INTEGER,
			type TEXT NOT NULL,
			explanation TEXT NOT NULL,
			UNIQUE(language_code, explanation_id)
		);
		CREATE TABLE IF NOT EXISTS offline_topics (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			language_code TEXT NOT NULL,
			topic_id TEXT NOT NULL,
			name TEXT NOT NULL,
			content TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			sort_order INTEGER,
			UNIQUE(language_code, topic_id)
		);
		CREATE TABLE IF NOT EXISTS offline_topic_references (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			topic_id TEXT NOT NULL,
			reference_content TEXT NOT NULL,
			UNIQUE(topic_id)
		);
		CREATE TABLE IF NOT EXISTS offline_bookmarks (
			favorite_id INTEGER PRIMARY KEY,
			book_id INTEGER NOT NULL,
			chapter_number INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS reading_positions (
			surface TEXT PRIMARY KEY,
			book_id INTEGER,
			chapter_number INTEGER,
			topic_id TEXT,
			updated_at TEXT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("prepare tables: %w", err)
	}
	return nil
}
