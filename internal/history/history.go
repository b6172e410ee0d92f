// Package history persists finished game and solver sessions in a small
// sqlite database.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store is a sqlite-backed session log.
type Store struct {
	db *sql.DB
}

// Session is one recorded run.
type Session struct {
	ID         int64
	Mode       string // "game" or "solver"
	Difficulty string // game difficulty; empty for solver runs
	WordLen    int
	Outcome    string // "won", "lost", "quit", "solved", "abandoned"
	Attempts   int
	PlayedAt   time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	mode       TEXT    NOT NULL,
	difficulty TEXT    NOT NULL DEFAULT '',
	word_len   INTEGER NOT NULL,
	outcome    TEXT    NOT NULL,
	attempts   INTEGER NOT NULL,
	played_at  TIMESTAMP NOT NULL
);`

// Open opens the history database at path, creating it and its schema when
// needed.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Record appends one finished session.
func (s *Store) Record(sess Session) error {
	_, err := s.db.Exec(
		`INSERT INTO sessions (mode, difficulty, word_len, outcome, attempts, played_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sess.Mode, sess.Difficulty, sess.WordLen, sess.Outcome, sess.Attempts, sess.PlayedAt,
	)
	if err != nil {
		return fmt.Errorf("recording session: %w", err)
	}
	return nil
}

// Recent returns up to limit sessions, newest first.
func (s *Store) Recent(limit int) ([]Session, error) {
	rows, err := s.db.Query(
		`SELECT id, mode, difficulty, word_len, outcome, attempts, played_at
		 FROM sessions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		if err := rows.Scan(&sess.ID, &sess.Mode, &sess.Difficulty, &sess.WordLen,
			&sess.Outcome, &sess.Attempts, &sess.PlayedAt); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}
