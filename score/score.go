// Package score persists the local best score per game mode. The store is
// consulted only at game over, never mid-frame, so a plain SQLite file is
// more than fast enough.
package score

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/milk9111/motionrush/engine"
)

// Store is the high-score database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the score database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("score: mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("score: open %s: %w", path, err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS best (
		mode TEXT PRIMARY KEY,
		score INTEGER NOT NULL,
		level INTEGER NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("score: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// DefaultPath returns the per-user score database location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "motionrush-scores.db"
	}
	return filepath.Join(dir, "motionrush", "scores.db")
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// HighScore returns the best recorded score for a mode, zero if none.
func (s *Store) HighScore(mode engine.Mode) (int, error) {
	var best int
	err := s.db.QueryRow(`SELECT score FROM best WHERE mode = ?`, string(mode)).Scan(&best)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("score: query %s: %w", mode, err)
	}
	return best, nil
}

// Submit records a finished game and reports whether it set a new best.
func (s *Store) Submit(mode engine.Mode, scoreVal, level int) (bool, error) {
	best, err := s.HighScore(mode)
	if err != nil {
		return false, err
	}
	if scoreVal <= best {
		return false, nil
	}
	_, err = s.db.Exec(`INSERT INTO best (mode, score, level, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(mode) DO UPDATE SET score = excluded.score, level = excluded.level, updated_at = excluded.updated_at`,
		string(mode), scoreVal, level)
	if err != nil {
		return false, fmt.Errorf("score: submit %s: %w", mode, err)
	}
	return true, nil
}
