// Package storage provides SQLite-based persistence for finished sessions
// and the high score. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-scribble/internal/config"
	"github.com/vovakirdan/tui-scribble/internal/session"
)

var _ session.Persistence = (*Store)(nil)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SessionEntry is one recorded session.
type SessionEntry struct {
	ID             int64
	SessionID      string
	Mode           config.Mode
	Difficulty     config.Difficulty
	WordsCompleted int
	TargetCount    int
	Score          int
	ElapsedSeconds int
	CreatedAt      time.Time
}

// DifficultyStats aggregates the sessions of one difficulty.
type DifficultyStats struct {
	Difficulty config.Difficulty
	Sessions   int
	Completed  int // Sessions where every target word was drawn
	BestScore  int
	AvgScore   float64
	WordsDrawn int
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			mode TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			words_completed INTEGER NOT NULL DEFAULT 0,
			target_count INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			elapsed_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_difficulty ON sessions(difficulty);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(difficulty, score DESC);

		CREATE TABLE IF NOT EXISTS high_score (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// RecordSession stores a finished session. A result without an ID gets a
// fresh UUID.
func (s *Store) RecordSession(r session.Result) error {
	id := r.ID
	if id == "" {
		id = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO sessions (session_id, mode, difficulty, words_completed, target_count, score, elapsed_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, string(r.Mode), string(r.Difficulty), r.WordsCompleted, r.TargetCount, r.Score, r.ElapsedSeconds,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record session: %w", err)
	}
	return nil
}

// HighScore returns the stored high score, or 0 if none was set.
func (s *Store) HighScore() (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM high_score WHERE id = 1").Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, nil
}

// SetHighScore stores score if it beats the stored high score. A lower
// score is ignored, so concurrent sessions never lower it.
func (s *Store) SetHighScore(score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_score (id, score, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at
		 WHERE excluded.score > high_score.score`,
		score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// RecentSessions returns the latest sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.querySessions(
		`SELECT id, session_id, mode, difficulty, words_completed, target_count, score, elapsed_secs, created_at
		 FROM sessions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// TopSessions returns the best sessions for a difficulty, highest score
// first. An empty difficulty ranks all sessions.
func (s *Store) TopSessions(d config.Difficulty, limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.querySessions(
		`SELECT id, session_id, mode, difficulty, words_completed, target_count, score, elapsed_secs, created_at
		 FROM sessions
		 WHERE ? = '' OR difficulty = ?
		 ORDER BY score DESC, elapsed_secs ASC
		 LIMIT ?`,
		string(d), string(d), limit,
	)
}

func (s *Store) querySessions(query string, args ...any) ([]SessionEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var mode, difficulty string
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &mode, &difficulty, &e.WordsCompleted,
			&e.TargetCount, &e.Score, &e.ElapsedSeconds, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Mode = config.Mode(mode)
		e.Difficulty = config.Difficulty(difficulty)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats returns aggregated statistics per difficulty that has been played.
func (s *Store) Stats() (map[config.Difficulty]*DifficultyStats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*),
		        SUM(CASE WHEN words_completed = target_count AND target_count > 0 THEN 1 ELSE 0 END),
		        MAX(score), AVG(score), SUM(words_completed), MAX(created_at)
		 FROM sessions
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[config.Difficulty]*DifficultyStats)
	for rows.Next() {
		var st DifficultyStats
		var difficulty string
		var lastPlayed any
		if err := rows.Scan(&difficulty, &st.Sessions, &st.Completed, &st.BestScore,
			&st.AvgScore, &st.WordsDrawn, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.Difficulty = config.Difficulty(difficulty)
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Difficulty] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearSessions deletes the session history. The high score is kept.
func (s *Store) ClearSessions() error {
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
