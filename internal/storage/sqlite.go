// Package storage provides SQLite-based persistence for scores and
// finished Laser Bikes rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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

	"github.com/vovakirdan/grid-arcade/internal/core"
)

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// RoundRecord is a finished two-player round.
// Winner is core.NoPlayer for a draw.
type RoundRecord struct {
	ID         string
	GameID     string
	Winner     core.PlayerID
	Claimed1   int
	Claimed2   int
	CollisionX int
	CollisionY int
	Duration   float64
	CreatedAt  time.Time
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS rounds (
			id TEXT PRIMARY KEY,
			seq INTEGER NOT NULL,
			game_id TEXT NOT NULL,
			winner INTEGER NOT NULL DEFAULT 0,
			claimed1 INTEGER NOT NULL DEFAULT 0,
			claimed2 INTEGER NOT NULL DEFAULT 0,
			collision_x INTEGER NOT NULL,
			collision_y INTEGER NOT NULL,
			duration REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_game_id ON rounds(game_id, seq DESC);
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

// SaveScore records a new score for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score) VALUES (?, ?)",
		gameID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
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

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats retrieves aggregated score statistics for a game.
func (s *Store) Stats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// SaveRound records a finished round and returns its generated ID.
func (s *Store) SaveRound(gameID string, r core.RoundSummary) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO rounds
		 (id, seq, game_id, winner, claimed1, claimed2, collision_x, collision_y, duration)
		 VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM rounds), ?, ?, ?, ?, ?, ?, ?)`,
		id,
		gameID,
		int(r.Winner),
		r.Claimed[core.Player1],
		r.Claimed[core.Player2],
		r.CollisionX,
		r.CollisionY,
		r.Duration,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}
	return id, nil
}

// RoundByID retrieves a round by its ID.
// Returns nil without an error when no such round exists.
func (s *Store) RoundByID(id string) (*RoundRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, game_id, winner, claimed1, claimed2, collision_x, collision_y, duration, created_at
		 FROM rounds
		 WHERE id = ?`,
		id,
	)

	r, err := scanRound(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query round: %w", err)
	}
	return r, nil
}

// RecentRounds retrieves the most recent rounds for a game, newest first.
func (s *Store) RecentRounds(gameID string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, winner, claimed1, claimed2, collision_x, collision_y, duration, created_at
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY seq DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var results []RoundRecord
	for rows.Next() {
		r, err := scanRound(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, *r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// WinCounts tallies round wins per player for a game.
// Draws are counted under core.NoPlayer.
func (s *Store) WinCounts(gameID string) (map[core.PlayerID]int, error) {
	rows, err := s.db.Query(
		`SELECT winner, COUNT(*) FROM rounds WHERE game_id = ? GROUP BY winner`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count wins: %w", err)
	}
	defer rows.Close()

	counts := make(map[core.PlayerID]int)
	for rows.Next() {
		var winner, n int
		if err := rows.Scan(&winner, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts[core.PlayerID(winner)] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRound(row rowScanner) (*RoundRecord, error) {
	var r RoundRecord
	var winner int
	var createdAt any

	if err := row.Scan(
		&r.ID,
		&r.GameID,
		&winner,
		&r.Claimed1,
		&r.Claimed2,
		&r.CollisionX,
		&r.CollisionY,
		&r.Duration,
		&createdAt,
	); err != nil {
		return nil, err
	}

	r.Winner = core.PlayerID(winner)
	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
