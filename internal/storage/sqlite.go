// Package storage provides SQLite-based persistence for finished solves.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Games in progress are never stored.
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
)

// Store manages the SQLite database connection for solve persistence.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// SolveResult is one finished solve.
type SolveResult struct {
	ID           string
	GameID       string
	Moves        int
	Elapsed      time.Duration
	ShuffleMoves int
	Scramble     string // scramble in cube notation, empty for free play
	CreatedAt    time.Time
}

// GameStats contains aggregated statistics for a game mode.
type GameStats struct {
	GameID     string
	Solves     int
	BestMoves  int
	BestTime   time.Duration
	AvgMoves   float64
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

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS solves (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			moves INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			shuffle_moves INTEGER NOT NULL DEFAULT 0,
			scramble TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_solves_game_id ON solves(game_id);
		CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(game_id, moves, elapsed_ms);
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

// SaveSolve records a finished solve and returns its generated ID.
// ID and CreatedAt on r are ignored.
func (s *Store) SaveSolve(r SolveResult) (string, error) {
	if r.GameID == "" {
		return "", errors.New("storage: cannot save solve: empty game id")
	}

	id := uuid.New().String()
	createdAt := s.now().UTC()

	_, err := s.db.Exec(
		`INSERT INTO solves (id, game_id, moves, elapsed_ms, shuffle_moves, scramble, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, r.GameID, r.Moves, r.Elapsed.Milliseconds(), r.ShuffleMoves, r.Scramble,
		createdAt.Format(timestampLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save solve: %w", err)
	}

	return id, nil
}

// timestampLayout has a fixed width so that created_at sorts as text.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

const solveColumns = `id, game_id, moves, elapsed_ms, shuffle_moves, scramble, created_at`

// BestSolves retrieves the best N solves for the given game.
// Fewer moves rank first; ties go to the faster, then the earlier solve.
func (s *Store) BestSolves(gameID string, limit int) ([]SolveResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+solveColumns+`
		 FROM solves
		 WHERE game_id = ?
		 ORDER BY moves ASC, elapsed_ms ASC, created_at ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var results []SolveResult
	for rows.Next() {
		r, err := scanSolve(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// BestSolve returns the best solve for the given game, or nil if there is none.
func (s *Store) BestSolve(gameID string) (*SolveResult, error) {
	row := s.db.QueryRow(
		`SELECT `+solveColumns+`
		 FROM solves
		 WHERE game_id = ?
		 ORDER BY moves ASC, elapsed_ms ASC, created_at ASC
		 LIMIT 1`,
		gameID,
	)

	r, err := scanSolve(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ClearSolves deletes all solves for the given game.
func (s *Store) ClearSolves(gameID string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var bestMs int64
	var lastPlayed sql.NullString
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(moves), 0), COALESCE(MIN(elapsed_ms), 0),
		        COALESCE(AVG(moves), 0), MAX(created_at)
		 FROM solves WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Solves, &stats.BestMoves, &bestMs, &stats.AvgMoves, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	stats.BestTime = time.Duration(bestMs) * time.Millisecond
	if lastPlayed.Valid {
		stats.LastPlayed = parseTimestamp(lastPlayed.String)
	}

	return stats, nil
}

// GetAllGamesStats retrieves statistics for all games that have solves.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MIN(moves), MIN(elapsed_ms), AVG(moves), MAX(created_at)
		 FROM solves
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var st GameStats
		var bestMs int64
		var lastPlayed string
		if err := rows.Scan(&st.GameID, &st.Solves, &st.BestMoves, &bestMs, &st.AvgMoves, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.BestTime = time.Duration(bestMs) * time.Millisecond
		st.LastPlayed = parseTimestamp(lastPlayed)
		stats[st.GameID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSolve(row scanner) (SolveResult, error) {
	var r SolveResult
	var elapsedMs int64
	var createdAt string
	err := row.Scan(&r.ID, &r.GameID, &r.Moves, &elapsedMs, &r.ShuffleMoves, &r.Scramble, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	r.Elapsed = time.Duration(elapsedMs) * time.Millisecond
	r.CreatedAt = parseTimestamp(createdAt)
	return r, nil
}

// parseTimestamp reads a stored created_at value. Unparseable values
// yield the zero time.
func parseTimestamp(v string) time.Time {
	for _, layout := range []string{timestampLayout, time.RFC3339Nano, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}
