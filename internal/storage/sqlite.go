// Package storage persists finished tic-tac-toe rounds in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

// DefaultPath is where the CLI keeps its database.
const DefaultPath = "~/.tictactoe/results.db"

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite connection.
type Store struct {
	db *sql.DB
}

// Result is one finished round.
type Result struct {
	ID         int64
	RoundID    string
	GameID     string
	Mode       string
	Difficulty string // empty for two-player rounds
	Winner     string // "X", "O" or empty for a draw
	Moves      int
	CreatedAt  time.Time
}

// IsDraw reports whether the round ended without a winner.
func (r Result) IsDraw() bool { return r.Winner == "" }

// ResultFromOutcome converts a game outcome into a Result with a fresh round ID.
func ResultFromOutcome(out core.Outcome) Result {
	return Result{
		RoundID:    uuid.NewString(),
		GameID:     out.GameID,
		Mode:       out.Mode,
		Difficulty: out.Difficulty,
		Winner:     out.Winner,
		Moves:      out.Moves,
	}
}

// Tally aggregates results.
type Tally struct {
	XWins int
	OWins int
	Draws int
}

// Total returns the number of rounds counted.
func (t Tally) Total() int { return t.XWins + t.OWins + t.Draws }

// TallyRow is a tally for one mode and difficulty.
type TallyRow struct {
	Mode       string
	Difficulty string
	Tally
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if strings.HasPrefix(dbPath, "~") {
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			mode TEXT NOT NULL,
			difficulty TEXT NOT NULL DEFAULT '',
			winner TEXT NOT NULL DEFAULT '',
			moves INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_game_id ON results(game_id);
		CREATE INDEX IF NOT EXISTS idx_results_filter ON results(game_id, mode, difficulty);
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

// SaveResult records a finished round and returns its row ID.
// An empty RoundID is filled with a new UUID.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.RoundID == "" {
		r.RoundID = uuid.NewString()
	}
	if r.Winner != "" && r.Winner != "X" && r.Winner != "O" {
		return 0, fmt.Errorf("storage: invalid winner %q", r.Winner)
	}

	result, err := s.db.Exec(
		`INSERT INTO results (round_id, game_id, mode, difficulty, winner, moves)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.RoundID, r.GameID, r.Mode, r.Difficulty, r.Winner, r.Moves,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentResults returns the latest results, newest first.
// An empty gameID returns results for every game.
func (s *Store) RecentResults(gameID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, round_id, game_id, mode, difficulty, winner, moves, created_at
		 FROM results
		 WHERE (? = '' OR game_id = ?)
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RoundID, &r.GameID, &r.Mode, &r.Difficulty, &r.Winner, &r.Moves, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// ResultByRound looks a result up by its round ID.
func (s *Store) ResultByRound(roundID string) (*Result, error) {
	var r Result
	var createdAt any
	err := s.db.QueryRow(
		`SELECT id, round_id, game_id, mode, difficulty, winner, moves, created_at
		 FROM results WHERE round_id = ?`,
		roundID,
	).Scan(&r.ID, &r.RoundID, &r.GameID, &r.Mode, &r.Difficulty, &r.Winner, &r.Moves, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query round %s: %w", roundID, err)
	}
	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

// Tally counts X wins, O wins and draws. Empty filters match everything.
func (s *Store) Tally(gameID, mode, difficulty string) (Tally, error) {
	var t Tally
	err := s.db.QueryRow(
		`SELECT
			COALESCE(SUM(CASE WHEN winner = 'X' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN winner = 'O' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN winner = '' THEN 1 ELSE 0 END), 0)
		 FROM results
		 WHERE (? = '' OR game_id = ?)
		   AND (? = '' OR mode = ?)
		   AND (? = '' OR difficulty = ?)`,
		gameID, gameID, mode, mode, difficulty, difficulty,
	).Scan(&t.XWins, &t.OWins, &t.Draws)
	if err != nil {
		return Tally{}, fmt.Errorf("storage: cannot query tally: %w", err)
	}
	return t, nil
}

// Tallies returns one tally per mode and difficulty, ordered by mode then difficulty.
func (s *Store) Tallies() ([]TallyRow, error) {
	rows, err := s.db.Query(
		`SELECT mode, difficulty,
			SUM(CASE WHEN winner = 'X' THEN 1 ELSE 0 END),
			SUM(CASE WHEN winner = 'O' THEN 1 ELSE 0 END),
			SUM(CASE WHEN winner = '' THEN 1 ELSE 0 END)
		 FROM results
		 GROUP BY mode, difficulty
		 ORDER BY mode, difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query tallies: %w", err)
	}
	defer rows.Close()

	var out []TallyRow
	for rows.Next() {
		var row TallyRow
		if err := rows.Scan(&row.Mode, &row.Difficulty, &row.XWins, &row.OWins, &row.Draws); err != nil {
			return nil, fmt.Errorf("storage: cannot scan tally row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// ClearResults deletes results for a game, or all results when gameID is empty.
func (s *Store) ClearResults(gameID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE (? = '' OR game_id = ?)", gameID, gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	Rounds     int
	Tally      Tally
	AvgMoves   float64
	LastPlayed time.Time
}

// Stats returns aggregated statistics per game.
func (s *Store) Stats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*),
			SUM(CASE WHEN winner = 'X' THEN 1 ELSE 0 END),
			SUM(CASE WHEN winner = 'O' THEN 1 ELSE 0 END),
			SUM(CASE WHEN winner = '' THEN 1 ELSE 0 END),
			AVG(moves), MAX(created_at)
		 FROM results
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var lastPlayed any
		if err := rows.Scan(&gs.GameID, &gs.Rounds, &gs.Tally.XWins, &gs.Tally.OWins, &gs.Tally.Draws, &gs.AvgMoves, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTime(lastPlayed)
		stats[gs.GameID] = &gs
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// parseTime handles both time.Time and text timestamps from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
