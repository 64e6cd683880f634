// Package storage keeps the run journal behind the History screen.
// Uses the pure-Go modernc.org/sqlite driver with an in-memory database,
// so the journal lives exactly as long as the session that opened it.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-trainer/internal/core"
)

// Store manages the in-memory SQLite journal of completed runs.
type Store struct {
	db *sql.DB
}

// Run is a single completed activity run.
type Run struct {
	ID        int64
	GameID    string
	Value     float64
	Unit      string
	Samples   int
	Detail    string
	CreatedAt time.Time
}

// LowerIsBetter reports whether smaller values of this unit are better.
func LowerIsBetter(unit string) bool {
	return unit == "ms"
}

// OpenMemory creates an empty journal and runs migrations.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			value REAL NOT NULL,
			unit TEXT NOT NULL,
			samples INTEGER NOT NULL DEFAULT 0,
			detail TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
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

// RecordRun appends a completed run.
// Returns the ID of the inserted record.
func (s *Store) RecordRun(r core.Result, at time.Time) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (game_id, value, unit, samples, detail, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Value, r.Unit, r.Samples, r.Detail, at.UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, value, unit, samples, detail, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt int64
		if err := rows.Scan(&r.ID, &r.GameID, &r.Value, &r.Unit, &r.Samples, &r.Detail, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = time.Unix(0, createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// GameStats contains aggregated statistics for an activity.
type GameStats struct {
	GameID     string
	Unit       string
	RunsCount  int
	Best       float64 // Lowest for "ms", highest otherwise
	Average    float64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for one activity.
// Returns nil if the activity has no runs.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	var gs GameStats
	var unit sql.NullString
	var lo, hi, avg sql.NullFloat64
	var lastPlayed sql.NullInt64

	err := s.db.QueryRow(
		`SELECT COUNT(*), MAX(unit), MIN(value), MAX(value), AVG(value), MAX(created_at)
		 FROM runs
		 WHERE game_id = ?`,
		gameID,
	).Scan(&gs.RunsCount, &unit, &lo, &hi, &avg, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	if gs.RunsCount == 0 {
		return nil, nil
	}

	gs.GameID = gameID
	gs.Unit = unit.String
	gs.Average = avg.Float64
	gs.Best = hi.Float64
	if LowerIsBetter(gs.Unit) {
		gs.Best = lo.Float64
	}
	gs.LastPlayed = time.Unix(0, lastPlayed.Int64)
	return &gs, nil
}

// ClearRuns deletes every run of the given activity.
func (s *Store) ClearRuns(gameID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
