// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/superngon/internal/ngon"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry represents a single stored run.
type RunEntry struct {
	ID         int64
	RunID      string
	Mode       string
	Sides      int
	Elapsed    time.Duration
	Ticks      uint64
	Reason     string
	NewRecord  bool
	FinishedAt time.Time
}

// ModeStats contains aggregated statistics for a game mode.
type ModeStats struct {
	Mode       string
	RunsCount  int
	BestTime   time.Duration
	AvgTime    time.Duration
	TotalTime  time.Duration
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			mode TEXT NOT NULL,
			sides INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			reason TEXT NOT NULL,
			new_record INTEGER NOT NULL DEFAULT 0,
			finished_at INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(mode, elapsed_ms DESC);
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

// SaveRun records a finished run. A run without an ID gets a fresh UUID.
func (s *Store) SaveRun(ctx context.Context, r ngon.RunResult) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (run_id, mode, sides, elapsed_ms, ticks, reason, new_record, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.Mode,
		r.Sides,
		r.Elapsed.Milliseconds(),
		int64(r.Ticks),
		string(r.Reason),
		r.NewRecord,
		r.FinishedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save run: %w", err)
	}
	return nil
}

// Ensure Store can persist runs and seed records for the engine.
var (
	_ ngon.ResultSaver  = (*Store)(nil)
	_ ngon.RecordSource = (*Store)(nil)
)

// BestTime returns the longest run for the given mode.
// Returns 0 if no runs exist.
func (s *Store) BestTime(ctx context.Context, mode string) (time.Duration, error) {
	var ms sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		"SELECT MAX(elapsed_ms) FROM runs WHERE mode = ?",
		mode,
	).Scan(&ms)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best time: %w", err)
	}

	if !ms.Valid {
		return 0, nil
	}
	return time.Duration(ms.Int64) * time.Millisecond, nil
}

// TopRuns retrieves the N longest runs for the given mode.
func (s *Store) TopRuns(mode string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryRuns(
		`SELECT id, run_id, mode, sides, elapsed_ms, ticks, reason, new_record, finished_at
		 FROM runs
		 WHERE mode = ?
		 ORDER BY elapsed_ms DESC, finished_at ASC
		 LIMIT ?`,
		mode, limit,
	)
}

// RecentRuns retrieves the most recent runs across all modes.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.queryRuns(
		`SELECT id, run_id, mode, sides, elapsed_ms, ticks, reason, new_record, finished_at
		 FROM runs
		 ORDER BY finished_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var elapsedMS, ticks, finishedMS int64
		if err := rows.Scan(&e.ID, &e.RunID, &e.Mode, &e.Sides, &elapsedMS, &ticks, &e.Reason, &e.NewRecord, &finishedMS); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		e.Ticks = uint64(ticks)
		e.FinishedAt = time.UnixMilli(finishedMS)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearRuns deletes all runs for the given mode.
func (s *Store) ClearRuns(mode string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// GetModeStats retrieves aggregated statistics for a specific mode.
func (s *Store) GetModeStats(mode string) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}

	var best, total int64
	var avg float64
	var last sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(elapsed_ms), 0), COALESCE(AVG(elapsed_ms), 0),
		        COALESCE(SUM(elapsed_ms), 0), MAX(finished_at)
		 FROM runs WHERE mode = ?`,
		mode,
	).Scan(&stats.RunsCount, &best, &avg, &total, &last)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}

	stats.BestTime = time.Duration(best) * time.Millisecond
	stats.AvgTime = time.Duration(avg * float64(time.Millisecond))
	stats.TotalTime = time.Duration(total) * time.Millisecond
	if last.Valid {
		stats.LastPlayed = time.UnixMilli(last.Int64)
	}

	return stats, nil
}

// GetAllModeStats retrieves statistics for every mode that has been played.
func (s *Store) GetAllModeStats() (map[string]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*), MAX(elapsed_ms), AVG(elapsed_ms), SUM(elapsed_ms), MAX(finished_at)
		 FROM runs
		 GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all mode stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ModeStats)
	for rows.Next() {
		var ms ModeStats
		var best, total, last int64
		var avg float64
		if err := rows.Scan(&ms.Mode, &ms.RunsCount, &best, &avg, &total, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ms.BestTime = time.Duration(best) * time.Millisecond
		ms.AvgTime = time.Duration(avg * float64(time.Millisecond))
		ms.TotalTime = time.Duration(total) * time.Millisecond
		ms.LastPlayed = time.UnixMilli(last)

		stats[ms.Mode] = &ms
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
