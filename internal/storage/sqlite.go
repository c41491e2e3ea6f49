// Package storage persists high scores and headless simulation runs in SQLite.
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
)

// ErrRunNotFound is returned by RunByID when no run has the given ID.
var ErrRunNotFound = errors.New("storage: run not found")

const sqliteTimeLayout = "2006-01-02 15:04:05"

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

// Run is the outcome of one headless simulation.
type Run struct {
	ID           string // UUID assigned by SaveRun when empty
	Level        string
	Ticks        int
	Seed         int64
	Score        int
	LasersFired  int
	Splits       int
	Reflections  int
	SnapshotHash uint64
	CreatedAt    time.Time
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

		CREATE TABLE IF NOT EXISTS sim_runs (
			id TEXT PRIMARY KEY,
			level TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			lasers_fired INTEGER NOT NULL DEFAULT 0,
			splits INTEGER NOT NULL DEFAULT 0,
			reflections INTEGER NOT NULL DEFAULT 0,
			snapshot_hash TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sim_runs_created ON sim_runs(created_at DESC);
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

// parseTimestamp handles both driver-native times and SQLite text timestamps.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
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
		e.CreatedAt = parseTimestamp(createdAt)
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

// SaveRun records a simulation run and returns its ID.
// A new UUID is generated when run.ID is empty.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	} else if _, err := uuid.Parse(run.ID); err != nil {
		return "", fmt.Errorf("storage: invalid run id %q: %w", run.ID, err)
	}

	_, err := s.db.Exec(
		`INSERT INTO sim_runs
		 (id, level, ticks, seed, score, lasers_fired, splits, reflections, snapshot_hash)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Level,
		run.Ticks,
		run.Seed,
		run.Score,
		run.LasersFired,
		run.Splits,
		run.Reflections,
		// SQLite integers are signed; the hash is stored as fixed-width hex
		fmt.Sprintf("%016x", run.SnapshotHash),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.ID, nil
}

const runColumns = `id, level, ticks, seed, score, lasers_fired, splits, reflections, snapshot_hash, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var run Run
	var hash string
	var createdAt any
	if err := row.Scan(
		&run.ID,
		&run.Level,
		&run.Ticks,
		&run.Seed,
		&run.Score,
		&run.LasersFired,
		&run.Splits,
		&run.Reflections,
		&hash,
		&createdAt,
	); err != nil {
		return Run{}, err
	}
	if _, err := fmt.Sscanf(hash, "%x", &run.SnapshotHash); err != nil {
		return Run{}, fmt.Errorf("storage: corrupt snapshot hash %q: %w", hash, err)
	}
	run.CreatedAt = parseTimestamp(createdAt)
	return run, nil
}

// RunByID retrieves a simulation run. Returns ErrRunNotFound if there is none.
func (s *Store) RunByID(id string) (Run, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM sim_runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return run, nil
}

// RecentRuns retrieves the most recent simulation runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM sim_runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}
