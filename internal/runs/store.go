package runs

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Run is one recorded segmentation run.
type Run struct {
	ID            string
	CreatedAt     time.Time
	InputPath     string
	SRTPath       string
	CueCount      int
	TotalDuration float64
	Status        string
	Detail        string
}

// Run statuses.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Store manages run persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the run ledger at dbPath. The ledger is
// guarded by a sibling lock file so concurrent invocations do not interleave
// writes.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("ensure ledger directory: %w", err)
	}

	lock := flock.New(dbPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire ledger lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("run ledger %s is in use by another process", dbPath)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, lock: lock}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}
	return store, nil
}

// Close releases the database connection and the ledger lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var dbErr error
	if s.db != nil {
		dbErr = s.db.Close()
	}
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); unlockErr != nil && dbErr == nil {
			dbErr = unlockErr
		}
	}
	return dbErr
}

func (s *Store) applyMigrations(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    created_at TEXT NOT NULL,
    input_path TEXT NOT NULL,
    srt_path TEXT NOT NULL,
    cue_count INTEGER NOT NULL,
    total_duration REAL NOT NULL,
    status TEXT NOT NULL,
    detail TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs (created_at);
`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Record inserts a run and returns it with its generated ID and timestamp.
func (s *Store) Record(ctx context.Context, run Run) (Run, error) {
	run.ID = uuid.NewString()
	run.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, input_path, srt_path, cue_count, total_duration, status, detail)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.CreatedAt.Format(time.RFC3339Nano),
		run.InputPath,
		run.SRTPath,
		run.CueCount,
		run.TotalDuration,
		run.Status,
		run.Detail,
	)
	if err != nil {
		return Run{}, fmt.Errorf("record run: %w", err)
	}
	return run, nil
}

// List returns the most recent runs, newest first, up to limit. A limit of
// zero or less means no cap.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, created_at, input_path, srt_path, cue_count, total_duration, status, detail
              FROM runs ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var run Run
		var createdAt string
		if err := rows.Scan(&run.ID, &createdAt, &run.InputPath, &run.SRTPath,
			&run.CueCount, &run.TotalDuration, &run.Status, &run.Detail); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse run timestamp %q: %w", createdAt, err)
		}
		out = append(out, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return out, nil
}
