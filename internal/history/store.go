package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"dupesweep/internal/fileutil"
	"dupesweep/internal/report"
)

// Store manages the run journal backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// RunInfo describes a run as it starts.
type RunInfo struct {
	ID        string
	Base      string
	Commit    bool
	Verify    bool
	Recursive bool
	Marker    string
	StartedAt time.Time
}

// Run is a journaled run as read back from the store.
type Run struct {
	RunInfo
	FinishedAt  time.Time
	Directories int
	Sets        int
	Duplicates  int
	Removed     int
	Missing     int
	Error       string
}

// Open initializes or connects to the journal database and applies migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure history directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
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
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// BeginRun inserts a run row.
func (s *Store) BeginRun(ctx context.Context, info RunInfo) error {
	started := info.StartedAt
	if started.IsZero() {
		started = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, base_path, commit_mode, verify, recursive, marker, started_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		info.ID, info.Base, info.Commit, info.Verify, info.Recursive, info.Marker,
		started.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// RecordRemoval appends one removal outcome to a run.
func (s *Store) RecordRemoval(ctx context.Context, runID, path string, outcome fileutil.RemoveOutcome) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO removals (run_id, path, outcome, recorded_at) VALUES (?, ?, ?, ?)`,
		runID, path, outcome.String(), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record removal of %s: %w", path, err)
	}
	return nil
}

// FinishRun stores the run totals and, when the run aborted, its error.
func (s *Store) FinishRun(ctx context.Context, summary report.Summary, runErr error) error {
	total := summary.Totals()
	var errText sql.NullString
	if runErr != nil {
		errText = sql.NullString{String: runErr.Error(), Valid: true}
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE runs SET finished_at = ?, directories = ?, sets = ?, duplicates = ?,
             removed = ?, missing = ?, error = ?
         WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano),
		len(summary.Directories), total.Sets, total.Duplicates, total.Removed, total.Missing,
		errText, summary.RunID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, base_path, commit_mode, verify, recursive, marker, started_at,
                finished_at, directories, sets, duplicates, removed, missing, error
         FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run      Run
			started  string
			finished sql.NullString
			errText  sql.NullString
		)
		if err := rows.Scan(
			&run.ID, &run.Base, &run.Commit, &run.Verify, &run.Recursive, &run.Marker, &started,
			&finished, &run.Directories, &run.Sets, &run.Duplicates, &run.Removed, &run.Missing, &errText,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.StartedAt = parseTime(started)
		if finished.Valid {
			run.FinishedAt = parseTime(finished.String)
		}
		run.Error = errText.String
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Removal is one journaled removal attempt.
type Removal struct {
	Path    string
	Outcome string
}

// Removals returns the recorded outcomes of a run in insertion order.
func (s *Store) Removals(ctx context.Context, runID string) ([]Removal, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT path, outcome FROM removals WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("query removals: %w", err)
	}
	defer rows.Close()

	var removals []Removal
	for rows.Next() {
		var r Removal
		if err := rows.Scan(&r.Path, &r.Outcome); err != nil {
			return nil, fmt.Errorf("scan removal: %w", err)
		}
		removals = append(removals, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate removals: %w", err)
	}
	return removals, nil
}

// Journal binds the store to one run so it can be handed to the remover.
func (s *Store) Journal(runID string) *RunJournal {
	return &RunJournal{store: s, runID: runID}
}

// RunJournal records removals for a single run.
type RunJournal struct {
	store *Store
	runID string
}

func (j *RunJournal) RecordRemoval(ctx context.Context, path string, outcome fileutil.RemoveOutcome) error {
	return j.store.RecordRemoval(ctx, j.runID, path, outcome)
}

func parseTime(value string) time.Time {
	ts, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return ts
}
