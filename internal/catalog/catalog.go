// Package catalog persists a history of analysis runs to SQLite so
// reseed genomes and reports stay traceable to the run that produced
// them.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// Run is one completed analysis run.
type Run struct {
	ID               int64
	Mode             string
	Source           string
	RowsTotal        int
	RowsKept         int
	TargetGeneration int
	BestFitness      float64
	EliteSize        int
	Artifact         string
	CreatedAt        time.Time
}

// Store is a SQLite-backed run catalog.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the catalog database at dir/catalog.db.
func Open(dir string) (*Store, error) {
	dbPath := filepath.Join(dir, "catalog.db")

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}

	// SQLite works best with a single writer
	db.SetMaxOpenConns(1)

	if err := InitSchema(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize catalog schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// RecordRun inserts a run and returns its assigned ID.
func (s *Store) RecordRun(ctx context.Context, run Run) (int64, error) {
	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (mode, source, rows_total, rows_kept, target_generation,
		                  best_fitness, elite_size, artifact, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Mode, run.Source, run.RowsTotal, run.RowsKept, run.TargetGeneration,
		run.BestFitness, run.EliteSize, run.Artifact,
		createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read run id: %w", err)
	}
	return id, nil
}

// ListRuns returns the most recent runs, newest first. limit <= 0 means
// all runs.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `
		SELECT id, mode, source, rows_total, rows_kept, target_generation,
		       best_fitness, elite_size, artifact, created_at
		FROM runs ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt string
		if err := rows.Scan(&r.ID, &r.Mode, &r.Source, &r.RowsTotal, &r.RowsKept,
			&r.TargetGeneration, &r.BestFitness, &r.EliteSize, &r.Artifact, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			r.CreatedAt = ts
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
