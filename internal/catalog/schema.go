package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// SchemaVersion is the current schema version.
const SchemaVersion = 1

// schemaV1 is the initial schema for the run catalog.
const schemaV1 = `
-- One row per completed analysis run
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    mode TEXT NOT NULL,               -- 'landscape', 'evolution', 'viability', 'reseed'
    source TEXT NOT NULL,             -- ingested input file
    rows_total INTEGER NOT NULL,
    rows_kept INTEGER NOT NULL,       -- after the generation filter
    target_generation INTEGER NOT NULL,
    best_fitness REAL NOT NULL,
    elite_size INTEGER NOT NULL,
    artifact TEXT,                    -- exported genome/report path
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);

CREATE TABLE IF NOT EXISTS schema_info (
    version INTEGER NOT NULL
);
`

// InitSchema creates the catalog schema if it does not exist and stamps
// the schema version.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaV1); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_info`).Scan(&count); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if count == 0 {
		if _, err := db.ExecContext(ctx, `INSERT INTO schema_info (version) VALUES (?)`, SchemaVersion); err != nil {
			return fmt.Errorf("failed to stamp schema version: %w", err)
		}
	}
	return nil
}
