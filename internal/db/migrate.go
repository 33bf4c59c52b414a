package db

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations are applied in order; the slice index plus one is the schema
// version recorded in schema_migrations. Append only.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id              TEXT PRIMARY KEY,
		number          INTEGER NOT NULL UNIQUE,
		name            TEXT NOT NULL,
		estimated_hours TEXT,
		actual_hours    TEXT,
		difficulty      INTEGER,
		notes           TEXT,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_projects_created_at ON projects(created_at)`,

	`CREATE TABLE IF NOT EXISTS project_sequence (
		id          INTEGER PRIMARY KEY CHECK (id = 1),
		next_number INTEGER NOT NULL
	)`,

	`INSERT OR IGNORE INTO project_sequence (id, next_number)
		SELECT 1, COALESCE(MAX(number), 0) + 1 FROM projects`,
}

// Migrate applies every migration newer than the recorded schema version.
// Each migration runs in its own transaction together with its version row.
func Migrate(db *sql.DB) error {
	ctx := context.Background()

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version    INTEGER PRIMARY KEY,
		applied_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
	)`); err != nil {
		return fmt.Errorf("creating schema_migrations: %w", err)
	}

	current, err := SchemaVersion(db)
	if err != nil {
		return err
	}

	uow := NewSQLiteUnitOfWork(db)
	for i := current; i < len(migrations); i++ {
		version := i + 1
		stmt := migrations[i]
		err := uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (?)`, version)
			return err
		})
		if err != nil {
			return fmt.Errorf("migration %d: %w", version, err)
		}
	}
	return nil
}

// SchemaVersion returns the highest applied migration version, 0 if none.
func SchemaVersion(db *sql.DB) (int, error) {
	var version int
	err := db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return version, nil
}

// LatestSchemaVersion is the version a fully migrated database reports.
func LatestSchemaVersion() int {
	return len(migrations)
}
