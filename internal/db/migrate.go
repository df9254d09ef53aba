package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations is the ordered, idempotent list of schema statements. Each
// statement must be safe to re-run against an already-migrated database.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS time_entries (
		id         TEXT PRIMARY KEY,
		owner_id   TEXT NOT NULL,
		title      TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time   TEXT,
		tags       TEXT NOT NULL DEFAULT '[]',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	// Range scans for the week view are always owner-scoped.
	`CREATE INDEX IF NOT EXISTS idx_time_entries_owner_start
		ON time_entries(owner_id, start_time)`,

	// The single-active-entry invariant: at most one row per owner with no
	// end time. The engine treats a violation here as the authoritative
	// conflict signal.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_time_entries_one_active
		ON time_entries(owner_id) WHERE end_time IS NULL`,

	// Import dedup lookups match on owner + title + start instant.
	`CREATE INDEX IF NOT EXISTS idx_time_entries_owner_title_start
		ON time_entries(owner_id, title, start_time)`,

	`CREATE TABLE IF NOT EXISTS user_preferences (
		owner_id      TEXT PRIMARY KEY,
		timezone      TEXT NOT NULL DEFAULT 'UTC',
		start_of_week INTEGER NOT NULL DEFAULT 1,
		locale        TEXT NOT NULL DEFAULT 'en-US',
		updated_at    TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
