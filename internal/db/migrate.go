package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the schema. Statements are idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// pos records insertion order; id is the user-facing project identifier.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		pos          INTEGER PRIMARY KEY AUTOINCREMENT,
		id           INTEGER NOT NULL UNIQUE CHECK(id > 0),
		title        TEXT NOT NULL DEFAULT '',
		description  TEXT NOT NULL DEFAULT '',
		objectives   TEXT NOT NULL DEFAULT '',
		owner        TEXT NOT NULL DEFAULT '',
		area         TEXT NOT NULL DEFAULT '',
		start_date   TEXT NOT NULL DEFAULT '',
		end_date     TEXT NOT NULL DEFAULT '',
		status       TEXT NOT NULL DEFAULT 'planned',
		progress     INTEGER NOT NULL DEFAULT 0 CHECK(progress BETWEEN 0 AND 100),
		funding      TEXT NOT NULL DEFAULT '',
		results      TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_status ON projects(status)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_area ON projects(area)`,
}
