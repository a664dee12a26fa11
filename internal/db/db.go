package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// MemoryDSN is the data source name of a private in-memory database.
const MemoryDSN = ":memory:"

// OpenDB opens an in-memory SQLite database and applies the schema.
//
// Each connection to ":memory:" is its own database, so the pool is pinned to
// a single connection that lives as long as the *sql.DB. Nothing is written to
// disk; the data disappears when the database is closed.
func OpenDB() (*sql.DB, error) {
	db, err := sql.Open("sqlite", MemoryDSN)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}
