package database

import (
	"fmt"
	"strings"

	"soclicker/internal/log"
)

// Migration represents a database migration
type Migration struct {
	ID          int
	Description string
	SQL         string
}

// migrations contains all database migrations in order
var migrations = []Migration{
	{
		ID:          1,
		Description: "Sessions table",
		SQL: `
CREATE TABLE IF NOT EXISTS sessions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at INTEGER NOT NULL,
	ended_at INTEGER,
	clicks INTEGER NOT NULL DEFAULT 0,
	ticks INTEGER NOT NULL DEFAULT 0,
	earned INTEGER NOT NULL DEFAULT 0
);`,
	},
	{
		ID:          2,
		Description: "Purchases table",
		SQL: `
CREATE TABLE IF NOT EXISTS purchases (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id INTEGER NOT NULL REFERENCES sessions(id),
	upgrade TEXT NOT NULL,
	cost INTEGER NOT NULL,
	purchased_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_purchases_upgrade ON purchases(upgrade);`,
	},
}

// runMigrations executes all pending migrations
func (l *Ledger) runMigrations() error {
	if _, err := l.db.Exec(`
	CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	current, err := l.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.ID <= current {
			continue
		}
		log.Debug("applying ledger migration", "id", migration.ID, "description", migration.Description)
		if err := l.applyMigration(migration); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", migration.ID, err)
		}
	}
	return nil
}

// SchemaVersion returns the highest applied migration
func (l *Ledger) SchemaVersion() (int, error) {
	var version int
	err := l.db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_version;`).Scan(&version)
	return version, err
}

// applyMigration applies a single migration inside a transaction
func (l *Ledger) applyMigration(migration Migration) error {
	tx, err := l.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range strings.Split(migration.SQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute migration statement: %w", err)
		}
	}

	if _, err := tx.Exec(`INSERT INTO schema_version (version) VALUES (?);`, migration.ID); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}
	return tx.Commit()
}
