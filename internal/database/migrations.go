package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

func (db *DB) migrate() error {
	log.Info().Msg("running database migrations")

	migrations := []string{
		db.migrationLookups(),
	}

	for i, m := range migrations {
		if _, err := db.conn.Exec(m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_lookups_created_at ON lookups(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_lookups_kind ON lookups(kind)",
	}
	for _, idx := range indexes {
		if _, err := db.conn.Exec(idx); err != nil {
			return fmt.Errorf("index creation: %w", err)
		}
	}

	log.Info().Msg("migrations complete")
	return nil
}

func (db *DB) migrationLookups() string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS lookups (
		id %s,
		kind TEXT NOT NULL,
		input TEXT NOT NULL,
		context TEXT NOT NULL DEFAULT '',
		model TEXT NOT NULL,
		output TEXT NOT NULL,
		created_at %s NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`, db.autoIncrement(), db.timestampType())
}

// autoIncrement returns the correct auto-increment syntax
func (db *DB) autoIncrement() string {
	if db.driver == "postgres" {
		return "BIGSERIAL PRIMARY KEY"
	}
	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}

// timestampType returns the correct timestamp type
func (db *DB) timestampType() string {
	if db.driver == "postgres" {
		return "TIMESTAMPTZ"
	}
	return "DATETIME"
}
