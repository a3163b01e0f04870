// Package database provides the data access layer for lookup history.
// It supports SQLite for single-node deployments and PostgreSQL behind
// a DATABASE_URL, mirroring on either driver with the same queries.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"lexigate/internal/config"

	"github.com/rs/zerolog/log"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Lookup is one saved translate or define result.
type Lookup struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"` // "translate" or "define"
	Input     string    `json:"input"`
	Context   string    `json:"context,omitempty"`
	Model     string    `json:"model"`
	Output    string    `json:"output"`
	CreatedAt time.Time `json:"created_at"`
}

// DB provides the data access layer
type DB struct {
	conn   *sql.DB
	driver string
}

// New creates a new database connection based on config
func New(cfg *config.Config) (*DB, error) {
	var conn *sql.DB
	var err error

	switch cfg.DBDriver {
	case "sqlite":
		// Ensure directory exists
		dir := filepath.Dir(cfg.DBPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
		conn, err = sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL&_foreign_keys=on")
		if err != nil {
			return nil, fmt.Errorf("opening sqlite: %w", err)
		}
		// SQLite tuning
		conn.SetMaxOpenConns(1) // SQLite is single-writer
	case "postgres":
		if cfg.DBURL == "" {
			return nil, fmt.Errorf("DATABASE_URL required for postgres driver")
		}
		conn, err = sql.Open("pgx", cfg.DBURL)
		if err != nil {
			return nil, fmt.Errorf("opening postgres: %w", err)
		}
		conn.SetMaxOpenConns(10)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.DBDriver)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db := &DB{conn: conn, driver: cfg.DBDriver}

	if err := db.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	log.Info().Str("driver", cfg.DBDriver).Msg("database connected")
	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// --- Lookup History Operations ---

// SaveLookup stores a completed translate/define result and returns its ID.
func (db *DB) SaveLookup(ctx context.Context, l *Lookup) (int64, error) {
	query := `INSERT INTO lookups (kind, input, context, model, output) VALUES (?, ?, ?, ?, ?)`
	if db.driver == "postgres" {
		query = replacePlaceholders(query) + " RETURNING id"
		var id int64
		err := db.conn.QueryRowContext(ctx, query, l.Kind, l.Input, l.Context, l.Model, l.Output).Scan(&id)
		return id, err
	}

	result, err := db.conn.ExecContext(ctx, query, l.Kind, l.Input, l.Context, l.Model, l.Output)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetRecentLookups retrieves saved lookups, newest first.
func (db *DB) GetRecentLookups(ctx context.Context, limit int) ([]Lookup, error) {
	if limit <= 0 {
		limit = 50
	}

	query := fmt.Sprintf(`SELECT id, kind, input, context, model, output, created_at
		FROM lookups ORDER BY created_at DESC, id DESC LIMIT %d`, limit)

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []Lookup
	for rows.Next() {
		var l Lookup
		if err := rows.Scan(&l.ID, &l.Kind, &l.Input, &l.Context, &l.Model, &l.Output, &l.CreatedAt); err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}

// GetLookupCount returns the number of saved lookups.
func (db *DB) GetLookupCount(ctx context.Context) (int, error) {
	var count int
	err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM lookups").Scan(&count)
	return count, err
}

// DeleteLookup deletes a specific lookup by ID.
func (db *DB) DeleteLookup(ctx context.Context, id int64) error {
	query := `DELETE FROM lookups WHERE id = ?`
	if db.driver == "postgres" {
		query = replacePlaceholders(query)
	}
	_, err := db.conn.ExecContext(ctx, query, id)
	return err
}

// PruneLookups deletes lookups older than the retention window and
// returns how many rows were removed.
func (db *DB) PruneLookups(ctx context.Context, retentionDays int) (int64, error) {
	var query string
	if db.driver == "postgres" {
		query = fmt.Sprintf("DELETE FROM lookups WHERE created_at < NOW() - INTERVAL '%d days'", retentionDays)
	} else {
		query = fmt.Sprintf("DELETE FROM lookups WHERE created_at < datetime('now', '-%d days')", retentionDays)
	}

	result, err := db.conn.ExecContext(ctx, query)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// replacePlaceholders converts ? to $1, $2, etc. for PostgreSQL
func replacePlaceholders(query string) string {
	result := make([]byte, 0, len(query)+10)
	n := 1
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			result = append(result, '$')
			result = append(result, []byte(fmt.Sprintf("%d", n))...)
			n++
		} else {
			result = append(result, query[i])
		}
	}
	return string(result)
}
