// Package db provides PostgreSQL persistence for generated mood reports.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Common errors.
var (
	ErrNotFound = errors.New("not found")
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// New creates a new database connection pool.
func New(ctx context.Context, databaseURL string) (*DB, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the database connection pool.
func (db *DB) Close() {
	db.pool.Close()
}

// Pool returns the underlying connection pool for advanced operations.
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

// Reports returns a ReportRepository.
func (db *DB) Reports() *ReportRepository {
	return &ReportRepository{pool: db.pool}
}

// schema is applied at startup; statements are idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS reports (
	id               UUID PRIMARY KEY,
	user_name        TEXT NOT NULL,
	dominant_mood    TEXT NOT NULL,
	mood_counts      JSONB NOT NULL,
	mood_percentages JSONB NOT NULL,
	suggestions      TEXT[] NOT NULL,
	cluster_outcome  TEXT NOT NULL,
	narrative        TEXT,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS reports_user_name_created_at_idx
	ON reports (user_name, created_at DESC);
`

// Migrate creates the schema if it does not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}
	return nil
}
