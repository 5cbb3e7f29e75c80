// Package db provides PostgreSQL persistence for resume records.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the resumes table if it does not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS resumes (
			id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			file_name       TEXT NOT NULL,
			raw_text        TEXT,
			contact_info    JSONB,
			summary         TEXT,
			work_experience JSONB NOT NULL DEFAULT '[]',
			education       JSONB NOT NULL DEFAULT '[]',
			skills          JSONB,
			projects        JSONB NOT NULL DEFAULT '[]',
			certifications  JSONB NOT NULL DEFAULT '[]',
			awards          JSONB NOT NULL DEFAULT '[]',
			llm_analysis    JSONB,
			uploaded_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_resumes_uploaded_at ON resumes (uploaded_at DESC)`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
