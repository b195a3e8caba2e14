package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// Schema is the reference-rate table read by RateRepository
// Rows are maintained by the treasury import job, this service never writes them
const Schema = `
CREATE TABLE IF NOT EXISTS exchange_rates (
	id              UUID PRIMARY KEY,
	source_currency CHAR(3)        NOT NULL,
	target_currency CHAR(3)        NOT NULL,
	rate            NUMERIC(20, 8) NOT NULL CHECK (rate > 0),
	effective_at    TIMESTAMPTZ    NOT NULL
);
CREATE INDEX IF NOT EXISTS exchange_rates_pair_idx
	ON exchange_rates (source_currency, target_currency, effective_at DESC);
`

// DB wraps the database connection
type DB struct {
	*sql.DB
}

// NewDB opens a pooled connection and pings it within the context deadline
// connectionString should be in the format: "host=localhost port=5432 user=postgres password=postgres dbname=remitflow sslmode=disable"
func NewDB(ctx context.Context, connectionString string) (*DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// Read-only lookups, a small pool is plenty
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

// EnsureSchema creates the exchange_rates table and its index when missing
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}
