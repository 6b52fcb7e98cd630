// Package store is the persistence collaborator around the valuation
// engine: workspace calibration and versioned memo snapshots in Postgres.
// The engine packages never import store; data flows one direction only.
package store

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	pool *pgxpool.Pool
	once sync.Once
)

// InitDB opens the shared connection pool from DATABASE_URL and verifies the
// server is reachable. Safe to call more than once; only the first call
// connects.
func InitDB(ctx context.Context) error {
	var err error
	once.Do(func() {
		dbURL := os.Getenv("DATABASE_URL")
		if dbURL == "" {
			err = fmt.Errorf("DATABASE_URL environment variable not set")
			return
		}

		config, parseErr := pgxpool.ParseConfig(dbURL)
		if parseErr != nil {
			err = fmt.Errorf("failed to parse DATABASE_URL: %w", parseErr)
			return
		}

		p, connErr := pgxpool.NewWithConfig(ctx, config)
		if connErr != nil {
			err = fmt.Errorf("failed to open memo store pool: %w", connErr)
			return
		}
		if pingErr := p.Ping(ctx); pingErr != nil {
			p.Close()
			err = fmt.Errorf("memo store unreachable: %w", pingErr)
			return
		}
		pool = p
	})
	return err
}

// GetPool returns the shared pool, or nil when running compute-only.
func GetPool() *pgxpool.Pool {
	return pool
}

// Close releases the pool. Callers may defer it unconditionally.
func Close() {
	if pool != nil {
		pool.Close()
	}
}
