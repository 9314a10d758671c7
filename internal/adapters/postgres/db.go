package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samirrijal/fuelroute/internal/pkg/metrics"
)

// Pool sizing for the station catalog workload: reads dominate, writes only
// happen during ingestion.
const (
	maxConns        = 25
	minConns        = 2
	maxConnLifetime = 30 * time.Minute
	statInterval    = 15 * time.Second
)

// DB wraps a pgxpool.Pool shared by the station repository and the
// readiness check.
type DB struct {
	Pool *pgxpool.Pool

	stop chan struct{}
}

// New connects, verifies the connection with a ping, and starts the pool
// stats sampler feeding the prometheus gauges.
func New(ctx context.Context, dsn string) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.MaxConns = maxConns
	cfg.MinConns = minConns
	cfg.MaxConnLifetime = maxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	db := &DB{Pool: pool, stop: make(chan struct{})}
	go db.sampleStats()
	return db, nil
}

func (db *DB) sampleStats() {
	ticker := time.NewTicker(statInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			metrics.UpdateDBPoolMetrics(db.Pool.Stat())
		case <-db.stop:
			return
		}
	}
}

// Close stops the stats sampler and releases pool resources.
func (db *DB) Close() {
	close(db.stop)
	db.Pool.Close()
}
