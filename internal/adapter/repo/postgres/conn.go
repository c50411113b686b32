// Package postgres provides PostgreSQL adapters for brains, their user
// memberships and their vector references.
//
// All queries are plain SQL through pgx; every repository method is one
// round trip except DeleteFileFromBrain, which runs in a transaction.
package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cenkalti/backoff/v4"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fairyhunter13/brainstore/internal/config"
)

// PgxPool is a minimal subset of pgxpool used by the repos for easy testing.
// *pgxpool.Pool and pgxmock pools both satisfy it.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// NewPool creates a pgx connection pool from cfg. Queries are traced with otelpgx.
func NewPool(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.DBURL)
	if err != nil {
		return nil, fmt.Errorf("op=pool.parse: %w", err)
	}
	if cfg.DBMaxConns > 0 {
		pcfg.MaxConns = cfg.DBMaxConns
	}
	if cfg.DBMaxConnIdleTime > 0 {
		pcfg.MaxConnIdleTime = cfg.DBMaxConnIdleTime
	}
	pcfg.ConnConfig.Tracer = otelpgx.NewTracer()
	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("op=pool.new: %w", err)
	}
	return pool, nil
}

// Connect builds the pool and pings it with exponential backoff until the
// database answers or the configured connect timeout elapses.
func Connect(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	pool, err := NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	rc := cfg.GetConnectRetryConfig()
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = rc.InitialInterval
	expo.MaxInterval = rc.MaxInterval
	expo.MaxElapsedTime = rc.MaxElapsedTime

	attempt := 0
	op := func() error {
		attempt++
		if err := pool.Ping(ctx); err != nil {
			slog.Warn("database not ready", slog.Int("attempt", attempt), slog.Any("error", err))
			return err
		}
		return nil
	}
	if err := backoff.Retry(op, backoff.WithContext(expo, ctx)); err != nil {
		pool.Close()
		return nil, fmt.Errorf("op=pool.connect: %w", err)
	}
	slog.Info("database connected", slog.Int("attempts", attempt))
	return pool, nil
}
