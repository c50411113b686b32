package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	httpserver "github.com/fairyhunter13/brainstore/internal/adapter/httpserver"
)

// DB is the minimal pool surface the readiness checks need.
type DB interface {
	Ping(ctx context.Context) error
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BuildReadinessChecks returns the db connectivity check and the schema check,
// which fails until the brain tables have been migrated.
func BuildReadinessChecks(pool DB) []httpserver.Check {
	dbCheck := func(ctx context.Context) error { return pool.Ping(ctx) }
	schemaCheck := func(ctx context.Context) error {
		var missing []string
		if err := pool.QueryRow(ctx, `SELECT array_remove(ARRAY[
			CASE WHEN to_regclass('public.brains') IS NULL THEN 'brains' END,
			CASE WHEN to_regclass('public.brains_users') IS NULL THEN 'brains_users' END,
			CASE WHEN to_regclass('public.brains_vectors') IS NULL THEN 'brains_vectors' END,
			CASE WHEN to_regclass('public.vectors') IS NULL THEN 'vectors' END
		], NULL)`).Scan(&missing); err != nil {
			return fmt.Errorf("schema probe: %w", err)
		}
		if len(missing) > 0 {
			return fmt.Errorf("missing tables: %v", missing)
		}
		return nil
	}
	return []httpserver.Check{{Name: "db", Fn: dbCheck}, {Name: "schema", Fn: schemaCheck}}
}
