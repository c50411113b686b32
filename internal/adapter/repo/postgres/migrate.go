package postgres

import (
	"context"
	"fmt"
)

// Schema statements. brains_users and brains_vectors reference brains
// without ON DELETE CASCADE: callers delete join rows before the brain.
var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS vector`,
	`CREATE TABLE IF NOT EXISTS brains (
		brain_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'private',
		model TEXT,
		max_tokens INTEGER,
		temperature DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS brains_users (
		brain_id UUID NOT NULL REFERENCES brains (brain_id),
		user_id UUID NOT NULL,
		rights TEXT NOT NULL,
		default_brain BOOLEAN NOT NULL DEFAULT false,
		PRIMARY KEY (brain_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS vectors (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		content TEXT NOT NULL DEFAULT '',
		metadata JSONB NOT NULL DEFAULT '{}'::jsonb,
		embedding vector,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS brains_vectors (
		brain_id UUID NOT NULL REFERENCES brains (brain_id),
		vector_id UUID NOT NULL REFERENCES vectors (id),
		file_sha1 TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (brain_id, vector_id)
	)`,
	`CREATE INDEX IF NOT EXISTS brains_users_user_id_idx ON brains_users (user_id)`,
	`CREATE INDEX IF NOT EXISTS brains_vectors_vector_id_idx ON brains_vectors (vector_id)`,
	`CREATE INDEX IF NOT EXISTS vectors_file_sha1_idx ON vectors ((metadata->>'file_sha1'))`,
	`CREATE INDEX IF NOT EXISTS vectors_file_name_idx ON vectors ((metadata->>'file_name'))`,
}

// Migrate creates the extension, tables and indexes. It is idempotent.
func Migrate(ctx context.Context, pool PgxPool) error {
	for i, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("op=schema.migrate step=%d: %w", i, err)
		}
	}
	return nil
}
