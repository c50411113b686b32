package postgres

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pgvector/pgvector-go"

	"github.com/fairyhunter13/brainstore/internal/domain"
)

const vectorsTracer = "repo.vectors"

// VectorRepo writes and reads vector rows. Production vectors come from the
// ingestion pipeline; this repo backs seeding, tooling and tests.
type VectorRepo struct{ Pool PgxPool }

// NewVectorRepo constructs a VectorRepo with the given pool.
func NewVectorRepo(p PgxPool) *VectorRepo { return &VectorRepo{Pool: p} }

// CreateVector stores v and returns its id (generates one if empty).
func (r *VectorRepo) CreateVector(ctx domain.Context, v domain.Vector) (_ uuid.UUID, err error) {
	ctx, done := startOp(ctx, vectorsTracer, "vectors.Create", "INSERT", "vectors")
	defer func() { done(err) }()
	id := v.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	meta := v.Metadata
	if meta == nil {
		meta = domain.VectorMetadata{}
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return uuid.Nil, fmt.Errorf("op=vector.create encode metadata: %w", err)
	}
	var embedding *pgvector.Vector
	if len(v.Embedding) > 0 {
		e := pgvector.NewVector(v.Embedding)
		embedding = &e
	}
	q := `INSERT INTO vectors (id, content, metadata, embedding) VALUES ($1,$2,$3,$4)`
	if _, err := r.Pool.Exec(ctx, q, id, v.Content, metaJSON, embedding); err != nil {
		return uuid.Nil, fmt.Errorf("op=vector.create: %w", err)
	}
	return id, nil
}

// GetVector loads a vector by id, or nil when it does not exist.
func (r *VectorRepo) GetVector(ctx domain.Context, id uuid.UUID) (_ *domain.Vector, err error) {
	ctx, done := startOp(ctx, vectorsTracer, "vectors.Get", "SELECT", "vectors")
	defer func() { done(err) }()
	q := `SELECT id, content, metadata, COALESCE(embedding::text, '') FROM vectors WHERE id = $1`
	var (
		v        domain.Vector
		metaJSON []byte
		embText  string
	)
	if err := r.Pool.QueryRow(ctx, q, id).Scan(&v.ID, &v.Content, &metaJSON, &embText); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("op=vector.get: %w", err)
	}
	v.Metadata = domain.VectorMetadata{}
	if len(metaJSON) > 0 {
		if err := json.Unmarshal(metaJSON, &v.Metadata); err != nil {
			return nil, fmt.Errorf("op=vector.get decode metadata: %w", err)
		}
	}
	if embText != "" {
		var e pgvector.Vector
		if err := e.Scan(embText); err != nil {
			return nil, fmt.Errorf("op=vector.get decode embedding: %w", err)
		}
		v.Embedding = e.Slice()
	}
	return &v, nil
}

// CountByFileName returns how many vectors carry metadata file_name = name.
func (r *VectorRepo) CountByFileName(ctx domain.Context, name string) (_ int64, err error) {
	ctx, done := startOp(ctx, vectorsTracer, "vectors.CountByFileName", "COUNT", "vectors")
	defer func() { done(err) }()
	var n int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM vectors WHERE metadata->>'file_name' = $1`, name).Scan(&n); err != nil {
		return 0, fmt.Errorf("op=vector.count_by_file: %w", err)
	}
	return n, nil
}
