package postgres

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/fairyhunter13/brainstore/internal/domain"
)

// CreateBrainVector links vectorID to brainID and records the source file checksum.
func (r *BrainRepo) CreateBrainVector(ctx domain.Context, brainID, vectorID uuid.UUID, fileSHA1 string) (_ domain.BrainVector, err error) {
	ctx, done := startOp(ctx, brainsTracer, "brains_vectors.Create", "INSERT", "brains_vectors")
	defer func() { done(err) }()
	q := `INSERT INTO brains_vectors (brain_id, vector_id, file_sha1) VALUES ($1,$2,$3) RETURNING brain_id, vector_id, file_sha1`
	var bv domain.BrainVector
	if err := r.Pool.QueryRow(ctx, q, brainID, vectorID, fileSHA1).Scan(&bv.BrainID, &bv.VectorID, &bv.FileSHA1); err != nil {
		return domain.BrainVector{}, fmt.Errorf("op=brain_vector.create: %w", err)
	}
	return bv, nil
}

// VectorIDsByFileSHA1 returns the ids of vectors whose metadata file_sha1 matches.
func (r *BrainRepo) VectorIDsByFileSHA1(ctx domain.Context, fileSHA1 string) (out []uuid.UUID, err error) {
	ctx, done := startOp(ctx, brainsTracer, "vectors.IDsByFileSHA1", "SELECT", "vectors")
	defer func() { done(err) }()
	out, err = queryIDs(ctx, r.Pool, `SELECT id FROM vectors WHERE metadata->>'file_sha1' = $1`, fileSHA1)
	if err != nil {
		return nil, fmt.Errorf("op=vector.ids_by_sha1: %w", err)
	}
	return out, nil
}

// BrainVectorIDs lists the vector ids attached to brainID. Never nil.
func (r *BrainRepo) BrainVectorIDs(ctx domain.Context, brainID uuid.UUID) (out []uuid.UUID, err error) {
	ctx, done := startOp(ctx, brainsTracer, "brains_vectors.VectorIDs", "SELECT", "brains_vectors")
	defer func() { done(err) }()
	out, err = queryIDs(ctx, r.Pool, `SELECT vector_id FROM brains_vectors WHERE brain_id = $1`, brainID)
	if err != nil {
		return nil, fmt.Errorf("op=brain_vector.ids: %w", err)
	}
	return out, nil
}

// DeleteBrainVectors removes every vector link of brainID. Vector rows are untouched.
func (r *BrainRepo) DeleteBrainVectors(ctx domain.Context, brainID uuid.UUID) (_ int64, err error) {
	ctx, done := startOp(ctx, brainsTracer, "brains_vectors.DeleteByBrain", "DELETE", "brains_vectors")
	defer func() { done(err) }()
	tag, err := r.Pool.Exec(ctx, `DELETE FROM brains_vectors WHERE brain_id = $1`, brainID)
	if err != nil {
		return 0, fmt.Errorf("op=brain_vector.delete: %w", err)
	}
	return tag.RowsAffected(), nil
}
