package postgres

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fairyhunter13/brainstore/internal/domain"
)

const brainsTracer = "repo.brains"

// brainColumns selects the id, the name and every other column as a jsonb
// object so that descriptive fields pass through untouched.
const brainColumns = `b.brain_id, b.name, to_jsonb(b) - 'brain_id' - 'name'`

// BrainRepo implements domain.BrainRepository on top of a pgx pool.
// It holds no state beyond the pool.
type BrainRepo struct{ Pool PgxPool }

var _ domain.BrainRepository = (*BrainRepo)(nil)

// NewBrainRepo constructs a BrainRepo with the given pool.
func NewBrainRepo(p PgxPool) *BrainRepo { return &BrainRepo{Pool: p} }

// UserBrains lists {id, name} for every brain the user belongs to.
func (r *BrainRepo) UserBrains(ctx domain.Context, userID uuid.UUID) (out []domain.BrainSummary, err error) {
	ctx, done := startOp(ctx, brainsTracer, "brains.UserBrains", "SELECT", "brains_users")
	defer func() { done(err) }()
	q := `SELECT b.brain_id, b.name FROM brains_users bu JOIN brains b ON b.brain_id = bu.brain_id WHERE bu.user_id = $1`
	rows, err := r.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("op=brain.user_brains: %w", err)
	}
	defer rows.Close()
	out = []domain.BrainSummary{}
	for rows.Next() {
		var s domain.BrainSummary
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("op=brain.user_brains: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("op=brain.user_brains: %w", err)
	}
	return out, nil
}

// BrainForUser returns the membership of userID in brainID, or nil when the
// user is not a member. Absence is not an error.
func (r *BrainRepo) BrainForUser(ctx domain.Context, userID, brainID uuid.UUID) (_ *domain.UserBrain, err error) {
	ctx, done := startOp(ctx, brainsTracer, "brains.BrainForUser", "SELECT", "brains_users")
	defer func() { done(err) }()
	q := `SELECT bu.brain_id, bu.rights, b.brain_id, b.name FROM brains_users bu JOIN brains b ON b.brain_id = bu.brain_id WHERE bu.user_id = $1 AND bu.brain_id = $2 LIMIT 1`
	var ub domain.UserBrain
	if err := r.Pool.QueryRow(ctx, q, userID, brainID).Scan(&ub.ID, &ub.Rights, &ub.Brain.ID, &ub.Brain.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("op=brain.for_user: %w", err)
	}
	return &ub, nil
}

// BrainDetails returns the full row(s) for brainID. The slice is empty when
// the brain does not exist.
func (r *BrainRepo) BrainDetails(ctx domain.Context, brainID uuid.UUID) (out []domain.Brain, err error) {
	ctx, done := startOp(ctx, brainsTracer, "brains.BrainDetails", "SELECT", "brains")
	defer func() { done(err) }()
	q := `SELECT ` + brainColumns + ` FROM brains b WHERE b.brain_id = $1`
	rows, err := r.Pool.Query(ctx, q, brainID)
	if err != nil {
		return nil, fmt.Errorf("op=brain.details: %w", err)
	}
	defer rows.Close()
	out = []domain.Brain{}
	for rows.Next() {
		b, err := scanBrain(rows)
		if err != nil {
			return nil, fmt.Errorf("op=brain.details: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("op=brain.details: %w", err)
	}
	return out, nil
}

// BrainByID loads one brain, or nil when it does not exist.
func (r *BrainRepo) BrainByID(ctx domain.Context, brainID uuid.UUID) (_ *domain.Brain, err error) {
	ctx, done := startOp(ctx, brainsTracer, "brains.BrainByID", "SELECT", "brains")
	defer func() { done(err) }()
	q := `SELECT ` + brainColumns + ` FROM brains b WHERE b.brain_id = $1 LIMIT 1`
	b, err := scanBrain(r.Pool.QueryRow(ctx, q, brainID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("op=brain.by_id: %w", err)
	}
	return &b, nil
}

// CreateBrain inserts a brain and returns it with its generated id.
func (r *BrainRepo) CreateBrain(ctx domain.Context, name string) (_ domain.Brain, err error) {
	ctx, done := startOp(ctx, brainsTracer, "brains.CreateBrain", "INSERT", "brains")
	defer func() { done(err) }()
	q := `INSERT INTO brains AS b (name) VALUES ($1) RETURNING ` + brainColumns
	b, err := scanBrain(r.Pool.QueryRow(ctx, q, name))
	if err != nil {
		return domain.Brain{}, fmt.Errorf("op=brain.create: %w", err)
	}
	return b, nil
}

// UpdateBrainFields renames a brain in place.
func (r *BrainRepo) UpdateBrainFields(ctx domain.Context, brainID uuid.UUID, name string) (err error) {
	ctx, done := startOp(ctx, brainsTracer, "brains.UpdateBrainFields", "UPDATE", "brains")
	defer func() { done(err) }()
	q := `UPDATE brains SET name = $2 WHERE brain_id = $1`
	if _, err := r.Pool.Exec(ctx, q, brainID, name); err != nil {
		return fmt.Errorf("op=brain.update: %w", err)
	}
	return nil
}

// DeleteBrain removes the brain row. Join rows must be gone first unless the
// database cascades.
func (r *BrainRepo) DeleteBrain(ctx domain.Context, brainID uuid.UUID) (_ int64, err error) {
	ctx, done := startOp(ctx, brainsTracer, "brains.DeleteBrain", "DELETE", "brains")
	defer func() { done(err) }()
	tag, err := r.Pool.Exec(ctx, `DELETE FROM brains WHERE brain_id = $1`, brainID)
	if err != nil {
		return 0, fmt.Errorf("op=brain.delete: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanBrain(row pgx.Row) (domain.Brain, error) {
	var (
		b     domain.Brain
		attrs []byte
	)
	if err := row.Scan(&b.ID, &b.Name, &attrs); err != nil {
		return domain.Brain{}, err
	}
	b.Attributes = map[string]any{}
	if len(attrs) > 0 {
		if err := json.Unmarshal(attrs, &b.Attributes); err != nil {
			return domain.Brain{}, fmt.Errorf("decode brain attributes: %w", err)
		}
	}
	return b, nil
}
