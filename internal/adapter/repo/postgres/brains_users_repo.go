package postgres

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fairyhunter13/brainstore/internal/domain"
)

// CreateBrainUser inserts a membership row.
func (r *BrainRepo) CreateBrainUser(ctx domain.Context, userID, brainID uuid.UUID, rights string, defaultBrain bool) (_ domain.BrainUser, err error) {
	ctx, done := startOp(ctx, brainsTracer, "brains_users.Create", "INSERT", "brains_users")
	defer func() { done(err) }()
	q := `INSERT INTO brains_users (brain_id, user_id, rights, default_brain) VALUES ($1,$2,$3,$4)`
	if _, err := r.Pool.Exec(ctx, q, brainID, userID, rights, defaultBrain); err != nil {
		return domain.BrainUser{}, fmt.Errorf("op=brain_user.create: %w", err)
	}
	return domain.BrainUser{BrainID: brainID, UserID: userID, Rights: rights, DefaultBrain: defaultBrain}, nil
}

// FindOwnerMembership returns the rows where userID holds Owner rights on
// brainID. An empty result means the user does not own the brain.
func (r *BrainRepo) FindOwnerMembership(ctx domain.Context, userID, brainID uuid.UUID) (out []domain.BrainUser, err error) {
	ctx, done := startOp(ctx, brainsTracer, "brains_users.FindOwnerMembership", "SELECT", "brains_users")
	defer func() { done(err) }()
	q := `SELECT brain_id, user_id, rights, default_brain FROM brains_users WHERE brain_id = $1 AND user_id = $2 AND rights = $3`
	rows, err := r.Pool.Query(ctx, q, brainID, userID, domain.RightsOwner)
	if err != nil {
		return nil, fmt.Errorf("op=brain_user.find_owner: %w", err)
	}
	out, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BrainUser, error) {
		var bu domain.BrainUser
		err := row.Scan(&bu.BrainID, &bu.UserID, &bu.Rights, &bu.DefaultBrain)
		return bu, err
	})
	if err != nil {
		return nil, fmt.Errorf("op=brain_user.find_owner: %w", err)
	}
	return nonNil(out), nil
}

// DefaultUserBrainIDs returns the brain ids flagged default_brain for the user.
// Uniqueness of the flag is not enforced here.
func (r *BrainRepo) DefaultUserBrainIDs(ctx domain.Context, userID uuid.UUID) (out []uuid.UUID, err error) {
	ctx, done := startOp(ctx, brainsTracer, "brains_users.DefaultUserBrainIDs", "SELECT", "brains_users")
	defer func() { done(err) }()
	q := `SELECT brain_id FROM brains_users WHERE user_id = $1 AND default_brain = true`
	out, err = queryIDs(ctx, r.Pool, q, userID)
	if err != nil {
		return nil, fmt.Errorf("op=brain_user.default: %w", err)
	}
	return out, nil
}

// DeleteBrainUsers removes every membership of brainID.
func (r *BrainRepo) DeleteBrainUsers(ctx domain.Context, brainID uuid.UUID) (_ int64, err error) {
	ctx, done := startOp(ctx, brainsTracer, "brains_users.DeleteByBrain", "DELETE", "brains_users")
	defer func() { done(err) }()
	tag, err := r.Pool.Exec(ctx, `DELETE FROM brains_users WHERE brain_id = $1`, brainID)
	if err != nil {
		return 0, fmt.Errorf("op=brain_user.delete: %w", err)
	}
	return tag.RowsAffected(), nil
}

type querier interface {
	Query(ctx domain.Context, sql string, args ...any) (pgx.Rows, error)
}

// queryIDs runs a single-column uuid query and returns a non-nil slice.
func queryIDs(ctx domain.Context, db querier, q string, args ...any) ([]uuid.UUID, error) {
	rows, err := db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, err
	}
	return nonNil(ids), nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
