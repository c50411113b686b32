package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fairyhunter13/brainstore/internal/adapter/observability"
)

// OrphanSweeper deletes vectors that no brain references anymore, for
// example those left behind by callers that unlink vectors without going
// through DeleteFileFromBrain.
type OrphanSweeper struct {
	Pool PgxPool
	// Grace protects vectors younger than this; ingestion writes the vector
	// before linking it to a brain.
	Grace time.Duration
	now   func() time.Time
}

// NewOrphanSweeper creates a sweeper. A non-positive grace defaults to 24h.
func NewOrphanSweeper(pool PgxPool, grace time.Duration) *OrphanSweeper {
	if grace <= 0 {
		grace = 24 * time.Hour
	}
	return &OrphanSweeper{Pool: pool, Grace: grace, now: time.Now}
}

// Sweep removes orphaned vectors older than the grace period and returns how many were deleted.
func (s *OrphanSweeper) Sweep(ctx context.Context) (_ int64, err error) {
	ctx, done := startOp(ctx, vectorsTracer, "vectors.SweepOrphans", "DELETE", "vectors")
	defer func() { done(err) }()
	now := s.now
	if now == nil {
		now = time.Now
	}
	cutoff := now().UTC().Add(-s.Grace)
	tag, err := s.Pool.Exec(ctx, `
		DELETE FROM vectors v
		WHERE v.created_at < $1
		AND NOT EXISTS (SELECT 1 FROM brains_vectors bv WHERE bv.vector_id = v.id)
	`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("op=vector.sweep: %w", err)
	}
	n := tag.RowsAffected()
	observability.CollectVectors("sweeper", int(n))
	slog.Info("orphan vector sweep completed",
		slog.Int64("deleted_vectors", n),
		slog.Time("cutoff", cutoff),
	)
	return n, nil
}

// RunPeriodic sweeps once immediately and then every interval until ctx is done.
func (s *OrphanSweeper) RunPeriodic(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if _, err := s.Sweep(ctx); err != nil {
		slog.Error("initial orphan sweep failed", slog.Any("error", err))
	}
	for {
		select {
		case <-ctx.Done():
			slog.Info("orphan sweeper stopping")
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil {
				slog.Error("periodic orphan sweep failed", slog.Any("error", err))
			}
		}
	}
}
