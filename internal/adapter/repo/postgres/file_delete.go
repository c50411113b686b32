package postgres

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fairyhunter13/brainstore/internal/adapter/observability"
	"github.com/fairyhunter13/brainstore/internal/domain"
	obsctx "github.com/fairyhunter13/brainstore/internal/observability"
)

// DeleteFileFromBrain unlinks every vector of fileName from brainID and
// deletes the vectors no brain references anymore. The whole sequence runs
// in one transaction; an error before commit rolls everything back.
func (r *BrainRepo) DeleteFileFromBrain(ctx domain.Context, brainID uuid.UUID, fileName string) (_ string, err error) {
	ctx, done := startOp(ctx, brainsTracer, "brains.DeleteFileFromBrain", "DELETE", "brains_vectors")
	defer func() { done(err) }()

	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("op=brain.delete_file begin: %w", err)
	}
	rollback := true
	defer func() {
		if rollback {
			_ = tx.Rollback(ctx)
		}
	}()

	vectorIDs, err := queryIDs(ctx, tx, `SELECT id FROM vectors WHERE metadata->>'file_name' = $1`, fileName)
	if err != nil {
		return "", fmt.Errorf("op=brain.delete_file select: %w", err)
	}

	var unlinked, collected int
	for _, vectorID := range vectorIDs {
		n, orphan, err := unlinkVector(ctx, tx, brainID, vectorID)
		if err != nil {
			return "", fmt.Errorf("op=brain.delete_file vector=%s: %w", vectorID, err)
		}
		unlinked += n
		if orphan {
			collected++
		}
	}

	rollback = false
	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("op=brain.delete_file commit: %w", err)
	}

	observability.DeleteFile()
	observability.CollectVectors("file_delete", collected)
	obsctx.Logger(ctx, "brains.DeleteFileFromBrain").Info("file deleted from brain",
		slog.String("brain_id", brainID.String()),
		slog.String("file_name", fileName),
		slog.Int("vectors", len(vectorIDs)),
		slog.Int("unlinked", unlinked),
		slog.Int("collected", collected),
	)
	return fmt.Sprintf("File %s in brain %s has been deleted.", fileName, brainID), nil
}

// unlinkVector deletes the (brainID, vectorID) link, then deletes the vector
// itself when no brain references it anymore. It reports the number of links
// removed and whether the vector was collected.
func unlinkVector(ctx domain.Context, tx pgx.Tx, brainID, vectorID uuid.UUID) (int, bool, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM brains_vectors WHERE vector_id = $1 AND brain_id = $2`, vectorID, brainID)
	if err != nil {
		return 0, false, fmt.Errorf("unlink: %w", err)
	}
	remaining, err := queryIDs(ctx, tx, `SELECT brain_id FROM brains_vectors WHERE vector_id = $1`, vectorID)
	if err != nil {
		return 0, false, fmt.Errorf("referencing brains: %w", err)
	}
	if len(remaining) > 0 {
		return int(tag.RowsAffected()), false, nil
	}
	if _, err := tx.Exec(ctx, `DELETE FROM vectors WHERE id = $1`, vectorID); err != nil {
		return 0, false, fmt.Errorf("collect: %w", err)
	}
	return int(tag.RowsAffected()), true, nil
}
