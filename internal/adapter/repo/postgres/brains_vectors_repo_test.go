package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/brainstore/internal/adapter/repo/postgres"
	"github.com/fairyhunter13/brainstore/internal/domain"
)

func TestBrainRepo_CreateBrainVector(t *testing.T) {
	t.Parallel()

	t.Run("returns inserted row", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.ExpectQuery(`INSERT INTO brains_vectors \(brain_id, vector_id, file_sha1\) VALUES \(\$1,\$2,\$3\) RETURNING`).
			WithArgs(brainID, vectorID, "sha-1").
			WillReturnRows(pgxmock.NewRows([]string{"brain_id", "vector_id", "file_sha1"}).
				AddRow(brainID.String(), vectorID.String(), "sha-1"))

		got, err := postgres.NewBrainRepo(m).CreateBrainVector(context.Background(), brainID, vectorID, "sha-1")
		require.NoError(t, err)
		assert.Equal(t, domain.BrainVector{BrainID: brainID, VectorID: vectorID, FileSHA1: "sha-1"}, got)
	})

	t.Run("unknown vector", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.ExpectQuery(`INSERT INTO brains_vectors`).
			WithArgs(brainID, vectorID, "sha-1").
			WillReturnError(assert.AnError)

		_, err := postgres.NewBrainRepo(m).CreateBrainVector(context.Background(), brainID, vectorID, "sha-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "op=brain_vector.create")
	})
}

func TestBrainRepo_VectorIDsByFileSHA1(t *testing.T) {
	t.Parallel()
	m := newMock(t)
	m.ExpectQuery(`SELECT id FROM vectors WHERE metadata->>'file_sha1' = \$1`).
		WithArgs("sha-1").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(vectorID.String()).AddRow(vector2.String()))

	got, err := postgres.NewBrainRepo(m).VectorIDsByFileSHA1(context.Background(), "sha-1")
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{vectorID, vector2}, got)
}

func TestBrainRepo_BrainVectorIDs(t *testing.T) {
	t.Parallel()

	t.Run("brain with vectors", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.ExpectQuery(`SELECT vector_id FROM brains_vectors WHERE brain_id = \$1`).
			WithArgs(brainID).
			WillReturnRows(pgxmock.NewRows([]string{"vector_id"}).AddRow(vectorID.String()))

		got, err := postgres.NewBrainRepo(m).BrainVectorIDs(context.Background(), brainID)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{vectorID}, got)
	})

	t.Run("brain without vectors returns empty, never nil", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.ExpectQuery(`SELECT vector_id FROM brains_vectors`).
			WithArgs(brainID).
			WillReturnRows(pgxmock.NewRows([]string{"vector_id"}))

		got, err := postgres.NewBrainRepo(m).BrainVectorIDs(context.Background(), brainID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Len(t, got, 0)
	})

	t.Run("database error", func(t *testing.T) {
		t.Parallel()
		m := newMock(t)
		m.ExpectQuery(`SELECT vector_id FROM brains_vectors`).
			WithArgs(brainID).
			WillReturnError(assert.AnError)

		got, err := postgres.NewBrainRepo(m).BrainVectorIDs(context.Background(), brainID)
		require.Error(t, err)
		assert.Nil(t, got)
		assert.Contains(t, err.Error(), "op=brain_vector.ids")
	})
}

func TestBrainRepo_DeleteBrainVectors(t *testing.T) {
	t.Parallel()
	m := newMock(t)
	m.ExpectExec(`DELETE FROM brains_vectors WHERE brain_id = \$1`).
		WithArgs(brainID).
		WillReturnResult(pgxmock.NewResult("DELETE", 5))

	n, err := postgres.NewBrainRepo(m).DeleteBrainVectors(context.Background(), brainID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
}
