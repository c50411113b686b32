package postgres_test

import (
	"testing"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

// Fixed ids shared by the repository tests.
var (
	userID   = uuid.MustParse("6f1c2f7e-8a7d-4a57-9d9b-2f6a9d1c0a01")
	brainID  = uuid.MustParse("0b2a9f3c-1d4e-4c5b-8a6f-7e8d9c0b1a02")
	brain2ID = uuid.MustParse("1c3b0e4d-2e5f-4d6c-9b7a-8f9e0d1c2b03")
	vectorID = uuid.MustParse("2d4c1f5e-3f60-4e7d-8c8b-9a0f1e2d3c04")
	vector2  = uuid.MustParse("3e5d2a6f-4071-4f8e-9d9c-0b1a2f3e4d05")
)

// newMock returns a pgxmock pool that is closed and checked when the test ends.
func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	m, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, m.ExpectationsWereMet())
		m.Close()
	})
	return m
}
