package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/brainstore/internal/domain"
	"github.com/fairyhunter13/brainstore/internal/domain/mocks"
	"github.com/fairyhunter13/brainstore/internal/usecase"
)

var (
	userID  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	brainID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func owner() []domain.BrainUser {
	return []domain.BrainUser{{BrainID: brainID, UserID: userID, Rights: domain.RightsOwner}}
}

func TestCreateBrainForUser_GrantsOwner(t *testing.T) {
	repo := mocks.NewMockBrainRepository(t)
	repo.On("CreateBrain", mock.Anything, "Research").Return(domain.Brain{ID: brainID, Name: "Research"}, nil)
	repo.On("CreateBrainUser", mock.Anything, userID, brainID, domain.RightsOwner, true).
		Return(domain.BrainUser{BrainID: brainID, UserID: userID, Rights: domain.RightsOwner, DefaultBrain: true}, nil)

	svc := usecase.NewBrainService(repo)
	b, err := svc.CreateBrainForUser(context.Background(), userID, "  Research ", true)
	require.NoError(t, err)
	assert.Equal(t, brainID, b.ID)
}

func TestCreateBrainForUser_Validation(t *testing.T) {
	repo := mocks.NewMockBrainRepository(t)
	svc := usecase.NewBrainService(repo)

	_, err := svc.CreateBrainForUser(context.Background(), userID, "   ", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "name=required")

	_, err = svc.CreateBrainForUser(context.Background(), uuid.Nil, "x", false)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateBrain", mock.Anything, mock.Anything)
}

func TestCreateBrainForUser_MembershipFails(t *testing.T) {
	repo := mocks.NewMockBrainRepository(t)
	boom := errors.New("insert failed")
	repo.On("CreateBrain", mock.Anything, "R").Return(domain.Brain{ID: brainID, Name: "R"}, nil)
	repo.On("CreateBrainUser", mock.Anything, userID, brainID, domain.RightsOwner, false).Return(domain.BrainUser{}, boom)

	repo.On("DeleteBrain", mock.Anything, brainID).Return(int64(1), nil).Once()

	_, err := usecase.NewBrainService(repo).CreateBrainForUser(context.Background(), userID, "R", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "grant owner")
	repo.AssertCalled(t, "DeleteBrain", mock.Anything, brainID)
}

func TestCreateBrainForUser_CleanupFails(t *testing.T) {
	repo := mocks.NewMockBrainRepository(t)
	boom := errors.New("insert failed")
	gone := errors.New("connection reset")
	repo.On("CreateBrain", mock.Anything, "R").Return(domain.Brain{ID: brainID, Name: "R"}, nil)
	repo.On("CreateBrainUser", mock.Anything, userID, brainID, domain.RightsOwner, false).Return(domain.BrainUser{}, boom)
	repo.On("DeleteBrain", mock.Anything, brainID).Return(int64(0), gone)

	_, err := usecase.NewBrainService(repo).CreateBrainForUser(context.Background(), userID, "R", false)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, gone)
	assert.Contains(t, err.Error(), "remove unowned brain")
}

func TestCreateBrainForUser_DuplicateMembershipIsConflict(t *testing.T) {
	repo := mocks.NewMockBrainRepository(t)
	dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
	repo.On("CreateBrain", mock.Anything, "R").Return(domain.Brain{ID: brainID, Name: "R"}, nil)
	repo.On("CreateBrainUser", mock.Anything, userID, brainID, domain.RightsOwner, false).
		Return(domain.BrainUser{}, fmt.Errorf("op=brain_user.create: %w", dup))
	repo.On("DeleteBrain", mock.Anything, brainID).Return(int64(1), nil)

	_, err := usecase.NewBrainService(repo).CreateBrainForUser(context.Background(), userID, "R", false)
	assert.ErrorIs(t, err, domain.ErrConflict)
	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "23505", pgErr.Code)
}

func TestDeleteBrain_OrdersDeletes(t *testing.T) {
	repo := mocks.NewMockBrainRepository(t)
	var order []string
	repo.On("FindOwnerMembership", mock.Anything, userID, brainID).Return(owner(), nil)
	repo.On("DeleteBrainVectors", mock.Anything, brainID).Return(int64(3), nil).
		Run(func(mock.Arguments) { order = append(order, "vectors") })
	repo.On("DeleteBrainUsers", mock.Anything, brainID).Return(int64(1), nil).
		Run(func(mock.Arguments) { order = append(order, "users") })
	repo.On("DeleteBrain", mock.Anything, brainID).Return(int64(1), nil).
		Run(func(mock.Arguments) { order = append(order, "brain") })

	err := usecase.NewBrainService(repo).DeleteBrain(context.Background(), userID, brainID)
	require.NoError(t, err)
	assert.Equal(t, []string{"vectors", "users", "brain"}, order)
}

func TestDeleteBrain_ForbiddenWithoutOwner(t *testing.T) {
	repo := mocks.NewMockBrainRepository(t)
	repo.On("FindOwnerMembership", mock.Anything, userID, brainID).Return([]domain.BrainUser{}, nil)

	err := usecase.NewBrainService(repo).DeleteBrain(context.Background(), userID, brainID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	repo.AssertNotCalled(t, "DeleteBrainVectors", mock.Anything, mock.Anything)
}

func TestDeleteBrain_NotFoundWhenNoRow(t *testing.T) {
	repo := mocks.NewMockBrainRepository(t)
	repo.On("FindOwnerMembership", mock.Anything, userID, brainID).Return(owner(), nil)
	repo.On("DeleteBrainVectors", mock.Anything, brainID).Return(int64(0), nil)
	repo.On("DeleteBrainUsers", mock.Anything, brainID).Return(int64(1), nil)
	repo.On("DeleteBrain", mock.Anything, brainID).Return(int64(0), nil)

	err := usecase.NewBrainService(repo).DeleteBrain(context.Background(), userID, brainID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteBrain_StopsOnError(t *testing.T) {
	repo := mocks.NewMockBrainRepository(t)
	boom := errors.New("db down")
	repo.On("FindOwnerMembership", mock.Anything, userID, brainID).Return(owner(), nil)
	repo.On("DeleteBrainVectors", mock.Anything, brainID).Return(int64(0), boom)

	err := usecase.NewBrainService(repo).DeleteBrain(context.Background(), userID, brainID)
	assert.ErrorIs(t, err, boom)
	repo.AssertNotCalled(t, "DeleteBrainUsers", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "DeleteBrain", mock.Anything, mock.Anything)
}

func TestRemoveFile(t *testing.T) {
	t.Run("owner deletes file", func(t *testing.T) {
		repo := mocks.NewMockBrainRepository(t)
		repo.On("FindOwnerMembership", mock.Anything, userID, brainID).Return(owner(), nil)
		repo.On("DeleteFileFromBrain", mock.Anything, brainID, "doc.pdf").
			Return("File doc.pdf in brain "+brainID.String()+" has been deleted.", nil)

		msg, err := usecase.NewBrainService(repo).RemoveFile(context.Background(), userID, brainID, "doc.pdf")
		require.NoError(t, err)
		assert.Equal(t, "File doc.pdf in brain "+brainID.String()+" has been deleted.", msg)
	})
	t.Run("empty file name", func(t *testing.T) {
		repo := mocks.NewMockBrainRepository(t)
		_, err := usecase.NewBrainService(repo).RemoveFile(context.Background(), userID, brainID, "")
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "filename=required")
	})
	t.Run("not an owner", func(t *testing.T) {
		repo := mocks.NewMockBrainRepository(t)
		repo.On("FindOwnerMembership", mock.Anything, userID, brainID).Return([]domain.BrainUser{}, nil)
		_, err := usecase.NewBrainService(repo).RemoveFile(context.Background(), userID, brainID, "doc.pdf")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
	t.Run("owner lookup fails", func(t *testing.T) {
		repo := mocks.NewMockBrainRepository(t)
		boom := errors.New("timeout")
		repo.On("FindOwnerMembership", mock.Anything, userID, brainID).Return(nil, boom)
		_, err := usecase.NewBrainService(repo).RemoveFile(context.Background(), userID, brainID, "doc.pdf")
		assert.ErrorIs(t, err, boom)
	})
}

func TestBrain(t *testing.T) {
	repo := mocks.NewMockBrainRepository(t)
	ub := &domain.UserBrain{ID: brainID, Rights: "Viewer", Brain: domain.BrainSummary{ID: brainID, Name: "B"}}
	other := uuid.New()
	repo.On("BrainForUser", mock.Anything, userID, brainID).Return(ub, nil)
	repo.On("BrainForUser", mock.Anything, userID, other).Return(nil, nil)

	svc := usecase.NewBrainService(repo)
	got, err := svc.Brain(context.Background(), userID, brainID)
	require.NoError(t, err)
	assert.Equal(t, "Viewer", got.Rights)

	_, err = svc.Brain(context.Background(), userID, other)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserBrains(t *testing.T) {
	repo := mocks.NewMockBrainRepository(t)
	list := []domain.BrainSummary{{ID: brainID, Name: "B"}}
	repo.On("UserBrains", mock.Anything, userID).Return(list, nil)

	svc := usecase.NewBrainService(repo)
	got, err := svc.UserBrains(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, list, got)

	_, err = svc.UserBrains(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestDefaultBrain(t *testing.T) {
	repo := mocks.NewMockBrainRepository(t)
	noDefault := uuid.New()
	repo.On("DefaultUserBrainIDs", mock.Anything, userID).Return([]uuid.UUID{brainID}, nil)
	repo.On("DefaultUserBrainIDs", mock.Anything, noDefault).Return([]uuid.UUID{}, nil)

	svc := usecase.NewBrainService(repo)
	id, err := svc.DefaultBrain(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, brainID, id)

	_, err = svc.DefaultBrain(context.Background(), noDefault)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRenameBrain(t *testing.T) {
	repo := mocks.NewMockBrainRepository(t)
	repo.On("FindOwnerMembership", mock.Anything, userID, brainID).Return(owner(), nil)
	repo.On("UpdateBrainFields", mock.Anything, brainID, "New").Return(nil)

	svc := usecase.NewBrainService(repo)
	require.NoError(t, svc.RenameBrain(context.Background(), userID, brainID, " New "))

	err := svc.RenameBrain(context.Background(), userID, brainID, "")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
