// Package usecase contains application business logic services.
package usecase

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fairyhunter13/brainstore/internal/domain"
	obsctx "github.com/fairyhunter13/brainstore/internal/observability"
	"github.com/fairyhunter13/brainstore/pkg/textx"
)

var (
	vldOnce sync.Once
	vld     *validator.Validate
)

func getValidator() *validator.Validate {
	vldOnce.Do(func() { vld = validator.New() })
	return vld
}

// BrainService applies membership rules on top of the brain repository.
type BrainService struct {
	Brains domain.BrainRepository
}

// NewBrainService constructs a BrainService with its repository.
func NewBrainService(r domain.BrainRepository) BrainService {
	return BrainService{Brains: r}
}

type createBrainInput struct {
	UserID uuid.UUID `validate:"required"`
	Name   string    `validate:"required,max=255"`
}

type brainRef struct {
	UserID  uuid.UUID `validate:"required"`
	BrainID uuid.UUID `validate:"required"`
}

type fileRef struct {
	brainRef
	FileName string `validate:"required,max=1024"`
}

// validate maps validator failures to ErrInvalidArgument with the failing fields.
func validate(in any) error {
	err := getValidator().Struct(in)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make([]string, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, strings.ToLower(fe.Field())+"="+fe.Tag())
		}
		return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, strings.Join(fields, ","))
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
}

// uniqueViolation is the Postgres SQLSTATE for a duplicate key.
const uniqueViolation = "23505"

// conflict tags duplicate-key failures with ErrConflict, keeping the cause.
func conflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %w", domain.ErrConflict, err)
	}
	return err
}

// CreateBrainForUser creates a brain and grants the user Owner rights on it.
func (s BrainService) CreateBrainForUser(ctx domain.Context, userID uuid.UUID, name string, makeDefault bool) (domain.Brain, error) {
	name = textx.SanitizeName(name)
	if err := validate(createBrainInput{UserID: userID, Name: name}); err != nil {
		return domain.Brain{}, err
	}
	b, err := s.Brains.CreateBrain(ctx, name)
	if err != nil {
		return domain.Brain{}, fmt.Errorf("create brain: %w", err)
	}
	if _, err := s.Brains.CreateBrainUser(ctx, userID, b.ID, domain.RightsOwner, makeDefault); err != nil {
		err = fmt.Errorf("grant owner: %w", conflict(err))
		// every brain keeps an Owner membership
		if _, derr := s.Brains.DeleteBrain(ctx, b.ID); derr != nil {
			err = errors.Join(err, fmt.Errorf("remove unowned brain %s: %w", b.ID, derr))
		}
		return domain.Brain{}, err
	}
	obsctx.Logger(ctx, "usecase.create_brain").Info("brain created",
		"brain_id", b.ID.String(), "user_id", userID.String(), "default", makeDefault)
	return b, nil
}

func (s BrainService) requireOwner(ctx domain.Context, ref brainRef) error {
	if err := validate(ref); err != nil {
		return err
	}
	owners, err := s.Brains.FindOwnerMembership(ctx, ref.UserID, ref.BrainID)
	if err != nil {
		return fmt.Errorf("owner lookup: %w", err)
	}
	if len(owners) == 0 {
		return fmt.Errorf("%w: user %s does not own brain %s", domain.ErrForbidden, ref.UserID, ref.BrainID)
	}
	return nil
}

// DeleteBrain removes a brain owned by the user. Join rows go first so the
// brain row is never left referenced.
func (s BrainService) DeleteBrain(ctx domain.Context, userID, brainID uuid.UUID) error {
	if err := s.requireOwner(ctx, brainRef{UserID: userID, BrainID: brainID}); err != nil {
		return err
	}
	vectors, err := s.Brains.DeleteBrainVectors(ctx, brainID)
	if err != nil {
		return fmt.Errorf("delete brain vectors: %w", err)
	}
	users, err := s.Brains.DeleteBrainUsers(ctx, brainID)
	if err != nil {
		return fmt.Errorf("delete brain users: %w", err)
	}
	n, err := s.Brains.DeleteBrain(ctx, brainID)
	if err != nil {
		return fmt.Errorf("delete brain: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: brain %s", domain.ErrNotFound, brainID)
	}
	obsctx.Logger(ctx, "usecase.delete_brain").Info("brain deleted",
		"brain_id", brainID.String(), "vectors_unlinked", vectors, "members_removed", users)
	return nil
}

// RemoveFile deletes every vector of fileName from a brain owned by the user.
func (s BrainService) RemoveFile(ctx domain.Context, userID, brainID uuid.UUID, fileName string) (string, error) {
	ref := fileRef{brainRef: brainRef{UserID: userID, BrainID: brainID}, FileName: fileName}
	if err := validate(ref); err != nil {
		return "", err
	}
	if err := s.requireOwner(ctx, ref.brainRef); err != nil {
		return "", err
	}
	msg, err := s.Brains.DeleteFileFromBrain(ctx, brainID, fileName)
	if err != nil {
		return "", fmt.Errorf("delete file: %w", err)
	}
	return msg, nil
}

// UserBrains lists the brains the user is a member of.
func (s BrainService) UserBrains(ctx domain.Context, userID uuid.UUID) ([]domain.BrainSummary, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id required", domain.ErrInvalidArgument)
	}
	return s.Brains.UserBrains(ctx, userID)
}

// Brain returns the user's view of a brain, or ErrNotFound without membership.
func (s BrainService) Brain(ctx domain.Context, userID, brainID uuid.UUID) (domain.UserBrain, error) {
	if err := validate(brainRef{UserID: userID, BrainID: brainID}); err != nil {
		return domain.UserBrain{}, err
	}
	ub, err := s.Brains.BrainForUser(ctx, userID, brainID)
	if err != nil {
		return domain.UserBrain{}, err
	}
	if ub == nil {
		return domain.UserBrain{}, fmt.Errorf("%w: brain %s", domain.ErrNotFound, brainID)
	}
	return *ub, nil
}

// DefaultBrain returns the first brain flagged as the user's default.
func (s BrainService) DefaultBrain(ctx domain.Context, userID uuid.UUID) (uuid.UUID, error) {
	if userID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: user id required", domain.ErrInvalidArgument)
	}
	ids, err := s.Brains.DefaultUserBrainIDs(ctx, userID)
	if err != nil {
		return uuid.Nil, err
	}
	if len(ids) == 0 {
		return uuid.Nil, fmt.Errorf("%w: no default brain for user %s", domain.ErrNotFound, userID)
	}
	return ids[0], nil
}

// RenameBrain changes the name of a brain owned by the user.
func (s BrainService) RenameBrain(ctx domain.Context, userID, brainID uuid.UUID, name string) error {
	name = textx.SanitizeName(name)
	if err := validate(createBrainInput{UserID: userID, Name: name}); err != nil {
		return err
	}
	if err := s.requireOwner(ctx, brainRef{UserID: userID, BrainID: brainID}); err != nil {
		return err
	}
	if err := s.Brains.UpdateBrainFields(ctx, brainID, name); err != nil {
		return fmt.Errorf("rename brain: %w", err)
	}
	return nil
}
