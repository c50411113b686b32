package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Error taxonomy (sentinels)
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
)

// RightsOwner is the membership role allowed to delete a brain or its files.
const RightsOwner = "Owner"

// Metadata keys written by the ingestion pipeline on every vector.
const (
	MetadataFileSHA1 = "file_sha1"
	MetadataFileName = "file_name"
)

// Brain is a named collection of ingested content.
// Attributes carries every other column of the brains row untouched.
type Brain struct {
	ID         uuid.UUID
	Name       string
	Attributes map[string]any
}

// BrainSummary is the {id, name} projection of a brain.
type BrainSummary struct {
	ID   uuid.UUID
	Name string
}

// UserBrain is a membership seen from the user side: the brain id, the
// user's rights on it and the brain summary.
type UserBrain struct {
	ID     uuid.UUID
	Rights string
	Brain  BrainSummary
}

// BrainUser relates a user to a brain.
// Invariant (external): at most one row per (UserID, BrainID) and at most
// one DefaultBrain=true row per user.
type BrainUser struct {
	BrainID      uuid.UUID
	UserID       uuid.UUID
	Rights       string
	DefaultBrain bool
}

// BrainVector relates a brain to a vector and records the source file checksum.
type BrainVector struct {
	BrainID  uuid.UUID
	VectorID uuid.UUID
	FileSHA1 string
}

// VectorMetadata is the semi-structured metadata stored alongside a vector.
type VectorMetadata map[string]any

// FileSHA1 returns the file_sha1 entry or "".
func (m VectorMetadata) FileSHA1() string { return m.str(MetadataFileSHA1) }

// FileName returns the file_name entry or "".
func (m VectorMetadata) FileName() string { return m.str(MetadataFileName) }

func (m VectorMetadata) str(key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// Vector is an embedding record shared across brains. It lives exactly as
// long as at least one BrainVector references it.
type Vector struct {
	ID        uuid.UUID
	Content   string
	Metadata  VectorMetadata
	Embedding []float32
}

// Repositories (ports)

//go:generate mockery --name=BrainRepository --output=mocks --filename=brain_repository.go

// BrainRepository is the data-access surface over brains, brains_users,
// brains_vectors and vectors.
type BrainRepository interface {
	UserBrains(ctx Context, userID uuid.UUID) ([]BrainSummary, error)
	BrainForUser(ctx Context, userID, brainID uuid.UUID) (*UserBrain, error)
	BrainDetails(ctx Context, brainID uuid.UUID) ([]Brain, error)
	BrainByID(ctx Context, brainID uuid.UUID) (*Brain, error)
	CreateBrain(ctx Context, name string) (Brain, error)
	UpdateBrainFields(ctx Context, brainID uuid.UUID, name string) error
	DeleteBrain(ctx Context, brainID uuid.UUID) (int64, error)

	CreateBrainUser(ctx Context, userID, brainID uuid.UUID, rights string, defaultBrain bool) (BrainUser, error)
	FindOwnerMembership(ctx Context, userID, brainID uuid.UUID) ([]BrainUser, error)
	DefaultUserBrainIDs(ctx Context, userID uuid.UUID) ([]uuid.UUID, error)
	DeleteBrainUsers(ctx Context, brainID uuid.UUID) (int64, error)

	CreateBrainVector(ctx Context, brainID, vectorID uuid.UUID, fileSHA1 string) (BrainVector, error)
	VectorIDsByFileSHA1(ctx Context, fileSHA1 string) ([]uuid.UUID, error)
	BrainVectorIDs(ctx Context, brainID uuid.UUID) ([]uuid.UUID, error)
	DeleteBrainVectors(ctx Context, brainID uuid.UUID) (int64, error)

	DeleteFileFromBrain(ctx Context, brainID uuid.UUID, fileName string) (string, error)
}

// Context is an alias so ports read without importing the std package in every signature.
type Context = context.Context
