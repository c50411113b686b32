package cli

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fairyhunter13/brainstore/internal/adapter/repo/postgres"
	"github.com/fairyhunter13/brainstore/internal/config"
	"github.com/fairyhunter13/brainstore/internal/domain"
	"github.com/fairyhunter13/brainstore/internal/seed"
)

// VectorStore is the vector surface brainctl needs: seeding and inspection.
type VectorStore interface {
	seed.VectorWriter
	GetVector(ctx domain.Context, id uuid.UUID) (*domain.Vector, error)
	CountByFileName(ctx domain.Context, name string) (int64, error)
}

// Backend is what the commands operate on.
type Backend struct {
	Brains  domain.BrainRepository
	Vectors VectorStore
	Migrate func(ctx context.Context) error
	Sweep   func(ctx context.Context, grace time.Duration) (int64, error)
	Close   func()
}

// Opener builds a Backend from configuration.
type Opener func(ctx context.Context, cfg config.Config) (*Backend, error)

// OpenPostgres connects to DB_URL and exposes the Postgres repositories.
func OpenPostgres(ctx context.Context, cfg config.Config) (*Backend, error) {
	pool, err := postgres.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Backend{
		Brains:  postgres.NewBrainRepo(pool),
		Vectors: postgres.NewVectorRepo(pool),
		Migrate: func(ctx context.Context) error { return postgres.Migrate(ctx, pool) },
		Sweep: func(ctx context.Context, grace time.Duration) (int64, error) {
			return postgres.NewOrphanSweeper(pool, grace).Sweep(ctx)
		},
		Close: pool.Close,
	}, nil
}
