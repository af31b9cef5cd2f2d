package repositories

import (
	"context"

	"github.com/google/uuid"
	"club-site.backend/internal/domain/entities"
)

type SponsorRepository interface {
	Create(ctx context.Context, sponsor *entities.Sponsor) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Sponsor, error)
	// GetActive returns ErrNotFound when no sponsor is active.
	GetActive(ctx context.Context) (*entities.Sponsor, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Sponsor, int64, error)
	Update(ctx context.Context, sponsor *entities.Sponsor) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeactivateAllExcept clears the active flag everywhere but keepID
	// (uuid.Nil clears every sponsor).
	DeactivateAllExcept(ctx context.Context, keepID uuid.UUID) error
	SetActive(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}
