package repositories

import (
	"context"

	"github.com/google/uuid"
	"club-site.backend/internal/domain/entities"
)

type ExecutiveRepository interface {
	Create(ctx context.Context, exec *entities.Executive) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Executive, error)
	ListVisible(ctx context.Context) ([]*entities.Executive, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Executive, int64, error)
	Update(ctx context.Context, exec *entities.Executive) error
	Delete(ctx context.Context, id uuid.UUID) error
	// FindVisibleByRole returns another visible executive holding role,
	// ignoring excludeID; ErrNotFound when there is none.
	FindVisibleByRole(ctx context.Context, role string, excludeID uuid.UUID) (*entities.Executive, error)
	Count(ctx context.Context) (int64, error)
	CountVisible(ctx context.Context) (int64, error)
}
