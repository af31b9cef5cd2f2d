package repositories

import (
	"context"
	"time"

	"club-site.backend/internal/domain/entities"
)

type InterestSubmissionRepository interface {
	Create(ctx context.Context, sub *entities.InterestSubmission) error
	List(ctx context.Context, limit, offset int) ([]*entities.InterestSubmission, int64, error)
	Count(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	ExistsByEmailSince(ctx context.Context, email string, since time.Time) (bool, error)
	CountByAffiliation(ctx context.Context) ([]entities.ValueCount, error)
	CountByExperienceLevel(ctx context.Context) ([]entities.ValueCount, error)
}
