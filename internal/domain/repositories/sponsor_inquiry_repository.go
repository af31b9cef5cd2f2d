package repositories

import (
	"context"
	"time"

	"club-site.backend/internal/domain/entities"
)

type SponsorInquiryRepository interface {
	Create(ctx context.Context, inquiry *entities.SponsorInquiry) error
	List(ctx context.Context, limit, offset int) ([]*entities.SponsorInquiry, int64, error)
	Count(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	CountByEmailSince(ctx context.Context, email string, since time.Time) (int64, error)
}
