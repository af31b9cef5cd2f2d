package usecases

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"club-site.backend/internal/domain/entities"
	"club-site.backend/internal/domain/repositories"
)

// DashboardUsecase computes the admin overview counts. The counts run
// concurrently and are not a consistent snapshot of each other.
type DashboardUsecase struct {
	executives repositories.ExecutiveRepository
	sponsors   repositories.SponsorRepository
	interests  repositories.InterestSubmissionRepository
	inquiries  repositories.SponsorInquiryRepository
	now        func() time.Time
}

func NewDashboardUsecase(
	executives repositories.ExecutiveRepository,
	sponsors repositories.SponsorRepository,
	interests repositories.InterestSubmissionRepository,
	inquiries repositories.SponsorInquiryRepository,
) *DashboardUsecase {
	return &DashboardUsecase{
		executives: executives,
		sponsors:   sponsors,
		interests:  interests,
		inquiries:  inquiries,
		now:        utcNow,
	}
}

// WithClock replaces the time source.
func (u *DashboardUsecase) WithClock(now func() time.Time) *DashboardUsecase {
	u.now = now
	return u
}

func (u *DashboardUsecase) Stats(ctx context.Context) (*entities.DashboardStats, error) {
	stats := &entities.DashboardStats{}
	since := u.now().Add(-RecentWindow)

	g, gctx := errgroup.WithContext(ctx)
	count := func(dst *int64, fn func(context.Context) (int64, error)) {
		g.Go(func() (err error) {
			*dst, err = fn(gctx)
			return err
		})
	}
	countSince := func(dst *int64, fn func(context.Context, time.Time) (int64, error)) {
		g.Go(func() (err error) {
			*dst, err = fn(gctx, since)
			return err
		})
	}

	count(&stats.Executives.Total, u.executives.Count)
	count(&stats.Executives.Visible, u.executives.CountVisible)
	count(&stats.Sponsors.Total, u.sponsors.Count)
	count(&stats.Sponsors.Active, u.sponsors.CountActive)
	count(&stats.InterestSubmissions.Total, u.interests.Count)
	countSince(&stats.InterestSubmissions.Recent, u.interests.CountSince)
	count(&stats.SponsorInquiries.Total, u.inquiries.Count)
	countSince(&stats.SponsorInquiries.Recent, u.inquiries.CountSince)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
