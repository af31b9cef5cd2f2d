package usecases

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"club-site.backend/internal/domain/entities"
	domainerrors "club-site.backend/internal/domain/errors"
	"club-site.backend/internal/domain/repositories"
	"club-site.backend/pkg/metrics"
	"club-site.backend/pkg/utils"
)

const interestForm = "interest"

// InterestUsecase accepts and reports on interest form submissions.
type InterestUsecase struct {
	repo   repositories.InterestSubmissionRepository
	locker repositories.Locker
	now    func() time.Time
}

func NewInterestUsecase(repo repositories.InterestSubmissionRepository, locker repositories.Locker) *InterestUsecase {
	return &InterestUsecase{repo: repo, locker: locker, now: utcNow}
}

// WithClock replaces the time source.
func (u *InterestUsecase) WithClock(now func() time.Time) *InterestUsecase {
	u.now = now
	return u
}

// Submit stores a submission unless the same email submitted within
// SubmissionWindow.
func (u *InterestUsecase) Submit(ctx context.Context, input entities.CreateInterestSubmissionInput) (*entities.InterestSubmission, error) {
	sub := input.ToEntity()
	err := withEmailLock(ctx, u.locker, interestForm, sub.Email, func() error {
		now := u.now()
		exists, err := u.repo.ExistsByEmailSince(ctx, sub.Email, now.Add(-SubmissionWindow))
		if err != nil {
			return err
		}
		if exists {
			metrics.RecordRejection(interestForm, metrics.ReasonRateLimited)
			return domainerrors.ErrRateLimited
		}
		sub.CreatedAt = now
		sub.UpdatedAt = now
		return u.repo.Create(ctx, sub)
	})
	if errors.Is(err, domainerrors.ErrRateLimited) || errors.Is(err, errSubmissionInFlight) {
		return nil, domainerrors.RateLimited(msgInterestRateLimited)
	}
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (u *InterestUsecase) List(ctx context.Context, p utils.PaginationParams) (utils.Page[*entities.InterestSubmission], error) {
	items, total, err := u.repo.List(ctx, p.Limit, p.CalculateOffset())
	if err != nil {
		return utils.Page[*entities.InterestSubmission]{}, err
	}
	return utils.NewPage(items, total, p), nil
}

// Stats runs its four aggregate queries concurrently.
func (u *InterestUsecase) Stats(ctx context.Context) (*entities.InterestStats, error) {
	stats := &entities.InterestStats{}
	since := u.now().Add(-RecentWindow)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalSubmissions, err = u.repo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.RecentSubmissions, err = u.repo.CountSince(gctx, since)
		return err
	})
	g.Go(func() (err error) {
		stats.AffiliationStats, err = u.repo.CountByAffiliation(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.ExperienceStats, err = u.repo.CountByExperienceLevel(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if stats.AffiliationStats == nil {
		stats.AffiliationStats = []entities.ValueCount{}
	}
	if stats.ExperienceStats == nil {
		stats.ExperienceStats = []entities.ValueCount{}
	}
	return stats, nil
}
