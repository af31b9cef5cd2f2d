package usecases

import (
	"context"
	"errors"
	"time"

	"club-site.backend/internal/domain/entities"
	domainerrors "club-site.backend/internal/domain/errors"
	"club-site.backend/internal/domain/repositories"
	"club-site.backend/pkg/metrics"
	"club-site.backend/pkg/utils"
)

const inquiryForm = "sponsor_inquiry"

type InquiryUsecase struct {
	repo   repositories.SponsorInquiryRepository
	locker repositories.Locker
	now    func() time.Time
}

func NewInquiryUsecase(repo repositories.SponsorInquiryRepository, locker repositories.Locker) *InquiryUsecase {
	return &InquiryUsecase{repo: repo, locker: locker, now: utcNow}
}

// WithClock replaces the time source.
func (u *InquiryUsecase) WithClock(now func() time.Time) *InquiryUsecase {
	u.now = now
	return u
}

// Submit stores an inquiry unless the email already sent
// MaxInquiriesPerWindow within SubmissionWindow.
func (u *InquiryUsecase) Submit(ctx context.Context, input entities.CreateSponsorInquiryInput) (*entities.SponsorInquiry, error) {
	inquiry := input.ToEntity()
	err := withEmailLock(ctx, u.locker, inquiryForm, inquiry.Email, func() error {
		now := u.now()
		n, err := u.repo.CountByEmailSince(ctx, inquiry.Email, now.Add(-SubmissionWindow))
		if err != nil {
			return err
		}
		if n >= MaxInquiriesPerWindow {
			metrics.RecordRejection(inquiryForm, metrics.ReasonRateLimited)
			return domainerrors.ErrRateLimited
		}
		inquiry.CreatedAt = now
		inquiry.UpdatedAt = now
		return u.repo.Create(ctx, inquiry)
	})
	if errors.Is(err, domainerrors.ErrRateLimited) || errors.Is(err, errSubmissionInFlight) {
		return nil, domainerrors.RateLimited(msgInquiryRateLimited)
	}
	if err != nil {
		return nil, err
	}
	return inquiry, nil
}

func (u *InquiryUsecase) List(ctx context.Context, p utils.PaginationParams) (utils.Page[*entities.SponsorInquiry], error) {
	items, total, err := u.repo.List(ctx, p.Limit, p.CalculateOffset())
	if err != nil {
		return utils.Page[*entities.SponsorInquiry]{}, err
	}
	return utils.NewPage(items, total, p), nil
}
