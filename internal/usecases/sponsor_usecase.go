package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"club-site.backend/internal/domain/entities"
	domainerrors "club-site.backend/internal/domain/errors"
	"club-site.backend/internal/domain/repositories"
	"club-site.backend/pkg/utils"
)

// SponsorUsecase manages sponsors. At most one sponsor is active; every
// write that activates a sponsor clears the others in the same transaction.
type SponsorUsecase struct {
	repo repositories.SponsorRepository
	uow  repositories.UnitOfWork
	now  func() time.Time
}

func NewSponsorUsecase(repo repositories.SponsorRepository, uow repositories.UnitOfWork) *SponsorUsecase {
	return &SponsorUsecase{repo: repo, uow: uow, now: utcNow}
}

// WithClock replaces the time source.
func (u *SponsorUsecase) WithClock(now func() time.Time) *SponsorUsecase {
	u.now = now
	return u
}

// GetActive returns the active sponsor, or nil when there is none.
func (u *SponsorUsecase) GetActive(ctx context.Context) (*entities.Sponsor, error) {
	sponsor, err := u.repo.GetActive(ctx)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return sponsor, nil
}

func (u *SponsorUsecase) List(ctx context.Context, p utils.PaginationParams) (utils.Page[*entities.Sponsor], error) {
	items, total, err := u.repo.List(ctx, p.Limit, p.CalculateOffset())
	if err != nil {
		return utils.Page[*entities.Sponsor]{}, err
	}
	return utils.NewPage(items, total, p), nil
}

func (u *SponsorUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.Sponsor, error) {
	sponsor, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, sponsorError(err)
	}
	return sponsor, nil
}

func (u *SponsorUsecase) Create(ctx context.Context, input entities.CreateSponsorInput) (*entities.Sponsor, error) {
	sponsor := input.ToEntity()
	now := u.now()
	sponsor.CreatedAt = now
	sponsor.UpdatedAt = now

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if sponsor.Active {
			if err := u.repo.DeactivateAllExcept(txCtx, uuid.Nil); err != nil {
				return err
			}
		}
		return u.repo.Create(txCtx, sponsor)
	})
	if err != nil {
		return nil, sponsorError(err)
	}
	return sponsor, nil
}

func (u *SponsorUsecase) Update(ctx context.Context, id uuid.UUID, input entities.UpdateSponsorInput) (*entities.Sponsor, error) {
	var sponsor *entities.Sponsor
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		current, err := u.repo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		input.Apply(current)
		current.UpdatedAt = u.now()
		if current.Active {
			if err := u.repo.DeactivateAllExcept(txCtx, current.ID); err != nil {
				return err
			}
		}
		if err := u.repo.Update(txCtx, current); err != nil {
			return err
		}
		sponsor = current
		return nil
	})
	if err != nil {
		return nil, sponsorError(err)
	}
	return sponsor, nil
}

func (u *SponsorUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return sponsorError(err)
	}
	return nil
}

// Activate makes id the only active sponsor. A missing id leaves every
// sponsor untouched.
func (u *SponsorUsecase) Activate(ctx context.Context, id uuid.UUID) (*entities.Sponsor, error) {
	var sponsor *entities.Sponsor
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if _, err := u.repo.GetByID(txCtx, id); err != nil {
			return err
		}
		if err := u.repo.DeactivateAllExcept(txCtx, id); err != nil {
			return err
		}
		if err := u.repo.SetActive(txCtx, id); err != nil {
			return err
		}
		activated, err := u.repo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		sponsor = activated
		return nil
	})
	if err != nil {
		return nil, sponsorError(err)
	}
	return sponsor, nil
}

func sponsorError(err error) error {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound(msgSponsorNotFound)
	case errors.Is(err, domainerrors.ErrConflict):
		return domainerrors.Conflict(msgSponsorConflict)
	default:
		return err
	}
}
