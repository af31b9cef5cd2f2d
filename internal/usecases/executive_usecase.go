package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"club-site.backend/internal/domain/entities"
	domainerrors "club-site.backend/internal/domain/errors"
	"club-site.backend/internal/domain/repositories"
	"club-site.backend/pkg/utils"
)

// ExecutiveUsecase manages executives. A role is held by at most one
// visible executive.
type ExecutiveUsecase struct {
	repo repositories.ExecutiveRepository
	uow  repositories.UnitOfWork
	now  func() time.Time
}

func NewExecutiveUsecase(repo repositories.ExecutiveRepository, uow repositories.UnitOfWork) *ExecutiveUsecase {
	return &ExecutiveUsecase{repo: repo, uow: uow, now: utcNow}
}

// WithClock replaces the time source.
func (u *ExecutiveUsecase) WithClock(now func() time.Time) *ExecutiveUsecase {
	u.now = now
	return u
}

func (u *ExecutiveUsecase) ListVisible(ctx context.Context) ([]*entities.Executive, error) {
	items, err := u.repo.ListVisible(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*entities.Executive{}
	}
	return items, nil
}

func (u *ExecutiveUsecase) List(ctx context.Context, p utils.PaginationParams) (utils.Page[*entities.Executive], error) {
	items, total, err := u.repo.List(ctx, p.Limit, p.CalculateOffset())
	if err != nil {
		return utils.Page[*entities.Executive]{}, err
	}
	return utils.NewPage(items, total, p), nil
}

func (u *ExecutiveUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.Executive, error) {
	exec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, executiveError(err, "")
	}
	return exec, nil
}

func (u *ExecutiveUsecase) Create(ctx context.Context, input entities.CreateExecutiveInput) (*entities.Executive, error) {
	exec := input.ToEntity()
	now := u.now()
	exec.CreatedAt = now
	exec.UpdatedAt = now

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.ensureRoleFree(txCtx, exec); err != nil {
			return err
		}
		return u.repo.Create(txCtx, exec)
	})
	if err != nil {
		return nil, executiveError(err, exec.Role)
	}
	return exec, nil
}

func (u *ExecutiveUsecase) Update(ctx context.Context, id uuid.UUID, input entities.UpdateExecutiveInput) (*entities.Executive, error) {
	var exec *entities.Executive
	role := ""
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		current, err := u.repo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		input.Apply(current)
		role = current.Role
		current.UpdatedAt = u.now()
		if err := u.ensureRoleFree(txCtx, current); err != nil {
			return err
		}
		if err := u.repo.Update(txCtx, current); err != nil {
			return err
		}
		exec = current
		return nil
	})
	if err != nil {
		return nil, executiveError(err, role)
	}
	return exec, nil
}

func (u *ExecutiveUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return executiveError(err, "")
	}
	return nil
}

// ensureRoleFree fails when exec would be a second visible holder of its role.
func (u *ExecutiveUsecase) ensureRoleFree(ctx context.Context, exec *entities.Executive) error {
	if !exec.Visible {
		return nil
	}
	_, err := u.repo.FindVisibleByRole(ctx, exec.Role, exec.ID)
	switch {
	case err == nil:
		return &roleTakenError{role: exec.Role}
	case errors.Is(err, domainerrors.ErrNotFound):
		return nil
	default:
		return err
	}
}

type roleTakenError struct {
	role string
}

func (e *roleTakenError) Error() string {
	return fmt.Sprintf("An executive with the role \"%s\" already exists", e.role)
}

func (e *roleTakenError) Unwrap() error {
	return domainerrors.ErrConflict
}

func executiveError(err error, role string) error {
	var taken *roleTakenError
	switch {
	case errors.As(err, &taken):
		return domainerrors.Conflict(taken.Error())
	case errors.Is(err, domainerrors.ErrConflict):
		return domainerrors.Conflict((&roleTakenError{role: role}).Error())
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound(msgExecutiveNotFound)
	default:
		return err
	}
}
