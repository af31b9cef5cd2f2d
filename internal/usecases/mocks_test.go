package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"club-site.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock Locker
type MockLocker struct {
	mock.Mock
	released int
}

func (m *MockLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	args := m.Called(ctx, key, ttl)
	if err := args.Error(0); err != nil {
		return nil, err
	}
	return func() { m.released++ }, nil
}

// Mock ExecutiveRepository
type MockExecutiveRepository struct {
	mock.Mock
}

func (m *MockExecutiveRepository) Create(ctx context.Context, exec *entities.Executive) error {
	args := m.Called(ctx, exec)
	return args.Error(0)
}

func (m *MockExecutiveRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Executive, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Executive), args.Error(1)
}

func (m *MockExecutiveRepository) ListVisible(ctx context.Context) ([]*entities.Executive, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Executive), args.Error(1)
}

func (m *MockExecutiveRepository) List(ctx context.Context, limit, offset int) ([]*entities.Executive, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Executive), args.Get(1).(int64), args.Error(2)
}

func (m *MockExecutiveRepository) Update(ctx context.Context, exec *entities.Executive) error {
	args := m.Called(ctx, exec)
	return args.Error(0)
}

func (m *MockExecutiveRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockExecutiveRepository) FindVisibleByRole(ctx context.Context, role string, excludeID uuid.UUID) (*entities.Executive, error) {
	args := m.Called(ctx, role, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Executive), args.Error(1)
}

func (m *MockExecutiveRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockExecutiveRepository) CountVisible(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock SponsorRepository
type MockSponsorRepository struct {
	mock.Mock
}

func (m *MockSponsorRepository) Create(ctx context.Context, sponsor *entities.Sponsor) error {
	args := m.Called(ctx, sponsor)
	return args.Error(0)
}

func (m *MockSponsorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Sponsor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Sponsor), args.Error(1)
}

func (m *MockSponsorRepository) GetActive(ctx context.Context) (*entities.Sponsor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Sponsor), args.Error(1)
}

func (m *MockSponsorRepository) List(ctx context.Context, limit, offset int) ([]*entities.Sponsor, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Sponsor), args.Get(1).(int64), args.Error(2)
}

func (m *MockSponsorRepository) Update(ctx context.Context, sponsor *entities.Sponsor) error {
	args := m.Called(ctx, sponsor)
	return args.Error(0)
}

func (m *MockSponsorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSponsorRepository) DeactivateAllExcept(ctx context.Context, keepID uuid.UUID) error {
	args := m.Called(ctx, keepID)
	return args.Error(0)
}

func (m *MockSponsorRepository) SetActive(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSponsorRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSponsorRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock InterestSubmissionRepository
type MockInterestSubmissionRepository struct {
	mock.Mock
}

func (m *MockInterestSubmissionRepository) Create(ctx context.Context, sub *entities.InterestSubmission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockInterestSubmissionRepository) List(ctx context.Context, limit, offset int) ([]*entities.InterestSubmission, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.InterestSubmission), args.Get(1).(int64), args.Error(2)
}

func (m *MockInterestSubmissionRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInterestSubmissionRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInterestSubmissionRepository) ExistsByEmailSince(ctx context.Context, email string, since time.Time) (bool, error) {
	args := m.Called(ctx, email, since)
	return args.Bool(0), args.Error(1)
}

func (m *MockInterestSubmissionRepository) CountByAffiliation(ctx context.Context) ([]entities.ValueCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ValueCount), args.Error(1)
}

func (m *MockInterestSubmissionRepository) CountByExperienceLevel(ctx context.Context) ([]entities.ValueCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ValueCount), args.Error(1)
}

// Mock SponsorInquiryRepository
type MockSponsorInquiryRepository struct {
	mock.Mock
}

func (m *MockSponsorInquiryRepository) Create(ctx context.Context, inquiry *entities.SponsorInquiry) error {
	args := m.Called(ctx, inquiry)
	return args.Error(0)
}

func (m *MockSponsorInquiryRepository) List(ctx context.Context, limit, offset int) ([]*entities.SponsorInquiry, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.SponsorInquiry), args.Get(1).(int64), args.Error(2)
}

func (m *MockSponsorInquiryRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSponsorInquiryRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSponsorInquiryRepository) CountByEmailSince(ctx context.Context, email string, since time.Time) (int64, error) {
	args := m.Called(ctx, email, since)
	return args.Get(0).(int64), args.Error(1)
}
