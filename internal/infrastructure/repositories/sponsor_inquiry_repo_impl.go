package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"club-site.backend/internal/domain/entities"
	"club-site.backend/internal/infrastructure/models"
)

type SponsorInquiryRepository struct {
	db *gorm.DB
}

func NewSponsorInquiryRepository(db *gorm.DB) *SponsorInquiryRepository {
	return &SponsorInquiryRepository{db: db}
}

func (r *SponsorInquiryRepository) Create(ctx context.Context, inquiry *entities.SponsorInquiry) error {
	stampNew(&inquiry.ID, &inquiry.CreatedAt, &inquiry.UpdatedAt)
	m := &models.SponsorInquiry{
		ID:        inquiry.ID,
		Name:      inquiry.Name,
		Email:     inquiry.Email,
		Company:   inquiry.Company,
		Message:   inquiry.Message,
		CreatedAt: inquiry.CreatedAt,
		UpdatedAt: inquiry.UpdatedAt,
	}
	return translateError(GetDB(ctx, r.db).Create(m).Error)
}

func (r *SponsorInquiryRepository) List(ctx context.Context, limit, offset int) ([]*entities.SponsorInquiry, int64, error) {
	var total int64
	db := GetDB(ctx, r.db)
	if err := db.Model(&models.SponsorInquiry{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.SponsorInquiry
	if err := db.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	return collect(ms, r.toEntity), total, nil
}

func (r *SponsorInquiryRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := GetDB(ctx, r.db).Model(&models.SponsorInquiry{}).Count(&n).Error
	return n, err
}

func (r *SponsorInquiryRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := GetDB(ctx, r.db).
		Model(&models.SponsorInquiry{}).
		Where("created_at >= ?", since.UTC()).
		Count(&n).Error
	return n, err
}

func (r *SponsorInquiryRepository) CountByEmailSince(ctx context.Context, email string, since time.Time) (int64, error) {
	var n int64
	err := GetDB(ctx, r.db).
		Model(&models.SponsorInquiry{}).
		Where("email = ? AND created_at >= ?", email, since.UTC()).
		Count(&n).Error
	return n, err
}

func (r *SponsorInquiryRepository) toEntity(m *models.SponsorInquiry) *entities.SponsorInquiry {
	return &entities.SponsorInquiry{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Company:   m.Company,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
