package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"club-site.backend/internal/domain/entities"
	domainerrors "club-site.backend/internal/domain/errors"
	"club-site.backend/internal/infrastructure/models"
)

type SponsorRepository struct {
	db *gorm.DB
}

func NewSponsorRepository(db *gorm.DB) *SponsorRepository {
	return &SponsorRepository{db: db}
}

func (r *SponsorRepository) Create(ctx context.Context, sponsor *entities.Sponsor) error {
	stampNew(&sponsor.ID, &sponsor.CreatedAt, &sponsor.UpdatedAt)
	m := r.toModel(sponsor)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	sponsor.CreatedAt = m.CreatedAt
	sponsor.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *SponsorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Sponsor, error) {
	var m models.Sponsor
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

func (r *SponsorRepository) GetActive(ctx context.Context) (*entities.Sponsor, error) {
	var m models.Sponsor
	if err := GetDB(ctx, r.db).Where("active = ?", true).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

func (r *SponsorRepository) List(ctx context.Context, limit, offset int) ([]*entities.Sponsor, int64, error) {
	var total int64
	db := GetDB(ctx, r.db)
	if err := db.Model(&models.Sponsor{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Sponsor
	if err := db.Order("active DESC, name ASC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	return collect(ms, r.toEntity), total, nil
}

func (r *SponsorRepository) Update(ctx context.Context, sponsor *entities.Sponsor) error {
	if sponsor.UpdatedAt.IsZero() {
		sponsor.UpdatedAt = time.Now().UTC()
	}
	updates := map[string]interface{}{
		"name":        sponsor.Name,
		"logo_url":    sponsor.LogoURL,
		"website_url": sponsor.WebsiteURL,
		"blurb":       sponsor.Blurb,
		"active":      sponsor.Active,
		"updated_at":  sponsor.UpdatedAt,
	}

	result := GetDB(ctx, r.db).
		Model(&models.Sponsor{}).
		Where("id = ?", sponsor.ID).
		Updates(updates)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *SponsorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Delete(&models.Sponsor{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *SponsorRepository) DeactivateAllExcept(ctx context.Context, keepID uuid.UUID) error {
	query := GetDB(ctx, r.db).Model(&models.Sponsor{}).Where("active = ?", true)
	if keepID != uuid.Nil {
		query = query.Where("id <> ?", keepID)
	}
	return query.Updates(map[string]interface{}{
		"active":     false,
		"updated_at": time.Now().UTC(),
	}).Error
}

func (r *SponsorRepository) SetActive(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).
		Model(&models.Sponsor{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"active":     true,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *SponsorRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := GetDB(ctx, r.db).Model(&models.Sponsor{}).Count(&n).Error
	return n, err
}

func (r *SponsorRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := GetDB(ctx, r.db).Model(&models.Sponsor{}).Where("active = ?", true).Count(&n).Error
	return n, err
}

func (r *SponsorRepository) toEntity(m *models.Sponsor) *entities.Sponsor {
	return &entities.Sponsor{
		ID:         m.ID,
		Name:       m.Name,
		LogoURL:    m.LogoURL,
		WebsiteURL: m.WebsiteURL,
		Blurb:      m.Blurb,
		Active:     m.Active,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (r *SponsorRepository) toModel(e *entities.Sponsor) *models.Sponsor {
	return &models.Sponsor{
		ID:         e.ID,
		Name:       e.Name,
		LogoURL:    e.LogoURL,
		WebsiteURL: e.WebsiteURL,
		Blurb:      e.Blurb,
		Active:     e.Active,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
