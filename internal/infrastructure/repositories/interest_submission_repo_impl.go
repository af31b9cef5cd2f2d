package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"club-site.backend/internal/domain/entities"
	"club-site.backend/internal/infrastructure/models"
)

type InterestSubmissionRepository struct {
	db *gorm.DB
}

func NewInterestSubmissionRepository(db *gorm.DB) *InterestSubmissionRepository {
	return &InterestSubmissionRepository{db: db}
}

func (r *InterestSubmissionRepository) Create(ctx context.Context, sub *entities.InterestSubmission) error {
	stampNew(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)
	m := &models.InterestSubmission{
		ID:              sub.ID,
		Name:            sub.Name,
		Email:           sub.Email,
		Phone:           sub.Phone,
		Affiliation:     sub.Affiliation,
		ExperienceLevel: sub.ExperienceLevel,
		Notes:           sub.Notes,
		CreatedAt:       sub.CreatedAt,
		UpdatedAt:       sub.UpdatedAt,
	}
	return translateError(GetDB(ctx, r.db).Create(m).Error)
}

func (r *InterestSubmissionRepository) List(ctx context.Context, limit, offset int) ([]*entities.InterestSubmission, int64, error) {
	var total int64
	db := GetDB(ctx, r.db)
	if err := db.Model(&models.InterestSubmission{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.InterestSubmission
	if err := db.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	return collect(ms, r.toEntity), total, nil
}

func (r *InterestSubmissionRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := GetDB(ctx, r.db).Model(&models.InterestSubmission{}).Count(&n).Error
	return n, err
}

func (r *InterestSubmissionRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := GetDB(ctx, r.db).
		Model(&models.InterestSubmission{}).
		Where("created_at >= ?", since.UTC()).
		Count(&n).Error
	return n, err
}

func (r *InterestSubmissionRepository) ExistsByEmailSince(ctx context.Context, email string, since time.Time) (bool, error) {
	var ids []string
	err := GetDB(ctx, r.db).
		Model(&models.InterestSubmission{}).
		Where("email = ? AND created_at >= ?", email, since.UTC()).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

func (r *InterestSubmissionRepository) CountByAffiliation(ctx context.Context) ([]entities.ValueCount, error) {
	return r.countBy(ctx, "affiliation")
}

func (r *InterestSubmissionRepository) CountByExperienceLevel(ctx context.Context) ([]entities.ValueCount, error) {
	return r.countBy(ctx, "experience_level")
}

// countBy groups on a fixed column name; it is never fed user input.
func (r *InterestSubmissionRepository) countBy(ctx context.Context, column string) ([]entities.ValueCount, error) {
	var rows []struct {
		Value string
		Count int64
	}
	if err := GetDB(ctx, r.db).
		Model(&models.InterestSubmission{}).
		Select(column + " AS value, COUNT(*) AS count").
		Group(column).
		Order("count DESC, value ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entities.ValueCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.ValueCount{Value: row.Value, Count: row.Count})
	}
	return out, nil
}

func (r *InterestSubmissionRepository) toEntity(m *models.InterestSubmission) *entities.InterestSubmission {
	return &entities.InterestSubmission{
		ID:              m.ID,
		Name:            m.Name,
		Email:           m.Email,
		Phone:           m.Phone,
		Affiliation:     m.Affiliation,
		ExperienceLevel: m.ExperienceLevel,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
