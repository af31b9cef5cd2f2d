package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"club-site.backend/internal/domain/entities"
	domainerrors "club-site.backend/internal/domain/errors"
	"club-site.backend/internal/infrastructure/models"
	"club-site.backend/pkg/utils"
)

const executiveOrder = "display_order ASC, name ASC"

type ExecutiveRepository struct {
	db *gorm.DB
}

func NewExecutiveRepository(db *gorm.DB) *ExecutiveRepository {
	return &ExecutiveRepository{db: db}
}

func (r *ExecutiveRepository) Create(ctx context.Context, exec *entities.Executive) error {
	stampNew(&exec.ID, &exec.CreatedAt, &exec.UpdatedAt)
	m := r.toModel(exec)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	exec.CreatedAt = m.CreatedAt
	exec.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ExecutiveRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Executive, error) {
	var m models.Executive
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

func (r *ExecutiveRepository) ListVisible(ctx context.Context) ([]*entities.Executive, error) {
	var ms []models.Executive
	if err := GetDB(ctx, r.db).
		Where("visible = ?", true).
		Order(executiveOrder).
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return collect(ms, r.toEntity), nil
}

func (r *ExecutiveRepository) List(ctx context.Context, limit, offset int) ([]*entities.Executive, int64, error) {
	var total int64
	db := GetDB(ctx, r.db)
	if err := db.Model(&models.Executive{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Executive
	if err := db.Order(executiveOrder).Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	return collect(ms, r.toEntity), total, nil
}

func (r *ExecutiveRepository) Update(ctx context.Context, exec *entities.Executive) error {
	if exec.UpdatedAt.IsZero() {
		exec.UpdatedAt = time.Now().UTC()
	}
	updates := map[string]interface{}{
		"name":          exec.Name,
		"role":          exec.Role,
		"bio":           exec.Bio,
		"photo_url":     exec.PhotoURL,
		"email":         exec.Email,
		"linkedin_url":  exec.LinkedInURL,
		"visible":       exec.Visible,
		"display_order": exec.Order,
		"updated_at":    exec.UpdatedAt,
	}

	result := GetDB(ctx, r.db).
		Model(&models.Executive{}).
		Where("id = ?", exec.ID).
		Updates(updates)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ExecutiveRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Delete(&models.Executive{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ExecutiveRepository) FindVisibleByRole(ctx context.Context, role string, excludeID uuid.UUID) (*entities.Executive, error) {
	query := GetDB(ctx, r.db).Where("role = ? AND visible = ?", role, true)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	var m models.Executive
	if err := query.First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

func (r *ExecutiveRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := GetDB(ctx, r.db).Model(&models.Executive{}).Count(&n).Error
	return n, err
}

func (r *ExecutiveRepository) CountVisible(ctx context.Context) (int64, error) {
	var n int64
	err := GetDB(ctx, r.db).Model(&models.Executive{}).Where("visible = ?", true).Count(&n).Error
	return n, err
}

func (r *ExecutiveRepository) toEntity(m *models.Executive) *entities.Executive {
	return &entities.Executive{
		ID:          m.ID,
		Name:        m.Name,
		Role:        m.Role,
		Bio:         m.Bio,
		PhotoURL:    m.PhotoURL,
		Email:       m.Email,
		LinkedInURL: m.LinkedInURL,
		Visible:     m.Visible,
		Order:       m.Order,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *ExecutiveRepository) toModel(e *entities.Executive) *models.Executive {
	return &models.Executive{
		ID:          e.ID,
		Name:        e.Name,
		Role:        e.Role,
		Bio:         e.Bio,
		PhotoURL:    e.PhotoURL,
		Email:       e.Email,
		LinkedInURL: e.LinkedInURL,
		Visible:     e.Visible,
		Order:       e.Order,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// stampNew fills the identity and timestamps a caller left unset.
func stampNew(id *uuid.UUID, createdAt, updatedAt *time.Time) {
	if *id == uuid.Nil {
		*id = utils.GenerateUUIDv7()
	}
	if createdAt.IsZero() {
		*createdAt = time.Now().UTC()
	}
	if updatedAt.IsZero() {
		*updatedAt = *createdAt
	}
}
