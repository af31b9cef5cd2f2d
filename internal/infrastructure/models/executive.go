package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Executive maps the executives table. The partial unique index keeps a
// role held by at most one visible executive.
type Executive struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name        string      `gorm:"type:varchar(100);not null;index"`
	Role        string      `gorm:"type:varchar(100);not null;uniqueIndex:uq_executives_visible_role,where:visible = true"`
	Bio         string      `gorm:"type:varchar(500);not null"`
	PhotoURL    string      `gorm:"column:photo_url;type:text;not null"`
	Email       null.String `gorm:"type:varchar(254)"`
	LinkedInURL null.String `gorm:"column:linkedin_url;type:text"`
	Visible     bool        `gorm:"not null;index:idx_executives_visible_order,priority:1"`
	Order       int         `gorm:"column:display_order;not null;index:idx_executives_visible_order,priority:2"`
	CreatedAt   time.Time   `gorm:"not null"`
	UpdatedAt   time.Time   `gorm:"not null"`
}

func (Executive) TableName() string {
	return "executives"
}
