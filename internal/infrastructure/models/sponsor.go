package models

import (
	"time"

	"github.com/google/uuid"
)

type Sponsor struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(100);not null"`
	LogoURL    string    `gorm:"column:logo_url;type:text;not null"`
	WebsiteURL string    `gorm:"column:website_url;type:text;not null"`
	Blurb      string    `gorm:"type:varchar(300);not null"`
	Active     bool      `gorm:"not null;uniqueIndex:uq_sponsors_single_active,where:active = true"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (Sponsor) TableName() string {
	return "sponsors"
}
