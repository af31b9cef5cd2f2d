package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

type InterestSubmission struct {
	ID              uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name            string      `gorm:"type:varchar(100);not null"`
	Email           string      `gorm:"type:varchar(254);not null;index:idx_interest_submissions_email_created,priority:1"`
	Phone           null.String `gorm:"type:varchar(32)"`
	Affiliation     string      `gorm:"type:varchar(32);not null;index:idx_interest_submissions_profile,priority:1"`
	ExperienceLevel string      `gorm:"column:experience_level;type:varchar(32);not null;index:idx_interest_submissions_profile,priority:2"`
	Notes           null.String `gorm:"type:varchar(1000)"`
	CreatedAt       time.Time   `gorm:"not null;index;index:idx_interest_submissions_email_created,priority:2"`
	UpdatedAt       time.Time   `gorm:"not null"`
}

func (InterestSubmission) TableName() string {
	return "interest_submissions"
}
