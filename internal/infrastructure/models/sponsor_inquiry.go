package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

type SponsorInquiry struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name      string      `gorm:"type:varchar(100);not null"`
	Email     string      `gorm:"type:varchar(254);not null;index:idx_sponsor_inquiries_email_created,priority:1"`
	Company   null.String `gorm:"type:varchar(100);index"`
	Message   string      `gorm:"type:varchar(2000);not null"`
	CreatedAt time.Time   `gorm:"not null;index;index:idx_sponsor_inquiries_email_created,priority:2"`
	UpdatedAt time.Time   `gorm:"not null"`
}

func (SponsorInquiry) TableName() string {
	return "sponsor_inquiries"
}

// All lists every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&Executive{},
		&Sponsor{},
		&InterestSubmission{},
		&SponsorInquiry{},
	}
}
