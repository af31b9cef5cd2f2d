package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

const (
	AffiliationGTStudent = "GT Student"
	AffiliationOther     = "Other"

	ExperienceBeginner     = "Beginner"
	ExperienceIntermediate = "Intermediate"
	ExperienceAdvanced     = "Advanced"
)

// InterestSubmission is one public "join the club" form entry. Read-only
// once created.
type InterestSubmission struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Phone           null.String `json:"phone"`
	Affiliation     string      `json:"affiliation"`
	ExperienceLevel string      `json:"experienceLevel"`
	Notes           null.String `json:"notes"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

type CreateInterestSubmissionInput struct {
	Name            string  `json:"name" label:"Name" validate:"required,max=100"`
	Email           string  `json:"email" label:"Email" validate:"required,email"`
	Phone           *string `json:"phone" label:"Phone" validate:"omitnil,phone"`
	Affiliation     string  `json:"affiliation" label:"Affiliation" validate:"affiliation"`
	ExperienceLevel string  `json:"experienceLevel" label:"Experience level" validate:"experience"`
	Notes           *string `json:"notes" label:"Notes" validate:"omitnil,max=1000"`
}

func (in *CreateInterestSubmissionInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = trimPtr(in.Phone)
	in.Affiliation = strings.TrimSpace(in.Affiliation)
	in.ExperienceLevel = strings.TrimSpace(in.ExperienceLevel)
	in.Notes = trimPtr(in.Notes)
}

func (in CreateInterestSubmissionInput) ToEntity() *InterestSubmission {
	return &InterestSubmission{
		Name:            in.Name,
		Email:           in.Email,
		Phone:           null.StringFromPtr(in.Phone),
		Affiliation:     in.Affiliation,
		ExperienceLevel: in.ExperienceLevel,
		Notes:           null.StringFromPtr(in.Notes),
	}
}

// ValueCount is one group of a count-by-value aggregation.
type ValueCount struct {
	Value string `json:"_id"`
	Count int64  `json:"count"`
}

// InterestStats summarises interest submissions for the admin panel.
type InterestStats struct {
	TotalSubmissions  int64        `json:"totalSubmissions"`
	RecentSubmissions int64        `json:"recentSubmissions"`
	AffiliationStats  []ValueCount `json:"affiliationStats"`
	ExperienceStats   []ValueCount `json:"experienceStats"`
}
