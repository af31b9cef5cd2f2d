package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// SponsorInquiry is a public "sponsor us" contact request.
type SponsorInquiry struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Company   null.String `json:"company"`
	Message   string      `json:"message"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

type CreateSponsorInquiryInput struct {
	Name    string  `json:"name" label:"Name" validate:"required,max=100"`
	Email   string  `json:"email" label:"Email" validate:"required,email"`
	Company *string `json:"company" label:"Company name" validate:"omitnil,max=100"`
	Message string  `json:"message" label:"Message" validate:"required,max=2000"`
}

func (in *CreateSponsorInquiryInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Company = trimPtr(in.Company)
	in.Message = strings.TrimSpace(in.Message)
}

func (in CreateSponsorInquiryInput) ToEntity() *SponsorInquiry {
	return &SponsorInquiry{
		Name:    in.Name,
		Email:   in.Email,
		Company: null.StringFromPtr(in.Company),
		Message: in.Message,
	}
}
