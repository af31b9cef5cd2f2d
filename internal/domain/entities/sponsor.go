package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sponsor is a partner organisation; at most one is Active and shown publicly.
type Sponsor struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	LogoURL    string    `json:"logoUrl"`
	WebsiteURL string    `json:"websiteUrl"`
	Blurb      string    `json:"blurb"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CreateSponsorInput struct {
	Name       string `json:"name" label:"Name" validate:"required,max=100"`
	LogoURL    string `json:"logoUrl" label:"Logo URL" validate:"required,url"`
	WebsiteURL string `json:"websiteUrl" label:"Website URL" validate:"required,http_url"`
	Blurb      string `json:"blurb" label:"Blurb" validate:"required,max=300"`
	Active     *bool  `json:"active"`
}

func (in *CreateSponsorInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.LogoURL = strings.TrimSpace(in.LogoURL)
	in.WebsiteURL = strings.TrimSpace(in.WebsiteURL)
	in.Blurb = strings.TrimSpace(in.Blurb)
}

// ToEntity applies the default: inactive.
func (in CreateSponsorInput) ToEntity() *Sponsor {
	s := &Sponsor{
		Name:       in.Name,
		LogoURL:    in.LogoURL,
		WebsiteURL: in.WebsiteURL,
		Blurb:      in.Blurb,
	}
	if in.Active != nil {
		s.Active = *in.Active
	}
	return s
}

type UpdateSponsorInput struct {
	Name       *string `json:"name" label:"Name" validate:"omitnil,min=1,max=100"`
	LogoURL    *string `json:"logoUrl" label:"Logo URL" validate:"omitnil,url"`
	WebsiteURL *string `json:"websiteUrl" label:"Website URL" validate:"omitnil,http_url"`
	Blurb      *string `json:"blurb" label:"Blurb" validate:"omitnil,min=1,max=300"`
	Active     *bool   `json:"active"`
}

func (in *UpdateSponsorInput) Normalize() {
	in.Name = trimPtr(in.Name)
	in.LogoURL = trimPtr(in.LogoURL)
	in.WebsiteURL = trimPtr(in.WebsiteURL)
	in.Blurb = trimPtr(in.Blurb)
}

func (in UpdateSponsorInput) Apply(s *Sponsor) {
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.LogoURL != nil {
		s.LogoURL = *in.LogoURL
	}
	if in.WebsiteURL != nil {
		s.WebsiteURL = *in.WebsiteURL
	}
	if in.Blurb != nil {
		s.Blurb = *in.Blurb
	}
	if in.Active != nil {
		s.Active = *in.Active
	}
}
