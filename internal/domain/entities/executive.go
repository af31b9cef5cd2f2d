package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Executive is a club officer shown on the public team page when Visible.
type Executive struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Role        string      `json:"role"`
	Bio         string      `json:"bio"`
	PhotoURL    string      `json:"photoUrl"`
	Email       null.String `json:"email"`
	LinkedInURL null.String `json:"linkedinUrl"`
	Visible     bool        `json:"visible"`
	Order       int         `json:"order"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type CreateExecutiveInput struct {
	Name        string  `json:"name" label:"Name" validate:"required,max=100"`
	Role        string  `json:"role" label:"Role" validate:"required,max=100"`
	Bio         string  `json:"bio" label:"Bio" validate:"required,max=500"`
	PhotoURL    string  `json:"photoUrl" label:"Photo URL" validate:"required,url"`
	Email       *string `json:"email" label:"Email" validate:"omitnil,email"`
	LinkedInURL *string `json:"linkedinUrl" label:"LinkedIn URL" validate:"omitnil,url"`
	Visible     *bool   `json:"visible"`
	Order       *int    `json:"order" label:"Order" validate:"omitnil,min=0"`
}

func (in *CreateExecutiveInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Role = strings.TrimSpace(in.Role)
	in.Bio = strings.TrimSpace(in.Bio)
	in.PhotoURL = strings.TrimSpace(in.PhotoURL)
	in.Email = normalizeEmailPtr(in.Email)
	in.LinkedInURL = trimPtr(in.LinkedInURL)
}

// ToEntity applies the defaults: visible, order 0.
func (in CreateExecutiveInput) ToEntity() *Executive {
	e := &Executive{
		Name:        in.Name,
		Role:        in.Role,
		Bio:         in.Bio,
		PhotoURL:    in.PhotoURL,
		Email:       null.StringFromPtr(in.Email),
		LinkedInURL: null.StringFromPtr(in.LinkedInURL),
		Visible:     true,
	}
	if in.Visible != nil {
		e.Visible = *in.Visible
	}
	if in.Order != nil {
		e.Order = *in.Order
	}
	return e
}

// UpdateExecutiveInput is a partial update; nil fields are left untouched.
type UpdateExecutiveInput struct {
	Name        *string `json:"name" label:"Name" validate:"omitnil,min=1,max=100"`
	Role        *string `json:"role" label:"Role" validate:"omitnil,min=1,max=100"`
	Bio         *string `json:"bio" label:"Bio" validate:"omitnil,min=1,max=500"`
	PhotoURL    *string `json:"photoUrl" label:"Photo URL" validate:"omitnil,url"`
	Email       *string `json:"email" label:"Email" validate:"omitnil,email"`
	LinkedInURL *string `json:"linkedinUrl" label:"LinkedIn URL" validate:"omitnil,url"`
	Visible     *bool   `json:"visible"`
	Order       *int    `json:"order" label:"Order" validate:"omitnil,min=0"`
}

func (in *UpdateExecutiveInput) Normalize() {
	in.Name = trimPtr(in.Name)
	in.Role = trimPtr(in.Role)
	in.Bio = trimPtr(in.Bio)
	in.PhotoURL = trimPtr(in.PhotoURL)
	in.Email = normalizeEmailPtr(in.Email)
	in.LinkedInURL = trimPtr(in.LinkedInURL)
}

func (in UpdateExecutiveInput) Apply(e *Executive) {
	if in.Name != nil {
		e.Name = *in.Name
	}
	if in.Role != nil {
		e.Role = *in.Role
	}
	if in.Bio != nil {
		e.Bio = *in.Bio
	}
	if in.PhotoURL != nil {
		e.PhotoURL = *in.PhotoURL
	}
	if in.Email != nil {
		e.Email = null.StringFrom(*in.Email)
	}
	if in.LinkedInURL != nil {
		e.LinkedInURL = null.StringFrom(*in.LinkedInURL)
	}
	if in.Visible != nil {
		e.Visible = *in.Visible
	}
	if in.Order != nil {
		e.Order = *in.Order
	}
}
