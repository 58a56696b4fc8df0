package dto

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/domain/agency"
	"github.com/agencyhub/agencyhub/internal/types"
)

type CreateAgencyRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	Slug         string `json:"slug" validate:"required,max=100,lowercase"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone" validate:"omitempty,max=50"`
	Website      string `json:"website" validate:"omitempty,url"`
	LogoURL      string `json:"logo_url" validate:"omitempty,url"`
}

type UpdateAgencyRequest struct {
	Name         *string `json:"name" validate:"omitempty,max=255"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone *string `json:"contact_phone" validate:"omitempty,max=50"`
	Website      *string `json:"website" validate:"omitempty,url"`
	LogoURL      *string `json:"logo_url" validate:"omitempty,url"`
}

type AgencyResponse struct {
	*agency.Agency
}

func (r *CreateAgencyRequest) Validate() error {
	return validateStruct(r)
}

func (r *CreateAgencyRequest) ToAgency(ctx context.Context) *agency.Agency {
	return &agency.Agency{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_AGENCY),
		Name:         r.Name,
		Slug:         r.Slug,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
		Website:      r.Website,
		LogoURL:      r.LogoURL,
		BaseModel:    types.GetDefaultBaseModel(ctx),
	}
}

func (r *UpdateAgencyRequest) Validate() error {
	return validateStruct(r)
}
