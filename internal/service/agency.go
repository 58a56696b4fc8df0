package service

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/api/dto"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
)

// AgencyService manages the tenant organization record
type AgencyService interface {
	CreateAgency(ctx context.Context, req dto.CreateAgencyRequest) (*dto.AgencyResponse, error)
	GetAgency(ctx context.Context, id string) (*dto.AgencyResponse, error)
	UpdateAgency(ctx context.Context, id string, req dto.UpdateAgencyRequest) (*dto.AgencyResponse, error)
}

type agencyService struct {
	ServiceParams
}

func NewAgencyService(params ServiceParams) AgencyService {
	return &agencyService{
		ServiceParams: params,
	}
}

func (s *agencyService) CreateAgency(ctx context.Context, req dto.CreateAgencyRequest) (*dto.AgencyResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Slugs are globally unique across tenants
	if existing, err := s.AgencyRepo.GetBySlug(ctx, req.Slug); err == nil && existing != nil {
		return nil, ierr.NewError("an agency with this slug already exists").
			WithHint("Choose a different slug").
			WithReportableDetails(map[string]any{
				"slug": req.Slug,
			}).
			Mark(ierr.ErrAlreadyExists)
	} else if err != nil && !ierr.IsNotFound(err) {
		return nil, err
	}

	a := req.ToAgency(ctx)
	// Agencies are their own tenant partition
	a.AgencyID = a.ID
	if err := a.Validate(); err != nil {
		return nil, err
	}

	if err := s.AgencyRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	return &dto.AgencyResponse{Agency: a}, nil
}

func (s *agencyService) GetAgency(ctx context.Context, id string) (*dto.AgencyResponse, error) {
	if id == "" {
		id = types.GetAgencyID(ctx)
	}

	a, err := s.AgencyRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.AgencyResponse{Agency: a}, nil
}

func (s *agencyService) UpdateAgency(ctx context.Context, id string, req dto.UpdateAgencyRequest) (*dto.AgencyResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.AgencyRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.ContactEmail != nil {
		a.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		a.ContactPhone = *req.ContactPhone
	}
	if req.Website != nil {
		a.Website = *req.Website
	}
	if req.LogoURL != nil {
		a.LogoURL = *req.LogoURL
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	if err := s.AgencyRepo.Update(ctx, a); err != nil {
		return nil, err
	}

	return &dto.AgencyResponse{Agency: a}, nil
}
