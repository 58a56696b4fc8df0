package service

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/api/dto"
	"github.com/agencyhub/agencyhub/internal/cache"
	"github.com/agencyhub/agencyhub/internal/domain/client"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/samber/lo"
)

// ClientService handles client management operations
type ClientService interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error)
	GetClient(ctx context.Context, id string) (*dto.ClientResponse, error)
	ListClients(ctx context.Context, filter *types.ClientFilter) (*dto.ListClientsResponse, error)
	UpdateClient(ctx context.Context, id string, req dto.UpdateClientRequest) (*dto.ClientResponse, error)
	DeleteClient(ctx context.Context, id string) error
}

type clientService struct {
	ServiceParams
}

func NewClientService(params ServiceParams) ClientService {
	return &clientService{
		ServiceParams: params,
	}
}

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := req.ToClient(ctx)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := s.ClientRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	return &dto.ClientResponse{Client: c}, nil
}

func (s *clientService) GetClient(ctx context.Context, id string) (*dto.ClientResponse, error) {
	if id == "" {
		return nil, ierr.NewError("client id is required").
			WithHint("Client ID is required").
			Mark(ierr.ErrValidation)
	}

	cacheKey := cache.GenerateKey(cache.PrefixClient, types.GetAgencyID(ctx), id)
	if cached, found := s.Cache.Get(ctx, cacheKey); found {
		if c, ok := cached.(*dto.ClientResponse); ok {
			return c, nil
		}
	}

	c, err := s.ClientRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := &dto.ClientResponse{Client: c}
	s.Cache.Set(ctx, cacheKey, resp, cache.DefaultExpiration)
	return resp, nil
}

func (s *clientService) ListClients(ctx context.Context, filter *types.ClientFilter) (*dto.ListClientsResponse, error) {
	if filter == nil {
		filter = types.NewClientFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	clients, err := s.ClientRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.ClientRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(clients, func(c *client.Client, _ int) *dto.ClientResponse {
		return &dto.ClientResponse{Client: c}
	})

	resp := types.NewListResponse(items, count, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *clientService) UpdateClient(ctx context.Context, id string, req dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.ClientRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.ContactName != nil {
		c.ContactName = *req.ContactName
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Industry != nil {
		c.Industry = *req.Industry
	}
	if req.ClientStatus != nil {
		c.ClientStatus = *req.ClientStatus
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}
	if req.CustomFields != nil {
		c.CustomFields = req.CustomFields
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := s.ClientRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	s.Cache.DeleteByPrefix(ctx, cache.GenerateKey(cache.PrefixClient, types.GetAgencyID(ctx), id))
	return &dto.ClientResponse{Client: c}, nil
}

func (s *clientService) DeleteClient(ctx context.Context, id string) error {
	if id == "" {
		return ierr.NewError("client id is required").
			WithHint("Client ID is required").
			Mark(ierr.ErrValidation)
	}

	if _, err := s.ClientRepo.Get(ctx, id); err != nil {
		return err
	}

	if err := s.ClientRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.Cache.DeleteByPrefix(ctx, cache.GenerateKey(cache.PrefixClient, types.GetAgencyID(ctx), id))
	return nil
}
