package service

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/api/dto"
	"github.com/agencyhub/agencyhub/internal/domain/client"
	"github.com/agencyhub/agencyhub/internal/domain/lead"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/samber/lo"
)

// LeadService handles the sales pipeline: capture, qualification, and
// conversion of leads into clients
type LeadService interface {
	CreateLead(ctx context.Context, req dto.CreateLeadRequest) (*dto.LeadResponse, error)
	GetLead(ctx context.Context, id string) (*dto.LeadResponse, error)
	ListLeads(ctx context.Context, filter *types.LeadFilter) (*dto.ListLeadsResponse, error)
	UpdateLead(ctx context.Context, id string, req dto.UpdateLeadRequest) (*dto.LeadResponse, error)
	DeleteLead(ctx context.Context, id string) error
	IngestLead(ctx context.Context, platform string, req dto.IngestLeadRequest) (*dto.LeadResponse, error)
	ConvertLead(ctx context.Context, id string, req dto.ConvertLeadRequest) (*dto.ConvertLeadResponse, error)
	GetLeadStats(ctx context.Context) (*dto.LeadStatsResponse, error)
}

type leadService struct {
	ServiceParams
}

func NewLeadService(params ServiceParams) LeadService {
	return &leadService{
		ServiceParams: params,
	}
}

func (s *leadService) CreateLead(ctx context.Context, req dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	l := req.ToLead(ctx)
	if err := l.Validate(); err != nil {
		return nil, err
	}

	if err := s.LeadRepo.Create(ctx, l); err != nil {
		return nil, err
	}

	return &dto.LeadResponse{Lead: l}, nil
}

func (s *leadService) GetLead(ctx context.Context, id string) (*dto.LeadResponse, error) {
	if id == "" {
		return nil, ierr.NewError("lead id is required").
			WithHint("Lead ID is required").
			Mark(ierr.ErrValidation)
	}

	l, err := s.LeadRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.LeadResponse{Lead: l}, nil
}

func (s *leadService) ListLeads(ctx context.Context, filter *types.LeadFilter) (*dto.ListLeadsResponse, error) {
	if filter == nil {
		filter = types.NewLeadFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	leads, err := s.LeadRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.LeadRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(leads, func(l *lead.Lead, _ int) *dto.LeadResponse {
		return &dto.LeadResponse{Lead: l}
	})

	resp := types.NewListResponse(items, count, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *leadService) UpdateLead(ctx context.Context, id string, req dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	l, err := s.LeadRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.LeadStatus != nil && *req.LeadStatus != l.LeadStatus {
		if !l.LeadStatus.CanTransitionTo(*req.LeadStatus) {
			return nil, ierr.NewError("invalid lead status transition").
				WithHint("The lead cannot move to the requested status").
				WithReportableDetails(map[string]any{
					"from": l.LeadStatus,
					"to":   *req.LeadStatus,
				}).
				Mark(ierr.ErrConflict)
		}
		l.LeadStatus = *req.LeadStatus
	}

	if req.ContactName != nil {
		l.ContactName = *req.ContactName
	}
	if req.Email != nil {
		l.Email = *req.Email
	}
	if req.Phone != nil {
		l.Phone = *req.Phone
	}
	if req.Fields != nil {
		l.Fields = req.Fields
	}
	if req.Priority != nil {
		l.Priority = *req.Priority
	}
	if req.Value != nil {
		l.Value = *req.Value
	}
	if req.AssignedTo != nil {
		l.AssignedTo = *req.AssignedTo
	}
	if req.Notes != nil {
		l.Notes = *req.Notes
	}

	if err := l.Validate(); err != nil {
		return nil, err
	}

	if err := s.LeadRepo.Update(ctx, l); err != nil {
		return nil, err
	}

	return &dto.LeadResponse{Lead: l}, nil
}

func (s *leadService) DeleteLead(ctx context.Context, id string) error {
	if id == "" {
		return ierr.NewError("lead id is required").
			WithHint("Lead ID is required").
			Mark(ierr.ErrValidation)
	}

	if _, err := s.LeadRepo.Get(ctx, id); err != nil {
		return err
	}

	return s.LeadRepo.Delete(ctx, id)
}

// IngestLead accepts a webhook payload from an external form platform.
// The platform name comes from the webhook URL.
func (s *leadService) IngestLead(ctx context.Context, platform string, req dto.IngestLeadRequest) (*dto.LeadResponse, error) {
	if platform == "" {
		return nil, ierr.NewError("platform is required").
			WithHint("The webhook URL must name the source platform").
			Mark(ierr.ErrValidation)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	l := req.ToLead(ctx, platform)
	if err := l.Validate(); err != nil {
		return nil, err
	}

	if err := s.LeadRepo.Create(ctx, l); err != nil {
		return nil, err
	}

	s.Logger.Infow("ingested lead from webhook",
		"lead_id", l.ID,
		"platform", platform,
		"external_id", l.ExternalID)

	return &dto.LeadResponse{Lead: l}, nil
}

// ConvertLead turns a lead into a client. The lead row is kept and marked
// won with a link to the new client; converting twice is a conflict.
func (s *leadService) ConvertLead(ctx context.Context, id string, req dto.ConvertLeadRequest) (*dto.ConvertLeadResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	l, err := s.LeadRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if l.ClientID != nil || l.LeadStatus.IsTerminal() {
		return nil, ierr.NewError("lead cannot be converted").
			WithHint("The lead has already been converted or is out of the pipeline").
			WithReportableDetails(map[string]any{
				"lead_id":     l.ID,
				"lead_status": l.LeadStatus,
			}).
			Mark(ierr.ErrConflict)
	}

	clientName := req.ClientName
	if clientName == "" {
		clientName = l.ContactName
	}
	if clientName == "" {
		return nil, ierr.NewError("client name is required").
			WithHint("Provide a client name or set a contact name on the lead").
			Mark(ierr.ErrValidation)
	}

	notes := req.Notes
	if notes == "" {
		notes = l.Notes
	}

	c := &client.Client{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CLIENT),
		Name:         clientName,
		ContactName:  l.ContactName,
		Email:        l.Email,
		Phone:        l.Phone,
		Industry:     req.Industry,
		ClientStatus: types.ClientStatusActive,
		Notes:        notes,
		BaseModel:    types.GetDefaultBaseModel(ctx),
	}

	err = s.DB.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.ClientRepo.Create(txCtx, c); err != nil {
			return err
		}

		l.LeadStatus = types.LeadStatusWon
		l.ClientID = lo.ToPtr(c.ID)
		return s.LeadRepo.Update(txCtx, l)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("converted lead to client",
		"lead_id", l.ID,
		"client_id", c.ID)

	return &dto.ConvertLeadResponse{
		Lead:   &dto.LeadResponse{Lead: l},
		Client: &dto.ClientResponse{Client: c},
	}, nil
}

// GetLeadStats recomputes pipeline totals over all of the agency's leads
func (s *leadService) GetLeadStats(ctx context.Context) (*dto.LeadStatsResponse, error) {
	leads, err := s.LeadRepo.List(ctx, types.NewNoLimitLeadFilter())
	if err != nil {
		return nil, err
	}

	stats := &dto.LeadStatsResponse{
		Total:    len(leads),
		ByStatus: make(map[types.LeadStatus]int),
	}
	for _, l := range leads {
		stats.ByStatus[l.LeadStatus]++
		stats.TotalValue = stats.TotalValue.Add(l.Value)
	}

	return stats, nil
}
