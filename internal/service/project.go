package service

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/api/dto"
	"github.com/agencyhub/agencyhub/internal/domain/project"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/samber/lo"
)

// ProjectService handles project delivery operations
type ProjectService interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetProject(ctx context.Context, id string) (*dto.ProjectResponse, error)
	ListProjects(ctx context.Context, filter *types.ProjectFilter) (*dto.ListProjectsResponse, error)
	UpdateProject(ctx context.Context, id string, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	DeleteProject(ctx context.Context, id string) error
}

type projectService struct {
	ServiceParams
}

func NewProjectService(params ServiceParams) ProjectService {
	return &projectService{
		ServiceParams: params,
	}
}

func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ClientRepo.Get(ctx, req.ClientID); err != nil {
		return nil, err
	}

	p := req.ToProject(ctx)
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := s.ProjectRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	return &dto.ProjectResponse{Project: p}, nil
}

func (s *projectService) GetProject(ctx context.Context, id string) (*dto.ProjectResponse, error) {
	if id == "" {
		return nil, ierr.NewError("project id is required").
			WithHint("Project ID is required").
			Mark(ierr.ErrValidation)
	}

	p, err := s.ProjectRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.ProjectResponse{Project: p}, nil
}

func (s *projectService) ListProjects(ctx context.Context, filter *types.ProjectFilter) (*dto.ListProjectsResponse, error) {
	if filter == nil {
		filter = types.NewProjectFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	projects, err := s.ProjectRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.ProjectRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(projects, func(p *project.Project, _ int) *dto.ProjectResponse {
		return &dto.ProjectResponse{Project: p}
	})

	resp := types.NewListResponse(items, count, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *projectService) UpdateProject(ctx context.Context, id string, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.ProjectRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.ProjectStatus != nil {
		p.ProjectStatus = *req.ProjectStatus
	}
	if req.Priority != nil {
		p.Priority = *req.Priority
	}
	if req.StartDate != nil {
		p.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		p.EndDate = req.EndDate
	}
	if req.Budget != nil {
		p.Budget = *req.Budget
	}
	if req.AssignedTo != nil {
		p.AssignedTo = *req.AssignedTo
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := s.ProjectRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	return &dto.ProjectResponse{Project: p}, nil
}

func (s *projectService) DeleteProject(ctx context.Context, id string) error {
	if id == "" {
		return ierr.NewError("project id is required").
			WithHint("Project ID is required").
			Mark(ierr.ErrValidation)
	}

	if _, err := s.ProjectRepo.Get(ctx, id); err != nil {
		return err
	}

	return s.ProjectRepo.Delete(ctx, id)
}
