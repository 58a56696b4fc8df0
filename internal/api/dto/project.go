package dto

import (
	"context"
	"time"

	"github.com/agencyhub/agencyhub/internal/domain/project"
	"github.com/agencyhub/agencyhub/internal/types"
)

type CreateProjectRequest struct {
	ClientID    string         `json:"client_id" validate:"required"`
	Name        string         `json:"name" validate:"required,max=255"`
	Description string         `json:"description"`
	Priority    types.Priority `json:"priority" validate:"omitempty"`
	StartDate   *time.Time     `json:"start_date"`
	EndDate     *time.Time     `json:"end_date"`
	// Budget is in minor currency units (agorot), matching responses
	Budget     types.Money         `json:"budget" validate:"omitempty,gte=0"`
	AssignedTo string              `json:"assigned_to"`
	Status     types.ProjectStatus `json:"project_status" validate:"omitempty"`
}

type UpdateProjectRequest struct {
	Name          *string              `json:"name" validate:"omitempty,max=255"`
	Description   *string              `json:"description"`
	ProjectStatus *types.ProjectStatus `json:"project_status"`
	Priority      *types.Priority      `json:"priority"`
	StartDate     *time.Time           `json:"start_date"`
	EndDate       *time.Time           `json:"end_date"`
	Budget        *types.Money         `json:"budget" validate:"omitempty,gte=0"`
	AssignedTo    *string              `json:"assigned_to"`
}

type ProjectResponse struct {
	*project.Project
}

// ListProjectsResponse represents the response for listing projects
type ListProjectsResponse = types.ListResponse[*ProjectResponse]

func (r *CreateProjectRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.Priority != "" {
		if err := r.Priority.Validate(); err != nil {
			return err
		}
	}
	if r.Status != "" {
		return r.Status.Validate()
	}
	return nil
}

func (r *CreateProjectRequest) ToProject(ctx context.Context) *project.Project {
	priority := r.Priority
	if priority == "" {
		priority = types.PriorityMedium
	}
	status := r.Status
	if status == "" {
		status = types.ProjectStatusPlanning
	}
	return &project.Project{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PROJECT),
		ClientID:      r.ClientID,
		Name:          r.Name,
		Description:   r.Description,
		ProjectStatus: status,
		Priority:      priority,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		Budget:        r.Budget,
		AssignedTo:    r.AssignedTo,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}

func (r *UpdateProjectRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.ProjectStatus != nil {
		if err := r.ProjectStatus.Validate(); err != nil {
			return err
		}
	}
	if r.Priority != nil {
		return r.Priority.Validate()
	}
	return nil
}
