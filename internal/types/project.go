package types

import (
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/samber/lo"
)

// ProjectStatus represents the delivery state of a project
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusCancelled  ProjectStatus = "cancelled"
)

func (s ProjectStatus) String() string {
	return string(s)
}

func (s ProjectStatus) Validate() error {
	allowed := []ProjectStatus{
		ProjectStatusPlanning,
		ProjectStatusInProgress,
		ProjectStatusCompleted,
		ProjectStatusCancelled,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid project status").
			WithHint("Please provide a valid project status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ProjectFilter represents filters for project queries
type ProjectFilter struct {
	*QueryFilter
	ClientID      string         `json:"client_id,omitempty" form:"client_id"`
	ProjectStatus *ProjectStatus `json:"project_status,omitempty" form:"project_status"`
	Priority      *Priority      `json:"priority,omitempty" form:"priority"`
	AssignedTo    string         `json:"assigned_to,omitempty" form:"assigned_to"`
}

// NewProjectFilter creates a new ProjectFilter with default values
func NewProjectFilter() *ProjectFilter {
	return &ProjectFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

// Validate validates the project filter
func (f *ProjectFilter) Validate() error {
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	if f.ProjectStatus != nil {
		if err := f.ProjectStatus.Validate(); err != nil {
			return err
		}
	}
	if f.Priority != nil {
		if err := f.Priority.Validate(); err != nil {
			return err
		}
	}
	return nil
}
