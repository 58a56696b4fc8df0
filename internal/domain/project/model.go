package project

import (
	"strings"
	"time"

	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
)

// Project is a unit of delivered work for a client. Created directly, or
// atomically when a quote is approved; in the latter case QuoteID records
// the originating quote and guards against duplicate creation.
type Project struct {
	// ID is the unique identifier for the project
	ID string `db:"id" json:"id"`

	// ClientID references the client the work is delivered for
	ClientID string `db:"client_id" json:"client_id"`

	// QuoteID is the approved quote this project was created from, if any
	QuoteID *string `db:"quote_id" json:"quote_id,omitempty"`

	// Name is the display name of the project
	Name string `db:"name" json:"name"`

	// Description describes the scope of the project
	Description string `db:"description" json:"description"`

	// ProjectStatus is the delivery state of the project
	ProjectStatus types.ProjectStatus `db:"project_status" json:"project_status"`

	// Priority ranks the project
	Priority types.Priority `db:"priority" json:"priority"`

	// StartDate is when work begins
	StartDate *time.Time `db:"start_date" json:"start_date,omitempty"`

	// EndDate is when work is expected to finish
	EndDate *time.Time `db:"end_date" json:"end_date,omitempty"`

	// Budget is the project budget in minor currency units
	Budget types.Money `db:"budget" json:"budget"`

	// AssignedTo is the user responsible for delivery
	AssignedTo string `db:"assigned_to" json:"assigned_to"`

	types.BaseModel
}

// Validate checks the invariants that must hold before persisting
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ierr.NewError("project name is required").
			WithHint("Project name must not be empty").
			Mark(ierr.ErrValidation)
	}
	if p.ClientID == "" {
		return ierr.NewError("project client is required").
			WithHint("A project must reference a client").
			Mark(ierr.ErrValidation)
	}
	if err := p.ProjectStatus.Validate(); err != nil {
		return err
	}
	if err := p.Priority.Validate(); err != nil {
		return err
	}
	if p.Budget.IsNegative() {
		return ierr.NewError("project budget must not be negative").
			WithHint("Budget must be zero or positive").
			Mark(ierr.ErrValidation)
	}
	return nil
}
