package agency

import (
	"strings"

	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
)

// Agency is the tenant organization using the CRM. Every other entity is
// partitioned by the agency ID carried in types.BaseModel.
type Agency struct {
	// ID is the unique identifier for the agency
	ID string `db:"id" json:"id"`

	// Name is the display name of the agency
	Name string `db:"name" json:"name"`

	// Slug is a URL-safe identifier, unique across agencies
	Slug string `db:"slug" json:"slug"`

	// ContactEmail is the primary contact address for the agency
	ContactEmail string `db:"contact_email" json:"contact_email"`

	// ContactPhone is the primary contact phone for the agency
	ContactPhone string `db:"contact_phone" json:"contact_phone"`

	// Website is the agency's public website
	Website string `db:"website" json:"website"`

	// LogoURL points at the logo used on quote documents
	LogoURL string `db:"logo_url" json:"logo_url"`

	types.BaseModel
}

// Validate checks the invariants that must hold before persisting
func (a *Agency) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ierr.NewError("agency name is required").
			WithHint("Agency name must not be empty").
			Mark(ierr.ErrValidation)
	}
	if strings.TrimSpace(a.Slug) == "" {
		return ierr.NewError("agency slug is required").
			WithHint("Agency slug must not be empty").
			Mark(ierr.ErrValidation)
	}
	return nil
}
