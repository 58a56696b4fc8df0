package lead

import (
	"strings"

	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
)

// Lead is a prospective client, sourced from an ad platform webhook or
// manual entry. A lead leaves the pipeline either by conversion into a
// Client (status won) or by rejection (status lost); the row is never
// deleted on conversion and stays queryable.
type Lead struct {
	// ID is the unique identifier for the lead
	ID string `db:"id" json:"id"`

	// Platform is the source the lead came from (facebook, google, manual, ...)
	Platform string `db:"platform" json:"platform"`

	// ExternalID is the identifier on the source platform, if any
	ExternalID string `db:"external_id" json:"external_id"`

	// ContactName is the prospect's name
	ContactName string `db:"contact_name" json:"contact_name"`

	// Email is the prospect's email
	Email string `db:"email" json:"email"`

	// Phone is the prospect's phone number
	Phone string `db:"phone" json:"phone"`

	// Fields holds free-form lead data captured from the source form
	Fields types.Metadata `db:"fields" json:"fields"`

	// LeadStatus is the pipeline position of the lead
	LeadStatus types.LeadStatus `db:"lead_status" json:"lead_status"`

	// Priority ranks the lead for follow-up
	Priority types.Priority `db:"priority" json:"priority"`

	// Value is the estimated deal value in minor currency units
	Value types.Money `db:"value" json:"value"`

	// AssignedTo is the user responsible for the lead
	AssignedTo string `db:"assigned_to" json:"assigned_to"`

	// Notes holds free-form notes about the lead
	Notes string `db:"notes" json:"notes"`

	// ClientID is set once the lead has been converted
	ClientID *string `db:"client_id" json:"client_id,omitempty"`

	types.BaseModel
}

// HasContactInfo reports whether at least one contact field is present.
// A lead with no name, email, or phone cannot be followed up on.
func (l *Lead) HasContactInfo() bool {
	return strings.TrimSpace(l.ContactName) != "" ||
		strings.TrimSpace(l.Email) != "" ||
		strings.TrimSpace(l.Phone) != ""
}

// Validate checks the invariants that must hold before persisting
func (l *Lead) Validate() error {
	if !l.HasContactInfo() {
		return ierr.NewError("lead has no contact information").
			WithHint("At least one of name, email, or phone is required").
			Mark(ierr.ErrValidation)
	}
	if err := l.LeadStatus.Validate(); err != nil {
		return err
	}
	if err := l.Priority.Validate(); err != nil {
		return err
	}
	if l.Value.IsNegative() {
		return ierr.NewError("lead value must not be negative").
			WithHint("Estimated value must be zero or positive").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Stats is a derived read model over the agency's leads, recomputed on
// every query; there are no persisted counters.
type Stats struct {
	Total      int                      `json:"total"`
	ByStatus   map[types.LeadStatus]int `json:"by_status"`
	TotalValue types.Money              `json:"total_value"`
}
