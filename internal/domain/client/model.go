package client

import (
	"strings"

	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
)

// Client is an agency's customer record. Created directly or by converting
// a lead; owns projects, quotes, and digital assets.
type Client struct {
	// ID is the unique identifier for the client
	ID string `db:"id" json:"id"`

	// Name is the company or person name of the client
	Name string `db:"name" json:"name"`

	// ContactName is the name of the primary contact person
	ContactName string `db:"contact_name" json:"contact_name"`

	// Email is the primary contact email
	Email string `db:"email" json:"email"`

	// Phone is the primary contact phone
	Phone string `db:"phone" json:"phone"`

	// Industry is a free-form industry label
	Industry string `db:"industry" json:"industry"`

	// ClientStatus is the business relationship state, independent of the
	// row lifecycle in BaseModel
	ClientStatus types.ClientStatus `db:"client_status" json:"client_status"`

	// Notes holds free-form notes about the client
	Notes string `db:"notes" json:"notes"`

	// CustomFields holds arbitrary agency-defined key/value data
	CustomFields types.Metadata `db:"custom_fields" json:"custom_fields"`

	types.BaseModel
}

// Validate checks the invariants that must hold before persisting
func (c *Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ierr.NewError("client name is required").
			WithHint("Client name must not be empty").
			Mark(ierr.ErrValidation)
	}
	if err := c.ClientStatus.Validate(); err != nil {
		return err
	}
	return nil
}
