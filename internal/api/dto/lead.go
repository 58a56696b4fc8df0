package dto

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/domain/lead"
	"github.com/agencyhub/agencyhub/internal/types"
)

type CreateLeadRequest struct {
	Platform    string            `json:"platform" validate:"omitempty,max=100"`
	ExternalID  string            `json:"external_id" validate:"omitempty,max=255"`
	ContactName string            `json:"contact_name" validate:"omitempty,max=255"`
	Email       string            `json:"email" validate:"omitempty,email"`
	Phone       string            `json:"phone" validate:"omitempty,max=50"`
	Fields      map[string]string `json:"fields,omitempty"`
	Priority    types.Priority    `json:"priority" validate:"omitempty"`
	// Value is in minor currency units (agorot), matching responses
	Value      types.Money `json:"value" validate:"omitempty,gte=0"`
	AssignedTo string      `json:"assigned_to"`
	Notes      string      `json:"notes"`
}

type UpdateLeadRequest struct {
	ContactName *string           `json:"contact_name" validate:"omitempty,max=255"`
	Email       *string           `json:"email" validate:"omitempty,email"`
	Phone       *string           `json:"phone" validate:"omitempty,max=50"`
	Fields      map[string]string `json:"fields,omitempty"`
	LeadStatus  *types.LeadStatus `json:"lead_status"`
	Priority    *types.Priority   `json:"priority"`
	Value       *types.Money      `json:"value" validate:"omitempty,gte=0"`
	AssignedTo  *string           `json:"assigned_to"`
	Notes       *string           `json:"notes"`
}

// IngestLeadRequest is the payload accepted from external form platforms.
// The platform name comes from the URL, not the body.
type IngestLeadRequest struct {
	ExternalID  string            `json:"external_id" validate:"omitempty,max=255"`
	ContactName string            `json:"contact_name" validate:"omitempty,max=255"`
	Email       string            `json:"email" validate:"omitempty,email"`
	Phone       string            `json:"phone" validate:"omitempty,max=50"`
	Fields      map[string]string `json:"fields,omitempty"`
}

type LeadResponse struct {
	*lead.Lead
}

// ListLeadsResponse represents the response for listing leads
type ListLeadsResponse = types.ListResponse[*LeadResponse]

// LeadStatsResponse summarizes the lead pipeline
type LeadStatsResponse struct {
	Total      int                      `json:"total"`
	ByStatus   map[types.LeadStatus]int `json:"by_status"`
	TotalValue types.Money              `json:"total_value"`
}

// ConvertLeadRequest carries optional overrides for the client created
// from a lead
type ConvertLeadRequest struct {
	ClientName string `json:"client_name" validate:"omitempty,max=255"`
	Industry   string `json:"industry" validate:"omitempty,max=100"`
	Notes      string `json:"notes"`
}

// ConvertLeadResponse returns both sides of a lead conversion
type ConvertLeadResponse struct {
	Lead   *LeadResponse   `json:"lead"`
	Client *ClientResponse `json:"client"`
}

func (r *CreateLeadRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.Priority != "" {
		return r.Priority.Validate()
	}
	return nil
}

func (r *CreateLeadRequest) ToLead(ctx context.Context) *lead.Lead {
	priority := r.Priority
	if priority == "" {
		priority = types.PriorityMedium
	}
	return &lead.Lead{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_LEAD),
		Platform:    r.Platform,
		ExternalID:  r.ExternalID,
		ContactName: r.ContactName,
		Email:       r.Email,
		Phone:       r.Phone,
		Fields:      r.Fields,
		LeadStatus:  types.LeadStatusNew,
		Priority:    priority,
		Value:       r.Value,
		AssignedTo:  r.AssignedTo,
		Notes:       r.Notes,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

func (r *UpdateLeadRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.LeadStatus != nil {
		if err := r.LeadStatus.Validate(); err != nil {
			return err
		}
	}
	if r.Priority != nil {
		if err := r.Priority.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (r *IngestLeadRequest) Validate() error {
	return validateStruct(r)
}

func (r *ConvertLeadRequest) Validate() error {
	return validateStruct(r)
}

func (r *IngestLeadRequest) ToLead(ctx context.Context, platform string) *lead.Lead {
	return &lead.Lead{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_LEAD),
		Platform:    platform,
		ExternalID:  r.ExternalID,
		ContactName: r.ContactName,
		Email:       r.Email,
		Phone:       r.Phone,
		Fields:      r.Fields,
		LeadStatus:  types.LeadStatusNew,
		Priority:    types.PriorityMedium,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}
