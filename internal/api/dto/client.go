package dto

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/domain/client"
	"github.com/agencyhub/agencyhub/internal/types"
)

type CreateClientRequest struct {
	Name         string             `json:"name" validate:"required,max=255"`
	ContactName  string             `json:"contact_name" validate:"omitempty,max=255"`
	Email        string             `json:"email" validate:"omitempty,email"`
	Phone        string             `json:"phone" validate:"omitempty,max=50"`
	Industry     string             `json:"industry" validate:"omitempty,max=100"`
	ClientStatus types.ClientStatus `json:"client_status" validate:"omitempty"`
	Notes        string             `json:"notes"`
	CustomFields map[string]string  `json:"custom_fields,omitempty"`
}

type UpdateClientRequest struct {
	Name         *string             `json:"name" validate:"omitempty,max=255"`
	ContactName  *string             `json:"contact_name" validate:"omitempty,max=255"`
	Email        *string             `json:"email" validate:"omitempty,email"`
	Phone        *string             `json:"phone" validate:"omitempty,max=50"`
	Industry     *string             `json:"industry" validate:"omitempty,max=100"`
	ClientStatus *types.ClientStatus `json:"client_status"`
	Notes        *string             `json:"notes"`
	CustomFields map[string]string   `json:"custom_fields,omitempty"`
}

type ClientResponse struct {
	*client.Client
}

// ListClientsResponse represents the response for listing clients
type ListClientsResponse = types.ListResponse[*ClientResponse]

func (r *CreateClientRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.ClientStatus != "" {
		return r.ClientStatus.Validate()
	}
	return nil
}

func (r *CreateClientRequest) ToClient(ctx context.Context) *client.Client {
	clientStatus := r.ClientStatus
	if clientStatus == "" {
		clientStatus = types.ClientStatusActive
	}
	return &client.Client{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CLIENT),
		Name:         r.Name,
		ContactName:  r.ContactName,
		Email:        r.Email,
		Phone:        r.Phone,
		Industry:     r.Industry,
		ClientStatus: clientStatus,
		Notes:        r.Notes,
		CustomFields: r.CustomFields,
		BaseModel:    types.GetDefaultBaseModel(ctx),
	}
}

func (r *UpdateClientRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.ClientStatus != nil {
		return r.ClientStatus.Validate()
	}
	return nil
}
