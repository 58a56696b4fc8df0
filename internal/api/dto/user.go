package dto

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/domain/user"
	"github.com/agencyhub/agencyhub/internal/types"
)

type CreateUserRequest struct {
	Name  string         `json:"name" validate:"required,max=255"`
	Email string         `json:"email" validate:"required,email"`
	Role  types.UserRole `json:"role" validate:"required"`
}

type UpdateUserRequest struct {
	Name  *string         `json:"name" validate:"omitempty,max=255"`
	Email *string         `json:"email" validate:"omitempty,email"`
	Role  *types.UserRole `json:"role"`
}

type UserResponse struct {
	*user.User
}

// ListUsersResponse represents the response for listing users
type ListUsersResponse = types.ListResponse[*UserResponse]

func (r *CreateUserRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	return r.Role.Validate()
}

func (r *CreateUserRequest) ToUser(ctx context.Context) *user.User {
	return &user.User{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_USER),
		Name:      r.Name,
		Email:     r.Email,
		Role:      r.Role,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}

func (r *UpdateUserRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.Role != nil {
		return r.Role.Validate()
	}
	return nil
}
