package service

import (
	"context"
	"fmt"

	"github.com/agencyhub/agencyhub/internal/api/dto"
	"github.com/agencyhub/agencyhub/internal/domain/user"
	"github.com/agencyhub/agencyhub/internal/email"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/samber/lo"
)

// UserService manages agency staff accounts
type UserService interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error)
	GetUser(ctx context.Context, id string) (*dto.UserResponse, error)
	ListUsers(ctx context.Context, filter *types.UserFilter) (*dto.ListUsersResponse, error)
	UpdateUser(ctx context.Context, id string, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id string) error
}

type userService struct {
	ServiceParams
}

func NewUserService(params ServiceParams) UserService {
	return &userService{
		ServiceParams: params,
	}
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Email is the login identity and must be unique within the agency
	if existing, err := s.UserRepo.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, ierr.NewError("a user with this email already exists").
			WithHint("Each user needs a unique email address").
			WithReportableDetails(map[string]any{
				"email": req.Email,
			}).
			Mark(ierr.ErrAlreadyExists)
	} else if err != nil && !ierr.IsNotFound(err) {
		return nil, err
	}

	u := req.ToUser(ctx)
	if err := s.UserRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	// Welcome email is fire-and-forget; account creation never fails on a
	// delivery problem
	if s.Email.IsEnabled() {
		if _, err := s.Email.SendEmail(ctx, email.SendEmailRequest{
			ToAddress: u.Email,
			Subject:   "Your AgencyHub account",
			Text:      fmt.Sprintf("Hi %s,\n\nAn account has been created for you. Sign in with this email address to get started.", u.Name),
		}); err != nil {
			s.Logger.Warnw("failed to send welcome email", "error", err, "user_id", u.ID)
		}
	}

	return &dto.UserResponse{User: u}, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*dto.UserResponse, error) {
	if id == "" {
		return nil, ierr.NewError("user id is required").
			WithHint("User ID is required").
			Mark(ierr.ErrValidation)
	}

	u, err := s.UserRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.UserResponse{User: u}, nil
}

func (s *userService) ListUsers(ctx context.Context, filter *types.UserFilter) (*dto.ListUsersResponse, error) {
	if filter == nil {
		filter = types.NewUserFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	users, err := s.UserRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.UserRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(users, func(u *user.User, _ int) *dto.UserResponse {
		return &dto.UserResponse{User: u}
	})

	resp := types.NewListResponse(items, count, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.UserRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Email != nil && *req.Email != u.Email {
		if existing, err := s.UserRepo.GetByEmail(ctx, *req.Email); err == nil && existing != nil {
			return nil, ierr.NewError("a user with this email already exists").
				WithHint("Each user needs a unique email address").
				Mark(ierr.ErrAlreadyExists)
		} else if err != nil && !ierr.IsNotFound(err) {
			return nil, err
		}
		u.Email = *req.Email
	}
	if req.Role != nil {
		u.Role = *req.Role
	}

	if err := s.UserRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	return &dto.UserResponse{User: u}, nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return ierr.NewError("user id is required").
			WithHint("User ID is required").
			Mark(ierr.ErrValidation)
	}

	if _, err := s.UserRepo.Get(ctx, id); err != nil {
		return err
	}

	return s.UserRepo.Delete(ctx, id)
}
