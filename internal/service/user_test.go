package service

import (
	"testing"

	"github.com/agencyhub/agencyhub/internal/api/dto"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/testutil"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type UserServiceSuite struct {
	testutil.BaseServiceTestSuite
	service UserService
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceSuite))
}

func (s *UserServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewUserService(ServiceParams{
		Logger:   s.GetLogger(),
		Config:   s.GetConfig(),
		DB:       s.GetDB(),
		Cache:    s.GetCache(),
		Email:    s.GetEmailSender(),
		UserRepo: s.GetStores().UserRepo,
	})
}

func (s *UserServiceSuite) createUser(name, email string, role types.UserRole) *dto.UserResponse {
	resp, err := s.service.CreateUser(s.GetContext(), dto.CreateUserRequest{
		Name:  name,
		Email: email,
		Role:  role,
	})
	s.Require().NoError(err)
	return resp
}

func (s *UserServiceSuite) TestCreateUserSendsWelcomeEmail() {
	resp := s.createUser("Dana Mor", "dana@studio.example", types.UserRoleMember)
	s.NotEmpty(resp.ID)
	s.Equal(types.UserRoleMember, resp.Role)

	s.Len(s.GetEmailSender().SentEmails, 1)
	s.Equal("dana@studio.example", s.GetEmailSender().SentEmails[0].ToAddress)
}

func (s *UserServiceSuite) TestCreateUserSurvivesEmailOutage() {
	s.GetEmailSender().FailNext = true

	resp := s.createUser("Dana Mor", "dana@studio.example", types.UserRoleMember)
	s.NotEmpty(resp.ID)

	// The account exists even though the welcome email never went out
	_, err := s.service.GetUser(s.GetContext(), resp.ID)
	s.NoError(err)
	s.Empty(s.GetEmailSender().SentEmails)
}

func (s *UserServiceSuite) TestCreateUserDuplicateEmail() {
	s.createUser("Dana Mor", "dana@studio.example", types.UserRoleMember)

	_, err := s.service.CreateUser(s.GetContext(), dto.CreateUserRequest{
		Name:  "Other Dana",
		Email: "dana@studio.example",
		Role:  types.UserRoleAdmin,
	})
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *UserServiceSuite) TestUpdateUserEmailConflict() {
	s.createUser("Dana Mor", "dana@studio.example", types.UserRoleMember)
	other := s.createUser("Omri Gal", "omri@studio.example", types.UserRoleAdmin)

	_, err := s.service.UpdateUser(s.GetContext(), other.ID, dto.UpdateUserRequest{
		Email: lo.ToPtr("dana@studio.example"),
	})
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *UserServiceSuite) TestListUsersByRole() {
	s.createUser("Dana Mor", "dana@studio.example", types.UserRoleMember)
	s.createUser("Omri Gal", "omri@studio.example", types.UserRoleAdmin)
	s.createUser("Yael Bar", "yael@studio.example", types.UserRoleMember)

	filter := types.NewUserFilter()
	filter.Role = lo.ToPtr(types.UserRoleMember)

	resp, err := s.service.ListUsers(s.GetContext(), filter)
	s.NoError(err)
	s.Len(resp.Items, 2)
}

func (s *UserServiceSuite) TestDeleteUser() {
	created := s.createUser("Dana Mor", "dana@studio.example", types.UserRoleMember)

	s.NoError(s.service.DeleteUser(s.GetContext(), created.ID))

	_, err := s.service.GetUser(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
