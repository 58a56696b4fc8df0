package service

import (
	"testing"

	"github.com/agencyhub/agencyhub/internal/api/dto"
	"github.com/agencyhub/agencyhub/internal/domain/user"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/testutil"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/stretchr/testify/suite"
)

type ChatServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  ChatService
	testData struct {
		self  *user.User
		other *user.User
		third *user.User
	}
}

func TestChatService(t *testing.T) {
	suite.Run(t, new(ChatServiceSuite))
}

func (s *ChatServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewChatService(ServiceParams{
		Logger:           s.GetLogger(),
		Config:           s.GetConfig(),
		DB:               s.GetDB(),
		Cache:            s.GetCache(),
		UserRepo:         s.GetStores().UserRepo,
		ConversationRepo: s.GetStores().ConversationRepo,
		MessageRepo:      s.GetStores().MessageRepo,
	})
	s.setupTestData()
}

func (s *ChatServiceSuite) setupTestData() {
	// The context user must exist so it can participate in conversations
	s.testData.self = &user.User{
		ID:        types.GetUserID(s.GetContext()),
		Name:      "Me",
		Email:     "me@studio.example",
		Role:      types.UserRoleAdmin,
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.testData.other = &user.User{
		ID:        "user_other",
		Name:      "Colleague",
		Email:     "colleague@studio.example",
		Role:      types.UserRoleMember,
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.testData.third = &user.User{
		ID:        "user_third",
		Name:      "Bystander",
		Email:     "bystander@studio.example",
		Role:      types.UserRoleMember,
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	for _, u := range []*user.User{s.testData.self, s.testData.other, s.testData.third} {
		s.NoError(s.GetStores().UserRepo.Create(s.GetContext(), u))
	}
}

func (s *ChatServiceSuite) createConversation() *dto.ConversationResponse {
	resp, err := s.service.CreateConversation(s.GetContext(), dto.CreateConversationRequest{
		Title:          "Project kickoff",
		ParticipantIDs: []string{s.testData.self.ID, s.testData.other.ID},
	})
	s.Require().NoError(err)
	return resp
}

func (s *ChatServiceSuite) TestCreateConversation() {
	resp := s.createConversation()
	s.Equal("Project kickoff", resp.Title)
	s.Len(resp.ParticipantIDs, 2)
}

func (s *ChatServiceSuite) TestCreateConversationNeedsTwoParticipants() {
	_, err := s.service.CreateConversation(s.GetContext(), dto.CreateConversationRequest{
		Title:          "Monologue",
		ParticipantIDs: []string{s.testData.self.ID},
	})
	s.Error(err)
}

func (s *ChatServiceSuite) TestCreateConversationUnknownParticipant() {
	_, err := s.service.CreateConversation(s.GetContext(), dto.CreateConversationRequest{
		Title:          "Ghost chat",
		ParticipantIDs: []string{s.testData.self.ID, "user_missing"},
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ChatServiceSuite) TestSendAndListMessages() {
	conv := s.createConversation()

	for _, body := range []string{"first", "second", "third"} {
		_, err := s.service.SendMessage(s.GetContext(), conv.ID, dto.CreateMessageRequest{Body: body})
		s.NoError(err)
	}

	resp, err := s.service.ListMessages(s.GetContext(), conv.ID, nil)
	s.NoError(err)
	s.Equal(3, resp.Pagination.Total)
	s.Require().Len(resp.Items, 3)

	// Oldest first, like a chat log reads
	s.Equal("first", resp.Items[0].Body)
	s.Equal("third", resp.Items[2].Body)
	s.Equal(s.testData.self.ID, resp.Items[0].SenderID)
}

func (s *ChatServiceSuite) TestNonParticipantCannotPost() {
	resp, err := s.service.CreateConversation(s.GetContext(), dto.CreateConversationRequest{
		Title:          "Private thread",
		ParticipantIDs: []string{s.testData.other.ID, s.testData.third.ID},
	})
	s.NoError(err)

	// The context user is not in the participant list
	_, err = s.service.SendMessage(s.GetContext(), resp.ID, dto.CreateMessageRequest{Body: "let me in"})
	s.Error(err)

	_, err = s.service.ListMessages(s.GetContext(), resp.ID, nil)
	s.Error(err)
}

func (s *ChatServiceSuite) TestListConversationsByParticipant() {
	s.createConversation()
	_, err := s.service.CreateConversation(s.GetContext(), dto.CreateConversationRequest{
		Title:          "Without me",
		ParticipantIDs: []string{s.testData.other.ID, s.testData.third.ID},
	})
	s.NoError(err)

	filter := types.NewConversationFilter()
	filter.ParticipantID = s.testData.self.ID

	resp, err := s.service.ListConversations(s.GetContext(), filter)
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal("Project kickoff", resp.Items[0].Title)
}
