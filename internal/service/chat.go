package service

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/api/dto"
	"github.com/agencyhub/agencyhub/internal/domain/chat"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/samber/lo"
)

// ChatService handles internal conversations between agency users
type ChatService interface {
	CreateConversation(ctx context.Context, req dto.CreateConversationRequest) (*dto.ConversationResponse, error)
	GetConversation(ctx context.Context, id string) (*dto.ConversationResponse, error)
	ListConversations(ctx context.Context, filter *types.ConversationFilter) (*dto.ListConversationsResponse, error)
	UpdateConversation(ctx context.Context, id string, req dto.UpdateConversationRequest) (*dto.ConversationResponse, error)
	DeleteConversation(ctx context.Context, id string) error
	SendMessage(ctx context.Context, conversationID string, req dto.CreateMessageRequest) (*dto.MessageResponse, error)
	ListMessages(ctx context.Context, conversationID string, filter *types.MessageFilter) (*dto.ListMessagesResponse, error)
}

type chatService struct {
	ServiceParams
}

func NewChatService(params ServiceParams) ChatService {
	return &chatService{
		ServiceParams: params,
	}
}

func (s *chatService) CreateConversation(ctx context.Context, req dto.CreateConversationRequest) (*dto.ConversationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Every participant must be a real user of the agency
	for _, userID := range req.ParticipantIDs {
		if _, err := s.UserRepo.Get(ctx, userID); err != nil {
			return nil, err
		}
	}

	c := req.ToConversation(ctx)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := s.ConversationRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	return &dto.ConversationResponse{Conversation: c}, nil
}

func (s *chatService) GetConversation(ctx context.Context, id string) (*dto.ConversationResponse, error) {
	if id == "" {
		return nil, ierr.NewError("conversation id is required").
			WithHint("Conversation ID is required").
			Mark(ierr.ErrValidation)
	}

	c, err := s.ConversationRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.ConversationResponse{Conversation: c}, nil
}

func (s *chatService) ListConversations(ctx context.Context, filter *types.ConversationFilter) (*dto.ListConversationsResponse, error) {
	if filter == nil {
		filter = types.NewConversationFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	conversations, err := s.ConversationRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.ConversationRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(conversations, func(c *chat.Conversation, _ int) *dto.ConversationResponse {
		return &dto.ConversationResponse{Conversation: c}
	})

	resp := types.NewListResponse(items, count, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *chatService) UpdateConversation(ctx context.Context, id string, req dto.UpdateConversationRequest) (*dto.ConversationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.ConversationRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		c.Title = *req.Title
	}
	if req.ParticipantIDs != nil {
		for _, userID := range req.ParticipantIDs {
			if _, err := s.UserRepo.Get(ctx, userID); err != nil {
				return nil, err
			}
		}
		c.ParticipantIDs = types.StringList(req.ParticipantIDs)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := s.ConversationRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	return &dto.ConversationResponse{Conversation: c}, nil
}

func (s *chatService) DeleteConversation(ctx context.Context, id string) error {
	if id == "" {
		return ierr.NewError("conversation id is required").
			WithHint("Conversation ID is required").
			Mark(ierr.ErrValidation)
	}

	if _, err := s.ConversationRepo.Get(ctx, id); err != nil {
		return err
	}

	return s.ConversationRepo.Delete(ctx, id)
}

// SendMessage posts to a conversation. Only participants may post.
func (s *chatService) SendMessage(ctx context.Context, conversationID string, req dto.CreateMessageRequest) (*dto.MessageResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.ConversationRepo.Get(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	senderID := types.GetUserID(ctx)
	if !c.HasParticipant(senderID) {
		return nil, ierr.NewError("sender is not a participant").
			WithHint("Only conversation participants can post messages").
			WithReportableDetails(map[string]any{
				"conversation_id": c.ID,
				"user_id":         senderID,
			}).
			Mark(ierr.ErrPermissionDenied)
	}

	m := req.ToMessage(ctx, c.ID)
	if err := m.Validate(); err != nil {
		return nil, err
	}

	if err := s.MessageRepo.Create(ctx, m); err != nil {
		return nil, err
	}

	return &dto.MessageResponse{Message: m}, nil
}

// ListMessages returns the conversation's messages oldest first. The caller
// must be a participant.
func (s *chatService) ListMessages(ctx context.Context, conversationID string, filter *types.MessageFilter) (*dto.ListMessagesResponse, error) {
	if filter == nil {
		filter = types.NewMessageFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	c, err := s.ConversationRepo.Get(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	userID := types.GetUserID(ctx)
	if !c.HasParticipant(userID) {
		return nil, ierr.NewError("user is not a participant").
			WithHint("Only conversation participants can read messages").
			WithReportableDetails(map[string]any{
				"conversation_id": c.ID,
				"user_id":         userID,
			}).
			Mark(ierr.ErrPermissionDenied)
	}

	filter.ConversationID = c.ID

	messages, err := s.MessageRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.MessageRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(messages, func(m *chat.Message, _ int) *dto.MessageResponse {
		return &dto.MessageResponse{Message: m}
	})

	resp := types.NewListResponse(items, count, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}
