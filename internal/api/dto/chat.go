package dto

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/domain/chat"
	"github.com/agencyhub/agencyhub/internal/types"
)

type CreateConversationRequest struct {
	Title          string   `json:"title" validate:"required,max=255"`
	ParticipantIDs []string `json:"participant_ids" validate:"required,min=2,dive,required"`
}

type UpdateConversationRequest struct {
	Title          *string  `json:"title" validate:"omitempty,max=255"`
	ParticipantIDs []string `json:"participant_ids,omitempty" validate:"omitempty,min=2,dive,required"`
}

type CreateMessageRequest struct {
	Body string `json:"body" validate:"required"`
}

type ConversationResponse struct {
	*chat.Conversation
}

type MessageResponse struct {
	*chat.Message
}

// ListConversationsResponse represents the response for listing conversations
type ListConversationsResponse = types.ListResponse[*ConversationResponse]

// ListMessagesResponse represents the response for listing messages
type ListMessagesResponse = types.ListResponse[*MessageResponse]

func (r *CreateConversationRequest) Validate() error {
	return validateStruct(r)
}

func (r *CreateConversationRequest) ToConversation(ctx context.Context) *chat.Conversation {
	return &chat.Conversation{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CONVERSATION),
		Title:          r.Title,
		ParticipantIDs: types.StringList(r.ParticipantIDs),
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
}

func (r *UpdateConversationRequest) Validate() error {
	return validateStruct(r)
}

func (r *CreateMessageRequest) Validate() error {
	return validateStruct(r)
}

func (r *CreateMessageRequest) ToMessage(ctx context.Context, conversationID string) *chat.Message {
	return &chat.Message{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_MESSAGE),
		ConversationID: conversationID,
		SenderID:       types.GetUserID(ctx),
		Body:           r.Body,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
}
