package types

// ConversationFilter represents filters for chat conversation queries
type ConversationFilter struct {
	*QueryFilter
	ParticipantID string `json:"participant_id,omitempty" form:"participant_id"`
}

// NewConversationFilter creates a new ConversationFilter with default values
func NewConversationFilter() *ConversationFilter {
	return &ConversationFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

// Validate validates the conversation filter
func (f *ConversationFilter) Validate() error {
	return f.QueryFilter.Validate()
}

// MessageFilter represents filters for chat message queries
type MessageFilter struct {
	*QueryFilter
	ConversationID string `json:"conversation_id,omitempty" form:"conversation_id"`
}

// NewMessageFilter creates a new MessageFilter with default values
func NewMessageFilter() *MessageFilter {
	return &MessageFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

// Validate validates the message filter
func (f *MessageFilter) Validate() error {
	return f.QueryFilter.Validate()
}
