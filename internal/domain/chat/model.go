package chat

import (
	"strings"

	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
)

// Conversation is an internal chat thread between agency users
type Conversation struct {
	// ID is the unique identifier for the conversation
	ID string `db:"id" json:"id"`

	// Title is the display name of the thread
	Title string `db:"title" json:"title"`

	// ParticipantIDs are the users who can read and post to the thread
	ParticipantIDs types.StringList `db:"participant_ids" json:"participant_ids"`

	types.BaseModel
}

// Validate checks the invariants that must hold before persisting
func (c *Conversation) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return ierr.NewError("conversation title is required").
			WithHint("Conversation title must not be empty").
			Mark(ierr.ErrValidation)
	}
	if len(c.ParticipantIDs) < 2 {
		return ierr.NewError("conversation needs at least two participants").
			WithHint("Add at least two participants").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// HasParticipant reports whether the user is part of the conversation
func (c *Conversation) HasParticipant(userID string) bool {
	for _, id := range c.ParticipantIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Message is a single chat message within a conversation
type Message struct {
	// ID is the unique identifier for the message
	ID string `db:"id" json:"id"`

	// ConversationID references the owning conversation
	ConversationID string `db:"conversation_id" json:"conversation_id"`

	// SenderID is the user who posted the message
	SenderID string `db:"sender_id" json:"sender_id"`

	// Body is the message text
	Body string `db:"body" json:"body"`

	types.BaseModel
}

// Validate checks the invariants that must hold before persisting
func (m *Message) Validate() error {
	if strings.TrimSpace(m.Body) == "" {
		return ierr.NewError("message body is required").
			WithHint("Message body must not be empty").
			Mark(ierr.ErrValidation)
	}
	if m.ConversationID == "" {
		return ierr.NewError("message conversation is required").
			WithHint("A message must reference a conversation").
			Mark(ierr.ErrValidation)
	}
	return nil
}
