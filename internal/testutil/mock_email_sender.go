package testutil

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/email"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
)

var _ email.Sender = (*MockEmailSender)(nil)

// MockEmailSender is an email.Sender that records outgoing mail. Set
// FailNext to make the next send fail, simulating a provider outage.
type MockEmailSender struct {
	FailNext    bool
	SentEmails  []email.SendEmailRequest
	SentQuotes  []email.SendQuoteEmailRequest
	nextMessage int
}

// NewMockEmailSender creates a new mock email sender
func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{}
}

// IsEnabled implements email.Sender
func (m *MockEmailSender) IsEnabled() bool {
	return true
}

// SendEmail implements email.Sender
func (m *MockEmailSender) SendEmail(ctx context.Context, req email.SendEmailRequest) (*email.SendEmailResponse, error) {
	if m.FailNext {
		m.FailNext = false
		return &email.SendEmailResponse{Success: false, Error: "provider unavailable"},
			ierr.NewError("provider unavailable").
				WithHint("Email could not be delivered").
				Mark(ierr.ErrDelivery)
	}
	m.SentEmails = append(m.SentEmails, req)
	m.nextMessage++
	return &email.SendEmailResponse{MessageID: m.messageID(), Success: true}, nil
}

// SendQuoteEmail implements email.Sender
func (m *MockEmailSender) SendQuoteEmail(ctx context.Context, req email.SendQuoteEmailRequest) (*email.SendQuoteEmailResponse, error) {
	if m.FailNext {
		m.FailNext = false
		return &email.SendQuoteEmailResponse{Success: false, Error: "provider unavailable"},
			ierr.NewError("provider unavailable").
				WithHint("Email could not be delivered").
				Mark(ierr.ErrDelivery)
	}
	m.SentQuotes = append(m.SentQuotes, req)
	m.nextMessage++
	return &email.SendQuoteEmailResponse{MessageID: m.messageID(), Success: true}, nil
}

func (m *MockEmailSender) messageID() string {
	return "msg_" + string(rune('a'+m.nextMessage%26))
}
