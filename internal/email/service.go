package email

import (
	"context"

	"go.uber.org/zap"
)

// Sender abstracts email delivery so services can be tested without a
// live provider.
type Sender interface {
	SendEmail(ctx context.Context, req SendEmailRequest) (*SendEmailResponse, error)
	SendQuoteEmail(ctx context.Context, req SendQuoteEmailRequest) (*SendQuoteEmailResponse, error)
	IsEnabled() bool
}

// Email handles email operations
type Email struct {
	client *EmailClient
	logger *zap.SugaredLogger
}

// NewEmail creates a new email service
func NewEmail(client *EmailClient, logger *zap.Logger) *Email {
	return &Email{
		client: client,
		logger: logger.Sugar(),
	}
}

// IsEnabled returns whether the underlying client is enabled
func (s *Email) IsEnabled() bool {
	return s.client.IsEnabled()
}

// SendEmail sends a plain text email. When the client is disabled the send
// is skipped without error, so local environments work without a provider
// key.
func (s *Email) SendEmail(ctx context.Context, req SendEmailRequest) (*SendEmailResponse, error) {
	if !s.client.IsEnabled() {
		s.logger.Warnw("email client is disabled, skipping email send",
			"to", req.ToAddress,
			"subject", req.Subject,
		)
		return &SendEmailResponse{
			Success: false,
			Error:   "email client is disabled",
		}, nil
	}

	fromAddress := req.FromAddress
	if fromAddress == "" {
		fromAddress = s.client.GetFromAddress()
	}

	messageID, err := s.client.SendEmail(ctx, fromAddress, req.ToAddress, req.Subject, "", req.Text)
	if err != nil {
		s.logger.Errorw("failed to send email",
			"error", err,
			"to", req.ToAddress,
			"subject", req.Subject,
		)
		return &SendEmailResponse{
			Success: false,
			Error:   err.Error(),
		}, err
	}

	s.logger.Infow("email sent successfully",
		"message_id", messageID,
		"to", req.ToAddress,
		"subject", req.Subject,
	)

	return &SendEmailResponse{
		MessageID: messageID,
		Success:   true,
	}, nil
}

// SendQuoteEmail delivers a quote PDF to a client
func (s *Email) SendQuoteEmail(ctx context.Context, req SendQuoteEmailRequest) (*SendQuoteEmailResponse, error) {
	if !s.client.IsEnabled() {
		s.logger.Warnw("email client is disabled, skipping quote email",
			"to", req.ToAddress,
			"subject", req.Subject,
		)
		return &SendQuoteEmailResponse{
			Success: false,
			Error:   "email client is disabled",
		}, nil
	}

	fromAddress := req.FromAddress
	if fromAddress == "" {
		fromAddress = s.client.GetFromAddress()
	}

	messageID, err := s.client.SendEmailWithAttachment(
		ctx, fromAddress, req.ToAddress, req.Subject, "", req.Message, req.Filename, req.Attachment)
	if err != nil {
		s.logger.Errorw("failed to send quote email",
			"error", err,
			"from", fromAddress,
			"to", req.ToAddress,
			"subject", req.Subject,
		)
		return &SendQuoteEmailResponse{
			Success: false,
			Error:   err.Error(),
		}, err
	}

	s.logger.Infow("quote email sent successfully",
		"message_id", messageID,
		"to", req.ToAddress,
		"subject", req.Subject,
	)

	return &SendQuoteEmailResponse{
		MessageID: messageID,
		Success:   true,
	}, nil
}
