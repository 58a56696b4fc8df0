package email

import (
	"context"

	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/resend/resend-go/v2"
)

// EmailClient represents an email client wrapper
type EmailClient struct {
	client      *resend.Client
	enabled     bool
	fromAddress string
	replyTo     string
}

// Config holds the email client configuration
type Config struct {
	Enabled     bool
	APIKey      string
	FromAddress string
	ReplyTo     string
}

// NewEmailClient creates a new email client
func NewEmailClient(cfg Config) *EmailClient {
	if !cfg.Enabled || cfg.APIKey == "" {
		return &EmailClient{
			enabled: false,
		}
	}

	client := resend.NewClient(cfg.APIKey)

	return &EmailClient{
		client:      client,
		enabled:     true,
		fromAddress: cfg.FromAddress,
		replyTo:     cfg.ReplyTo,
	}
}

// IsEnabled returns whether the email client is enabled
func (c *EmailClient) IsEnabled() bool {
	return c.enabled
}

// GetFromAddress returns the default from address
func (c *EmailClient) GetFromAddress() string {
	return c.fromAddress
}

// GetReplyTo returns the default reply-to address
func (c *EmailClient) GetReplyTo() string {
	return c.replyTo
}

// SendEmail sends a plain text or HTML email
func (c *EmailClient) SendEmail(ctx context.Context, from, to, subject, htmlContent, textContent string) (string, error) {
	return c.send(ctx, from, to, subject, htmlContent, textContent, nil)
}

// SendEmailWithAttachment sends an email with a single binary attachment
func (c *EmailClient) SendEmailWithAttachment(ctx context.Context, from, to, subject, htmlContent, textContent, filename string, attachment []byte) (string, error) {
	attachments := []*resend.Attachment{
		{
			Filename: filename,
			Content:  attachment,
		},
	}
	return c.send(ctx, from, to, subject, htmlContent, textContent, attachments)
}

func (c *EmailClient) send(ctx context.Context, from, to, subject, htmlContent, textContent string, attachments []*resend.Attachment) (string, error) {
	if !c.enabled {
		return "", ierr.NewError("email client is disabled").
			WithHint("Configure an email provider API key").
			Mark(ierr.ErrInvalidOperation)
	}

	params := &resend.SendEmailRequest{
		From:        from,
		To:          []string{to},
		Subject:     subject,
		Html:        htmlContent,
		Text:        textContent,
		Attachments: attachments,
	}

	if c.replyTo != "" {
		params.ReplyTo = c.replyTo
	}

	sent, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", ierr.WithError(err).
			WithMessage("email provider rejected the message").
			WithHint("Failed to deliver email").
			WithReportableDetails(map[string]any{
				"to": to,
			}).
			Mark(ierr.ErrDelivery)
	}

	return sent.Id, nil
}
