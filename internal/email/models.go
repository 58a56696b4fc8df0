package email

// SendEmailRequest represents a request to send a plain text email
type SendEmailRequest struct {
	FromAddress string `json:"from_address" validate:"omitempty,email"`
	ToAddress   string `json:"to_address" validate:"required,email"`
	Subject     string `json:"subject" validate:"required"`
	Text        string `json:"text" validate:"required"`
}

// SendEmailResponse represents the response from sending an email
type SendEmailResponse struct {
	MessageID string
	Success   bool
	Error     string
}

// SendQuoteEmailRequest represents a request to deliver a quote document to
// a client. The attachment is the rendered quote PDF.
type SendQuoteEmailRequest struct {
	FromAddress string `json:"from_address" validate:"omitempty,email"`
	ToAddress   string `json:"to_address" validate:"required,email"`
	Subject     string `json:"subject" validate:"required"`
	Message     string `json:"message"`
	Filename    string `json:"filename" validate:"required"`
	Attachment  []byte `json:"-"`
}

// SendQuoteEmailResponse represents the response from sending a quote email
type SendQuoteEmailResponse struct {
	MessageID string
	Success   bool
	Error     string
}
