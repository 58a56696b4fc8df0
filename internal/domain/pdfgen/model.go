package pdfgen

import (
	"encoding/json"
	"time"
)

// QuoteData represents the data model for quote PDF generation
type QuoteData struct {
	Currency    string     `json:"currency"`
	BannerImage string     `json:"banner_image,omitempty"`
	ID          string     `json:"id"`
	QuoteStatus string     `json:"quote_status"`
	QuoteNumber string     `json:"quote_number"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	IssuingDate CustomTime `json:"issuing_date"`
	ValidUntil  CustomTime `json:"valid_until"`
	Subtotal    float64    `json:"subtotal"`
	VATAmount   float64    `json:"vat_amount"`
	VAT         float64    `json:"vat"` // VAT percentage as decimal (0.18 = 18%)
	Total       float64    `json:"total"`
	Notes       string     `json:"notes"`

	// Company information
	Biller    *BillerInfo    `json:"biller"`
	Recipient *RecipientInfo `json:"recipient"`

	// Line items
	LineItems []LineItemData `json:"line_items"`
}

// BillerInfo contains company information for the quote issuer
type BillerInfo struct {
	Name      string      `json:"name"`
	Email     string      `json:"email,omitempty"`
	Website   string      `json:"website,omitempty"`
	HelpEmail string      `json:"help_email,omitempty"`
	Address   AddressInfo `json:"address"`
}

// RecipientInfo contains client information for the quote recipient
type RecipientInfo struct {
	Name    string      `json:"name"`
	Email   string      `json:"email,omitempty"`
	Address AddressInfo `json:"address"`
}

// AddressInfo represents a physical address
type AddressInfo struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

// LineItemData represents a quote line item for PDF generation
type LineItemData struct {
	DisplayName string  `json:"display_name"`
	Description string  `json:"description,omitempty"`
	PriceType   string  `json:"price_type"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int64   `json:"quantity"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
}

type CustomTime struct {
	time.Time
}

func (ct CustomTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(ct.Format("2006-01-02")) // Format to YYYY-MM-DD
}
