package dto

import (
	"context"
	"time"

	"github.com/agencyhub/agencyhub/internal/domain/quote"
	"github.com/agencyhub/agencyhub/internal/types"
)

// QuoteLineItemRequest describes one line of a quote. UnitPrice is in
// minor currency units (agorot), matching responses; zero means take the
// price from the referenced product.
type QuoteLineItemRequest struct {
	ProductID   *string         `json:"product_id"`
	Name        string          `json:"name" validate:"required_without=ProductID,max=255"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity" validate:"required,gte=1"`
	UnitPrice   types.Money     `json:"unit_price" validate:"omitempty,gte=0"`
	PriceType   types.PriceType `json:"price_type" validate:"omitempty"`
}

type CreateQuoteRequest struct {
	ClientID     string                 `json:"client_id" validate:"required"`
	Title        string                 `json:"title" validate:"required,max=255"`
	Description  string                 `json:"description"`
	ValidUntil   time.Time              `json:"valid_until" validate:"required"`
	LineItems    []QuoteLineItemRequest `json:"line_items" validate:"required,min=1,dive"`
	Notes        string                 `json:"notes"`
	SenderEmail  string                 `json:"sender_email" validate:"omitempty,email"`
	EmailMessage string                 `json:"email_message"`
}

type UpdateQuoteRequest struct {
	Title        *string                `json:"title" validate:"omitempty,max=255"`
	Description  *string                `json:"description"`
	ValidUntil   *time.Time             `json:"valid_until"`
	LineItems    []QuoteLineItemRequest `json:"line_items,omitempty" validate:"omitempty,min=1,dive"`
	Notes        *string                `json:"notes"`
	SenderEmail  *string                `json:"sender_email" validate:"omitempty,email"`
	EmailMessage *string                `json:"email_message"`
}

type QuoteResponse struct {
	*quote.Quote
}

// ListQuotesResponse represents the response for listing quotes
type ListQuotesResponse = types.ListResponse[*QuoteResponse]

// ApproveQuoteResponse returns the approved quote along with the project
// and tasks created from it
type ApproveQuoteResponse struct {
	Quote   *QuoteResponse   `json:"quote"`
	Project *ProjectResponse `json:"project"`
	Tasks   []*TaskResponse  `json:"tasks"`
}

func (r *CreateQuoteRequest) Validate() error {
	return validateStruct(r)
}

func (r *UpdateQuoteRequest) Validate() error {
	return validateStruct(r)
}

// ToLineItem builds a line item snapshot from the request. Callers resolve
// product-backed items first so price and name come from the catalog.
func (r *QuoteLineItemRequest) ToLineItem(ctx context.Context, quoteID string) *quote.LineItem {
	priceType := r.PriceType
	if priceType == "" {
		priceType = types.PriceTypeFixed
	}
	li := &quote.LineItem{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_QUOTE_ITEM),
		QuoteID:     quoteID,
		ProductID:   r.ProductID,
		Name:        r.Name,
		Description: r.Description,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		PriceType:   priceType,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
	li.Total = li.ComputeTotal()
	return li
}
