package quote

import (
	"strings"
	"time"

	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
)

// Quote is a priced, time-bounded proposal sent to a client, composed of
// ordered line items. Monetary fields are minor-unit integers; totals are
// always recomputed server-side from the line items.
type Quote struct {
	// ID is the unique identifier for the quote
	ID string `db:"id" json:"id"`

	// QuoteNumber is the short, customer-facing number, e.g. QT-X4ZK2A8Q
	QuoteNumber string `db:"quote_number" json:"quote_number"`

	// ClientID references the client the quote is addressed to
	ClientID string `db:"client_id" json:"client_id"`

	// Title is the headline of the proposal
	Title string `db:"title" json:"title"`

	// Description describes the proposed engagement
	Description string `db:"description" json:"description"`

	// ValidUntil is the date the offer expires
	ValidUntil time.Time `db:"valid_until" json:"valid_until"`

	// QuoteStatus is the lifecycle state of the quote
	QuoteStatus types.QuoteStatus `db:"quote_status" json:"quote_status"`

	// LineItems are the ordered items; loaded with the quote, stored in
	// their own table
	LineItems []*LineItem `db:"-" json:"line_items"`

	// Subtotal is the sum of all line item totals
	Subtotal types.Money `db:"subtotal" json:"subtotal"`

	// VATAmount is round(Subtotal * 0.18), applied once to the aggregate
	VATAmount types.Money `db:"vat_amount" json:"vat_amount"`

	// Total is Subtotal + VATAmount
	Total types.Money `db:"total" json:"total"`

	// Notes holds internal notes, not shown on the document
	Notes string `db:"notes" json:"notes"`

	// SenderEmail is the address quote emails are sent from
	SenderEmail string `db:"sender_email" json:"sender_email"`

	// EmailMessage is the cover message included in the quote email
	EmailMessage string `db:"email_message" json:"email_message"`

	// SentAt is stamped when the quote email is first delivered
	SentAt *time.Time `db:"sent_at" json:"sent_at,omitempty"`

	// ApprovedAt is stamped when the client approves the quote
	ApprovedAt *time.Time `db:"approved_at" json:"approved_at,omitempty"`

	types.BaseModel
}

// LineItem is an immutable value snapshot of one quoted deliverable. Name,
// description, and unit price are captured at quote creation and never
// re-read from the product; ProductID is a soft pointer that may dangle
// after the product is deleted.
type LineItem struct {
	// ID is the unique identifier for the line item
	ID string `db:"id" json:"id"`

	// QuoteID references the owning quote
	QuoteID string `db:"quote_id" json:"quote_id"`

	// ProductID is the catalog product this item was drawn from, if any
	ProductID *string `db:"product_id" json:"product_id,omitempty"`

	// Name is the snapshotted display name of the item
	Name string `db:"name" json:"name"`

	// Description is the snapshotted description of the item
	Description string `db:"description" json:"description"`

	// Quantity is the number of units quoted, at least 1
	Quantity int64 `db:"quantity" json:"quantity"`

	// UnitPrice is the snapshotted price per unit in minor units
	UnitPrice types.Money `db:"unit_price" json:"unit_price"`

	// PriceType describes how the item is billed
	PriceType types.PriceType `db:"price_type" json:"price_type"`

	// Total is Quantity * UnitPrice in minor units
	Total types.Money `db:"total" json:"total"`

	types.BaseModel
}

// ComputeTotal returns the line amount for the item
func (li *LineItem) ComputeTotal() types.Money {
	return li.UnitPrice.MulQuantity(li.Quantity)
}

// Validate checks the invariants that must hold before persisting
func (li *LineItem) Validate() error {
	if strings.TrimSpace(li.Name) == "" {
		return ierr.NewError("line item name is required").
			WithHint("Each line item needs a name").
			Mark(ierr.ErrValidation)
	}
	if li.Quantity < 1 {
		return ierr.NewError("line item quantity must be at least 1").
			WithHint("Quantity must be 1 or more").
			Mark(ierr.ErrValidation)
	}
	if li.UnitPrice.IsNegative() {
		return ierr.NewError("line item unit price must not be negative").
			WithHint("Unit price must be zero or positive").
			Mark(ierr.ErrValidation)
	}
	if err := li.PriceType.Validate(); err != nil {
		return err
	}
	return nil
}

// ComputeTotals derives subtotal, VAT, and total from the line items.
// The order is load-bearing: line totals are summed first and VAT is
// applied once to the aggregate. Rounding VAT per line would produce
// different totals and is not the intended behavior.
func ComputeTotals(items []*LineItem) (subtotal, vat, total types.Money) {
	for _, li := range items {
		subtotal = subtotal.Add(li.ComputeTotal())
	}
	vat = types.ComputeVAT(subtotal)
	total = subtotal.Add(vat)
	return subtotal, vat, total
}

// ApplyTotals recomputes line totals and the aggregate amounts in place
func (q *Quote) ApplyTotals() {
	for _, li := range q.LineItems {
		li.Total = li.ComputeTotal()
	}
	q.Subtotal, q.VATAmount, q.Total = ComputeTotals(q.LineItems)
}

// Validate checks the invariants that must hold before persisting
func (q *Quote) Validate() error {
	if strings.TrimSpace(q.Title) == "" {
		return ierr.NewError("quote title is required").
			WithHint("Quote title must not be empty").
			Mark(ierr.ErrValidation)
	}
	if q.ClientID == "" {
		return ierr.NewError("quote client is required").
			WithHint("A quote must reference a client").
			Mark(ierr.ErrValidation)
	}
	if q.ValidUntil.IsZero() {
		return ierr.NewError("quote validity date is required").
			WithHint("Please provide a valid-until date").
			Mark(ierr.ErrValidation)
	}
	if len(q.LineItems) == 0 {
		return ierr.NewError("quote has no line items").
			WithHint("A quote needs at least one line item").
			Mark(ierr.ErrValidation)
	}
	if err := q.QuoteStatus.Validate(); err != nil {
		return err
	}
	for _, li := range q.LineItems {
		if err := li.Validate(); err != nil {
			return err
		}
	}
	return nil
}
