package quote

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/types"
)

// Repository defines the interface for quote data access. Create persists
// the quote and its line items together; Get and List return quotes with
// line items loaded in their original order.
type Repository interface {
	Create(ctx context.Context, quote *Quote) error
	Get(ctx context.Context, id string) (*Quote, error)
	List(ctx context.Context, filter *types.QuoteFilter) ([]*Quote, error)
	Count(ctx context.Context, filter *types.QuoteFilter) (int, error)
	Update(ctx context.Context, quote *Quote) error
	ReplaceLineItems(ctx context.Context, quoteID string, items []*LineItem) error
	Delete(ctx context.Context, id string) error
}
