package testutil

import (
	"context"
	"strings"

	"github.com/agencyhub/agencyhub/internal/domain/quote"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/samber/lo"
)

// InMemoryQuoteStore implements quote.Repository
type InMemoryQuoteStore struct {
	*InMemoryStore[*quote.Quote]
}

// NewInMemoryQuoteStore creates a new in-memory quote store
func NewInMemoryQuoteStore() *InMemoryQuoteStore {
	return &InMemoryQuoteStore{
		InMemoryStore: NewInMemoryStore[*quote.Quote](),
	}
}

func copyQuote(q *quote.Quote) *quote.Quote {
	if q == nil {
		return nil
	}
	out := *q
	if q.SentAt != nil {
		sentAt := *q.SentAt
		out.SentAt = &sentAt
	}
	if q.ApprovedAt != nil {
		approvedAt := *q.ApprovedAt
		out.ApprovedAt = &approvedAt
	}
	out.LineItems = lo.Map(q.LineItems, func(li *quote.LineItem, _ int) *quote.LineItem {
		item := *li
		if li.ProductID != nil {
			productID := *li.ProductID
			item.ProductID = &productID
		}
		return &item
	})
	return &out
}

func (s *InMemoryQuoteStore) Create(ctx context.Context, q *quote.Quote) error {
	if err := s.InMemoryStore.Create(ctx, q.ID, copyQuote(q)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create quote").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryQuoteStore) Get(ctx context.Context, id string) (*quote.Quote, error) {
	q, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("quote not found").
			WithHint("Quote does not exist").
			Mark(ierr.ErrNotFound)
	}
	return copyQuote(q), nil
}

func (s *InMemoryQuoteStore) List(ctx context.Context, filter *types.QuoteFilter) ([]*quote.Quote, error) {
	items, err := s.InMemoryStore.List(ctx, filter, quoteFilterFn, quoteSortFn)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(q *quote.Quote, _ int) *quote.Quote {
		return copyQuote(q)
	}), nil
}

func (s *InMemoryQuoteStore) Count(ctx context.Context, filter *types.QuoteFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, quoteFilterFn)
}

func (s *InMemoryQuoteStore) Update(ctx context.Context, q *quote.Quote) error {
	if err := s.InMemoryStore.Update(ctx, q.ID, copyQuote(q)); err != nil {
		return ierr.NewError("quote not found").
			WithHint("Quote does not exist").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryQuoteStore) ReplaceLineItems(ctx context.Context, quoteID string, items []*quote.LineItem) error {
	q, err := s.InMemoryStore.Get(ctx, quoteID)
	if err != nil {
		return ierr.NewError("quote not found").
			WithHint("Quote does not exist").
			Mark(ierr.ErrNotFound)
	}
	updated := copyQuote(q)
	updated.LineItems = items
	return s.InMemoryStore.Update(ctx, quoteID, copyQuote(updated))
}

func (s *InMemoryQuoteStore) Delete(ctx context.Context, id string) error {
	if err := s.InMemoryStore.Delete(ctx, id); err != nil {
		return ierr.NewError("quote not found").
			WithHint("Quote does not exist").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func quoteFilterFn(ctx context.Context, q *quote.Quote, filter interface{}) bool {
	f, ok := filter.(*types.QuoteFilter)
	if !ok {
		return true
	}
	if q.AgencyID != types.GetAgencyID(ctx) {
		return false
	}
	if q.Status != f.GetStatus() {
		return false
	}
	if f.ClientID != "" && q.ClientID != f.ClientID {
		return false
	}
	if f.QuoteStatus != nil && q.QuoteStatus != *f.QuoteStatus {
		return false
	}
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(q.Title), search) &&
			!strings.Contains(strings.ToLower(q.QuoteNumber), search) {
			return false
		}
	}
	return true
}

func quoteSortFn(i, j *quote.Quote) bool {
	return i.CreatedAt.After(j.CreatedAt)
}
