package types

import (
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/samber/lo"
)

// QuoteStatus represents the current state of a quote in its lifecycle
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusViewed   QuoteStatus = "viewed"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusLost     QuoteStatus = "lost"
)

func (s QuoteStatus) String() string {
	return string(s)
}

func (s QuoteStatus) Validate() error {
	allowed := []QuoteStatus{
		QuoteStatusDraft,
		QuoteStatusSent,
		QuoteStatusViewed,
		QuoteStatusApproved,
		QuoteStatusLost,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid quote status").
			WithHint("Please provide a valid quote status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// IsTerminal reports whether the quote lifecycle has ended
func (s QuoteStatus) IsTerminal() bool {
	return s == QuoteStatusApproved || s == QuoteStatusLost
}

// quoteStatusTransitions is the allowed transition graph for quotes.
// Approval without an explicit viewed step is allowed (email recipients may
// approve from the PDF alone); approved and lost are terminal.
var quoteStatusTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteStatusDraft: {
		QuoteStatusSent,
		QuoteStatusLost,
	},
	QuoteStatusSent: {
		QuoteStatusViewed,
		QuoteStatusApproved,
		QuoteStatusLost,
	},
	QuoteStatusViewed: {
		QuoteStatusApproved,
		QuoteStatusLost,
	},
}

// CanTransitionTo reports whether moving from s to target is allowed
func (s QuoteStatus) CanTransitionTo(target QuoteStatus) bool {
	return lo.Contains(quoteStatusTransitions[s], target)
}

// PriceType describes how a quote line item is billed
type PriceType string

const (
	PriceTypeFixed   PriceType = "fixed"
	PriceTypeHourly  PriceType = "hourly"
	PriceTypeMonthly PriceType = "monthly"
)

func (t PriceType) String() string {
	return string(t)
}

func (t PriceType) Validate() error {
	allowed := []PriceType{
		PriceTypeFixed,
		PriceTypeHourly,
		PriceTypeMonthly,
	}
	if !lo.Contains(allowed, t) {
		return ierr.NewError("invalid price type").
			WithHint("Please provide a valid price type").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// QuoteFilter represents filters for quote queries
type QuoteFilter struct {
	*QueryFilter
	ClientID    string       `json:"client_id,omitempty" form:"client_id"`
	QuoteStatus *QuoteStatus `json:"quote_status,omitempty" form:"quote_status"`
	Search      string       `json:"search,omitempty" form:"search"`
}

// NewQuoteFilter creates a new QuoteFilter with default values
func NewQuoteFilter() *QuoteFilter {
	return &QuoteFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

// Validate validates the quote filter
func (f *QuoteFilter) Validate() error {
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	if f.QuoteStatus != nil {
		if err := f.QuoteStatus.Validate(); err != nil {
			return err
		}
	}
	return nil
}
