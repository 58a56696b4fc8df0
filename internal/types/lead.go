package types

import (
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/samber/lo"
)

// LeadStatus represents the position of a lead in the sales pipeline
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusProposal  LeadStatus = "proposal"
	LeadStatusWon       LeadStatus = "won"
	LeadStatusLost      LeadStatus = "lost"
)

func (s LeadStatus) String() string {
	return string(s)
}

func (s LeadStatus) Validate() error {
	allowed := []LeadStatus{
		LeadStatusNew,
		LeadStatusContacted,
		LeadStatusQualified,
		LeadStatusProposal,
		LeadStatusWon,
		LeadStatusLost,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid lead status").
			WithHint("Please provide a valid lead status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// IsTerminal reports whether the lead has left the pipeline
func (s LeadStatus) IsTerminal() bool {
	return s == LeadStatusWon || s == LeadStatusLost
}

// leadStatusTransitions is the allowed transition graph for leads. The
// pipeline moves forward only; skipping stages forward is allowed and a lead
// may be lost from any non-terminal stage. Terminal statuses never change.
var leadStatusTransitions = map[LeadStatus][]LeadStatus{
	LeadStatusNew: {
		LeadStatusContacted,
		LeadStatusQualified,
		LeadStatusProposal,
		LeadStatusWon,
		LeadStatusLost,
	},
	LeadStatusContacted: {
		LeadStatusQualified,
		LeadStatusProposal,
		LeadStatusWon,
		LeadStatusLost,
	},
	LeadStatusQualified: {
		LeadStatusProposal,
		LeadStatusWon,
		LeadStatusLost,
	},
	LeadStatusProposal: {
		LeadStatusWon,
		LeadStatusLost,
	},
}

// CanTransitionTo reports whether moving from s to target is allowed
func (s LeadStatus) CanTransitionTo(target LeadStatus) bool {
	return lo.Contains(leadStatusTransitions[s], target)
}

// LeadFilter represents filters for lead queries. All set fields combine
// with AND semantics; Search is a case-insensitive substring match across
// contact name, email, and phone.
type LeadFilter struct {
	*QueryFilter
	LeadStatus *LeadStatus `json:"lead_status,omitempty" form:"lead_status"`
	Platform   string      `json:"platform,omitempty" form:"platform"`
	Priority   *Priority   `json:"priority,omitempty" form:"priority"`
	AssignedTo string      `json:"assigned_to,omitempty" form:"assigned_to"`
	Search     string      `json:"search,omitempty" form:"search"`
}

// NewLeadFilter creates a new LeadFilter with default values
func NewLeadFilter() *LeadFilter {
	return &LeadFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

// NewNoLimitLeadFilter creates a new LeadFilter with no pagination limits
func NewNoLimitLeadFilter() *LeadFilter {
	return &LeadFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

// Validate validates the lead filter
func (f *LeadFilter) Validate() error {
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	if f.LeadStatus != nil {
		if err := f.LeadStatus.Validate(); err != nil {
			return err
		}
	}
	if f.Priority != nil {
		if err := f.Priority.Validate(); err != nil {
			return err
		}
	}
	return nil
}
