package types

import (
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/samber/lo"
)

// Priority ranks leads, projects, and tasks
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) String() string {
	return string(p)
}

func (p Priority) Validate() error {
	allowed := []Priority{
		PriorityLow,
		PriorityMedium,
		PriorityHigh,
		PriorityUrgent,
	}
	if !lo.Contains(allowed, p) {
		return ierr.NewError("invalid priority").
			WithHint("Please provide a valid priority").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
