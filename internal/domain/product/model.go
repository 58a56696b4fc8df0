package product

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
)

// Product is a sellable offering in the agency's catalog. Attaching a
// product to a quote line item snapshots its name and price; approving the
// quote clones the product's predefined tasks onto the new project.
type Product struct {
	// ID is the unique identifier for the product
	ID string `db:"id" json:"id"`

	// Name is the display name of the offering
	Name string `db:"name" json:"name"`

	// Description describes what the offering includes
	Description string `db:"description" json:"description"`

	// Category is a free-form catalog grouping label
	Category string `db:"category" json:"category"`

	// Price is the unit price in minor currency units. Major-unit prices
	// from the UI are converted exactly once at the DTO boundary.
	Price types.Money `db:"price" json:"price"`

	// Unit is what one unit of the price buys (project, hour, month, ...)
	Unit types.ProductUnit `db:"unit" json:"unit"`

	// IsActive controls whether the product is offered on new quotes
	IsActive bool `db:"is_active" json:"is_active"`

	// PredefinedTasks is the ordered list of task templates cloned into a
	// project when this product is sold. Array order is significant and
	// becomes the task sequence; the index is the provenance key for
	// idempotent seeding.
	PredefinedTasks PredefinedTasks `db:"predefined_tasks" json:"predefined_tasks"`

	types.BaseModel
}

// PredefinedTask is a task template attached to a product
type PredefinedTask struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	EstimatedHours float64 `json:"estimated_hours"`
	AssignedTo     string  `json:"assigned_to"`
}

// PredefinedTasks is stored as an ordered JSONB array
type PredefinedTasks []PredefinedTask

func (t PredefinedTasks) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t)
}

func (t *PredefinedTasks) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("unsupported type %T for PredefinedTasks", value)
	}
	return json.Unmarshal(b, t)
}

// Validate checks the invariants that must hold before persisting
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ierr.NewError("product name is required").
			WithHint("Product name must not be empty").
			Mark(ierr.ErrValidation)
	}
	if p.Price.IsNegative() {
		return ierr.NewError("product price must not be negative").
			WithHint("Price must be zero or positive").
			Mark(ierr.ErrValidation)
	}
	if err := p.Unit.Validate(); err != nil {
		return err
	}
	for i, tpl := range p.PredefinedTasks {
		if strings.TrimSpace(tpl.Title) == "" {
			return ierr.NewError("predefined task title is required").
				WithHintf("Predefined task %d has no title", i+1).
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}
