package types

import (
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/samber/lo"
)

// ProductUnit is the unit a product is priced by
type ProductUnit string

const (
	ProductUnitProject  ProductUnit = "project"
	ProductUnitHour     ProductUnit = "hour"
	ProductUnitMonth    ProductUnit = "month"
	ProductUnitYear     ProductUnit = "year"
	ProductUnitPage     ProductUnit = "page"
	ProductUnitDesign   ProductUnit = "design"
	ProductUnitVideo    ProductUnit = "video"
	ProductUnitPost     ProductUnit = "post"
	ProductUnitCampaign ProductUnit = "campaign"
)

func (u ProductUnit) String() string {
	return string(u)
}

func (u ProductUnit) Validate() error {
	allowed := []ProductUnit{
		ProductUnitProject,
		ProductUnitHour,
		ProductUnitMonth,
		ProductUnitYear,
		ProductUnitPage,
		ProductUnitDesign,
		ProductUnitVideo,
		ProductUnitPost,
		ProductUnitCampaign,
	}
	if !lo.Contains(allowed, u) {
		return ierr.NewError("invalid product unit").
			WithHint("Please provide a valid product unit").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ProductFilter represents filters for product catalog queries
type ProductFilter struct {
	*QueryFilter
	Category string `json:"category,omitempty" form:"category"`
	IsActive *bool  `json:"is_active,omitempty" form:"is_active"`
	Search   string `json:"search,omitempty" form:"search"`
}

// NewProductFilter creates a new ProductFilter with default values
func NewProductFilter() *ProductFilter {
	return &ProductFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

// Validate validates the product filter
func (f *ProductFilter) Validate() error {
	return f.QueryFilter.Validate()
}
