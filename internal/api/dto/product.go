package dto

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/domain/product"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/shopspring/decimal"
)

type PredefinedTaskRequest struct {
	Title          string  `json:"title" validate:"required,max=255"`
	Description    string  `json:"description"`
	EstimatedHours float64 `json:"estimated_hours" validate:"omitempty,gte=0"`
	AssignedTo     string  `json:"assigned_to"`
}

type CreateProductRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"omitempty,max=100"`
	// Price is in major currency units (shekels); the catalog is the one
	// surface where prices are typed in by hand
	Price           decimal.Decimal         `json:"price"`
	Unit            types.ProductUnit       `json:"unit" validate:"required"`
	IsActive        *bool                   `json:"is_active"`
	PredefinedTasks []PredefinedTaskRequest `json:"predefined_tasks,omitempty" validate:"dive"`
}

type UpdateProductRequest struct {
	Name            *string                 `json:"name" validate:"omitempty,max=255"`
	Description     *string                 `json:"description"`
	Category        *string                 `json:"category" validate:"omitempty,max=100"`
	Price           *decimal.Decimal        `json:"price"`
	Unit            *types.ProductUnit      `json:"unit"`
	IsActive        *bool                   `json:"is_active"`
	PredefinedTasks []PredefinedTaskRequest `json:"predefined_tasks,omitempty" validate:"dive"`
}

type ProductResponse struct {
	*product.Product
}

// ListProductsResponse represents the response for listing products
type ListProductsResponse = types.ListResponse[*ProductResponse]

func (r *CreateProductRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	return r.Unit.Validate()
}

func (r *CreateProductRequest) ToProduct(ctx context.Context) *product.Product {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	templates := make(product.PredefinedTasks, 0, len(r.PredefinedTasks))
	for _, t := range r.PredefinedTasks {
		templates = append(templates, product.PredefinedTask{
			Title:          t.Title,
			Description:    t.Description,
			EstimatedHours: t.EstimatedHours,
			AssignedTo:     t.AssignedTo,
		})
	}
	return &product.Product{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PRODUCT),
		Name:            r.Name,
		Description:     r.Description,
		Category:        r.Category,
		Price:           types.MoneyFromMajorUnits(r.Price),
		Unit:            r.Unit,
		IsActive:        isActive,
		PredefinedTasks: templates,
		BaseModel:       types.GetDefaultBaseModel(ctx),
	}
}

func (r *UpdateProductRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.Unit != nil {
		return r.Unit.Validate()
	}
	return nil
}
