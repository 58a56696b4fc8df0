package service

import (
	"context"

	"github.com/agencyhub/agencyhub/internal/api/dto"
	"github.com/agencyhub/agencyhub/internal/cache"
	"github.com/agencyhub/agencyhub/internal/domain/product"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/samber/lo"
)

// ProductService manages the agency's sellable catalog
type ProductService interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error)
	ListProducts(ctx context.Context, filter *types.ProductFilter) (*dto.ListProductsResponse, error)
	UpdateProduct(ctx context.Context, id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, id string) error
}

type productService struct {
	ServiceParams
}

func NewProductService(params ServiceParams) ProductService {
	return &productService{
		ServiceParams: params,
	}
}

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := req.ToProduct(ctx)
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := s.ProductRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	return &dto.ProductResponse{Product: p}, nil
}

func (s *productService) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	if id == "" {
		return nil, ierr.NewError("product id is required").
			WithHint("Product ID is required").
			Mark(ierr.ErrValidation)
	}

	cacheKey := cache.GenerateKey(cache.PrefixProduct, types.GetAgencyID(ctx), id)
	if cached, found := s.Cache.Get(ctx, cacheKey); found {
		if p, ok := cached.(*dto.ProductResponse); ok {
			return p, nil
		}
	}

	p, err := s.ProductRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProductResponse{Product: p}
	s.Cache.Set(ctx, cacheKey, resp, cache.DefaultExpiration)
	return resp, nil
}

func (s *productService) ListProducts(ctx context.Context, filter *types.ProductFilter) (*dto.ListProductsResponse, error) {
	if filter == nil {
		filter = types.NewProductFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	products, err := s.ProductRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.ProductRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(products, func(p *product.Product, _ int) *dto.ProductResponse {
		return &dto.ProductResponse{Product: p}
	})

	resp := types.NewListResponse(items, count, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.ProductRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Price != nil {
		p.Price = types.MoneyFromMajorUnits(*req.Price)
	}
	if req.Unit != nil {
		p.Unit = *req.Unit
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if req.PredefinedTasks != nil {
		templates := make(product.PredefinedTasks, 0, len(req.PredefinedTasks))
		for _, t := range req.PredefinedTasks {
			templates = append(templates, product.PredefinedTask{
				Title:          t.Title,
				Description:    t.Description,
				EstimatedHours: t.EstimatedHours,
				AssignedTo:     t.AssignedTo,
			})
		}
		p.PredefinedTasks = templates
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := s.ProductRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.Cache.DeleteByPrefix(ctx, cache.GenerateKey(cache.PrefixProduct, types.GetAgencyID(ctx), id))
	return &dto.ProductResponse{Product: p}, nil
}

// DeleteProduct removes a product from the catalog. Existing quote line
// items keep their snapshot of the product's name and price.
func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return ierr.NewError("product id is required").
			WithHint("Product ID is required").
			Mark(ierr.ErrValidation)
	}

	if _, err := s.ProductRepo.Get(ctx, id); err != nil {
		return err
	}

	if err := s.ProductRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.Cache.DeleteByPrefix(ctx, cache.GenerateKey(cache.PrefixProduct, types.GetAgencyID(ctx), id))
	return nil
}
