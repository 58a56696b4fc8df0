package service

import (
	"testing"

	"github.com/agencyhub/agencyhub/internal/api/dto"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/testutil"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ProductServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ProductService
}

func TestProductService(t *testing.T) {
	suite.Run(t, new(ProductServiceSuite))
}

func (s *ProductServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewProductService(ServiceParams{
		Logger:      s.GetLogger(),
		Config:      s.GetConfig(),
		DB:          s.GetDB(),
		Cache:       s.GetCache(),
		ProductRepo: s.GetStores().ProductRepo,
	})
}

func (s *ProductServiceSuite) TestCreateProductConvertsPrice() {
	resp, err := s.service.CreateProduct(s.GetContext(), dto.CreateProductRequest{
		Name:  "Landing Page",
		Price: decimal.RequireFromString("1234.56"),
		Unit:  types.ProductUnitProject,
	})
	s.NoError(err)
	s.Equal(types.Money(123456), resp.Price)
	s.True(resp.IsActive)
}

func (s *ProductServiceSuite) TestCreateProductRoundsHalfUp() {
	resp, err := s.service.CreateProduct(s.GetContext(), dto.CreateProductRequest{
		Name:  "Odd Priced",
		Price: decimal.RequireFromString("10.005"),
		Unit:  types.ProductUnitHour,
	})
	s.NoError(err)
	s.Equal(types.Money(1001), resp.Price)
}

func (s *ProductServiceSuite) TestUpdateProductConvertsPrice() {
	created, err := s.service.CreateProduct(s.GetContext(), dto.CreateProductRequest{
		Name:  "SEO Retainer",
		Price: decimal.NewFromInt(500),
		Unit:  types.ProductUnitMonth,
	})
	s.NoError(err)

	updated, err := s.service.UpdateProduct(s.GetContext(), created.ID, dto.UpdateProductRequest{
		Price: lo.ToPtr(decimal.RequireFromString("750.50")),
	})
	s.NoError(err)
	s.Equal(types.Money(75050), updated.Price)
}

func (s *ProductServiceSuite) TestGetProductReadsThroughCache() {
	created, err := s.service.CreateProduct(s.GetContext(), dto.CreateProductRequest{
		Name:  "Logo Design",
		Price: decimal.NewFromInt(300),
		Unit:  types.ProductUnitDesign,
	})
	s.NoError(err)

	first, err := s.service.GetProduct(s.GetContext(), created.ID)
	s.NoError(err)

	// A direct repository write does not show up until invalidation
	raw, err := s.GetStores().ProductRepo.Get(s.GetContext(), created.ID)
	s.NoError(err)
	raw.Name = "Renamed Behind The Cache"
	s.NoError(s.GetStores().ProductRepo.Update(s.GetContext(), raw))

	cached, err := s.service.GetProduct(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(first.Name, cached.Name)

	// Updating through the service invalidates the cached entry
	_, err = s.service.UpdateProduct(s.GetContext(), created.ID, dto.UpdateProductRequest{
		Name: lo.ToPtr("Logo Design v2"),
	})
	s.NoError(err)

	fresh, err := s.service.GetProduct(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal("Logo Design v2", fresh.Name)
}

func (s *ProductServiceSuite) TestUpdateProductTemplates() {
	created, err := s.service.CreateProduct(s.GetContext(), dto.CreateProductRequest{
		Name:  "Website Build",
		Price: decimal.NewFromInt(2500),
		Unit:  types.ProductUnitProject,
		PredefinedTasks: []dto.PredefinedTaskRequest{
			{Title: "Design mockup", EstimatedHours: 10},
		},
	})
	s.NoError(err)
	s.Len(created.PredefinedTasks, 1)

	updated, err := s.service.UpdateProduct(s.GetContext(), created.ID, dto.UpdateProductRequest{
		PredefinedTasks: []dto.PredefinedTaskRequest{
			{Title: "Design mockup", EstimatedHours: 10},
			{Title: "Build homepage", EstimatedHours: 20},
		},
	})
	s.NoError(err)
	s.Len(updated.PredefinedTasks, 2)
	s.Equal("Build homepage", updated.PredefinedTasks[1].Title)
}

func (s *ProductServiceSuite) TestDeleteProduct() {
	created, err := s.service.CreateProduct(s.GetContext(), dto.CreateProductRequest{
		Name:  "One Off",
		Price: decimal.NewFromInt(100),
		Unit:  types.ProductUnitProject,
	})
	s.NoError(err)

	s.NoError(s.service.DeleteProduct(s.GetContext(), created.ID))

	_, err = s.service.GetProduct(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ProductServiceSuite) TestListProductsByActive() {
	_, err := s.service.CreateProduct(s.GetContext(), dto.CreateProductRequest{
		Name:  "Active One",
		Price: decimal.NewFromInt(100),
		Unit:  types.ProductUnitProject,
	})
	s.NoError(err)
	_, err = s.service.CreateProduct(s.GetContext(), dto.CreateProductRequest{
		Name:     "Retired One",
		Price:    decimal.NewFromInt(100),
		Unit:     types.ProductUnitProject,
		IsActive: lo.ToPtr(false),
	})
	s.NoError(err)

	filter := types.NewProductFilter()
	filter.IsActive = lo.ToPtr(true)

	resp, err := s.service.ListProducts(s.GetContext(), filter)
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal("Active One", resp.Items[0].Name)
}
