package service

import (
	"testing"
	"time"

	"github.com/agencyhub/agencyhub/internal/api/dto"
	"github.com/agencyhub/agencyhub/internal/domain/agency"
	"github.com/agencyhub/agencyhub/internal/domain/client"
	"github.com/agencyhub/agencyhub/internal/domain/product"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/testutil"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type QuoteServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  QuoteService
	testData struct {
		agency  *agency.Agency
		client  *client.Client
		product *product.Product
	}
}

func TestQuoteService(t *testing.T) {
	suite.Run(t, new(QuoteServiceSuite))
}

func (s *QuoteServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupService()
	s.setupTestData()
}

func (s *QuoteServiceSuite) setupService() {
	s.service = NewQuoteService(s.serviceParams())
}

func (s *QuoteServiceSuite) serviceParams() ServiceParams {
	return ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		DB:           s.GetDB(),
		PDFGenerator: s.GetPDFGenerator(),
		Email:        s.GetEmailSender(),
		Cache:        s.GetCache(),
		AgencyRepo:   s.GetStores().AgencyRepo,
		UserRepo:     s.GetStores().UserRepo,
		ClientRepo:   s.GetStores().ClientRepo,
		LeadRepo:     s.GetStores().LeadRepo,
		ProductRepo:  s.GetStores().ProductRepo,
		QuoteRepo:    s.GetStores().QuoteRepo,
		ProjectRepo:  s.GetStores().ProjectRepo,
		TaskRepo:     s.GetStores().TaskRepo,
		AssetRepo:    s.GetStores().AssetRepo,
	}
}

func (s *QuoteServiceSuite) setupTestData() {
	s.testData.agency = &agency.Agency{
		ID:           types.GetAgencyID(s.GetContext()),
		Name:         "Studio North",
		Slug:         "studio-north",
		ContactEmail: "hello@studionorth.example",
		BaseModel:    types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().AgencyRepo.Create(s.GetContext(), s.testData.agency))

	s.testData.client = &client.Client{
		ID:           "client_1",
		Name:         "Acme Retail",
		ContactName:  "Noa Levi",
		Email:        "noa@acme.example",
		ClientStatus: types.ClientStatusActive,
		BaseModel:    types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ClientRepo.Create(s.GetContext(), s.testData.client))

	s.testData.product = &product.Product{
		ID:       "prod_website",
		Name:     "Website Build",
		Category: "web",
		Price:    types.Money(250000),
		Unit:     types.ProductUnitProject,
		IsActive: true,
		PredefinedTasks: product.PredefinedTasks{
			{Title: "Design mockup", EstimatedHours: 10},
			{Title: "Build homepage", EstimatedHours: 20},
		},
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ProductRepo.Create(s.GetContext(), s.testData.product))
}

func (s *QuoteServiceSuite) draftQuoteRequest() dto.CreateQuoteRequest {
	return dto.CreateQuoteRequest{
		ClientID:   s.testData.client.ID,
		Title:      "Website Redesign",
		ValidUntil: time.Now().UTC().AddDate(0, 1, 0),
		LineItems: []dto.QuoteLineItemRequest{
			{Name: "Design work", Quantity: 2, UnitPrice: types.Money(10000)},
			{Name: "Copywriting", Quantity: 1, UnitPrice: types.Money(5000)},
		},
	}
}

func (s *QuoteServiceSuite) TestCreateQuoteComputesTotals() {
	resp, err := s.service.CreateQuote(s.GetContext(), s.draftQuoteRequest())
	s.NoError(err)
	s.NotNil(resp)

	// 2 x 10000 + 1 x 5000 = 25000; VAT at 18% on the aggregate = 4500
	s.Equal(types.Money(25000), resp.Subtotal)
	s.Equal(types.Money(4500), resp.VATAmount)
	s.Equal(types.Money(29500), resp.Total)
	s.Equal(types.QuoteStatusDraft, resp.QuoteStatus)
	s.NotEmpty(resp.QuoteNumber)
	s.Len(resp.LineItems, 2)
	s.Equal(types.Money(20000), resp.LineItems[0].Total)
}

func (s *QuoteServiceSuite) TestCreateQuoteWithoutLineItems() {
	req := s.draftQuoteRequest()
	req.LineItems = nil

	resp, err := s.service.CreateQuote(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
	s.Nil(resp)

	// Nothing should have been persisted
	count, err := s.GetStores().QuoteRepo.Count(s.GetContext(), types.NewQuoteFilter())
	s.NoError(err)
	s.Zero(count)
}

func (s *QuoteServiceSuite) TestCreateQuoteUnknownClient() {
	req := s.draftQuoteRequest()
	req.ClientID = "client_missing"

	_, err := s.service.CreateQuote(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *QuoteServiceSuite) TestCreateQuoteSnapshotsProduct() {
	req := s.draftQuoteRequest()
	req.LineItems = []dto.QuoteLineItemRequest{
		{ProductID: lo.ToPtr(s.testData.product.ID), Quantity: 1},
	}

	resp, err := s.service.CreateQuote(s.GetContext(), req)
	s.NoError(err)
	s.Len(resp.LineItems, 1)

	li := resp.LineItems[0]
	s.Equal("Website Build", li.Name)
	s.Equal(types.Money(250000), li.UnitPrice)
	s.Equal(types.Money(250000), li.Total)

	// The snapshot must survive later catalog changes
	s.testData.product.Price = types.Money(999999)
	s.NoError(s.GetStores().ProductRepo.Update(s.GetContext(), s.testData.product))

	got, err := s.service.GetQuote(s.GetContext(), resp.ID)
	s.NoError(err)
	s.Equal(types.Money(250000), got.LineItems[0].UnitPrice)
}

func (s *QuoteServiceSuite) TestUpdateQuoteRecomputesTotals() {
	created, err := s.service.CreateQuote(s.GetContext(), s.draftQuoteRequest())
	s.NoError(err)

	updated, err := s.service.UpdateQuote(s.GetContext(), created.ID, dto.UpdateQuoteRequest{
		LineItems: []dto.QuoteLineItemRequest{
			{Name: "Design work", Quantity: 1, UnitPrice: types.Money(10000)},
		},
	})
	s.NoError(err)
	s.Equal(types.Money(10000), updated.Subtotal)
	s.Equal(types.Money(1800), updated.VATAmount)
	s.Equal(types.Money(11800), updated.Total)
	s.Len(updated.LineItems, 1)
}

func (s *QuoteServiceSuite) TestUpdateQuoteAfterSendConflicts() {
	created, err := s.service.CreateQuote(s.GetContext(), s.draftQuoteRequest())
	s.NoError(err)

	_, err = s.service.SendQuote(s.GetContext(), created.ID)
	s.NoError(err)

	_, err = s.service.UpdateQuote(s.GetContext(), created.ID, dto.UpdateQuoteRequest{
		Title: lo.ToPtr("New Title"),
	})
	s.Error(err)
	s.True(ierr.IsConflict(err))
}

func (s *QuoteServiceSuite) TestSendQuote() {
	created, err := s.service.CreateQuote(s.GetContext(), s.draftQuoteRequest())
	s.NoError(err)

	sent, err := s.service.SendQuote(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.QuoteStatusSent, sent.QuoteStatus)
	s.NotNil(sent.SentAt)

	s.Len(s.GetEmailSender().SentQuotes, 1)
	mail := s.GetEmailSender().SentQuotes[0]
	s.Equal(s.testData.client.Email, mail.ToAddress)
	s.Contains(mail.Subject, created.QuoteNumber)
	s.NotEmpty(mail.Attachment)
	s.Len(s.GetPDFGenerator().Rendered, 1)
}

func (s *QuoteServiceSuite) TestSendQuoteDeliveryFailureKeepsDraft() {
	created, err := s.service.CreateQuote(s.GetContext(), s.draftQuoteRequest())
	s.NoError(err)

	s.GetEmailSender().FailNext = true
	_, err = s.service.SendQuote(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsDelivery(err))

	// The quote must stay draft so the send can be retried
	got, err := s.service.GetQuote(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.QuoteStatusDraft, got.QuoteStatus)
	s.Nil(got.SentAt)

	retried, err := s.service.SendQuote(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.QuoteStatusSent, retried.QuoteStatus)
}

func (s *QuoteServiceSuite) TestSendQuoteRenderFailureKeepsDraft() {
	created, err := s.service.CreateQuote(s.GetContext(), s.draftQuoteRequest())
	s.NoError(err)

	s.GetPDFGenerator().FailNext = true
	_, err = s.service.SendQuote(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsDelivery(err))

	// No email goes out when the document cannot be rendered
	s.Empty(s.GetEmailSender().SentQuotes)

	got, err := s.service.GetQuote(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.QuoteStatusDraft, got.QuoteStatus)
}

func (s *QuoteServiceSuite) TestSendQuoteWithoutClientEmail() {
	s.testData.client.Email = ""
	s.NoError(s.GetStores().ClientRepo.Update(s.GetContext(), s.testData.client))

	created, err := s.service.CreateQuote(s.GetContext(), s.draftQuoteRequest())
	s.NoError(err)

	_, err = s.service.SendQuote(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *QuoteServiceSuite) TestMarkQuoteViewed() {
	created, err := s.service.CreateQuote(s.GetContext(), s.draftQuoteRequest())
	s.NoError(err)

	// A draft has not been delivered and cannot be viewed
	_, err = s.service.MarkQuoteViewed(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsConflict(err))

	_, err = s.service.SendQuote(s.GetContext(), created.ID)
	s.NoError(err)

	viewed, err := s.service.MarkQuoteViewed(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.QuoteStatusViewed, viewed.QuoteStatus)

	// Re-opening the document is a no-op
	again, err := s.service.MarkQuoteViewed(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.QuoteStatusViewed, again.QuoteStatus)
}

func (s *QuoteServiceSuite) TestApproveQuoteSeedsProjectAndTasks() {
	req := s.draftQuoteRequest()
	req.LineItems = append(req.LineItems, dto.QuoteLineItemRequest{
		ProductID: lo.ToPtr(s.testData.product.ID),
		Quantity:  1,
	})

	created, err := s.service.CreateQuote(s.GetContext(), req)
	s.NoError(err)
	_, err = s.service.SendQuote(s.GetContext(), created.ID)
	s.NoError(err)

	approved, err := s.service.ApproveQuote(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.QuoteStatusApproved, approved.Quote.QuoteStatus)
	s.NotNil(approved.Quote.ApprovedAt)

	s.NotNil(approved.Project)
	s.Equal(created.Title, approved.Project.Name)
	s.Equal(s.testData.client.ID, approved.Project.ClientID)
	s.Equal(created.ID, *approved.Project.QuoteID)
	s.Equal(approved.Quote.Total, approved.Project.Budget)

	s.Len(approved.Tasks, 2)
	s.Equal("Design mockup", approved.Tasks[0].Title)
	s.Equal("Build homepage", approved.Tasks[1].Title)
	for i, t := range approved.Tasks {
		s.Equal(s.testData.product.ID, *t.SourceProductID)
		s.Equal(i, *t.TemplateIndex)
		s.Equal(approved.Project.ID, *t.ProjectID)
		s.Equal(types.TaskStatusNew, t.TaskStatus)
	}
}

func (s *QuoteServiceSuite) TestApproveQuoteIsIdempotent() {
	req := s.draftQuoteRequest()
	req.LineItems = []dto.QuoteLineItemRequest{
		{ProductID: lo.ToPtr(s.testData.product.ID), Quantity: 1},
	}

	created, err := s.service.CreateQuote(s.GetContext(), req)
	s.NoError(err)
	_, err = s.service.SendQuote(s.GetContext(), created.ID)
	s.NoError(err)

	first, err := s.service.ApproveQuote(s.GetContext(), created.ID)
	s.NoError(err)

	second, err := s.service.ApproveQuote(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(first.Project.ID, second.Project.ID)

	// No duplicate project or tasks after the second approval
	filter := types.NewNoLimitTaskFilter()
	filter.ProjectID = first.Project.ID
	count, err := s.GetStores().TaskRepo.Count(s.GetContext(), filter)
	s.NoError(err)
	s.Equal(2, count)
}

func (s *QuoteServiceSuite) TestApproveDraftQuoteConflicts() {
	created, err := s.service.CreateQuote(s.GetContext(), s.draftQuoteRequest())
	s.NoError(err)

	_, err = s.service.ApproveQuote(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsConflict(err))
}

func (s *QuoteServiceSuite) TestApproveQuoteWithDeletedProduct() {
	req := s.draftQuoteRequest()
	req.LineItems = []dto.QuoteLineItemRequest{
		{ProductID: lo.ToPtr(s.testData.product.ID), Quantity: 1},
	}

	created, err := s.service.CreateQuote(s.GetContext(), req)
	s.NoError(err)
	_, err = s.service.SendQuote(s.GetContext(), created.ID)
	s.NoError(err)

	s.NoError(s.GetStores().ProductRepo.Delete(s.GetContext(), s.testData.product.ID))

	_, err = s.service.ApproveQuote(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))

	// The approval must not go through halfway
	got, err := s.service.GetQuote(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.QuoteStatusSent, got.QuoteStatus)
}

func (s *QuoteServiceSuite) TestRejectQuote() {
	created, err := s.service.CreateQuote(s.GetContext(), s.draftQuoteRequest())
	s.NoError(err)

	rejected, err := s.service.RejectQuote(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.QuoteStatusLost, rejected.QuoteStatus)

	_, err = s.service.RejectQuote(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsConflict(err))
}

func (s *QuoteServiceSuite) TestDeleteApprovedQuoteConflicts() {
	req := s.draftQuoteRequest()
	created, err := s.service.CreateQuote(s.GetContext(), req)
	s.NoError(err)
	_, err = s.service.SendQuote(s.GetContext(), created.ID)
	s.NoError(err)
	_, err = s.service.ApproveQuote(s.GetContext(), created.ID)
	s.NoError(err)

	err = s.service.DeleteQuote(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsConflict(err))
}
