package service

import (
	"context"
	"fmt"
	"time"

	"github.com/agencyhub/agencyhub/internal/api/dto"
	"github.com/agencyhub/agencyhub/internal/domain/pdfgen"
	"github.com/agencyhub/agencyhub/internal/domain/project"
	"github.com/agencyhub/agencyhub/internal/domain/quote"
	"github.com/agencyhub/agencyhub/internal/domain/task"
	"github.com/agencyhub/agencyhub/internal/email"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/samber/lo"
)

// QuoteService handles the quote lifecycle: drafting, delivery to the
// client, and the approval handoff that creates a project with its
// product-seeded tasks
type QuoteService interface {
	CreateQuote(ctx context.Context, req dto.CreateQuoteRequest) (*dto.QuoteResponse, error)
	GetQuote(ctx context.Context, id string) (*dto.QuoteResponse, error)
	ListQuotes(ctx context.Context, filter *types.QuoteFilter) (*dto.ListQuotesResponse, error)
	UpdateQuote(ctx context.Context, id string, req dto.UpdateQuoteRequest) (*dto.QuoteResponse, error)
	DeleteQuote(ctx context.Context, id string) error
	SendQuote(ctx context.Context, id string) (*dto.QuoteResponse, error)
	MarkQuoteViewed(ctx context.Context, id string) (*dto.QuoteResponse, error)
	ApproveQuote(ctx context.Context, id string) (*dto.ApproveQuoteResponse, error)
	RejectQuote(ctx context.Context, id string) (*dto.QuoteResponse, error)
	GetQuotePDF(ctx context.Context, id string) ([]byte, error)
}

type quoteService struct {
	ServiceParams
}

func NewQuoteService(params ServiceParams) QuoteService {
	return &quoteService{
		ServiceParams: params,
	}
}

func (s *quoteService) CreateQuote(ctx context.Context, req dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The client must exist before a quote can reference it
	if _, err := s.ClientRepo.Get(ctx, req.ClientID); err != nil {
		return nil, err
	}

	q := &quote.Quote{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_QUOTE),
		QuoteNumber:  types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_QUOTE),
		ClientID:     req.ClientID,
		Title:        req.Title,
		Description:  req.Description,
		ValidUntil:   req.ValidUntil,
		QuoteStatus:  types.QuoteStatusDraft,
		Notes:        req.Notes,
		SenderEmail:  req.SenderEmail,
		EmailMessage: req.EmailMessage,
		BaseModel:    types.GetDefaultBaseModel(ctx),
	}

	items, err := s.buildLineItems(ctx, q.ID, req.LineItems)
	if err != nil {
		return nil, err
	}
	q.LineItems = items
	q.ApplyTotals()

	if err := q.Validate(); err != nil {
		return nil, err
	}

	if err := s.QuoteRepo.Create(ctx, q); err != nil {
		return nil, err
	}

	return &dto.QuoteResponse{Quote: q}, nil
}

// buildLineItems turns requested items into immutable snapshots. Items that
// reference a catalog product inherit its name, description, and price
// unless the request overrides them.
func (s *quoteService) buildLineItems(ctx context.Context, quoteID string, reqs []dto.QuoteLineItemRequest) ([]*quote.LineItem, error) {
	items := make([]*quote.LineItem, 0, len(reqs))
	for i := range reqs {
		r := reqs[i]
		li := r.ToLineItem(ctx, quoteID)

		if r.ProductID != nil {
			p, err := s.ProductRepo.Get(ctx, *r.ProductID)
			if err != nil {
				return nil, err
			}
			if li.Name == "" {
				li.Name = p.Name
			}
			if li.Description == "" {
				li.Description = p.Description
			}
			if r.UnitPrice == 0 {
				li.UnitPrice = p.Price
			}
			li.Total = li.ComputeTotal()
		}

		items = append(items, li)
	}
	return items, nil
}

func (s *quoteService) GetQuote(ctx context.Context, id string) (*dto.QuoteResponse, error) {
	if id == "" {
		return nil, ierr.NewError("quote id is required").
			WithHint("Quote ID is required").
			Mark(ierr.ErrValidation)
	}

	q, err := s.QuoteRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.QuoteResponse{Quote: q}, nil
}

func (s *quoteService) ListQuotes(ctx context.Context, filter *types.QuoteFilter) (*dto.ListQuotesResponse, error) {
	if filter == nil {
		filter = types.NewQuoteFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	quotes, err := s.QuoteRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.QuoteRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(quotes, func(q *quote.Quote, _ int) *dto.QuoteResponse {
		return &dto.QuoteResponse{Quote: q}
	})

	resp := types.NewListResponse(items, count, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

// UpdateQuote edits a draft. Quotes that have left draft are immutable;
// totals are recomputed whenever line items change.
func (s *quoteService) UpdateQuote(ctx context.Context, id string, req dto.UpdateQuoteRequest) (*dto.QuoteResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	q, err := s.QuoteRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if q.QuoteStatus != types.QuoteStatusDraft {
		return nil, ierr.NewError("only draft quotes can be edited").
			WithHint("The quote has already been sent and can no longer change").
			WithReportableDetails(map[string]any{
				"quote_id":     q.ID,
				"quote_status": q.QuoteStatus,
			}).
			Mark(ierr.ErrConflict)
	}

	if req.Title != nil {
		q.Title = *req.Title
	}
	if req.Description != nil {
		q.Description = *req.Description
	}
	if req.ValidUntil != nil {
		q.ValidUntil = *req.ValidUntil
	}
	if req.Notes != nil {
		q.Notes = *req.Notes
	}
	if req.SenderEmail != nil {
		q.SenderEmail = *req.SenderEmail
	}
	if req.EmailMessage != nil {
		q.EmailMessage = *req.EmailMessage
	}

	replaceItems := req.LineItems != nil
	if replaceItems {
		items, err := s.buildLineItems(ctx, q.ID, req.LineItems)
		if err != nil {
			return nil, err
		}
		q.LineItems = items
	}
	q.ApplyTotals()

	if err := q.Validate(); err != nil {
		return nil, err
	}

	err = s.DB.WithTx(ctx, func(txCtx context.Context) error {
		if replaceItems {
			if err := s.QuoteRepo.ReplaceLineItems(txCtx, q.ID, q.LineItems); err != nil {
				return err
			}
		}
		return s.QuoteRepo.Update(txCtx, q)
	})
	if err != nil {
		return nil, err
	}

	return &dto.QuoteResponse{Quote: q}, nil
}

func (s *quoteService) DeleteQuote(ctx context.Context, id string) error {
	if id == "" {
		return ierr.NewError("quote id is required").
			WithHint("Quote ID is required").
			Mark(ierr.ErrValidation)
	}

	q, err := s.QuoteRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if q.QuoteStatus == types.QuoteStatusApproved {
		return ierr.NewError("approved quotes cannot be deleted").
			WithHint("The quote has been approved and is part of the delivery record").
			Mark(ierr.ErrConflict)
	}

	return s.QuoteRepo.Delete(ctx, id)
}

// SendQuote renders the quote PDF and emails it to the client. The status
// moves to sent only after the provider accepts the message; a delivery
// failure leaves the quote untouched so the send can be retried.
func (s *quoteService) SendQuote(ctx context.Context, id string) (*dto.QuoteResponse, error) {
	q, err := s.QuoteRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !q.QuoteStatus.CanTransitionTo(types.QuoteStatusSent) {
		return nil, ierr.NewError("quote cannot be sent").
			WithHint("Only draft quotes can be sent").
			WithReportableDetails(map[string]any{
				"quote_id":     q.ID,
				"quote_status": q.QuoteStatus,
			}).
			Mark(ierr.ErrConflict)
	}

	c, err := s.ClientRepo.Get(ctx, q.ClientID)
	if err != nil {
		return nil, err
	}
	if c.Email == "" {
		return nil, ierr.NewError("client has no email address").
			WithHint("Set an email address on the client before sending the quote").
			Mark(ierr.ErrInvalidOperation)
	}

	data, err := s.buildQuoteData(ctx, q)
	if err != nil {
		return nil, err
	}

	pdfBytes, err := s.PDFGenerator.RenderQuotePdf(ctx, data)
	if err != nil {
		return nil, err
	}

	fromAddress := q.SenderEmail
	if fromAddress == "" {
		fromAddress = s.Config.Email.FromAddress
	}

	_, err = s.Email.SendQuoteEmail(ctx, email.SendQuoteEmailRequest{
		FromAddress: fromAddress,
		ToAddress:   c.Email,
		Subject:     fmt.Sprintf("Quote %s - %s", q.QuoteNumber, q.Title),
		Message:     q.EmailMessage,
		Filename:    fmt.Sprintf("%s.pdf", q.QuoteNumber),
		Attachment:  pdfBytes,
	})
	if err != nil {
		return nil, err
	}

	q.QuoteStatus = types.QuoteStatusSent
	q.SentAt = lo.ToPtr(time.Now().UTC())
	if err := s.QuoteRepo.Update(ctx, q); err != nil {
		return nil, err
	}

	s.Logger.Infow("sent quote to client",
		"quote_id", q.ID,
		"quote_number", q.QuoteNumber,
		"client_id", c.ID)

	return &dto.QuoteResponse{Quote: q}, nil
}

// MarkQuoteViewed records that the client opened the quote
func (s *quoteService) MarkQuoteViewed(ctx context.Context, id string) (*dto.QuoteResponse, error) {
	q, err := s.QuoteRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// Viewing is idempotent; re-opening an already viewed quote is a no-op
	if q.QuoteStatus == types.QuoteStatusViewed {
		return &dto.QuoteResponse{Quote: q}, nil
	}

	if !q.QuoteStatus.CanTransitionTo(types.QuoteStatusViewed) {
		return nil, ierr.NewError("quote cannot be marked viewed").
			WithHint("Only sent quotes can be marked viewed").
			WithReportableDetails(map[string]any{
				"quote_id":     q.ID,
				"quote_status": q.QuoteStatus,
			}).
			Mark(ierr.ErrConflict)
	}

	q.QuoteStatus = types.QuoteStatusViewed
	if err := s.QuoteRepo.Update(ctx, q); err != nil {
		return nil, err
	}

	return &dto.QuoteResponse{Quote: q}, nil
}

// ApproveQuote is the sale-to-delivery handoff. In one transaction the
// quote is approved, a project is created with the quote total as its
// budget, and every product-backed line item seeds tasks from the
// product's predefined templates. Approving an already approved quote
// returns the existing project without creating anything new.
func (s *quoteService) ApproveQuote(ctx context.Context, id string) (*dto.ApproveQuoteResponse, error) {
	q, err := s.QuoteRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if q.QuoteStatus == types.QuoteStatusApproved {
		existing, err := s.ProjectRepo.GetByQuoteID(ctx, q.ID)
		if err != nil {
			return nil, err
		}
		tasks, err := s.listProjectTasks(ctx, existing.ID)
		if err != nil {
			return nil, err
		}
		return &dto.ApproveQuoteResponse{
			Quote:   &dto.QuoteResponse{Quote: q},
			Project: &dto.ProjectResponse{Project: existing},
			Tasks:   tasks,
		}, nil
	}

	if !q.QuoteStatus.CanTransitionTo(types.QuoteStatusApproved) {
		return nil, ierr.NewError("quote cannot be approved").
			WithHint("Only sent or viewed quotes can be approved").
			WithReportableDetails(map[string]any{
				"quote_id":     q.ID,
				"quote_status": q.QuoteStatus,
			}).
			Mark(ierr.ErrConflict)
	}

	proj := &project.Project{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PROJECT),
		ClientID:      q.ClientID,
		QuoteID:       lo.ToPtr(q.ID),
		Name:          q.Title,
		Description:   q.Description,
		ProjectStatus: types.ProjectStatusPlanning,
		Priority:      types.PriorityMedium,
		Budget:        q.Total,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}

	tasks, err := s.seedTasks(ctx, q, proj)
	if err != nil {
		return nil, err
	}

	err = s.DB.WithTx(ctx, func(txCtx context.Context) error {
		// A concurrent approval may have won the race; the existing project
		// makes this call a read
		if existing, err := s.ProjectRepo.GetByQuoteID(txCtx, q.ID); err == nil {
			proj = existing
			tasks = nil
			return nil
		} else if !ierr.IsNotFound(err) {
			return err
		}

		if err := s.ProjectRepo.Create(txCtx, proj); err != nil {
			return err
		}
		if len(tasks) > 0 {
			if err := s.TaskRepo.CreateBulk(txCtx, tasks); err != nil {
				return err
			}
		}

		q.QuoteStatus = types.QuoteStatusApproved
		q.ApprovedAt = lo.ToPtr(time.Now().UTC())
		return s.QuoteRepo.Update(txCtx, q)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("approved quote",
		"quote_id", q.ID,
		"project_id", proj.ID,
		"tasks_seeded", len(tasks))

	taskResponses := lo.Map(tasks, func(t *task.Task, _ int) *dto.TaskResponse {
		return &dto.TaskResponse{Task: t}
	})

	return &dto.ApproveQuoteResponse{
		Quote:   &dto.QuoteResponse{Quote: q},
		Project: &dto.ProjectResponse{Project: proj},
		Tasks:   taskResponses,
	}, nil
}

// seedTasks clones predefined task templates from every product-backed line
// item onto the new project. A line item whose product has been deleted
// aborts the approval; the catalog must be intact at approval time.
func (s *quoteService) seedTasks(ctx context.Context, q *quote.Quote, proj *project.Project) ([]*task.Task, error) {
	var tasks []*task.Task
	for _, li := range q.LineItems {
		if li.ProductID == nil {
			continue
		}

		p, err := s.ProductRepo.Get(ctx, *li.ProductID)
		if err != nil {
			return nil, err
		}

		for idx, tpl := range p.PredefinedTasks {
			tasks = append(tasks, &task.Task{
				ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TASK),
				ProjectID:       lo.ToPtr(proj.ID),
				ClientID:        lo.ToPtr(q.ClientID),
				Title:           tpl.Title,
				Description:     tpl.Description,
				TaskStatus:      types.TaskStatusNew,
				Priority:        types.PriorityMedium,
				AssignedTo:      tpl.AssignedTo,
				EstimatedHours:  tpl.EstimatedHours,
				SourceProductID: lo.ToPtr(p.ID),
				TemplateIndex:   lo.ToPtr(idx),
				BaseModel:       types.GetDefaultBaseModel(ctx),
			})
		}
	}
	return tasks, nil
}

func (s *quoteService) listProjectTasks(ctx context.Context, projectID string) ([]*dto.TaskResponse, error) {
	filter := types.NewNoLimitTaskFilter()
	filter.ProjectID = projectID
	tasks, err := s.TaskRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return lo.Map(tasks, func(t *task.Task, _ int) *dto.TaskResponse {
		return &dto.TaskResponse{Task: t}
	}), nil
}

// RejectQuote marks the quote lost. Allowed from any non-terminal status.
func (s *quoteService) RejectQuote(ctx context.Context, id string) (*dto.QuoteResponse, error) {
	q, err := s.QuoteRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !q.QuoteStatus.CanTransitionTo(types.QuoteStatusLost) {
		return nil, ierr.NewError("quote cannot be rejected").
			WithHint("The quote has already reached a terminal status").
			WithReportableDetails(map[string]any{
				"quote_id":     q.ID,
				"quote_status": q.QuoteStatus,
			}).
			Mark(ierr.ErrConflict)
	}

	q.QuoteStatus = types.QuoteStatusLost
	if err := s.QuoteRepo.Update(ctx, q); err != nil {
		return nil, err
	}

	return &dto.QuoteResponse{Quote: q}, nil
}

// GetQuotePDF renders the quote document without sending it
func (s *quoteService) GetQuotePDF(ctx context.Context, id string) ([]byte, error) {
	q, err := s.QuoteRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := s.buildQuoteData(ctx, q)
	if err != nil {
		return nil, err
	}

	return s.PDFGenerator.RenderQuotePdf(ctx, data)
}

// buildQuoteData assembles the document model for the PDF template from the
// quote, its client, and the issuing agency
func (s *quoteService) buildQuoteData(ctx context.Context, q *quote.Quote) (*pdfgen.QuoteData, error) {
	c, err := s.ClientRepo.Get(ctx, q.ClientID)
	if err != nil {
		return nil, err
	}

	a, err := s.AgencyRepo.Get(ctx, types.GetAgencyID(ctx))
	if err != nil {
		return nil, err
	}

	lineItems := make([]pdfgen.LineItemData, 0, len(q.LineItems))
	for _, li := range q.LineItems {
		lineItems = append(lineItems, pdfgen.LineItemData{
			DisplayName: li.Name,
			Description: li.Description,
			PriceType:   li.PriceType.String(),
			UnitPrice:   li.UnitPrice.ToMajorUnits().InexactFloat64(),
			Quantity:    li.Quantity,
			Amount:      li.Total.ToMajorUnits().InexactFloat64(),
			Currency:    "ILS",
		})
	}

	return &pdfgen.QuoteData{
		Currency:    "ILS",
		ID:          q.ID,
		QuoteStatus: q.QuoteStatus.String(),
		QuoteNumber: q.QuoteNumber,
		Title:       q.Title,
		Description: q.Description,
		IssuingDate: pdfgen.CustomTime{Time: q.CreatedAt},
		ValidUntil:  pdfgen.CustomTime{Time: q.ValidUntil},
		Subtotal:    q.Subtotal.ToMajorUnits().InexactFloat64(),
		VATAmount:   q.VATAmount.ToMajorUnits().InexactFloat64(),
		VAT:         types.VATRate.InexactFloat64(),
		Total:       q.Total.ToMajorUnits().InexactFloat64(),
		Notes:       q.Notes,
		Biller: &pdfgen.BillerInfo{
			Name:    a.Name,
			Email:   a.ContactEmail,
			Website: a.Website,
		},
		Recipient: &pdfgen.RecipientInfo{
			Name:  c.Name,
			Email: c.Email,
		},
		LineItems: lineItems,
	}, nil
}
