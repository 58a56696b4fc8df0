package v1

import (
	"fmt"
	"net/http"

	"github.com/agencyhub/agencyhub/internal/api/dto"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/logger"
	"github.com/agencyhub/agencyhub/internal/service"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	service service.QuoteService
	log     *logger.Logger
}

func NewQuoteHandler(service service.QuoteService, log *logger.Logger) *QuoteHandler {
	return &QuoteHandler{
		service: service,
		log:     log,
	}
}

// @Summary Create a quote
// @Description Create a quote with line items and computed totals
// @Tags Quotes
// @Accept json
// @Produce json
// @Param quote body dto.CreateQuoteRequest true "Quote"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateQuote(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a quote
// @Description Get a quote
// @Tags Quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.GetQuote(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get quotes
// @Description Get quotes
// @Tags Quotes
// @Accept json
// @Produce json
// @Param filter query types.QuoteFilter false "Filter"
// @Success 200 {object} dto.ListQuotesResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /quotes [get]
func (h *QuoteHandler) GetQuotes(c *gin.Context) {
	var filter types.QuoteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}

	resp, err := h.service.ListQuotes(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a quote
// @Description Update a draft quote and recompute totals
// @Tags Quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param quote body dto.UpdateQuoteRequest true "Quote"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /quotes/{id} [put]
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateQuote(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a quote
// @Description Delete a quote unless it has been approved
// @Tags Quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /quotes/{id} [delete]
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	id := c.Param("id")

	err := h.service.DeleteQuote(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Send a quote
// @Description Render the quote as a PDF and email it to the client
// @Tags Quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /quotes/{id}/send [post]
func (h *QuoteHandler) SendQuote(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.SendQuote(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Mark a quote as viewed
// @Description Record that the client opened the quote
// @Tags Quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /quotes/{id}/view [post]
func (h *QuoteHandler) MarkQuoteViewed(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.MarkQuoteViewed(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Approve a quote
// @Description Approve a quote and seed the delivery project with tasks
// @Tags Quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} dto.ApproveQuoteResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /quotes/{id}/approve [post]
func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.ApproveQuote(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Reject a quote
// @Description Mark a quote as lost
// @Tags Quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /quotes/{id}/reject [post]
func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.RejectQuote(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Download a quote PDF
// @Description Render the quote document as a PDF
// @Tags Quotes
// @Accept json
// @Produce application/pdf
// @Param id path string true "Quote ID"
// @Success 200 {file} binary
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /quotes/{id}/pdf [get]
func (h *QuoteHandler) GetQuotePDF(c *gin.Context) {
	id := c.Param("id")

	data, err := h.service.GetQuotePDF(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", id))
	c.Data(http.StatusOK, "application/pdf", data)
}
