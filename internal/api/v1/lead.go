package v1

import (
	"net/http"

	"github.com/agencyhub/agencyhub/internal/api/dto"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/logger"
	"github.com/agencyhub/agencyhub/internal/service"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/gin-gonic/gin"
)

type LeadHandler struct {
	service service.LeadService
	log     *logger.Logger
}

func NewLeadHandler(service service.LeadService, log *logger.Logger) *LeadHandler {
	return &LeadHandler{
		service: service,
		log:     log,
	}
}

// @Summary Create a lead
// @Description Create a lead
// @Tags Leads
// @Accept json
// @Produce json
// @Param lead body dto.CreateLeadRequest true "Lead"
// @Success 201 {object} dto.LeadResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req dto.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateLead(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a lead
// @Description Get a lead
// @Tags Leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} dto.LeadResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.GetLead(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get leads
// @Description Get leads
// @Tags Leads
// @Accept json
// @Produce json
// @Param filter query types.LeadFilter false "Filter"
// @Success 200 {object} dto.ListLeadsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /leads [get]
func (h *LeadHandler) GetLeads(c *gin.Context) {
	var filter types.LeadFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}

	resp, err := h.service.ListLeads(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a lead
// @Description Update a lead
// @Tags Leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param lead body dto.UpdateLeadRequest true "Lead"
// @Success 200 {object} dto.LeadResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /leads/{id} [put]
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateLead(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a lead
// @Description Delete a lead
// @Tags Leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /leads/{id} [delete]
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	id := c.Param("id")

	err := h.service.DeleteLead(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Convert a lead into a client
// @Description Convert a qualified lead into a client record
// @Tags Leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body dto.ConvertLeadRequest false "Conversion overrides"
// @Success 200 {object} dto.ConvertLeadResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /leads/{id}/convert [post]
func (h *LeadHandler) ConvertLead(c *gin.Context) {
	id := c.Param("id")

	// Overrides are optional, so an empty body is fine
	var req dto.ConvertLeadRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(ierr.WithError(err).
				WithHint("Invalid request format").
				Mark(ierr.ErrValidation))
			return
		}
	}

	resp, err := h.service.ConvertLead(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get lead statistics
// @Description Get lead counts by status and total pipeline value
// @Tags Leads
// @Accept json
// @Produce json
// @Success 200 {object} dto.LeadStatsResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /leads/stats [get]
func (h *LeadHandler) GetLeadStats(c *gin.Context) {
	resp, err := h.service.GetLeadStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
