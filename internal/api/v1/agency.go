package v1

import (
	"net/http"

	"github.com/agencyhub/agencyhub/internal/api/dto"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/logger"
	"github.com/agencyhub/agencyhub/internal/service"
	"github.com/gin-gonic/gin"
)

type AgencyHandler struct {
	service service.AgencyService
	log     *logger.Logger
}

func NewAgencyHandler(service service.AgencyService, log *logger.Logger) *AgencyHandler {
	return &AgencyHandler{
		service: service,
		log:     log,
	}
}

// @Summary Create an agency
// @Description Create an agency tenant
// @Tags Agencies
// @Accept json
// @Produce json
// @Param agency body dto.CreateAgencyRequest true "Agency"
// @Success 201 {object} dto.AgencyResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /agencies [post]
func (h *AgencyHandler) CreateAgency(c *gin.Context) {
	var req dto.CreateAgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateAgency(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get the current agency
// @Description Get the agency of the calling tenant
// @Tags Agencies
// @Accept json
// @Produce json
// @Success 200 {object} dto.AgencyResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /agencies/me [get]
func (h *AgencyHandler) GetCurrentAgency(c *gin.Context) {
	resp, err := h.service.GetAgency(c.Request.Context(), "")
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get an agency
// @Description Get an agency
// @Tags Agencies
// @Accept json
// @Produce json
// @Param id path string true "Agency ID"
// @Success 200 {object} dto.AgencyResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /agencies/{id} [get]
func (h *AgencyHandler) GetAgency(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.GetAgency(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update an agency
// @Description Update an agency profile
// @Tags Agencies
// @Accept json
// @Produce json
// @Param id path string true "Agency ID"
// @Param agency body dto.UpdateAgencyRequest true "Agency"
// @Success 200 {object} dto.AgencyResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /agencies/{id} [put]
func (h *AgencyHandler) UpdateAgency(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateAgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateAgency(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
