package v1

import (
	"net/http"

	"github.com/agencyhub/agencyhub/internal/api/dto"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/logger"
	"github.com/agencyhub/agencyhub/internal/service"
	"github.com/gin-gonic/gin"
)

// WebhookHandler receives lead submissions pushed by external form
// platforms such as Facebook, Google or a website contact form.
type WebhookHandler struct {
	leadService service.LeadService
	log         *logger.Logger
}

func NewWebhookHandler(leadService service.LeadService, log *logger.Logger) *WebhookHandler {
	return &WebhookHandler{
		leadService: leadService,
		log:         log,
	}
}

// @Summary Ingest a lead from an external platform
// @Description Accept a lead pushed by an external form platform
// @Tags Webhooks
// @Accept json
// @Produce json
// @Param agency_id path string true "Agency ID"
// @Param platform path string true "Source platform"
// @Param lead body dto.IngestLeadRequest true "Lead payload"
// @Success 201 {object} dto.LeadResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /webhooks/{agency_id}/leads/{platform} [post]
func (h *WebhookHandler) IngestLead(c *gin.Context) {
	platform := c.Param("platform")

	var req dto.IngestLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.leadService.IngestLead(c.Request.Context(), platform, req)
	if err != nil {
		c.Error(err)
		return
	}

	h.log.Infow("ingested webhook lead",
		"lead_id", resp.ID,
		"platform", platform,
	)

	c.JSON(http.StatusCreated, resp)
}
