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

type AssetHandler struct {
	service service.AssetService
	log     *logger.Logger
}

func NewAssetHandler(service service.AssetService, log *logger.Logger) *AssetHandler {
	return &AssetHandler{
		service: service,
		log:     log,
	}
}

// @Summary Create an asset
// @Description Register a digital asset such as a domain or hosting plan
// @Tags Assets
// @Accept json
// @Produce json
// @Param asset body dto.CreateAssetRequest true "Asset"
// @Success 201 {object} dto.AssetResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /assets [post]
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateAsset(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get an asset
// @Description Get an asset
// @Tags Assets
// @Accept json
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} dto.AssetResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /assets/{id} [get]
func (h *AssetHandler) GetAsset(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.GetAsset(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get assets
// @Description Get assets, optionally limited to ones renewing soon
// @Tags Assets
// @Accept json
// @Produce json
// @Param filter query types.AssetFilter false "Filter"
// @Success 200 {object} dto.ListAssetsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /assets [get]
func (h *AssetHandler) GetAssets(c *gin.Context) {
	var filter types.AssetFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}

	resp, err := h.service.ListAssets(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update an asset
// @Description Update an asset
// @Tags Assets
// @Accept json
// @Produce json
// @Param id path string true "Asset ID"
// @Param asset body dto.UpdateAssetRequest true "Asset"
// @Success 200 {object} dto.AssetResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /assets/{id} [put]
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateAsset(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete an asset
// @Description Delete an asset
// @Tags Assets
// @Accept json
// @Produce json
// @Param id path string true "Asset ID"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /assets/{id} [delete]
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	id := c.Param("id")

	err := h.service.DeleteAsset(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
