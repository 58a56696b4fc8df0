package middleware

import (
	"context"

	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/types"
	"github.com/gin-gonic/gin"
)

// TenantMiddleware resolves the agency and user identity for the request
// from headers and stores them in the request context. Every repository
// query downstream is scoped by the agency ID set here.
func TenantMiddleware(c *gin.Context) {
	agencyID := c.GetHeader(types.HeaderAgencyID)
	if agencyID == "" {
		err := ierr.NewError("missing agency header").
			WithHint("The X-Agency-ID header is required").
			Mark(ierr.ErrPermissionDenied)
		c.AbortWithStatusJSON(ierr.HTTPStatusFromErr(err), ErrorResponse{
			Success: false,
			Error:   ErrorDetail{Display: "The X-Agency-ID header is required"},
		})
		return
	}

	userID := c.GetHeader(types.HeaderUserID)
	if userID == "" {
		userID = types.DefaultUserID
	}

	ctx := c.Request.Context()
	ctx = context.WithValue(ctx, types.CtxAgencyID, agencyID)
	ctx = context.WithValue(ctx, types.CtxUserID, userID)
	c.Request = c.Request.WithContext(ctx)

	c.Next()
}

// WebhookTenantMiddleware resolves the agency for unauthenticated webhook
// deliveries from the URL path instead of headers. External platforms
// cannot send custom headers.
func WebhookTenantMiddleware(c *gin.Context) {
	agencyID := c.Param("agency_id")
	if agencyID == "" {
		err := ierr.NewError("missing agency in webhook path").
			WithHint("The webhook URL must include the agency ID").
			Mark(ierr.ErrValidation)
		c.AbortWithStatusJSON(ierr.HTTPStatusFromErr(err), ErrorResponse{
			Success: false,
			Error:   ErrorDetail{Display: "The webhook URL must include the agency ID"},
		})
		return
	}

	ctx := c.Request.Context()
	ctx = context.WithValue(ctx, types.CtxAgencyID, agencyID)
	ctx = context.WithValue(ctx, types.CtxUserID, types.DefaultUserID)
	c.Request = c.Request.WithContext(ctx)

	c.Next()
}
