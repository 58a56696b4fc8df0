package types

import (
	"context"
	"fmt"
)

// ContextKey is a type for the keys of values stored in the context
type ContextKey string

const (
	CtxRequestID     ContextKey = "ctx_request_id"
	CtxAgencyID      ContextKey = "ctx_agency_id"
	CtxUserID        ContextKey = "ctx_user_id"
	CtxDBTransaction ContextKey = "ctx_db_transaction"

	// Default values
	DefaultAgencyID = "00000000-0000-0000-0000-000000000000"
	DefaultUserID   = "00000000-0000-0000-0000-000000000000"
)

// Header names used to carry request identity
const (
	HeaderRequestID = "X-Request-ID"
	HeaderAgencyID  = "X-Agency-ID"
	HeaderUserID    = "X-User-ID"
)

func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(CtxUserID).(string); ok {
		return userID
	}
	return ""
}

// GetAgencyID returns the tenant partition key for the current request
func GetAgencyID(ctx context.Context) string {
	if agencyID, ok := ctx.Value(CtxAgencyID).(string); ok {
		return agencyID
	}
	return ""
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(CtxRequestID).(string); ok {
		return requestID
	}
	return ""
}

// SetAgencyID sets the agency ID in the context
func SetAgencyID(ctx context.Context, agencyID string) context.Context {
	return context.WithValue(ctx, CtxAgencyID, agencyID)
}

// SetUserID sets the user ID in the context
func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, CtxUserID, userID)
}

// ValidateAgencyContext validates that the tenant context is present
func ValidateAgencyContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context is nil")
	}

	if GetAgencyID(ctx) == "" {
		return fmt.Errorf("no agency context found in context")
	}

	return nil
}
