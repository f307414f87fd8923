// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, HTTP client initialization, JWT token generation and validation,
// and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TenantIDCtxKey is the key used to store the tenant identifier in the
// context once the bearer token has been validated.
//
//	ctx := context.WithValue(ctx, utils.TenantIDCtxKey, "acme")
var TenantIDCtxKey = contextKey("tenantID")

// GetTenantIDFromContext retrieves the tenant identifier from the context.
//
// ok is false when the value is missing, has an unexpected type or is empty.
func GetTenantIDFromContext(ctx context.Context) (string, bool) {
	tenantID, ok := ctx.Value(TenantIDCtxKey).(string)
	return tenantID, ok && tenantID != ""
}

// WithTenantID returns a copy of ctx carrying tenantID.
func WithTenantID(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, TenantIDCtxKey, tenantID)
}
