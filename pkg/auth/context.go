package auth

import (
	"context"
	"errors"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const staffIDKey contextKey = "staff_id"

// ErrStaffIDNotFound is returned when no staff ID exists in the request
// context. Handlers should return 401 when this error occurs.
var ErrStaffIDNotFound = errors.New("staff_id not found in context")

// StaffIDFromCtx extracts the authenticated staff member's ID from the
// request context. Returns ErrStaffIDNotFound for unauthenticated requests.
func StaffIDFromCtx(ctx context.Context) (string, error) {
	staffID, ok := ctx.Value(staffIDKey).(string)
	if !ok || staffID == "" {
		return "", ErrStaffIDNotFound
	}
	return staffID, nil
}

// WithStaffID returns a new context with the given staff ID attached.
// Used by the session middleware after validating the cookie.
func WithStaffID(ctx context.Context, staffID string) context.Context {
	return context.WithValue(ctx, staffIDKey, staffID)
}
