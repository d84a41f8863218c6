package auth

import "context"

// contextKey is a private type for context keys defined by this package.
type contextKey struct{}

// userIDKey carries the authenticated user's ID in the request context.
var userIDKey = contextKey{}

// WithUserID returns a context carrying the authenticated user's ID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user's ID, if present.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}
