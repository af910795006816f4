package auth

import (
	"context"
)

type contextKey string

const (
	// ContextKeyUserID is the context key for the verified wallet-provider user id
	ContextKeyUserID contextKey = "privy_user_id"
)

// WithUserID adds the verified user id to the context
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ContextKeyUserID, userID)
}

// UserIDFromContext retrieves the verified user id from the context
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ContextKeyUserID).(string)
	return id, ok && id != ""
}
