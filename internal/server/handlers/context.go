package handlers

import "context"

// contextKey is a private type for request context keys
type contextKey string

const (
	// UserIDKey is the context key for the authenticated user id
	UserIDKey contextKey = "user_id"
	// UsernameKey is the context key for the authenticated username
	UsernameKey contextKey = "username"
	// SessionIDKey is the context key for the session handle (token jti)
	SessionIDKey contextKey = "session_id"
)

// GetUserID extracts the authenticated user id from the request context
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(UserIDKey).(int64)
	return id, ok
}

// GetUsername extracts the authenticated username from the request context
func GetUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}

// GetSessionID extracts the session handle from the request context
func GetSessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SessionIDKey).(string)
	return id, ok
}
