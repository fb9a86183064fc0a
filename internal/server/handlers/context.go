package handlers

import "context"

// contextKey is the type for request context keys
type contextKey string

// UserIDKey is the key under which the auth middleware stores the
// authenticated user id in the request context
const UserIDKey contextKey = "user_id"

// GetUserID extracts the authenticated user id from the request context
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}
