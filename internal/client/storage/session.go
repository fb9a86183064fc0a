package storage

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound indicates that no session is stored (not logged in)
var ErrSessionNotFound = errors.New("session not found")

// Session represents a stored login session. The token is the bearer
// JWT exactly as the server issued it; the client keeps it on disk so
// commands between logins don't have to re-authenticate.
type Session struct {
	Username  string `json:"username"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"` // unix seconds
}

// Expired reports whether the session's token lifetime has passed
func (s *Session) Expired() bool {
	return time.Now().Unix() >= s.ExpiresAt
}

// SessionStorage defines interface for persisting the login session on
// the client
type SessionStorage interface {
	// SaveSession stores the session, replacing any previous one
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves the stored session
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the stored session (logout)
	DeleteSession(ctx context.Context) error
}
