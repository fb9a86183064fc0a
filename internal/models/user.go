package models

import "time"

// User represents a registered account. PasswordHash is a bcrypt hash;
// the plaintext password never leaves the registration/login handlers.
type User struct {
	ID           string    `json:"id"`            // UUID assigned at registration
	Username     string    `json:"username"`      // unique username
	PasswordHash string    `json:"-"`             // bcrypt hash, never serialized
	CreatedAt    time.Time `json:"created_at"`    // registration time
}
