package api

// RegisterRequest represents a request to register a new user
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest represents an authentication request
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse represents a successful authentication response.
// Register and login both return a freshly issued access token.
type TokenResponse struct {
	Token     string `json:"token"`      // JWT access token
	ExpiresIn int64  `json:"expires_in"` // token lifetime in seconds
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
