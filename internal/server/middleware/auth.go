package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/vkruglov/taskkeeper/internal/server/handlers"
)

// TokenHeader is the request header carrying the access token. The
// clients of this API send the raw token in a custom header rather than
// an Authorization bearer header; the name is part of the wire contract.
const TokenHeader = "jwt_token"

// AuthMiddleware creates middleware that verifies the access token and
// injects the authenticated user id into the request context. It fails
// closed: without a valid token the wrapped handler never runs.
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := r.Header.Get(TokenHeader)
			if tokenString == "" {
				logger.Warn("missing token header", "path", r.URL.Path)
				http.Error(w, "access denied: no token provided", http.StatusForbidden)
				return
			}

			claims, err := handlers.ValidateToken(jwtConfig, tokenString)
			if err != nil {
				logger.Warn("invalid access token", "error", err)
				http.Error(w, "invalid token", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), handlers.UserIDKey, claims.UserID)

			logger.Debug("user authenticated", "user_id", claims.UserID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
