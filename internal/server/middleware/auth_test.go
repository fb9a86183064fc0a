package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkruglov/taskkeeper/internal/server/handlers"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError,
	}
	handler := slog.NewTextHandler(os.Stdout, opts)
	return slog.New(handler)
}

func testJWTConfig() handlers.JWTConfig {
	return handlers.JWTConfig{
		Secret:   []byte("test-secret-key"),
		TokenTTL: time.Hour,
	}
}

// identityHandler checks that the middleware put the expected user id
// into the request context
func identityHandler(t *testing.T, expectedUserID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := handlers.GetUserID(r.Context())
		require.True(t, ok, "user_id should be in context")
		assert.Equal(t, expectedUserID, userID)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

func TestAuthMiddleware_Success(t *testing.T) {
	jwtConfig := testJWTConfig()

	token, _, err := handlers.GenerateToken(jwtConfig, "user123")
	require.NoError(t, err)

	authMiddleware := AuthMiddleware(setupTestLogger(), jwtConfig)
	wrappedHandler := authMiddleware(identityHandler(t, "user123"))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set(TokenHeader, token)

	w := httptest.NewRecorder()
	wrappedHandler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	authMiddleware := AuthMiddleware(setupTestLogger(), testJWTConfig())

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	})
	wrappedHandler := authMiddleware(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)

	w := httptest.NewRecorder()
	wrappedHandler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthMiddleware_BearerHeaderIgnored(t *testing.T) {
	// The token must arrive in the custom header; a standard
	// Authorization header alone is rejected
	jwtConfig := testJWTConfig()

	token, _, err := handlers.GenerateToken(jwtConfig, "user123")
	require.NoError(t, err)

	authMiddleware := AuthMiddleware(setupTestLogger(), jwtConfig)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	})
	wrappedHandler := authMiddleware(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	wrappedHandler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "wrong secret", token: mustToken(t, handlers.JWTConfig{Secret: []byte("other"), TokenTTL: time.Hour})},
		{name: "expired", token: mustToken(t, handlers.JWTConfig{Secret: []byte("test-secret-key"), TokenTTL: -time.Minute})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMiddleware := AuthMiddleware(setupTestLogger(), testJWTConfig())
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("handler should not be called")
			})
			wrappedHandler := authMiddleware(handler)

			req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
			req.Header.Set(TokenHeader, tt.token)

			w := httptest.NewRecorder()
			wrappedHandler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusForbidden, w.Code)
		})
	}
}

func mustToken(t *testing.T, cfg handlers.JWTConfig) string {
	t.Helper()
	token, _, err := handlers.GenerateToken(cfg, "user123")
	require.NoError(t, err)
	return token
}
