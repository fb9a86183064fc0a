package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute, setupTestLogger())
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("1.2.3.4"), "request %d should be allowed", i+1)
	}
	assert.False(t, rl.Allow("1.2.3.4"), "request over the limit should be rejected")

	// Other keys have their own bucket
	assert.True(t, rl.Allow("5.6.7.8"))
}

func TestRateLimitByPathMiddleware(t *testing.T) {
	limits := []PathRateLimit{
		{Path: "/api/auth/login", Rate: 1, Window: time.Minute},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrapped := RateLimitByPathMiddleware(limits, 100, time.Minute, setupTestLogger())(handler)

	// First login attempt passes, second hits the tight per-path limit
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "1.2.3.4:5678"

	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Other paths use the roomy default limiter
	taskReq := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	taskReq.RemoteAddr = "1.2.3.4:5678"

	w = httptest.NewRecorder()
	wrapped.ServeHTTP(w, taskReq)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{
			name:   "remote addr only",
			remote: "1.2.3.4:5678",
			want:   "1.2.3.4:5678",
		},
		{
			name:    "x-forwarded-for single",
			headers: map[string]string{"X-Forwarded-For": "9.8.7.6"},
			remote:  "1.2.3.4:5678",
			want:    "9.8.7.6",
		},
		{
			name:    "x-forwarded-for list takes first",
			headers: map[string]string{"X-Forwarded-For": "9.8.7.6,10.0.0.1"},
			remote:  "1.2.3.4:5678",
			want:    "9.8.7.6",
		},
		{
			name:    "x-real-ip",
			headers: map[string]string{"X-Real-IP": "9.8.7.6"},
			remote:  "1.2.3.4:5678",
			want:    "9.8.7.6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, getClientIP(req))
		})
	}
}
