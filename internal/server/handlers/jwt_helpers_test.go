package handlers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() JWTConfig {
	return JWTConfig{
		Secret:   []byte("test-secret-key"),
		TokenTTL: time.Hour,
	}
}

func TestGenerateToken(t *testing.T) {
	cfg := testJWTConfig()

	token, expiresIn, err := GenerateToken(cfg, "user123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(3600), expiresIn)

	// JWT has three dot-separated parts
	assert.Len(t, strings.Split(token, "."), 3)
}

func TestValidateToken_RoundTrip(t *testing.T) {
	cfg := testJWTConfig()

	token, _, err := GenerateToken(cfg, "user123")
	require.NoError(t, err)

	claims, err := ValidateToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "user123", claims.UserID)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := JWTConfig{
		Secret:   []byte("test-secret-key"),
		TokenTTL: -time.Minute, // already expired at issuance
	}

	token, _, err := GenerateToken(cfg, "user123")
	require.NoError(t, err)

	_, err = ValidateToken(testJWTConfig(), token)
	assert.Error(t, err)
}

func TestValidateToken_Tampered(t *testing.T) {
	cfg := testJWTConfig()

	token, _, err := GenerateToken(cfg, "user123")
	require.NoError(t, err)

	// Flip a character in the payload segment
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = ValidateToken(cfg, tampered)
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateToken(testJWTConfig(), "user123")
	require.NoError(t, err)

	otherCfg := JWTConfig{
		Secret:   []byte("another-secret"),
		TokenTTL: time.Hour,
	}
	_, err = ValidateToken(otherCfg, token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a jwt", token: "hello"},
		{name: "two parts", token: "abc.def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateToken(testJWTConfig(), tt.token)
			assert.Error(t, err)
		})
	}
}
