package utils

import (
	"testing"
	"time"

	"car-rental/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	cfg := JWTConfig{Secret: "test-secret", ExpiryHours: 1}
	userID := uuid.New()

	token, expiresAt, err := CreateAccessToken(cfg, userID, entity.RoleRenter)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := ParseAccessToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, string(entity.RoleRenter), claims.Role)
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	cfg := JWTConfig{Secret: "test-secret", ExpiryHours: 1}

	token, _, err := CreateAccessToken(cfg, uuid.New(), entity.RoleUser)
	require.NoError(t, err)

	_, err = ParseAccessToken(JWTConfig{Secret: "other-secret", ExpiryHours: 1}, token)
	require.Error(t, err)
}

func TestParseAccessTokenRejectsGarbage(t *testing.T) {
	cfg := JWTConfig{Secret: "test-secret", ExpiryHours: 1}

	_, err := ParseAccessToken(cfg, "not.a.token")
	require.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("secret124", hash))
}
