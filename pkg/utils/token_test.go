package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_RoundTrip(t *testing.T) {
	cfg := JWTConfig{Secret: "test-secret", ExpiryHours: 1}
	userID := uuid.New()

	token, err := CreateToken(userID, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	gotID, issuedAt, err := VerifyToken(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.WithinDuration(t, time.Now(), issuedAt, 5*time.Second)
}

func TestToken_WrongSecret(t *testing.T) {
	userID := uuid.New()

	token, err := CreateToken(userID, JWTConfig{Secret: "test-secret", ExpiryHours: 1})
	require.NoError(t, err)

	_, _, err = VerifyToken(token, JWTConfig{Secret: "other-secret", ExpiryHours: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestToken_Expired(t *testing.T) {
	cfg := JWTConfig{Secret: "test-secret", ExpiryHours: -1}

	token, err := CreateToken(uuid.New(), cfg)
	require.NoError(t, err)

	_, _, err = VerifyToken(token, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestToken_Garbage(t *testing.T) {
	_, _, err := VerifyToken("not.a.token", JWTConfig{Secret: "test-secret"})
	assert.Error(t, err)
}
