package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/config"
)

func testJWTService(secret string) *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: secret, ExpirationHours: 1})
}

func TestJWT_RoundTrip(t *testing.T) {
	svc := testJWTService("test-secret")
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestJWT_EmptyToken(t *testing.T) {
	_, err := testJWTService("test-secret").ValidateToken("")
	assert.Error(t, err)
}

func TestJWT_WrongSecret(t *testing.T) {
	token, err := testJWTService("secret-a").GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = testJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWT_GarbageToken(t *testing.T) {
	_, err := testJWTService("test-secret").ValidateToken("not.a.jwt")
	assert.Error(t, err)
}

func TestJWT_TamperedToken(t *testing.T) {
	svc := testJWTService("test-secret")
	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestJWT_AsTokenValidator(t *testing.T) {
	svc := testJWTService("test-secret")
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)

	getter, err := svc.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, getter.GetUserID())
}
