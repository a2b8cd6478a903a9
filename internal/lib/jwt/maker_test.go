package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/account-service/internal/lib/jwt"
)

func TestJWTMaker_RoundTrip(t *testing.T) {
	maker := jwt.NewJWTMaker("session-secret", time.Hour)

	signed, err := maker.GenerateToken("user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := maker.ParseToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestJWTMaker_ExpiredToken(t *testing.T) {
	maker := jwt.NewJWTMaker("session-secret", -time.Minute)

	signed, err := maker.GenerateToken("user@example.com")
	require.NoError(t, err)

	claims, err := maker.ParseToken(signed)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTMaker_WrongKey(t *testing.T) {
	maker := jwt.NewJWTMaker("session-secret", time.Hour)
	other := jwt.NewJWTMaker("other-secret", time.Hour)

	signed, err := maker.GenerateToken("user@example.com")
	require.NoError(t, err)

	claims, err := other.ParseToken(signed)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTMaker_GarbageToken(t *testing.T) {
	maker := jwt.NewJWTMaker("session-secret", time.Hour)

	claims, err := maker.ParseToken("not-a-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
