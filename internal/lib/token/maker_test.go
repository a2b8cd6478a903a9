package token_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/account-service/internal/apperror"
	"github.com/magabrotheeeer/account-service/internal/lib/token"
)

const testSecret = "test-secret-key"

func TestMaker_ConfirmationTokenRoundTrip(t *testing.T) {
	maker := token.NewMaker(testSecret)
	registrationDate := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	signed, err := maker.NewConfirmationToken(42, registrationDate)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := maker.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, token.PurposeConfirmation, claims.Purpose)
	assert.Equal(t, int64(42), claims.UserID)
	require.NotNil(t, claims.RegistrationDate)
	assert.True(t, claims.RegistrationDate.Time.Equal(registrationDate))
	require.NotNil(t, claims.IssuedAt)
}

func TestMaker_ResetTokenRoundTrip(t *testing.T) {
	maker := token.NewMaker(testSecret)

	signed, err := maker.NewResetToken(7)
	require.NoError(t, err)

	claims, err := maker.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, token.PurposeReset, claims.Purpose)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Nil(t, claims.RegistrationDate)
}

func TestMaker_ParseRejectsInvalidTokens(t *testing.T) {
	maker := token.NewMaker(testSecret)

	issue := func(claims token.Claims) string {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)
		return signed
	}

	validReset, err := maker.NewResetToken(7)
	require.NoError(t, err)

	tests := []struct {
		name     string
		tokenStr string
	}{
		{
			name:     "garbage string",
			tokenStr: "not-a-token",
		},
		{
			name:     "tampered payload",
			tokenStr: validReset[:len(validReset)-4] + "AAAA",
		},
		{
			name: "foreign signing key",
			tokenStr: func() string {
				other := token.NewMaker("another-secret")
				signed, err := other.NewResetToken(7)
				require.NoError(t, err)
				return signed
			}(),
		},
		{
			name: "unknown purpose",
			tokenStr: issue(token.Claims{
				Purpose: "session",
				UserID:  7,
				RegisteredClaims: jwt.RegisteredClaims{
					IssuedAt: jwt.NewNumericDate(time.Now()),
				},
			}),
		},
		{
			name: "missing user id",
			tokenStr: issue(token.Claims{
				Purpose: token.PurposeReset,
				RegisteredClaims: jwt.RegisteredClaims{
					IssuedAt: jwt.NewNumericDate(time.Now()),
				},
			}),
		},
		{
			name: "missing issued at",
			tokenStr: issue(token.Claims{
				Purpose: token.PurposeReset,
				UserID:  7,
			}),
		},
		{
			name: "confirmation token without registration date",
			tokenStr: issue(token.Claims{
				Purpose: token.PurposeConfirmation,
				UserID:  7,
				RegisteredClaims: jwt.RegisteredClaims{
					IssuedAt: jwt.NewNumericDate(time.Now()),
				},
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := maker.Parse(tt.tokenStr)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, apperror.ErrInvalidToken))
		})
	}
}

func TestClaims_ExpiredAfterDays(t *testing.T) {
	issuedAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		now        time.Time
		windowDays int
		want       bool
	}{
		{
			name:       "fresh token",
			now:        issuedAt.Add(time.Hour),
			windowDays: 7,
			want:       false,
		},
		{
			name:       "one day before the window closes",
			now:        issuedAt.AddDate(0, 0, 6),
			windowDays: 7,
			want:       false,
		},
		{
			name:       "exactly at the window",
			now:        issuedAt.AddDate(0, 0, 7),
			windowDays: 7,
			want:       true,
		},
		{
			name:       "long past the window",
			now:        issuedAt.AddDate(0, 1, 0),
			windowDays: 7,
			want:       true,
		},
		{
			name:       "partial days are floored",
			now:        issuedAt.Add(7*24*time.Hour - time.Minute),
			windowDays: 7,
			want:       false,
		},
		{
			name:       "one day window",
			now:        issuedAt.Add(24 * time.Hour),
			windowDays: 1,
			want:       true,
		},
		{
			name:       "clock skew before issue counts as elapsed",
			now:        issuedAt.AddDate(0, 0, -8),
			windowDays: 7,
			want:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := &token.Claims{
				Purpose: token.PurposeConfirmation,
				UserID:  1,
				RegisteredClaims: jwt.RegisteredClaims{
					IssuedAt: jwt.NewNumericDate(issuedAt),
				},
			}
			assert.Equal(t, tt.want, claims.ExpiredAfterDays(tt.now, tt.windowDays))
		})
	}
}

func TestMaker_ClockIsUsedForIssuedAt(t *testing.T) {
	fixed := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	maker := token.NewMakerWithClock(testSecret, func() time.Time { return fixed })

	signed, err := maker.NewResetToken(1)
	require.NoError(t, err)

	claims, err := maker.Parse(signed)
	require.NoError(t, err)
	assert.True(t, claims.IssuedAt.Time.Equal(fixed))
}
