package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/account-service/internal/lib/password"
)

func TestGetHashAndCompare(t *testing.T) {
	hash, err := password.GetHash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, password.CompareHash(hash, "correct horse battery staple"))
	assert.Error(t, password.CompareHash(hash, "wrong password"))
}

func TestGetHash_SaltedHashesDiffer(t *testing.T) {
	first, err := password.GetHash("password123")
	require.NoError(t, err)
	second, err := password.GetHash("password123")
	require.NoError(t, err)

	// bcrypt солит каждый хэш, совпадать они не должны
	assert.NotEqual(t, first, second)
	assert.NoError(t, password.CompareHash(first, "password123"))
	assert.NoError(t, password.CompareHash(second, "password123"))
}

func TestCompareHash_InvalidHash(t *testing.T) {
	assert.Error(t, password.CompareHash("not-a-bcrypt-hash", "password123"))
}
