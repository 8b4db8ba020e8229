package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw123456")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "pw123456", hash)

	assert.True(t, CheckPasswordHash("pw123456", hash))
}

func TestCheckPasswordHash_WrongPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.False(t, CheckPasswordHash("correct horse battery stable", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("pw123456")
	require.NoError(t, err)
	second, err := HashPassword("pw123456")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of the same password must differ")
	assert.True(t, CheckPasswordHash("pw123456", first))
	assert.True(t, CheckPasswordHash("pw123456", second))
}

func TestCheckPasswordHash_MalformedHash(t *testing.T) {
	t.Parallel()

	assert.False(t, CheckPasswordHash("pw123456", ""))
	assert.False(t, CheckPasswordHash("pw123456", "not-a-bcrypt-hash"))
	assert.False(t, CheckPasswordHash("pw123456", "$2a$10$truncated"))
}
