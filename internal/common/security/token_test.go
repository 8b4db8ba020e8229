package security

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-signing-secret")

func TestTokenService_IssueAndValidate(t *testing.T) {
	t.Parallel()

	svc := NewTokenService(testSecret, 30*time.Minute)

	token, err := svc.Issue("alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestTokenService_Expired(t *testing.T) {
	t.Parallel()

	svc := NewTokenService(testSecret, -1*time.Second)

	token, err := svc.Issue("alice")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenService([]byte("right-secret"), time.Hour)
	validator := NewTokenService([]byte("wrong-secret"), time.Hour)

	token, err := issuer.Issue("alice")
	require.NoError(t, err)

	_, err = validator.Validate(token)
	assert.ErrorIs(t, err, ErrTokenSignature)
}

func TestTokenService_TamperedSignature(t *testing.T) {
	t.Parallel()

	svc := NewTokenService(testSecret, time.Hour)

	token, err := svc.Issue("alice")
	require.NoError(t, err)

	// Flip the first character of the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)
	require.NotEqual(t, token, tampered)

	_, err = svc.Validate(tampered)
	assert.ErrorIs(t, err, ErrTokenSignature)
}

func TestTokenService_TamperedClaims(t *testing.T) {
	t.Parallel()

	svc := NewTokenService(testSecret, time.Hour)

	token, err := svc.Issue("alice")
	require.NoError(t, err)

	// Swap in a claims segment from a token for another subject; the
	// original signature no longer covers it.
	other, err := svc.Issue("mallory")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	otherParts := strings.Split(other, ".")
	require.Len(t, parts, 3)
	require.Len(t, otherParts, 3)
	forged := parts[0] + "." + otherParts[1] + "." + parts[2]

	_, err = svc.Validate(forged)
	assert.Error(t, err)
}

func TestTokenService_Malformed(t *testing.T) {
	t.Parallel()

	svc := NewTokenService(testSecret, time.Hour)

	for _, input := range []string{"", "not.a.jwt", "garbage", "a.b"} {
		_, err := svc.Validate(input)
		assert.ErrorIs(t, err, ErrTokenMalformed, "input %q", input)
	}
}
