package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, VerifyPassword("correct horse battery staple", hash))
	assert.False(t, VerifyPassword("incorrect horse", hash))
}

func TestHashIsSaltedPerCall(t *testing.T) {
	first, err := HashPassword("pw", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("pw", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of the same plaintext must differ")
	assert.True(t, VerifyPassword("pw", first))
	assert.True(t, VerifyPassword("pw", second))
}

func TestHashEmbedsSchemeIdentifier(t *testing.T) {
	hash, err := HashPassword("pw", bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2"), "bcrypt scheme prefix expected, got %q", hash)
}

func TestLongPasswordsBeyondBcryptLimit(t *testing.T) {
	// Raw bcrypt truncates at 72 bytes; the SHA-256 stage must make the
	// full input significant.
	long := strings.Repeat("a", 100)
	hash, err := HashPassword(long, bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, VerifyPassword(long, hash))
	assert.False(t, VerifyPassword(strings.Repeat("a", 72)+"different-tail-beyond-the-limit", hash))
}

func TestVerifyMalformedHashReturnsFalse(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{"empty", ""},
		{"garbage", "not-a-hash"},
		{"truncated", "$2a$10$short"},
		{"unknown scheme", "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, VerifyPassword("pw", tt.stored))
			})
		})
	}
}

func TestVerifyEmptyPlaintext(t *testing.T) {
	hash, err := HashPassword("", bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, VerifyPassword("", hash))
	assert.False(t, VerifyPassword("pw", hash))
}
