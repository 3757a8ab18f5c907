package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopease/helpdesk/internal/domain"
)

func newTestManager(at time.Time) *TokenManager {
	tm := NewTokenManager("test-secret", 60)
	tm.now = func() time.Time { return at }
	return tm
}

func TestIssueAndValidate(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tm := newTestManager(issuedAt)

	token, expiresAt, err := tm.Issue("bob@example.com", domain.RoleAgent)
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(60*time.Minute), expiresAt)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", claims.Subject)
	assert.Equal(t, domain.RoleAgent, claims.Role)
}

func TestValidateAcrossTTLWindow(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tm := newTestManager(issuedAt)
	token, _, err := tm.Issue("bob@example.com", domain.RoleCustomer)
	require.NoError(t, err)

	tests := []struct {
		name    string
		checkAt time.Time
		wantErr error
	}{
		{"at issue time", issuedAt, nil},
		{"one second before expiry", issuedAt.Add(60*time.Minute - time.Second), nil},
		{"exactly at expiry", issuedAt.Add(60 * time.Minute), ErrTokenExpired},
		{"well past expiry", issuedAt.Add(2 * time.Hour), ErrTokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm.now = func() time.Time { return tt.checkAt }
			_, err := tm.Validate(token)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	tm := newTestManager(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	token, _, err := tm.Issue("bob@example.com", domain.RoleCustomer)
	require.NoError(t, err)

	// Flip a character in the signature segment.
	mutated := []byte(token)
	last := len(mutated) - 1
	if mutated[last] == 'A' {
		mutated[last] = 'B'
	} else {
		mutated[last] = 'A'
	}

	_, err = tm.Validate(string(mutated))
	assert.ErrorIs(t, err, ErrTokenSignature)
}

func TestValidateRejectsWrongKey(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	issuer := newTestManager(at)
	token, _, err := issuer.Issue("bob@example.com", domain.RoleCustomer)
	require.NoError(t, err)

	verifier := NewTokenManager("a-different-secret", 60)
	verifier.now = func() time.Time { return at }
	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, ErrTokenSignature)
}

func TestValidateRejectsMalformedToken(t *testing.T) {
	tm := newTestManager(time.Now())

	for _, token := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := tm.Validate(token)
		assert.ErrorIs(t, err, ErrTokenMalformed, "token %q", token)
	}
}

func TestDefaultTTLIsSixtyMinutes(t *testing.T) {
	tm := NewTokenManager("secret", 0)
	assert.Equal(t, 60*time.Minute, tm.ttl)
}
