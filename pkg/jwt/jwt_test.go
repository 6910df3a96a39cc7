package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSRFTokenRoundTrip(t *testing.T) {
	m := NewManager("secret", time.Hour)

	token, err := m.GenerateCSRFToken("nonce-1")
	require.NoError(t, err)

	assert.NoError(t, m.ValidateCSRFToken(token, "nonce-1"))
	assert.ErrorIs(t, m.ValidateCSRFToken(token, "nonce-2"), ErrNonceMismatch)
	assert.ErrorIs(t, m.ValidateCSRFToken(token, ""), ErrNonceMismatch)
}

func TestCSRFTokenRejectsOtherSecret(t *testing.T) {
	token, err := NewManager("secret", time.Hour).GenerateCSRFToken("n")
	require.NoError(t, err)

	err = NewManager("other", time.Hour).ValidateCSRFToken(token, "n")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestCSRFTokenExpires(t *testing.T) {
	m := NewManager("secret", time.Minute)
	issued := time.Now()
	m.now = func() time.Time { return issued }

	token, err := m.GenerateCSRFToken("n")
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(2 * time.Minute) }
	assert.ErrorIs(t, m.ValidateCSRFToken(token, "n"), jwt.ErrTokenExpired)
}

func TestCSRFTokenRejectsGarbage(t *testing.T) {
	assert.Error(t, NewManager("secret", time.Hour).ValidateCSRFToken("not-a-token", "n"))
}
