package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssueAndValidate(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	token, err := ts.Issue("user123", "user")
	require.NoError(t, err)

	claims, err := ts.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user123", claims.UserID)
	assert.Equal(t, "user", claims.Role)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 59*time.Minute)
	assert.LessOrEqual(t, remaining, time.Hour)
}

func TestTokenRejectsExpired(t *testing.T) {
	ts := NewTokenService("test-secret", -time.Minute)

	token, err := ts.Issue("user123", "user")
	require.NoError(t, err)

	_, err = ts.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsTampered(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	token, err := ts.Issue("user123", "user")
	require.NoError(t, err)

	_, err = ts.Validate(token[:len(token)-2] + "xx")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	issued, err := NewTokenService("secret-a", time.Hour).Issue("user123", "user")
	require.NoError(t, err)

	_, err = NewTokenService("secret-b", time.Hour).Validate(issued)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsMalformed(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		_, err := ts.Validate(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestTokenRefreshKeepsClaims(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	token, err := ts.Issue("user123", "admin")
	require.NoError(t, err)

	refreshed, err := ts.Refresh(token)
	require.NoError(t, err)

	claims, err := ts.Validate(refreshed)
	require.NoError(t, err)
	assert.Equal(t, "user123", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestTokenRefreshRejectsInvalid(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	_, err := ts.Refresh("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
