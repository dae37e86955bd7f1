package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, 15*time.Minute)

	token, exp, err := m.GenerateSessionToken("uid-1", "a@b.com", "profesor")
	require.NoError(t, err)
	require.True(t, exp.After(time.Now()))

	claims, err := m.ParseSessionToken(token)
	require.NoError(t, err)
	require.Equal(t, "uid-1", claims.UserID)
	require.Equal(t, "a@b.com", claims.Email)
	require.Equal(t, "profesor", claims.Role)
}

func TestResetTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, 15*time.Minute)

	token, _, err := m.GenerateResetToken("uid-1")
	require.NoError(t, err)

	claims, err := m.ParseResetToken(token)
	require.NoError(t, err)
	require.Equal(t, "uid-1", claims.UserID)
	require.Empty(t, claims.Email)
	require.Empty(t, claims.Role)
}

func TestPurposeMismatchRejected(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, 15*time.Minute)

	session, _, err := m.GenerateSessionToken("uid-1", "a@b.com", "profesor")
	require.NoError(t, err)
	reset, _, err := m.GenerateResetToken("uid-1")
	require.NoError(t, err)

	_, err = m.ParseResetToken(session)
	require.Error(t, err)
	_, err = m.ParseSessionToken(reset)
	require.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute, -time.Minute)

	token, _, err := m.GenerateResetToken("uid-1")
	require.NoError(t, err)

	_, err = m.ParseResetToken(token)
	require.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	a := NewJWTManager("secret-a", time.Hour, 15*time.Minute)
	b := NewJWTManager("secret-b", time.Hour, 15*time.Minute)

	token, _, err := a.GenerateSessionToken("uid-1", "a@b.com", "profesor")
	require.NoError(t, err)

	_, err = b.ParseSessionToken(token)
	require.Error(t, err)
}
