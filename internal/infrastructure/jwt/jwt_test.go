package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	mgr := NewJWTManager("test-secret", time.Hour)

	signed, err := mgr.GenerateAccessToken(
		"user-1", "admin", "alice",
		"Alice", "Smith", "Marie",
		"alice@example.com",
		[]string{"event-1", "event-2"},
	)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := mgr.VerifyToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "alice", claims.Login)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, []string{"event-1", "event-2"}, claims.EventIDs)
}

func TestAccessTokenNilEventIDs(t *testing.T) {
	mgr := NewJWTManager("test-secret", time.Hour)

	signed, err := mgr.GenerateAccessToken("user-1", "user", "alice", "", "", "", "", nil)
	require.NoError(t, err)

	claims, err := mgr.VerifyToken(signed)
	require.NoError(t, err)
	assert.NotNil(t, claims.EventIDs)
	assert.Empty(t, claims.EventIDs)
}

func TestExpiredTokenRejected(t *testing.T) {
	mgr := NewJWTManager("test-secret", -time.Minute)

	signed, err := mgr.GenerateAccessToken("user-1", "user", "alice", "", "", "", "", nil)
	require.NoError(t, err)

	_, err = mgr.VerifyToken(signed)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	mgr := NewJWTManager("test-secret", time.Hour)
	other := NewJWTManager("other-secret", time.Hour)

	signed, err := mgr.GenerateAccessToken("user-1", "user", "alice", "", "", "", "", nil)
	require.NoError(t, err)

	_, err = other.VerifyToken(signed)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	mgr := NewJWTManager("test-secret", time.Hour)

	_, err := mgr.VerifyToken("not.a.token")
	assert.Error(t, err)
}
