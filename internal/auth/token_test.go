package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenManager() *TokenManager {
	return NewTokenManager("test-secret-key", 8*time.Hour)
}

func TestGenerateAndValidateToken(t *testing.T) {
	mgr := newTestTokenManager()

	token, err := mgr.GenerateToken(42, "clanlord")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "clanlord", claims.Username)

	id, err := claims.AdminID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestInvalidSecretRejected(t *testing.T) {
	mgr1 := NewTokenManager("secret-1", 8*time.Hour)
	mgr2 := NewTokenManager("secret-2", 8*time.Hour)

	token, err := mgr1.GenerateToken(1, "admin")
	require.NoError(t, err)

	_, err = mgr2.ValidateToken(token)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	mgr := NewTokenManager("test-secret-key", -1*time.Minute)

	token, err := mgr.GenerateToken(1, "admin")
	require.NoError(t, err)

	_, err = mgr.ValidateToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	mgr := newTestTokenManager()

	_, err := mgr.ValidateToken("admin_1_clanlord")
	assert.Error(t, err)
}
