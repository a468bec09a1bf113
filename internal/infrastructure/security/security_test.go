package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher(t *testing.T) {
	hasher := NewPasswordHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.NoError(t, hasher.Compare(hash, "hunter22"))
	assert.Error(t, hasher.Compare(hash, "wrong"))
}

func TestTokenManagerRoundTrip(t *testing.T) {
	manager := NewTokenManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)

	access, refresh, err := manager.Generate("user-1")
	require.NoError(t, err)

	userID, err := manager.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	userID, err = manager.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	_, err = manager.ValidateAccessToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManagerRejectsWrongKind(t *testing.T) {
	// Shared secret: only the type claim separates the two kinds.
	manager := NewTokenManager("shared", "shared", 15*time.Minute, 7*24*time.Hour)

	access, refresh, err := manager.Generate("user-1")
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = manager.ValidateRefreshToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManagerRejectsWrongSecret(t *testing.T) {
	manager := NewTokenManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	other := NewTokenManager("different", "secrets", 15*time.Minute, 7*24*time.Hour)

	access, _, err := manager.Generate("user-1")
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManagerRejectsExpired(t *testing.T) {
	manager := NewTokenManager("access-secret", "refresh-secret", -time.Minute, -time.Minute)

	access, refresh, err := manager.Generate("user-1")
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = manager.ValidateRefreshToken(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
