package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTManager(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	assert.NotNil(t, manager)
	assert.Equal(t, []byte("test-secret"), manager.secret)
	assert.Equal(t, time.Hour, manager.expiry)
}

func TestJWTManager_GenerateToken(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	t.Run("generates a valid token", func(t *testing.T) {
		token, err := manager.GenerateToken("user-123", "client")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("embeds user ID and role in claims", func(t *testing.T) {
		token, err := manager.GenerateToken("user-123", "admin")
		require.NoError(t, err)

		claims, err := manager.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-123", claims.UserID)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("sets expiry from configuration", func(t *testing.T) {
		token, err := manager.GenerateToken("user-123", "client")
		require.NoError(t, err)

		claims, err := manager.ValidateToken(token)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
	})
}

func TestJWTManager_ValidateToken(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	t.Run("validates token it generated", func(t *testing.T) {
		token, err := manager.GenerateToken("user-123", "owner")
		require.NoError(t, err)

		claims, err := manager.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, "user-123", claims.UserID)
		assert.Equal(t, "owner", claims.Role)
	})

	t.Run("rejects token signed with different secret", func(t *testing.T) {
		otherManager := NewJWTManager("other-secret", time.Hour)
		token, err := otherManager.GenerateToken("user-123", "client")
		require.NoError(t, err)

		_, err = manager.ValidateToken(token)

		assert.Error(t, err)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expiredManager := NewJWTManager("test-secret", -time.Hour)
		token, err := expiredManager.GenerateToken("user-123", "client")
		require.NoError(t, err)

		_, err = manager.ValidateToken(token)

		assert.Error(t, err)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("rejects malformed token", func(t *testing.T) {
		_, err := manager.ValidateToken("not-a-token")

		assert.Error(t, err)
	})
}
