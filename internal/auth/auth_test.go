package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Str0ng!pass")
	require.NoError(t, err)

	assert.NotEqual(t, "Str0ng!pass", hash)
	assert.True(t, CheckPasswordHash("Str0ng!pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("secret", 48*time.Hour)

	token, err := m.Generate("650000000000000000000001", "a@b.com", "customer")
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "650000000000000000000001", claims.Subject)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "customer", claims.Role)
	assert.WithinDuration(t, time.Now().Add(48*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenManager_Rejects(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	token, err := m.Generate("id", "a@b.com", "admin")
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewTokenManager("other", time.Hour).Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		late := NewTokenManager("secret", time.Hour)
		late.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := late.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
