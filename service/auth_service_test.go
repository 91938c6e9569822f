package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPassword(t *testing.T) {
	s := NewAuthService("test-secret", "hunter2")

	assert.True(t, s.CheckPassword("hunter2"))
	assert.False(t, s.CheckPassword("hunter3"))
	assert.False(t, s.CheckPassword(""))
}

func TestTokenRoundTrip(t *testing.T) {
	s := NewAuthService("test-secret", "hunter2")

	t.Run("Access", func(t *testing.T) {
		token, err := s.IssueAccessToken()
		require.NoError(t, err)
		require.NotEmpty(t, token)

		assert.NoError(t, s.VerifyToken(token, TokenTypeAccess))
	})

	t.Run("Refresh", func(t *testing.T) {
		token, err := s.IssueRefreshToken()
		require.NoError(t, err)

		assert.NoError(t, s.VerifyToken(token, TokenTypeRefresh))
	})

	t.Run("Render", func(t *testing.T) {
		token, err := s.IssueRenderToken()
		require.NoError(t, err)

		assert.NoError(t, s.VerifyToken(token, TokenTypeRender))
		assert.Error(t, s.VerifyToken(token, TokenTypeAccess),
			"render tokens must not pass as session tokens")
	})

	t.Run("WrongType", func(t *testing.T) {
		token, err := s.IssueAccessToken()
		require.NoError(t, err)

		assert.Error(t, s.VerifyToken(token, TokenTypeRefresh))
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewAuthService("another-secret", "hunter2")
		token, err := other.IssueAccessToken()
		require.NoError(t, err)

		assert.Error(t, s.VerifyToken(token, TokenTypeAccess))
	})

	t.Run("Garbage", func(t *testing.T) {
		assert.Error(t, s.VerifyToken("not-a-token", TokenTypeAccess))
	})
}

func TestTokenExpiry(t *testing.T) {
	s := NewAuthService("test-secret", "hunter2")
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	access, err := s.IssueAccessToken()
	require.NoError(t, err)
	refresh, err := s.IssueRefreshToken()
	require.NoError(t, err)

	// Still valid just before the access TTL
	s.now = func() time.Time { return base.Add(AccessTokenTTL - time.Minute) }
	assert.NoError(t, s.VerifyToken(access, TokenTypeAccess))

	// Access expired, refresh still good
	s.now = func() time.Time { return base.Add(AccessTokenTTL + time.Minute) }
	assert.Error(t, s.VerifyToken(access, TokenTypeAccess))
	assert.NoError(t, s.VerifyToken(refresh, TokenTypeRefresh))

	// Both expired
	s.now = func() time.Time { return base.Add(RefreshTokenTTL + time.Minute) }
	assert.Error(t, s.VerifyToken(refresh, TokenTypeRefresh))
}
