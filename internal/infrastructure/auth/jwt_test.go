package auth

import (
	"testing"
	"time"

	"github.com/autenticco/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		RefreshSecret:          "test-refresh-secret-key-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "test-issuer",
		MaxRefreshCount:        2,
	})
}

func newTestInput() GenerateTokenInput {
	return GenerateTokenInput{
		UserID:      uuid.New(),
		Email:       "vendas@autenticco.com.br",
		Name:        "Vendas",
		RoleID:      uuid.New(),
		RoleCode:    "seller",
		Permissions: []string{"cars:read", "leads:read", "leads:write"},
	}
}

func TestNewJWTService_UsesSecretForRefreshIfNotProvided(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret"})
	assert.Equal(t, []byte("test-secret"), svc.refreshSecret)
}

func TestGenerateTokenPair(t *testing.T) {
	svc := newTestJWTService()
	input := newTestInput()

	pair, err := svc.GenerateTokenPair(input)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.True(t, pair.RefreshTokenExpiresAt.After(pair.AccessTokenExpiresAt))

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, input.UserID.String(), claims.UserID)
	assert.Equal(t, input.Email, claims.Email)
	assert.Equal(t, "seller", claims.RoleCode)
	assert.Equal(t, input.Permissions, claims.Permissions)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateAccessToken(t *testing.T) {
	svc := newTestJWTService()
	pair, err := svc.GenerateTokenPair(newTestInput())
	require.NoError(t, err)

	t.Run("refresh token is not an access token", func(t *testing.T) {
		_, err := svc.ValidateAccessToken(pair.RefreshToken)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateAccessToken("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired := newTestJWTService()
		expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
		old, err := expired.GenerateTokenPair(newTestInput())
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(old.AccessToken)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("different secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:                "another-secret-key-at-least-32-ch",
			AccessTokenExpiration: time.Minute,
			Issuer:                "test-issuer",
		})
		_, err := other.ValidateAccessToken(pair.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("different issuer", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:                "test-secret-key-at-least-32-chars",
			AccessTokenExpiration: time.Minute,
			Issuer:                "someone-else",
		})
		_, err := other.ValidateAccessToken(pair.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestRefreshTokenPair(t *testing.T) {
	svc := newTestJWTService()
	input := newTestInput()
	pair, err := svc.GenerateTokenPair(input)
	require.NoError(t, err)

	refresh, err := svc.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Empty(t, refresh.Permissions)

	t.Run("carries current permissions and increments count", func(t *testing.T) {
		input.Permissions = []string{"cars:read"}
		next, err := svc.RefreshTokenPair(refresh, input)
		require.NoError(t, err)

		access, err := svc.ValidateAccessToken(next.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, []string{"cars:read"}, access.Permissions)

		nextRefresh, err := svc.ValidateRefreshToken(next.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, 1, nextRefresh.RefreshCount)
	})

	t.Run("max refresh exceeded", func(t *testing.T) {
		exhausted := *refresh
		exhausted.RefreshCount = 2
		_, err := svc.RefreshTokenPair(&exhausted, input)
		assert.ErrorIs(t, err, ErrMaxRefreshExceeded)
	})

	t.Run("other user", func(t *testing.T) {
		other := newTestInput()
		_, err := svc.RefreshTokenPair(refresh, other)
		assert.ErrorIs(t, err, ErrInvalidClaims)
	})
}

func TestClaims(t *testing.T) {
	c := &Claims{UserID: uuid.New().String(), Permissions: []string{"cars:read", "finance:write"}}

	id, err := c.GetUserUUID()
	require.NoError(t, err)
	assert.Equal(t, c.UserID, id.String())

	assert.True(t, c.HasPermission("finance:write"))
	assert.False(t, c.HasPermission("users:write"))
	assert.True(t, c.HasAnyPermission("users:write", "cars:read"))
	assert.Equal(t, time.Duration(0), c.RemainingTTL(time.Now()))
}
