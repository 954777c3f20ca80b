package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zenmap/config"
)

func testJWTConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: ttl}

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	cfg := testJWTConfig("test_access_secret_key_very_long_for_testing", time.Hour)

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	userID := uuid.New()

	token, err := jwtService.GenerateAccessToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	parsed, err := jwtService.ValidateToken(token, cfg.SecretKey.Access)
	require.NoError(t, err)
	assert.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["sub"])
	assert.Equal(t, "access", claims["type"])
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig("the-right-secret", time.Hour))
	require.NoError(t, err)

	token, err := jwtService.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token, "a-different-secret")
	assert.Error(t, err)
}

func TestJWTService_GarbageToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig("test-secret", time.Hour))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken("clearly-not-a-jwt-token-format", "test-secret")
	assert.Error(t, err)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig("", time.Hour))

	assert.Error(t, err)
	assert.Nil(t, jwtService)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	assert.Equal(t, defaultAccessTTL, jwtService.AccessTokenDuration())
}
