package auth

import (
	"testing"
	"time"

	"medisupply/config"
	"medisupply/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newJWTTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	cfg := newJWTTestConfig("test_access_secret_key_very_long_for_testing")

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	principalID := uuid.New()

	token, err := jwtService.Generate(principalID, entity.RoleUser.String())
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.Validate(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, principalID, claims.PrincipalID)
	assert.Equal(t, entity.RoleUser.String(), claims.Role)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := newJWTTestConfig("test_access_secret_key_very_long_for_testing")

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	// Clearly non-JWT format
	claims, err := jwtService.Validate("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newJWTTestConfig("issuer_secret_key_very_long_for_testing"))
	assert.NoError(t, err)
	verifier, err := NewJWTService(newJWTTestConfig("different_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	token, err := issuer.Generate(uuid.New(), entity.RoleAdmin.String())
	assert.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := newJWTTestConfig("test_access_secret_key_very_long_for_testing")
	cfg.Auth = &config.AuthConfig{TokenTTL: -time.Minute}

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	// A negative TTL falls back to the default, so tokens stay valid.
	token, err := jwtService.Generate(uuid.New(), entity.RoleCompany.String())
	assert.NoError(t, err)

	claims, err := jwtService.Validate(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(newJWTTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
