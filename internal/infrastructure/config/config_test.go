package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	require.NotNil(t, cfg)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "refdata-api", cfg.JWT.Issuer)
	assert.Equal(t, "refdata-clients", cfg.JWT.Audience)
	assert.Equal(t, 30*time.Minute, cfg.JWT.TokenTTL)
	assert.Equal(t, 5*time.Second, cfg.Redis.DialTimeout)
	assert.Equal(t, 5, cfg.Redis.LoginMaxFailures)
	assert.Equal(t, 15*time.Minute, cfg.Redis.LoginWindow)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("REDIS_DIAL_TIMEOUT", "2s")
	t.Setenv("LOGIN_MAX_FAILURES", "3")

	cfg := Load()
	require.NotNil(t, cfg)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "0123456789abcdef0123456789abcdef", cfg.JWT.Secret)
	assert.Equal(t, time.Hour, cfg.JWT.TokenTTL)
	assert.Equal(t, 2*time.Second, cfg.Redis.DialTimeout)
	assert.Equal(t, 3, cfg.Redis.LoginMaxFailures)
}
