package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesStructuredConfig(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-sign-key")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")
	t.Setenv("APP_TOKEN_DURATION", "30m")
	t.Setenv("APP_COOKIE_SECURE", "true")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost:5432/accounts")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:9090")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env-sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 30*time.Minute, cfg.App.TokenDuration)
	assert.True(t, cfg.App.CookieSecure)
	assert.Equal(t, "postgres://localhost:5432/accounts", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.HTTPAddress)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "not-a-duration")

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}
