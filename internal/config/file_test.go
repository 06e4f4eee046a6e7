// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_JSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"token_sign_key": "json-key",
			"token_duration": "2h",
		},
		"storage": map[string]any{
			"db": map[string]any{"dsn": "memory", "retry_interval": "250ms", "max_retries": 5},
		},
		"server": map[string]any{"request_timeout": 1_000_000_000},
	})

	cfg, err := parseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 250*time.Millisecond, cfg.Storage.DB.RetryInterval)
	assert.Equal(t, 5, cfg.Storage.DB.MaxRetries)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

func TestParseFile_YAML(t *testing.T) {
	path := writeTempConfig(t, "config.yml", []byte(`
app:
  token_sign_key: yaml-key
  conceal_reset_account_existence: true
storage:
  db:
    dsn: postgres://localhost/postgres
    connect_timeout: 3s
  redis:
    address: localhost:6379
server:
  allowed_origins:
    - http://a.test
mail:
  transport: http
  relay_url: http://mailpit:8025
rate_limit:
  max_login_attempts: 7
  login_cooldown: 1m
`))

	cfg, err := parseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "yaml-key", cfg.App.TokenSignKey)
	assert.True(t, cfg.App.ConcealResetAccountExistence)
	assert.Equal(t, 3*time.Second, cfg.Storage.DB.ConnectTimeout)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Address)
	assert.Equal(t, []string{"http://a.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "http://mailpit:8025", cfg.Mail.RelayURL)
	assert.Equal(t, 7, cfg.RateLimit.MaxLoginAttempts)
	assert.Equal(t, time.Minute, cfg.RateLimit.LoginCooldown)
}

func TestParseFile_Errors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		path := writeTempConfig(t, "config.toml", []byte("a = 1"))
		_, err := parseFile(path)
		assert.ErrorIs(t, err, ErrUnsupportedConfigFile)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeTempConfig(t, "config.json", []byte("{"))
		_, err := parseFile(path)
		assert.ErrorContains(t, err, "error decoding json configs")
	})

	t.Run("bad duration", func(t *testing.T) {
		path := writeTempConfig(t, "config.json", []byte(`{"app":{"token_duration":"soon"}}`))
		_, err := parseFile(path)
		assert.Error(t, err)
	})
}
