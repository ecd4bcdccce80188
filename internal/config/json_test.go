package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSON(t, `{
		"auth": {
			"access_secret_key": "acc",
			"refresh_secret_key": "ref",
			"algorithm": "HS256",
			"access_token_ttl": "30m",
			"extended_access_token_ttl": "2h",
			"refresh_token_ttl": "24h"
		},
		"google": {
			"client_id": "cid",
			"redirect_uri": "https://example.com/callback",
			"request_timeout": "5s"
		},
		"storage": {"db": {"dsn": "postgres://localhost/booking"}},
		"server": {"http_address": "0.0.0.0:8000", "request_timeout": "1m"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "acc", cfg.Auth.AccessSecretKey)
	assert.Equal(t, "ref", cfg.Auth.RefreshSecretKey)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 2*time.Hour, cfg.Auth.ExtendedAccessTokenTTL)
	assert.Equal(t, 24*time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, "cid", cfg.Google.ClientID)
	assert.Equal(t, 5*time.Second, cfg.Google.RequestTimeout)
	assert.Equal(t, "postgres://localhost/booking", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeTempJSON(t, `{"auth": {"access_token_ttl": 1800000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeTempJSON(t, `{"auth": `)
	_, err := parseJSON(path)
	require.Error(t, err)
}
