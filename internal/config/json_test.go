package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON_Success(t *testing.T) {
	p := writeJSON(t, `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h",
			"reset_token_key": "reset_secret",
			"reset_token_ttl": "24h",
			"reset_base_url": "https://portal.example",
			"password_hash_cost": 11
		},
		"server": {
			"http_address": "localhost:8080",
			"grpc_address": "localhost:9090",
			"request_timeout": "30s"
		},
		"storage": { "db": { "driver": "sqlite", "dsn": "portal.db", "max_retries": 2 } },
		"mail": { "kind": "http", "api_address": "http://mail:8081", "timeout": "5s" },
		"workers": { "settings_poll_interval": "10s" },
		"telemetry": { "otlp_endpoint": "otel:4318", "insecure": true }
	}`)

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "reset_secret", cfg.App.ResetTokenKey)
	assert.Equal(t, 24*time.Hour, cfg.App.ResetTokenTTL)
	assert.Equal(t, "https://portal.example", cfg.App.ResetBaseURL)
	assert.Equal(t, 11, cfg.App.PasswordHashCost)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, 2, cfg.Storage.DB.MaxRetries)
	assert.Equal(t, "http", cfg.Mail.Kind)
	assert.Equal(t, 5*time.Second, cfg.Mail.Timeout)
	assert.Equal(t, 10*time.Second, cfg.Workers.SettingsPollInterval)
	assert.True(t, cfg.Telemetry.Insecure)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	_, err := parseJSON(writeJSON(t, `{"app": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	_, err := parseJSON(writeJSON(t, `{"app": {"reset_token_ttl": "a day"}}`))
	assert.Error(t, err)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	cfg, err := parseJSON(writeJSON(t, `{"server": {"request_timeout": 1000000000}}`))
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	cfg, err := parseJSON(writeJSON(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}
