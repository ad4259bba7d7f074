package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func minimalConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "sign", ResetTokenKey: "reset"},
		Storage: Storage{DB: DB{Driver: DriverMemory}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		minimalConfig(),
		&StructuredConfig{App: App{Version: "1.0.0", TokenIssuer: "first"}},
		&StructuredConfig{App: App{TokenIssuer: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "second", cfg.App.TokenIssuer)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	cfg0 := minimalConfig()
	cfg0.Storage.DB.Driver = ""
	cfg0.Storage.DB.DSN = "postgres://localhost/portal"
	b.configs = append(b.configs, cfg0)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, 24*time.Hour, cfg.App.ResetTokenTTL)
	assert.Equal(t, 10, cfg.App.PasswordHashCost)
	assert.Equal(t, "intern-portal", cfg.App.TokenIssuer)
	assert.Equal(t, 3, cfg.Storage.DB.MaxRetries)
	assert.Equal(t, 30*time.Second, cfg.Workers.SettingsPollInterval)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{"minimal memory config", func(*StructuredConfig) {}, nil},
		{"missing sign key", func(c *StructuredConfig) { c.App.TokenSignKey = "" }, ErrInvalidAppConfigs},
		{"missing reset key", func(c *StructuredConfig) { c.App.ResetTokenKey = "" }, ErrInvalidAppConfigs},
		{"postgres without dsn", func(c *StructuredConfig) { c.Storage.DB.Driver = DriverPostgres }, ErrInvalidStorageConfigs},
		{"unknown driver", func(c *StructuredConfig) { c.Storage.DB.Driver = "mongo" }, ErrInvalidStorageConfigs},
		{"no listener", func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
		{"http mail without api", func(c *StructuredConfig) { c.Mail.Kind = MailKindHTTP }, ErrInvalidMailConfigs},
		{"nats mail without url", func(c *StructuredConfig) { c.Mail.Kind = MailKindNATS }, ErrInvalidMailConfigs},
		{"unknown mail kind", func(c *StructuredConfig) { c.Mail.Kind = "smtp" }, ErrInvalidMailConfigs},
		{"dispatch without nats", func(c *StructuredConfig) { c.Workers.MailDispatch = true }, ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := minimalConfig()
			tt.mutate(cfg)
			cfg.applyDefaults()

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_MissingFileIsFine(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))

	b := newConfigBuilder().withDotEnv()
	assert.NoError(t, b.err)
}

func TestWithDotEnv_LoadsVariables(t *testing.T) {
	p := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(p, []byte("APP_TOKEN_ISSUER=dotenv-issuer\n"), 0o600))
	t.Setenv("ENV_FILE", p)
	t.Setenv("APP_TOKEN_ISSUER", "")
	require.NoError(t, os.Unsetenv("APP_TOKEN_ISSUER"))

	b := newConfigBuilder().withDotEnv().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "dotenv-issuer", b.configs[0].App.TokenIssuer)
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
}

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-token-issuer", "flag-issuer"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-issuer", b.configs[0].App.TokenIssuer)
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "bad"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "none.env"))
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-sign")
	t.Setenv("APP_RESET_TOKEN_KEY", "env-reset")
	t.Setenv("STORAGE_DB_DRIVER", DriverMemory)
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")

	cfg, err := GetStructuredConfig([]string{"-a", "localhost:8080", "-token-issuer", "flag-issuer"})
	require.NoError(t, err)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "env-sign", cfg.App.TokenSignKey)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
}

// ── GetStorageConfig ──────────────────────────────────────────────────────────

func TestGetStorageConfig_IgnoresServerSettings(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "none.env"))
	t.Setenv("STORAGE_DB_DRIVER", DriverSQLite)
	t.Setenv("STORAGE_DB_DATABASE_URI", "portal.db")

	cfg, err := GetStorageConfig("")
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "portal.db", cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.App.TokenSignKey)
}

func TestGetStorageConfig_RequiresDSN(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "none.env"))
	t.Setenv("STORAGE_DB_DRIVER", DriverPostgres)

	_, err := GetStorageConfig("")
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}
