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

func writeJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

// clearEnvVars blanks every variable the config reads. The env parser treats
// empty values as unset.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"CONFIG",
		"APP_TOKEN_SIGN_KEY", "APP_TOKEN_ISSUER", "APP_TOKEN_DURATION", "APP_VERSION",
		"STORAGE_DB_DATABASE_URI", "STORAGE_LOCAL_PATH", "STORAGE_LOCAL_VOLATILE_QUEUE",
		"SERVER_ADDRESS", "SERVER_REQUEST_TIMEOUT", "SERVER_RATE_LIMIT",
		"ADAPTER_ADDRESS", "ADAPTER_REQUEST_TIMEOUT", "ADAPTER_READ_RETRIES", "ADAPTER_ACCESS_TOKEN",
		"WORKERS_SYNC_INTERVAL", "WORKERS_RETRY_DELAY", "WORKERS_MAX_RETRY_ATTEMPTS", "WORKERS_PROBE_INTERVAL",
		"LOG_FILE_PATH",
	} {
		t.Setenv(name, "")
	}
}

func TestBuild_Empty(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://flags"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://env", ReadRetries: 7}},
		&StructuredConfig{App: App{Version: "1.0.0"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://flags", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 7, cfg.Adapter.ReadRetries)
	assert.Equal(t, "1.0.0", cfg.App.Version)
}

func TestBuild_ReportsCollectedErrors(t *testing.T) {
	b := newConfigBuilder().
		withFlags([]string{"-a", "nowhere"}).
		withOverrides(&StructuredConfig{JSONFilePath: "/nonexistent/config.json"}).
		withJSON()

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "error parsing flags")
	assert.ErrorContains(t, err, "json")
}

func TestWithOverrides_NilIgnored(t *testing.T) {
	assert.Empty(t, newConfigBuilder().withOverrides(nil).configs)
}

func TestWithDefaults_FillOnlyMissingFields(t *testing.T) {
	cfg, err := newConfigBuilder().
		withOverrides(&StructuredConfig{Workers: Workers{SyncInterval: time.Minute}}).
		withDefaults(ClientDefaults()).
		build()
	require.NoError(t, err)

	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, defaultRetryDelay, cfg.Workers.RetryDelay)
	assert.Equal(t, defaultMaxRetryAttempts, cfg.Workers.MaxRetryAttempts)
}

func TestWithJSON_FirstPathWins(t *testing.T) {
	var first, second StructuredJSONConfig
	first.App.Version = "first"
	second.App.Version = "second"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{},
		&StructuredConfig{JSONFilePath: writeJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeJSONConfig(t, second)},
	)
	b.withJSON()

	require.Empty(t, b.errs)
	require.Len(t, b.configs, 4)
	assert.Equal(t, "first", b.configs[3].App.Version)
}

func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder().withOverrides(&StructuredConfig{}).withJSON()

	assert.Empty(t, b.errs)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	b := newConfigBuilder().withOverrides(&StructuredConfig{JSONFilePath: path}).withJSON()

	assert.Len(t, b.errs, 1)
}

// The server reads flags, then the environment, then the JSON file named by
// either of them, then the defaults.
func TestGetStructuredConfig_SourcePrecedence(t *testing.T) {
	var file StructuredJSONConfig
	file.App.TokenSignKey = "json-key"
	file.App.TokenIssuer = "json-issuer"
	file.Server.RateLimit = 10
	file.Storage.DB.DSN = "postgres://json"
	path := writeJSONConfig(t, file)

	clearEnvVars(t)
	t.Setenv("CONFIG", path)
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env")

	cfg, err := GetStructuredConfig([]string{"-d", "postgres://flags"})
	require.NoError(t, err)

	assert.Equal(t, "postgres://flags", cfg.Storage.DB.DSN)
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, 10, cfg.Server.RateLimit)
	assert.Equal(t, defaultServerAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultTokenDuration, cfg.App.TokenDuration)
}

func TestGetStructuredConfig_RequiresSecrets(t *testing.T) {
	clearEnvVars(t)

	_, err := GetStructuredConfig([]string{"-d", "postgres://flags"})
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)

	_, err = GetStructuredConfig([]string{"-token-sign-key", "k"})
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}
