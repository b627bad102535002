package api

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "POSTGRES_DSN", "TEMPORAL_ADDRESS", "TEMPORAL_NAMESPACE", "TEMPORAL_DISABLED",
		"ENVIRONMENT", "SERVICE_NAME", "LOG_LEVEL", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_INSECURE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv(EnvFileVariable, filepath.Join(t.TempDir(), "missing.env"))
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "localhost:7233", cfg.TemporalAddress)
	assert.Equal(t, "default", cfg.TemporalNamespace)
	assert.Equal(t, "devcars-api", cfg.ServiceName)
	assert.Equal(t, "local", cfg.Environment)
	assert.True(t, cfg.OTLPInsecure)
	assert.Empty(t, cfg.PostgresDSN)
	assert.False(t, cfg.UseTemporal())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	isolateEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("POSTGRES_DSN", " postgres://devcars@localhost/devcars ")
	t.Setenv("TEMPORAL_DISABLED", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "postgres://devcars@localhost/devcars", cfg.PostgresDSN)
	assert.False(t, cfg.UseTemporal())

	t.Setenv("TEMPORAL_DISABLED", "0")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.UseTemporal())
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	isolateEnv(t)
	envFile := filepath.Join(t.TempDir(), "devcars.env")
	require.NoError(t, os.WriteFile(envFile, []byte("PORT=7070\nLOG_LEVEL=debug\n"), 0o600))
	t.Setenv(EnvFileVariable, envFile)
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)

	settings := cfg.Observability("devcars-worker")
	assert.Equal(t, "devcars-worker", settings.ServiceName)
	assert.Equal(t, "warn", settings.LogLevel)
}

func TestLoadConfig_RejectsInvalidPort(t *testing.T) {
	isolateEnv(t)
	t.Setenv("PORT", "http")

	_, err := LoadConfig()
	require.Error(t, err)
}
