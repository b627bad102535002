package api

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	platformobservability "github.com/Apurer/devcars-api/internal/platform/observability"
)

// EnvFileVariable names the variable pointing at an optional dotenv file.
const EnvFileVariable = "DEVCARS_ENV_FILE"

// Config carries environment-driven settings for the API and worker processes.
type Config struct {
	Port              string `envconfig:"PORT" default:"8080"`
	PostgresDSN       string `envconfig:"POSTGRES_DSN"`
	TemporalAddress   string `envconfig:"TEMPORAL_ADDRESS" default:"localhost:7233"`
	TemporalNamespace string `envconfig:"TEMPORAL_NAMESPACE" default:"default"`
	TemporalDisabled  bool   `envconfig:"TEMPORAL_DISABLED"`
	Environment       string `envconfig:"ENVIRONMENT" default:"local"`
	ServiceName       string `envconfig:"SERVICE_NAME" default:"devcars-api"`
	LogLevel          string `envconfig:"LOG_LEVEL" default:"info"`
	OTLPEndpoint      string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPInsecure      bool   `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
}

// LoadConfig reads the optional dotenv file, then environment variables, applies defaults,
// and validates basic constraints. Variables already set win over the dotenv file.
func LoadConfig() (Config, error) {
	envFile := strings.TrimSpace(os.Getenv(EnvFileVariable))
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	cfg.PostgresDSN = strings.TrimSpace(cfg.PostgresDSN)
	if port, err := strconv.Atoi(cfg.Port); err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("PORT must be a valid TCP port, got %q", cfg.Port)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// UseTemporal reports whether order placement runs through Temporal.
// The worker needs the same store as the API, so Temporal requires Postgres.
func (c Config) UseTemporal() bool {
	return c.PostgresDSN != "" && !c.TemporalDisabled
}

// Observability derives telemetry settings for the named process.
func (c Config) Observability(serviceName string) platformobservability.Settings {
	return platformobservability.Settings{
		ServiceName:  serviceName,
		Environment:  c.Environment,
		LogLevel:     c.LogLevel,
		OTLPEndpoint: c.OTLPEndpoint,
		OTLPInsecure: c.OTLPInsecure,
	}
}
