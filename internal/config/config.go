package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"go.uber.org/fx"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	Environment     string
	Port            string
	DatabaseDSN     string
	InvoiceCacheTTL time.Duration

	ServiceName    string
	ServiceVersion string

	TracingEnabled  bool
	TracingEndpoint string
	TracingProtocol string
	TracingSampling float64
}

// Load reads configuration from environment variables and an optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Environment:     valueOrDefault(k.String("APP_ENV"), "development"),
		Port:            valueOrDefault(k.String("PORT"), "8080"),
		DatabaseDSN:     valueOrDefault(k.String("DATABASE_DSN"), "rental.db"),
		InvoiceCacheTTL: parseDuration(k.String("INVOICE_CACHE_TTL"), "5m"),
		ServiceName:     valueOrDefault(k.String("SERVICE_NAME"), "movie-rental"),
		ServiceVersion:  valueOrDefault(k.String("SERVICE_VERSION"), "dev"),
		TracingEnabled:  k.Bool("TRACING_ENABLED"),
		TracingEndpoint: strings.TrimSpace(k.String("TRACING_ENDPOINT")),
		TracingProtocol: valueOrDefault(k.String("TRACING_PROTOCOL"), "grpc"),
		TracingSampling: k.Float64("TRACING_SAMPLING_RATIO"),
	}
	return cfg, nil
}

// HTTPAddr returns the address the HTTP server should bind to.
func (c Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	return ":" + port
}

// IsProduction reports whether the app runs in the production environment.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}

func parseDuration(value, fallback string) time.Duration {
	if d, err := time.ParseDuration(strings.TrimSpace(value)); err == nil && d >= 0 {
		return d
	}
	d, _ := time.ParseDuration(fallback)
	return d
}

var Module = fx.Module("config",
	fx.Provide(Load),
)
