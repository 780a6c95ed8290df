package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port        string   `env:"PORT" envDefault:"8080"`
	LogMode     string   `env:"LOG_MODE" envDefault:"development"`
	Environment string   `env:"APP_ENV" envDefault:"development"`
	Version     string   `env:"APP_VERSION" envDefault:"dev"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`

	DBDriver         string `env:"DB_DRIVER" envDefault:"postgres"`
	PostgresDSN      string `env:"POSTGRES_DSN"`
	PostgresHost     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort     string `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser     string `env:"POSTGRES_USER" envDefault:"postgres"`
	PostgresPassword string `env:"POSTGRES_PASSWORD"`
	PostgresName     string `env:"POSTGRES_NAME" envDefault:"neurohealing"`
	SQLitePath       string `env:"SQLITE_PATH"`

	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisChannel    string        `env:"REDIS_CHANNEL" envDefault:"milestones"`
	MetricsCacheTTL time.Duration `env:"METRICS_CACHE_TTL" envDefault:"10m"`
	ScoreCacheSize  int           `env:"SCORE_CACHE_SIZE" envDefault:"512"`

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"false"`

	OtelEnabled     bool    `env:"OTEL_ENABLED" envDefault:"false"`
	OtelSampleRatio float64 `env:"OTEL_SAMPLER_RATIO" envDefault:"0.1"`
	OtelEndpoint    string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelHeaders     string  `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	OtelInsecure    bool    `env:"OTEL_EXPORTER_OTLP_INSECURE"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ScoreCacheSize <= 0 {
		return Config{}, fmt.Errorf("SCORE_CACHE_SIZE must be positive, got %d", cfg.ScoreCacheSize)
	}
	return cfg, nil
}
