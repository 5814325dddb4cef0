package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName          string        `env:"SERVICE_NAME" envDefault:"cartulary"`
	HTTPPort             string        `env:"HTTP_PORT" envDefault:"8080"`
	PostgresDSN          string        `env:"POSTGRES_DSN"`
	RegistryAuthority    string        `env:"REGISTRY_AUTHORITY" envDefault:"authority"`
	OutboxTopic          string        `env:"OUTBOX_TOPIC" envDefault:"asset.events"`
	OutboxBatchSize      int           `env:"OUTBOX_BATCH_SIZE" envDefault:"100"`
	OutboxPollInterval   time.Duration `env:"OUTBOX_POLL_INTERVAL" envDefault:"2s"`
	DisableEventEmission bool          `env:"DISABLE_EVENT_EMISSION" envDefault:"false"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
