package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string `envconfig:"SERVICE_NAME" default:"alumvote"`
	HTTPPort    string `envconfig:"HTTP_PORT" default:"8080"`
	PostgresDSN string `envconfig:"POSTGRES_DSN"`

	// Timezone interprets naive timestamps sent by admin tooling.
	Timezone string `envconfig:"TIMEZONE" default:"Asia/Manila"`

	AdminTokenSecret string        `envconfig:"ADMIN_TOKEN_SECRET"`
	AdminTokenTTL    time.Duration `envconfig:"ADMIN_TOKEN_TTL" default:"12h"`

	DefaultGateName     string `envconfig:"DEFAULT_GATE_NAME" default:"default"`
	DefaultGatePasscode string `envconfig:"DEFAULT_GATE_PASSCODE"`
	DefaultChapter      string `envconfig:"DEFAULT_CHAPTER" default:"Main Campus"`

	BcryptCost int `envconfig:"BCRYPT_COST" default:"12"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Location resolves the configured deployment timezone.
func (c Config) Location() (*time.Location, error) {
	location, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return location, nil
}
