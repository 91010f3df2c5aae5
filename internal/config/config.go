// Package config provides runtime configuration for the service.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds configuration knobs for the HTTP server, the Spanner
// connection and the built-in accounts. Defaults target local development
// against the Spanner emulator.
type Config struct {
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8080"`
	SpannerDatabase string        `envconfig:"SPANNER_DATABASE" default:"projects/test-project/instances/dev-instance/databases/store-management-db"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`

	ReadUser      string `envconfig:"READ_USER" default:"user"`
	ReadPassword  string `envconfig:"READ_PASSWORD" default:"user"`
	AdminUser     string `envconfig:"ADMIN_USER" default:"admin"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin"`
}

// Load collects configuration from environment variables with defaults.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
