package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables take
// precedence over file values. The database URL and signing secret have
// no defaults; loading fails when either is absent so the process
// refuses to start misconfigured.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.request_timeout_seconds", 10)
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.conn_max_idle_time_seconds", 30)
	v.SetDefault("database.conn_max_lifetime_minutes", 30)
	v.SetDefault("auth.token_lifetime_hours", 8)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("CATS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The two required secrets keep their conventional unprefixed names.
	if err := v.BindEnv("database.url", "DATABASE_URL", "CATS_DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind database url: %w", err)
	}
	if err := v.BindEnv("auth.jwt_secret", "JWT_SECRET", "CATS_AUTH_JWT_SECRET"); err != nil {
		return nil, fmt.Errorf("failed to bind jwt secret: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
