package config

// Config holds all application configuration.
// It is loaded once at startup and passed explicitly to every component.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// RequestTimeoutSeconds bounds each request, including time spent
	// waiting for a pool connection.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"required,gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`

	// Connection pool bounds.
	MaxOpenConns           int `mapstructure:"max_open_conns"            validate:"required,gt=0"`
	MaxIdleConns           int `mapstructure:"max_idle_conns"            validate:"required,gt=0"`
	ConnMaxIdleTimeSeconds int `mapstructure:"conn_max_idle_time_seconds" validate:"required,gt=0"`
	ConnMaxLifetimeMinutes int `mapstructure:"conn_max_lifetime_minutes"  validate:"required,gt=0"`
}

// AuthConfig contains all authentication settings.
type AuthConfig struct {
	JWTSecret          string `mapstructure:"jwt_secret"           validate:"required,min=32"`
	TokenLifetimeHours int    `mapstructure:"token_lifetime_hours" validate:"required,gt=0"`
}
