// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Normalizer NormalizerConfig
	Search     SearchConfig
	Logging    LoggingConfig
	App        AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// NormalizerConfig holds settings for the itinerary normalization pipeline.
type NormalizerConfig struct {
	// DefaultCurrency is assumed for prices that carry no currency code.
	DefaultCurrency string `env:"DEFAULT_CURRENCY" envDefault:"CNY"`

	// SchemaAliasFile optionally overrides the built-in field alias tables.
	// Empty means use the embedded tables.
	SchemaAliasFile string `env:"SCHEMA_ALIAS_FILE"`

	// AirlineLogoURLTemplate derives airline logo URLs from IATA codes.
	// It must contain exactly one %s verb.
	AirlineLogoURLTemplate string `env:"AIRLINE_LOGO_URL_TEMPLATE" envDefault:"https://daisycon.io/images/airline/?width=300&height=150&iata=%s"`
}

// SearchConfig holds search lifecycle settings.
type SearchConfig struct {
	PollingTimeout         time.Duration `env:"SEARCH_POLLING_TIMEOUT" envDefault:"2m"`
	MaxConsecutiveFailures int           `env:"SEARCH_MAX_CONSECUTIVE_FAILURES" envDefault:"5"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Search.PollingTimeout <= 0 {
		return fmt.Errorf("SEARCH_POLLING_TIMEOUT must be positive")
	}
	if cfg.Search.MaxConsecutiveFailures < 1 {
		return fmt.Errorf("SEARCH_MAX_CONSECUTIVE_FAILURES must be at least 1")
	}

	// Validate default currency is a 3-letter ISO 4217 code
	if len(cfg.Normalizer.DefaultCurrency) != 3 ||
		cfg.Normalizer.DefaultCurrency != strings.ToUpper(cfg.Normalizer.DefaultCurrency) {
		return fmt.Errorf("DEFAULT_CURRENCY must be a 3-letter uppercase code, got %q", cfg.Normalizer.DefaultCurrency)
	}

	// Validate logo template has exactly one %s verb
	if strings.Count(cfg.Normalizer.AirlineLogoURLTemplate, "%s") != 1 {
		return fmt.Errorf("AIRLINE_LOGO_URL_TEMPLATE must contain exactly one %%s verb, got %q",
			cfg.Normalizer.AirlineLogoURLTemplate)
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
