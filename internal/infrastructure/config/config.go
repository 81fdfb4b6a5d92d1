package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FallbackJWTSecret is the hardcoded development signing secret used when
// neither the config file nor IOTCORE_JWT_SECRET provides one. It exists so
// the service starts out of the box, and it must never be used in
// production; main logs a prominent warning when it is active.
const FallbackJWTSecret = "insecure-dev-secret-do-not-use-in-production"

// Config is the root configuration structure for iotcore.
type Config struct {
	API       APIConfig       `yaml:"api"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// APIConfig contains HTTP API server settings.
type APIConfig struct {
	Host     string           `yaml:"host"`
	Port     int              `yaml:"port"`
	Timeouts APITimeoutConfig `yaml:"timeouts"`
	CORS     CORSConfig       `yaml:"cors"`
}

// APITimeoutConfig contains HTTP timeout settings in seconds.
type APITimeoutConfig struct {
	Read  int `yaml:"read"`
	Write int `yaml:"write"`
	Idle  int `yaml:"idle"`
}

// CORSConfig contains Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers"`
}

// DatabaseConfig contains SQLite database settings.
type DatabaseConfig struct {
	Path        string `yaml:"path"`
	WALMode     bool   `yaml:"wal_mode"`
	BusyTimeout int    `yaml:"busy_timeout"`
}

// AuthConfig contains token signing settings.
type AuthConfig struct {
	// Secret signs access tokens (HMAC). Loaded once at startup,
	// never rotated mid-process.
	Secret string `yaml:"secret"`

	// Algorithm is the JWT signing algorithm. Only HS256 is supported.
	Algorithm string `yaml:"algorithm"`

	// TokenTTLMinutes is the access token lifetime.
	TokenTTLMinutes int `yaml:"token_ttl_minutes"`
}

// RateLimitConfig contains registration rate limiting settings.
type RateLimitConfig struct {
	// RegisterPerMinute caps POST /register requests per client address.
	RegisterPerMinute int `yaml:"register_per_minute"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads configuration from a YAML file and applies environment
// variable overrides.
//
// The loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// A missing config file is not an error: the service runs on defaults plus
// environment overrides, which is the common container deployment shape.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults + env only.
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Host: "0.0.0.0",
			Port: 8080,
			Timeouts: APITimeoutConfig{
				Read:  30,
				Write: 30,
				Idle:  60,
			},
		},
		Database: DatabaseConfig{
			Path:        "./data/iotcore.db",
			WALMode:     true,
			BusyTimeout: 5,
		},
		Auth: AuthConfig{
			Secret:          FallbackJWTSecret,
			Algorithm:       "HS256",
			TokenTTLMinutes: 60,
		},
		RateLimit: RateLimitConfig{
			RegisterPerMinute: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// applyEnvOverrides applies environment variable overrides.
// Variables follow the pattern IOTCORE_SECTION_KEY.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("IOTCORE_API_HOST"); v != "" {
		cfg.API.Host = v
	}
	if v := os.Getenv("IOTCORE_API_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.API.Port = port
		}
	}
	if v := os.Getenv("IOTCORE_DATABASE_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("IOTCORE_JWT_SECRET"); v != "" {
		cfg.Auth.Secret = v
	}
	if v := os.Getenv("IOTCORE_JWT_ALGORITHM"); v != "" {
		cfg.Auth.Algorithm = v
	}
	if v := os.Getenv("IOTCORE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []string

	if c.API.Port < 1 || c.API.Port > 65535 {
		errs = append(errs, "api.port must be between 1 and 65535")
	}

	if c.Database.Path == "" {
		errs = append(errs, "database.path is required")
	}

	if c.Auth.Secret == "" {
		errs = append(errs, "auth.secret is required (set IOTCORE_JWT_SECRET)")
	}

	// Only symmetric HS256 is supported; rejecting anything else here keeps
	// the verifier's algorithm pinning and the issuer in agreement.
	if c.Auth.Algorithm != "HS256" {
		errs = append(errs, "auth.algorithm must be HS256")
	}

	if c.Auth.TokenTTLMinutes <= 0 {
		errs = append(errs, "auth.token_ttl_minutes must be positive")
	}

	if c.RateLimit.RegisterPerMinute <= 0 {
		errs = append(errs, "rate_limit.register_per_minute must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// UsingFallbackSecret reports whether the insecure built-in signing secret
// is active.
func (c *Config) UsingFallbackSecret() bool {
	return c.Auth.Secret == FallbackJWTSecret
}

// TokenTTL returns the access token lifetime as a Duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.Auth.TokenTTLMinutes) * time.Minute
}

// ReadTimeout returns the API read timeout as a Duration.
func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.API.Timeouts.Read) * time.Second
}

// WriteTimeout returns the API write timeout as a Duration.
func (c *Config) WriteTimeout() time.Duration {
	return time.Duration(c.API.Timeouts.Write) * time.Second
}

// IdleTimeout returns the API idle timeout as a Duration.
func (c *Config) IdleTimeout() time.Duration {
	return time.Duration(c.API.Timeouts.Idle) * time.Second
}
