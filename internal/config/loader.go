// Package config provides configuration loading and environment management
package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/chybatronik/goServiceKit/pkg/errors"
)

// Environment variables recognized by the loader. A JSON file named by
// CONFIG_FILE, when present, replaces the whole configuration after these
// are applied.
const (
	EnvServerHost  = "SERVER_HOST"
	EnvServerPort  = "SERVER_PORT"
	EnvDatabaseURL = "DATABASE_URL"
	EnvLogLevel    = "LOG_LEVEL"
	EnvJWTSecret   = "JWT_SECRET"
	EnvConfigFile  = "CONFIG_FILE"
)

// Default returns the built-in configuration defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:           "127.0.0.1",
			Port:           8080,
			MaxConnections: 1000,
			TimeoutSeconds: 30,
			TLSEnabled:     false,
		},
		Database: DatabaseConfig{
			URL:            "postgresql://localhost/myapp",
			MaxConnections: 10,
			TimeoutSeconds: 30,
			PoolEnabled:    true,
			ProbeEnabled:   false,
		},
		Logging: LoggingConfig{
			Level:          "info",
			Format:         "pretty",
			ConsoleEnabled: true,
			Structured:     false,
		},
		Security: SecurityConfig{
			JWTSecret:           "change-me-this-secret-is-only-a-default",
			JWTExpirationHours:  24,
			RateLimitingEnabled: true,
			RateLimitRPM:        100,
			CORSEnabled:         true,
			CORSOrigins:         []string{"http://localhost:3000"},
		},
	}
}

// Load builds the configuration in increasing precedence: built-in defaults,
// environment variable overrides, then a wholesale replacement from the JSON
// file named by CONFIG_FILE. The result is validated before being returned.
func Load() (*Config, error) {
	// 1. Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// 2. Start from defaults and apply environment overrides
	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	// 3. A config file replaces the entire configuration (not a field merge)
	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	// 4. Post-load configuration validation
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv mutates the configuration in place from recognized environment
// variables. Unset variables leave the current values untouched.
func (c *Config) applyEnv() error {
	if host := os.Getenv(EnvServerHost); host != "" {
		c.Server.Host = host
	}

	if portStr := os.Getenv(EnvServerPort); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return errors.NewConfig(fmt.Sprintf("invalid %s: %q", EnvServerPort, portStr))
		}
		c.Server.Port = port
	}

	if url := os.Getenv(EnvDatabaseURL); url != "" {
		c.Database.URL = url
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}

	if secret := os.Getenv(EnvJWTSecret); secret != "" {
		c.Security.JWTSecret = secret
	}

	return nil
}

// LoadFile replaces the whole configuration with the contents of a JSON file.
func (c *Config) LoadFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapIO(err)
	}

	var fileConfig Config
	if err := json.Unmarshal(content, &fileConfig); err != nil {
		return errors.WrapSerialization(err)
	}

	*c = fileConfig
	return nil
}

// Addr returns the server bind address as host:port.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
