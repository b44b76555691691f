package config

import (
	"fmt"
	"strings"

	"github.com/chybatronik/goServiceKit/pkg/errors"
)

// ValidLogLevels enumerates the accepted values for logging.level.
var ValidLogLevels = []string{"trace", "debug", "info", "warn", "error"}

// Validate checks the loaded configuration. A failure here is fatal at
// startup; the process must not proceed to serve.
func (c *Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.NewConfig("server port cannot be 0")
	}

	if c.Database.URL == "" {
		return errors.NewConfig("database URL cannot be empty")
	}

	if len(c.Security.JWTSecret) < 32 {
		return errors.NewConfig("JWT secret must be at least 32 characters")
	}

	if !isValidLogLevel(c.Logging.Level) {
		return errors.NewConfig(fmt.Sprintf(
			"invalid log level: %s, must be one of: %s",
			c.Logging.Level, strings.Join(ValidLogLevels, ", "),
		))
	}

	return nil
}

func isValidLogLevel(level string) bool {
	for _, valid := range ValidLogLevels {
		if level == valid {
			return true
		}
	}
	return false
}
