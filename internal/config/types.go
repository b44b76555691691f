// Package config provides configuration types and structures for the
// goServiceKit service.
package config

// Config represents the application configuration. It is assembled once at
// process start and treated as immutable afterwards.
type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	Logging  LoggingConfig  `json:"logging"`
	Security SecurityConfig `json:"security"`
}

// ServerConfig holds TCP server configuration
type ServerConfig struct {
	Host           string `json:"host"`            // Server host address
	Port           int    `json:"port"`            // Server port number
	MaxConnections int    `json:"max_connections"` // Maximum concurrent connections
	TimeoutSeconds int    `json:"timeout"`         // Request timeout in seconds
	TLSEnabled     bool   `json:"tls_enabled"`     // Enable TLS (not implemented, validated only)
	TLSCertPath    string `json:"tls_cert_path"`   // TLS certificate file path
	TLSKeyPath     string `json:"tls_key_path"`    // TLS private key file path
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	URL            string `json:"url"`             // Database connection URL
	MaxConnections int    `json:"max_connections"` // Maximum database connections
	TimeoutSeconds int    `json:"timeout"`         // Connection timeout in seconds
	PoolEnabled    bool   `json:"pool_enabled"`    // Enable connection pooling
	ProbeEnabled   bool   `json:"probe_enabled"`   // Register a database health probe
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level          string `json:"level"`           // Log level (trace, debug, info, warn, error)
	Format         string `json:"format"`          // Log format (json, pretty, compact)
	FilePath       string `json:"file_path"`       // Log file path (optional)
	ConsoleEnabled bool   `json:"console_enabled"` // Enable console output
	Structured     bool   `json:"structured"`      // Enable structured logging
}

// SecurityConfig holds security configuration
type SecurityConfig struct {
	JWTSecret           string   `json:"jwt_secret"`            // JWT secret key
	JWTExpirationHours  int      `json:"jwt_expiration"`        // JWT expiration time in hours
	RateLimitingEnabled bool     `json:"rate_limiting_enabled"` // Enable rate limiting
	RateLimitRPM        int      `json:"rate_limit_rpm"`        // Rate limit requests per minute
	CORSEnabled         bool     `json:"cors_enabled"`          // Enable CORS
	CORSOrigins         []string `json:"cors_origins"`          // Allowed CORS origins
}
