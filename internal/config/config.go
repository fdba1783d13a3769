// Package config loads application settings from environment variables.
// Every setting has a default except the database URL, and the whole
// configuration is validated on load so misconfiguration fails at startup.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

// DatabaseConfig holds connection pool settings. The accessors never read
// these directly; they only see the resulting pool.
type DatabaseConfig struct {
	// URL is the PostgreSQL connection string (required)
	// DB_URL is accepted as a fallback
	URL string `env:"DATABASE_URL" envAlt:"DB_URL" required:"true"`

	// MaxConns is the maximum number of pooled connections (default: 10)
	MaxConns int `env:"DB_MAX_CONNS" default:"10"`

	// MinConns is the number of idle connections kept open (default: 1)
	MinConns int `env:"DB_MIN_CONNS" default:"1"`

	// MaxConnLifetime recycles connections older than this (default: 1h)
	MaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" default:"1h"`

	// MaxConnIdleTime closes connections idle longer than this (default: 30m)
	MaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" default:"30m"`

	// ConnectTimeout bounds dialing and the startup ping (default: 5s)
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" default:"5s"`

	// StatementTimeout is the deadline applied to a single accessor call
	// when the caller did not set one. Zero disables it. (default: 10s)
	StatementTimeout time.Duration `env:"DB_STATEMENT_TIMEOUT" default:"10s"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`

	// RequestTimeout is the chi Timeout middleware deadline (default: 30s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"30s"`
}

// SecurityConfig holds API protection settings.
type SecurityConfig struct {
	// RequireAPIKey rejects API requests without a valid X-API-Key (default: false)
	RequireAPIKey bool `env:"REQUIRE_API_KEY" default:"false"`

	// APIKeys is a comma-separated list of accepted keys
	APIKeys []string `env:"API_KEYS"`

	// TrustedProxies is a comma-separated list of proxy CIDRs whose
	// X-Real-IP / X-Forwarded-For headers are honoured
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// RateLimit is the number of requests per minute allowed per client IP.
	// Zero disables limiting. (default: 100)
	RateLimit int `env:"RATE_LIMIT" default:"100"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port form.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
