// Package config defines the portfolio service configuration and its loader.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// GinMode is passed to gin.SetMode: debug, release or test.
	GinMode string `koanf:"gin_mode"`

	// DataDir holds the sqlite database. ":memory:" keeps everything in RAM.
	DataDir string `koanf:"data_dir"`

	// RetentionDays bounds how long visitor and chat rows are kept.
	RetentionDays int `koanf:"retention_days"`

	// CleanupInterval is how often the retention sweep runs.
	CleanupInterval time.Duration `koanf:"cleanup_interval"`

	AdminUsername string `koanf:"admin_username"`
	AdminPassword string `koanf:"admin_password"`

	SMTPHost string `koanf:"smtp_host"`
	SMTPPort string `koanf:"smtp_port"`
	SMTPUser string `koanf:"smtp_user"`
	SMTPPass string `koanf:"smtp_pass"`
	ToEmail  string `koanf:"to_email"`

	// TypingDelayMS is how long the page shows the typing indicator before
	// revealing a bot reply.
	TypingDelayMS int `koanf:"typing_delay_ms"`

	// LatencyBuckets overrides the HTTP latency histogram buckets, in
	// seconds. Empty keeps the Prometheus defaults.
	LatencyBuckets []float64 `koanf:"latency_buckets"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":8080",
		GinMode:         "release",
		DataDir:         "data",
		RetentionDays:   365,
		CleanupInterval: 24 * time.Hour,
		AdminUsername:   "admin",
		AdminPassword:   "admin123",
		SMTPHost:        "smtp.gmail.com",
		SMTPPort:        "587",
		ToEmail:         "lakhan.rajputaipm@gmail.com",
		TypingDelayMS:   800,
	}
}

// Retention returns the retention window as a duration.
func (c *Config) Retention() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}

// UsesDefaultAdminCredentials reports whether the built-in development
// credentials are still active.
func (c *Config) UsesDefaultAdminCredentials() bool {
	d := New()
	return c.AdminUsername == d.AdminUsername || c.AdminPassword == d.AdminPassword
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case strings.TrimSpace(c.DataDir) == "":
		return fmt.Errorf("%w: data_dir must not be empty", ErrInvalidConfig)
	case c.RetentionDays <= 0:
		return fmt.Errorf("%w: retention_days must be positive, got %d", ErrInvalidConfig, c.RetentionDays)
	case c.CleanupInterval <= 0:
		return fmt.Errorf("%w: cleanup_interval must be positive", ErrInvalidConfig)
	case c.TypingDelayMS < 0:
		return fmt.Errorf("%w: typing_delay_ms must not be negative", ErrInvalidConfig)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: unknown gin_mode %q", ErrInvalidConfig, c.GinMode)
	}
	for i := 1; i < len(c.LatencyBuckets); i++ {
		if c.LatencyBuckets[i] <= c.LatencyBuckets[i-1] {
			return fmt.Errorf("%w: latency_buckets must be strictly increasing", ErrInvalidConfig)
		}
	}
	return nil
}
