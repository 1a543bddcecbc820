// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

package config

import (
	"fmt"
	"time"

	"github.com/cloudcompass/cloudcompass/internal/recommend"
)

// Config is the root configuration for the service.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
	Engine   EngineConfig   `koanf:"engine"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// SecurityConfig controls CORS, rate limiting, and proxy trust.
type SecurityConfig struct {
	CORSOrigins []string `koanf:"cors_origins"`

	// RateLimitRPM is the per-IP request budget per minute on the
	// recommendation endpoints. RateLimitBurst additionally caps requests
	// per second; zero disables the burst cap.
	RateLimitRPM   int `koanf:"rate_limit_rpm"`
	RateLimitBurst int `koanf:"rate_limit_burst"`

	// TrustedProxies enables X-Forwarded-For / X-Real-IP resolution.
	// Leave false unless a trusted reverse proxy fronts the service, or
	// clients can spoof their rate-limit identity.
	TrustedProxies bool `koanf:"trusted_proxies"`

	HealthRateLimit int `koanf:"health_rate_limit"`
}

// LoggingConfig controls zerolog output.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// EngineConfig exposes the tunable thresholds of the recommendation engine.
type EngineConfig struct {
	StrongDiff                float64 `koanf:"strong_diff"`
	ModerateDiff              float64 `koanf:"moderate_diff"`
	HighConfidencePercent     int     `koanf:"high_confidence_percent"`
	ModerateConfidencePercent int     `koanf:"moderate_confidence_percent"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitRPM:    120,
			RateLimitBurst:  20,
			HealthRateLimit: 600,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Engine: EngineConfig{
			StrongDiff:                2.0,
			ModerateDiff:              0.6,
			HighConfidencePercent:     20,
			ModerateConfidencePercent: 10,
		},
	}
}

// Validate checks cross-field constraints after all layers are merged.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}
	if c.Security.RateLimitRPM < 1 {
		return fmt.Errorf("security.rate_limit_rpm must be at least 1, got %d", c.Security.RateLimitRPM)
	}
	if c.Security.RateLimitBurst < 0 {
		return fmt.Errorf("security.rate_limit_burst must not be negative, got %d", c.Security.RateLimitBurst)
	}
	if c.Security.HealthRateLimit < 1 {
		return fmt.Errorf("security.health_rate_limit must be at least 1, got %d", c.Security.HealthRateLimit)
	}
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("security.cors_origins must not be empty")
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	if c.Engine.ModerateDiff <= 0 || c.Engine.StrongDiff <= c.Engine.ModerateDiff {
		return fmt.Errorf("engine thresholds must satisfy 0 < moderate_diff < strong_diff, got %g and %g",
			c.Engine.ModerateDiff, c.Engine.StrongDiff)
	}
	if c.Engine.ModerateConfidencePercent <= 0 ||
		c.Engine.HighConfidencePercent <= c.Engine.ModerateConfidencePercent {
		return fmt.Errorf("engine confidence thresholds must satisfy 0 < moderate < high, got %d and %d",
			c.Engine.ModerateConfidencePercent, c.Engine.HighConfidencePercent)
	}
	return nil
}

// Addr returns the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// EngineConfig builds the recommendation engine configuration from the
// engine section, keeping the engine package free of koanf concerns.
func (c *Config) EngineConfig() *recommend.Config {
	cfg := recommend.DefaultConfig()
	cfg.StrongDiff = c.Engine.StrongDiff
	cfg.ModerateDiff = c.Engine.ModerateDiff
	cfg.HighConfidencePercent = c.Engine.HighConfidencePercent
	cfg.ModerateConfidencePercent = c.Engine.ModerateConfidencePercent
	return cfg
}
