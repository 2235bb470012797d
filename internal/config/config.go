package config

import (
	"strings"
	"time"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	Timezone        string
	TeamCode        string
	DefaultDivision string
	LimitUpcoming   int
	LimitRecent     int
	Upstream        UpstreamConfig
	Cache           CacheConfig
	Networks        NetworkConfig
	Warmer          WarmerConfig
	Logging         LoggingConfig
	Metrics         MetricsConfig
	// Warnings collects non-fatal problems found while loading, for logging at startup.
	Warnings []string
}

// WarmerConfig controls the background cache warmer.
type WarmerConfig struct {
	Enabled  bool
	Interval time.Duration
}

// LoggingConfig mirrors the logging package options that come from the environment.
type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	networks, warnings := loadNetworks()
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		Timezone:        envOrDefault(envTimezone, defaultTimezone),
		TeamCode:        strings.ToUpper(envOrDefault(envTeamCode, defaultTeamCode)),
		DefaultDivision: envOrDefault(envDefaultDivision, defaultDivision),
		LimitUpcoming:   nonNegativeIntEnvOrDefault(envLimitUpcoming, defaultLimitUpcoming),
		LimitRecent:     nonNegativeIntEnvOrDefault(envLimitRecent, defaultLimitRecent),
		Upstream:        loadUpstream(),
		Cache:           loadCache(),
		Networks:        networks,
		Warmer: WarmerConfig{
			Enabled:  boolEnvOrDefault(envWarmerEnabled, defaultWarmerEnabled),
			Interval: durationEnvOrDefault(envWarmInterval, defaultWarmInterval),
		},
		Logging: LoggingConfig{
			Level:  envOrDefault(envLogLevel, ""),
			Format: envOrDefault(envLogFormat, ""),
			File:   envOrDefault(envLogFile, ""),
		},
		Metrics:  loadMetrics(),
		Warnings: warnings,
	}
}
