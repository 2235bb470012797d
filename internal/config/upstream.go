package config

import (
	"strings"
	"time"
)

// UpstreamConfig controls how we talk to the league API.
type UpstreamConfig struct {
	// Name selects the implementation: "nhle" or "fixture".
	Name    string
	BaseURL string
	Timeout time.Duration
}

// CacheConfig holds per-resource TTLs.
type CacheConfig struct {
	ScheduleTTL  time.Duration
	TVTTL        time.Duration
	StandingsTTL time.Duration
}

func loadUpstream() UpstreamConfig {
	return UpstreamConfig{
		Name:    strings.ToLower(envOrDefault(envUpstream, defaultUpstream)),
		BaseURL: strings.TrimRight(envOrDefault(envAPIBase, defaultAPIBase), "/"),
		Timeout: defaultUpstreamTimeout,
	}
}

func loadCache() CacheConfig {
	schedule := secondsEnvOrDefault(envCacheTTL, defaultCacheTTL)
	return CacheConfig{
		ScheduleTTL:  schedule,
		TVTTL:        secondsEnvOrDefault(envTVCacheTTL, schedule),
		StandingsTTL: secondsEnvOrDefault(envStandingsTTL, defaultStandingsTTL),
	}
}
