package config

import "time"

const (
	envPort            = "PORT"
	envTimezone        = "TZ"
	envTeamCode        = "TEAM_CODE"
	envDefaultDivision = "DEFAULT_DIVISION"
	envUpstream        = "UPSTREAM"
	envAPIBase         = "NHL_API_BASE"
	envCacheTTL        = "CACHE_TTL_SECONDS"
	envTVCacheTTL      = "TV_CACHE_TTL_SECONDS"
	envStandingsTTL    = "STANDINGS_CACHE_TTL_SECONDS"
	envLimitUpcoming   = "LIMIT_UPCOMING"
	envLimitRecent     = "LIMIT_RECENT"
	envWarmerEnabled   = "WARMER_ENABLED"
	envWarmInterval    = "WARM_INTERVAL"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envLogFile         = "LOG_FILE"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	envPreferredJSON  = "PREFERRED_NETWORK_NAMES_JSON"
	envPreferredList  = "PREFERRED_NETWORK_NAMES"
	envPatternsJSON   = "NETWORK_NAME_PATTERNS_JSON"
	envPatternsPairs  = "NETWORK_NAME_PATTERNS"
	envNameMapJSON    = "NETWORK_NAME_MAP_JSON"
	envNetworkCfgFile = "NETWORK_CONFIG_FILE"

	defaultPort            = "8000"
	defaultTimezone        = "America/Chicago"
	defaultTeamCode        = "MIN"
	defaultDivision        = "Central"
	defaultUpstream        = "nhle"
	defaultAPIBase         = "https://api-web.nhle.com"
	defaultCacheTTL        = 60 * time.Second
	defaultStandingsTTL    = 300 * time.Second
	defaultLimitUpcoming   = 8
	defaultLimitRecent     = 5
	defaultWarmerEnabled   = true
	defaultWarmInterval    = 60 * time.Second
	defaultMetricsPort     = "9090"
	defaultServiceName     = "nhl-ticker-service"
	defaultUpstreamTimeout = 10 * time.Second
)
