package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envProvider     = "PROVIDER"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envCacheDir     = "ROSTER_CACHE_DIR"
	envCacheTTL     = "ROSTER_CACHE_TTL"

	defaultPort = "4000"
	// Keep the in-memory roster a little fresher than the cache window so
	// reads rarely pay for a live fetch.
	defaultPollInterval = 2 * Duration(time.Minute)
	defaultProvider     = "fixture"
	defaultMetricsPort  = "9090"
	// Entries older than this are not served proactively, only as a
	// fallback when the upstream fetch fails.
	defaultCacheTTL = 5 * Duration(time.Minute)
)
