package config

const (
	defaultServerPort = 8080

	defaultBackendMaxAttempts = 1
	defaultRetryMultiplier    = 2.0

	defaultCircuitBreakerMaxFailures = 0
	defaultCircuitBreakerHalfOpen    = 1

	// DefaultBackendURL is the production SalBom backend.
	DefaultBackendURL = "https://app-salbom-production.up.railway.app"
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"backend.base_url":                        DefaultBackendURL,
		"backend.timeout":                         "5s",
		"backend.headers.content-type":            "application/json",
		"backend.retry.max_attempts":              defaultBackendMaxAttempts,
		"backend.retry.initial_interval":          "100ms",
		"backend.retry.max_interval":              "2s",
		"backend.retry.multiplier":                defaultRetryMultiplier,
		"backend.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"backend.circuit_breaker.timeout":         "30s",
		"backend.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"backend.rate_limit.requests_per_second":  0,
		"backend.rate_limit.burst_size":           0,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "salbom-gateway",
	}
}
