package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Backend.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (b *BackendConfig) validate() error {
	var errs []error

	if b.BaseURL == "" {
		errs = append(errs, errors.New("backend.base_url must not be empty"))
	} else if u, err := url.ParseRequestURI(b.BaseURL); err != nil || u.Host == "" {
		errs = append(errs, fmt.Errorf("backend.base_url must be an absolute URL, got %q", b.BaseURL))
	}
	if b.Timeout <= 0 {
		errs = append(errs, errors.New("backend.timeout must be positive"))
	}
	for name := range b.Headers {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, errors.New("backend.headers must not contain an empty header name"))
		}
	}
	if b.Retry.MaxAttempts != 1 {
		errs = append(errs, fmt.Errorf("backend.retry.max_attempts must be 1, got %d", b.Retry.MaxAttempts))
	}
	if b.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("backend.retry.multiplier must be positive, got %f", b.Retry.Multiplier))
	}
	if b.CircuitBreaker.MaxFailures < 0 {
		errs = append(errs, fmt.Errorf("backend.circuit_breaker.max_failures must not be negative, got %d",
			b.CircuitBreaker.MaxFailures))
	}
	if b.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("backend.rate_limit.requests_per_second must not be negative, got %f",
			b.RateLimit.RequestsPerSecond))
	}
	if b.RateLimit.RequestsPerSecond > 0 && b.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("backend.rate_limit.burst_size must be >= 1 when rate limiting, got %d",
			b.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty when telemetry is enabled"))
	}

	return errors.Join(errs...)
}
