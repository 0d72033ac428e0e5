package ports

import "context"

// HealthChecker is implemented by components that can report their health,
// such as the SalBom backend client.
type HealthChecker interface {
	// Name identifies the component in readiness output (e.g. "salbom-backend").
	Name() string

	// HealthCheck returns nil when the component is usable. It must respect
	// ctx cancellation.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers and runs them for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every registered check and returns the results keyed by
	// checker name. A nil value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
