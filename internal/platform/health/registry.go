// Package health tracks the gateway's downstream dependencies for the
// readiness probe.
package health

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/SalBom/app-sb-sub001/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

const (
	defaultCheckTimeout = 2 * time.Second
	maxConcurrentChecks = 4
)

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds each individual check. Non-positive values keep
// the default of two seconds.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.checkTimeout = d
		}
	}
}

// Registry runs registered checkers concurrently. Safe for concurrent use.
type Registry struct {
	mu           sync.RWMutex
	checkers     map[string]ports.HealthChecker
	checkTimeout time.Duration
}

// New returns an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		checkers:     make(map[string]ports.HealthChecker),
		checkTimeout: defaultCheckTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker. A checker with the same name replaces the earlier one.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[checker.Name()] = checker
}

// CheckAll runs all checks, at most four at a time, each bounded by the
// check timeout. The lock is not held while checks run.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	snapshot := make(map[string]ports.HealthChecker, len(r.checkers))
	for name, c := range r.checkers {
		snapshot[name] = c
	}
	timeout := r.checkTimeout
	r.mu.RUnlock()

	var (
		mu      sync.Mutex
		results = make(map[string]error, len(snapshot))
		g       errgroup.Group
	)
	g.SetLimit(maxConcurrentChecks)

	for name, c := range snapshot {
		g.Go(func() error {
			checkCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			err := c.HealthCheck(checkCtx)

			mu.Lock()
			results[name] = err
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Healthy reports whether every result is nil.
func Healthy(results map[string]error) bool {
	for _, err := range results {
		if err != nil {
			return false
		}
	}
	return true
}
