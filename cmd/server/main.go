// Package main is the entry point of the SalBom gateway. It wires all
// dependencies using samber/do v2, serves HTTP, and shuts down gracefully on
// SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/SalBom/app-sb-sub001/internal/adapters/clients/backend"
	adapthttp "github.com/SalBom/app-sb-sub001/internal/adapters/http"
	"github.com/SalBom/app-sb-sub001/internal/adapters/http/handlers"
	"github.com/SalBom/app-sb-sub001/internal/adapters/http/middleware"
	"github.com/SalBom/app-sb-sub001/internal/app"
	"github.com/SalBom/app-sb-sub001/internal/platform/config"
	"github.com/SalBom/app-sb-sub001/internal/platform/health"
	"github.com/SalBom/app-sb-sub001/internal/platform/httpclient"
	"github.com/SalBom/app-sb-sub001/internal/platform/logging"
	"github.com/SalBom/app-sb-sub001/internal/platform/telemetry"
	"github.com/SalBom/app-sb-sub001/internal/ports"
)

const (
	backendServiceName    = "salbom-backend"
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	providers, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), otelShutdownTimeout)
		defer cancel()
		if err := providers.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.Metrics)
	registerDependencies(injector)

	// Resolving the server wires the full graph.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*backend.InvoiceClient](injector))

	logger.Info("salbom gateway starting",
		slog.String("profile", profile),
		slog.String("backend", cfg.Backend.BaseURL),
		slog.Duration("backend_timeout", cfg.Backend.Timeout),
	)

	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

func registerDependencies(injector *do.RootScope) {
	// One backend client per process, built from configuration at start-up.
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return httpclient.New(&cfg.Backend, backendServiceName,
			do.MustInvoke[*telemetry.Metrics](i),
			do.MustInvoke[*slog.Logger](i),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*backend.InvoiceClient, error) {
		return backend.NewInvoiceClient(
			do.MustInvoke[*httpclient.Client](i),
			do.MustInvoke[*slog.Logger](i),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.InvoiceService, error) {
		return app.NewInvoiceService(
			do.MustInvoke[*backend.InvoiceClient](i),
			do.MustInvoke[*telemetry.Metrics](i),
			do.MustInvoke[*slog.Logger](i),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.FilterService, error) {
		return app.NewFilterService(do.MustInvoke[*slog.Logger](i)), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return adapthttp.NewRouter(
			handlers.NewInvoiceHandler(do.MustInvoke[ports.InvoiceService](i)),
			handlers.NewFilterHandler(do.MustInvoke[ports.FilterService](i)),
			handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			middleware.Default(
				do.MustInvoke[*slog.Logger](i),
				do.MustInvoke[*telemetry.Metrics](i),
				cfg.Server.WriteTimeout,
			),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return adapthttp.NewServer(cfg.Server,
			do.MustInvoke[nethttp.Handler](i),
			do.MustInvoke[*slog.Logger](i),
			adapthttp.WithShutdownTimeout(serverShutdownTimeout),
		), nil
	})
}
