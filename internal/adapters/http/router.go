// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SalBom/app-sb-sub001/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	invoiceHandler *handlers.InvoiceHandler,
	filterHandler *handlers.FilterHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/invoices/{invoiceId}/pdf", invoiceHandler.GetInvoicePDF)

		// Filter panel callbacks; the client owns and resends the state.
		r.Post("/filters/actions", filterHandler.ApplyAction)
		r.Post("/filters/panel", filterHandler.DescribePanel)
		r.Post("/products/filter", filterHandler.SelectProducts)
	})

	return r
}
