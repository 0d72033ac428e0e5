package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/SalBom/app-sb-sub001"

// Metric attribute keys.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrOutcome     = attribute.Key("outcome")
)

// Metrics holds the instruments recorded by the gateway.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// InvoiceFetchTotal counts invoice PDF lookups by outcome.
	InvoiceFetchTotal metric.Int64Counter
}

// NewMetrics registers all instruments on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(meterName)

	var (
		m   Metrics
		err error
	)

	if m.ServerRequestDuration, err = meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("Duration of incoming HTTP requests"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("creating http.server.request.duration: %w", err)
	}

	if m.ServerRequestTotal, err = meter.Int64Counter(
		"http.server.request.total",
		metric.WithDescription("Total number of incoming HTTP requests"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, fmt.Errorf("creating http.server.request.total: %w", err)
	}

	if m.ClientRequestDuration, err = meter.Float64Histogram(
		"http.client.request.duration",
		metric.WithDescription("Duration of requests to the SalBom backend"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("creating http.client.request.duration: %w", err)
	}

	if m.ClientRequestTotal, err = meter.Int64Counter(
		"http.client.request.total",
		metric.WithDescription("Total number of requests to the SalBom backend"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, fmt.Errorf("creating http.client.request.total: %w", err)
	}

	if m.InvoiceFetchTotal, err = meter.Int64Counter(
		"invoice.fetch.total",
		metric.WithDescription("Invoice PDF lookups by outcome"),
		metric.WithUnit("{fetch}"),
	); err != nil {
		return nil, fmt.Errorf("creating invoice.fetch.total: %w", err)
	}

	return &m, nil
}

// RecordInvoiceFetch adds one invoice lookup with the given outcome.
// Nil-safe so callers can run without telemetry.
func (m *Metrics) RecordInvoiceFetch(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.InvoiceFetchTotal.Add(ctx, 1, metric.WithAttributes(AttrOutcome.String(outcome)))
}
