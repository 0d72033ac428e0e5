// Package backend is the outbound adapter for the SalBom backend. It
// translates between the backend's wire format and the invoice domain, and
// maps every failure onto the invoice error taxonomy.
package backend

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/SalBom/app-sb-sub001/internal/domain/invoice"
	"github.com/SalBom/app-sb-sub001/internal/platform/httpclient"
	"github.com/SalBom/app-sb-sub001/internal/ports"
)

var _ ports.InvoiceClient = (*InvoiceClient)(nil)

const (
	invoicePDFPath  = "/factura_pdf"
	invoiceIDParam  = "facturaId"
	maxResponseSize = 1 << 20
)

// InvoiceClient fetches invoice PDF references. It adds no caching and no
// de-duplication: every call is one backend request.
type InvoiceClient struct {
	http   *httpclient.Client
	logger *slog.Logger
}

// NewInvoiceClient returns a client sending through the shared backend client.
func NewInvoiceClient(client *httpclient.Client, logger *slog.Logger) *InvoiceClient {
	return &InvoiceClient{http: client, logger: logger}
}

// FetchInvoicePDF sends GET /factura_pdf?facturaId=<id>. The id is sent as
// given, including the empty string.
func (c *InvoiceClient) FetchInvoicePDF(ctx context.Context, id invoice.ID) (invoice.PDFReference, error) {
	resp, err := c.http.Get(ctx, invoicePDFPath, url.Values{invoiceIDParam: {id.String()}})
	if err != nil {
		c.logger.WarnContext(ctx, "invoice pdf request failed",
			slog.String("invoice_id", id.String()),
			slog.Any("error", err),
		)
		return invoice.PDFReference{}, &invoice.TransportError{Err: err}
	}
	defer c.closeBody(ctx, resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		statusErr := translateStatus(resp)
		c.logger.WarnContext(ctx, "invoice pdf unexpected status",
			slog.String("invoice_id", id.String()),
			slog.Int("status", resp.StatusCode),
		)
		return invoice.PDFReference{}, statusErr
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return invoice.PDFReference{}, &invoice.TransportError{Err: err}
	}

	return decodePDFReference(body)
}

func (c *InvoiceClient) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", err))
	}
}

// Name identifies the backend in readiness output.
func (c *InvoiceClient) Name() string {
	return c.http.Name()
}

// HealthCheck reports the backend's circuit breaker state without a network
// call. The gateway stays ready while the backend fails; only this entry
// turns unhealthy.
func (c *InvoiceClient) HealthCheck(ctx context.Context) error {
	return c.http.HealthCheck(ctx)
}
