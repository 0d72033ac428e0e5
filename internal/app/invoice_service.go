package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SalBom/app-sb-sub001/internal/domain/invoice"
	"github.com/SalBom/app-sb-sub001/internal/platform/telemetry"
	"github.com/SalBom/app-sb-sub001/internal/ports"
)

var _ ports.InvoiceService = (*InvoiceService)(nil)

// Outcome labels recorded on invoice.fetch.total.
const (
	OutcomeSuccess      = "success"
	OutcomeTimeout      = "timeout"
	OutcomeTransport    = "transport_error"
	OutcomeHTTPStatus   = "http_status_error"
	OutcomeDecode       = "decode_error"
	OutcomeUnclassified = "error"
)

// InvoiceService resolves invoice PDFs through the backend client port.
type InvoiceService struct {
	client  ports.InvoiceClient
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewInvoiceService returns an InvoiceService. metrics may be nil; a nil
// logger discards output.
func NewInvoiceService(client ports.InvoiceClient, metrics *telemetry.Metrics, logger *slog.Logger) *InvoiceService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &InvoiceService{client: client, metrics: metrics, logger: logger}
}

// GetInvoicePDF fetches the PDF reference once. Errors are returned unchanged
// so callers can inspect the invoice error types.
func (s *InvoiceService) GetInvoicePDF(ctx context.Context, id invoice.ID) (invoice.PDFReference, error) {
	s.logger.InfoContext(ctx, "fetching invoice pdf", slog.String("invoice_id", id.String()))

	ref, err := s.client.FetchInvoicePDF(ctx, id)
	outcome := classify(err)
	s.metrics.RecordInvoiceFetch(ctx, outcome)

	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch invoice pdf",
			slog.String("operation", "GetInvoicePDF"),
			slog.String("invoice_id", id.String()),
			slog.String("outcome", outcome),
			slog.Any("error", err),
		)
		return invoice.PDFReference{}, err
	}

	return ref, nil
}

func classify(err error) string {
	var (
		transportErr *invoice.TransportError
		statusErr    *invoice.HTTPStatusError
		decodeErr    *invoice.DecodeError
	)

	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.As(err, &transportErr):
		if transportErr.Timeout() {
			return OutcomeTimeout
		}
		return OutcomeTransport
	case errors.As(err, &statusErr):
		return OutcomeHTTPStatus
	case errors.As(err, &decodeErr):
		return OutcomeDecode
	default:
		return OutcomeUnclassified
	}
}
