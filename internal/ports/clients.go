package ports

import (
	"context"

	"github.com/SalBom/app-sb-sub001/internal/domain/invoice"
)

// InvoiceClient fetches rendered invoice PDFs from the SalBom backend.
type InvoiceClient interface {
	// FetchInvoicePDF asks the backend for the PDF of the given invoice and
	// returns its URL. It makes exactly one request. Failures are
	// *invoice.TransportError, *invoice.HTTPStatusError or
	// *invoice.DecodeError.
	FetchInvoicePDF(ctx context.Context, id invoice.ID) (invoice.PDFReference, error)
}
