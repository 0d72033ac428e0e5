package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/SalBom/app-sb-sub001/internal/adapters/http/dto"
	"github.com/SalBom/app-sb-sub001/internal/domain/invoice"
	"github.com/SalBom/app-sb-sub001/internal/ports"
)

// InvoiceHandler serves invoice PDF lookups.
type InvoiceHandler struct {
	service ports.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler with the given service port.
func NewInvoiceHandler(service ports.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// GetInvoicePDF handles GET /api/v1/invoices/{invoiceId}/pdf. The id is
// passed to the backend verbatim after URL unescaping.
func (h *InvoiceHandler) GetInvoicePDF(w http.ResponseWriter, r *http.Request) {
	id := invoice.ID(invoiceIDParam(r))

	ref, err := h.service.GetInvoicePDF(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToInvoicePDFResponse(ref))
}

// invoiceIDParam returns the invoiceId path segment. chi matches on the raw
// path when it holds escapes such as %2F, so the segment is unescaped here.
func invoiceIDParam(r *http.Request) string {
	raw := chi.URLParam(r, "invoiceId")
	if r.URL.RawPath == "" {
		return raw
	}
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
