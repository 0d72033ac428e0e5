// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import "github.com/SalBom/app-sb-sub001/internal/domain/invoice"

// InvoicePDFResponse carries the URL of a rendered invoice PDF.
type InvoicePDFResponse struct {
	PDFURL string `json:"pdf_url"`
}

// ToInvoicePDFResponse converts a domain PDF reference.
func ToInvoicePDFResponse(ref invoice.PDFReference) InvoicePDFResponse {
	return InvoicePDFResponse{PDFURL: ref.PDFURL}
}
