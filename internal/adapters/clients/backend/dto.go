package backend

import (
	"encoding/json"
	"errors"

	"github.com/SalBom/app-sb-sub001/internal/domain/invoice"
)

// pdfResponseDTO is the body of a successful GET /factura_pdf. The backend
// also sends nombre_archivo, which the domain does not use.
type pdfResponseDTO struct {
	PDFURL *string `json:"pdf_url"`
}

// decodePDFReference accepts only a JSON object with a non-empty string
// pdf_url. Extra fields are ignored.
func decodePDFReference(body []byte) (invoice.PDFReference, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return invoice.PDFReference{}, &invoice.DecodeError{Reason: "body is not a JSON object", Err: err}
	}
	if fields == nil {
		return invoice.PDFReference{}, &invoice.DecodeError{Reason: "body is not a JSON object"}
	}
	if _, ok := fields["pdf_url"]; !ok {
		return invoice.PDFReference{}, &invoice.DecodeError{Reason: "pdf_url is missing"}
	}

	var dto pdfResponseDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return invoice.PDFReference{}, &invoice.DecodeError{Reason: "pdf_url is not a string", Err: err}
		}
		return invoice.PDFReference{}, &invoice.DecodeError{Reason: "malformed body", Err: err}
	}

	switch {
	case dto.PDFURL == nil:
		return invoice.PDFReference{}, &invoice.DecodeError{Reason: "pdf_url is null"}
	case *dto.PDFURL == "":
		return invoice.PDFReference{}, &invoice.DecodeError{Reason: "pdf_url is empty"}
	}

	return invoice.PDFReference{PDFURL: *dto.PDFURL}, nil
}
