// Package invoice models the invoice PDF lookup: the caller-supplied invoice
// identifier, the resolved PDF reference, and the typed errors a lookup can
// fail with.
package invoice

// ID is an opaque invoice identifier supplied by the caller (for example
// "FA-A 0001-00001234"). It is sent to the backend verbatim.
type ID string

// String implements fmt.Stringer.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is empty. An empty identifier is not
// rejected locally; the backend decides how to answer it.
func (id ID) IsZero() bool {
	return id == ""
}

// PDFReference is the result of a successful lookup. It carries only the URL
// of the rendered PDF.
type PDFReference struct {
	PDFURL string
}
