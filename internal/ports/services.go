package ports

import (
	"context"

	"github.com/SalBom/app-sb-sub001/internal/domain/catalog"
	"github.com/SalBom/app-sb-sub001/internal/domain/invoice"
)

// InvoiceService resolves invoice PDFs for inbound callers.
type InvoiceService interface {
	// GetInvoicePDF returns the PDF reference for id. Errors from the backend
	// client are returned unchanged.
	GetInvoicePDF(ctx context.Context, id invoice.ID) (invoice.PDFReference, error)
}

// FilterService applies filter panel callbacks and product selection for a
// remote presentation layer. State is owned by the caller and passed in on
// every call; nothing is kept between calls.
type FilterService interface {
	// ApplyAction applies one panel callback to state and returns the new
	// state. On error the returned state equals the input.
	ApplyAction(ctx context.Context, state catalog.FilterState, action catalog.Action) (catalog.FilterState, error)

	// DescribePanel returns what the filter panel should render for state.
	DescribePanel(ctx context.Context, state catalog.FilterState, panel *catalog.Panel) PanelView

	// SelectProducts filters and orders products for state.
	SelectProducts(ctx context.Context, state catalog.FilterState, favorites catalog.Favorites,
		products []catalog.Product) []catalog.Product
}

// PanelView is the render model of the filter panel.
type PanelView struct {
	State             catalog.FilterState
	SortOrders        []catalog.SortOrder
	ShowBrandCategory bool
	Brands            []catalog.Brand
	Categories        []catalog.Category
	StaleBrand        bool
	StaleCategory     bool
}
