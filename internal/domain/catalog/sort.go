package catalog

import (
	"fmt"

	"github.com/SalBom/app-sb-sub001/internal/domain"
)

// SortOrder is the directive used to order a product list.
type SortOrder string

const (
	SortUnset     SortOrder = ""
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
	SortNameAsc   SortOrder = "name-asc"
	SortNameDesc  SortOrder = "name-desc"
)

// legacySortOrders maps the values sent by older mobile builds.
var legacySortOrders = map[string]SortOrder{
	"precio-asc":  SortPriceAsc,
	"precio-desc": SortPriceDesc,
	"nombre-asc":  SortNameAsc,
	"nombre-desc": SortNameDesc,
}

// SortOrders returns every valid sort order, unset first.
func SortOrders() []SortOrder {
	return []SortOrder{SortUnset, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc}
}

// IsValid returns true if the sort order is one of the defined constants.
func (s SortOrder) IsValid() bool {
	switch s {
	case SortUnset, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s SortOrder) String() string {
	return string(s)
}

// ParseSortOrder converts a raw value into a SortOrder. Matching is exact and
// case-sensitive; legacy values are normalized. Anything outside the closed
// set is rejected with a *domain.ValidationError.
func ParseSortOrder(raw string) (SortOrder, error) {
	if legacy, ok := legacySortOrders[raw]; ok {
		return legacy, nil
	}
	s := SortOrder(raw)
	if !s.IsValid() {
		return SortUnset, invalidSortOrder(raw)
	}
	return s, nil
}

func invalidSortOrder(raw string) error {
	return domain.NewValidationError("sort_order", fmt.Sprintf("invalid: %q", raw))
}
