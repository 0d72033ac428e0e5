// Package catalog holds the product filter contract: the filter state the
// product list is rendered with, the actions that mutate it, the panel input
// surface, and the selection of products a state describes.
package catalog

import (
	"fmt"

	"github.com/SalBom/app-sb-sub001/internal/domain"
)

// FilterState is the set of active product list filters. The zero value is
// the default state: unset sort order, all products, any brand, any category.
//
// Fields are independent; every mutation replaces exactly one field except
// ClearFilters, which resets the brand and category selections together.
type FilterState struct {
	SortOrder     SortOrder
	FavoritesOnly bool
	Brand         Selection
	Category      Selection
}

// NewFilterState returns the default filter state.
func NewFilterState() FilterState {
	return FilterState{}
}

// SetSortOrder replaces the sort order. Values outside the closed set are
// rejected and leave the state unchanged.
func (f *FilterState) SetSortOrder(order SortOrder) error {
	if !order.IsValid() {
		return invalidSortOrder(string(order))
	}
	f.SortOrder = order
	return nil
}

// ToggleFavoritesOnly flips the favorites-only flag.
func (f *FilterState) ToggleFavoritesOnly() {
	f.FavoritesOnly = !f.FavoritesOnly
}

// SetSelectedBrand replaces the brand selection. The id is not checked
// against any brand list.
func (f *FilterState) SetSelectedBrand(sel Selection) {
	f.Brand = sel
}

// SetSelectedCategory replaces the category selection. The id is not checked
// against any category list.
func (f *FilterState) SetSelectedCategory(sel Selection) {
	f.Category = sel
}

// ClearFilters resets the brand and category selections to "any". Sort order
// and the favorites-only flag are kept.
func (f *FilterState) ClearFilters() {
	f.Brand = Any()
	f.Category = Any()
}

// ActionType names one of the filter panel callbacks.
type ActionType string

const (
	ActionSetSortOrder        ActionType = "set_sort_order"
	ActionToggleFavoritesOnly ActionType = "toggle_favorites_only"
	ActionSetBrand            ActionType = "set_brand"
	ActionSetCategory         ActionType = "set_category"
	ActionClearFilters        ActionType = "clear_filters"
)

// IsValid returns true if the action type is one of the defined constants.
func (t ActionType) IsValid() bool {
	switch t {
	case ActionSetSortOrder, ActionToggleFavoritesOnly, ActionSetBrand, ActionSetCategory, ActionClearFilters:
		return true
	default:
		return false
	}
}

// Action is a single panel interaction. SortOrder is read by
// ActionSetSortOrder; Selection by ActionSetBrand and ActionSetCategory.
type Action struct {
	Type      ActionType
	SortOrder SortOrder
	Selection Selection
}

// Dispatch applies the action to the state.
func (f *FilterState) Dispatch(a Action) error {
	switch a.Type {
	case ActionSetSortOrder:
		return f.SetSortOrder(a.SortOrder)
	case ActionToggleFavoritesOnly:
		f.ToggleFavoritesOnly()
	case ActionSetBrand:
		f.SetSelectedBrand(a.Selection)
	case ActionSetCategory:
		f.SetSelectedCategory(a.Selection)
	case ActionClearFilters:
		f.ClearFilters()
	default:
		return domain.NewValidationError("action.type", fmt.Sprintf("invalid: %q", a.Type))
	}
	return nil
}
