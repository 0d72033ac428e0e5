package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/samber/lo"

	"github.com/SalBom/app-sb-sub001/internal/domain"
	"github.com/SalBom/app-sb-sub001/internal/domain/catalog"
	"github.com/SalBom/app-sb-sub001/internal/ports"
)

const msgSelection = `must be an integer id, "any", "" or null`

// sortLabels are the picker labels shown by the mobile app.
var sortLabels = map[catalog.SortOrder]string{
	catalog.SortUnset:     "Ordenar por...",
	catalog.SortPriceAsc:  "Precio: menor a mayor",
	catalog.SortPriceDesc: "Precio: mayor a menor",
	catalog.SortNameAsc:   "Nombre: A-Z",
	catalog.SortNameDesc:  "Nombre: Z-A",
}

// FilterStateRequest is the wire form of a filter state. brand_id and
// category_id accept a number, a numeric string, "any", "" or null; the
// last three mean no selection.
type FilterStateRequest struct {
	SortOrder     string          `json:"sort_order"`
	FavoritesOnly bool            `json:"favorites_only"`
	BrandID       json.RawMessage `json:"brand_id,omitempty"`
	CategoryID    json.RawMessage `json:"category_id,omitempty"`
}

// toDomain converts the state, recording invalid fields under prefix.
func (s *FilterStateRequest) toDomain(prefix string, fields map[string]string) catalog.FilterState {
	state := catalog.NewFilterState()
	state.FavoritesOnly = s.FavoritesOnly

	order, err := catalog.ParseSortOrder(s.SortOrder)
	if err != nil {
		fields[prefix+"sort_order"] = fmt.Sprintf("invalid: %q", s.SortOrder)
	}
	state.SortOrder = order

	if sel, ok := parseSelection(s.BrandID); ok {
		state.Brand = sel
	} else {
		fields[prefix+"brand_id"] = msgSelection
	}
	if sel, ok := parseSelection(s.CategoryID); ok {
		state.Category = sel
	} else {
		fields[prefix+"category_id"] = msgSelection
	}

	return state
}

// parseSelection decodes a raw brand or category id. A missing value is "any".
func parseSelection(raw json.RawMessage) (catalog.Selection, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return catalog.Any(), true
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return catalog.Any(), false
	}

	switch val := v.(type) {
	case json.Number:
		id, err := val.Int64()
		if err != nil {
			return catalog.Any(), false
		}
		return catalog.Select(id), true
	case string:
		sel, err := catalog.ParseSelection(val)
		return sel, err == nil
	default:
		return catalog.Any(), false
	}
}

// ActionRequest is one filter panel callback.
type ActionRequest struct {
	Type      string          `json:"type" validate:"required,oneof=set_sort_order toggle_favorites_only set_brand set_category clear_filters"`
	SortOrder string          `json:"sort_order,omitempty"`
	ID        json.RawMessage `json:"id,omitempty"`
}

// FilterActionRequest is the body of POST /api/v1/filters/actions.
type FilterActionRequest struct {
	State  FilterStateRequest `json:"state"`
	Action ActionRequest      `json:"action"`
}

// Validate checks the struct constraints of the request.
func (r *FilterActionRequest) Validate() error {
	return validateStruct(r)
}

// ToDomain converts the request into a filter state and an action.
// Returns a *domain.ValidationError naming every unusable field.
func (r *FilterActionRequest) ToDomain() (catalog.FilterState, catalog.Action, error) {
	fields := make(map[string]string)
	state := r.State.toDomain("state.", fields)

	action := catalog.Action{Type: catalog.ActionType(r.Action.Type)}
	switch action.Type {
	case catalog.ActionSetSortOrder:
		order, err := catalog.ParseSortOrder(r.Action.SortOrder)
		if err != nil {
			fields["action.sort_order"] = fmt.Sprintf("invalid: %q", r.Action.SortOrder)
		}
		action.SortOrder = order
	case catalog.ActionSetBrand, catalog.ActionSetCategory:
		sel, ok := parseSelection(r.Action.ID)
		if !ok {
			fields["action.id"] = msgSelection
		}
		action.Selection = sel
	case catalog.ActionToggleFavoritesOnly, catalog.ActionClearFilters:
	}

	if len(fields) > 0 {
		return state, action, &domain.ValidationError{Fields: fields}
	}
	return state, action, nil
}

// OptionRequest is a brand or category entry of the panel lists. Any
// integer id is accepted.
type OptionRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required"`
}

// FilterPanelRequest is the body of POST /api/v1/filters/panel.
// ShowBrandCategory defaults to true when omitted.
type FilterPanelRequest struct {
	State             FilterStateRequest `json:"state"`
	Brands            []OptionRequest    `json:"brands" validate:"dive"`
	Categories        []OptionRequest    `json:"categories" validate:"dive"`
	ShowBrandCategory *bool              `json:"show_brand_category,omitempty"`
}

// Validate checks the struct constraints of the request.
func (r *FilterPanelRequest) Validate() error {
	return validateStruct(r)
}

// ToDomain converts the request into a filter state and the panel it is
// rendered on.
func (r *FilterPanelRequest) ToDomain() (catalog.FilterState, *catalog.Panel, error) {
	fields := make(map[string]string)
	state := r.State.toDomain("state.", fields)
	if len(fields) > 0 {
		return state, nil, &domain.ValidationError{Fields: fields}
	}

	brands := lo.Map(r.Brands, func(o OptionRequest, _ int) catalog.Brand {
		return catalog.Brand{ID: o.ID, Name: o.Name}
	})
	categories := lo.Map(r.Categories, func(o OptionRequest, _ int) catalog.Category {
		return catalog.Category{ID: o.ID, Name: o.Name}
	})

	var opts []catalog.PanelOption
	if r.ShowBrandCategory != nil {
		opts = append(opts, catalog.WithBrandCategoryVisible(*r.ShowBrandCategory))
	}
	return state, catalog.NewPanel(brands, categories, opts...), nil
}

// FilterStateResponse is the wire form of a filter state. A null id means
// no selection.
type FilterStateResponse struct {
	SortOrder     string `json:"sort_order"`
	FavoritesOnly bool   `json:"favorites_only"`
	BrandID       *int64 `json:"brand_id"`
	CategoryID    *int64 `json:"category_id"`
}

// ToFilterStateResponse converts a domain filter state.
func ToFilterStateResponse(s catalog.FilterState) FilterStateResponse {
	return FilterStateResponse{
		SortOrder:     s.SortOrder.String(),
		FavoritesOnly: s.FavoritesOnly,
		BrandID:       selectionID(s.Brand),
		CategoryID:    selectionID(s.Category),
	}
}

func selectionID(sel catalog.Selection) *int64 {
	id, ok := sel.ID()
	if !ok {
		return nil
	}
	return &id
}

// FilterActionResponse is the reply to a filter action.
type FilterActionResponse struct {
	State FilterStateResponse `json:"state"`
}

// SortOptionResponse is one entry of the sort picker.
type SortOptionResponse struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// OptionResponse is one entry of the brand or category picker.
type OptionResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

// FilterPanelResponse is what the filter panel renders.
type FilterPanelResponse struct {
	State             FilterStateResponse  `json:"state"`
	SortOptions       []SortOptionResponse `json:"sort_options"`
	FavoritesLabel    string               `json:"favorites_label"`
	ShowBrandCategory bool                 `json:"show_brand_category"`
	Brands            []OptionResponse     `json:"brands"`
	Categories        []OptionResponse     `json:"categories"`
	StaleBrand        bool                 `json:"stale_brand"`
	StaleCategory     bool                 `json:"stale_category"`
}

// ToFilterPanelResponse converts a panel view.
func ToFilterPanelResponse(v ports.PanelView) FilterPanelResponse {
	favoritesLabel := "Solo favoritos"
	if v.State.FavoritesOnly {
		favoritesLabel = "Ver todos"
	}

	return FilterPanelResponse{
		State: ToFilterStateResponse(v.State),
		SortOptions: lo.Map(v.SortOrders, func(o catalog.SortOrder, _ int) SortOptionResponse {
			return SortOptionResponse{Value: o.String(), Label: sortLabels[o], Selected: o == v.State.SortOrder}
		}),
		FavoritesLabel:    favoritesLabel,
		ShowBrandCategory: v.ShowBrandCategory,
		Brands: lo.Map(v.Brands, func(b catalog.Brand, _ int) OptionResponse {
			return OptionResponse{ID: b.ID, Name: b.Name, Selected: isSelected(v.State.Brand, b.ID)}
		}),
		Categories: lo.Map(v.Categories, func(c catalog.Category, _ int) OptionResponse {
			return OptionResponse{ID: c.ID, Name: c.Name, Selected: isSelected(v.State.Category, c.ID)}
		}),
		StaleBrand:    v.StaleBrand,
		StaleCategory: v.StaleCategory,
	}
}

func isSelected(sel catalog.Selection, id int64) bool {
	got, ok := sel.ID()
	return ok && got == id
}

