package dto_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/SalBom/app-sb-sub001/internal/adapters/http/dto"
	"github.com/SalBom/app-sb-sub001/internal/domain"
	"github.com/SalBom/app-sb-sub001/internal/domain/catalog"
	"github.com/SalBom/app-sb-sub001/internal/ports"
)

// requireValidationField asserts err is a *domain.ValidationError that
// names field.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("got nil error, want validation error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func decodeActionRequest(t *testing.T, body string) *dto.FilterActionRequest {
	t.Helper()

	var req dto.FilterActionRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	return &req
}

func TestFilterActionRequest_ToDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantState  catalog.FilterState
		wantAction catalog.Action
	}{
		{
			name:       "empty state and toggle",
			body:       `{"action":{"type":"toggle_favorites_only"}}`,
			wantState:  catalog.NewFilterState(),
			wantAction: catalog.Action{Type: catalog.ActionToggleFavoritesOnly},
		},
		{
			name: "numeric ids",
			body: `{"state":{"sort_order":"price-asc","favorites_only":true,"brand_id":3,"category_id":9},"action":{"type":"clear_filters"}}`,
			wantState: catalog.FilterState{
				SortOrder:     catalog.SortPriceAsc,
				FavoritesOnly: true,
				Brand:         catalog.Select(3),
				Category:      catalog.Select(9),
			},
			wantAction: catalog.Action{Type: catalog.ActionClearFilters},
		},
		{
			name: "picker string ids",
			body: `{"state":{"brand_id":"12","category_id":""},"action":{"type":"set_brand","id":"any"}}`,
			wantState: catalog.FilterState{
				Brand:    catalog.Select(12),
				Category: catalog.Any(),
			},
			wantAction: catalog.Action{Type: catalog.ActionSetBrand, Selection: catalog.Any()},
		},
		{
			name:       "null ids mean any",
			body:       `{"state":{"brand_id":null,"category_id":null},"action":{"type":"set_category","id":4}}`,
			wantState:  catalog.NewFilterState(),
			wantAction: catalog.Action{Type: catalog.ActionSetCategory, Selection: catalog.Select(4)},
		},
		{
			name:       "legacy sort order normalized",
			body:       `{"state":{"sort_order":"nombre-desc"},"action":{"type":"set_sort_order","sort_order":"precio-asc"}}`,
			wantState:  catalog.FilterState{SortOrder: catalog.SortNameDesc},
			wantAction: catalog.Action{Type: catalog.ActionSetSortOrder, SortOrder: catalog.SortPriceAsc},
		},
		{
			name:       "empty sort order unsets",
			body:       `{"state":{"sort_order":"name-asc"},"action":{"type":"set_sort_order","sort_order":""}}`,
			wantState:  catalog.FilterState{SortOrder: catalog.SortNameAsc},
			wantAction: catalog.Action{Type: catalog.ActionSetSortOrder, SortOrder: catalog.SortUnset},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := decodeActionRequest(t, tt.body)
			if err := req.Validate(); err != nil {
				t.Fatalf("Validate() error = %v", err)
			}

			state, action, err := req.ToDomain()
			if err != nil {
				t.Fatalf("ToDomain() error = %v", err)
			}
			if state != tt.wantState {
				t.Errorf("state = %+v, want %+v", state, tt.wantState)
			}
			if action != tt.wantAction {
				t.Errorf("action = %+v, want %+v", action, tt.wantAction)
			}
		})
	}
}

func TestFilterActionRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"missing action type", `{"action":{}}`, "action.type"},
		{"unknown action type", `{"action":{"type":"reset_all"}}`, "action.type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			requireValidationField(t, decodeActionRequest(t, tt.body).Validate(), tt.wantField)
		})
	}
}

func TestFilterActionRequest_ToDomainRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"invalid state sort order", `{"state":{"sort_order":"popularity"},"action":{"type":"clear_filters"}}`, "state.sort_order"},
		{"invalid action sort order", `{"action":{"type":"set_sort_order","sort_order":"random"}}`, "action.sort_order"},
		{"fractional brand id", `{"state":{"brand_id":1.5},"action":{"type":"clear_filters"}}`, "state.brand_id"},
		{"boolean category id", `{"state":{"category_id":true},"action":{"type":"clear_filters"}}`, "state.category_id"},
		{"non numeric action id", `{"action":{"type":"set_brand","id":"acme"}}`, "action.id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := decodeActionRequest(t, tt.body)
			if err := req.Validate(); err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			_, _, err := req.ToDomain()
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestFilterPanelRequest(t *testing.T) {
	t.Parallel()

	t.Run("visible by default", func(t *testing.T) {
		t.Parallel()

		var req dto.FilterPanelRequest
		body := `{"state":{"brand_id":2},"brands":[{"id":2,"name":"Acme"}],"categories":[{"id":5,"name":"Tools"}]}`
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatalf("json.Unmarshal() error = %v", err)
		}
		if err := req.Validate(); err != nil {
			t.Fatalf("Validate() error = %v", err)
		}

		state, panel, err := req.ToDomain()
		if err != nil {
			t.Fatalf("ToDomain() error = %v", err)
		}
		if state.Brand != catalog.Select(2) {
			t.Errorf("state.Brand = %v, want 2", state.Brand)
		}
		if !panel.ShowBrandCategory() {
			t.Error("ShowBrandCategory() = false, want true")
		}
		if len(panel.Brands()) != 1 || len(panel.Categories()) != 1 {
			t.Errorf("panel lists = %v / %v, want one entry each", panel.Brands(), panel.Categories())
		}
	})

	t.Run("hidden when requested", func(t *testing.T) {
		t.Parallel()

		var req dto.FilterPanelRequest
		if err := json.Unmarshal([]byte(`{"show_brand_category":false}`), &req); err != nil {
			t.Fatalf("json.Unmarshal() error = %v", err)
		}
		_, panel, err := req.ToDomain()
		if err != nil {
			t.Fatalf("ToDomain() error = %v", err)
		}
		if panel.ShowBrandCategory() {
			t.Error("ShowBrandCategory() = true, want false")
		}
	})

	t.Run("option without name", func(t *testing.T) {
		t.Parallel()

		var req dto.FilterPanelRequest
		if err := json.Unmarshal([]byte(`{"brands":[{"id":1,"name":"A"},{"id":2}]}`), &req); err != nil {
			t.Fatalf("json.Unmarshal() error = %v", err)
		}
		requireValidationField(t, req.Validate(), "brands[1].name")
	})

	t.Run("option ids are not range checked", func(t *testing.T) {
		t.Parallel()

		var req dto.FilterPanelRequest
		body := `{"brands":[{"id":-3,"name":"Outlet"}],"categories":[{"id":0,"name":"Misc"}]}`
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatalf("json.Unmarshal() error = %v", err)
		}
		if err := req.Validate(); err != nil {
			t.Fatalf("Validate() error = %v", err)
		}

		_, panel, err := req.ToDomain()
		if err != nil {
			t.Fatalf("ToDomain() error = %v", err)
		}
		if got := panel.Brands(); len(got) != 1 || got[0].ID != -3 {
			t.Errorf("Brands() = %v, want one brand with id -3", got)
		}
		if got := panel.Categories(); len(got) != 1 || got[0].ID != 0 {
			t.Errorf("Categories() = %v, want one category with id 0", got)
		}
	})
}

func TestToFilterStateResponse(t *testing.T) {
	t.Parallel()

	state := catalog.FilterState{SortOrder: catalog.SortNameAsc, Brand: catalog.Select(7)}
	data, err := json.Marshal(dto.ToFilterStateResponse(state))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	want := `{"sort_order":"name-asc","favorites_only":false,"brand_id":7,"category_id":null}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}

func TestToFilterPanelResponse(t *testing.T) {
	t.Parallel()

	view := ports.PanelView{
		State: catalog.FilterState{
			SortOrder:     catalog.SortPriceDesc,
			FavoritesOnly: true,
			Brand:         catalog.Select(2),
			Category:      catalog.Select(99),
		},
		SortOrders:        catalog.SortOrders(),
		ShowBrandCategory: true,
		Brands:            []catalog.Brand{{ID: 1, Name: "Bosch"}, {ID: 2, Name: "Makita"}},
		Categories:        []catalog.Category{{ID: 5, Name: "Taladros"}},
		StaleCategory:     true,
	}

	got := dto.ToFilterPanelResponse(view)

	if len(got.SortOptions) != len(catalog.SortOrders()) {
		t.Fatalf("len(SortOptions) = %d, want %d", len(got.SortOptions), len(catalog.SortOrders()))
	}
	for _, opt := range got.SortOptions {
		if opt.Label == "" {
			t.Errorf("sort option %q has no label", opt.Value)
		}
		if opt.Selected != (opt.Value == "price-desc") {
			t.Errorf("sort option %q Selected = %v", opt.Value, opt.Selected)
		}
	}
	if got.FavoritesLabel != "Ver todos" {
		t.Errorf("FavoritesLabel = %q, want %q", got.FavoritesLabel, "Ver todos")
	}
	if got.Brands[0].Selected || !got.Brands[1].Selected {
		t.Errorf("Brands = %+v, want only id 2 selected", got.Brands)
	}
	if got.Categories[0].Selected {
		t.Errorf("Categories = %+v, want none selected", got.Categories)
	}
	if got.StaleBrand || !got.StaleCategory {
		t.Errorf("stale = %v/%v, want false/true", got.StaleBrand, got.StaleCategory)
	}
}
