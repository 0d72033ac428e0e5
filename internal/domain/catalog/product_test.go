package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
)

func testProducts() []Product {
	return []Product{
		{ID: 1, Name: "Taladro", BrandID: 1, CategoryID: 10, ListPrice: decimal.RequireFromString("150.50")},
		{ID: 2, Name: "amoladora", BrandID: 2, CategoryID: 10, ListPrice: decimal.RequireFromString("99.99")},
		{ID: 3, Name: "Ñandú lijadora", BrandID: 1, CategoryID: 20, ListPrice: decimal.RequireFromString("150.5")},
		{ID: 4, Name: "Martillo", BrandID: 3, CategoryID: 20, ListPrice: decimal.RequireFromString("12")},
	}
}

func ids(products []Product) []int64 {
	out := make([]int64, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSelectProducts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		state     FilterState
		favorites Favorites
		want      []int64
	}{
		{
			name:  "default keeps everything in input order",
			state: NewFilterState(),
			want:  []int64{1, 2, 3, 4},
		},
		{
			name:  "price ascending is stable for equal prices",
			state: FilterState{SortOrder: SortPriceAsc},
			want:  []int64{4, 2, 1, 3},
		},
		{
			name:  "price descending",
			state: FilterState{SortOrder: SortPriceDesc},
			want:  []int64{1, 3, 2, 4},
		},
		{
			name:  "name ascending ignores case and sorts ñ after n",
			state: FilterState{SortOrder: SortNameAsc},
			want:  []int64{2, 4, 3, 1},
		},
		{
			name:  "name descending",
			state: FilterState{SortOrder: SortNameDesc},
			want:  []int64{1, 3, 4, 2},
		},
		{
			name:  "brand selection",
			state: FilterState{Brand: Select(1)},
			want:  []int64{1, 3},
		},
		{
			name:  "brand and category selection",
			state: FilterState{Brand: Select(1), Category: Select(20)},
			want:  []int64{3},
		},
		{
			name:      "favorites only",
			state:     FilterState{FavoritesOnly: true, SortOrder: SortPriceAsc},
			favorites: NewFavorites(3, 4, 4),
			want:      []int64{4, 3},
		},
		{
			name:  "favorites only with no favorites",
			state: FilterState{FavoritesOnly: true},
			want:  []int64{},
		},
		{
			name:  "stale brand matches nothing",
			state: FilterState{Brand: Select(404)},
			want:  []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ids(SelectProducts(testProducts(), tt.state, tt.favorites))
			if !equalIDs(got, tt.want) {
				t.Errorf("SelectProducts() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectProducts_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := testProducts()
	_ = SelectProducts(in, FilterState{SortOrder: SortPriceAsc}, nil)

	if got := ids(in); !equalIDs(got, []int64{1, 2, 3, 4}) {
		t.Errorf("input order = %v after SelectProducts, want unchanged", got)
	}
}

func TestFavorites_Has(t *testing.T) {
	t.Parallel()

	var none Favorites
	if none.Has(1) {
		t.Error("nil Favorites.Has(1) = true, want false")
	}

	f := NewFavorites(1, 2)
	if !f.Has(2) || f.Has(3) {
		t.Errorf("Favorites = %v, want {1, 2}", f)
	}
}
