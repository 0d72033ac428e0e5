package catalog

import (
	"slices"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Product is the slice of a catalog product the filter operates on.
type Product struct {
	ID         int64
	Name       string
	BrandID    int64
	CategoryID int64
	ListPrice  decimal.Decimal
}

// Favorites is the set of product ids the user marked as favorite.
type Favorites map[int64]struct{}

// NewFavorites builds a set from product ids. Duplicates collapse.
func NewFavorites(ids ...int64) Favorites {
	return lo.SliceToMap(ids, func(id int64) (int64, struct{}) {
		return id, struct{}{}
	})
}

// Has reports whether id is a favorite. Safe on a nil set.
func (f Favorites) Has(id int64) bool {
	_, ok := f[id]
	return ok
}

// Matches reports whether a product passes the favorites, brand and category
// filters of the state.
func (f *FilterState) Matches(p Product, favorites Favorites) bool {
	if f.FavoritesOnly && !favorites.Has(p.ID) {
		return false
	}
	return f.Brand.Matches(p.BrandID) && f.Category.Matches(p.CategoryID)
}

// SelectProducts returns the products that match state, ordered by its sort
// order. The sort is stable and an unset order keeps the input order. The
// input slice is not modified.
func SelectProducts(products []Product, state FilterState, favorites Favorites) []Product {
	out := lo.Filter(products, func(p Product, _ int) bool {
		return state.Matches(p, favorites)
	})

	switch state.SortOrder {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b Product) int { return a.ListPrice.Cmp(b.ListPrice) })
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b Product) int { return b.ListPrice.Cmp(a.ListPrice) })
	case SortNameAsc:
		c := collate.New(language.Spanish)
		slices.SortStableFunc(out, func(a, b Product) int { return c.CompareString(a.Name, b.Name) })
	case SortNameDesc:
		c := collate.New(language.Spanish)
		slices.SortStableFunc(out, func(a, b Product) int { return c.CompareString(b.Name, a.Name) })
	case SortUnset:
	}

	return out
}
