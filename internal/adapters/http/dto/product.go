package dto

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/SalBom/app-sb-sub001/internal/domain"
	"github.com/SalBom/app-sb-sub001/internal/domain/catalog"
)

// ProductRequest is one product of the list to filter. list_price accepts a
// JSON number or a decimal string.
type ProductRequest struct {
	ID         int64           `json:"id" validate:"gt=0"`
	Name       string          `json:"name" validate:"required"`
	BrandID    int64           `json:"brand_id"`
	CategoryID int64           `json:"category_id"`
	ListPrice  decimal.Decimal `json:"list_price"`
}

// ProductFilterRequest is the body of POST /api/v1/products/filter.
type ProductFilterRequest struct {
	State       FilterStateRequest `json:"state"`
	FavoriteIDs []int64            `json:"favorite_ids"`
	Products    []ProductRequest   `json:"products" validate:"dive"`
}

// Validate checks the struct constraints of the request.
func (r *ProductFilterRequest) Validate() error {
	return validateStruct(r)
}

// ToDomain converts the request into the state, favorites set and products
// to select from.
func (r *ProductFilterRequest) ToDomain() (catalog.FilterState, catalog.Favorites, []catalog.Product, error) {
	fields := make(map[string]string)
	state := r.State.toDomain("state.", fields)
	if len(fields) > 0 {
		return state, nil, nil, &domain.ValidationError{Fields: fields}
	}

	products := lo.Map(r.Products, func(p ProductRequest, _ int) catalog.Product {
		return catalog.Product{
			ID:         p.ID,
			Name:       p.Name,
			BrandID:    p.BrandID,
			CategoryID: p.CategoryID,
			ListPrice:  p.ListPrice,
		}
	})
	return state, catalog.NewFavorites(r.FavoriteIDs...), products, nil
}

// ProductResponse is one product of a filtered list.
type ProductResponse struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	BrandID    int64           `json:"brand_id"`
	CategoryID int64           `json:"category_id"`
	ListPrice  decimal.Decimal `json:"list_price"`
	Favorite   bool            `json:"favorite"`
}

// ProductListResponse is the reply to a product filter request.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Count    int               `json:"count"`
}

// ToProductListResponse converts selected products, marking favorites.
func ToProductListResponse(products []catalog.Product, favorites catalog.Favorites) ProductListResponse {
	items := lo.Map(products, func(p catalog.Product, _ int) ProductResponse {
		return ProductResponse{
			ID:         p.ID,
			Name:       p.Name,
			BrandID:    p.BrandID,
			CategoryID: p.CategoryID,
			ListPrice:  p.ListPrice,
			Favorite:   favorites.Has(p.ID),
		}
	})
	return ProductListResponse{Products: items, Count: len(items)}
}
