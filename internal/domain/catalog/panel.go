package catalog

import "github.com/samber/lo"

// Brand is read-only reference data supplied by the caller.
type Brand struct {
	ID   int64
	Name string
}

// Category is read-only reference data supplied by the caller.
type Category struct {
	ID   int64
	Name string
}

// Panel is the input surface of the filter panel: the reference lists the
// pickers offer and whether the brand/category pickers are shown at all.
// Hiding the pickers does not disable the brand/category setters.
type Panel struct {
	brands            []Brand
	categories        []Category
	showBrandCategory bool
}

// PanelOption configures a Panel.
type PanelOption func(*Panel)

// WithBrandCategoryHidden hides the brand and category pickers.
func WithBrandCategoryHidden() PanelOption {
	return func(p *Panel) {
		p.showBrandCategory = false
	}
}

// WithBrandCategoryVisible sets picker visibility explicitly.
func WithBrandCategoryVisible(visible bool) PanelOption {
	return func(p *Panel) {
		p.showBrandCategory = visible
	}
}

// NewPanel builds a panel over the given reference lists. Brand/category
// pickers are visible unless an option hides them.
func NewPanel(brands []Brand, categories []Category, opts ...PanelOption) *Panel {
	p := &Panel{
		brands:            brands,
		categories:        categories,
		showBrandCategory: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Brands returns the brand reference list.
func (p *Panel) Brands() []Brand {
	return p.brands
}

// Categories returns the category reference list.
func (p *Panel) Categories() []Category {
	return p.categories
}

// ShowBrandCategory reports whether the brand/category pickers are shown.
func (p *Panel) ShowBrandCategory() bool {
	return p.showBrandCategory
}

// BrandName resolves a selection to a brand name. ok is false for "any" and
// for ids that are not in the list.
func (p *Panel) BrandName(sel Selection) (string, bool) {
	id, set := sel.ID()
	if !set {
		return "", false
	}
	b, ok := lo.Find(p.brands, func(b Brand) bool { return b.ID == id })
	return b.Name, ok
}

// CategoryName resolves a selection to a category name. ok is false for
// "any" and for ids that are not in the list.
func (p *Panel) CategoryName(sel Selection) (string, bool) {
	id, set := sel.ID()
	if !set {
		return "", false
	}
	c, ok := lo.Find(p.categories, func(c Category) bool { return c.ID == id })
	return c.Name, ok
}

// StaleSelections reports which concrete selections of state do not name an
// entry of the reference lists. Stale selections are allowed; this is only
// informational.
func (p *Panel) StaleSelections(state FilterState) (brand, category bool) {
	if !state.Brand.IsAny() {
		_, ok := p.BrandName(state.Brand)
		brand = !ok
	}
	if !state.Category.IsAny() {
		_, ok := p.CategoryName(state.Category)
		category = !ok
	}
	return brand, category
}
