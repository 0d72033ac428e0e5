package app

import (
	"context"
	"log/slog"

	"github.com/SalBom/app-sb-sub001/internal/domain/catalog"
	"github.com/SalBom/app-sb-sub001/internal/ports"
)

var _ ports.FilterService = (*FilterService)(nil)

// FilterService applies panel callbacks and product selection. It is
// stateless: every call receives and returns the caller's FilterState.
type FilterService struct {
	logger *slog.Logger
}

// NewFilterService returns a FilterService. A nil logger discards output.
func NewFilterService(logger *slog.Logger) *FilterService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FilterService{logger: logger}
}

// ApplyAction dispatches action on a copy of state. A rejected action
// returns the input state together with the validation error.
func (s *FilterService) ApplyAction(
	ctx context.Context, state catalog.FilterState, action catalog.Action,
) (catalog.FilterState, error) {
	next := state
	if err := next.Dispatch(action); err != nil {
		s.logger.WarnContext(ctx, "filter action rejected",
			slog.String("operation", "ApplyAction"),
			slog.String("action", string(action.Type)),
			slog.Any("error", err),
		)
		return state, err
	}

	s.logger.DebugContext(ctx, "filter action applied",
		slog.String("action", string(action.Type)),
		slog.String("sort_order", next.SortOrder.String()),
		slog.Bool("favorites_only", next.FavoritesOnly),
		slog.String("brand", next.Brand.String()),
		slog.String("category", next.Category.String()),
	)
	return next, nil
}

// DescribePanel assembles the render model. Selections missing from the
// reference lists are flagged as stale but kept.
func (s *FilterService) DescribePanel(ctx context.Context, state catalog.FilterState, panel *catalog.Panel) ports.PanelView {
	staleBrand, staleCategory := panel.StaleSelections(state)
	if staleBrand || staleCategory {
		s.logger.DebugContext(ctx, "filter panel has stale selections",
			slog.Bool("stale_brand", staleBrand),
			slog.Bool("stale_category", staleCategory),
		)
	}

	return ports.PanelView{
		State:             state,
		SortOrders:        catalog.SortOrders(),
		ShowBrandCategory: panel.ShowBrandCategory(),
		Brands:            panel.Brands(),
		Categories:        panel.Categories(),
		StaleBrand:        staleBrand,
		StaleCategory:     staleCategory,
	}
}

// SelectProducts returns the products matching state in display order.
func (s *FilterService) SelectProducts(
	ctx context.Context, state catalog.FilterState, favorites catalog.Favorites, products []catalog.Product,
) []catalog.Product {
	selected := catalog.SelectProducts(products, state, favorites)

	s.logger.DebugContext(ctx, "products selected",
		slog.Int("input", len(products)),
		slog.Int("selected", len(selected)),
		slog.String("sort_order", state.SortOrder.String()),
	)
	return selected
}
