package handlers

import (
	"net/http"

	"github.com/SalBom/app-sb-sub001/internal/adapters/http/dto"
	"github.com/SalBom/app-sb-sub001/internal/ports"
)

// FilterHandler exposes the filter panel contract and product selection.
// The client sends its current state with every request.
type FilterHandler struct {
	service ports.FilterService
}

// NewFilterHandler creates a new FilterHandler with the given service port.
func NewFilterHandler(service ports.FilterService) *FilterHandler {
	return &FilterHandler{service: service}
}

// ApplyAction handles POST /api/v1/filters/actions.
func (h *FilterHandler) ApplyAction(w http.ResponseWriter, r *http.Request) {
	var req dto.FilterActionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	state, action, err := req.ToDomain()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	next, err := h.service.ApplyAction(r.Context(), state, action)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FilterActionResponse{State: dto.ToFilterStateResponse(next)})
}

// DescribePanel handles POST /api/v1/filters/panel.
func (h *FilterHandler) DescribePanel(w http.ResponseWriter, r *http.Request) {
	var req dto.FilterPanelRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	state, panel, err := req.ToDomain()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	view := h.service.DescribePanel(r.Context(), state, panel)
	writeJSON(w, r, http.StatusOK, dto.ToFilterPanelResponse(view))
}

// SelectProducts handles POST /api/v1/products/filter.
func (h *FilterHandler) SelectProducts(w http.ResponseWriter, r *http.Request) {
	var req dto.ProductFilterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	state, favorites, products, err := req.ToDomain()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	selected := h.service.SelectProducts(r.Context(), state, favorites, products)
	writeJSON(w, r, http.StatusOK, dto.ToProductListResponse(selected, favorites))
}
