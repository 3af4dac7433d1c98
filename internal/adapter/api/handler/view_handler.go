package handler

import (
	"github.com/labstack/echo/v4"

	"starmarket/internal/domain/entity"
	"starmarket/internal/usecase"
	"starmarket/internal/view"
	"starmarket/pkg/errors"
	"starmarket/pkg/response"
)

// ViewHandler exposes the screen-state machine. Mutating endpoints answer
// with the resulting snapshot plus the listings the new filter state selects,
// so a client can redraw from one round trip.
type ViewHandler struct {
	controller     *view.Controller
	listingUseCase *usecase.ListingUseCase
}

func NewViewHandler(controller *view.Controller, listingUseCase *usecase.ListingUseCase) *ViewHandler {
	return &ViewHandler{
		controller:     controller,
		listingUseCase: listingUseCase,
	}
}

type navigateRequest struct {
	Action string `json:"action" validate:"required"`
}

type categoryRequest struct {
	Category string `json:"category" validate:"required"`
}

type searchRequest struct {
	Query string `json:"query"`
}

type viewStateResponse struct {
	View       view.State        `json:"view"`
	Category   entity.Category   `json:"category,omitempty"`
	Categories []entity.Category `json:"categories"`
	Search     string            `json:"search,omitempty"`
	Listings   []*entity.Listing `json:"listings,omitempty"`
}

func (h *ViewHandler) snapshotWithListings(c echo.Context) (viewStateResponse, error) {
	snap := h.controller.Snapshot()
	listings, err := h.listingUseCase.Browse(c.Request().Context(), h.controller.Filter())
	if err != nil {
		return viewStateResponse{}, err
	}
	return viewStateResponse{
		View:       snap.View,
		Category:   snap.Category,
		Categories: entity.Categories(),
		Search:     snap.Search,
		Listings:   listings,
	}, nil
}

func (h *ViewHandler) Current(c echo.Context) error {
	state, err := h.snapshotWithListings(c)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, state)
}

// Navigate applies a navigation action. Asking for "sell" does not change the
// view; the client is told to open the publish flow instead.
func (h *ViewHandler) Navigate(c echo.Context) error {
	var req navigateRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.controller.Navigate(req.Action)
	if err != nil {
		return response.Error(c, err)
	}

	if result == view.StateSell {
		return response.Success(c, map[string]string{
			"view":   string(h.controller.Snapshot().View),
			"action": "open_publish",
		})
	}

	state, err := h.snapshotWithListings(c)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, state)
}

// Category toggles the category filter: selecting the active one clears it.
func (h *ViewHandler) Category(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	category := entity.Category(req.Category)
	if !category.Valid() {
		return response.Error(c, errors.BadRequest("Unknown category", nil))
	}

	h.controller.ToggleCategory(category)

	state, err := h.snapshotWithListings(c)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, state)
}

// Search sets the search text. An empty query resets the search along with
// the category filter.
func (h *ViewHandler) Search(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if req.Query == "" {
		h.controller.ClearSearch()
	} else {
		h.controller.SetSearch(req.Query)
	}

	state, err := h.snapshotWithListings(c)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, state)
}
